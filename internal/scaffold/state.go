package scaffold

// State is a step of a scaffold run. States only move forward.
type State int

const (
	StateIdle State = iota
	StateTemplateResolved
	StateDestinationValidated
	StateDirectoryCreated
	StateFilesCopied
	StateManifestUpdated
	StateReported
)

var stateNames = [...]string{
	StateIdle:                 "idle",
	StateTemplateResolved:     "template resolved",
	StateDestinationValidated: "destination validated",
	StateDirectoryCreated:     "directory created",
	StateFilesCopied:          "files copied",
	StateManifestUpdated:      "manifest updated",
	StateReported:             "reported",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}
