package scaffold

// Reporter receives progress of a scaffold run.
type Reporter interface {
	// Step is called each time the run reaches a new state.
	Step(State)
	// Planned is called once with the destination files before copying.
	Planned(files []string)
	// FileCopied is called after each file is written.
	FileCopied(path string)
}

// NoOpReporter discards all progress.
type NoOpReporter struct{}

func (NoOpReporter) Step(State)        {}
func (NoOpReporter) Planned([]string)  {}
func (NoOpReporter) FileCopied(string) {}
