package wizard

import (
	"slices"

	"github.com/modu-ai/mpgen/internal/manifest"
)

// Session is the read-only context a questionnaire runs against: the
// loaded manifest, its indices and the available app flavors.
type Session struct {
	Manifest *manifest.Manifest
	Modules  *manifest.Index
	Pages    *manifest.Index
	Flavors  []string
}

// NewSession indexes m once for the lifetime of a run.
func NewSession(m *manifest.Manifest, flavors []string) *Session {
	return &Session{
		Manifest: m,
		Modules:  m.ModuleIndex(),
		Pages:    m.PageIndex(),
		Flavors:  slices.Clone(flavors),
	}
}
