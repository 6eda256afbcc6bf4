package cli

import (
	"path/filepath"

	"github.com/modu-ai/mpgen/internal/scaffold"
	"github.com/modu-ai/mpgen/internal/ui"
)

// progressReporter shows file copies of a scaffold run as a progress bar.
type progressReporter struct {
	progress ui.Progress
	total    int
	bar      ui.ProgressBar
}

func newProgressReporter(p ui.Progress) *progressReporter {
	return &progressReporter{progress: p}
}

func (r *progressReporter) Planned(files []string) {
	r.total = len(files)
}

func (r *progressReporter) Step(s scaffold.State) {
	switch s {
	case scaffold.StateDirectoryCreated:
		r.bar = r.progress.Start("Copying template files", r.total)
	case scaffold.StateFilesCopied:
		r.Close()
	}
}

func (r *progressReporter) FileCopied(path string) {
	if r.bar == nil {
		return
	}
	r.bar.SetTitle(filepath.Base(path))
	r.bar.Increment(1)
}

// Close finishes an open bar, also when copying stopped early.
func (r *progressReporter) Close() {
	if r.bar != nil {
		r.bar.Done()
		r.bar = nil
	}
}
