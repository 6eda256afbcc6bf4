// Package cli provides the Cobra command tree of mpgen and the
// composition root that wires configuration, logging and terminal output.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/modu-ai/mpgen/internal/config"
	"github.com/modu-ai/mpgen/internal/manifest"
	"github.com/modu-ai/mpgen/internal/template"
	"github.com/modu-ai/mpgen/internal/ui"
)

// Dependencies holds the services shared by commands. It is built once
// per process, after flags are parsed.
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	Headless *ui.HeadlessManager
	Theme    *ui.Theme
	Progress ui.Progress
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies resolves configuration for the working directory and
// the command's flags, then wires logging and terminal output.
func InitDependencies(cmd *cobra.Command) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(wd, cmd.Flags())
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.SlogLevel())
	slog.SetDefault(logger)

	if cfg.NoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	theme := ui.NewTheme(cfg.NoColor)
	hm := ui.NewHeadlessManager()
	deps = &Dependencies{
		Config:   cfg,
		Logger:   logger,
		Headless: hm,
		Theme:    theme,
		Progress: ui.NewProgressTo(theme, hm, cmd.ErrOrStderr()),
	}
	logger.Debug("dependencies initialized", "entry", cfg.Entry, "templates", cfg.TemplateRoot, "flavors", cfg.Flavors)
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// LoadManifest reads app.json from the configured entry directory.
func (d *Dependencies) LoadManifest() (*manifest.Manifest, error) {
	m, err := manifest.Load(d.Config.Entry)
	if err != nil {
		return nil, err
	}
	d.Logger.Debug("manifest loaded", "path", manifest.Path(d.Config.Entry), "pages", len(m.Pages()), "subPackages", len(m.SubPackages()))
	return m, nil
}

// Templates opens the configured template source.
func (d *Dependencies) Templates() (*template.Resolver, error) {
	fsys, root, err := template.Source(d.Config.TemplateRoot)
	if err != nil {
		return nil, err
	}
	return template.NewResolver(fsys, root, d.Config.TemplateIgnore, d.Logger), nil
}
