package scaffold

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/modu-ai/mpgen/internal/defs"
	"github.com/modu-ai/mpgen/internal/fsutil"
	"github.com/modu-ai/mpgen/internal/manifest"
	"github.com/modu-ai/mpgen/internal/template"
	"github.com/modu-ai/mpgen/pkg/models"
)

// Options configures an Orchestrator.
type Options struct {
	// Entry is the project directory holding app.json.
	Entry string

	Manifest  *manifest.Manifest
	Templates *template.Resolver

	// ComponentsDir is the slash path components are created under.
	// Defaults to "components".
	ComponentsDir string

	Reporter Reporter
	Logger   *slog.Logger

	// DryRun resolves and validates only; nothing is written.
	DryRun bool
}

// Result describes a scaffold run. State is the last state reached, also
// when the run failed.
type Result struct {
	State State
	Kind  models.Kind
	Dest  string

	// Files lists the files written, or planned in a dry run.
	Files []string

	// ManifestEntry is the page path registered in app.json, prefixed with
	// the sub-package root. Empty for components.
	ManifestEntry string

	DryRun bool
}

// Orchestrator runs scaffold requests against one project.
type Orchestrator struct {
	entry         string
	manifest      *manifest.Manifest
	templates     *template.Resolver
	componentsDir string
	reporter      Reporter
	logger        *slog.Logger
	dryRun        bool
}

// New creates an Orchestrator.
func New(opts Options) *Orchestrator {
	o := &Orchestrator{
		entry:         opts.Entry,
		manifest:      opts.Manifest,
		templates:     opts.Templates,
		componentsDir: opts.ComponentsDir,
		reporter:      opts.Reporter,
		logger:        opts.Logger,
		dryRun:        opts.DryRun,
	}
	if o.componentsDir == "" {
		o.componentsDir = defs.ComponentsDir
	}
	if o.reporter == nil {
		o.reporter = NoOpReporter{}
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o
}

// Execute validates req and dispatches on its kind.
func (o *Orchestrator) Execute(ctx context.Context, req models.ScaffoldRequest) (*Result, error) {
	if err := req.Validate(); err != nil {
		return &Result{State: StateIdle, Kind: req.Kind, DryRun: o.dryRun}, err
	}
	if req.Kind == models.KindPage {
		return o.CreatePage(ctx, req.Name, req.ModulePath, req.AppFlavor)
	}
	return o.CreateComponent(ctx, req)
}

// CreatePage creates <entry>/<modulePath>/pages/<name>/ from the flavor's
// page template and registers pages/<name>/<name> in the owning bundle.
// Files are copied before the manifest is updated; a manifest failure is
// returned with the copied files left in place.
func (o *Orchestrator) CreatePage(ctx context.Context, name, modulePath, flavor string) (*Result, error) {
	res := &Result{State: StateIdle, Kind: models.KindPage, DryRun: o.dryRun}

	set, err := o.templates.Resolve(flavor, defs.PageTemplateDir)
	if err != nil {
		return res, err
	}
	o.advance(res, StateTemplateResolved)

	dest, err := fsutil.Join(o.entry, modulePath, defs.PagesDir, name)
	if err != nil {
		return res, err
	}
	res.Dest = dest
	if fsutil.Exists(dest) {
		return res, fmt.Errorf("%w: %s", ErrPageAlreadyExists, dest)
	}
	entry := manifest.PageEntry(name)
	res.ManifestEntry = path.Join(modulePath, entry)
	o.advance(res, StateDestinationValidated)

	if err := o.materialize(ctx, res, set, name); err != nil || o.dryRun {
		return res, err
	}

	if err := o.manifest.AppendPage(name, modulePath); err != nil {
		return res, fmt.Errorf("register page: %w", err)
	}
	if err := o.manifest.Save(o.entry); err != nil {
		return res, err
	}
	o.advance(res, StateManifestUpdated)

	o.logger.Info("page created", "dest", dest, "entry", res.ManifestEntry, "files", len(res.Files))
	o.advance(res, StateReported)
	return res, nil
}

// CreateComponent creates the component directory for req's scope from
// the flavor's component template. The manifest is not touched.
func (o *Orchestrator) CreateComponent(ctx context.Context, req models.ScaffoldRequest) (*Result, error) {
	res := &Result{State: StateIdle, Kind: models.KindComponent, DryRun: o.dryRun}

	set, err := o.templates.Resolve(req.AppFlavor, defs.ComponentTemplateDir)
	if err != nil {
		return res, err
	}
	o.advance(res, StateTemplateResolved)

	dest, err := o.componentDest(req)
	if err != nil {
		return res, err
	}
	res.Dest = dest
	if fsutil.Exists(dest) {
		return res, fmt.Errorf("%w: %s", ErrComponentAlreadyExists, dest)
	}
	o.advance(res, StateDestinationValidated)

	if err := o.materialize(ctx, res, set, req.Name); err != nil || o.dryRun {
		return res, err
	}

	o.logger.Info("component created", "dest", dest, "scope", req.ComponentScope, "files", len(res.Files))
	o.advance(res, StateReported)
	return res, nil
}

func (o *Orchestrator) componentDest(req models.ScaffoldRequest) (string, error) {
	switch req.ComponentScope {
	case models.ScopeGlobal:
		return fsutil.Join(o.entry, o.componentsDir, req.Name)
	case models.ScopeModule:
		return fsutil.Join(o.entry, req.ParentModule, o.componentsDir, req.Name)
	case models.ScopePage:
		if req.ParentPage == nil {
			return "", fmt.Errorf("%w: page component needs a parent page", models.ErrInvalidRequest)
		}
		return fsutil.Join(o.entry, req.ParentPage.Root, defs.PagesDir, req.ParentPage.Page, o.componentsDir, req.Name)
	}
	return "", fmt.Errorf("%w: invalid component scope %q", models.ErrInvalidRequest, req.ComponentScope)
}

// materialize creates res.Dest and copies set into it as <name><ext>.
// In a dry run it only fills res.Files with the planned paths.
func (o *Orchestrator) materialize(ctx context.Context, res *Result, set *template.FileSet, name string) error {
	base := filepath.Join(res.Dest, name)
	planned := make([]string, len(set.Files))
	for i, f := range set.Files {
		planned[i] = base + path.Ext(f)
	}
	o.reporter.Planned(planned)

	if o.dryRun {
		res.Files = planned
		o.logger.Debug("dry run", "dest", res.Dest, "files", planned)
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := fsutil.EnsureDir(res.Dest); err != nil {
		return err
	}
	o.advance(res, StateDirectoryCreated)

	written, err := fsutil.CopyBatch(set.FS, set.Dir, set.Files, base, o.reporter.FileCopied)
	res.Files = written
	if err != nil {
		return fmt.Errorf("copy template files: %w", err)
	}
	o.advance(res, StateFilesCopied)
	return nil
}

func (o *Orchestrator) advance(res *Result, s State) {
	res.State = s
	o.logger.Debug("scaffold step", "state", s.String(), "dest", res.Dest)
	o.reporter.Step(s)
}
