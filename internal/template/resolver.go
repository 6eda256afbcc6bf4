package template

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultIgnore lists file patterns never treated as template files.
var DefaultIgnore = []string{".DS_Store", "*.swp", "*~", "Thumbs.db"}

// FileSet is the ordered list of files under one template directory.
// Copy order follows Files.
type FileSet struct {
	Flavor string
	Kind   string
	Dir    string   // slash path of the directory inside FS
	Files  []string // base names in enumeration order
	FS     fs.FS
}

// Location returns the directory as shown to users, prefixed with the
// resolver's display root.
func (s *FileSet) Location(root string) string {
	return path.Join(root, s.Dir)
}

// Resolver finds template file sets inside a filesystem.
type Resolver struct {
	fsys   fs.FS
	root   string
	ignore []string
	logger *slog.Logger
}

// NewResolver creates a Resolver over fsys. root is only used in messages
// (the embedded source reports "embedded"). ignore holds doublestar
// patterns matched against file base names.
func NewResolver(fsys fs.FS, root string, ignore []string, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Resolver{fsys: fsys, root: root, ignore: ignore, logger: logger}
}

// Root returns the display root of the template source.
func (r *Resolver) Root() string {
	return r.root
}

// Resolve enumerates <flavor>/<kind>. Sub-directories and ignored names
// are skipped; the remaining order is the filesystem's listing order.
func (r *Resolver) Resolve(flavor, kind string) (*FileSet, error) {
	dir := path.Join(flavor, kind)
	display := path.Join(r.root, dir)

	if !fs.ValidPath(dir) || flavor == "" || kind == "" {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, display)
	}

	info, err := fs.Stat(r.fsys, dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, display)
	}

	entries, err := fs.ReadDir(r.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read template directory %s: %w", display, err)
	}

	set := &FileSet{Flavor: flavor, Kind: kind, Dir: dir, FS: r.fsys}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if r.ignored(entry.Name()) {
			r.logger.Debug("skipping ignored template file", "dir", display, "file", entry.Name())
			continue
		}
		set.Files = append(set.Files, entry.Name())
	}

	if len(set.Files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyTemplate, display)
	}
	return set, nil
}

// Flavors lists the flavor directories available in the source.
func (r *Resolver) Flavors() ([]string, error) {
	entries, err := fs.ReadDir(r.fsys, ".")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, r.root)
		}
		return nil, fmt.Errorf("read template root %s: %w", r.root, err)
	}
	var flavors []string
	for _, entry := range entries {
		if entry.IsDir() {
			flavors = append(flavors, entry.Name())
		}
	}
	return flavors, nil
}

func (r *Resolver) ignored(name string) bool {
	for _, pattern := range r.ignore {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			r.logger.Warn("invalid template ignore pattern", "pattern", pattern, "error", err)
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
