package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/modu-ai/mpgen/internal/defs"
)

// SubPackage is one entry of the subPackages array.
type SubPackage struct {
	Root  string
	Pages []string

	raw object // the full entry, for keys other than root and pages
}

// Manifest is the in-memory form of app.json.
type Manifest struct {
	pages       []string
	subPackages []SubPackage
	hasSubs     bool

	doc object // every top-level key in file order
}

// Path returns the location of app.json under entryDir.
func Path(entryDir string) string {
	return filepath.Join(entryDir, defs.AppJSON)
}

// Load reads and validates <entryDir>/app.json.
// Any failure wraps ErrManifestNotFound.
func Load(entryDir string) (*Manifest, error) {
	p := Path(entryDir)
	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestNotFound, p, err)
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrManifestNotFound, p, err)
	}
	return m, nil
}

// utf8BOM is written by some Windows editors; Save drops it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Parse builds a Manifest from raw app.json bytes.
func Parse(data []byte) (*Manifest, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if err := validateShape(data); err != nil {
		return nil, err
	}

	doc, err := decodeObject(data)
	if err != nil {
		return nil, fmt.Errorf("parse app.json: %w", err)
	}

	m := &Manifest{doc: doc}

	rawPages, _ := doc.get(defs.KeyPages)
	if err := json.Unmarshal(rawPages, &m.pages); err != nil {
		return nil, fmt.Errorf("parse pages: %w", err)
	}
	if m.pages == nil {
		m.pages = []string{}
	}

	rawSubs, ok := doc.get(defs.KeySubPackages)
	if !ok {
		return m, nil
	}
	m.hasSubs = true

	var entries []json.RawMessage
	if err := json.Unmarshal(rawSubs, &entries); err != nil {
		return nil, fmt.Errorf("parse subPackages: %w", err)
	}
	for i, entry := range entries {
		obj, err := decodeObject(entry)
		if err != nil {
			return nil, fmt.Errorf("parse subPackages[%d]: %w", i, err)
		}
		sp := SubPackage{raw: obj}
		rawRoot, _ := obj.get(defs.KeyRoot)
		if err := json.Unmarshal(rawRoot, &sp.Root); err != nil {
			return nil, fmt.Errorf("parse subPackages[%d].root: %w", i, err)
		}
		rawSubPages, _ := obj.get(defs.KeyPages)
		if err := json.Unmarshal(rawSubPages, &sp.Pages); err != nil {
			return nil, fmt.Errorf("parse subPackages[%d].pages: %w", i, err)
		}
		if sp.Pages == nil {
			sp.Pages = []string{}
		}
		m.subPackages = append(m.subPackages, sp)
	}

	return m, nil
}

// Pages returns a copy of the main bundle page list.
func (m *Manifest) Pages() []string {
	return slices.Clone(m.pages)
}

// SubPackages returns a copy of the sub-package list.
func (m *Manifest) SubPackages() []SubPackage {
	out := make([]SubPackage, len(m.subPackages))
	for i, sp := range m.subPackages {
		out[i] = SubPackage{Root: sp.Root, Pages: slices.Clone(sp.Pages)}
	}
	return out
}

// PageEntry returns the manifest path registered for a page named name.
func PageEntry(name string) string {
	return defs.PagesDir + "/" + name + "/" + name
}

// AppendPage registers pages/{name}/{name}. An empty modulePath targets
// the main bundle; otherwise the first sub-package whose root equals
// modulePath receives the entry. On error the manifest is unchanged.
func (m *Manifest) AppendPage(name, modulePath string) error {
	entry := PageEntry(name)

	idx := -1
	if modulePath != "" {
		for i := range m.subPackages {
			if m.subPackages[i].Root == modulePath {
				idx = i
				break
			}
		}
		if idx == -1 {
			return fmt.Errorf("%w: %s", ErrModuleNotFound, modulePath)
		}
	}

	if m.hasPage(idx, entry) {
		return fmt.Errorf("%w: %s", ErrDuplicatePage, entry)
	}

	if idx == -1 {
		m.pages = append(m.pages, entry)
		return nil
	}
	m.subPackages[idx].Pages = append(m.subPackages[idx].Pages, entry)
	return nil
}

// hasPage reports whether entry is already listed in the bundle at idx
// (-1 = main bundle).
func (m *Manifest) hasPage(idx int, entry string) bool {
	if idx == -1 {
		return slices.Contains(m.pages, entry)
	}
	return slices.Contains(m.subPackages[idx].Pages, entry)
}

// Marshal renders the manifest as pretty-printed JSON. Keys keep their
// original order; pages and subPackages carry the in-memory values.
func (m *Manifest) Marshal() ([]byte, error) {
	doc := slices.Clone(m.doc)

	pages, err := marshal(m.pages)
	if err != nil {
		return nil, err
	}
	doc.set(defs.KeyPages, pages)

	if m.hasSubs {
		entries := make([]json.RawMessage, len(m.subPackages))
		for i, sp := range m.subPackages {
			obj := slices.Clone(sp.raw)
			subPages, err := marshal(sp.Pages)
			if err != nil {
				return nil, err
			}
			obj.set(defs.KeyPages, subPages)
			enc, err := obj.encode()
			if err != nil {
				return nil, err
			}
			entries[i] = enc
		}
		subs, err := marshal(entries)
		if err != nil {
			return nil, err
		}
		doc.set(defs.KeySubPackages, subs)
	}

	compact, err := doc.encode()
	if err != nil {
		return nil, err
	}
	return pretty(compact)
}

// Save writes the manifest to <entryDir>/app.json, replacing the whole
// file atomically. Failures wrap ErrWriteFailed; the file on disk is left
// as it was.
func (m *Manifest) Save(entryDir string) error {
	data, err := m.Marshal()
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrWriteFailed, err)
	}
	p := Path(entryDir)
	if err := atomicWrite(p, data); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWriteFailed, p, err)
	}
	return nil
}

// atomicWrite writes data to a file atomically using temp file + os.Rename.
// The original file mode is kept when the file already exists.
func atomicWrite(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if st, err := os.Stat(path); err == nil {
		mode = st.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".app-json-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	return os.Rename(tmpName, path)
}
