package manifest

import (
	"slices"

	"github.com/modu-ai/mpgen/internal/fsutil"
)

// Index maps short keys (last path segment) to a sub-package root.
// Keys keep the order in which they first appear in the manifest; a later
// duplicate key overwrites the root of the earlier one.
type Index struct {
	keys  []string
	roots map[string]string
}

func newIndex() *Index {
	return &Index{roots: make(map[string]string)}
}

func (ix *Index) put(key, root string) {
	if _, ok := ix.roots[key]; !ok {
		ix.keys = append(ix.keys, key)
	}
	ix.roots[key] = root
}

// Keys returns the index keys in manifest order.
func (ix *Index) Keys() []string {
	return slices.Clone(ix.keys)
}

// Lookup returns the root stored under key.
func (ix *Index) Lookup(key string) (string, bool) {
	root, ok := ix.roots[key]
	return root, ok
}

// Len returns the number of keys.
func (ix *Index) Len() int {
	return len(ix.keys)
}

// BuildModuleIndex maps each sub-package's short key to its root.
func BuildModuleIndex(m *Manifest) *Index {
	ix := newIndex()
	for _, sp := range m.subPackages {
		ix.put(fsutil.LastSegment(sp.Root), sp.Root)
	}
	return ix
}

// BuildPageIndex maps each page's short key to the root of the bundle
// that owns it ("" for the main bundle). Main bundle pages are indexed
// first, so a sub-package page with the same key takes precedence.
func BuildPageIndex(m *Manifest) *Index {
	ix := newIndex()
	for _, p := range m.pages {
		ix.put(fsutil.LastSegment(p), "")
	}
	for _, sp := range m.subPackages {
		for _, p := range sp.Pages {
			ix.put(fsutil.LastSegment(p), sp.Root)
		}
	}
	return ix
}

// ModuleIndex is shorthand for BuildModuleIndex(m).
func (m *Manifest) ModuleIndex() *Index {
	return BuildModuleIndex(m)
}

// PageIndex is shorthand for BuildPageIndex(m).
func (m *Manifest) PageIndex() *Index {
	return BuildPageIndex(m)
}
