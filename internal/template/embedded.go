package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed all:templates
var embeddedTemplates embed.FS

// EmbeddedSource is the display root of the built-in templates.
const EmbeddedSource = "embedded"

// EmbeddedTemplates returns the built-in template tree rooted at the
// flavor directories.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	return sub, nil
}

// Source returns the template filesystem and its display root: the
// embedded templates when root is empty, os.DirFS(root) otherwise.
func Source(root string) (fs.FS, string, error) {
	if root == "" {
		fsys, err := EmbeddedTemplates()
		if err != nil {
			return nil, "", err
		}
		return fsys, EmbeddedSource, nil
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, "", fmt.Errorf("%w: %s", ErrTemplateNotFound, root)
	}
	return os.DirFS(root), root, nil
}
