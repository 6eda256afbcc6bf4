// Package template locates and enumerates the file sets that mpgen copies
// into a project. Sources are either the built-in embedded templates or a
// template root on disk laid out as <root>/<flavor>/<page|component>/.
package template

import "errors"

// Sentinel errors for template resolution.
var (
	// ErrTemplateNotFound indicates the <root>/<flavor>/<kind> directory
	// does not exist.
	ErrTemplateNotFound = errors.New("template: template directory not found")

	// ErrEmptyTemplate indicates the template directory holds no files.
	ErrEmptyTemplate = errors.New("template: template directory is empty")
)
