// Package scaffold turns a resolved scaffold request into files on disk and
// a manifest entry: resolve the template, validate the destination, create
// the directory, copy the files and commit the manifest.
package scaffold

import (
	"errors"

	"github.com/modu-ai/mpgen/internal/manifest"
	"github.com/modu-ai/mpgen/internal/template"
)

// Sentinel errors for scaffold operations.
var (
	// ErrPageAlreadyExists indicates the page directory is already present.
	ErrPageAlreadyExists = errors.New("scaffold: page already exists")

	// ErrComponentAlreadyExists indicates the component directory is already present.
	ErrComponentAlreadyExists = errors.New("scaffold: component already exists")
)

// IsFatal reports whether err is a failed precondition of the whole run
// (missing manifest or template) rather than a per-request failure.
func IsFatal(err error) bool {
	return errors.Is(err, manifest.ErrManifestNotFound) || errors.Is(err, template.ErrTemplateNotFound)
}
