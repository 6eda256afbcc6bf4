// Package manifest loads, indexes, and persists the mini-program
// navigation manifest (app.json). Keys other than pages and subPackages
// are carried through unchanged and in their original order.
package manifest

import "errors"

// Sentinel errors for manifest operations.
var (
	// ErrManifestNotFound indicates app.json is absent, unparsable, or not
	// shaped like a navigation manifest. Nothing can proceed without it.
	ErrManifestNotFound = errors.New("manifest: app.json not found or unreadable")

	// ErrModuleNotFound indicates no sub-package has the requested root.
	ErrModuleNotFound = errors.New("manifest: sub-package not found")

	// ErrDuplicatePage indicates the page path is already registered.
	ErrDuplicatePage = errors.New("manifest: page already registered")

	// ErrWriteFailed indicates app.json could not be written back.
	ErrWriteFailed = errors.New("manifest: failed to write app.json")
)
