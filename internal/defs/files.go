package defs

// Common file names used across the project.
const (
	// AppJSON is the mini-program navigation manifest.
	AppJSON = "app.json"

	// ConfigYAML is the per-project mpgen configuration file.
	ConfigYAML = ".mpgen.yaml"
)

// Manifest keys understood by mpgen. Every other key is round-tripped.
const (
	KeyPages       = "pages"
	KeySubPackages = "subPackages"
	KeyRoot        = "root"
)

// Directory names used when placing generated artifacts.
const (
	// PagesDir holds one directory per page, relative to a bundle root.
	PagesDir = "pages"

	// ComponentsDir is the default components directory name.
	ComponentsDir = "components"
)

// Template kind directories under <templateRoot>/<flavor>/.
const (
	PageTemplateDir      = "page"
	ComponentTemplateDir = "component"
)

// EnvPrefix is the prefix of environment variable overrides (MPGEN_ENTRY, ...).
const EnvPrefix = "MPGEN"
