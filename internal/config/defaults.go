package config

import (
	"slices"

	"github.com/modu-ai/mpgen/internal/defs"
)

// Default value constants.
const (
	DefaultEntry         = "."
	DefaultComponentsDir = defs.ComponentsDir
	DefaultLogLevel      = "warn"
)

// DefaultFlavors lists the app flavors offered when none are configured.
var DefaultFlavors = []string{"alipay", "weapp"}

// DefaultTemplateIgnore lists file patterns never copied from a template.
var DefaultTemplateIgnore = []string{".DS_Store", "*.swp", "*~", "Thumbs.db"}

// NewDefaultConfig returns a Config with compiled defaults.
func NewDefaultConfig() *Config {
	return &Config{
		Entry:          DefaultEntry,
		ComponentsDir:  DefaultComponentsDir,
		Flavors:        slices.Clone(DefaultFlavors),
		TemplateIgnore: slices.Clone(DefaultTemplateIgnore),
		LogLevel:       DefaultLogLevel,
	}
}
