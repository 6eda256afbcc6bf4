package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the configuration for correctness and reports every
// offending field at once.
func Validate(cfg *Config) error {
	var errs []ValidationError

	if strings.TrimSpace(cfg.Entry) == "" {
		errs = append(errs, ValidationError{Field: "entry", Message: "must not be empty"})
	}

	errs = append(errs, validateComponentsDir(cfg.ComponentsDir)...)
	errs = append(errs, validateFlavors(cfg.Flavors)...)

	for _, pattern := range cfg.TemplateIgnore {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, ValidationError{Field: "template_ignore", Message: "invalid glob pattern", Value: pattern})
		}
	}

	if !isValidLogLevel(cfg.LogLevel) {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: fmt.Sprintf("must be one of: %s", strings.Join(validLogLevels, ", ")),
			Value:   cfg.LogLevel,
		})
	}

	if len(errs) > 0 {
		return &ValidationErrors{Errors: errs}
	}
	return nil
}

func validateComponentsDir(dir string) []ValidationError {
	if dir == "" {
		return []ValidationError{{Field: "components_dir", Message: "must not be empty"}}
	}
	if filepath.IsAbs(dir) || !filepath.IsLocal(dir) {
		return []ValidationError{{Field: "components_dir", Message: "must be a relative path inside the project", Value: dir}}
	}
	return nil
}

func validateFlavors(flavors []string) []ValidationError {
	if len(flavors) == 0 {
		return []ValidationError{{Field: "flavors", Message: "at least one flavor is required"}}
	}
	var errs []ValidationError
	seen := make(map[string]bool, len(flavors))
	for _, f := range flavors {
		switch {
		case f == "" || strings.ContainsAny(f, `/\`) || f == "." || f == "..":
			errs = append(errs, ValidationError{Field: "flavors", Message: "must be a plain directory name", Value: f})
		case seen[f]:
			errs = append(errs, ValidationError{Field: "flavors", Message: "duplicate flavor", Value: f})
		}
		seen[f] = true
	}
	return errs
}

func isValidLogLevel(level string) bool {
	for _, l := range validLogLevels {
		if level == l {
			return true
		}
	}
	return false
}
