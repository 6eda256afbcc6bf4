package config

import "log/slog"

// Config is the resolved mpgen configuration.
type Config struct {
	// Entry is the project directory holding app.json.
	Entry string `yaml:"entry"`

	// TemplateRoot replaces the built-in templates when set.
	TemplateRoot string `yaml:"template_root"`

	// ComponentsDir is the directory name components are created under,
	// relative to the entry, module or page directory.
	ComponentsDir string `yaml:"components_dir"`

	Flavors        []string `yaml:"flavors"`
	TemplateIgnore []string `yaml:"template_ignore"`
	LogLevel       string   `yaml:"log_level"`
	NoColor        bool     `yaml:"no_color"`
}

// SlogLevel converts LogLevel. Unknown values map to slog.LevelWarn;
// Validate rejects them before this is called.
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn
	}
	return level
}
