package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/modu-ai/mpgen/internal/defs"
)

// FlagKeys maps command-line flag names to configuration keys.
var FlagKeys = map[string]string{
	"entry":     "entry",
	"templates": "template_root",
	"log-level": "log_level",
	"no-color":  "no_color",
}

// Load resolves the configuration for a run started in dir: compiled
// defaults, then .mpgen.yaml, then MPGEN_* environment variables, then
// flags that were set explicitly. The result is validated.
func Load(dir string, flags *pflag.FlagSet) (*Config, error) {
	cfg, loaded, err := LoadFile(dir)
	if err != nil {
		return nil, err
	}
	slog.Debug("config file", "path", FilePath(dir), "loaded", loaded)

	if err := ApplyOverrides(cfg, flags); err != nil {
		return nil, err
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides layers environment variables and changed flags over cfg.
// List values in the environment are space separated.
func ApplyOverrides(cfg *Config, flags *pflag.FlagSet) error {
	v := viper.New()
	v.SetEnvPrefix(defs.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	// File values become viper defaults so env and flags win over them.
	v.SetDefault("entry", cfg.Entry)
	v.SetDefault("template_root", cfg.TemplateRoot)
	v.SetDefault("components_dir", cfg.ComponentsDir)
	v.SetDefault("flavors", cfg.Flavors)
	v.SetDefault("template_ignore", cfg.TemplateIgnore)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("no_color", cfg.NoColor)

	if flags != nil {
		for name, key := range FlagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	cfg.Entry = v.GetString("entry")
	cfg.TemplateRoot = v.GetString("template_root")
	cfg.ComponentsDir = v.GetString("components_dir")
	cfg.Flavors = v.GetStringSlice("flavors")
	cfg.TemplateIgnore = v.GetStringSlice("template_ignore")
	cfg.LogLevel = strings.ToLower(v.GetString("log_level"))
	cfg.NoColor = v.GetBool("no_color")
	return nil
}
