package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/modu-ai/mpgen/internal/defs"
)

// FilePath returns the location of the configuration file in dir.
func FilePath(dir string) string {
	return filepath.Join(filepath.Clean(dir), defs.ConfigYAML)
}

// LoadFile reads .mpgen.yaml from dir over compiled defaults. A missing
// file yields the defaults and loaded == false.
func LoadFile(dir string) (cfg *Config, loaded bool, err error) {
	cfg = NewDefaultConfig()

	path := FilePath(dir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", defs.ConfigYAML, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w: %v", defs.ConfigYAML, ErrInvalidYAML, err)
	}
	return cfg, true, nil
}
