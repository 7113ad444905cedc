package config

import (
	"errors"
	"fmt"
)

// Validate checks structural validity of a configuration. Plugin names are
// resolved against the actual plugin set by the weaver; here we only require
// a well-formed, non-empty pipeline.
func Validate(cfg *Config) error {
	if len(cfg.Plugins) == 0 {
		return errors.New("plugins: at least one weaving plugin is required")
	}
	for i, p := range cfg.Plugins {
		if p.Name == "" {
			return fmt.Errorf("plugins[%d]: plugin name must not be empty", i)
		}
	}
	return nil
}
