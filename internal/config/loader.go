package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// ConfigFileName is the required config file base name (docloom.yml or
// docloom.yaml) in the configuration root.
const ConfigFileName = "docloom"

// MissingError reports that no config file was found in the searched
// directory. Its absence is a fatal precondition: no file is processed.
type MissingError struct {
	Dir string
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("required configuration file %s.yml not found in %s", ConfigFileName, e.Dir)
}

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load reads the config file and environment overrides.
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a loader for the given configuration root. The root is
// threaded explicitly; nothing here consults the process working directory.
func NewLoader(rootDir string) Loader {
	return &loader{rootDir: rootDir}
}

// Load reads docloom.yml from the configuration root, with DOCLOOM_*
// environment variables taking precedence over file values. A missing file
// is a *MissingError.
func (l *loader) Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(ConfigFileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(l.rootDir)

	v.SetEnvPrefix("DOCLOOM")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, &MissingError{Dir: l.rootDir}
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", v.ConfigFileUsed(), err)
	}

	return &cfg, nil
}
