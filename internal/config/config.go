package config

// Config is the weaving pipeline configuration loaded from docloom.yml.
type Config struct {
	Plugins []PluginConfig `yaml:"plugins" mapstructure:"plugins"`
}

// PluginConfig names one weaving plugin and its options, in pipeline order.
type PluginConfig struct {
	Name    string            `yaml:"name" mapstructure:"name"`
	Options map[string]string `yaml:"options" mapstructure:"options"`
}

// Default returns the canonical pipeline: NAME first, then VERSION, the
// sections found in the source document, AUTHORS, and the license notice.
// The config file is still mandatory at runtime; Default documents the
// expected shape and backs tests.
func Default() *Config {
	return &Config{
		Plugins: []PluginConfig{
			{Name: "name"},
			{Name: "version"},
			{Name: "leftovers"},
			{Name: "authors"},
			{Name: "license"},
		},
	}
}
