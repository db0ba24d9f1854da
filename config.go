package lattice

import "github.com/agiangrant/lattice/retained"

// Config is the engine configuration, loadable from lattice.toml.
type Config = retained.Config

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return retained.DefaultConfig()
}

// LoadConfig reads path, falling back to defaults when it does not exist.
func LoadConfig(path string) (Config, error) {
	return retained.LoadConfig(path)
}

// NewHost creates a layout host for cfg.
func NewHost(cfg Config) *retained.Host {
	return retained.NewHost(cfg)
}
