package main

import (
	"io"
	"os"

	"gopkg.in/yaml.v2"

	"holdem-server/internal/config"
)

// ConfigCmd prints a configuration file
type ConfigCmd struct {
	Defaults bool `kong:"help='Print the defaults instead of the effective configuration'"`
}

// Run prints the configuration as YAML
func (c *ConfigCmd) Run(cfg config.Config) error {
	return c.write(os.Stdout, cfg)
}

func (c *ConfigCmd) write(w io.Writer, cfg config.Config) error {
	if c.Defaults {
		cfg = config.DefaultConfig()
	}

	return yaml.NewEncoder(w).Encode(cfg)
}
