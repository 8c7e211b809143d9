package app

import (
	"fmt"

	"github.com/kbukum/gocmd/config"
	"github.com/kbukum/gocmd/observability"
	"github.com/kbukum/gocmd/process"
)

const serviceName = "gocmd"

// Config is the gocmd configuration file layout.
type Config struct {
	config.ServiceConfig `yaml:",inline" mapstructure:",squash"`

	Process       process.Config       `yaml:"process" mapstructure:"process"`
	Observability observability.Config `yaml:"observability" mapstructure:"observability"`
}

// ApplyDefaults fills unset fields. A CLI defaults to production and warn
// level so per-run log lines stay off the terminal unless asked for.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = serviceName
	}
	if c.Environment == "" {
		c.Environment = "production"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "warn"
	}
	c.ServiceConfig.ApplyDefaults()
	c.Process.ApplyDefaults()
	c.Observability.ApplyDefaults(c.Name)
	if c.Version != "" && c.Observability.ServiceVersion == "dev" {
		c.Observability.ServiceVersion = c.Version
	}
}

// Validate validates every section.
func (c *Config) Validate() error {
	if err := c.ServiceConfig.Validate(); err != nil {
		return err
	}
	if err := c.Process.Validate(); err != nil {
		return fmt.Errorf("config.process: %w", err)
	}
	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("config.observability: %w", err)
	}
	return nil
}
