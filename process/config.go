package process

import (
	"github.com/kbukum/gocmd/resilience"
	"github.com/kbukum/gocmd/validation"
)

// DefaultShellPath is the shell used when Run is called without arguments.
const DefaultShellPath = "/bin/sh"

// Config configures a Runner.
type Config struct {
	// Name identifies this runner in logs; it is the logger component name.
	Name string `yaml:"name,omitempty" mapstructure:"name"`
	// ShellPath is the POSIX shell invoked as `<ShellPath> -c <script>`.
	ShellPath string `yaml:"shell_path,omitempty" mapstructure:"shell_path" validate:"required,startswith=/"`
	// StrictPathCheck makes Start verify that the executable exists before
	// launching it, reporting NOT_FOUND instead of LAUNCH_FAILED.
	StrictPathCheck bool `yaml:"strict_path_check" mapstructure:"strict_path_check"`
	// MaxConcurrent caps the number of Run calls executing at once. 0 means
	// no limit. Start and Collect are not limited.
	MaxConcurrent int `yaml:"max_concurrent" mapstructure:"max_concurrent" validate:"gte=0"`
	// LaunchRetry retries process creation when the kernel refuses it
	// transiently (EAGAIN, ENOMEM, ETXTBSY). Other launch errors fail at once.
	LaunchRetry resilience.RetryConfig `yaml:"launch_retry" mapstructure:"launch_retry"`
}

// DefaultConfig returns the configuration used by the package-level functions.
func DefaultConfig() Config {
	cfg := Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset fields.
func (c *Config) ApplyDefaults() {
	if c.Name == "" {
		c.Name = "process"
	}
	if c.ShellPath == "" {
		c.ShellPath = DefaultShellPath
	}
	c.LaunchRetry.ApplyDefaults()
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.Validate(c)
}
