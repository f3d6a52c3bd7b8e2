package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kbukum/bootkit/errors"
	"github.com/kbukum/bootkit/logger"
)

// DefaultWatchdogDelay is the per-task watchdog delay applied when the
// config leaves it unset.
const DefaultWatchdogDelay = 10 * time.Second

// Config contains the construction arguments for a lifecycle coordinator.
type Config struct {
	// Name is the service name used for logging and probes.
	Name string `yaml:"name" mapstructure:"name" validate:"required"`
	// Kind selects which hook each unit contributes: "app" or "agent".
	Kind string `yaml:"kind" mapstructure:"kind" validate:"required,oneof=app agent"`
	// BaseDir is the directory unit paths are resolved against.
	BaseDir string `yaml:"base_dir" mapstructure:"base_dir"`
	// Units is the ordered list of unit paths. Order is authoritative.
	Units []string `yaml:"units" mapstructure:"units" validate:"omitempty,unique"`
	// WatchdogDelay is the advisory per-task timeout.
	WatchdogDelay time.Duration `yaml:"watchdog_delay" mapstructure:"watchdog_delay" validate:"omitempty,min=1ms"`
	// Logging configures the coordinator's logger.
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
}

// ApplyDefaults applies default values to the configuration.
func (c *Config) ApplyDefaults() {
	if c.WatchdogDelay == 0 {
		c.WatchdogDelay = DefaultWatchdogDelay
	}
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the configuration. Failures are fatal at
// construction: the bootstrap never starts.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
			f := verrs[0]
			return errors.Configuration(f.Namespace() + " failed rule " + f.Tag())
		}
		return errors.Configuration(err.Error())
	}
	if c.BaseDir != "" {
		info, err := os.Stat(c.BaseDir)
		if err != nil {
			return errors.Configuration("base_dir " + c.BaseDir + " is not accessible").WithCause(err)
		}
		if !info.IsDir() {
			return errors.Configuration("base_dir " + c.BaseDir + " is not a directory")
		}
	}
	if err := c.Logging.Validate(); err != nil {
		return errors.Configuration(err.Error())
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())
