package erpui

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/sitecrew/erpui/erpui/form"
	"github.com/sitecrew/erpui/erpui/ui"
)

// Config containing all the configuration values for a service.
type Config struct {
	Port uint16 `yaml:"port"`
	// AssetDir is served under /assets/.
	AssetDir string `yaml:"asset_dir"`
	LogLevel string `yaml:"log_level"`
	// LogFile receives JSON logs.  Empty logs to the console.
	LogFile string `yaml:"log_file"`
	// AlertDelay is how long success banners stay visible.  Zero keeps them
	// until closed.
	AlertDelay time.Duration `yaml:"alert_delay"`
	// ConfirmTitle and ConfirmMessage are used by confirmation dialogs of
	// forms that do not set their own.
	ConfirmTitle   string `yaml:"confirm_title"`
	ConfirmMessage string `yaml:"confirm_message"`
}

// DefaultConfig returns a Config with the default values.
func DefaultConfig() Config {
	return Config{
		Port:           3000,
		AssetDir:       "./assets",
		LogLevel:       "info",
		AlertDelay:     ui.DefaultDismissDelay,
		ConfirmTitle:   form.DefaultConfirmTitle,
		ConfirmMessage: form.DefaultConfirmMessage,
	}
}

// LoadConfig reads the configuration from a YAML file.  Values missing from
// the file keep their defaults; a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file: %w", err)
			}
		}
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyDefaults sets default values for unset text options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	if c.ConfirmTitle == "" {
		c.ConfirmTitle = defaults.ConfirmTitle
	}
	if c.ConfirmMessage == "" {
		c.ConfirmMessage = defaults.ConfirmMessage
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if c.Port == 0 {
		errs = errs.Append("port", errors.New("must be set"))
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		errs = errs.Append("log_level", fmt.Errorf("unknown level %q", c.LogLevel))
	}
	if c.AlertDelay < 0 {
		errs = errs.Append("alert_delay", errors.New("must not be negative"))
	}
	if c.AssetDir != "" {
		if info, err := os.Stat(c.AssetDir); err == nil && !info.IsDir() {
			errs = errs.Append("asset_dir", fmt.Errorf("%s is not a directory", c.AssetDir))
		}
	}
	return errs.ToError()
}
