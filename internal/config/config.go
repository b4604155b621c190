package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration settings.
type Config struct {
	Environment string `envconfig:"VD_ENV" default:"development"`

	HTTPPort    int           `envconfig:"VD_HTTP_PORT" default:"8080"`
	HTTPTimeout time.Duration `envconfig:"VD_HTTP_TIMEOUT" default:"10m"`

	OutputDir        string        `envconfig:"VD_OUTPUT_DIR" default:"/tmp/downloads"`
	YtdlpPath        string        `envconfig:"VD_YTDLP_PATH"`
	AutoInstall      bool          `envconfig:"VD_AUTO_INSTALL" default:"false"`
	ProgressInterval time.Duration `envconfig:"VD_PROGRESS_INTERVAL" default:"100ms"`

	ShutdownTimeout time.Duration `envconfig:"VD_SHUTDOWN_TIMEOUT" default:"30s"`

	LogLevel  string `envconfig:"VD_LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"VD_LOG_FORMAT" default:"json"`
}

// Validate checks the configuration for invalid or missing values.
// Returns an error describing the first invalid setting found.
func (c *Config) Validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive: %s", c.HTTPTimeout)
	}

	if c.OutputDir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}

	if c.ProgressInterval <= 0 {
		return fmt.Errorf("progress interval must be positive: %s", c.ProgressInterval)
	}

	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported log format: %q", c.LogFormat)
	}

	return nil
}
