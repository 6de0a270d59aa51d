package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration
type Config struct {
	Host            string        `env:"HOST"`
	Port            string        `env:"PORT" envDefault:"8080"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	ContentFile     string        `env:"CONTENT_FILE"`
	ClockTimezone   string        `env:"CLOCK_TIMEZONE" envDefault:"Africa/Nairobi"`
	ClockInterval   time.Duration `env:"CLOCK_INTERVAL" envDefault:"1s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses configuration from the environment. Values from a .env file
// are already present when the binary imports godotenv/autoload.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Host = strings.TrimSpace(cfg.Host)
	cfg.Port = strings.TrimSpace(cfg.Port)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadContentFile reads only CONTENT_FILE. Commands that never listen use it
// so server settings cannot fail them.
func LoadContentFile() (string, error) {
	var c struct {
		ContentFile string `env:"CONTENT_FILE"`
	}
	if err := env.Parse(&c); err != nil {
		return "", fmt.Errorf("parse env: %w", err)
	}
	return strings.TrimSpace(c.ContentFile), nil
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var errs []error
	if n, err := strconv.Atoi(c.Port); err != nil || n < 1 || n > 65535 {
		errs = append(errs, fmt.Errorf("PORT %q is not a valid port", c.Port))
	}
	if c.ClockInterval <= 0 {
		errs = append(errs, fmt.Errorf("CLOCK_INTERVAL must be positive, got %s", c.ClockInterval))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	switch c.LogFormat {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT %q must be json or console", c.LogFormat))
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errs = append(errs, fmt.Errorf("GIN_MODE %q must be debug, release or test", c.GinMode))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// Location resolves ClockTimezone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.ClockTimezone)
	if err != nil {
		return nil, fmt.Errorf("load clock timezone %q: %w", c.ClockTimezone, err)
	}
	return loc, nil
}
