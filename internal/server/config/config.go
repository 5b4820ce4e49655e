// Package config handles configuration for the catalog stub server,
// including defaults, JSON overlay, environment and command-line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Config holds runtime settings for the catalog stub.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP endpoint.
//   - PathPrefix: extra mount point mirroring the production base path.
//   - FixturePath: JSON array of categories; empty serves the built-in set.
//   - DefaultPerPage: page size when a request omits per_page.
//   - ResponseDelay: artificial latency added to every catalog response.
//   - LogLevel, LogFormat: slog level name and "text" or "json".
type Config struct {
	EndpointAddr   string
	PathPrefix     string
	FixturePath    string
	DefaultPerPage int
	ResponseDelay  time.Duration
	LogLevel       string
	LogFormat      string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8089"
	c.PathPrefix = "/public/api"
	c.FixturePath = ""
	c.DefaultPerPage = 10
	c.ResponseDelay = 0
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error
	if c.EndpointAddr == "" {
		errs = append(errs, errors.New("endpoint address is required"))
	}
	if c.DefaultPerPage < 1 {
		errs = append(errs, errors.New("default page size must be at least 1"))
	}
	if c.ResponseDelay < 0 {
		errs = append(errs, errors.New("response delay must not be negative"))
	}
	if c.PathPrefix != "" && !strings.HasPrefix(c.PathPrefix, "/") {
		errs = append(errs, fmt.Errorf("path prefix %q must start with /", c.PathPrefix))
	}
	return errors.Join(errs...)
}
