package config

import (
	"encoding/json"
	"os"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/flagx"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/timex"
)

// JsonConfig is the DTO for JSON unmarshalling. Only keys present in the
// file override the current values.
type JsonConfig struct {
	EndpointAddr   *string         `json:"endpoint_addr"`
	PathPrefix     *string         `json:"path_prefix"`
	FixturePath    *string         `json:"fixture_path"`
	DefaultPerPage *int            `json:"default_per_page"`
	ResponseDelay  *timex.Duration `json:"response_delay"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
}

// parseJson loads configuration values from the file given with -c/-config
// (or $STOREFRONT_CONFIG). It panics on read or decode errors.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != nil {
		config.EndpointAddr = *c.EndpointAddr
	}
	if c.PathPrefix != nil {
		config.PathPrefix = *c.PathPrefix
	}
	if c.FixturePath != nil {
		config.FixturePath = *c.FixturePath
	}
	if c.DefaultPerPage != nil {
		config.DefaultPerPage = *c.DefaultPerPage
	}
	if c.ResponseDelay != nil {
		config.ResponseDelay = c.ResponseDelay.Duration
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
	if c.LogFormat != nil {
		config.LogFormat = *c.LogFormat
	}
}
