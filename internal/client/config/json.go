package config

import (
	"encoding/json"
	"os"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/flagx"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from a zero value, so a file only overrides
// what it sets. Durations accept "10s" or integer nanoseconds.
type JsonConfig struct {
	BaseURL             *string         `json:"base_url"`
	CategoryPath        *string         `json:"category_path"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	PerPage             *int            `json:"per_page"`
	AllPerPage          *int            `json:"all_per_page"`
	MaxPages            *int            `json:"max_pages"`
	InitialPage         *int            `json:"initial_page"`
	LoadAll             *bool           `json:"load_all"`
	ActiveOnly          *bool           `json:"active_only"`
	AutoLoad            *bool           `json:"auto_load"`
	RefreshSchedule     *string         `json:"refresh_schedule"`
	OnlineCheckInterval *timex.Duration `json:"online_check_interval"`
	LogLevel            *string         `json:"log_level"`
	LogFormat           *string         `json:"log_format"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The path comes from -c/-config, then $STOREFRONT_CONFIG; when both are
// empty nothing is loaded. Read and unmarshal errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc JsonConfig) apply(cfg *Config) {
	setIf(&cfg.BaseURL, jc.BaseURL)
	setIf(&cfg.CategoryPath, jc.CategoryPath)
	setIf(&cfg.PerPage, jc.PerPage)
	setIf(&cfg.AllPerPage, jc.AllPerPage)
	setIf(&cfg.MaxPages, jc.MaxPages)
	setIf(&cfg.InitialPage, jc.InitialPage)
	setIf(&cfg.LoadAll, jc.LoadAll)
	setIf(&cfg.ActiveOnly, jc.ActiveOnly)
	setIf(&cfg.AutoLoad, jc.AutoLoad)
	setIf(&cfg.RefreshSchedule, jc.RefreshSchedule)
	setIf(&cfg.LogLevel, jc.LogLevel)
	setIf(&cfg.LogFormat, jc.LogFormat)

	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.OnlineCheckInterval != nil {
		cfg.OnlineCheckInterval = jc.OnlineCheckInterval.Duration
	}
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
