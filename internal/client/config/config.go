package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
)

// Config holds runtime settings for the storefront client.
//
// Fields:
//   - BaseURL, CategoryPath: the catalog endpoint is BaseURL+CategoryPath.
//   - RequestTimeout: bound of a single envelope request.
//   - PerPage / AllPerPage: page size in paged mode / when aggregating.
//   - MaxPages: aggregation safety bound.
//   - InitialPage, LoadAll, ActiveOnly, AutoLoad: first retrieval setup.
//   - RefreshSchedule: cron spec of the scheduled refetch, "" disables it.
//   - OnlineCheckInterval: how often the client probes the endpoint.
//   - LogLevel, LogFormat: slog level name and "text" or "json".
type Config struct {
	BaseURL             string
	CategoryPath        string
	RequestTimeout      time.Duration
	PerPage             int
	AllPerPage          int
	MaxPages            int
	InitialPage         int
	LoadAll             bool
	ActiveOnly          bool
	AutoLoad            bool
	RefreshSchedule     string
	OnlineCheckInterval time.Duration
	LogLevel            string
	LogFormat           string
}

const DefaultBaseURL = "https://royalblue-chamois-327906.hostingersite.com/public/api"

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = DefaultBaseURL
	c.CategoryPath = "/business/category"
	c.RequestTimeout = 10 * time.Second
	c.PerPage = 10
	c.AllPerPage = 50
	c.MaxPages = 100
	c.InitialPage = 1
	c.LoadAll = true
	c.ActiveOnly = true
	c.AutoLoad = true
	c.RefreshSchedule = ""
	c.OnlineCheckInterval = 30 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// Endpoint returns the full catalog endpoint URL.
func (c *Config) Endpoint() string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + strings.TrimLeft(c.CategoryPath, "/")
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Endpoint())
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base url %q", c.BaseURL)
	}

	var errs []error
	if c.RequestTimeout <= 0 {
		errs = append(errs, errors.New("request timeout must be positive"))
	}
	if c.PerPage < 1 || c.AllPerPage < 1 {
		errs = append(errs, errors.New("page sizes must be at least 1"))
	}
	if c.MaxPages < 1 {
		errs = append(errs, errors.New("max pages must be at least 1"))
	}
	if c.InitialPage < 1 {
		errs = append(errs, errors.New("initial page must be at least 1"))
	}
	if c.OnlineCheckInterval <= 0 {
		errs = append(errs, errors.New("online check interval must be positive"))
	}
	if s := strings.TrimSpace(c.RefreshSchedule); s != "" {
		if _, err := cron.ParseStandard(s); err != nil {
			errs = append(errs, fmt.Errorf("refresh schedule: %w", err))
		}
	}
	return errors.Join(errs...)
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment (including a .env file) and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
