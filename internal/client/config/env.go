package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvBaseURL             = "STOREFRONT_BASE_URL"
	EnvCategoryPath        = "STOREFRONT_CATEGORY_PATH"
	EnvRequestTimeout      = "STOREFRONT_REQUEST_TIMEOUT"
	EnvPerPage             = "STOREFRONT_PER_PAGE"
	EnvAllPerPage          = "STOREFRONT_ALL_PER_PAGE"
	EnvMaxPages            = "STOREFRONT_MAX_PAGES"
	EnvInitialPage         = "STOREFRONT_INITIAL_PAGE"
	EnvLoadAll             = "STOREFRONT_LOAD_ALL"
	EnvActiveOnly          = "STOREFRONT_ACTIVE_ONLY"
	EnvAutoLoad            = "STOREFRONT_AUTO_LOAD"
	EnvRefreshSchedule     = "STOREFRONT_REFRESH_SCHEDULE"
	EnvOnlineCheckInterval = "STOREFRONT_ONLINE_CHECK_INTERVAL"
	EnvLogLevel            = "STOREFRONT_LOG_LEVEL"
	EnvLogFormat           = "STOREFRONT_LOG_FORMAT"
)

// dotenvFiles are loaded before the environment is read. Variables already
// set in the process environment win over the file.
var dotenvFiles = []string{".env"}

// parseEnv overlays Config with STOREFRONT_* environment variables.
// Malformed numeric, boolean or duration values panic.
func parseEnv(cfg *Config) {
	for _, f := range dotenvFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				panic(fmt.Errorf("load %s: %w", f, err))
			}
		}
	}

	envString(EnvBaseURL, &cfg.BaseURL)
	envString(EnvCategoryPath, &cfg.CategoryPath)
	envDuration(EnvRequestTimeout, &cfg.RequestTimeout)
	envInt(EnvPerPage, &cfg.PerPage)
	envInt(EnvAllPerPage, &cfg.AllPerPage)
	envInt(EnvMaxPages, &cfg.MaxPages)
	envInt(EnvInitialPage, &cfg.InitialPage)
	envBool(EnvLoadAll, &cfg.LoadAll)
	envBool(EnvActiveOnly, &cfg.ActiveOnly)
	envBool(EnvAutoLoad, &cfg.AutoLoad)
	envString(EnvRefreshSchedule, &cfg.RefreshSchedule)
	envDuration(EnvOnlineCheckInterval, &cfg.OnlineCheckInterval)
	envString(EnvLogLevel, &cfg.LogLevel)
	envString(EnvLogFormat, &cfg.LogFormat)
}

func envString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func envInt(key string, dst *int) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = n
}

func envBool(key string, dst *bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = b
}

func envDuration(key string, dst *time.Duration) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Errorf("%s: %w", key, err))
	}
	*dst = d
}
