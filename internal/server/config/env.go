package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays CATALOGSTUB_* variables, after loading .env when it
// exists. Malformed values panic.
func parseEnv(config *Config) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			panic(fmt.Errorf("load .env: %w", err))
		}
	}

	if v, ok := os.LookupEnv("CATALOGSTUB_ADDR"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("CATALOGSTUB_PATH_PREFIX"); ok {
		config.PathPrefix = v
	}
	if v, ok := os.LookupEnv("CATALOGSTUB_FIXTURE"); ok {
		config.FixturePath = v
	}
	if v := os.Getenv("CATALOGSTUB_PER_PAGE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			panic(fmt.Errorf("CATALOGSTUB_PER_PAGE: %w", err))
		}
		config.DefaultPerPage = n
	}
	if v := os.Getenv("CATALOGSTUB_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(fmt.Errorf("CATALOGSTUB_DELAY: %w", err))
		}
		config.ResponseDelay = d
	}
	if v, ok := os.LookupEnv("CATALOGSTUB_LOG_LEVEL"); ok {
		config.LogLevel = v
	}
	if v, ok := os.LookupEnv("CATALOGSTUB_LOG_FORMAT"); ok {
		config.LogFormat = v
	}
}
