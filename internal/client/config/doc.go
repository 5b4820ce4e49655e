// Package config loads runtime configuration for the storefront client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected with -c / -config or
//     $STOREFRONT_CONFIG.
//  3. STOREFRONT_* environment variables (see parseEnv); a .env file in the
//     working directory is loaded first without overriding the process env.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "10s"
// or integer nanoseconds:
//
//	{
//	  "base_url": "https://example.com/public/api",
//	  "request_timeout": "10s",
//	  "per_page": 10,
//	  "load_all": true,
//	  "refresh_schedule": "@every 5m",
//	  "online_check_interval": "30s"
//	}
package config
