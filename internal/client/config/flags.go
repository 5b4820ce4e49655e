package config

import (
	"flag"
	"os"
	"time"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/flagx"
)

var knownFlags = []string{
	"-u", "-t", "-p", "-all-per-page", "-max-pages", "-page",
	"-all", "-active", "-auto", "-refresh", "-i", "-log-level", "-log-format",
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-u string        API base URL
//	-t duration      request timeout (e.g. 10s)
//	-p int           page size in paged mode
//	-all-per-page int page size used when aggregating
//	-max-pages int   aggregation safety bound
//	-page int        initial page
//	-all bool        start by aggregating every page
//	-active bool     show only active categories
//	-auto bool       load on start
//	-refresh string  cron spec of the scheduled refetch
//	-i int           online check interval in seconds
//	-log-level string, -log-format string
//
// Boolean flags take the -name=value form. os.Args is filtered with
// flagx.FilterArgs so unknown arguments are ignored. Parse errors panic.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.BaseURL, "u", cfg.BaseURL, "API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.IntVar(&cfg.PerPage, "p", cfg.PerPage, "categories per page")
	fs.IntVar(&cfg.AllPerPage, "all-per-page", cfg.AllPerPage, "categories per page when loading all")
	fs.IntVar(&cfg.MaxPages, "max-pages", cfg.MaxPages, "maximum pages fetched when loading all")
	fs.IntVar(&cfg.InitialPage, "page", cfg.InitialPage, "initial page")
	fs.BoolVar(&cfg.LoadAll, "all", cfg.LoadAll, "load every page on start")
	fs.BoolVar(&cfg.ActiveOnly, "active", cfg.ActiveOnly, "show only active categories")
	fs.BoolVar(&cfg.AutoLoad, "auto", cfg.AutoLoad, "load categories on start")
	fs.StringVar(&cfg.RefreshSchedule, "refresh", cfg.RefreshSchedule, "cron spec of the scheduled refetch")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format (text|json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "i" {
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
}
