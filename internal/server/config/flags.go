package config

import (
	"flag"
	"os"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags:
//
//	-a string         bind address (e.g., ":8089")
//	-prefix string    extra mount path (e.g., "/public/api")
//	-f string         fixture file
//	-n int            default page size
//	-delay duration   artificial response delay (e.g., "12s")
//	-log-level string
//	-log-format string
//
// os.Args is filtered with flagx.FilterArgs first. Parse errors panic.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-prefix", "-f", "-n", "-delay", "-log-level", "-log-format"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.PathPrefix, "prefix", config.PathPrefix, "extra mount path of the catalog endpoint")
	fs.StringVar(&config.FixturePath, "f", config.FixturePath, "categories fixture (JSON array)")
	fs.IntVar(&config.DefaultPerPage, "n", config.DefaultPerPage, "default page size")
	fs.DurationVar(&config.ResponseDelay, "delay", config.ResponseDelay, "artificial response delay")
	fs.StringVar(&config.LogLevel, "log-level", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "log-format", config.LogFormat, "log format (text|json)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
