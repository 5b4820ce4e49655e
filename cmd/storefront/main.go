package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/cli"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/config"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}
	// stdout belongs to the REPL
	logger := logging.New(level, cfg.LogFormat, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
