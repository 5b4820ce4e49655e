package main

import (
	"context"
	"log"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/server"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
