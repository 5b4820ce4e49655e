// Package server wires the catalog stub: configuration, the fixture-backed
// store, the chi router and the HTTP listener with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/server/catalog"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/server/config"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *catalog.Server
}

func NewApp(c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level, c.LogFormat, os.Stdout)

	categories := catalog.DefaultFixture()
	if c.FixturePath != "" {
		categories, err = catalog.LoadFixture(c.FixturePath)
		if err != nil {
			return nil, fmt.Errorf("fixture load error: %w", err)
		}
	}

	return newApp(c, logger, categories), nil
}

func newApp(c *config.Config, logger logging.Logger, categories []models.Category) *App {
	store := catalog.NewStore(categories)
	handler := catalog.NewHandler(store, logger, c.DefaultPerPage, c.ResponseDelay)
	router := catalog.NewRouter(handler, logger, c.PathPrefix)

	return &App{
		config: c,
		logger: logger,
		server: catalog.NewServer(c.EndpointAddr, router, logger),
	}
}

// initSignalHandler cancels the returned context on SIGINT, SIGTERM or SIGQUIT.
func (app *App) initSignalHandler(ctx context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
}

// Run blocks until the server stops or a termination signal arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := app.initSignalHandler(ctx)
	defer stop()

	app.logger.Info(ctx, "Starting app...", "address", app.config.EndpointAddr, "prefix", app.config.PathPrefix)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return app.server.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		app.logger.Error(ctx, "catalog server failed", "error", err)
		return err
	}
	app.logger.Info(context.Background(), "App stopped")
	return nil
}
