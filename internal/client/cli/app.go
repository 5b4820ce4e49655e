package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/client"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/config"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/fallback"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/refresh"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/retrieval"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/services"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
)

type Mode string

const (
	ModeOffline  Mode = "offline"
	ModeOnline   Mode = "online"
	ModeDisabled Mode = "disabled"
)

// pingTimeout bounds a single online-status probe.
const pingTimeout = 3 * time.Second

type App struct {
	config     *config.Config
	logger     logging.Logger
	categories services.CategoryService
	retriever  *retrieval.Retriever
	items      ItemSource
	scheduler  *refresh.Scheduler
	in         io.Reader

	mu   sync.Mutex
	mode Mode
}

// NewApp wires the envelope client, the category service, the retriever and
// the optional refresh schedule from c.
func NewApp(c *config.Config, logger logging.Logger) (*App, error) {
	apiClient, err := client.NewHTTPClient(client.HTTPConfig{
		Endpoint: c.Endpoint(),
		Timeout:  c.RequestTimeout,
		Logger:   logger,
	})
	if err != nil {
		return nil, err
	}

	svc := services.NewCategoryService(apiClient, logger, c.MaxPages)

	a := &App{
		config:     c,
		logger:     logger,
		categories: svc,
		items:      NoItems{},
		in:         os.Stdin,
	}
	a.retriever = retrieval.NewRetriever(svc, logger, retrieval.Options{
		PerPage:     c.PerPage,
		AllPerPage:  c.AllPerPage,
		InitialPage: c.InitialPage,
		LoadAll:     c.LoadAll,
		ActiveOnly:  c.ActiveOnly,
		Catalog:     fallback.Default(),
		OnChange:    a.onViewChange,
	})

	if c.RefreshSchedule != "" {
		a.scheduler, err = refresh.NewScheduler(c.RefreshSchedule, a.retriever, logger)
		if err != nil {
			return nil, err
		}
	}

	return a, nil
}

// SetItemSource replaces the per-category item collaborator.
func (a *App) SetItemSource(s ItemSource) {
	if s == nil {
		s = NoItems{}
	}
	a.items = s
}

func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(context.Background(), fmt.Sprintf("Switched to %s mode", mode))
	}
}

func (a *App) onViewChange(v retrieval.View) {
	a.logger.Debug(context.Background(), "catalog view changed",
		"status", string(v.Status), "mode", v.Mode.String(), "page", v.Page, "fallback", v.Fallback)
}

// Run starts the background workers, performs the initial load when
// configured and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.scheduler != nil {
		a.scheduler.Start()
		defer a.scheduler.Stop()
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if a.config.AutoLoad {
		printlnFn(renderView(a.retriever.Start(ctx), terminalWidth()))
	}

	a.Root(ctx)
}

// StartOnlineStatusWatcher probes the catalog endpoint every interval and
// switches between online and offline mode.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) services.ConnectionReport {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	report := a.categories.TestConnection(pctx)
	cancel()

	if report.Reachable {
		a.setMode(ModeOnline)
	} else {
		a.setMode(ModeOffline)
	}
	return report
}
