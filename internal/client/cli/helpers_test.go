package cli

import (
	"context"
	"fmt"
	"sync"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/config"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/fallback"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/retrieval"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/services"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
)

// fakeService implements services.CategoryService.
type fakeService struct {
	mu     sync.Mutex
	pages  map[int]models.PageResult
	all    models.CollectionResult
	report services.ConnectionReport
	pings  int
}

func (f *fakeService) FetchPage(_ context.Context, page, _ int) models.PageResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.pages[page]; ok {
		return r
	}
	return models.PageResult{Outcome: models.OutcomeFailure, Message: services.MsgConnection}
}

func (f *fakeService) FetchAll(context.Context, int) models.CollectionResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.all
}

func (f *fakeService) FetchActive(ctx context.Context, perPage int) models.CollectionResult {
	res := f.FetchAll(ctx, perPage)
	res.Categories = services.FilterActive(res.Categories)
	return res
}

func (f *fakeService) TestConnection(context.Context) services.ConnectionReport {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pings++
	return f.report
}

func testCategories() []models.Category {
	return []models.Category{
		{ID: "1", Name: "Desayunos", Description: "Para empezar el día", IsActive: true},
		{ID: "2", Name: "Postres", Summary: "Dulces", IsActive: false},
		{ID: "3", Name: "Bebidas", ImageURL: "https://img.example/b.png", IsActive: true},
	}
}

func testPage(current, last int, cats []models.Category) models.PageResult {
	p := models.Pagination{CurrentPage: current, LastPage: last, PerPage: len(cats), Total: len(cats) * last}
	if current < last {
		p.HasNextPage, p.NextPageURL = true, fmt.Sprintf("?page=%d", current+1)
	}
	if current > 1 {
		p.HasPrevPage, p.PrevPageURL = true, fmt.Sprintf("?page=%d", current-1)
	}
	return models.PageResult{Outcome: models.OutcomeSuccess, Page: &models.Page{Categories: cats, Pagination: p}}
}

func newTestApp(svc *fakeService) *App {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ActiveOnly = false

	a := &App{
		config:     cfg,
		logger:     logging.Discard(),
		categories: svc,
		items:      NoItems{},
	}
	a.retriever = retrieval.NewRetriever(svc, a.logger, retrieval.Options{
		PerPage:     cfg.PerPage,
		AllPerPage:  cfg.AllPerPage,
		InitialPage: cfg.InitialPage,
		LoadAll:     cfg.LoadAll,
		Catalog:     fallback.Default(),
		OnChange:    a.onViewChange,
	})
	return a
}
