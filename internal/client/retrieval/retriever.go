// Package retrieval implements the catalog retrieval state machine:
// idle -> loading -> success | empty | error, with page navigation, refetch
// and reset. Late results of superseded requests are dropped.
package retrieval

import (
	"context"
	"sync"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/fallback"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
)

// Fetcher is the part of services.CategoryService the Retriever drives.
type Fetcher interface {
	FetchPage(ctx context.Context, page, perPage int) models.PageResult
	FetchAll(ctx context.Context, perPage int) models.CollectionResult
}

// Options configures a Retriever. Zero values select the defaults.
type Options struct {
	PerPage     int
	AllPerPage  int
	InitialPage int
	LoadAll     bool
	ActiveOnly  bool
	Catalog     fallback.Catalog
	// OnChange receives applied snapshots, outside the state lock. Calls are
	// serialised and never go backwards: a snapshot older than one already
	// delivered is dropped, and while a call is running only the newest
	// pending snapshot is kept.
	OnChange func(View)
}

const (
	defaultPerPage    = 10
	defaultAllPerPage = 50
)

// Retriever owns the retrieval state. All methods are safe for concurrent
// use; fetches run outside the lock and their results are applied only if
// no newer request or reset happened in the meantime.
type Retriever struct {
	fetcher Fetcher
	logger  logging.Logger
	opts    Options

	mu   sync.Mutex
	seq  uint64
	view View

	// refetch target: the last retrieval that completed without error
	lastMode Mode
	lastPage int

	notifyMu   sync.Mutex
	notified   uint64
	pending    *View
	delivering bool
}

// NewRetriever returns an idle Retriever.
func NewRetriever(f Fetcher, logger logging.Logger, opts Options) *Retriever {
	if opts.PerPage <= 0 {
		opts.PerPage = defaultPerPage
	}
	if opts.AllPerPage <= 0 {
		opts.AllPerPage = defaultAllPerPage
	}
	if opts.InitialPage <= 0 {
		opts.InitialPage = 1
	}
	if opts.Catalog == nil {
		opts.Catalog = fallback.Default()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	r := &Retriever{fetcher: f, logger: logger, opts: opts}
	r.lastMode, r.lastPage = r.initialTarget()
	r.view = View{Status: models.StatusIdle, Mode: r.lastMode, Page: r.lastPage}
	return r
}

func (r *Retriever) initialTarget() (Mode, int) {
	if r.opts.LoadAll {
		return ModeAll, 1
	}
	return ModePaged, r.opts.InitialPage
}

// View returns the current snapshot.
func (r *Retriever) View() View {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view
}

// Start performs the initial retrieval in the configured mode.
func (r *Retriever) Start(ctx context.Context) View {
	mode, page := r.initialTarget()
	return r.run(ctx, mode, page)
}

// Load retrieves one page.
func (r *Retriever) Load(ctx context.Context, page int) View {
	return r.run(ctx, ModePaged, page)
}

// LoadAll retrieves the aggregated collection.
func (r *Retriever) LoadAll(ctx context.Context) View {
	return r.run(ctx, ModeAll, 1)
}

// NextPage loads the following page. It is a no-op (ok=false) unless the
// current pagination reports a next page.
func (r *Retriever) NextPage(ctx context.Context) (View, bool) {
	v := r.View()
	if !v.HasNextPage() {
		return v, false
	}
	return r.Load(ctx, v.Pagination.CurrentPage+1), true
}

// PrevPage loads the preceding page. It is a no-op (ok=false) unless the
// current pagination reports a previous page.
func (r *Retriever) PrevPage(ctx context.Context) (View, bool) {
	v := r.View()
	if !v.HasPrevPage() {
		return v, false
	}
	return r.Load(ctx, v.Pagination.CurrentPage-1), true
}

// GoToPage loads page n. It is a no-op (ok=false) without pagination or
// when n is outside [1, LastPage].
func (r *Retriever) GoToPage(ctx context.Context, n int) (View, bool) {
	v := r.View()
	if v.Pagination == nil || n < 1 || n > v.Pagination.LastPage {
		return v, false
	}
	return r.Load(ctx, n), true
}

// Refetch repeats the mode and page of the last retrieval that did not
// fail, or the initial retrieval if there was none.
func (r *Retriever) Refetch(ctx context.Context) View {
	r.mu.Lock()
	mode, page := r.lastMode, r.lastPage
	r.mu.Unlock()

	return r.run(ctx, mode, page)
}

// Reset returns to idle, discarding data and pagination. Results of
// requests in flight are dropped.
func (r *Retriever) Reset() View {
	r.mu.Lock()
	r.seq++
	seq := r.seq
	r.lastMode, r.lastPage = r.initialTarget()
	r.view = View{Status: models.StatusIdle, Mode: r.lastMode, Page: r.lastPage}
	v := r.view
	r.mu.Unlock()

	r.logger.Debug(context.Background(), "retrieval reset")
	r.notify(seq, v)
	return v
}

func (r *Retriever) run(ctx context.Context, mode Mode, page int) View {
	seq, loading := r.begin(mode, page)
	r.notify(seq, loading)

	var res models.CollectionResult
	var pagination *models.Pagination

	if mode == ModeAll {
		res = r.fetcher.FetchAll(ctx, r.opts.AllPerPage)
	} else {
		pr := r.fetcher.FetchPage(ctx, page, r.opts.PerPage)
		res = pr.Collection()
		if pr.Success() {
			p := pr.Page.Pagination
			pagination = &p
		}
	}

	v, applied := r.settle(ctx, seq, mode, page, res, pagination)
	if applied {
		r.notify(seq, v)
	}
	return v
}

func (r *Retriever) begin(mode Mode, page int) (uint64, View) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.view = View{
		Status:  models.StatusLoading,
		Mode:    mode,
		Page:    page,
		Loading: true,
	}
	r.logger.Debug(context.Background(), "retrieval started", "seq", r.seq, "mode", mode.String(), "page", page)
	return r.seq, r.view
}

func (r *Retriever) settle(ctx context.Context, seq uint64, mode Mode, page int,
	res models.CollectionResult, pagination *models.Pagination) (View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if seq != r.seq {
		r.logger.Debug(ctx, "dropping superseded result", "seq", seq, "current", r.seq, "mode", mode.String(), "page", page)
		return r.view, false
	}

	d := fallback.Reconcile(res, r.opts.Catalog, r.opts.ActiveOnly)

	v := View{
		Status:     d.Status,
		Mode:       mode,
		Page:       page,
		Categories: d.Categories,
		Pagination: pagination,
		Fallback:   d.Fallback,
		Catalog:    d.Catalog,
		Message:    d.Message,
		Truncated:  res.Truncated,
	}
	if pagination != nil {
		v.Page = pagination.CurrentPage
	}
	if d.Status == models.StatusError {
		v.Error = d.Message
	} else {
		r.lastMode, r.lastPage = mode, v.Page
	}
	r.view = v

	log := r.logger.With("seq", seq, "mode", mode.String(), "page", v.Page, "status", string(v.Status))
	switch v.Status {
	case models.StatusError:
		log.Warn(ctx, "retrieval failed, showing fallback catalog", "message", v.Message)
	case models.StatusEmpty:
		log.Info(ctx, "no categories, showing fallback catalog", "message", v.Message)
	default:
		log.Info(ctx, "retrieval completed", "categories", len(v.Categories), "truncated", v.Truncated)
	}
	return v, true
}

// notify hands v (produced by request seq) to OnChange. Whoever finds no
// delivery in progress drains the pending slot; everyone else just replaces
// it and returns.
func (r *Retriever) notify(seq uint64, v View) {
	if r.opts.OnChange == nil {
		return
	}

	r.notifyMu.Lock()
	if seq < r.notified {
		r.notifyMu.Unlock()
		return
	}
	r.notified = seq
	r.pending = &v
	if r.delivering {
		r.notifyMu.Unlock()
		return
	}

	r.delivering = true
	for r.pending != nil {
		next := *r.pending
		r.pending = nil
		r.notifyMu.Unlock()
		r.opts.OnChange(next)
		r.notifyMu.Lock()
	}
	r.delivering = false
	r.notifyMu.Unlock()
}
