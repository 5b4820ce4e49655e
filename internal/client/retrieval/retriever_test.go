package retrieval

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/fallback"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/models"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/client/services"
	"github.com/Acontplus-S-A-S/mikunaWeb/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fake fetcher ----

type fakeFetcher struct {
	mu sync.Mutex

	pages map[int]models.PageResult
	all   models.CollectionResult

	// gates block FetchPage for a page until the channel is closed;
	// started is signalled when the blocked call begins.
	gates   map[int]chan struct{}
	started chan int

	pageCalls []int
	allCalls  int
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		pages:   map[int]models.PageResult{},
		gates:   map[int]chan struct{}{},
		started: make(chan int, 8),
	}
}

func (f *fakeFetcher) FetchPage(_ context.Context, page, _ int) models.PageResult {
	f.mu.Lock()
	f.pageCalls = append(f.pageCalls, page)
	gate := f.gates[page]
	res, ok := f.pages[page]
	f.mu.Unlock()

	if gate != nil {
		f.started <- page
		<-gate
	}
	if !ok {
		return models.PageResult{Outcome: models.OutcomeFailure, Message: "no page scripted"}
	}
	return res
}

func (f *fakeFetcher) FetchAll(context.Context, int) models.CollectionResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.allCalls++
	return f.all
}

func (f *fakeFetcher) calls() ([]int, int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int(nil), f.pageCalls...), f.allCalls
}

// ---- helpers ----

func cats(names ...string) []models.Category {
	out := make([]models.Category, 0, len(names))
	for i, n := range names {
		out = append(out, models.Category{ID: models.CategoryID(fmt.Sprint(i + 1)), Name: n, IsActive: true})
	}
	return out
}

func pageOf(current, last int, c []models.Category) models.PageResult {
	p := models.Pagination{CurrentPage: current, LastPage: last, PerPage: 10, Total: 10 * last}
	if current < last {
		p.HasNextPage = true
		p.NextPageURL = fmt.Sprintf("?page=%d", current+1)
	}
	if current > 1 {
		p.HasPrevPage = true
		p.PrevPageURL = fmt.Sprintf("?page=%d", current-1)
	}
	return models.PageResult{
		Outcome: models.OutcomeSuccess,
		Page:    &models.Page{Categories: c, Pagination: p},
		Message: "ok",
	}
}

func newPaged(f Fetcher, opts Options) *Retriever {
	return NewRetriever(f, logging.Discard(), opts)
}

func categoryNames(v View) []string {
	out := make([]string, 0, len(v.Categories))
	for _, c := range v.Categories {
		out = append(out, c.Name)
	}
	return out
}

// ---- single loads ----

func TestLoad_SinglePageSuccess(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 1, cats("Desayunos", "Platos", "Bebidas"))
	r := newPaged(f, Options{})

	v := r.Load(context.Background(), 1)

	assert.Equal(t, models.StatusSuccess, v.Status)
	assert.False(t, v.Fallback)
	assert.False(t, v.Loading)
	assert.Len(t, v.Categories, 3)
	assert.True(t, v.HasCategories())
	assert.False(t, v.IsEmpty())
	assert.Nil(t, v.Catalog)
	require.NotNil(t, v.Pagination)
	assert.False(t, v.HasNextPage())
}

func TestLoad_NoDataIsEmpty(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = models.PageResult{Outcome: models.OutcomeNoData, Message: "no categories"}
	r := newPaged(f, Options{})

	v := r.Load(context.Background(), 1)

	assert.Equal(t, models.StatusEmpty, v.Status)
	assert.True(t, v.Fallback)
	assert.True(t, v.IsEmpty())
	assert.False(t, v.HasCategories())
	assert.Equal(t, fallback.Default(), v.Catalog)
	assert.Equal(t, "no categories", v.Message)
	assert.Empty(t, v.Error)
}

func TestLoad_TimeoutIsError(t *testing.T) {
	f := newFakeFetcher()
	f.all = models.CollectionResult{Success: false, Message: services.MsgTimeout}
	r := newPaged(f, Options{LoadAll: true})

	v := r.Start(context.Background())

	assert.Equal(t, models.StatusError, v.Status)
	assert.True(t, v.Fallback)
	assert.True(t, v.HasError())
	assert.Equal(t, fallback.Default(), v.Catalog)
	assert.Equal(t, services.MsgTimeout, v.Error)
	assert.Empty(t, v.Categories)
}

func TestLoad_SupersededResultIsDropped(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 2, cats("stale"))
	f.pages[2] = pageOf(2, 2, cats("fresh"))
	gate := make(chan struct{})
	f.gates[1] = gate

	var changes []View
	var changesMu sync.Mutex
	r := newPaged(f, Options{OnChange: func(v View) {
		changesMu.Lock()
		changes = append(changes, v)
		changesMu.Unlock()
	}})

	firstDone := make(chan View, 1)
	go func() { firstDone <- r.Load(context.Background(), 1) }()

	select {
	case <-f.started:
	case <-time.After(2 * time.Second):
		t.Fatal("first load never started")
	}

	second := r.Load(context.Background(), 2)
	require.Equal(t, []string{"fresh"}, categoryNames(second))

	close(gate)
	var first View
	select {
	case first = <-firstDone:
	case <-time.After(2 * time.Second):
		t.Fatal("first load never returned")
	}

	// the late caller sees the current state, not its own stale result
	assert.Equal(t, []string{"fresh"}, categoryNames(first))
	cur := r.View()
	assert.Equal(t, models.StatusSuccess, cur.Status)
	assert.Equal(t, []string{"fresh"}, categoryNames(cur))
	assert.Equal(t, 2, cur.Pagination.CurrentPage)

	changesMu.Lock()
	defer changesMu.Unlock()
	for _, c := range changes {
		assert.NotEqual(t, []string{"stale"}, categoryNames(c), "stale snapshot was published")
	}
}

func TestReset_DropsInFlightResult(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 1, cats("late"))
	gate := make(chan struct{})
	f.gates[1] = gate
	r := newPaged(f, Options{})

	done := make(chan struct{})
	go func() {
		r.Load(context.Background(), 1)
		close(done)
	}()
	<-f.started

	v := r.Reset()
	assert.Equal(t, models.StatusIdle, v.Status)

	close(gate)
	<-done

	cur := r.View()
	assert.Equal(t, models.StatusIdle, cur.Status)
	assert.Empty(t, cur.Categories)
	assert.Nil(t, cur.Pagination)
}

// ---- lifecycle ----

func TestNewRetriever_StartsIdle(t *testing.T) {
	r := newPaged(newFakeFetcher(), Options{})
	v := r.View()

	assert.Equal(t, models.StatusIdle, v.Status)
	assert.False(t, v.Loading)
	assert.False(t, v.Fallback)
	assert.Empty(t, v.Categories)
}

func TestLoadingSnapshotIsPublished(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 1, cats("a"))

	var statuses []models.Status
	r := newPaged(f, Options{OnChange: func(v View) {
		statuses = append(statuses, v.Status)
		if v.Status == models.StatusLoading {
			assert.True(t, v.Loading)
			assert.False(t, v.Fallback)
			assert.Nil(t, v.Pagination)
		}
	}})

	r.Load(context.Background(), 1)
	r.Reset()

	assert.Equal(t, []models.Status{models.StatusLoading, models.StatusSuccess, models.StatusIdle}, statuses)
}

func TestOnChange_StaleLoadingDoesNotOverwriteNewerSuccess(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 2, cats("first"))
	f.pages[2] = pageOf(2, 2, cats("second"))

	entered := make(chan struct{})
	release := make(chan struct{})
	blocked := false

	var mu sync.Mutex
	var seen []View
	r := newPaged(f, Options{OnChange: func(v View) {
		if !blocked && v.Status == models.StatusLoading && v.Page == 1 {
			blocked = true
			close(entered)
			<-release
		}
		mu.Lock()
		seen = append(seen, v)
		mu.Unlock()
	}})

	firstDone := make(chan struct{})
	go func() {
		r.Load(context.Background(), 1)
		close(firstDone)
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("first loading snapshot never delivered")
	}

	secondDone := make(chan View, 1)
	go func() { secondDone <- r.Load(context.Background(), 2) }()

	select {
	case v := <-secondDone:
		assert.Equal(t, models.StatusSuccess, v.Status)
	case <-time.After(2 * time.Second):
		t.Fatal("a blocked renderer stalled the newer load")
	}

	close(release)
	select {
	case <-firstDone:
	case <-time.After(2 * time.Second):
		t.Fatal("first load never returned")
	}

	cur := r.View()
	require.Equal(t, models.StatusSuccess, cur.Status)
	require.Equal(t, 2, cur.Page)

	mu.Lock()
	defer mu.Unlock()
	require.NotEmpty(t, seen)
	last := seen[len(seen)-1]
	assert.Equal(t, models.StatusSuccess, last.Status)
	assert.Equal(t, 2, last.Page)
	assert.Equal(t, []string{"second"}, categoryNames(last))
}

func TestOnChange_SupersededSnapshotIsNotDelivered(t *testing.T) {
	var got []models.Status
	r := newPaged(newFakeFetcher(), Options{OnChange: func(v View) {
		got = append(got, v.Status)
	}})

	r.Reset()
	// a snapshot from an earlier request arriving late is ignored
	r.notify(0, View{Status: models.StatusLoading})

	assert.Equal(t, []models.Status{models.StatusIdle}, got)
}

func TestStart_UsesConfiguredMode(t *testing.T) {
	t.Run("paged", func(t *testing.T) {
		f := newFakeFetcher()
		f.pages[3] = pageOf(3, 4, cats("c"))
		r := newPaged(f, Options{InitialPage: 3})

		v := r.Start(context.Background())
		pages, all := f.calls()

		assert.Equal(t, []int{3}, pages)
		assert.Zero(t, all)
		assert.Equal(t, ModePaged, v.Mode)
		assert.Equal(t, 3, v.Page)
	})

	t.Run("all", func(t *testing.T) {
		f := newFakeFetcher()
		f.all = models.CollectionResult{Success: true, Categories: cats("a", "b"), Total: 2}
		r := newPaged(f, Options{LoadAll: true})

		v := r.Start(context.Background())
		pages, all := f.calls()

		assert.Empty(t, pages)
		assert.Equal(t, 1, all)
		assert.Equal(t, ModeAll, v.Mode)
		assert.Nil(t, v.Pagination)
		assert.Equal(t, []string{"a", "b"}, categoryNames(v))
	})
}

func TestActiveOnly(t *testing.T) {
	f := newFakeFetcher()
	c := cats("on", "off")
	c[1].IsActive = false
	f.all = models.CollectionResult{Success: true, Categories: c, Total: 2}

	v := newPaged(f, Options{ActiveOnly: true}).LoadAll(context.Background())
	assert.Equal(t, []string{"on"}, categoryNames(v))

	f.all = models.CollectionResult{Success: true, Categories: c[1:], Total: 1}
	v = newPaged(f, Options{ActiveOnly: true}).LoadAll(context.Background())
	assert.Equal(t, models.StatusEmpty, v.Status)
	assert.True(t, v.Fallback)
}

func TestTruncatedIsSuccess(t *testing.T) {
	f := newFakeFetcher()
	f.all = models.CollectionResult{Success: true, Categories: cats("a"), Total: 1, Truncated: true}

	v := newPaged(f, Options{}).LoadAll(context.Background())

	assert.Equal(t, models.StatusSuccess, v.Status)
	assert.True(t, v.Truncated)
	assert.False(t, v.Fallback)
}

// ---- navigation ----

func TestNavigation(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 3, cats("p1"))
	f.pages[2] = pageOf(2, 3, cats("p2"))
	f.pages[3] = pageOf(3, 3, cats("p3"))
	r := newPaged(f, Options{})
	ctx := context.Background()

	_, ok := r.PrevPage(ctx)
	assert.False(t, ok, "idle has no pagination")

	r.Load(ctx, 1)

	_, ok = r.PrevPage(ctx)
	assert.False(t, ok)

	v, ok := r.NextPage(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{"p2"}, categoryNames(v))

	v, ok = r.NextPage(ctx)
	require.True(t, ok)
	assert.Equal(t, 3, v.Pagination.CurrentPage)

	_, ok = r.NextPage(ctx)
	assert.False(t, ok)

	v, ok = r.PrevPage(ctx)
	require.True(t, ok)
	assert.Equal(t, 2, v.Page)

	_, ok = r.GoToPage(ctx, 0)
	assert.False(t, ok)
	_, ok = r.GoToPage(ctx, 4)
	assert.False(t, ok)

	v, ok = r.GoToPage(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, []string{"p1"}, categoryNames(v))

	pages, _ := f.calls()
	assert.Equal(t, []int{1, 2, 3, 2, 1}, pages)
}

func TestNavigation_NoopInAllMode(t *testing.T) {
	f := newFakeFetcher()
	f.all = models.CollectionResult{Success: true, Categories: cats("a")}
	r := newPaged(f, Options{})
	ctx := context.Background()

	r.LoadAll(ctx)

	_, ok := r.NextPage(ctx)
	assert.False(t, ok)
	_, ok = r.GoToPage(ctx, 1)
	assert.False(t, ok)
	pages, _ := f.calls()
	assert.Empty(t, pages)
}

// ---- refetch ----

func TestRefetch_RepeatsLastSuccessfulTarget(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 2, cats("p1"))
	f.pages[2] = pageOf(2, 2, cats("p2"))
	r := newPaged(f, Options{})
	ctx := context.Background()

	r.Load(ctx, 1)
	r.NextPage(ctx)

	// page 2 now fails; the refetch target stays page 2
	f.mu.Lock()
	f.pages[2] = models.PageResult{Outcome: models.OutcomeFailure, Message: services.MsgConnection}
	f.mu.Unlock()

	v := r.Refetch(ctx)
	assert.Equal(t, models.StatusError, v.Status)
	assert.Equal(t, services.MsgConnection, v.Error)

	f.mu.Lock()
	f.pages[2] = pageOf(2, 2, cats("p2 again"))
	f.mu.Unlock()

	v = r.Refetch(ctx)
	assert.Equal(t, models.StatusSuccess, v.Status)
	assert.Equal(t, []string{"p2 again"}, categoryNames(v))

	pages, _ := f.calls()
	assert.Equal(t, []int{1, 2, 2, 2}, pages)
}

func TestRefetch_DefaultsToInitialTarget(t *testing.T) {
	f := newFakeFetcher()
	f.all = models.CollectionResult{Success: false, Message: "boom"}
	r := newPaged(f, Options{LoadAll: true})

	r.Refetch(context.Background())

	pages, all := f.calls()
	assert.Empty(t, pages)
	assert.Equal(t, 1, all)
}

func TestRefetch_FollowsModeSwitch(t *testing.T) {
	f := newFakeFetcher()
	f.pages[1] = pageOf(1, 1, cats("p1"))
	f.all = models.CollectionResult{Success: true, Categories: cats("x", "y")}
	r := newPaged(f, Options{})
	ctx := context.Background()

	r.Load(ctx, 1)
	r.LoadAll(ctx)
	v := r.Refetch(ctx)

	assert.Equal(t, ModeAll, v.Mode)
	_, all := f.calls()
	assert.Equal(t, 2, all)
}

// ---- view helpers ----

func TestViewHelpers(t *testing.T) {
	c := cats("a", "b", "c")
	c[1].IsActive = false
	p := models.Pagination{CurrentPage: 1, LastPage: 2, Total: 17, HasNextPage: true}

	v := View{Status: models.StatusSuccess, Categories: c, Pagination: &p}

	got, ok := v.CategoryByID("2")
	require.True(t, ok)
	assert.Equal(t, "b", got.Name)
	_, ok = v.CategoryByID("99")
	assert.False(t, ok)

	assert.Len(t, v.ActiveCategories(), 2)
	assert.Equal(t, 17, v.TotalCategories())
	assert.True(t, v.HasNextPage())
	assert.False(t, v.HasPrevPage())

	v.Pagination = nil
	assert.Equal(t, 3, v.TotalCategories())
	assert.False(t, v.HasNextPage())
}

func TestConcurrentLoadsSettleOnLastIssued(t *testing.T) {
	f := newFakeFetcher()
	for p := 1; p <= 20; p++ {
		f.pages[p] = pageOf(p, 20, cats(fmt.Sprintf("p%d", p)))
	}
	r := newPaged(f, Options{})

	var wg sync.WaitGroup
	for p := 1; p <= 20; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			r.Load(context.Background(), p)
		}(p)
	}
	wg.Wait()

	v := r.View()
	// whichever request was issued last owns the state, and it settled
	assert.Equal(t, models.StatusSuccess, v.Status)
	assert.Len(t, v.Categories, 1)
	assert.Equal(t, fmt.Sprintf("p%d", v.Pagination.CurrentPage), v.Categories[0].Name)
}
