package client

import (
	"context"
	"sync"
)

// User-facing load failure messages.
const (
	ListErrorMessage   = "Failed to load articles. Please try again later."
	DetailErrorMessage = "Failed to load article. Please try again later."
)

// ListState is a snapshot of the article list view.
type ListState struct {
	Loading  bool
	Error    string
	Category string // "" means all categories
	Articles []Article
}

// ListView holds the article list state across loads. Each Load call
// supersedes any load still in flight: the older request's context is
// cancelled and its result, should it still arrive, is discarded, so
// the state always reflects the most recent request.
type ListView struct {
	fetcher Fetcher

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	state  ListState
}

// NewListView returns a ListView backed by the given fetcher.
func NewListView(f Fetcher) *ListView {
	return &ListView{fetcher: f}
}

// State returns a snapshot of the current view state.
func (v *ListView) State() ListState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// begin marks a new load for the given category and returns its
// generation and context. Any in-flight load is cancelled.
func (v *ListView) begin(ctx context.Context, category string) (uint64, context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		v.cancel()
	}
	ctx, v.cancel = context.WithCancel(ctx)

	v.gen++
	v.state.Loading = true
	v.state.Error = ""
	v.state.Category = category
	return v.gen, ctx
}

// finish applies the result of load gen, unless a newer load has started.
func (v *ListView) finish(gen uint64, arts []Article, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen {
		// A newer request owns the state now.
		return
	}

	v.state.Loading = false
	if err != nil {
		v.state.Error = ListErrorMessage
		v.state.Articles = nil
		return
	}
	v.state.Articles = arts
}

// Load fetches the list for category ("" for all) and applies the
// result unless a newer Load has started in the meantime. It returns
// the resulting state snapshot.
func (v *ListView) Load(ctx context.Context, category string) ListState {
	gen, ctx := v.begin(ctx, category)
	arts, err := v.fetcher.Articles(ctx, category)
	v.finish(gen, arts, err)
	return v.State()
}

// DetailState is a snapshot of the article detail view.
type DetailState struct {
	Loading bool
	Error   string
	ID      int64
	Article *Article
}

// DetailView holds the detail page state with the same last-request-wins
// behavior as ListView.
type DetailView struct {
	fetcher Fetcher

	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
	state  DetailState
}

// NewDetailView returns a DetailView backed by the given fetcher.
func NewDetailView(f Fetcher) *DetailView {
	return &DetailView{fetcher: f}
}

// State returns a snapshot of the current view state.
func (v *DetailView) State() DetailState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *DetailView) begin(ctx context.Context, id int64) (uint64, context.Context) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		v.cancel()
	}
	ctx, v.cancel = context.WithCancel(ctx)

	v.gen++
	v.state.Loading = true
	v.state.Error = ""
	v.state.ID = id
	v.state.Article = nil
	return v.gen, ctx
}

func (v *DetailView) finish(gen uint64, art *Article, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if gen != v.gen {
		return
	}

	v.state.Loading = false
	if err != nil {
		v.state.Error = DetailErrorMessage
		return
	}
	v.state.Article = art
}

// Load fetches one article and applies the result unless a newer Load
// has started in the meantime. It returns the resulting state snapshot.
func (v *DetailView) Load(ctx context.Context, id int64) DetailState {
	gen, ctx := v.begin(ctx, id)
	art, err := v.fetcher.Article(ctx, id)
	v.finish(gen, art, err)
	return v.State()
}
