// Package search coordinates queries with their results: it decides when a
// request is needed, serves fresh answers from the cache, and makes sure only
// the answer to the latest query reaches the store.
package search

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/trialsearch/internal/querycache"
	"github.com/llehouerou/trialsearch/internal/state"
	"github.com/llehouerou/trialsearch/internal/trials"
)

// DefaultRequestTimeout bounds one fetch including retries.
const DefaultRequestTimeout = 15 * time.Second

// Searcher performs the remote disease search.
type Searcher interface {
	Search(ctx context.Context, query string) (trials.Page, error)
}

// ResolvedMsg carries the outcome of a fetch back to the event loop.
type ResolvedMsg struct {
	Seq   uint64
	Query string
	Entry querycache.Entry
	Err   error
}

// Options configures a Coordinator.
type Options struct {
	StaleTime      time.Duration
	CacheSize      int
	RequestTimeout time.Duration
	Logger         *zap.Logger
	Clock          func() time.Time
}

// Coordinator issues searches and publishes their state.
//
// Search and Apply are called from the event loop; the returned commands
// may run on any goroutine.
type Coordinator struct {
	store   state.ResultWriter
	cache   *querycache.Cache
	timeout time.Duration
	logger  *zap.Logger
	now     func() time.Time

	seq   atomic.Uint64
	calls atomic.Int64
}

// New creates a coordinator backed by searcher.
func New(searcher Searcher, store state.ResultWriter, opts Options) (*Coordinator, error) {
	c := &Coordinator{
		store:   store,
		timeout: opts.RequestTimeout,
		logger:  opts.Logger,
		now:     opts.Clock,
	}
	if c.timeout <= 0 {
		c.timeout = DefaultRequestTimeout
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}
	if c.now == nil {
		c.now = time.Now
	}

	fetch := func(ctx context.Context, query string) (trials.Page, error) {
		n := c.calls.Add(1)
		c.logger.Debug("api call", zap.Int64("count", n), zap.String("query", query))
		return searcher.Search(ctx, query)
	}

	cache, err := querycache.New(fetch,
		querycache.WithTTL(opts.StaleTime),
		querycache.WithSize(opts.CacheSize),
		querycache.WithClock(c.now),
	)
	if err != nil {
		return nil, err
	}
	c.cache = cache
	return c, nil
}

// Search starts resolving query. It returns nil when the answer is already
// known (empty query or fresh cache entry) and a fetch command otherwise.
func (c *Coordinator) Search(query string) tea.Cmd {
	seq, ok := c.begin(query)
	if !ok {
		return nil
	}
	return func() tea.Msg {
		return c.fetch(context.Background(), seq, query)
	}
}

// Resolve runs a search to completion and returns the resulting state.
func (c *Coordinator) Resolve(ctx context.Context, query string) state.RequestState {
	seq, ok := c.begin(query)
	if ok {
		c.apply(c.fetch(ctx, seq, query))
	}
	return c.store.ResultState()
}

func (c *Coordinator) begin(query string) (uint64, bool) {
	seq := c.seq.Add(1)

	if query == "" {
		c.store.SetResultState(state.Idle())
		return seq, false
	}

	if e, ok := c.cache.Lookup(query); ok {
		c.logger.Debug("cache hit", zap.String("query", query), zap.Uint64("id", e.ID))
		c.publish(e, true)
		return seq, false
	}

	c.store.SetResultState(state.Loading(query))
	return seq, true
}

func (c *Coordinator) fetch(ctx context.Context, seq uint64, query string) ResolvedMsg {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	e, err := c.cache.Fetch(ctx, query)
	return ResolvedMsg{Seq: seq, Query: query, Entry: e, Err: err}
}

// Apply publishes a completed fetch. Answers to anything but the latest
// search, or to a query the store no longer holds, are dropped and Apply
// returns false.
func (c *Coordinator) Apply(msg ResolvedMsg) bool {
	if latest := c.seq.Load(); msg.Seq != latest {
		c.logger.Debug("stale response discarded",
			zap.String("query", msg.Query),
			zap.Uint64("seq", msg.Seq),
			zap.Uint64("latest", latest),
		)
		return false
	}
	// Immediate input moves Query ahead of the next search.
	if current := c.store.Query(); msg.Query != current {
		c.logger.Debug("response for a previous query discarded",
			zap.String("query", msg.Query),
			zap.String("current", current),
		)
		return false
	}
	c.apply(msg)
	return true
}

// apply publishes msg without checking it against the input. Resolve has no
// input to check against.
func (c *Coordinator) apply(msg ResolvedMsg) {
	switch {
	case msg.Err == nil:
		c.publish(msg.Entry, false)
	case errors.Is(msg.Err, trials.ErrMalformedResponse):
		c.logger.Warn("malformed response treated as empty",
			zap.String("query", msg.Query), zap.Error(msg.Err))
		empty := state.ResultSet{Query: msg.Query}
		c.store.SetResultState(state.Succeeded(empty, c.now(), false))
		c.store.SetDiseaseRecord(nil)
	default:
		c.logger.Error("search failed", zap.String("query", msg.Query), zap.Error(msg.Err))
		c.store.SetResultState(state.Failed(msg.Query, msg.Err))
	}
}

func (c *Coordinator) publish(e querycache.Entry, cached bool) {
	rs := ToResultSet(e)
	c.store.SetResultState(state.Succeeded(rs, e.FetchedAt, cached))
	c.store.SetDiseaseRecord(rs.Items)
}

// Calls returns the number of remote searches issued so far.
func (c *Coordinator) Calls() int64 {
	return c.calls.Load()
}

// ToResultSet converts a cache entry into the store representation.
func ToResultSet(e querycache.Entry) state.ResultSet {
	items := make([]state.ResultItem, len(e.Page.Items))
	for i, it := range e.Page.Items {
		items[i] = state.ResultItem{
			Code:   it.Code,
			Label:  it.DisplayLabel,
			Target: it.RawName,
		}
	}
	return state.ResultSet{
		ID:         e.ID,
		Query:      e.Query,
		TotalCount: e.Page.TotalCount,
		Items:      items,
	}
}
