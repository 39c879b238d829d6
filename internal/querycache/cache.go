// Package querycache keeps recent search answers keyed by their exact query
// text and collapses concurrent fetches of the same query.
package querycache

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/llehouerou/trialsearch/internal/trials"
)

const (
	DefaultTTL  = 2 * time.Minute
	DefaultSize = 128
)

// Entry is a cached answer. ID identifies the answer: a fresh hit returns
// the same ID so consumers can tell the result set did not change.
type Entry struct {
	ID        uint64
	Query     string
	Page      trials.Page
	FetchedAt time.Time
}

// FetchFunc performs the remote search on a cache miss.
type FetchFunc func(ctx context.Context, query string) (trials.Page, error)

// Option configures a Cache.
type Option func(*Cache)

// WithTTL sets how long an entry is considered fresh.
func WithTTL(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithSize sets the maximum number of cached queries.
func WithSize(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.size = n
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// Cache is safe for concurrent use.
type Cache struct {
	fetch FetchFunc
	ttl   time.Duration
	size  int
	now   func() time.Time

	mu     sync.Mutex
	lru    *lru.Cache[string, Entry]
	nextID uint64

	group singleflight.Group
}

// New creates a cache in front of fetch.
func New(fetch FetchFunc, opts ...Option) (*Cache, error) {
	c := &Cache{
		fetch: fetch,
		ttl:   DefaultTTL,
		size:  DefaultSize,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	l, err := lru.New[string, Entry](c.size)
	if err != nil {
		return nil, fmt.Errorf("create lru: %w", err)
	}
	c.lru = l
	return c, nil
}

// Lookup returns the fresh entry for query, if any.
func (c *Cache) Lookup(query string) (Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lookupLocked(query)
}

func (c *Cache) lookupLocked(query string) (Entry, bool) {
	e, ok := c.lru.Get(query)
	if !ok {
		return Entry{}, false
	}
	if c.now().Sub(e.FetchedAt) >= c.ttl {
		c.lru.Remove(query)
		return Entry{}, false
	}
	return e, true
}

// Fetch returns the fresh entry for query, fetching it on a miss.
// Concurrent calls for the same query share one fetch. Errors are not cached.
// The context only bounds this caller's wait; a shared fetch keeps the
// context of the call that started it.
func (c *Cache) Fetch(ctx context.Context, query string) (Entry, error) {
	if e, ok := c.Lookup(query); ok {
		return e, nil
	}

	ch := c.group.DoChan(query, func() (any, error) {
		if e, ok := c.Lookup(query); ok {
			return e, nil
		}
		page, err := c.fetch(ctx, query)
		if err != nil {
			return Entry{}, err
		}
		return c.store(query, page), nil
	})

	select {
	case <-ctx.Done():
		return Entry{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return Entry{}, res.Err
		}
		return res.Val.(Entry), nil
	}
}

func (c *Cache) store(query string, page trials.Page) Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	e := Entry{
		ID:        c.nextID,
		Query:     query,
		Page:      page,
		FetchedAt: c.now(),
	}
	c.lru.Add(query, e)
	return e
}
