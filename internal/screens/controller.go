// Package screens implements the controller pattern every list-oriented view
// follows: fetch on load and on filter change, hold loading/error flags,
// mutate through the API, then unconditionally refetch. Each controller owns
// its state exclusively; nothing is shared across screens.
package screens

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/theemubin/navgurukul-placement-dashboard-sub001/internal/telemetry"

	"go.uber.org/zap"
)

var tracer = telemetry.GetTracer("placement-dashboard/screens")

// FilterMode records whether a screen filters over already-fetched rows or
// delegates to query parameters. The choice is per-screen configuration and
// deliberately not unified across screens.
type FilterMode string

const (
	FilterClient FilterMode = "client"
	FilterServer FilterMode = "server"
)

// Filter is the common filter/pagination state a screen tracks.
type Filter struct {
	Search string
	Status string
	Page   int
}

// Modal is the `{open, payload}` state object controlling a screen's modal.
type Modal[P any] struct {
	Open    bool
	Payload P
}

// Fetcher loads rows for a filter. Client-mode screens receive the zero
// filter and match locally.
type Fetcher[T any] func(ctx context.Context, filter Filter) ([]T, error)

// Matcher is the local predicate used in client filter mode.
type Matcher[T any] func(row T, filter Filter) bool

// ListController is the shared fetch → render-state → mutate → refetch core.
// Every fetch carries a monotonically increasing request token; a response is
// applied only if no newer fetch started meanwhile, so a slow stale response
// can never overwrite a newer one.
type ListController[T any] struct {
	name   string
	mode   FilterMode
	fetch  Fetcher[T]
	match  Matcher[T]
	logger *zap.Logger

	seq atomic.Uint64

	mu      sync.RWMutex
	rows    []T
	filter  Filter
	loading bool
	err     error
}

func NewListController[T any](name string, mode FilterMode, fetch Fetcher[T], match Matcher[T], logger *zap.Logger) *ListController[T] {
	return &ListController[T]{
		name:   name,
		mode:   mode,
		fetch:  fetch,
		match:  match,
		logger: logger,
	}
}

// Load fetches with the current filter. A fetch error replaces the list with
// a persistent error state until the next explicit Load or filter change.
func (c *ListController[T]) Load(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "ListController.Load")
	defer span.End()
	span.SetAttributes(telemetry.String("screen", c.name))

	token := c.seq.Add(1)

	c.mu.Lock()
	c.loading = true
	filter := c.filter
	c.mu.Unlock()

	if c.mode == FilterClient {
		// Local filtering: always fetch the full collection.
		filter = Filter{}
	}

	rows, err := c.fetch(ctx, filter)

	c.mu.Lock()
	defer c.mu.Unlock()

	if token != c.seq.Load() {
		// A newer fetch started while this one was in flight.
		c.logger.Debug("discarding stale response",
			zap.String("screen", c.name),
			zap.Uint64("token", token))
		return nil
	}

	c.loading = false
	if err != nil {
		span.RecordError(err)
		c.logger.Error("screen fetch failed",
			zap.String("screen", c.name),
			zap.Error(err))
		c.rows = nil
		c.err = err
		return err
	}

	c.rows = rows
	c.err = nil
	return nil
}

// SetFilter updates the filter state and refetches.
func (c *ListController[T]) SetFilter(ctx context.Context, filter Filter) error {
	c.mu.Lock()
	c.filter = filter
	c.mu.Unlock()
	return c.Load(ctx)
}

// Mutate runs op and, when it succeeds, unconditionally refetches the full
// list. Local state is never patched; failed mutations leave the list as-is.
func (c *ListController[T]) Mutate(ctx context.Context, op func(ctx context.Context) error) error {
	ctx, span := tracer.Start(ctx, "ListController.Mutate")
	defer span.End()
	span.SetAttributes(telemetry.String("screen", c.name))

	if err := op(ctx); err != nil {
		span.RecordError(err)
		return err
	}
	return c.Load(ctx)
}

// Rows returns the visible rows: in client mode the local filter predicate is
// applied over the fetched collection.
func (c *ListController[T]) Rows() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.mode == FilterServer || c.match == nil || c.filter == (Filter{}) {
		return append([]T(nil), c.rows...)
	}

	var out []T
	for _, row := range c.rows {
		if c.match(row, c.filter) {
			out = append(out, row)
		}
	}
	return out
}

func (c *ListController[T]) Filter() Filter {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.filter
}

func (c *ListController[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the persistent fetch error, nil when the last fetch succeeded.
func (c *ListController[T]) Err() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// FetchAll runs independent fetches in parallel and returns the first error.
// There is no ordering dependency between them.
func FetchAll(ctx context.Context, fetches ...func(ctx context.Context) error) error {
	var wg sync.WaitGroup
	errs := make([]error, len(fetches))

	for i, fetch := range fetches {
		wg.Add(1)
		go func(i int, fetch func(ctx context.Context) error) {
			defer wg.Done()
			errs[i] = fetch(ctx)
		}(i, fetch)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
