package listresource

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateFailed  State = "failed"
)

// Resource holds the loaded list of one entity type together with its
// summary statistics. It is safe for concurrent use; data source calls never
// run under the lock.
type Resource[T any] struct {
	spec Spec[T]
	src  DataSource[T]
	log  zerolog.Logger

	// writeMu serializes read-modify-write sequences so a Mutate never
	// saves over a change it did not see.
	writeMu sync.Mutex

	mu     sync.RWMutex
	items  []T
	stats  Stats
	state  State
	err    error
	gen    uint64
	closed bool
}

func New[T any](src DataSource[T], spec Spec[T], log zerolog.Logger) *Resource[T] {
	return &Resource[T]{
		spec:  spec,
		src:   src,
		log:   log.With().Str("resource", spec.Name).Logger(),
		stats: spec.summarize(nil),
		state: StateIdle,
	}
}

func (r *Resource[T]) Spec() Spec[T] { return r.spec }

// Load fetches the list once. A response that arrives after a newer Load
// started, after ctx was cancelled, or after Close is discarded with ErrStale.
func (r *Resource[T]) Load(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	r.gen++
	gen := r.gen
	prev := r.state
	r.state = StateLoading
	r.mu.Unlock()

	items, err := r.src.List(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed || gen != r.gen || ctx.Err() != nil {
		if !r.closed && gen == r.gen {
			r.state = prev
		}
		r.log.Debug().Uint64("generation", gen).Msg("discarding stale list response")
		return ErrStale
	}

	if err != nil {
		r.state = StateFailed
		r.err = err
		r.log.Error().Err(err).Msg("load failed")
		return fmt.Errorf("%s: load: %w", r.spec.Name, err)
	}

	for i := range items {
		r.spec.normalize(&items[i])
	}
	r.items = items
	r.stats = r.spec.summarize(items)
	r.state = StateReady
	r.err = nil
	r.log.Debug().Int("count", len(items)).Msg("list loaded")
	return nil
}

// EnsureLoaded loads the list unless a previous load succeeded. A failed
// load is attempted again only because the caller repeated the action.
func (r *Resource[T]) EnsureLoaded(ctx context.Context) error {
	r.mu.RLock()
	state := r.state
	r.mu.RUnlock()
	if state == StateReady {
		return nil
	}
	return r.Load(ctx)
}

// Close stops the resource from accepting any in-flight responses.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	r.closed = true
	r.gen++
	r.mu.Unlock()
}

// Page is the presentation view of a resource for one query.
type Page[T any] struct {
	Items []T    `json:"items"`
	Count int    `json:"count"`
	Total int    `json:"total"`
	Stats Stats  `json:"stats"`
	State State  `json:"state"`
	Error string `json:"error,omitempty"`
}

func (r *Resource[T]) View(q Query) Page[T] {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := Apply(r.items, r.spec, q)
	page := Page[T]{
		Items: items,
		Count: len(items),
		Total: len(r.items),
		Stats: copyStats(r.stats),
		State: r.state,
	}
	if r.err != nil {
		page.Error = r.err.Error()
	}
	return page
}

// Items returns a copy of the loaded list in source order.
func (r *Resource[T]) Items() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

func (r *Resource[T]) Stats() Stats {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyStats(r.stats)
}

func (r *Resource[T]) State() (State, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.state, r.err
}

// Find returns a clone of the entity with the given id.
func (r *Resource[T]) Find(id string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.spec.clone(r.items[i]), true
	}
	var zero T
	return zero, false
}

func (r *Resource[T]) indexOf(id string) int {
	for i, it := range r.items {
		if r.spec.ID(it) == id {
			return i
		}
	}
	return -1
}

func copyStats(s Stats) Stats {
	out := make(Stats, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}
