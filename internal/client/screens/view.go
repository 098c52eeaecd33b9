// Package screens holds the state every data-backed view goes through:
// loading, then loaded data or an error. Nothing is cached between views
// and failed loads are not retried.
package screens

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is returned by Load when a newer load started before this
// one finished. Its result is dropped.
var ErrSuperseded = errors.New("superseded by a newer load")

type State[T any] struct {
	Loading  bool
	Data     T
	Err      error
	LoadedAt time.Time
}

// Loaded reports whether data has been fetched successfully at least once.
func (s State[T]) Loaded() bool { return !s.LoadedAt.IsZero() }

type View[T any] struct {
	mu    sync.Mutex
	fetch func(ctx context.Context) (T, error)
	state State[T]
	gen   uint64
	now   func() time.Time
}

func NewView[T any](fetch func(ctx context.Context) (T, error)) *View[T] {
	return &View[T]{fetch: fetch, now: time.Now}
}

// Load runs the fetch and applies its result unless a newer Load started
// in the meantime. On error the previous data is kept.
func (v *View[T]) Load(ctx context.Context) (State[T], error) {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.state.Loading = true
	v.mu.Unlock()

	data, err := v.fetch(ctx)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return v.state, ErrSuperseded
	}
	v.state.Loading = false
	if err != nil {
		v.state.Err = err
		return v.state, err
	}
	v.state.Data = data
	v.state.Err = nil
	v.state.LoadedAt = v.now()
	return v.state, nil
}

// Refresh is Load triggered by the user.
func (v *View[T]) Refresh(ctx context.Context) (State[T], error) {
	return v.Load(ctx)
}

func (v *View[T]) State() State[T] {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Set replaces the data without fetching, for local edits confirmed by the
// backend.
func (v *View[T]) Set(data T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state.Data = data
	v.state.Err = nil
}
