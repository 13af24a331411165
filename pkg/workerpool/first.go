package workerpool

import (
	"context"
	"errors"
	"sync"
)

// ErrNoResult is returned by First when every call finished without a result or an error.
var ErrNoResult = errors.New("no result found")

// Slot holds at most one value. The first Offer wins; later offers are dropped.
type Slot[T any] struct {
	mu    sync.Mutex
	set   bool
	value T
}

// Offer stores v if the slot is empty and reports whether it did.
func (s *Slot[T]) Offer(v T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set {
		return false
	}
	s.value, s.set = v, true
	return true
}

// Load returns the stored value, if any.
func (s *Slot[T]) Load() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value, s.set
}

// First runs find for every item concurrently and returns the first result reported as found.
// Once a result is accepted or any call fails the remaining calls are cancelled and their
// results discarded. Without a result First returns the first error, or the context error.
func First[T, R any](
	ctx context.Context,
	items []T,
	find func(context.Context, T) (R, bool, error),
) (R, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		winner Slot[R]
		failed Slot[error]
		wg     sync.WaitGroup
	)
	for _, item := range items {
		wg.Add(1)
		go func(item T) {
			defer wg.Done()
			result, found, err := find(ctx, item)
			if err != nil {
				failed.Offer(err)
				cancel()
				return
			}
			if found && winner.Offer(result) {
				cancel()
			}
		}(item)
	}
	wg.Wait()

	if result, ok := winner.Load(); ok {
		return result, nil
	}
	var zero R
	if err, ok := failed.Load(); ok {
		return zero, err
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	return zero, ErrNoResult
}
