// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels, plus a bounded fan-out built on top of them.
package chflow

import (
	"context"
	"sync"
)

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to send a value to the provided channel unless the context is canceled first.
// It returns true if the send was successful, false if the context was done before sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// ForEach calls fn for every item using at most workers goroutines and blocks
// until all started calls return. Items not yet handed to a worker when ctx is
// canceled are skipped. A workers value below 1 is treated as 1.
func ForEach[T any](ctx context.Context, workers int, items []T, fn func(ctx context.Context, item T)) {
	workers = max(1, min(workers, len(items)))

	itemsCh := make(chan T)

	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()

			for {
				item, ok := Receive(ctx, itemsCh)
				if !ok {
					return
				}

				fn(ctx, item)
			}
		}()
	}

	for _, item := range items {
		if !Send(ctx, itemsCh, item) {
			break
		}
	}
	close(itemsCh)

	wg.Wait()
}
