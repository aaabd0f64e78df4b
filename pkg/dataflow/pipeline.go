package dataflow

import (
	"context"
)

// Stream is a read-only channel of items.
type Stream[T any] <-chan T

// From creates a stream from a slice of items, emitted in order.
func From[T any](ctx context.Context, items ...T) Stream[T] {
	out := make(chan T, len(items))
	go func() {
		defer close(out)
		for _, item := range items {
			select {
			case <-ctx.Done():
				return
			case out <- item:
			}
		}
	}()
	return out
}

// Map transforms the stream using fn, preserving order. Items whose
// transformation fails are dropped after the error handler has seen the
// error. The output is unbuffered, so fn never runs more than one item
// ahead of the consumer.
func Map[In, Out any](ctx context.Context, input Stream[In], fn func(In) (Out, error), opts ...Option) Stream[Out] {
	cfg := newConfig(opts)
	out := make(chan Out)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-input:
				if !ok || ctx.Err() != nil {
					return
				}
				res, err := fn(msg)
				if err != nil {
					if cfg.errorHandler != nil {
						cfg.errorHandler(err)
					}
					continue
				}
				select {
				case <-ctx.Done():
					return
				case out <- res:
				}
			}
		}
	}()
	return out
}

// ForEach calls fn for every item until the stream is exhausted. The first
// error the handler does not swallow stops the stage and is returned.
func ForEach[T any](ctx context.Context, input Stream[T], fn func(T) error, opts ...Option) error {
	cfg := newConfig(opts)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-input:
			if !ok {
				return nil
			}
			// A cancelled stage may still hand over an item; drop it.
			if err := ctx.Err(); err != nil {
				return err
			}
			err := fn(msg)
			if err == nil {
				continue
			}
			if cfg.errorHandler != nil && cfg.errorHandler(err) {
				continue
			}
			return err
		}
	}
}
