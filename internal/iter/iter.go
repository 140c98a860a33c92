// Package iter provides pull iterators whose Next method reports exhaustion
// as Nothing rather than with a separate boolean.
package iter

import (
	"context"

	"gopkg.microglot.org/functional.go/maybe"
)

type Closer interface {
	Close(ctx context.Context) error
}

type Iterator[T any] interface {
	// Next returns the next value or Nothing once the iterator is exhausted.
	Next(ctx context.Context) maybe.Maybe[T]
	Closer
}

type Lookahead[T any] interface {
	Iterator[T]
	// Lookahead peeks n values past the one most recently returned by Next
	// without consuming anything.
	Lookahead(ctx context.Context, n uint8) maybe.Maybe[T]
}

type Filter[T any] interface {
	Keep(ctx context.Context, v T) bool
}

// NewSlice converts a slice of values into an Iterator implementation. Nil
// elements are skipped because they cannot be represented as a present value.
func NewSlice[T any](vs []T) Iterator[T] {
	return &iteratorSlice[T]{slice: vs, offset: -1}
}

type iteratorSlice[T any] struct {
	slice  []T
	offset int
}

func (it *iteratorSlice[T]) Next(ctx context.Context) maybe.Maybe[T] {
	for {
		it.offset = it.offset + 1
		if it.offset >= len(it.slice) {
			return maybe.Nothing[T]()
		}
		if v := maybe.OfNullable(it.slice[it.offset]); v.IsJust() {
			return v
		}
	}
}

func (it *iteratorSlice[T]) Close(ctx context.Context) error {
	return nil
}

// NewIteratorFilter wraps an iterator with a filter so that only values that
// pass the filter are returned.
func NewIteratorFilter[T any](it Iterator[T], f Filter[T]) Iterator[T] {
	return &iteratorFilter[T]{
		iter:   it,
		filter: f,
	}
}

type iteratorFilter[T any] struct {
	iter   Iterator[T]
	filter Filter[T]
}

func (it *iteratorFilter[T]) Next(ctx context.Context) maybe.Maybe[T] {
	for {
		v := it.iter.Next(ctx)
		if v.IsNothing() {
			return v
		}
		keep := v.Filter(func(val T) bool {
			return it.filter.Keep(ctx, val)
		})
		if keep.IsJust() {
			return keep
		}
	}
}

func (it *iteratorFilter[T]) Close(ctx context.Context) error {
	return it.iter.Close(ctx)
}

// NewLookahead wraps an iterator in a Lookahead implementation that can peek
// up to n values ahead. Values are only pulled from it when a caller asks for
// them, and it is not called again once it has reported Nothing.
func NewLookahead[T any](it Iterator[T], n uint8) Lookahead[T] {
	return &lookahead[T]{
		iter: it,
		n:    n,
	}
}

type lookahead[T any] struct {
	iter      Iterator[T]
	n         uint8
	current   maybe.Maybe[T]
	pending   []T
	exhausted bool
}

// fill pulls from the wrapped iterator until count values are pending or it
// runs dry.
func (look *lookahead[T]) fill(ctx context.Context, count int) {
	for len(look.pending) < count && !look.exhausted {
		look.iter.Next(ctx).Tap(
			func() { look.exhausted = true },
			func(v T) { look.pending = append(look.pending, v) },
		)
	}
}

func (look *lookahead[T]) Next(ctx context.Context) maybe.Maybe[T] {
	look.fill(ctx, 1)
	look.current = maybe.FromSlice(look.pending)
	if len(look.pending) > 0 {
		look.pending = look.pending[1:]
	}
	return look.current
}

func (look *lookahead[T]) Close(ctx context.Context) error {
	look.pending = nil
	return look.iter.Close(ctx)
}

// Lookahead(0) is the value last returned by Next, which is Nothing before
// the first call.
func (look *lookahead[T]) Lookahead(ctx context.Context, n uint8) maybe.Maybe[T] {
	switch {
	case n > look.n:
		return maybe.Nothing[T]()
	case n == 0:
		return look.current
	}
	look.fill(ctx, int(n))
	if len(look.pending) < int(n) {
		return maybe.Nothing[T]()
	}
	return maybe.Just(look.pending[n-1])
}

// Collect drains it into a slice.
func Collect[T any](ctx context.Context, it Iterator[T]) []T {
	var out []T
	for v := it.Next(ctx); v.IsJust(); v = it.Next(ctx) {
		out = maybe.FoldLeft(v, func(acc []T, val T) []T { return append(acc, val) }, out)
	}
	return out
}

// FilterFunc is an adaptor for simple filter functions that makes them
// compatible with the Filter interface. Use like:
//
//	FilterFunc[T](func(ctx context.Context, val T) bool { return true })
//
// Note that this type should never be referenced directly in any signature.
// Always use Filter as an input or output type.
type FilterFunc[T any] func(ctx context.Context, val T) bool

func (f FilterFunc[T]) Keep(ctx context.Context, val T) bool {
	return f(ctx, val)
}
