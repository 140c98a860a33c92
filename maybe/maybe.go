// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package maybe provides Maybe, a value that is either present (Just) or
// absent (Nothing), along with the combinators needed to work with it without
// reaching for nil checks.
//
// Go methods cannot introduce type parameters so every combinator that changes
// the element type, such as Map or Chain, is a package level function. The
// remaining operations are methods.
//
// Misuse, such as wrapping a nil value with Just or passing a nil function to
// a combinator, panics with an exc.Exception. Expected absence is always
// reported as Nothing.
package maybe

import (
	"fmt"

	"gopkg.microglot.org/functional.go/exc"
	"gopkg.microglot.org/functional.go/objects"
)

// Maybe holds an optional value of type V. The zero value is Nothing.
type Maybe[V any] struct {
	present bool
	value   V
}

// Just returns a present Maybe wrapping v. It panics with an InvalidArgument
// exception, wrapping a NullArgument one, if v is nil.
func Just[V any](v V) Maybe[V] {
	if err := objects.CheckNonNull(v, "value must not be nil"); err != nil {
		panic(exc.Wrap(exc.CodeInvalidArgument, err))
	}
	return Maybe[V]{present: true, value: v}
}

// Of is an alias of Just.
func Of[V any](v V) Maybe[V] {
	return Just(v)
}

// Nothing returns an absent Maybe.
func Nothing[V any]() Maybe[V] {
	return Maybe[V]{}
}

// Empty is an alias of Nothing.
func Empty[V any]() Maybe[V] {
	return Nothing[V]()
}

// OfNullable returns Just(v) unless v is nil, in which case it returns
// Nothing.
func OfNullable[V any](v V) Maybe[V] {
	if objects.IsNil(v) {
		return Nothing[V]()
	}
	return Maybe[V]{present: true, value: v}
}

// From is an alias of OfNullable.
func From[V any](v V) Maybe[V] {
	return OfNullable(v)
}

// FromMaybe dereferences m, treating a nil pointer as Nothing.
func FromMaybe[V any](m *Maybe[V]) Maybe[V] {
	if m == nil {
		return Nothing[V]()
	}
	return *m
}

// FromSlice returns the first element of vs, passed through OfNullable. A nil
// or empty slice gives Nothing.
func FromSlice[V any](vs []V) Maybe[V] {
	if len(vs) == 0 {
		return Nothing[V]()
	}
	return OfNullable(vs[0])
}

// FromPtr returns Just(*p), or Nothing if p is nil.
func FromPtr[V any](p *V) Maybe[V] {
	if p == nil {
		return Nothing[V]()
	}
	return OfNullable(*p)
}

// FromOk adapts the comma-ok idiom used by map lookups and type assertions.
func FromOk[V any](v V, ok bool) Maybe[V] {
	if !ok {
		return Nothing[V]()
	}
	return OfNullable(v)
}

// Attempt calls supplier and wraps its result. A returned error, a panic, or
// a nil result all give Nothing. The cause is discarded; callers that need it
// should call supplier directly.
func Attempt[V any](supplier func() (V, error)) (result Maybe[V]) {
	objects.RequireNonNull(supplier, "supplier must not be nil")
	defer func() {
		if r := recover(); r != nil {
			result = Nothing[V]()
		}
	}()
	v, err := supplier()
	if err != nil {
		return Nothing[V]()
	}
	return OfNullable(v)
}

// FromJust returns the value held by m. It panics with a NullArgument
// exception if m is nil and with an InvalidState exception if m is Nothing.
func FromJust[V any](m *Maybe[V]) V {
	objects.RequireNonNull(m, "maybe must not be nil")
	v, err := TryFromJust(*m)
	if err != nil {
		panic(err)
	}
	return v
}

// TryFromJust is FromJust for callers that prefer an error to a panic.
func TryFromJust[V any](m Maybe[V]) (V, error) {
	if !m.present {
		var zero V
		return zero, exc.New(exc.CodeInvalidState, "maybe must not be Nothing")
	}
	return m.value, nil
}

func (m Maybe[V]) IsJust() bool {
	return m.present
}

func (m Maybe[V]) IsNothing() bool {
	return !m.present
}

// Get returns the held value and true, or the zero value and false.
func (m Maybe[V]) Get() (V, bool) {
	return m.value, m.present
}

// Alt returns m if it is present, otherwise other.
func (m Maybe[V]) Alt(other Maybe[V]) Maybe[V] {
	if m.present {
		return m
	}
	return other
}

// Coalesce is an alias of Alt.
func (m Maybe[V]) Coalesce(other Maybe[V]) Maybe[V] {
	return m.Alt(other)
}

// Filter keeps m only if it is present and predicate holds for its value.
func (m Maybe[V]) Filter(predicate func(V) bool) Maybe[V] {
	objects.RequireNonNull(predicate, "predicate must not be nil")
	if m.present && predicate(m.value) {
		return m
	}
	return Nothing[V]()
}

func (m Maybe[V]) GetOrElse(other V) V {
	if m.present {
		return m.value
	}
	return other
}

// GetOrElseGet is GetOrElse with a default that is only computed when m is
// Nothing.
func (m Maybe[V]) GetOrElseGet(supplier func() V) V {
	objects.RequireNonNull(supplier, "supplier must not be nil")
	if m.present {
		return m.value
	}
	return supplier()
}

// GetOrElseThrow returns the held value, or the error produced by supplier
// when m is Nothing.
func (m Maybe[V]) GetOrElseThrow(supplier func() error) (V, error) {
	objects.RequireNonNull(supplier, "supplier must not be nil")
	if m.present {
		return m.value, nil
	}
	var zero V
	return zero, supplier()
}

// IfJust calls consumer with the held value when m is present. It returns m.
func (m Maybe[V]) IfJust(consumer func(V)) Maybe[V] {
	objects.RequireNonNull(consumer, "consumer must not be nil")
	if m.present {
		consumer(m.value)
	}
	return m
}

// IfNothing calls action when m is absent. It returns m.
func (m Maybe[V]) IfNothing(action func()) Maybe[V] {
	objects.RequireNonNull(action, "action must not be nil")
	if !m.present {
		action()
	}
	return m
}

// Tap runs IfNothing(onNothing) and then IfJust(onJust).
func (m Maybe[V]) Tap(onNothing func(), onJust func(V)) Maybe[V] {
	objects.RequireNonNull(onNothing, "onNothing must not be nil")
	objects.RequireNonNull(onJust, "onJust must not be nil")
	return m.IfNothing(onNothing).IfJust(onJust)
}

// Recover returns m if it is present, otherwise Just(v).
func (m Maybe[V]) Recover(v V) Maybe[V] {
	objects.RequireNonNull(v, "value must not be nil")
	if m.present {
		return m
	}
	return Just(v)
}

// Equal reports whether m and o are both Nothing or both hold equal values.
func (m Maybe[V]) Equal(o Maybe[V]) bool {
	if m.present != o.present {
		return false
	}
	if !m.present {
		return true
	}
	return objects.Equal(m.value, o.value)
}

// Equal is the function form of Maybe.Equal.
func Equal[V any](a Maybe[V], b Maybe[V]) bool {
	return a.Equal(b)
}

// HashCode returns a hash of the held value. Every Nothing hashes to 0 and
// values that are Equal hash the same, see objects.Hash for the rules.
func (m Maybe[V]) HashCode() uint64 {
	if !m.present {
		return 0
	}
	return objects.Hash(m.value)
}

func (m Maybe[V]) String() string {
	if !m.present {
		return "Nothing"
	}
	return fmt.Sprintf("Just(%v)", m.value)
}

func duplicate[V any](m Maybe[V]) Maybe[Maybe[V]] {
	return Maybe[Maybe[V]]{present: true, value: m}
}
