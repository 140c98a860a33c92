// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package maybe

import (
	"gopkg.microglot.org/functional.go/objects"
)

// Map applies mapper to the value of a present m. The result goes through
// OfNullable so a mapper returning nil yields Nothing.
func Map[V any, R any](m Maybe[V], mapper func(V) R) Maybe[R] {
	objects.RequireNonNull(mapper, "mapper must not be nil")
	if !m.present {
		return Nothing[R]()
	}
	return OfNullable(mapper(m.value))
}

// Chain applies mapper to the value of a present m and returns its result
// without wrapping it again.
func Chain[V any, R any](m Maybe[V], mapper func(V) Maybe[R]) Maybe[R] {
	objects.RequireNonNull(mapper, "mapper must not be nil")
	if !m.present {
		return Nothing[R]()
	}
	return mapper(m.value)
}

// Bind is an alias of Chain.
func Bind[V any, R any](m Maybe[V], mapper func(V) Maybe[R]) Maybe[R] {
	return Chain(m, mapper)
}

// FlatMap is an alias of Chain.
func FlatMap[V any, R any](m Maybe[V], mapper func(V) Maybe[R]) Maybe[R] {
	return Chain(m, mapper)
}

// Ap applies the function held by f to the value held by m. The result is
// Nothing unless both are present.
func Ap[V any, R any](m Maybe[V], f Maybe[func(V) R]) Maybe[R] {
	return Chain(f, func(fn func(V) R) Maybe[R] {
		return Map(m, fn)
	})
}

// CheckedMap is Map for mappers that can fail. A returned error or a panic
// inside mapper yields Nothing.
func CheckedMap[V any, R any](m Maybe[V], mapper func(V) (R, error)) (result Maybe[R]) {
	objects.RequireNonNull(mapper, "mapper must not be nil")
	if !m.present {
		return Nothing[R]()
	}
	defer func() {
		if r := recover(); r != nil {
			result = Nothing[R]()
		}
	}()
	v, err := mapper(m.value)
	if err != nil {
		return Nothing[R]()
	}
	return OfNullable(v)
}

// Extend applies mapper to m itself, rather than to its value, when m is
// present.
func Extend[V any, R any](m Maybe[V], mapper func(Maybe[V]) R) Maybe[R] {
	objects.RequireNonNull(mapper, "mapper must not be nil")
	if !m.present {
		return Nothing[R]()
	}
	return Map(duplicate(m), mapper)
}

// FoldLeft returns morphism(initial, v) for a present m. For Nothing the
// morphism is not called and initial is returned.
func FoldLeft[V any, R any](m Maybe[V], morphism func(R, V) R, initial R) R {
	objects.RequireNonNull(morphism, "morphism must not be nil")
	if !m.present {
		return initial
	}
	return morphism(initial, m.value)
}

// FoldRight returns morphism(v, initial) for a present m. For Nothing the
// morphism is not called and initial is returned.
func FoldRight[V any, R any](m Maybe[V], morphism func(V, R) R, initial R) R {
	objects.RequireNonNull(morphism, "morphism must not be nil")
	if !m.present {
		return initial
	}
	return morphism(m.value, initial)
}

// MaybeMap returns mapper applied to the value of m, or defaultValue when m
// is nil or Nothing.
func MaybeMap[T any, R any](defaultValue R, mapper func(T) R, m *Maybe[T]) R {
	objects.RequireNonNull(mapper, "mapper must not be nil")
	if m == nil || !m.present {
		return defaultValue
	}
	return mapper(m.value)
}

// MaybeMapper is the curried form of MaybeMap.
func MaybeMapper[T any, R any](defaultValue R, mapper func(T) R) func(Maybe[T]) R {
	objects.RequireNonNull(mapper, "mapper must not be nil")
	return func(m Maybe[T]) R {
		return MaybeMap(defaultValue, mapper, &m)
	}
}
