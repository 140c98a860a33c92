// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package validation provides a value-or-errors type that accumulates every
// failure instead of stopping at the first one.
package validation

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"gopkg.microglot.org/functional.go/exc"
	"gopkg.microglot.org/functional.go/objects"
)

type Validation[V any] struct {
	value  V
	errors []error
}

func Valid[V any](v V) Validation[V] {
	return Validation[V]{value: v}
}

// Invalid returns a failed Validation holding errs. At least one non-nil error
// is required; nil entries are dropped.
func Invalid[V any](errs ...error) Validation[V] {
	kept := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	if len(kept) == 0 {
		panic(exc.New(exc.CodeInvalidArgument, "invalid validation requires at least one error"))
	}
	return Validation[V]{errors: kept}
}

func (v Validation[V]) IsValid() bool {
	return len(v.errors) == 0
}

// Value returns the held value and true if v is valid.
func (v Validation[V]) Value() (V, bool) {
	return v.value, v.IsValid()
}

// Errors returns a copy of the accumulated errors.
func (v Validation[V]) Errors() []error {
	return append([]error(nil), v.errors...)
}

// Err returns nil for a valid value, otherwise all accumulated errors as a
// single multierror.
func (v Validation[V]) Err() error {
	if v.IsValid() {
		return nil
	}
	return multierror.Append(nil, v.errors...).ErrorOrNil()
}

// Combine merges a and b with f if both are valid. Otherwise the errors of
// both sides are accumulated in order.
func Combine[A any, B any, R any](a Validation[A], b Validation[B], f func(A, B) R) Validation[R] {
	objects.RequireNonNull(f, "f must not be nil")
	if a.IsValid() && b.IsValid() {
		return Valid(f(a.value, b.value))
	}
	return Validation[R]{errors: append(a.Errors(), b.errors...)}
}

// Map transforms a valid value and keeps the errors of an invalid one.
func Map[V any, R any](v Validation[V], f func(V) R) Validation[R] {
	objects.RequireNonNull(f, "f must not be nil")
	if v.IsValid() {
		return Valid(f(v.value))
	}
	return Validation[R]{errors: v.Errors()}
}

func (v Validation[V]) String() string {
	if v.IsValid() {
		return fmt.Sprintf("Valid(%v)", v.value)
	}
	return fmt.Sprintf("Invalid(%v)", v.errors)
}
