// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package either provides a two-sided disjoint union. By convention the left
// side carries a failure or absence description and the right side carries a
// value.
package either

import (
	"fmt"

	"gopkg.microglot.org/functional.go/objects"
)

type Either[L any, R any] struct {
	right bool
	left  L
	value R
}

func Left[L any, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

func Right[L any, R any](v R) Either[L, R] {
	return Either[L, R]{right: true, value: v}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.right
}

func (e Either[L, R]) IsRight() bool {
	return e.right
}

// Left returns the left value and true if e is a Left.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.right
}

// Right returns the right value and true if e is a Right.
func (e Either[L, R]) Right() (R, bool) {
	return e.value, e.right
}

// Fold applies onLeft or onRight depending on the side that is populated.
func Fold[L any, R any, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.right {
		return onRight(e.value)
	}
	return onLeft(e.left)
}

// Map transforms the right side and leaves a Left untouched.
func Map[L any, R any, T any](e Either[L, R], f func(R) T) Either[L, T] {
	if e.right {
		return Right[L](f(e.value))
	}
	return Left[L, T](e.left)
}

func (e Either[L, R]) Equal(o Either[L, R]) bool {
	if e.right != o.right {
		return false
	}
	if e.right {
		return objects.Equal(e.value, o.value)
	}
	return objects.Equal(e.left, o.left)
}

func (e Either[L, R]) String() string {
	if e.right {
		return fmt.Sprintf("Right(%v)", e.value)
	}
	return fmt.Sprintf("Left(%v)", e.left)
}
