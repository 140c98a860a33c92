// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

// Package objects holds argument assertions shared by the functional types.
package objects

import (
	"reflect"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"

	"gopkg.microglot.org/functional.go/exc"
)

// IsNil reports whether v is a nil value. This includes an untyped nil
// interface as well as typed nil pointers, maps, slices, funcs, channels, and
// interfaces. Values of any other kind are never nil.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// CheckNonNull returns a NullArgument exception carrying message if v is nil.
func CheckNonNull[T any](v T, message string) error {
	if IsNil(v) {
		return exc.New(exc.CodeNullArgument, message)
	}
	return nil
}

// RequireNonNull returns v unchanged. It panics with a NullArgument exception
// carrying message if v is nil.
func RequireNonNull[T any](v T, message string) T {
	if err := CheckNonNull(v, message); err != nil {
		panic(err)
	}
	return v
}

var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

// Equal reports whether a and b are equal. A type's own Equal method is used
// when it has one; otherwise values are compared structurally, including
// unexported fields.
func Equal[T any](a T, b T) bool {
	return cmp.Equal(a, b, exportAll)
}

// Hasher is implemented by types that define their own Equal method and need
// Hash to agree with it.
type Hasher interface {
	HashCode() uint64
}

var hashDump = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          true,
	SortKeys:                true,
}

// Hash returns a hash of v that is consistent with Equal. Pointers are
// followed rather than hashed by address. A top level Hasher or time.Time
// is hashed by its own rules; any other type with a custom Equal method that
// is looser than structural equality must implement Hasher.
func Hash[T any](v T) uint64 {
	switch tv := any(v).(type) {
	case Hasher:
		return tv.HashCode()
	case time.Time:
		return xxhash.Sum64String(tv.UTC().Format(time.RFC3339Nano))
	case *time.Time:
		if tv != nil {
			return xxhash.Sum64String(tv.UTC().Format(time.RFC3339Nano))
		}
	}
	return xxhash.Sum64String(hashDump.Sdump(v))
}
