// © 2023 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package maybe

import (
	"bytes"
	"encoding/json"
	"iter"

	"gopkg.microglot.org/functional.go/either"
	"gopkg.microglot.org/functional.go/exc"
	"gopkg.microglot.org/functional.go/objects"
	"gopkg.microglot.org/functional.go/validation"
)

// ToNullable returns the held value, or the zero value of V when m is
// Nothing. OfNullable(m.ToNullable()) restores m only when V is a nillable
// kind (pointer, interface, map, slice, func, chan). For any other V the round
// trip does not hold: Nothing[int]().ToNullable() is 0 and OfNullable(0) is
// Just(0). Use ToPtr and FromPtr when absence must survive for every V.
func (m Maybe[V]) ToNullable() V {
	return m.value
}

// ToPtr returns a pointer to a copy of the held value, or nil.
func (m Maybe[V]) ToPtr() *V {
	if !m.present {
		return nil
	}
	v := m.value
	return &v
}

// ToList returns a slice holding zero or one element.
func (m Maybe[V]) ToList() []V {
	if !m.present {
		return []V{}
	}
	return []V{m.value}
}

// ToIterable returns a sequence that yields the held value, if any, each time
// it is ranged over.
func (m Maybe[V]) ToIterable() iter.Seq[V] {
	return func(yield func(V) bool) {
		if m.present {
			yield(m.value)
		}
	}
}

// FromSeq returns the first element produced by seq, passed through
// OfNullable. A nil or empty sequence gives Nothing. No further elements are
// requested after the first.
func FromSeq[V any](seq iter.Seq[V]) Maybe[V] {
	if seq == nil {
		return Nothing[V]()
	}
	for v := range seq {
		return OfNullable(v)
	}
	return Nothing[V]()
}

// ToEither maps Nothing to Left(left) and Just(v) to Right(v).
func ToEither[L any, V any](m Maybe[V], left L) either.Either[L, V] {
	if !m.present {
		return either.Left[L, V](left)
	}
	return either.Right[L](m.value)
}

// ToValidation maps Nothing to an invalid result holding err and Just(v) to
// a valid one. A nil err is replaced with an InvalidState exception.
func (m Maybe[V]) ToValidation(err error) validation.Validation[V] {
	if m.present {
		return validation.Valid(m.value)
	}
	if objects.IsNil(err) {
		err = exc.New(exc.CodeInvalidState, "maybe must not be Nothing")
	}
	return validation.Invalid[V](err)
}

var jsonNull = []byte("null")

// MarshalJSON encodes Nothing as null and Just(v) as v.
func (m Maybe[V]) MarshalJSON() ([]byte, error) {
	if !m.present {
		return jsonNull, nil
	}
	return json.Marshal(m.value)
}

// UnmarshalJSON decodes null as Nothing. Any other document is decoded into V
// and passed through OfNullable.
func (m *Maybe[V]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*m = Nothing[V]()
		return nil
	}
	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = OfNullable(v)
	return nil
}
