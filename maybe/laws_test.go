package maybe

import (
	"strconv"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"gopkg.microglot.org/functional.go/exc"
)

// genMaybeInt produces a mix of Just and Nothing values.
func genMaybeInt() gopter.Gen {
	return gen.PtrOf(gen.Int()).Map(func(p *int) Maybe[int] {
		return FromPtr(p)
	})
}

func half(v int) Maybe[int] {
	if v%2 != 0 {
		return Nothing[int]()
	}
	return Just(v / 2)
}

func TestLaws(t *testing.T) {
	properties := gopter.NewProperties(nil)

	inc := func(v int) int { return v + 1 }
	toString := func(v int) string { return strconv.Itoa(v) }

	properties.Property("map identity", prop.ForAll(
		func(v int) bool {
			return Map(Just(v), func(x int) int { return x }).Equal(Just(v)) &&
				Map(Nothing[int](), toString).Equal(Nothing[string]())
		},
		gen.Int(),
	))

	properties.Property("map composition", prop.ForAll(
		func(v int) bool {
			return Map(Map(Just(v), inc), toString).Equal(Map(Just(v), func(x int) string { return toString(inc(x)) }))
		},
		gen.Int(),
	))

	properties.Property("monad left identity", prop.ForAll(
		func(v int) bool {
			return Chain(Just(v), half).Equal(half(v))
		},
		gen.Int(),
	))

	properties.Property("monad right identity", prop.ForAll(
		func(m Maybe[int]) bool {
			return Chain(m, Just[int]).Equal(m)
		},
		genMaybeInt(),
	))

	properties.Property("alt keeps presence", prop.ForAll(
		func(v int, other Maybe[int]) bool {
			return Just(v).Alt(other).Equal(Just(v))
		},
		gen.Int(), genMaybeInt(),
	))

	properties.Property("nullable round trip", prop.ForAll(
		func(m Maybe[int]) bool {
			p := Map(m, func(v int) *int { return &v })
			return Equal(Map(OfNullable(p.ToNullable()), func(v *int) int { return *v }), m) &&
				FromPtr(m.ToPtr()).Equal(m)
		},
		genMaybeInt(),
	))

	properties.Property("from just inverts just", prop.ForAll(
		func(v int) bool {
			m := Just(v)
			return FromJust(&m) == v
		},
		gen.Int(),
	))

	properties.Property("filter soundness", prop.ForAll(
		func(v int) bool {
			even := func(x int) bool { return x%2 == 0 }
			filtered := Just(v).Filter(even)
			if even(v) {
				return filtered.Equal(Just(v)) && Nothing[int]().Filter(even).IsNothing()
			}
			return filtered.Equal(Nothing[int]())
		},
		gen.Int(),
	))

	properties.Property("equality follows value equality", prop.ForAll(
		func(a int, b int) bool {
			return Just(a).Equal(Just(b)) == (a == b) && Just(a).Equal(Just(b)) == Just(b).Equal(Just(a))
		},
		gen.IntRange(-3, 3), gen.IntRange(-3, 3),
	))

	properties.TestingRun(t)
}

func TestAbsenceLaws(t *testing.T) {
	t.Parallel()

	require.True(t, Nothing[int]().Alt(Nothing[int]()).Equal(Nothing[int]()))
	require.True(t, Nothing[int]().Equal(Nothing[int]()))

	var nilAny any
	require.True(t, OfNullable(Nothing[any]().ToNullable()).Equal(Nothing[any]()))
	require.True(t, OfNullable(Just[any]("v").ToNullable()).Equal(Just[any]("v")))
	require.True(t, OfNullable(nilAny).IsNothing())

	nothing := Nothing[int]()
	requirePanicCode(t, exc.CodeInvalidState, func() { FromJust(&nothing) })
}
