package either

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEither(t *testing.T) {
	t.Parallel()

	l := Left[string, int]("missing")
	require.True(t, l.IsLeft())
	require.False(t, l.IsRight())
	lv, ok := l.Left()
	require.True(t, ok)
	require.Equal(t, "missing", lv)
	_, ok = l.Right()
	require.False(t, ok)
	require.Equal(t, "Left(missing)", l.String())

	r := Right[string](7)
	require.True(t, r.IsRight())
	rv, ok := r.Right()
	require.True(t, ok)
	require.Equal(t, 7, rv)
	require.Equal(t, "Right(7)", r.String())

	require.True(t, r.Equal(Right[string](7)))
	require.False(t, r.Equal(Right[string](8)))
	require.False(t, r.Equal(l))
	require.True(t, l.Equal(Left[string, int]("missing")))
}

func TestMapAndFold(t *testing.T) {
	t.Parallel()

	toString := func(v int) string { return strconv.Itoa(v) }
	require.True(t, Map(Right[string](3), toString).Equal(Right[string]("3")))
	require.True(t, Map(Left[string, int]("x"), toString).Equal(Left[string, string]("x")))

	describe := func(e Either[string, int]) string {
		return Fold(e, func(l string) string { return "left:" + l }, func(r int) string { return "right:" + toString(r) })
	}
	require.Equal(t, "left:x", describe(Left[string, int]("x")))
	require.Equal(t, "right:4", describe(Right[string](4)))
}
