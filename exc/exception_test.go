package exc

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHasCode(t *testing.T) {
	t.Parallel()

	base := New(CodeNullArgument, "value must not be nil")
	require.True(t, HasCode(base, CodeNullArgument))
	require.False(t, HasCode(base, CodeInvalidState))

	wrapped := fmt.Errorf("outer: %w", base)
	require.True(t, HasCode(wrapped, CodeNullArgument))

	rewrapped := Wrap(CodeInvalidState, base)
	require.True(t, HasCode(rewrapped, CodeInvalidState))
	require.True(t, HasCode(rewrapped, CodeNullArgument))
	require.Equal(t, "value must not be nil", rewrapped.Message())

	require.False(t, HasCode(nil, CodeNullArgument))
	require.False(t, HasCode(errors.New("plain"), CodeNullArgument))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	require.Nil(t, Wrap(CodeInvalidState, nil))

	cause := errors.New("boom")
	e := Wrap(CodeInvalidState, cause)
	require.Equal(t, CodeInvalidState, e.Code())
	require.ErrorIs(t, e, cause)
	require.Equal(t, "F0003: boom", e.Error())
}
