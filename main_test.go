package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func noEnv(string) (string, bool) {
	return "", false
}

func TestRun(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		expected string
		code     int
	}{
		{
			name:     "first value",
			args:     []string{"alpha", "beta"},
			expected: "alpha\n",
		},
		{
			name:     "prefix",
			args:     []string{"--prefix", "b", "alpha", "beta", "bravo"},
			expected: "beta\n",
		},
		{
			name:     "upper and trim",
			args:     []string{"--trim", "--upper", "--prefix", "c", "  charlie "},
			expected: "CHARLIE\n",
		},
		{
			name:     "default",
			args:     []string{"--prefix", "z", "--default", "none", "alpha"},
			expected: "none\n",
		},
		{
			name:     "empty default is still a default",
			args:     []string{"--default", ""},
			expected: "\n",
		},
		{
			name:     "empty value falls back",
			args:     []string{"--default", "fallback", ""},
			expected: "fallback\n",
		},
		{
			name: "nothing",
			args: []string{"--prefix", "z", "alpha"},
			code: 1,
		},
		{
			name:     "lookahead",
			args:     []string{"--prefix", "a", "--lookahead", "2", "a1", "b", "a2", "a3"},
			expected: "a1\nlookahead(2): Just(a3)\n",
		},
		{
			name:     "lookahead exhausted",
			args:     []string{"--lookahead", "3", "a1", "a2"},
			expected: "a1\nlookahead(3): Nothing\n",
		},
		{
			name:     "all",
			args:     []string{"--all", "--upper", "--prefix", "a", "a1", "b", "a2", "a3"},
			expected: "A1\nA2\nA3\n",
		},
		{
			name:     "all skips empty values",
			args:     []string{"--all", "x", "", "y"},
			expected: "x\ny\n",
		},
		{
			name:     "all after lookahead",
			args:     []string{"--all", "--lookahead", "1", "a", "b", "c"},
			expected: "a\nlookahead(1): Just(b)\nb\nc\n",
		},
		{
			name: "bad flag",
			args: []string{"--unknown"},
			code: 2,
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			code := run(context.Background(), testCase.args, &stdout, &stderr, noEnv)
			require.Equal(t, testCase.code, code, stderr.String())
			require.Equal(t, testCase.expected, stdout.String())
		})
	}
}
