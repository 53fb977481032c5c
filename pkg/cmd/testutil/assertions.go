package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireLinesInOrder asserts that each expected fragment appears in output
// after the previous one.
func RequireLinesInOrder(t *testing.T, output string, expected ...string) {
	t.Helper()

	rest := output
	for _, e := range expected {
		idx := strings.Index(rest, e)
		require.GreaterOrEqual(t, idx, 0, "expected %q after previous fragments in:\n%s", e, output)
		rest = rest[idx+len(e):]
	}
}

// RequireCount asserts that fragment appears exactly n times in output.
func RequireCount(t *testing.T, output, fragment string, n int) {
	t.Helper()
	require.Equal(t, n, strings.Count(output, fragment), "occurrences of %q in:\n%s", fragment, output)
}

// RequireError asserts that an error occurred and optionally checks the message
func RequireError(t *testing.T, err error, msgContains ...string) {
	t.Helper()

	require.Error(t, err, "Expected an error")

	for _, msg := range msgContains {
		require.Contains(t, err.Error(), msg, "Error message should contain: %s", msg)
	}
}
