package testutil

import (
	"os"
	"testing"

	"github.com/pseudomuto/javafmt/pkg/format"
	"github.com/pseudomuto/javafmt/pkg/layout"
	"github.com/stretchr/testify/require"
)

// RequireFileContains asserts that the file at path contains expected.
func RequireFileContains(t *testing.T, path, expected string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)
	require.Contains(t, string(content), expected, "File should contain: %s", expected)
}

// RequireFileNotContains asserts that the file at path does not contain unexpected.
func RequireFileNotContains(t *testing.T, path, unexpected string) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)
	require.NotContains(t, string(content), unexpected, "File should not contain: %s", unexpected)
}

// RequireFormatted asserts that formatting the file at path with s changes nothing.
func RequireFormatted(t *testing.T, path string, s *format.Settings) {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err, "Failed to read file: %s", path)

	formatted, err := layout.FormatString(string(content), s, layout.Options{})
	require.NoError(t, err)
	require.Equal(t, formatted, string(content), "File is not formatted: %s", path)
}
