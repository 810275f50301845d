package layout_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/javafmt/pkg/layout"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestGoldenFiles(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.in.java"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "no *.in.java files found in testdata")

	for _, inputFile := range matches {
		// "example.in.java" -> "example.java"
		outputName := strings.TrimSuffix(filepath.Base(inputFile), ".in.java") + ".java"

		t.Run(outputName, func(t *testing.T) {
			src, err := os.ReadFile(inputFile)
			require.NoError(t, err)

			result, err := FormatString(string(src), nil, Options{})
			require.NoError(t, err)

			golden.Assert(t, result, outputName)

			again, err := FormatString(result, nil, Options{})
			require.NoError(t, err)
			require.Equal(t, result, again, "formatting is not idempotent")
		})
	}
}
