package cmd

import (
	"strconv"
	"strings"
	"testing"

	"github.com/pseudomuto/javafmt/pkg/cmd/testutil"
	"github.com/stretchr/testify/require"
)

func TestIndentCommand(t *testing.T) {
	src := "class A {\n    void f() {\n        int y = 1;\n    }\n}\n"
	project := testutil.JavaProject(t, map[string]string{"A.java": src})
	offset := strconv.Itoa(strings.Index(src, "int y = 1;") + len("int y = 1;"))

	t.Run("method body", func(t *testing.T) {
		output, err := testutil.RunCommand(t, indentCmd(nil), "--offset", offset, project.Path("A.java"))
		require.NoError(t, err)
		require.Equal(t, "indent: 8\n", output)
	})

	t.Run("uses the style", func(t *testing.T) {
		output, err := testutil.RunCommand(t, indentCmd(nil), "--set", "INDENT_SIZE=2", "--offset", offset, project.Path("A.java"))
		require.NoError(t, err)
		require.Equal(t, "indent: 6\n", output)
	})

	t.Run("requires a file", func(t *testing.T) {
		_, err := testutil.RunCommand(t, indentCmd(nil), "--offset", "0")
		require.ErrorContains(t, err, "exactly one file argument is required")
	})

	t.Run("requires an offset", func(t *testing.T) {
		_, err := testutil.RunCommand(t, indentCmd(nil), project.Path("A.java"))
		require.Error(t, err)
	})

	t.Run("offset outside of the file", func(t *testing.T) {
		_, err := testutil.RunCommand(t, indentCmd(nil), "--offset", "1000", project.Path("A.java"))
		require.ErrorContains(t, err, "outside of source")
	})
}
