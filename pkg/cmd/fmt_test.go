package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/javafmt/pkg/cmd/testutil"
	"github.com/pseudomuto/javafmt/pkg/consts"
	"github.com/pseudomuto/javafmt/pkg/format"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

const (
	unformattedJava = "class A{\nint x=1;\n}"
	formattedJava   = "class A {\n    int x = 1;\n}\n"
)

func TestFmtCommand_RequiresPath(t *testing.T) {
	// Test that fmt command requires a path argument
	_, err := testutil.RunCommand(t, fmtCmd(nil))
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestFmtCommand_SingleFile(t *testing.T) {
	// Test formatting a single file to stdout
	tmpDir := t.TempDir()

	javaFile := filepath.Join(tmpDir, "A.java")
	err := os.WriteFile(javaFile, []byte(unformattedJava), consts.ModeFile)
	require.NoError(t, err)

	command := fmtCmd(nil)

	// Create a test CLI app
	var buf bytes.Buffer
	app := &cli.Command{
		Name:   "test",
		Flags:  command.Flags,
		Action: command.Action,
		Writer: &buf,
	}

	ctx := context.Background()
	err = app.Run(ctx, []string{"test", javaFile})
	require.NoError(t, err)
	require.Equal(t, formattedJava, buf.String())

	// The file itself is untouched
	content, err := os.ReadFile(javaFile)
	require.NoError(t, err)
	require.Equal(t, unformattedJava, string(content))
}

func TestFmtCommand_SingleFileWriteBack(t *testing.T) {
	// Test formatting a single file with write-back
	project := testutil.JavaProject(t, map[string]string{"A.java": unformattedJava})

	output, err := testutil.RunCommand(t, fmtCmd(nil), "-w", project.Path("A.java"))
	require.NoError(t, err)
	require.Empty(t, output)
	require.Equal(t, formattedJava, project.Read("A.java"))
	testutil.RequireFormatted(t, project.Path("A.java"), format.DefaultSettings())
}

func TestFmtCommand_Directory(t *testing.T) {
	// Test formatting all Java files in a directory tree, printed in lexicographic order
	project := testutil.JavaProject(t, map[string]string{
		"b/B.java":   "class B{}",
		"a/A.java":   "class A{}",
		"readme.txt": "not java",
	})

	output, err := testutil.RunCommand(t, fmtCmd(nil), project.Dir)
	require.NoError(t, err)

	a, b := strings.Index(output, "class A"), strings.Index(output, "class B")
	require.GreaterOrEqual(t, a, 0)
	require.Greater(t, b, a)
	require.NotContains(t, output, "not java")
}

func TestFmtCommand_DirectoryWriteBack(t *testing.T) {
	// Test formatting directory with write-back
	project := testutil.JavaProject(t, map[string]string{
		"src/A.java":     unformattedJava,
		"src/sub/B.java": "class B{\nint y=2;\n}",
	})

	_, err := testutil.RunCommand(t, fmtCmd(nil), "-w", project.Dir)
	require.NoError(t, err)

	require.Equal(t, formattedJava, project.Read("src/A.java"))
	testutil.RequireFileContains(t, project.Path("src/sub/B.java"), "    int y = 2;\n")
}

func TestFmtCommand_ConfigPatterns(t *testing.T) {
	// Test that include and exclude patterns select the files of a directory
	project := testutil.JavaProject(t, map[string]string{
		"src/A.java":           unformattedJava,
		"src/generated/G.java": "class G{}",
	}).WithConfig("exclude:\n  - \"**/generated/**\"\n")

	_, err := testutil.RunCommand(t, fmtCmd(project.Config), "-w", filepath.Join(project.Dir, "src"))
	require.NoError(t, err)

	require.Equal(t, formattedJava, project.Read("src/A.java"))
	require.Equal(t, "class G{}", project.Read("src/generated/G.java"))
}

func TestFmtCommand_ConfigSettings(t *testing.T) {
	// Test that the configured style and --set overrides both apply
	project := testutil.JavaProject(t, map[string]string{"A.java": unformattedJava}).
		WithConfig("format:\n  indent_size: 2\n")

	output, err := testutil.RunCommand(t, fmtCmd(project.Config), project.Path("A.java"))
	require.NoError(t, err)
	require.Equal(t, "class A {\n  int x = 1;\n}\n", output)

	output, err = testutil.RunCommand(t, fmtCmd(project.Config), "--set", "INDENT_SIZE=3", project.Path("A.java"))
	require.NoError(t, err)
	require.Equal(t, "class A {\n   int x = 1;\n}\n", output)

	// The loaded configuration is not modified by overrides
	require.Equal(t, 2, project.Config.Format.IndentSize)

	_, err = testutil.RunCommand(t, fmtCmd(project.Config), "--set", "INDENT_SISE=3", project.Path("A.java"))
	require.ErrorContains(t, err, "invalid --set")
}

func TestFmtCommand_Range(t *testing.T) {
	// Test that only the gaps touching the range are reformatted
	src := "class A {\nint a=1;\nint b=2;\n}\n"
	project := testutil.JavaProject(t, map[string]string{"A.java": src})

	start := strings.Index(src, "int a")
	end := strings.Index(src, "1;") + 2

	output, err := testutil.RunCommand(t, fmtCmd(nil), "--range", rangeArg(start, end), project.Path("A.java"))
	require.NoError(t, err)
	require.Equal(t, "class A {\n    int a = 1;\n    int b=2;\n}\n", output)

	_, err = testutil.RunCommand(t, fmtCmd(nil), "--range", "0:5", project.Dir)
	require.ErrorContains(t, err, "--range requires a single file")

	_, err = testutil.RunCommand(t, fmtCmd(nil), "--range", "5", project.Path("A.java"))
	require.ErrorContains(t, err, "expected start:end")
}

func rangeArg(start, end int) string {
	return fmt.Sprintf("%d:%d", start, end)
}

func TestFmtCommand_DumpBlocks(t *testing.T) {
	// Test that --dump-blocks prints the block tree instead of the source
	project := testutil.JavaProject(t, map[string]string{"A.java": unformattedJava})

	output, err := testutil.RunCommand(t, fmtCmd(nil), "--dump-blocks", project.Path("A.java"))
	require.NoError(t, err)
	require.Contains(t, output, "BlockDump")
	require.Contains(t, output, "CLASS")
	require.NotContains(t, output, "int x = 1;")
}

func TestFmtCommand_LegacyChains(t *testing.T) {
	// Test that the legacy chain algorithm still formats
	project := testutil.JavaProject(t, map[string]string{
		"A.java": "class A {\nvoid f() {\nfoo().bar().baz();\n}\n}\n",
	})

	output, err := testutil.RunCommand(t, fmtCmd(nil), "--legacy-chains", project.Path("A.java"))
	require.NoError(t, err)
	require.Contains(t, output, "        foo().bar().baz();\n")
}

func TestFmtCommand_NonexistentPath(t *testing.T) {
	// Test formatting nonexistent path
	_, err := testutil.RunCommand(t, fmtCmd(nil), "/nonexistent/path")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to access path")
}

func TestFmtCommand_SyntaxErrors(t *testing.T) {
	// Test that files with syntax errors are formatted around the broken region
	project := testutil.JavaProject(t, map[string]string{
		"A.java": "class A {\nvoid f() {\n)   ;\n}\n}\n",
	})

	output, err := testutil.RunCommand(t, fmtCmd(nil), project.Path("A.java"))
	require.NoError(t, err)
	require.Contains(t, output, ")   ;")
	require.Contains(t, output, "    void f() {\n")
}

func TestFmtCommand_EmptyDirectory(t *testing.T) {
	// Test formatting empty directory (no Java files)
	project := testutil.JavaProject(t, map[string]string{"readme.txt": "Not Java"})

	_, err := testutil.RunCommand(t, fmtCmd(nil), project.Dir)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no Java files found")
}

func TestFmtCommand_FlagConfiguration(t *testing.T) {
	// Test that flags are configured correctly
	command := fmtCmd(nil)

	require.Equal(t, "fmt", command.Name)
	require.Equal(t, "Format Java files", command.Usage)
	require.Equal(t, "<path>", command.ArgsUsage)
	require.Len(t, command.Flags, 5)

	// Check write flag
	writeFlag := command.Flags[0].(*cli.BoolFlag)
	require.Equal(t, "write", writeFlag.Name)
	require.Equal(t, []string{"w"}, writeFlag.Aliases)
}

func TestFmtCommand_EmptyFile(t *testing.T) {
	// Test formatting empty Java file
	project := testutil.JavaProject(t, map[string]string{"Empty.java": ""})

	output, err := testutil.RunCommand(t, fmtCmd(nil), project.Path("Empty.java"))
	require.NoError(t, err)
	require.Empty(t, output)
}

func TestFmtCommand_WritePermissions(t *testing.T) {
	// Test that write-back preserves file permissions
	project := testutil.JavaProject(t, map[string]string{"A.java": unformattedJava})

	originalInfo, err := os.Stat(project.Path("A.java"))
	require.NoError(t, err)

	_, err = testutil.RunCommand(t, fmtCmd(nil), "-w", project.Path("A.java"))
	require.NoError(t, err)

	newInfo, err := os.Stat(project.Path("A.java"))
	require.NoError(t, err)
	require.Equal(t, originalInfo.Mode(), newInfo.Mode())
}

func TestFmtCommand_MultipleArguments(t *testing.T) {
	// Test that command rejects multiple arguments
	_, err := testutil.RunCommand(t, fmtCmd(nil), "a.java", "b.java")
	require.Error(t, err)
	require.Contains(t, err.Error(), "exactly one path argument is required")
}

func TestParseRange(t *testing.T) {
	r, err := parseRange(" 3 : 9 ")
	require.NoError(t, err)
	require.Equal(t, 3, r.Start)
	require.Equal(t, 9, r.End)

	for _, value := range []string{"", "3", "a:9", "3:b", "9:3", "-1:3"} {
		_, err := parseRange(value)
		require.Error(t, err, value)
	}
}
