package cmd

import (
	"strings"
	"testing"

	"github.com/pseudomuto/javafmt/pkg/cmd/testutil"
	"github.com/pseudomuto/javafmt/pkg/config"
	"github.com/pseudomuto/javafmt/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestSettingsCommand(t *testing.T) {
	t.Run("yaml round trips", func(t *testing.T) {
		output, err := testutil.RunCommand(t, settingsCmd(nil), "--set", "INDENT_SIZE=2")
		require.NoError(t, err)
		require.Contains(t, output, "indent_size: 2\n")

		cfg, err := config.LoadConfig(strings.NewReader(output))
		require.NoError(t, err)

		want := format.DefaultSettings()
		want.IndentSize = 2
		require.Equal(t, want, cfg.Format)
	})

	t.Run("toml round trips", func(t *testing.T) {
		output, err := testutil.RunCommand(t, settingsCmd(nil), "--format", "toml", "--set", "method_brace_style=next_line")
		require.NoError(t, err)
		require.Contains(t, output, `method_brace_style = "next_line"`)

		cfg, err := config.LoadTOML(strings.NewReader(output))
		require.NoError(t, err)
		require.Equal(t, format.NextLine, cfg.Format.MethodBraceStyle)
	})

	t.Run("reports the loaded configuration", func(t *testing.T) {
		project := testutil.JavaProject(t, nil).WithConfig("format:\n  right_margin: 100\nexclude:\n  - \"gen/**\"\n")

		output, err := testutil.RunCommand(t, settingsCmd(project.Config))
		require.NoError(t, err)
		require.Contains(t, output, "right_margin: 100\n")
		require.Contains(t, output, "gen/**")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, err := testutil.RunCommand(t, settingsCmd(nil), "--format", "json")
		require.ErrorContains(t, err, "unsupported format")
	})
}
