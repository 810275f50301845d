package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/javafmt/pkg/config"
	"github.com/pseudomuto/javafmt/pkg/consts"
	"github.com/pseudomuto/javafmt/pkg/format"
	"github.com/stretchr/testify/require"
)

var (
	//go:embed testdata/javafmt.yaml
	testConfigYAML string

	//go:embed testdata/javafmt.toml
	testConfigTOML string
)

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("empty input keeps defaults", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, format.DefaultSettings(), config.Format)
		require.Equal(t, []string{consts.DefaultInclude}, config.Include)
	})

	t.Run("missing options keep defaults", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("format:\n  indent_size: 3\n"))
		require.NoError(t, err)
		require.Equal(t, 3, config.Format.IndentSize)
		require.Equal(t, format.DefaultSettings().ContinuationIndentSize, config.Format.ContinuationIndentSize)
		require.True(t, config.Format.KeepLineBreaks)
	})

	t.Run("error", func(t *testing.T) {
		config, err := LoadConfig(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to unmarshal config")

		// Misspelled option
		config, err = LoadConfig(strings.NewReader("format:\n  indent_sise: 2\n"))
		require.Error(t, err)
		require.Nil(t, config)

		// Unknown enum value
		config, err = LoadConfig(strings.NewReader("format:\n  brace_style: sideways\n"))
		require.Error(t, err)
		require.Nil(t, config)
	})
}

func TestLoadTOML(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		config, err := LoadTOML(strings.NewReader(testConfigTOML))
		require.NoError(t, err)
		validateTestConfig(t, config)
	})

	t.Run("unknown keys", func(t *testing.T) {
		config, err := LoadTOML(strings.NewReader("[format]\nindent_sise = 2\n"))
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "format.indent_sise")
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		dir := t.TempDir()

		for name, content := range map[string]string{"javafmt.yaml": testConfigYAML, "javafmt.toml": testConfigTOML} {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(content), consts.ModeFile))

			config, err := LoadConfigFile(path)
			require.NoError(t, err)
			validateTestConfig(t, config)
		}
	})

	t.Run("error", func(t *testing.T) {
		// Nonexistent file
		config, err := LoadConfigFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, config)
		require.Contains(t, err.Error(), "failed to open file")

		// Directory instead of file
		config, err = LoadConfigFile(t.TempDir())
		require.Error(t, err)
		require.Nil(t, config)
	})
}

func TestConfig_Settings(t *testing.T) {
	var config *Config
	require.Equal(t, format.DefaultSettings(), config.Settings())

	config, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)
	require.Same(t, config.Format, config.Settings())
}

func TestConfig_Matches(t *testing.T) {
	config, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{path: "src/main/java/Foo.java", want: true},
		{path: filepath.Join("src", "Foo.java"), want: true},
		{path: "src/main/generated/Foo.java", want: false},
		{path: "test/Foo.java", want: false},
		{path: "src/README.md", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			ok, err := config.Matches(tt.path)
			require.NoError(t, err)
			require.Equal(t, tt.want, ok)
		})
	}

	t.Run("defaults", func(t *testing.T) {
		var config *Config

		ok, err := config.Matches("a/b/C.java")
		require.NoError(t, err)
		require.True(t, ok)
	})

	t.Run("invalid pattern", func(t *testing.T) {
		config := &Config{Include: []string{"[a-"}}

		_, err := config.Matches("a.java")
		require.ErrorContains(t, err, "invalid pattern")
	})
}

// validateTestConfig validates that a config contains the expected test data
func validateTestConfig(t *testing.T, config *Config) {
	t.Helper()
	require.NotNil(t, config)
	require.Equal(t, 2, config.Format.IndentSize)
	require.Equal(t, 4, config.Format.ContinuationIndentSize)
	require.False(t, config.Format.SpaceBeforeIfParentheses)
	require.Equal(t, format.NextLine, config.Format.MethodBraceStyle)
	require.Equal(t, format.ChopDownIfLong, config.Format.MethodParametersWrap)
	require.Equal(t, format.DefaultSettings().TabSize, config.Format.TabSize)
	require.Equal(t, []string{"src/**/*.java"}, config.Include)
	require.Equal(t, []string{"**/generated/**"}, config.Exclude)
}
