package config_test

import (
	"testing"

	. "github.com/pseudomuto/javafmt/pkg/config"
	"github.com/pseudomuto/javafmt/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestApply(t *testing.T) {
	t.Run("accepts every spelling", func(t *testing.T) {
		s := format.DefaultSettings()

		err := Apply(s,
			"SPACE_BEFORE_IF_PARENTHESES=false",
			"indentSize=2",
			"method_brace_style=NEXT_LINE",
			"right_margin = 80",
		)
		require.NoError(t, err)
		require.False(t, s.SpaceBeforeIfParentheses)
		require.Equal(t, 2, s.IndentSize)
		require.Equal(t, format.NextLine, s.MethodBraceStyle)
		require.Equal(t, 80, s.RightMargin)
	})

	t.Run("parses sequences", func(t *testing.T) {
		s := format.DefaultSettings()

		require.NoError(t, Apply(s, "BUILDER_METHODS=[with*, build]"))
		require.Equal(t, []string{"with*", "build"}, s.BuilderMethods)
	})

	t.Run("parses flow sequences with one item", func(t *testing.T) {
		s := format.DefaultSettings()

		require.NoError(t, Apply(s, "builderMethods=[build]"))
		require.Equal(t, []string{"build"}, s.BuilderMethods)
	})

	t.Run("leaves other options alone", func(t *testing.T) {
		s := format.DefaultSettings()
		require.NoError(t, Apply(s, "INDENT_SIZE=8"))

		want := format.DefaultSettings()
		want.IndentSize = 8
		require.Equal(t, want, s)
	})

	t.Run("errors", func(t *testing.T) {
		tests := map[string]string{
			"missing value":  "INDENT_SIZE",
			"missing name":   "=2",
			"unknown option": "INDENT_SISE=2",
			"wrong type":     "INDENT_SIZE=wide",
			"unknown enum":   "BRACE_STYLE=sideways",
			"broken yaml":    "BUILDER_METHODS=[build",
		}

		for name, override := range tests {
			t.Run(name, func(t *testing.T) {
				require.Error(t, Apply(format.DefaultSettings(), override))
			})
		}
	})
}
