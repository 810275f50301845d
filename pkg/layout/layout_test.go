package layout_test

import (
	"strings"
	"testing"

	"github.com/pseudomuto/javafmt/pkg/format"
	. "github.com/pseudomuto/javafmt/pkg/layout"
	"github.com/pseudomuto/javafmt/pkg/parser"
	"github.com/pseudomuto/javafmt/pkg/syntax"
	"github.com/stretchr/testify/require"
)

const messy = `package   com.example;
import java.util.List;
public class Foo{
int x=1;
void bar(int a,int b){
if(a>b){
return;
}
}
}`

const tidy = `package com.example;

import java.util.List;

public class Foo {
    int x = 1;

    void bar(int a, int b) {
        if (a > b) {
            return;
        }
    }
}
`

func run(t *testing.T, src string, s *format.Settings, opts Options) string {
	t.Helper()

	out, err := FormatString(src, s, opts)
	require.NoError(t, err)

	return out
}

func TestFormat(t *testing.T) {
	t.Run("reformats a class", func(t *testing.T) {
		require.Equal(t, tidy, run(t, messy, nil, Options{}))
	})

	t.Run("is idempotent", func(t *testing.T) {
		once := run(t, messy, nil, Options{})
		require.Equal(t, once, run(t, once, nil, Options{}))
	})

	t.Run("leaves no trailing blanks", func(t *testing.T) {
		out := run(t, "class A {   \nint x;   \n\n   \n}   \n", nil, Options{})

		for _, line := range strings.Split(out, "\n") {
			require.Equal(t, strings.TrimRight(line, " \t"), line)
		}
	})

	t.Run("ends with a single newline", func(t *testing.T) {
		out := run(t, "class A {}\n\n\n", nil, Options{})
		require.True(t, strings.HasSuffix(out, "}\n"))
		require.False(t, strings.HasSuffix(out, "\n\n"))
	})

	t.Run("empty source", func(t *testing.T) {
		require.Empty(t, run(t, "", nil, Options{}))
	})

	t.Run("indents with tabs", func(t *testing.T) {
		s := format.DefaultSettings()
		s.UseTabCharacter = true

		require.Equal(t, "class A {\n\tint x = 1;\n}\n", run(t, "class A {\nint x=1;\n}", s, Options{}))
	})

	t.Run("chops long parameter lists", func(t *testing.T) {
		s := format.DefaultSettings()
		s.RightMargin = 40
		s.MethodParametersWrap = format.ChopDownIfLong

		src := "class A {\nvoid method(int first, int second, int third) {\n}\n}\n"
		want := "class A {\n" +
			"    void method(int first,\n" +
			"                int second,\n" +
			"                int third) {\n" +
			"    }\n" +
			"}\n"

		require.Equal(t, want, run(t, src, s, Options{}))
	})

	t.Run("keeps short parameter lists on one line", func(t *testing.T) {
		s := format.DefaultSettings()
		s.MethodParametersWrap = format.ChopDownIfLong

		src := "class A {\n    void method(int a, int b) {\n    }\n}\n"
		require.Equal(t, src, run(t, src, s, Options{}))
	})

	t.Run("keeps block comments in one piece", func(t *testing.T) {
		src := "class A {\n  /*\n   * one\n   * two\n   */\nint x;\n}\n"
		want := "class A {\n    /*\n     * one\n     * two\n     */\n    int x;\n}\n"

		require.Equal(t, want, run(t, src, nil, Options{}))
	})

	t.Run("keeps first column comments", func(t *testing.T) {
		src := "class A {\n// off\nint x;\n}\n"
		require.Equal(t, "class A {\n// off\n    int x;\n}\n", run(t, src, nil, Options{}))

		s := format.DefaultSettings()
		s.KeepFirstColumnComment = false
		require.Equal(t, "class A {\n    // off\n    int x;\n}\n", run(t, src, s, Options{}))
	})

	t.Run("moves declarations off an end of line comment", func(t *testing.T) {
		out := run(t, "class A {\nint x; // note\nint y;\n}\n", nil, Options{})
		require.Contains(t, out, "    int x; // note\n    int y;\n")
	})
}

func TestFormat_ErrorRegions(t *testing.T) {
	src := "class A {\nvoid f() {\n)   ;\ng();\n}\n}\n"

	out := run(t, src, nil, Options{})
	require.Contains(t, out, "\n)   ;\n")
}

func TestFormat_Range(t *testing.T) {
	src := "class A {\nint a=1;\nint b=2;\n}\n"
	start := strings.Index(src, "int a")
	end := strings.Index(src, "1;") + len("1;")

	r := syntax.NewRange(start, end)
	out := run(t, src, nil, Options{Range: &r})

	require.Equal(t, "class A {\n    int a = 1;\n    int b=2;\n}\n", out)
}

func TestFormat_Validation(t *testing.T) {
	t.Run("missing tree", func(t *testing.T) {
		_, err := Format(nil, nil, Options{})
		require.ErrorContains(t, err, "no syntax tree")
	})

	t.Run("tab size", func(t *testing.T) {
		s := format.DefaultSettings()
		s.TabSize = 0

		_, err := FormatString("class A {}", s, Options{})
		require.ErrorContains(t, err, "tab size must be positive")
	})

	t.Run("indent size", func(t *testing.T) {
		s := format.DefaultSettings()
		s.ContinuationIndentSize = -1

		_, err := FormatString("class A {}", s, Options{})
		require.ErrorContains(t, err, "indent sizes must not be negative")
	})

	t.Run("range", func(t *testing.T) {
		r := syntax.NewRange(0, 100)

		_, err := FormatString("class A {}", nil, Options{Range: &r})
		require.ErrorContains(t, err, "outside of source")
	})
}

func TestIndent(t *testing.T) {
	src := "class A {\n    int x;\n    void f() {\n        int y = 1;\n    }\n}\n"

	file, err := parser.ParseString(src)
	require.NoError(t, err)

	tests := []struct {
		name   string
		offset int
		want   int
	}{
		{name: "top level", offset: 0, want: 0},
		{name: "class body", offset: strings.Index(src, "int x;") + len("int x;"), want: 4},
		{name: "method body", offset: strings.Index(src, "int y = 1;") + len("int y = 1;"), want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := Indent(file, nil, tt.offset)
			require.NoError(t, err)
			require.Equal(t, tt.want, pos.Column())
		})
	}

	t.Run("offset outside of the source", func(t *testing.T) {
		_, err := Indent(file, nil, len(src)+1)
		require.ErrorContains(t, err, "outside of source")
	})
}
