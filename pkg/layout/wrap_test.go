package layout_test

import (
	"testing"

	"github.com/pseudomuto/javafmt/pkg/format"
	. "github.com/pseudomuto/javafmt/pkg/layout"
	"github.com/stretchr/testify/require"
)

func TestFormat_CallChains(t *testing.T) {
	src := "class A {\n    void f() {\n        foo().bar().baz().qux();\n    }\n}\n"

	t.Run("chops every call after the qualifier", func(t *testing.T) {
		s := format.DefaultSettings()
		s.RightMargin = 30
		s.MethodCallChainWrap = format.ChopDownIfLong

		want := "class A {\n" +
			"    void f() {\n" +
			"        foo()\n" +
			"                .bar()\n" +
			"                .baz()\n" +
			"                .qux();\n" +
			"    }\n" +
			"}\n"

		out := run(t, src, s, Options{})
		require.Equal(t, want, out)
		require.Equal(t, out, run(t, out, s, Options{}))
	})

	t.Run("legacy chains chop the same calls", func(t *testing.T) {
		s := format.DefaultSettings()
		s.RightMargin = 30
		s.MethodCallChainWrap = format.ChopDownIfLong

		out := run(t, src, s, Options{ChainStyle: format.ChainLegacy})
		require.Equal(t, 8, columnOf(t, out, "foo()"))
		require.Equal(t, 16, columnOf(t, out, ".bar()"))
		require.Equal(t, 16, columnOf(t, out, ".qux();"))
	})

	t.Run("aligned calls", func(t *testing.T) {
		s := format.DefaultSettings()
		s.RightMargin = 30
		s.MethodCallChainWrap = format.ChopDownIfLong
		s.AlignMultilineChainedMethods = true

		out := run(t, src, s, Options{})
		require.Equal(t, columnOf(t, out, ".bar()"), columnOf(t, out, ".baz()"))
		require.Equal(t, columnOf(t, out, ".bar()"), columnOf(t, out, ".qux();"))
		require.Equal(t, out, run(t, out, s, Options{}))
	})

	t.Run("short chains stay on one line", func(t *testing.T) {
		s := format.DefaultSettings()
		s.MethodCallChainWrap = format.ChopDownIfLong

		require.Equal(t, src, run(t, src, s, Options{}))
	})
}

func TestFormat_BuilderMethodIndents(t *testing.T) {
	src := "class A {\n" +
		"    void f() {\n" +
		"        Foo foo = Foo.builder()\n" +
		"                  .withA(1)\n" +
		"              .withB(2)\n" +
		"                .build();\n" +
		"    }\n" +
		"}\n"

	t.Run("keeps relative indents", func(t *testing.T) {
		s := format.DefaultSettings()
		s.KeepBuilderMethodsIndents = true
		s.BuilderMethods = []string{"with*", "build"}

		out := run(t, src, s, Options{})
		require.Equal(t, 16, columnOf(t, out, ".withB"))
		require.Equal(t, 4, columnOf(t, out, ".withA")-columnOf(t, out, ".withB"))
		require.Equal(t, 2, columnOf(t, out, ".build")-columnOf(t, out, ".withB"))
		require.Equal(t, out, run(t, out, s, Options{}))
	})

	t.Run("continuation indent otherwise", func(t *testing.T) {
		s := format.DefaultSettings()
		s.BuilderMethods = []string{"with*", "build"}

		out := run(t, src, s, Options{})
		for _, call := range []string{".withA", ".withB", ".build"} {
			require.Equal(t, 16, columnOf(t, out, call), call)
		}
	})
}

func TestFormat_Ternary(t *testing.T) {
	signsOnNextLine := func(margin int) *format.Settings {
		s := format.DefaultSettings()
		s.RightMargin = margin
		s.TernaryOperationWrap = format.ChopDownIfLong
		s.TernaryOperationSignsOnNextLine = true

		return s
	}

	wrapIn := func(stmt string) string {
		return "class A {\n    int f() {\n" + stmt + "    }\n}\n"
	}

	tests := []struct {
		name   string
		margin int
		src    string
		want   string
	}{
		{
			name:   "fits on one line",
			margin: 120,
			src:    wrapIn("        return condition ? firstValue : secondValue;\n"),
			want:   wrapIn("        return condition ? firstValue : secondValue;\n"),
		},
		{
			name:   "chops both signs",
			margin: 40,
			src:    wrapIn("        return condition ? firstValue : secondValue;\n"),
			want: wrapIn("        return condition\n" +
				"                ? firstValue\n" +
				"                : secondValue;\n"),
		},
		{
			name:   "nested",
			margin: 36,
			src:    wrapIn("        return first ? alpha : second ? beta : gamma;\n"),
			want: wrapIn("        return first\n" +
				"                ? alpha\n" +
				"                : second\n" +
				"                        ? beta\n" +
				"                        : gamma;\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := signsOnNextLine(tt.margin)

			out := run(t, tt.src, s, Options{})
			require.Equal(t, tt.want, out)
			require.Equal(t, out, run(t, out, s, Options{}))
		})
	}
}

func TestFormat_ElseIf(t *testing.T) {
	src := "class A {\n" +
		"    void f() {\n" +
		"        if (x) {\n" +
		"            foo();\n" +
		"        } else\n" +
		"        if (y) {\n" +
		"            bar();\n" +
		"        }\n" +
		"    }\n" +
		"}\n"

	want := "class A {\n" +
		"    void f() {\n" +
		"        if (x) {\n" +
		"            foo();\n" +
		"        } else if (y) {\n" +
		"            bar();\n" +
		"        }\n" +
		"    }\n" +
		"}\n"

	out := run(t, src, nil, Options{})
	require.Equal(t, want, out)
	require.Equal(t, out, run(t, out, nil, Options{}))
}

func TestFormat_SwitchSections(t *testing.T) {
	src := "class A {\n" +
		"void f(int x) {\n" +
		"switch (x) {\n" +
		"case 1:\n" +
		"foo();\n" +
		"break;\n" +
		"default:\n" +
		"bar();\n" +
		"}\n" +
		"}\n" +
		"}\n"

	out := run(t, src, nil, Options{})
	require.Equal(t, 12, columnOf(t, out, "case 1"))
	require.Equal(t, 12, columnOf(t, out, "default"))
	require.Equal(t, 16, columnOf(t, out, "foo();"))
	require.Equal(t, 16, columnOf(t, out, "break;"))
	require.Equal(t, 16, columnOf(t, out, "bar();"))
	require.Equal(t, out, run(t, out, nil, Options{}))
}
