package layout_test

import (
	"strings"
	"testing"

	"github.com/pseudomuto/javafmt/pkg/format"
	. "github.com/pseudomuto/javafmt/pkg/layout"
	"github.com/stretchr/testify/require"
)

// columnOf returns the column of the first line whose text starts with prefix.
func columnOf(t *testing.T, out, prefix string) int {
	t.Helper()

	for _, line := range strings.Split(out, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, prefix) {
			return len(line) - len(trimmed)
		}
	}

	require.Failf(t, "missing line", "no line starts with %q in\n%s", prefix, out)

	return -1
}

func TestFormat_ColumnAlignment(t *testing.T) {
	class := func(body ...string) string {
		return "class A {\n" + strings.Join(body, "") + "}\n"
	}

	method := func(body ...string) string {
		return class("    void f() {\n" + strings.Join(body, "") + "    }\n")
	}

	fields := func(s *format.Settings) { s.AlignGroupFieldDeclarations = true }
	locals := func(s *format.Settings) { s.AlignConsecutiveVariableDeclarations = true }
	composite := func(s *format.Settings) {
		s.AlignConsecutiveVariableDeclarations = true
		s.AlignConsecutiveAssignments = true
	}

	tests := []struct {
		name      string
		configure func(*format.Settings)
		src       string
		want      string
	}{
		{
			name:      "spaces multiple declarators",
			configure: func(*format.Settings) {},
			src:       class("    int a,b=2;\n"),
			want:      class("    int a, b = 2;\n"),
		},
		{
			name:      "field columns",
			configure: fields,
			src:       class("    int a = 1;\n", "    String bb = \"x\";\n"),
			want:      class("    int    a  = 1;\n", "    String bb = \"x\";\n"),
		},
		{
			name:      "later declarators stay out of the columns",
			configure: fields,
			src: class(
				"    int a = 1;\n",
				"    String bb = \"x\";\n",
				"    int c, dd = 4;\n",
				"    long e = 5;\n",
			),
			want: class(
				"    int    a  = 1;\n",
				"    String bb = \"x\";\n",
				"    int    c, dd = 4;\n",
				"    long   e  = 5;\n",
			),
		},
		{
			name:      "modifiers start a new field run",
			configure: fields,
			src:       class("    private int a = 1;\n", "    String bb = \"x\";\n"),
			want:      class("    private int a = 1;\n", "    String bb = \"x\";\n"),
		},
		{
			name:      "local columns",
			configure: locals,
			src:       method("        int a = 1;\n", "        long bbb = 2;\n"),
			want:      method("        int  a   = 1;\n", "        long bbb = 2;\n"),
		},
		{
			name:      "blank lines reset local columns",
			configure: locals,
			src:       method("        int a = 1;\n", "\n", "        long bbb = 2;\n"),
			want:      method("        int a = 1;\n", "\n", "        long bbb = 2;\n"),
		},
		{
			name: "removed blank lines do not reset local columns",
			configure: func(s *format.Settings) {
				s.AlignConsecutiveVariableDeclarations = true
				s.KeepBlankLinesInCode = 0
			},
			src:  method("        int a = 1;\n", "\n", "        long bbb = 2;\n"),
			want: method("        int  a   = 1;\n", "        long bbb = 2;\n"),
		},
		{
			name:      "first matching group wins and resets the others",
			configure: composite,
			src: method(
				"        int a = 1;\n",
				"        long bbb = 2;\n",
				"        x = 1;\n",
				"        yyy = 2;\n",
				"        int c = 3;\n",
			),
			want: method(
				"        int  a   = 1;\n",
				"        long bbb = 2;\n",
				"        x   = 1;\n",
				"        yyy = 2;\n",
				"        int c = 3;\n",
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := format.DefaultSettings()
			tt.configure(s)

			out := run(t, tt.src, s, Options{})
			require.Equal(t, tt.want, out)
			require.Equal(t, out, run(t, out, s, Options{}))
		})
	}
}

func TestFormat_SimpleMethods(t *testing.T) {
	src := "class A {\n    int a() { return 1; }\n    int bb() { return 2; }\n}\n"

	t.Run("one line bodies form a column", func(t *testing.T) {
		s := format.DefaultSettings()
		s.AlignSubsequentSimpleMethods = true
		s.KeepSimpleMethodsInOneLine = true

		out := run(t, src, s, Options{})
		require.Contains(t, out, "    int a()  { return 1; }\n")
		require.Contains(t, out, "    int bb() { return 2; }\n")
		require.Equal(t, out, run(t, out, s, Options{}))
	})

	t.Run("split bodies are not padded", func(t *testing.T) {
		s := format.DefaultSettings()
		s.AlignSubsequentSimpleMethods = true

		out := run(t, src, s, Options{})
		require.Contains(t, out, "    int a() {\n")
		require.Contains(t, out, "    int bb() {\n")
		require.Equal(t, out, run(t, out, s, Options{}))
	})
}

func TestFormat_AnonymousClassArguments(t *testing.T) {
	src := "class A {\n" +
		"    void f() {\n" +
		"        run(new Runnable() {\n" +
		"            public void run() {\n" +
		"            }\n" +
		"        }, new Runnable() {\n" +
		"            public void run() {\n" +
		"            }\n" +
		"        });\n" +
		"    }\n" +
		"}\n"

	out := run(t, src, nil, Options{})

	var first int
	for _, line := range strings.Split(out, "\n") {
		if i := strings.Index(line, "run(new"); i >= 0 {
			first = i + len("run(")
		}
	}

	require.Equal(t, first, columnOf(t, out, "}, new Runnable"))
	require.Equal(t, first, columnOf(t, out, "});"))
	require.Equal(t, out, run(t, out, nil, Options{}))
}
