package layout

import (
	"strings"

	"github.com/pseudomuto/javafmt/pkg/format"
	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// writer accumulates output and tracks the current line and column. Trailing blanks are
// trimmed when the writer itself breaks a line; text copied verbatim is left alone.
type writer struct {
	buf     []byte
	mark    int
	line    int
	col     int
	tabSize int
	tabs    bool
}

func newWriter(s *format.Settings) *writer {
	return &writer{tabSize: s.TabSize, tabs: s.UseTabCharacter}
}

func (w *writer) String() string { return string(w.buf) }

// raw appends text that must not be trimmed later.
func (w *writer) raw(text string) {
	w.text(text)
	w.mark = len(w.buf)
}

func (w *writer) text(text string) {
	w.buf = append(w.buf, text...)

	if k := strings.LastIndexByte(text, '\n'); k >= 0 {
		w.line += strings.Count(text, "\n")
		w.col = syntax.VisualWidth(text[k+1:], w.tabSize)

		return
	}

	w.col += syntax.VisualWidth(text, w.tabSize)
}

func (w *writer) newlines(n int) {
	for len(w.buf) > w.mark && (w.buf[len(w.buf)-1] == ' ' || w.buf[len(w.buf)-1] == '\t') {
		w.buf = w.buf[:len(w.buf)-1]
	}

	for range n {
		w.buf = append(w.buf, '\n')
	}

	w.line += n
	w.col = 0
}

func (w *writer) spaces(n int) {
	for range n {
		w.buf = append(w.buf, ' ')
	}

	w.col += max(n, 0)
}

// indent moves from the start of a line to col, with tabs when the settings ask for them.
func (w *writer) indent(col int) {
	if w.tabs {
		for range col / w.tabSize {
			w.buf = append(w.buf, '\t')
		}

		w.col = col - col%w.tabSize
		w.spaces(col % w.tabSize)

		return
	}

	w.spaces(col)
}
