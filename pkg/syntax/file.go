package syntax

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type (
	// File is a parsed compilation unit.
	File struct {
		Path   string
		Source string
		Root   *Node

		// Errors lists the regions the parser wrapped into error nodes, in source order.
		Errors []ParseError
	}

	// ParseError describes source the parser could not make sense of.
	ParseError struct {
		Range  TextRange
		Line   int
		Column int
		Text   string
	}
)

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: unexpected %q", e.Line+1, e.Column+1, e.Text)
}

// NewFile binds root and its subtree to source. It fails when the tree does not cover
// the source exactly.
func NewFile(path, source string, root *Node) (*File, error) {
	f := &File{Path: path, Source: source, Root: root}

	if root.Range.Start != 0 || root.Range.End != len(source) {
		return nil, errors.Errorf("root range %s does not cover source of length %d", root.Range, len(source))
	}

	var err error

	root.Walk(func(n *Node) bool {
		n.file = f

		if n.Kind == KindError {
			f.Errors = append(f.Errors, ParseError{
				Range:  n.Range,
				Line:   f.Line(n.Range.Start),
				Column: f.Column(n.Range.Start, 1),
				Text:   source[n.Range.Start:n.Range.End],
			})
		}

		prev := n.Range.Start
		for _, c := range n.children {
			if c.Range.Start != prev && err == nil {
				err = errors.Errorf("gap before %s inside %s", c, n)
			}

			prev = c.Range.End
		}

		return true
	})

	return f, err
}

// Line returns the zero based line number of offset.
func (f *File) Line(offset int) int {
	return strings.Count(f.Source[:offset], "\n")
}

// ContainsLineBreak reports whether the source covered by r spans more than one line.
func (f *File) ContainsLineBreak(r TextRange) bool {
	return strings.ContainsAny(f.Source[r.Start:r.End], "\n\r")
}

// Column returns the zero based column of offset, tabs counted as tabSize columns.
func (f *File) Column(offset, tabSize int) int {
	start := strings.LastIndexByte(f.Source[:offset], '\n') + 1

	return VisualWidth(f.Source[start:offset], tabSize)
}

// VisualWidth returns the display width of a single line of text, expanding tabs to
// the next multiple of tabSize.
func VisualWidth(s string, tabSize int) int {
	col := 0

	for _, r := range s {
		if r == '\t' && tabSize > 0 {
			col += tabSize - col%tabSize
			continue
		}

		col++
	}

	return col
}
