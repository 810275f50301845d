package layout

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/pseudomuto/javafmt/pkg/format"
	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// Position is where a new line should start.
type Position struct {
	// Indent is the column given by the indent of the inserted line.
	Indent int

	// Align is the column of the alignment anchor, valid when Aligned is set. It wins
	// over Indent.
	Align   int
	Aligned bool
}

// Column is the column the new line starts at.
func (p Position) Column() int {
	if p.Aligned {
		return p.Align
	}

	return p.Indent
}

// Indent computes the position of a line inserted at offset. Only the blocks on the
// path to offset are built, and no wraps are computed.
func Indent(file *syntax.File, settings *format.Settings, offset int) (Position, error) {
	if settings == nil {
		settings = format.DefaultSettings()
	}

	if err := validate(file, settings, Options{}); err != nil {
		return Position{}, err
	}

	if offset < 0 || offset > len(file.Source) {
		return Position{}, errors.Errorf("offset %d outside of source of length %d", offset, len(file.Source))
	}

	root := format.New(settings, format.IndentsOnly()).Build(file)
	block, index := insertionPoint(root, offset)
	owner, attrs := block.InsertionAttributes(index)

	q := query{file: file, settings: settings}
	width := attrs.Indent.Width(settings, owner == block && index == 0)

	var pos Position

	switch {
	case attrs.Indent.IsAbsolute():
		pos.Indent = width
	case attrs.Indent.Relative:
		pos.Indent = q.column(owner) + width
	default:
		pos.Indent = q.lineColumn(owner) + width
	}

	if attrs.Alignment.IsSet() {
		if holder := firstHolder(root, attrs.Alignment); holder != nil {
			pos.Align, pos.Aligned = q.column(holder), true
		}
	}

	return pos, nil
}

// insertionPoint descends to the innermost block with offset strictly inside it and
// returns it with the index of the child the new line goes before.
func insertionPoint(root *format.Block, offset int) (*format.Block, int) {
	b := root

	for {
		children := b.Children()

		index := 0
		for index < len(children) && children[index].Range().End <= offset {
			index++
		}

		if index == len(children) || children[index].Range().Start >= offset {
			return b, index
		}

		if children[index].IsLeaf() {
			return b, index + 1
		}

		b = children[index]
	}
}

func firstHolder(root *format.Block, al format.Alignment) *format.Block {
	var found *format.Block

	root.Walk(func(b *format.Block) bool {
		if found == nil && b.Alignment == al {
			found = b
		}

		return found == nil
	})

	return found
}

// query measures blocks in the unformatted source.
type query struct {
	file     *syntax.File
	settings *format.Settings
}

func (q query) column(b *format.Block) int {
	return q.file.Column(b.Range().Start, q.settings.TabSize)
}

// lineColumn is the column of the closest block, b or an ancestor, that starts a line.
func (q query) lineColumn(b *format.Block) int {
	for ; b != nil; b = b.Parent() {
		start := b.Range().Start
		lineStart := strings.LastIndexByte(q.file.Source[:start], '\n') + 1

		if strings.TrimLeft(q.file.Source[lineStart:start], " \t") == "" {
			return q.column(b)
		}
	}

	return 0
}
