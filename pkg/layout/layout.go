package layout

import (
	"log/slog"
	"maps"

	"github.com/pkg/errors"

	"github.com/pseudomuto/javafmt/pkg/format"
	"github.com/pseudomuto/javafmt/pkg/parser"
	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// maxPasses bounds the alignment fixpoint.
const maxPasses = 8

// Options tune a formatting run.
type Options struct {
	// Range limits whitespace edits to the gaps it intersects. Nil formats the whole file.
	Range *syntax.TextRange

	// ChainStyle selects the method call chain algorithm.
	ChainStyle format.ChainStyle

	// Logger receives debug records. Nil discards them.
	Logger *slog.Logger
}

// Format returns the formatted text of file.
func Format(file *syntax.File, settings *format.Settings, opts Options) (string, error) {
	if settings == nil {
		settings = format.DefaultSettings()
	}

	if err := validate(file, settings, opts); err != nil {
		return "", err
	}

	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}

	builder := format.New(settings, format.WithLogger(opts.Logger), format.WithChainStyle(opts.ChainStyle))
	e := newEngine(file, settings, opts, builder.Build(file))

	return e.run(), nil
}

// FormatString parses src and formats it.
func FormatString(src string, settings *format.Settings, opts Options) (string, error) {
	file, err := parser.ParseString(src)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse source")
	}

	return Format(file, settings, opts)
}

func validate(file *syntax.File, s *format.Settings, opts Options) error {
	switch {
	case file == nil || file.Root == nil:
		return errors.New("no syntax tree to format")
	case s.TabSize <= 0:
		return errors.Errorf("tab size must be positive, got %d", s.TabSize)
	case s.IndentSize < 0 || s.ContinuationIndentSize < 0:
		return errors.Errorf("indent sizes must not be negative, got %d and %d", s.IndentSize, s.ContinuationIndentSize)
	}

	if r := opts.Range; r != nil && (r.Start < 0 || r.Start > r.End || r.End > len(file.Source)) {
		return errors.Errorf("range %s outside of source of length %d", r, len(file.Source))
	}

	return nil
}

// engine holds what every layout pass shares: the leaves, the blocks starting at each
// leaf and the spacing in front of each leaf.
type engine struct {
	file     *syntax.File
	src      string
	settings *format.Settings
	opts     Options

	leaves   []*format.Block
	leafAt   map[int]int
	starts   [][]*format.Block
	spacings []*format.Spacing
	holders  map[*format.Wrap][]*format.Block
}

func newEngine(file *syntax.File, settings *format.Settings, opts Options, root *format.Block) *engine {
	e := &engine{
		file:     file,
		src:      file.Source,
		settings: settings,
		opts:     opts,
		leafAt:   map[int]int{},
		holders:  map[*format.Wrap][]*format.Block{},
	}

	// A file without tokens is its own leaf.
	if len(root.Children()) > 0 {
		e.leaves = root.Leaves()
	}

	e.starts = make([][]*format.Block, len(e.leaves))
	e.spacings = make([]*format.Spacing, len(e.leaves))

	for i, leaf := range e.leaves {
		start := leaf.Range().Start
		e.leafAt[start] = i

		chain := []*format.Block{leaf}
		for b := leaf.Parent(); b != nil && b.Range().Start == start; b = b.Parent() {
			chain = append(chain, b)
		}

		e.starts[i] = chain

		if i > 0 {
			e.spacings[i] = spacingBetween(e.leaves[i-1], leaf)
		}
	}

	root.Walk(func(b *format.Block) bool {
		if b.Wrap != nil {
			e.holders[b.Wrap] = append(e.holders[b.Wrap], b)
		}

		return true
	})

	return e
}

// spacingBetween asks the lowest common ancestor of two adjacent leaves for the spacing
// between its children holding them.
func spacingBetween(left, right *format.Block) *format.Spacing {
	path := map[*format.Block]*format.Block{}
	for child, b := left, left.Parent(); b != nil; child, b = b, b.Parent() {
		path[b] = child
	}

	for child, b := right, right.Parent(); b != nil; child, b = b, b.Parent() {
		if l, ok := path[b]; ok {
			return b.Spacing(l, child)
		}
	}

	return nil
}

func (e *engine) run() string {
	if len(e.leaves) == 0 {
		if e.opts.Range != nil {
			return e.src
		}

		return ""
	}

	anchors := map[format.Alignment]anchor{}

	var p *pass

	for n := 1; ; n++ {
		p = e.layout(anchors)

		next := p.anchors()
		if maps.Equal(next, anchors) {
			break
		}

		if n == maxPasses {
			e.opts.Logger.Debug("alignment did not settle", "file", e.file.Path, "passes", n)
			break
		}

		anchors = next
	}

	return p.out.String()
}

// editable reports whether the gap [start, end) may be changed.
func (e *engine) editable(start, end int) bool {
	return e.opts.Range == nil || e.opts.Range.Intersects(syntax.NewRange(start, end))
}
