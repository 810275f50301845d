package layout

import (
	"strings"
	"unicode/utf8"

	"github.com/pseudomuto/javafmt/pkg/format"
	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// anchor is the column shared by the holders of an Alignment. Column anchors also pad
// holders in the middle of a line.
type anchor struct {
	col     int
	columns bool
}

// group collects the columns the holders of an Alignment would take on their own.
type group struct {
	first   int
	widest  int
	holders int
	line    int

	// broken is set once a holder other than the first starts a line, shared once two
	// holders sit on the same line.
	broken bool
	shared bool
}

// pass lays out the whole document once with a fixed set of anchors.
type pass struct {
	*engine

	fixed map[format.Alignment]anchor
	out   *writer

	cols      []int
	lines     []int
	ends      []int
	lineStart []bool

	groups  map[format.Alignment]*group
	chopped map[*format.Wrap]bool
	seen    map[*format.Wrap]int
}

func (e *engine) layout(anchors map[format.Alignment]anchor) *pass {
	n := len(e.leaves)
	p := &pass{
		engine:    e,
		fixed:     anchors,
		out:       newWriter(e.settings),
		cols:      make([]int, n),
		lines:     make([]int, n),
		ends:      make([]int, n),
		lineStart: make([]bool, n),
		groups:    map[format.Alignment]*group{},
		chopped:   map[*format.Wrap]bool{},
		seen:      map[*format.Wrap]int{},
	}

	for i := range e.leaves {
		if i == 0 {
			p.leading()
		} else {
			p.gap(i)
		}

		p.cols[i], p.lines[i] = p.out.col, p.out.line
		p.text(i)
		p.ends[i] = p.out.line
	}

	p.trailing()

	return p
}

// anchors derives the anchors of the next pass. A group broken over several lines lines
// up with its first holder. A group with one holder per line, none of them starting it,
// forms a column.
func (p *pass) anchors() map[format.Alignment]anchor {
	next := map[format.Alignment]anchor{}

	for al, g := range p.groups {
		switch {
		case g.holders < 2:
		case g.broken:
			next[al] = anchor{col: g.first}
		case !g.shared:
			next[al] = anchor{col: g.widest, columns: true}
		}
	}

	return next
}

func (p *pass) leading() {
	first := p.leaves[0].Range().Start
	if !p.editable(0, first) {
		p.out.raw(p.src[:first])
	}

	p.lineStart[0] = p.out.col == 0
	p.note(0, p.out.col, p.lineStart[0])
}

func (p *pass) trailing() {
	end := p.leaves[len(p.leaves)-1].Range().End
	if !p.editable(end, len(p.src)) {
		p.out.raw(p.src[end:])
		return
	}

	p.out.newlines(1)
}

// gap writes the whitespace in front of leaf i.
func (p *pass) gap(i int) {
	prev, cur := p.leaves[i-1].Range(), p.leaves[i].Range()
	ws := p.src[prev.End:cur.Start]
	sp := p.spacings[i]

	if !p.editable(prev.End, cur.Start) || (sp != nil && sp.ReadOnly) {
		p.out.raw(ws)
		p.lineStart[i] = strings.Contains(ws, "\n")
		p.note(i, p.out.col, p.lineStart[i])

		return
	}

	lf, spaces := p.whitespace(i, ws, sp)
	if lf == 0 && p.leaves[i-1].Kind() == syntax.KindEndOfLineComment {
		lf = 1
	}

	lf = p.wrap(i, lf, p.out.col+spaces)

	if lf > 0 {
		natural := p.indentOf(p.top(i))

		firstColumn := sp != nil && sp.KeepFirstColumn && strings.HasSuffix(ws, "\n")
		if firstColumn {
			natural = 0
		}

		col := natural
		if a, ok := p.anchorAt(i); ok && !firstColumn {
			col = a.col
		}

		p.out.newlines(lf)
		p.out.indent(col)
		p.lineStart[i] = true
		p.note(i, natural, true)

		return
	}

	natural := p.out.col + spaces

	col := natural
	if a, ok := p.anchorAt(i); ok && a.columns {
		col = max(col, a.col)
	}

	p.out.spaces(col - p.out.col)
	p.note(i, natural, false)
}

// whitespace applies sp to the original gap ws. A nil spacing keeps the gap.
func (p *pass) whitespace(i int, ws string, sp *format.Spacing) (int, int) {
	lf := strings.Count(ws, "\n")

	if sp == nil {
		if lf > 0 {
			return lf, 0
		}

		return 0, syntax.VisualWidth(ws, p.settings.TabSize)
	}

	want := sp.EffectiveMinLineFeeds(func(r syntax.TextRange) bool { return p.spans(i, r) })
	if sp.KeepLineBreaks {
		want = max(want, min(lf, sp.KeepBlankLines+1))
	}

	if want > 0 {
		return want, 0
	}

	if lf > 0 {
		return 0, sp.MinSpaces
	}

	return 0, min(max(syntax.VisualWidth(ws, p.settings.TabSize), sp.MinSpaces), sp.MaxSpaces)
}

// spans reports whether r spans several lines while leaf i is being placed: the part
// already written is judged on the output, the rest on the original text.
func (p *pass) spans(i int, r syntax.TextRange) bool {
	first, last := -1, -1

	for k := i - 1; k >= 0; k-- {
		lr := p.leaves[k].Range()
		if lr.End <= r.Start {
			break
		}

		if lr.Start >= r.Start && lr.End <= r.End {
			first = k
			if last < 0 {
				last = k
			}
		}
	}

	if first >= 0 && p.ends[last] != p.lines[first] {
		return true
	}

	from := max(r.Start, p.leaves[i].Range().Start)

	return from < r.End && strings.Contains(p.src[from:r.End], "\n")
}

// top is the outermost block starting at leaf i.
func (p *pass) top(i int) *format.Block {
	chain := p.starts[i]
	return chain[len(chain)-1]
}

// anchorAt returns the anchor of the outermost block starting at leaf i that has one.
func (p *pass) anchorAt(i int) (anchor, bool) {
	chain := p.starts[i]

	for j := len(chain) - 1; j >= 0; j-- {
		if al := chain[j].Alignment; al.IsSet() {
			if a, ok := p.fixed[al]; ok {
				return a, true
			}
		}
	}

	return anchor{}, false
}

// note records the natural column of every aligned block starting at leaf i.
func (p *pass) note(i, natural int, lineStart bool) {
	for _, b := range p.starts[i] {
		if !b.Alignment.IsSet() {
			continue
		}

		g, ok := p.groups[b.Alignment]
		if !ok {
			g = &group{first: natural, widest: natural, line: p.out.line}
			p.groups[b.Alignment] = g
		} else if g.line == p.out.line {
			g.shared = true
		}

		g.holders++
		g.widest = max(g.widest, natural)
		g.line = p.out.line

		if g.holders > 1 && lineStart {
			g.broken = true
		}
	}
}

// indentOf is the column of b when it starts a line: its indent added to the column of
// the closest ancestor starting a line. Ancestors in between add their indent only when
// it is enforced.
func (p *pass) indentOf(b *format.Block) int {
	parent := b.Parent()
	if parent == nil {
		return 0
	}

	s := p.settings
	width := b.Indent.Width(s, isFirstChild(b))

	switch {
	case b.Indent.IsAbsolute():
		return width
	case b.Indent.Relative:
		return p.colOf(parent) + width
	}

	for a := parent; a != nil; a = a.Parent() {
		if p.startsLine(a) {
			return p.colOf(a) + width
		}

		if a.Indent.Enforced {
			width += a.Indent.Width(s, isFirstChild(a))
		}
	}

	return width
}

func isFirstChild(b *format.Block) bool {
	parent := b.Parent()
	return parent == nil || parent.Children()[0] == b
}

func (p *pass) colOf(b *format.Block) int {
	return p.cols[p.leafAt[b.Range().Start]]
}

func (p *pass) startsLine(b *format.Block) bool {
	return p.lineStart[p.leafAt[b.Range().Start]]
}

// wrap decides the wraps of the blocks starting at leaf i, outermost first, and returns
// the number of line feeds in front of the leaf.
func (p *pass) wrap(i, lf, col int) int {
	chain := p.starts[i]

	for j := len(chain) - 1; j >= 0; j-- {
		b := chain[j]

		w := b.Wrap
		if w == nil {
			continue
		}

		n := p.seen[w]
		p.seen[w]++

		if n == 0 && w.Type == format.WrapChopDownIfLong {
			p.decideChop(w, col)
		}

		if lf > 0 || (n == 0 && !w.WrapFirstElement) {
			continue
		}

		if p.breaks(w, b, i, col) {
			p.chopped[w] = true
			lf = 1
		}
	}

	return lf
}

func (p *pass) breaks(w *format.Wrap, b *format.Block, i, col int) bool {
	switch w.Type {
	case format.WrapAlways:
		return true
	case format.WrapChopDownIfLong:
		return p.isChopped(w)
	case format.WrapNormal:
		if p.isChopped(w.Parent()) {
			return true
		}

		return col+firstLineWidth(p.src, b.Range()) > p.settings.RightMargin && p.indentOf(p.top(i)) < col
	}

	return false
}

func (p *pass) isChopped(w *format.Wrap) bool {
	for ; w != nil; w = w.Parent() {
		if p.chopped[w] {
			return true
		}
	}

	return false
}

// decideChop chops w when its holders, joined on one line from col, cross the right
// margin, or when a line comment sits among them.
func (p *pass) decideChop(w *format.Wrap, col int) {
	holders := p.holders[w]

	span := holders[0].Range()
	for _, h := range holders[1:] {
		span = span.Union(h.Range())
	}

	for k := p.leafAt[span.Start]; k < len(p.leaves) && p.leaves[k].Range().Start < span.End; k++ {
		if p.leaves[k].Kind() == syntax.KindEndOfLineComment {
			p.chopped[w] = true
			return
		}
	}

	if col+flatWidth(p.src[span.Start:span.End]) > p.settings.RightMargin {
		p.chopped[w] = true
	}
}

// text writes leaf i. Continuation lines of block comments move with their first line.
func (p *pass) text(i int) {
	leaf := p.leaves[i]
	r := leaf.Range()
	text := p.src[r.Start:r.End]

	switch {
	case !strings.Contains(text, "\n"):
		p.out.text(text)
	case leaf.Shape != format.ShapePartial && isBlockComment(leaf.Kind()) && p.editable(r.Start, r.Start):
		delta := p.cols[i] - p.file.Column(r.Start, p.settings.TabSize)
		p.out.raw(shiftLines(text, delta, p.settings.TabSize))
	default:
		p.out.raw(text)
	}
}

func isBlockComment(k syntax.Kind) bool {
	return k == syntax.KindCStyleComment || k == syntax.KindDocComment
}

// shiftLines moves every line but the first by delta columns.
func shiftLines(text string, delta, tabSize int) string {
	if delta == 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	for k := 1; k < len(lines); k++ {
		if delta > 0 {
			lines[k] = strings.Repeat(" ", delta) + lines[k]
			continue
		}

		lines[k] = dropIndent(lines[k], -delta, tabSize)
	}

	return strings.Join(lines, "\n")
}

// dropIndent removes up to n columns of leading whitespace.
func dropIndent(line string, n, tabSize int) string {
	width := 0

	for k, r := range line {
		switch {
		case width >= n:
			return line[k:]
		case r == ' ':
			width++
		case r == '\t':
			width += tabSize
		default:
			return line[k:]
		}
	}

	return ""
}

// flatWidth is the width of text with every run of whitespace collapsed to one space.
func flatWidth(text string) int {
	return utf8.RuneCountInString(strings.Join(strings.Fields(text), " "))
}

// firstLineWidth is the flat width of the first source line of r.
func firstLineWidth(src string, r syntax.TextRange) int {
	text := src[r.Start:r.End]
	if k := strings.IndexByte(text, '\n'); k >= 0 {
		text = text[:k]
	}

	return flatWidth(text)
}
