package format

import "github.com/pseudomuto/javafmt/pkg/syntax"

type codeBlockState int

const (
	codeBlockBeforeFirst codeBlockState = iota
	codeBlockBeforeLBrace
	codeBlockInsideBody
)

// buildCodeBlock builds classes, code blocks and statements used as bodies. Everything
// up to the '{' is the header; the content between the braces is indented by the
// block's children indent.
func (c *buildContext) buildCodeBlock(b *Block) []*Block {
	var result []*Block

	childAlignment := c.createChildAlignment(b)
	childWrap := c.createChildWrap(b)
	b.childAlignment = childAlignment

	var aligner *ColumnAligner
	if b.Kind() == syntax.KindCodeBlock {
		aligner = statementAligner(c.alignments, c.settings)
	}

	columns := aligner.Start()
	state := codeBlockBeforeFirst

	for child := b.Node.FirstChild(); child != nil; child = child.NextSibling() {
		if !significant(child) {
			continue
		}

		indent := c.codeBlockIndent(b, child, state)
		state = nextCodeBlockState(child, state)

		switch {
		case child.Kind == syntax.KindSwitchLabelStatement:
			child = c.processCaseSection(b, &result, child, childAlignment, childWrap, indent)
		case isClassLike(b.Kind()) && child.Kind == syntax.KindLBrace:
			child = c.composeCodeBlock(b, &result, child, c.externalIndent(b.Node), b.childrenIndent, nil)
		case b.Kind() == syntax.KindCodeBlock && child.Kind == syntax.KindLBrace && parentKind(b.Node) == syntax.KindMethod:
			child = c.composeCodeBlock(b, &result, child, indent, b.childrenIndent, childWrap)
		default:
			var strategy AlignmentStrategy
			if columns, strategy = aligner.Next(columns, child); strategy == NullStrategy {
				strategy = SharedStrategy(childAlignment)
			}

			child = c.processChild(b, &result, child, strategy, childWrap, indent)
		}

		if child == nil {
			break
		}
	}

	return result
}

func (c *buildContext) codeBlockIndent(b *Block, child *syntax.Node, state codeBlockState) Indent {
	switch {
	case child.Kind == syntax.KindRBrace, child.Kind == syntax.KindAt:
		return NoneIndent()
	case state == codeBlockBeforeFirst:
		return NoneIndent()
	case child.Kind == syntax.KindSwitchLabelStatement:
		return c.internalIndent(b.Node, b.childrenIndent)
	case state == codeBlockBeforeLBrace:
		if child.Kind == syntax.KindLBrace {
			return c.externalIndent(b.Node)
		}

		return ContinuationIndent().WithRelative(c.settings.UseRelativeIndents)
	}

	return c.internalIndent(b.Node, b.childrenIndent)
}

func nextCodeBlockState(child *syntax.Node, state codeBlockState) codeBlockState {
	switch state {
	case codeBlockBeforeFirst:
		if child.Kind == syntax.KindLBrace {
			return codeBlockInsideBody
		}

		return codeBlockBeforeLBrace
	case codeBlockBeforeLBrace:
		if child.Kind == syntax.KindLBrace {
			return codeBlockInsideBody
		}

		return codeBlockBeforeLBrace
	}

	return codeBlockInsideBody
}

// composeCodeBlock groups a '{', the content and the '}' into a synthetic block, so the
// braces of classes and method bodies indent as a unit. Members and statements are
// aligned in columns where the settings ask for it. It returns the '}' or nil when the
// body is unterminated.
func (c *buildContext) composeCodeBlock(
	b *Block,
	result *[]*Block,
	lbrace *syntax.Node,
	indent Indent,
	childrenIndent int,
	childWrap *Wrap,
) *syntax.Node {
	local := []*Block{c.createBlock(lbrace, NoneIndent(), nil, NullStrategy)}

	aligner := statementAligner(c.alignments, c.settings)
	if isClassLike(b.Kind()) {
		aligner = memberAligner(c.alignments, c.settings)
	}

	columns := aligner.Start()
	internal := c.internalIndent(b.Node, childrenIndent)

	flush := func() {
		body := newSynthetic(c, local, NoAlignment, c.resolveIndent(indent, lbrace), nil)
		body.childAttrs = &ChildAttributes{Indent: internal}
		*result = append(*result, body)
	}

	for child := lbrace.NextSibling(); child != nil; child = child.NextSibling() {
		if !significant(child) {
			continue
		}

		if child.Kind == syntax.KindRBrace {
			rbraceAl := NoAlignment
			if b.Kind() == syntax.KindAnonymousClass && isAmongAnonymousArguments(b.Node) {
				rbraceAl = b.Alignment
			}

			local = append(local, c.createBlock(child, NoneIndent(), nil, SharedStrategy(rbraceAl)))
			flush()

			return child
		}

		var strategy AlignmentStrategy
		columns, strategy = aligner.Next(columns, child)

		if child = c.processChild(b, &local, child, strategy, childWrap, internal); child == nil {
			break
		}
	}

	flush()

	return nil
}

// processCaseSection groups a switch label with the statements it governs. The section
// ends before the next label or the closing brace, or after a break or return.
func (c *buildContext) processCaseSection(
	b *Block,
	result *[]*Block,
	label *syntax.Node,
	childAlignment Alignment,
	childWrap *Wrap,
	indent Indent,
) *syntax.Node {
	local := []*Block{c.createBlock(label, NoneIndent(), nil, NullStrategy)}
	childIndent := NormalIndent()

	flush := func() {
		section := newSynthetic(c, local, childAlignment, indent, childWrap)
		section.childAttrs = &ChildAttributes{Indent: NormalIndent()}
		section.incomplete = true
		section.caseSection = true
		*result = append(*result, section)
	}

	for child := label.NextSibling(); child != nil; child = child.NextSibling() {
		if child.Kind == syntax.KindSwitchLabelStatement || child.Kind == syntax.KindRBrace {
			flush()
			return child.PrevSibling()
		}

		if !significant(child) {
			continue
		}

		if child.Kind == syntax.KindBlockStatement {
			childIndent = NoneIndent()
		}

		last := c.processChild(b, &local, child, NullStrategy, nil, childIndent)

		if isBreakOrReturn(child) {
			flush()
			return child
		}

		if last == nil {
			break
		}

		child = last
	}

	flush()

	return nil
}

func isBreakOrReturn(n *syntax.Node) bool {
	return n.Kind == syntax.KindBreakStatement || n.Kind == syntax.KindReturnStatement
}
