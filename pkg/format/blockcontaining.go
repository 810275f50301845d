package format

import "github.com/pseudomuto/javafmt/pkg/syntax"

type bodyState int

const (
	bodyBeforeFirst bodyState = iota
	bodyBeforeBlock
	bodyAfterElse
)

// buildBlockContaining builds statements and declarations owning a body. Besides the
// child blocks it records, per child, the indent a line inserted before that child gets.
func (c *buildContext) buildBlockContaining(b *Block) []*Block {
	var result []*Block

	childAlignment := c.createChildAlignment(b)
	childWrap := c.createChildWrap(b)
	b.childAlignment = childAlignment

	state := bodyBeforeFirst
	relative := c.settings.UseRelativeIndents

	for child := b.Node.FirstChild(); child != nil; child = child.NextSibling() {
		if !significant(child) {
			continue
		}

		indent := c.bodyIndent(b, child, state)
		b.indentsBefore = append(b.indentsBefore, c.bodyIndentBefore(b, child, state))
		state = nextBodyState(child, state)

		child = c.processChild(b, &result, child, SharedStrategy(childAlignment), childWrap, indent)

		for len(b.indentsBefore) < len(result) {
			b.indentsBefore = append(b.indentsBefore, ContinuationIndent().WithRelative(relative))
		}

		if child == nil {
			break
		}
	}

	b.indentsBefore = append(b.indentsBefore[:len(result)], c.endIndentBefore(b, state))

	return result
}

func (c *buildContext) bodyIndent(b *Block, child *syntax.Node, state bodyState) Indent {
	switch {
	case state == bodyAfterElse && child.Kind == syntax.KindIfStatement:
		if c.settings.SpecialElseIfTreatment {
			return NoneIndent()
		}

		return c.internalIndent(b.Node, 1)
	case isSimpleBody(child):
		return NormalIndent()
	case child.Kind == syntax.KindElseKeyword:
		return c.externalIndent(b.Node)
	case state == bodyBeforeFirst, child.Kind == syntax.KindWhileKeyword:
		return NoneIndent()
	case isPartOfCodeBlock(child):
		return c.externalIndent(b.Node)
	case child.IsComment():
		return c.internalIndent(b.Node, 1)
	}

	if prev := child.PrevNonWhitespace(); prev != nil && prev.Kind == syntax.KindModifierList {
		return NoneIndent()
	}

	return ContinuationIndent().WithRelative(c.settings.UseRelativeIndents)
}

func (c *buildContext) bodyIndentBefore(b *Block, child *syntax.Node, state bodyState) Indent {
	switch {
	case state == bodyAfterElse:
		if c.settings.SpecialElseIfTreatment {
			return c.externalIndent(b.Node)
		}

		return c.internalIndent(b.Node, 1)
	case state == bodyBeforeBlock && (isSimpleBody(child) || child.Kind == syntax.KindBlockStatement):
		return c.internalIndent(b.Node, 1)
	case state == bodyBeforeFirst, child.Kind == syntax.KindElseKeyword:
		return c.externalIndent(b.Node)
	}

	return ContinuationIndent().WithRelative(c.settings.UseRelativeIndents)
}

// endIndentBefore is the indent of a child appended after the last one. A header
// without its body expects the body next.
func (c *buildContext) endIndentBefore(b *Block, state bodyState) Indent {
	switch state {
	case bodyAfterElse:
		if c.settings.SpecialElseIfTreatment {
			return c.externalIndent(b.Node)
		}

		return c.internalIndent(b.Node, 1)
	case bodyBeforeBlock:
		return c.internalIndent(b.Node, 1)
	}

	return c.externalIndent(b.Node)
}

// nextBodyState advances the state machine. A finished code block brings it back to
// the start, so catch sections and finally clauses line up with their try.
func nextBodyState(child *syntax.Node, state bodyState) bodyState {
	if child.Kind == syntax.KindElseKeyword {
		return bodyAfterElse
	}

	switch state {
	case bodyBeforeFirst:
		if child.IsComment() || child.Kind == syntax.KindCatchSection {
			return bodyBeforeFirst
		}
	case bodyBeforeBlock:
		if child.Kind == syntax.KindBlockStatement || child.Kind == syntax.KindCodeBlock {
			return bodyBeforeFirst
		}
	}

	return bodyBeforeBlock
}

// isSimpleBody reports whether child is the body of an if or a loop without braces.
func isSimpleBody(child *syntax.Node) bool {
	return isBodyStatement(child) && child.Kind != syntax.KindBlockStatement
}

// isPartOfCodeBlock reports whether child is a braced body, or a comment directly
// preceding one.
func isPartOfCodeBlock(child *syntax.Node) bool {
	for n := child; n != nil; n = n.NextSibling() {
		switch {
		case n.Kind == syntax.KindBlockStatement, n.Kind == syntax.KindCodeBlock:
			return true
		case n.IsWhitespace(), n.Kind == syntax.KindEndOfLineComment, n.Kind == syntax.KindDocComment:
			continue
		}

		return false
	}

	return false
}
