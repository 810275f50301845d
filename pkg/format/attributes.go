package format

import "github.com/pseudomuto/javafmt/pkg/syntax"

// InsertionAttributes returns the block a child inserted at index belongs to, with the
// attributes it gets there. While the child before the insertion point is incomplete,
// the inserted text continues that child rather than starting a sibling.
func (b *Block) InsertionAttributes(index int) (*Block, ChildAttributes) {
	parent := b

	for index > 0 {
		children := parent.Children()
		if index > len(children) {
			index = len(children)
		}

		prev := children[index-1]
		if prev.IsLeaf() || !prev.IsIncomplete() {
			break
		}

		parent, index = prev, len(prev.Children())
	}

	return parent, parent.ChildAttributes(index)
}

func (c *buildContext) childAttributes(b *Block, index int) ChildAttributes {
	children := b.Children()
	index = max(0, min(index, len(children)))

	switch b.Shape {
	case ShapeLeaf, ShapePartial:
		return ChildAttributes{Indent: NoneIndent()}
	case ShapeSynthetic:
		return c.syntheticAttributes(b, index)
	case ShapeCodeBlock:
		return c.codeBlockAttributes(b, index)
	case ShapeBlockContaining:
		return c.blockContainingAttributes(b, index)
	case ShapeLabeled:
		return ChildAttributes{Indent: NoneIndent()}
	}

	return c.simpleAttributes(b, index)
}

func (c *buildContext) simpleAttributes(b *Block, index int) ChildAttributes {
	if b.childAttrs != nil {
		return *b.childAttrs
	}

	if isAfter(b, index, syntax.KindDocComment) {
		return ChildAttributes{Indent: NoneIndent(), Alignment: b.childAlignment}
	}

	indent, ok := childIndent(b.Node, c.settings)
	if !ok {
		indent = ContinuationWithoutFirstIndent().WithRelative(c.settings.UseRelativeIndents)
	}

	return ChildAttributes{Indent: indent, Alignment: firstChildAlignment(b.Children(), len(b.Children()))}
}

func (c *buildContext) codeBlockAttributes(b *Block, index int) ChildAttributes {
	switch {
	case isAfter(b, index, syntax.KindSwitchLabelStatement):
		return ChildAttributes{Indent: NormalIndent()}
	case b.childAttrs != nil:
		return *b.childAttrs
	case isAfter(b, index, syntax.KindDocComment):
		return ChildAttributes{Indent: NoneIndent(), Alignment: b.childAlignment}
	}

	return ChildAttributes{Indent: c.internalIndent(b.Node, b.childrenIndent)}
}

func (c *buildContext) blockContainingAttributes(b *Block, index int) ChildAttributes {
	children := b.Children()

	switch {
	case isAfter(b, index, syntax.KindDocComment):
		return ChildAttributes{Indent: NoneIndent()}
	case b.childAttrs != nil:
		return *b.childAttrs
	case index == 0:
		return ChildAttributes{Indent: NoneIndent()}
	case index == len(children) && hasOptionalBraces(b.Kind()) && afterBracelessBody(children):
		return ChildAttributes{Indent: c.externalIndent(b.Node)}
	}

	indent := ContinuationIndent().WithRelative(c.settings.UseRelativeIndents)
	if index < len(b.indentsBefore) {
		indent = b.indentsBefore[index]
	}

	return ChildAttributes{Indent: indent, Alignment: firstChildAlignment(children, index)}
}

// syntheticAttributes lines an inserted child up with its neighbours, unless the group
// was given explicit attributes. Case sections outdent after the statement ending them.
func (c *buildContext) syntheticAttributes(b *Block, index int) ChildAttributes {
	children := b.Children()

	if b.caseSection && index > 0 {
		prev := children[index-1]
		if prev.Node != nil && (prev.Kind() == syntax.KindBlockStatement || isBreakOrReturn(prev.Node)) {
			return ChildAttributes{Indent: NoneIndent()}
		}
	}

	if b.childAttrs != nil {
		return *b.childAttrs
	}

	if index < len(children) {
		return ChildAttributes{Indent: children[index].Indent, Alignment: children[index].Alignment}
	}

	last := children[len(children)-1]

	return ChildAttributes{Indent: last.Indent, Alignment: last.Alignment}
}

func hasOptionalBraces(k syntax.Kind) bool {
	switch k {
	case syntax.KindIfStatement, syntax.KindWhileStatement, syntax.KindForStatement, syntax.KindForeachStatement:
		return true
	}

	return false
}

// afterBracelessBody reports whether the last two children are a ')' and a body that
// is not a braced block.
func afterBracelessBody(children []*Block) bool {
	if len(children) < 2 {
		return false
	}

	paren, body := children[len(children)-2], children[len(children)-1]
	if paren.Kind() != syntax.KindRParen || body.Node == nil {
		return false
	}

	return body.Kind() != syntax.KindBlockStatement && body.Kind() != syntax.KindLBrace
}

// isAfter reports whether the child before index has one of kinds.
func isAfter(b *Block, index int, kinds ...syntax.Kind) bool {
	children := b.Children()
	if index <= 0 || index > len(children) {
		return false
	}

	prev := children[index-1]
	for _, k := range kinds {
		if prev.Node != nil && prev.Kind() == k {
			return true
		}
	}

	return false
}

// firstChildAlignment is the first alignment held by one of the children before index.
func firstChildAlignment(children []*Block, index int) Alignment {
	for i := 0; i < index && i < len(children); i++ {
		if children[i].Alignment.IsSet() {
			return children[i].Alignment
		}
	}

	return NoAlignment
}

// isIncompleteNode reports whether n lacks its trailing syntax: a closing bracket, a
// terminating ';', a body or an operand.
func isIncompleteNode(n *syntax.Node) bool {
	if n.IsError() {
		return true
	}

	if n.IsLeaf() {
		return false
	}

	last := lastCodeChild(n)
	if last == nil {
		return true
	}

	switch {
	case isClassLike(n.Kind), n.Kind == syntax.KindCodeBlock,
		n.Kind == syntax.KindArrayInitializerExpression, n.Kind == syntax.KindAnnotationArrayInitializer:
		return last.Kind != syntax.KindRBrace
	case isParenList(n.Kind):
		return last.Kind != syntax.KindRParen
	case needsSemicolon(n):
		return lastToken(n).Kind != syntax.KindSemicolon
	}

	switch n.Kind {
	case syntax.KindIfStatement:
		if n.ChildByRole(syntax.RoleThenBranch) == nil || last.Kind == syntax.KindElseKeyword {
			return true
		}
	case syntax.KindWhileStatement, syntax.KindForStatement, syntax.KindForeachStatement:
		if n.ChildByRole(syntax.RoleLoopBody) == nil {
			return true
		}
	case syntax.KindMethod:
		if !n.HasChildOfKind(syntax.KindCodeBlock) && last.Kind != syntax.KindSemicolon {
			return true
		}
	case syntax.KindLambdaExpression:
		if n.ChildByRole(syntax.RoleLambdaBody) == nil {
			return true
		}
	case syntax.KindBinaryExpression, syntax.KindAssignmentExpression:
		if n.ChildByRole(syntax.RoleROperand) == nil {
			return true
		}
	case syntax.KindConditionalExpression:
		if n.ChildByRole(syntax.RoleElseExpression) == nil {
			return true
		}
	}

	return isIncompleteNode(last)
}

func isParenList(k syntax.Kind) bool {
	switch k {
	case syntax.KindExpressionList, syntax.KindParameterList, syntax.KindResourceList,
		syntax.KindAnnotationParameterList, syntax.KindParenthesizedExpression, syntax.KindRecordHeader:
		return true
	}

	return false
}

// needsSemicolon reports whether n is terminated by a ';' of its own. A declarator
// followed by a comma is terminated by the last declarator of its group.
func needsSemicolon(n *syntax.Node) bool {
	switch n.Kind {
	case syntax.KindExpressionStatement, syntax.KindDeclarationStatement, syntax.KindReturnStatement,
		syntax.KindBreakStatement, syntax.KindContinueStatement, syntax.KindThrowStatement,
		syntax.KindDoWhileStatement, syntax.KindAssertStatement, syntax.KindImportStatement,
		syntax.KindPackageStatement:
		return true
	case syntax.KindField:
		next := n.NextNonTrivia()
		return next == nil || next.Kind != syntax.KindComma
	}

	return false
}

// lastCodeChild is the last child of n that is neither whitespace nor a comment.
func lastCodeChild(n *syntax.Node) *syntax.Node {
	for child := n.LastChild(); child != nil; child = child.PrevSibling() {
		if significant(child) && !child.IsComment() {
			return child
		}
	}

	return nil
}

func lastToken(n *syntax.Node) *syntax.Node {
	for !n.IsLeaf() {
		last := lastCodeChild(n)
		if last == nil {
			return n
		}

		n = last
	}

	return n
}
