package format

import (
	"strings"

	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// buildSimple builds one block per significant child. Leading comments are given no
// indent, and once one is seen the remaining children get none either.
func (c *buildContext) buildSimple(b *Block) []*Block {
	var result []*Block

	indent := defaultIndent
	child := b.Node.FirstChild()

	for ; child != nil; child = child.NextSibling() {
		if child.IsComment() && significant(child) {
			result = append(result, c.createBlock(child, NoneIndent(), nil, NullStrategy))
			indent = NoneIndent()

			continue
		}

		if significant(child) {
			break
		}
	}

	childAlignment := c.createChildAlignment(b)
	childWrap := c.createChildWrap(b)

	if b.Kind() == syntax.KindConditionalExpression {
		b.reservedAlignment = childAlignment
		b.reservedAlignment2 = c.createChildAlignment2(b, childAlignment)
	}

	strategy := SharedStrategy(childAlignment)
	if ps := forwardedColumns(b); ps != nil {
		strategy = ps
	}

	for ; child != nil; child = child.NextSibling() {
		if !significant(child) {
			continue
		}

		if child = c.processChild(b, &result, child, strategy, childWrap, indent); child == nil {
			break
		}
	}

	return result
}

// forwardedColumns returns the column strategy b passes on to its children: statements
// hand it to the declarations or assignments they wrap.
func forwardedColumns(b *Block) *PerTypeStrategy {
	ps, ok := b.strategy.(*PerTypeStrategy)
	if !ok || !forwardsColumns(b.Kind()) {
		return nil
	}

	return ps
}

func forwardsColumns(k syntax.Kind) bool {
	return k == syntax.KindDeclarationStatement || k == syntax.KindExpressionStatement
}

// processChild appends the block(s) for child to result and returns the last node it
// consumed, nil when it consumed the rest of b's children.
func (c *buildContext) processChild(
	b *Block,
	result *[]*Block,
	child *syntax.Node,
	strategy AlignmentStrategy,
	defaultWrap *Wrap,
	childIndent Indent,
) *syntax.Node {
	s := c.settings
	kind := b.Kind()

	if child.Role == syntax.RoleTypeKeyword {
		b.afterClassKeyword = true
	}

	if child.Kind == syntax.KindMethodCallExpression && !c.indentsOnly {
		wrap := c.arrangeChildWrap(b, child, defaultWrap)
		chain := c.buildChain(child, wrap, c.arrangeChildAlignment(b, child, strategy), childIndent)
		*result = append(*result, chain)

		return child
	}

	if rule, ok := listRules[kind]; ok && child.Kind == rule.open {
		return c.processList(b, result, child, rule)
	}

	switch {
	case child.Kind == syntax.KindEnumConstant && kind == syntax.KindClass && !c.indentsOnly:
		return c.processEnumConstants(b, result, child)
	case s.TernaryOperationSignsOnNextLine && isTernarySign(child) && !c.indentsOnly:
		return c.processTernaryRange(b, result, child, defaultWrap, childIndent)
	case child.Kind == syntax.KindField || child.Kind == syntax.KindLocalVariable:
		return c.processDeclarators(b, result, child, strategy, defaultWrap, childIndent)
	}

	if child.Kind == syntax.KindModifierList && containsAnnotations(child) {
		b.annotationWrap = c.newWrap(c.annotationWrapSetting(b.Node), true)
	}

	strategyToUse := SharedStrategy(c.arrangeChildAlignment(b, child, strategy))
	if ps, ok := strategy.(*PerTypeStrategy); ok && (ps.Parent() == child.Kind || forwardsColumns(child.Kind)) {
		strategyToUse = ps
	}

	if (kind == syntax.KindImplementsList || kind == syntax.KindClass) && b.strategy.Alignment(kind, child.Kind).IsSet() {
		strategyToUse = b.strategy
	}

	block := c.createBlock(child, childIndent, c.arrangeChildWrap(b, child, defaultWrap), strategyToUse)

	switch {
	case kind == syntax.KindBinaryExpression:
		block.setReservedWrap(defaultWrap, syntax.KindBinaryExpression)
	case child.Kind == syntax.KindModifierList:
		block.setReservedWrap(b.annotationWrap, syntax.KindModifierList)

		if last := lastSignificantChild(child); last == nil || last.Kind != syntax.KindAnnotation {
			b.annotationWrap = nil
		}
	case child.Kind == syntax.KindParameterList && kind == syntax.KindMethod && len(*result) > 0:
		if first := (*result)[0]; first.Node != nil && first.Kind() == syntax.KindModifierList && startsWithAnnotation(first.Node) {
			block.setReservedWrap(first.reservedWrap(syntax.KindModifierList), syntax.KindModifierList)
		}
	}

	*result = append(*result, block)

	return child
}

// arrangeChildAlignment filters the alignment offered by strategy through the role
// child plays in b.
func (c *buildContext) arrangeChildAlignment(b *Block, child *syntax.Node, strategy AlignmentStrategy) Alignment {
	s := c.settings
	kind := b.Kind()

	if ps, ok := b.strategy.(*PerTypeStrategy); ok && ps.Parent() == kind {
		return columnAlignment(ps, kind, child)
	}

	def := strategy.Alignment(kind, child.Kind)

	if child.Kind == syntax.KindEndOfLineComment && startsLine(child) {
		return NoAlignment
	}

	switch kind {
	case syntax.KindForStatement:
		switch child.Role {
		case syntax.RoleForInitialization, syntax.RoleCondition, syntax.RoleForUpdate:
			return def
		}

		return NoAlignment
	case syntax.KindExtendsList, syntax.KindImplementsList, syntax.KindPermitsList:
		if child.Role == syntax.RoleReference || child.Role == syntax.RoleExtendsKeyword {
			return def
		}

		return NoAlignment
	case syntax.KindThrowsList:
		if child.Role == syntax.RoleReference {
			return def
		}

		return NoAlignment
	case syntax.KindClass:
		if child.Role == syntax.RoleTypeKeyword {
			return def
		}

		if !b.afterClassKeyword && child.Kind == syntax.KindModifierList {
			return def
		}

		return NoAlignment
	case syntax.KindMethod:
		switch {
		case child.Kind == syntax.KindModifierList, child.Kind == syntax.KindTypeParameterList,
			child.Role == syntax.RoleType, child.Role == syntax.RoleName:
			return def
		case child.Kind == syntax.KindThrowsList && s.AlignThrowsKeyword:
			return def
		}

		return NoAlignment
	case syntax.KindAssignmentExpression:
		if child.Role == syntax.RoleLOperand {
			return def
		}

		if child.Role == syntax.RoleROperand && child.Kind == syntax.KindAssignmentExpression {
			return def
		}

		return NoAlignment
	case syntax.KindModifierList:
		if child == firstSignificantChild(b.Node) {
			return def
		}

		return NoAlignment
	case syntax.KindConditionalExpression:
		if def.IsSet() {
			return ternaryAlignment(b, child)
		}
	}

	return def
}

// columnAlignment is the alignment of a declaration part aligned in columns. Every part
// of a declarator following a comma stays unaligned.
func columnAlignment(ps *PerTypeStrategy, kind syntax.Kind, child *syntax.Node) Alignment {
	if decl := child.Parent(); decl != nil && followsComma(decl) {
		return NoAlignment
	}

	return ps.Alignment(kind, child.Kind)
}

// startsLine reports whether n is the first token on its line in the source.
func startsLine(n *syntax.Node) bool {
	prev := n.PrevLeaf()
	if prev == nil {
		return true
	}

	return prev.IsWhitespace() && strings.HasSuffix(prev.Text(), "\n")
}

func containsAnnotations(n *syntax.Node) bool {
	return n.HasChildOfKind(syntax.KindAnnotation)
}

func startsWithAnnotation(n *syntax.Node) bool {
	first := firstSignificantChild(n)
	return first != nil && first.Kind == syntax.KindAnnotation
}

func firstSignificantChild(n *syntax.Node) *syntax.Node {
	for _, c := range n.Children() {
		if significant(c) {
			return c
		}
	}

	return nil
}

func lastSignificantChild(n *syntax.Node) *syntax.Node {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if significant(children[i]) {
			return children[i]
		}
	}

	return nil
}

func isTernarySign(n *syntax.Node) bool {
	if parentKind(n) != syntax.KindConditionalExpression {
		return false
	}

	return n.Role == syntax.RoleQuest || n.Role == syntax.RoleColon
}
