package format

import (
	"strings"

	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// listRule describes a delimited list owned by a node of some kind: its brackets, the
// wrap its elements share and whether they are aligned.
type listRule struct {
	open, close syntax.Kind

	wrap  func(c *buildContext, b *Block) *Wrap
	align func(s *Settings) bool

	// childAttrs marks lists whose inserted elements are continuation indented and aligned.
	childAttrs bool
}

var listRules = map[syntax.Kind]listRule{
	syntax.KindExpressionList: {
		open: syntax.KindLParen, close: syntax.KindRParen, childAttrs: true,
		wrap: func(c *buildContext, _ *Block) *Wrap {
			w := c.newWrap(c.settings.CallParametersWrap, false)
			if w != nil && c.settings.PreferParametersWrap {
				w.IgnoreParentWraps()
			}

			return w
		},
		align: func(s *Settings) bool { return s.AlignMultilineParametersInCalls },
	},
	syntax.KindParameterList: {
		open: syntax.KindLParen, close: syntax.KindRParen, childAttrs: true,
		wrap:  parameterListWrap,
		align: func(s *Settings) bool { return s.AlignMultilineParameters },
	},
	syntax.KindRecordHeader: {
		open: syntax.KindLParen, close: syntax.KindRParen, childAttrs: true,
		wrap:  parameterListWrap,
		align: func(s *Settings) bool { return s.AlignMultilineParameters },
	},
	syntax.KindResourceList: {
		open: syntax.KindLParen, close: syntax.KindRParen, childAttrs: true,
		wrap: func(c *buildContext, b *Block) *Wrap {
			return c.newChildWrap(b.reservedWrap(syntax.KindModifierList), c.settings.ResourceListWrap, false)
		},
		align: func(s *Settings) bool { return s.AlignMultilineResources },
	},
	syntax.KindAnnotationParameterList: {
		open: syntax.KindLParen, close: syntax.KindRParen, childAttrs: true,
		wrap: func(c *buildContext, _ *Block) *Wrap {
			return c.newWrap(c.settings.CallParametersWrap, false)
		},
		align: func(s *Settings) bool { return s.AlignMultilineParametersInCalls },
	},
	syntax.KindParenthesizedExpression: {
		open: syntax.KindLParen, close: syntax.KindRParen, childAttrs: true,
		wrap:  func(*buildContext, *Block) *Wrap { return nil },
		align: func(s *Settings) bool { return s.AlignMultilineParenthesizedExpression },
	},
	syntax.KindArrayInitializerExpression: {
		open: syntax.KindLBrace, close: syntax.KindRBrace,
		wrap:  arrayInitializerWrap,
		align: func(s *Settings) bool { return s.AlignMultilineArrayInitializerExpression },
	},
	syntax.KindAnnotationArrayInitializer: {
		open: syntax.KindLBrace, close: syntax.KindRBrace,
		wrap:  arrayInitializerWrap,
		align: func(s *Settings) bool { return s.AlignMultilineArrayInitializerExpression },
	},
}

// parameterListWrap prefers wrapping after a method's annotations to wrapping its
// parameters, so the parameter wrap is derived from the annotation wrap.
func parameterListWrap(c *buildContext, b *Block) *Wrap {
	return c.newChildWrap(b.reservedWrap(syntax.KindModifierList), c.settings.MethodParametersWrap, false)
}

func arrayInitializerWrap(c *buildContext, _ *Block) *Wrap {
	return c.newWrap(c.settings.ArrayInitializerWrap, false)
}

// processList builds the blocks of a delimited list starting at open and returns its
// closing bracket, or the last node when the list is unterminated. Commas never hold
// the list's wrap or alignment.
func (c *buildContext) processList(b *Block, result *[]*Block, open *syntax.Node, rule listRule) *syntax.Node {
	s := c.settings

	internal := ContinuationWithoutFirstIndent().WithRelative(s.UseRelativeIndents)
	enforced := ContinuationIndent().WithRelative(s.UseRelativeIndents).EnforcedToChildren()

	listAl := c.alignIf(rule.align(s))
	strategy := SharedStrategy(listAl, syntax.KindComma)
	wrap := rule.wrap(c, b)

	if rule.childAttrs {
		b.childAttrs = &ChildAttributes{Indent: internal, Alignment: listAl}
	}

	bracketAl := NoAlignment
	if grand := open.Parent().Parent(); grand != nil && s.AlignMultilineMethodBrackets {
		if grand.Kind == syntax.KindMethod || grand.Kind == syntax.KindMethodCallExpression {
			bracketAl = c.alignments.New()
		}
	}

	var anonymous *anonymousArguments
	if b.Kind() == syntax.KindExpressionList && parentKind(b.Node) == syntax.KindMethodCallExpression {
		anonymous = &anonymousArguments{arena: c.alignments}
	}

	afterIncomplete := false
	prev := open

	for child := open; child != nil; child = child.NextSibling() {
		afterIncomplete = afterIncomplete || child.IsError()
		prev = child

		anonAl := anonymous.visit(child, child == open)

		if !significant(child) {
			continue
		}

		switch {
		case child == open:
			*result = append(*result, c.createBlock(child, NoneIndent(), nil, SharedStrategy(bracketAl)))
		case child.Kind == rule.close:
			if afterIncomplete {
				*result = append(*result, c.createBlock(child, internal, nil, SharedStrategy(listAl)))
			} else {
				*result = append(*result, c.createBlock(child, NoneIndent(), nil, SharedStrategy(bracketAl)))
			}

			return child
		default:
			indent := internal
			if c.shouldEnforceIndentToChildren(b, child) {
				indent = enforced
			}

			elementWrap := wrap
			if child.Kind == syntax.KindComma {
				elementWrap = nil
			}

			elementStrategy := strategy
			if anonAl.IsSet() {
				elementStrategy = SharedStrategy(anonAl)
			}

			if last := c.processChild(b, result, child, elementStrategy, elementWrap, indent); last != nil {
				child = last
			}
		}

		afterIncomplete = false
	}

	return prev
}

// anonymousArguments hands one alignment to the anonymous class arguments of a call
// that follow the '(' or another anonymous class argument on the same line. Commas in
// between are ignored.
type anonymousArguments struct {
	arena *Alignments
	al    Alignment
	ready bool
}

// visit returns the alignment of the argument n, scanned left to right from the '('.
func (a *anonymousArguments) visit(n *syntax.Node, open bool) Alignment {
	if a == nil {
		return NoAlignment
	}

	switch {
	case open:
		a.ready = true
	case n.Kind == syntax.KindComma:
	case n.IsWhitespace():
		a.ready = a.ready && !strings.Contains(n.Text(), "\n")
	case isAnonymousClassExpr(n):
		qualifies := a.ready
		a.ready = true

		if !qualifies {
			return NoAlignment
		}

		if !a.al.IsSet() {
			a.al = a.arena.New()
		}

		return a.al
	default:
		a.ready = false
	}

	return NoAlignment
}

// shouldEnforceIndentToChildren reports whether an anonymous class argument that does
// not start its line indents its body from the argument rather than the call, which is
// the case when another argument is an anonymous class too. The last argument is never
// enforced.
func (c *buildContext) shouldEnforceIndentToChildren(b *Block, n *syntax.Node) bool {
	list := b.Node

	if list.Kind != syntax.KindExpressionList || parentKind(list) != syntax.KindMethodCallExpression {
		return false
	}

	if closing := list.LastChild(); closing != nil && n == closing.PrevNonWhitespace() {
		return false
	}

	if !isAnonymousClassExpr(n) {
		return false
	}

	if prev := n.PrevSibling(); prev == nil || (prev.ContainsLineFeeds() && !prev.IsWhitespace()) {
		return false
	}

	for _, arg := range list.Children() {
		if arg != n && isAnonymousClassExpr(arg) {
			return true
		}
	}

	return false
}

// isAnonymousClassExpr reports whether n creates an anonymous class instance.
func isAnonymousClassExpr(n *syntax.Node) bool {
	if n == nil || n.Kind != syntax.KindNewExpression {
		return false
	}

	last := n.LastChild()

	return last != nil && last.Kind == syntax.KindAnonymousClass
}

// isAmongAnonymousArguments reports whether the anonymous class n is one of several
// anonymous class arguments of a method call. The closing braces of such arguments keep
// the alignment of their argument.
func isAmongAnonymousArguments(n *syntax.Node) bool {
	newExpr := n.Parent()
	if newExpr == nil {
		return false
	}

	list := newExpr.Parent()
	if list == nil || list.Kind != syntax.KindExpressionList || parentKind(list) != syntax.KindMethodCallExpression {
		return false
	}

	count := 0

	for _, arg := range list.Children() {
		if isAnonymousClassExpr(arg) {
			count++
		}
	}

	return count > 1 && isAnonymousClassExpr(newExpr)
}

// processEnumConstants builds the constants of an enum body up to the delimiter ending
// them: the ';' or, without one, the last constant or comma. Constants share one wrap
// that never breaks before a comma.
func (c *buildContext) processEnumConstants(b *Block, result *[]*Block, child *syntax.Node) *syntax.Node {
	last := enumConstantsEnd(child)
	wrap := c.newWrap(c.settings.EnumConstantsWrap, true)

	for ; child != nil; child = child.NextSibling() {
		if !significant(child) {
			continue
		}

		w := wrap
		if child.Kind == syntax.KindComma || child.Kind == syntax.KindSemicolon {
			w = nil
		}

		*result = append(*result, c.createBlock(child, NormalIndent(), w, NullStrategy))

		if child == last {
			return child
		}
	}

	return nil
}

func enumConstantsEnd(first *syntax.Node) *syntax.Node {
	last := first

	for n := first; n != nil; n = n.NextSibling() {
		switch {
		case n.Kind == syntax.KindSemicolon:
			return n
		case n.Kind == syntax.KindEnumConstant, n.Kind == syntax.KindComma:
			last = n
		case n.IsWhitespace(), n.IsComment():
		default:
			return last
		}
	}

	return last
}
