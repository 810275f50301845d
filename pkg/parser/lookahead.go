package parser

import "github.com/pseudomuto/javafmt/pkg/syntax"

// The scan helpers below work on significant token indexes and never build nodes. They
// resolve the places where Java needs unbounded lookahead: declarations versus
// expressions, casts versus parenthesized expressions and lambdas.

// scanType returns the index following a type starting at i.
func (p *parser) scanType(i int) (int, bool) {
	i = p.scanAnnotations(i)

	switch k := p.kind(i); {
	case k.IsPrimitiveType():
		i++
	case k == syntax.KindIdentifier:
		i++

		if p.kind(i) == syntax.KindLt {
			var ok bool
			if i, ok = p.scanTypeArgs(i); !ok {
				return i, false
			}
		}

		for p.kind(i) == syntax.KindDot && p.kind(i+1) == syntax.KindIdentifier {
			i += 2

			if p.kind(i) == syntax.KindLt {
				var ok bool
				if i, ok = p.scanTypeArgs(i); !ok {
					return i, false
				}
			}
		}
	default:
		return i, false
	}

	for p.kind(i) == syntax.KindLBracket && p.kind(i+1) == syntax.KindRBracket {
		i += 2
	}

	return i, true
}

// scanTypeArgs skips a balanced <...> list starting at i.
func (p *parser) scanTypeArgs(i int) (int, bool) {
	depth := 0

	for ; i < len(p.sig); i++ {
		switch k := p.kind(i); {
		case k == syntax.KindLt:
			depth++
		case k == syntax.KindGt:
			depth--
			if depth == 0 {
				return i + 1, true
			}
		case k == syntax.KindIdentifier, k == syntax.KindDot, k == syntax.KindComma, k == syntax.KindQuest,
			k == syntax.KindExtendsKeyword, k == syntax.KindSuperKeyword, k == syntax.KindLBracket,
			k == syntax.KindRBracket, k == syntax.KindAnd, k == syntax.KindAt, k.IsPrimitiveType():
		default:
			return i, false
		}
	}

	return i, false
}

// scanAnnotations skips annotations (but not @interface) starting at i.
func (p *parser) scanAnnotations(i int) int {
	for p.kind(i) == syntax.KindAt && p.kind(i+1) == syntax.KindIdentifier {
		i += 2
		for p.kind(i) == syntax.KindDot && p.kind(i+1) == syntax.KindIdentifier {
			i += 2
		}

		if p.kind(i) == syntax.KindLParen {
			i = p.scanBalanced(i)
		}
	}

	return i
}

// scanBalanced returns the index following the bracket that closes the one at i.
func (p *parser) scanBalanced(i int) int {
	depth := 0

	for ; i < len(p.sig); i++ {
		switch p.kind(i) {
		case syntax.KindLParen, syntax.KindLBrace, syntax.KindLBracket:
			depth++
		case syntax.KindRParen, syntax.KindRBrace, syntax.KindRBracket:
			depth--
			if depth == 0 {
				return i + 1
			}
		}
	}

	return i
}

// scanModifiers skips modifier keywords and annotations starting at i.
func (p *parser) scanModifiers(i int) int {
	for {
		switch k := p.kind(i); {
		case k.IsModifier() && k != syntax.KindDefaultKeyword:
			i++
		case k == syntax.KindAt && p.kind(i+1) == syntax.KindIdentifier:
			i = p.scanAnnotations(i)
		case k == syntax.KindIdentifier && p.text(i) == "sealed" && p.startsTypeDecl(i+1):
			i++
		default:
			return i
		}
	}
}

// startsTypeDecl reports whether a class like declaration (after modifiers) starts at i.
func (p *parser) startsTypeDecl(i int) bool {
	i = p.scanModifiers(i)

	switch p.kind(i) {
	case syntax.KindClassKeyword, syntax.KindInterfaceKeyword, syntax.KindEnumKeyword:
		return true
	case syntax.KindAt:
		return p.kind(i+1) == syntax.KindInterfaceKeyword
	case syntax.KindIdentifier:
		return p.text(i) == "record" && p.kind(i+1) == syntax.KindIdentifier
	}

	return false
}

// atLocalVariable reports whether a local variable declaration starts at the current token.
func (p *parser) atLocalVariable() bool {
	i := p.scanModifiers(p.cur)
	if i > p.cur && !p.startsTypeDecl(p.cur) {
		return true
	}

	j, ok := p.scanType(i)
	if !ok || p.kind(j) != syntax.KindIdentifier {
		return false
	}

	switch p.kind(j + 1) {
	case syntax.KindEq, syntax.KindSemicolon, syntax.KindComma, syntax.KindLBracket, syntax.KindColon:
		return true
	}

	return false
}

// atForeach reports whether the for header at the current token uses the enhanced form.
func (p *parser) atForeach() bool {
	depth := 0

	for i := p.cur; i < len(p.sig); i++ {
		switch p.kind(i) {
		case syntax.KindLParen, syntax.KindLBracket, syntax.KindLBrace:
			depth++
		case syntax.KindRParen, syntax.KindRBracket, syntax.KindRBrace:
			if depth == 0 {
				return false
			}

			depth--
		case syntax.KindSemicolon:
			return false
		case syntax.KindColon:
			if depth == 0 {
				return true
			}
		}
	}

	return false
}

// atCast reports whether the '(' at the current token opens a type cast.
func (p *parser) atCast() bool {
	i := p.cur + 1
	primitive := p.kind(i).IsPrimitiveType()

	j, ok := p.scanType(i)
	if !ok {
		return false
	}

	for ok && p.kind(j) == syntax.KindAnd {
		j, ok = p.scanType(j + 1)
	}

	if !ok || p.kind(j) != syntax.KindRParen {
		return false
	}

	if primitive {
		return true
	}

	switch k := p.kind(j + 1); {
	case k == syntax.KindIdentifier, k.IsLiteral(), k == syntax.KindLParen, k == syntax.KindExcl,
		k == syntax.KindTilde, k == syntax.KindThisKeyword, k == syntax.KindSuperKeyword,
		k == syntax.KindNewKeyword, k.IsPrimitiveType():
		return true
	}

	return false
}

// atLambda reports whether a lambda expression starts at the current token.
func (p *parser) atLambda() bool {
	switch p.peek() {
	case syntax.KindIdentifier:
		return p.peekAt(1) == syntax.KindArrow
	case syntax.KindLParen:
		return p.kind(p.scanBalanced(p.cur)) == syntax.KindArrow
	}

	return false
}

// atTypeMethodRef reports whether a generic or array type followed by '::' starts here.
func (p *parser) atTypeMethodRef() bool {
	j, ok := p.scanType(p.cur)
	if !ok || p.kind(j) != syntax.KindDoubleColon {
		return false
	}

	for i := p.cur; i < j; i++ {
		if k := p.kind(i); k == syntax.KindLt || k == syntax.KindLBracket {
			return true
		}
	}

	return false
}
