package parser

import "github.com/pseudomuto/javafmt/pkg/syntax"

// parseType parses a (possibly generic, array or varargs) type.
func (p *parser) parseType(role syntax.Role) *syntax.Node {
	p.start()

	for p.at(syntax.KindAt) && p.peekAt(1) == syntax.KindIdentifier {
		p.parseAnnotation()
	}

	switch k := p.peek(); {
	case k.IsPrimitiveType():
		p.advance(syntax.RoleTypeKeyword)
	case k == syntax.KindQuest:
		p.advance(syntax.RoleQuest)

		if p.atAny(syntax.KindExtendsKeyword, syntax.KindSuperKeyword) {
			p.advance(syntax.RoleExtendsKeyword)
			p.parseType(syntax.RoleType)
		}
	case k == syntax.KindIdentifier:
		p.parseCodeReference(syntax.RoleReference, false)
	}

	for p.at(syntax.KindLBracket) && p.peekAt(1) == syntax.KindRBracket {
		p.advance(syntax.RoleLBracket)
		p.advance(syntax.RoleRBracket)
	}

	p.expect(syntax.KindEllipsis, syntax.RoleEllipsis)

	return p.finish(syntax.KindType, role)
}

// parseCodeReference parses a qualified name with optional type arguments on each
// segment. Qualifiers nest to the left, so a.b.C is ((a).b).C. When star is set a
// trailing .* is accepted (imports).
func (p *parser) parseCodeReference(role syntax.Role, star bool) *syntax.Node {
	p.start()
	p.expect(syntax.KindIdentifier, syntax.RoleReferenceName)

	if p.at(syntax.KindLt) {
		p.parseReferenceParameterList()
	}

	ref := p.finish(syntax.KindCodeReference, role)

	for p.at(syntax.KindDot) {
		next := p.peekAt(1)
		if next != syntax.KindIdentifier && !(star && next == syntax.KindAsterisk) {
			break
		}

		p.precede(ref, syntax.RoleQualifier)
		p.advance(syntax.RoleDot)
		p.advance(syntax.RoleReferenceName)

		if p.at(syntax.KindLt) {
			p.parseReferenceParameterList()
		}

		ref = p.finish(syntax.KindCodeReference, role)
	}

	return ref
}

// parseReferenceParameterList parses type arguments, the diamond included.
func (p *parser) parseReferenceParameterList() *syntax.Node {
	p.start()
	p.advance(syntax.RoleLt)

	for !p.eof() && !p.at(syntax.KindGt) {
		before := p.cur

		p.parseType(syntax.RoleType)

		if !p.expect(syntax.KindComma, syntax.RoleComma) || p.cur == before {
			break
		}
	}

	p.expect(syntax.KindGt, syntax.RoleGt)

	return p.finish(syntax.KindReferenceParameterList, syntax.RoleReferenceParameterList)
}

// parseTypeParameterList parses <T extends A & B, U>.
func (p *parser) parseTypeParameterList() *syntax.Node {
	p.start()
	p.advance(syntax.RoleLt)

	for p.at(syntax.KindIdentifier) || p.at(syntax.KindAt) {
		p.start()

		for p.at(syntax.KindAt) {
			p.parseAnnotation()
		}

		p.expect(syntax.KindIdentifier, syntax.RoleName)

		if p.at(syntax.KindExtendsKeyword) {
			p.start()
			p.advance(syntax.RoleExtendsKeyword)
			p.parseCodeReference(syntax.RoleReference, false)

			for p.expect(syntax.KindAnd, syntax.RoleOperationSign) {
				p.parseCodeReference(syntax.RoleReference, false)
			}

			p.finish(syntax.KindExtendsBoundList, syntax.RoleExtendsList)
		}

		p.finish(syntax.KindTypeParameter, syntax.RoleTypeParameter)

		if !p.expect(syntax.KindComma, syntax.RoleComma) {
			break
		}
	}

	p.expect(syntax.KindGt, syntax.RoleGt)

	return p.finish(syntax.KindTypeParameterList, syntax.RoleTypeParameterList)
}

// parseReferenceList parses extends, implements, throws and permits clauses.
func (p *parser) parseReferenceList(kind syntax.Kind, role syntax.Role) *syntax.Node {
	p.start()
	p.advance(syntax.RoleExtendsKeyword)

	for p.at(syntax.KindIdentifier) {
		p.parseCodeReference(syntax.RoleReference, false)

		if !p.expect(syntax.KindComma, syntax.RoleComma) {
			break
		}
	}

	return p.finish(kind, role)
}

// atModifier reports whether a modifier or annotation starts at the current token.
func (p *parser) atModifier() bool {
	switch k := p.peek(); {
	case k.IsModifier():
		return k != syntax.KindDefaultKeyword || p.peekAt(1) != syntax.KindColon
	case k == syntax.KindAt:
		return p.peekAt(1) == syntax.KindIdentifier
	case k == syntax.KindIdentifier:
		return p.text(p.cur) == "sealed" && p.startsTypeDecl(p.cur+1)
	}

	return false
}

// parseModifierList parses modifiers and annotations. Nothing is built when there are none.
func (p *parser) parseModifierList() *syntax.Node {
	if !p.atModifier() {
		return nil
	}

	p.start()

	for p.atModifier() {
		if p.at(syntax.KindAt) {
			p.parseAnnotation()
			continue
		}

		p.advance(syntax.RoleModifier)
	}

	return p.finish(syntax.KindModifierList, syntax.RoleModifierList)
}

func (p *parser) parseAnnotation() *syntax.Node {
	p.start()
	p.advance(syntax.RoleAt)
	p.parseCodeReference(syntax.RoleAnnotationName, false)

	if p.at(syntax.KindLParen) {
		p.start()
		p.advance(syntax.RoleLParen)

		for !p.eof() && !p.at(syntax.KindRParen) {
			before := p.cur

			p.parseNameValuePair()

			if !p.expect(syntax.KindComma, syntax.RoleComma) || p.cur == before {
				break
			}
		}

		p.expect(syntax.KindRParen, syntax.RoleRParen)
		p.finish(syntax.KindAnnotationParameterList, syntax.RoleAnnotationParameterList)
	}

	return p.finish(syntax.KindAnnotation, syntax.RoleAnnotation)
}

func (p *parser) parseNameValuePair() *syntax.Node {
	p.start()

	if p.at(syntax.KindIdentifier) && p.peekAt(1) == syntax.KindEq {
		p.advance(syntax.RoleName)
		p.advance(syntax.RoleInitializerEq)
	}

	p.parseAnnotationValue(syntax.RoleAnnotationValue)

	return p.finish(syntax.KindNameValuePair, syntax.RoleNone)
}

func (p *parser) parseAnnotationValue(role syntax.Role) *syntax.Node {
	switch p.peek() {
	case syntax.KindAt:
		n := p.parseAnnotation()
		n.Role = role

		return n
	case syntax.KindLBrace:
		p.start()
		p.advance(syntax.RoleLBrace)

		for !p.eof() && !p.at(syntax.KindRBrace) {
			before := p.cur

			p.parseAnnotationValue(syntax.RoleAnnotationValue)

			if !p.expect(syntax.KindComma, syntax.RoleComma) || p.cur == before {
				break
			}
		}

		p.expect(syntax.KindRBrace, syntax.RoleRBrace)

		return p.finish(syntax.KindAnnotationArrayInitializer, role)
	}

	return p.parseConditional(role)
}
