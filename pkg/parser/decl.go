package parser

import "github.com/pseudomuto/javafmt/pkg/syntax"

func (p *parser) parseCompilationUnit() {
	if p.at(syntax.KindPackageKeyword) || (p.at(syntax.KindAt) && p.packageAfterAnnotations()) {
		p.startDecl()

		for p.at(syntax.KindAt) {
			p.parseAnnotation()
		}

		p.advance(syntax.RoleKeyword)
		p.parseCodeReference(syntax.RoleReference, false)
		p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)
		p.finish(syntax.KindPackageStatement, syntax.RolePackageStatement)
	}

	if p.at(syntax.KindImportKeyword) {
		p.start()

		for p.at(syntax.KindImportKeyword) || p.at(syntax.KindSemicolon) {
			if p.at(syntax.KindSemicolon) {
				p.advance(syntax.RoleSemicolon)
				continue
			}

			p.parseImport()
		}

		p.finish(syntax.KindImportList, syntax.RoleImportList)
	}

	for !p.eof() {
		before := p.cur

		switch {
		case p.at(syntax.KindSemicolon):
			p.advance(syntax.RoleSemicolon)
		case p.startsTypeDecl(p.cur):
			p.parseMember()
		default:
			p.recover(syntax.KindClassKeyword, syntax.KindInterfaceKeyword, syntax.KindEnumKeyword,
				syntax.KindPublicKeyword, syntax.KindAt)
		}

		if p.cur == before {
			p.recover()
		}
	}
}

func (p *parser) packageAfterAnnotations() bool {
	return p.kind(p.scanAnnotations(p.cur)) == syntax.KindPackageKeyword
}

func (p *parser) parseImport() {
	p.start()
	p.advance(syntax.RoleKeyword)

	kind := syntax.KindImportStatement
	if p.expect(syntax.KindStaticKeyword, syntax.RoleModifier) {
		kind = syntax.KindImportStaticStatement
	}

	p.parseCodeReference(syntax.RoleReference, true)
	p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)
	p.finish(kind, syntax.RoleImport)
}

// parseMember parses one member of a class body, or a top level/local type declaration.
// Fields declaring several variables produce one node per variable, separated by commas
// attached to the enclosing node.
func (p *parser) parseMember() *syntax.Node {
	p.startDecl()
	p.parseModifierList()

	switch {
	case p.startsTypeDecl(p.cur):
		return p.parseClassRest()
	case p.at(syntax.KindLBrace):
		p.parseCodeBlock(syntax.RoleBlock)
		return p.finish(syntax.KindClassInitializer, syntax.RoleClassMember)
	case p.at(syntax.KindLt):
		p.parseTypeParameterList()
	}

	if p.at(syntax.KindIdentifier) && (p.peekAt(1) == syntax.KindLParen || p.peekAt(1) == syntax.KindLBrace) {
		p.advance(syntax.RoleName)
		return p.parseMethodRest()
	}

	if k := p.peek(); k != syntax.KindIdentifier && !k.IsPrimitiveType() {
		if k != syntax.KindRBrace && k != syntax.KindNone {
			p.recover(syntax.KindRBrace)
		}

		return p.finish(syntax.KindError, syntax.RoleClassMember)
	}

	p.parseType(syntax.RoleType)
	p.expect(syntax.KindIdentifier, syntax.RoleName)

	if p.at(syntax.KindLParen) {
		return p.parseMethodRest()
	}

	return p.parseVariableRest(syntax.KindField, syntax.RoleClassMember, true)
}

// parseVariableRest finishes a variable declaration whose type and name were parsed.
// Every further declarator becomes a sibling node of the same kind, the semicolon (when
// wanted) ends up inside the last one.
func (p *parser) parseVariableRest(kind syntax.Kind, role syntax.Role, semicolon bool) *syntax.Node {
	for {
		for p.at(syntax.KindLBracket) {
			p.advance(syntax.RoleLBracket)
			p.expect(syntax.KindRBracket, syntax.RoleRBracket)
		}

		if p.at(syntax.KindEq) {
			p.advance(syntax.RoleInitializerEq)
			p.parseVariableInitializer(syntax.RoleInitializer)
		}

		if !p.at(syntax.KindComma) {
			break
		}

		p.finish(kind, role)
		p.advance(syntax.RoleComma)
		p.start()
		p.expect(syntax.KindIdentifier, syntax.RoleName)
	}

	if semicolon {
		p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)
	}

	return p.finish(kind, role)
}

func (p *parser) parseVariableInitializer(role syntax.Role) *syntax.Node {
	if p.at(syntax.KindLBrace) {
		return p.parseArrayInitializer(role)
	}

	return p.parseExpression(role)
}

// parseMethodRest finishes a method or constructor after its name.
func (p *parser) parseMethodRest() *syntax.Node {
	if p.at(syntax.KindLParen) {
		p.parseParameterList(syntax.KindParameterList, syntax.KindParameter, syntax.RoleParameterList)
	}

	for p.at(syntax.KindLBracket) {
		p.advance(syntax.RoleLBracket)
		p.expect(syntax.KindRBracket, syntax.RoleRBracket)
	}

	if p.at(syntax.KindThrowsKeyword) {
		p.parseReferenceList(syntax.KindThrowsList, syntax.RoleThrowsList)
	}

	if p.at(syntax.KindDefaultKeyword) {
		p.advance(syntax.RoleKeyword)
		p.parseAnnotationValue(syntax.RoleDefaultValue)
	}

	if p.at(syntax.KindLBrace) {
		p.parseCodeBlock(syntax.RoleMethodBody)
	} else {
		p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)
	}

	return p.finish(syntax.KindMethod, syntax.RoleClassMember)
}

// parseParameterList parses a parenthesized parameter list. It serves method
// parameters, record headers and lambda parameters, the latter possibly untyped.
func (p *parser) parseParameterList(kind, param syntax.Kind, role syntax.Role) *syntax.Node {
	p.start()
	p.advance(syntax.RoleLParen)

	for !p.eof() && !p.at(syntax.KindRParen) {
		before := p.cur

		p.parseParameter(param, syntax.RoleParameter)

		if !p.expect(syntax.KindComma, syntax.RoleComma) || p.cur == before {
			break
		}
	}

	p.expect(syntax.KindRParen, syntax.RoleRParen)

	return p.finish(kind, role)
}

func (p *parser) parseParameter(kind syntax.Kind, role syntax.Role) *syntax.Node {
	p.start()

	if p.at(syntax.KindIdentifier) && (p.peekAt(1) == syntax.KindComma || p.peekAt(1) == syntax.KindRParen) {
		p.advance(syntax.RoleName)
		return p.finish(kind, role)
	}

	p.parseModifierList()
	p.parseType(syntax.RoleType)

	// receiver parameter
	if p.at(syntax.KindThisKeyword) {
		p.advance(syntax.RoleName)
		return p.finish(kind, role)
	}

	p.expect(syntax.KindIdentifier, syntax.RoleName)

	for p.at(syntax.KindLBracket) {
		p.advance(syntax.RoleLBracket)
		p.expect(syntax.KindRBracket, syntax.RoleRBracket)
	}

	return p.finish(kind, role)
}

// parseClassRest parses a class, interface, enum, annotation type or record after its
// modifiers.
func (p *parser) parseClassRest() *syntax.Node {
	enum := false

	switch {
	case p.at(syntax.KindAt):
		p.advance(syntax.RoleAt)
		p.advance(syntax.RoleTypeKeyword)
	case p.at(syntax.KindEnumKeyword):
		enum = true

		p.advance(syntax.RoleTypeKeyword)
	default:
		p.advance(syntax.RoleTypeKeyword)
	}

	p.expect(syntax.KindIdentifier, syntax.RoleName)

	if p.at(syntax.KindLt) {
		p.parseTypeParameterList()
	}

	if p.at(syntax.KindLParen) {
		p.parseParameterList(syntax.KindRecordHeader, syntax.KindRecordComponent, syntax.RoleRecordHeader)
	}

	for {
		switch {
		case p.at(syntax.KindExtendsKeyword):
			p.parseReferenceList(syntax.KindExtendsList, syntax.RoleExtendsList)
			continue
		case p.at(syntax.KindImplementsKeyword):
			p.parseReferenceList(syntax.KindImplementsList, syntax.RoleImplementsList)
			continue
		case p.atIdent("permits"):
			p.parseReferenceList(syntax.KindPermitsList, syntax.RolePermitsList)
			continue
		}

		break
	}

	p.parseClassBody(enum)

	return p.finish(syntax.KindClass, syntax.RoleClassMember)
}

// parseClassBody parses {...} into the currently open node.
func (p *parser) parseClassBody(enum bool) {
	if !p.expect(syntax.KindLBrace, syntax.RoleLBrace) {
		return
	}

	if enum {
		p.parseEnumConstants()
	}

	for !p.eof() && !p.at(syntax.KindRBrace) {
		before := p.cur

		if p.at(syntax.KindSemicolon) {
			p.advance(syntax.RoleSemicolon)
			continue
		}

		p.parseMember()

		if p.cur == before {
			p.recover(syntax.KindRBrace)
		}
	}

	p.expect(syntax.KindRBrace, syntax.RoleRBrace)
}

func (p *parser) parseEnumConstants() {
	for p.at(syntax.KindIdentifier) || p.at(syntax.KindAt) {
		p.startDecl()
		p.parseModifierList()
		p.expect(syntax.KindIdentifier, syntax.RoleName)

		if p.at(syntax.KindLParen) {
			p.parseArgumentList(syntax.RoleEnumConstantArguments)
		}

		if p.at(syntax.KindLBrace) {
			p.start()
			p.parseClassBody(false)
			p.finish(syntax.KindEnumConstantInitializer, syntax.RoleEnumConstantBody)
		}

		p.finish(syntax.KindEnumConstant, syntax.RoleEnumConstant)

		if !p.expect(syntax.KindComma, syntax.RoleComma) {
			break
		}
	}

	p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)
}
