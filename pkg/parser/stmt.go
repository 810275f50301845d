package parser

import "github.com/pseudomuto/javafmt/pkg/syntax"

// parseCodeBlock parses {...}.
func (p *parser) parseCodeBlock(role syntax.Role) *syntax.Node {
	p.start()
	p.expect(syntax.KindLBrace, syntax.RoleLBrace)

	for !p.eof() && !p.at(syntax.KindRBrace) {
		before := p.cur

		p.parseStatement(syntax.RoleStatement)

		if p.cur == before {
			p.recover(syntax.KindRBrace)
		}
	}

	p.expect(syntax.KindRBrace, syntax.RoleRBrace)

	return p.finish(syntax.KindCodeBlock, role)
}

// parseStatement parses a single statement, switch labels included.
func (p *parser) parseStatement(role syntax.Role) *syntax.Node {
	switch p.peek() {
	case syntax.KindLBrace:
		p.start()
		p.parseCodeBlock(syntax.RoleBlock)

		return p.finish(syntax.KindBlockStatement, role)
	case syntax.KindSemicolon:
		p.start()
		p.advance(syntax.RoleSemicolon)

		return p.finish(syntax.KindEmptyStatement, role)
	case syntax.KindIfKeyword:
		return p.parseIf(role)
	case syntax.KindWhileKeyword:
		p.start()
		p.advance(syntax.RoleWhileKeyword)
		p.parseParenthesized(syntax.RoleCondition)
		p.parseStatement(syntax.RoleLoopBody)

		return p.finish(syntax.KindWhileStatement, role)
	case syntax.KindDoKeyword:
		p.start()
		p.advance(syntax.RoleDoKeyword)
		p.parseStatement(syntax.RoleLoopBody)
		p.expect(syntax.KindWhileKeyword, syntax.RoleWhileKeyword)
		p.parseParenthesized(syntax.RoleCondition)
		p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)

		return p.finish(syntax.KindDoWhileStatement, role)
	case syntax.KindForKeyword:
		return p.parseFor(role)
	case syntax.KindSwitchKeyword:
		p.start()
		p.advance(syntax.RoleSwitchKeyword)
		p.parseParenthesized(syntax.RoleSwitchExpression)
		p.parseCodeBlock(syntax.RoleSwitchBody)

		return p.finish(syntax.KindSwitchStatement, role)
	case syntax.KindCaseKeyword, syntax.KindDefaultKeyword:
		if p.at(syntax.KindDefaultKeyword) && p.peekAt(1) != syntax.KindColon && p.peekAt(1) != syntax.KindArrow {
			break
		}

		return p.parseSwitchLabel(role)
	case syntax.KindTryKeyword:
		return p.parseTry(role)
	case syntax.KindSynchronizedKeyword:
		if p.peekAt(1) != syntax.KindLParen {
			break
		}

		p.start()
		p.advance(syntax.RoleSynchronizedKeyword)
		p.parseParenthesized(syntax.RoleLock)
		p.parseCodeBlock(syntax.RoleBlock)

		return p.finish(syntax.KindSynchronizedStatement, role)
	case syntax.KindReturnKeyword:
		p.start()
		p.advance(syntax.RoleKeyword)

		if !p.at(syntax.KindSemicolon) {
			p.parseExpression(syntax.RoleReturnValue)
		}

		p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)

		return p.finish(syntax.KindReturnStatement, role)
	case syntax.KindThrowKeyword:
		p.start()
		p.advance(syntax.RoleKeyword)
		p.parseExpression(syntax.RoleExpression)
		p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)

		return p.finish(syntax.KindThrowStatement, role)
	case syntax.KindBreakKeyword, syntax.KindContinueKeyword:
		kind := syntax.KindBreakStatement
		if p.at(syntax.KindContinueKeyword) {
			kind = syntax.KindContinueStatement
		}

		p.start()
		p.advance(syntax.RoleKeyword)
		p.expect(syntax.KindIdentifier, syntax.RoleLabel)
		p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)

		return p.finish(kind, role)
	case syntax.KindAssertKeyword:
		p.start()
		p.advance(syntax.RoleKeyword)
		p.parseExpression(syntax.RoleCondition)

		if p.expect(syntax.KindColon, syntax.RoleColon) {
			p.parseExpression(syntax.RoleExpression)
		}

		p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)

		return p.finish(syntax.KindAssertStatement, role)
	case syntax.KindIdentifier:
		if p.peekAt(1) == syntax.KindColon {
			p.start()
			p.advance(syntax.RoleLabel)
			p.advance(syntax.RoleColon)
			p.parseStatement(syntax.RoleStatement)

			return p.finish(syntax.KindLabeledStatement, role)
		}

		if p.atIdent("yield") && p.yieldStatement() {
			p.start()
			p.advance(syntax.RoleKeyword)
			p.parseExpression(syntax.RoleExpression)
			p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)

			return p.finish(syntax.KindYieldStatement, role)
		}
	}

	if p.startsTypeDecl(p.cur) {
		p.start()
		p.parseMember()

		return p.finish(syntax.KindDeclarationStatement, role)
	}

	if p.atLocalVariable() {
		return p.parseDeclarationStatement(role, true)
	}

	return p.parseExpressionStatement(role)
}

// yieldStatement tells a yield statement apart from an expression using a variable called yield.
func (p *parser) yieldStatement() bool {
	switch p.peekAt(1) {
	case syntax.KindEq, syntax.KindDot, syntax.KindLParen, syntax.KindLBracket, syntax.KindSemicolon,
		syntax.KindPlusPlus, syntax.KindMinusMinus, syntax.KindPlusEq, syntax.KindMinusEq:
		return false
	}

	return true
}

func (p *parser) parseExpressionStatement(role syntax.Role) *syntax.Node {
	if !p.canStartExpression() {
		return p.recover(syntax.KindRBrace)
	}

	p.start()
	p.parseExpression(syntax.RoleExpression)
	p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)

	return p.finish(syntax.KindExpressionStatement, role)
}

// parseDeclarationStatement parses local variables. Each declarator is a LocalVariable
// child, separated by commas.
func (p *parser) parseDeclarationStatement(role syntax.Role, semicolon bool) *syntax.Node {
	p.start()
	p.start()
	p.parseModifierList()
	p.parseType(syntax.RoleType)
	p.expect(syntax.KindIdentifier, syntax.RoleName)
	p.parseVariableRest(syntax.KindLocalVariable, syntax.RoleNone, semicolon)

	return p.finish(syntax.KindDeclarationStatement, role)
}

// parseParenthesized parses '(' expression ')' into the current node.
func (p *parser) parseParenthesized(role syntax.Role) {
	p.expect(syntax.KindLParen, syntax.RoleLParen)
	p.parseExpression(role)
	p.expect(syntax.KindRParen, syntax.RoleRParen)
}

func (p *parser) parseIf(role syntax.Role) *syntax.Node {
	p.start()
	p.advance(syntax.RoleIfKeyword)
	p.parseParenthesized(syntax.RoleCondition)
	p.parseStatement(syntax.RoleThenBranch)

	if p.expect(syntax.KindElseKeyword, syntax.RoleElseKeyword) {
		p.parseStatement(syntax.RoleElseBranch)
	}

	return p.finish(syntax.KindIfStatement, role)
}

func (p *parser) parseFor(role syntax.Role) *syntax.Node {
	p.start()
	p.advance(syntax.RoleForKeyword)
	p.expect(syntax.KindLParen, syntax.RoleLParen)

	if p.atForeach() {
		p.parseParameter(syntax.KindParameter, syntax.RoleForIterationParameter)
		p.expect(syntax.KindColon, syntax.RoleColon)
		p.parseExpression(syntax.RoleForIteratedValue)
		p.expect(syntax.KindRParen, syntax.RoleRParen)
		p.parseStatement(syntax.RoleLoopBody)

		return p.finish(syntax.KindForeachStatement, role)
	}

	switch {
	case p.at(syntax.KindSemicolon):
		p.start()
		p.advance(syntax.RoleSemicolon)
		p.finish(syntax.KindEmptyStatement, syntax.RoleForInitialization)
	case p.atLocalVariable():
		p.parseDeclarationStatement(syntax.RoleForInitialization, true)
	default:
		p.parseExpressionList(syntax.RoleForInitialization, true)
	}

	if !p.at(syntax.KindSemicolon) {
		p.parseExpression(syntax.RoleCondition)
	}

	p.expect(syntax.KindSemicolon, syntax.RoleForSemicolon)

	if !p.at(syntax.KindRParen) {
		p.parseExpressionList(syntax.RoleForUpdate, false)
	}

	p.expect(syntax.KindRParen, syntax.RoleRParen)
	p.parseStatement(syntax.RoleLoopBody)

	return p.finish(syntax.KindForStatement, role)
}

// parseExpressionList parses the comma separated expressions of a for header. A single
// expression yields an expression statement.
func (p *parser) parseExpressionList(role syntax.Role, semicolon bool) *syntax.Node {
	p.start()
	p.parseExpression(syntax.RoleExpression)

	kind := syntax.KindExpressionStatement
	for p.expect(syntax.KindComma, syntax.RoleComma) {
		kind = syntax.KindExpressionListStatement

		p.parseExpression(syntax.RoleExpression)
	}

	if semicolon {
		p.expect(syntax.KindSemicolon, syntax.RoleSemicolon)
	}

	return p.finish(kind, role)
}

func (p *parser) parseSwitchLabel(role syntax.Role) *syntax.Node {
	p.start()

	if p.at(syntax.KindDefaultKeyword) {
		p.advance(syntax.RoleCaseKeyword)
	} else {
		p.advance(syntax.RoleCaseKeyword)

		for {
			p.parseConditional(syntax.RoleCaseExpression)

			if !p.expect(syntax.KindComma, syntax.RoleComma) {
				break
			}
		}
	}

	if !p.expect(syntax.KindColon, syntax.RoleColon) {
		p.expect(syntax.KindArrow, syntax.RoleArrow)
	}

	return p.finish(syntax.KindSwitchLabelStatement, role)
}

func (p *parser) parseTry(role syntax.Role) *syntax.Node {
	p.start()
	p.advance(syntax.RoleTryKeyword)

	if p.at(syntax.KindLParen) {
		p.parseResourceList()
	}

	p.parseCodeBlock(syntax.RoleTryBlock)

	for p.at(syntax.KindCatchKeyword) {
		p.start()
		p.advance(syntax.RoleCatchKeyword)
		p.expect(syntax.KindLParen, syntax.RoleLParen)
		p.parseCatchParameter()
		p.expect(syntax.KindRParen, syntax.RoleRParen)
		p.parseCodeBlock(syntax.RoleCatchBlock)
		p.finish(syntax.KindCatchSection, syntax.RoleCatchSection)
	}

	if p.expect(syntax.KindFinallyKeyword, syntax.RoleFinallyKeyword) {
		p.parseCodeBlock(syntax.RoleFinallyBlock)
	}

	return p.finish(syntax.KindTryStatement, role)
}

func (p *parser) parseResourceList() {
	p.start()
	p.advance(syntax.RoleLParen)

	for !p.eof() && !p.at(syntax.KindRParen) {
		before := p.cur

		if p.atLocalVariable() {
			p.start()
			p.parseModifierList()
			p.parseType(syntax.RoleType)
			p.expect(syntax.KindIdentifier, syntax.RoleName)

			if p.expect(syntax.KindEq, syntax.RoleInitializerEq) {
				p.parseExpression(syntax.RoleInitializer)
			}

			p.finish(syntax.KindResourceVariable, syntax.RoleResource)
		} else {
			p.parseExpression(syntax.RoleResource)
		}

		if !p.expect(syntax.KindSemicolon, syntax.RoleSemicolon) || p.cur == before {
			break
		}
	}

	p.expect(syntax.KindRParen, syntax.RoleRParen)
	p.finish(syntax.KindResourceList, syntax.RoleResourceList)
}

// parseCatchParameter parses a catch parameter, multi catch unions included.
func (p *parser) parseCatchParameter() {
	p.start()
	p.parseModifierList()

	typ := p.parseType(syntax.RoleType)
	if p.at(syntax.KindOr) {
		p.precede(typ, syntax.RoleType)

		for p.expect(syntax.KindOr, syntax.RoleOperationSign) {
			p.parseType(syntax.RoleType)
		}

		p.finish(syntax.KindType, syntax.RoleType)
	}

	p.expect(syntax.KindIdentifier, syntax.RoleName)
	p.finish(syntax.KindParameter, syntax.RoleCatchParameter)
}
