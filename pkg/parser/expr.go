package parser

import "github.com/pseudomuto/javafmt/pkg/syntax"

var binaryPrecedence = map[syntax.Kind]int{
	syntax.KindOrOr:              1,
	syntax.KindAndAnd:            2,
	syntax.KindOr:                3,
	syntax.KindXor:               4,
	syntax.KindAnd:               5,
	syntax.KindEqEq:              6,
	syntax.KindNe:                6,
	syntax.KindLt:                7,
	syntax.KindGt:                7,
	syntax.KindLe:                7,
	syntax.KindGe:                7,
	syntax.KindInstanceofKeyword: 7,
	syntax.KindLtLt:              8,
	syntax.KindGtGt:              8,
	syntax.KindGtGtGt:            8,
	syntax.KindPlus:              9,
	syntax.KindMinus:             9,
	syntax.KindAsterisk:          10,
	syntax.KindDiv:               10,
	syntax.KindPerc:              10,
}

func (p *parser) canStartExpression() bool {
	switch k := p.peek(); {
	case k == syntax.KindIdentifier, k.IsLiteral(), k.IsPrimitiveType():
		return true
	case k == syntax.KindLParen, k == syntax.KindExcl, k == syntax.KindTilde, k == syntax.KindPlus,
		k == syntax.KindMinus, k == syntax.KindPlusPlus, k == syntax.KindMinusMinus,
		k == syntax.KindThisKeyword, k == syntax.KindSuperKeyword, k == syntax.KindNewKeyword:
		return true
	}

	return false
}

// parseExpression parses an assignment level expression. It returns nil, consuming
// nothing, when no expression starts at the current token.
func (p *parser) parseExpression(role syntax.Role) *syntax.Node {
	if !p.canStartExpression() {
		return nil
	}

	if p.atLambda() {
		return p.parseLambda(role)
	}

	left := p.parseConditional(syntax.RoleNone)
	if left == nil {
		return nil
	}

	op, n := p.peek(), 1
	if op == syntax.KindGt {
		op, n = p.fusedGt()
	}

	if !op.IsAssignmentOperator() {
		left.Role = role
		return left
	}

	p.precede(left, syntax.RoleLOperand)
	p.advanceN(op, n, syntax.RoleOperationSign)
	p.parseExpression(syntax.RoleROperand)

	return p.finish(syntax.KindAssignmentExpression, role)
}

// parseConditional parses a ternary expression or anything binding tighter.
func (p *parser) parseConditional(role syntax.Role) *syntax.Node {
	cond := p.parseBinary(1)
	if cond == nil {
		return nil
	}

	if !p.at(syntax.KindQuest) {
		cond.Role = role
		return cond
	}

	p.precede(cond, syntax.RoleCondition)
	p.advance(syntax.RoleQuest)
	p.parseExpression(syntax.RoleThenExpression)
	p.expect(syntax.KindColon, syntax.RoleColon)

	if p.atLambda() {
		p.parseLambda(syntax.RoleElseExpression)
	} else {
		p.parseConditional(syntax.RoleElseExpression)
	}

	return p.finish(syntax.KindConditionalExpression, role)
}

func (p *parser) binaryOperator() (syntax.Kind, int) {
	op, n := p.peek(), 1
	if op == syntax.KindGt {
		op, n = p.fusedGt()
	}

	if _, ok := binaryPrecedence[op]; !ok {
		return syntax.KindNone, 0
	}

	return op, n
}

// parseBinary parses left associative binary operators by precedence climbing.
func (p *parser) parseBinary(minPrec int) *syntax.Node {
	left := p.parseUnary(syntax.RoleNone)
	if left == nil {
		return nil
	}

	for {
		op, n := p.binaryOperator()
		prec := binaryPrecedence[op]

		if op == syntax.KindNone || prec < minPrec {
			return left
		}

		if op == syntax.KindInstanceofKeyword {
			p.precede(left, syntax.RoleOperand)
			p.advance(syntax.RoleOperationSign)
			p.expect(syntax.KindFinalKeyword, syntax.RoleModifier)
			p.parseType(syntax.RoleType)
			p.expect(syntax.KindIdentifier, syntax.RoleName)

			left = p.finish(syntax.KindInstanceOfExpression, syntax.RoleNone)

			continue
		}

		p.precede(left, syntax.RoleLOperand)
		p.advanceN(op, n, syntax.RoleOperationSign)

		if right := p.parseBinary(prec + 1); right != nil {
			right.Role = syntax.RoleROperand
		}

		left = p.finish(syntax.KindBinaryExpression, syntax.RoleNone)
	}
}

func (p *parser) parseUnary(role syntax.Role) *syntax.Node {
	switch p.peek() {
	case syntax.KindPlus, syntax.KindMinus, syntax.KindPlusPlus, syntax.KindMinusMinus,
		syntax.KindExcl, syntax.KindTilde:
		p.start()
		p.advance(syntax.RoleOperationSign)
		p.parseUnary(syntax.RoleOperand)

		return p.finish(syntax.KindPrefixExpression, role)
	case syntax.KindLParen:
		if p.atLambda() {
			return p.parseLambda(role)
		}

		if p.atCast() {
			p.start()
			p.advance(syntax.RoleLParen)

			typ := p.parseType(syntax.RoleCastType)
			if p.at(syntax.KindAnd) {
				p.precede(typ, syntax.RoleType)

				for p.expect(syntax.KindAnd, syntax.RoleOperationSign) {
					p.parseType(syntax.RoleType)
				}

				p.finish(syntax.KindType, syntax.RoleCastType)
			}

			p.expect(syntax.KindRParen, syntax.RoleRParen)

			if p.atLambda() {
				p.parseLambda(syntax.RoleOperand)
			} else {
				p.parseUnary(syntax.RoleOperand)
			}

			return p.finish(syntax.KindTypeCastExpression, role)
		}
	}

	e := p.parsePrimary()
	if e == nil {
		return nil
	}

	e = p.parseSelectors(e)

	for p.atAny(syntax.KindPlusPlus, syntax.KindMinusMinus) {
		p.precede(e, syntax.RoleOperand)
		p.advance(syntax.RoleOperationSign)
		e = p.finish(syntax.KindPostfixExpression, syntax.RoleNone)
	}

	e.Role = role

	return e
}

func (p *parser) parsePrimary() *syntax.Node {
	switch k := p.peek(); {
	case k.IsLiteral():
		p.start()
		p.advance(syntax.RoleNone)

		return p.finish(syntax.KindLiteralExpression, syntax.RoleNone)
	case k == syntax.KindThisKeyword || k == syntax.KindSuperKeyword:
		if p.peekAt(1) == syntax.KindLParen {
			return p.parseCall()
		}

		kind := syntax.KindThisExpression
		if k == syntax.KindSuperKeyword {
			kind = syntax.KindSuperExpression
		}

		p.start()
		p.advance(syntax.RoleKeyword)

		return p.finish(kind, syntax.RoleNone)
	case k == syntax.KindIdentifier:
		if p.atTypeMethodRef() {
			return p.parseType(syntax.RoleQualifier)
		}

		if p.peekAt(1) == syntax.KindLParen {
			return p.parseCall()
		}

		p.start()
		p.advance(syntax.RoleReferenceName)

		return p.finish(syntax.KindReferenceExpression, syntax.RoleNone)
	case k == syntax.KindLParen:
		p.start()
		p.advance(syntax.RoleLParen)
		p.parseExpression(syntax.RoleExpression)
		p.expect(syntax.KindRParen, syntax.RoleRParen)

		return p.finish(syntax.KindParenthesizedExpression, syntax.RoleNone)
	case k == syntax.KindNewKeyword:
		p.start()

		return p.parseNewRest()
	case k.IsPrimitiveType():
		return p.parseType(syntax.RoleQualifier)
	}

	return nil
}

// parseCall parses name(args), this(args) and super(args).
func (p *parser) parseCall() *syntax.Node {
	p.start()
	p.start()
	p.advance(syntax.RoleReferenceName)
	p.finish(syntax.KindReferenceExpression, syntax.RoleMethodExpression)
	p.parseArgumentList(syntax.RoleArgumentList)

	return p.finish(syntax.KindMethodCallExpression, syntax.RoleNone)
}

// parseSelectors applies member access, calls, array access and method references to e.
func (p *parser) parseSelectors(e *syntax.Node) *syntax.Node {
	for {
		switch p.peek() {
		case syntax.KindDot:
			switch p.peekAt(1) {
			case syntax.KindIdentifier, syntax.KindLt:
				p.precede(e, syntax.RoleQualifier)
				p.advance(syntax.RoleDot)

				if p.at(syntax.KindLt) {
					p.parseReferenceParameterList()
				}

				p.expect(syntax.KindIdentifier, syntax.RoleReferenceName)
				ref := p.finish(syntax.KindReferenceExpression, syntax.RoleNone)

				if !p.at(syntax.KindLParen) {
					e = ref
					continue
				}

				p.precede(ref, syntax.RoleMethodExpression)
				p.parseArgumentList(syntax.RoleArgumentList)
				e = p.finish(syntax.KindMethodCallExpression, syntax.RoleNone)
			case syntax.KindThisKeyword:
				e = p.qualified(e, syntax.KindThisExpression)
			case syntax.KindSuperKeyword:
				e = p.qualified(e, syntax.KindSuperExpression)
			case syntax.KindClassKeyword:
				e = p.qualified(e, syntax.KindClassObjectAccessExpression)
			case syntax.KindNewKeyword:
				p.precede(e, syntax.RoleQualifier)
				p.advance(syntax.RoleDot)
				e = p.parseNewRest()
			default:
				return e
			}
		case syntax.KindLBracket:
			p.precede(e, syntax.RoleArray)
			p.advance(syntax.RoleLBracket)
			p.parseExpression(syntax.RoleIndex)
			p.expect(syntax.KindRBracket, syntax.RoleRBracket)
			e = p.finish(syntax.KindArrayAccessExpression, syntax.RoleNone)
		case syntax.KindDoubleColon:
			p.precede(e, syntax.RoleQualifier)
			p.advance(syntax.RoleDoubleColon)

			if p.at(syntax.KindIdentifier) || p.at(syntax.KindNewKeyword) {
				p.advance(syntax.RoleReferenceName)
			}

			e = p.finish(syntax.KindMethodReferenceExpression, syntax.RoleNone)
		default:
			return e
		}
	}
}

func (p *parser) qualified(e *syntax.Node, kind syntax.Kind) *syntax.Node {
	p.precede(e, syntax.RoleQualifier)
	p.advance(syntax.RoleDot)
	p.advance(syntax.RoleKeyword)

	return p.finish(kind, syntax.RoleNone)
}

// parseNewRest parses a creation expression into the already open node. Anonymous
// classes own the base reference and arguments.
func (p *parser) parseNewRest() *syntax.Node {
	p.advance(syntax.RoleNewKeyword)

	if p.at(syntax.KindLt) {
		p.parseReferenceParameterList()
	}

	for p.at(syntax.KindAt) && p.peekAt(1) == syntax.KindIdentifier {
		p.parseAnnotation()
	}

	var ref *syntax.Node

	switch k := p.peek(); {
	case k.IsPrimitiveType():
		ref = p.advance(syntax.RoleTypeKeyword)
	case k == syntax.KindIdentifier:
		ref = p.parseCodeReference(syntax.RoleReference, false)
	}

	if p.at(syntax.KindLBracket) {
		for p.at(syntax.KindLBracket) {
			p.advance(syntax.RoleLBracket)

			if !p.at(syntax.KindRBracket) {
				p.parseExpression(syntax.RoleArrayDimension)
			}

			p.expect(syntax.KindRBracket, syntax.RoleRBracket)
		}

		if p.at(syntax.KindLBrace) {
			p.parseArrayInitializer(syntax.RoleArrayInitializer)
		}

		return p.finish(syntax.KindNewExpression, syntax.RoleNone)
	}

	if p.at(syntax.KindLParen) {
		p.parseArgumentList(syntax.RoleArgumentList)
	}

	if p.at(syntax.KindLBrace) && ref != nil {
		p.precede(ref, syntax.RoleReference)
		p.parseClassBody(false)
		p.finish(syntax.KindAnonymousClass, syntax.RoleAnonymousClass)
	}

	return p.finish(syntax.KindNewExpression, syntax.RoleNone)
}

// parseArgumentList parses (a, b, c).
func (p *parser) parseArgumentList(role syntax.Role) *syntax.Node {
	p.start()
	p.advance(syntax.RoleLParen)

	for !p.eof() && !p.at(syntax.KindRParen) {
		if p.parseExpression(syntax.RoleArgument) == nil {
			break
		}

		if !p.expect(syntax.KindComma, syntax.RoleComma) {
			break
		}
	}

	p.expect(syntax.KindRParen, syntax.RoleRParen)

	return p.finish(syntax.KindExpressionList, role)
}

// parseArrayInitializer parses {a, b, c}, nested initializers included.
func (p *parser) parseArrayInitializer(role syntax.Role) *syntax.Node {
	p.start()
	p.advance(syntax.RoleLBrace)

	for !p.eof() && !p.at(syntax.KindRBrace) {
		if p.parseVariableInitializer(syntax.RoleInitializer) == nil {
			break
		}

		if !p.expect(syntax.KindComma, syntax.RoleComma) {
			break
		}
	}

	p.expect(syntax.KindRBrace, syntax.RoleRBrace)

	return p.finish(syntax.KindArrayInitializerExpression, role)
}

func (p *parser) parseLambda(role syntax.Role) *syntax.Node {
	p.start()

	if p.at(syntax.KindIdentifier) {
		p.start()
		p.start()
		p.advance(syntax.RoleName)
		p.finish(syntax.KindParameter, syntax.RoleParameter)
		p.finish(syntax.KindParameterList, syntax.RoleLambdaParameters)
	} else {
		p.parseParameterList(syntax.KindParameterList, syntax.KindParameter, syntax.RoleLambdaParameters)
	}

	p.expect(syntax.KindArrow, syntax.RoleArrow)

	if p.at(syntax.KindLBrace) {
		p.parseCodeBlock(syntax.RoleLambdaBody)
	} else {
		p.parseExpression(syntax.RoleLambdaBody)
	}

	return p.finish(syntax.KindLambdaExpression, role)
}
