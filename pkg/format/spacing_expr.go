package format

import "github.com/pseudomuto/javafmt/pkg/syntax"

// expression applies the rules of expression constructs.
func (p *spacingPair) expression() *Spacing {
	s := p.s

	switch p.parent.Kind {
	case syntax.KindAssignmentExpression:
		if p.role1 == syntax.RoleOperationSign || p.role2 == syntax.RoleOperationSign {
			return p.space(s.SpaceAroundAssignmentOperators)
		}
	case syntax.KindBinaryExpression:
		if p.role1 == syntax.RoleOperationSign || p.role2 == syntax.RoleOperationSign {
			return p.space(p.aroundOperator(p.parent.ChildByRole(syntax.RoleOperationSign)))
		}
	case syntax.KindConditionalExpression:
		return p.conditional()
	case syntax.KindPrefixExpression, syntax.KindPostfixExpression:
		return p.space(s.SpaceAroundUnaryOperator)
	case syntax.KindTypeCastExpression:
		switch {
		case p.role1 == syntax.RoleLParen, p.role2 == syntax.RoleRParen:
			return p.space(s.SpaceWithinCastParentheses)
		case p.role1 == syntax.RoleRParen:
			return p.space(s.SpaceAfterTypeCast)
		}
	case syntax.KindParenthesizedExpression:
		switch {
		case p.role1 == syntax.RoleLParen:
			return p.parenSpace(s.ParenthesesExpressionLParenWrap, s.SpaceWithinParentheses)
		case p.role2 == syntax.RoleRParen:
			return p.parenSpace(s.ParenthesesExpressionRParenWrap, s.SpaceWithinParentheses)
		}
	case syntax.KindMethodCallExpression:
		if p.role2 == syntax.RoleArgumentList {
			return p.space(s.SpaceBeforeMethodCallParentheses)
		}
	case syntax.KindNewExpression:
		return p.newExpression()
	case syntax.KindArrayAccessExpression:
		switch {
		case p.role2 == syntax.RoleLBracket:
			return p.space(false)
		case p.role1 == syntax.RoleLBracket, p.role2 == syntax.RoleRBracket:
			return p.space(s.SpaceWithinBrackets)
		}
	case syntax.KindArrayInitializerExpression:
		return p.braceList(s.ArrayInitializerLBraceOnNextLine, s.ArrayInitializerRBraceOnNextLine, s.SpaceWithinArrayInitializerBraces)
	case syntax.KindInstanceOfExpression:
		return p.space(true)
	case syntax.KindLambdaExpression:
		switch {
		case p.role2 == syntax.RoleLambdaBody && p.kind2 == syntax.KindCodeBlock:
			return p.beforeLBrace(s.SpaceAroundLambdaArrow, s.LambdaBraceStyle, nil, s.KeepSimpleLambdasInOneLine, p.right.Range)
		case p.role1 == syntax.RoleArrow, p.role2 == syntax.RoleArrow:
			return p.space(s.SpaceAroundLambdaArrow)
		}
	case syntax.KindMethodReferenceExpression:
		if p.role1 == syntax.RoleDoubleColon || p.role2 == syntax.RoleDoubleColon {
			return p.space(s.SpaceAroundMethodRefDblColon)
		}
	}

	return nil
}

// aroundOperator picks the option governing the spaces around a binary operator.
func (p *spacingPair) aroundOperator(sign *syntax.Node) bool {
	s := p.s
	if sign == nil {
		return true
	}

	switch sign.Kind {
	case syntax.KindAndAnd, syntax.KindOrOr:
		return s.SpaceAroundLogicalOperators
	case syntax.KindEqEq, syntax.KindNe:
		return s.SpaceAroundEqualityOperators
	case syntax.KindLt, syntax.KindGt, syntax.KindLe, syntax.KindGe:
		return s.SpaceAroundRelationalOperators
	case syntax.KindAnd, syntax.KindOr, syntax.KindXor:
		return s.SpaceAroundBitwiseOperators
	case syntax.KindPlus, syntax.KindMinus:
		return s.SpaceAroundAdditiveOperators
	case syntax.KindAsterisk, syntax.KindDiv, syntax.KindPerc:
		return s.SpaceAroundMultiplicativeOperators
	case syntax.KindLtLt, syntax.KindGtGt, syntax.KindGtGtGt:
		return s.SpaceAroundShiftOperators
	}

	return true
}

func (p *spacingPair) conditional() *Spacing {
	s := p.s

	switch {
	case p.role2 == syntax.RoleQuest:
		return p.space(s.SpaceBeforeQuest)
	case p.role1 == syntax.RoleQuest:
		return p.space(s.SpaceAfterQuest)
	case p.role2 == syntax.RoleColon:
		return p.space(s.SpaceBeforeColon)
	case p.role1 == syntax.RoleColon:
		return p.space(s.SpaceAfterColon)
	}

	return nil
}

func (p *spacingPair) newExpression() *Spacing {
	s := p.s

	switch {
	case p.role1 == syntax.RoleNewKeyword:
		return p.space(true)
	case p.role2 == syntax.RoleArgumentList:
		return p.space(s.SpaceBeforeMethodCallParentheses)
	case p.role2 == syntax.RoleLBracket:
		return p.space(false)
	case p.role1 == syntax.RoleLBracket, p.role2 == syntax.RoleRBracket:
		return p.space(s.SpaceWithinBrackets)
	case p.role2 == syntax.RoleArrayInitializer:
		return p.space(s.SpaceBeforeArrayInitializerLBrace)
	case p.role2 == syntax.RoleAnonymousClass:
		return p.beforeLBrace(s.SpaceBeforeClassLBrace, s.ClassBraceStyle, nil, false, p.right.Range)
	}

	return nil
}
