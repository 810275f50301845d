package format

import "github.com/pseudomuto/javafmt/pkg/syntax"

// statement applies the rules of statement constructs, nil for any other parent.
func (p *spacingPair) statement() *Spacing {
	s := p.s

	switch p.parent.Kind {
	case syntax.KindCodeBlock:
		return p.codeBlock()
	case syntax.KindIfStatement:
		return p.ifStatement()
	case syntax.KindWhileStatement:
		return p.headedStatement(s.SpaceBeforeWhileParentheses, s.SpaceWithinWhileParentheses, s.SpaceBeforeWhileLBrace)
	case syntax.KindForStatement:
		return p.forStatement()
	case syntax.KindForeachStatement:
		return p.foreachStatement()
	case syntax.KindDoWhileStatement:
		return p.doWhileStatement()
	case syntax.KindSwitchStatement:
		return p.headedStatement(s.SpaceBeforeSwitchParentheses, s.SpaceWithinSwitchParentheses, s.SpaceBeforeSwitchLBrace)
	case syntax.KindSynchronizedStatement:
		return p.headedStatement(s.SpaceBeforeSynchronizedParentheses, s.SpaceWithinSynchronizedParentheses,
			s.SpaceBeforeSynchronizedLBrace)
	case syntax.KindCatchSection:
		return p.headedStatement(s.SpaceBeforeCatchParentheses, s.SpaceWithinCatchParentheses, s.SpaceBeforeCatchLBrace)
	case syntax.KindTryStatement:
		return p.tryStatement()
	case syntax.KindSwitchLabelStatement:
		return p.switchLabel()
	case syntax.KindAssertStatement:
		return p.colonSeparated()
	case syntax.KindLabeledStatement:
		if p.role2 == syntax.RoleColon {
			return p.space(false)
		}

		return p.space(true)
	case syntax.KindReturnStatement, syntax.KindThrowStatement, syntax.KindYieldStatement,
		syntax.KindBreakStatement, syntax.KindContinueStatement:
		return p.space(true)
	case syntax.KindDeclarationStatement, syntax.KindExpressionListStatement:
		return p.space(true)
	}

	return nil
}

func (p *spacingPair) codeBlock() *Spacing {
	s := p.s
	keep := p.keepBlockInOneLine()
	within := spaces(s.SpaceWithinBraces)

	switch {
	case p.role1 == syntax.RoleLBrace && p.role2 == syntax.RoleRBrace:
		if keep {
			return NewDependentLFSpacing(within, within, p.parent.Range, s.KeepLineBreaks, 0)
		}

		return p.lineFeeds(1, 0)
	case p.role1 == syntax.RoleLBrace:
		if keep {
			return NewDependentLFSpacing(within, within, p.parent.Range, s.KeepLineBreaks, s.KeepBlankLinesInCode)
		}

		if p.parent.Role == syntax.RoleMethodBody {
			return p.blankLines(s.BlankLinesBeforeMethodBody, s.KeepBlankLinesInDeclarations)
		}

		return p.lineFeeds(1, s.KeepBlankLinesInCode)
	case p.role2 == syntax.RoleRBrace:
		if keep {
			return NewDependentLFSpacing(within, within, p.parent.Range, s.KeepLineBreaks, s.KeepBlankLinesBeforeRBrace)
		}

		return p.lineFeeds(1, s.KeepBlankLinesBeforeRBrace)
	case p.kind1 == syntax.KindSwitchLabelStatement:
		return p.afterSwitchLabel()
	case p.left.IsComment() || p.right.IsComment():
		return nil
	case s.KeepMultipleExpressionsInOneLine:
		return NewSpacing(1, 1, 0, s.KeepLineBreaks, s.KeepBlankLinesInCode)
	}

	return p.lineFeeds(1, s.KeepBlankLinesInCode)
}

// keepBlockInOneLine picks the one-line option of the construct owning the block.
func (p *spacingPair) keepBlockInOneLine() bool {
	switch p.parent.Role {
	case syntax.RoleMethodBody:
		return p.s.KeepSimpleMethodsInOneLine
	case syntax.RoleLambdaBody:
		return p.s.KeepSimpleLambdasInOneLine
	}

	return p.s.KeepSimpleBlocksInOneLine
}

// afterSwitchLabel spaces the first statement of a case section. An arrow label keeps
// its body on the same line.
func (p *spacingPair) afterSwitchLabel() *Spacing {
	s := p.s

	last := lastCodeChild(p.left)
	if last != nil && last.Kind == syntax.KindArrow {
		if p.kind2 == syntax.KindBlockStatement {
			return p.beforeLBrace(s.SpaceAroundLambdaArrow, s.BraceStyle, nil, s.KeepSimpleBlocksInOneLine, p.right.Range)
		}

		return p.space(s.SpaceAroundLambdaArrow)
	}

	switch {
	case p.kind2 == syntax.KindSwitchLabelStatement:
		return p.lineFeeds(1, s.KeepBlankLinesInCode)
	case p.kind2 == syntax.KindBlockStatement:
		return p.beforeLBrace(true, s.BraceStyle, nil, s.KeepSimpleBlocksInOneLine, p.right.Range)
	case s.CaseStatementOnNewLine:
		return p.lineFeeds(1, s.KeepBlankLinesInCode)
	}

	return p.space(true)
}

// headedStatement spaces the statements made of a keyword, a parenthesized header and a
// body: while, switch, synchronized and catch.
func (p *spacingPair) headedStatement(beforeParen, withinParens, beforeLBrace bool) *Spacing {
	switch {
	case p.role2 == syntax.RoleLParen:
		return p.space(beforeParen)
	case p.role1 == syntax.RoleLParen, p.role2 == syntax.RoleRParen:
		return p.space(withinParens)
	case p.role1 == syntax.RoleRParen:
		return p.body(beforeLBrace, p.header())
	}

	return nil
}

// body spaces the body of a control statement after its header.
func (p *spacingPair) body(beforeLBrace bool, header *syntax.TextRange) *Spacing {
	s := p.s

	switch p.kind2 {
	case syntax.KindBlockStatement, syntax.KindCodeBlock:
		return p.beforeLBrace(beforeLBrace, s.BraceStyle, header, s.KeepSimpleBlocksInOneLine, p.right.Range)
	case syntax.KindEmptyStatement:
		return p.space(false)
	}

	return p.controlBody()
}

func (p *spacingPair) ifStatement() *Spacing {
	s := p.s

	switch {
	case p.role2 == syntax.RoleLParen:
		return p.space(s.SpaceBeforeIfParentheses)
	case p.role1 == syntax.RoleLParen, p.role2 == syntax.RoleRParen:
		return p.space(s.SpaceWithinIfParentheses)
	case p.role2 == syntax.RoleThenBranch:
		return p.body(s.SpaceBeforeIfLBrace, p.header())
	case p.role2 == syntax.RoleElseKeyword:
		if p.kind1 == syntax.KindBlockStatement {
			return p.onNewLine(s.ElseOnNewLine, s.SpaceBeforeElseKeyword)
		}

		if s.KeepControlStatementInOneLine {
			return NewSpacing(1, 1, 0, s.KeepLineBreaks, s.KeepBlankLinesInCode)
		}

		return p.lineFeeds(1, s.KeepBlankLinesInCode)
	case p.role2 == syntax.RoleElseBranch:
		if p.kind2 == syntax.KindIfStatement && s.SpecialElseIfTreatment {
			return p.spaceProperty(true, false, 0)
		}

		return p.body(s.SpaceBeforeElseLBrace, nil)
	}

	return nil
}

func (p *spacingPair) forStatement() *Spacing {
	s := p.s

	switch {
	case p.role2 == syntax.RoleLParen:
		return p.space(s.SpaceBeforeForParentheses)
	case p.role1 == syntax.RoleLParen:
		return p.parenSpace(s.ForStatementLParenOnNextLine, s.SpaceWithinForParentheses)
	case p.role2 == syntax.RoleRParen:
		if p.role1 == syntax.RoleForSemicolon {
			return p.space(false)
		}

		return p.parenSpace(s.ForStatementRParenOnNextLine, s.SpaceWithinForParentheses)
	case p.role2 == syntax.RoleForSemicolon:
		if p.role1 == syntax.RoleForInitialization {
			return p.space(false)
		}

		return p.space(s.SpaceBeforeSemicolon)
	case p.role1 == syntax.RoleForInitialization, p.role1 == syntax.RoleForSemicolon:
		return p.space(s.SpaceAfterSemicolon)
	case p.role1 == syntax.RoleRParen:
		return p.body(s.SpaceBeforeForLBrace, p.header())
	}

	return nil
}

func (p *spacingPair) foreachStatement() *Spacing {
	s := p.s

	switch {
	case p.role2 == syntax.RoleLParen:
		return p.space(s.SpaceBeforeForParentheses)
	case p.role1 == syntax.RoleLParen:
		return p.parenSpace(s.ForStatementLParenOnNextLine, s.SpaceWithinForParentheses)
	case p.role2 == syntax.RoleRParen:
		return p.parenSpace(s.ForStatementRParenOnNextLine, s.SpaceWithinForParentheses)
	case p.role2 == syntax.RoleColon:
		return p.space(s.SpaceBeforeColon)
	case p.role1 == syntax.RoleColon:
		return p.space(s.SpaceAfterColon)
	case p.role1 == syntax.RoleRParen:
		return p.body(s.SpaceBeforeForLBrace, p.header())
	}

	return nil
}

func (p *spacingPair) doWhileStatement() *Spacing {
	s := p.s

	switch {
	case p.role1 == syntax.RoleDoKeyword:
		return p.body(s.SpaceBeforeDoLBrace, nil)
	case p.role2 == syntax.RoleWhileKeyword:
		if p.kind1 == syntax.KindBlockStatement {
			return p.onNewLine(s.WhileOnNewLine, s.SpaceBeforeWhileKeyword)
		}

		return p.lineFeeds(1, s.KeepBlankLinesInCode)
	case p.role2 == syntax.RoleLParen:
		return p.space(s.SpaceBeforeWhileParentheses)
	case p.role1 == syntax.RoleLParen, p.role2 == syntax.RoleRParen:
		return p.space(s.SpaceWithinWhileParentheses)
	}

	return nil
}

func (p *spacingPair) tryStatement() *Spacing {
	s := p.s

	switch {
	case p.role2 == syntax.RoleResourceList:
		return p.space(s.SpaceBeforeTryParentheses)
	case p.role2 == syntax.RoleTryBlock:
		return p.beforeLBrace(s.SpaceBeforeTryLBrace, s.BraceStyle, p.header(), s.KeepSimpleBlocksInOneLine, p.right.Range)
	case p.role2 == syntax.RoleCatchSection:
		return p.onNewLine(s.CatchOnNewLine, s.SpaceBeforeCatchKeyword)
	case p.role2 == syntax.RoleFinallyKeyword:
		return p.onNewLine(s.FinallyOnNewLine, s.SpaceBeforeFinallyKeyword)
	case p.role2 == syntax.RoleFinallyBlock:
		return p.beforeLBrace(s.SpaceBeforeFinallyLBrace, s.BraceStyle, nil, s.KeepSimpleBlocksInOneLine, p.right.Range)
	}

	return nil
}

func (p *spacingPair) switchLabel() *Spacing {
	switch {
	case p.role2 == syntax.RoleColon:
		return p.space(false)
	case p.role2 == syntax.RoleArrow:
		return p.space(p.s.SpaceAroundLambdaArrow)
	}

	return p.space(true)
}

// colonSeparated spaces an assert statement: keyword, condition, ':' and message.
func (p *spacingPair) colonSeparated() *Spacing {
	switch {
	case p.role2 == syntax.RoleColon:
		return p.space(p.s.SpaceBeforeColon)
	case p.role1 == syntax.RoleColon:
		return p.space(p.s.SpaceAfterColon)
	}

	return p.space(true)
}
