package format

import "github.com/pseudomuto/javafmt/pkg/syntax"

func (p *spacingPair) class() *Spacing {
	s := p.s

	switch {
	case p.role2 == syntax.RoleLBrace:
		start := p.parent.Range.Start
		if name := p.parent.ChildByRole(syntax.RoleName); name != nil {
			start = name.Range.Start
		}

		header := syntax.NewRange(start, p.left.Range.End)

		return p.beforeLBrace(s.SpaceBeforeClassLBrace, s.ClassBraceStyle, &header, false, p.parent.Range)
	case p.role1 == syntax.RoleLBrace && p.role2 == syntax.RoleRBrace:
		if s.KeepSimpleClassesInOneLine || p.parent.Kind != syntax.KindClass {
			body := syntax.NewRange(p.left.Range.Start, p.right.Range.End)
			return NewDependentLFSpacing(0, 0, body, s.KeepLineBreaks, 0)
		}

		return p.lineFeeds(1, s.KeepBlankLinesBeforeRBrace)
	case p.role1 == syntax.RoleLBrace:
		return p.afterClassHeader()
	case p.role2 == syntax.RoleRBrace:
		if isEnum(p.parent) && (p.role1 == syntax.RoleEnumConstant || p.kind1 == syntax.KindComma) {
			return p.parenSpace(true, false)
		}

		return p.blankLines(s.BlankLinesBeforeClassEnd, s.KeepBlankLinesBeforeRBrace)
	case p.kind1 == syntax.KindModifierList:
		return p.afterModifierList()
	case p.role1 == syntax.RoleAt:
		return p.space(false)
	case p.kind2 == syntax.KindTypeParameterList:
		return p.space(s.SpaceBeforeTypeParameterList)
	case p.kind2 == syntax.KindRecordHeader:
		return p.space(s.SpaceBeforeMethodParentheses)
	case p.role1 == syntax.RoleTypeKeyword, isReferenceList(p.kind2):
		return p.space(true)
	case p.role1 == syntax.RoleEnumConstant && p.role2 == syntax.RoleSemicolon:
		return p.space(false)
	}

	return p.classBody()
}

func (p *spacingPair) afterClassHeader() *Spacing {
	s := p.s

	switch {
	case isEnum(p.parent):
		return p.parenSpace(true, false)
	case p.parent.Kind != syntax.KindClass:
		if onlyInitializer(p.parent) {
			return NewSpacing(0, 0, 0, s.KeepLineBreaks, 0)
		}

		return p.blankLines(s.BlankLinesAfterAnonymousClassHeader, s.KeepBlankLinesInDeclarations)
	}

	return p.blankLines(s.BlankLinesAfterClassHeader, s.KeepBlankLinesInDeclarations)
}

// classBody separates members with the blank lines configured for the bigger of the
// two: classes, then methods and initializers, then fields.
func (p *spacingPair) classBody() *Spacing {
	s := p.s

	if p.role1 == syntax.RoleSemicolon && p.role2 == syntax.RoleClassMember {
		return p.blankLines(s.BlankLinesAfterClassHeader, s.KeepBlankLinesInDeclarations)
	}

	if p.role1 != syntax.RoleClassMember || p.role2 != syntax.RoleClassMember {
		return nil
	}

	interfaceBody := isInterface(p.parent)

	var lines int

	switch {
	case p.kind1 == syntax.KindClass || p.kind2 == syntax.KindClass:
		lines = s.BlankLinesAroundClass
	case p.kind1 == syntax.KindMethod || p.kind2 == syntax.KindMethod:
		lines = max(p.linesAroundMethod(p.left, interfaceBody), p.linesAroundMethod(p.right, interfaceBody))
	case p.kind1 == syntax.KindClassInitializer || p.kind2 == syntax.KindClassInitializer:
		lines = s.BlankLinesAroundMethod
	case interfaceBody:
		lines = s.BlankLinesAroundFieldInInterface
	default:
		lines = s.BlankLinesAroundField
	}

	return p.blankLines(lines, s.KeepBlankLinesInDeclarations)
}

func (p *spacingPair) linesAroundMethod(member *syntax.Node, interfaceBody bool) int {
	switch {
	case member.Kind != syntax.KindMethod:
		return 0
	case interfaceBody || !member.HasChildOfKind(syntax.KindCodeBlock):
		return p.s.BlankLinesAroundMethodInInterface
	}

	return p.s.BlankLinesAroundMethod
}

// afterModifierList separates a declaration from its modifiers.
func (p *spacingPair) afterModifierList() *Spacing {
	if p.s.ModifierListWrap {
		return p.lineFeeds(1, p.s.KeepBlankLinesInDeclarations)
	}

	return p.spaceProperty(true, false, 0)
}

func (p *spacingPair) enumConstant() *Spacing {
	switch {
	case p.role2 == syntax.RoleEnumConstantArguments:
		return p.space(p.s.SpaceBeforeMethodCallParentheses)
	case p.role2 == syntax.RoleEnumConstantBody:
		return p.beforeLBrace(p.s.SpaceBeforeClassLBrace, p.s.ClassBraceStyle, nil, false, p.right.Range)
	}

	return p.space(true)
}

func (p *spacingPair) classInitializer() *Spacing {
	if p.role2 == syntax.RoleBlock {
		return p.beforeLBrace(p.s.SpaceBeforeMethodLBrace, p.s.MethodBraceStyle, nil, p.s.KeepSimpleMethodsInOneLine, p.right.Range)
	}

	return p.space(true)
}

func (p *spacingPair) method() *Spacing {
	s := p.s

	switch {
	case p.kind1 == syntax.KindModifierList:
		return p.afterModifierList()
	case p.kind2 == syntax.KindParameterList:
		return p.space(s.SpaceBeforeMethodParentheses)
	case p.kind2 == syntax.KindLBracket, p.kind2 == syntax.KindRBracket:
		return p.space(false)
	case p.role2 == syntax.RoleMethodBody:
		header := syntax.NewRange(signatureStart(p.parent), p.left.Range.End)
		return p.beforeLBrace(s.SpaceBeforeMethodLBrace, s.MethodBraceStyle, &header, s.KeepSimpleMethodsInOneLine, p.right.Range)
	case p.kind2 == syntax.KindSemicolon:
		return p.space(false)
	}

	return p.space(true)
}

// signatureStart is the offset where a method's signature starts, after its annotations.
func signatureStart(method *syntax.Node) int {
	for child := method.FirstChild(); child != nil; child = child.NextSibling() {
		if child.IsWhitespace() || child.IsComment() || child.Range.IsEmpty() {
			continue
		}

		if child.Kind != syntax.KindModifierList {
			return child.Range.Start
		}

		for mod := child.FirstChild(); mod != nil; mod = mod.NextSibling() {
			if mod.Kind.IsModifier() {
				return mod.Range.Start
			}
		}
	}

	return method.Range.Start
}

// variable spaces fields, local variables, parameters and resources.
func (p *spacingPair) variable() *Spacing {
	s := p.s

	switch {
	case p.kind1 == syntax.KindModifierList && p.parent.Kind == syntax.KindField:
		return p.afterModifierList()
	case p.role1 == syntax.RoleInitializerEq, p.role2 == syntax.RoleInitializerEq:
		return p.space(s.SpaceAroundAssignmentOperators)
	case p.kind2 == syntax.KindLBracket, p.kind2 == syntax.KindRBracket:
		return p.space(false)
	}

	return p.space(true)
}

func (p *spacingPair) annotation() *Spacing {
	switch {
	case p.role1 == syntax.RoleAt:
		return p.space(false)
	case p.kind2 == syntax.KindAnnotationParameterList:
		return p.space(p.s.SpaceBeforeAnotationParameterList)
	}

	return nil
}

func (p *spacingPair) nameValuePair() *Spacing {
	s := p.s

	switch {
	case p.role1 == syntax.RoleInitializerEq && p.kind2 == syntax.KindAnnotationArrayInitializer:
		return p.space(s.SpaceAroundAssignmentOperators || s.SpaceBeforeAnnotationArrayInitializerLBrace)
	case p.role1 == syntax.RoleInitializerEq, p.role2 == syntax.RoleInitializerEq:
		return p.space(s.SpaceAroundAssignmentOperators)
	}

	return nil
}

// referenceList spaces extends, implements, permits and throws clauses.
func (p *spacingPair) referenceList() *Spacing {
	return p.space(true)
}

func (p *spacingPair) typeArguments() *Spacing {
	switch {
	case p.role1 == syntax.RoleLt, p.role2 == syntax.RoleGt, p.role2 == syntax.RoleLt:
		return p.space(false)
	}

	return p.space(true)
}

// reference spaces qualified names: nothing around the dot, and nothing before explicit
// type arguments.
func (p *spacingPair) reference() *Spacing {
	switch {
	case p.role1 == syntax.RoleDot, p.role2 == syntax.RoleDot,
		p.role2 == syntax.RoleReferenceParameterList, p.kind2 == syntax.KindReferenceParameterList:
		return p.space(false)
	case p.kind1 == syntax.KindAnnotation:
		return p.space(true)
	}

	return nil
}

func (p *spacingPair) typeElement() *Spacing {
	switch {
	case p.kind2 == syntax.KindLBracket, p.kind2 == syntax.KindRBracket, p.kind2 == syntax.KindEllipsis,
		p.kind1 == syntax.KindLBracket:
		return p.space(false)
	case p.kind1 == syntax.KindAnnotation, p.role1 == syntax.RoleQuest, p.role2 == syntax.RoleExtendsKeyword,
		p.role1 == syntax.RoleExtendsKeyword:
		return p.space(true)
	}

	return nil
}

func (p *spacingPair) parameterList() *Spacing {
	s := p.s

	if p.parent.Role == syntax.RoleLambdaParameters {
		return p.parenList(false, false, s.SpaceWithinMethodParentheses, false)
	}

	return p.parenList(s.MethodParametersLParenOnNextLine, s.MethodParametersRParenOnNextLine,
		s.SpaceWithinMethodParentheses, s.SpaceWithinEmptyMethodParentheses)
}

// parenList spaces the inside of a parenthesized list. Commas were handled before.
func (p *spacingPair) parenList(lparenOnNewLine, rparenOnNewLine, within, withinEmpty bool) *Spacing {
	switch {
	case p.kind1 == syntax.KindLParen && p.kind2 == syntax.KindRParen:
		return p.space(withinEmpty)
	case p.kind1 == syntax.KindLParen:
		return p.parenSpace(lparenOnNewLine, within)
	case p.kind2 == syntax.KindRParen:
		return p.parenSpace(rparenOnNewLine, within)
	}

	return nil
}

// braceList spaces the inside of an array initializer.
func (p *spacingPair) braceList(lbraceOnNewLine, rbraceOnNewLine, within bool) *Spacing {
	switch {
	case p.kind1 == syntax.KindLBrace && p.kind2 == syntax.KindRBrace:
		return p.space(p.s.SpaceWithinEmptyArrayInitializerBraces)
	case p.kind1 == syntax.KindLBrace:
		return p.parenSpace(lbraceOnNewLine, within)
	case p.kind2 == syntax.KindRBrace:
		return p.parenSpace(rbraceOnNewLine, within)
	}

	return nil
}

func (p *spacingPair) resourceList() *Spacing {
	s := p.s

	switch {
	case p.kind2 == syntax.KindSemicolon:
		return p.space(s.SpaceBeforeSemicolon)
	case p.kind1 == syntax.KindSemicolon && p.kind2 != syntax.KindRParen:
		return p.space(s.SpaceAfterSemicolon)
	}

	return p.parenList(s.ResourceListLParenOnNextLine, s.ResourceListRParenOnNextLine, s.SpaceWithinTryParentheses, false)
}

func isEnum(class *syntax.Node) bool {
	kw := class.ChildByRole(syntax.RoleTypeKeyword)
	return kw != nil && kw.Kind == syntax.KindEnumKeyword
}

func isInterface(class *syntax.Node) bool {
	kw := class.ChildByRole(syntax.RoleTypeKeyword)
	return kw != nil && kw.Kind == syntax.KindInterfaceKeyword
}

// onlyInitializer reports whether the only member of an anonymous class body is an
// instance initializer.
func onlyInitializer(body *syntax.Node) bool {
	var members []*syntax.Node

	for _, child := range body.Children() {
		if child.Role == syntax.RoleClassMember {
			members = append(members, child)
		}
	}

	return len(members) == 1 && members[0].Kind == syntax.KindClassInitializer
}
