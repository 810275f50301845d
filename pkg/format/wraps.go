package format

import "github.com/pseudomuto/javafmt/pkg/syntax"

var wrapTypes = map[WrapSetting]WrapType{
	DoNotWrap:         WrapNone,
	WrapAsNeeded:      WrapNormal,
	WrapAlwaysSetting: WrapAlways,
	ChopDownIfLong:    WrapChopDownIfLong,
}

// newWrap creates a wrap for a user setting. No wraps exist in indents-only trees.
func (c *buildContext) newWrap(setting WrapSetting, wrapFirst bool) *Wrap {
	if c.indentsOnly {
		return nil
	}

	return NewWrap(wrapTypes[setting], wrapFirst)
}

func (c *buildContext) newChildWrap(parent *Wrap, setting WrapSetting, wrapFirst bool) *Wrap {
	if c.indentsOnly {
		return nil
	}

	if parent == nil {
		return NewWrap(wrapTypes[setting], wrapFirst)
	}

	return NewChildWrap(parent, wrapTypes[setting], wrapFirst)
}

// createChildWrap is the wrap b offers its children. arrangeChildWrap decides which
// children actually hold it.
func (c *buildContext) createChildWrap(b *Block) *Wrap {
	if c.indentsOnly || b.Node == nil {
		return nil
	}

	s := c.settings
	n := b.Node

	switch {
	case n.Kind == syntax.KindBinaryExpression:
		reserved := b.reservedWrap(syntax.KindBinaryExpression)
		if reserved == nil {
			return c.newWrap(s.BinaryOperationWrap, false)
		}

		if parent := n.Parent(); parent != nil && parent.Kind == syntax.KindBinaryExpression && samePriority(n, parent) {
			return reserved
		}

		return c.newChildWrap(reserved, s.BinaryOperationWrap, false)
	case n.Kind == syntax.KindConditionalExpression:
		// Neither signs nor operands ever start the expression, so the first holder may break.
		return c.newWrap(s.TernaryOperationWrap, true)
	case n.Kind == syntax.KindAssertStatement:
		return c.newWrap(s.AssertStatementWrap, false)
	case n.Kind == syntax.KindForStatement:
		return c.newWrap(s.ForStatementWrap, false)
	case n.Kind == syntax.KindMethod:
		return c.newWrap(s.ThrowsKeywordWrap, true)
	case n.Kind == syntax.KindExtendsList, n.Kind == syntax.KindImplementsList, n.Kind == syntax.KindPermitsList:
		return c.newWrap(s.ExtendsListWrap, false)
	case n.Kind == syntax.KindThrowsList:
		return c.newWrap(s.ThrowsListWrap, false)
	case isAssignment(n):
		return c.newWrap(s.AssignmentWrap, true)
	}

	return nil
}

// isAssignment reports whether n assigns a value: assignment expressions and
// initialized fields or locals.
func isAssignment(n *syntax.Node) bool {
	switch n.Kind {
	case syntax.KindAssignmentExpression:
		return true
	case syntax.KindField, syntax.KindLocalVariable, syntax.KindResourceVariable:
		return n.ChildByRole(syntax.RoleInitializerEq) != nil
	}

	return false
}

// arrangeChildWrap decides whether child holds the wrap suggested by its parent b.
func (c *buildContext) arrangeChildWrap(b *Block, child *syntax.Node, suggested *Wrap) *Wrap {
	if c.indentsOnly || b.Node == nil {
		return nil
	}

	s := c.settings
	parent := b.Node

	if w := c.annotationWrapFor(b, child); w != nil {
		return w
	}

	switch {
	case parent.Kind == syntax.KindBinaryExpression:
		if child.Role == syntax.RoleOperationSign && !s.BinaryOperationSignOnNextLine {
			return nil
		}

		if child.Role == syntax.RoleROperand && s.BinaryOperationSignOnNextLine {
			return nil
		}

		return suggested
	case isReferenceList(child.Kind) && child.Kind != syntax.KindThrowsList:
		return c.newWrap(s.ExtendsKeywordWrap, true)
	case child.Kind == syntax.KindThrowsList:
		return c.newWrap(s.ThrowsKeywordWrap, true)
	case isReferenceList(parent.Kind):
		if child.Role == syntax.RoleReference {
			return suggested
		}

		return nil
	case parent.Kind == syntax.KindConditionalExpression:
		switch child.Role {
		case syntax.RoleQuest, syntax.RoleColon:
			if s.TernaryOperationSignsOnNextLine {
				return suggested
			}
		case syntax.RoleThenExpression, syntax.RoleElseExpression:
			if !s.TernaryOperationSignsOnNextLine {
				return suggested
			}
		}

		return nil
	case isAssignment(parent):
		switch child.Role {
		case syntax.RoleInitializerEq, syntax.RoleOperationSign:
			if s.PlaceAssignmentSignOnNextLine {
				return suggested
			}
		case syntax.RoleInitializer, syntax.RoleROperand:
			if !s.PlaceAssignmentSignOnNextLine {
				return suggested
			}
		}

		return nil
	case parent.Kind == syntax.KindForStatement:
		switch child.Role {
		case syntax.RoleForInitialization, syntax.RoleCondition, syntax.RoleForUpdate:
			return suggested
		}

		return nil
	case parent.Kind == syntax.KindMethod, parent.Kind == syntax.KindModifierList:
		return nil
	case parent.Kind == syntax.KindAssertStatement:
		switch {
		case child.Role == syntax.RoleCondition:
			return suggested
		case child.Role == syntax.RoleExpression && !s.AssertStatementColonOnNextLine:
			return suggested
		case child.Role == syntax.RoleColon && s.AssertStatementColonOnNextLine:
			return suggested
		}

		return nil
	}

	return suggested
}

// annotationWrapFor returns the annotation wrap held by child: annotations of a modifier
// list, the modifier following them, and the first element after a modifier list that
// ends with an annotation.
func (c *buildContext) annotationWrapFor(b *Block, child *syntax.Node) *Wrap {
	if b.Kind() == syntax.KindModifierList {
		reserved := b.reservedWrap(syntax.KindModifierList)
		if reserved == nil {
			return nil
		}

		if child.Kind == syntax.KindAnnotation {
			return reserved
		}

		if prev := child.PrevNonTrivia(); prev != nil && prev.Kind == syntax.KindAnnotation {
			return reserved
		}

		return nil
	}

	if b.annotationWrap == nil {
		return nil
	}

	if prev := child.PrevNonTrivia(); prev != nil && prev.Kind == syntax.KindModifierList {
		return b.annotationWrap
	}

	return nil
}

// annotationWrapSetting picks the annotation wrap option of a declaration.
func (c *buildContext) annotationWrapSetting(decl *syntax.Node) WrapSetting {
	s := c.settings

	switch decl.Kind {
	case syntax.KindMethod:
		return s.MethodAnnotationWrap
	case syntax.KindClass:
		return s.ClassAnnotationWrap
	case syntax.KindField:
		return s.FieldAnnotationWrap
	case syntax.KindParameter, syntax.KindRecordComponent:
		return s.ParameterAnnotationWrap
	case syntax.KindLocalVariable, syntax.KindResourceVariable:
		return s.VariableAnnotationWrap
	}

	return DoNotWrap
}
