package format

import (
	"log/slog"

	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// SpacingResolver computes the whitespace constraint in front of a node from the roles
// the node and its left neighbour play in their common parent.
type SpacingResolver struct {
	settings *Settings
	logger   *slog.Logger
}

// NewSpacingResolver returns a resolver for settings. A nil logger discards output.
func NewSpacingResolver(settings *Settings, logger *slog.Logger) *SpacingResolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &SpacingResolver{settings: settings, logger: logger}
}

// Resolve returns the spacing between right and the closest preceding node that is not
// whitespace. When right starts its parent, the pair is looked up one level higher. A
// nil result keeps the original gap.
func (r *SpacingResolver) Resolve(right *syntax.Node) *Spacing {
	if right == nil {
		return nil
	}

	p := r.pairBefore(right)
	if p == nil {
		return nil
	}

	return p.resolve()
}

// spacingPair is one gap under inspection: two adjacent children of parent.
type spacingPair struct {
	*SpacingResolver

	s           *Settings
	parent      *syntax.Node
	left, right *syntax.Node
	role1       syntax.Role
	role2       syntax.Role
	kind1       syntax.Kind
	kind2       syntax.Kind
}

func (r *SpacingResolver) pairBefore(right *syntax.Node) *spacingPair {
	for n := right; n.Parent() != nil; n = n.Parent() {
		left := prevMeaningful(n)
		if left == nil {
			continue
		}

		return &spacingPair{
			SpacingResolver: r,
			s:               r.settings,
			parent:          n.Parent(),
			left:            left,
			right:           n,
			role1:           left.Role,
			role2:           n.Role,
			kind1:           left.Kind,
			kind2:           n.Kind,
		}
	}

	return nil
}

// prevMeaningful is the closest preceding sibling that is neither whitespace nor empty.
func prevMeaningful(n *syntax.Node) *syntax.Node {
	for prev := n.PrevSibling(); prev != nil; prev = prev.PrevSibling() {
		if !prev.IsWhitespace() && !prev.Range.IsEmpty() {
			return prev
		}
	}

	return nil
}

func (p *spacingPair) resolve() *Spacing {
	s := p.s

	if p.left.IsError() || p.right.IsError() || p.parent.IsError() {
		p.logger.Debug("read-only spacing due to error node", "offset", p.right.Range.Start, "parent", p.parent.Kind)
		return ReadOnlySpacing()
	}

	if p.afterLineComment() {
		return NewSpacing(0, 0, 1, s.KeepLineBreaks, s.KeepBlankLinesInCode)
	}

	if p.right.IsComment() && p.kind2 != syntax.KindDocComment {
		if s.KeepFirstColumnComment {
			return KeepingFirstColumnSpacing(0, MaxSpaces, true, s.KeepBlankLinesInCode)
		}

		return NewSpacing(0, MaxSpaces, 0, true, s.KeepBlankLinesInCode)
	}

	if sp := p.byConstruct(); sp != nil {
		return sp
	}

	switch {
	case !p.canStick():
		return NewSpacing(1, 1, 0, s.KeepLineBreaks, s.KeepBlankLinesInCode)
	case p.kind1 == syntax.KindCStyleComment:
		return nil
	}

	return NewSpacing(0, 0, 0, true, s.KeepBlankLinesInCode)
}

// afterLineComment reports whether the gap follows an end-of-line comment. Nothing may
// follow such a comment on its line.
func (p *spacingPair) afterLineComment() bool {
	first := p.right.FirstToken()
	if first == nil {
		return false
	}

	prev := first.PrevNonWhitespaceLeaf()
	return prev != nil && prev.Kind == syntax.KindEndOfLineComment
}

// canStick reports whether the last token before the gap and the first token after it
// can be written without a space between them.
func (p *spacingPair) canStick() bool {
	first := p.right.FirstToken()
	if first == nil {
		return true
	}

	last := first.PrevNonWhitespaceLeaf()
	if last == nil {
		return true
	}

	return canStickTogether(last, first)
}

// byConstruct applies the rules shared by every construct, then the rules of the
// parent's construct kind. A nil result falls back to the stickiness rule.
func (p *spacingPair) byConstruct() *Spacing {
	s := p.s

	switch {
	case p.kind1 == syntax.KindDocComment:
		return p.lineFeeds(1, s.KeepBlankLinesInDeclarations)
	case p.kind2 == syntax.KindComma:
		return p.space(s.SpaceBeforeComma)
	case p.kind1 == syntax.KindComma:
		if p.parent.Kind == syntax.KindReferenceParameterList {
			return p.space(s.SpaceAfterCommaInTypeArguments)
		}

		return p.space(s.SpaceAfterComma)
	case p.kind2 == syntax.KindSemicolon && p.role2 != syntax.RoleForSemicolon && !p.isListSemicolon():
		return p.space(s.SpaceBeforeSemicolon)
	}

	switch p.parent.Kind {
	case syntax.KindFile:
		return p.file()
	case syntax.KindImportList:
		return p.lineFeeds(1, s.KeepBlankLinesInDeclarations)
	case syntax.KindPackageStatement, syntax.KindImportStatement, syntax.KindImportStaticStatement:
		return p.space(true)
	case syntax.KindClass, syntax.KindAnonymousClass, syntax.KindEnumConstantInitializer:
		return p.class()
	case syntax.KindEnumConstant:
		return p.enumConstant()
	case syntax.KindClassInitializer:
		return p.classInitializer()
	case syntax.KindMethod:
		return p.method()
	case syntax.KindField, syntax.KindLocalVariable, syntax.KindParameter, syntax.KindRecordComponent,
		syntax.KindResourceVariable:
		return p.variable()
	case syntax.KindModifierList:
		return p.space(true)
	case syntax.KindAnnotation:
		return p.annotation()
	case syntax.KindAnnotationParameterList:
		return p.parenList(false, false, s.SpaceWithinAnnotationParentheses, false)
	case syntax.KindNameValuePair:
		return p.nameValuePair()
	case syntax.KindAnnotationArrayInitializer:
		return p.braceList(false, false, s.SpaceWithinArrayInitializerBraces)
	case syntax.KindExtendsList, syntax.KindImplementsList, syntax.KindPermitsList, syntax.KindThrowsList,
		syntax.KindExtendsBoundList:
		return p.referenceList()
	case syntax.KindTypeParameterList, syntax.KindReferenceParameterList:
		return p.typeArguments()
	case syntax.KindTypeParameter:
		return p.space(true)
	case syntax.KindCodeReference, syntax.KindReferenceExpression, syntax.KindThisExpression,
		syntax.KindSuperExpression, syntax.KindClassObjectAccessExpression:
		return p.reference()
	case syntax.KindType:
		return p.typeElement()
	case syntax.KindParameterList:
		return p.parameterList()
	case syntax.KindRecordHeader:
		return p.parenList(false, false, s.SpaceWithinMethodParentheses, s.SpaceWithinEmptyMethodParentheses)
	case syntax.KindExpressionList:
		return p.parenList(s.CallParametersLParenOnNextLine, s.CallParametersRParenOnNextLine,
			s.SpaceWithinMethodCallParentheses, s.SpaceWithinEmptyMethodCallParentheses)
	case syntax.KindResourceList:
		return p.resourceList()
	}

	if sp := p.statement(); sp != nil {
		return sp
	}

	return p.expression()
}

// isListSemicolon reports whether the ';' separates resources, where it is spaced like
// a separator rather than a terminator.
func (p *spacingPair) isListSemicolon() bool {
	return p.parent.Kind == syntax.KindResourceList
}

func (p *spacingPair) file() *Spacing {
	s := p.s

	switch {
	case p.kind2 == syntax.KindPackageStatement:
		return NewSpacing(0, 0, s.BlankLinesBeforePackage+1, false, 0)
	case p.kind1 == syntax.KindPackageStatement && p.kind2 == syntax.KindImportList:
		return NewSpacing(0, 0, max(s.BlankLinesAfterPackage, s.BlankLinesBeforeImports)+1, false, 0)
	case p.kind1 == syntax.KindPackageStatement:
		return NewSpacing(0, 0, s.BlankLinesAfterPackage+1, false, 0)
	case p.kind2 == syntax.KindImportList:
		return NewSpacing(0, 0, s.BlankLinesBeforeImports+1, false, 0)
	case p.kind1 == syntax.KindImportList:
		return NewSpacing(0, 0, s.BlankLinesAfterImports+1, false, 0)
	case p.kind1 == syntax.KindClass || p.kind2 == syntax.KindClass:
		return p.blankLines(s.BlankLinesAroundClass, s.KeepBlankLinesInDeclarations)
	}

	return nil
}

// space is the plain in-code spacing: one space or none, keeping existing line breaks.
func (p *spacingPair) space(space bool) *Spacing {
	return p.spaceProperty(space, p.s.KeepLineBreaks, p.s.KeepBlankLinesInCode)
}

// spaceProperty asks for one space or none. No space becomes one when the two tokens
// would read back as a different token.
func (p *spacingPair) spaceProperty(space, keepLineBreaks bool, keepBlankLines int) *Spacing {
	if !space && !p.canStick() {
		space = true
	}

	if !keepLineBreaks && p.role2 == syntax.RoleNone {
		keepLineBreaks = true
	}

	n := spaces(space)

	return NewSpacing(n, n, 0, keepLineBreaks, keepBlankLines)
}

func (p *spacingPair) lineFeeds(n, keepBlankLines int) *Spacing {
	return NewSpacing(0, 0, n, p.s.KeepLineBreaks, keepBlankLines)
}

// blankLines asks for at least n blank lines and keeps no more than keep.
func (p *spacingPair) blankLines(n, keep int) *Spacing {
	return NewSpacing(0, MaxSpaces, n+1, p.s.KeepLineBreaks, keep)
}

// nonLineFeed asks for n spaces and no line feed, or a line feed when dependence spans
// several lines.
func (p *spacingPair) nonLineFeed(n int, dependence *syntax.TextRange) *Spacing {
	if dependence != nil {
		return NewDependentLFSpacing(n, n, *dependence, p.s.KeepLineBreaks, p.s.KeepBlankLinesInCode)
	}

	return NewSpacing(n, n, 0, p.s.KeepLineBreaks, p.s.KeepBlankLinesInCode)
}

// parenSpace spaces the inside of a bracket pair. onNewLine moves the bracket to its own
// line once the bracketed construct spans several lines.
func (p *spacingPair) parenSpace(onNewLine, space bool) *Spacing {
	if onNewLine {
		n := spaces(space)
		return NewDependentLFSpacing(n, n, p.parent.Range, p.s.KeepLineBreaks, p.s.KeepBlankLinesInCode)
	}

	return p.space(space)
}

// beforeLBrace places an opening brace. header is the range whose line breaks move a
// NEXT_LINE_IF_WRAPPED brace down. keepOneLine keeps a NEXT_LINE brace up while body
// fits on one line.
func (p *spacingPair) beforeLBrace(space bool, style BraceStyle, header *syntax.TextRange, keepOneLine bool, body syntax.TextRange) *Spacing {
	n := spaces(space)

	switch {
	case style == NextLineIfWrapped && header != nil:
		return p.nonLineFeed(n, header)
	case style == EndOfLine || style == NextLineIfWrapped:
		return p.nonLineFeed(n, nil)
	case keepOneLine:
		return NewDependentLFSpacing(n, n, body, p.s.KeepLineBreaks, p.s.KeepBlankLinesInCode)
	}

	return NewSpacing(0, 0, 1, false, p.s.KeepBlankLinesInCode)
}

// onNewLine places a keyword continuing a statement, such as else or catch.
func (p *spacingPair) onNewLine(onNewLine, spaceInline bool) *Spacing {
	if !onNewLine {
		return p.spaceProperty(spaceInline, false, 0)
	}

	if p.s.KeepSimpleBlocksInOneLine {
		return NewDependentLFSpacing(0, 1, p.parent.Range, p.s.KeepLineBreaks, p.s.KeepBlankLinesInCode)
	}

	return NewSpacing(0, 0, 1, false, p.s.KeepBlankLinesInCode)
}

// controlBody spaces a body without braces after its statement header.
func (p *spacingPair) controlBody() *Spacing {
	if p.s.KeepControlStatementInOneLine && p.kind1 != syntax.KindEndOfLineComment {
		return NewSpacing(1, 1, 0, p.s.KeepLineBreaks, p.s.KeepBlankLinesInCode)
	}

	return NewSpacing(1, 1, 1, false, p.s.KeepBlankLinesInCode)
}

// header is the range from the start of the parent to the end of the left node.
func (p *spacingPair) header() *syntax.TextRange {
	r := syntax.NewRange(p.parent.Range.Start, p.left.Range.End)
	return &r
}

func spaces(space bool) int {
	if space {
		return 1
	}

	return 0
}
