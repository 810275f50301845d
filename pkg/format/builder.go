package format

import (
	"log/slog"

	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// ChainStyle selects how method call chains are split into chunks.
type ChainStyle int

const (
	// ChainCurrent splits a chain before every '.' and every comment.
	ChainCurrent ChainStyle = iota
	// ChainLegacy splits before every '.' only and keeps the older call detection.
	ChainLegacy
)

// Option customizes a Builder.
type Option func(*Builder)

// WithLogger sets the logger receiving debug records about the built trees.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// IndentsOnly builds trees for indentation queries: no wraps are computed and the
// chain, ternary and enum constant builders are skipped.
func IndentsOnly() Option {
	return func(b *Builder) { b.indentsOnly = true }
}

// WithChainStyle selects the call chain algorithm.
func WithChainStyle(style ChainStyle) Option {
	return func(b *Builder) { b.chains = style }
}

// Builder turns syntax trees into block trees. A Builder is safe for concurrent use;
// every Build call gets its own alignment arena and strategy state.
type Builder struct {
	settings    *Settings
	logger      *slog.Logger
	indentsOnly bool
	chains      ChainStyle
}

// New creates a Builder for the given settings.
func New(settings *Settings, opts ...Option) *Builder {
	if settings == nil {
		settings = DefaultSettings()
	}

	b := &Builder{
		settings: settings,
		logger:   slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// NewDefault creates a Builder using DefaultSettings.
func NewDefault() *Builder {
	return New(DefaultSettings())
}

// Settings returns the settings the builder was created with.
func (b *Builder) Settings() *Settings { return b.settings }

// IsIndentsOnly reports whether the builder was created with IndentsOnly.
func (b *Builder) IsIndentsOnly() bool { return b.indentsOnly }

// Build returns the root block of file. Children are built on demand.
func (b *Builder) Build(file *syntax.File) *Block {
	for _, e := range file.Errors {
		b.logger.Debug("parse error degraded to error node", "file", file.Path, "line", e.Line+1, "column", e.Column+1)
	}

	ctx := &buildContext{
		settings:    b.settings,
		logger:      b.logger,
		indentsOnly: b.indentsOnly,
		chains:      b.chains,
		alignments:  &Alignments{},
	}
	ctx.spacing = NewSpacingResolver(b.settings, b.logger)

	return ctx.createBlock(file.Root, NoneIndent(), nil, NullStrategy)
}

type buildContext struct {
	settings    *Settings
	logger      *slog.Logger
	indentsOnly bool
	chains      ChainStyle
	alignments  *Alignments
	spacing     *SpacingResolver
}

// indentDefault marks an indent the builder derives from the child's position.
const indentDefault IndentType = -1

var defaultIndent = Indent{Type: indentDefault}

// blockContainingKinds own a body and are built with the BlockContaining state machine.
var blockContainingKinds = map[syntax.Kind]bool{
	syntax.KindSwitchStatement:            true,
	syntax.KindForStatement:               true,
	syntax.KindWhileStatement:             true,
	syntax.KindDoWhileStatement:           true,
	syntax.KindTryStatement:               true,
	syntax.KindCatchSection:               true,
	syntax.KindIfStatement:                true,
	syntax.KindMethod:                     true,
	syntax.KindArrayInitializerExpression: true,
	syntax.KindAnnotationArrayInitializer: true,
	syntax.KindClassInitializer:           true,
	syntax.KindSynchronizedStatement:      true,
	syntax.KindForeachStatement:           true,
}

func isClassLike(k syntax.Kind) bool {
	return k == syntax.KindClass || k == syntax.KindAnonymousClass || k == syntax.KindEnumConstantInitializer
}

func isReferenceList(k syntax.Kind) bool {
	switch k {
	case syntax.KindExtendsList, syntax.KindImplementsList, syntax.KindThrowsList, syntax.KindPermitsList:
		return true
	}

	return false
}

// significant reports whether a child node gets a block of its own.
func significant(n *syntax.Node) bool {
	return !n.IsWhitespace() && !n.Range.IsEmpty()
}

func (c *buildContext) shapeOf(n *syntax.Node) Shape {
	switch {
	case n.IsError():
		return ShapePartial
	case isClassLike(n.Kind):
		return ShapeCodeBlock
	case blockContainingKinds[n.Kind]:
		return ShapeBlockContaining
	case isBodyStatement(n):
		return ShapeCodeBlock
	case n.Kind.IsToken() || len(n.Children()) == 0:
		return ShapeLeaf
	case isReferenceList(n.Kind):
		return ShapeExtendsList
	case n.Kind == syntax.KindCodeBlock:
		return ShapeCodeBlock
	case n.Kind == syntax.KindLabeledStatement:
		return ShapeLabeled
	}

	return ShapeSimple
}

// isBodyStatement reports whether n is the body of an if or a loop.
func isBodyStatement(n *syntax.Node) bool {
	parent := n.Parent()
	if parent == nil || parent.Kind == syntax.KindCodeBlock || !n.Kind.IsStatement() {
		return false
	}

	switch parent.Kind {
	case syntax.KindIfStatement:
		return n.Role == syntax.RoleThenBranch || n.Role == syntax.RoleElseBranch
	case syntax.KindForStatement, syntax.KindForeachStatement, syntax.KindWhileStatement, syntax.KindDoWhileStatement:
		return n.Role == syntax.RoleLoopBody
	}

	return false
}

// createBlock creates the block for n. A default indent is derived from n's position
// and the block's alignment is taken from strategy.
func (c *buildContext) createBlock(n *syntax.Node, indent Indent, wrap *Wrap, strategy AlignmentStrategy) *Block {
	if indent.Type == indentDefault {
		indent = subtreeIndent(n, c.settings)
	}

	if strategy == nil {
		strategy = NullStrategy
	}

	al := NoAlignment
	if n.Kind != syntax.KindImplementsList {
		al = strategy.Alignment(parentKind(n), n.Kind)
	}

	if c.indentsOnly {
		wrap = nil
	}

	b := newBlock(c, c.shapeOf(n), n, indent, al, wrap)
	b.strategy = strategy
	b.childrenIndent = 1

	if n.Kind == syntax.KindCodeBlock && n.Role == syntax.RoleSwitchBody && !c.settings.IndentCaseFromSwitch {
		b.childrenIndent = 0
	}

	return b
}

func (c *buildContext) buildChildren(b *Block) []*Block {
	switch b.Shape {
	case ShapeSimple:
		return c.buildSimple(b)
	case ShapeCodeBlock:
		return c.buildCodeBlock(b)
	case ShapeBlockContaining:
		return c.buildBlockContaining(b)
	case ShapeExtendsList:
		return c.buildExtendsList(b)
	case ShapeLabeled:
		return c.buildLabeled(b)
	case ShapeLeaf, ShapePartial, ShapeSynthetic:
		return nil
	}

	assert(false, "unhandled block shape %s", b.Shape)

	return nil
}

func parentKind(n *syntax.Node) syntax.Kind {
	if p := n.Parent(); p != nil {
		return p.Kind
	}

	return syntax.KindNone
}

// subtreeIndent is the indent of n when its parent does not choose one.
func subtreeIndent(n *syntax.Node, s *Settings) Indent {
	parent := n.Parent()

	if n.Kind == syntax.KindAnnotation {
		if parent != nil && parent.Kind == syntax.KindAnnotationArrayInitializer {
			return NormalIndent()
		}

		return NoneIndent()
	}

	if prev := n.PrevNonWhitespace(); prev != nil && prev.Kind == syntax.KindModifierList {
		return NoneIndent()
	}

	if n.Kind == syntax.KindFile || parent == nil {
		return NoneIndent()
	}

	if indent, ok := childIndent(parent, s); ok {
		return indent
	}

	if parent.Kind == syntax.KindLambdaExpression && n.Kind == syntax.KindCodeBlock {
		return NoneIndent()
	}

	return ContinuationWithoutFirstIndent()
}

// childIndent is the indent a node gives all of its children, if it has one.
func childIndent(parent *syntax.Node, s *Settings) (Indent, bool) {
	switch parent.Kind {
	case syntax.KindModifierList, syntax.KindClass, syntax.KindIfStatement, syntax.KindTryStatement,
		syntax.KindCatchSection, syntax.KindForStatement, syntax.KindForeachStatement,
		syntax.KindBlockStatement, syntax.KindDoWhileStatement, syntax.KindWhileStatement,
		syntax.KindSwitchStatement, syntax.KindMethod, syntax.KindImportList,
		syntax.KindExpressionStatement, syntax.KindFile:
		return NoneIndent(), true
	case syntax.KindField:
		return ContinuationWithoutFirstIndent().WithRelative(s.UseRelativeIndents), true
	}

	return Indent{}, false
}

func (c *buildContext) resolveIndent(indent Indent, n *syntax.Node) Indent {
	if indent.Type == indentDefault {
		return subtreeIndent(n, c.settings)
	}

	return indent
}

// createChildAlignment is the alignment shared by the aligned children of b.
func (c *buildContext) createChildAlignment(b *Block) Alignment {
	s := c.settings

	switch b.Kind() {
	case syntax.KindAssignmentExpression:
		if parentKind(b.Node) == syntax.KindAssignmentExpression && b.Alignment.IsSet() {
			return b.Alignment
		}

		return c.alignIf(s.AlignMultilineAssignment)
	case syntax.KindParenthesizedExpression:
		return c.alignIf(s.AlignMultilineParenthesizedExpression)
	case syntax.KindConditionalExpression:
		return c.alignIf(s.AlignMultilineTernaryOperation)
	case syntax.KindForStatement:
		return c.alignIf(s.AlignMultilineFor)
	case syntax.KindExtendsList, syntax.KindImplementsList, syntax.KindPermitsList:
		return c.alignIf(s.AlignMultilineExtendsList)
	case syntax.KindThrowsList:
		return c.alignIf(s.AlignMultilineThrowsList)
	case syntax.KindParameterList, syntax.KindRecordHeader:
		return c.alignIf(s.AlignMultilineParameters)
	case syntax.KindResourceList:
		return c.alignIf(s.AlignMultilineResources)
	case syntax.KindBinaryExpression:
		var inherited Alignment
		if parent := b.Node.Parent(); parent != nil && parent.Kind == syntax.KindBinaryExpression && samePriority(b.Node, parent) {
			inherited = b.Alignment
		}

		if inherited.IsSet() || !s.AlignMultilineBinaryOperation {
			return inherited
		}

		return c.alignments.New()
	case syntax.KindClass, syntax.KindMethod:
		return c.alignments.New()
	case syntax.KindModifierList, syntax.KindNewExpression:
		return b.Alignment
	}

	return NoAlignment
}

// createChildAlignment2 is the second alignment of a ternary, held by ':' tokens.
func (c *buildContext) createChildAlignment2(b *Block, base Alignment) Alignment {
	if b.Kind() == syntax.KindConditionalExpression && c.settings.AlignMultilineTernaryOperation {
		return c.alignments.NewChild(base)
	}

	return NoAlignment
}

func (c *buildContext) alignIf(option bool) Alignment {
	if !option {
		return NoAlignment
	}

	return c.alignments.New()
}

func samePriority(a, b *syntax.Node) bool {
	sa, sb := a.ChildByRole(syntax.RoleOperationSign), b.ChildByRole(syntax.RoleOperationSign)
	if sa == nil || sb == nil {
		return false
	}

	return binaryPriority(sa.Kind) == binaryPriority(sb.Kind)
}

func binaryPriority(k syntax.Kind) int {
	switch k {
	case syntax.KindOrOr:
		return 1
	case syntax.KindAndAnd:
		return 2
	case syntax.KindOr:
		return 3
	case syntax.KindXor:
		return 4
	case syntax.KindAnd:
		return 5
	case syntax.KindEqEq, syntax.KindNe:
		return 6
	case syntax.KindLt, syntax.KindGt, syntax.KindLe, syntax.KindGe, syntax.KindInstanceofKeyword:
		return 7
	case syntax.KindLtLt, syntax.KindGtGt, syntax.KindGtGtGt:
		return 8
	case syntax.KindPlus, syntax.KindMinus:
		return 9
	case syntax.KindAsterisk, syntax.KindDiv, syntax.KindPerc:
		return 10
	}

	return 0
}

// braceStyle is the brace placement governing the braces owned by n.
func (c *buildContext) braceStyle(n *syntax.Node) BraceStyle {
	s := c.settings

	switch {
	case isClassLike(n.Kind):
		return s.ClassBraceStyle
	case n.Kind == syntax.KindMethod:
		return s.MethodBraceStyle
	case n.Kind == syntax.KindCodeBlock && parentKind(n) == syntax.KindMethod:
		return s.MethodBraceStyle
	case n.Kind == syntax.KindCodeBlock && parentKind(n) == syntax.KindLambdaExpression:
		return s.LambdaBraceStyle
	}

	return s.BraceStyle
}

func isTopLevelClass(n *syntax.Node) bool {
	return n.Kind == syntax.KindClass && parentKind(n) == syntax.KindFile
}

// internalIndent is the indent of the content between the braces owned by n.
func (c *buildContext) internalIndent(n *syntax.Node, base int) Indent {
	if isTopLevelClass(n) && c.settings.DoNotIndentTopLevelClassMembers {
		return NoneIndent()
	}

	if c.braceStyle(n) == NextLineShifted {
		base--
	}

	return levelIndent(base)
}

// externalIndent is the indent of the braces owned by n.
func (c *buildContext) externalIndent(n *syntax.Node) Indent {
	switch c.braceStyle(n) {
	case EndOfLine, NextLine, NextLineIfWrapped:
		return NoneIndent()
	}

	return NormalIndent()
}

func levelIndent(level int) Indent {
	assert(level <= 1, "unexpected indent level %d", level)

	if level <= 0 {
		return NoneIndent()
	}

	return NormalIndent()
}
