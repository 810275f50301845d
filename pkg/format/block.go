package format

import (
	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// Shape is the variant of a Block. Each shape builds its children with its own rules.
type Shape int

const (
	// ShapeLeaf wraps a single token.
	ShapeLeaf Shape = iota
	// ShapeSimple mirrors a syntax node, one child block per significant child node.
	ShapeSimple
	// ShapeCodeBlock is a construct owning braces: classes, code blocks and statements used as bodies.
	ShapeCodeBlock
	// ShapeBlockContaining is a statement or declaration that owns a body: if, loops, try, methods, ...
	ShapeBlockContaining
	// ShapeSynthetic groups sibling blocks that have no node of their own.
	ShapeSynthetic
	// ShapeExtendsList is an extends, implements, throws or permits clause.
	ShapeExtendsList
	// ShapeLabeled is a labeled statement.
	ShapeLabeled
	// ShapePartial covers source the parser rejected. It has no children and is never reformatted.
	ShapePartial
)

var shapeNames = map[Shape]string{
	ShapeLeaf:            "Leaf",
	ShapeSimple:          "Simple",
	ShapeCodeBlock:       "CodeBlock",
	ShapeBlockContaining: "BlockContaining",
	ShapeSynthetic:       "Synthetic",
	ShapeExtendsList:     "ExtendsList",
	ShapeLabeled:         "Labeled",
	ShapePartial:         "Partial",
}

func (s Shape) String() string {
	if name, ok := shapeNames[s]; ok {
		return name
	}

	return "Unknown"
}

// ChildAttributes is the indent and alignment given to a child inserted into a block.
type ChildAttributes struct {
	Indent    Indent
	Alignment Alignment
}

// Block is a node of the layout tree. Composite blocks build their children on first
// access, so asking for the attributes of a single position only builds the blocks on
// the path to it.
type Block struct {
	Shape     Shape
	Node      *syntax.Node
	Indent    Indent
	Alignment Alignment
	Wrap      *Wrap

	// Chain is set on the synthetic block of a method call chain.
	Chain *ChainInfo

	rng      syntax.TextRange
	parent   *Block
	children []*Block
	built    bool

	ctx *buildContext

	// strategy is the alignment strategy the parent handed to this block. Declarations
	// aligned in columns read their children's alignments from it.
	strategy AlignmentStrategy

	// Attributes collected while building children.
	childAttrs     *ChildAttributes
	childAlignment Alignment
	indentsBefore  []Indent
	incomplete     bool
	caseSection    bool
	childrenIndent int

	reservedWraps      map[syntax.Kind]*Wrap
	reservedAlignment  Alignment
	reservedAlignment2 Alignment
	annotationWrap     *Wrap
	afterClassKeyword  bool
}

func newBlock(ctx *buildContext, shape Shape, node *syntax.Node, indent Indent, al Alignment, wrap *Wrap) *Block {
	return &Block{
		Shape:     shape,
		Node:      node,
		Indent:    indent,
		Alignment: al,
		Wrap:      wrap,
		rng:       node.Range,
		ctx:       ctx,
		strategy:  NullStrategy,
	}
}

// newSynthetic groups children, which must be non-empty and contiguous.
func newSynthetic(ctx *buildContext, children []*Block, al Alignment, indent Indent, wrap *Wrap) *Block {
	assert(len(children) > 0, "synthetic block without children")

	b := &Block{
		Shape:     ShapeSynthetic,
		Indent:    indent,
		Alignment: al,
		Wrap:      wrap,
		rng:       children[0].rng.Union(children[len(children)-1].rng),
		ctx:       ctx,
		strategy:  NullStrategy,
		built:     true,
	}
	b.adopt(children)

	return b
}

// Range returns the source range covered by the block.
func (b *Block) Range() syntax.TextRange { return b.rng }

// Parent returns the enclosing block, nil for the root.
func (b *Block) Parent() *Block { return b.parent }

// Settings returns the settings the block was built with.
func (b *Block) Settings() *Settings { return b.ctx.settings }

// IsLeaf reports whether the block never has children.
func (b *Block) IsLeaf() bool {
	return b.Shape == ShapeLeaf || b.Shape == ShapePartial
}

// Children returns the sub-blocks, building them on first use.
func (b *Block) Children() []*Block {
	if !b.built {
		b.built = true

		if !b.IsLeaf() {
			b.adopt(b.ctx.buildChildren(b))
		}
	}

	return b.children
}

func (b *Block) adopt(children []*Block) {
	for _, c := range children {
		c.parent = b
	}

	b.children = children

	if len(children) > 0 {
		assert(b.rng.ContainsRange(children[0].rng.Union(children[len(children)-1].rng)),
			"children outside of their parent")
	}
}

// FirstNode returns the first syntax node covered by the block.
func (b *Block) FirstNode() *syntax.Node {
	if b.Node != nil {
		return b.Node
	}

	return b.children[0].FirstNode()
}

// Kind returns the kind of the block's node, KindNone for synthetic blocks.
func (b *Block) Kind() syntax.Kind {
	if b.Node == nil {
		return syntax.KindNone
	}

	return b.Node.Kind
}

// Spacing returns the whitespace constraint between two adjacent children of b. A nil
// result means the original whitespace is kept.
func (b *Block) Spacing(left, right *Block) *Spacing {
	if b.IsLeaf() || right == nil {
		return nil
	}

	return b.ctx.spacing.Resolve(right.FirstNode())
}

// ParentAlignment returns the alignment al was derived from, if any.
func (b *Block) ParentAlignment(al Alignment) Alignment {
	return b.ctx.alignments.Parent(al)
}

// IsIncomplete reports whether the trailing syntax of the block is missing, e.g. an
// unterminated statement or a class without its closing brace.
func (b *Block) IsIncomplete() bool {
	if b.incomplete {
		return true
	}

	if b.Node == nil {
		children := b.Children()
		return children[len(children)-1].IsIncomplete()
	}

	return isIncompleteNode(b.Node)
}

// ChildAttributes returns the indent and alignment for a child inserted before the
// child at index, or after the last child when index equals the number of children.
func (b *Block) ChildAttributes(index int) ChildAttributes {
	return b.ctx.childAttributes(b, index)
}

func (b *Block) reservedWrap(kind syntax.Kind) *Wrap {
	if b.reservedWraps == nil {
		return nil
	}

	return b.reservedWraps[kind]
}

func (b *Block) setReservedWrap(w *Wrap, kind syntax.Kind) {
	if b.reservedWraps == nil {
		b.reservedWraps = map[syntax.Kind]*Wrap{}
	}

	b.reservedWraps[kind] = w
}

// Walk visits b and every block below it in document order, building children as it
// goes. Returning false from fn skips the children of the visited block.
func (b *Block) Walk(fn func(*Block) bool) {
	if !fn(b) {
		return
	}

	for _, c := range b.Children() {
		c.Walk(fn)
	}
}

// Leaves returns the leaf blocks below b in document order.
func (b *Block) Leaves() []*Block {
	var leaves []*Block

	b.Walk(func(c *Block) bool {
		if len(c.Children()) == 0 {
			leaves = append(leaves, c)
			return false
		}

		return true
	})

	return leaves
}
