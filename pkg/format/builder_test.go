package format_test

import (
	"bytes"
	"testing"

	. "github.com/pseudomuto/javafmt/pkg/format"
	"github.com/pseudomuto/javafmt/pkg/syntax"
	"github.com/stretchr/testify/require"
)

const chainSource = `class A {
  void f() {
    foo().bar().baz().qux();
  }
}
`

func build(t *testing.T, src string, opts ...Option) *Block {
	t.Helper()

	return New(DefaultSettings(), opts...).Build(parse(t, src))
}

func findBlock(t *testing.T, root *Block, fn func(*Block) bool) *Block {
	t.Helper()

	var found *Block

	root.Walk(func(b *Block) bool {
		if found == nil && fn(b) {
			found = b
		}

		return found == nil
	})

	require.NotNil(t, found, "no matching block")

	return found
}

func TestBuilder_LeavesCoverTokens(t *testing.T) {
	file := parse(t, stickySource)
	root := New(DefaultSettings()).Build(file)

	var tokens []syntax.TextRange

	file.Root.Walk(func(n *syntax.Node) bool {
		if len(n.Children()) == 0 && !n.IsWhitespace() && !n.Range.IsEmpty() {
			tokens = append(tokens, n.Range)
		}

		return true
	})

	var leaves []syntax.TextRange
	for _, leaf := range root.Leaves() {
		leaves = append(leaves, leaf.Range())
	}

	require.Equal(t, tokens, leaves)
	require.Equal(t, file.Root.Range, root.Range())
}

func TestBuilder_IndentsOnly(t *testing.T) {
	root := build(t, chainSource, IndentsOnly())

	root.Walk(func(b *Block) bool {
		require.Nil(t, b.Wrap, "block %s has a wrap", b.Range())
		require.Nil(t, b.Chain)

		return true
	})
}

func TestBuilder_Chains(t *testing.T) {
	isChain := func(b *Block) bool { return b.Chain != nil }

	t.Run("current", func(t *testing.T) {
		chain := findBlock(t, build(t, chainSource), isChain)

		require.Equal(t, ShapeSynthetic, chain.Shape)
		require.Equal(t, 4, chain.Chain.Chunks)
		require.Equal(t, 4, chain.Chain.MethodCalls)
		require.True(t, chain.Chain.Long)
		require.False(t, chain.Chain.Legacy)

		chunks := chain.Children()
		require.Len(t, chunks, 4)
		require.Nil(t, chunks[0].Wrap)
		require.NotNil(t, chunks[1].Wrap)
		require.True(t, chunks[1].Wrap.WrapFirstElement)
		require.Same(t, chunks[1].Wrap, chunks[2].Wrap)
		require.Same(t, chunks[1].Wrap, chunks[3].Wrap)
		require.Equal(t, IndentContinuationWithoutFirst, chunks[1].Indent.Type)
	})

	t.Run("first call wrapped", func(t *testing.T) {
		s := DefaultSettings()
		s.WrapFirstMethodInCallChain = true

		chain := findBlock(t, New(s).Build(parse(t, chainSource)), isChain)
		chunks := chain.Children()
		require.NotNil(t, chunks[0].Wrap)
		require.Same(t, chunks[0].Wrap, chunks[1].Wrap)
	})

	t.Run("builder methods", func(t *testing.T) {
		s := DefaultSettings()
		s.BuilderMethods = []string{"ba*"}

		chain := findBlock(t, New(s).Build(parse(t, chainSource)), isChain)
		require.Equal(t, 2, chain.Chain.Builders)
		require.Equal(t, 2, chain.Chain.MethodCalls)
		require.False(t, chain.Chain.Long)
	})

	t.Run("legacy", func(t *testing.T) {
		chain := findBlock(t, build(t, chainSource, WithChainStyle(ChainLegacy)), isChain)

		require.True(t, chain.Chain.Legacy)
		require.Equal(t, 4, chain.Chain.Chunks)
		require.Equal(t, 3, chain.Chain.MethodCalls)
		require.True(t, chain.Chain.Long)

		chunks := chain.Children()
		require.Equal(t, "foo()", parse(t, chainSource).Source[chunks[0].Range().Start:chunks[0].Range().End])
		require.Same(t, chunks[1].Wrap, chunks[3].Wrap)
	})
}

func TestBuilder_Ternary(t *testing.T) {
	s := DefaultSettings()
	s.TernaryOperationWrap = ChopDownIfLong
	s.TernaryOperationSignsOnNextLine = true

	root := New(s).Build(parse(t, "class A { int f() { return a ? b : c; } }"))
	cond := findBlock(t, root, func(b *Block) bool { return b.Kind() == syntax.KindConditionalExpression })

	children := cond.Children()
	require.Len(t, children, 3)
	require.NotNil(t, children[1].Wrap)
	require.True(t, children[1].Wrap.WrapFirstElement)
	require.Same(t, children[1].Wrap, children[2].Wrap)

	for _, group := range children[1:] {
		require.Equal(t, ShapeSynthetic, group.Shape)
		require.Equal(t, IndentContinuationWithoutFirst, group.Indent.Type)

		sign := group.Children()[0]
		require.Nil(t, sign.Wrap)
		require.False(t, sign.Alignment.IsSet())
	}
}

func TestBuilder_CaseSections(t *testing.T) {
	src := "class A {\n  void f(int x) {\n    switch (x) {\n      case 1:\n        foo();\n        break;\n      default:\n        bar();\n    }\n  }\n}\n"

	var sections []*Block

	build(t, src).Walk(func(b *Block) bool {
		if b.Shape == ShapeSynthetic && b.FirstNode().Kind == syntax.KindSwitchLabelStatement {
			sections = append(sections, b)
		}

		return true
	})

	require.Len(t, sections, 2)

	for _, section := range sections {
		require.True(t, section.IsIncomplete())
	}

	_, attrs := sections[0].InsertionAttributes(len(sections[0].Children()))
	require.Equal(t, IndentNone, attrs.Indent.Type, "a line after break leaves the section")

	_, attrs = sections[1].InsertionAttributes(len(sections[1].Children()))
	require.Equal(t, IndentNormal, attrs.Indent.Type)
}

func TestBlock_ChildAttributes(t *testing.T) {
	src := "class A {\n  void f() {\n  }\n}\n"

	t.Run("class members", func(t *testing.T) {
		class := findBlock(t, build(t, src), func(b *Block) bool { return b.Kind() == syntax.KindClass })
		require.Equal(t, IndentNormal, class.ChildAttributes(len(class.Children())-1).Indent.Type)

		s := DefaultSettings()
		s.DoNotIndentTopLevelClassMembers = true

		class = findBlock(t, New(s).Build(parse(t, src)), func(b *Block) bool { return b.Kind() == syntax.KindClass })
		require.Equal(t, IndentNone, class.ChildAttributes(len(class.Children())-1).Indent.Type)
	})

	t.Run("method body", func(t *testing.T) {
		body := findBlock(t, build(t, src), func(b *Block) bool { return b.Kind() == syntax.KindCodeBlock })
		require.Equal(t, IndentNormal, body.ChildAttributes(1).Indent.Type)
	})

	t.Run("file", func(t *testing.T) {
		root := build(t, src)
		require.Equal(t, IndentNone, root.ChildAttributes(0).Indent.Type)
	})
}

func TestBlock_InsertionAttributes(t *testing.T) {
	t.Run("continues incomplete blocks", func(t *testing.T) {
		root := build(t, "class A {\n  void f() {\n    foo();\n")
		require.True(t, root.IsIncomplete())

		parent, attrs := root.InsertionAttributes(len(root.Children()))
		require.Equal(t, syntax.KindCodeBlock, parent.Kind())
		require.Equal(t, IndentNormal, attrs.Indent.Type)
	})

	t.Run("complete blocks start a sibling", func(t *testing.T) {
		root := build(t, "class A {\n}\n")
		require.False(t, root.IsIncomplete())

		parent, attrs := root.InsertionAttributes(len(root.Children()))
		require.Same(t, root, parent)
		require.Equal(t, IndentNone, attrs.Indent.Type)
	})

	t.Run("unterminated statement", func(t *testing.T) {
		root := build(t, "class A {\n  void f() {\n    int x = 1\n")

		stmt := findBlock(t, root, func(b *Block) bool { return b.Kind() == syntax.KindDeclarationStatement })
		require.True(t, stmt.IsIncomplete())
	})
}

func TestBlock_Spacing(t *testing.T) {
	root := build(t, "class A { void f() { if (x) {} } }")

	stmt := findBlock(t, root, func(b *Block) bool { return b.Kind() == syntax.KindIfStatement })
	children := stmt.Children()
	require.GreaterOrEqual(t, len(children), 2)

	sp := stmt.Spacing(children[0], children[1])
	require.NotNil(t, sp)
	require.Equal(t, 1, sp.MinSpaces)

	require.Nil(t, children[0].Spacing(nil, nil))
}

func TestWriteDump(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteDump(&buf, build(t, chainSource)))

	out := buf.String()
	require.Contains(t, out, "BlockDump")
	require.Contains(t, out, "CLASS")
	require.Contains(t, out, "Synthetic")
	require.Contains(t, out, "MethodCalls")
}
