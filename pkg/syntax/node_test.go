package syntax_test

import (
	"testing"

	"github.com/pseudomuto/javafmt/pkg/parser"
	. "github.com/pseudomuto/javafmt/pkg/syntax"
	"github.com/stretchr/testify/require"
)

func TestNodeNavigation(t *testing.T) {
	file, err := parser.ParseString("class A { int x; }")
	require.NoError(t, err)

	class := file.Root.ChildOfKind(KindClass)
	lbrace := class.ChildByRole(RoleLBrace)
	require.Equal(t, "{", lbrace.Text())

	field := class.ChildOfKind(KindField)
	require.Equal(t, KindWhitespace, field.PrevSibling().Kind)
	require.Equal(t, lbrace, field.PrevNonTrivia())
	require.Equal(t, "int", field.FirstLeaf().Text())
	require.Equal(t, ";", field.LastLeaf().Text())
	require.Equal(t, "{", field.PrevNonWhitespaceLeaf().Text())
	require.Equal(t, " ", field.LastLeaf().NextLeaf().Text())
	require.Equal(t, class, field.Ancestor(KindClass))
	require.Equal(t, "x", file.Root.LeafAt(14).Text())
}

func TestTextRange(t *testing.T) {
	r := NewRange(2, 5)

	require.Equal(t, 3, r.Len())
	require.True(t, r.Contains(2))
	require.False(t, r.Contains(5))
	require.True(t, r.Intersects(NewRange(5, 7)))
	require.False(t, r.Intersects(NewRange(6, 7)))
	require.True(t, r.ContainsRange(NewRange(3, 5)))
	require.Equal(t, NewRange(0, 5), r.Union(NewRange(0, 1)))
	require.Equal(t, "[2,5)", r.String())
}

func TestFileColumns(t *testing.T) {
	f := &File{Source: "a\n\tb"}

	require.Equal(t, 1, f.Line(3))
	require.Equal(t, 4, f.Column(3, 4))
	require.Equal(t, 6, VisualWidth("ab\tc", 4)+1)
}

func TestFileErrors(t *testing.T) {
	file, err := parser.ParseString("class A {\n  void f() { ) ; }\n}")
	require.NoError(t, err)
	require.Len(t, file.Errors, 1)

	perr := file.Errors[0]
	require.Equal(t, ") ;", perr.Text)
	require.Equal(t, 1, perr.Line)
	require.Equal(t, "2:14: unexpected \") ;\"", perr.Error())
	require.True(t, file.Root.LeafAt(perr.Range.Start).Parent().IsError())
}

func TestFileContainsLineBreak(t *testing.T) {
	f := &File{Source: "a b\nc"}

	require.False(t, f.ContainsLineBreak(NewRange(0, 3)))
	require.True(t, f.ContainsLineBreak(NewRange(2, 5)))
}
