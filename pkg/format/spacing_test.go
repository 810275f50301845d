package format_test

import (
	"reflect"
	"slices"
	"strings"
	"testing"

	. "github.com/pseudomuto/javafmt/pkg/format"
	"github.com/pseudomuto/javafmt/pkg/parser"
	"github.com/pseudomuto/javafmt/pkg/syntax"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *syntax.File {
	t.Helper()

	file, err := parser.ParseString(src)
	require.NoError(t, err)

	return file
}

// find returns the first node of the tree matching fn in document order.
func find(t *testing.T, root *syntax.Node, fn func(*syntax.Node) bool) *syntax.Node {
	t.Helper()

	var found *syntax.Node

	root.Walk(func(n *syntax.Node) bool {
		if found == nil && fn(n) {
			found = n
		}

		return found == nil
	})

	require.NotNil(t, found, "no matching node")

	return found
}

func ofKind(kind syntax.Kind) func(*syntax.Node) bool {
	return func(n *syntax.Node) bool { return n.Kind == kind }
}

func withText(kind syntax.Kind, text string) func(*syntax.Node) bool {
	return func(n *syntax.Node) bool { return n.Kind == kind && n.Text() == text }
}

func inParent(kind, parent syntax.Kind) func(*syntax.Node) bool {
	return func(n *syntax.Node) bool { return n.Kind == kind && n.Parent() != nil && n.Parent().Kind == parent }
}

func resolve(t *testing.T, src string, settings *Settings, fn func(*syntax.Node) bool) *Spacing {
	t.Helper()

	file := parse(t, src)

	return NewSpacingResolver(settings, nil).Resolve(find(t, file.Root, fn))
}

func TestSpacingResolver_Parentheses(t *testing.T) {
	src := "class A { void f() { if (x) { foo(1); } } }"

	t.Run("before if parentheses", func(t *testing.T) {
		sp := resolve(t, src, DefaultSettings(), inParent(syntax.KindLParen, syntax.KindIfStatement))
		require.Equal(t, 1, sp.MinSpaces)
		require.Equal(t, 1, sp.MaxSpaces)
		require.Zero(t, sp.MinLineFeeds)

		s := DefaultSettings()
		s.SpaceBeforeIfParentheses = false
		sp = resolve(t, src, s, inParent(syntax.KindLParen, syntax.KindIfStatement))
		require.Zero(t, sp.MinSpaces)
		require.Zero(t, sp.MaxSpaces)
	})

	t.Run("before call arguments", func(t *testing.T) {
		sp := resolve(t, src, DefaultSettings(), ofKind(syntax.KindExpressionList))
		require.Zero(t, sp.MaxSpaces)

		s := DefaultSettings()
		s.SpaceBeforeMethodCallParentheses = true
		sp = resolve(t, src, s, ofKind(syntax.KindExpressionList))
		require.Equal(t, 1, sp.MinSpaces)
	})

	t.Run("within if parentheses", func(t *testing.T) {
		s := DefaultSettings()
		s.SpaceWithinIfParentheses = true
		sp := resolve(t, src, s, inParent(syntax.KindRParen, syntax.KindIfStatement))
		require.Equal(t, 1, sp.MinSpaces)
	})
}

func TestSpacingResolver_Operators(t *testing.T) {
	t.Run("additive", func(t *testing.T) {
		src := "class A { int x = a+b; }"
		sp := resolve(t, src, DefaultSettings(), ofKind(syntax.KindPlus))
		require.Equal(t, 1, sp.MinSpaces)

		s := DefaultSettings()
		s.SpaceAroundAdditiveOperators = false
		sp = resolve(t, src, s, ofKind(syntax.KindPlus))
		require.Zero(t, sp.MinSpaces)
	})

	t.Run("tokens that would merge keep a space", func(t *testing.T) {
		s := DefaultSettings()
		s.SpaceAroundAdditiveOperators = false

		src := "class A { int x = a - -b; }"
		sp := resolve(t, src, s, ofKind(syntax.KindPrefixExpression))
		require.Equal(t, 1, sp.MinSpaces)
	})

	t.Run("lambda arrow", func(t *testing.T) {
		src := "class A { Runnable r = () -> foo(); }"
		sp := resolve(t, src, DefaultSettings(), ofKind(syntax.KindArrow))
		require.Equal(t, 1, sp.MinSpaces)

		s := DefaultSettings()
		s.SpaceAroundLambdaArrow = false
		sp = resolve(t, src, s, ofKind(syntax.KindArrow))
		require.Zero(t, sp.MinSpaces)
	})

	t.Run("method reference", func(t *testing.T) {
		sp := resolve(t, "class A { Function f = String::length; }", DefaultSettings(), ofKind(syntax.KindDoubleColon))
		require.Zero(t, sp.MaxSpaces)
	})
}

func TestSpacingResolver_LineComments(t *testing.T) {
	src := "class A {\n  int a; // note\n  int b;\n}"

	sp := resolve(t, src, DefaultSettings(), withText(syntax.KindField, "int b;"))
	require.Equal(t, 1, sp.MinLineFeeds)
}

func TestSpacingResolver_Comments(t *testing.T) {
	src := "class A {\n  int a;\n/* kept */\n  int b;\n}"

	sp := resolve(t, src, DefaultSettings(), ofKind(syntax.KindCStyleComment))
	require.True(t, sp.KeepFirstColumn)
	require.True(t, sp.KeepLineBreaks)
	require.Equal(t, MaxSpaces, sp.MaxSpaces)

	s := DefaultSettings()
	s.KeepFirstColumnComment = false
	sp = resolve(t, src, s, ofKind(syntax.KindCStyleComment))
	require.False(t, sp.KeepFirstColumn)
}

func TestSpacingResolver_BlankLines(t *testing.T) {
	t.Run("between methods", func(t *testing.T) {
		src := "class A {\n  void a() {}\n  void b() {}\n}"
		sp := resolve(t, src, DefaultSettings(), withText(syntax.KindMethod, "void b() {}"))
		require.Equal(t, 2, sp.MinLineFeeds)
		require.Equal(t, 2, sp.KeepBlankLines)
	})

	t.Run("between interface methods", func(t *testing.T) {
		src := "interface I {\n  void a();\n  void b();\n}"

		s := DefaultSettings()
		s.BlankLinesAroundMethodInInterface = 0
		sp := resolve(t, src, s, withText(syntax.KindMethod, "void b();"))
		require.Equal(t, 1, sp.MinLineFeeds)
	})

	t.Run("between fields", func(t *testing.T) {
		src := "class A {\n  int a;\n  int b;\n}"

		s := DefaultSettings()
		s.BlankLinesAroundField = 2
		sp := resolve(t, src, s, withText(syntax.KindField, "int b;"))
		require.Equal(t, 3, sp.MinLineFeeds)
	})

	t.Run("package and imports", func(t *testing.T) {
		src := "package a;\nimport b.C;\nclass D {}\n"

		s := DefaultSettings()
		s.BlankLinesBeforeImports = 2
		sp := resolve(t, src, s, ofKind(syntax.KindImportList))
		require.Equal(t, 3, sp.MinLineFeeds)
		require.False(t, sp.KeepLineBreaks)

		sp = resolve(t, src, s, ofKind(syntax.KindClass))
		require.Equal(t, 2, sp.MinLineFeeds)
	})
}

func TestSpacingResolver_Braces(t *testing.T) {
	src := "class A\n    extends B {\n}"

	t.Run("end of line", func(t *testing.T) {
		sp := resolve(t, src, DefaultSettings(), inParent(syntax.KindLBrace, syntax.KindClass))
		require.Equal(t, 1, sp.MinSpaces)
		require.Zero(t, sp.MinLineFeeds)
		require.Empty(t, sp.DependentRanges)
	})

	t.Run("next line if wrapped", func(t *testing.T) {
		s := DefaultSettings()
		s.ClassBraceStyle = NextLineIfWrapped

		sp := resolve(t, src, s, inParent(syntax.KindLBrace, syntax.KindClass))
		require.Equal(t, 1, sp.MinLineFeeds)
		require.Equal(t, []syntax.TextRange{syntax.NewRange(6, strings.Index(src, " {"))}, sp.DependentRanges)
	})

	t.Run("next line", func(t *testing.T) {
		s := DefaultSettings()
		s.ClassBraceStyle = NextLine

		sp := resolve(t, src, s, inParent(syntax.KindLBrace, syntax.KindClass))
		require.Equal(t, 1, sp.MinLineFeeds)
		require.Empty(t, sp.DependentRanges)
	})

	t.Run("else keyword", func(t *testing.T) {
		src := "class A { void f() { if (x) { a(); } else { b(); } } }"

		sp := resolve(t, src, DefaultSettings(), ofKind(syntax.KindElseKeyword))
		require.Equal(t, 1, sp.MinSpaces)
		require.Zero(t, sp.MinLineFeeds)
		require.False(t, sp.KeepLineBreaks)

		s := DefaultSettings()
		s.ElseOnNewLine = true
		sp = resolve(t, src, s, ofKind(syntax.KindElseKeyword))
		require.Equal(t, 1, sp.MinLineFeeds)
	})

	t.Run("simple method kept on one line", func(t *testing.T) {
		src := "class A { void f() { a(); } }"

		s := DefaultSettings()
		s.KeepSimpleMethodsInOneLine = true

		sp := resolve(t, src, s, inParent(syntax.KindExpressionStatement, syntax.KindCodeBlock))
		require.Len(t, sp.DependentRanges, 1)
		require.Equal(t, "{ a(); }", src[sp.DependentRanges[0].Start:sp.DependentRanges[0].End])
	})
}

func TestSpacingResolver_ErrorNodes(t *testing.T) {
	src := "x y"
	root := syntax.NewElement(syntax.KindFile, 0,
		syntax.NewElement(syntax.KindError, 0, syntax.NewToken(syntax.KindIdentifier, syntax.RoleNone, syntax.NewRange(0, 1))),
		syntax.NewToken(syntax.KindWhitespace, syntax.RoleNone, syntax.NewRange(1, 2)),
		syntax.NewToken(syntax.KindIdentifier, syntax.RoleNone, syntax.NewRange(2, 3)),
	)

	file, err := syntax.NewFile("broken.java", src, root)
	require.NoError(t, err)

	sp := NewSpacingResolver(DefaultSettings(), nil).Resolve(root.LastChild())
	require.True(t, sp.ReadOnly)
	require.Len(t, file.Errors, 1)
}

const stickySource = `package a.b;

import java.util.List;

@SuppressWarnings("all")
class A<T extends Comparable<T>> extends B implements C, D {
  private final List<List<String>> xs = new ArrayList<>();
  int[] arr = {1, 2, -3};

  A(int a, String... rest) throws IOException { super(a); }

  @Override
  public int f(int a, int b) {
    int c = a - -b + (a++) - --b;
    if (a > b && !(b >= a)) { return a << 2; } else if (a == b) return -a; else { c += ~b; }
    for (int i = 0; i < 10; i++) { c = c > 0 ? c : -c; }
    for (String s : rest) System.out.println(s);
    while (c-- > 0) ;
    do { c++; } while (c < 3);
    switch (c) { case 1: break; default: c = (int) 2L; }
    try (Reader r = open()) { foo(); } catch (IOException e) { bar(); } finally { baz(); }
    Runnable run = () -> { foo(); };
    Function<String, Integer> len = String::length;
    synchronized (this) { c = arr[0]; }
    assert c > 0 : "positive";
    label: for (;;) { break label; }
    return c >>> 1;
  }
}
`

// noSpaces turns off every space option.
func noSpaces() *Settings {
	s := DefaultSettings()
	v := reflect.ValueOf(s).Elem()

	for i := range v.NumField() {
		f := v.Type().Field(i)
		if strings.HasPrefix(f.Name, "Space") && f.Type.Kind() == reflect.Bool {
			v.Field(i).SetBool(false)
		}
	}

	return s
}

func TestSpacingResolver_NeverMergesTokens(t *testing.T) {
	file := parse(t, stickySource)
	resolver := NewSpacingResolver(noSpaces(), nil)
	never := func(syntax.TextRange) bool { return false }

	file.Root.Walk(func(n *syntax.Node) bool {
		if !n.IsLeaf() || n.IsWhitespace() {
			return true
		}

		prev := n.PrevNonWhitespaceLeaf()
		if prev == nil {
			return true
		}

		sp := resolver.Resolve(n)
		if sp == nil || sp.ReadOnly || sp.MinSpaces > 0 || sp.EffectiveMinLineFeeds(never) > 0 {
			return true
		}

		joined := parser.Retokenize(prev.Text() + n.Text())
		parts := append(parser.Retokenize(prev.Text()), parser.Retokenize(n.Text())...)
		require.True(t, slices.Equal(joined, parts), "%q and %q would merge", prev.Text(), n.Text())

		return true
	})
}
