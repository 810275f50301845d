package parser_test

import (
	"strings"
	"testing"

	. "github.com/pseudomuto/javafmt/pkg/parser"
	"github.com/pseudomuto/javafmt/pkg/syntax"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	file, err := ParseString("class A { int x = 1; }")
	require.NoError(t, err)

	want := `FILE
  CLASS:CLASS_MEMBER
    CLASS_KEYWORD:TYPE_KEYWORD "class"
    IDENTIFIER:NAME "A"
    LBRACE:LBRACE "{"
    FIELD:CLASS_MEMBER
      TYPE:TYPE
        INT_KEYWORD:TYPE_KEYWORD "int"
      IDENTIFIER:NAME "x"
      EQ:INITIALIZER_EQ "="
      LITERAL_EXPRESSION:INITIALIZER
        INTEGER_LITERAL "1"
      SEMICOLON:SEMICOLON ";"
    RBRACE:RBRACE "}"
`
	require.Equal(t, want, file.Root.DebugString())
}

func TestParse(t *testing.T) {
	file, err := Parse(strings.NewReader("package a.b;\nimport java.util.*;\nclass A {}\n"))
	require.NoError(t, err)

	root := file.Root
	require.NotNil(t, root.ChildOfKind(syntax.KindPackageStatement))
	require.NotNil(t, root.ChildOfKind(syntax.KindImportList))
	require.NotNil(t, root.ChildOfKind(syntax.KindClass))
	require.Equal(t, "import java.util.*;", root.ChildOfKind(syntax.KindImportList).Text())
}

func TestParseMultipleDeclarators(t *testing.T) {
	file, err := ParseString("class A { int a, b = 2; }")
	require.NoError(t, err)

	class := file.Root.ChildOfKind(syntax.KindClass)
	fields := class.ChildrenOfKind(syntax.KindField)
	require.Len(t, fields, 2)
	require.Equal(t, "int a", fields[0].Text())
	require.Equal(t, "b = 2;", fields[1].Text())
	require.Equal(t, syntax.KindComma, fields[0].NextSibling().Kind)
	require.Equal(t, syntax.KindIdentifier, fields[1].FirstChild().Kind)
}

func TestParseDocCommentBelongsToDeclaration(t *testing.T) {
	file, err := ParseString("class A {\n  // plain\n  /** doc */\n  void f() {}\n}")
	require.NoError(t, err)

	class := file.Root.ChildOfKind(syntax.KindClass)
	method := class.ChildOfKind(syntax.KindMethod)
	require.Equal(t, syntax.KindDocComment, method.FirstChild().Kind)
	require.NotNil(t, class.ChildOfKind(syntax.KindEndOfLineComment))
}

func TestParseShiftVersusGenerics(t *testing.T) {
	file, err := ParseString("class A { List<List<String>> l; void f() { x = a >> 2; y >>>= 1; z = a >= b; } }")
	require.NoError(t, err)

	var ops []string

	file.Root.Walk(func(n *syntax.Node) bool {
		if n.Role == syntax.RoleOperationSign {
			ops = append(ops, n.Kind.String())
		}

		return true
	})

	require.Equal(t, []string{"EQ", "GTGT", "GTGTGTEQ", "EQ", "GE"}, ops)

	field := file.Root.ChildOfKind(syntax.KindClass).ChildOfKind(syntax.KindField)
	require.Equal(t, "List<List<String>>", field.ChildOfKind(syntax.KindType).Text())
}

func TestParseStatements(t *testing.T) {
	src := `class A {
  void f(int[] xs) {
    for (int i = 0; i < xs.length; i++) { g(xs[i]); }
    for (int x : xs) h(x);
    while (true) break;
    do { i--; } while (i > 0);
    i = -i;
    if (a) b(); else if (c) d(); else { e(); }
    switch (k) { case 1: case 2: foo(); break; default: bar(); }
    try (Reader r = open()) { r.read(); } catch (IOException | RuntimeException e) { } finally { close(); }
    synchronized (this) { notify(); }
    label: for (;;) { continue label; }
    assert x > 0 : "positive";
    Runnable r = () -> run();
    Function<String, Integer> f = String::length;
    Object o = (Object) new int[] {1, 2};
    String s = cond ? "a" : "b";
    throw new IllegalStateException();
  }
}`

	file, err := ParseString(src)
	require.NoError(t, err)

	kinds := map[syntax.Kind]bool{}
	file.Root.Walk(func(n *syntax.Node) bool {
		kinds[n.Kind] = true
		return true
	})

	for _, k := range []syntax.Kind{
		syntax.KindForStatement, syntax.KindForeachStatement, syntax.KindWhileStatement,
		syntax.KindDoWhileStatement, syntax.KindIfStatement, syntax.KindSwitchStatement,
		syntax.KindSwitchLabelStatement, syntax.KindTryStatement, syntax.KindResourceList,
		syntax.KindCatchSection, syntax.KindSynchronizedStatement, syntax.KindLabeledStatement,
		syntax.KindAssertStatement, syntax.KindLambdaExpression, syntax.KindMethodReferenceExpression,
		syntax.KindTypeCastExpression, syntax.KindArrayInitializerExpression, syntax.KindConditionalExpression,
		syntax.KindThrowStatement, syntax.KindNewExpression, syntax.KindArrayAccessExpression,
		syntax.KindPostfixExpression, syntax.KindPrefixExpression, syntax.KindBreakStatement,
		syntax.KindContinueStatement, syntax.KindDeclarationStatement,
	} {
		require.True(t, kinds[k], "expected a %s node", k)
	}

	require.False(t, kinds[syntax.KindError])
}

func TestParseAnonymousClass(t *testing.T) {
	file, err := ParseString("class A { Object o = new Runnable() { public void run() {} }; }")
	require.NoError(t, err)

	var anon *syntax.Node

	file.Root.Walk(func(n *syntax.Node) bool {
		if n.Kind == syntax.KindAnonymousClass {
			anon = n
		}

		return true
	})

	require.NotNil(t, anon)
	require.Equal(t, syntax.KindCodeReference, anon.FirstChild().Kind)
	require.NotNil(t, anon.ChildOfKind(syntax.KindExpressionList))
	require.NotNil(t, anon.ChildOfKind(syntax.KindMethod))
}

func TestParseMethodCallChain(t *testing.T) {
	file, err := ParseString("class A { void f() { a.b().c(1); } }")
	require.NoError(t, err)

	var stmt *syntax.Node

	file.Root.Walk(func(n *syntax.Node) bool {
		if n.Kind == syntax.KindExpressionStatement {
			stmt = n
		}

		return true
	})

	call := stmt.FirstChild()
	require.Equal(t, syntax.KindMethodCallExpression, call.Kind)

	ref := call.ChildByRole(syntax.RoleMethodExpression)
	require.Equal(t, "a.b().c", ref.Text())
	require.Equal(t, syntax.KindMethodCallExpression, ref.ChildByRole(syntax.RoleQualifier).Kind)
	require.Equal(t, "(1)", call.ChildByRole(syntax.RoleArgumentList).Text())
}

func TestParseRecoversFromErrors(t *testing.T) {
	file, err := ParseString("class A { void f() { ) ; g(); } }")
	require.NoError(t, err)

	var errs []string

	file.Root.Walk(func(n *syntax.Node) bool {
		if n.Kind == syntax.KindError {
			errs = append(errs, n.Text())
		}

		return true
	})

	require.Equal(t, []string{") ;"}, errs)
}

func TestParseIsLossless(t *testing.T) {
	sources := []string{
		"",
		"   \n",
		"// only a comment\n",
		"class A {}",
		"@Deprecated\npublic final class A<T extends Comparable<T>> extends B implements C, D {\n}\n",
		"enum E { A(1) { void f() {} }, B; E(int x) {} }",
		"@interface Ann { int value() default 1; String[] names() default {\"a\"}; }",
		"record P(int x, int y) { P { assert x > 0; } }",
		"class A { void f() { int[][] m = {{1}, {2}}; String t = \"\"\"\n  hi\n  \"\"\"; } }",
		"class A { void f() { ) ) ; } } } garbage",
		"class A { @SuppressWarnings({\"a\", \"b\"}) <T> T g(T... xs) throws E { return xs[0]; } }",
		"class A { void f() { a = b ? c : d ? e : f; x = (y) -> { return y; }; } }",
	}

	for _, src := range sources {
		file, err := ParseString(src)
		require.NoError(t, err, src)

		var sb strings.Builder

		file.Root.Walk(func(n *syntax.Node) bool {
			if n.IsLeaf() {
				sb.WriteString(n.Text())
			}

			return true
		})

		require.Equal(t, src, sb.String())
	}
}
