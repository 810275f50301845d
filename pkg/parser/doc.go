// Package parser turns Java source text into a lossless syntax.File.
//
// Lexing is done with a participle lexer (github.com/alecthomas/participle/v2/lexer);
// the tree itself is built by a hand written recursive descent parser that keeps every
// token, whitespace and comments included, so the resulting tree reproduces the input
// byte for byte.
//
// Input the parser cannot make sense of does not fail the parse. It is wrapped in
// syntax.KindError nodes and parsing resumes at the next statement or member boundary,
// letting the formatter keep such regions verbatim.
//
// Basic usage:
//
//	file, err := parser.ParseString(`class A { void f() { return; } }`)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	fmt.Print(file.Root.DebugString())
//
// The lexer is exposed on its own through Tokenize, which the formatter uses to decide
// whether two adjacent tokens may be written without whitespace between them.
package parser
