// Package syntax defines the immutable Java syntax tree consumed by the formatter.
//
// The tree mirrors the source exactly: every byte of the input belongs to exactly one
// leaf, whitespace and comments included. Composite nodes never begin or end with
// whitespace or comments; such trivia is attached to the enclosing node instead, so
// the text range of a composite is always delimited by real tokens (a leading doc
// comment being the one exception, see Node.DocComment).
//
// Nodes expose their kind, their role in the parent (what syntactic slot they fill,
// such as the loop body of a for statement), their byte range and parent/child/sibling
// navigation. The tree is read-only once built by the parser.
//
// Example:
//
//	file, _ := parser.ParseString("class A { int x; }")
//	class := file.Root.ChildOfKind(syntax.KindClass)
//	lbrace := class.ChildByRole(syntax.RoleLBrace)
//	fmt.Println(lbrace.Text()) // {
package syntax
