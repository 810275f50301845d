// Package format turns a Java syntax tree into a tree of layout blocks.
//
// Each Block carries the directives a layout engine needs to place its text: an Indent
// relative to the enclosing block, an optional Alignment shared with other blocks that
// must start in the same column, and an optional Wrap deciding when the block moves to
// a new line. The whitespace between two adjacent blocks is constrained by a Spacing,
// computed on demand by the SpacingResolver from the syntactic roles of the two blocks.
//
// Blocks are built lazily. Asking a block for its children builds them, so computing
// the indent of a single position only builds the blocks on the path to it:
//
//	file, _ := parser.ParseString(src)
//	root := format.New(format.DefaultSettings()).Build(file)
//
//	parent, attrs := root.InsertionAttributes(len(root.Children()))
//
// The package never performs I/O. Style options live in Settings, whose defaults follow
// IntelliJ IDEA.
package format
