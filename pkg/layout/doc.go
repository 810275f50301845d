// Package layout renders a block tree back into source text.
//
// Format walks the leaves of the tree built by package format and decides, for every gap
// between two leaves, how many line feeds and spaces it holds. The decision follows the
// Spacing of the gap, the Wrap of the blocks starting after it and, for line starts, the
// Indent and Alignment of those blocks:
//
//	file, _ := parser.ParseString(src)
//	out, err := layout.Format(file, format.DefaultSettings(), layout.Options{})
//
// Alignment anchors are only known once every holder has been placed, so the document is
// laid out repeatedly until the anchors stop moving.
//
// Indent answers the editor question of where a line typed at some offset should start,
// without formatting anything.
package layout
