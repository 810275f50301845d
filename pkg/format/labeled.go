package format

import "github.com/pseudomuto/javafmt/pkg/syntax"

// buildLabeled builds a labeled statement. The label is indented by the label indent,
// the statement always starts on a line of its own.
func (c *buildContext) buildLabeled(b *Block) []*Block {
	var (
		result []*Block
		wrap   *Wrap
	)

	indent := LabelIndent()
	if c.settings.LabelIndentAbsolute {
		indent = AbsoluteLabelIndent()
	}

	for child := b.Node.FirstChild(); child != nil; child = child.NextSibling() {
		if !significant(child) {
			continue
		}

		result = append(result, c.createBlock(child, indent, wrap, NullStrategy))

		if child.Kind == syntax.KindColon {
			indent = NoneIndent()
			wrap = c.newWrap(c.settings.LabeledStatementWrap, true)
		}
	}

	return result
}
