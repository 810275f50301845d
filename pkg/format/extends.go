package format

import "github.com/pseudomuto/javafmt/pkg/syntax"

// buildExtendsList builds an extends, implements, permits or throws clause. The keyword
// stands alone; the references following it are grouped so they indent as one unit.
func (c *buildContext) buildExtendsList(b *Block) []*Block {
	var (
		result []*Block
		run    []*Block
	)

	childAlignment := c.createChildAlignment(b)
	childWrap := c.createChildWrap(b)
	b.childAlignment = childAlignment

	flush := func() {
		if len(run) > 0 {
			result = append(result, newSynthetic(c, run, NoAlignment, NoneIndent(), nil))
			run = nil
		}
	}

	for child := b.Node.FirstChild(); child != nil; child = child.NextSibling() {
		if !significant(child) {
			continue
		}

		if child.Role == syntax.RoleExtendsKeyword {
			flush()
			c.processChild(b, &result, child, SharedStrategy(childAlignment), childWrap, NoneIndent())

			continue
		}

		c.processChild(b, &run, child, SharedStrategy(childAlignment), childWrap, NoneIndent())
	}

	flush()

	return result
}
