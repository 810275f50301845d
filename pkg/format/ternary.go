package format

import "github.com/pseudomuto/javafmt/pkg/syntax"

// processTernaryRange groups a '?' or ':' with the operand following it, so a sign moved
// to the next line carries its operand along. It returns the last node consumed.
func (c *buildContext) processTernaryRange(
	b *Block,
	result *[]*Block,
	sign *syntax.Node,
	defaultWrap *Wrap,
	childIndent Indent,
) *syntax.Node {
	wrap := c.arrangeChildWrap(b, sign, defaultWrap)
	al := ternaryAlignment(b, sign)

	// The group holds the sign's wrap and alignment; the sign itself holds neither.
	local := []*Block{c.createBlock(sign, NoneIndent(), nil, NullStrategy)}

	current := sign.NextSibling()
	for ; current != nil; current = current.NextSibling() {
		if !significant(current) {
			continue
		}

		if isTernarySign(current) {
			break
		}

		current = c.processChild(b, &local, current, SharedStrategy(ternaryAlignment(b, current)), defaultWrap, childIndent)
		if current == nil {
			break
		}
	}

	*result = append(*result, newSynthetic(c, local, al, c.resolveIndent(childIndent, sign), wrap))

	if current == nil {
		return nil
	}

	return current.PrevSibling()
}

// ternaryAlignment picks the alignment of a conditional's child: the signs share the
// second alignment, the operands the first.
func ternaryAlignment(b *Block, child *syntax.Node) Alignment {
	if child.Role == syntax.RoleQuest || child.Role == syntax.RoleColon {
		if b.reservedAlignment2.IsSet() {
			return b.reservedAlignment2
		}
	}

	return b.reservedAlignment
}
