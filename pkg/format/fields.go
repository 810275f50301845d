package format

import (
	"strings"

	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// processDeclarators builds the block for a field or local variable. Declarations with
// several declarators (int a = 1, b;) are parsed as sibling nodes separated by commas;
// they are grouped into one synthetic block so the continuation indent of the later
// declarators is measured from the first one.
func (c *buildContext) processDeclarators(
	b *Block,
	result *[]*Block,
	child *syntax.Node,
	strategy AlignmentStrategy,
	defaultWrap *Wrap,
	childIndent Indent,
) *syntax.Node {
	last := lastDeclaratorInGroup(child)

	if last == child {
		*result = append(*result, c.createBlock(child, childIndent, c.arrangeChildWrap(b, child, defaultWrap), strategy))
		return child
	}

	var group []*Block

	for n := child; n != nil; n = n.NextSibling() {
		if significant(n) {
			wrap := c.arrangeChildWrap(b, n, defaultWrap)
			if n.Kind == syntax.KindComma {
				wrap = nil
			}

			group = append(group, c.createBlock(n, ContinuationWithoutFirstIndent(), wrap, strategy))
		}

		if n == last {
			break
		}
	}

	*result = append(*result, newSynthetic(c, group, NoAlignment, c.resolveIndent(childIndent, child), nil))

	return last
}

// lastDeclaratorInGroup returns the last declarator continuing the declaration started
// by n, n itself when it declares a single variable.
func lastDeclaratorInGroup(n *syntax.Node) *syntax.Node {
	if endsWithSemicolon(n) || n.ChildByRole(syntax.RoleType) == nil {
		return n
	}

	last := n

	for next := n.NextSibling(); next != nil; next = next.NextSibling() {
		switch {
		case next.IsWhitespace(), next.IsComment(), next.Kind == syntax.KindComma:
			continue
		case next.Kind == n.Kind && isCompoundPart(next):
			last = next

			if endsWithSemicolon(next) {
				return last
			}

			continue
		}

		break
	}

	return last
}

// isCompoundPart reports whether n is a later declarator of a multi variable declaration:
// it starts with its name and sits at most one line below its predecessor.
func isCompoundPart(n *syntax.Node) bool {
	first := n.FirstChild()
	if first == nil || first.Kind != syntax.KindIdentifier {
		return false
	}

	if prev := n.PrevSibling(); prev != nil && prev.IsWhitespace() {
		return strings.Count(prev.Text(), "\n") <= 1
	}

	return true
}

func endsWithSemicolon(n *syntax.Node) bool {
	last := lastSignificantChild(n)
	return last != nil && last.Kind == syntax.KindSemicolon
}
