package format

import (
	"strings"

	"github.com/bmatcuk/doublestar"
	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// longChainCalls is the number of plain method calls that makes a chain long.
const longChainCalls = 3

// ChainInfo describes the method call chain a synthetic block was built from.
type ChainInfo struct {
	Chunks      int
	MethodCalls int
	Builders    int
	Legacy      bool

	// Long chains have at least three method calls that are not builder methods.
	Long bool
}

// callChunk is a run of nodes of a flattened chain: a qualifier, or a '.' with the
// member it selects and its arguments.
type callChunk struct {
	nodes []*syntax.Node
}

// isMethodCall reports whether the chunk calls a method: a name directly followed by
// an argument list.
func (ch callChunk) isMethodCall() bool {
	for i := 1; i < len(ch.nodes); i++ {
		if ch.nodes[i].Kind == syntax.KindExpressionList && ch.nodes[i-1].Kind == syntax.KindIdentifier {
			return true
		}
	}

	return false
}

func (ch callChunk) isComment() bool {
	return len(ch.nodes) == 1 && ch.nodes[0].IsComment()
}

func (ch callChunk) name() string {
	for _, n := range ch.nodes {
		if n.Kind == syntax.KindIdentifier {
			return n.Text()
		}
	}

	return ""
}

func (ch callChunk) first() *syntax.Node { return ch.nodes[0] }

// buildChain builds the synthetic block of the method call chain rooted at call. The
// call's nested qualifiers are flattened and regrouped into one block per chunk.
func (c *buildContext) buildChain(call *syntax.Node, wrap *Wrap, al Alignment, indent Indent) *Block {
	nodes := flattenChain(call, nil)

	var (
		blocks []*Block
		info   *ChainInfo
	)

	if c.chains == ChainLegacy {
		blocks, info = c.legacyChainChunks(nodes)
	} else {
		blocks, info = c.chainChunks(nodes)
	}

	if info.Long {
		c.logger.Debug("long method call chain", "offset", call.Range.Start, "calls", info.MethodCalls)
	}

	b := newSynthetic(c, blocks, al, c.resolveIndent(indent, call), wrap)
	b.Chain = info

	return b
}

// flattenChain collects the significant nodes of call, descending into every nested
// call and reference expression.
func flattenChain(n *syntax.Node, nodes []*syntax.Node) []*syntax.Node {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if !significant(child) {
			continue
		}

		if child.Kind == syntax.KindMethodCallExpression || child.Kind == syntax.KindReferenceExpression {
			nodes = flattenChain(child, nodes)
			continue
		}

		nodes = append(nodes, child)
	}

	return nodes
}

// splitChain starts a new chunk before every '.' and, unless keepComments is set, every
// comment.
func splitChain(nodes []*syntax.Node, keepComments bool) []callChunk {
	var (
		chunks  []callChunk
		current []*syntax.Node
	)

	for _, n := range nodes {
		if n.Kind == syntax.KindDot || (n.IsComment() && !keepComments) {
			if len(current) > 0 {
				chunks = append(chunks, callChunk{nodes: current})
			}

			current = nil
		}

		current = append(current, n)
	}

	if len(current) > 0 {
		chunks = append(chunks, callChunk{nodes: current})
	}

	return chunks
}

func (c *buildContext) chainChunks(nodes []*syntax.Node) ([]*Block, *ChainInfo) {
	s := c.settings
	chunks := splitChain(nodes, false)
	info := &ChainInfo{Chunks: len(chunks)}

	builderIndent := -1
	if s.KeepBuilderMethodsIndents {
		builderIndent = c.minBuilderIndent(chunks)
	}

	var (
		blocks []*Block
		wrap   *Wrap
		al     Alignment
	)

	for i, chunk := range chunks {
		builder := c.isBuilderMethod(chunk)

		switch {
		case builder:
			info.Builders++
		case chunk.isMethodCall():
			info.MethodCalls++
		}

		if ((chunk.isMethodCall() && !builder) || chunk.isComment()) && c.canWrapChunk(chunks, i) {
			// canWrapChunk keeps the qualifier out, so every holder may break.
			if wrap == nil {
				wrap = c.newWrap(s.MethodCallChainWrap, true)
			}

			if !al.IsSet() {
				al = c.alignIf(s.AlignMultilineChainedMethods)
			}
		} else {
			wrap = nil
			al = NoAlignment
		}

		indent := ContinuationWithoutFirstIndent().WithRelative(s.UseRelativeIndents)
		if builder && builderIndent >= 0 && i > 0 {
			if own, ok := chunkIndent(chunk, s.TabSize); ok {
				indent = SpaceIndent(s.ContinuationIndentSize + own - builderIndent)
			}
		}

		blocks = append(blocks, c.chunkBlock(chunk, indent, wrap, al))
	}

	info.Long = info.MethodCalls >= longChainCalls

	return blocks, info
}

// canWrapChunk reports whether the chunk at i may hold the chain's wrap. The first
// chunk only may when the option asks for it and the next chunk is a call.
func (c *buildContext) canWrapChunk(chunks []callChunk, i int) bool {
	if i > 0 {
		return true
	}

	return c.settings.WrapFirstMethodInCallChain && len(chunks) > 1 && chunks[1].isMethodCall()
}

func (c *buildContext) isBuilderMethod(chunk callChunk) bool {
	name := chunk.name()
	if name == "" || !chunk.isMethodCall() {
		return false
	}

	for _, pattern := range c.settings.BuilderMethods {
		if ok, err := doublestar.Match(pattern, name); err == nil && ok {
			return true
		}
	}

	return false
}

// minBuilderIndent is the smallest source indent of a builder method starting a line,
// -1 when there is none.
func (c *buildContext) minBuilderIndent(chunks []callChunk) int {
	least := -1

	for i, chunk := range chunks {
		if i == 0 || !c.isBuilderMethod(chunk) {
			continue
		}

		if own, ok := chunkIndent(chunk, c.settings.TabSize); ok && (least < 0 || own < least) {
			least = own
		}
	}

	return least
}

// chunkIndent is the source column of a chunk that starts its line.
func chunkIndent(chunk callChunk, tabSize int) (int, bool) {
	first := chunk.first()
	if !leadsLine(first) {
		return 0, false
	}

	return first.File().Column(first.Range.Start, tabSize), true
}

// leadsLine reports whether n is the first token on its source line, at any column.
func leadsLine(n *syntax.Node) bool {
	prev := n.PrevLeaf()
	for prev != nil && prev.Range.IsEmpty() {
		prev = prev.PrevLeaf()
	}

	if prev == nil {
		return true
	}

	return prev.IsWhitespace() && strings.Contains(prev.Text(), "\n")
}

func (c *buildContext) chunkBlock(chunk callChunk, indent Indent, wrap *Wrap, al Alignment) *Block {
	blocks := make([]*Block, 0, len(chunk.nodes))
	for _, n := range chunk.nodes {
		blocks = append(blocks, c.createBlock(n, NoneIndent(), nil, NullStrategy))
	}

	return newSynthetic(c, blocks, al, indent, wrap)
}
