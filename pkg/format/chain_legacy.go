package format

import "github.com/pseudomuto/javafmt/pkg/syntax"

// legacyChainChunks builds chunks the way older releases did. The qualifier absorbs
// every selector up to and including the first call, then the chain splits before
// each '.'. All calls after the first chunk share a single wrap and alignment.
func (c *buildContext) legacyChainChunks(nodes []*syntax.Node) ([]*Block, *ChainInfo) {
	s := c.settings
	info := &ChainInfo{Legacy: true}

	var (
		blocks []*Block
		rest   = nodes
		chunk  callChunk
	)

	chunk, rest = readToNextDot(rest, true)
	blocks = append(blocks, c.chunkBlock(chunk, NoneIndent(), nil, NoAlignment))
	info.Chunks++

	wrap := c.newWrap(s.MethodCallChainWrap, true)
	al := c.alignIf(s.AlignMultilineChainedMethods)
	indent := ContinuationWithoutFirstIndent().WithRelative(s.UseRelativeIndents)

	for len(rest) > 0 {
		chunk, rest = readToNextDot(rest, false)
		info.Chunks++

		if isLegacyMethodCall(chunk) {
			info.MethodCalls++
			blocks = append(blocks, c.chunkBlock(chunk, indent, wrap, al))

			continue
		}

		blocks = append(blocks, c.chunkBlock(chunk, indent, nil, NoAlignment))
	}

	info.Long = info.MethodCalls >= longChainCalls

	return blocks, info
}

// readToNextDot takes the nodes up to the next '.'. For the first chunk it keeps going
// until a call point, an argument list, has been consumed.
func readToNextDot(nodes []*syntax.Node, first bool) (callChunk, []*syntax.Node) {
	callPointDefined := !first

	for i, n := range nodes {
		if i > 0 && n.Kind == syntax.KindDot && callPointDefined {
			return callChunk{nodes: nodes[:i]}, nodes[i:]
		}

		if n.Kind == syntax.KindExpressionList {
			callPointDefined = true
		}
	}

	return callChunk{nodes: nodes}, nil
}

// isLegacyMethodCall recognizes exactly '.', name, arguments.
func isLegacyMethodCall(chunk callChunk) bool {
	n := chunk.nodes

	return len(n) == 3 && n[0].Kind == syntax.KindDot && n[2].Kind == syntax.KindExpressionList
}
