package format

import (
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/pseudomuto/javafmt/pkg/parser"
	"github.com/pseudomuto/javafmt/pkg/syntax"
)

const stickCacheSize = 1024

type kindPair struct {
	left, right syntax.Kind
}

// stickCache remembers per pair of token kinds whether the two tokens survive being
// written without a gap. It is shared by every formatting run.
var stickCache = newStickCache(stickCacheSize)

func newStickCache(size int) *lru.Cache[kindPair, bool] {
	cache, err := lru.New[kindPair, bool](size)
	if err != nil {
		panic(err)
	}

	return cache
}

// canStickTogether reports whether left and right, written with nothing in between,
// still read back as the same tokens. "a" and "b" would read as "ab", "-" and "-" as "--".
func canStickTogether(left, right *syntax.Node) bool {
	key := kindPair{left: left.Kind, right: right.Kind}
	if ok, hit := stickCache.Get(key); hit {
		return ok
	}

	ok := retokenizesTo(left.Text(), right.Text())
	stickCache.Add(key, ok)

	return ok
}

// retokenizesTo compares the tokens of the joined text with those of both parts lexed on
// their own. Operators the parser fuses from several tokens, such as ">>", compare equal
// this way.
func retokenizesTo(left, right string) bool {
	joined := parser.Retokenize(left + right)
	if len(joined) == 0 {
		return false
	}

	parts := append(parser.Retokenize(left), parser.Retokenize(right)...)

	return slices.Equal(joined, parts)
}
