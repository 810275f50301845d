package parser_test

import (
	"testing"

	. "github.com/pseudomuto/javafmt/pkg/parser"
	"github.com/pseudomuto/javafmt/pkg/syntax"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	src := "a >>= b; // done\n"

	tokens, err := Tokenize(src)
	require.NoError(t, err)

	var kinds []syntax.Kind
	end := 0

	for _, tok := range tokens {
		require.Equal(t, end, tok.Range.Start, "tokens must cover the source without gaps")
		end = tok.Range.End
		kinds = append(kinds, tok.Kind)
	}

	require.Equal(t, len(src), end)
	require.Equal(t, []syntax.Kind{
		syntax.KindIdentifier,
		syntax.KindWhitespace,
		syntax.KindGt,
		syntax.KindGt,
		syntax.KindEq,
		syntax.KindWhitespace,
		syntax.KindIdentifier,
		syntax.KindSemicolon,
		syntax.KindWhitespace,
		syntax.KindEndOfLineComment,
		syntax.KindWhitespace,
	}, kinds)
}

func TestRetokenize(t *testing.T) {
	tests := []struct {
		text string
		want []syntax.Kind
	}{
		{"++", []syntax.Kind{syntax.KindPlusPlus}},
		{"+ +", []syntax.Kind{syntax.KindPlus, syntax.KindPlus}},
		{"ab", []syntax.Kind{syntax.KindIdentifier}},
		{"a b", []syntax.Kind{syntax.KindIdentifier, syntax.KindIdentifier}},
		{"intx", []syntax.Kind{syntax.KindIdentifier}},
		{"int x", []syntax.Kind{syntax.KindIntKeyword, syntax.KindIdentifier}},
		{">>", []syntax.Kind{syntax.KindGt, syntax.KindGt}},
		{"<<", []syntax.Kind{syntax.KindLtLt}},
		{"/* c */", []syntax.Kind{syntax.KindCStyleComment}},
		{"/** doc */", []syntax.Kind{syntax.KindDocComment}},
		{"/**/", []syntax.Kind{syntax.KindCStyleComment}},
		{"// eol", []syntax.Kind{syntax.KindEndOfLineComment}},
		{"1L", []syntax.Kind{syntax.KindLongLiteral}},
		{"1.5f", []syntax.Kind{syntax.KindFloatLiteral}},
		{"1e3", []syntax.Kind{syntax.KindDoubleLiteral}},
		{".5", []syntax.Kind{syntax.KindDoubleLiteral}},
		{"0x1F", []syntax.Kind{syntax.KindIntegerLiteral}},
		{"0b1010", []syntax.Kind{syntax.KindIntegerLiteral}},
		{"1_000", []syntax.Kind{syntax.KindIntegerLiteral}},
		{"'a'", []syntax.Kind{syntax.KindCharLiteral}},
		{`"s\"t"`, []syntax.Kind{syntax.KindStringLiteral}},
		{"\"\"\"\n  text\n  \"\"\"", []syntax.Kind{syntax.KindTextBlockLiteral}},
		{"...", []syntax.Kind{syntax.KindEllipsis}},
		{"::", []syntax.Kind{syntax.KindDoubleColon}},
		{"->", []syntax.Kind{syntax.KindArrow}},
		{"#", []syntax.Kind{syntax.KindBadCharacter}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			require.Equal(t, tt.want, Retokenize(tt.text))
		})
	}
}
