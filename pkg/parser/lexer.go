package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/javafmt/pkg/syntax"
)

var (
	// javaLexer splits Java source into raw tokens. Closing angle brackets are always
	// emitted one at a time; the parser fuses them into shift and comparison operators
	// where an expression needs them.
	javaLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n\f]+`},
		{Name: "DocComment", Pattern: `/\*\*(?:[^*]|\*+[^*/])*\*+/`},
		{Name: "CStyleComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "UnclosedComment", Pattern: `/\*[\s\S]*`},
		{Name: "EOLComment", Pattern: `//[^\r\n]*`},
		{Name: "TextBlock", Pattern: `"""(?:[^\\]|\\[\s\S])*?"""`},
		{Name: "String", Pattern: `"(?:[^"\\\r\n]|\\.)*"`},
		{Name: "Char", Pattern: `'(?:[^'\\\r\n]|\\.)*'`},
		{Name: "HexNumber", Pattern: `0[xX][0-9a-fA-F_]*(?:\.[0-9a-fA-F_]*)?(?:[pP][+-]?[0-9_]+)?[lLfFdD]?`},
		{Name: "BinNumber", Pattern: `0[bB][01_]+[lL]?`},
		{Name: "Float", Pattern: `[0-9][0-9_]*\.[0-9_]*(?:[eE][+-]?[0-9_]+)?[fFdD]?|\.[0-9][0-9_]*(?:[eE][+-]?[0-9_]+)?[fFdD]?|[0-9][0-9_]*[eE][+-]?[0-9_]+[fFdD]?|[0-9][0-9_]*[fFdD]`},
		{Name: "Integer", Pattern: `[0-9][0-9_]*[lL]?`},
		{Name: "Ident", Pattern: `[\p{L}_$][\p{L}\p{N}_$]*`},
		{Name: "Operator", Pattern: `\.\.\.|::|->|<<=|==|!=|<=|&&|\|\||\+\+|--|\+=|-=|\*=|/=|&=|\|=|\^=|%=|<<|[(){}\[\];,.@=><!~?:+\-*/&|^%]`},
		{Name: "Bad", Pattern: `[\s\S]`},
	})

	tokenTypes = javaLexer.Symbols()

	keywords = map[string]syntax.Kind{
		"abstract":     syntax.KindAbstractKeyword,
		"assert":       syntax.KindAssertKeyword,
		"boolean":      syntax.KindBooleanKeyword,
		"break":        syntax.KindBreakKeyword,
		"byte":         syntax.KindByteKeyword,
		"case":         syntax.KindCaseKeyword,
		"catch":        syntax.KindCatchKeyword,
		"char":         syntax.KindCharKeyword,
		"class":        syntax.KindClassKeyword,
		"const":        syntax.KindConstKeyword,
		"continue":     syntax.KindContinueKeyword,
		"default":      syntax.KindDefaultKeyword,
		"do":           syntax.KindDoKeyword,
		"double":       syntax.KindDoubleKeyword,
		"else":         syntax.KindElseKeyword,
		"enum":         syntax.KindEnumKeyword,
		"extends":      syntax.KindExtendsKeyword,
		"final":        syntax.KindFinalKeyword,
		"finally":      syntax.KindFinallyKeyword,
		"float":        syntax.KindFloatKeyword,
		"for":          syntax.KindForKeyword,
		"goto":         syntax.KindGotoKeyword,
		"if":           syntax.KindIfKeyword,
		"implements":   syntax.KindImplementsKeyword,
		"import":       syntax.KindImportKeyword,
		"instanceof":   syntax.KindInstanceofKeyword,
		"int":          syntax.KindIntKeyword,
		"interface":    syntax.KindInterfaceKeyword,
		"long":         syntax.KindLongKeyword,
		"native":       syntax.KindNativeKeyword,
		"new":          syntax.KindNewKeyword,
		"package":      syntax.KindPackageKeyword,
		"private":      syntax.KindPrivateKeyword,
		"protected":    syntax.KindProtectedKeyword,
		"public":       syntax.KindPublicKeyword,
		"return":       syntax.KindReturnKeyword,
		"short":        syntax.KindShortKeyword,
		"static":       syntax.KindStaticKeyword,
		"strictfp":     syntax.KindStrictfpKeyword,
		"super":        syntax.KindSuperKeyword,
		"switch":       syntax.KindSwitchKeyword,
		"synchronized": syntax.KindSynchronizedKeyword,
		"this":         syntax.KindThisKeyword,
		"throw":        syntax.KindThrowKeyword,
		"throws":       syntax.KindThrowsKeyword,
		"transient":    syntax.KindTransientKeyword,
		"try":          syntax.KindTryKeyword,
		"void":         syntax.KindVoidKeyword,
		"volatile":     syntax.KindVolatileKeyword,
		"while":        syntax.KindWhileKeyword,
		"true":         syntax.KindTrueKeyword,
		"false":        syntax.KindFalseKeyword,
		"null":         syntax.KindNullKeyword,
	}

	operators = map[string]syntax.Kind{
		"(":   syntax.KindLParen,
		")":   syntax.KindRParen,
		"{":   syntax.KindLBrace,
		"}":   syntax.KindRBrace,
		"[":   syntax.KindLBracket,
		"]":   syntax.KindRBracket,
		";":   syntax.KindSemicolon,
		",":   syntax.KindComma,
		".":   syntax.KindDot,
		"...": syntax.KindEllipsis,
		"@":   syntax.KindAt,
		"::":  syntax.KindDoubleColon,
		"->":  syntax.KindArrow,
		"=":   syntax.KindEq,
		">":   syntax.KindGt,
		"<":   syntax.KindLt,
		"!":   syntax.KindExcl,
		"~":   syntax.KindTilde,
		"?":   syntax.KindQuest,
		":":   syntax.KindColon,
		"==":  syntax.KindEqEq,
		"<=":  syntax.KindLe,
		"!=":  syntax.KindNe,
		"&&":  syntax.KindAndAnd,
		"||":  syntax.KindOrOr,
		"++":  syntax.KindPlusPlus,
		"--":  syntax.KindMinusMinus,
		"+":   syntax.KindPlus,
		"-":   syntax.KindMinus,
		"*":   syntax.KindAsterisk,
		"/":   syntax.KindDiv,
		"&":   syntax.KindAnd,
		"|":   syntax.KindOr,
		"^":   syntax.KindXor,
		"%":   syntax.KindPerc,
		"<<":  syntax.KindLtLt,
		"+=":  syntax.KindPlusEq,
		"-=":  syntax.KindMinusEq,
		"*=":  syntax.KindAsteriskEq,
		"/=":  syntax.KindDivEq,
		"&=":  syntax.KindAndEq,
		"|=":  syntax.KindOrEq,
		"^=":  syntax.KindXorEq,
		"%=":  syntax.KindPercEq,
		"<<=": syntax.KindLtLtEq,
	}
)

// Token is a raw lexeme: its kind and the byte range it covers.
type Token struct {
	Kind  syntax.Kind
	Range syntax.TextRange
}

// Tokenize splits src into tokens, whitespace and comments included. The tokens cover
// src without gaps. Closing angle brackets are never merged, so ">>" yields two tokens.
func Tokenize(src string) ([]Token, error) {
	lex, err := javaLexer.Lex("", strings.NewReader(src))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create lexer")
	}

	var tokens []Token

	for {
		tok, err := lex.Next()
		if err != nil {
			return nil, errors.Wrap(err, "failed to tokenize")
		}

		if tok.EOF() {
			break
		}

		start := tok.Pos.Offset
		tokens = append(tokens, Token{
			Kind:  classify(tok),
			Range: syntax.NewRange(start, start+len(tok.Value)),
		})
	}

	return tokens, nil
}

// Retokenize lexes text on its own and returns the kinds of the non whitespace tokens
// it consists of. It is the basis of the check whether two tokens written next to each
// other would still be read back as the same two tokens.
func Retokenize(text string) []syntax.Kind {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil
	}

	kinds := make([]syntax.Kind, 0, len(tokens))
	for _, t := range tokens {
		if t.Kind != syntax.KindWhitespace {
			kinds = append(kinds, t.Kind)
		}
	}

	return kinds
}

func classify(tok lexer.Token) syntax.Kind {
	switch tok.Type {
	case tokenTypes["Whitespace"]:
		return syntax.KindWhitespace
	case tokenTypes["DocComment"]:
		return syntax.KindDocComment
	case tokenTypes["CStyleComment"], tokenTypes["UnclosedComment"]:
		return syntax.KindCStyleComment
	case tokenTypes["EOLComment"]:
		return syntax.KindEndOfLineComment
	case tokenTypes["TextBlock"]:
		return syntax.KindTextBlockLiteral
	case tokenTypes["String"]:
		return syntax.KindStringLiteral
	case tokenTypes["Char"]:
		return syntax.KindCharLiteral
	case tokenTypes["HexNumber"], tokenTypes["BinNumber"], tokenTypes["Float"], tokenTypes["Integer"]:
		return classifyNumber(tok.Value, tok.Type == tokenTypes["HexNumber"])
	case tokenTypes["Ident"]:
		if kw, ok := keywords[tok.Value]; ok {
			return kw
		}

		return syntax.KindIdentifier
	case tokenTypes["Operator"]:
		if op, ok := operators[tok.Value]; ok {
			return op
		}
	}

	return syntax.KindBadCharacter
}

func classifyNumber(value string, hex bool) syntax.Kind {
	last := value[len(value)-1]

	switch {
	case last == 'l' || last == 'L':
		return syntax.KindLongLiteral
	case hex && !strings.ContainsAny(value, ".pP"):
		return syntax.KindIntegerLiteral
	case last == 'f' || last == 'F':
		return syntax.KindFloatLiteral
	case last == 'd' || last == 'D' || strings.ContainsAny(value, ".eEpP"):
		return syntax.KindDoubleLiteral
	}

	return syntax.KindIntegerLiteral
}
