package syntax

// Kind identifies the type of a node. Kinds below kindTokenEnd are leaves (tokens),
// the remaining kinds are composite elements.
type Kind int

const (
	KindNone Kind = iota

	// trivia
	KindWhitespace
	KindEndOfLineComment
	KindCStyleComment
	KindDocComment

	// literals and names
	KindIdentifier
	KindIntegerLiteral
	KindLongLiteral
	KindFloatLiteral
	KindDoubleLiteral
	KindCharLiteral
	KindStringLiteral
	KindTextBlockLiteral
	KindBadCharacter

	// keywords
	KindAbstractKeyword
	KindAssertKeyword
	KindBooleanKeyword
	KindBreakKeyword
	KindByteKeyword
	KindCaseKeyword
	KindCatchKeyword
	KindCharKeyword
	KindClassKeyword
	KindConstKeyword
	KindContinueKeyword
	KindDefaultKeyword
	KindDoKeyword
	KindDoubleKeyword
	KindElseKeyword
	KindEnumKeyword
	KindExtendsKeyword
	KindFinalKeyword
	KindFinallyKeyword
	KindFloatKeyword
	KindForKeyword
	KindGotoKeyword
	KindIfKeyword
	KindImplementsKeyword
	KindImportKeyword
	KindInstanceofKeyword
	KindIntKeyword
	KindInterfaceKeyword
	KindLongKeyword
	KindNativeKeyword
	KindNewKeyword
	KindPackageKeyword
	KindPrivateKeyword
	KindProtectedKeyword
	KindPublicKeyword
	KindReturnKeyword
	KindShortKeyword
	KindStaticKeyword
	KindStrictfpKeyword
	KindSuperKeyword
	KindSwitchKeyword
	KindSynchronizedKeyword
	KindThisKeyword
	KindThrowKeyword
	KindThrowsKeyword
	KindTransientKeyword
	KindTryKeyword
	KindVoidKeyword
	KindVolatileKeyword
	KindWhileKeyword
	KindTrueKeyword
	KindFalseKeyword
	KindNullKeyword

	// separators and operators
	KindLParen
	KindRParen
	KindLBrace
	KindRBrace
	KindLBracket
	KindRBracket
	KindSemicolon
	KindComma
	KindDot
	KindEllipsis
	KindAt
	KindDoubleColon
	KindArrow
	KindEq
	KindGt
	KindLt
	KindExcl
	KindTilde
	KindQuest
	KindColon
	KindEqEq
	KindLe
	KindGe
	KindNe
	KindAndAnd
	KindOrOr
	KindPlusPlus
	KindMinusMinus
	KindPlus
	KindMinus
	KindAsterisk
	KindDiv
	KindAnd
	KindOr
	KindXor
	KindPerc
	KindLtLt
	KindGtGt
	KindGtGtGt
	KindPlusEq
	KindMinusEq
	KindAsteriskEq
	KindDivEq
	KindAndEq
	KindOrEq
	KindXorEq
	KindPercEq
	KindLtLtEq
	KindGtGtEq
	KindGtGtGtEq

	kindTokenEnd

	// file level
	KindFile
	KindPackageStatement
	KindImportList
	KindImportStatement
	KindImportStaticStatement

	// declarations
	KindClass
	KindAnonymousClass
	KindEnumConstant
	KindEnumConstantInitializer
	KindModifierList
	KindAnnotation
	KindAnnotationParameterList
	KindNameValuePair
	KindAnnotationArrayInitializer
	KindExtendsList
	KindImplementsList
	KindThrowsList
	KindPermitsList
	KindTypeParameterList
	KindTypeParameter
	KindExtendsBoundList
	KindReferenceParameterList
	KindCodeReference
	KindType
	KindField
	KindMethod
	KindParameterList
	KindParameter
	KindRecordHeader
	KindRecordComponent
	KindClassInitializer
	KindLocalVariable
	KindResourceList
	KindResourceVariable

	// statements
	KindCodeBlock
	KindBlockStatement
	KindDeclarationStatement
	KindExpressionStatement
	KindExpressionListStatement
	KindEmptyStatement
	KindIfStatement
	KindForStatement
	KindForeachStatement
	KindWhileStatement
	KindDoWhileStatement
	KindSwitchStatement
	KindSwitchLabelStatement
	KindBreakStatement
	KindContinueStatement
	KindReturnStatement
	KindThrowStatement
	KindTryStatement
	KindCatchSection
	KindSynchronizedStatement
	KindLabeledStatement
	KindAssertStatement
	KindYieldStatement

	// expressions
	KindReferenceExpression
	KindMethodCallExpression
	KindExpressionList
	KindNewExpression
	KindArrayInitializerExpression
	KindArrayAccessExpression
	KindAssignmentExpression
	KindConditionalExpression
	KindBinaryExpression
	KindPrefixExpression
	KindPostfixExpression
	KindTypeCastExpression
	KindInstanceOfExpression
	KindParenthesizedExpression
	KindLiteralExpression
	KindThisExpression
	KindSuperExpression
	KindClassObjectAccessExpression
	KindLambdaExpression
	KindMethodReferenceExpression

	// KindError wraps source the parser could not make sense of.
	KindError

	kindEnd
)

var kindNames = [...]string{
	KindNone:                        "NONE",
	KindWhitespace:                  "WHITE_SPACE",
	KindEndOfLineComment:            "END_OF_LINE_COMMENT",
	KindCStyleComment:               "C_STYLE_COMMENT",
	KindDocComment:                  "DOC_COMMENT",
	KindIdentifier:                  "IDENTIFIER",
	KindIntegerLiteral:              "INTEGER_LITERAL",
	KindLongLiteral:                 "LONG_LITERAL",
	KindFloatLiteral:                "FLOAT_LITERAL",
	KindDoubleLiteral:               "DOUBLE_LITERAL",
	KindCharLiteral:                 "CHARACTER_LITERAL",
	KindStringLiteral:               "STRING_LITERAL",
	KindTextBlockLiteral:            "TEXT_BLOCK_LITERAL",
	KindBadCharacter:                "BAD_CHARACTER",
	KindAbstractKeyword:             "ABSTRACT_KEYWORD",
	KindAssertKeyword:               "ASSERT_KEYWORD",
	KindBooleanKeyword:              "BOOLEAN_KEYWORD",
	KindBreakKeyword:                "BREAK_KEYWORD",
	KindByteKeyword:                 "BYTE_KEYWORD",
	KindCaseKeyword:                 "CASE_KEYWORD",
	KindCatchKeyword:                "CATCH_KEYWORD",
	KindCharKeyword:                 "CHAR_KEYWORD",
	KindClassKeyword:                "CLASS_KEYWORD",
	KindConstKeyword:                "CONST_KEYWORD",
	KindContinueKeyword:             "CONTINUE_KEYWORD",
	KindDefaultKeyword:              "DEFAULT_KEYWORD",
	KindDoKeyword:                   "DO_KEYWORD",
	KindDoubleKeyword:               "DOUBLE_KEYWORD",
	KindElseKeyword:                 "ELSE_KEYWORD",
	KindEnumKeyword:                 "ENUM_KEYWORD",
	KindExtendsKeyword:              "EXTENDS_KEYWORD",
	KindFinalKeyword:                "FINAL_KEYWORD",
	KindFinallyKeyword:              "FINALLY_KEYWORD",
	KindFloatKeyword:                "FLOAT_KEYWORD",
	KindForKeyword:                  "FOR_KEYWORD",
	KindGotoKeyword:                 "GOTO_KEYWORD",
	KindIfKeyword:                   "IF_KEYWORD",
	KindImplementsKeyword:           "IMPLEMENTS_KEYWORD",
	KindImportKeyword:               "IMPORT_KEYWORD",
	KindInstanceofKeyword:           "INSTANCEOF_KEYWORD",
	KindIntKeyword:                  "INT_KEYWORD",
	KindInterfaceKeyword:            "INTERFACE_KEYWORD",
	KindLongKeyword:                 "LONG_KEYWORD",
	KindNativeKeyword:               "NATIVE_KEYWORD",
	KindNewKeyword:                  "NEW_KEYWORD",
	KindPackageKeyword:              "PACKAGE_KEYWORD",
	KindPrivateKeyword:              "PRIVATE_KEYWORD",
	KindProtectedKeyword:            "PROTECTED_KEYWORD",
	KindPublicKeyword:               "PUBLIC_KEYWORD",
	KindReturnKeyword:               "RETURN_KEYWORD",
	KindShortKeyword:                "SHORT_KEYWORD",
	KindStaticKeyword:               "STATIC_KEYWORD",
	KindStrictfpKeyword:             "STRICTFP_KEYWORD",
	KindSuperKeyword:                "SUPER_KEYWORD",
	KindSwitchKeyword:               "SWITCH_KEYWORD",
	KindSynchronizedKeyword:         "SYNCHRONIZED_KEYWORD",
	KindThisKeyword:                 "THIS_KEYWORD",
	KindThrowKeyword:                "THROW_KEYWORD",
	KindThrowsKeyword:               "THROWS_KEYWORD",
	KindTransientKeyword:            "TRANSIENT_KEYWORD",
	KindTryKeyword:                  "TRY_KEYWORD",
	KindVoidKeyword:                 "VOID_KEYWORD",
	KindVolatileKeyword:             "VOLATILE_KEYWORD",
	KindWhileKeyword:                "WHILE_KEYWORD",
	KindTrueKeyword:                 "TRUE_KEYWORD",
	KindFalseKeyword:                "FALSE_KEYWORD",
	KindNullKeyword:                 "NULL_KEYWORD",
	KindLParen:                      "LPARENTH",
	KindRParen:                      "RPARENTH",
	KindLBrace:                      "LBRACE",
	KindRBrace:                      "RBRACE",
	KindLBracket:                    "LBRACKET",
	KindRBracket:                    "RBRACKET",
	KindSemicolon:                   "SEMICOLON",
	KindComma:                       "COMMA",
	KindDot:                         "DOT",
	KindEllipsis:                    "ELLIPSIS",
	KindAt:                          "AT",
	KindDoubleColon:                 "DOUBLE_COLON",
	KindArrow:                       "ARROW",
	KindEq:                          "EQ",
	KindGt:                          "GT",
	KindLt:                          "LT",
	KindExcl:                        "EXCL",
	KindTilde:                       "TILDE",
	KindQuest:                       "QUEST",
	KindColon:                       "COLON",
	KindEqEq:                        "EQEQ",
	KindLe:                          "LE",
	KindGe:                          "GE",
	KindNe:                          "NE",
	KindAndAnd:                      "ANDAND",
	KindOrOr:                        "OROR",
	KindPlusPlus:                    "PLUSPLUS",
	KindMinusMinus:                  "MINUSMINUS",
	KindPlus:                        "PLUS",
	KindMinus:                       "MINUS",
	KindAsterisk:                    "ASTERISK",
	KindDiv:                         "DIV",
	KindAnd:                         "AND",
	KindOr:                          "OR",
	KindXor:                         "XOR",
	KindPerc:                        "PERC",
	KindLtLt:                        "LTLT",
	KindGtGt:                        "GTGT",
	KindGtGtGt:                      "GTGTGT",
	KindPlusEq:                      "PLUSEQ",
	KindMinusEq:                     "MINUSEQ",
	KindAsteriskEq:                  "ASTERISKEQ",
	KindDivEq:                       "DIVEQ",
	KindAndEq:                       "ANDEQ",
	KindOrEq:                        "OREQ",
	KindXorEq:                       "XOREQ",
	KindPercEq:                      "PERCEQ",
	KindLtLtEq:                      "LTLTEQ",
	KindGtGtEq:                      "GTGTEQ",
	KindGtGtGtEq:                    "GTGTGTEQ",
	kindTokenEnd:                    "TOKEN_END",
	KindFile:                        "FILE",
	KindPackageStatement:            "PACKAGE_STATEMENT",
	KindImportList:                  "IMPORT_LIST",
	KindImportStatement:             "IMPORT_STATEMENT",
	KindImportStaticStatement:       "IMPORT_STATIC_STATEMENT",
	KindClass:                       "CLASS",
	KindAnonymousClass:              "ANONYMOUS_CLASS",
	KindEnumConstant:                "ENUM_CONSTANT",
	KindEnumConstantInitializer:     "ENUM_CONSTANT_INITIALIZER",
	KindModifierList:                "MODIFIER_LIST",
	KindAnnotation:                  "ANNOTATION",
	KindAnnotationParameterList:     "ANNOTATION_PARAMETER_LIST",
	KindNameValuePair:               "NAME_VALUE_PAIR",
	KindAnnotationArrayInitializer:  "ANNOTATION_ARRAY_INITIALIZER",
	KindExtendsList:                 "EXTENDS_LIST",
	KindImplementsList:              "IMPLEMENTS_LIST",
	KindThrowsList:                  "THROWS_LIST",
	KindPermitsList:                 "PERMITS_LIST",
	KindTypeParameterList:           "TYPE_PARAMETER_LIST",
	KindTypeParameter:               "TYPE_PARAMETER",
	KindExtendsBoundList:            "EXTENDS_BOUND_LIST",
	KindReferenceParameterList:      "REFERENCE_PARAMETER_LIST",
	KindCodeReference:               "JAVA_CODE_REFERENCE",
	KindType:                        "TYPE",
	KindField:                       "FIELD",
	KindMethod:                      "METHOD",
	KindParameterList:               "PARAMETER_LIST",
	KindParameter:                   "PARAMETER",
	KindRecordHeader:                "RECORD_HEADER",
	KindRecordComponent:             "RECORD_COMPONENT",
	KindClassInitializer:            "CLASS_INITIALIZER",
	KindLocalVariable:               "LOCAL_VARIABLE",
	KindResourceList:                "RESOURCE_LIST",
	KindResourceVariable:            "RESOURCE_VARIABLE",
	KindCodeBlock:                   "CODE_BLOCK",
	KindBlockStatement:              "BLOCK_STATEMENT",
	KindDeclarationStatement:        "DECLARATION_STATEMENT",
	KindExpressionStatement:         "EXPRESSION_STATEMENT",
	KindExpressionListStatement:     "EXPRESSION_LIST_STATEMENT",
	KindEmptyStatement:              "EMPTY_STATEMENT",
	KindIfStatement:                 "IF_STATEMENT",
	KindForStatement:                "FOR_STATEMENT",
	KindForeachStatement:            "FOREACH_STATEMENT",
	KindWhileStatement:              "WHILE_STATEMENT",
	KindDoWhileStatement:            "DO_WHILE_STATEMENT",
	KindSwitchStatement:             "SWITCH_STATEMENT",
	KindSwitchLabelStatement:        "SWITCH_LABEL_STATEMENT",
	KindBreakStatement:              "BREAK_STATEMENT",
	KindContinueStatement:           "CONTINUE_STATEMENT",
	KindReturnStatement:             "RETURN_STATEMENT",
	KindThrowStatement:              "THROW_STATEMENT",
	KindTryStatement:                "TRY_STATEMENT",
	KindCatchSection:                "CATCH_SECTION",
	KindSynchronizedStatement:       "SYNCHRONIZED_STATEMENT",
	KindLabeledStatement:            "LABELED_STATEMENT",
	KindAssertStatement:             "ASSERT_STATEMENT",
	KindYieldStatement:              "YIELD_STATEMENT",
	KindReferenceExpression:         "REFERENCE_EXPRESSION",
	KindMethodCallExpression:        "METHOD_CALL_EXPRESSION",
	KindExpressionList:              "EXPRESSION_LIST",
	KindNewExpression:               "NEW_EXPRESSION",
	KindArrayInitializerExpression:  "ARRAY_INITIALIZER_EXPRESSION",
	KindArrayAccessExpression:       "ARRAY_ACCESS_EXPRESSION",
	KindAssignmentExpression:        "ASSIGNMENT_EXPRESSION",
	KindConditionalExpression:       "CONDITIONAL_EXPRESSION",
	KindBinaryExpression:            "BINARY_EXPRESSION",
	KindPrefixExpression:            "PREFIX_EXPRESSION",
	KindPostfixExpression:           "POSTFIX_EXPRESSION",
	KindTypeCastExpression:          "TYPE_CAST_EXPRESSION",
	KindInstanceOfExpression:        "INSTANCE_OF_EXPRESSION",
	KindParenthesizedExpression:     "PARENTH_EXPRESSION",
	KindLiteralExpression:           "LITERAL_EXPRESSION",
	KindThisExpression:              "THIS_EXPRESSION",
	KindSuperExpression:             "SUPER_EXPRESSION",
	KindClassObjectAccessExpression: "CLASS_OBJECT_ACCESS_EXPRESSION",
	KindLambdaExpression:            "LAMBDA_EXPRESSION",
	KindMethodReferenceExpression:   "METHOD_REF_EXPRESSION",
	KindError:                       "ERROR_ELEMENT",
	kindEnd:                         "END",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) || kindNames[k] == "" {
		return "UNKNOWN"
	}

	return kindNames[k]
}

// IsToken reports whether nodes of this kind are leaves.
func (k Kind) IsToken() bool {
	return k > KindNone && k < kindTokenEnd
}

// IsComment reports whether k is any of the three comment kinds.
func (k Kind) IsComment() bool {
	return k == KindEndOfLineComment || k == KindCStyleComment || k == KindDocComment
}

// IsTrivia reports whether k is whitespace or a comment.
func (k Kind) IsTrivia() bool {
	return k == KindWhitespace || k.IsComment()
}

// IsKeyword reports whether k is a reserved word, boolean or null literal included.
func (k Kind) IsKeyword() bool {
	return k >= KindAbstractKeyword && k <= KindNullKeyword
}

// IsLiteral reports whether k is a literal token.
func (k Kind) IsLiteral() bool {
	return (k >= KindIntegerLiteral && k <= KindTextBlockLiteral) ||
		k == KindTrueKeyword || k == KindFalseKeyword || k == KindNullKeyword
}

// IsPrimitiveType reports whether k is one of the primitive type keywords (void included).
func (k Kind) IsPrimitiveType() bool {
	switch k {
	case KindBooleanKeyword, KindByteKeyword, KindCharKeyword, KindShortKeyword, KindIntKeyword,
		KindLongKeyword, KindFloatKeyword, KindDoubleKeyword, KindVoidKeyword:
		return true
	}

	return false
}

// IsModifier reports whether k is a modifier keyword.
func (k Kind) IsModifier() bool {
	switch k {
	case KindPublicKeyword, KindProtectedKeyword, KindPrivateKeyword, KindStaticKeyword,
		KindAbstractKeyword, KindFinalKeyword, KindNativeKeyword, KindSynchronizedKeyword,
		KindTransientKeyword, KindVolatileKeyword, KindStrictfpKeyword, KindDefaultKeyword:
		return true
	}

	return false
}

// IsAssignmentOperator reports whether k is = or a compound assignment operator.
func (k Kind) IsAssignmentOperator() bool {
	return k == KindEq || (k >= KindPlusEq && k <= KindGtGtGtEq)
}

// IsStatement reports whether k is a statement element.
func (k Kind) IsStatement() bool {
	return k >= KindBlockStatement && k <= KindYieldStatement && k != KindCatchSection
}

// IsExpression reports whether k is an expression element.
func (k Kind) IsExpression() bool {
	return k >= KindReferenceExpression && k <= KindMethodReferenceExpression && k != KindExpressionList
}
