package syntax

// Role names the syntactic slot a child fills inside its parent, for example the
// condition of an if statement or the right operand of a binary expression. Roles are
// assigned by the parser and never change.
type Role int

const (
	RoleNone Role = iota

	// punctuation
	RoleLParen
	RoleRParen
	RoleLBrace
	RoleRBrace
	RoleLBracket
	RoleRBracket
	RoleComma
	RoleSemicolon
	RoleDot
	RoleColon
	RoleQuest
	RoleArrow
	RoleDoubleColon
	RoleEllipsis
	RoleAt
	RoleLt
	RoleGt
	RoleOperationSign

	// declarations
	RoleDocComment
	RoleModifierList
	RoleModifier
	RoleAnnotation
	RoleAnnotationName
	RoleAnnotationParameterList
	RoleAnnotationValue
	RoleTypeKeyword
	RoleType
	RoleName
	RoleInitializerEq
	RoleInitializer
	RoleParameterList
	RoleParameter
	RoleMethodBody
	RoleThrowsList
	RoleTypeParameterList
	RoleTypeParameter
	RoleExtendsList
	RoleImplementsList
	RolePermitsList
	RoleRecordHeader
	RoleExtendsKeyword
	RoleReference
	RoleClassMember
	RoleEnumConstant
	RoleEnumConstantArguments
	RoleEnumConstantBody
	RoleDefaultValue

	// file
	RolePackageStatement
	RoleImportList
	RoleImport
	RoleKeyword

	// statements
	RoleStatement
	RoleBlock
	RoleIfKeyword
	RoleCondition
	RoleThenBranch
	RoleElseKeyword
	RoleElseBranch
	RoleLoopBody
	RoleWhileKeyword
	RoleDoKeyword
	RoleForKeyword
	RoleForInitialization
	RoleForSemicolon
	RoleForUpdate
	RoleForIterationParameter
	RoleForIteratedValue
	RoleSwitchKeyword
	RoleSwitchExpression
	RoleSwitchBody
	RoleCaseKeyword
	RoleCaseExpression
	RoleTryKeyword
	RoleTryBlock
	RoleResourceList
	RoleResource
	RoleCatchSection
	RoleCatchKeyword
	RoleCatchParameter
	RoleCatchBlock
	RoleFinallyKeyword
	RoleFinallyBlock
	RoleSynchronizedKeyword
	RoleLock
	RoleLabel
	RoleReturnValue
	RoleExpression

	// expressions
	RoleQualifier
	RoleReferenceName
	RoleReferenceParameterList
	RoleMethodExpression
	RoleArgumentList
	RoleArgument
	RoleLOperand
	RoleROperand
	RoleOperand
	RoleThenExpression
	RoleElseExpression
	RoleCastType
	RoleArray
	RoleIndex
	RoleNewKeyword
	RoleArrayDimension
	RoleArrayInitializer
	RoleAnonymousClass
	RoleLambdaParameters
	RoleLambdaBody
)

var roleNames = map[Role]string{
	RoleNone:                    "NONE",
	RoleLParen:                  "LPARENTH",
	RoleRParen:                  "RPARENTH",
	RoleLBrace:                  "LBRACE",
	RoleRBrace:                  "RBRACE",
	RoleLBracket:                "LBRACKET",
	RoleRBracket:                "RBRACKET",
	RoleComma:                   "COMMA",
	RoleSemicolon:               "SEMICOLON",
	RoleDot:                     "DOT",
	RoleColon:                   "COLON",
	RoleQuest:                   "QUEST",
	RoleArrow:                   "ARROW",
	RoleDoubleColon:             "DOUBLE_COLON",
	RoleEllipsis:                "ELLIPSIS",
	RoleAt:                      "AT",
	RoleLt:                      "LT",
	RoleGt:                      "GT",
	RoleOperationSign:           "OPERATION_SIGN",
	RoleDocComment:              "DOC_COMMENT",
	RoleModifierList:            "MODIFIER_LIST",
	RoleModifier:                "MODIFIER",
	RoleAnnotation:              "ANNOTATION",
	RoleAnnotationName:          "ANNOTATION_NAME",
	RoleAnnotationParameterList: "ANNOTATION_PARAMETER_LIST",
	RoleAnnotationValue:         "ANNOTATION_VALUE",
	RoleTypeKeyword:             "TYPE_KEYWORD",
	RoleType:                    "TYPE",
	RoleName:                    "NAME",
	RoleInitializerEq:           "INITIALIZER_EQ",
	RoleInitializer:             "INITIALIZER",
	RoleParameterList:           "PARAMETER_LIST",
	RoleParameter:               "PARAMETER",
	RoleMethodBody:              "METHOD_BODY",
	RoleThrowsList:              "THROWS_LIST",
	RoleTypeParameterList:       "TYPE_PARAMETER_LIST",
	RoleTypeParameter:           "TYPE_PARAMETER",
	RoleExtendsList:             "EXTENDS_LIST",
	RoleImplementsList:          "IMPLEMENTS_LIST",
	RolePermitsList:             "PERMITS_LIST",
	RoleRecordHeader:            "RECORD_HEADER",
	RoleExtendsKeyword:          "EXTENDS_KEYWORD",
	RoleReference:               "REFERENCE",
	RoleClassMember:             "CLASS_MEMBER",
	RoleEnumConstant:            "ENUM_CONSTANT",
	RoleEnumConstantArguments:   "ENUM_CONSTANT_ARGUMENTS",
	RoleEnumConstantBody:        "ENUM_CONSTANT_BODY",
	RoleDefaultValue:            "DEFAULT_VALUE",
	RolePackageStatement:        "PACKAGE_STATEMENT",
	RoleImportList:              "IMPORT_LIST",
	RoleImport:                  "IMPORT",
	RoleKeyword:                 "KEYWORD",
	RoleStatement:               "STATEMENT",
	RoleBlock:                   "BLOCK",
	RoleIfKeyword:               "IF_KEYWORD",
	RoleCondition:               "CONDITION",
	RoleThenBranch:              "THEN_BRANCH",
	RoleElseKeyword:             "ELSE_KEYWORD",
	RoleElseBranch:              "ELSE_BRANCH",
	RoleLoopBody:                "LOOP_BODY",
	RoleWhileKeyword:            "WHILE_KEYWORD",
	RoleDoKeyword:               "DO_KEYWORD",
	RoleForKeyword:              "FOR_KEYWORD",
	RoleForInitialization:       "FOR_INITIALIZATION",
	RoleForSemicolon:            "FOR_SEMICOLON",
	RoleForUpdate:               "FOR_UPDATE",
	RoleForIterationParameter:   "FOR_ITERATION_PARAMETER",
	RoleForIteratedValue:        "FOR_ITERATED_VALUE",
	RoleSwitchKeyword:           "SWITCH_KEYWORD",
	RoleSwitchExpression:        "SWITCH_EXPRESSION",
	RoleSwitchBody:              "SWITCH_BODY",
	RoleCaseKeyword:             "CASE_KEYWORD",
	RoleCaseExpression:          "CASE_EXPRESSION",
	RoleTryKeyword:              "TRY_KEYWORD",
	RoleTryBlock:                "TRY_BLOCK",
	RoleResourceList:            "RESOURCE_LIST",
	RoleResource:                "RESOURCE",
	RoleCatchSection:            "CATCH_SECTION",
	RoleCatchKeyword:            "CATCH_KEYWORD",
	RoleCatchParameter:          "CATCH_PARAMETER",
	RoleCatchBlock:              "CATCH_BLOCK",
	RoleFinallyKeyword:          "FINALLY_KEYWORD",
	RoleFinallyBlock:            "FINALLY_BLOCK",
	RoleSynchronizedKeyword:     "SYNCHRONIZED_KEYWORD",
	RoleLock:                    "LOCK",
	RoleLabel:                   "LABEL",
	RoleReturnValue:             "RETURN_VALUE",
	RoleExpression:              "EXPRESSION",
	RoleQualifier:               "QUALIFIER",
	RoleReferenceName:           "REFERENCE_NAME",
	RoleReferenceParameterList:  "REFERENCE_PARAMETER_LIST",
	RoleMethodExpression:        "METHOD_EXPRESSION",
	RoleArgumentList:            "ARGUMENT_LIST",
	RoleArgument:                "ARGUMENT",
	RoleLOperand:                "LOPERAND",
	RoleROperand:                "ROPERAND",
	RoleOperand:                 "OPERAND",
	RoleThenExpression:          "THEN_EXPRESSION",
	RoleElseExpression:          "ELSE_EXPRESSION",
	RoleCastType:                "CAST_TYPE",
	RoleArray:                   "ARRAY",
	RoleIndex:                   "INDEX",
	RoleNewKeyword:              "NEW_KEYWORD",
	RoleArrayDimension:          "ARRAY_DIMENSION",
	RoleArrayInitializer:        "ARRAY_INITIALIZER",
	RoleAnonymousClass:          "ANONYMOUS_CLASS",
	RoleLambdaParameters:        "LAMBDA_PARAMETERS",
	RoleLambdaBody:              "LAMBDA_BODY",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}

	return "UNKNOWN"
}
