package format

import (
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
)

// WrapSetting is the user facing wrapping option of a construct.
type WrapSetting int

const (
	DoNotWrap WrapSetting = iota
	WrapAsNeeded
	WrapAlwaysSetting
	ChopDownIfLong
)

var wrapSettingNames = []string{"do_not_wrap", "wrap_as_needed", "wrap_always", "chop_down_if_long"}

func (w WrapSetting) String() string {
	if w < 0 || int(w) >= len(wrapSettingNames) {
		return "unknown"
	}

	return wrapSettingNames[w]
}

// MarshalText implements encoding.TextMarshaler.
func (w WrapSetting) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText accepts the snake case name in any case, e.g. "chop_down_if_long" or
// "CHOP_DOWN_IF_LONG".
func (w *WrapSetting) UnmarshalText(text []byte) error {
	idx, err := lookupName(wrapSettingNames, string(text))
	if err != nil {
		return errors.Wrap(err, "invalid wrap setting")
	}

	*w = WrapSetting(idx)

	return nil
}

// BraceStyle places an opening brace relative to the construct owning it.
type BraceStyle int

const (
	EndOfLine BraceStyle = iota
	NextLine
	NextLineShifted
	NextLineShifted2
	NextLineIfWrapped
)

var braceStyleNames = []string{"end_of_line", "next_line", "next_line_shifted", "next_line_shifted2", "next_line_if_wrapped"}

func (b BraceStyle) String() string {
	if b < 0 || int(b) >= len(braceStyleNames) {
		return "unknown"
	}

	return braceStyleNames[b]
}

// MarshalText implements encoding.TextMarshaler.
func (b BraceStyle) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *BraceStyle) UnmarshalText(text []byte) error {
	idx, err := lookupName(braceStyleNames, string(text))
	if err != nil {
		return errors.Wrap(err, "invalid brace style")
	}

	*b = BraceStyle(idx)

	return nil
}

func lookupName(names []string, text string) (int, error) {
	want := strcase.ToSnake(strings.TrimSpace(text))
	for i, name := range names {
		if name == want {
			return i, nil
		}
	}

	return 0, errors.Errorf("%q is not one of %s", text, strings.Join(names, ", "))
}

// Settings is the flat bag of style options consulted by the block builder and the
// spacing resolver. Field names follow the IntelliJ option names, the yaml and toml
// keys are their snake case forms.
type Settings struct {
	// Indentation
	IndentSize                      int  `yaml:"indent_size" toml:"indent_size"`
	ContinuationIndentSize          int  `yaml:"continuation_indent_size" toml:"continuation_indent_size"`
	TabSize                         int  `yaml:"tab_size" toml:"tab_size"`
	UseTabCharacter                 bool `yaml:"use_tab_character" toml:"use_tab_character"`
	UseRelativeIndents              bool `yaml:"use_relative_indents" toml:"use_relative_indents"`
	LabelIndentSize                 int  `yaml:"label_indent_size" toml:"label_indent_size"`
	LabelIndentAbsolute             bool `yaml:"label_indent_absolute" toml:"label_indent_absolute"`
	RightMargin                     int  `yaml:"right_margin" toml:"right_margin"`
	WrapLongLines                   bool `yaml:"wrap_long_lines" toml:"wrap_long_lines"`
	DoNotIndentTopLevelClassMembers bool `yaml:"do_not_indent_top_level_class_members" toml:"do_not_indent_top_level_class_members"`
	IndentCaseFromSwitch            bool `yaml:"indent_case_from_switch" toml:"indent_case_from_switch"`

	// Keep when reformatting
	KeepLineBreaks                   bool `yaml:"keep_line_breaks" toml:"keep_line_breaks"`
	KeepFirstColumnComment           bool `yaml:"keep_first_column_comment" toml:"keep_first_column_comment"`
	KeepControlStatementInOneLine    bool `yaml:"keep_control_statement_in_one_line" toml:"keep_control_statement_in_one_line"`
	KeepBlankLinesInDeclarations     int  `yaml:"keep_blank_lines_in_declarations" toml:"keep_blank_lines_in_declarations"`
	KeepBlankLinesInCode             int  `yaml:"keep_blank_lines_in_code" toml:"keep_blank_lines_in_code"`
	KeepBlankLinesBeforeRBrace       int  `yaml:"keep_blank_lines_before_rbrace" toml:"keep_blank_lines_before_rbrace"`
	KeepSimpleBlocksInOneLine        bool `yaml:"keep_simple_blocks_in_one_line" toml:"keep_simple_blocks_in_one_line"`
	KeepSimpleMethodsInOneLine       bool `yaml:"keep_simple_methods_in_one_line" toml:"keep_simple_methods_in_one_line"`
	KeepSimpleClassesInOneLine       bool `yaml:"keep_simple_classes_in_one_line" toml:"keep_simple_classes_in_one_line"`
	KeepSimpleLambdasInOneLine       bool `yaml:"keep_simple_lambdas_in_one_line" toml:"keep_simple_lambdas_in_one_line"`
	KeepMultipleExpressionsInOneLine bool `yaml:"keep_multiple_expressions_in_one_line" toml:"keep_multiple_expressions_in_one_line"`
	KeepBuilderMethodsIndents        bool `yaml:"keep_builder_methods_indents" toml:"keep_builder_methods_indents"`

	// Blank lines
	BlankLinesBeforePackage             int `yaml:"blank_lines_before_package" toml:"blank_lines_before_package"`
	BlankLinesAfterPackage              int `yaml:"blank_lines_after_package" toml:"blank_lines_after_package"`
	BlankLinesBeforeImports             int `yaml:"blank_lines_before_imports" toml:"blank_lines_before_imports"`
	BlankLinesAfterImports              int `yaml:"blank_lines_after_imports" toml:"blank_lines_after_imports"`
	BlankLinesAroundClass               int `yaml:"blank_lines_around_class" toml:"blank_lines_around_class"`
	BlankLinesAroundField               int `yaml:"blank_lines_around_field" toml:"blank_lines_around_field"`
	BlankLinesAroundMethod              int `yaml:"blank_lines_around_method" toml:"blank_lines_around_method"`
	BlankLinesAroundFieldInInterface    int `yaml:"blank_lines_around_field_in_interface" toml:"blank_lines_around_field_in_interface"`
	BlankLinesAroundMethodInInterface   int `yaml:"blank_lines_around_method_in_interface" toml:"blank_lines_around_method_in_interface"`
	BlankLinesBeforeMethodBody          int `yaml:"blank_lines_before_method_body" toml:"blank_lines_before_method_body"`
	BlankLinesAfterClassHeader          int `yaml:"blank_lines_after_class_header" toml:"blank_lines_after_class_header"`
	BlankLinesAfterAnonymousClassHeader int `yaml:"blank_lines_after_anonymous_class_header" toml:"blank_lines_after_anonymous_class_header"`
	BlankLinesBeforeClassEnd            int `yaml:"blank_lines_before_class_end" toml:"blank_lines_before_class_end"`

	// Braces
	BraceStyle       BraceStyle `yaml:"brace_style" toml:"brace_style"`
	ClassBraceStyle  BraceStyle `yaml:"class_brace_style" toml:"class_brace_style"`
	MethodBraceStyle BraceStyle `yaml:"method_brace_style" toml:"method_brace_style"`
	LambdaBraceStyle BraceStyle `yaml:"lambda_brace_style" toml:"lambda_brace_style"`

	// Placement of keywords and statements
	ElseOnNewLine          bool `yaml:"else_on_new_line" toml:"else_on_new_line"`
	WhileOnNewLine         bool `yaml:"while_on_new_line" toml:"while_on_new_line"`
	CatchOnNewLine         bool `yaml:"catch_on_new_line" toml:"catch_on_new_line"`
	FinallyOnNewLine       bool `yaml:"finally_on_new_line" toml:"finally_on_new_line"`
	SpecialElseIfTreatment bool `yaml:"special_else_if_treatment" toml:"special_else_if_treatment"`
	CaseStatementOnNewLine bool `yaml:"case_statement_on_new_line" toml:"case_statement_on_new_line"`

	// Alignment
	AlignMultilineParameters                 bool `yaml:"align_multiline_parameters" toml:"align_multiline_parameters"`
	AlignMultilineParametersInCalls          bool `yaml:"align_multiline_parameters_in_calls" toml:"align_multiline_parameters_in_calls"`
	AlignMultilineResources                  bool `yaml:"align_multiline_resources" toml:"align_multiline_resources"`
	AlignMultilineFor                        bool `yaml:"align_multiline_for" toml:"align_multiline_for"`
	AlignMultilineBinaryOperation            bool `yaml:"align_multiline_binary_operation" toml:"align_multiline_binary_operation"`
	AlignMultilineAssignment                 bool `yaml:"align_multiline_assignment" toml:"align_multiline_assignment"`
	AlignMultilineTernaryOperation           bool `yaml:"align_multiline_ternary_operation" toml:"align_multiline_ternary_operation"`
	AlignMultilineThrowsList                 bool `yaml:"align_multiline_throws_list" toml:"align_multiline_throws_list"`
	AlignThrowsKeyword                       bool `yaml:"align_throws_keyword" toml:"align_throws_keyword"`
	AlignMultilineExtendsList                bool `yaml:"align_multiline_extends_list" toml:"align_multiline_extends_list"`
	AlignMultilineMethodBrackets             bool `yaml:"align_multiline_method_brackets" toml:"align_multiline_method_brackets"`
	AlignMultilineParenthesizedExpression    bool `yaml:"align_multiline_parenthesized_expression" toml:"align_multiline_parenthesized_expression"`
	AlignMultilineArrayInitializerExpression bool `yaml:"align_multiline_array_initializer_expression" toml:"align_multiline_array_initializer_expression"`
	AlignMultilineChainedMethods             bool `yaml:"align_multiline_chained_methods" toml:"align_multiline_chained_methods"`
	AlignGroupFieldDeclarations              bool `yaml:"align_group_field_declarations" toml:"align_group_field_declarations"`
	AlignConsecutiveVariableDeclarations     bool `yaml:"align_consecutive_variable_declarations" toml:"align_consecutive_variable_declarations"`
	AlignConsecutiveAssignments              bool `yaml:"align_consecutive_assignments" toml:"align_consecutive_assignments"`
	AlignSubsequentSimpleMethods             bool `yaml:"align_subsequent_simple_methods" toml:"align_subsequent_simple_methods"`

	// Wrapping
	CallParametersWrap               WrapSetting `yaml:"call_parameters_wrap" toml:"call_parameters_wrap"`
	PreferParametersWrap             bool        `yaml:"prefer_parameters_wrap" toml:"prefer_parameters_wrap"`
	CallParametersLParenOnNextLine   bool        `yaml:"call_parameters_lparen_on_next_line" toml:"call_parameters_lparen_on_next_line"`
	CallParametersRParenOnNextLine   bool        `yaml:"call_parameters_rparen_on_next_line" toml:"call_parameters_rparen_on_next_line"`
	MethodParametersWrap             WrapSetting `yaml:"method_parameters_wrap" toml:"method_parameters_wrap"`
	MethodParametersLParenOnNextLine bool        `yaml:"method_parameters_lparen_on_next_line" toml:"method_parameters_lparen_on_next_line"`
	MethodParametersRParenOnNextLine bool        `yaml:"method_parameters_rparen_on_next_line" toml:"method_parameters_rparen_on_next_line"`
	ResourceListWrap                 WrapSetting `yaml:"resource_list_wrap" toml:"resource_list_wrap"`
	ResourceListLParenOnNextLine     bool        `yaml:"resource_list_lparen_on_next_line" toml:"resource_list_lparen_on_next_line"`
	ResourceListRParenOnNextLine     bool        `yaml:"resource_list_rparen_on_next_line" toml:"resource_list_rparen_on_next_line"`
	ExtendsListWrap                  WrapSetting `yaml:"extends_list_wrap" toml:"extends_list_wrap"`
	ExtendsKeywordWrap               WrapSetting `yaml:"extends_keyword_wrap" toml:"extends_keyword_wrap"`
	ThrowsListWrap                   WrapSetting `yaml:"throws_list_wrap" toml:"throws_list_wrap"`
	ThrowsKeywordWrap                WrapSetting `yaml:"throws_keyword_wrap" toml:"throws_keyword_wrap"`
	MethodCallChainWrap              WrapSetting `yaml:"method_call_chain_wrap" toml:"method_call_chain_wrap"`
	WrapFirstMethodInCallChain       bool        `yaml:"wrap_first_method_in_call_chain" toml:"wrap_first_method_in_call_chain"`
	BuilderMethods                   []string    `yaml:"builder_methods,omitempty" toml:"builder_methods,omitempty"`
	ParenthesesExpressionLParenWrap  bool        `yaml:"parentheses_expression_lparen_wrap" toml:"parentheses_expression_lparen_wrap"`
	ParenthesesExpressionRParenWrap  bool        `yaml:"parentheses_expression_rparen_wrap" toml:"parentheses_expression_rparen_wrap"`
	BinaryOperationWrap              WrapSetting `yaml:"binary_operation_wrap" toml:"binary_operation_wrap"`
	BinaryOperationSignOnNextLine    bool        `yaml:"binary_operation_sign_on_next_line" toml:"binary_operation_sign_on_next_line"`
	TernaryOperationWrap             WrapSetting `yaml:"ternary_operation_wrap" toml:"ternary_operation_wrap"`
	TernaryOperationSignsOnNextLine  bool        `yaml:"ternary_operation_signs_on_next_line" toml:"ternary_operation_signs_on_next_line"`
	ModifierListWrap                 bool        `yaml:"modifier_list_wrap" toml:"modifier_list_wrap"`
	ForStatementWrap                 WrapSetting `yaml:"for_statement_wrap" toml:"for_statement_wrap"`
	ForStatementLParenOnNextLine     bool        `yaml:"for_statement_lparen_on_next_line" toml:"for_statement_lparen_on_next_line"`
	ForStatementRParenOnNextLine     bool        `yaml:"for_statement_rparen_on_next_line" toml:"for_statement_rparen_on_next_line"`
	ArrayInitializerWrap             WrapSetting `yaml:"array_initializer_wrap" toml:"array_initializer_wrap"`
	ArrayInitializerLBraceOnNextLine bool        `yaml:"array_initializer_lbrace_on_next_line" toml:"array_initializer_lbrace_on_next_line"`
	ArrayInitializerRBraceOnNextLine bool        `yaml:"array_initializer_rbrace_on_next_line" toml:"array_initializer_rbrace_on_next_line"`
	AssignmentWrap                   WrapSetting `yaml:"assignment_wrap" toml:"assignment_wrap"`
	PlaceAssignmentSignOnNextLine    bool        `yaml:"place_assignment_sign_on_next_line" toml:"place_assignment_sign_on_next_line"`
	LabeledStatementWrap             WrapSetting `yaml:"labeled_statement_wrap" toml:"labeled_statement_wrap"`
	AssertStatementWrap              WrapSetting `yaml:"assert_statement_wrap" toml:"assert_statement_wrap"`
	AssertStatementColonOnNextLine   bool        `yaml:"assert_statement_colon_on_next_line" toml:"assert_statement_colon_on_next_line"`
	EnumConstantsWrap                WrapSetting `yaml:"enum_constants_wrap" toml:"enum_constants_wrap"`
	ClassAnnotationWrap              WrapSetting `yaml:"class_annotation_wrap" toml:"class_annotation_wrap"`
	MethodAnnotationWrap             WrapSetting `yaml:"method_annotation_wrap" toml:"method_annotation_wrap"`
	FieldAnnotationWrap              WrapSetting `yaml:"field_annotation_wrap" toml:"field_annotation_wrap"`
	ParameterAnnotationWrap          WrapSetting `yaml:"parameter_annotation_wrap" toml:"parameter_annotation_wrap"`
	VariableAnnotationWrap           WrapSetting `yaml:"variable_annotation_wrap" toml:"variable_annotation_wrap"`

	// Spaces around operators
	SpaceAroundAssignmentOperators     bool `yaml:"space_around_assignment_operators" toml:"space_around_assignment_operators"`
	SpaceAroundLogicalOperators        bool `yaml:"space_around_logical_operators" toml:"space_around_logical_operators"`
	SpaceAroundEqualityOperators       bool `yaml:"space_around_equality_operators" toml:"space_around_equality_operators"`
	SpaceAroundRelationalOperators     bool `yaml:"space_around_relational_operators" toml:"space_around_relational_operators"`
	SpaceAroundBitwiseOperators        bool `yaml:"space_around_bitwise_operators" toml:"space_around_bitwise_operators"`
	SpaceAroundAdditiveOperators       bool `yaml:"space_around_additive_operators" toml:"space_around_additive_operators"`
	SpaceAroundMultiplicativeOperators bool `yaml:"space_around_multiplicative_operators" toml:"space_around_multiplicative_operators"`
	SpaceAroundShiftOperators          bool `yaml:"space_around_shift_operators" toml:"space_around_shift_operators"`
	SpaceAroundUnaryOperator           bool `yaml:"space_around_unary_operator" toml:"space_around_unary_operator"`
	SpaceAroundLambdaArrow             bool `yaml:"space_around_lambda_arrow" toml:"space_around_lambda_arrow"`
	SpaceAroundMethodRefDblColon       bool `yaml:"space_around_method_ref_dbl_colon" toml:"space_around_method_ref_dbl_colon"`

	// Other spaces
	SpaceAfterComma                   bool `yaml:"space_after_comma" toml:"space_after_comma"`
	SpaceAfterCommaInTypeArguments    bool `yaml:"space_after_comma_in_type_arguments" toml:"space_after_comma_in_type_arguments"`
	SpaceBeforeComma                  bool `yaml:"space_before_comma" toml:"space_before_comma"`
	SpaceAfterSemicolon               bool `yaml:"space_after_semicolon" toml:"space_after_semicolon"`
	SpaceBeforeSemicolon              bool `yaml:"space_before_semicolon" toml:"space_before_semicolon"`
	SpaceAfterTypeCast                bool `yaml:"space_after_type_cast" toml:"space_after_type_cast"`
	SpaceBeforeQuest                  bool `yaml:"space_before_quest" toml:"space_before_quest"`
	SpaceAfterQuest                   bool `yaml:"space_after_quest" toml:"space_after_quest"`
	SpaceBeforeColon                  bool `yaml:"space_before_colon" toml:"space_before_colon"`
	SpaceAfterColon                   bool `yaml:"space_after_colon" toml:"space_after_colon"`
	SpaceBeforeTypeParameterList      bool `yaml:"space_before_type_parameter_list" toml:"space_before_type_parameter_list"`
	SpaceBeforeAnotationParameterList bool `yaml:"space_before_anotation_parameter_list" toml:"space_before_anotation_parameter_list"`

	// Spaces before parentheses
	SpaceBeforeMethodCallParentheses   bool `yaml:"space_before_method_call_parentheses" toml:"space_before_method_call_parentheses"`
	SpaceBeforeMethodParentheses       bool `yaml:"space_before_method_parentheses" toml:"space_before_method_parentheses"`
	SpaceBeforeIfParentheses           bool `yaml:"space_before_if_parentheses" toml:"space_before_if_parentheses"`
	SpaceBeforeWhileParentheses        bool `yaml:"space_before_while_parentheses" toml:"space_before_while_parentheses"`
	SpaceBeforeForParentheses          bool `yaml:"space_before_for_parentheses" toml:"space_before_for_parentheses"`
	SpaceBeforeTryParentheses          bool `yaml:"space_before_try_parentheses" toml:"space_before_try_parentheses"`
	SpaceBeforeCatchParentheses        bool `yaml:"space_before_catch_parentheses" toml:"space_before_catch_parentheses"`
	SpaceBeforeSwitchParentheses       bool `yaml:"space_before_switch_parentheses" toml:"space_before_switch_parentheses"`
	SpaceBeforeSynchronizedParentheses bool `yaml:"space_before_synchronized_parentheses" toml:"space_before_synchronized_parentheses"`

	// Spaces before left braces
	SpaceBeforeClassLBrace                      bool `yaml:"space_before_class_lbrace" toml:"space_before_class_lbrace"`
	SpaceBeforeMethodLBrace                     bool `yaml:"space_before_method_lbrace" toml:"space_before_method_lbrace"`
	SpaceBeforeIfLBrace                         bool `yaml:"space_before_if_lbrace" toml:"space_before_if_lbrace"`
	SpaceBeforeElseLBrace                       bool `yaml:"space_before_else_lbrace" toml:"space_before_else_lbrace"`
	SpaceBeforeWhileLBrace                      bool `yaml:"space_before_while_lbrace" toml:"space_before_while_lbrace"`
	SpaceBeforeForLBrace                        bool `yaml:"space_before_for_lbrace" toml:"space_before_for_lbrace"`
	SpaceBeforeDoLBrace                         bool `yaml:"space_before_do_lbrace" toml:"space_before_do_lbrace"`
	SpaceBeforeSwitchLBrace                     bool `yaml:"space_before_switch_lbrace" toml:"space_before_switch_lbrace"`
	SpaceBeforeTryLBrace                        bool `yaml:"space_before_try_lbrace" toml:"space_before_try_lbrace"`
	SpaceBeforeCatchLBrace                      bool `yaml:"space_before_catch_lbrace" toml:"space_before_catch_lbrace"`
	SpaceBeforeFinallyLBrace                    bool `yaml:"space_before_finally_lbrace" toml:"space_before_finally_lbrace"`
	SpaceBeforeSynchronizedLBrace               bool `yaml:"space_before_synchronized_lbrace" toml:"space_before_synchronized_lbrace"`
	SpaceBeforeArrayInitializerLBrace           bool `yaml:"space_before_array_initializer_lbrace" toml:"space_before_array_initializer_lbrace"`
	SpaceBeforeAnnotationArrayInitializerLBrace bool `yaml:"space_before_annotation_array_initializer_lbrace" toml:"space_before_annotation_array_initializer_lbrace"`

	// Spaces before keywords
	SpaceBeforeElseKeyword    bool `yaml:"space_before_else_keyword" toml:"space_before_else_keyword"`
	SpaceBeforeWhileKeyword   bool `yaml:"space_before_while_keyword" toml:"space_before_while_keyword"`
	SpaceBeforeCatchKeyword   bool `yaml:"space_before_catch_keyword" toml:"space_before_catch_keyword"`
	SpaceBeforeFinallyKeyword bool `yaml:"space_before_finally_keyword" toml:"space_before_finally_keyword"`

	// Spaces within
	SpaceWithinParentheses                 bool `yaml:"space_within_parentheses" toml:"space_within_parentheses"`
	SpaceWithinMethodCallParentheses       bool `yaml:"space_within_method_call_parentheses" toml:"space_within_method_call_parentheses"`
	SpaceWithinEmptyMethodCallParentheses  bool `yaml:"space_within_empty_method_call_parentheses" toml:"space_within_empty_method_call_parentheses"`
	SpaceWithinMethodParentheses           bool `yaml:"space_within_method_parentheses" toml:"space_within_method_parentheses"`
	SpaceWithinEmptyMethodParentheses      bool `yaml:"space_within_empty_method_parentheses" toml:"space_within_empty_method_parentheses"`
	SpaceWithinIfParentheses               bool `yaml:"space_within_if_parentheses" toml:"space_within_if_parentheses"`
	SpaceWithinWhileParentheses            bool `yaml:"space_within_while_parentheses" toml:"space_within_while_parentheses"`
	SpaceWithinForParentheses              bool `yaml:"space_within_for_parentheses" toml:"space_within_for_parentheses"`
	SpaceWithinTryParentheses              bool `yaml:"space_within_try_parentheses" toml:"space_within_try_parentheses"`
	SpaceWithinCatchParentheses            bool `yaml:"space_within_catch_parentheses" toml:"space_within_catch_parentheses"`
	SpaceWithinSwitchParentheses           bool `yaml:"space_within_switch_parentheses" toml:"space_within_switch_parentheses"`
	SpaceWithinSynchronizedParentheses     bool `yaml:"space_within_synchronized_parentheses" toml:"space_within_synchronized_parentheses"`
	SpaceWithinCastParentheses             bool `yaml:"space_within_cast_parentheses" toml:"space_within_cast_parentheses"`
	SpaceWithinAnnotationParentheses       bool `yaml:"space_within_annotation_parentheses" toml:"space_within_annotation_parentheses"`
	SpaceWithinBrackets                    bool `yaml:"space_within_brackets" toml:"space_within_brackets"`
	SpaceWithinBraces                      bool `yaml:"space_within_braces" toml:"space_within_braces"`
	SpaceWithinArrayInitializerBraces      bool `yaml:"space_within_array_initializer_braces" toml:"space_within_array_initializer_braces"`
	SpaceWithinEmptyArrayInitializerBraces bool `yaml:"space_within_empty_array_initializer_braces" toml:"space_within_empty_array_initializer_braces"`
}

// DefaultSettings returns the IntelliJ defaults.
func DefaultSettings() *Settings {
	return &Settings{
		IndentSize:             4,
		ContinuationIndentSize: 8,
		TabSize:                4,
		RightMargin:            120,
		IndentCaseFromSwitch:   true,

		KeepLineBreaks:                true,
		KeepFirstColumnComment:        true,
		KeepControlStatementInOneLine: true,
		KeepBlankLinesInDeclarations:  2,
		KeepBlankLinesInCode:          2,
		KeepBlankLinesBeforeRBrace:    2,
		KeepSimpleLambdasInOneLine:    true,

		BlankLinesAfterPackage:            1,
		BlankLinesBeforeImports:           1,
		BlankLinesAfterImports:            1,
		BlankLinesAroundClass:             1,
		BlankLinesAroundMethod:            1,
		BlankLinesAroundMethodInInterface: 1,

		SpecialElseIfTreatment: true,

		AlignMultilineParameters: true,
		AlignMultilineResources:  true,
		AlignMultilineFor:        true,

		LabeledStatementWrap: WrapAlwaysSetting,
		ClassAnnotationWrap:  WrapAlwaysSetting,
		MethodAnnotationWrap: WrapAlwaysSetting,
		FieldAnnotationWrap:  WrapAlwaysSetting,

		SpaceAroundAssignmentOperators:     true,
		SpaceAroundLogicalOperators:        true,
		SpaceAroundEqualityOperators:       true,
		SpaceAroundRelationalOperators:     true,
		SpaceAroundBitwiseOperators:        true,
		SpaceAroundAdditiveOperators:       true,
		SpaceAroundMultiplicativeOperators: true,
		SpaceAroundShiftOperators:          true,
		SpaceAroundLambdaArrow:             true,

		SpaceAfterComma:                true,
		SpaceAfterCommaInTypeArguments: true,
		SpaceAfterSemicolon:            true,
		SpaceAfterTypeCast:             true,
		SpaceBeforeQuest:               true,
		SpaceAfterQuest:                true,
		SpaceBeforeColon:               true,
		SpaceAfterColon:                true,

		SpaceBeforeIfParentheses:           true,
		SpaceBeforeWhileParentheses:        true,
		SpaceBeforeForParentheses:          true,
		SpaceBeforeTryParentheses:          true,
		SpaceBeforeCatchParentheses:        true,
		SpaceBeforeSwitchParentheses:       true,
		SpaceBeforeSynchronizedParentheses: true,

		SpaceBeforeClassLBrace:        true,
		SpaceBeforeMethodLBrace:       true,
		SpaceBeforeIfLBrace:           true,
		SpaceBeforeElseLBrace:         true,
		SpaceBeforeWhileLBrace:        true,
		SpaceBeforeForLBrace:          true,
		SpaceBeforeDoLBrace:           true,
		SpaceBeforeSwitchLBrace:       true,
		SpaceBeforeTryLBrace:          true,
		SpaceBeforeCatchLBrace:        true,
		SpaceBeforeFinallyLBrace:      true,
		SpaceBeforeSynchronizedLBrace: true,

		SpaceBeforeElseKeyword:    true,
		SpaceBeforeWhileKeyword:   true,
		SpaceBeforeCatchKeyword:   true,
		SpaceBeforeFinallyKeyword: true,
	}
}

// Clone returns a deep copy of the settings.
func (s *Settings) Clone() *Settings {
	c := *s
	c.BuilderMethods = append([]string(nil), s.BuilderMethods...)

	return &c
}
