package format

import "fmt"

// IndentType classifies how far a block's first line is shifted from its parent.
type IndentType int

const (
	IndentNone IndentType = iota
	IndentNormal
	IndentContinuation
	IndentContinuationWithoutFirst
	IndentLabel
	IndentAbsoluteLabel
	IndentSpace
)

var indentNames = map[IndentType]string{
	IndentNone:                     "NONE",
	IndentNormal:                   "NORMAL",
	IndentContinuation:             "CONTINUATION",
	IndentContinuationWithoutFirst: "CONTINUATION_WITHOUT_FIRST",
	IndentLabel:                    "LABEL",
	IndentAbsoluteLabel:            "ABSOLUTE_LABEL",
	IndentSpace:                    "SPACES",
}

func (t IndentType) String() string {
	if name, ok := indentNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

// Indent describes the offset of a block's first line relative to the closest
// enclosing block that starts a line.
type Indent struct {
	Type IndentType

	// Spaces is the width of an IndentSpace indent.
	Spaces int

	// Relative indents are measured from the direct parent's start column instead of
	// the closest ancestor starting a line.
	Relative bool

	// Enforced indents are also applied to the block's children when the block itself
	// does not start a line.
	Enforced bool
}

func NoneIndent() Indent                     { return Indent{Type: IndentNone} }
func NormalIndent() Indent                   { return Indent{Type: IndentNormal} }
func ContinuationIndent() Indent             { return Indent{Type: IndentContinuation} }
func ContinuationWithoutFirstIndent() Indent { return Indent{Type: IndentContinuationWithoutFirst} }
func LabelIndent() Indent                    { return Indent{Type: IndentLabel} }
func AbsoluteLabelIndent() Indent            { return Indent{Type: IndentAbsoluteLabel} }

// SpaceIndent returns an indent of exactly n columns.
func SpaceIndent(n int) Indent { return Indent{Type: IndentSpace, Spaces: n} }

// WithRelative returns a copy of the indent measured from the direct parent.
func (i Indent) WithRelative(relative bool) Indent {
	i.Relative = relative
	return i
}

// EnforcedToChildren returns a copy of the indent that also applies to children.
func (i Indent) EnforcedToChildren() Indent {
	i.Enforced = true
	return i
}

// IsAbsolute reports whether the indent is measured from column zero.
func (i Indent) IsAbsolute() bool { return i.Type == IndentAbsoluteLabel }

// Width returns the number of columns the indent contributes. A block that is the
// first child of its parent gets nothing from a ContinuationWithoutFirst indent.
func (i Indent) Width(s *Settings, firstChild bool) int {
	switch i.Type {
	case IndentNormal:
		return s.IndentSize
	case IndentContinuation:
		return s.ContinuationIndentSize
	case IndentContinuationWithoutFirst:
		if firstChild {
			return 0
		}

		return s.ContinuationIndentSize
	case IndentLabel, IndentAbsoluteLabel:
		return s.LabelIndentSize
	case IndentSpace:
		return i.Spaces
	}

	return 0
}

func (i Indent) String() string {
	s := i.Type.String()
	if i.Type == IndentSpace {
		s = fmt.Sprintf("%s(%d)", s, i.Spaces)
	}

	if i.Relative {
		s += ",relative"
	}

	if i.Enforced {
		s += ",enforced"
	}

	return s
}
