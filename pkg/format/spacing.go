package format

import (
	"fmt"
	"math"

	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// MaxSpaces stands for "no upper bound" in Spacing.MaxSpaces.
const MaxSpaces = math.MaxInt32

// Spacing constrains the whitespace between two adjacent blocks.
type Spacing struct {
	MinSpaces    int
	MaxSpaces    int
	MinLineFeeds int

	// KeepLineBreaks preserves existing line breaks, up to KeepBlankLines blank lines.
	KeepLineBreaks bool
	KeepBlankLines int

	// PrefLineFeeds is the number of line feeds used when the gap already had one.
	PrefLineFeeds int

	// DependentRanges make MinLineFeeds conditional: it only applies when one of the
	// ranges spans several lines.
	DependentRanges []syntax.TextRange

	// ReadOnly gaps are copied verbatim.
	ReadOnly bool

	// KeepFirstColumn keeps a comment that starts at column zero there.
	KeepFirstColumn bool
}

// NewSpacing returns a plain spacing constraint. A maximum below the minimum is raised
// to the minimum.
func NewSpacing(minSpaces, maxSpaces, minLineFeeds int, keepLineBreaks bool, keepBlankLines int) *Spacing {
	return &Spacing{
		MinSpaces:      minSpaces,
		MaxSpaces:      max(minSpaces, maxSpaces),
		MinLineFeeds:   minLineFeeds,
		KeepLineBreaks: keepLineBreaks,
		KeepBlankLines: keepBlankLines,
	}
}

// NewDependentLFSpacing returns a spacing that requires a line feed only when the
// dependent range spans several lines.
func NewDependentLFSpacing(minSpaces, maxSpaces int, dependence syntax.TextRange, keepLineBreaks bool, keepBlankLines int) *Spacing {
	s := NewSpacing(minSpaces, maxSpaces, 1, keepLineBreaks, keepBlankLines)
	s.DependentRanges = []syntax.TextRange{dependence}

	return s
}

// ReadOnlySpacing returns a spacing that leaves the gap untouched.
func ReadOnlySpacing() *Spacing {
	return &Spacing{ReadOnly: true, MaxSpaces: MaxSpaces, KeepLineBreaks: true, KeepBlankLines: math.MaxInt32}
}

// KeepingFirstColumnSpacing returns a spacing for comments that stay in column zero
// when they already are.
func KeepingFirstColumnSpacing(minSpaces, maxSpaces int, keepLineBreaks bool, keepBlankLines int) *Spacing {
	s := NewSpacing(minSpaces, maxSpaces, 0, keepLineBreaks, keepBlankLines)
	s.KeepFirstColumn = true

	return s
}

// WithPrefLineFeeds sets the preferred number of line feeds.
func (s *Spacing) WithPrefLineFeeds(n int) *Spacing {
	s.PrefLineFeeds = n
	return s
}

// EffectiveMinLineFeeds resolves the dependent ranges with spans, which reports whether
// a range spans several lines.
func (s *Spacing) EffectiveMinLineFeeds(spans func(syntax.TextRange) bool) int {
	if len(s.DependentRanges) == 0 {
		return s.MinLineFeeds
	}

	for _, r := range s.DependentRanges {
		if spans(r) {
			return s.MinLineFeeds
		}
	}

	return 0
}

func (s *Spacing) String() string {
	if s == nil {
		return "<keep>"
	}

	if s.ReadOnly {
		return "<read-only>"
	}

	maxSpaces := fmt.Sprint(s.MaxSpaces)
	if s.MaxSpaces == MaxSpaces {
		maxSpaces = "max"
	}

	return fmt.Sprintf("<spaces=%d..%s lf=%d keep=%t blank=%d deps=%d>",
		s.MinSpaces, maxSpaces, s.MinLineFeeds, s.KeepLineBreaks, s.KeepBlankLines, len(s.DependentRanges))
}
