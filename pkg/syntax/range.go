package syntax

import "fmt"

// TextRange is a half-open byte range [Start, End) into the source text.
type TextRange struct {
	Start int
	End   int
}

// NewRange returns the range [start, end).
func NewRange(start, end int) TextRange {
	return TextRange{Start: start, End: end}
}

// Len returns the number of bytes covered by the range.
func (r TextRange) Len() int {
	return r.End - r.Start
}

// IsEmpty reports whether the range covers no bytes.
func (r TextRange) IsEmpty() bool {
	return r.End <= r.Start
}

// Contains reports whether offset lies inside the range.
func (r TextRange) Contains(offset int) bool {
	return offset >= r.Start && offset < r.End
}

// ContainsRange reports whether other lies completely inside r.
func (r TextRange) ContainsRange(other TextRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Intersects reports whether the two ranges share at least one position. Touching
// ranges intersect, so a gap between two tokens intersects a range ending at it.
func (r TextRange) Intersects(other TextRange) bool {
	return r.Start <= other.End && other.Start <= r.End
}

// Union returns the smallest range covering both ranges.
func (r TextRange) Union(other TextRange) TextRange {
	return TextRange{Start: min(r.Start, other.Start), End: max(r.End, other.End)}
}

func (r TextRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
