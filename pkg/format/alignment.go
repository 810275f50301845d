package format

import "strconv"

// Alignment is an identity handle. Blocks holding the same Alignment start at the same
// column when rendered on separate lines. The zero value means "not aligned".
type Alignment int

// NoAlignment is the absent alignment.
const NoAlignment Alignment = 0

// IsSet reports whether a is a real alignment.
func (a Alignment) IsSet() bool { return a != NoAlignment }

func (a Alignment) String() string {
	if !a.IsSet() {
		return "-"
	}

	return "#" + strconv.Itoa(int(a))
}

// Alignments allocates the alignment handles of one block tree. Handles are only
// meaningful within the arena that created them.
type Alignments struct {
	parents []Alignment
}

// New allocates a fresh alignment.
func (a *Alignments) New() Alignment {
	return a.NewChild(NoAlignment)
}

// NewChild allocates an alignment that falls back to parent's anchor until one of its
// own holders is placed.
func (a *Alignments) NewChild(parent Alignment) Alignment {
	a.parents = append(a.parents, parent)
	return Alignment(len(a.parents))
}

// Parent returns the alignment al was derived from, if any.
func (a *Alignments) Parent(al Alignment) Alignment {
	if !al.IsSet() || int(al) > len(a.parents) {
		return NoAlignment
	}

	return a.parents[al-1]
}

// Len returns the number of alignments allocated so far.
func (a *Alignments) Len() int { return len(a.parents) }
