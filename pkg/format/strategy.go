package format

import (
	"slices"

	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// AlignmentStrategy hands out the alignment a child should hold, given the kind of the
// parent node and the kind of the child.
type AlignmentStrategy interface {
	Alignment(parent, child syntax.Kind) Alignment
}

// NullStrategy never aligns.
var NullStrategy AlignmentStrategy = nullStrategy{}

type nullStrategy struct{}

func (nullStrategy) Alignment(syntax.Kind, syntax.Kind) Alignment { return NoAlignment }

// SharedStrategy returns a strategy that hands al to every child except those whose kind
// is excluded. A missing alignment yields NullStrategy.
func SharedStrategy(al Alignment, exclude ...syntax.Kind) AlignmentStrategy {
	if !al.IsSet() {
		return NullStrategy
	}

	return sharedStrategy{alignment: al, exclude: exclude}
}

type sharedStrategy struct {
	alignment Alignment
	exclude   []syntax.Kind
}

func (s sharedStrategy) Alignment(_, child syntax.Kind) Alignment {
	if slices.Contains(s.exclude, child) {
		return NoAlignment
	}

	return s.alignment
}

// PerTypeStrategy keeps one alignment per child kind, shared by every child of that kind
// under a parent of kind parent. Strategies of this kind align declarations in columns.
type PerTypeStrategy struct {
	parent     syntax.Kind
	alignments map[syntax.Kind]Alignment
	kinds      []syntax.Kind
}

// NewPerTypeStrategy allocates one alignment in arena for each of kinds.
func NewPerTypeStrategy(arena *Alignments, parent syntax.Kind, kinds ...syntax.Kind) *PerTypeStrategy {
	s := &PerTypeStrategy{
		parent:     parent,
		alignments: make(map[syntax.Kind]Alignment, len(kinds)),
		kinds:      kinds,
	}

	for _, k := range kinds {
		s.alignments[k] = arena.New()
	}

	return s
}

// Alignment returns the column alignment for child, if parent is the target kind.
func (s *PerTypeStrategy) Alignment(parent, child syntax.Kind) Alignment {
	if parent != s.parent {
		return NoAlignment
	}

	return s.alignments[child]
}

// Parent returns the kind whose children the strategy aligns.
func (s *PerTypeStrategy) Parent() syntax.Kind { return s.parent }

// Kinds returns the aligned child kinds.
func (s *PerTypeStrategy) Kinds() []syntax.Kind { return s.kinds }
