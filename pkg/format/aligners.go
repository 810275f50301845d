package format

import (
	"strings"

	"github.com/pseudomuto/javafmt/pkg/syntax"
)

// columnGroup describes one kind of sibling run whose parts are aligned in columns, for
// example consecutive field declarations aligning their types, names and '=' signs.
type columnGroup struct {
	name   string
	parent syntax.Kind
	kinds  []syntax.Kind

	// matches reports whether a sibling belongs to the group.
	matches func(n *syntax.Node) bool
	// breaks reports whether the run must restart before n, which matches.
	breaks func(prev, n *syntax.Node) bool
}

// ColumnAligner hands out per-type strategies to runs of similar siblings. It carries
// no state: callers thread an AlignerState through the siblings they scan.
type ColumnAligner struct {
	arena  *Alignments
	groups []columnGroup
}

// AlignerState is the per-scan state of a ColumnAligner.
type AlignerState struct {
	current    int
	prev       *syntax.Node
	strategies []*PerTypeStrategy
}

// Start returns the state for the first sibling of a scan.
func (a *ColumnAligner) Start() AlignerState {
	if a == nil {
		return AlignerState{current: -1}
	}

	return AlignerState{current: -1, strategies: make([]*PerTypeStrategy, len(a.groups))}
}

// Next returns the strategy for n and the state for the following sibling. Comments,
// declarator commas and the declarators following them neither match nor break a run.
// A sibling matching no group resets every run.
func (a *ColumnAligner) Next(state AlignerState, n *syntax.Node) (AlignerState, AlignmentStrategy) {
	if a == nil || len(a.groups) == 0 {
		return state, NullStrategy
	}

	if n.IsComment() || n.Kind == syntax.KindComma || followsComma(n) {
		return state, NullStrategy
	}

	next := AlignerState{current: -1, strategies: make([]*PerTypeStrategy, len(a.groups))}

	for i, g := range a.groups {
		if !g.matches(n) {
			continue
		}

		strategy := state.strategies[i]
		if strategy == nil || state.current != i || (g.breaks != nil && state.prev != nil && g.breaks(state.prev, n)) {
			strategy = NewPerTypeStrategy(a.arena, g.parent, g.kinds...)
		}

		next.current = i
		next.prev = n
		next.strategies[i] = strategy

		return next, strategy
	}

	return next, NullStrategy
}

// memberAligner aligns field declarations and one-line methods of a class body.
func memberAligner(arena *Alignments, s *Settings) *ColumnAligner {
	a := &ColumnAligner{arena: arena}

	if s.AlignGroupFieldDeclarations {
		a.groups = append(a.groups, columnGroup{
			name:   "fields",
			parent: syntax.KindField,
			kinds:  []syntax.Kind{syntax.KindModifierList, syntax.KindType, syntax.KindIdentifier, syntax.KindEq},
			matches: func(n *syntax.Node) bool {
				return n.Kind == syntax.KindField
			},
			breaks: func(prev, n *syntax.Node) bool {
				return useDifferentDeclarationAlignment(prev, n, s.KeepBlankLinesInDeclarations)
			},
		})
	}

	// Only bodies kept on one line form columns; a body split by the formatter would
	// leave the next run with different members.
	if s.AlignSubsequentSimpleMethods && s.KeepSimpleMethodsInOneLine {
		a.groups = append(a.groups, columnGroup{
			name:   "methods",
			parent: syntax.KindMethod,
			kinds:  []syntax.Kind{syntax.KindCodeBlock},
			matches: func(n *syntax.Node) bool {
				return n.Kind == syntax.KindMethod && n.ChildOfKind(syntax.KindCodeBlock) != nil && !n.ContainsLineFeeds()
			},
			breaks: func(prev, n *syntax.Node) bool {
				return blankLinesBefore(n) > 0
			},
		})
	}

	return a
}

// statementAligner aligns consecutive local declarations and assignments of a code block.
func statementAligner(arena *Alignments, s *Settings) *ColumnAligner {
	a := &ColumnAligner{arena: arena}

	if s.AlignConsecutiveVariableDeclarations {
		a.groups = append(a.groups, columnGroup{
			name:   "locals",
			parent: syntax.KindLocalVariable,
			kinds:  []syntax.Kind{syntax.KindModifierList, syntax.KindType, syntax.KindIdentifier, syntax.KindEq},
			matches: func(n *syntax.Node) bool {
				return n.Kind == syntax.KindDeclarationStatement && n.ChildOfKind(syntax.KindLocalVariable) != nil
			},
			breaks: func(prev, n *syntax.Node) bool {
				return useDifferentDeclarationAlignment(prev, n, s.KeepBlankLinesInCode)
			},
		})
	}

	if s.AlignConsecutiveAssignments {
		a.groups = append(a.groups, columnGroup{
			name:   "assignments",
			parent: syntax.KindAssignmentExpression,
			kinds:  assignmentSigns,
			matches: func(n *syntax.Node) bool {
				if n.Kind != syntax.KindExpressionStatement {
					return false
				}

				expr := n.FirstChild()
				return expr != nil && expr.Kind == syntax.KindAssignmentExpression
			},
			breaks: func(prev, n *syntax.Node) bool {
				return blankLinesBefore(n) > 0 || prev.ContainsLineFeeds()
			},
		})
	}

	return a
}

var assignmentSigns = []syntax.Kind{
	syntax.KindEq, syntax.KindPlusEq, syntax.KindMinusEq, syntax.KindAsteriskEq, syntax.KindDivEq,
	syntax.KindPercEq, syntax.KindAndEq, syntax.KindOrEq, syntax.KindXorEq,
	syntax.KindLtLtEq, syntax.KindGtGtEq, syntax.KindGtGtGtEq,
}

// useDifferentDeclarationAlignment reports whether n starts a new column run after prev:
// a blank line separates them while blank lines are kept, prev spans several lines before
// its name, or only one of them has modifiers.
func useDifferentDeclarationAlignment(prev, n *syntax.Node, keepBlankLines int) bool {
	if keepBlankLines > 0 && blankLinesBefore(n) > 0 {
		return true
	}

	if headerSpansLines(prev) {
		return true
	}

	return hasModifiers(prev) != hasModifiers(n)
}

// blankLinesBefore counts the empty lines in the whitespace preceding n.
func blankLinesBefore(n *syntax.Node) int {
	prev := n.PrevSibling()
	if prev == nil || !prev.IsWhitespace() {
		return 0
	}

	return max(0, strings.Count(prev.Text(), "\n")-1)
}

// followsComma reports whether n is a later declarator of a multi-variable declaration.
func followsComma(n *syntax.Node) bool {
	prev := n.PrevNonTrivia()
	return prev != nil && prev.Kind == syntax.KindComma
}

func headerSpansLines(n *syntax.Node) bool {
	decl := declaratorOf(n)
	if decl == nil {
		return false
	}

	name := decl.ChildOfKind(syntax.KindIdentifier)
	if name == nil {
		return false
	}

	src := decl.File().Source
	return strings.Contains(src[decl.Range.Start:name.Range.Start], "\n")
}

func hasModifiers(n *syntax.Node) bool {
	decl := declaratorOf(n)
	if decl == nil {
		return false
	}

	mods := decl.ChildOfKind(syntax.KindModifierList)
	return mods != nil && !mods.Range.IsEmpty()
}

func declaratorOf(n *syntax.Node) *syntax.Node {
	if n.Kind == syntax.KindDeclarationStatement {
		return n.ChildOfKind(syntax.KindLocalVariable)
	}

	return n
}
