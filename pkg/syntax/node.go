package syntax

import (
	"fmt"
	"strings"
)

// Node is an element of the syntax tree. Leaves carry a token kind, composites carry
// an element kind and an ordered list of children covering their range without gaps.
type Node struct {
	Kind  Kind
	Role  Role
	Range TextRange

	file     *File
	parent   *Node
	children []*Node
	index    int
}

// NewToken returns a leaf of the given kind covering r.
func NewToken(kind Kind, role Role, r TextRange) *Node {
	return &Node{Kind: kind, Role: role, Range: r}
}

// NewElement returns a composite of the given kind owning children, which must be
// ordered and contiguous. The range is derived from the first and last child; an
// element without children is anchored at offset.
func NewElement(kind Kind, offset int, children ...*Node) *Node {
	n := &Node{Kind: kind, Range: NewRange(offset, offset)}
	n.children = children

	for i, child := range children {
		child.parent = n
		child.index = i
	}

	if len(children) > 0 {
		n.Range = NewRange(children[0].Range.Start, children[len(children)-1].Range.End)
	}

	return n
}

// File returns the file the node belongs to.
func (n *Node) File() *File { return n.file }

// Parent returns the enclosing node or nil for the root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the direct children in source order. Callers must not modify the slice.
func (n *Node) Children() []*Node { return n.children }

// IsLeaf reports whether the node is a token.
func (n *Node) IsLeaf() bool { return len(n.children) == 0 && n.Kind.IsToken() }

// IsWhitespace reports whether the node is a whitespace token.
func (n *Node) IsWhitespace() bool { return n.Kind == KindWhitespace }

// IsComment reports whether the node is a comment of any form.
func (n *Node) IsComment() bool { return n.Kind.IsComment() }

// IsError reports whether the node wraps source the parser rejected.
func (n *Node) IsError() bool { return n.Kind == KindError }

// Text returns the source text covered by the node.
func (n *Node) Text() string {
	if n.file == nil {
		return ""
	}

	return n.file.Source[n.Range.Start:n.Range.End]
}

// FirstChild returns the first child or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}

	return n.children[0]
}

// LastChild returns the last child or nil.
func (n *Node) LastChild() *Node {
	if len(n.children) == 0 {
		return nil
	}

	return n.children[len(n.children)-1]
}

// NextSibling returns the following sibling or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil || n.index+1 >= len(n.parent.children) {
		return nil
	}

	return n.parent.children[n.index+1]
}

// PrevSibling returns the preceding sibling or nil.
func (n *Node) PrevSibling() *Node {
	if n.parent == nil || n.index == 0 {
		return nil
	}

	return n.parent.children[n.index-1]
}

// NextNonTrivia returns the next sibling that is neither whitespace nor a comment.
func (n *Node) NextNonTrivia() *Node {
	for s := n.NextSibling(); s != nil; s = s.NextSibling() {
		if !s.Kind.IsTrivia() {
			return s
		}
	}

	return nil
}

// PrevNonTrivia returns the previous sibling that is neither whitespace nor a comment.
func (n *Node) PrevNonTrivia() *Node {
	for s := n.PrevSibling(); s != nil; s = s.PrevSibling() {
		if !s.Kind.IsTrivia() {
			return s
		}
	}

	return nil
}

// PrevNonWhitespace returns the previous sibling that is not whitespace.
func (n *Node) PrevNonWhitespace() *Node {
	for s := n.PrevSibling(); s != nil; s = s.PrevSibling() {
		if s.Kind != KindWhitespace {
			return s
		}
	}

	return nil
}

// ChildByRole returns the first child with the given role or nil.
func (n *Node) ChildByRole(role Role) *Node {
	for _, c := range n.children {
		if c.Role == role {
			return c
		}
	}

	return nil
}

// ChildOfKind returns the first child with the given kind or nil.
func (n *Node) ChildOfKind(kind Kind) *Node {
	for _, c := range n.children {
		if c.Kind == kind {
			return c
		}
	}

	return nil
}

// ChildrenOfKind returns every direct child with the given kind.
func (n *Node) ChildrenOfKind(kind Kind) []*Node {
	var res []*Node

	for _, c := range n.children {
		if c.Kind == kind {
			res = append(res, c)
		}
	}

	return res
}

// HasChildOfKind reports whether any direct child has the given kind.
func (n *Node) HasChildOfKind(kind Kind) bool {
	return n.ChildOfKind(kind) != nil
}

// FirstLeaf returns the first token of the subtree. A childless element is its own first leaf.
func (n *Node) FirstLeaf() *Node {
	cur := n
	for len(cur.children) > 0 {
		cur = cur.children[0]
	}

	return cur
}

// FirstToken returns the first leaf of the subtree that covers some text, or nil.
func (n *Node) FirstToken() *Node {
	var found *Node

	n.Walk(func(c *Node) bool {
		if found != nil || c.Range.IsEmpty() {
			return false
		}

		if len(c.children) == 0 {
			found = c
		}

		return found == nil
	})

	return found
}

// LastLeaf returns the last token of the subtree.
func (n *Node) LastLeaf() *Node {
	cur := n
	for len(cur.children) > 0 {
		cur = cur.children[len(cur.children)-1]
	}

	return cur
}

// PrevLeaf returns the token immediately before this node in document order, or nil.
func (n *Node) PrevLeaf() *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if prev := cur.PrevSibling(); prev != nil {
			return prev.LastLeaf()
		}
	}

	return nil
}

// NextLeaf returns the token immediately after this node in document order, or nil.
func (n *Node) NextLeaf() *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if next := cur.NextSibling(); next != nil {
			return next.FirstLeaf()
		}
	}

	return nil
}

// PrevNonWhitespaceLeaf returns the closest preceding token that is not whitespace.
func (n *Node) PrevNonWhitespaceLeaf() *Node {
	leaf := n.PrevLeaf()
	for leaf != nil && (leaf.Kind == KindWhitespace || leaf.Range.IsEmpty()) {
		leaf = leaf.PrevLeaf()
	}

	return leaf
}

// ContainsLineFeeds reports whether the node's text spans more than one line.
func (n *Node) ContainsLineFeeds() bool {
	return strings.ContainsRune(n.Text(), '\n')
}

// Walk visits the subtree in document order. Returning false from fn skips the
// children of the visited node.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}

	for _, c := range n.children {
		c.Walk(fn)
	}
}

// Ancestor returns the closest strict ancestor of the given kind or nil.
func (n *Node) Ancestor(kind Kind) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.Kind == kind {
			return p
		}
	}

	return nil
}

// LeafAt returns the token containing offset or nil when offset is out of range.
func (n *Node) LeafAt(offset int) *Node {
	if !n.Range.Contains(offset) {
		return nil
	}

	for _, c := range n.children {
		if c.Range.Contains(offset) {
			return c.LeafAt(offset)
		}
	}

	return n
}

func (n *Node) String() string {
	if n.IsLeaf() {
		return fmt.Sprintf("%s%s %q", n.Kind, n.Range, n.Text())
	}

	return fmt.Sprintf("%s%s", n.Kind, n.Range)
}

// DebugString renders the subtree one node per line, children indented by two spaces.
// Roles other than NONE are printed after the kind. Whitespace leaves are omitted.
func (n *Node) DebugString() string {
	var sb strings.Builder
	n.debug(&sb, 0)

	return sb.String()
}

func (n *Node) debug(sb *strings.Builder, depth int) {
	if n.Kind == KindWhitespace {
		return
	}

	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(n.Kind.String())

	if n.Role != RoleNone {
		sb.WriteString(":" + n.Role.String())
	}

	if n.IsLeaf() {
		fmt.Fprintf(sb, " %q", n.Text())
	}

	sb.WriteByte('\n')

	for _, c := range n.children {
		c.debug(sb, depth+1)
	}
}
