package format

import "fmt"

// WrapType is the policy deciding whether a line break may be inserted before a block.
type WrapType int

const (
	WrapNone WrapType = iota
	WrapNormal
	WrapAlways
	WrapChopDownIfLong
)

var wrapTypeNames = map[WrapType]string{
	WrapNone:           "NONE",
	WrapNormal:         "NORMAL",
	WrapAlways:         "ALWAYS",
	WrapChopDownIfLong: "CHOP_DOWN_IF_LONG",
}

func (t WrapType) String() string {
	if name, ok := wrapTypeNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

// Wrap is shared by every block it applies to. Decisions such as "chopped" are made once
// per Wrap and apply to all of its holders.
type Wrap struct {
	Type WrapType

	// WrapFirstElement allows the first holder of the wrap to be wrapped as well.
	WrapFirstElement bool

	parent            *Wrap
	ignoreParentWraps bool
}

// NewWrap returns a wrap of the given type.
func NewWrap(t WrapType, wrapFirstElement bool) *Wrap {
	return &Wrap{Type: t, WrapFirstElement: wrapFirstElement}
}

// NewChildWrap returns a wrap whose eligibility follows parent: once the parent wrap has
// chopped, the child chops as well.
func NewChildWrap(parent *Wrap, t WrapType, wrapFirstElement bool) *Wrap {
	w := NewWrap(t, wrapFirstElement)
	w.parent = parent

	return w
}

// IgnoreParentWraps makes line breaks of this wrap preferred over those of enclosing wraps.
func (w *Wrap) IgnoreParentWraps() *Wrap {
	w.ignoreParentWraps = true
	return w
}

// IgnoresParentWraps reports whether IgnoreParentWraps was called.
func (w *Wrap) IgnoresParentWraps() bool { return w != nil && w.ignoreParentWraps }

// Parent returns the wrap w was derived from, or nil.
func (w *Wrap) Parent() *Wrap {
	if w == nil {
		return nil
	}

	return w.parent
}

func (w *Wrap) String() string {
	if w == nil {
		return "-"
	}

	return fmt.Sprintf("%s(first=%t)", w.Type, w.WrapFirstElement)
}
