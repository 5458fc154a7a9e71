package ui

import (
	"github.com/hubastard/trellis/engine/colors"
	"github.com/hubastard/trellis/engine/units"
)

// Base is the state shared by all widgets.
type Base struct {
	attached bool
	hidden   bool
	children []Family
	position units.Position
	size     units.Size
	color    colors.Color
}

func (b *Base) Children() []Family      { return b.children }
func (b *Base) Pos() units.Position     { return b.position }
func (b *Base) Size() units.Size        { return b.size }
func (b *Base) Color() colors.Color     { return b.color }
func (b *Base) Hidden() bool            { return b.hidden }
func (b *Base) SetPos(p units.Position) { b.position = p }
func (b *Base) SetSize(s units.Size)    { b.size = s }
func (b *Base) SetColor(c colors.Color) { b.color = c }
func (b *Base) SetHidden(hidden bool)   { b.hidden = hidden }

// contains reports whether n is b or one of its descendants.
func (b *Base) contains(n *Base) bool {
	if b == n {
		return true
	}
	for _, c := range b.children {
		if c.Node().contains(n) {
			return true
		}
	}
	return false
}

// adopt appends child. A child has exactly one parent for its lifetime;
// adding it twice, or adding an ancestor, is a programming error.
func (b *Base) adopt(child Family) {
	if child == nil {
		return
	}
	n := child.Node()
	if n.attached {
		panic("ui: widget already has a parent")
	}
	if n.contains(b) {
		panic("ui: adding a widget to its own subtree")
	}
	n.attached = true
	b.children = append(b.children, child)
}

// ------ Helper ------

// Common implements the shared capabilities for a concrete widget T and
// provides chainable setters returning T.
type Common[T any] struct {
	owner T
	base  Base
}

func NewCommon[T any](owner T) Common[T] {
	return Common[T]{owner: owner, base: Base{color: colors.Default}}
}

func (c *Common[T]) Node() *Base { return &c.base }

// Widget

func (c *Common[T]) IsRendered() bool { return !c.base.hidden }

// AreaWidget

func (c *Common[T]) SetSize(size units.Size)               { c.base.size = size }
func (c *Common[T]) SetBackgroundColor(color colors.Color) { c.base.color = color }

// Parent

func (c *Common[T]) AddChild(child Family) { c.base.adopt(child) }
func (c *Common[T]) ChildrenLen() int      { return len(c.base.children) }
func (c *Common[T]) Children() []Family    { return c.base.children }

// Child positioning

func (c *Common[T]) Pos() units.Position            { return c.base.position }
func (c *Common[T]) SetPosition(pos units.Position) { c.base.position = pos }
func (c *Common[T]) SetPositionLogical(x, y float64) {
	c.base.position = units.LogicalPosition(x, y)
}
func (c *Common[T]) SetPositionPhysical(x, y float64) {
	c.base.position = units.PhysicalPosition(x, y)
}

// Chainable setters. Plain numbers are logical pixels.

func (c *Common[T]) Position(x, y float64) T  { c.SetPositionLogical(x, y); return c.owner }
func (c *Common[T]) Size(w, h float64) T      { c.base.size = units.LogicalSize(w, h); return c.owner }
func (c *Common[T]) Color(col colors.Color) T { c.base.color = col; return c.owner }
func (c *Common[T]) Visible(visible bool) T   { c.base.hidden = !visible; return c.owner }

func (c *Common[T]) Add(kids ...Family) T {
	for _, k := range kids {
		c.base.adopt(k)
	}
	return c.owner
}
