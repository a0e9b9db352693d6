// Package cursor holds the selection state and the transformation
// protocol through which all edits and cursor moves flow.
package cursor

import "github.com/pstuifzand/foliate/internal/model"

// Cursor is the current selection. Anchor and Head are selectable
// offsets; the cursor is a caret when they are equal and a range
// selection otherwise, with direction sign(Head - Anchor). LeftLock
// remembers the horizontal cell position for vertical navigation so that
// repeated line moves track a consistent visual column.
type Cursor struct {
	Anchor   int
	Head     int
	LeftLock int
}

// New creates a caret at the given offset.
func New(offset int) *Cursor {
	return &Cursor{Anchor: offset, Head: offset}
}

// IsCaret reports whether the selection is collapsed.
func (c *Cursor) IsCaret() bool {
	return c.Anchor == c.Head
}

// From returns the lower bound of the selection.
func (c *Cursor) From() int {
	if c.Anchor < c.Head {
		return c.Anchor
	}
	return c.Head
}

// To returns the upper bound of the selection.
func (c *Cursor) To() int {
	if c.Anchor > c.Head {
		return c.Anchor
	}
	return c.Head
}

// Op is a single reversible content operation, applied to the model tree
// in model offsets.
type Op interface {
	Apply(doc *model.Doc) error
}

// Transformation is the atomic unit of change: an ordered list of content
// operations plus the selection that results from them. A pure cursor
// move is a transformation with no operations.
type Transformation struct {
	Ops []Op
	// Head is the selectable offset the cursor head moves to.
	Head int
	// Anchor is the resulting anchor; a negative value collapses the
	// selection to the head.
	Anchor int
	// KeepLeftLock preserves the remembered column instead of deriving a
	// new one from the head position. Vertical moves set this.
	KeepLeftLock bool
}

// Move builds a pure caret move.
func Move(head int) *Transformation {
	return &Transformation{Head: head, Anchor: -1}
}

// MoveTo builds a selection change with an explicit anchor.
func MoveTo(head, anchor int) *Transformation {
	return &Transformation{Head: head, Anchor: anchor}
}

// Edit builds a transformation carrying content operations.
func Edit(head int, ops ...Op) *Transformation {
	return &Transformation{Ops: ops, Head: head, Anchor: -1}
}
