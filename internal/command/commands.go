// Package command implements the navigation and editing commands. Every
// handler computes a target selection against the current layout tree and
// returns a transformation for the editor to apply; none of them touch
// the trees directly.
package command

import (
	"github.com/pstuifzand/foliate/internal/cursor"
	"github.com/pstuifzand/foliate/internal/editor"
)

// Handler builds a transformation from the editor's current state. A nil
// result means the command does not apply (for example, no active
// cursor).
type Handler func(ed *editor.Editor) *cursor.Transformation

// MoveForward moves the caret one position right. Against a range
// selection it collapses to the range's far end instead of stepping past
// the head.
func MoveForward(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	if !c.IsCaret() {
		return cursor.Move(c.To())
	}
	return cursor.Move(c.Head + 1)
}

// MoveBackward moves the caret one position left, collapsing a range to
// its near end.
func MoveBackward(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	if !c.IsCaret() {
		return cursor.Move(c.From())
	}
	return cursor.Move(c.Head - 1)
}

// MoveForwardByWord moves the caret to the next word boundary.
func MoveForwardByWord(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	head := c.Head
	if !c.IsCaret() {
		head = c.To()
	}
	return cursor.Move(ed.Layout().NextWordBoundary(head))
}

// MoveBackwardByWord moves the caret to the previous word boundary.
func MoveBackwardByWord(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	head := c.Head
	if !c.IsCaret() {
		head = c.From()
	}
	return cursor.Move(ed.Layout().PreviousWordBoundary(head))
}

// MoveToLineStart moves the caret to the first position of its line.
func MoveToLineStart(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	return cursor.Move(ed.Layout().LineStart(c.Head))
}

// MoveToLineEnd moves the caret to the last position of its line.
func MoveToLineEnd(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	return cursor.Move(ed.Layout().LineEnd(c.Head))
}

// MoveUp moves the caret to the previous line, tracking the remembered
// column rather than the head's current one.
func MoveUp(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	head := c.Head
	if !c.IsCaret() {
		head = c.From()
	}
	tf := cursor.Move(ed.Layout().PreviousLine(head, c.LeftLock))
	tf.KeepLeftLock = true
	return tf
}

// MoveDown moves the caret to the next line at the remembered column.
func MoveDown(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	head := c.Head
	if !c.IsCaret() {
		head = c.To()
	}
	tf := cursor.Move(ed.Layout().NextLine(head, c.LeftLock))
	tf.KeepLeftLock = true
	return tf
}

// MoveToDocumentStart moves the caret to offset zero.
func MoveToDocumentStart(ed *editor.Editor) *cursor.Transformation {
	if ed.Cursor() == nil {
		return nil
	}
	return cursor.Move(0)
}

// MoveToDocumentEnd moves the caret to the last position.
func MoveToDocumentEnd(ed *editor.Editor) *cursor.Transformation {
	if ed.Cursor() == nil {
		return nil
	}
	return cursor.Move(ed.Layout().Size() - 1)
}

// SelectAll selects every position in the document.
func SelectAll(ed *editor.Editor) *cursor.Transformation {
	if ed.Cursor() == nil {
		return nil
	}
	return cursor.MoveTo(ed.Layout().Size()-1, 0)
}

// Extend variants move the head and leave the anchor in place.

// ExtendForward grows or shrinks the selection by one position.
func ExtendForward(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	return cursor.MoveTo(c.Head+1, c.Anchor)
}

// ExtendBackward shrinks or grows the selection by one position.
func ExtendBackward(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	return cursor.MoveTo(c.Head-1, c.Anchor)
}

// ExtendForwardByWord extends the selection to the next word boundary.
func ExtendForwardByWord(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	return cursor.MoveTo(ed.Layout().NextWordBoundary(c.Head), c.Anchor)
}

// ExtendBackwardByWord extends the selection to the previous word
// boundary.
func ExtendBackwardByWord(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	return cursor.MoveTo(ed.Layout().PreviousWordBoundary(c.Head), c.Anchor)
}

// ExtendToLineStart extends the selection to the head's line start.
func ExtendToLineStart(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	return cursor.MoveTo(ed.Layout().LineStart(c.Head), c.Anchor)
}

// ExtendToLineEnd extends the selection to the head's line end.
func ExtendToLineEnd(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	return cursor.MoveTo(ed.Layout().LineEnd(c.Head), c.Anchor)
}

// ExtendUp extends the selection one line up at the remembered column.
func ExtendUp(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	tf := cursor.MoveTo(ed.Layout().PreviousLine(c.Head, c.LeftLock), c.Anchor)
	tf.KeepLeftLock = true
	return tf
}

// ExtendDown extends the selection one line down at the remembered
// column.
func ExtendDown(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	tf := cursor.MoveTo(ed.Layout().NextLine(c.Head, c.LeftLock), c.Anchor)
	tf.KeepLeftLock = true
	return tf
}
