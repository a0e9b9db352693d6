package command

import (
	"github.com/pstuifzand/foliate/internal/cursor"
	"github.com/pstuifzand/foliate/internal/editor"
)

// InsertText types text at the caret. A range selection is replaced: the
// selected span is deleted first, then the text goes in at the range
// start.
func InsertText(text string) Handler {
	return func(ed *editor.Editor) *cursor.Transformation {
		c := ed.Cursor()
		if c == nil {
			return nil
		}
		var ops []cursor.Op
		at := c.Head
		if !c.IsCaret() {
			at = c.From()
			if op, ok := deleteOps(ed, c.From(), c.To()); ok {
				ops = append(ops, op)
			} else {
				return nil
			}
		}
		modelAt, err := ed.Render().ModelOffset(at)
		if err != nil {
			return nil
		}
		ops = append(ops, cursor.InsertText{At: modelAt, Text: text})
		return cursor.Edit(at+len([]rune(text)), ops...)
	}
}

// DeleteBackward deletes the position before the caret, or the selected
// range.
func DeleteBackward(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	from, to := c.From(), c.To()
	if c.IsCaret() {
		if c.Head == 0 {
			return nil
		}
		from, to = c.Head-1, c.Head
	}
	op, ok := deleteOps(ed, from, to)
	if !ok {
		return nil
	}
	return cursor.Edit(from, op)
}

// DeleteForward deletes the position after the caret, or the selected
// range.
func DeleteForward(ed *editor.Editor) *cursor.Transformation {
	c := ed.Cursor()
	if c == nil {
		return nil
	}
	from, to := c.From(), c.To()
	if c.IsCaret() {
		if c.Head >= ed.Layout().Size()-1 {
			return nil
		}
		from, to = c.Head, c.Head+1
	}
	op, ok := deleteOps(ed, from, to)
	if !ok {
		return nil
	}
	return cursor.Edit(from, op)
}

// deleteOps converts a selectable range to a model-offset delete. Ranges
// that cross block boundaries are refused here rather than producing a
// structural error downstream.
func deleteOps(ed *editor.Editor, from, to int) (cursor.Op, bool) {
	modelFrom, err := ed.Render().ModelOffset(from)
	if err != nil {
		return nil, false
	}
	modelTo, err := ed.Render().ModelOffset(to)
	if err != nil {
		// The range's exclusive end may sit one past the last caret
		// slot; trim it to the last position.
		if to == ed.Render().SelectableSize() {
			modelTo, err = ed.Render().ModelOffset(to - 1)
			if err != nil {
				return nil, false
			}
			modelTo++
		} else {
			return nil, false
		}
	}
	if modelTo-modelFrom != to-from {
		// Delimiters inside the range mean it spans structure.
		return nil, false
	}
	return cursor.DeleteText{From: modelFrom, To: modelTo}, true
}
