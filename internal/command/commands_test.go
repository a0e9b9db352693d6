package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/foliate/internal/cursor"
	"github.com/pstuifzand/foliate/internal/editor"
	"github.com/pstuifzand/foliate/internal/layout"
	"github.com/pstuifzand/foliate/internal/model"
	"github.com/pstuifzand/foliate/internal/render"
)

func newEditor(t *testing.T, contentWidth int, blocks ...string) *editor.Editor {
	t.Helper()
	doc := model.NewDoc()
	for _, text := range blocks {
		p := model.NewParagraph()
		p.AppendChild(model.NewText(text))
		doc.AppendChild(p)
	}
	geo := layout.Geometry{
		PageWidth: contentWidth + 2, PageHeight: 42,
		PaddingTop: 1, PaddingBottom: 1, PaddingLeft: 1, PaddingRight: 1,
	}
	ed, err := editor.New(doc, render.Default(), geo)
	require.NoError(t, err)
	ed.Focus()
	return ed
}

func apply(t *testing.T, ed *editor.Editor, h Handler) {
	t.Helper()
	tf := h(ed)
	require.NotNil(t, tf)
	require.NoError(t, ed.Apply(tf))
}

func TestMoveForwardByWordScenario(t *testing.T) {
	// Caret at 3 on "Hello": forward-by-word lands on 5, the end of the
	// word; repeating at the end of the document is a no-op.
	ed := newEditor(t, 40, "Hello")
	require.NoError(t, ed.Apply(cursor.Move(3)))

	apply(t, ed, MoveForwardByWord)
	assert.Equal(t, 5, ed.Cursor().Head)
	assert.Equal(t, 5, ed.Cursor().Anchor)

	apply(t, ed, MoveForwardByWord)
	assert.Equal(t, 5, ed.Cursor().Head)
}

func TestSelectAllScenario(t *testing.T) {
	// Two blocks, "Hello wor" and nothing else: content size 10 selects
	// {anchor 0, head 9}.
	ed := newEditor(t, 40, "Hello wor")
	require.Equal(t, 10, ed.Layout().Size())

	apply(t, ed, SelectAll)
	assert.Equal(t, 0, ed.Cursor().Anchor)
	assert.Equal(t, 9, ed.Cursor().Head)
}

func TestMoveCollapsesRangeTowardTravel(t *testing.T) {
	ed := newEditor(t, 40, "Hello world")
	require.NoError(t, ed.Apply(cursor.MoveTo(8, 2)))

	// Forward move lands on the far boundary, not head+1.
	apply(t, ed, MoveForward)
	assert.Equal(t, 8, ed.Cursor().Head)
	assert.True(t, ed.Cursor().IsCaret())

	require.NoError(t, ed.Apply(cursor.MoveTo(8, 2)))
	apply(t, ed, MoveBackward)
	assert.Equal(t, 2, ed.Cursor().Head)
	assert.True(t, ed.Cursor().IsCaret())
}

func TestMoveByCharacter(t *testing.T) {
	ed := newEditor(t, 40, "Hi")
	apply(t, ed, MoveForward)
	assert.Equal(t, 1, ed.Cursor().Head)
	apply(t, ed, MoveBackward)
	assert.Equal(t, 0, ed.Cursor().Head)
	// Clamped at the document edge.
	apply(t, ed, MoveBackward)
	assert.Equal(t, 0, ed.Cursor().Head)
}

func TestLineCommands(t *testing.T) {
	// Width 6 gives lines "Hello " / "world"+end.
	ed := newEditor(t, 6, "Hello world")
	require.NoError(t, ed.Apply(cursor.Move(8)))

	apply(t, ed, MoveToLineStart)
	assert.Equal(t, 6, ed.Cursor().Head)

	apply(t, ed, MoveToLineEnd)
	assert.Equal(t, 11, ed.Cursor().Head)
}

func TestVerticalMovesUseLeftLock(t *testing.T) {
	// Lines: "Hello " / "world"+end / "Foo"+end.
	ed := newEditor(t, 6, "Hello world", "Foo")
	require.NoError(t, ed.Apply(cursor.Move(4)))
	require.Equal(t, 4, ed.Cursor().LeftLock)

	apply(t, ed, MoveDown)
	assert.Equal(t, 10, ed.Cursor().Head)

	// The short line clamps the caret but keeps the lock at 4.
	apply(t, ed, MoveDown)
	assert.Equal(t, 15, ed.Cursor().Head)
	assert.Equal(t, 4, ed.Cursor().LeftLock)

	// Moving back up restores the locked column.
	apply(t, ed, MoveUp)
	assert.Equal(t, 10, ed.Cursor().Head)
	apply(t, ed, MoveUp)
	assert.Equal(t, 4, ed.Cursor().Head)

	// At the first line vertical movement is a no-op.
	apply(t, ed, MoveUp)
	assert.Equal(t, 4, ed.Cursor().Head)
}

func TestDocumentBounds(t *testing.T) {
	ed := newEditor(t, 40, "Hello world", "Foo")
	apply(t, ed, MoveToDocumentEnd)
	assert.Equal(t, ed.Layout().Size()-1, ed.Cursor().Head)
	apply(t, ed, MoveToDocumentStart)
	assert.Equal(t, 0, ed.Cursor().Head)
}

func TestExtendCommands(t *testing.T) {
	ed := newEditor(t, 40, "Hello world")

	apply(t, ed, ExtendForwardByWord)
	c := ed.Cursor()
	assert.Equal(t, 0, c.Anchor)
	assert.Equal(t, 6, c.Head)

	apply(t, ed, ExtendForward)
	assert.Equal(t, 7, ed.Cursor().Head)
	assert.Equal(t, 0, ed.Cursor().Anchor)

	apply(t, ed, ExtendBackwardByWord)
	assert.Equal(t, 6, ed.Cursor().Head)

	apply(t, ed, ExtendToLineEnd)
	assert.Equal(t, 11, ed.Cursor().Head)
	assert.Equal(t, 0, ed.Cursor().Anchor)
}

func TestExtendVertical(t *testing.T) {
	ed := newEditor(t, 6, "Hello world")
	require.NoError(t, ed.Apply(cursor.Move(2)))

	apply(t, ed, ExtendDown)
	c := ed.Cursor()
	assert.Equal(t, 2, c.Anchor)
	assert.Equal(t, 8, c.Head)

	apply(t, ed, ExtendUp)
	assert.Equal(t, 2, ed.Cursor().Head)
	assert.Equal(t, 2, ed.Cursor().Anchor)
}

func TestInsertTextAtCaret(t *testing.T) {
	ed := newEditor(t, 40, "Helo")
	require.NoError(t, ed.Apply(cursor.Move(2)))

	apply(t, ed, InsertText("l"))
	leaf := ed.Doc().Children()[0].(*model.Paragraph).Children()[0].(*model.Text)
	assert.Equal(t, "Hello", leaf.Content())
	assert.Equal(t, 3, ed.Cursor().Head)
}

func TestInsertTextReplacesSelection(t *testing.T) {
	ed := newEditor(t, 40, "Hxxxo")
	require.NoError(t, ed.Apply(cursor.MoveTo(4, 1)))

	apply(t, ed, InsertText("ell"))
	leaf := ed.Doc().Children()[0].(*model.Paragraph).Children()[0].(*model.Text)
	assert.Equal(t, "Hello", leaf.Content())
	assert.Equal(t, 4, ed.Cursor().Head)
}

func TestDeleteBackward(t *testing.T) {
	ed := newEditor(t, 40, "Hello")
	require.NoError(t, ed.Apply(cursor.Move(5)))

	apply(t, ed, DeleteBackward)
	leaf := ed.Doc().Children()[0].(*model.Paragraph).Children()[0].(*model.Text)
	assert.Equal(t, "Hell", leaf.Content())
	assert.Equal(t, 4, ed.Cursor().Head)

	// At the start of the document backspace does not apply.
	require.NoError(t, ed.Apply(cursor.Move(0)))
	assert.Nil(t, DeleteBackward(ed))
}

func TestDeleteForward(t *testing.T) {
	ed := newEditor(t, 40, "Hello")

	apply(t, ed, DeleteForward)
	leaf := ed.Doc().Children()[0].(*model.Paragraph).Children()[0].(*model.Text)
	assert.Equal(t, "ello", leaf.Content())
	assert.Equal(t, 0, ed.Cursor().Head)

	// At the last caret slot there is nothing ahead to delete.
	require.NoError(t, ed.Apply(cursor.Move(4)))
	assert.Nil(t, DeleteForward(ed))
}

func TestBackspaceAtBlockStartDoesNotApply(t *testing.T) {
	ed := newEditor(t, 40, "Hello", "Foo")
	require.NoError(t, ed.Apply(cursor.Move(6))) // 'F'
	assert.Nil(t, DeleteBackward(ed))
}
