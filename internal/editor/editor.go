// Package editor ties the model, render and layout trees together and
// applies transformations to them atomically.
package editor

import (
	"fmt"

	"github.com/pstuifzand/foliate/internal/cursor"
	"github.com/pstuifzand/foliate/internal/layout"
	"github.com/pstuifzand/foliate/internal/model"
	"github.com/pstuifzand/foliate/internal/render"
)

// Editor owns the three derived trees and the cursor. It is single-writer
// state: callers never mutate the trees directly, every change goes
// through Apply.
type Editor struct {
	doc      *model.Doc
	registry *render.Registry
	geo      layout.Geometry

	derived *render.DocBox
	flowed  *layout.Document

	cur         *cursor.Cursor
	subscribers []func()
}

// New builds an editor for a document, deriving the render and layout
// trees immediately. The registry must already hold a definition for
// every node kind the document uses.
func New(doc *model.Doc, registry *render.Registry, geo layout.Geometry) (*Editor, error) {
	ed := &Editor{doc: doc, registry: registry, geo: geo}
	if err := ed.derive(); err != nil {
		return nil, err
	}
	return ed, nil
}

func (ed *Editor) derive() error {
	derived, err := ed.registry.BuildDoc(ed.doc)
	if err != nil {
		return fmt.Errorf("derive render tree: %w", err)
	}
	ed.derived = derived
	ed.flowed = layout.Flow(derived, ed.geo)
	return nil
}

// Doc returns the model tree.
func (ed *Editor) Doc() *model.Doc { return ed.doc }

// Render returns the derived render tree.
func (ed *Editor) Render() *render.DocBox { return ed.derived }

// Layout returns the flowed layout tree.
func (ed *Editor) Layout() *layout.Document { return ed.flowed }

// Cursor returns the current cursor, or nil when the document has no
// selection (unfocused).
func (ed *Editor) Cursor() *cursor.Cursor { return ed.cur }

// Geometry returns the page geometry in use.
func (ed *Editor) Geometry() layout.Geometry { return ed.geo }

// Focus creates a caret at the start of the document. Applying a
// transformation before Focus is an error.
func (ed *Editor) Focus() {
	if ed.cur == nil {
		ed.cur = cursor.New(0)
	}
}

// Blur drops the selection.
func (ed *Editor) Blur() {
	ed.cur = nil
}

// Subscribe registers a callback invoked after every successful layout
// change.
func (ed *Editor) Subscribe(fn func()) {
	ed.subscribers = append(ed.subscribers, fn)
}

// Apply runs a transformation: content operations against the model, a
// full re-derivation of render and layout, then the cursor update. It is
// atomic: when any step fails the model is restored from a snapshot and
// the derived trees keep their last-known-good state.
func (ed *Editor) Apply(tf *cursor.Transformation) error {
	if ed.cur == nil {
		return fmt.Errorf("apply transformation: no active cursor: %w", model.ErrStructuralViolation)
	}

	if len(tf.Ops) > 0 {
		snapshot := ed.doc.Clone().(*model.Doc)
		for _, op := range tf.Ops {
			if err := op.Apply(ed.doc); err != nil {
				ed.doc = snapshot
				return fmt.Errorf("apply operation: %w", err)
			}
		}
		if err := ed.derive(); err != nil {
			ed.doc = snapshot
			if derr := ed.derive(); derr != nil {
				// The snapshot predates the failed edit, so deriving it
				// again cannot fail differently; still, report the
				// original error with the rollback failure noted.
				return fmt.Errorf("derive after edit (rollback derive failed: %v): %w", derr, err)
			}
			return err
		}
	}

	ed.moveCursor(tf)
	for _, fn := range ed.subscribers {
		fn()
	}
	return nil
}

func (ed *Editor) moveCursor(tf *cursor.Transformation) {
	head := ed.clamp(tf.Head)
	anchor := head
	if tf.Anchor >= 0 {
		anchor = ed.clamp(tf.Anchor)
	}
	ed.cur.Head = head
	ed.cur.Anchor = anchor
	if !tf.KeepLeftLock {
		ed.cur.LeftLock = ed.flowed.ColumnOf(head)
	}
}

// clamp keeps navigation inside the valid caret range. Out-of-range
// navigation is a no-op concern, not an error: offsets are clamped before
// they ever reach the mapping layer.
func (ed *Editor) clamp(offset int) int {
	if offset < 0 {
		return 0
	}
	if last := ed.flowed.Size() - 1; offset > last {
		if last < 0 {
			return 0
		}
		return last
	}
	return offset
}
