package cursor

import (
	"fmt"

	"github.com/pstuifzand/foliate/internal/model"
)

// InsertText inserts text into the leaf containing a model offset.
type InsertText struct {
	At   int
	Text string
}

// DeleteText removes the model offset range [From, To). The range must
// stay inside a single leaf; structural deletion is a separate concern.
type DeleteText struct {
	From int
	To   int
}

func (op InsertText) Apply(doc *model.Doc) error {
	node, local, err := doc.Locate(op.At)
	if err != nil {
		return fmt.Errorf("insert at %d: %w", op.At, err)
	}
	if leaf, ok := node.(*model.Text); ok {
		return leaf.InsertContent(local, op.Text)
	}
	// The offset sits on a closing delimiter: the caret slot at the end
	// of a block converts to the position just before it. Append to the
	// deepest trailing leaf, growing one in an empty paragraph.
	if branch, ok := node.(model.Branch); ok && local == node.ModelSize()-1 {
		if leaf := lastLeaf(branch); leaf != nil {
			content := []rune(leaf.Content())
			return leaf.InsertContent(len(content), op.Text)
		}
		if p, isPara := node.(*model.Paragraph); isPara {
			leaf := model.NewText("")
			p.AppendChild(leaf)
			return leaf.InsertContent(0, op.Text)
		}
	}
	return fmt.Errorf("insert at %d: offset is a structural position in %s: %w",
		op.At, node.Kind(), model.ErrStructuralViolation)
}

func lastLeaf(n model.Node) *model.Text {
	children := n.Children()
	for i := len(children) - 1; i >= 0; i-- {
		if leaf, ok := children[i].(*model.Text); ok {
			return leaf
		}
		if leaf := lastLeaf(children[i]); leaf != nil {
			return leaf
		}
	}
	return nil
}

// AppendBlock adds a new paragraph holding the given text at the end of
// the document.
type AppendBlock struct {
	Text string
}

func (op AppendBlock) Apply(doc *model.Doc) error {
	p := model.NewParagraph()
	if op.Text != "" {
		p.AppendChild(model.NewText(op.Text))
	}
	doc.AppendChild(p)
	return nil
}

func (op DeleteText) Apply(doc *model.Doc) error {
	if op.From > op.To {
		return fmt.Errorf("delete [%d, %d): %w", op.From, op.To, model.ErrOutOfRange)
	}
	if op.From == op.To {
		return nil
	}
	node, local, err := doc.Locate(op.From)
	if err != nil {
		return fmt.Errorf("delete from %d: %w", op.From, err)
	}
	leaf, ok := node.(*model.Text)
	if !ok {
		return fmt.Errorf("delete from %d: offset is a structural position in %s: %w",
			op.From, node.Kind(), model.ErrStructuralViolation)
	}
	span := op.To - op.From
	if local+span > len([]rune(leaf.Content())) {
		return fmt.Errorf("delete [%d, %d): range crosses a leaf boundary: %w",
			op.From, op.To, model.ErrOutOfRange)
	}
	return leaf.DeleteContent(local, local+span)
}
