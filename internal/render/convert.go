package render

import (
	"fmt"

	"github.com/pstuifzand/foliate/internal/model"
)

// ModelOffset converts a selectable offset into the model offset the
// content operations speak. The two scales walk the tree in lock-step: the
// selectable size locates the child while the model offset accumulates a
// +1 delimiter for every structural level descended into.
//
// The conversion is total and strictly monotonic over
// [0, SelectableSize()): every cursor position maps to exactly one model
// position in [1, ModelSize()-1).
func (d *DocBox) ModelOffset(selectable int) (int, error) {
	if selectable < 0 || selectable >= d.SelectableSize() {
		return 0, outOfRange("selectable offset %d in document of size %d", selectable, d.SelectableSize())
	}
	modelOff := 1 // doc opening delimiter
	for _, block := range d.blocks {
		if selectable < block.SelectableSize() {
			return block.modelOffset(selectable, modelOff)
		}
		selectable -= block.SelectableSize()
		modelOff += block.ModelSize()
	}
	return 0, outOfRange("selectable offset exhausted document blocks")
}

func (b *BlockBox) modelOffset(selectable, base int) (int, error) {
	modelOff := base + 1 // block opening delimiter
	for _, in := range b.inlines {
		if selectable < in.SelectableSize() {
			return in.modelOffset(selectable, modelOff)
		}
		selectable -= in.SelectableSize()
		modelOff += in.ModelSize()
	}
	return 0, outOfRange("selectable offset exhausted block %s", b.modelID)
}

func (i *InlineBox) modelOffset(selectable, base int) (int, error) {
	modelOff := base
	if i.IsSpan {
		modelOff++ // span opening delimiter
	}
	for _, a := range i.atomics {
		if selectable < a.SelectableSize() {
			if a.EndOfBlock {
				// The end-of-block caret slot sits just before the
				// paragraph's closing delimiter.
				return modelOff, nil
			}
			return modelOff + selectable, nil
		}
		selectable -= a.SelectableSize()
		modelOff += a.ModelSize()
	}
	return 0, outOfRange("selectable offset exhausted inline run")
}

func outOfRange(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), model.ErrOutOfRange)
}
