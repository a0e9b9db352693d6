// Package render derives a measured mirror of the content tree.
//
// Every model node maps onto a render box that knows two spans: its
// selectable size (cursor-addressable positions) and its model size
// (positions including structural delimiters). Both are cached and
// invalidated up the ancestor chain when content changes underneath.
package render

// Box is a node in the render tree.
type Box interface {
	Kind() string
	// ModelID is the ID of the model node this box was derived from.
	ModelID() string
	Parent() Box
	Children() []Box
	// SelectableSize is the number of cursor positions this box covers.
	SelectableSize() int
	// ModelSize is the span this box covers in model offsets.
	ModelSize() int
	// Invalidate clears the cached sizes of this box and its ancestors.
	Invalidate()

	setParent(Box)
}

const dirty = -1

type box struct {
	modelID    string
	parent     Box
	selectable int
	modelSpan  int
}

func newBox(modelID string) box {
	return box{modelID: modelID, selectable: dirty, modelSpan: dirty}
}

func (b *box) ModelID() string { return b.modelID }
func (b *box) Parent() Box     { return b.parent }
func (b *box) setParent(p Box) { b.parent = p }

func (b *box) Invalidate() {
	b.selectable = dirty
	b.modelSpan = dirty
	if b.parent != nil {
		b.parent.Invalidate()
	}
}

// DocBox mirrors the document root.
type DocBox struct {
	box
	blocks []*BlockBox
}

// BlockBox mirrors a paragraph. Its children are inline runs; the last run
// always ends with an end-of-block box holding the paragraph's final caret
// slot.
type BlockBox struct {
	box
	inlines []*InlineBox
}

// InlineBox is a run of word boxes sharing one style. A run either mirrors
// a span node or groups consecutive bare text leaves.
type InlineBox struct {
	box
	Style   string
	IsSpan  bool
	atomics []*AtomicBox
}

// AtomicBox is a single unbreakable word, measured in display columns.
// An end-of-block box has no content and zero width but holds one
// selectable position.
type AtomicBox struct {
	box
	Text       string
	Width      int
	EndOfBlock bool
	runes      int
}

func (d *DocBox) Kind() string    { return "doc" }
func (b *BlockBox) Kind() string  { return "paragraph" }
func (i *InlineBox) Kind() string { return "inline" }
func (a *AtomicBox) Kind() string { return "atomic" }

func (d *DocBox) Children() []Box {
	children := make([]Box, len(d.blocks))
	for i, b := range d.blocks {
		children[i] = b
	}
	return children
}

func (b *BlockBox) Children() []Box {
	children := make([]Box, len(b.inlines))
	for i, in := range b.inlines {
		children[i] = in
	}
	return children
}

func (i *InlineBox) Children() []Box {
	children := make([]Box, len(i.atomics))
	for idx, a := range i.atomics {
		children[idx] = a
	}
	return children
}

func (a *AtomicBox) Children() []Box { return nil }

// Blocks returns the document's block boxes in order.
func (d *DocBox) Blocks() []*BlockBox { return d.blocks }

// Inlines returns the block's inline runs in order.
func (b *BlockBox) Inlines() []*InlineBox { return b.inlines }

// Atomics returns the run's word boxes in order.
func (i *InlineBox) Atomics() []*AtomicBox { return i.atomics }

func (d *DocBox) SelectableSize() int {
	if d.selectable == dirty {
		size := 0
		for _, b := range d.blocks {
			size += b.SelectableSize()
		}
		d.selectable = size
	}
	return d.selectable
}

func (b *BlockBox) SelectableSize() int {
	if b.selectable == dirty {
		size := 0
		for _, in := range b.inlines {
			size += in.SelectableSize()
		}
		b.selectable = size
	}
	return b.selectable
}

func (i *InlineBox) SelectableSize() int {
	if i.selectable == dirty {
		size := 0
		for _, a := range i.atomics {
			size += a.SelectableSize()
		}
		i.selectable = size
	}
	return i.selectable
}

func (a *AtomicBox) SelectableSize() int {
	if a.EndOfBlock {
		return 1
	}
	return a.runes
}

func (d *DocBox) ModelSize() int {
	if d.modelSpan == dirty {
		size := 2
		for _, b := range d.blocks {
			size += b.ModelSize()
		}
		d.modelSpan = size
	}
	return d.modelSpan
}

func (b *BlockBox) ModelSize() int {
	if b.modelSpan == dirty {
		size := 2
		for _, in := range b.inlines {
			size += in.ModelSize()
		}
		b.modelSpan = size
	}
	return b.modelSpan
}

func (i *InlineBox) ModelSize() int {
	if i.modelSpan == dirty {
		size := 0
		if i.IsSpan {
			size = 2
		}
		for _, a := range i.atomics {
			size += a.ModelSize()
		}
		i.modelSpan = size
	}
	return i.modelSpan
}

func (a *AtomicBox) ModelSize() int {
	if a.EndOfBlock {
		return 0
	}
	return a.runes
}

func (d *DocBox) setBlocks(blocks []*BlockBox) {
	for _, b := range blocks {
		b.setParent(d)
	}
	d.blocks = blocks
	d.Invalidate()
}

func (b *BlockBox) setInlines(inlines []*InlineBox) {
	for _, in := range inlines {
		in.setParent(b)
	}
	b.inlines = inlines
	b.Invalidate()
}

func (i *InlineBox) setAtomics(atomics []*AtomicBox) {
	for _, a := range atomics {
		a.setParent(i)
	}
	i.atomics = atomics
	i.Invalidate()
}
