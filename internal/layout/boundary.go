package layout

// Boundary search for cursor navigation. All variants share one
// escalation: look for a sibling box on the same line, then fall through
// to the adjacent line's edge box, then to the adjacent page. Cross-parent
// siblings are computed on demand; nothing is cached, since the layout
// tree is rebuilt wholesale on every pass. At the edges of the document
// every search degrades to no movement.

// prev returns the line before this one, crossing the page edge.
func (l *Line) prev() *Line {
	if l.index > 0 {
		return l.page.lines[l.index-1]
	}
	if l.page.index > 0 {
		prevPage := l.page.doc.pages[l.page.index-1]
		return prevPage.lines[len(prevPage.lines)-1]
	}
	return nil
}

// next returns the line after this one, crossing the page edge.
func (l *Line) next() *Line {
	if l.index < len(l.page.lines)-1 {
		return l.page.lines[l.index+1]
	}
	if l.page.index < len(l.page.doc.pages)-1 {
		nextPage := l.page.doc.pages[l.page.index+1]
		return nextPage.lines[0]
	}
	return nil
}

// prevCrossParent returns the box before this one at the same depth,
// possibly the last box of the previous line or page.
func (b *Box) prevCrossParent() *Box {
	if b.index > 0 {
		return b.line.boxes[b.index-1]
	}
	if prev := b.line.prev(); prev != nil {
		return prev.boxes[len(prev.boxes)-1]
	}
	return nil
}

// nextCrossParent returns the box after this one at the same depth,
// possibly the first box of the next line or page.
func (b *Box) nextCrossParent() *Box {
	if b.index < len(b.line.boxes)-1 {
		return b.line.boxes[b.index+1]
	}
	if next := b.line.next(); next != nil {
		return next.boxes[0]
	}
	return nil
}

// lastOffset is the highest valid caret position in the document.
func (d *Document) lastOffset() int {
	if d.size == 0 {
		return 0
	}
	return d.size - 1
}

// NextWordBoundary returns the start of the box following the one that
// contains the offset, or the offset unchanged at the end of the document.
func (d *Document) NextWordBoundary(offset int) int {
	if offset >= d.lastOffset() {
		return d.lastOffset()
	}
	p, err := d.Locate(offset)
	if err != nil {
		return offset
	}
	next := p.Box.nextCrossParent()
	if next == nil {
		return offset
	}
	return next.Start()
}

// PreviousWordBoundary returns the start of the box that ends at or spans
// the offset, or the offset unchanged at the start of the document.
func (d *Document) PreviousWordBoundary(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset > d.size {
		offset = d.size
	}
	p, err := d.LocateTail(offset)
	if err != nil {
		return offset
	}
	return p.Box.Start()
}

// LineStart returns the offset of the first caret position on the line
// containing the offset.
func (d *Document) LineStart(offset int) int {
	line := d.lineAt(offset)
	if line == nil {
		return offset
	}
	return line.Start()
}

// LineEnd returns the offset of the last caret position on the line
// containing the offset.
func (d *Document) LineEnd(offset int) int {
	line := d.lineAt(offset)
	if line == nil {
		return offset
	}
	return line.Start() + line.size - 1
}

// PreviousLine returns the caret position on the previous line closest to
// the given column, or the offset unchanged on the first line.
func (d *Document) PreviousLine(offset, column int) int {
	line := d.lineAt(offset)
	if line == nil {
		return offset
	}
	target := line.prev()
	if target == nil {
		return offset
	}
	return target.Start() + target.OffsetAtColumn(column)
}

// NextLine returns the caret position on the next line closest to the
// given column, or the offset unchanged on the last line.
func (d *Document) NextLine(offset, column int) int {
	line := d.lineAt(offset)
	if line == nil {
		return offset
	}
	target := line.next()
	if target == nil {
		return offset
	}
	return target.Start() + target.OffsetAtColumn(column)
}

// ColumnOf returns the horizontal cell position of a caret offset within
// its line.
func (d *Document) ColumnOf(offset int) int {
	line := d.lineAt(offset)
	if line == nil {
		return 0
	}
	return line.ColumnAt(offset - line.Start())
}

func (d *Document) lineAt(offset int) *Line {
	if d.size == 0 {
		return nil
	}
	if offset > d.lastOffset() {
		offset = d.lastOffset()
	}
	if offset < 0 {
		offset = 0
	}
	p, err := d.Locate(offset)
	if err != nil {
		return nil
	}
	return p.Line
}
