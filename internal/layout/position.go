package layout

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/pstuifzand/foliate/internal/model"
)

// Node is any layout node addressable by a selectable span: a page, a
// line, or a box. Offsets inside a node are half-open, [Start, Start+Size).
type Node interface {
	// Start is the selectable offset of the node's first position.
	Start() int
	// Size is the selectable span the node covers.
	Size() int
}

// Position identifies the layout box containing a selectable offset.
type Position struct {
	Page      *Page
	Line      *Line
	Box       *Box
	BoxOffset int
}

// Start walks preceding pages.
func (p *Page) Start() int {
	start := 0
	for _, prev := range p.doc.pages[:p.index] {
		start += prev.size
	}
	return start
}

// Start walks preceding lines, then the containing page.
func (l *Line) Start() int {
	start := l.page.Start()
	for _, prev := range l.page.lines[:l.index] {
		start += prev.size
	}
	return start
}

// Start walks preceding boxes, then the containing line.
func (b *Box) Start() int {
	start := b.line.Start()
	for _, prev := range b.line.boxes[:b.index] {
		start += prev.size
	}
	return start
}

// ResolvePosition maps an offset local to a layout node back to a document
// selectable offset. This is the inverse of Locate and the entry point for
// pointer-event resolution: the view reports the page/line/box a click
// landed on plus the local offset inside it.
func ResolvePosition(n Node, local int) (int, error) {
	if local < 0 || local > n.Size() {
		return 0, outOfRange("local offset %d in layout node of size %d", local, n.Size())
	}
	return n.Start() + local, nil
}

// Locate descends page, line, box by cumulative size, scanning forward
// from the head of the document. The returned box satisfies
// Start <= offset < Start+Size.
func (d *Document) Locate(offset int) (Position, error) {
	if offset < 0 || offset >= d.size {
		return Position{}, outOfRange("selectable offset %d in layout of size %d", offset, d.size)
	}
	for _, page := range d.pages {
		if offset < page.size {
			return page.locate(offset)
		}
		offset -= page.size
	}
	return Position{}, outOfRange("selectable offset exhausted pages")
}

func (p *Page) locate(offset int) (Position, error) {
	for _, line := range p.lines {
		if offset < line.size {
			for _, box := range line.boxes {
				if offset < box.size {
					return Position{Page: p, Line: line, Box: box, BoxOffset: offset}, nil
				}
				offset -= box.size
			}
			return Position{}, outOfRange("selectable offset exhausted boxes")
		}
		offset -= line.size
	}
	return Position{}, outOfRange("selectable offset exhausted lines")
}

// LocateTail descends by cumulative size scanning backward from the tail
// of the document. The returned box satisfies Start < offset <= Start+Size,
// which is what backward boundary queries need when the offset sits
// exactly on a box edge.
func (d *Document) LocateTail(offset int) (Position, error) {
	if offset <= 0 || offset > d.size {
		return Position{}, outOfRange("selectable offset %d in layout of size %d (tail scan)", offset, d.size)
	}
	back := d.size - offset
	for i := len(d.pages) - 1; i >= 0; i-- {
		page := d.pages[i]
		if back < page.size {
			return page.locateTail(back)
		}
		back -= page.size
	}
	return Position{}, outOfRange("selectable offset exhausted pages (tail scan)")
}

// locateTail takes the distance from the page's end, exclusive of the
// target position.
func (p *Page) locateTail(back int) (Position, error) {
	for i := len(p.lines) - 1; i >= 0; i-- {
		line := p.lines[i]
		if back < line.size {
			for j := len(line.boxes) - 1; j >= 0; j-- {
				box := line.boxes[j]
				if back < box.size {
					return Position{Page: p, Line: line, Box: box, BoxOffset: box.size - back}, nil
				}
				back -= box.size
			}
			return Position{}, outOfRange("selectable offset exhausted boxes (tail scan)")
		}
		back -= line.size
	}
	return Position{}, outOfRange("selectable offset exhausted lines (tail scan)")
}

// ColumnAt returns the horizontal cell position of a caret local to the
// line, measured from the line's left edge.
func (l *Line) ColumnAt(local int) int {
	col := 0
	for _, box := range l.boxes {
		if box.EndOfBlock {
			if local <= 0 {
				return col
			}
			local -= box.size
			continue
		}
		for _, r := range box.Text {
			if local <= 0 {
				return col
			}
			col += runewidth.RuneWidth(r)
			local--
		}
	}
	return col
}

// OffsetAtColumn returns the caret position local to the line closest to
// the given horizontal cell position. The result stays on the line: it is
// clamped to [0, Size-1].
func (l *Line) OffsetAtColumn(col int) int {
	local := 0
	width := 0
	for _, box := range l.boxes {
		if box.EndOfBlock {
			break
		}
		for _, r := range box.Text {
			rw := runewidth.RuneWidth(r)
			if width+rw > col {
				return local
			}
			width += rw
			local++
		}
	}
	if local > l.size-1 {
		local = l.size - 1
	}
	if local < 0 {
		local = 0
	}
	return local
}

func outOfRange(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), model.ErrOutOfRange)
}
