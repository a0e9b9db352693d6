// Package layout flows the render tree into lines and pages.
//
// The layout tree re-segments render content: word boxes are packed into
// lines bounded by the page content width, lines are packed into pages
// bounded by the content height, and the original block/inline shape is
// discarded. The tree is rebuilt wholesale on every pass; line and page
// boundaries can shift non-locally on any edit, so there is no incremental
// diffing.
package layout

import (
	"github.com/pstuifzand/foliate/internal/render"
)

// Geometry holds the page dimensions and paddings, in terminal cells.
type Geometry struct {
	PageWidth     int
	PageHeight    int
	PaddingTop    int
	PaddingBottom int
	PaddingLeft   int
	PaddingRight  int
}

// ContentWidth is the horizontal space available to a line.
func (g Geometry) ContentWidth() int {
	return g.PageWidth - g.PaddingLeft - g.PaddingRight
}

// ContentHeight is the vertical space available to a page.
func (g Geometry) ContentHeight() int {
	return g.PageHeight - g.PaddingTop - g.PaddingBottom
}

// Document is the root of the layout tree.
type Document struct {
	geo   Geometry
	pages []*Page
	size  int
}

// Page holds the lines that fit one page's content height.
type Page struct {
	doc   *Document
	index int
	lines []*Line
	size  int
}

// Line holds the word boxes that fit one line's content width.
type Line struct {
	page   *Page
	index  int
	boxes  []*Box
	size   int
	width  int
	height int
}

// Box is one unbreakable word placed on a line. An end-of-block box is the
// zero-width caret slot closing a paragraph.
type Box struct {
	line       *Line
	index      int
	Text       string
	Width      int
	Style      string
	EndOfBlock bool
	size       int
}

// Flow builds the layout tree for a derived document: first greedy
// line-breaking per block, then greedy pagination over the flat line
// sequence.
func Flow(doc *render.DocBox, geo Geometry) *Document {
	lines := breakLines(doc, geo.ContentWidth())
	d := &Document{geo: geo}
	d.pages = paginate(d, lines, geo.ContentHeight())
	for _, p := range d.pages {
		d.size += p.size
	}
	return d
}

// breakLines packs each block's word boxes into lines. A block always
// starts a fresh line; a box moves to the next line only when it would
// overflow the limit (strictly greater, so an exact fill stays put); a box
// wider than the whole line still gets a line of its own.
func breakLines(doc *render.DocBox, limit int) []*Line {
	var lines []*Line
	for _, block := range doc.Blocks() {
		line := newLine()
		for _, in := range block.Inlines() {
			for _, a := range in.Atomics() {
				if len(line.boxes) > 0 && line.width+a.Width > limit {
					lines = append(lines, line)
					line = newLine()
				}
				line.place(&Box{
					Text:       a.Text,
					Width:      a.Width,
					Style:      in.Style,
					EndOfBlock: a.EndOfBlock,
					size:       a.SelectableSize(),
				})
			}
		}
		if len(line.boxes) > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}

// paginate packs lines into pages by cumulative height. A page always
// holds at least one line, even one that alone overflows the content
// height.
func paginate(d *Document, lines []*Line, limit int) []*Page {
	var pages []*Page
	page := &Page{doc: d}
	height := 0
	for _, line := range lines {
		if len(page.lines) > 0 && height+line.height > limit {
			pages = append(pages, page)
			page = &Page{doc: d}
			height = 0
		}
		line.page = page
		line.index = len(page.lines)
		page.lines = append(page.lines, line)
		page.size += line.size
		height += line.height
	}
	if len(page.lines) > 0 {
		pages = append(pages, page)
	}
	for i, p := range pages {
		p.index = i
	}
	return pages
}

func newLine() *Line {
	return &Line{height: 1}
}

func (l *Line) place(b *Box) {
	b.line = l
	b.index = len(l.boxes)
	l.boxes = append(l.boxes, b)
	l.size += b.size
	l.width += b.Width
}

// Pages returns the document's pages in order.
func (d *Document) Pages() []*Page { return d.pages }

// Size is the number of selectable positions the document covers.
func (d *Document) Size() int { return d.size }

// Geometry returns the page geometry the document was flowed with.
func (d *Document) Geometry() Geometry { return d.geo }

// Lines returns the page's lines in order.
func (p *Page) Lines() []*Line { return p.lines }

// Size is the selectable span the page covers.
func (p *Page) Size() int { return p.size }

// Height is the summed height of the page's lines.
func (p *Page) Height() int {
	h := 0
	for _, l := range p.lines {
		h += l.height
	}
	return h
}

// Boxes returns the line's boxes in order.
func (l *Line) Boxes() []*Box { return l.boxes }

// Size is the selectable span the line covers.
func (l *Line) Size() int { return l.size }

// Width is the summed width of the line's boxes.
func (l *Line) Width() int { return l.width }

// Height is the line's height in cells.
func (l *Line) Height() int { return l.height }

// Size is the selectable span the box covers.
func (b *Box) Size() int { return b.size }

// Line returns the line the box was placed on.
func (b *Box) Line() *Line { return b.line }
