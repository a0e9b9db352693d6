package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/pstuifzand/foliate/internal/editor"
	"github.com/pstuifzand/foliate/internal/layout"
	"github.com/pstuifzand/foliate/internal/search"
)

// DocumentView paints one page of a flowed document and translates
// pointer positions back to selectable offsets.
type DocumentView struct {
	screen *Screen

	// page is the index of the page currently shown.
	page int

	// originX, originY is the screen cell of the page's top-left corner,
	// recomputed on every render.
	originX int
	originY int
}

// NewDocumentView creates a view drawing on the given screen.
func NewDocumentView(screen *Screen) *DocumentView {
	return &DocumentView{screen: screen}
}

// Page returns the index of the page currently shown.
func (v *DocumentView) Page() int { return v.page }

// ShowPage switches to a page by index, clamped to the document.
func (v *DocumentView) ShowPage(doc *layout.Document, page int) {
	if page < 0 {
		page = 0
	}
	if last := len(doc.Pages()) - 1; page > last {
		page = last
	}
	v.page = page
}

// FollowCursor flips to the page containing the cursor head.
func (v *DocumentView) FollowCursor(ed *editor.Editor) {
	c := ed.Cursor()
	if c == nil {
		return
	}
	pos, err := ed.Layout().Locate(c.Head)
	if err != nil {
		return
	}
	for i, page := range ed.Layout().Pages() {
		if page == pos.Page {
			v.page = i
			return
		}
	}
}

// Render paints the current page centered on the screen, with the
// selection, caret, and search matches highlighted.
func (v *DocumentView) Render(ed *editor.Editor, matches []search.Match) {
	doc := ed.Layout()
	geo := doc.Geometry()
	v.ShowPage(doc, v.page)

	screenW, screenH := v.screen.Size()
	v.originX = (screenW - geo.PageWidth) / 2
	if v.originX < 0 {
		v.originX = 0
	}
	v.originY = (screenH - 1 - geo.PageHeight) / 2
	if v.originY < 0 {
		v.originY = 0
	}

	pages := doc.Pages()
	if len(pages) == 0 {
		return
	}
	page := pages[v.page]

	v.paintPaper(geo)
	v.paintLines(ed, page, geo, matches)
	v.paintFooter(geo, v.page, len(pages))
}

// paintPaper fills the page rectangle and draws its border.
func (v *DocumentView) paintPaper(geo layout.Geometry) {
	v.screen.Fill(v.originX, v.originY, geo.PageWidth, geo.PageHeight, v.screen.PageStyle())

	edge := v.screen.PageEdgeStyle()
	for x := v.originX; x < v.originX+geo.PageWidth; x++ {
		v.screen.SetCell(x, v.originY, tcell.RuneHLine, edge)
		v.screen.SetCell(x, v.originY+geo.PageHeight-1, tcell.RuneHLine, edge)
	}
	for y := v.originY; y < v.originY+geo.PageHeight; y++ {
		v.screen.SetCell(v.originX, y, tcell.RuneVLine, edge)
		v.screen.SetCell(v.originX+geo.PageWidth-1, y, tcell.RuneVLine, edge)
	}
	v.screen.SetCell(v.originX, v.originY, tcell.RuneULCorner, edge)
	v.screen.SetCell(v.originX+geo.PageWidth-1, v.originY, tcell.RuneURCorner, edge)
	v.screen.SetCell(v.originX, v.originY+geo.PageHeight-1, tcell.RuneLLCorner, edge)
	v.screen.SetCell(v.originX+geo.PageWidth-1, v.originY+geo.PageHeight-1, tcell.RuneLRCorner, edge)
}

func (v *DocumentView) paintLines(ed *editor.Editor, page *layout.Page, geo layout.Geometry, matches []search.Match) {
	c := ed.Cursor()
	selFrom, selTo := -1, -1
	caret := -1
	if c != nil {
		caret = c.Head
		if !c.IsCaret() {
			selFrom, selTo = c.From(), c.To()
		}
	}

	contentX := v.originX + geo.PaddingLeft
	row := v.originY + geo.PaddingTop

	for _, line := range page.Lines() {
		offset := line.Start()
		col := contentX
		for _, box := range line.Boxes() {
			if box.EndOfBlock {
				if offset == caret {
					v.screen.SetCell(col, row, ' ', v.screen.CaretStyle())
				} else if offset >= selFrom && offset < selTo {
					v.screen.SetCell(col, row, ' ', v.screen.SelectionStyle())
				}
				offset += box.Size()
				continue
			}

			base := v.screen.TextStyle()
			if box.Style != "" {
				base = v.screen.SpanTextStyle()
			}
			for _, r := range box.Text {
				style := base
				if inMatch(matches, offset) {
					style = v.screen.SearchMatchStyle()
				}
				if offset >= selFrom && offset < selTo {
					style = v.screen.SelectionStyle()
				}
				if offset == caret {
					style = v.screen.CaretStyle()
				}
				v.screen.SetCell(col, row, r, style)
				col += RuneWidth(r)
				offset++
			}
		}
		row += line.Height()
	}
}

func (v *DocumentView) paintFooter(geo layout.Geometry, page, total int) {
	label := fmt.Sprintf("%d / %d", page+1, total)
	x := v.originX + (geo.PageWidth-StringWidth(label))/2
	v.screen.DrawString(x, v.originY+geo.PageHeight, label, v.screen.PageNumberStyle())
}

func inMatch(matches []search.Match, offset int) bool {
	for _, m := range matches {
		if offset >= m.Start && offset < m.End {
			return true
		}
	}
	return false
}

// HitTest translates a screen cell to the selectable offset closest to
// it on the current page. The second result is false when the cell lies
// outside the page content.
func (v *DocumentView) HitTest(doc *layout.Document, x, y int) (int, bool) {
	pages := doc.Pages()
	if len(pages) == 0 || v.page >= len(pages) {
		return 0, false
	}
	page := pages[v.page]
	geo := doc.Geometry()

	col := x - v.originX - geo.PaddingLeft
	row := y - v.originY - geo.PaddingTop
	if col < 0 || row < 0 || col >= geo.ContentWidth() {
		return 0, false
	}

	lines := page.Lines()
	height := 0
	for _, line := range lines {
		if row < height+line.Height() {
			local := line.OffsetAtColumn(col)
			offset, err := layout.ResolvePosition(line, local)
			if err != nil {
				return 0, false
			}
			return offset, true
		}
		height += line.Height()
	}
	return 0, false
}
