package layout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/foliate/internal/model"
	"github.com/pstuifzand/foliate/internal/render"
)

func deriveDoc(t *testing.T, blocks ...string) *render.DocBox {
	t.Helper()
	doc := model.NewDoc()
	for _, text := range blocks {
		p := model.NewParagraph()
		p.AppendChild(model.NewText(text))
		doc.AppendChild(p)
	}
	d, err := render.Default().BuildDoc(doc)
	require.NoError(t, err)
	return d
}

func geometry(contentWidth, contentHeight int) Geometry {
	return Geometry{
		PageWidth:     contentWidth + 2,
		PageHeight:    contentHeight + 2,
		PaddingTop:    1,
		PaddingBottom: 1,
		PaddingLeft:   1,
		PaddingRight:  1,
	}
}

func lineTexts(d *Document) []string {
	var texts []string
	for _, page := range d.Pages() {
		for _, line := range page.Lines() {
			text := ""
			for _, box := range line.Boxes() {
				text += box.Text
			}
			texts = append(texts, text)
		}
	}
	return texts
}

func TestLineBreakScenario(t *testing.T) {
	// Width fits exactly "Hello " per line: "world" wraps, "Foo" starts
	// its own block line.
	d := Flow(deriveDoc(t, "Hello world", "Foo"), geometry(6, 40))

	texts := lineTexts(d)
	require.Equal(t, []string{"Hello ", "world", "Foo"}, texts)
}

func TestExactFillStaysOnLine(t *testing.T) {
	// "abc def" tokenizes to "abc " (4) and "def" (3); at width 7 both
	// fit with nothing to spare.
	d := Flow(deriveDoc(t, "abc def"), geometry(7, 40))
	require.Equal(t, []string{"abc def"}, lineTexts(d))

	// One cell narrower and "def" wraps.
	d = Flow(deriveDoc(t, "abc def"), geometry(6, 40))
	require.Equal(t, []string{"abc ", "def"}, lineTexts(d))
}

func TestOverwideBoxGetsItsOwnLine(t *testing.T) {
	d := Flow(deriveDoc(t, "a incomprehensibilities b"), geometry(8, 40))
	texts := lineTexts(d)
	require.Equal(t, []string{"a ", "incomprehensibilities ", "b"}, texts)
}

func TestBlocksNeverShareALine(t *testing.T) {
	d := Flow(deriveDoc(t, "a", "b"), geometry(80, 40))
	require.Len(t, lineTexts(d), 2)
}

func TestLineBreakIdempotence(t *testing.T) {
	doc := deriveDoc(t, "the quick brown fox jumps over the lazy dog", "Foo")
	geo := geometry(10, 40)

	first := Flow(doc, geo)
	second := Flow(doc, geo)

	require.Equal(t, lineTexts(first), lineTexts(second))
	require.Equal(t, first.Size(), second.Size())
	firstLines := allLines(first)
	secondLines := allLines(second)
	require.Equal(t, len(firstLines), len(secondLines))
	for i := range firstLines {
		assert.Equal(t, firstLines[i].Size(), secondLines[i].Size(), "line %d", i)
	}
}

func allLines(d *Document) []*Line {
	var lines []*Line
	for _, p := range d.Pages() {
		lines = append(lines, p.Lines()...)
	}
	return lines
}

func TestPaginationInvariant(t *testing.T) {
	d := Flow(deriveDoc(t,
		"the quick brown fox jumps over the lazy dog",
		"pack my box with five dozen liquor jugs",
		"sphinx of black quartz judge my vow",
	), geometry(10, 3))

	require.Greater(t, len(d.Pages()), 1)
	for i, page := range d.Pages() {
		require.NotEmpty(t, page.Lines(), "page %d", i)
		if page.Height() > 3 {
			assert.Len(t, page.Lines(), 1, "overflowing page %d must hold a single line", i)
		}
	}
}

func TestPageAlwaysHoldsALine(t *testing.T) {
	// Content height 0 still places every line somewhere.
	d := Flow(deriveDoc(t, "a b c"), Geometry{PageWidth: 3, PageHeight: 2, PaddingTop: 1, PaddingBottom: 1})
	total := 0
	for _, p := range d.Pages() {
		require.Len(t, p.Lines(), 1)
		total += len(p.Lines())
	}
	require.Equal(t, len(allLines(d)), total)
}

func TestLocateResolveRoundTrip(t *testing.T) {
	d := Flow(deriveDoc(t, "Hello world", "Foo"), geometry(6, 2))

	for offset := 0; offset < d.Size(); offset++ {
		p, err := d.Locate(offset)
		require.NoError(t, err, "offset %d", offset)
		back, err := ResolvePosition(p.Box, p.BoxOffset)
		require.NoError(t, err, "offset %d", offset)
		assert.Equal(t, offset, back, "offset %d did not round-trip", offset)
	}
}

func TestLocateOutOfRange(t *testing.T) {
	d := Flow(deriveDoc(t, "Hello"), geometry(20, 20))
	if _, err := d.Locate(-1); !errors.Is(err, model.ErrOutOfRange) {
		t.Errorf("Locate(-1) error = %v, want ErrOutOfRange", err)
	}
	if _, err := d.Locate(d.Size()); !errors.Is(err, model.ErrOutOfRange) {
		t.Errorf("Locate(size) error = %v, want ErrOutOfRange", err)
	}
	if _, err := d.LocateTail(0); !errors.Is(err, model.ErrOutOfRange) {
		t.Errorf("LocateTail(0) error = %v, want ErrOutOfRange", err)
	}
}

func TestLocateTailAgreesOnInteriorOffsets(t *testing.T) {
	d := Flow(deriveDoc(t, "Hello world", "Foo"), geometry(6, 2))

	// Off a box edge, head and tail scans land in the same box.
	for offset := 0; offset < d.Size(); offset++ {
		head, err := d.Locate(offset)
		require.NoError(t, err)
		if head.BoxOffset == 0 {
			continue
		}
		tail, err := d.LocateTail(offset)
		require.NoError(t, err)
		assert.Same(t, head.Box, tail.Box, "offset %d", offset)
		assert.Equal(t, head.BoxOffset, tail.BoxOffset, "offset %d", offset)
	}
}

func TestWordBoundaries(t *testing.T) {
	// Boxes: "Hello " [0,6), "world" [6,11), end [11,12), "Foo" [12,15),
	// end [15,16).
	d := Flow(deriveDoc(t, "Hello world", "Foo"), geometry(6, 40))

	assert.Equal(t, 6, d.NextWordBoundary(0))
	assert.Equal(t, 6, d.NextWordBoundary(3))
	assert.Equal(t, 11, d.NextWordBoundary(6))
	assert.Equal(t, 12, d.NextWordBoundary(11))
	assert.Equal(t, 15, d.NextWordBoundary(12))
	// At the last caret position the search does not move.
	assert.Equal(t, 15, d.NextWordBoundary(15))

	assert.Equal(t, 12, d.PreviousWordBoundary(15))
	assert.Equal(t, 11, d.PreviousWordBoundary(12))
	assert.Equal(t, 6, d.PreviousWordBoundary(11))
	assert.Equal(t, 6, d.PreviousWordBoundary(8))
	assert.Equal(t, 0, d.PreviousWordBoundary(6))
	assert.Equal(t, 0, d.PreviousWordBoundary(3))
	assert.Equal(t, 0, d.PreviousWordBoundary(0))
}

func TestWordBoundaryScenario(t *testing.T) {
	// Single block "Hello": forward-by-word from 3 reaches the end slot
	// at 5; repeating there is a no-op.
	d := Flow(deriveDoc(t, "Hello"), geometry(20, 20))
	assert.Equal(t, 5, d.NextWordBoundary(3))
	assert.Equal(t, 5, d.NextWordBoundary(5))
}

func TestBoundarySymmetry(t *testing.T) {
	d := Flow(deriveDoc(t, "the quick brown fox", "pack my box", "x"), geometry(7, 3))

	// Walking forward through every box start and back again returns to
	// the same position, for every start except the document's first.
	for offset := 0; offset < d.Size(); offset++ {
		p, err := d.Locate(offset)
		require.NoError(t, err)
		if p.BoxOffset != 0 || offset == 0 {
			continue
		}
		prev := d.PreviousWordBoundary(offset)
		assert.Equal(t, offset, d.NextWordBoundary(prev), "box start %d", offset)
	}
}

func TestLineBoundaries(t *testing.T) {
	// Lines: "Hello " [0,6), "world"+end [6,12), "Foo"+end [12,16).
	d := Flow(deriveDoc(t, "Hello world", "Foo"), geometry(6, 40))

	assert.Equal(t, 0, d.LineStart(3))
	assert.Equal(t, 5, d.LineEnd(3))
	assert.Equal(t, 6, d.LineStart(8))
	assert.Equal(t, 11, d.LineEnd(8))
	assert.Equal(t, 12, d.LineStart(14))
	assert.Equal(t, 15, d.LineEnd(14))
}

func TestVerticalNavigationTracksColumn(t *testing.T) {
	// Lines: "Hello " / "world"+end / "Foo"+end.
	d := Flow(deriveDoc(t, "Hello world", "Foo"), geometry(6, 40))

	// From column 4 on line 1 down to line 2, column 4.
	assert.Equal(t, 10, d.NextLine(4, 4))
	// Down again to the short line "Foo": clamped to its last caret.
	assert.Equal(t, 15, d.NextLine(10, 4))
	// Back up: the remembered column applies, not the clamped one.
	assert.Equal(t, 10, d.PreviousLine(15, 4))
	assert.Equal(t, 4, d.PreviousLine(10, 4))

	// First and last lines do not move.
	assert.Equal(t, 4, d.PreviousLine(4, 4))
	assert.Equal(t, 15, d.NextLine(15, 4))
}

func TestColumnOf(t *testing.T) {
	d := Flow(deriveDoc(t, "Hello world", "Foo"), geometry(6, 40))
	assert.Equal(t, 0, d.ColumnOf(0))
	assert.Equal(t, 4, d.ColumnOf(4))
	assert.Equal(t, 0, d.ColumnOf(6))
	assert.Equal(t, 5, d.ColumnOf(11))
	assert.Equal(t, 3, d.ColumnOf(15))
}

func TestCrossPageNavigation(t *testing.T) {
	// One line per page: vertical and word navigation must cross page
	// boundaries.
	d := Flow(deriveDoc(t, "aa bb"), geometry(3, 1))
	require.Len(t, d.Pages(), 2)

	assert.Equal(t, 3, d.NextWordBoundary(0))
	assert.Equal(t, 0, d.PreviousWordBoundary(3))
	assert.Equal(t, 4, d.NextLine(1, 1))
	assert.Equal(t, 1, d.PreviousLine(4, 1))
}

func TestEmptyDocumentNavigationIsNoOp(t *testing.T) {
	doc := model.NewDoc()
	derived, err := render.Default().BuildDoc(doc)
	require.NoError(t, err)
	d := Flow(derived, geometry(10, 10))

	assert.Equal(t, 0, d.Size())
	assert.Equal(t, 0, d.NextWordBoundary(0))
	assert.Equal(t, 0, d.PreviousWordBoundary(0))
	assert.Equal(t, 0, d.LineStart(0))
	assert.Equal(t, 0, d.NextLine(0, 0))
}
