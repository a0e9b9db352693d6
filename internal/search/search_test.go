package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pstuifzand/foliate/internal/model"
	"github.com/pstuifzand/foliate/internal/render"
)

func renderDoc(t *testing.T, blocks ...string) *render.DocBox {
	t.Helper()
	doc := model.NewDoc()
	for _, text := range blocks {
		p := model.NewParagraph()
		p.AppendChild(model.NewText(text))
		doc.AppendChild(p)
	}
	rendered, err := render.Default().BuildDoc(doc)
	require.NoError(t, err)
	return rendered
}

func TestFindReturnsSelectableOffsets(t *testing.T) {
	// Block starts: "Hello world" at 0 (size 12), "world wide" at 12.
	doc := renderDoc(t, "Hello world", "world wide")

	matches := Find(doc, "world")
	require.Len(t, matches, 2)

	assert.Equal(t, Match{Start: 6, End: 11, Block: 0}, matches[0])
	assert.Equal(t, Match{Start: 12, End: 17, Block: 1}, matches[1])
}

func TestFindIsCaseInsensitive(t *testing.T) {
	doc := renderDoc(t, "Hello World")

	matches := Find(doc, "hello")
	require.Len(t, matches, 1)
	assert.Equal(t, 0, matches[0].Start)
}

func TestFindEmptyQuery(t *testing.T) {
	doc := renderDoc(t, "Hello")
	assert.Empty(t, Find(doc, ""))
}

func TestFindNoMatch(t *testing.T) {
	doc := renderDoc(t, "Hello world")
	assert.Empty(t, Find(doc, "zebra"))
}

func TestFindOverlappingBlocksKeepDocumentOrder(t *testing.T) {
	doc := renderDoc(t, "aa aa")

	matches := Find(doc, "aa")
	require.Len(t, matches, 2)
	assert.Less(t, matches[0].Start, matches[1].Start)
}

func TestRankBlocks(t *testing.T) {
	doc := renderDoc(t, "Hello world", "Something else", "held")

	ranks := RankBlocks(doc, "hld")
	require.NotEmpty(t, ranks)

	// The closest block comes first.
	assert.Equal(t, "held", ranks[0].Text)
	for _, r := range ranks {
		assert.NotEqual(t, "Something else", r.Text)
	}
}

func TestNextWrapsAround(t *testing.T) {
	doc := renderDoc(t, "aa bb aa")
	matches := Find(doc, "aa")
	require.Len(t, matches, 2)

	m, ok := Next(matches, 0)
	require.True(t, ok)
	assert.Equal(t, 0, m.Start)

	m, ok = Next(matches, 1)
	require.True(t, ok)
	assert.Equal(t, 6, m.Start)

	// Past the last match, wrap to the first.
	m, ok = Next(matches, 7)
	require.True(t, ok)
	assert.Equal(t, 0, m.Start)
}

func TestPreviousWrapsAround(t *testing.T) {
	doc := renderDoc(t, "aa bb aa")
	matches := Find(doc, "aa")
	require.Len(t, matches, 2)

	m, ok := Previous(matches, 6)
	require.True(t, ok)
	assert.Equal(t, 0, m.Start)

	// Before the first match, wrap to the last.
	m, ok = Previous(matches, 0)
	require.True(t, ok)
	assert.Equal(t, 6, m.Start)
}

func TestNextPreviousEmpty(t *testing.T) {
	_, ok := Next(nil, 0)
	assert.False(t, ok)
	_, ok = Previous(nil, 0)
	assert.False(t, ok)
}

func TestBestBlockJumpsToClosestBlock(t *testing.T) {
	// Block starts: "the quick brown fox" at 0 (size 20), "held the line" at 20.
	doc := renderDoc(t, "the quick brown fox", "held the line")

	start, ok := BestBlock(doc, "hld")
	require.True(t, ok)
	assert.Equal(t, 20, start)
}

func TestBestBlockNoMatch(t *testing.T) {
	doc := renderDoc(t, "Hello world")

	_, ok := BestBlock(doc, "zzzz")
	assert.False(t, ok)
}

func TestBestBlockEmptyQuery(t *testing.T) {
	doc := renderDoc(t, "Hello world")

	_, ok := BestBlock(doc, "")
	assert.False(t, ok)
}
