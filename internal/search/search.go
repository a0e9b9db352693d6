// Package search finds text in a rendered document. Results carry
// selectable offsets so the caller can move the cursor straight to a
// match.
package search

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/pstuifzand/foliate/internal/render"
)

// Match is one occurrence of the query.
type Match struct {
	// Start is the selectable offset of the first matched position.
	Start int
	// End is the selectable offset one past the last matched position.
	End int
	// Block is the index of the block the match occurs in.
	Block int
}

// BlockRank is a fuzzy-matched block, ordered best first.
type BlockRank struct {
	// Start is the selectable offset of the block's first position.
	Start int
	// Text is the block's visible text.
	Text string
	// Distance is the Levenshtein distance reported by the matcher.
	Distance int
}

// blockText is a block's concatenated word content. Every rune occupies
// one selectable position, so rune index i sits at offset start+i.
type blockText struct {
	start int
	text  string
	index int
}

func blockTexts(doc *render.DocBox) []blockText {
	texts := make([]blockText, 0, len(doc.Blocks()))
	start := 0
	for i, block := range doc.Blocks() {
		var sb strings.Builder
		for _, inline := range block.Inlines() {
			for _, atomic := range inline.Atomics() {
				sb.WriteString(atomic.Text)
			}
		}
		texts = append(texts, blockText{start: start, text: sb.String(), index: i})
		start += block.SelectableSize()
	}
	return texts
}

// Find returns all case-insensitive occurrences of query, in document
// order. An empty query matches nothing.
func Find(doc *render.DocBox, query string) []Match {
	if query == "" {
		return nil
	}

	needle := []rune(strings.ToLower(query))
	var matches []Match

	for _, bt := range blockTexts(doc) {
		haystack := []rune(strings.ToLower(bt.text))
		for i := 0; i+len(needle) <= len(haystack); i++ {
			if !runesEqual(haystack[i:i+len(needle)], needle) {
				continue
			}
			matches = append(matches, Match{
				Start: bt.start + i,
				End:   bt.start + i + len(needle),
				Block: bt.index,
			})
		}
	}

	return matches
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// RankBlocks fuzzy-matches the query against every block and returns
// the matching blocks ordered by distance, best first.
func RankBlocks(doc *render.DocBox, query string) []BlockRank {
	if query == "" {
		return nil
	}

	texts := blockTexts(doc)
	targets := make([]string, len(texts))
	for i, bt := range texts {
		targets[i] = bt.text
	}

	ranks := fuzzy.RankFindNormalizedFold(query, targets)
	sort.Sort(ranks)

	results := make([]BlockRank, 0, len(ranks))
	for _, r := range ranks {
		bt := texts[r.OriginalIndex]
		results = append(results, BlockRank{
			Start:    bt.start,
			Text:     bt.text,
			Distance: r.Distance,
		})
	}
	return results
}

// BestBlock returns the start offset of the block ranked closest to
// the query. The second result is false when no block matches.
func BestBlock(doc *render.DocBox, query string) (int, bool) {
	ranks := RankBlocks(doc, query)
	if len(ranks) == 0 {
		return 0, false
	}
	return ranks[0].Start, true
}

// Next returns the first match at or after the given offset, wrapping
// around to the document start. The second result is false when there
// are no matches at all.
func Next(matches []Match, offset int) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	for _, m := range matches {
		if m.Start >= offset {
			return m, true
		}
	}
	return matches[0], true
}

// Previous returns the last match strictly before the given offset,
// wrapping around to the document end.
func Previous(matches []Match, offset int) (Match, bool) {
	if len(matches) == 0 {
		return Match{}, false
	}
	for i := len(matches) - 1; i >= 0; i-- {
		if matches[i].Start < offset {
			return matches[i], true
		}
	}
	return matches[len(matches)-1], true
}
