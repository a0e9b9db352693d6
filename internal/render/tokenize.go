package render

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// tokenize splits text into unbreakable word boxes. Trailing whitespace
// stays attached to the word before it, so a line break never strands a
// bare space at the start of a line.
func tokenize(text string) []*AtomicBox {
	var atomics []*AtomicBox
	state := -1
	var word, rest string
	rest = text
	for len(rest) > 0 {
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if isWhitespace(word) && len(atomics) > 0 {
			last := atomics[len(atomics)-1]
			last.Text += word
			last.Width = runewidth.StringWidth(last.Text)
			last.runes = len([]rune(last.Text))
			continue
		}
		atomics = append(atomics, newAtomic(word))
	}
	return atomics
}

func newAtomic(text string) *AtomicBox {
	return &AtomicBox{
		box:   newBox(""),
		Text:  text,
		Width: runewidth.StringWidth(text),
		runes: len([]rune(text)),
	}
}

func newEndOfBlock() *AtomicBox {
	return &AtomicBox{box: newBox(""), EndOfBlock: true}
}

func isWhitespace(s string) bool {
	for _, r := range s {
		if r != ' ' && r != '\t' && r != '\n' && r != '\r' {
			return false
		}
	}
	return len(s) > 0
}
