package import_parser

import (
	"strings"

	"github.com/pstuifzand/foliate/internal/model"
)

// MarkdownParser imports markdown files
type MarkdownParser struct{}

func (p *MarkdownParser) Name() string {
	return "Markdown"
}

// Parse converts markdown content to a document. Blank lines separate
// paragraphs, headers become plain paragraphs, and *emphasized* runs
// become styled spans.
func (p *MarkdownParser) Parse(content string) (*model.Doc, error) {
	doc := model.NewDoc()

	for _, block := range splitBlocks(content) {
		block = stripHeaderMarker(block)
		block = stripListMarker(block)
		if block == "" {
			continue
		}

		para := model.NewParagraph()
		appendInline(para, block)
		doc.AppendChild(para)
	}

	if len(doc.Children()) == 0 {
		doc.AppendChild(model.NewParagraph())
	}

	return doc, nil
}

// appendInline splits a block on *emphasis* markers and appends the
// resulting text and span nodes to the paragraph.
func appendInline(para *model.Paragraph, block string) {
	runes := []rune(block)
	plainStart := 0

	for i := 0; i < len(runes); i++ {
		if runes[i] != '*' {
			continue
		}

		end := closingMarker(runes, i)
		if end < 0 {
			continue
		}

		if i > plainStart {
			para.AppendChild(model.NewText(string(runes[plainStart:i])))
		}

		span := model.NewSpan("emphasis")
		span.AppendChild(model.NewText(string(runes[i+1 : end])))
		para.AppendChild(span)

		i = end
		plainStart = end + 1
	}

	if plainStart < len(runes) {
		para.AppendChild(model.NewText(string(runes[plainStart:])))
	}
}

// closingMarker finds the matching '*' for an opening marker at open,
// requiring non-empty content between the two. Returns -1 when the
// marker is unbalanced.
func closingMarker(runes []rune, open int) int {
	for i := open + 1; i < len(runes); i++ {
		if runes[i] == '*' {
			if i == open+1 {
				return -1
			}
			return i
		}
	}
	return -1
}

func stripHeaderMarker(block string) string {
	trimmed := strings.TrimLeft(block, "#")
	if trimmed == block {
		return block
	}
	return strings.TrimSpace(trimmed)
}

func stripListMarker(block string) string {
	for _, marker := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(block, marker) {
			return strings.TrimSpace(block[len(marker):])
		}
	}
	return block
}
