package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/pstuifzand/foliate/internal/model"
)

// ExportToMarkdown exports a document to a markdown file. Paragraphs
// become blank-line separated blocks; styled spans are emphasized.
func ExportToMarkdown(doc *model.Doc, filePath string) error {
	content := Markdown(doc)
	if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write markdown file: %w", err)
	}

	return nil
}

// Markdown renders a document as markdown text.
func Markdown(doc *model.Doc) string {
	var blocks []string
	for _, child := range doc.Children() {
		text := blockAsMarkdown(child)
		if strings.TrimSpace(text) == "" {
			continue
		}
		blocks = append(blocks, text)
	}
	return strings.Join(blocks, "\n\n") + "\n"
}

func blockAsMarkdown(n model.Node) string {
	var sb strings.Builder
	writeInline(&sb, n)
	return sb.String()
}

func writeInline(sb *strings.Builder, n model.Node) {
	switch v := n.(type) {
	case *model.Text:
		sb.WriteString(v.Content())
	case *model.Span:
		sb.WriteString("*")
		for _, child := range v.Children() {
			writeInline(sb, child)
		}
		sb.WriteString("*")
	default:
		for _, child := range n.Children() {
			writeInline(sb, child)
		}
	}
}
