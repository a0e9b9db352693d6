package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pstuifzand/foliate/internal/model"
)

func TestExportToMarkdown(t *testing.T) {
	doc := model.NewDoc()

	p1 := model.NewParagraph()
	p1.AppendChild(model.NewText("Hello world"))
	doc.AppendChild(p1)

	p2 := model.NewParagraph()
	p2.AppendChild(model.NewText("Plain and "))
	span := model.NewSpan("emphasis")
	span.AppendChild(model.NewText("styled"))
	p2.AppendChild(span)
	p2.AppendChild(model.NewText(" text"))
	doc.AppendChild(p2)

	tempDir := t.TempDir()
	outputFile := filepath.Join(tempDir, "test_output.md")

	err := ExportToMarkdown(doc, outputFile)
	if err != nil {
		t.Fatalf("ExportToMarkdown failed: %v", err)
	}

	content, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	expectedContent := `Hello world

Plain and *styled* text
`

	if string(content) != expectedContent {
		t.Errorf("Output mismatch.\nExpected:\n%s\n\nGot:\n%s", expectedContent, string(content))
	}
}

func TestExportToMarkdownSkipsEmptyParagraphs(t *testing.T) {
	doc := model.NewDoc()

	p1 := model.NewParagraph()
	p1.AppendChild(model.NewText("First"))
	doc.AppendChild(p1)

	doc.AppendChild(model.NewParagraph())

	p3 := model.NewParagraph()
	p3.AppendChild(model.NewText("Second"))
	doc.AppendChild(p3)

	tempDir := t.TempDir()
	outputFile := filepath.Join(tempDir, "test_empty.md")

	err := ExportToMarkdown(doc, outputFile)
	if err != nil {
		t.Fatalf("ExportToMarkdown failed: %v", err)
	}

	content, err := os.ReadFile(outputFile)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}

	expectedContent := `First

Second
`

	if string(content) != expectedContent {
		t.Errorf("Output mismatch.\nExpected:\n%s\n\nGot:\n%s", expectedContent, string(content))
	}
}

func TestMarkdownNestedSpans(t *testing.T) {
	doc := model.NewDoc()

	p := model.NewParagraph()
	outer := model.NewSpan("emphasis")
	outer.AppendChild(model.NewText("outer "))
	inner := model.NewSpan("strong")
	inner.AppendChild(model.NewText("inner"))
	outer.AppendChild(inner)
	p.AppendChild(outer)
	doc.AppendChild(p)

	got := Markdown(doc)
	want := "*outer *inner**\n"
	if got != want {
		t.Errorf("Markdown() = %q, want %q", got, want)
	}
}
