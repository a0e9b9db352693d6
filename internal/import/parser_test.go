package import_parser

import (
	"testing"

	"github.com/pstuifzand/foliate/internal/model"
)

func blockText(n model.Node) string {
	var text string
	var walk func(model.Node)
	walk = func(n model.Node) {
		if t, ok := n.(*model.Text); ok {
			text += t.Content()
			return
		}
		for _, child := range n.Children() {
			walk(child)
		}
	}
	walk(n)
	return text
}

func TestPlainTextParagraphs(t *testing.T) {
	content := "First paragraph\nstill first\n\nSecond paragraph\n"

	doc, err := ImportFile(content, FormatPlainText)
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}

	blocks := doc.Children()
	if len(blocks) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(blocks))
	}
	if got := blockText(blocks[0]); got != "First paragraph still first" {
		t.Errorf("first paragraph = %q", got)
	}
	if got := blockText(blocks[1]); got != "Second paragraph" {
		t.Errorf("second paragraph = %q", got)
	}
}

func TestMarkdownEmphasisBecomesSpan(t *testing.T) {
	doc, err := ImportFile("Plain and *styled* text\n", FormatMarkdown)
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}

	blocks := doc.Children()
	if len(blocks) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(blocks))
	}

	children := blocks[0].Children()
	if len(children) != 3 {
		t.Fatalf("expected 3 inline nodes, got %d", len(children))
	}

	span, ok := children[1].(*model.Span)
	if !ok {
		t.Fatalf("expected middle node to be a span, got %T", children[1])
	}
	if span.Style != "emphasis" {
		t.Errorf("span style = %q, want emphasis", span.Style)
	}
	if got := blockText(span); got != "styled" {
		t.Errorf("span text = %q, want styled", got)
	}
}

func TestMarkdownHeaderAndListMarkers(t *testing.T) {
	content := "# Title\n\n- item one\n"

	doc, err := ImportFile(content, FormatMarkdown)
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}

	blocks := doc.Children()
	if len(blocks) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(blocks))
	}
	if got := blockText(blocks[0]); got != "Title" {
		t.Errorf("header paragraph = %q", got)
	}
	if got := blockText(blocks[1]); got != "item one" {
		t.Errorf("list paragraph = %q", got)
	}
}

func TestMarkdownUnbalancedMarkerStaysLiteral(t *testing.T) {
	doc, err := ImportFile("2 * 3 is 6\n", FormatMarkdown)
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}

	if got := blockText(doc.Children()[0]); got != "2 * 3 is 6" {
		t.Errorf("paragraph = %q, want literal text", got)
	}
}

func TestEmptyInputYieldsEmptyParagraph(t *testing.T) {
	doc, err := ImportFile("", FormatPlainText)
	if err != nil {
		t.Fatalf("ImportFile failed: %v", err)
	}
	if len(doc.Children()) != 1 {
		t.Fatalf("expected a single empty paragraph, got %d blocks", len(doc.Children()))
	}
}

func TestDetectFormat(t *testing.T) {
	if got := DetectFormat("notes.md"); got != FormatMarkdown {
		t.Errorf("DetectFormat(notes.md) = %v", got)
	}
	if got := DetectFormat("notes.txt"); got != FormatPlainText {
		t.Errorf("DetectFormat(notes.txt) = %v", got)
	}
	if got := DetectFormat("README.markdown"); got != FormatMarkdown {
		t.Errorf("DetectFormat(README.markdown) = %v", got)
	}
}
