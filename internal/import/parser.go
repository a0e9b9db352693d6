package import_parser

import (
	"fmt"
	"strings"

	"github.com/pstuifzand/foliate/internal/model"
)

// ImportFormat represents different file formats that can be imported
type ImportFormat string

const (
	FormatMarkdown  ImportFormat = "markdown"
	FormatPlainText ImportFormat = "text"
	FormatAuto      ImportFormat = "auto" // Auto-detect from extension
)

// Parser interface for different import formats
type Parser interface {
	Parse(content string) (*model.Doc, error)
	Name() string
}

// ImportFile parses file content into a document
func ImportFile(content string, format ImportFormat) (*model.Doc, error) {
	var parser Parser

	switch format {
	case FormatMarkdown:
		parser = &MarkdownParser{}
	case FormatPlainText:
		parser = &PlainTextParser{}
	default:
		return nil, fmt.Errorf("unsupported import format: %s", format)
	}

	doc, err := parser.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse error (%s): %w", parser.Name(), err)
	}

	return doc, nil
}

// DetectFormat attempts to detect the file format from extension
func DetectFormat(filename string) ImportFormat {
	if strings.HasSuffix(filename, ".md") || strings.HasSuffix(filename, ".markdown") {
		return FormatMarkdown
	}

	return FormatPlainText
}

// splitBlocks splits content into blank-line separated blocks, joining
// the lines inside a block with single spaces.
func splitBlocks(content string) []string {
	var blocks []string
	var current []string

	flush := func() {
		if len(current) > 0 {
			blocks = append(blocks, strings.Join(current, " "))
			current = nil
		}
	}

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, strings.TrimSpace(line))
	}
	flush()

	return blocks
}
