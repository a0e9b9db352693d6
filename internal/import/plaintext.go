package import_parser

import (
	"github.com/pstuifzand/foliate/internal/model"
)

// PlainTextParser imports plain text files
type PlainTextParser struct{}

func (p *PlainTextParser) Name() string {
	return "Plain text"
}

// Parse converts plain text to a document, one paragraph per
// blank-line separated block. No inline markup is interpreted.
func (p *PlainTextParser) Parse(content string) (*model.Doc, error) {
	doc := model.NewDoc()

	for _, block := range splitBlocks(content) {
		para := model.NewParagraph()
		para.AppendChild(model.NewText(block))
		doc.AppendChild(para)
	}

	if len(doc.Children()) == 0 {
		doc.AppendChild(model.NewParagraph())
	}

	return doc, nil
}
