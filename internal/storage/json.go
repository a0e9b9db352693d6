package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pstuifzand/foliate/internal/model"
)

// JSONStore handles JSON file persistence
type JSONStore struct {
	FilePath string

	// ReadOnly is set when the path points into the backup directory;
	// backups are restored by saving elsewhere, never overwritten.
	ReadOnly bool
}

// NewJSONStore creates a new JSON store for the given file path
func NewJSONStore(filePath string) *JSONStore {
	return &JSONStore{
		FilePath: filePath,
		ReadOnly: IsBackupFile(filePath),
	}
}

// nodeJSON is the serialized form of a document node. Text leaves carry
// text, spans carry a style, structural nodes carry children.
type nodeJSON struct {
	Kind     string      `json:"kind"`
	Text     string      `json:"text,omitempty"`
	Style    string      `json:"style,omitempty"`
	Children []*nodeJSON `json:"children,omitempty"`
}

// Load loads a document from a JSON file
func (s *JSONStore) Load() (*model.Doc, error) {
	data, err := os.ReadFile(s.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty document if file doesn't exist
			doc := model.NewDoc()
			doc.AppendChild(model.NewParagraph())
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var root nodeJSON
	if s.ReadOnly {
		// Backup files wrap the document with its origin path.
		var payload backupJSON
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, fmt.Errorf("failed to parse backup JSON: %w", err)
		}
		if payload.Document == nil {
			return nil, fmt.Errorf("backup has no document: %w", model.ErrStructuralViolation)
		}
		root = *payload.Document
	} else if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	node, err := decodeNode(&root)
	if err != nil {
		return nil, err
	}

	doc, ok := node.(*model.Doc)
	if !ok {
		return nil, fmt.Errorf("root node is %q, expected %q: %w", root.Kind, model.KindDoc, model.ErrStructuralViolation)
	}

	return doc, nil
}

// Save saves a document to a JSON file
func (s *JSONStore) Save(doc *model.Doc) error {
	if s.ReadOnly {
		return fmt.Errorf("refusing to overwrite backup file %s", s.FilePath)
	}

	// Ensure directory exists
	dir := filepath.Dir(s.FilePath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(encodeNode(doc), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if err := os.WriteFile(s.FilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}

func encodeNode(n model.Node) *nodeJSON {
	out := &nodeJSON{Kind: n.Kind()}

	switch v := n.(type) {
	case *model.Text:
		out.Text = v.Content()
		return out
	case *model.Span:
		out.Style = v.Style
	}

	for _, child := range n.Children() {
		out.Children = append(out.Children, encodeNode(child))
	}
	return out
}

// decodeNode rebuilds the node tree. Appending through the model layer
// restores parent pointers as a side effect.
func decodeNode(raw *nodeJSON) (model.Node, error) {
	switch raw.Kind {
	case model.KindText:
		return model.NewText(raw.Text), nil
	case model.KindDoc, model.KindParagraph, model.KindSpan:
		var branch model.Branch
		switch raw.Kind {
		case model.KindDoc:
			branch = model.NewDoc()
		case model.KindParagraph:
			branch = model.NewParagraph()
		case model.KindSpan:
			branch = model.NewSpan(raw.Style)
		}
		for _, rawChild := range raw.Children {
			child, err := decodeNode(rawChild)
			if err != nil {
				return nil, err
			}
			branch.AppendChild(child)
		}
		return branch, nil
	default:
		return nil, fmt.Errorf("unknown node kind %q: %w", raw.Kind, model.ErrStructuralViolation)
	}
}

// FileExists checks if the document file exists
func (s *JSONStore) FileExists() bool {
	_, err := os.Stat(s.FilePath)
	return err == nil
}
