package render

import (
	"errors"
	"fmt"

	"github.com/pstuifzand/foliate/internal/model"
)

// ErrUnregisteredType indicates a lookup miss in the node type registry.
// It is a configuration bug: the registry must be populated before the
// first derivation.
var ErrUnregisteredType = errors.New("node type not registered")

// Definition describes how one model node kind derives its render boxes.
type Definition interface {
	// Build derives a fresh render box from the model node.
	Build(r *Registry, m model.Node) (Box, error)
	// Update re-derives an existing box in place from the model node and
	// invalidates cached sizes up the ancestor chain.
	Update(r *Registry, b Box, m model.Node) error
}

// Registry maps model node kinds to their render definitions.
type Registry struct {
	defs map[string]Definition
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Definition)}
}

// Register adds a definition for a node kind, replacing any existing one.
func (r *Registry) Register(kind string, def Definition) {
	r.defs[kind] = def
}

// Default returns a registry with the built-in node kinds registered.
func Default() *Registry {
	r := NewRegistry()
	r.Register(model.KindDoc, docDefinition{})
	r.Register(model.KindParagraph, paragraphDefinition{})
	r.Register(model.KindSpan, spanDefinition{})
	r.Register(model.KindText, textDefinition{})
	return r
}

func (r *Registry) lookup(kind string) (Definition, error) {
	def, ok := r.defs[kind]
	if !ok {
		return nil, fmt.Errorf("kind %q: %w", kind, ErrUnregisteredType)
	}
	return def, nil
}

// Build derives the render box for a model node via its registered
// definition.
func (r *Registry) Build(m model.Node) (Box, error) {
	def, err := r.lookup(m.Kind())
	if err != nil {
		return nil, err
	}
	return def.Build(r, m)
}

// BuildDoc derives the full render tree for a document root.
func (r *Registry) BuildDoc(doc *model.Doc) (*DocBox, error) {
	b, err := r.Build(doc)
	if err != nil {
		return nil, err
	}
	return b.(*DocBox), nil
}

// Update re-derives an existing render box from its model node.
func (r *Registry) Update(b Box, m model.Node) error {
	def, err := r.lookup(m.Kind())
	if err != nil {
		return err
	}
	return def.Update(r, b, m)
}

type docDefinition struct{}

func (docDefinition) Build(r *Registry, m model.Node) (Box, error) {
	doc, ok := m.(*model.Doc)
	if !ok {
		return nil, fmt.Errorf("doc definition given %T: %w", m, ErrUnregisteredType)
	}
	d := &DocBox{box: newBox(doc.ID())}
	blocks, err := buildBlocks(r, doc.Children())
	if err != nil {
		return nil, err
	}
	d.setBlocks(blocks)
	return d, nil
}

func (def docDefinition) Update(r *Registry, b Box, m model.Node) error {
	d, ok := b.(*DocBox)
	if !ok {
		return fmt.Errorf("doc update given %T: %w", b, ErrUnregisteredType)
	}
	doc := m.(*model.Doc)
	blocks, err := buildBlocks(r, doc.Children())
	if err != nil {
		return err
	}
	d.setBlocks(blocks)
	return nil
}

func buildBlocks(r *Registry, children []model.Node) ([]*BlockBox, error) {
	blocks := make([]*BlockBox, 0, len(children))
	for _, c := range children {
		b, err := r.Build(c)
		if err != nil {
			return nil, err
		}
		block, ok := b.(*BlockBox)
		if !ok {
			return nil, fmt.Errorf("doc child %s derived %T, want block: %w", c.ID(), b, ErrUnregisteredType)
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

type paragraphDefinition struct{}

func (paragraphDefinition) Build(r *Registry, m model.Node) (Box, error) {
	p, ok := m.(*model.Paragraph)
	if !ok {
		return nil, fmt.Errorf("paragraph definition given %T: %w", m, ErrUnregisteredType)
	}
	b := &BlockBox{box: newBox(p.ID())}
	inlines, err := buildInlines(r, p)
	if err != nil {
		return nil, err
	}
	b.setInlines(inlines)
	return b, nil
}

func (def paragraphDefinition) Update(r *Registry, b Box, m model.Node) error {
	block, ok := b.(*BlockBox)
	if !ok {
		return fmt.Errorf("paragraph update given %T: %w", b, ErrUnregisteredType)
	}
	inlines, err := buildInlines(r, m.(*model.Paragraph))
	if err != nil {
		return err
	}
	block.setInlines(inlines)
	return nil
}

// buildInlines derives a paragraph's inline runs: span children keep their
// own run, consecutive bare text leaves merge into one, and a trailing
// end-of-block run holds the paragraph's final caret slot.
func buildInlines(r *Registry, p *model.Paragraph) ([]*InlineBox, error) {
	var inlines []*InlineBox
	for _, c := range p.Children() {
		b, err := r.Build(c)
		if err != nil {
			return nil, err
		}
		in, ok := b.(*InlineBox)
		if !ok {
			return nil, fmt.Errorf("paragraph child %s derived %T, want inline: %w", c.ID(), b, ErrUnregisteredType)
		}
		if n := len(inlines); n > 0 && canMerge(inlines[n-1], in) {
			inlines[n-1] = mergeRuns(inlines[n-1], in)
			continue
		}
		inlines = append(inlines, in)
	}

	end := &InlineBox{box: newBox(p.ID())}
	end.setAtomics([]*AtomicBox{newEndOfBlock()})
	inlines = append(inlines, end)
	return inlines, nil
}

func canMerge(a, b *InlineBox) bool {
	return !a.IsSpan && !b.IsSpan && a.Style == b.Style
}

// mergeRuns joins two bare runs and re-tokenizes the combined text, so a
// word split across two leaves still measures as one box.
func mergeRuns(a, b *InlineBox) *InlineBox {
	text := ""
	for _, at := range a.atomics {
		text += at.Text
	}
	for _, at := range b.atomics {
		text += at.Text
	}
	merged := &InlineBox{box: newBox(a.modelID), Style: a.Style}
	atomics := tokenize(text)
	for _, at := range atomics {
		at.modelID = a.modelID
	}
	merged.setAtomics(atomics)
	return merged
}

type spanDefinition struct{}

func (spanDefinition) Build(r *Registry, m model.Node) (Box, error) {
	s, ok := m.(*model.Span)
	if !ok {
		return nil, fmt.Errorf("span definition given %T: %w", m, ErrUnregisteredType)
	}
	text := ""
	for _, c := range s.Children() {
		leaf, ok := c.(*model.Text)
		if !ok {
			return nil, fmt.Errorf("span child %s is %T, want text leaf: %w", c.ID(), c, ErrUnregisteredType)
		}
		text += leaf.Content()
	}
	in := &InlineBox{box: newBox(s.ID()), Style: s.Style, IsSpan: true}
	atomics := tokenize(text)
	for _, a := range atomics {
		a.modelID = s.ID()
	}
	in.setAtomics(atomics)
	return in, nil
}

func (def spanDefinition) Update(r *Registry, b Box, m model.Node) error {
	in, ok := b.(*InlineBox)
	if !ok {
		return fmt.Errorf("span update given %T: %w", b, ErrUnregisteredType)
	}
	rebuilt, err := def.Build(r, m)
	if err != nil {
		return err
	}
	in.Style = m.(*model.Span).Style
	in.setAtomics(rebuilt.(*InlineBox).atomics)
	return nil
}

type textDefinition struct{}

func (textDefinition) Build(r *Registry, m model.Node) (Box, error) {
	leaf, ok := m.(*model.Text)
	if !ok {
		return nil, fmt.Errorf("text definition given %T: %w", m, ErrUnregisteredType)
	}
	in := &InlineBox{box: newBox(leaf.ID())}
	atomics := tokenize(leaf.Content())
	for _, a := range atomics {
		a.modelID = leaf.ID()
	}
	in.setAtomics(atomics)
	return in, nil
}

func (def textDefinition) Update(r *Registry, b Box, m model.Node) error {
	in, ok := b.(*InlineBox)
	if !ok {
		return fmt.Errorf("text update given %T: %w", b, ErrUnregisteredType)
	}
	rebuilt, err := def.Build(r, m)
	if err != nil {
		return err
	}
	in.setAtomics(rebuilt.(*InlineBox).atomics)
	return nil
}
