// Package model contains the document content tree.
//
// The tree is Doc -> Paragraph* -> (Span|Text)*. Every structural node
// (doc, paragraph, span) contributes two delimiter positions to the model
// offset space, one opening and one closing; a Text leaf contributes one
// position per rune of content.
package model

import "time"

// Node kinds, used as lookup tags by the render registry.
const (
	KindDoc       = "doc"
	KindParagraph = "paragraph"
	KindSpan      = "span"
	KindText      = "text"
)

// Node is a single node in the content tree. All implementations live in
// this package; the parent pointer is a non-owning back-reference.
type Node interface {
	ID() string
	Kind() string
	Parent() Node
	Children() []Node
	// ModelSize is the span this node covers in model offsets, including
	// its own delimiters for structural nodes.
	ModelSize() int
	// Clone returns a deep copy of the subtree with parent pointers set.
	Clone() Node

	setParent(Node)
}

type node struct {
	id     string
	parent Node
}

func (n *node) ID() string       { return n.id }
func (n *node) Parent() Node     { return n.parent }
func (n *node) setParent(p Node) { n.parent = p }

// Doc is the root of the content tree.
type Doc struct {
	node
	children []Node
}

// Paragraph is a block-level node. Its children are spans and text leaves.
type Paragraph struct {
	node
	children []Node
}

// Span is a styled inline container holding text leaves.
type Span struct {
	node
	Style    string
	children []Node
}

// Text is a leaf holding a run of content.
type Text struct {
	node
	content []rune
}

// NewDoc creates an empty document root.
func NewDoc() *Doc {
	return &Doc{node: node{id: generateID()}, children: make([]Node, 0)}
}

// NewParagraph creates an empty paragraph.
func NewParagraph() *Paragraph {
	return &Paragraph{node: node{id: generateID()}, children: make([]Node, 0)}
}

// NewSpan creates an empty span with the given style tag.
func NewSpan(style string) *Span {
	return &Span{node: node{id: generateID()}, Style: style, children: make([]Node, 0)}
}

// NewText creates a text leaf with the given content.
func NewText(content string) *Text {
	return &Text{node: node{id: generateID()}, content: []rune(content)}
}

func (d *Doc) Kind() string       { return KindDoc }
func (p *Paragraph) Kind() string { return KindParagraph }
func (s *Span) Kind() string      { return KindSpan }
func (t *Text) Kind() string      { return KindText }

func (d *Doc) Children() []Node       { return d.children }
func (p *Paragraph) Children() []Node { return p.children }
func (s *Span) Children() []Node      { return s.children }
func (t *Text) Children() []Node      { return nil }

func (d *Doc) ModelSize() int       { return 2 + childrenModelSize(d.children) }
func (p *Paragraph) ModelSize() int { return 2 + childrenModelSize(p.children) }
func (s *Span) ModelSize() int      { return 2 + childrenModelSize(s.children) }
func (t *Text) ModelSize() int      { return len(t.content) }

func childrenModelSize(children []Node) int {
	size := 0
	for _, c := range children {
		size += c.ModelSize()
	}
	return size
}

// Content returns the leaf's content as a string.
func (t *Text) Content() string { return string(t.content) }

// SetContent replaces the leaf's content.
func (t *Text) SetContent(content string) { t.content = []rune(content) }

// InsertContent inserts text at a rune offset inside the leaf.
func (t *Text) InsertContent(at int, text string) error {
	if at < 0 || at > len(t.content) {
		return outOfRange("text insert at %d, content length %d", at, len(t.content))
	}
	inserted := []rune(text)
	updated := make([]rune, 0, len(t.content)+len(inserted))
	updated = append(updated, t.content[:at]...)
	updated = append(updated, inserted...)
	updated = append(updated, t.content[at:]...)
	t.content = updated
	return nil
}

// DeleteContent removes the rune range [from, to) from the leaf.
func (t *Text) DeleteContent(from, to int) error {
	if from < 0 || to > len(t.content) || from > to {
		return outOfRange("text delete [%d, %d), content length %d", from, to, len(t.content))
	}
	t.content = append(t.content[:from], t.content[to:]...)
	return nil
}

func (d *Doc) Clone() Node {
	clone := &Doc{node: node{id: d.id}}
	clone.children = cloneChildren(d.children, clone)
	return clone
}

func (p *Paragraph) Clone() Node {
	clone := &Paragraph{node: node{id: p.id}}
	clone.children = cloneChildren(p.children, clone)
	return clone
}

func (s *Span) Clone() Node {
	clone := &Span{node: node{id: s.id}, Style: s.Style}
	clone.children = cloneChildren(s.children, clone)
	return clone
}

func (t *Text) Clone() Node {
	content := make([]rune, len(t.content))
	copy(content, t.content)
	return &Text{node: node{id: t.id}, content: content}
}

func cloneChildren(children []Node, parent Node) []Node {
	clones := make([]Node, 0, len(children))
	for _, c := range children {
		clone := c.Clone()
		clone.setParent(parent)
		clones = append(clones, clone)
	}
	return clones
}

func generateID() string {
	return "node_" + time.Now().Format("20060102150405") + "_" + randomString(8)
}

func randomString(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyz0123456789"
	result := make([]byte, length)
	for i := 0; i < length; i++ {
		result[i] = chars[int(time.Now().UnixNano()+int64(i*31))%len(chars)]
	}
	return string(result)
}
