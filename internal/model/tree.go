package model

// Branch is a structural node that owns an ordered list of children.
type Branch interface {
	Node
	AppendChild(child Node)
	InsertChild(child Node, at int) error
	RemoveChild(child Node) error
}

func (d *Doc) AppendChild(child Node) { d.children = appendChild(d.children, d, child) }
func (p *Paragraph) AppendChild(child Node) {
	p.children = appendChild(p.children, p, child)
}
func (s *Span) AppendChild(child Node) { s.children = appendChild(s.children, s, child) }

func (d *Doc) InsertChild(child Node, at int) error {
	children, err := insertChild(d.children, d, child, at)
	if err != nil {
		return err
	}
	d.children = children
	return nil
}

func (p *Paragraph) InsertChild(child Node, at int) error {
	children, err := insertChild(p.children, p, child, at)
	if err != nil {
		return err
	}
	p.children = children
	return nil
}

func (s *Span) InsertChild(child Node, at int) error {
	children, err := insertChild(s.children, s, child, at)
	if err != nil {
		return err
	}
	s.children = children
	return nil
}

func (d *Doc) RemoveChild(child Node) error {
	children, err := removeChild(d.children, child)
	if err != nil {
		return err
	}
	d.children = children
	return nil
}

func (p *Paragraph) RemoveChild(child Node) error {
	children, err := removeChild(p.children, child)
	if err != nil {
		return err
	}
	p.children = children
	return nil
}

func (s *Span) RemoveChild(child Node) error {
	children, err := removeChild(s.children, child)
	if err != nil {
		return err
	}
	s.children = children
	return nil
}

func appendChild(children []Node, parent Node, child Node) []Node {
	child.setParent(parent)
	return append(children, child)
}

func insertChild(children []Node, parent Node, child Node, at int) ([]Node, error) {
	if at < 0 || at > len(children) {
		return nil, outOfRange("insert child at %d of %d", at, len(children))
	}
	child.setParent(parent)
	updated := make([]Node, 0, len(children)+1)
	updated = append(updated, children[:at]...)
	updated = append(updated, child)
	updated = append(updated, children[at:]...)
	return updated, nil
}

func removeChild(children []Node, child Node) ([]Node, error) {
	for idx, c := range children {
		if c.ID() == child.ID() {
			child.setParent(nil)
			return append(children[:idx], children[idx+1:]...), nil
		}
	}
	return nil, structuralViolation("child %s not found in parent", child.ID())
}

// Locate resolves a model offset within the document to the deepest node
// containing it, together with the offset local to that node. Offsets 0 and
// ModelSize-1 of a structural node are its own delimiter positions.
func (d *Doc) Locate(offset int) (Node, int, error) {
	return locateIn(d, offset)
}

func locateIn(n Node, offset int) (Node, int, error) {
	size := n.ModelSize()
	if offset < 0 || offset >= size {
		return nil, 0, outOfRange("model offset %d in node of size %d", offset, size)
	}
	if _, leaf := n.(*Text); leaf {
		return n, offset, nil
	}
	if offset == 0 || offset == size-1 {
		return n, offset, nil
	}
	// Children tile the interior span; the opening delimiter is consumed
	// before descending.
	rel := offset - 1
	for _, c := range n.Children() {
		cs := c.ModelSize()
		if rel < cs {
			return locateIn(c, rel)
		}
		rel -= cs
	}
	return nil, 0, outOfRange("model offset %d exhausted children of %s", offset, n.ID())
}
