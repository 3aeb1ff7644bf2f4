package design

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a design tree stored on disk, together with the ids of the nodes
// selected for export. JSON documents are accepted too since they are valid YAML.
type Document struct {
	Name      string   `json:"name" yaml:"name"`
	Nodes     []*Node  `json:"nodes" yaml:"nodes"`
	Selection []string `json:"selection,omitempty" yaml:"selection,omitempty"`
}

// LoadDocument decodes a document from r and links every node to its parent.
func LoadDocument(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode document: empty input")
		}
		return nil, fmt.Errorf("decode document: %w", err)
	}

	Link(doc.Nodes)
	return &doc, nil
}

// LoadDocumentFile reads and decodes the document stored at path.
func LoadDocumentFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document %q: %w", path, err)
	}
	defer f.Close()

	return LoadDocument(f)
}

// Link walks the trees rooted at roots and sets the Parent back-reference of every
// descendant. Roots keep whatever parent they already had.
func Link(roots []*Node) {
	var walk func(n *Node)
	walk = func(n *Node) {
		for _, child := range n.Children {
			if child == nil {
				continue
			}
			child.Parent = n
			walk(child)
		}
	}

	for _, root := range roots {
		if root != nil {
			walk(root)
		}
	}
}

// Find returns the node with the given id, searching the whole document depth-first.
func (d *Document) Find(id string) *Node {
	var find func(nodes []*Node) *Node
	find = func(nodes []*Node) *Node {
		for _, n := range nodes {
			if n == nil {
				continue
			}
			if n.ID == id {
				return n
			}
			if found := find(n.Children); found != nil {
				return found
			}
		}
		return nil
	}

	return find(d.Nodes)
}

// ResolveSelection returns the selected nodes in selection order. A document without
// an explicit selection selects its top-level nodes.
func (d *Document) ResolveSelection() ([]*Node, error) {
	if len(d.Selection) == 0 {
		selection := make([]*Node, 0, len(d.Nodes))
		for _, n := range d.Nodes {
			if n != nil {
				selection = append(selection, n)
			}
		}
		return selection, nil
	}

	selection := make([]*Node, 0, len(d.Selection))
	for _, id := range d.Selection {
		n := d.Find(id)
		if n == nil {
			return nil, fmt.Errorf("selected node %q not found in document %q", id, d.Name)
		}
		selection = append(selection, n)
	}

	return selection, nil
}
