package models

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v2"
)

// NodeKind tells a Branch from a Leaf.
type NodeKind int

const (
	// Branch nodes map child labels to nodes.
	Branch NodeKind = iota
	// Leaf nodes map column headers to cell values.
	Leaf
)

func (k NodeKind) String() string {
	if k == Leaf {
		return "leaf"
	}
	return "branch"
}

// Node is one level of a hierarchical table. A Branch keeps its children in
// first-insertion order; a Leaf holds the data values of one row. The zero
// value is an empty Branch.
type Node struct {
	kind     NodeKind
	labels   []string
	children map[string]*Node
	values   Record
}

// NewBranch returns an empty Branch.
func NewBranch() *Node {
	return &Node{kind: Branch, children: make(map[string]*Node)}
}

// NewLeaf returns a Leaf holding values.
func NewLeaf(values Record) *Node {
	return &Node{kind: Leaf, values: values}
}

// Kind returns the node kind.
func (n *Node) Kind() NodeKind {
	return n.kind
}

// IsLeaf reports whether n is a Leaf.
func (n *Node) IsLeaf() bool {
	return n.kind == Leaf
}

// Values returns the data of a Leaf; it is empty for a Branch.
func (n *Node) Values() Record {
	return n.values
}

// Len returns the number of children of a Branch.
func (n *Node) Len() int {
	return len(n.labels)
}

// Labels returns child labels in insertion order.
func (n *Node) Labels() []string {
	return append([]string(nil), n.labels...)
}

// Child returns the child stored under label.
func (n *Node) Child(label string) (*Node, bool) {
	c, ok := n.children[label]
	return c, ok
}

// Lookup walks path from n and returns the node it ends on.
func (n *Node) Lookup(path ...string) (*Node, bool) {
	cur := n
	for _, label := range path {
		next, ok := cur.Child(label)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

// SetChild stores child under label. Replacing an existing child keeps its
// position. It panics when n is a Leaf.
func (n *Node) SetChild(label string, child *Node) {
	if n.kind != Branch {
		panic("models: SetChild on leaf node")
	}
	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	if _, ok := n.children[label]; !ok {
		n.labels = append(n.labels, label)
	}
	n.children[label] = child
}

// RemoveChild deletes the child stored under label.
func (n *Node) RemoveChild(label string) {
	if _, ok := n.children[label]; !ok {
		return
	}
	delete(n.children, label)
	for i, l := range n.labels {
		if l == label {
			n.labels = append(n.labels[:i], n.labels[i+1:]...)
			break
		}
	}
}

// IsEmpty reports whether n is a Branch without children or a Leaf without values.
func (n *Node) IsEmpty() bool {
	if n.kind == Leaf {
		return n.values.Len() == 0
	}
	return len(n.labels) == 0
}

// ToBranch turns a Leaf into a Branch in place. Its values are kept under a
// child Leaf named selfLabel. It is a no-op on a Branch.
func (n *Node) ToBranch(selfLabel string) {
	if n.kind == Branch {
		return
	}
	values := n.values
	n.kind = Branch
	n.values = Record{}
	n.children = make(map[string]*Node)
	n.labels = nil
	n.SetChild(selfLabel, NewLeaf(values))
}

// MarshalJSON encodes a Branch as an object of children and a Leaf as an
// object of values, both in insertion order.
func (n *Node) MarshalJSON() ([]byte, error) {
	if n.kind == Leaf {
		return n.values.MarshalJSON()
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, label := range n.labels {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(label)
		if err != nil {
			return nil, err
		}
		v, err := n.children[label].MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the node as an ordered YAML mapping.
func (n *Node) MarshalYAML() (interface{}, error) {
	if n.kind == Leaf {
		return n.values.MarshalYAML()
	}
	ms := make(yaml.MapSlice, 0, len(n.labels))
	for _, label := range n.labels {
		v, err := n.children[label].MarshalYAML()
		if err != nil {
			return nil, err
		}
		ms = append(ms, yaml.MapItem{Key: label, Value: v})
	}
	return ms, nil
}
