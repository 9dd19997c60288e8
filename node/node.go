// Package node provides an order-preserving, format-agnostic tree for
// representing an OpenAPI document: objects, arrays, strings, numbers,
// booleans, and null, with object key insertion order preserved exactly
// as it appeared in the source document.
//
// The tree is backed by *yaml.Node from go.yaml.in/yaml/v4, whose Kind
// and ordered Content slice already satisfy this requirement and whose
// decoder accepts both JSON and YAML input, so no second shadow
// representation is needed. Callers outside this package never see the
// underlying *yaml.Node type.
package node

import (
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Node wraps a single position in the document tree.
type Node struct {
	raw *yaml.Node
}

// wrap adapts a *yaml.Node into a *Node. Unexported: used only within
// this package's decode/encode boundary.
func wrap(raw *yaml.Node) *Node {
	if raw == nil {
		return nil
	}
	// Transparently unwrap document nodes; callers never need to know
	// the root was read as a DocumentNode.
	if raw.Kind == yaml.DocumentNode {
		if len(raw.Content) == 0 {
			return nil
		}
		return wrap(raw.Content[0])
	}
	return &Node{raw: raw}
}

// IsMap reports whether n represents an object.
func (n *Node) IsMap() bool { return n != nil && n.raw.Kind == yaml.MappingNode }

// IsSeq reports whether n represents an array.
func (n *Node) IsSeq() bool { return n != nil && n.raw.Kind == yaml.SequenceNode }

// IsScalar reports whether n represents a string, number, boolean, or null.
func (n *Node) IsScalar() bool { return n != nil && n.raw.Kind == yaml.ScalarNode }

// IsNull reports whether n is the null scalar.
func (n *Node) IsNull() bool {
	return n.IsScalar() && n.raw.Tag == "!!null"
}

// Keys returns the keys of a mapping node in insertion order. Returns
// nil if n is not a mapping.
func (n *Node) Keys() []string {
	if !n.IsMap() {
		return nil
	}
	keys := make([]string, 0, len(n.raw.Content)/2)
	for i := 0; i+1 < len(n.raw.Content); i += 2 {
		keys = append(keys, n.raw.Content[i].Value)
	}
	return keys
}

// Get returns the value associated with key in a mapping node, or nil
// if n is not a mapping or the key is absent.
func (n *Node) Get(key string) *Node {
	if !n.IsMap() {
		return nil
	}
	for i := 0; i+1 < len(n.raw.Content); i += 2 {
		if n.raw.Content[i].Value == key {
			return wrap(n.raw.Content[i+1])
		}
	}
	return nil
}

// Has reports whether a mapping node has the given key.
func (n *Node) Has(key string) bool {
	if !n.IsMap() {
		return false
	}
	for i := 0; i+1 < len(n.raw.Content); i += 2 {
		if n.raw.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Set inserts or updates key in a mapping node. New keys are appended,
// preserving the existing order. n must be a mapping node.
func (n *Node) Set(key string, value *Node) {
	if n == nil || n.raw.Kind != yaml.MappingNode {
		return
	}
	var valRaw *yaml.Node
	if value != nil {
		valRaw = value.raw
	} else {
		valRaw = nullScalar()
	}
	for i := 0; i+1 < len(n.raw.Content); i += 2 {
		if n.raw.Content[i].Value == key {
			n.raw.Content[i+1] = valRaw
			return
		}
	}
	n.raw.Content = append(n.raw.Content, stringScalar(key), valRaw)
}

// Len returns the number of keys for a mapping, the number of elements
// for a sequence, or 0 otherwise.
func (n *Node) Len() int {
	switch {
	case n.IsMap():
		return len(n.raw.Content) / 2
	case n.IsSeq():
		return len(n.raw.Content)
	default:
		return 0
	}
}

// Index returns the i-th element of a sequence node, or nil if n is not
// a sequence or i is out of range.
func (n *Node) Index(i int) *Node {
	if !n.IsSeq() || i < 0 || i >= len(n.raw.Content) {
		return nil
	}
	return wrap(n.raw.Content[i])
}

// Elements returns the elements of a sequence node in order. Returns
// nil if n is not a sequence.
func (n *Node) Elements() []*Node {
	if !n.IsSeq() {
		return nil
	}
	out := make([]*Node, len(n.raw.Content))
	for i, c := range n.raw.Content {
		out[i] = wrap(c)
	}
	return out
}

// Append adds value to the end of a sequence node. n must be a sequence.
func (n *Node) Append(value *Node) {
	if n == nil || n.raw.Kind != yaml.SequenceNode || value == nil {
		return
	}
	n.raw.Content = append(n.raw.Content, value.raw)
}

// ScalarValue returns the raw string form of a scalar node's value
// (e.g. "true", "42", "some string"). Returns "" for non-scalars.
func (n *Node) ScalarValue() string {
	if !n.IsScalar() {
		return ""
	}
	return n.raw.Value
}

// StringValue returns the value of a scalar string node and reports
// whether n was in fact a (non-null) scalar.
func (n *Node) StringValue() (string, bool) {
	if !n.IsScalar() || n.IsNull() {
		return "", false
	}
	return n.raw.Value, true
}

// Clone returns a node sharing the same subtree; since the engine never
// mutates retained subtrees in place (new containers are built fresh via
// NewMap/NewSeq and existing children are only ever appended by
// reference), sharing is safe and avoids a full deep copy of large
// documents.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	return wrap(n.raw)
}

// NewMap creates an empty mapping node.
func NewMap() *Node {
	return &Node{raw: &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}}
}

// NewSeq creates an empty sequence node.
func NewSeq() *Node {
	return &Node{raw: &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}}
}

// NewString creates a scalar string node.
func NewString(s string) *Node {
	return &Node{raw: stringScalar(s)}
}

func stringScalar(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func nullScalar() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

// String implements fmt.Stringer for debugging; it is not used for
// document serialization (see Encode).
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch {
	case n.IsMap():
		return fmt.Sprintf("Node(map, %d keys)", n.Len())
	case n.IsSeq():
		return fmt.Sprintf("Node(seq, %d elems)", n.Len())
	default:
		return fmt.Sprintf("Node(scalar %q)", n.raw.Value)
	}
}
