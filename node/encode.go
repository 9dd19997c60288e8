package node

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.yaml.in/yaml/v4"
)

// Encode serializes root as JSON or YAML, preserving the key order
// recorded on each mapping node.
func Encode(root *Node, format Format) ([]byte, error) {
	if root == nil {
		root = NewMap()
	}
	switch format {
	case FormatJSON:
		var buf bytes.Buffer
		if err := encodeJSON(&buf, root.raw); err != nil {
			return nil, err
		}
		var indented bytes.Buffer
		if err := json.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
			return buf.Bytes(), nil
		}
		return indented.Bytes(), nil
	case FormatYAML:
		out, err := yaml.Marshal(root.raw)
		if err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, fmt.Errorf("node: unsupported output format %v", format)
	}
}

// encodeJSON walks a *yaml.Node tree directly, writing compact JSON and
// honoring the node's own Content order — there is no separate typed
// value to reconcile key order against, unlike a decode-then-remarshal
// pipeline built on top of a typed struct model.
func encodeJSON(buf *bytes.Buffer, n *yaml.Node) error {
	if n == nil {
		buf.WriteString("null")
		return nil
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) > 0 {
			return encodeJSON(buf, n.Content[0])
		}
		buf.WriteString("null")
		return nil

	case yaml.MappingNode:
		buf.WriteByte('{')
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteByte(',')
			}
			keyJSON, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(keyJSON)
			buf.WriteByte(':')
			if err := encodeJSON(buf, n.Content[i+1]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil

	case yaml.SequenceNode:
		buf.WriteByte('[')
		for i, child := range n.Content {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := encodeJSON(buf, child); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil

	case yaml.AliasNode:
		return encodeJSON(buf, n.Alias)

	default: // ScalarNode
		return encodeScalarJSON(buf, n)
	}
}

func encodeScalarJSON(buf *bytes.Buffer, n *yaml.Node) error {
	switch n.Tag {
	case "!!null":
		buf.WriteString("null")
		return nil
	case "!!bool":
		var v bool
		if err := n.Decode(&v); err != nil {
			return err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	case "!!int":
		var v int64
		if err := n.Decode(&v); err != nil {
			// Fall back to string representation for out-of-range ints.
			buf.WriteString(n.Value)
			return nil
		}
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	case "!!float":
		var v float64
		if err := n.Decode(&v); err != nil {
			return err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	default: // !!str and any other scalar tag round-trips as a string
		data, err := json.Marshal(n.Value)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}
}
