// Package refs collects local "#/components/<category>/<name>" JSON
// Pointer references out of an arbitrary document subtree.
package refs

import "github.com/sukkola/openapiv3-filter/node"

// Ref identifies a single component by its category (e.g. "schemas")
// and name within that category.
type Ref struct {
	Category string
	Name     string
}

const prefix = "#/components/"

// ParseRef parses a $ref value of the form "#/components/<category>/<name>",
// percent-decoding JSON Pointer escapes (~1 -> "/", ~0 -> "~") in both
// segments. It reports false for any value that is not of this local,
// two-segment form — external URLs, "#/paths/...", or anything
// malformed.
func ParseRef(value string) (Ref, bool) {
	if len(value) <= len(prefix) || value[:len(prefix)] != prefix {
		return Ref{}, false
	}
	rest := value[len(prefix):]

	slash := indexByte(rest, '/')
	if slash < 0 {
		return Ref{}, false
	}
	category := rest[:slash]
	name := rest[slash+1:]
	if category == "" || name == "" || indexByte(name, '/') >= 0 {
		return Ref{}, false
	}

	return Ref{Category: unescapePointerToken(category), Name: unescapePointerToken(name)}, true
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// unescapePointerToken reverses RFC 6901 JSON Pointer escaping: "~1"
// decodes to "/" and "~0" decodes to "~". The token is scanned once,
// left to right, and each escape is consumed as a unit, so "~01"
// decodes to "~1" and is never decoded a second time into "~/".
func unescapePointerToken(token string) string {
	out := make([]byte, 0, len(token))
	for i := 0; i < len(token); i++ {
		if token[i] == '~' && i+1 < len(token) {
			switch token[i+1] {
			case '1':
				out = append(out, '/')
				i++
				continue
			case '0':
				out = append(out, '~')
				i++
				continue
			}
		}
		out = append(out, token[i])
	}
	return string(out)
}

// Collect performs a depth-first walk of n, returning every local
// component reference found anywhere within it.
//
// At an object (map) node: if it has a "$ref" key whose value is a
// string, parse it and do not descend into sibling keys — OpenAPI and
// JSON Schema treat a $ref object as opaque. Otherwise, descend into
// every value.
//
// At an array (sequence) node: descend into every element.
//
// At a scalar: do nothing.
//
// Malformed $ref values (non-string, or not matching the local
// "#/components/<category>/<name>" shape) contribute nothing to the
// result but do not otherwise affect the walk.
func Collect(n *node.Node) []Ref {
	var out []Ref
	collectInto(n, &out)
	return out
}

func collectInto(n *node.Node, out *[]Ref) {
	switch {
	case n.IsMap():
		if refVal := n.Get("$ref"); refVal != nil {
			if s, ok := refVal.StringValue(); ok {
				if ref, ok := ParseRef(s); ok {
					*out = append(*out, ref)
				}
				return
			}
		}
		for _, key := range n.Keys() {
			collectInto(n.Get(key), out)
		}
	case n.IsSeq():
		for _, el := range n.Elements() {
			collectInto(el, out)
		}
	}
}
