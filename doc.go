// Package oasfilter provides a filtering engine for OpenAPI v3 documents.
//
// Given a parsed document and a set of selectors — path glob patterns, HTTP
// methods, tag names, and security-scheme names — the engine produces a new
// document containing only the matching operations and the transitive
// closure of the component definitions ($ref targets) they depend on.
//
// # Overview
//
// The engine is split into four packages, each matching one stage of the
// pipeline:
//
//   - glob: matches a single path pattern against a path string
//   - refs: collects local "#/components/<category>/<name>" references from
//     an arbitrary document subtree
//   - selector: applies a filter specification to the operations under
//     "paths" and decides which (path, method) pairs survive
//   - filter: orchestrates the above to build the filtered document,
//     including the reference closure over "components"
//
// The document itself is represented as a *yaml.Node tree (see the node
// package) rather than a typed struct model, because the filter must carry
// unknown fields, vendor extensions, and nested $ref edges through unchanged
// while preserving the input's key order exactly.
//
// # Quick Start
//
//	root, format, err := node.ParseBytes(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	spec := selector.FilterSpec{
//		PathPatterns: []string{"/users/*"},
//		Methods:      []string{"get"},
//	}
//
//	filtered, err := filter.Filter(root, spec)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, err := node.Encode(filtered, format)
//
// # Command-Line Interface
//
// The cmd/openapiv3-filter binary wraps the engine with the surrounding
// collaborators the engine itself does not perform: argument parsing,
// reading the document from a file or stdin, format detection, and
// serialization.
//
//	openapiv3-filter -a api.yaml --path '/users/*' --method get
//
// # Non-goals
//
// The engine assumes the input is a well-formed OpenAPI v3 document; it does
// not validate against the OpenAPI schema, does not resolve external
// references, does not dereference $ref edges in its output, does not
// rewrite operation IDs or component keys, and does not merge documents.
package oasfilter
