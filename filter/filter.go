// Package filter orchestrates the filtering engine: it builds a
// filtered "paths" object from a FilterSpec, computes the reference
// closure over "components" that those paths reach, and assembles a
// new document containing only what survives.
package filter

import (
	"github.com/sukkola/openapiv3-filter/node"
	"github.com/sukkola/openapiv3-filter/refs"
	"github.com/sukkola/openapiv3-filter/selector"
)

// Filter applies spec to root and returns a new document containing
// only the selected operations, the components they transitively
// reference, and the tags carried by at least one selected operation.
// Fields outside "paths", "components", and "tags" are copied
// verbatim. Key order is preserved: each top-level key is emitted at the
// position it held in the input. "components" and "tags" are omitted
// altogether if filtering leaves them empty. "paths" is always emitted,
// even when empty; if the input has no "paths" key it is appended as
// the last key. root is never mutated.
func Filter(root *node.Node, spec selector.FilterSpec) (*node.Node, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	if root == nil || !root.IsMap() {
		root = node.NewMap()
	}

	out := node.NewMap()

	paths := root.Get("paths")
	selections := selector.Select(paths, spec, root.Get("security"))

	filteredPaths := buildFilteredPaths(paths, selections)
	reachable := closeReferences(root.Get("components"), refs.Collect(filteredPaths))
	filteredComponents := buildFilteredComponents(root.Get("components"), reachable)
	filteredTags := buildFilteredTags(root.Get("tags"), selections)

	sawPaths := false
	for _, key := range root.Keys() {
		switch key {
		case "paths":
			out.Set("paths", filteredPaths)
			sawPaths = true
		case "components":
			if filteredComponents != nil {
				out.Set("components", filteredComponents)
			}
		case "tags":
			if filteredTags != nil {
				out.Set("tags", filteredTags)
			}
		default:
			out.Set(key, root.Get(key))
		}
	}

	if !sawPaths {
		out.Set("paths", filteredPaths)
	}

	return out, nil
}

// buildFilteredPaths constructs the new "paths" object: one entry per
// path that kept at least one operation, each entry carrying its
// non-method fields verbatim plus the surviving methods, both in
// input order.
func buildFilteredPaths(paths *node.Node, selections []selector.Selection) *node.Node {
	keptMethods := make(map[string]map[string]*node.Node) // path -> method -> operation
	var pathOrder []string
	seenPath := make(map[string]bool)
	for _, sel := range selections {
		if !seenPath[sel.Path] {
			seenPath[sel.Path] = true
			pathOrder = append(pathOrder, sel.Path)
		}
		if keptMethods[sel.Path] == nil {
			keptMethods[sel.Path] = make(map[string]*node.Node)
		}
		keptMethods[sel.Path][sel.Method] = sel.Operation
	}

	result := node.NewMap()
	if paths == nil || !paths.IsMap() {
		return result
	}

	for _, path := range pathOrder {
		item := paths.Get(path)
		newItem := node.NewMap()
		if item != nil && item.IsMap() {
			for _, key := range item.Keys() {
				if selector.IsOperationMethod(key) {
					continue
				}
				newItem.Set(key, item.Get(key))
			}
			for _, key := range item.Keys() {
				lower := keyIfMethod(key)
				if lower == "" {
					continue
				}
				if op, ok := keptMethods[path][lower]; ok {
					newItem.Set(lower, op)
				}
			}
		}
		result.Set(path, newItem)
	}
	return result
}

func keyIfMethod(key string) string {
	if !selector.IsOperationMethod(key) {
		return ""
	}
	return toLowerASCII(key)
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// closeReferences computes the least superset of seed closed under
// following $ref edges through component bodies present in
// components. Uses a worklist with a visited set keyed by (category,
// name); termination is guaranteed because the component set is
// finite. Dangling references (no matching component in the input)
// are absorbed into the visited set but contribute no further work.
func closeReferences(components *node.Node, seed []refs.Ref) map[refs.Ref]bool {
	visited := make(map[refs.Ref]bool)
	var worklist []refs.Ref
	for _, r := range seed {
		if !visited[r] {
			visited[r] = true
			worklist = append(worklist, r)
		}
	}

	for len(worklist) > 0 {
		r := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		member := lookupComponent(components, r)
		if member == nil {
			continue
		}
		for _, next := range refs.Collect(member) {
			if !visited[next] {
				visited[next] = true
				worklist = append(worklist, next)
			}
		}
	}
	return visited
}

func lookupComponent(components *node.Node, r refs.Ref) *node.Node {
	if components == nil || !components.IsMap() {
		return nil
	}
	category := components.Get(r.Category)
	if category == nil || !category.IsMap() {
		return nil
	}
	return category.Get(r.Name)
}

// buildFilteredComponents emits, for each category key present in the
// input's "components" object (schemas, responses, or any other name,
// including ones this engine does not otherwise recognize — a $ref
// may point at any category), a category object containing exactly the
// reachable names for that category, in the input's key order.
// Categories that end up empty are dropped; if every category is
// empty, nil is returned so the caller omits "components" entirely.
func buildFilteredComponents(components *node.Node, reachable map[refs.Ref]bool) *node.Node {
	if components == nil || !components.IsMap() {
		return nil
	}

	result := node.NewMap()
	any := false
	for _, category := range components.Keys() {
		src := components.Get(category)
		if src == nil || !src.IsMap() {
			continue
		}
		dst := node.NewMap()
		for _, name := range src.Keys() {
			if reachable[refs.Ref{Category: category, Name: name}] {
				dst.Set(name, src.Get(name))
			}
		}
		if dst.Len() > 0 {
			result.Set(category, dst)
			any = true
		}
	}
	if !any {
		return nil
	}
	return result
}

// buildFilteredTags returns the sublist of the input's top-level
// "tags" array whose "name" is carried by at least one selected
// operation, preserving input order. Returns nil (meaning "omit
// tags") when the input has no tags array or no tag survives.
func buildFilteredTags(tags *node.Node, selections []selector.Selection) *node.Node {
	if tags == nil || !tags.IsSeq() {
		return nil
	}

	kept := make(map[string]bool)
	for _, sel := range selections {
		opTags := sel.Operation.Get("tags")
		if opTags == nil || !opTags.IsSeq() {
			continue
		}
		for _, t := range opTags.Elements() {
			if v, ok := t.StringValue(); ok {
				kept[v] = true
			}
		}
	}

	result := node.NewSeq()
	any := false
	for _, tagDef := range tags.Elements() {
		name, ok := tagDef.Get("name").StringValue()
		if ok && kept[name] {
			result.Append(tagDef)
			any = true
		}
	}
	if !any {
		return nil
	}
	return result
}
