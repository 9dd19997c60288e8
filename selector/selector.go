// Package selector applies a filter specification to the operations
// under a document's "paths" object and decides which (path, method)
// pairs survive.
package selector

import (
	"strings"
	"unicode/utf8"

	"github.com/sukkola/openapiv3-filter/glob"
	"github.com/sukkola/openapiv3-filter/internal/httputil"
	"github.com/sukkola/openapiv3-filter/node"
	"github.com/sukkola/openapiv3-filter/oaserrors"
)

// recognizedMethods is the closed set of HTTP method keys a path-item
// may carry as an operation, keyed in lower case.
var recognizedMethods = map[string]bool{
	httputil.MethodGet:     true,
	httputil.MethodPut:     true,
	httputil.MethodPost:    true,
	httputil.MethodDelete:  true,
	httputil.MethodOptions: true,
	httputil.MethodHead:    true,
	httputil.MethodPatch:   true,
	httputil.MethodTrace:   true,
}

// IsOperationMethod reports whether key, compared case-insensitively,
// names a recognized HTTP method and therefore an operation object
// rather than some other path-item field (summary, parameters, ...).
func IsOperationMethod(key string) bool {
	return recognizedMethods[strings.ToLower(key)]
}

// FilterSpec is the user-supplied selection criteria: a path passes if
// it matches at least one pattern (or PathPatterns is empty), and an
// operation is selected if its method is in Methods (or Methods is
// empty), its tags intersect Tags (or Tags is empty), and its
// effective security intersects Security (or Security is empty).
type FilterSpec struct {
	PathPatterns []string
	Methods      []string
	Tags         []string
	Security     []string
}

// Validate reports the "malformed filter specification" error kind:
// invalid UTF-8 in a path pattern, or a method name that is not one of
// the eight recognized HTTP methods once lower-cased.
func (s FilterSpec) Validate() error {
	for _, p := range s.PathPatterns {
		if !utf8.ValidString(p) {
			return &oaserrors.ConfigError{Option: "path", Value: p, Message: "not valid UTF-8"}
		}
	}
	for _, m := range s.Methods {
		if !IsOperationMethod(m) {
			return &oaserrors.ConfigError{Option: "method", Value: m, Message: "not a recognized HTTP method"}
		}
	}
	return nil
}

func normalizedMethods(methods []string) map[string]bool {
	if len(methods) == 0 {
		return nil
	}
	set := make(map[string]bool, len(methods))
	for _, m := range methods {
		set[strings.ToLower(m)] = true
	}
	return set
}

func stringSet(values []string) map[string]bool {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

// Selection is one surviving (path, method) pair together with the
// operation node it names.
type Selection struct {
	Path      string
	Method    string // lower-cased, as it will appear in output
	Operation *node.Node
}

// Select walks paths (the document's top-level "paths" object) in
// input order and returns the selections surviving spec, grouped by
// path in the order their path-items appeared.
//
// A non-object paths value yields no selections. A non-object
// path-item is skipped; a non-array "tags" is treated as the
// empty tag set; the security predicate falls back to topLevelSecurity
// when an operation omits its own "security".
func Select(paths *node.Node, spec FilterSpec, topLevelSecurity *node.Node) []Selection {
	if paths == nil || !paths.IsMap() {
		return nil
	}

	methodSet := normalizedMethods(spec.Methods)
	tagSet := stringSet(spec.Tags)
	securitySet := stringSet(spec.Security)

	var out []Selection
	for _, path := range paths.Keys() {
		if !glob.MatchAny(spec.PathPatterns, path) {
			continue
		}
		item := paths.Get(path)
		if item == nil || !item.IsMap() {
			continue
		}
		for _, key := range item.Keys() {
			lower := strings.ToLower(key)
			if !recognizedMethods[lower] {
				continue
			}
			if methodSet != nil && !methodSet[lower] {
				continue
			}
			op := item.Get(key)
			if tagSet != nil && !hasAnyTag(op, tagSet) {
				continue
			}
			if securitySet != nil && !hasAnySecurity(op, topLevelSecurity, securitySet) {
				continue
			}
			out = append(out, Selection{Path: path, Method: lower, Operation: op})
		}
	}
	return out
}

func hasAnyTag(op *node.Node, tagSet map[string]bool) bool {
	if op == nil || !op.IsMap() {
		return false
	}
	tags := op.Get("tags")
	if tags == nil || !tags.IsSeq() {
		return false
	}
	for _, t := range tags.Elements() {
		if v, ok := t.StringValue(); ok && tagSet[v] {
			return true
		}
	}
	return false
}

func hasAnySecurity(op, topLevelSecurity *node.Node, securitySet map[string]bool) bool {
	sec := op.Get("security")
	if sec == nil {
		sec = topLevelSecurity
	}
	if sec == nil || !sec.IsSeq() {
		return false
	}
	for _, requirement := range sec.Elements() {
		if !requirement.IsMap() {
			continue
		}
		for _, schemeName := range requirement.Keys() {
			if securitySet[schemeName] {
				return true
			}
		}
	}
	return false
}
