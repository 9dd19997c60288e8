package mcpserver

import (
	"fmt"
	"os"

	"github.com/sukkola/openapiv3-filter/node"
)

// specInput represents the two ways an OpenAPI document can be provided to
// a tool. Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to an OpenAPI document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML)"`
}

// resolve decodes the document from whichever input was provided and
// returns its order-preserving tree along with the detected format.
func (s specInput) resolve() (*node.Node, node.Format, error) {
	count := 0
	if s.File != "" {
		count++
	}
	if s.Content != "" {
		count++
	}
	if count != 1 {
		return nil, node.FormatUnknown, fmt.Errorf("exactly one of file or content must be provided (got %d)", count)
	}

	if s.Content != "" {
		if int64(len(s.Content)) > cfg.MaxInlineSize {
			return nil, node.FormatUnknown, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASFILTER_MAX_INLINE_SIZE to increase",
				len(s.Content), cfg.MaxInlineSize)
		}
		return node.ParseBytes([]byte(s.Content))
	}

	data, err := os.ReadFile(s.File)
	if err != nil {
		return nil, node.FormatUnknown, fmt.Errorf("reading %s: %w", s.File, err)
	}
	root, format, err := node.ParseBytes(data)
	if err != nil {
		return nil, node.FormatUnknown, err
	}
	if format == node.FormatUnknown {
		format = node.DetectFormatFromPath(s.File)
	}
	return root, format, nil
}
