package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sukkola/openapiv3-filter/filter"
	"github.com/sukkola/openapiv3-filter/node"
	"github.com/sukkola/openapiv3-filter/selector"
)

type filterInput struct {
	specInput
	Paths    []string `json:"paths,omitempty"    jsonschema:"Path glob patterns; a single '*' matches any run of characters including '/'"`
	Methods  []string `json:"methods,omitempty"  jsonschema:"HTTP methods to keep, case-insensitive (get, post, ...)"`
	Tags     []string `json:"tags,omitempty"     jsonschema:"Operation tag names to keep"`
	Security []string `json:"security,omitempty" jsonschema:"Security scheme names to keep"`
	Format   string   `json:"format,omitempty"   jsonschema:"Output format: json or yaml; defaults to the detected input format"`
}

type filterOutput struct {
	Document       string `json:"document"`
	Format         string `json:"format"`
	PathCount      int    `json:"path_count"`
	OperationCount int    `json:"operation_count"`
}

func handleFilter(_ context.Context, _ *mcp.CallToolRequest, in filterInput) (*mcp.CallToolResult, filterOutput, error) {
	root, detected, err := in.specInput.resolve()
	if err != nil {
		return errResult(err), filterOutput{}, nil
	}

	spec := selector.FilterSpec{
		PathPatterns: in.Paths,
		Methods:      in.Methods,
		Tags:         in.Tags,
		Security:     in.Security,
	}

	filtered, err := filter.Filter(root, spec)
	if err != nil {
		return errResult(err), filterOutput{}, nil
	}

	outFormat := detected
	switch in.Format {
	case "json":
		outFormat = node.FormatJSON
	case "yaml":
		outFormat = node.FormatYAML
	}

	encoded, err := node.Encode(filtered, outFormat)
	if err != nil {
		return errResult(err), filterOutput{}, nil
	}

	pathCount, opCount := countPathsAndOperations(filtered)

	return nil, filterOutput{
		Document:       string(encoded),
		Format:         outFormat.String(),
		PathCount:      pathCount,
		OperationCount: opCount,
	}, nil
}

func countPathsAndOperations(root *node.Node) (paths, operations int) {
	pathsNode := root.Get("paths")
	if pathsNode == nil || !pathsNode.IsMap() {
		return 0, 0
	}
	paths = len(pathsNode.Keys())
	for _, pathKey := range pathsNode.Keys() {
		item := pathsNode.Get(pathKey)
		if item == nil || !item.IsMap() {
			continue
		}
		for _, key := range item.Keys() {
			if selector.IsOperationMethod(key) {
				operations++
			}
		}
	}
	return paths, operations
}
