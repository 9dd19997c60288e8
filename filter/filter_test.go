package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukkola/openapiv3-filter/node"
	"github.com/sukkola/openapiv3-filter/selector"
)

func mustParse(t *testing.T, data string) *node.Node {
	t.Helper()
	n, _, err := node.ParseBytes([]byte(data))
	require.NoError(t, err)
	return n
}

func mustEncode(t *testing.T, n *node.Node) string {
	t.Helper()
	out, err := node.Encode(n, node.FormatJSON)
	require.NoError(t, err)
	return string(out)
}

const sampleDoc = `{
	"openapi": "3.0.3",
	"info": {"title": "Sample", "version": "1.0.0"},
	"tags": [
		{"name": "pets", "description": "pet operations"},
		{"name": "admin", "description": "admin operations"}
	],
	"paths": {
		"/pets": {
			"get": {
				"tags": ["pets"],
				"responses": {
					"200": {"$ref": "#/components/responses/PetList"}
				}
			}
		},
		"/admin/reset": {
			"post": {
				"tags": ["admin"],
				"security": [{"oauth2": ["admin"]}],
				"responses": {"204": {"description": "ok"}}
			}
		}
	},
	"components": {
		"responses": {
			"PetList": {
				"description": "a list of pets",
				"content": {
					"application/json": {
						"schema": {"$ref": "#/components/schemas/PetArray"}
					}
				}
			}
		},
		"schemas": {
			"PetArray": {
				"type": "array",
				"items": {"$ref": "#/components/schemas/Pet"}
			},
			"Pet": {
				"type": "object",
				"properties": {"name": {"type": "string"}}
			},
			"Unrelated": {"type": "string"}
		},
		"securitySchemes": {
			"oauth2": {"type": "oauth2"}
		}
	}
}`

func TestFilter_NoFilters_KeepsAllOperationsAndPrunesUnreachable(t *testing.T) {
	root := mustParse(t, sampleDoc)
	out, err := filterDoc(t, root, selector.FilterSpec{})
	require.NoError(t, err)

	assert.Equal(t, []string{"openapi", "info", "tags", "paths", "components"}, out.Keys(),
		"output key order must match input order, not a fixed/appended order")
	assert.Equal(t, []string{"responses", "schemas"}, out.Get("components").Keys(),
		"component category order must match input order, not a canonical list order")
	assert.ElementsMatch(t, []string{"/pets", "/admin/reset"}, out.Get("paths").Keys())
	assert.True(t, out.Get("components").Get("schemas").Has("Pet"))
	assert.True(t, out.Get("components").Get("schemas").Has("PetArray"))
	assert.False(t, out.Get("components").Get("schemas").Has("Unrelated"), "unreachable schema is pruned even with no filters")
	assert.False(t, out.Get("components").Get("securitySchemes").Has("oauth2"), "security requirement names are not $ref edges")
	assert.Equal(t, 2, out.Get("tags").Len())
}

func TestFilter_KeyOrder_TagsBeforePathsIsNotReorderedWhenPruned(t *testing.T) {
	root := mustParse(t, sampleDoc)
	out, err := filterDoc(t, root, selector.FilterSpec{PathPatterns: []string{"/pets"}})
	require.NoError(t, err)

	// "admin" is pruned out of tags and "/admin/reset" out of paths, but the
	// surviving keys must still appear in their original relative order:
	// tags before paths before components.
	assert.Equal(t, []string{"openapi", "info", "tags", "paths", "components"}, out.Keys())
}

func TestFilter_ArbitraryComponentCategoryIsPreserved(t *testing.T) {
	root := mustParse(t, `{
		"paths": {
			"/x": {"get": {"responses": {"200": {"$ref": "#/components/pathItems/Shared"}}}}
		},
		"components": {
			"pathItems": {
				"Shared": {"get": {"responses": {}}},
				"Unused": {"get": {"responses": {}}}
			}
		}
	}`)
	out, err := filterDoc(t, root, selector.FilterSpec{})
	require.NoError(t, err)

	pathItems := out.Get("components").Get("pathItems")
	require.NotNil(t, pathItems, "a non-canonical category reachable via $ref must still be emitted")
	assert.True(t, pathItems.Has("Shared"))
	assert.False(t, pathItems.Has("Unused"))
}

func TestFilter_PathFilter_ClosesReferencesAndDropsUnreachable(t *testing.T) {
	root := mustParse(t, sampleDoc)
	out, err := filterDoc(t, root, selector.FilterSpec{PathPatterns: []string{"/pets"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"/pets"}, out.Get("paths").Keys())

	schemas := out.Get("components").Get("schemas")
	assert.True(t, schemas.Has("Pet"))
	assert.True(t, schemas.Has("PetArray"))
	assert.False(t, schemas.Has("Unrelated"), "unreferenced schema must be dropped")

	responses := out.Get("components").Get("responses")
	assert.True(t, responses.Has("PetList"))

	assert.Nil(t, out.Get("components").Get("securitySchemes"), "unreferenced category must be dropped")

	tags := out.Get("tags")
	require.Equal(t, 1, tags.Len())
	name, _ := tags.Index(0).Get("name").StringValue()
	assert.Equal(t, "pets", name)
}

func TestFilter_MethodFilter(t *testing.T) {
	root := mustParse(t, sampleDoc)
	out, err := filterDoc(t, root, selector.FilterSpec{Methods: []string{"POST"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"/admin/reset"}, out.Get("paths").Keys())
	assert.True(t, out.Get("paths").Get("/admin/reset").Has("post"))
}

func TestFilter_TagFilter(t *testing.T) {
	root := mustParse(t, sampleDoc)
	out, err := filterDoc(t, root, selector.FilterSpec{Tags: []string{"admin"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"/admin/reset"}, out.Get("paths").Keys())
	tags := out.Get("tags")
	require.Equal(t, 1, tags.Len())
	name, _ := tags.Index(0).Get("name").StringValue()
	assert.Equal(t, "admin", name)
}

func TestFilter_SecurityFilter(t *testing.T) {
	root := mustParse(t, sampleDoc)
	out, err := filterDoc(t, root, selector.FilterSpec{Security: []string{"oauth2"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"/admin/reset"}, out.Get("paths").Keys())
	assert.Nil(t, out.Get("components"), "security requirement names are not $ref edges, so no component is reachable")
}

func TestFilter_NoMatches_OmitsComponentsAndTags(t *testing.T) {
	root := mustParse(t, sampleDoc)
	out, err := filterDoc(t, root, selector.FilterSpec{PathPatterns: []string{"/does-not-exist"}})
	require.NoError(t, err)

	assert.Equal(t, 0, out.Get("paths").Len())
	assert.Nil(t, out.Get("components"))
	assert.Nil(t, out.Get("tags"))
}

func TestFilter_NonMethodFieldsPreservedOnSurvivingPaths(t *testing.T) {
	root := mustParse(t, `{
		"paths": {
			"/x": {
				"summary": "a path",
				"parameters": [{"name": "id", "in": "query"}],
				"get": {"responses": {}}
			}
		}
	}`)
	out, err := filterDoc(t, root, selector.FilterSpec{})
	require.NoError(t, err)

	item := out.Get("paths").Get("/x")
	assert.Equal(t, []string{"summary", "parameters", "get"}, item.Keys())
}

func TestFilter_InvalidSpec_ReturnsError(t *testing.T) {
	root := mustParse(t, sampleDoc)
	_, err := Filter(root, selector.FilterSpec{Methods: []string{"fetch"}})
	assert.Error(t, err)
}

func TestFilter_DanglingReferenceIsIgnored(t *testing.T) {
	root := mustParse(t, `{
		"paths": {
			"/x": {"get": {"responses": {"200": {"$ref": "#/components/schemas/Missing"}}}}
		},
		"components": {"schemas": {"Other": {"type": "string"}}}
	}`)
	out, err := filterDoc(t, root, selector.FilterSpec{})
	require.NoError(t, err)

	assert.Nil(t, out.Get("components"), "a category with only unreferenced members is dropped")
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	root := mustParse(t, sampleDoc)
	_, err := filterDoc(t, root, selector.FilterSpec{PathPatterns: []string{"/pets"}})
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"/pets", "/admin/reset"}, root.Get("paths").Keys())
	assert.True(t, root.Get("components").Get("schemas").Has("Unrelated"))
}

func filterDoc(t *testing.T, root *node.Node, spec selector.FilterSpec) (*node.Node, error) {
	t.Helper()
	out, err := Filter(root, spec)
	if err != nil {
		return nil, err
	}
	// Exercise the encode path too, confirming the result is well-formed.
	mustEncode(t, out)
	return out, nil
}
