package httputil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHTTPMethodConstants verifies that method constants have expected lowercase values.
// This ensures consistency with OpenAPI path-item field names.
func TestHTTPMethodConstants(t *testing.T) {
	assert.Equal(t, "get", MethodGet, "MethodGet should be lowercase")
	assert.Equal(t, "put", MethodPut, "MethodPut should be lowercase")
	assert.Equal(t, "post", MethodPost, "MethodPost should be lowercase")
	assert.Equal(t, "delete", MethodDelete, "MethodDelete should be lowercase")
	assert.Equal(t, "options", MethodOptions, "MethodOptions should be lowercase")
	assert.Equal(t, "head", MethodHead, "MethodHead should be lowercase")
	assert.Equal(t, "patch", MethodPatch, "MethodPatch should be lowercase")
	assert.Equal(t, "trace", MethodTrace, "MethodTrace should be lowercase")
}
