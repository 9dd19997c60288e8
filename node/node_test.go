package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBytes_JSONPreservesKeyOrder(t *testing.T) {
	data := []byte(`{"b": 1, "a": 2, "c": 3}`)
	root, format, err := ParseBytes(data)
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, format)
	assert.Equal(t, []string{"b", "a", "c"}, root.Keys())
}

func TestParseBytes_YAMLPreservesKeyOrder(t *testing.T) {
	data := []byte("b: 1\na: 2\nc: 3\n")
	root, format, err := ParseBytes(data)
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, format)
	assert.Equal(t, []string{"b", "a", "c"}, root.Keys())
}

func TestParseBytes_InvalidInput(t *testing.T) {
	_, _, err := ParseBytes([]byte("{not: valid: yaml: ["))
	assert.Error(t, err)
}

func TestNode_GetAndHas(t *testing.T) {
	root, _, err := ParseBytes([]byte(`{"paths": {"/users": {"get": {}}}}`))
	require.NoError(t, err)

	assert.True(t, root.Has("paths"))
	assert.False(t, root.Has("components"))

	paths := root.Get("paths")
	require.NotNil(t, paths)
	assert.True(t, paths.IsMap())

	users := paths.Get("/users")
	require.NotNil(t, users)
	assert.True(t, users.Has("get"))
	assert.Nil(t, paths.Get("/missing"))
}

func TestNode_Set_AppendsNewKeysPreservingOrder(t *testing.T) {
	m := NewMap()
	m.Set("openapi", NewString("3.0.3"))
	m.Set("info", NewMap())
	m.Set("openapi", NewString("3.0.4")) // update, not append

	assert.Equal(t, []string{"openapi", "info"}, m.Keys())
	v, ok := m.Get("openapi").StringValue()
	require.True(t, ok)
	assert.Equal(t, "3.0.4", v)
}

func TestNode_SequenceOperations(t *testing.T) {
	root, _, err := ParseBytes([]byte(`["a", "b", "c"]`))
	require.NoError(t, err)
	assert.True(t, root.IsSeq())
	assert.Equal(t, 3, root.Len())

	v, ok := root.Index(1).StringValue()
	require.True(t, ok)
	assert.Equal(t, "b", v)

	seq := NewSeq()
	seq.Append(NewString("x"))
	seq.Append(NewString("y"))
	assert.Equal(t, 2, seq.Len())
}

func TestNode_ScalarAndNull(t *testing.T) {
	root, _, err := ParseBytes([]byte(`{"a": null, "b": "text", "c": 42, "d": true}`))
	require.NoError(t, err)

	assert.True(t, root.Get("a").IsNull())
	_, ok := root.Get("a").StringValue()
	assert.False(t, ok, "null scalar should not report a string value")

	v, ok := root.Get("b").StringValue()
	require.True(t, ok)
	assert.Equal(t, "text", v)

	assert.Equal(t, "42", root.Get("c").ScalarValue())
	assert.Equal(t, "true", root.Get("d").ScalarValue())
}

func TestNode_NilSafety(t *testing.T) {
	var n *Node
	assert.False(t, n.IsMap())
	assert.False(t, n.IsSeq())
	assert.False(t, n.IsScalar())
	assert.Nil(t, n.Get("anything"))
	assert.Equal(t, 0, n.Len())
	assert.Nil(t, n.Keys())
	assert.Equal(t, "<nil>", n.String())
}
