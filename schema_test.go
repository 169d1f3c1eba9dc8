package toolbelt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaFor_Struct(t *testing.T) {
	t.Parallel()
	type args struct {
		Query string `json:"query"`
		Limit int    `json:"limit,omitempty"`
	}
	schemaMap, resolved, err := schemaFor[args](false)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	props, ok := schemaMap["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "query")
	assert.Contains(t, props, "limit")

	require.NoError(t, resolved.Validate(map[string]any{"query": "go", "limit": float64(3)}))
	assert.Error(t, resolved.Validate(map[string]any{"query": float64(1)}))
}

func TestApplyStrictMode_Nested(t *testing.T) {
	t.Parallel()
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"outer": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"inner": map[string]any{"type": "string"},
				},
			},
		},
	}
	applyStrictMode(schema)
	assert.Equal(t, false, schema["additionalProperties"])
	assert.Equal(t, []any{"outer"}, schema["required"])

	outer := schema["properties"].(map[string]any)["outer"].(map[string]any)
	assert.Equal(t, false, outer["additionalProperties"])
	assert.Equal(t, []any{"inner"}, outer["required"])
}

func TestStripSchemaIDs(t *testing.T) {
	t.Parallel()
	schema := map[string]any{
		"$id":  "https://example.com/root",
		"type": "object",
		"properties": map[string]any{
			"x": map[string]any{"id": "x-id", "type": "string"},
		},
	}
	stripSchemaIDs(schema)
	assert.NotContains(t, schema, "$id")
	prop := schema["properties"].(map[string]any)["x"].(map[string]any)
	assert.NotContains(t, prop, "id")
}

func TestCompileSchema_Invalid(t *testing.T) {
	t.Parallel()
	_, err := compileSchema(map[string]any{"type": 123})
	require.Error(t, err)
}

func TestCompileSchema_DoesNotMutateInput(t *testing.T) {
	t.Parallel()
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{"x": map[string]any{"type": "integer"}},
	}
	_, err := compileSchema(schema)
	require.NoError(t, err)
	assert.Equal(t, "object", schema["type"])
	assert.Len(t, schema["properties"], 1)
}
