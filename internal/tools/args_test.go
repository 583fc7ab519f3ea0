package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgInt64_Coercions(t *testing.T) {
	args := map[string]any{
		"float":  float64(4),
		"number": json.Number("7"),
		"str":    "12",
		"bad":    "twelve",
		"nil":    nil,
	}

	v, ok, err := argInt64(args, "float")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(4), v)

	v, ok, err = argInt64(args, "number")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), v)

	v, ok, err = argInt64(args, "str")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(12), v)

	_, _, err = argInt64(args, "bad")
	assert.Error(t, err)

	_, ok, err = argInt64(args, "nil")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = argInt64(args, "absent")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgString_WrongKind(t *testing.T) {
	_, _, err := argString(map[string]any{"city": float64(7)}, "city")
	assert.Error(t, err)
}

func TestArgFloat64_StringCoercion(t *testing.T) {
	v, ok, err := argFloat64(map[string]any{"min_rating": "4.5"}, "min_rating")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 4.5, v)
}

func TestRequireHelpers_MissingKey(t *testing.T) {
	_, err := requireString(map[string]any{}, "customer_name")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer_name")

	_, err = requireInt64(map[string]any{}, "party_size")
	assert.Error(t, err)
}
