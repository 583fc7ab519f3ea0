package agent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectToolCall_Valid(t *testing.T) {
	text := "Let me check that.\nTOOL: check_availability\nARGS: {\"restaurant_id\": 12, \"time\": \"2024-05-01T19:30\", \"party_size\": 4}"
	inv, ok := DetectToolCall(text)
	require.True(t, ok)
	assert.Equal(t, "check_availability", inv.Name)
	assert.Equal(t, float64(12), inv.Args["restaurant_id"])
	assert.Equal(t, "2024-05-01T19:30", inv.Args["time"])
}

func TestDetectToolCall_MultilineArgs(t *testing.T) {
	text := "TOOL: book_table\nARGS: {\n  \"restaurant_id\": 3,\n  \"customer_name\": \"Karim\",\n  \"time\": \"2024-05-01T19:30\",\n  \"party_size\": 2\n}"
	inv, ok := DetectToolCall(text)
	require.True(t, ok)
	assert.Equal(t, "book_table", inv.Name)
	assert.Equal(t, "Karim", inv.Args["customer_name"])
}

func TestDetectToolCall_EmptyArgsObject(t *testing.T) {
	inv, ok := DetectToolCall("TOOL: get_loyalty_profile\nARGS: {}")
	require.True(t, ok)
	assert.Equal(t, "get_loyalty_profile", inv.Name)
	assert.Empty(t, inv.Args)
}

func TestDetectToolCall_PlainText(t *testing.T) {
	_, ok := DetectToolCall("Sure, what time would you like to dine?")
	assert.False(t, ok)
}

func TestDetectToolCall_MissingArgs(t *testing.T) {
	_, ok := DetectToolCall("TOOL: book_table")
	assert.False(t, ok)
}

func TestDetectToolCall_MalformedJSON(t *testing.T) {
	_, ok := DetectToolCall("TOOL: book_table\nARGS: {not json")
	assert.False(t, ok)
}

func TestDetectToolCall_NonObjectArgs(t *testing.T) {
	_, ok := DetectToolCall("TOOL: book_table\nARGS: [1, 2]")
	assert.False(t, ok)
}

func TestDetectToolCall_EmptyName(t *testing.T) {
	_, ok := DetectToolCall("TOOL: \nARGS: {}")
	assert.False(t, ok)
}

// A name with interior spaces still parses; dispatch rejects it as unknown.
func TestDetectToolCall_SpacedNameReachesDispatch(t *testing.T) {
	inv, ok := DetectToolCall("TOOL: book a table\nARGS: {}")
	require.True(t, ok)
	assert.Equal(t, "book a table", inv.Name)
}

func TestDetectToolCall_TotalOnGarbage(t *testing.T) {
	for _, text := range []string{
		"",
		"TOOL:",
		"ARGS: {}",
		"TOOL:\nTOOL:\nARGS:",
		"TOOL: x\nARGS:",
	} {
		_, ok := DetectToolCall(text)
		assert.False(t, ok, "input %q", text)
	}
}
