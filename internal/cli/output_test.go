package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/orderbook/internal/models"
	"github.com/thenoetrevino/orderbook/internal/testutil"
)

type stringerData struct{ name string }

func (s stringerData) String() string { return "item " + s.name }

func TestOutputFormatter_Success_JSON(t *testing.T) {
	tests := []struct {
		name string
		data any
		want any
	}{
		{"map data", map[string]any{"test": "value"}, map[string]any{"test": "value"}},
		{"string data", "simple string", "simple string"},
		{"integer data", 42, float64(42)},
		{"nil data", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			formatter := &OutputFormatter{JSON: true}

			output := testutil.CaptureOutput(t, func() {
				require.NoError(t, formatter.Success(tt.data))
			})

			result := testutil.ParseJSON(t, output)
			assert.Equal(t, true, result["success"])
			assert.Equal(t, tt.want, result["data"])
		})
	}
}

func TestOutputFormatter_Success_QuietUsesID(t *testing.T) {
	formatter := &OutputFormatter{Quiet: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Success(models.Organization{Code: 42, Name: "ACME"}))
	})

	assert.Equal(t, "42\n", output)
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	formatter := &OutputFormatter{}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.Success(stringerData{name: "widget"}))
		require.NoError(t, formatter.Success(struct{ N int }{N: 7}))
	})

	assert.Equal(t, "item widget\n{N:7}\n", output)
}

func TestOutputFormatter_List(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.List("items", []string{"a", "b"}))
	})

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	assert.Equal(t, []any{"a", "b"}, result["items"])
}

func TestOutputFormatter_Error_JSON(t *testing.T) {
	formatter := &OutputFormatter{JSON: true}

	output := testutil.CaptureOutput(t, func() {
		require.NoError(t, formatter.ErrorWithSuggestion("ITEM_NOT_FOUND", "item not found", "run 'orderbook item list'"))
	})

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "ITEM_NOT_FOUND", errData["code"])
	assert.Equal(t, "item not found", errData["message"])
	assert.Equal(t, "run 'orderbook item list'", errData["suggestion"])
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	formatter := &OutputFormatter{}

	var stdout string
	stderr := testutil.CaptureStderr(t, func() {
		stdout = testutil.CaptureOutput(t, func() {
			require.NoError(t, formatter.ErrorWithSuggestion("X", "boom", "try again"))
			formatter.Warn("price of Gizmo is 0")
		})
	})

	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: boom")
	assert.Contains(t, stderr, "Suggestion: try again")
	assert.Contains(t, stderr, "Warning: price of Gizmo is 0")
}

func TestOutputFormatter_Warn_SilentInMachineModes(t *testing.T) {
	for _, formatter := range []*OutputFormatter{{JSON: true}, {Quiet: true}} {
		stderr := testutil.CaptureStderr(t, func() {
			formatter.Warn("ignored")
		})
		assert.Empty(t, strings.TrimSpace(stderr))
	}
}
