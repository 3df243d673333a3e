package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bigodev/bigod/pkg/errors"
)

func TestParseResult_Valid(t *testing.T) {
	raw := `{"time":"O(n log n)","timeExplanation":"sort dominates","space":"O(n)","spaceExplanation":"auxiliary buffer"}`

	result, err := ParseResult(raw)
	require.NoError(t, err)

	assert.Equal(t, "O(n log n)", result.Time)
	assert.Equal(t, "sort dominates", result.TimeExplanation)
	assert.Equal(t, "O(n)", result.Space)
	assert.Equal(t, "auxiliary buffer", result.SpaceExplanation)
}

func TestParseResult_FencedOutput(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "plain fence",
			raw:  "```\n{\"time\":\"O(1)\",\"timeExplanation\":\"a\",\"space\":\"O(1)\",\"spaceExplanation\":\"b\"}\n```",
		},
		{
			name: "json fence",
			raw:  "```json\n{\"time\":\"O(1)\",\"timeExplanation\":\"a\",\"space\":\"O(1)\",\"spaceExplanation\":\"b\"}\n```",
		},
		{
			name: "surrounding whitespace",
			raw:  "\n\n  {\"time\":\"O(1)\",\"timeExplanation\":\"a\",\"space\":\"O(1)\",\"spaceExplanation\":\"b\"}  \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseResult(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, "O(1)", result.Time)
		})
	}
}

func TestParseResult_Failures(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"prose", "The complexity is O(n)."},
		{"array", `[1,2,3]`},
		{"missing time", `{"timeExplanation":"a","space":"O(1)","spaceExplanation":"b"}`},
		{"missing spaceExplanation", `{"time":"O(1)","timeExplanation":"a","space":"O(1)"}`},
		{"non-string field", `{"time":1,"timeExplanation":"a","space":"O(1)","spaceExplanation":"b"}`},
		{"extra field", `{"time":"O(1)","timeExplanation":"a","space":"O(1)","spaceExplanation":"b","note":"x"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResult(tt.raw)
			require.Error(t, err)
			assert.Equal(t, errors.ErrCodeParse, errors.CodeOf(err))
		})
	}
}
