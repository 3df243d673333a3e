package analysis

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRequest_Valid(t *testing.T) {
	req, err := DecodeRequest([]byte(`{"code": "def f(): pass", "language": "python"}`))
	require.NoError(t, err)

	assert.Equal(t, "def f(): pass", req.Code)
	assert.Equal(t, "python", req.Language)
}

func TestDecodeRequest_EmptyStringsAccepted(t *testing.T) {
	// Presence and type are checked, not content; the model decides what
	// to do with an empty snippet.
	req, err := DecodeRequest([]byte(`{"code": "", "language": ""}`))
	require.NoError(t, err)
	assert.Empty(t, req.Code)
}

func TestDecodeRequest_Violations(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantFields []string
	}{
		{"missing both", `{}`, []string{"code", "language"}},
		{"missing code", `{"language": "go"}`, []string{"code"}},
		{"code not a string", `{"code": 42, "language": "go"}`, []string{"code"}},
		{"language not a string", `{"code": "x", "language": ["go"]}`, []string{"language"}},
		{"both wrong type", `{"code": null, "language": 1}`, []string{"code", "language"}},
		{"body not an object", `[1,2]`, []string{"body"}},
		{"body not JSON", `garbage`, []string{"body"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRequest([]byte(tt.body))
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, stderrors.As(err, &verr))

			got := make([]string, 0, len(verr.Violations))
			for _, v := range verr.Violations {
				got = append(got, v.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, got)
		})
	}
}

func TestDecodeRequest_NullIsWrongType(t *testing.T) {
	// json.Unmarshal of null into a string succeeds as a no-op, which
	// would silently admit null fields; the validator must reject them.
	_, err := DecodeRequest([]byte(`{"code": null, "language": "go"}`))
	require.Error(t, err)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Violations: []FieldViolation{
		{Field: "code", Message: "field is required"},
		{Field: "language", Message: "field must be a string"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "code: field is required")
	assert.Contains(t, msg, "language: field must be a string")
}
