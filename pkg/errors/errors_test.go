package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestStructuredError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *StructuredError
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidRequest, "missing field"),
			want: "[INVALID_REQUEST] missing field",
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeUpstream, "model call failed", fmt.Errorf("connection refused")),
			want: "[UPSTREAM] model call failed: connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStructuredError_Unwrap(t *testing.T) {
	cause := fmt.Errorf("root cause")
	err := Wrap(ErrCodeParse, "bad output", cause)

	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to match the wrapped cause")
	}

	var se *StructuredError
	if !stderrors.As(err, &se) {
		t.Fatal("expected errors.As to extract StructuredError")
	}
	if se.Code != ErrCodeParse {
		t.Errorf("expected code %s, got %s", ErrCodeParse, se.Code)
	}
}

func TestNewWithContext(t *testing.T) {
	err := NewWithContext(ErrCodeConfiguration, "no credential", map[string]any{
		"env": "DEEPSEEK_API_KEY",
	})

	if err.Context["env"] != "DEEPSEEK_API_KEY" {
		t.Errorf("expected context to be preserved, got %v", err.Context)
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"structured", New(ErrCodeParse, "x"), ErrCodeParse},
		{"wrapped structured", fmt.Errorf("outer: %w", New(ErrCodeUpstream, "y")), ErrCodeUpstream},
		{"plain error", fmt.Errorf("plain"), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %s, want %s", got, tt.want)
			}
		})
	}
}
