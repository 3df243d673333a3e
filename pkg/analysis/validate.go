package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// FieldViolation describes a single failed request field check.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the full list of field-level violations for a
// rejected request. No external call is made when it is returned.
type ValidationError struct {
	Violations []FieldViolation
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "invalid request: " + strings.Join(parts, "; ")
}

// DecodeRequest parses and validates a raw request body against the Request
// schema: the body must be a JSON object and both code and language must be
// present JSON strings. It has no side effects.
func DecodeRequest(body []byte) (Request, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return Request{}, &ValidationError{Violations: []FieldViolation{
			{Field: "body", Message: "request body must be a JSON object"},
		}}
	}

	var req Request
	var violations []FieldViolation

	req.Code, violations = stringField(raw, "code", violations)
	req.Language, violations = stringField(raw, "language", violations)

	if len(violations) > 0 {
		return Request{}, &ValidationError{Violations: violations}
	}

	return req, nil
}

// stringField extracts a required string field, appending a violation when
// the field is absent or not a JSON string. Unmarshaling null into a string
// is a no-op, so the token is checked before decoding.
func stringField(raw map[string]json.RawMessage, name string, violations []FieldViolation) (string, []FieldViolation) {
	val, ok := raw[name]
	if !ok {
		return "", append(violations, FieldViolation{Field: name, Message: "field is required"})
	}

	trimmed := bytes.TrimSpace(val)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", append(violations, FieldViolation{Field: name, Message: "field must be a string"})
	}

	var s string
	if err := json.Unmarshal(val, &s); err != nil {
		return "", append(violations, FieldViolation{Field: name, Message: "field must be a string"})
	}

	return s, violations
}
