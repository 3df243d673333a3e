package analysis

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bigodev/bigod/pkg/errors"
)

// ParseResult strictly parses raw model output into a Result. The text must
// be a single JSON object carrying exactly the four schema fields, each a
// string. Missing fields, unknown fields, or non-JSON text are parse
// failures; nothing is silently defaulted.
//
// Models occasionally fence their output despite instructions, so a leading
// and trailing markdown fence is tolerated before decoding.
func ParseResult(raw string) (Result, error) {
	text := stripFences(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return Result{}, errors.Wrap(errors.ErrCodeParse, "model output is not a JSON object", err)
	}

	values := make(map[string]string, len(resultFields))
	for _, name := range resultFields {
		val, ok := fields[name]
		if !ok {
			return Result{}, errors.New(errors.ErrCodeParse,
				fmt.Sprintf("model output is missing required field %q", name))
		}
		trimmed := bytes.TrimSpace(val)
		if len(trimmed) == 0 || trimmed[0] != '"' {
			return Result{}, errors.New(errors.ErrCodeParse,
				fmt.Sprintf("model output field %q is not a string", name))
		}
		var s string
		if err := json.Unmarshal(val, &s); err != nil {
			return Result{}, errors.Wrap(errors.ErrCodeParse,
				fmt.Sprintf("model output field %q is not a string", name), err)
		}
		values[name] = s
	}

	if len(fields) > len(resultFields) {
		for name := range fields {
			if _, ok := values[name]; !ok {
				return Result{}, errors.New(errors.ErrCodeParse,
					fmt.Sprintf("model output carries unexpected field %q", name))
			}
		}
	}

	return Result{
		Time:             values["time"],
		TimeExplanation:  values["timeExplanation"],
		Space:            values["space"],
		SpaceExplanation: values["spaceExplanation"],
	}, nil
}

// stripFences removes a single enclosing markdown code fence, with or
// without a language tag, leaving other text untouched.
func stripFences(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	if idx := strings.Index(text, "\n"); idx != -1 {
		text = text[idx+1:]
	} else {
		return text
	}

	text = strings.TrimSpace(text)
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
