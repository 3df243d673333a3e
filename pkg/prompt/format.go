package prompt

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
)

// FormatInstructions generates a textual description of the JSON output
// schema from a struct definition. The description is embedded in the
// system prompt to steer the model toward schema-conformant output; it is
// derived from the struct's json and desc tags rather than hand-written so
// the prompt can never drift from the parser.
func FormatInstructions(schema any) (string, error) {
	t := reflect.TypeOf(schema)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return "", fmt.Errorf("schema must be a struct, got %v", t)
	}

	properties := map[string]map[string]string{}
	required := []string{}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := jsonFieldName(field)
		if name == "" {
			continue
		}

		if field.Type.Kind() != reflect.String {
			return "", fmt.Errorf("field %s: only string fields are supported, got %s",
				field.Name, field.Type.Kind())
		}

		prop := map[string]string{"type": "string"}
		if desc := field.Tag.Get("desc"); desc != "" {
			prop["description"] = desc
		}
		properties[name] = prop
		required = append(required, name)
	}

	if len(required) == 0 {
		return "", fmt.Errorf("schema %s has no serializable fields", t.Name())
	}

	doc := map[string]any{
		"type":                 "object",
		"properties":           properties,
		"required":             required,
		"additionalProperties": false,
	}

	js, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema: %w", err)
	}

	var b strings.Builder
	b.WriteString("The output must be a single JSON object that conforms to the JSON schema below.\n")
	b.WriteString("Every listed property is required and must be a string. Do not add any other properties.\n\n")
	b.WriteString("```json\n")
	b.Write(js)
	b.WriteString("\n```")

	return b.String(), nil
}

func jsonFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "-" {
		return ""
	}
	if tag == "" {
		return field.Name
	}
	name := strings.Split(tag, ",")[0]
	if name == "" {
		return field.Name
	}
	return name
}
