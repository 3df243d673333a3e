package prompt

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var templateData []byte

// templates holds the fixed message pair sent to the model. The system
// message is invariant across requests; the human message carries the
// per-request substitutions.
type templates struct {
	System string `yaml:"system"`
	Human  string `yaml:"human"`
}

// Renderer deterministically builds the instruction text sent to the model.
// It is constructed once at startup and is safe for concurrent use.
type Renderer struct {
	system string
	human  string
}

// NewRenderer loads the embedded templates and bakes the machine-generated
// format instructions for the given output schema into the system message.
func NewRenderer(schema any) (*Renderer, error) {
	var t templates
	if err := yaml.Unmarshal(templateData, &t); err != nil {
		return nil, fmt.Errorf("failed to parse prompt templates: %w", err)
	}
	if strings.TrimSpace(t.System) == "" || strings.TrimSpace(t.Human) == "" {
		return nil, fmt.Errorf("prompt templates are incomplete")
	}

	instructions, err := FormatInstructions(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to generate format instructions: %w", err)
	}

	return &Renderer{
		system: strings.ReplaceAll(t.System, "{format_instructions}", instructions),
		human:  t.Human,
	}, nil
}

// System returns the rendered system message. It does not vary per request.
func (r *Renderer) System() string {
	return r.system
}

// Human returns the human message with the language and code substituted.
func (r *Renderer) Human(language, code string) string {
	out := strings.ReplaceAll(r.human, "{language}", language)
	return strings.ReplaceAll(out, "{code}", code)
}
