package analysis

// Request is the analysis input: a code snippet and a free-form language
// label. Neither field is interpreted by this service beyond presence and
// type checks; the external model does the actual analysis.
type Request struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// Result is the structured complexity analysis. The desc tags feed the
// machine-generated format instructions embedded in the prompt, so the
// schema sent to the model and the schema enforced by the parser can never
// drift apart.
type Result struct {
	Time             string `json:"time" desc:"time complexity in Big O notation, e.g. O(n)"`
	TimeExplanation  string `json:"timeExplanation" desc:"short explanation of the time complexity"`
	Space            string `json:"space" desc:"space complexity in Big O notation, e.g. O(1)"`
	SpaceExplanation string `json:"spaceExplanation" desc:"short explanation of the space complexity"`
}

// errValue is the literal substituted for time/space in degraded responses.
const errValue = "Error"

// resultFields lists the schema keys the parser enforces, in schema order.
var resultFields = []string{"time", "timeExplanation", "space", "spaceExplanation"}

// UnconfiguredResult is the fixed degraded payload returned when the
// pipeline was never constructed (e.g., missing model credential). It keeps
// the success schema's field set so callers never branch on shape.
func UnconfiguredResult() Result {
	return Result{
		Time:             errValue,
		TimeExplanation:  "Server-side model is not configured.",
		Space:            errValue,
		SpaceExplanation: "Please check the server logs.",
	}
}

// FailureResult is the degraded payload for model invocation and parsing
// failures. The raw error text is surfaced in spaceExplanation for
// diagnostics.
func FailureResult(err error) Result {
	return Result{
		Time:             errValue,
		TimeExplanation:  "Failed to analyze code. The code may be incomplete or invalid.",
		Space:            errValue,
		SpaceExplanation: "Server error: " + err.Error(),
	}
}
