// Package analysis implements the Big-O complexity analysis pipeline and
// its HTTP surface.
//
// The pipeline is a strict sequence: validate the request, render the fixed
// prompt (with format instructions machine-generated from the Result
// schema), invoke the external model, and strictly parse the model's output
// back into the Result schema. There is no retry policy and no partial
// success: either the model produces all four result fields, or the caller
// receives the fixed degraded payload in the same shape.
//
// The pipeline object is built once at startup and shared read-only across
// requests. When the model client cannot be constructed (missing
// credential), the handler is created with a nil pipeline and every analyze
// request returns 503 with the unconfigured payload.
package analysis
