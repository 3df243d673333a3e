package analysis

import (
	stderrors "errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/bigodev/bigod/pkg/serializers"
)

// maxRequestBody bounds the /analyze request body. Snippets are expected to
// be small; 1 MiB leaves plenty of headroom.
const maxRequestBody = 1 << 20

// indexHTML is the static health banner served on the root route.
const indexHTML = `<html>
    <head>
        <title>bigod</title>
    </head>
    <body>
        <h1>bigod is up</h1>
    </body>
</html>`

// ValidationResponse is the 400 response shape: an error summary plus the
// itemized field violations.
type ValidationResponse struct {
	Error   string           `json:"error"`
	Details []FieldViolation `json:"details"`
}

// Handler serves the analysis HTTP surface. The pipeline is injected at
// construction; a nil pipeline marks the service as unconfigured and every
// analyze request short-circuits to 503 without touching the model.
type Handler struct {
	pipeline *Pipeline
}

// NewHandler creates a Handler. pipeline may be nil when startup
// configuration failed.
func NewHandler(pipeline *Pipeline) *Handler {
	return &Handler{pipeline: pipeline}
}

// Configured reports whether the analysis pipeline is available.
func (h *Handler) Configured() bool {
	return h.pipeline != nil
}

// HandleIndex handles GET / with a static HTML banner for uptime monitors.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	serializers.RespondHTML(w, http.StatusOK, indexHTML)
}

// HandleAnalyze handles POST /analyze. Four terminal outcomes: 503 when the
// pipeline was never constructed, 400 on validation failure (model never
// invoked), 200 with the parsed result, or 500 with the degraded payload
// when invocation or parsing fails.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		slog.Error("method not allowed", "method", r.Method, "path", r.URL.Path)
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.pipeline == nil {
		analyzeRequestsTotal.WithLabelValues(outcomeUnconfigured).Inc()
		serializers.RespondJSON(w, http.StatusServiceUnavailable, UnconfiguredResult())
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		analyzeRequestsTotal.WithLabelValues(outcomeValidationError).Inc()
		serializers.RespondJSON(w, http.StatusBadRequest, ValidationResponse{
			Error:   "failed to read request body",
			Details: []FieldViolation{{Field: "body", Message: err.Error()}},
		})
		return
	}

	req, err := DecodeRequest(body)
	if err != nil {
		var verr *ValidationError
		details := []FieldViolation{}
		if stderrors.As(err, &verr) {
			details = verr.Violations
		}
		analyzeRequestsTotal.WithLabelValues(outcomeValidationError).Inc()
		serializers.RespondJSON(w, http.StatusBadRequest, ValidationResponse{
			Error:   "request validation failed",
			Details: details,
		})
		return
	}

	result, err := h.pipeline.Analyze(r.Context(), req)
	if err != nil {
		analyzeRequestsTotal.WithLabelValues(outcomePipelineError).Inc()
		serializers.RespondJSON(w, http.StatusInternalServerError, FailureResult(err))
		return
	}

	analyzeRequestsTotal.WithLabelValues(outcomeOK).Inc()
	serializers.RespondJSON(w, http.StatusOK, result)
}
