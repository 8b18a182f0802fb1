package catalog

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/tutela/pkg/handlers"
	"github.com/JaimeStill/tutela/pkg/routes"
)

// Handler provides HTTP endpoints for the questionnaire: the question list
// and answer-set evaluation (visibility, progress, gating). Stateless; the
// catalog is static data.
type Handler struct {
	logger *slog.Logger
}

// EvaluateRequest carries the answers supplied so far and the locale for
// resolving visible question text.
type EvaluateRequest struct {
	Answers []Answer `json:"answers"`
	Locale  string   `json:"locale"`
}

// EvaluateResponse reports the answer set's evaluation state for the UI.
type EvaluateResponse struct {
	VisibleQuestions []Question `json:"visible_questions"`
	Progress         int        `json:"progress"`
	CanClassify      bool       `json:"can_classify"`
}

// NewHandler creates a questionnaire Handler.
func NewHandler(logger *slog.Logger) *Handler {
	return &Handler{
		logger: logger.With("handler", "questionnaire"),
	}
}

// Routes returns the route group definition for questionnaire endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/questionnaire",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.Questions},
			{Method: "POST", Pattern: "/evaluate", Handler: h.Evaluate},
		},
	}
}

// Questions returns the full question catalog resolved to the locale query
// parameter. Unsupported locales fall back to the default.
func (h *Handler) Questions(w http.ResponseWriter, r *http.Request) {
	loc := ParseLocale(r.URL.Query().Get("locale"))
	handlers.RespondJSON(w, http.StatusOK, Questions(loc))
}

// Evaluate accepts a JSON body of answers and returns the visible question
// set, weighted progress, and whether the classification gate is met.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	resp := EvaluateResponse{
		VisibleQuestions: VisibleQuestions(req.Answers, ParseLocale(req.Locale)),
		Progress:         Progress(req.Answers),
		CanClassify:      CanClassify(req.Answers),
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}
