package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Amplify/internal/scoring"
)

type ExplainHandler struct {
	engine *scoring.Engine
}

func NewExplainHandler(e *scoring.Engine) *ExplainHandler {
	return &ExplainHandler{engine: e}
}

// Weights returns the continuous-variant weights in use.
// GET /api/v1/scoring/weights
func (h *ExplainHandler) Weights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Weights())
}

// Lexicon returns the keyword patterns per category.
// GET /api/v1/scoring/lexicon
func (h *ExplainHandler) Lexicon(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.engine.Lexicon())
}
