package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Amplify/internal/metrics"
	"github.com/MikeSquared-Agency/Amplify/internal/scoring"
)

const maxBodyBytes = 1 << 20

type EvaluateHandler struct {
	engine  *scoring.Engine
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewEvaluateHandler(e *scoring.Engine, m *metrics.Metrics, logger *slog.Logger) *EvaluateHandler {
	return &EvaluateHandler{engine: e, metrics: m, logger: logger}
}

type EvaluateRequest struct {
	Content          string            `json:"content" validate:"max=25000"`
	MediaType        scoring.MediaType `json:"media_type"`
	TargetAudience   scoring.Audience  `json:"target_audience"`
	HasEnglish       bool              `json:"has_english"`
	IsThread         bool              `json:"is_thread"`
	HasHashtags      bool              `json:"has_hashtags"`
	HasMentions      bool              `json:"has_mentions"`
	PostTime         scoring.PostTime  `json:"post_time"`
	ConsecutivePosts int               `json:"consecutive_posts" validate:"max=1000"`
}

func (req EvaluateRequest) PostInput() scoring.PostInput {
	return scoring.PostInput{
		Content:          req.Content,
		MediaType:        req.MediaType,
		TargetAudience:   req.TargetAudience,
		HasEnglish:       req.HasEnglish,
		IsThread:         req.IsThread,
		HasHashtags:      req.HasHashtags,
		HasMentions:      req.HasMentions,
		PostTime:         req.PostTime,
		ConsecutivePosts: req.ConsecutivePosts,
	}
}

type evaluateQuery struct {
	Variant string `json:"variant" validate:"omitempty,oneof=continuous checklist"`
}

type EvaluateResponse struct {
	EvaluationID uuid.UUID           `json:"evaluation_id"`
	Result       scoring.ScoreResult `json:"result"`
}

// Evaluate scores a draft post.
// POST /api/v1/evaluate?variant=continuous|checklist
func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	q := evaluateQuery{Variant: r.URL.Query().Get("variant")}
	if err := validateStruct(q); err != nil {
		writeValidationError(w, err)
		return
	}

	var req EvaluateRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body: " + err.Error()})
		return
	}
	if err := validateStruct(req); err != nil {
		writeValidationError(w, err)
		return
	}

	variant := h.engine.Variant()
	if q.Variant != "" {
		v, err := scoring.ParseVariant(q.Variant)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		variant = v
	}

	start := time.Now()
	result := h.engine.EvaluateVariant(req.PostInput(), variant)
	if h.metrics != nil {
		h.metrics.Observe(result, time.Since(start))
	}

	resp := EvaluateResponse{EvaluationID: uuid.New(), Result: result}
	h.logger.Info("evaluation",
		"evaluation_id", resp.EvaluationID,
		"variant", result.Variant.String(),
		"total_score", result.TotalScore,
		"warnings", len(result.Warnings),
	)
	writeJSON(w, http.StatusOK, resp)
}

func writeValidationError(w http.ResponseWriter, err error) {
	var ve ValidationErrors
	if errors.As(err, &ve) {
		writeJSON(w, http.StatusBadRequest, map[string]interface{}{
			"error":   "validation failed",
			"details": ve.Errors,
		})
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
