package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"healthcare-scheduling-server/internal/ai"
	"healthcare-scheduling-server/internal/utils"
)

// AIHandler exposes the analysis collaborators: symptom triage, note
// summarization and procedure recommendations.
type AIHandler struct {
	Analyzer    ai.Analyzer
	Summarizer  ai.Summarizer
	Recommender ai.Recommender
}

// NewAIHandler creates a new AIHandler.
func NewAIHandler(analyzer ai.Analyzer, summarizer ai.Summarizer, recommender ai.Recommender) *AIHandler {
	return &AIHandler{Analyzer: analyzer, Summarizer: summarizer, Recommender: recommender}
}

// SymptomCheckRequest represents the request body for symptom analysis.
type SymptomCheckRequest struct {
	Symptoms string `json:"symptoms" binding:"required"`
}

// CheckSymptoms handles free-text symptom triage.
func (h *AIHandler) CheckSymptoms(c *gin.Context) {
	var req SymptomCheckRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	analysis, err := h.Analyzer.Analyze(c.Request.Context(), req.Symptoms)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, "Symptoms analyzed successfully", analysis)
}

// SummarizeNotesRequest represents the request body for note summarization.
type SummarizeNotesRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// SummarizeNotes handles clinical note summarization.
func (h *AIHandler) SummarizeNotes(c *gin.Context) {
	var req SummarizeNotesRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	summary, err := h.Summarizer.Summarize(c.Request.Context(), req.Notes)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, "Notes summarized successfully", summary)
}

// RecommendProceduresRequest represents the request body for recommendations.
type RecommendProceduresRequest struct {
	History string `json:"history" binding:"required"`
}

// RecommendProcedures handles procedure recommendations from patient history.
func (h *AIHandler) RecommendProcedures(c *gin.Context) {
	var req RecommendProceduresRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	procedures, err := h.Recommender.Recommend(c.Request.Context(), req.History)
	if err != nil {
		h.respondError(c, err)
		return
	}
	utils.Success(c, "Recommendations generated successfully", procedures)
}

func (h *AIHandler) respondError(c *gin.Context, err error) {
	if errors.Is(err, ai.ErrEmptyInput) {
		utils.BadRequest(c, err.Error())
		return
	}
	utils.InternalServerError(c, "Analysis failed: "+err.Error())
}
