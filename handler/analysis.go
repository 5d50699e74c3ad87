package handler

import (
	"encoding/json"
	"net/http"

	"github.com/elsonpulikkan96/reborncloud.online/model"
	"github.com/elsonpulikkan96/reborncloud.online/security"

	"github.com/rs/zerolog/log"
)

// ContextSummary is the scored-context portion of an analysis response.
type ContextSummary struct {
	DomainType model.DomainType `json:"domain_type"`
	EmailScore int              `json:"email_score"`
	RiskLevel  model.RiskLevel  `json:"risk_level"`
	TotalScore int              `json:"total_score"`
}

// AnalysisResponse is returned by the context analysis endpoint. Challenge is
// omitted for high-trust corporate contexts.
type AnalysisResponse struct {
	Context         ContextSummary            `json:"context"`
	Challenge       *security.Challenge       `json:"challenge,omitempty"`
	Recommendations []security.Recommendation `json:"recommendations"`
}

// ContextAnalysis handles POST /professional-context-analysis
// @Summary Real-time professional context analysis
// @Description Scores the supplied email together with the request's user agent and referrer, and returns the context summary, a contextual challenge when one is required, and access recommendations.
// @Tags Access
// @Accept json
// @Produce json
// @Success 200 {object} handler.AnalysisResponse "Scored context"
// @Failure 400 {object} handler.ErrorResponse "Email missing"
// @Failure 500 {object} handler.ErrorResponse "Analysis failed"
// @Router /professional-context-analysis [post]
func (h *AccessHandler) ContextAnalysis(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Warn().Err(err).Msg("Context analysis: malformed request body")
		SendJSONError(w, http.StatusBadRequest, "Email required", "")
		return
	}
	if input.Email == "" {
		SendJSONError(w, http.StatusBadRequest, "Email required", "")
		return
	}

	pctx := h.scorer.Analyze(input.Email, r.UserAgent(), r.Referer())

	resp := AnalysisResponse{
		Context: ContextSummary{
			DomainType: pctx.DomainType,
			EmailScore: pctx.EmailScore,
			RiskLevel:  pctx.RiskLevel,
			TotalScore: pctx.TotalScore,
		},
		Challenge:       security.ContextualChallenge(pctx),
		Recommendations: security.Recommendations(pctx),
	}

	SendJSONSuccess(w, http.StatusOK, resp)
}
