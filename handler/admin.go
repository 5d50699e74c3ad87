package handler

import (
	"net/http"

	"github.com/rs/zerolog/log"
)

// AdminStats handles GET /admin/stats. Protected by the admin API key
// middleware.
// @Summary Verification statistics
// @Description Aggregated verification and download counters from the audit trail
// @Tags System
// @Produce json
// @Security AdminKey
// @Success 200 {object} map[string]interface{} "Aggregated counters"
// @Failure 503 {object} handler.ErrorResponse "Audit trail unavailable"
// @Router /admin/stats [get]
func (h *AccessHandler) AdminStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	stats, err := h.audit.Stats(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read audit stats")
		SendJSONError(w, http.StatusServiceUnavailable, "Audit trail unavailable", "")
		return
	}

	SendJSONSuccess(w, http.StatusOK, stats)
}
