package handler

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// HealthCheck handles GET /health. Exempt from rate limiting.
// @Summary Health check
// @Description Returns service health status and Redis connectivity
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} map[string]interface{} "Service is unhealthy"
// @Router /health [get]
func (h *AccessHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	components := map[string]string{
		"sessions": "healthy",
	}

	if h.sessions != nil {
		ctx, cancel := h.opContext(r)
		defer cancel()
		if err := h.sessions.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("Redis health check failed")
			components["sessions"] = "unavailable"
			status = http.StatusServiceUnavailable
		}
	}

	body := map[string]interface{}{
		"status":     "healthy",
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"version":    "2.0.0",
		"components": components,
	}
	if status != http.StatusOK {
		body["status"] = "unhealthy"
	}

	SendJSONSuccess(w, status, body)
}
