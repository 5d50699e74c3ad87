package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// SendJSONError writes a JSON error response.
func SendJSONError(w http.ResponseWriter, statusCode int, errMsg, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   errMsg,
		Message: message,
	}
	if encodeErr := json.NewEncoder(w).Encode(response); encodeErr != nil {
		log.Error().Err(encodeErr).Msg("Failed to encode error response")
	}
}

// SendJSONSuccess writes a JSON success response.
func SendJSONSuccess(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode success response")
	}
}

// flashRedirect stores a one-shot message on the visitor's session and
// redirects. Session persistence failures are logged but never block the
// redirect.
func (h *AccessHandler) flashRedirect(w http.ResponseWriter, r *http.Request, level, message, target string) {
	ctx, cancel := h.opContext(r)
	defer cancel()

	sess, err := h.sessions.LoadOrAttach(ctx, w, r)
	if err != nil {
		log.Error().Err(err).Msg("Failed to attach session for flash message")
	} else {
		sess.SetFlash(level, message)
		if err := h.sessions.Save(ctx, sess); err != nil {
			log.Error().Err(err).Msg("Failed to persist flash message")
		}
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}
