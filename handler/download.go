package handler

import (
	"fmt"
	"net/http"
	"os"

	"github.com/elsonpulikkan96/reborncloud.online/middleware"

	"github.com/rs/zerolog/log"
)

const routeDownload = "download-resume"

// DownloadResume handles GET /download-resume
// @Summary Download the resume PDF
// @Description Redeems a single-use download token issued by a verification endpoint and streams the PDF as an attachment. The token is consumed before delivery, so a retry needs a fresh verification.
// @Tags Access
// @Produce application/pdf
// @Param token query string true "Download token"
// @Success 200 {file} binary "Resume PDF"
// @Failure 303 "Redirect to the access form when the token is missing, foreign, expired, or already used"
// @Failure 404 {object} handler.ErrorResponse "Resume file not found"
// @Router /download-resume [get]
func (h *AccessHandler) DownloadResume(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)
	token := r.URL.Query().Get("token")

	ctx, cancel := h.opContext(r)
	defer cancel()

	sess, ok := h.sessions.Load(ctx, r)
	if !ok || !h.tokens.Redeem(sess, token) {
		h.recordAttempt(r, routeDownload, false, "Invalid or expired token", nil)
		h.flashRedirect(w, r, "error", "Please verify access to download.", resumeAccessPath)
		return
	}

	// The token is gone from the session before any bytes leave: single-use
	// holds even if delivery fails below.
	if err := h.sessions.Save(ctx, sess); err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("Download error: session save after consume")
		h.recordAttempt(r, routeDownload, false, "Download system error", nil)
		h.flashRedirect(w, r, "error", "Download temporarily unavailable. Please try again.", resumeAccessPath)
		return
	}

	pdfPath := h.config.Resume.PDFPath
	if _, err := os.Stat(pdfPath); err != nil {
		log.Error().Err(err).Str("path", pdfPath).Msg("Resume file missing")
		h.recordAttempt(r, routeDownload, false, "Resume file not found", nil)
		SendJSONError(w, http.StatusNotFound, "Resume file not found", "")
		return
	}

	h.recordAttempt(r, routeDownload, true, "File downloaded successfully", sess.Context)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", h.config.Resume.DownloadName))
	http.ServeFile(w, r, pdfPath)
}

// DownloadResumeLegacy handles GET /download-resume-legacy
// @Summary Legacy unguarded download path
// @Description Always redirects to the verification form; no resume bytes are served from this route.
// @Tags Access
// @Produce html
// @Success 303 "Redirect to the access form"
// @Router /download-resume-legacy [get]
func (h *AccessHandler) DownloadResumeLegacy(w http.ResponseWriter, r *http.Request) {
	h.flashRedirect(w, r, "info", "For security, resume downloads now require verification.", resumeAccessPath)
}
