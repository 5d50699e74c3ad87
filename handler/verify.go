package handler

import (
	"net/http"
	"strings"

	"github.com/elsonpulikkan96/reborncloud.online/middleware"

	"github.com/rs/zerolog/log"
)

const (
	routeVerify       = "verify-access"
	resumeAccessPath  = "/resume-access"
	downloadPath      = "/download-resume"
	serviceUnavailMsg = "Verification service temporarily unavailable. Please try again."
)

// VerifyAccess handles POST /verify-access
// @Summary Verify resume download access
// @Description Validates the visitor's email and CAPTCHA response, then issues a single-use download token bound to the session.
// @Tags Access
// @Accept x-www-form-urlencoded
// @Produce html
// @Param email formData string true "Visitor email address"
// @Param g-recaptcha-response formData string false "CAPTCHA response token (required when CAPTCHA is configured)"
// @Success 303 "Redirect to download on success, back to the form otherwise"
// @Router /verify-access [post]
func (h *AccessHandler) VerifyAccess(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)

	email := strings.TrimSpace(r.FormValue("email"))
	if email == "" {
		h.recordAttempt(r, routeVerify, false, "No email provided", nil)
		h.flashRedirect(w, r, "error", "Please provide your email address.", resumeAccessPath)
		return
	}

	if h.captcha.Configured() {
		captchaResponse := r.FormValue("g-recaptcha-response")
		if captchaResponse == "" {
			h.recordAttempt(r, routeVerify, false, "No CAPTCHA response", nil)
			h.flashRedirect(w, r, "error", "Please complete the CAPTCHA verification.", resumeAccessPath)
			return
		}
		if !h.captcha.Verify(r.Context(), captchaResponse, ip) {
			h.recordAttempt(r, routeVerify, false, "CAPTCHA verification failed", nil)
			h.flashRedirect(w, r, "error", "CAPTCHA verification failed. Please try again.", resumeAccessPath)
			return
		}
	}

	ctx, cancel := h.opContext(r)
	defer cancel()

	sess, err := h.sessions.LoadOrAttach(ctx, w, r)
	if err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("Access verification error: session")
		h.recordAttempt(r, routeVerify, false, "Verification system error", nil)
		h.flashRedirect(w, r, "error", serviceUnavailMsg, resumeAccessPath)
		return
	}

	token, err := h.tokens.Issue(sess)
	if err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("Access verification error: token issue")
		h.recordAttempt(r, routeVerify, false, "Verification system error", nil)
		h.flashRedirect(w, r, "error", serviceUnavailMsg, resumeAccessPath)
		return
	}

	sess.SetFlash("success", "Verification successful! Download starting...")
	if err := h.sessions.Save(ctx, sess); err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("Access verification error: session save")
		h.recordAttempt(r, routeVerify, false, "Verification system error", nil)
		h.flashRedirect(w, r, "error", serviceUnavailMsg, resumeAccessPath)
		return
	}

	h.recordAttempt(r, routeVerify, true, "Access verified for "+email, nil)
	http.Redirect(w, r, downloadPath+"?token="+token, http.StatusSeeOther)
}
