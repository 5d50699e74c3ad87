package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/elsonpulikkan96/reborncloud.online/middleware"
	"github.com/elsonpulikkan96/reborncloud.online/model"

	"github.com/rs/zerolog/log"
)

const (
	routeProfessional      = "professional-verify-access"
	professionalAccessPath = "/professional-resume-access"
)

// ProfessionalVerifyAccess handles POST /professional-verify-access
// @Summary Professional resume access verification
// @Description Scores the requester's professional context from email, user agent, and referrer, folds in form-derived bonuses and an optional knowledge challenge, verifies CAPTCHA, and issues a single-use download token.
// @Tags Access
// @Accept x-www-form-urlencoded
// @Produce html
// @Param professional_email formData string true "Professional email address"
// @Param purpose formData string true "Stated access purpose"
// @Param company formData string false "Company name"
// @Param role formData string false "Requester role"
// @Param challenge_answer formData int false "Submitted challenge answer index"
// @Param challenge_correct formData int false "Expected challenge answer index"
// @Param g-recaptcha-response formData string false "CAPTCHA response token"
// @Success 303 "Redirect to download on success, back to the form otherwise"
// @Router /professional-verify-access [post]
func (h *AccessHandler) ProfessionalVerifyAccess(w http.ResponseWriter, r *http.Request) {
	ip := middleware.ClientIP(r)

	email := strings.TrimSpace(r.FormValue("professional_email"))
	company := strings.TrimSpace(r.FormValue("company"))
	role := strings.TrimSpace(r.FormValue("role"))
	purpose := strings.TrimSpace(r.FormValue("purpose"))

	if email == "" || purpose == "" {
		h.recordAttempt(r, routeProfessional, false, "Missing required professional information", nil)
		h.flashRedirect(w, r, "error", "Please provide your professional email and access purpose.", professionalAccessPath)
		return
	}

	// Base context from request metadata, then form-derived signal under the
	// stricter post-form schedule.
	pctx := h.scorer.Analyze(email, r.UserAgent(), r.Referer())
	h.scorer.ApplyFormBonuses(pctx, role, purpose, company)

	// A presented challenge must be answered correctly; a passed challenge
	// raises the score and the risk tier is recomputed.
	answer := r.FormValue("challenge_answer")
	expected := r.FormValue("challenge_correct")
	if answer != "" && expected != "" {
		answerIdx, errA := strconv.Atoi(answer)
		expectedIdx, errB := strconv.Atoi(expected)
		if errA != nil || errB != nil || answerIdx != expectedIdx {
			h.recordAttempt(r, routeProfessional, false, "Professional challenge failed", pctx)
			h.flashRedirect(w, r, "error", "Professional verification challenge failed. Please try again.", professionalAccessPath)
			return
		}
		h.scorer.ApplyChallengeBonus(pctx)
	}

	if h.captcha.Configured() {
		if !h.captcha.Verify(r.Context(), r.FormValue("g-recaptcha-response"), ip) {
			h.recordAttempt(r, routeProfessional, false, "CAPTCHA verification failed", pctx)
			h.flashRedirect(w, r, "error", "CAPTCHA verification failed. Please try again.", professionalAccessPath)
			return
		}
	}

	ctx, cancel := h.opContext(r)
	defer cancel()

	sess, err := h.sessions.LoadOrAttach(ctx, w, r)
	if err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("Professional verification error: session")
		h.recordAttempt(r, routeProfessional, false, "Professional verification system error", pctx)
		h.flashRedirect(w, r, "error", "Professional verification system temporarily unavailable. Please try again.", professionalAccessPath)
		return
	}

	token, err := h.tokens.Issue(sess)
	if err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("Professional verification error: token issue")
		h.recordAttempt(r, routeProfessional, false, "Professional verification system error", pctx)
		h.flashRedirect(w, r, "error", "Professional verification system temporarily unavailable. Please try again.", professionalAccessPath)
		return
	}

	sess.Context = pctx
	sess.VerifiedAt = time.Now()
	sess.SetFlash("success", successMessage(pctx.RiskLevel))

	if err := h.sessions.Save(ctx, sess); err != nil {
		log.Error().Err(err).Str("ip", ip).Msg("Professional verification error: session save")
		h.recordAttempt(r, routeProfessional, false, "Professional verification system error", pctx)
		h.flashRedirect(w, r, "error", "Professional verification system temporarily unavailable. Please try again.", professionalAccessPath)
		return
	}

	h.recordAttempt(r, routeProfessional, true, "Professional access verified", pctx)
	http.Redirect(w, r, downloadPath+"?token="+token, http.StatusSeeOther)
}

func successMessage(risk model.RiskLevel) string {
	switch risk {
	case model.RiskLow:
		return "Professional verification successful! High-trust access granted."
	case model.RiskMedium:
		return "Professional verification successful! Standard access granted."
	default:
		return "Verification successful! Enhanced security protocols applied."
	}
}
