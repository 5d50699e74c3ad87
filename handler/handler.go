package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/elsonpulikkan96/reborncloud.online/audit"
	"github.com/elsonpulikkan96/reborncloud.online/config"
	"github.com/elsonpulikkan96/reborncloud.online/middleware"
	"github.com/elsonpulikkan96/reborncloud.online/model"
	"github.com/elsonpulikkan96/reborncloud.online/resume"
	"github.com/elsonpulikkan96/reborncloud.online/security"
	"github.com/elsonpulikkan96/reborncloud.online/session"
)

// AccessHandler drives the resume download access flow: verification form,
// context scoring, token issue, and the gated download itself. All
// collaborators are injected.
type AccessHandler struct {
	sessions *session.Manager
	tokens   *security.TokenStore
	scorer   *security.Scorer
	captcha  *security.CaptchaVerifier
	audit    *audit.Recorder
	resume   *resume.Document
	config   config.Config
}

// NewAccessHandler creates the handler with its collaborators.
func NewAccessHandler(
	sessions *session.Manager,
	tokens *security.TokenStore,
	scorer *security.Scorer,
	captcha *security.CaptchaVerifier,
	recorder *audit.Recorder,
	doc *resume.Document,
	cfg config.Config,
) *AccessHandler {
	return &AccessHandler{
		sessions: sessions,
		tokens:   tokens,
		scorer:   scorer,
		captcha:  captcha,
		audit:    recorder,
		resume:   doc,
		config:   cfg,
	}
}

// opContext bounds a request's Redis work with the configured timeout.
func (h *AccessHandler) opContext(r *http.Request) (context.Context, context.CancelFunc) {
	timeout := time.Duration(h.config.Redis.OperationTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(r.Context(), timeout)
}

// recordAttempt emits the audit record for one branch of a transaction.
func (h *AccessHandler) recordAttempt(r *http.Request, route string, success bool, reason string, ctx *model.ProfessionalContext) {
	if h.audit == nil {
		return
	}
	attempt := model.VerificationAttempt{
		IP:      middleware.ClientIP(r),
		Route:   route,
		Success: success,
		Reason:  reason,
	}
	if ctx != nil {
		attempt.Score = ctx.TotalScore
		attempt.RiskLevel = ctx.RiskLevel
		attempt.DomainType = ctx.DomainType
	}
	h.audit.Record(attempt)
}
