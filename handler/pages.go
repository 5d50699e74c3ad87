package handler

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/elsonpulikkan96/reborncloud.online/model"
	"github.com/elsonpulikkan96/reborncloud.online/resume"

	"github.com/rs/zerolog/log"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// pageData feeds the portfolio page template.
type pageData struct {
	Title string
	Page  string
	Data  *resume.Document
	Flash *model.Flash
}

// accessPageData feeds the verification form templates.
type accessPageData struct {
	CaptchaSiteKey string
	Flash          *model.Flash
}

// takeFlash pops the session's pending flash, persisting the cleared state.
func (h *AccessHandler) takeFlash(w http.ResponseWriter, r *http.Request) *model.Flash {
	ctx, cancel := h.opContext(r)
	defer cancel()

	sess, ok := h.sessions.Load(ctx, r)
	if !ok {
		return nil
	}
	flash := sess.TakeFlash()
	if flash != nil {
		if err := h.sessions.Save(ctx, sess); err != nil {
			log.Error().Err(err).Msg("Failed to clear flash message")
		}
	}
	return flash
}

func (h *AccessHandler) renderPage(w http.ResponseWriter, r *http.Request, title, page string) {
	data := pageData{
		Title: title,
		Page:  page,
		Data:  h.resume,
		Flash: h.takeFlash(w, r),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, "page.html", data); err != nil {
		log.Error().Err(err).Str("page", page).Msg("Failed to render page")
	}
}

// Portfolio page handlers. Thin display layer over the embedded resume data.
func (h *AccessHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "Home", "home")
}

func (h *AccessHandler) Bio(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "Bio", "bio")
}

func (h *AccessHandler) Experience(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "Experience", "experience")
}

func (h *AccessHandler) Skills(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "Skills", "skills")
}

func (h *AccessHandler) Education(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "Education", "education")
}

func (h *AccessHandler) Projects(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "Projects", "projects")
}

func (h *AccessHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, "Contact", "contact")
}

// NotFound renders the portfolio 404 page for unmatched routes.
func (h *AccessHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	data := pageData{
		Title: "Page Not Found",
		Page:  "not_found",
		Data:  h.resume,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	if err := pageTemplates.ExecuteTemplate(w, "page.html", data); err != nil {
		log.Error().Err(err).Msg("Failed to render not-found page")
	}
}

// APIResume handles GET /api/resume
// @Summary Resume content as JSON
// @Tags Pages
// @Produce json
// @Success 200 {object} resume.Document "Resume document"
// @Router /api/resume [get]
func (h *AccessHandler) APIResume(w http.ResponseWriter, r *http.Request) {
	SendJSONSuccess(w, http.StatusOK, h.resume)
}

// ResumeAccess handles GET /resume-access: the verification form.
func (h *AccessHandler) ResumeAccess(w http.ResponseWriter, r *http.Request) {
	data := accessPageData{
		CaptchaSiteKey: h.config.Captcha.SiteKey,
		Flash:          h.takeFlash(w, r),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, "resume_access.html", data); err != nil {
		log.Error().Err(err).Msg("Failed to render resume access page")
	}
}

// ProfessionalResumeAccess handles GET /professional-resume-access: the
// richer verification form.
func (h *AccessHandler) ProfessionalResumeAccess(w http.ResponseWriter, r *http.Request) {
	data := accessPageData{
		CaptchaSiteKey: h.config.Captcha.SiteKey,
		Flash:          h.takeFlash(w, r),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, "professional_access.html", data); err != nil {
		log.Error().Err(err).Msg("Failed to render professional access page")
	}
}
