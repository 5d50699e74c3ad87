package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/elsonpulikkan96/reborncloud.online/config"
)

func TestPortfolioPagesRender(t *testing.T) {
	h := newTestHandler(t, config.CaptchaConfig{})

	tests := []struct {
		name    string
		path    string
		handler http.HandlerFunc
	}{
		{"Home", "/", h.Index},
		{"Bio", "/bio", h.Bio},
		{"Experience", "/experience", h.Experience},
		{"Skills", "/skills", h.Skills},
		{"Education", "/education", h.Education},
		{"Projects", "/projects", h.Projects},
		{"Contact", "/contact", h.Contact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q, want text/html", ct)
			}
			if rec.Body.Len() == 0 {
				t.Error("empty page body")
			}
		})
	}
}

func TestAccessFormsRender(t *testing.T) {
	h := newTestHandler(t, config.CaptchaConfig{})

	for _, tt := range []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"Simple form", h.ResumeAccess},
		{"Professional form", h.ProfessionalResumeAccess},
	} {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.handler(rec, httptest.NewRequest(http.MethodGet, "/resume-access", nil))

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "<form") {
				t.Error("rendered page is missing the verification form")
			}
		})
	}
}

func TestNotFoundPage(t *testing.T) {
	h := newTestHandler(t, config.CaptchaConfig{})

	rec := httptest.NewRecorder()
	h.NotFound(rec, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Error("rendered body is missing the not-found message")
	}
}

func TestAPIResume(t *testing.T) {
	h := newTestHandler(t, config.CaptchaConfig{})

	rec := httptest.NewRecorder()
	h.APIResume(rec, httptest.NewRequest(http.MethodGet, "/api/resume", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := doc["personal_info"]; !ok {
		t.Error("response missing personal_info")
	}
	if _, ok := doc["experience"]; !ok {
		t.Error("response missing experience")
	}
}

func TestHealthCheck_UnreachableRedis(t *testing.T) {
	h := newTestHandler(t, config.CaptchaConfig{})

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["status"] != "unhealthy" {
		t.Errorf("status field = %v, want unhealthy", body["status"])
	}
}
