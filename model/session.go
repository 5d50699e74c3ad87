package model

import (
	"sync"
	"time"
)

// Flash is a one-shot message shown on the next page render.
type Flash struct {
	Message string `json:"message"`
	Level   string `json:"level"` // "success", "error", "info"
}

// Session is the per-visitor mutable state. It is loaded at the start of a
// request and saved back after the handler mutates it; deep helpers receive
// it explicitly instead of reading ambient globals.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`

	// Download token state, managed exclusively by security.TokenStore.
	// At most one live token per session.
	DownloadToken     string    `json:"downloadToken,omitempty"`
	DownloadTokenTime time.Time `json:"downloadTokenTime,omitempty"`

	// Verification transaction state.
	Context    *ProfessionalContext `json:"context,omitempty"`
	VerifiedAt time.Time            `json:"verifiedAt,omitempty"`

	Flash *Flash `json:"flash,omitempty"`

	mu sync.Mutex
}

// Lock serializes token mutations for concurrent requests sharing this
// session instance. The session manager hands out a shared pointer per
// session ID within one process, so test-and-clear under this lock prevents
// a token double-spend.
func (s *Session) Lock()   { s.mu.Lock() }
func (s *Session) Unlock() { s.mu.Unlock() }

// SetFlash replaces the pending flash message.
func (s *Session) SetFlash(level, message string) {
	s.Flash = &Flash{Message: message, Level: level}
}

// TakeFlash returns and clears the pending flash message, if any.
func (s *Session) TakeFlash() *Flash {
	f := s.Flash
	s.Flash = nil
	return f
}
