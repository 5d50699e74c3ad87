package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/elsonpulikkan96/reborncloud.online/model"

	"github.com/rs/zerolog/log"
)

// TokenStore issues and validates single-use, time-limited download tokens
// bound to a session. It operates on an explicit session handle; callers are
// responsible for persisting the session afterwards.
type TokenStore struct {
	ttl time.Duration
}

// NewTokenStore creates a token store with the given token lifetime.
func NewTokenStore(ttl time.Duration) *TokenStore {
	return &TokenStore{ttl: ttl}
}

// Issue generates a cryptographically random download token and records it
// against the session, overwriting any prior unconsumed token. At most one
// live token exists per session.
func (ts *TokenStore) Issue(sess *model.Session) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate download token: %w", err)
	}
	token := base64.RawURLEncoding.EncodeToString(b)

	sess.Lock()
	sess.DownloadToken = token
	sess.DownloadTokenTime = time.Now()
	sess.Unlock()

	return token, nil
}

// Validate reports whether the supplied value matches the session's live
// token and the token has not expired. It never consumes. An expired token
// is cleared here so later reads don't see stale state.
func (ts *TokenStore) Validate(sess *model.Session, value string) bool {
	if sess == nil || value == "" {
		return false
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.DownloadToken == "" || sess.DownloadToken != value {
		return false
	}

	if time.Since(sess.DownloadTokenTime) > ts.ttl {
		sess.DownloadToken = ""
		sess.DownloadTokenTime = time.Time{}
		log.Debug().Str("session_id", sess.ID).Msg("Expired download token cleared")
		return false
	}

	return true
}

// Consume removes the session's token unconditionally. Idempotent.
func (ts *TokenStore) Consume(sess *model.Session) {
	if sess == nil {
		return
	}
	sess.Lock()
	sess.DownloadToken = ""
	sess.DownloadTokenTime = time.Time{}
	sess.Unlock()
}

// Redeem validates and consumes in one locked step, so two concurrent
// requests racing on the same token cannot both win. The token is cleared
// before any file delivery is attempted.
func (ts *TokenStore) Redeem(sess *model.Session, value string) bool {
	if sess == nil || value == "" {
		return false
	}

	sess.Lock()
	defer sess.Unlock()

	if sess.DownloadToken == "" || sess.DownloadToken != value {
		return false
	}

	expired := time.Since(sess.DownloadTokenTime) > ts.ttl
	sess.DownloadToken = ""
	sess.DownloadTokenTime = time.Time{}

	return !expired
}
