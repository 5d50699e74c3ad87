package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/elsonpulikkan96/reborncloud.online/config"
	"github.com/elsonpulikkan96/reborncloud.online/model"

	"github.com/dgraph-io/ristretto"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

const sessionKeyPrefix = "session:"

// Manager persists per-visitor session state as JSON in Redis, with a
// Ristretto read cache in front. Within one process the cache hands out a
// shared *model.Session pointer per session ID, so token consumption can be
// an atomic test-and-clear under the session's own lock.
type Manager struct {
	redis      *redis.Client
	cache      *ristretto.Cache
	cacheTTL   time.Duration
	cookieName string
	secure     bool
	ttl        time.Duration
}

// NewManager creates a session manager. The cache is optional; pass a nil
// cache config Enabled=false to run against Redis only.
func NewManager(rdb *redis.Client, cfg config.SessionConfig, cacheCfg config.CacheConfig) (*Manager, error) {
	m := &Manager{
		redis:      rdb,
		cookieName: cfg.CookieName,
		secure:     cfg.Secure,
		ttl:        time.Duration(cfg.TTLHours) * time.Hour,
	}

	if cacheCfg.Enabled {
		cache, err := ristretto.NewCache(&ristretto.Config{
			NumCounters: int64(cacheCfg.CounterSize),
			MaxCost:     int64(cacheCfg.MaxSizeMB) * 1024 * 1024,
			BufferItems: 64,
		})
		if err != nil {
			return nil, fmt.Errorf("session cache: %w", err)
		}
		m.cache = cache
		m.cacheTTL = time.Duration(cacheCfg.TTLSeconds) * time.Second
	}

	return m, nil
}

// newSessionID generates a 32-byte URL-safe random session identifier.
func newSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Load returns the session referenced by the request cookie, or (nil, false)
// when no valid session exists.
func (m *Manager) Load(ctx context.Context, r *http.Request) (*model.Session, bool) {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	return m.get(ctx, cookie.Value)
}

// Attach creates a fresh session and sets its cookie on the response.
func (m *Manager) Attach(ctx context.Context, w http.ResponseWriter) (*model.Session, error) {
	id, err := newSessionID()
	if err != nil {
		return nil, err
	}

	sess := &model.Session{
		ID:        id,
		CreatedAt: time.Now(),
	}
	if err := m.Save(ctx, sess); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(m.ttl.Seconds()),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}

// LoadOrAttach returns the request's session, creating one when absent.
func (m *Manager) LoadOrAttach(ctx context.Context, w http.ResponseWriter, r *http.Request) (*model.Session, error) {
	if sess, ok := m.Load(ctx, r); ok {
		return sess, nil
	}
	return m.Attach(ctx, w)
}

func (m *Manager) get(ctx context.Context, id string) (*model.Session, bool) {
	if m.cache != nil {
		if cached, found := m.cache.Get(sessionKeyPrefix + id); found {
			if sess, ok := cached.(*model.Session); ok {
				return sess, true
			}
		}
	}

	data, err := m.redis.Get(ctx, sessionKeyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false
	} else if err != nil {
		log.Error().Err(err).Msg("Failed to load session from Redis")
		return nil, false
	}

	var sess model.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Error().Err(err).Str("session_id", id).Msg("Corrupt session state, discarding")
		m.redis.Del(ctx, sessionKeyPrefix+id)
		return nil, false
	}

	if m.cache != nil {
		m.cache.SetWithTTL(sessionKeyPrefix+id, &sess, 1024, m.cacheTTL)
	}
	return &sess, true
}

// Save writes the session state back to Redis and refreshes the cache entry.
// The snapshot is taken under the session lock: the token store mutates this
// same shared instance from concurrent requests.
func (m *Manager) Save(ctx context.Context, sess *model.Session) error {
	sess.Lock()
	data, err := json.Marshal(sess)
	sess.Unlock()
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := m.redis.Set(ctx, sessionKeyPrefix+sess.ID, data, m.ttl).Err(); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	if m.cache != nil {
		m.cache.SetWithTTL(sessionKeyPrefix+sess.ID, sess, int64(len(data)), m.cacheTTL)
	}
	return nil
}

// Clear removes the session entirely.
func (m *Manager) Clear(ctx context.Context, sess *model.Session) error {
	if m.cache != nil {
		m.cache.Del(sessionKeyPrefix + sess.ID)
	}
	return m.redis.Del(ctx, sessionKeyPrefix+sess.ID).Err()
}

// Ping verifies the backing Redis connection.
func (m *Manager) Ping(ctx context.Context) error {
	return m.redis.Ping(ctx).Err()
}

// Close releases the in-process cache.
func (m *Manager) Close() {
	if m.cache != nil {
		m.cache.Close()
	}
}
