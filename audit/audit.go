package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/elsonpulikkan96/reborncloud.online/model"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	attemptsKey = "audit:attempts"
	outcomesKey = "audit:outcomes"
	reasonsKey  = "audit:reasons"

	redisTimeout = 2 * time.Second
)

// Recorder emits verification and download attempt records. Every record is
// written as a structured log line; when Redis is available the record is
// also mirrored there for the admin stats surface. Recording never fails the
// request it audits.
type Recorder struct {
	redis *redis.Client
}

// NewRecorder creates a recorder. A nil Redis client degrades to log-only.
func NewRecorder(rdb *redis.Client) *Recorder {
	return &Recorder{redis: rdb}
}

// Record persists one attempt. The attempt's ID and timestamp are filled in
// when absent.
func (rec *Recorder) Record(attempt model.VerificationAttempt) {
	if attempt.ID == "" {
		attempt.ID = uuid.New().String()
	}
	if attempt.Timestamp.IsZero() {
		attempt.Timestamp = time.Now()
	}

	evt := log.Info()
	if !attempt.Success {
		evt = log.Warn()
	}
	evt = evt.
		Str("attempt_id", attempt.ID).
		Str("ip", attempt.IP).
		Str("route", attempt.Route).
		Bool("success", attempt.Success).
		Str("reason", attempt.Reason)
	if attempt.Score > 0 {
		evt = evt.Int("score", attempt.Score).
			Str("risk_level", string(attempt.RiskLevel)).
			Str("domain_type", string(attempt.DomainType))
	}
	evt.Msg("Resume download attempt")

	if rec.redis == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	data, err := json.Marshal(attempt)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal audit record")
		return
	}

	if err := rec.redis.RPush(ctx, attemptsKey, data).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to mirror audit record to Redis")
	}

	outcome := "rejected"
	if attempt.Success {
		outcome = "verified"
	}
	rec.redis.ZIncrBy(ctx, outcomesKey, 1, attempt.Route+":"+outcome)
	if attempt.Reason != "" {
		rec.redis.ZIncrBy(ctx, reasonsKey, 1, attempt.Reason)
	}
}

// Stats aggregates the mirrored counters for the admin surface.
func (rec *Recorder) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := map[string]interface{}{
		"total_attempts": int64(0),
	}
	if rec.redis == nil {
		return stats, nil
	}

	total, err := rec.redis.LLen(ctx, attemptsKey).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	stats["total_attempts"] = total

	outcomes, err := rec.redis.ZRangeWithScores(ctx, outcomesKey, 0, -1).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	byOutcome := make(map[string]int64, len(outcomes))
	for _, z := range outcomes {
		if name, ok := z.Member.(string); ok {
			byOutcome[name] = int64(z.Score)
		}
	}
	stats["outcomes"] = byOutcome

	reasons, err := rec.redis.ZRevRangeWithScores(ctx, reasonsKey, 0, 9).Result()
	if err != nil && err != redis.Nil {
		return nil, err
	}
	topReasons := make([]map[string]interface{}, 0, len(reasons))
	for _, z := range reasons {
		name, ok := z.Member.(string)
		if !ok {
			continue
		}
		topReasons = append(topReasons, map[string]interface{}{
			"reason": name,
			"count":  int64(z.Score),
		})
	}
	stats["top_reasons"] = topReasons

	return stats, nil
}
