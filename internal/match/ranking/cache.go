// internal/match/ranking/cache.go
package ranking

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"matchmaking-engine/internal/common/database"
	"matchmaking-engine/internal/common/logger"
	"matchmaking-engine/internal/models"
)

// ResultCache stores ranked suggestion lists in Redis keyed by the engine
// configuration and the profile fields that influence ranking. Cache failures
// are logged and treated as misses so Redis never sits on the critical path.
type ResultCache struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

// NewResultCache creates a result cache with the given TTL.
func NewResultCache(client *database.RedisClient, ttl time.Duration, log logger.Logger) *ResultCache {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &ResultCache{
		redis:  client,
		ttl:    ttl,
		logger: log,
	}
}

// cacheKey hashes the ranking inputs: the engine configuration plus the
// profile fields that affect the output. Engines with different TopK or
// ordering settings sharing one Redis never serve each other's results.
func cacheKey(cfg Config, profile *models.MatchProfile, mode models.MatchMode) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%d|%t|%s|%s|%s", cfg.TopK, cfg.RankByScore, mode, profile.ProjectType, profile.Role)))
	return "ranking:result:" + hex.EncodeToString(sum[:16])
}

// Get returns the cached suggestion list, or ok=false on miss or error.
// Nil-receiver safe so the engine can run cacheless.
func (c *ResultCache) Get(ctx context.Context, cfg Config, profile *models.MatchProfile, mode models.MatchMode) ([]models.CandidateSuggestion, bool) {
	if c == nil || c.redis == nil || profile == nil {
		return nil, false
	}

	raw, err := c.redis.Get(ctx, cacheKey(cfg, profile, mode))
	if err != nil {
		return nil, false
	}

	var out []models.CandidateSuggestion
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		c.logger.Warn("discarding unreadable cached ranking", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, false
	}
	return out, true
}

// Set stores the suggestion list. Errors are logged, never surfaced.
func (c *ResultCache) Set(ctx context.Context, cfg Config, profile *models.MatchProfile, mode models.MatchMode, suggestions []models.CandidateSuggestion) {
	if c == nil || c.redis == nil || profile == nil {
		return
	}

	payload, err := json.Marshal(suggestions)
	if err != nil {
		return
	}

	if err := c.redis.Set(ctx, cacheKey(cfg, profile, mode), string(payload), c.ttl); err != nil {
		c.logger.Warn("failed to cache ranking result", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

// Invalidate drops the cached result for one profile/mode pair.
func (c *ResultCache) Invalidate(ctx context.Context, cfg Config, profile *models.MatchProfile, mode models.MatchMode) {
	if c == nil || c.redis == nil || profile == nil {
		return
	}
	if err := c.redis.Del(ctx, cacheKey(cfg, profile, mode)); err != nil {
		c.logger.Warn("failed to invalidate cached ranking", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
