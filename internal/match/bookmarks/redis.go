// internal/match/bookmarks/redis.go
package bookmarks

import (
	"context"
	"fmt"
	"sort"
	"time"

	"matchmaking-engine/internal/common/database"
)

// Session marks are kept for a day; abandoned sessions expire on their own.
const markTTL = 24 * time.Hour

// RedisStore keeps suggestion marks in Redis sets so marks survive process
// restarts and are visible to every instance serving the session.
type RedisStore struct {
	redis *database.RedisClient
}

// NewRedisStore creates a Redis-backed bookmark store.
func NewRedisStore(client *database.RedisClient) *RedisStore {
	return &RedisStore{redis: client}
}

func expandedKey(sessionID string) string { return "bookmarks:expanded:" + sessionID }
func savedKey(sessionID string) string    { return "bookmarks:saved:" + sessionID }

func (s *RedisStore) toggle(ctx context.Context, key, suggestionID string) (bool, error) {
	rdb := s.redis.GetClient()

	present, err := rdb.SIsMember(ctx, key, suggestionID).Result()
	if err != nil {
		return false, fmt.Errorf("check bookmark member: %w", err)
	}

	if present {
		if err := rdb.SRem(ctx, key, suggestionID).Err(); err != nil {
			return false, fmt.Errorf("remove bookmark member: %w", err)
		}
		return false, nil
	}

	if err := rdb.SAdd(ctx, key, suggestionID).Err(); err != nil {
		return false, fmt.Errorf("add bookmark member: %w", err)
	}
	if err := rdb.Expire(ctx, key, markTTL).Err(); err != nil {
		return false, fmt.Errorf("refresh bookmark ttl: %w", err)
	}
	return true, nil
}

func (s *RedisStore) list(ctx context.Context, key string) ([]string, error) {
	ids, err := s.redis.GetClient().SMembers(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("list bookmark members: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *RedisStore) ToggleExpanded(ctx context.Context, sessionID, suggestionID string) (bool, error) {
	return s.toggle(ctx, expandedKey(sessionID), suggestionID)
}

func (s *RedisStore) ToggleSaved(ctx context.Context, sessionID, suggestionID string) (bool, error) {
	return s.toggle(ctx, savedKey(sessionID), suggestionID)
}

func (s *RedisStore) Expanded(ctx context.Context, sessionID string) ([]string, error) {
	return s.list(ctx, expandedKey(sessionID))
}

func (s *RedisStore) Saved(ctx context.Context, sessionID string) ([]string, error) {
	return s.list(ctx, savedKey(sessionID))
}

func (s *RedisStore) ClearExpanded(ctx context.Context, sessionID string) error {
	if err := s.redis.Del(ctx, expandedKey(sessionID)); err != nil {
		return fmt.Errorf("clear expanded bookmarks: %w", err)
	}
	return nil
}
