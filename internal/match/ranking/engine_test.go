package ranking

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmaking-engine/internal/common/database"
	"matchmaking-engine/internal/common/errors"
	"matchmaking-engine/internal/common/logger"
	"matchmaking-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestEngine(t *testing.T, cfg Config) *Engine {
	return NewEngine(NewStaticSource(DefaultPool()), nil, cfg, logger.NewTestLogger(t))
}

func testProfile(projectType, role string) *models.MatchProfile {
	return &models.MatchProfile{
		Mode:             models.ModeJoinExisting,
		Role:             role,
		ProjectType:      projectType,
		AvailabilityBand: models.Availability10To20,
		TimelineBand:     models.TimelineSprint,
		Skills:           []string{"React"},
	}
}

func suggestionIDs(s []models.CandidateSuggestion) []string {
	out := make([]string, 0, len(s))
	for i := range s {
		out = append(out, s[i].ID)
	}
	return out
}

// errorSource always fails, standing in for a broken pool backend.
type errorSource struct{}

func (errorSource) List(context.Context) ([]models.CandidateSuggestion, error) {
	return nil, fmt.Errorf("connection refused")
}

// countingSource tracks how often the pool was actually loaded.
type countingSource struct {
	inner Source
	calls int
}

func (s *countingSource) List(ctx context.Context) ([]models.CandidateSuggestion, error) {
	s.calls++
	return s.inner.List(ctx)
}

// ==========================
// Join-Existing Ranking Tests
// ==========================

func TestRank_JoinExisting_PoolOrderPreserved(t *testing.T) {
	e := newTestEngine(t, Config{})

	// SaaS matches q1 by project type; Frontend Developer matches q1 and q3
	// by needed role. Pool order decides the output order.
	got, err := e.Rank(context.Background(), testProfile("SaaS", "Frontend Developer"), models.ModeJoinExisting)

	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q3"}, suggestionIDs(got))
	assert.Equal(t, "Sprint Squad Alpha", got[0].Name)
	assert.Equal(t, 3, got[0].CurrentMembers)
	assert.Equal(t, 91, got[0].MatchScore)
	assert.Equal(t, models.ScoreBreakdown{Skills: 92, Availability: 88, Style: 90}, got[0].Breakdown)
}

func TestRank_EligibilityIsDisjunctive(t *testing.T) {
	tests := []struct {
		name        string
		projectType string
		role        string
		wantIDs     []string
	}{
		{
			name:        "type match only",
			projectType: "Game",
			role:        "Data Scientist",
			wantIDs:     []string{"q2"},
		},
		{
			name:        "role match only",
			projectType: "Open Source",
			role:        "Product Manager",
			wantIDs:     []string{"q2"},
		},
		{
			name:        "type and role matches interleave in pool order",
			projectType: "Mobile App",
			role:        "Frontend Developer",
			wantIDs:     []string{"q1", "q3", "q4"},
		},
		{
			name:        "no eligible entries",
			projectType: "Open Source",
			role:        "Data Scientist",
			wantIDs:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t, Config{})

			got, err := e.Rank(context.Background(), testProfile(tt.projectType, tt.role), models.ModeJoinExisting)

			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, suggestionIDs(got))
		})
	}
}

func TestRank_TopKTruncation(t *testing.T) {
	e := newTestEngine(t, Config{TopK: 2})

	// Game/Frontend Developer makes q1, q2 and q3 eligible; TopK drops q3.
	got, err := e.Rank(context.Background(), testProfile("Game", "Frontend Developer"), models.ModeJoinExisting)

	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2"}, suggestionIDs(got))
}

func TestRank_ByScoreDescending(t *testing.T) {
	e := newTestEngine(t, Config{RankByScore: true})

	// Eligible scores: q1=91, q2=84, q3=88.
	got, err := e.Rank(context.Background(), testProfile("Game", "Frontend Developer"), models.ModeJoinExisting)

	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q3", "q2"}, suggestionIDs(got))
}

// ==========================
// Build-New Ranking Tests
// ==========================

func TestRank_BuildNew_TransformsEntries(t *testing.T) {
	e := newTestEngine(t, Config{})

	got, err := e.Rank(context.Background(), testProfile("Game", "Frontend Developer"), models.ModeBuildNew)

	require.NoError(t, err)
	require.Len(t, got, 3)

	// Fresh teams are named after what the user is building, not after the
	// template entry's project type: q1 is SaaS, q3 is Web App, yet all three
	// are Game teams here.
	assert.Equal(t, []string{"q1-new-0", "q2-new-1", "q3-new-2"}, suggestionIDs(got))
	assert.Equal(t, "New Game Team 1", got[0].Name)
	assert.Equal(t, "New Game Team 2", got[1].Name)
	assert.Equal(t, "New Game Team 3", got[2].Name)

	for _, s := range got {
		assert.Equal(t, 1, s.CurrentMembers)
		assert.Equal(t, 5, s.TargetMembers)
		assert.Equal(t, "Team is being assembled around your saved requirements.", s.Reason)
	}

	// Scoring fields carry over from the template pool entries.
	assert.Equal(t, 91, got[0].MatchScore)
	assert.Equal(t, "~3 min", got[0].ETA)
	assert.Equal(t, models.ScoreBreakdown{Skills: 86, Availability: 79, Style: 84}, got[1].Breakdown)
}

func TestRank_BuildNew_NoEligible(t *testing.T) {
	e := newTestEngine(t, Config{})

	got, err := e.Rank(context.Background(), testProfile("Open Source", "Data Scientist"), models.ModeBuildNew)

	require.NoError(t, err)
	assert.Empty(t, got)
}

// ==========================
// Determinism and Isolation Tests
// ==========================

func TestRank_Deterministic(t *testing.T) {
	e := newTestEngine(t, Config{})
	profile := testProfile("SaaS", "Frontend Developer")

	first, err := e.Rank(context.Background(), profile, models.ModeJoinExisting)
	require.NoError(t, err)
	second, err := e.Rank(context.Background(), profile, models.ModeJoinExisting)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRank_ReturnsIndependentCopies(t *testing.T) {
	e := newTestEngine(t, Config{})
	profile := testProfile("SaaS", "Frontend Developer")

	first, err := e.Rank(context.Background(), profile, models.ModeJoinExisting)
	require.NoError(t, err)

	first[0].Name = "mutated"
	first[0].NeededRoles[0] = "mutated"

	second, err := e.Rank(context.Background(), profile, models.ModeJoinExisting)
	require.NoError(t, err)
	assert.Equal(t, "Sprint Squad Alpha", second[0].Name)
	assert.Equal(t, "Frontend Developer", second[0].NeededRoles[0])
}

func TestRank_SourceFailure(t *testing.T) {
	e := NewEngine(errorSource{}, nil, Config{}, logger.NewTestLogger(t))

	got, err := e.Rank(context.Background(), testProfile("SaaS", "Frontend Developer"), models.ModeJoinExisting)

	assert.Nil(t, got)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodePoolSourceFailed, errors.CodeOf(err))
}

// ==========================
// Cache Integration Tests
// ==========================

func TestRank_CacheSkipsPoolReload(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{
		Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
	}
	defer redisClient.Close()

	src := &countingSource{inner: NewStaticSource(DefaultPool())}
	cache := NewResultCache(redisClient, 0, logger.NewTestLogger(t))
	e := NewEngine(src, cache, Config{}, logger.NewTestLogger(t))

	profile := testProfile("SaaS", "Frontend Developer")

	first, err := e.Rank(context.Background(), profile, models.ModeJoinExisting)
	require.NoError(t, err)
	second, err := e.Rank(context.Background(), profile, models.ModeJoinExisting)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, src.calls)
}

func TestRank_CacheKeyedByMode(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{
		Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
	}
	defer redisClient.Close()

	cache := NewResultCache(redisClient, 0, logger.NewTestLogger(t))
	e := NewEngine(NewStaticSource(DefaultPool()), cache, Config{}, logger.NewTestLogger(t))

	profile := testProfile("SaaS", "Frontend Developer")

	joined, err := e.Rank(context.Background(), profile, models.ModeJoinExisting)
	require.NoError(t, err)
	built, err := e.Rank(context.Background(), profile, models.ModeBuildNew)
	require.NoError(t, err)

	assert.Equal(t, []string{"q1", "q3"}, suggestionIDs(joined))
	assert.Equal(t, []string{"q1-new-0", "q3-new-1"}, suggestionIDs(built))
}

func TestRank_CacheKeyedByEngineConfig(t *testing.T) {
	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{
		Client: goredis.NewClient(&goredis.Options{Addr: mr.Addr()}),
	}
	defer redisClient.Close()

	cache := NewResultCache(redisClient, 0, logger.NewNoOpLogger())
	wide := NewEngine(NewStaticSource(DefaultPool()), cache, Config{}, logger.NewTestLogger(t))
	narrow := NewEngine(NewStaticSource(DefaultPool()), cache, Config{TopK: 2}, logger.NewTestLogger(t))
	scored := NewEngine(NewStaticSource(DefaultPool()), cache, Config{RankByScore: true}, logger.NewTestLogger(t))

	profile := testProfile("Game", "Frontend Developer")

	got, err := wide.Rank(context.Background(), profile, models.ModeJoinExisting)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2", "q3"}, suggestionIDs(got))

	// Engines sharing the Redis instance but configured differently must not
	// serve each other's cached results.
	got, err = narrow.Rank(context.Background(), profile, models.ModeJoinExisting)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q2"}, suggestionIDs(got))

	got, err = scored.Rank(context.Background(), profile, models.ModeJoinExisting)
	require.NoError(t, err)
	assert.Equal(t, []string{"q1", "q3", "q2"}, suggestionIDs(got))
}
