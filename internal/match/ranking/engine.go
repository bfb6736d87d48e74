// Package ranking selects and orders candidate suggestions for a completed
// search. Ranking is deterministic: the same profile, mode and pool always
// produce the same suggestion list.
package ranking

import (
	"context"
	"fmt"
	"sort"

	"matchmaking-engine/internal/common/errors"
	"matchmaking-engine/internal/common/logger"
	"matchmaking-engine/internal/common/metrics"
	"matchmaking-engine/internal/models"
)

const defaultTopK = 3

// Config controls ranking behavior.
type Config struct {
	// TopK caps the number of suggestions emitted. Zero means the default of 3.
	TopK int
	// RankByScore orders eligible entries by match score descending instead of
	// preserving pool order. The sort is stable: ties keep pool order.
	RankByScore bool
}

// Engine filters the candidate pool against a profile and emits the top
// suggestions. Cache is optional; a nil cache disables result caching.
type Engine struct {
	source Source
	cache  *ResultCache
	cfg    Config
	logger logger.Logger
}

// NewEngine creates a ranking engine over the given pool source.
func NewEngine(source Source, cache *ResultCache, cfg Config, log logger.Logger) *Engine {
	if cfg.TopK <= 0 {
		cfg.TopK = defaultTopK
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Engine{
		source: source,
		cache:  cache,
		cfg:    cfg,
		logger: log,
	}
}

// Rank produces up to TopK suggestions for the profile under the given mode.
//
// An entry is eligible when its project type equals the profile's project
// type OR its needed roles include the profile's role. Eligible entries keep
// pool order unless RankByScore is set. In build-new mode each emitted entry
// is rewritten as a to-be-assembled team seeded by the searching user.
func (e *Engine) Rank(ctx context.Context, profile *models.MatchProfile, mode models.MatchMode) ([]models.CandidateSuggestion, error) {
	if cached, ok := e.cache.Get(ctx, e.cfg, profile, mode); ok {
		e.logger.Debug("ranking served from cache", map[string]interface{}{
			"mode":  string(mode),
			"count": len(cached),
		})
		return cached, nil
	}

	pool, err := e.source.List(ctx)
	if err != nil {
		metrics.PoolSourceErrors.WithLabelValues(sourceLabel(e.source)).Inc()
		return nil, errors.NewPoolSourceError(err)
	}

	eligible := make([]models.CandidateSuggestion, 0, len(pool))
	for i := range pool {
		if pool[i].ProjectType == profile.ProjectType || pool[i].NeedsRole(profile.Role) {
			eligible = append(eligible, pool[i].Clone())
		}
	}

	if e.cfg.RankByScore {
		sort.SliceStable(eligible, func(i, j int) bool {
			return eligible[i].MatchScore > eligible[j].MatchScore
		})
	}

	if len(eligible) > e.cfg.TopK {
		eligible = eligible[:e.cfg.TopK]
	}

	if mode == models.ModeBuildNew {
		for i := range eligible {
			eligible[i] = buildNewVariant(eligible[i], i, profile.ProjectType)
		}
	}

	e.logger.Debug("ranking computed", map[string]interface{}{
		"mode":      string(mode),
		"poolSize":  len(pool),
		"suggested": len(eligible),
	})

	e.cache.Set(ctx, e.cfg, profile, mode, eligible)
	return eligible, nil
}

// buildNewVariant rewrites a pool entry as a fresh team assembled around the
// searching user. The team is named after the project type the user is
// building, the user counts as the only current member, and the target size
// and scoring fields carry over from the template entry.
func buildNewVariant(s models.CandidateSuggestion, index int, projectType string) models.CandidateSuggestion {
	s.ID = fmt.Sprintf("%s-new-%d", s.ID, index)
	s.Name = fmt.Sprintf("New %s Team %d", projectType, index+1)
	s.CurrentMembers = 1
	s.Reason = "Team is being assembled around your saved requirements."
	return s
}

func sourceLabel(s Source) string {
	switch s.(type) {
	case *StaticSource:
		return "static"
	case *PostgresSource:
		return "postgres"
	default:
		return "unknown"
	}
}
