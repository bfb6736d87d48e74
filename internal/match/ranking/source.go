// internal/match/ranking/source.go
package ranking

import (
	"context"

	"matchmaking-engine/internal/models"
)

// Source supplies the candidate pool. The pool is read-only shared data; a
// source may be backed by any finite enumerable store (in-memory catalog,
// Postgres table, seed file).
type Source interface {
	List(ctx context.Context) ([]models.CandidateSuggestion, error)
}

// StaticSource serves a fixed in-memory pool.
type StaticSource struct {
	entries []models.CandidateSuggestion
}

// NewStaticSource creates a source over the given entries. The slice is
// copied so later mutation by the caller cannot leak into rankings.
func NewStaticSource(entries []models.CandidateSuggestion) *StaticSource {
	copied := make([]models.CandidateSuggestion, 0, len(entries))
	for i := range entries {
		copied = append(copied, entries[i].Clone())
	}
	return &StaticSource{entries: copied}
}

func (s *StaticSource) List(_ context.Context) ([]models.CandidateSuggestion, error) {
	out := make([]models.CandidateSuggestion, 0, len(s.entries))
	for i := range s.entries {
		out = append(out, s.entries[i].Clone())
	}
	return out, nil
}

// DefaultPool returns the authored candidate pool in its natural order.
// Pool order is significant: the reference ranking emits eligible entries
// in this order.
func DefaultPool() []models.CandidateSuggestion {
	return []models.CandidateSuggestion{
		{
			ID:             "q1",
			Name:           "Sprint Squad Alpha",
			ProjectType:    "SaaS",
			MatchScore:     91,
			CurrentMembers: 3,
			TargetMembers:  5,
			NeededRoles:    []string{"Frontend Developer", "UI Designer"},
			Reason:         "Your React + design profile fills their highest priority gaps.",
			ETA:            "~3 min",
			Breakdown:      models.ScoreBreakdown{Skills: 92, Availability: 88, Style: 90},
		},
		{
			ID:             "q2",
			Name:           "Pixel Forge Team",
			ProjectType:    "Game",
			MatchScore:     84,
			CurrentMembers: 2,
			TargetMembers:  5,
			NeededRoles:    []string{"Backend Developer", "Product Manager"},
			Reason:         "Team needs backend and roadmap ownership now.",
			ETA:            "~5 min",
			Breakdown:      models.ScoreBreakdown{Skills: 86, Availability: 79, Style: 84},
		},
		{
			ID:             "q3",
			Name:           "Launchpad Builders",
			ProjectType:    "Web App",
			MatchScore:     88,
			CurrentMembers: 4,
			TargetMembers:  5,
			NeededRoles:    []string{"Frontend Developer"},
			Reason:         "Strong fit on async communication and sprint timeline.",
			ETA:            "~2 min",
			Breakdown:      models.ScoreBreakdown{Skills: 89, Availability: 85, Style: 90},
		},
		{
			ID:             "q4",
			Name:           "Mobile Momentum",
			ProjectType:    "Mobile App",
			MatchScore:     86,
			CurrentMembers: 3,
			TargetMembers:  5,
			NeededRoles:    []string{"UI Designer", "Backend Developer"},
			Reason:         "High overlap across design + engineering workflow.",
			ETA:            "~4 min",
			Breakdown:      models.ScoreBreakdown{Skills: 87, Availability: 82, Style: 86},
		},
	}
}
