// internal/match/ranking/postgres.go
package ranking

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"matchmaking-engine/internal/common/database"
	"matchmaking-engine/internal/models"
)

// listPoolQuery returns the pool in authored order. The position column is
// the ranking tiebreaker, so it must stay in the ORDER BY.
const listPoolQuery = `
	SELECT id, name, project_type, match_score,
	       current_members, target_members, needed_roles,
	       reason, eta,
	       breakdown_skills, breakdown_availability, breakdown_style
	FROM candidate_pool
	ORDER BY position ASC`

// PostgresSource loads the candidate pool from the candidate_pool table.
type PostgresSource struct {
	db *database.PostgresClient
}

// NewPostgresSource creates a Postgres-backed pool source.
func NewPostgresSource(db *database.PostgresClient) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) List(ctx context.Context) ([]models.CandidateSuggestion, error) {
	rows, err := s.db.Query(ctx, listPoolQuery)
	if err != nil {
		return nil, fmt.Errorf("query candidate pool: %w", err)
	}
	defer rows.Close()

	var out []models.CandidateSuggestion
	for rows.Next() {
		var c models.CandidateSuggestion
		if err := rows.Scan(
			&c.ID, &c.Name, &c.ProjectType, &c.MatchScore,
			&c.CurrentMembers, &c.TargetMembers, pq.Array(&c.NeededRoles),
			&c.Reason, &c.ETA,
			&c.Breakdown.Skills, &c.Breakdown.Availability, &c.Breakdown.Style,
		); err != nil {
			return nil, fmt.Errorf("scan candidate pool row: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidate pool rows: %w", err)
	}

	return out, nil
}
