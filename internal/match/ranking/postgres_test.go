package ranking

import (
	"context"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmaking-engine/internal/common/database"
)

var poolColumns = []string{
	"id", "name", "project_type", "match_score",
	"current_members", "target_members", "needed_roles",
	"reason", "eta",
	"breakdown_skills", "breakdown_availability", "breakdown_style",
}

func TestPostgresSource_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(poolColumns).
		AddRow("q1", "Sprint Squad Alpha", "SaaS", 91,
			3, 5, `{"Frontend Developer","UI Designer"}`,
			"Your React + design profile fills their highest priority gaps.", "~3 min",
			92, 88, 90).
		AddRow("q2", "Pixel Forge Team", "Game", 84,
			2, 5, `{"Backend Developer","Product Manager"}`,
			"Team needs backend and roadmap ownership now.", "~5 min",
			86, 79, 84)

	mock.ExpectQuery("SELECT id, name, project_type").WillReturnRows(rows)

	src := NewPostgresSource(&database.PostgresClient{DB: db})
	got, err := src.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "q1", got[0].ID)
	assert.Equal(t, []string{"Frontend Developer", "UI Designer"}, got[0].NeededRoles)
	assert.Equal(t, 91, got[0].MatchScore)
	assert.Equal(t, 79, got[1].Breakdown.Availability)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSource_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, project_type").WillReturnRows(sqlmock.NewRows(poolColumns))

	src := NewPostgresSource(&database.PostgresClient{DB: db})
	got, err := src.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestPostgresSource_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name, project_type").WillReturnError(fmt.Errorf("relation does not exist"))

	src := NewPostgresSource(&database.PostgresClient{DB: db})
	got, err := src.List(context.Background())

	assert.Nil(t, got)
	assert.ErrorContains(t, err, "query candidate pool")
}
