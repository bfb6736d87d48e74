// internal/match/browse/filters.go
package browse

import (
	"strings"

	"matchmaking-engine/internal/models"
)

func step(name string, initial, left int) Step {
	return Step{Name: name, Initial: initial, Dropped: initial - left, Left: left}
}

// searchFilter keeps projects whose name or any needed role contains the
// query, case-insensitively.
type searchFilter struct {
	query string
}

// NewSearch creates the free-text search filter. An empty query disables it.
func NewSearch(query string) Filter {
	return &searchFilter{query: strings.ToLower(strings.TrimSpace(query))}
}

func (f *searchFilter) Name() string    { return "search" }
func (f *searchFilter) IsEnabled() bool { return f.query != "" }

func (f *searchFilter) Apply(projects []models.Project) ([]models.Project, Step, error) {
	initial := len(projects)
	out := make([]models.Project, 0, initial)
	for _, p := range projects {
		if strings.Contains(strings.ToLower(p.Name), f.query) || anyRoleContains(p.Roles, f.query) {
			out = append(out, p)
		}
	}
	return out, step(f.Name(), initial, len(out)), nil
}

func anyRoleContains(roles []string, query string) bool {
	for _, r := range roles {
		if strings.Contains(strings.ToLower(r), query) {
			return true
		}
	}
	return false
}

// roleFilter keeps projects needing at least one of the selected roles.
type roleFilter struct {
	roles map[string]bool
}

// NewRoleFilter creates the role facet filter. An empty selection disables it.
func NewRoleFilter(roles []string) Filter {
	set := make(map[string]bool, len(roles))
	for _, r := range roles {
		set[r] = true
	}
	return &roleFilter{roles: set}
}

func (f *roleFilter) Name() string    { return "roles" }
func (f *roleFilter) IsEnabled() bool { return len(f.roles) > 0 }

func (f *roleFilter) Apply(projects []models.Project) ([]models.Project, Step, error) {
	initial := len(projects)
	out := make([]models.Project, 0, initial)
	for _, p := range projects {
		for _, r := range p.Roles {
			if f.roles[r] {
				out = append(out, p)
				break
			}
		}
	}
	return out, step(f.Name(), initial, len(out)), nil
}

// commitmentFilter keeps projects whose commitment band is selected.
// Matching is exact; bands are labels, not ranges.
type commitmentFilter struct {
	bands map[string]bool
}

// NewCommitmentFilter creates the commitment facet filter. An empty selection
// disables it.
func NewCommitmentFilter(bands []string) Filter {
	set := make(map[string]bool, len(bands))
	for _, b := range bands {
		set[b] = true
	}
	return &commitmentFilter{bands: set}
}

func (f *commitmentFilter) Name() string    { return "commitment" }
func (f *commitmentFilter) IsEnabled() bool { return len(f.bands) > 0 }

func (f *commitmentFilter) Apply(projects []models.Project) ([]models.Project, Step, error) {
	initial := len(projects)
	out := make([]models.Project, 0, initial)
	for _, p := range projects {
		if f.bands[p.Commitment] {
			out = append(out, p)
		}
	}
	return out, step(f.Name(), initial, len(out)), nil
}

// minScoreFilter keeps projects scoring at or above the threshold. A zero
// threshold disables the filter entirely.
type minScoreFilter struct {
	min int
}

// NewMinScore creates the match-score threshold filter.
func NewMinScore(min int) Filter {
	return &minScoreFilter{min: min}
}

func (f *minScoreFilter) Name() string    { return "min_score" }
func (f *minScoreFilter) IsEnabled() bool { return f.min > 0 }

func (f *minScoreFilter) Apply(projects []models.Project) ([]models.Project, Step, error) {
	initial := len(projects)
	out := make([]models.Project, 0, initial)
	for _, p := range projects {
		if p.MatchScore >= f.min {
			out = append(out, p)
		}
	}
	return out, step(f.Name(), initial, len(out)), nil
}
