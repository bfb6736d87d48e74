// internal/match/browse/service.go
package browse

import (
	"context"

	"matchmaking-engine/internal/common/logger"
	"matchmaking-engine/internal/models"
)

// Query carries the browse table controls. Zero values disable the
// corresponding filter.
type Query struct {
	Search      string     `json:"search"`
	Roles       []string   `json:"roles"`
	Commitments []string   `json:"commitments"`
	MinScore    int        `json:"minScore"`
	Sort        SortOption `json:"sort"`
}

// Result is a filtered, sorted view of the project list plus the per-step
// drop counts that explain it.
type Result struct {
	Projects []models.Project `json:"projects"`
	Steps    []Step           `json:"steps"`
	Total    int              `json:"total"`
}

// Service runs browse queries over a fixed project list. When a search
// source is configured, free-text search is delegated to it; otherwise the
// local substring filter applies. All other filters always run locally.
type Service struct {
	projects []models.Project
	search   SearchSource
	logger   logger.Logger
}

// NewService creates a browse service. search may be nil.
func NewService(projects []models.Project, search SearchSource, log logger.Logger) *Service {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	copied := make([]models.Project, len(projects))
	copy(copied, projects)
	return &Service{projects: copied, search: search, logger: log}
}

// Browse applies the query's filters in their fixed order (search, roles,
// commitment, score threshold) and then the requested sort. Filters only
// narrow; with every filter disabled the full list comes back in relevance
// order.
func (s *Service) Browse(ctx context.Context, q Query) (Result, error) {
	base := make([]models.Project, len(s.projects))
	copy(base, s.projects)

	filters := []Filter{
		s.searchFilter(ctx, q.Search),
		NewRoleFilter(q.Roles),
		NewCommitmentFilter(q.Commitments),
		NewMinScore(q.MinScore),
	}

	left, steps, err := Run(filters, base, s.logger)
	if err != nil {
		return Result{}, err
	}

	ApplySort(left, q.Sort)

	return Result{
		Projects: left,
		Steps:    steps,
		Total:    len(s.projects),
	}, nil
}

// searchFilter prefers the external index. A backend failure degrades to the
// local substring search so browsing keeps working through an index outage.
func (s *Service) searchFilter(ctx context.Context, query string) Filter {
	if s.search == nil || query == "" {
		return NewSearch(query)
	}

	ids, err := s.search.SearchProjects(ctx, query)
	if err != nil {
		s.logger.WithError(err).Warn("search backend unavailable, using local search", nil)
		return NewSearch(query)
	}
	return NewIDFilter("search", ids)
}

// idFilter keeps projects whose id is in the allowed set. Used to apply an
// externally computed search result to the local list.
type idFilter struct {
	name string
	ids  map[string]bool
}

// NewIDFilter creates a filter keeping only the given project ids.
func NewIDFilter(name string, ids []string) Filter {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return &idFilter{name: name, ids: set}
}

func (f *idFilter) Name() string    { return f.name }
func (f *idFilter) IsEnabled() bool { return true }

func (f *idFilter) Apply(projects []models.Project) ([]models.Project, Step, error) {
	initial := len(projects)
	out := make([]models.Project, 0, initial)
	for _, p := range projects {
		if f.ids[p.ID] {
			out = append(out, p)
		}
	}
	return out, step(f.name, initial, len(out)), nil
}
