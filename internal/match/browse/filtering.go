// Package browse implements the passive discovery surfaces: the project
// table with its filter/sort pipeline and the curated weekly match list.
package browse

import (
	"fmt"

	"matchmaking-engine/internal/common/logger"
	"matchmaking-engine/internal/models"
)

// Filter is a single narrowing step applied to the project list. Filters
// never reorder rows; ordering is the sort stage's job.
type Filter interface {
	Name() string
	IsEnabled() bool
	Apply(projects []models.Project) ([]models.Project, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Name    string `json:"name"`
	Initial int    `json:"initial"`
	Dropped int    `json:"dropped"`
	Left    int    `json:"left"`
}

// Run executes the supplied filters sequentially and reports per-step drop
// counts. Disabled filters are skipped without producing a step.
func Run(filters []Filter, projects []models.Project, log logger.Logger) ([]models.Project, []Step, error) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	steps := make([]Step, 0, len(filters))
	for _, f := range filters {
		if !f.IsEnabled() {
			log.Debug("filter disabled", map[string]interface{}{"name": f.Name()})
			continue
		}

		next, info, err := f.Apply(projects)
		if err != nil {
			return nil, nil, fmt.Errorf("%s: %w", f.Name(), err)
		}

		log.Debug("filter step", map[string]interface{}{
			"name":    f.Name(),
			"initial": info.Initial,
			"dropped": info.Dropped,
			"left":    info.Left,
		})

		projects = next
		steps = append(steps, info)
	}

	return projects, steps, nil
}
