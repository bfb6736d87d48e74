// Package pool loads and validates the candidate pool catalog used to seed
// the ranking engine.
package pool

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"matchmaking-engine/internal/common/errors"
	"matchmaking-engine/internal/models"
)

// Load reads and validates a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse validates raw catalog JSON and decodes it.
func Parse(data []byte) (*Catalog, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var cat Catalog
	if err := json.Unmarshal(data, &cat); err != nil {
		return nil, errors.NewCatalogInvalidError(err.Error())
	}

	seen := make(map[string]bool, len(cat.Entries))
	for _, e := range cat.Entries {
		if seen[e.ID] {
			return nil, errors.NewCatalogInvalidError(fmt.Sprintf("duplicate entry id %q", e.ID))
		}
		seen[e.ID] = true
		if e.CurrentMembers > e.TargetMembers {
			return nil, errors.NewCatalogInvalidError(
				fmt.Sprintf("entry %q: currentMembers %d exceeds targetMembers %d", e.ID, e.CurrentMembers, e.TargetMembers))
		}
	}

	return &cat, nil
}

func validate(data []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(catalogSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return errors.NewCatalogInvalidError(err.Error())
	}

	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return errors.NewCatalogInvalidError(strings.Join(errs, "; "))
	}

	return nil
}

// Suggestions converts catalog entries to pool suggestions in authored order.
func (c *Catalog) Suggestions() []models.CandidateSuggestion {
	out := make([]models.CandidateSuggestion, 0, len(c.Entries))
	for _, e := range c.Entries {
		out = append(out, models.CandidateSuggestion{
			ID:             e.ID,
			Name:           e.Name,
			ProjectType:    e.ProjectType,
			MatchScore:     e.MatchScore,
			CurrentMembers: e.CurrentMembers,
			TargetMembers:  e.TargetMembers,
			NeededRoles:    append([]string(nil), e.NeededRoles...),
			Reason:         e.Reason,
			ETA:            e.ETA,
			Breakdown: models.ScoreBreakdown{
				Skills:       e.Breakdown.Skills,
				Availability: e.Breakdown.Availability,
				Style:        e.Breakdown.Style,
			},
		})
	}
	return out
}
