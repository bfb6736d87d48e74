// Package gate validates that a match profile carries the minimum field set
// needed to run a search. Absence of data is a normal state, not a failure:
// evaluation is a pure function with no error path.
package gate

import (
	"strings"

	"matchmaking-engine/internal/models"
)

// Field names the required profile fields in their fixed evaluation order.
type Field string

const (
	FieldMode             Field = "mode"
	FieldRole             Field = "role"
	FieldProjectType      Field = "projectType"
	FieldAvailabilityBand Field = "availabilityBand"
	FieldTimelineBand     Field = "timelineBand"
	FieldSkills           Field = "skills"
)

// requiredFields fixes the stable order used for missing-field reporting so
// callers can render consistent guidance text.
var requiredFields = []struct {
	field Field
	label string
	done  func(*models.MatchProfile) bool
}{
	{FieldMode, "Match Mode", func(p *models.MatchProfile) bool { return p.Mode.Valid() }},
	{FieldRole, "Role", func(p *models.MatchProfile) bool { return p.Role != "" }},
	{FieldProjectType, "Project Type", func(p *models.MatchProfile) bool { return p.ProjectType != "" }},
	{FieldAvailabilityBand, "Availability", func(p *models.MatchProfile) bool { return p.AvailabilityBand != "" }},
	{FieldTimelineBand, "Timeline", func(p *models.MatchProfile) bool { return p.TimelineBand != "" }},
	{FieldSkills, "Skills", func(p *models.MatchProfile) bool { return len(p.Skills) > 0 }},
}

// Result is the outcome of a completeness evaluation.
type Result struct {
	Ready         bool     `json:"ready"`
	Missing       []Field  `json:"missing"`
	MissingLabels []string `json:"missingLabels"`
	Completed     int      `json:"completed"`
	Total         int      `json:"total"`
}

// Evaluate checks the six required fields. Readiness is recomputed on every
// call; nothing is cached. Missing lists every absent field in the fixed
// order mode, role, projectType, availabilityBand, timelineBand, skills.
func Evaluate(p *models.MatchProfile) Result {
	res := Result{Total: len(requiredFields)}
	if p == nil {
		p = &models.MatchProfile{}
	}

	for _, rf := range requiredFields {
		if rf.done(p) {
			res.Completed++
			continue
		}
		res.Missing = append(res.Missing, rf.field)
		res.MissingLabels = append(res.MissingLabels, rf.label)
	}

	res.Ready = res.Completed == res.Total
	return res
}

// CompletionPercent returns the setup progress fraction in [0,100].
func (r Result) CompletionPercent() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Completed) / float64(r.Total) * 100
}

// MissingFieldNames returns the missing fields as plain strings.
func (r Result) MissingFieldNames() []string {
	out := make([]string, 0, len(r.Missing))
	for _, f := range r.Missing {
		out = append(out, string(f))
	}
	return out
}

// GuidanceText renders the save-button hint shown next to an incomplete
// profile, e.g. "Missing: Role, Skills".
func (r Result) GuidanceText() string {
	if r.Ready {
		return "Ready to save"
	}
	return "Missing: " + strings.Join(r.MissingLabels, ", ")
}
