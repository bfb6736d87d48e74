// internal/models/profile.go
package models

// MatchMode selects how matchmaking treats the candidate pool: joining an
// active team or assembling a fresh one.
type MatchMode string

const (
	ModeJoinExisting MatchMode = "join-existing"
	ModeBuildNew     MatchMode = "build-new"
)

// Valid reports whether the mode is one of the two supported values.
func (m MatchMode) Valid() bool {
	return m == ModeJoinExisting || m == ModeBuildNew
}

// AvailabilityBand is a weekly-hours range declared by the user.
type AvailabilityBand string

const (
	Availability5To10  AvailabilityBand = "5-10 hrs/week"
	Availability10To20 AvailabilityBand = "10-20 hrs/week"
	Availability20Plus AvailabilityBand = "20+ hrs/week"
)

// TimelineBand is an engagement-duration range declared by the user.
type TimelineBand string

const (
	TimelineSprint TimelineBand = "7-day sprint"
	TimelineWeeks  TimelineBand = "2-4 weeks"
	TimelineMonths TimelineBand = "1-3 months"
)

// MatchProfile is the user's declared search preferences. It is assembled by
// an external profile form; the engine only reads it. Skills are unique;
// their order matters for display only, never for scoring.
type MatchProfile struct {
	Mode             MatchMode        `json:"mode"`
	Role             string           `json:"role"`
	ProjectType      string           `json:"projectType"`
	AvailabilityBand AvailabilityBand `json:"availabilityBand"`
	TimelineBand     TimelineBand     `json:"timelineBand"`
	Skills           []string         `json:"skills"`
}

// HasSkill reports whether the profile declares the given skill tag.
func (p *MatchProfile) HasSkill(skill string) bool {
	for _, s := range p.Skills {
		if s == skill {
			return true
		}
	}
	return false
}

// AddSkill appends a skill tag, keeping the set unique and display order stable.
func (p *MatchProfile) AddSkill(skill string) {
	if !p.HasSkill(skill) {
		p.Skills = append(p.Skills, skill)
	}
}

// RemoveSkill drops a skill tag if present.
func (p *MatchProfile) RemoveSkill(skill string) {
	for i, s := range p.Skills {
		if s == skill {
			p.Skills = append(p.Skills[:i], p.Skills[i+1:]...)
			return
		}
	}
}

// Clone returns an independent copy of the profile.
func (p *MatchProfile) Clone() *MatchProfile {
	if p == nil {
		return nil
	}
	out := *p
	out.Skills = append([]string(nil), p.Skills...)
	return &out
}
