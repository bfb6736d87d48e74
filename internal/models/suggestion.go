// internal/models/suggestion.go
package models

// ScoreBreakdown splits a match score into its explainable components.
// Each component must lie within [0,100]; the top-level MatchScore is
// independently authored and need not be a function of these.
type ScoreBreakdown struct {
	Skills       int `json:"skills"`
	Availability int `json:"availability"`
	Style        int `json:"style"`
}

// InRange reports whether every component lies within [0,100].
func (b ScoreBreakdown) InRange() bool {
	for _, v := range []int{b.Skills, b.Availability, b.Style} {
		if v < 0 || v > 100 {
			return false
		}
	}
	return true
}

// CandidateSuggestion is an opportunity (team/project) from the candidate
// pool. Pool entries are immutable during a session; the ranking engine
// always hands out copies.
type CandidateSuggestion struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	ProjectType    string         `json:"projectType"`
	MatchScore     int            `json:"matchScore"`
	CurrentMembers int            `json:"currentMembers"`
	TargetMembers  int            `json:"targetMembers"`
	NeededRoles    []string       `json:"neededRoles"`
	Reason         string         `json:"reason"`
	ETA            string         `json:"eta"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
}

// NeedsRole reports whether the suggestion lists the given role as needed.
func (s *CandidateSuggestion) NeedsRole(role string) bool {
	for _, r := range s.NeededRoles {
		if r == role {
			return true
		}
	}
	return false
}

// Clone returns an independent copy of the suggestion.
func (s *CandidateSuggestion) Clone() CandidateSuggestion {
	out := *s
	out.NeededRoles = append([]string(nil), s.NeededRoles...)
	return out
}

// CandidateRepository defines candidate pool data access.
type CandidateRepository interface {
	List() ([]CandidateSuggestion, error)
}
