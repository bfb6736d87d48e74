// internal/models/browse.go
package models

// MatchStatus tracks a passive weekly match through user actions.
type MatchStatus string

const (
	MatchStatusNew             MatchStatus = "new"
	MatchStatusPending         MatchStatus = "pending"
	MatchStatusPassed          MatchStatus = "passed"
	MatchStatusMicroCommitment MatchStatus = "micro-commitment"
)

// Match is a precomputed entry in the passive weekly-matches list.
type Match struct {
	ID           string         `json:"id"`
	ProjectName  string         `json:"projectName"`
	ProjectStage string         `json:"projectStage"`
	MatchScore   int            `json:"matchScore"`
	Role         string         `json:"role"`
	Commitment   string         `json:"commitment"`
	Duration     string         `json:"duration"`
	Status       MatchStatus    `json:"status"`
	Breakdown    ScoreBreakdown `json:"breakdown"`
	Reasoning    []string       `json:"reasoning,omitempty"`
}

// Project is a row in the project browse table. Posted is a human-readable
// recency label such as "4h ago", "2d ago" or "1w ago".
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Roles        []string `json:"roles"`
	Commitment   string   `json:"commitment"`
	MatchScore   int      `json:"matchScore"`
	Posted       string   `json:"posted"`
	TeamSize     int      `json:"teamSize"`
	OpenRoles    int      `json:"openRoles"`
	ResponseTime string   `json:"responseTime"`
}
