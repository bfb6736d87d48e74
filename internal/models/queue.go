// internal/models/queue.go
package models

import "fmt"

// QueueState is the matchmaking session state.
type QueueState string

const (
	StateIdle      QueueState = "idle"
	StateSearching QueueState = "searching"
	StateMatched   QueueState = "matched"
)

// Snapshot is the read-only view handed to the rendering layer. It is
// recomputed after every transition or toggle and never aliases live
// session data.
type Snapshot struct {
	SessionID            string                `json:"sessionId"`
	State                QueueState            `json:"state"`
	ElapsedSeconds       int                   `json:"elapsedSeconds"`
	EstimatedWaitSeconds int                   `json:"estimatedWaitSeconds"`
	EstimatedWaitLabel   string                `json:"estimatedWaitLabel"`
	Progress             float64               `json:"progress"`
	ScanMessage          string                `json:"scanMessage"`
	ResetPending         bool                  `json:"resetPending"`
	Suggestions          []CandidateSuggestion `json:"suggestions"`
	ExpandedIDs          []string              `json:"expandedIds"`
	SavedIDs             []string              `json:"savedIds"`
	MissingFields        []string              `json:"missingFields"`
}

// FormatElapsed renders seconds as m:ss for display.
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
