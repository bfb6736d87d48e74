// internal/match/browse/weekly.go
package browse

import (
	"fmt"
	"sync"

	"matchmaking-engine/internal/common/logger"
	"matchmaking-engine/internal/models"
)

// Action is a user response to a weekly match card.
type Action string

const (
	// ActionInterested moves a match to pending.
	ActionInterested Action = "interested"
	// ActionMaybe acknowledges a match without changing its status.
	ActionMaybe Action = "maybe"
	// ActionPass drops the match from the list.
	ActionPass Action = "pass"
	// ActionMicro accepts a small trial engagement.
	ActionMicro Action = "micro"
)

// resetConfidence is the threshold the empty-state reset falls back to.
const resetConfidence = 70

// WeeklyList holds the curated weekly matches and the user's confidence
// threshold. Passed matches leave the list permanently; the threshold only
// hides entries and can be lowered to bring them back.
type WeeklyList struct {
	mu            sync.Mutex
	matches       []models.Match
	minConfidence int
	logger        logger.Logger
}

// NewWeeklyList creates a weekly match list with the given starting threshold.
func NewWeeklyList(matches []models.Match, minConfidence int, log logger.Logger) *WeeklyList {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	copied := make([]models.Match, len(matches))
	copy(copied, matches)
	return &WeeklyList{
		matches:       copied,
		minConfidence: minConfidence,
		logger:        log,
	}
}

// Apply records a user action on a match. Passing removes the match; the
// other actions update its status in place. Unknown match ids are an error,
// unknown actions are not applied.
func (l *WeeklyList) Apply(id string, action Action) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.matches {
		if l.matches[i].ID != id {
			continue
		}
		switch action {
		case ActionInterested:
			l.matches[i].Status = models.MatchStatusPending
		case ActionPass:
			l.matches = append(l.matches[:i], l.matches[i+1:]...)
		case ActionMicro:
			l.matches[i].Status = models.MatchStatusMicroCommitment
		case ActionMaybe:
			// Acknowledged without a status change.
		default:
			return fmt.Errorf("unknown match action %q", action)
		}
		l.logger.Info("weekly match action", map[string]interface{}{
			"matchId": id,
			"action":  string(action),
		})
		return nil
	}
	return fmt.Errorf("unknown match %q", id)
}

// Matches returns the matches at or above the confidence threshold, as
// copies, in curated order.
func (l *WeeklyList) Matches() []models.Match {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]models.Match, 0, len(l.matches))
	for _, m := range l.matches {
		if m.MatchScore >= l.minConfidence {
			reasoning := append([]string(nil), m.Reasoning...)
			m.Reasoning = reasoning
			out = append(out, m)
		}
	}
	return out
}

// SetMinConfidence updates the threshold. Values outside [0,100] are rejected.
func (l *WeeklyList) SetMinConfidence(v int) error {
	if v < 0 || v > 100 {
		return fmt.Errorf("confidence threshold %d out of range [0,100]", v)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minConfidence = v
	return nil
}

// MinConfidence returns the current threshold.
func (l *WeeklyList) MinConfidence() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.minConfidence
}

// ResetThreshold lowers the threshold to the empty-state fallback.
func (l *WeeklyList) ResetThreshold() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minConfidence = resetConfidence
}
