// Package queue implements the matchmaking session state machine. A session
// moves idle -> searching -> matched, with a two-step confirmed reset back to
// idle from either active state. All timing runs through an injected Clock.
package queue

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"matchmaking-engine/internal/common/config"
	"matchmaking-engine/internal/common/errors"
	"matchmaking-engine/internal/common/logger"
	"matchmaking-engine/internal/common/metrics"
	"matchmaking-engine/internal/common/observability"
	"matchmaking-engine/internal/match/bookmarks"
	"matchmaking-engine/internal/match/gate"
	"matchmaking-engine/internal/match/ranking"
	"matchmaking-engine/internal/models"
)

// scanMessages rotate on the searching screen while the engine works.
var scanMessages = []string{
	"Scanning 240 projects in your selected domain...",
	"Filtering by availability overlap...",
	"Checking role and skill compatibility...",
	"Evaluating working style alignment...",
}

// rankTimeout bounds the pool lookup that runs when a search completes.
const rankTimeout = 10 * time.Second

// Controller owns one matchmaking session. All methods are safe for
// concurrent use; timer callbacks carry the generation they were scheduled
// under and no-op when a reset or close has moved the session on.
type Controller struct {
	cfg    config.QueueConfig
	ranker *ranking.Engine
	marks  bookmarks.Store
	clock  Clock
	obs    *observability.Observability
	logger logger.Logger

	mu           sync.Mutex
	sessionID    string
	state        models.QueueState
	profile      *models.MatchProfile
	elapsed      int
	messageIndex int
	wait         time.Duration
	suggestions  []models.CandidateSuggestion
	resetPending bool
	closed       bool
	generation   int
	startedAt    time.Time

	tickTimer     Timer
	rotateTimer   Timer
	completeTimer Timer
}

// NewController creates an idle session. obs may be nil.
func NewController(
	cfg config.QueueConfig,
	ranker *ranking.Engine,
	marks bookmarks.Store,
	clock Clock,
	obs *observability.Observability,
	log logger.Logger,
) *Controller {
	if marks == nil {
		marks = bookmarks.NewMemoryStore()
	}
	if clock == nil {
		clock = NewRealClock()
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &Controller{
		cfg:       cfg,
		ranker:    ranker,
		marks:     marks,
		clock:     clock,
		obs:       obs,
		logger:    log,
		sessionID: uuid.NewString(),
		state:     models.StateIdle,
	}
}

// SessionID returns the session's stable identifier.
func (c *Controller) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Start begins a search for the given profile. It fails when the profile is
// incomplete, the session is not idle, or the session is closed. On success
// the elapsed counter, scan message rotation and completion timer begin.
func (c *Controller) Start(_ context.Context, profile *models.MatchProfile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.NewSessionClosedError()
	}
	if c.state != models.StateIdle {
		metrics.SearchesRejected.WithLabelValues("not_idle").Inc()
		return errors.NewInvalidTransitionError(string(c.state), "start")
	}

	res := gate.Evaluate(profile)
	if !res.Ready {
		metrics.SearchesRejected.WithLabelValues("profile_incomplete").Inc()
		return errors.NewProfileIncompleteError(res.MissingFieldNames())
	}

	c.profile = profile.Clone()
	c.state = models.StateSearching
	c.elapsed = 0
	c.messageIndex = 0
	c.resetPending = false
	c.suggestions = nil
	c.startedAt = c.clock.Now()
	c.wait = c.cfg.EstimatedWait.JoinExisting
	if c.profile.Mode == models.ModeBuildNew {
		c.wait = c.cfg.EstimatedWait.BuildNew
	}

	c.generation++
	gen := c.generation
	c.tickTimer = c.clock.AfterFunc(c.cfg.TickInterval, func() { c.onTick(gen) })
	c.rotateTimer = c.clock.AfterFunc(c.cfg.MessageRotationInterval, func() { c.onRotate(gen) })
	c.completeTimer = c.clock.AfterFunc(c.cfg.CompleteAfter, func() { c.onComplete(gen) })

	metrics.SearchesStarted.WithLabelValues(string(c.profile.Mode)).Inc()
	metrics.ActiveSearches.Inc()
	c.logger.Info("search started", map[string]interface{}{
		"sessionId": c.sessionID,
		"mode":      string(c.profile.Mode),
	})
	return nil
}

// onTick advances the elapsed counter once per tick interval.
func (c *Controller) onTick(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || c.state != models.StateSearching {
		return
	}
	c.elapsed++
	c.tickTimer = c.clock.AfterFunc(c.cfg.TickInterval, func() { c.onTick(gen) })
}

// onRotate cycles to the next scan message, wrapping around.
func (c *Controller) onRotate(gen int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || c.state != models.StateSearching {
		return
	}
	c.messageIndex = (c.messageIndex + 1) % len(scanMessages)
	c.rotateTimer = c.clock.AfterFunc(c.cfg.MessageRotationInterval, func() { c.onRotate(gen) })
}

// onComplete finishes the search: rank the pool and move to matched. Ranking
// runs outside the session lock, so a reset can race it; the generation
// recheck discards the stale result in that case. On a retryable pool failure
// the session stays searching and completion is rescheduled.
func (c *Controller) onComplete(gen int) {
	c.mu.Lock()
	if gen != c.generation || c.state != models.StateSearching {
		c.mu.Unlock()
		return
	}
	profile := c.profile.Clone()
	c.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), rankTimeout)
	defer cancel()
	suggestions, err := c.ranker.Rank(ctx, profile, profile.Mode)

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation || c.state != models.StateSearching {
		return
	}

	if err != nil {
		c.logger.WithError(err).Error("ranking failed, retrying completion", map[string]interface{}{
			"sessionId": c.sessionID,
		})
		c.completeTimer = c.clock.AfterFunc(c.cfg.CompleteAfter, func() { c.onComplete(gen) })
		return
	}

	c.stopTimersLocked()
	c.state = models.StateMatched
	c.suggestions = suggestions

	mode := string(profile.Mode)
	duration := c.clock.Now().Sub(c.startedAt)
	metrics.SearchesCompleted.WithLabelValues(mode).Inc()
	metrics.ActiveSearches.Dec()
	metrics.SearchDuration.WithLabelValues(mode).Observe(duration.Seconds())
	metrics.SuggestionsReturned.Observe(float64(len(suggestions)))
	if c.obs != nil {
		c.obs.RecordSearchProcessed(ctx, "matched")
		c.obs.RecordSearchDuration(ctx, duration, "matched")
	}

	c.logger.Info("search matched", map[string]interface{}{
		"sessionId":   c.sessionID,
		"mode":        mode,
		"suggestions": len(suggestions),
	})
}

// RequestReset arms the reset confirmation. Valid from searching or matched.
func (c *Controller) RequestReset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.NewSessionClosedError()
	}
	if c.state == models.StateIdle {
		return errors.NewInvalidTransitionError(string(c.state), "reset")
	}
	c.resetPending = true
	return nil
}

// CancelReset disarms a pending reset confirmation. Calling it without a
// pending reset is a no-op.
func (c *Controller) CancelReset() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.NewSessionClosedError()
	}
	c.resetPending = false
	return nil
}

// ConfirmReset completes a previously requested reset: the session returns
// to idle, timers stop, suggestions and expansion marks are dropped. Saved
// suggestions survive.
func (c *Controller) ConfirmReset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return errors.NewSessionClosedError()
	}
	if !c.resetPending {
		return errors.NewResetNotRequestedError()
	}

	if c.state == models.StateSearching {
		metrics.ActiveSearches.Dec()
	}
	c.generation++
	c.stopTimersLocked()
	c.state = models.StateIdle
	c.elapsed = 0
	c.messageIndex = 0
	c.suggestions = nil
	c.resetPending = false

	if err := c.marks.ClearExpanded(ctx, c.sessionID); err != nil {
		c.logger.WithError(err).Warn("failed to clear expansion marks on reset", map[string]interface{}{
			"sessionId": c.sessionID,
		})
	}

	metrics.SearchesReset.Inc()
	c.logger.Info("search reset", map[string]interface{}{"sessionId": c.sessionID})
	return nil
}

// ToggleExpand flips a suggestion's detail-row expansion and returns the new
// state.
func (c *Controller) ToggleExpand(ctx context.Context, suggestionID string) (bool, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false, errors.NewSessionClosedError()
	}
	sessionID := c.sessionID
	c.mu.Unlock()

	return c.marks.ToggleExpanded(ctx, sessionID, suggestionID)
}

// ToggleSave flips a suggestion's save-for-later mark and returns the new
// state.
func (c *Controller) ToggleSave(ctx context.Context, suggestionID string) (bool, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false, errors.NewSessionClosedError()
	}
	sessionID := c.sessionID
	c.mu.Unlock()

	return c.marks.ToggleSaved(ctx, sessionID, suggestionID)
}

// Snapshot renders the current session view. The returned value shares no
// mutable state with the session.
func (c *Controller) Snapshot(ctx context.Context) (models.Snapshot, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return models.Snapshot{}, errors.NewSessionClosedError()
	}

	snap := models.Snapshot{
		SessionID:      c.sessionID,
		State:          c.state,
		ElapsedSeconds: c.elapsed,
		ResetPending:   c.resetPending,
	}

	if c.profile != nil {
		snap.EstimatedWaitSeconds = int(c.wait.Seconds())
		snap.EstimatedWaitLabel = waitLabel(c.profile.Mode)
		snap.MissingFields = gate.Evaluate(c.profile).MissingFieldNames()
	}

	switch c.state {
	case models.StateSearching:
		snap.ScanMessage = scanMessages[c.messageIndex]
		if c.wait > 0 {
			snap.Progress = float64(c.elapsed) / c.wait.Seconds()
			if snap.Progress > 1 {
				snap.Progress = 1
			}
		}
	case models.StateMatched:
		snap.Progress = 1
		snap.Suggestions = make([]models.CandidateSuggestion, 0, len(c.suggestions))
		for i := range c.suggestions {
			snap.Suggestions = append(snap.Suggestions, c.suggestions[i].Clone())
		}
	}

	sessionID := c.sessionID
	c.mu.Unlock()

	expanded, err := c.marks.Expanded(ctx, sessionID)
	if err != nil {
		return models.Snapshot{}, err
	}
	saved, err := c.marks.Saved(ctx, sessionID)
	if err != nil {
		return models.Snapshot{}, err
	}
	snap.ExpandedIDs = expanded
	snap.SavedIDs = saved
	return snap, nil
}

// Close tears the session down. Pending timers are cancelled and every later
// call fails with a session-closed error. Close is idempotent.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	if c.state == models.StateSearching {
		metrics.ActiveSearches.Dec()
	}
	c.generation++
	c.stopTimersLocked()
	c.closed = true
	c.logger.Info("session closed", map[string]interface{}{"sessionId": c.sessionID})
}

func (c *Controller) stopTimersLocked() {
	for _, t := range []Timer{c.tickTimer, c.rotateTimer, c.completeTimer} {
		if t != nil {
			t.Stop()
		}
	}
	c.tickTimer, c.rotateTimer, c.completeTimer = nil, nil, nil
}

// waitLabel is the coarse human estimate shown next to the progress bar.
func waitLabel(mode models.MatchMode) string {
	if mode == models.ModeBuildNew {
		return "~4-8 min"
	}
	return "~2-5 min"
}
