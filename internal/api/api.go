// Package api exposes the matchmaking engine over HTTP. The surface is a
// thin JSON layer; all behavior lives in the match packages.
package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"matchmaking-engine/internal/common/errors"
	"matchmaking-engine/internal/common/logger"
	"matchmaking-engine/internal/match/browse"
	"matchmaking-engine/internal/match/queue"
)

// API wires the HTTP routes to the engine components.
type API struct {
	session *queue.Controller
	browse  *browse.Service
	weekly  *browse.WeeklyList
	logger  logger.Logger
}

// New creates the API layer.
func New(session *queue.Controller, browseSvc *browse.Service, weekly *browse.WeeklyList, log logger.Logger) *API {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &API{
		session: session,
		browse:  browseSvc,
		weekly:  weekly,
		logger:  log,
	}
}

// Router returns the route table.
func (a *API) Router() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", a.HealthHandler)

	mux.HandleFunc("GET /api/v1/session", a.SnapshotHandler)
	mux.HandleFunc("POST /api/v1/session/start", a.StartHandler)
	mux.HandleFunc("POST /api/v1/session/reset/request", a.ResetRequestHandler)
	mux.HandleFunc("POST /api/v1/session/reset/confirm", a.ResetConfirmHandler)
	mux.HandleFunc("POST /api/v1/session/reset/cancel", a.ResetCancelHandler)
	mux.HandleFunc("POST /api/v1/session/suggestions/{id}/expand", a.ToggleExpandHandler)
	mux.HandleFunc("POST /api/v1/session/suggestions/{id}/save", a.ToggleSaveHandler)

	mux.HandleFunc("POST /api/v1/profile/check", a.ProfileCheckHandler)
	mux.HandleFunc("GET /api/v1/skills", a.SkillsHandler)

	mux.HandleFunc("GET /api/v1/projects", a.ProjectsHandler)

	mux.HandleFunc("GET /api/v1/matches", a.MatchesHandler)
	mux.HandleFunc("POST /api/v1/matches/{id}/action", a.MatchActionHandler)
	mux.HandleFunc("PUT /api/v1/matches/threshold", a.ThresholdHandler)

	return mux
}

func (a *API) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		a.logger.WithError(err).Error("failed to encode response", nil)
	}
}

// writeError maps engine error codes to HTTP statuses and returns the
// structured error as the body.
func (a *API) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.CodeOf(err) {
	case errors.ErrCodeProfileIncomplete:
		status = http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidTransition, errors.ErrCodeResetNotRequested:
		status = http.StatusConflict
	case errors.ErrCodeSessionClosed:
		status = http.StatusGone
	case errors.ErrCodePoolSourceFailed, errors.ErrCodeSearchBackendError:
		status = http.StatusBadGateway
	}

	var se *errors.StandardError
	if !stderrors.As(err, &se) {
		se = &errors.StandardError{Message: err.Error()}
	}
	a.writeJSON(w, status, map[string]interface{}{"error": se})
}
