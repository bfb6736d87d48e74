// internal/api/handlers.go
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"matchmaking-engine/internal/match/browse"
	"matchmaking-engine/internal/match/gate"
	"matchmaking-engine/internal/models"
)

// HealthHandler reports liveness.
func (a *API) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// StartHandler begins a search for the posted profile.
func (a *API) StartHandler(w http.ResponseWriter, r *http.Request) {
	var profile models.MatchProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := a.session.Start(r.Context(), &profile); err != nil {
		a.writeError(w, err)
		return
	}

	snap, err := a.session.Snapshot(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusAccepted, snap)
}

// SnapshotHandler returns the current session view.
func (a *API) SnapshotHandler(w http.ResponseWriter, r *http.Request) {
	snap, err := a.session.Snapshot(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, snap)
}

// ResetRequestHandler arms the reset confirmation.
func (a *API) ResetRequestHandler(w http.ResponseWriter, r *http.Request) {
	a.sessionOp(w, r, a.session.RequestReset)
}

// ResetConfirmHandler completes a pending reset.
func (a *API) ResetConfirmHandler(w http.ResponseWriter, r *http.Request) {
	a.sessionOp(w, r, func() error { return a.session.ConfirmReset(r.Context()) })
}

// ResetCancelHandler disarms a pending reset.
func (a *API) ResetCancelHandler(w http.ResponseWriter, r *http.Request) {
	a.sessionOp(w, r, a.session.CancelReset)
}

func (a *API) sessionOp(w http.ResponseWriter, r *http.Request, op func() error) {
	if err := op(); err != nil {
		a.writeError(w, err)
		return
	}
	snap, err := a.session.Snapshot(r.Context())
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, snap)
}

// ToggleExpandHandler flips a suggestion's detail expansion.
func (a *API) ToggleExpandHandler(w http.ResponseWriter, r *http.Request) {
	on, err := a.session.ToggleExpand(r.Context(), r.PathValue("id"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]bool{"expanded": on})
}

// ToggleSaveHandler flips a suggestion's save-for-later mark.
func (a *API) ToggleSaveHandler(w http.ResponseWriter, r *http.Request) {
	on, err := a.session.ToggleSave(r.Context(), r.PathValue("id"))
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]bool{"saved": on})
}

// ProfileCheckHandler evaluates profile completeness without starting a
// search.
func (a *API) ProfileCheckHandler(w http.ResponseWriter, r *http.Request) {
	var profile models.MatchProfile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	res := gate.Evaluate(&profile)
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"ready":             res.Ready,
		"missing":           res.MissingFieldNames(),
		"completionPercent": res.CompletionPercent(),
		"guidance":          res.GuidanceText(),
	})
}

// SkillsHandler returns the skill catalog grouped by category, optionally
// narrowed by ?q=.
func (a *API) SkillsHandler(w http.ResponseWriter, r *http.Request) {
	grouped := gate.SearchSkills(gate.DefaultSkillCatalog, r.URL.Query().Get("q"))
	a.writeJSON(w, http.StatusOK, grouped)
}

// ProjectsHandler runs a browse query built from the query string.
func (a *API) ProjectsHandler(w http.ResponseWriter, r *http.Request) {
	q := browse.Query{
		Search: r.URL.Query().Get("search"),
		Sort:   browse.SortRelevance,
	}
	if roles := r.URL.Query().Get("roles"); roles != "" {
		q.Roles = strings.Split(roles, ",")
	}
	if commitments := r.URL.Query().Get("commitment"); commitments != "" {
		q.Commitments = strings.Split(commitments, ",")
	}
	if raw := r.URL.Query().Get("minScore"); raw != "" {
		min, err := strconv.Atoi(raw)
		if err != nil || min < 0 || min > 100 {
			http.Error(w, "minScore must be an integer within [0,100]", http.StatusBadRequest)
			return
		}
		q.MinScore = min
	}
	if raw := r.URL.Query().Get("sort"); raw != "" {
		opt := browse.SortOption(raw)
		if !opt.Valid() {
			http.Error(w, "unknown sort option", http.StatusBadRequest)
			return
		}
		q.Sort = opt
	}

	res, err := a.browse.Browse(r.Context(), q)
	if err != nil {
		a.writeError(w, err)
		return
	}
	a.writeJSON(w, http.StatusOK, res)
}

// MatchesHandler returns the weekly matches above the confidence threshold.
func (a *API) MatchesHandler(w http.ResponseWriter, _ *http.Request) {
	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"matches":       a.weekly.Matches(),
		"minConfidence": a.weekly.MinConfidence(),
	})
}

// MatchActionHandler records a user response to a weekly match.
func (a *API) MatchActionHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Action browse.Action `json:"action"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := a.weekly.Apply(r.PathValue("id"), body.Action); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]interface{}{"matches": a.weekly.Matches()})
}

// ThresholdHandler updates the weekly match confidence threshold.
func (a *API) ThresholdHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		MinConfidence int `json:"minConfidence"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := a.weekly.SetMinConfidence(body.MinConfidence); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a.writeJSON(w, http.StatusOK, map[string]int{"minConfidence": a.weekly.MinConfidence()})
}
