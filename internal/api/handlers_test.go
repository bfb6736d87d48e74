package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmaking-engine/internal/common/config"
	"matchmaking-engine/internal/common/logger"
	"matchmaking-engine/internal/match/bookmarks"
	"matchmaking-engine/internal/match/browse"
	"matchmaking-engine/internal/match/queue"
	"matchmaking-engine/internal/match/ranking"
	"matchmaking-engine/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func newTestAPI(t *testing.T) *API {
	log := logger.NewTestLogger(t)

	// Completion is pushed far out so sessions stay searching for the
	// duration of a test.
	cfg := config.QueueConfig{}
	cfg.CompleteAfter = time.Hour
	cfg.TickInterval = time.Second
	cfg.MessageRotationInterval = 2 * time.Second
	cfg.EstimatedWait.JoinExisting = 180 * time.Second
	cfg.EstimatedWait.BuildNew = 300 * time.Second

	engine := ranking.NewEngine(ranking.NewStaticSource(ranking.DefaultPool()), nil, ranking.Config{}, log)
	session := queue.NewController(cfg, engine, bookmarks.NewMemoryStore(), queue.NewRealClock(), nil, log)
	t.Cleanup(session.Close)

	browseSvc := browse.NewService(browse.DefaultProjects(), nil, log)
	weekly := browse.NewWeeklyList(browse.DefaultWeeklyMatches(), 80, log)

	return New(session, browseSvc, weekly, log)
}

func doRequest(t *testing.T, a *API, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	a.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

const completeProfileJSON = `{
	"mode": "join-existing",
	"role": "Frontend Developer",
	"projectType": "SaaS",
	"availabilityBand": "10-20 hrs/week",
	"timelineBand": "7-day sprint",
	"skills": ["React"]
}`

// ==========================
// Session Endpoint Tests
// ==========================

func TestStartHandler_Accepted(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodPost, "/api/v1/session/start", completeProfileJSON)

	require.Equal(t, http.StatusAccepted, rec.Code)

	var snap models.Snapshot
	decodeBody(t, rec, &snap)
	assert.Equal(t, models.StateSearching, snap.State)
	assert.Equal(t, 180, snap.EstimatedWaitSeconds)
	assert.Equal(t, "~2-5 min", snap.EstimatedWaitLabel)
	assert.NotEmpty(t, snap.SessionID)
}

func TestStartHandler_IncompleteProfile(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodPost, "/api/v1/session/start", `{"mode": "join-existing"}`)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Error struct {
			Code     string                 `json:"code"`
			Metadata map[string]interface{} `json:"metadata"`
		} `json:"error"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "PROFILE_INCOMPLETE", body.Error.Code)
	assert.Equal(t,
		[]interface{}{"role", "projectType", "availabilityBand", "timelineBand", "skills"},
		body.Error.Metadata["missingFields"])
}

func TestStartHandler_InvalidJSON(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodPost, "/api/v1/session/start", `{`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStartHandler_AlreadySearching(t *testing.T) {
	a := newTestAPI(t)

	require.Equal(t, http.StatusAccepted,
		doRequest(t, a, http.MethodPost, "/api/v1/session/start", completeProfileJSON).Code)
	rec := doRequest(t, a, http.MethodPost, "/api/v1/session/start", completeProfileJSON)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSnapshotHandler_IdleByDefault(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodGet, "/api/v1/session", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var snap models.Snapshot
	decodeBody(t, rec, &snap)
	assert.Equal(t, models.StateIdle, snap.State)
}

func TestResetHandlers_TwoStepFlow(t *testing.T) {
	a := newTestAPI(t)

	require.Equal(t, http.StatusAccepted,
		doRequest(t, a, http.MethodPost, "/api/v1/session/start", completeProfileJSON).Code)

	// Confirming without a request is a conflict.
	assert.Equal(t, http.StatusConflict,
		doRequest(t, a, http.MethodPost, "/api/v1/session/reset/confirm", "").Code)

	rec := doRequest(t, a, http.MethodPost, "/api/v1/session/reset/request", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var snap models.Snapshot
	decodeBody(t, rec, &snap)
	assert.True(t, snap.ResetPending)

	rec = doRequest(t, a, http.MethodPost, "/api/v1/session/reset/confirm", "")
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &snap)
	assert.Equal(t, models.StateIdle, snap.State)
	assert.False(t, snap.ResetPending)
}

func TestResetRequestHandler_FromIdle(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodPost, "/api/v1/session/reset/request", "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestToggleHandlers(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodPost, "/api/v1/session/suggestions/q1/save", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var saveResp map[string]bool
	decodeBody(t, rec, &saveResp)
	assert.True(t, saveResp["saved"])

	rec = doRequest(t, a, http.MethodPost, "/api/v1/session/suggestions/q1/expand", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, a, http.MethodGet, "/api/v1/session", "")
	var snap models.Snapshot
	decodeBody(t, rec, &snap)
	assert.Equal(t, []string{"q1"}, snap.SavedIDs)
	assert.Equal(t, []string{"q1"}, snap.ExpandedIDs)
}

// ==========================
// Profile and Skills Endpoint Tests
// ==========================

func TestProfileCheckHandler(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodPost, "/api/v1/profile/check", `{"mode": "join-existing", "role": "Frontend Developer"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Ready    bool     `json:"ready"`
		Missing  []string `json:"missing"`
		Guidance string   `json:"guidance"`
	}
	decodeBody(t, rec, &body)
	assert.False(t, body.Ready)
	assert.Equal(t, []string{"projectType", "availabilityBand", "timelineBand", "skills"}, body.Missing)
	assert.Equal(t, "Missing: Project Type, Availability, Timeline, Skills", body.Guidance)
}

func TestSkillsHandler_Query(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodGet, "/api/v1/skills?q=react", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var grouped map[string][]map[string]string
	decodeBody(t, rec, &grouped)
	require.Len(t, grouped["Tech"], 1)
	assert.Equal(t, "React", grouped["Tech"][0]["label"])
}

// ==========================
// Browse Endpoint Tests
// ==========================

func TestProjectsHandler_FiltersAndSort(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodGet, "/api/v1/projects?roles=Frontend+Developer&minScore=80&sort=match-score", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var res browse.Result
	decodeBody(t, rec, &res)
	require.Len(t, res.Projects, 3)
	assert.Equal(t, "1", res.Projects[0].ID)
	assert.Equal(t, "6", res.Projects[1].ID)
	assert.Equal(t, "8", res.Projects[2].ID)
	assert.Equal(t, 9, res.Total)
}

func TestProjectsHandler_BadParams(t *testing.T) {
	a := newTestAPI(t)

	assert.Equal(t, http.StatusBadRequest,
		doRequest(t, a, http.MethodGet, "/api/v1/projects?minScore=abc", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		doRequest(t, a, http.MethodGet, "/api/v1/projects?minScore=101", "").Code)
	assert.Equal(t, http.StatusBadRequest,
		doRequest(t, a, http.MethodGet, "/api/v1/projects?sort=oldest", "").Code)
}

// ==========================
// Weekly Matches Endpoint Tests
// ==========================

func TestMatchesHandler_DefaultThreshold(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodGet, "/api/v1/matches", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Matches       []models.Match `json:"matches"`
		MinConfidence int            `json:"minConfidence"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, 80, body.MinConfidence)
	require.Len(t, body.Matches, 2)
	assert.Equal(t, "m1", body.Matches[0].ID)
}

func TestMatchActionHandler_PassRemoves(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodPost, "/api/v1/matches/m1/action", `{"action": "pass"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Matches []models.Match `json:"matches"`
	}
	decodeBody(t, rec, &body)
	require.Len(t, body.Matches, 1)
	assert.Equal(t, "m2", body.Matches[0].ID)
}

func TestMatchActionHandler_UnknownMatch(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodPost, "/api/v1/matches/m9/action", `{"action": "pass"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestThresholdHandler(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodPut, "/api/v1/matches/threshold", `{"minConfidence": 70}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var matches struct {
		Matches []models.Match `json:"matches"`
	}
	rec = doRequest(t, a, http.MethodGet, "/api/v1/matches", "")
	decodeBody(t, rec, &matches)
	assert.Len(t, matches.Matches, 3)
}

func TestThresholdHandler_OutOfRange(t *testing.T) {
	a := newTestAPI(t)

	rec := doRequest(t, a, http.MethodPut, "/api/v1/matches/threshold", `{"minConfidence": 150}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
