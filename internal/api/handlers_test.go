package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daylex/daylex/internal/domain/srs"
	"github.com/daylex/daylex/internal/platform/sqlite"
	"github.com/daylex/daylex/internal/service/planner"
	"github.com/daylex/daylex/internal/service/review"
	"github.com/daylex/daylex/internal/service/stats"
	"github.com/daylex/daylex/internal/service/vocab"
)

// newTestRouter wires the catalog and review handlers over an in-memory
// database, mirroring the server's route layout.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})
	require.NoError(t, sqlite.Migrate(db, nil))

	wordStore := sqlite.NewSQLiteWordStore(db, nil)
	statsStore := sqlite.NewSQLiteStatsStore(db, nil)
	srsService := srs.NewDefaultService()

	vocabService := vocab.NewService(db, wordStore, srsService, nil)
	reviewService := review.NewService(db, wordStore, srsService, nil)
	statsService := stats.NewService(wordStore, statsStore, stats.Config{RetentionDays: 30}, nil)
	plannerService := planner.NewService(wordStore, nil)

	wordHandler := NewWordHandler(vocabService, statsService, nil)
	reviewHandler := NewReviewHandler(reviewService, nil)
	planHandler := NewPlanHandler(plannerService, planner.PlanConfig{NewWordQuota: 10, ReviewQuota: 50}, nil)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/plan", planHandler.GetPlan)
		r.Post("/words", wordHandler.ImportWords)
		r.Get("/words/search", wordHandler.SearchWords)
		r.Get("/words/favorites", wordHandler.ListFavorites)
		r.Get("/words/{id}", wordHandler.GetWord)
		r.Post("/words/{id}/favorite", wordHandler.FavoriteWord)
		r.Delete("/words/{id}/favorite", wordHandler.UnfavoriteWord)
		r.Delete("/words/{id}", wordHandler.DeleteWord)
		r.Get("/words/{id}/progress", wordHandler.WordProgress)
		r.Post("/words/{id}/suspend", wordHandler.SuspendWord)
		r.Post("/words/{id}/resume", wordHandler.ResumeWord)
		r.Post("/words/{id}/reset", wordHandler.ResetWord)
		r.Post("/words/{id}/review", reviewHandler.RecordReview)
		r.Post("/words/{id}/postpone", reviewHandler.PostponeReview)
	})
	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// importOne imports a single word and returns its ID.
func importOne(t *testing.T, router http.Handler, term string) string {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/api/words", ImportWordsRequest{
		Words: []ImportWordEntry{{Term: term, Translation: "перевод " + term}},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp ImportWordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Words, 1)
	return resp.Words[0].ID.String()
}

func TestImportAndGetWord(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/words", ImportWordsRequest{
		Words: []ImportWordEntry{
			{Term: "apple", Translation: "яблоко", Tags: []string{"fruit"}, Difficulty: 2},
			{Term: "pear", Translation: "груша"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var imported ImportWordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &imported))
	assert.Equal(t, 2, imported.Imported)

	rec = doJSON(t, router, http.MethodGet, "/api/words/"+imported.Words[0].ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var word WordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &word))
	assert.Equal(t, "apple", word.Term)
	assert.Equal(t, 2, word.Difficulty)
	assert.Equal(t, []string{"fruit"}, word.Tags)
}

func TestImportValidation(t *testing.T) {
	router := newTestRouter(t)

	// Empty batch fails request validation.
	rec := doJSON(t, router, http.MethodPost, "/api/words", ImportWordsRequest{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// A duplicate term fails the whole batch.
	importOne(t, router, "taken")
	rec = doJSON(t, router, http.MethodPost, "/api/words", ImportWordsRequest{
		Words: []ImportWordEntry{{Term: "taken", Translation: "занято"}},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Word already exists")
}

func TestGetWordNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodGet, "/api/words/7b6cfb47-7c16-4b5a-90a5-6f4f4e1b2c3d", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Word not found")

	rec = doJSON(t, router, http.MethodGet, "/api/words/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRecordReviewEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id := importOne(t, router, "review-me")

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/review", id),
		ReviewRequest{Outcome: "good"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var state LearningStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "learning", state.Stage)
	assert.InDelta(t, (24 * 60 * 60), state.IntervalSeconds, 0.1)
	assert.Equal(t, int64(2), state.Version)
	require.NotNil(t, state.DueAt)

	// An outcome outside the grade set never reaches the scheduler.
	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/review", id),
		ReviewRequest{Outcome: "perfect"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPostponeEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id := importOne(t, router, "later")

	doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/review", id),
		ReviewRequest{Outcome: "good"})

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/postpone", id),
		PostponeRequest{Days: 3})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var state LearningStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "learning", state.Stage, "postponing is not a review")
	assert.Equal(t, int64(3), state.Version)

	// Days below 1 fail request validation.
	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/postpone", id),
		PostponeRequest{Days: 0})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLifecycleEndpoints(t *testing.T) {
	router := newTestRouter(t)
	id := importOne(t, router, "cycle")

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/suspend", id), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var state LearningStateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "suspended", state.Stage)

	// Reviewing a suspended word is rejected as an invalid transition.
	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/review", id),
		ReviewRequest{Outcome: "good"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/resume", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "new", state.Stage)

	// Resuming twice is also rejected.
	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/resume", id), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/reset", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, "new", state.Stage)
	assert.Zero(t, state.IntervalSeconds)
}

func TestFavoriteEndpoints(t *testing.T) {
	router := newTestRouter(t)
	id := importOne(t, router, "keeper")
	importOne(t, router, "plain")

	rec := doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/favorite", id), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var word WordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &word))
	assert.True(t, word.Favorite)

	rec = doJSON(t, router, http.MethodGet, "/api/words/favorites", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var favorites []WordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &favorites))
	require.Len(t, favorites, 1)
	assert.Equal(t, "keeper", favorites[0].Term)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/words/%s/favorite", id), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &word))
	assert.False(t, word.Favorite)

	rec = doJSON(t, router, http.MethodGet, "/api/words/favorites", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &favorites))
	assert.Empty(t, favorites)

	rec = doJSON(t, router, http.MethodPost, "/api/words/7b6cfb47-7c16-4b5a-90a5-6f4f4e1b2c3d/favorite", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchEndpoint(t *testing.T) {
	router := newTestRouter(t)
	importOne(t, router, "bridge")
	importOne(t, router, "bright")
	importOne(t, router, "shadow")

	rec := doJSON(t, router, http.MethodGet, "/api/words/search?q=bri", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var found []WordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	require.Len(t, found, 2)
	assert.Equal(t, "bridge", found[0].Term)
	assert.Equal(t, "bright", found[1].Term)

	rec = doJSON(t, router, http.MethodGet, "/api/words/search?q=bri&limit=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &found))
	assert.Len(t, found, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/words/search", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/words/search?q=bri&limit=zero", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteWordEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id := importOne(t, router, "doomed")

	rec := doJSON(t, router, http.MethodDelete, "/api/words/"+id, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/words/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlanEndpointDifficultyBand(t *testing.T) {
	router := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/words", ImportWordsRequest{
		Words: []ImportWordEntry{
			{Term: "easy", Translation: "лёгкий", Difficulty: 1},
			{Term: "medium", Translation: "средний", Difficulty: 3},
			{Term: "hard", Translation: "трудный", Difficulty: 5},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/plan?difficulty_min=2&difficulty_max=4", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var plan PlanResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	require.Len(t, plan.Entries, 1, "only words inside the band are planned")

	rec = doJSON(t, router, http.MethodGet, "/api/plan", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &plan))
	assert.Len(t, plan.Entries, 3)

	rec = doJSON(t, router, http.MethodGet, "/api/plan?difficulty_min=0", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/plan?favorites=yes-please", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWordProgressEndpoint(t *testing.T) {
	router := newTestRouter(t)
	id := importOne(t, router, "tracked")

	doJSON(t, router, http.MethodPost, fmt.Sprintf("/api/words/%s/review", id),
		ReviewRequest{Outcome: "good"})

	rec := doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/words/%s/progress", id), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var progress stats.WordProgress
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &progress))
	assert.Equal(t, "tracked", progress.Word.Term)
	require.Len(t, progress.History, 1)
}
