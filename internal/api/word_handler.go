package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/daylex/daylex/internal/api/shared"
	"github.com/daylex/daylex/internal/domain"
	"github.com/daylex/daylex/internal/service/stats"
	"github.com/daylex/daylex/internal/service/vocab"
)

// WordHandler serves the catalog endpoints: import, lookup, search, removal,
// favorites, the suspend/resume/reset lifecycle, and per-word progress.
type WordHandler struct {
	vocabService *vocab.Service
	statsService *stats.Service
	logger       *slog.Logger
	timeFunc     func() time.Time
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(
	vocabService *vocab.Service,
	statsService *stats.Service,
	log *slog.Logger,
) *WordHandler {
	if vocabService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("vocabService cannot be nil")
	}
	if statsService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("statsService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &WordHandler{
		vocabService: vocabService,
		statsService: statsService,
		logger:       log.With(slog.String("component", "word_handler")),
		timeFunc:     func() time.Time { return time.Now().UTC() },
	}
}

// ImportWords handles POST /api/words.
func (h *WordHandler) ImportWords(w http.ResponseWriter, r *http.Request) {
	var req ImportWordsRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	words := make([]*domain.Word, 0, len(req.Words))
	for _, entry := range req.Words {
		word, err := domain.NewWord(entry.Term, entry.Translation)
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, GetSafeErrorMessage(err), err)
			return
		}
		word.Pronunciation = entry.Pronunciation
		word.Example = entry.Example
		if entry.Difficulty != 0 {
			word.Difficulty = entry.Difficulty
		}
		word.Tags = entry.Tags
		words = append(words, word)
	}

	if err := h.vocabService.ImportWords(r.Context(), words); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	resp := ImportWordsResponse{Imported: len(words)}
	for _, word := range words {
		resp.Words = append(resp.Words, wordToResponse(word))
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, resp)
}

// GetWord handles GET /api/words/{id}.
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID format")
		return
	}

	word, err := h.vocabService.GetWord(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word))
}

// DeleteWord handles DELETE /api/words/{id}.
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID format")
		return
	}

	if err := h.vocabService.Remove(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// FavoriteWord handles POST /api/words/{id}/favorite.
func (h *WordHandler) FavoriteWord(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, true)
}

// UnfavoriteWord handles DELETE /api/words/{id}/favorite.
func (h *WordHandler) UnfavoriteWord(w http.ResponseWriter, r *http.Request) {
	h.setFavorite(w, r, false)
}

func (h *WordHandler) setFavorite(w http.ResponseWriter, r *http.Request, favorite bool) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID format")
		return
	}

	word, err := h.vocabService.SetFavorite(r.Context(), id, favorite)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word))
}

// ListFavorites handles GET /api/words/favorites.
func (h *WordHandler) ListFavorites(w http.ResponseWriter, r *http.Request) {
	words, err := h.vocabService.Favorites(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordsToResponse(words))
}

// SearchWords handles GET /api/words/search?q=keyword&limit=n.
func (h *WordHandler) SearchWords(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if strings.TrimSpace(query) == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing q parameter")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid limit parameter")
			return
		}
		limit = n
	}

	words, err := h.vocabService.Search(r.Context(), query, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordsToResponse(words))
}

// SuspendWord handles POST /api/words/{id}/suspend.
func (h *WordHandler) SuspendWord(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.vocabService.Suspend)
}

// ResumeWord handles POST /api/words/{id}/resume.
func (h *WordHandler) ResumeWord(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.vocabService.Resume)
}

// ResetWord handles POST /api/words/{id}/reset.
func (h *WordHandler) ResetWord(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.vocabService.Reset)
}

func (h *WordHandler) lifecycle(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id uuid.UUID, now time.Time) (*domain.LearningState, error),
) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID format")
		return
	}

	state, err := op(r.Context(), id, h.timeFunc())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stateToResponse(state))
}

// WordProgress handles GET /api/words/{id}/progress.
func (h *WordHandler) WordProgress(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID format")
		return
	}

	progress, err := h.statsService.WordProgress(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, progress)
}
