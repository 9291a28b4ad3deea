package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/daylex/daylex/internal/api/shared"
	"github.com/daylex/daylex/internal/domain"
	"github.com/daylex/daylex/internal/service/review"
)

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	reviewService *review.Service
	logger        *slog.Logger
	timeFunc      func() time.Time
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *review.Service, log *slog.Logger) *ReviewHandler {
	if reviewService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("reviewService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ReviewHandler{
		reviewService: reviewService,
		logger:        log.With(slog.String("component", "review_handler")),
		timeFunc:      func() time.Time { return time.Now().UTC() },
	}
}

// RecordReview handles POST /api/words/{id}/review.
func (h *ReviewHandler) RecordReview(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID format")
		return
	}

	var req ReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	state, err := h.reviewService.RecordOutcome(
		r.Context(),
		id,
		domain.ReviewOutcome(req.Outcome),
		h.timeFunc(),
	)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stateToResponse(state))
}

// PostponeReview handles POST /api/words/{id}/postpone.
func (h *ReviewHandler) PostponeReview(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID format")
		return
	}

	var req PostponeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	state, err := h.reviewService.Postpone(r.Context(), id, req.Days, h.timeFunc())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stateToResponse(state))
}
