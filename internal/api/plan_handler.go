package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/daylex/daylex/internal/api/shared"
	"github.com/daylex/daylex/internal/service/planner"
)

// PlanHandler serves the session plan endpoint.
type PlanHandler struct {
	plannerService *planner.Service
	defaults       planner.PlanConfig
	logger         *slog.Logger
	timeFunc       func() time.Time
}

// NewPlanHandler creates a new PlanHandler. defaults come from the study
// configuration and can be overridden per request via query parameters.
func NewPlanHandler(
	plannerService *planner.Service,
	defaults planner.PlanConfig,
	log *slog.Logger,
) *PlanHandler {
	if plannerService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("plannerService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &PlanHandler{
		plannerService: plannerService,
		defaults:       defaults,
		logger:         log.With(slog.String("component", "plan_handler")),
		timeFunc:       func() time.Time { return time.Now().UTC() },
	}
}

// PlanResponse is the session plan payload.
type PlanResponse struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Entries     []planner.PlanEntry `json:"entries"`
}

// GetPlan handles GET /api/plan. Query parameters new_quota, review_quota,
// difficulty_min, difficulty_max, favorites and interleave override the
// configured defaults.
func (h *PlanHandler) GetPlan(w http.ResponseWriter, r *http.Request) {
	cfg := h.defaults

	if raw := r.URL.Query().Get("new_quota"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid new_quota parameter")
			return
		}
		cfg.NewWordQuota = n
	}
	if raw := r.URL.Query().Get("review_quota"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid review_quota parameter")
			return
		}
		cfg.ReviewQuota = n
	}
	if raw := r.URL.Query().Get("difficulty_min"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 5 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid difficulty_min parameter")
			return
		}
		cfg.DifficultyMin = n
	}
	if raw := r.URL.Query().Get("difficulty_max"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 5 {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid difficulty_max parameter")
			return
		}
		cfg.DifficultyMax = n
	}
	if raw := r.URL.Query().Get("favorites"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid favorites parameter")
			return
		}
		cfg.FavoritesOnly = b
	}
	if raw := r.URL.Query().Get("interleave"); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid interleave parameter")
			return
		}
		cfg.Interleave = b
	}

	now := h.timeFunc()
	entries, err := h.plannerService.Plan(r.Context(), now, cfg)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, PlanResponse{
		GeneratedAt: now,
		Entries:     entries,
	})
}
