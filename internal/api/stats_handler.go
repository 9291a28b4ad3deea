package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/daylex/daylex/internal/api/shared"
	"github.com/daylex/daylex/internal/service/stats"
)

// StatsHandler serves the statistics endpoint.
type StatsHandler struct {
	statsService *stats.Service
	logger       *slog.Logger
	timeFunc     func() time.Time
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *stats.Service, log *slog.Logger) *StatsHandler {
	if statsService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("statsService cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &StatsHandler{
		statsService: statsService,
		logger:       log.With(slog.String("component", "stats_handler")),
		timeFunc:     func() time.Time { return time.Now().UTC() },
	}
}

// GetStats handles GET /api/stats.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	summary, err := h.statsService.Summary(r.Context(), h.timeFunc())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}
