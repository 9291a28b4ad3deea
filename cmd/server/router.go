package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/daylex/daylex/internal/api"
	apiMiddleware "github.com/daylex/daylex/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	wordHandler := api.NewWordHandler(app.vocabService, app.statsService, app.logger)
	reviewHandler := api.NewReviewHandler(app.reviewService, app.logger)
	planHandler := api.NewPlanHandler(app.plannerService, app.planConfig(), app.logger)
	statsHandler := api.NewStatsHandler(app.statsService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Session and statistics
		r.Get("/plan", planHandler.GetPlan)
		r.Get("/stats", statsHandler.GetStats)

		// Catalog
		r.Post("/words", wordHandler.ImportWords)
		r.Get("/words/search", wordHandler.SearchWords)
		r.Get("/words/favorites", wordHandler.ListFavorites)
		r.Get("/words/{id}", wordHandler.GetWord)
		r.Delete("/words/{id}", wordHandler.DeleteWord)
		r.Get("/words/{id}/progress", wordHandler.WordProgress)

		// Favorites
		r.Post("/words/{id}/favorite", wordHandler.FavoriteWord)
		r.Delete("/words/{id}/favorite", wordHandler.UnfavoriteWord)

		// Lifecycle
		r.Post("/words/{id}/suspend", wordHandler.SuspendWord)
		r.Post("/words/{id}/resume", wordHandler.ResumeWord)
		r.Post("/words/{id}/reset", wordHandler.ResetWord)

		// Reviewing
		r.Post("/words/{id}/review", reviewHandler.RecordReview)
		r.Post("/words/{id}/postpone", reviewHandler.PostponeReview)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
