package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/lang-portal/internal/api"
	apiMiddleware "github.com/phrazzld/lang-portal/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	wordHandler := api.NewWordHandler(app.catalogService)
	groupHandler := api.NewGroupHandler(app.catalogService, app.sessionService)
	activityHandler := api.NewActivityHandler(app.catalogService, app.sessionService)
	sessionHandler := api.NewSessionHandler(app.sessionService)
	dashboardHandler := api.NewDashboardHandler(app.dashboardService)
	resetHandler := api.NewResetHandler(app.resetService)

	r.Route("/api", func(r chi.Router) {
		// Word catalog
		r.Get("/words", wordHandler.ListWords)
		r.Get("/words/{word_id}", wordHandler.GetWord)

		// Groups
		r.Get("/groups", groupHandler.ListGroups)
		r.Get("/groups/{group_id}", groupHandler.GetGroup)
		r.Get("/groups/{group_id}/words", groupHandler.ListGroupWords)
		r.Get("/groups/{group_id}/study_sessions", groupHandler.ListGroupSessions)

		// Study activities; POST launches a new session
		r.Get("/study_activities", activityHandler.ListActivities)
		r.Post("/study_activities", activityHandler.CreateSession)
		r.Get("/study_activities/{activity_id}", activityHandler.GetActivity)
		r.Get("/study_activities/{activity_id}/study_sessions", activityHandler.ListActivitySessions)

		// Study sessions
		r.Get("/study_sessions", sessionHandler.ListSessions)
		r.Get("/study_session/{session_id}", sessionHandler.GetSession)
		r.Get("/study_session/{session_id}/words", sessionHandler.ListSessionWords)
		r.Post("/study_sessions/{session_id}/words/{word_id}/review", sessionHandler.RecordReview)
		r.Post("/study_sessions/{session_id}/end", sessionHandler.EndSession)

		// Dashboard
		r.Get("/dashboard/last_study_session", dashboardHandler.LastStudySession)
		r.Get("/dashboard/study_progress", dashboardHandler.StudyProgress)
		r.Get("/dashboard/quick_stats", dashboardHandler.QuickStats)

		// Resets
		r.Post("/reset/history", resetHandler.ResetHistory)
		r.Post("/full_reset", resetHandler.FullReset)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
