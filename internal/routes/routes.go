package routes

import (
	"net/http"

	"github.com/templui/goalplanner/internal/app"
	"github.com/templui/goalplanner/internal/handler"
	"github.com/templui/goalplanner/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	home := handler.NewHomeHandler(app.PlannerService, app.Markdown)
	goal := handler.NewGoalHandler(app.GoalService, app.Location)
	planner := handler.NewPlannerHandler(app.PlannerService)

	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", handler.Health)
	mux.Handle("GET /metrics", app.Metrics.Handler())

	// Pages
	mux.HandleFunc("GET /{$}", home.OverviewPage)

	// Goals
	mux.HandleFunc("GET /api/goals", goal.List)
	mux.HandleFunc("GET /api/goals/export", goal.Export)
	mux.HandleFunc("POST /api/goals", goal.Create)
	mux.HandleFunc("POST /api/goals/{id}/toggle", goal.Toggle)

	// Planner views
	mux.HandleFunc("GET /api/overview", planner.Overview)
	mux.HandleFunc("GET /api/daily", planner.Daily)
	mux.HandleFunc("POST /api/daily", planner.AddDaily)
	mux.HandleFunc("PUT /api/daily/journal", planner.SaveJournal)
	mux.HandleFunc("GET /api/weekly", planner.Weekly)
	mux.HandleFunc("POST /api/weekly", planner.AddWeekly)
	mux.HandleFunc("PUT /api/weekly/review", planner.SaveReview)

	// 404
	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.RequestLogging,
		middleware.Config(app.Cfg),
		middleware.NonceMiddleware, // must be before SecurityHeaders
		middleware.SecurityHeaders,
		middleware.RateLimitMutations(app.RateLimiter),
		middleware.Metrics(app.Metrics), // must be last to see the matched pattern
	)
}
