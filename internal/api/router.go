// filepath: internal/api/router.go
package api

import (
	"net/http"
	"riseup/internal/api/handlers"
	"riseup/internal/config"
	"riseup/internal/logging"
	"riseup/internal/services/auth"
	"riseup/internal/web"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter configures the main router and its sub-routers.
// It sets up API endpoints, authentication, CORS and the optional frontend.
func SetupRouter(h *handlers.Handlers, am *auth.Middleware, cfg *config.Config) http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger)

	// Public Endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/info", h.GetInfo).Methods("GET")
	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	r.HandleFunc("/api/register", h.Register).Methods("POST")
	r.HandleFunc("/api/login", h.Login).Methods("POST")
	r.HandleFunc("/api/token/refresh", h.RefreshToken).Methods("POST")

	// Authenticated API Routes
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(am.AuthMiddleware) // This will check for JWT *or* Basic

	apiRouter.HandleFunc("/logout", h.Logout).Methods("POST")
	addUserRoutes(apiRouter, h)
	addTrackerRoutes(apiRouter, h)
	addLogRoutes(apiRouter, h)
	addInboxRoutes(apiRouter, h)

	// Frontend web server (public), registered last as the catch-all.
	if cfg != nil && cfg.Server.StaticDir != "" {
		if err := web.AddDirRoutes(r, cfg.Server.StaticDir); err != nil {
			logging.Log.Warnf("Frontend disabled: %v", err)
		} else {
			logging.Log.Infof("Serving frontend from %s", cfg.Server.StaticDir)
		}
	}

	return withCORS(r, cfg)
}

// addUserRoutes configures routes for the user's own profile and dashboard.
func addUserRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/me", h.GetUserMe).Methods("GET")
	r.HandleFunc("/me", h.UpdateUserMe).Methods("PATCH")
	r.HandleFunc("/dashboard", h.GetDashboard).Methods("GET")
	r.HandleFunc("/streak", h.GetStreak).Methods("GET")
}

// addTrackerRoutes configures the per-date trackers.
func addTrackerRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/habits", h.ListHabits).Methods("GET")
	r.HandleFunc("/habits/{habitId:[0-9]+}", h.UpdateHabitEntry).Methods("POST")

	r.HandleFunc("/prayers", h.GetPrayers).Methods("GET")
	r.HandleFunc("/prayers", h.UpdatePrayer).Methods("POST")
	r.HandleFunc("/water", h.GetWater).Methods("GET")
	r.HandleFunc("/water", h.UpdateWater).Methods("POST")
	r.HandleFunc("/meals", h.GetMeals).Methods("GET")
	r.HandleFunc("/meals", h.UpdateMeal).Methods("POST")
}

// addLogRoutes configures the append-only logs.
func addLogRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/weight", h.GetWeightHistory).Methods("GET")
	r.HandleFunc("/weight", h.AddWeight).Methods("POST")
	r.HandleFunc("/study", h.GetStudyTotal).Methods("GET")
	r.HandleFunc("/study", h.AddStudySession).Methods("POST")
	r.HandleFunc("/workout", h.GetWorkoutTotal).Methods("GET")
	r.HandleFunc("/workout", h.AddWorkoutSession).Methods("POST")
}

// addInboxRoutes configures notifications and maintenance.
func addInboxRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/notifications", h.ListNotifications).Methods("GET")
	r.HandleFunc("/notifications/{id:[0-9]+}", h.MarkNotificationRead).Methods("PATCH")
	if h.Housekeeping != nil {
		r.HandleFunc("/housekeeping", h.TriggerHousekeeping).Methods("POST")
	}
}

// withCORS wraps the router with the configured CORS policy.
// An empty origin list allows any origin, as the bundled front end expects.
func withCORS(next http.Handler, cfg *config.Config) http.Handler {
	origins := []string{"*"}
	if cfg != nil && len(cfg.Server.CORSOrigins) > 0 {
		origins = cfg.Server.CORSOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{requestIDHeader},
	}).Handler(next)
}
