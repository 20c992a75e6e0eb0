package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"tripwise-backend/internal/config"
	"tripwise-backend/internal/handlers"
	"tripwise-backend/internal/middleware"
)

// SetupRoutes configures all application routes
func SetupRoutes(cfg *config.Config, authHandler *handlers.AuthHandler, tripsHandler *handlers.TripsHandler, healthHandler *handlers.HealthHandler) {
	// Health check routes
	http.HandleFunc("/healthz", healthHandler.HealthCheck)
	http.HandleFunc("/livez", healthHandler.LivenessCheck)
	http.HandleFunc("/readyz", healthHandler.ReadinessCheck)

	// Authentication routes
	http.HandleFunc("/api/auth/register", authHandler.Register)
	http.HandleFunc("/api/auth/login", authHandler.Login)
	http.HandleFunc("/api/auth/profile", middleware.AuthMiddleware(authHandler.GetProfile, &cfg.JWT))

	// Trip routes, including /{id}/budget and /{id}/expense sub-resources
	http.HandleFunc("/api/trips", middleware.AuthMiddleware(tripsHandler.Trips, &cfg.JWT))
	http.HandleFunc("/api/trips/", middleware.AuthMiddleware(tripsHandler.TripByID, &cfg.JWT))

	// Swagger UI
	http.Handle("/swagger/", httpSwagger.WrapHandler)

	// Root route
	http.HandleFunc("/", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Tripwise backend is running."))
}
