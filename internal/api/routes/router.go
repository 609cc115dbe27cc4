package routes

import (
	"net/http"

	"github.com/krissstine/petcarewithollama/internal/api/handlers"
	"github.com/krissstine/petcarewithollama/internal/api/middleware"
	"github.com/krissstine/petcarewithollama/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	locationHandler  *handlers.LocationHandler
	clinicHandler    *handlers.ClinicHandler
	assistantHandler *handlers.AssistantHandler
	speechHandler    *handlers.SpeechHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	locationHandler *handlers.LocationHandler,
	clinicHandler *handlers.ClinicHandler,
	assistantHandler *handlers.AssistantHandler,
	speechHandler *handlers.SpeechHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux:              http.NewServeMux(),
		locationHandler:  locationHandler,
		clinicHandler:    clinicHandler,
		assistantHandler: assistantHandler,
		speechHandler:    speechHandler,
		metrics:          metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Map view endpoint
	r.mux.HandleFunc("GET /api/locations", r.locationHandler.GetLocations)

	// Clinic endpoints
	r.mux.HandleFunc("GET /api/clinics/search", r.clinicHandler.SearchClinics)
	r.mux.HandleFunc("GET /api/clinics/emergency", r.clinicHandler.GetEmergencyClinics)
	r.mux.HandleFunc("GET /api/clinics/city/{city}", r.clinicHandler.GetClinicsByCity)
	r.mux.HandleFunc("GET /api/clinics/detail/{name}", r.clinicHandler.GetClinicDetail)

	// Statistics endpoint
	r.mux.HandleFunc("GET /api/statistics", r.clinicHandler.GetStatistics)

	// Assistant endpoints
	r.mux.HandleFunc("POST /api/assistant/chat", r.assistantHandler.Chat)
	r.mux.HandleFunc("POST /api/tts", r.speechHandler.Synthesize)

	// Apply middleware in reverse order (last middleware wraps first)
	// CORS must be outermost so preflight requests also get their headers.
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
