package rest

import (
	"net/http"

	"github.com/gorilla/mux"

	"aiready/internal/config"
	"aiready/internal/service"
	"aiready/internal/transport/rest/handler"
	"aiready/internal/transport/rest/middleware"
	"aiready/internal/transport/ws"
)

// Container holds all dependencies for the router
type Container struct {
	Config            *config.Config
	AuthService       *service.AuthService
	TemplateService   *service.TemplateService
	AssessmentService *service.AssessmentService
	InsightService    *service.InsightService
	WSHub             *ws.Hub
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(c.AuthService)
	templateHandler := handler.NewTemplateHandler(c.TemplateService)
	assessmentHandler := handler.NewAssessmentHandler(c.AssessmentService, c.TemplateService, c.InsightService)
	insightHandler := handler.NewInsightHandler(c.InsightService)
	wsHandler := ws.NewHandler(c.WSHub, c.AuthService)

	// Initialize middleware
	authMW := middleware.NewAuthMiddleware(c.AuthService)

	// CORS middleware (apply first)
	r.Use(corsMiddleware(c.Config))

	// API v1 routes
	v1 := r.PathPrefix("/v1").Subrouter()

	// Public routes
	v1.HandleFunc("/auth/login", authHandler.Login).Methods("POST", "OPTIONS")
	v1.HandleFunc("/assessments/{assessmentId}/join", authHandler.Join).Methods("POST", "OPTIONS")

	// WebSocket routes (token in query param)
	v1.HandleFunc("/ws/assessments/{assessmentId}/admin", wsHandler.AdminWS).Methods("GET")
	v1.HandleFunc("/ws/assessments/{assessmentId}/participant", wsHandler.ParticipantWS).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// Admin routes (require admin auth)
	adminRoutes := v1.NewRoute().Subrouter()
	adminRoutes.Use(authMW.RequireAdmin)

	adminRoutes.HandleFunc("/templates", templateHandler.Create).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/templates", templateHandler.List).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/templates/{templateId}", templateHandler.Get).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/templates/{templateId}", templateHandler.Update).Methods("PUT", "OPTIONS")
	adminRoutes.HandleFunc("/templates/{templateId}", templateHandler.Delete).Methods("DELETE", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{assessmentId}/results", assessmentHandler.ListResults).Methods("GET", "OPTIONS")
	adminRoutes.HandleFunc("/assessments/{assessmentId}/summary", insightHandler.SummarizeOrganization).Methods("POST", "OPTIONS")
	adminRoutes.HandleFunc("/summary", insightHandler.GetSummary).Methods("GET", "OPTIONS")

	// Participant routes (require participant auth)
	participantRoutes := v1.NewRoute().Subrouter()
	participantRoutes.Use(authMW.RequireParticipant)

	participantRoutes.HandleFunc("/assessments/{assessmentId}/responses", assessmentHandler.SubmitResponse).Methods("POST", "OPTIONS")
	participantRoutes.HandleFunc("/assessments/{assessmentId}/result", assessmentHandler.ComputeResult).Methods("POST", "OPTIONS")
	participantRoutes.HandleFunc("/assessments/{assessmentId}/result", assessmentHandler.GetResult).Methods("GET", "OPTIONS")
	participantRoutes.HandleFunc("/assessments/{assessmentId}/insights", insightHandler.GetOwnInsights).Methods("GET", "OPTIONS")

	return r
}

func corsMiddleware(cfg *config.Config) mux.MiddlewareFunc {
	if cfg == nil {
		cfg = config.Load()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", cfg.CORSAllowedOrigins)
			w.Header().Set("Access-Control-Allow-Methods", cfg.CORSAllowedMethods)
			w.Header().Set("Access-Control-Allow-Headers", cfg.CORSAllowedHeaders)

			if r.Method == "OPTIONS" {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
