package rest

import (
	"net/http"
	"os"

	"github.com/gorilla/mux"

	"salescall/internal/service"
	"salescall/internal/transport/rest/handler"
)

// Container holds all dependencies for the router
type Container struct {
	VerificationService *service.VerificationService
}

// NewRouter creates the API router with all endpoints
func NewRouter(c *Container) http.Handler {
	r := mux.NewRouter()

	languageHandler := handler.NewLanguageHandler(c.VerificationService)
	agentHandler := handler.NewAgentHandler(c.VerificationService)

	r.Use(corsMiddleware)

	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/language/detect", languageHandler.Detect).Methods("POST", "OPTIONS")
	v1.HandleFunc("/customers/{customerId}/language/verify", languageHandler.Verify).Methods("POST", "OPTIONS")
	v1.HandleFunc("/customers/{customerId}/language/confirm", languageHandler.Confirm).Methods("POST", "OPTIONS")
	v1.HandleFunc("/agents", agentHandler.List).Methods("GET", "OPTIONS")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	return r
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
		if allowedOrigins == "" {
			allowedOrigins = "*"
		}

		allowedMethods := os.Getenv("CORS_ALLOWED_METHODS")
		if allowedMethods == "" {
			allowedMethods = "GET, POST, PUT, DELETE, OPTIONS"
		}

		allowedHeaders := os.Getenv("CORS_ALLOWED_HEADERS")
		if allowedHeaders == "" {
			allowedHeaders = "Content-Type, Authorization"
		}

		w.Header().Set("Access-Control-Allow-Origin", allowedOrigins)
		w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
		w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
