package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"salescall/internal/model"
	"salescall/internal/repository"
	"salescall/internal/service"
)

// LanguageHandler handles language detection and verification endpoints
type LanguageHandler struct {
	verifySvc *service.VerificationService
}

// NewLanguageHandler creates a new language handler
func NewLanguageHandler(verifySvc *service.VerificationService) *LanguageHandler {
	return &LanguageHandler{verifySvc: verifySvc}
}

// DetectRequest is the request body for detecting a language
type DetectRequest struct {
	Text string `json:"text"`
}

// Detect handles POST /v1/language/detect
func (h *LanguageHandler) Detect(w http.ResponseWriter, r *http.Request) {
	var req DetectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// No customer context: an empty transcript is not an error here, it
	// simply classifies as unknown.
	assessment, err := h.verifySvc.Analyze(r.Context(), "", req.Text)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// VerifyRequest is the request body for verifying a customer's language
type VerifyRequest struct {
	Transcript string `json:"transcript"`
}

// Verify handles POST /v1/customers/{customerId}/language/verify
func (h *LanguageHandler) Verify(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Transcript == "" {
		writeError(w, http.StatusBadRequest, "transcript is required")
		return
	}

	assessment, err := h.verifySvc.Analyze(r.Context(), customerID, req.Transcript)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// ConfirmRequest is the request body for confirming a language preference
type ConfirmRequest struct {
	LanguageCode model.LanguageCode `json:"languageCode"`
}

// Confirm handles POST /v1/customers/{customerId}/language/confirm
func (h *LanguageHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	customerID := mux.Vars(r)["customerId"]

	var req ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.verifySvc.ConfirmPreference(r.Context(), customerID, req.LanguageCode); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "confirmed",
		"customerId":   customerID,
		"languageCode": req.LanguageCode,
	})
}

// writeServiceError maps the service error taxonomy to HTTP status codes.
// Anything unrecognized is a store failure and surfaces as a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNoAgentAvailable):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// Helper functions
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
