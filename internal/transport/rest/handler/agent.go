package handler

import (
	"net/http"

	"salescall/internal/model"
	"salescall/internal/service"
)

// AgentHandler handles agent registry endpoints
type AgentHandler struct {
	verifySvc *service.VerificationService
}

// NewAgentHandler creates a new agent handler
func NewAgentHandler(verifySvc *service.VerificationService) *AgentHandler {
	return &AgentHandler{verifySvc: verifySvc}
}

// List handles GET /v1/agents
func (h *AgentHandler) List(w http.ResponseWriter, r *http.Request) {
	lang := model.LanguageCode(r.URL.Query().Get("language"))

	agents, err := h.verifySvc.ListAgents(r.Context(), lang)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if agents == nil {
		agents = []model.AgentProfile{}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"agents": agents})
}
