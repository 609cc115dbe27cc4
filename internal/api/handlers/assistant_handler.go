package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/krissstine/petcarewithollama/internal/application/services"
)

// AssistantHandler handles conversational assistant requests
type AssistantHandler struct {
	assistant *services.AssistantService
}

// NewAssistantHandler creates a new assistant handler
func NewAssistantHandler(assistant *services.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
	}
}

// chatRequest carries the utterance and an optional coordinate. Pointer
// fields distinguish an omitted coordinate from an explicit zero.
type chatRequest struct {
	Message   string   `json:"message"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Chat handles POST /api/assistant/chat
func (h *AssistantHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		respondWithError(w, http.StatusBadRequest, "message is required")
		return
	}

	params := services.ChatParams{
		Message: req.Message,
	}
	if req.Latitude != nil && req.Longitude != nil {
		params.Latitude = *req.Latitude
		params.Longitude = *req.Longitude
		params.HasLocation = true
	}

	result, err := h.assistant.Chat(r.Context(), params)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}
