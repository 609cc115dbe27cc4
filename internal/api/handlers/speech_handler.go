package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/krissstine/petcarewithollama/internal/application/services"
)

// SpeechHandler handles text-to-speech requests
type SpeechHandler struct {
	assistant *services.AssistantService
}

// NewSpeechHandler creates a new speech handler
func NewSpeechHandler(assistant *services.AssistantService) *SpeechHandler {
	return &SpeechHandler{
		assistant: assistant,
	}
}

type ttsRequest struct {
	Text string `json:"text"`
}

// Synthesize handles POST /api/tts. The response body is WAV audio.
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req ttsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		respondWithError(w, http.StatusBadRequest, "text is required")
		return
	}

	if !h.assistant.SpeechAvailable() {
		respondWithError(w, http.StatusServiceUnavailable, "speech synthesis is not available")
		return
	}

	audio, err := h.assistant.Synthesize(r.Context(), text)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	w.Header().Set("Content-Type", "audio/wav")
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}
