package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/krissstine/petcarewithollama/internal/api/handlers"
	"github.com/krissstine/petcarewithollama/internal/application/services"
)

func TestSynthesize_ReturnsWav(t *testing.T) {
	handler := handlers.NewSpeechHandler(testAssistantService())

	req := httptest.NewRequest("POST", "/api/tts", strings.NewReader(`{"text":"hello"}`))
	w := httptest.NewRecorder()

	handler.Synthesize(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/wav", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "WAVE")
}

func TestSynthesize_EmptyTextRejected(t *testing.T) {
	handler := handlers.NewSpeechHandler(testAssistantService())

	req := httptest.NewRequest("POST", "/api/tts", strings.NewReader(`{"text":"  "}`))
	w := httptest.NewRecorder()

	handler.Synthesize(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSynthesize_UnavailableProvider(t *testing.T) {
	assistant := services.NewAssistantService(
		services.NewIntentService(),
		testQueryService(),
		services.NewResponseService(),
		nil,
		nil,
		nil,
		testAssistantCfg,
		zerolog.Nop(),
	)
	handler := handlers.NewSpeechHandler(assistant)

	req := httptest.NewRequest("POST", "/api/tts", strings.NewReader(`{"text":"hello"}`))
	w := httptest.NewRecorder()

	handler.Synthesize(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
