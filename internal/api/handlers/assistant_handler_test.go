package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krissstine/petcarewithollama/internal/adapters/providers/speech"
	"github.com/krissstine/petcarewithollama/internal/api/handlers"
	"github.com/krissstine/petcarewithollama/internal/application/services"
)

func testAssistantService() *services.AssistantService {
	return services.NewAssistantService(
		services.NewIntentService(),
		testQueryService(),
		services.NewResponseService(),
		speech.NewMockSpeechProvider(),
		nil,
		nil,
		testAssistantCfg,
		zerolog.Nop(),
	)
}

func TestChat_Success(t *testing.T) {
	handler := handlers.NewAssistantHandler(testAssistantService())

	body := `{"message":"find vets near me","latitude":14.5995,"longitude":120.9842}`
	req := httptest.NewRequest("POST", "/api/assistant/chat", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Response     string `json:"response"`
		Speech       string `json:"speech"`
		Intent       string `json:"intent"`
		TTSAvailable bool   `json:"tts_available"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "find_clinics", response.Intent)
	assert.Contains(t, response.Response, "Manila Bay Vet Clinic")
	assert.NotEmpty(t, response.Speech)
	assert.True(t, response.TTSAvailable)
}

func TestChat_MissingCoordinateUsesDefault(t *testing.T) {
	handler := handlers.NewAssistantHandler(testAssistantService())

	body := `{"message":"hello"}`
	req := httptest.NewRequest("POST", "/api/assistant/chat", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Response string `json:"response"`
		Intent   string `json:"intent"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&response))
	assert.Equal(t, "greeting", response.Intent)
	assert.Contains(t, response.Response, "14.5995, 120.9842")
}

func TestChat_EmptyMessageRejected(t *testing.T) {
	handler := handlers.NewAssistantHandler(testAssistantService())

	for _, body := range []string{`{"message":""}`, `{"message":"   "}`, `{}`} {
		req := httptest.NewRequest("POST", "/api/assistant/chat", strings.NewReader(body))
		w := httptest.NewRecorder()

		handler.Chat(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestChat_InvalidBody(t *testing.T) {
	handler := handlers.NewAssistantHandler(testAssistantService())

	req := httptest.NewRequest("POST", "/api/assistant/chat", strings.NewReader("not json"))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChat_InvalidCoordinate(t *testing.T) {
	handler := handlers.NewAssistantHandler(testAssistantService())

	body := `{"message":"find vets near me","latitude":123.0,"longitude":120.9842}`
	req := httptest.NewRequest("POST", "/api/assistant/chat", strings.NewReader(body))
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
