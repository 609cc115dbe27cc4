package speech

import (
	"context"

	"github.com/krissstine/petcarewithollama/internal/domain/providers"
)

// MockSpeechProvider implements a speech provider for testing. It returns a
// minimal WAV header followed by the input text bytes.
type MockSpeechProvider struct{}

// NewMockSpeechProvider creates a new mock speech provider
func NewMockSpeechProvider() providers.SpeechProvider {
	return &MockSpeechProvider{}
}

// Available always reports true
func (m *MockSpeechProvider) Available() bool {
	return true
}

// Synthesize returns a fake WAV payload containing the text
func (m *MockSpeechProvider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	payload := append([]byte("RIFF....WAVE"), []byte(text)...)
	return payload, nil
}
