package providers

import (
	"context"
)

// SpeechProvider defines the interface for the external speech-synthesis
// collaborator. Implementations may fail; callers degrade to text-only
// output when they do.
type SpeechProvider interface {
	// Synthesize renders text as a WAV audio stream
	Synthesize(ctx context.Context, text string) ([]byte, error)

	// Available reports whether the engine is usable
	Available() bool
}
