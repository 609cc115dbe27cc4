package speech

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/krissstine/petcarewithollama/internal/domain/providers"
	apperrors "github.com/krissstine/petcarewithollama/pkg/errors"
)

// EspeakProvider synthesizes speech by shelling out to an espeak-compatible
// engine. The engine is a single shared process resource, so calls are
// serialized with a mutex.
type EspeakProvider struct {
	command   string
	mu        sync.Mutex
	available bool
}

// NewEspeakProvider creates a speech provider backed by the given command.
// Availability is probed once at construction; an absent binary degrades
// the assistant to text-only output rather than failing startup.
func NewEspeakProvider(command string) providers.SpeechProvider {
	_, err := exec.LookPath(command)
	return &EspeakProvider{
		command:   command,
		available: err == nil,
	}
}

// Available reports whether the engine binary was found
func (p *EspeakProvider) Available() bool {
	return p.available
}

// Synthesize renders text to WAV audio via the engine
func (p *EspeakProvider) Synthesize(ctx context.Context, text string) ([]byte, error) {
	if !p.available {
		return nil, apperrors.NewExternalError("speech engine not available", nil)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	outPath := filepath.Join(os.TempDir(), "speech-"+uuid.NewString()+".wav")
	defer os.Remove(outPath)

	cmd := exec.CommandContext(ctx, p.command, "-s", "150", "-w", outPath, text)
	if err := cmd.Run(); err != nil {
		return nil, apperrors.NewExternalError("speech synthesis failed", err)
	}

	audio, err := os.ReadFile(outPath)
	if err != nil {
		return nil, apperrors.NewExternalError("failed to read synthesized audio", err)
	}

	return audio, nil
}
