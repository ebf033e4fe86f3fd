package speech

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// DefaultListenTimeout is how long Capture waits for speech to start
const DefaultListenTimeout = 6 * time.Second

// Phase reports which step of voice input is running
type Phase int

const (
	PhaseListening Phase = iota
	PhaseRecognizing
)

// Recognizer captures a phrase and transcribes it
type Recognizer struct {
	recorder    Recorder
	transcriber Transcriber
	timeout     time.Duration
}

// NewRecognizer combines a recorder and a transcriber
func NewRecognizer(recorder Recorder, transcriber Transcriber, timeout time.Duration) *Recognizer {
	if timeout <= 0 {
		timeout = DefaultListenTimeout
	}
	return &Recognizer{recorder: recorder, transcriber: transcriber, timeout: timeout}
}

// Timeout returns how long the recognizer waits for speech to start
func (r *Recognizer) Timeout() time.Duration {
	return r.timeout
}

// Capture listens on the microphone and returns the recognized text. onPhase,
// when set, is called before each step. Every error wraps ErrRecognitionFailed.
func (r *Recognizer) Capture(ctx context.Context, onPhase func(Phase)) (string, error) {
	notify := func(p Phase) {
		if onPhase != nil {
			onPhase(p)
		}
	}

	notify(PhaseListening)
	clip, err := r.recorder.Record(ctx, r.timeout)
	if err != nil {
		return "", asRecognitionError(err)
	}

	notify(PhaseRecognizing)
	text, err := r.transcriber.Transcribe(ctx, clip)
	if err != nil {
		return "", asRecognitionError(err)
	}
	return text, nil
}

func asRecognitionError(err error) error {
	if errors.Is(err, ErrRecognitionFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrRecognitionFailed, err)
}
