package speech

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrSpeechFailed is wrapped by every synthesis error
	ErrSpeechFailed = errors.New("speech failed")

	// ErrRecognitionFailed is wrapped by every capture or transcription error
	ErrRecognitionFailed = errors.New("recognition failed")

	// ErrListenTimeout is returned when no speech started before the timeout
	ErrListenTimeout = errors.New("listening timed out while waiting for phrase to start")

	// ErrNoMatch is returned when the transcription is empty
	ErrNoMatch = errors.New("speech was unintelligible")

	// ErrNoEngine is returned when no speech engine is installed
	ErrNoEngine = errors.New("no speech engine found")
)

// Synthesizer speaks text and blocks until playback completes.
type Synthesizer interface {
	Speak(ctx context.Context, text string) error
}

// Recorder captures one phrase from an audio input.
type Recorder interface {
	Record(ctx context.Context, timeout time.Duration) (*Clip, error)
}

// Transcriber converts a captured clip to text.
type Transcriber interface {
	Transcribe(ctx context.Context, clip *Clip) (string, error)
}
