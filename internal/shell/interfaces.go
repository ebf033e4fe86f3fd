package shell

import (
	"context"

	"github.com/ytget/translator/internal/model"
	"github.com/ytget/translator/internal/speech"
)

// View receives buffer and status updates
type View interface {
	SetInput(text string)
	SetOutput(text string)
	SetStatus(status string)
}

// Notifier shows user-visible notices
type Notifier interface {
	Notify(n model.Notice)
}

// Clipboard is the write side of the system clipboard
type Clipboard interface {
	SetContent(content string)
}

// VoiceCapture records a phrase and returns its transcription
type VoiceCapture interface {
	Capture(ctx context.Context, onPhase func(speech.Phase)) (string, error)
}

// Selections persists the last chosen language pair
type Selections interface {
	SetSourceLanguage(name string)
	SetTargetLanguage(name string)
}
