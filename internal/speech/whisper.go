package speech

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// ErrMissingAPIKey is returned when no OpenAI key is configured
var ErrMissingAPIKey = errors.New("OpenAI API key is not configured")

// WhisperTranscriber transcribes clips with the OpenAI Whisper API
type WhisperTranscriber struct {
	client   *openai.Client
	model    string
	language string
	tempDir  string
	log      zerolog.Logger
}

// WhisperOption configures a WhisperTranscriber
type WhisperOption func(*whisperConfig)

type whisperConfig struct {
	baseURL  string
	model    string
	language string
	tempDir  string
}

// WithBaseURL points the client at another OpenAI-compatible server
func WithBaseURL(url string) WhisperOption {
	return func(c *whisperConfig) { c.baseURL = url }
}

// WithModel overrides the transcription model
func WithModel(model string) WhisperOption {
	return func(c *whisperConfig) { c.model = model }
}

// WithLanguage hints the spoken language (ISO-639-1); empty means detect
func WithLanguage(lang string) WhisperOption {
	return func(c *whisperConfig) { c.language = lang }
}

// WithTempDir sets where temporary WAV files are written
func WithTempDir(dir string) WhisperOption {
	return func(c *whisperConfig) { c.tempDir = dir }
}

// NewWhisperTranscriber creates a transcriber for apiKey
func NewWhisperTranscriber(apiKey string, log zerolog.Logger, opts ...WhisperOption) (*WhisperTranscriber, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := whisperConfig{model: openai.Whisper1}
	for _, opt := range opts {
		opt(&cfg)
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if cfg.baseURL != "" {
		clientCfg.BaseURL = cfg.baseURL
	}

	return &WhisperTranscriber{
		client:   openai.NewClientWithConfig(clientCfg),
		model:    cfg.model,
		language: cfg.language,
		tempDir:  cfg.tempDir,
		log:      log,
	}, nil
}

// Transcribe uploads the clip and returns the recognized text
func (w *WhisperTranscriber) Transcribe(ctx context.Context, clip *Clip) (string, error) {
	if clip.Empty() {
		return "", fmt.Errorf("%w: %w", ErrRecognitionFailed, ErrNoMatch)
	}

	path, err := clip.WriteTempWAV(w.tempDir)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}
	defer func() {
		if err := os.Remove(path); err != nil {
			w.log.Warn().Err(err).Str("path", path).Msg("failed to remove temp recording")
		}
	}()

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    w.model,
		FilePath: path,
		Language: w.language,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrRecognitionFailed, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: %w", ErrRecognitionFailed, ErrNoMatch)
	}
	w.log.Debug().Int("chars", len(text)).Dur("audio", clip.Duration()).Msg("transcription received")
	return text, nil
}
