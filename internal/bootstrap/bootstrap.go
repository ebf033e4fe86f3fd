// Package bootstrap assembles the translator's services from settings and
// probes the optional voice services once at startup.
package bootstrap

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ytget/translator/internal/capability"
	"github.com/ytget/translator/internal/config"
	"github.com/ytget/translator/internal/history"
	"github.com/ytget/translator/internal/logging"
	"github.com/ytget/translator/internal/shell"
	"github.com/ytget/translator/internal/speech"
	"github.com/ytget/translator/internal/speech/mic"
	"github.com/ytget/translator/internal/task"
	"github.com/ytget/translator/internal/translate"
)

// Voice holds the voice services found at startup
type Voice struct {
	Capabilities capability.Set
	Synthesizer  speech.Synthesizer
	Capture      shell.VoiceCapture
}

// NewShell probes the voice services and builds the shell controller
func NewShell(settings *config.Settings, log zerolog.Logger) *shell.Shell {
	return newShell(settings, log, DetectVoice(settings, log))
}

// DetectVoice runs the capability probes. Speech output needs a system speech
// engine; voice input needs a microphone and an OpenAI API key.
func DetectVoice(settings *config.Settings, log zerolog.Logger) Voice {
	probeLog := logging.Component(log, "capability")
	var v Voice

	probes := capability.Probes{
		Synthesis: func(ctx context.Context) error {
			synth, err := speech.DetectSynthesizer(logging.Component(log, "tts"))
			if err != nil {
				return err
			}
			v.Synthesizer = synth
			return nil
		},
		Recognition: func(ctx context.Context) error {
			transcriber, err := speech.NewWhisperTranscriber(settings.GetOpenAIKey(), logging.Component(log, "stt"))
			if err != nil {
				return err
			}
			if err := mic.Probe(); err != nil {
				return err
			}
			recorder := mic.New(logging.Component(log, "mic"))
			v.Capture = speech.NewRecognizer(recorder, transcriber, settings.GetListenTimeout())
			return nil
		},
	}

	cache := capability.NewCache(func() capability.Set {
		return capability.Detect(context.Background(), probes, probeLog)
	})
	v.Capabilities = cache.Get()
	return v
}

func newShell(settings *config.Settings, log zerolog.Logger, voice Voice) *shell.Shell {
	client := translate.NewClient(
		translate.WithEndpoint(settings.GetEndpoint()),
		translate.WithTimeout(settings.GetRequestTimeout()),
		translate.WithContact(settings.GetContactEmail()),
		translate.WithLogger(logging.Component(log, "translate")),
	)

	svc := shell.Services{
		Translator:   client,
		Synthesizer:  voice.Synthesizer,
		Voice:        voice.Capture,
		Capabilities: capability.Fixed(voice.Capabilities),
		History:      history.NewStore(),
		Runner:       task.NewRunner(task.NewMailbox(), logging.Component(log, "task")),
		Selections:   settings,
		Log:          log,
	}
	log.Info().
		Str("endpoint", client.Endpoint()).
		Dur("timeout", client.Timeout()).
		Bool("tts", voice.Capabilities.Synthesis.Available).
		Bool("stt", voice.Capabilities.Recognition.Available).
		Msg("services ready")

	return shell.New(svc)
}
