// Package mic captures a single spoken phrase from the default input device
// with PortAudio. It needs the PortAudio C library at build time.
package mic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gordonklaus/portaudio"
	"github.com/rs/zerolog"

	"github.com/ytget/translator/internal/speech"
)

// Recorder captures a phrase from the default input device with PortAudio
type Recorder struct {
	sampleRate      int
	framesPerBuffer int
	ambient         time.Duration
	pause           time.Duration
	phraseLimit     time.Duration
	log             zerolog.Logger
}

// New creates a recorder with the default tuning
func New(log zerolog.Logger) *Recorder {
	return &Recorder{
		sampleRate:      speech.DefaultSampleRate,
		framesPerBuffer: DefaultFramesPerBuffer,
		ambient:         DefaultAmbientDuration,
		pause:           DefaultPauseThreshold,
		phraseLimit:     DefaultPhraseLimit,
		log:             log,
	}
}

// Probe checks that PortAudio initializes and a default input exists
func Probe() error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("audio subsystem unavailable: %w", err)
	}
	defer portaudio.Terminate()

	dev, err := portaudio.DefaultInputDevice()
	if err != nil {
		return fmt.Errorf("no default input device: %w", err)
	}
	if dev == nil || dev.MaxInputChannels < 1 {
		return fmt.Errorf("default input device has no input channels")
	}
	return nil
}

// Record calibrates on ambient noise, waits up to timeout for speech to start
// and returns the phrase once a pause is detected.
func (m *Recorder) Record(ctx context.Context, timeout time.Duration) (*speech.Clip, error) {
	if timeout <= 0 {
		timeout = speech.DefaultListenTimeout
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("%w: audio subsystem unavailable: %v", speech.ErrRecognitionFailed, err)
	}
	defer portaudio.Terminate()

	frame := make([]int16, m.framesPerBuffer)
	stream, err := portaudio.OpenDefaultStream(speech.WAVChannels, 0, float64(m.sampleRate), len(frame), frame)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open microphone: %v", speech.ErrRecognitionFailed, err)
	}
	defer stream.Close()

	if err := stream.Start(); err != nil {
		return nil, fmt.Errorf("%w: failed to start microphone: %v", speech.ErrRecognitionFailed, err)
	}
	defer stream.Stop()

	detector := newPhraseDetector(m.sampleRate, m.ambient, timeout, m.pause, m.phraseLimit)
	m.log.Debug().Dur("timeout", timeout).Msg("listening")

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", speech.ErrRecognitionFailed, err)
		}
		if err := stream.Read(); err != nil && !errors.Is(err, portaudio.InputOverflowed) {
			return nil, fmt.Errorf("%w: failed to read microphone: %v", speech.ErrRecognitionFailed, err)
		}

		done, err := detector.Feed(frame)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", speech.ErrRecognitionFailed, err)
		}
		if done {
			clip := detector.Clip()
			m.log.Debug().
				Dur("duration", clip.Duration()).
				Float64("threshold", detector.Threshold()).
				Msg("phrase captured")
			return clip, nil
		}
	}
}
