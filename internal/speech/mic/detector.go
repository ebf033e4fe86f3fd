package mic

import (
	"math"
	"time"

	"github.com/ytget/translator/internal/speech"
)

// Phrase detection defaults, matching the usual speech_recognition tuning
const (
	DefaultFramesPerBuffer = 1024
	DefaultAmbientDuration = 500 * time.Millisecond
	DefaultPauseThreshold  = 800 * time.Millisecond
	DefaultPhraseLimit     = 30 * time.Second

	// MinEnergyThreshold keeps a silent room from triggering on hiss
	MinEnergyThreshold = 100.0
	// DynamicEnergyRatio scales the ambient level into a speech threshold
	DynamicEnergyRatio = 1.5
)

type detectorState int

const (
	stateCalibrating detectorState = iota
	stateWaiting
	stateRecording
	stateDone
)

// phraseDetector splits a stream of frames into one phrase using an energy
// threshold calibrated on the first frames.
type phraseDetector struct {
	sampleRate     int
	ambientSamples int
	timeoutSamples int
	pauseSamples   int
	limitSamples   int

	state     detectorState
	threshold float64

	ambientSum   float64
	ambientCount int
	seen         int // samples fed since calibration ended
	silent       int // trailing silent samples while recording
	phrase       []int16
}

func newPhraseDetector(sampleRate int, ambient, timeout, pause, limit time.Duration) *phraseDetector {
	toSamples := func(d time.Duration) int {
		return int(d.Seconds() * float64(sampleRate))
	}
	d := &phraseDetector{
		sampleRate:     sampleRate,
		ambientSamples: toSamples(ambient),
		timeoutSamples: toSamples(timeout),
		pauseSamples:   toSamples(pause),
		limitSamples:   toSamples(limit),
		threshold:      MinEnergyThreshold,
	}
	if d.ambientSamples <= 0 {
		d.state = stateWaiting
	}
	return d
}

// Feed consumes one frame. It returns true once the phrase is complete and
// ErrListenTimeout when no speech started in time.
func (d *phraseDetector) Feed(frame []int16) (bool, error) {
	if d.state == stateDone {
		return true, nil
	}
	energy := rms(frame)

	switch d.state {
	case stateCalibrating:
		d.ambientSum += energy * float64(len(frame))
		d.ambientCount += len(frame)
		if d.ambientCount >= d.ambientSamples {
			d.threshold = math.Max(MinEnergyThreshold, d.ambientSum/float64(d.ambientCount)*DynamicEnergyRatio)
			d.state = stateWaiting
		}
		return false, nil

	case stateWaiting:
		d.seen += len(frame)
		if energy > d.threshold {
			d.state = stateRecording
			d.phrase = append(d.phrase, frame...)
			return false, nil
		}
		if d.timeoutSamples > 0 && d.seen >= d.timeoutSamples {
			return false, speech.ErrListenTimeout
		}
		return false, nil

	case stateRecording:
		d.phrase = append(d.phrase, frame...)
		if energy > d.threshold {
			d.silent = 0
		} else {
			d.silent += len(frame)
		}
		if d.silent >= d.pauseSamples || (d.limitSamples > 0 && len(d.phrase) >= d.limitSamples) {
			d.state = stateDone
			return true, nil
		}
		return false, nil
	}
	return false, nil
}

// Clip returns the captured phrase without its trailing silence
func (d *phraseDetector) Clip() *speech.Clip {
	end := len(d.phrase) - d.silent
	if end < 0 {
		end = 0
	}
	samples := make([]int16, end)
	copy(samples, d.phrase[:end])
	return &speech.Clip{Samples: samples, SampleRate: d.sampleRate}
}

// Threshold returns the current energy threshold
func (d *phraseDetector) Threshold() float64 {
	return d.threshold
}

// rms returns the root-mean-square energy of a frame
func rms(frame []int16) float64 {
	if len(frame) == 0 {
		return 0
	}
	var sum float64
	for _, s := range frame {
		v := float64(s)
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(frame)))
}
