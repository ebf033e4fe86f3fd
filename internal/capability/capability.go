// Package capability probes the optional voice services once at startup and
// caches the result for the lifetime of the process.
package capability

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultProbeTimeout bounds each probe
const DefaultProbeTimeout = 5 * time.Second

// ErrUnavailable is returned when a feature's service could not be found
var ErrUnavailable = errors.New("capability unavailable")

// Feature names an optional service
type Feature string

const (
	FeatureSynthesis   Feature = "speech synthesis"
	FeatureRecognition Feature = "speech recognition"
)

// Availability is the probe result for one feature
type Availability struct {
	Available bool
	Reason    string // why the feature is unavailable; empty when available
}

// Set holds the availability of every optional feature
type Set struct {
	Synthesis   Availability
	Recognition Availability
}

// Get returns the availability of a feature
func (s Set) Get(f Feature) Availability {
	switch f {
	case FeatureSynthesis:
		return s.Synthesis
	case FeatureRecognition:
		return s.Recognition
	default:
		return Availability{Reason: "unknown feature"}
	}
}

// Require returns ErrUnavailable, with the probe reason, when f is unavailable
func (s Set) Require(f Feature) error {
	a := s.Get(f)
	if a.Available {
		return nil
	}
	if a.Reason == "" {
		return fmt.Errorf("%w: %s", ErrUnavailable, f)
	}
	return fmt.Errorf("%w: %s: %s", ErrUnavailable, f, a.Reason)
}

// Probe checks whether a feature can be used. A nil probe means unavailable.
type Probe func(ctx context.Context) error

// Probes lists the probe for each feature
type Probes struct {
	Synthesis   Probe
	Recognition Probe
}

// Detect runs every probe and returns the typed result
func Detect(ctx context.Context, probes Probes, log zerolog.Logger) Set {
	return Set{
		Synthesis:   run(ctx, FeatureSynthesis, probes.Synthesis, log),
		Recognition: run(ctx, FeatureRecognition, probes.Recognition, log),
	}
}

func run(ctx context.Context, f Feature, probe Probe, log zerolog.Logger) (a Availability) {
	if probe == nil {
		return Availability{Reason: "not supported"}
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultProbeTimeout)
	defer cancel()

	defer func() {
		if rec := recover(); rec != nil {
			a = Availability{Reason: fmt.Sprintf("probe panicked: %v", rec)}
		}
		if a.Available {
			log.Info().Str("feature", string(f)).Msg("capability available")
		} else {
			log.Warn().Str("feature", string(f)).Str("reason", a.Reason).Msg("capability unavailable")
		}
	}()

	if err := probe(ctx); err != nil {
		return Availability{Reason: err.Error()}
	}
	return Availability{Available: true}
}

// Cache runs detection once and serves the same Set afterwards
type Cache struct {
	once   sync.Once
	set    Set
	detect func() Set
}

// NewCache creates a cache around a detection function
func NewCache(detect func() Set) *Cache {
	return &Cache{detect: detect}
}

// Fixed returns a cache that always serves set, for tests and headless runs
func Fixed(set Set) *Cache {
	c := &Cache{set: set}
	c.once.Do(func() {})
	return c
}

// Get returns the cached set, detecting on first use
func (c *Cache) Get() Set {
	c.once.Do(func() {
		if c.detect != nil {
			c.set = c.detect()
		}
	})
	return c.set
}
