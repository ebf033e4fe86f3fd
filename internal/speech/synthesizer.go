package speech

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// windowsSpeakScript reads the text from stdin and speaks it with System.Speech
const windowsSpeakScript = "Add-Type -AssemblyName System.Speech; " +
	"$s = New-Object System.Speech.Synthesis.SpeechSynthesizer; " +
	"$s.Speak([Console]::In.ReadToEnd())"

// Engine describes a command-line speech engine
type Engine struct {
	Name    string
	Command string
	Args    []string
	// Stdin feeds the text on standard input instead of as the last argument
	Stdin bool
}

// PlatformEngines returns candidate engines for goos, in preference order
func PlatformEngines(goos string) []Engine {
	switch goos {
	case OSDarwin:
		return []Engine{
			{Name: "say", Command: "say", Stdin: true},
		}
	case OSWindows:
		return []Engine{
			{Name: "sapi", Command: "powershell", Args: []string{"-NoProfile", "-NonInteractive", "-Command", windowsSpeakScript}, Stdin: true},
		}
	default:
		return []Engine{
			{Name: "espeak-ng", Command: "espeak-ng", Args: []string{"--stdin"}, Stdin: true},
			{Name: "espeak", Command: "espeak", Args: []string{"--stdin"}, Stdin: true},
			{Name: "spd-say", Command: "spd-say", Args: []string{"--wait", "--"}},
		}
	}
}

// SystemSynthesizer speaks through a platform speech engine command
type SystemSynthesizer struct {
	engine Engine
	path   string
	log    zerolog.Logger
}

// lookPath is replaced in tests
var lookPath = exec.LookPath

// DetectSynthesizer picks the first installed engine for the running OS
func DetectSynthesizer(log zerolog.Logger) (*SystemSynthesizer, error) {
	return detectSynthesizer(runtime.GOOS, log)
}

func detectSynthesizer(goos string, log zerolog.Logger) (*SystemSynthesizer, error) {
	candidates := PlatformEngines(goos)
	names := make([]string, 0, len(candidates))
	for _, engine := range candidates {
		names = append(names, engine.Command)
		if path, err := lookPath(engine.Command); err == nil {
			log.Debug().Str("engine", engine.Name).Str("path", path).Msg("speech engine found")
			return &SystemSynthesizer{engine: engine, path: path, log: log}, nil
		}
	}
	return nil, fmt.Errorf("%w (install one of: %s)", ErrNoEngine, strings.Join(names, ", "))
}

// NewSystemSynthesizer creates a synthesizer for an explicit engine
func NewSystemSynthesizer(engine Engine, log zerolog.Logger) (*SystemSynthesizer, error) {
	path, err := lookPath(engine.Command)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNoEngine, engine.Command, err)
	}
	return &SystemSynthesizer{engine: engine, path: path, log: log}, nil
}

// EngineName returns the name of the selected engine
func (s *SystemSynthesizer) EngineName() string {
	return s.engine.Name
}

// Speak runs the engine and waits for it to finish
func (s *SystemSynthesizer) Speak(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("%w: nothing to speak", ErrSpeechFailed)
	}

	args := append([]string(nil), s.engine.Args...)
	if !s.engine.Stdin {
		args = append(args, text)
	}

	cmd := exec.CommandContext(ctx, s.path, args...)
	if s.engine.Stdin {
		cmd.Stdin = strings.NewReader(text)
	}

	s.log.Debug().Str("engine", s.engine.Name).Int("chars", len(text)).Msg("speaking")
	if out, err := cmd.CombinedOutput(); err != nil {
		msg := strings.TrimSpace(string(out))
		if msg != "" {
			return fmt.Errorf("%w: %s: %v: %s", ErrSpeechFailed, s.engine.Name, err, msg)
		}
		return fmt.Errorf("%w: %s: %v", ErrSpeechFailed, s.engine.Name, err)
	}
	return nil
}
