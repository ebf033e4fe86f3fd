package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ytget/translator/internal/capability"
	"github.com/ytget/translator/internal/history"
	"github.com/ytget/translator/internal/language"
	"github.com/ytget/translator/internal/model"
	"github.com/ytget/translator/internal/platform"
	"github.com/ytget/translator/internal/speech"
	"github.com/ytget/translator/internal/task"
	"github.com/ytget/translator/internal/translate"
)

// State is the application state owned by the UI goroutine
type State struct {
	SourceName string
	TargetName string
	Input      string
	Output     string
	Status     model.WorkflowStatus
	StatusLine string
}

// Services are the collaborators a Shell drives
type Services struct {
	Translator   translate.Translator
	Synthesizer  speech.Synthesizer
	Voice        VoiceCapture
	Capabilities *capability.Cache
	History      *history.Store
	Runner       *task.Runner
	Selections   Selections
	Log          zerolog.Logger
}

// Shell is the workflow controller behind the main window
type Shell struct {
	svc    Services
	state  State
	view   View
	notify Notifier
	log    zerolog.Logger
}

// New creates a shell with the given services. view and notifier may be set
// later with Attach.
func New(svc Services) *Shell {
	if svc.History == nil {
		svc.History = history.NewStore()
	}
	if svc.Capabilities == nil {
		svc.Capabilities = capability.Fixed(capability.Set{})
	}
	if svc.Runner == nil {
		svc.Runner = task.NewRunner(task.NewMailbox(), svc.Log)
	}

	return &Shell{
		svc: svc,
		state: State{
			SourceName: language.DefaultSourceName,
			TargetName: language.DefaultTargetName,
			Status:     model.StatusIdle,
			StatusLine: model.StatusIdle.StatusLine(),
		},
		log: svc.Log.With().Str("component", "shell").Logger(),
	}
}

// Attach connects the widgets that render the state
func (s *Shell) Attach(view View, notifier Notifier) {
	s.view = view
	s.notify = notifier
	if view != nil {
		view.SetInput(s.state.Input)
		view.SetOutput(s.state.Output)
		view.SetStatus(s.state.StatusLine)
	}
}

// State returns a snapshot of the current state
func (s *Shell) State() State {
	return s.state
}

// History returns the history store
func (s *Shell) History() *history.Store {
	return s.svc.History
}

// Capabilities returns the cached availability of the voice services
func (s *Shell) Capabilities() capability.Set {
	return s.svc.Capabilities.Get()
}

// SetSource mirrors the source language selection
func (s *Shell) SetSource(name string) {
	s.state.SourceName = name
	if s.svc.Selections != nil && language.IsKnownName(name) {
		s.svc.Selections.SetSourceLanguage(name)
	}
}

// SetTarget mirrors the target language selection
func (s *Shell) SetTarget(name string) {
	s.state.TargetName = name
	if s.svc.Selections != nil && language.IsKnownName(name) {
		s.svc.Selections.SetTargetLanguage(name)
	}
}

// SetInput mirrors edits of the input entry
func (s *Shell) SetInput(text string) {
	s.state.Input = text
}

// SetOutput mirrors edits of the output entry
func (s *Shell) SetOutput(text string) {
	s.state.Output = text
}

// SubmitTranslation translates the trimmed input with the selected pair
func (s *Shell) SubmitTranslation() {
	text := strings.TrimSpace(s.state.Input)
	if text == "" {
		s.raise(model.InfoNotice("", MsgEmptyInput))
		return
	}

	source := language.ResolveSource(s.state.SourceName)
	target := language.ResolveTarget(s.state.TargetName)
	s.enter(model.StatusTranslating)

	s.svc.Runner.Go("translate", func(ctx context.Context) (func(), error) {
		translated, err := s.svc.Translator.Translate(ctx, text, source, target)
		if err != nil {
			return nil, err
		}
		return func() {
			s.setOutput(translated)
			s.svc.History.Append(model.NewTranslationRecord(text, translated, source, target))
			s.finish(model.StatusIdle, MsgTranslationSuccess)
		}, nil
	}, func(err error) {
		s.finish(model.StatusError, model.StatusError.StatusLine())
		s.raise(model.ErrorNotice(failure(MsgTranslationFailed, err, translate.ErrFailed)))
	})
}

// TranslateFile loads a text file into the input and submits it
func (s *Shell) TranslateFile(path string) {
	content, err := platform.ReadTextFile(path)
	if err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("failed to load file")
		s.raise(model.ErrorNotice(failure(MsgReadFailed, err, nil)))
		return
	}

	s.state.Input = content
	if s.view != nil {
		s.view.SetInput(content)
	}
	s.SubmitTranslation()
}

// OutputForSave returns the text a save would write. When there is nothing to
// save it raises the notice and returns false.
func (s *Shell) OutputForSave() (string, bool) {
	text := strings.TrimSpace(s.state.Output)
	if text == "" {
		s.raise(model.InfoNotice("", MsgNoOutput))
		return "", false
	}
	return text, true
}

// SaveOutput writes the output to path and reports whether the file was written
func (s *Shell) SaveOutput(path string) bool {
	text, ok := s.OutputForSave()
	if !ok {
		return false
	}

	if err := platform.WriteTextFile(path, text); err != nil {
		s.log.Warn().Err(err).Str("path", path).Msg("failed to save output")
		s.raise(model.ErrorNotice(failure(MsgSaveFailed, err, nil)))
		return false
	}
	s.raise(model.InfoNotice(TitleSaved, fmt.Sprintf(MsgSavedTo, path)))
	return true
}

// CopyOutput puts the output on the clipboard; empty output is ignored
func (s *Shell) CopyOutput(clipboard Clipboard) {
	text := strings.TrimSpace(s.state.Output)
	if text == "" || clipboard == nil {
		return
	}
	clipboard.SetContent(text)
	s.raise(model.InfoNotice(TitleCopied, MsgCopied))
}

// Clear empties both buffers; history is kept
func (s *Shell) Clear() {
	s.state.Input = ""
	s.state.Output = ""
	if s.view != nil {
		s.view.SetInput("")
		s.view.SetOutput("")
	}
}

// SpeakOutput reads the output aloud
func (s *Shell) SpeakOutput() {
	if err := s.Capabilities().Require(capability.FeatureSynthesis); err != nil || s.svc.Synthesizer == nil {
		s.raise(model.InfoNotice(TitleNotAvailable, MsgTTSUnavailable))
		return
	}

	text := strings.TrimSpace(s.state.Output)
	if text == "" {
		s.raise(model.InfoNotice("", MsgNoSpeechText))
		return
	}

	s.enter(model.StatusSpeaking)
	s.svc.Runner.Go("speak", func(ctx context.Context) (func(), error) {
		if err := s.svc.Synthesizer.Speak(ctx, text); err != nil {
			return nil, err
		}
		return func() { s.enter(model.StatusIdle) }, nil
	}, func(err error) {
		s.raise(model.ErrorNotice(failure(MsgTTSFailed, err, speech.ErrSpeechFailed)))
		s.enter(model.StatusIdle)
	})
}

// VoiceInput replaces the input with a recognized phrase
func (s *Shell) VoiceInput() {
	if err := s.Capabilities().Require(capability.FeatureRecognition); err != nil || s.svc.Voice == nil {
		msg := MsgSTTUnavailable
		if reason := s.Capabilities().Recognition.Reason; reason != "" {
			msg += "\n" + reason
		}
		s.raise(model.InfoNotice(TitleNotAvailable, msg))
		return
	}

	s.enter(model.StatusListening)
	s.svc.Runner.Go("voice-input", func(ctx context.Context) (func(), error) {
		text, err := s.svc.Voice.Capture(ctx, func(p speech.Phase) {
			if p == speech.PhaseRecognizing {
				s.svc.Runner.Post(func() { s.enter(model.StatusRecognizing) })
			}
		})
		if err != nil {
			return nil, err
		}
		return func() {
			s.state.Input = text
			if s.view != nil {
				s.view.SetInput(text)
			}
			s.enter(model.StatusIdle)
		}, nil
	}, func(err error) {
		s.raise(model.ErrorNotice(failure(MsgRecognitionFailed, err, speech.ErrRecognitionFailed)))
		s.enter(model.StatusIdle)
	})
}

// HistoryEntries returns the records in the order they were made. With no records it raises
// the "no translations" notice and returns false.
func (s *Shell) HistoryEntries() ([]model.TranslationRecord, bool) {
	if s.svc.History.Len() == 0 {
		s.raise(model.InfoNotice(TitleHistory, MsgNoHistory))
		return nil, false
	}
	return s.svc.History.All(), true
}

// CanExportHistory reports whether there is history to export, raising the
// "no translations" notice otherwise
func (s *Shell) CanExportHistory() bool {
	_, ok := s.HistoryEntries()
	return ok
}

// ExportHistory writes the rendered history to w, closes it and reports
// whether the export succeeded
func (s *Shell) ExportHistory(w io.WriteCloser, name string) bool {
	if !s.CanExportHistory() {
		_ = w.Close()
		return false
	}

	err := s.svc.History.Export(w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.log.Warn().Err(err).Str("path", name).Msg("failed to export history")
		s.raise(model.ErrorNotice(failure(MsgExportFailed, err, nil)))
		return false
	}
	s.raise(model.InfoNotice(TitleSaved, fmt.Sprintf(MsgSavedTo, name)))
	return true
}

// Pump forwards posted completions to deliver until ctx is done. deliver must
// run each closure on the UI goroutine.
func (s *Shell) Pump(ctx context.Context, deliver func(fn func())) {
	s.svc.Runner.Mailbox().Pump(ctx, deliver)
}

// Close stops delivering completions
func (s *Shell) Close() {
	s.svc.Runner.Mailbox().Close()
}

// Wait blocks until every started job has posted its completion
func (s *Shell) Wait() {
	s.svc.Runner.Wait()
}

// DrainCompletions applies every posted completion on the calling goroutine
func (s *Shell) DrainCompletions() int {
	return s.svc.Runner.Mailbox().Drain()
}

func (s *Shell) enter(status model.WorkflowStatus) {
	s.finish(status, status.StatusLine())
}

func (s *Shell) finish(status model.WorkflowStatus, line string) {
	s.state.Status = status
	s.state.StatusLine = line
	if s.view != nil {
		s.view.SetStatus(line)
	}
}

func (s *Shell) setOutput(text string) {
	s.state.Output = text
	if s.view != nil {
		s.view.SetOutput(text)
	}
}

func (s *Shell) raise(n model.Notice) {
	if n.IsError() {
		s.log.Debug().Str("message", n.Message).Msg("error notice")
	}
	if s.notify != nil {
		s.notify.Notify(n)
	}
}

// failure renders "<prefix>: <reason>", dropping the sentinel's own text from
// the reason so it is not repeated
func failure(prefix string, err error, sentinel error) string {
	reason := err.Error()
	if sentinel != nil && errors.Is(err, sentinel) {
		reason = strings.TrimPrefix(reason, sentinel.Error()+": ")
	}
	return prefix + ": " + reason
}
