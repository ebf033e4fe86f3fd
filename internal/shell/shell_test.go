package shell

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/translator/internal/capability"
	"github.com/ytget/translator/internal/logging"
	"github.com/ytget/translator/internal/model"
	"github.com/ytget/translator/internal/speech"
	"github.com/ytget/translator/internal/task"
	"github.com/ytget/translator/internal/translate"
)

type translateCall struct {
	text, source, target string
}

type fakeTranslator struct {
	mu     sync.Mutex
	calls  []translateCall
	result string
	err    error
}

func (f *fakeTranslator) Translate(_ context.Context, text, source, target string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, translateCall{text, source, target})
	return f.result, f.err
}

func (f *fakeTranslator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeView struct {
	input, output string
	statuses      []string
}

func (v *fakeView) SetInput(text string)    { v.input = text }
func (v *fakeView) SetOutput(text string)   { v.output = text }
func (v *fakeView) SetStatus(status string) { v.statuses = append(v.statuses, status) }

type fakeNotifier struct {
	notices []model.Notice
}

func (n *fakeNotifier) Notify(notice model.Notice) { n.notices = append(n.notices, notice) }

func (n *fakeNotifier) last() model.Notice {
	if len(n.notices) == 0 {
		return model.Notice{}
	}
	return n.notices[len(n.notices)-1]
}

type fakeClipboard struct{ content string }

func (c *fakeClipboard) SetContent(content string) { c.content = content }

type fakeSynth struct {
	spoken []string
	err    error
}

func (f *fakeSynth) Speak(_ context.Context, text string) error {
	f.spoken = append(f.spoken, text)
	return f.err
}

type fakeVoice struct {
	text string
	err  error
}

func (f *fakeVoice) Capture(_ context.Context, onPhase func(speech.Phase)) (string, error) {
	onPhase(speech.PhaseListening)
	if f.err != nil {
		return "", f.err
	}
	onPhase(speech.PhaseRecognizing)
	return f.text, nil
}

type fakeSelections struct{ source, target string }

func (f *fakeSelections) SetSourceLanguage(name string) { f.source = name }
func (f *fakeSelections) SetTargetLanguage(name string) { f.target = name }

type fixture struct {
	shell    *Shell
	view     *fakeView
	notifier *fakeNotifier
	runner   *task.Runner
}

func newFixture(t *testing.T, svc Services) *fixture {
	t.Helper()
	svc.Log = logging.Nop()
	svc.Runner = task.NewRunner(task.NewMailbox(), svc.Log)
	s := New(svc)
	f := &fixture{shell: s, view: &fakeView{}, notifier: &fakeNotifier{}, runner: svc.Runner}
	s.Attach(f.view, f.notifier)
	return f
}

// settle waits for background jobs and applies their completions
func (f *fixture) settle() {
	f.runner.Wait()
	f.shell.DrainCompletions()
}

var voiceReady = capability.Set{
	Synthesis:   capability.Availability{Available: true},
	Recognition: capability.Availability{Available: true},
}

func TestSubmitTranslationSuccess(t *testing.T) {
	tests := []struct {
		source, target   string
		srcCode, tgtCode string
	}{
		{"English", "French", "en", "fr"},
		{"Auto Detect", "Hindi", "auto", "hi"},
		{"German", "Japanese", "de", "ja"},
	}

	for _, tt := range tests {
		t.Run(tt.srcCode+"-"+tt.tgtCode, func(t *testing.T) {
			tr := &fakeTranslator{result: "translated"}
			f := newFixture(t, Services{Translator: tr})

			f.shell.SetSource(tt.source)
			f.shell.SetTarget(tt.target)
			f.shell.SetInput("  some text \n")
			f.shell.SubmitTranslation()
			assert.Equal(t, model.StatusTranslating, f.shell.State().Status)

			f.settle()

			require.Equal(t, 1, f.shell.History().Len())
			rec, _ := f.shell.History().Last()
			assert.Equal(t, "some text", rec.SourceText)
			assert.Equal(t, "translated", rec.TranslatedText)
			assert.Equal(t, tt.srcCode, rec.SourceLang)
			assert.Equal(t, tt.tgtCode, rec.TargetLang)
			assert.Equal(t, "translated", f.view.output)
			assert.Equal(t, []string{"Translating...", MsgTranslationSuccess}, f.view.statuses[1:])
			assert.Empty(t, f.notifier.notices)
		})
	}
}

func TestSubmitTranslationEmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t\n"} {
		tr := &fakeTranslator{result: "x"}
		f := newFixture(t, Services{Translator: tr})

		f.shell.SetInput(input)
		f.shell.SubmitTranslation()
		f.settle()

		assert.Equal(t, 0, tr.callCount())
		assert.Equal(t, 0, f.shell.History().Len())
		assert.Equal(t, model.StatusIdle, f.shell.State().Status)
		assert.Equal(t, MsgEmptyInput, f.notifier.last().Message)
		assert.False(t, f.notifier.last().IsError())
	}
}

func TestSubmitTranslationFailure(t *testing.T) {
	tr := &fakeTranslator{err: fmt.Errorf("%w: HTTP 503: busy", translate.ErrFailed)}
	f := newFixture(t, Services{Translator: tr})
	f.shell.SetOutput("previous")

	f.shell.SetInput("Hello")
	f.shell.SubmitTranslation()
	f.settle()

	assert.Equal(t, 0, f.shell.History().Len())
	assert.Equal(t, model.StatusError, f.shell.State().Status)
	assert.Equal(t, "Error", f.shell.State().StatusLine)
	assert.Equal(t, "previous", f.shell.State().Output)

	notice := f.notifier.last()
	assert.True(t, notice.IsError())
	assert.Equal(t, "Translation failed: HTTP 503: busy", notice.Message)
}

func TestSubmitTranslationAgainstServer(t *testing.T) {
	var gotPair string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPair = r.URL.Query().Get("langpair")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"responseData":{"translatedText":"नमस्ते"}}`)
	}))
	defer server.Close()

	client := translate.NewClient(translate.WithEndpoint(server.URL))
	f := newFixture(t, Services{Translator: client})

	f.shell.SetSource("Auto Detect")
	f.shell.SetTarget("Hindi")
	f.shell.SetInput("Hello")
	f.shell.SubmitTranslation()
	f.settle()

	assert.Equal(t, "auto|hi", gotPair)
	assert.Equal(t, "नमस्ते", f.shell.State().Output)
	require.Equal(t, 1, f.shell.History().Len())
	rec, _ := f.shell.History().Last()
	assert.Equal(t, "Hello", rec.SourceText)
	assert.Equal(t, "नमस्ते", rec.TranslatedText)
}

func TestSubmitTranslationMissingFieldYieldsEmptyOutput(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"responseStatus":200}`)
	}))
	defer server.Close()

	f := newFixture(t, Services{Translator: translate.NewClient(translate.WithEndpoint(server.URL))})
	f.shell.SetOutput("stale")
	f.shell.SetInput("Hello")
	f.shell.SubmitTranslation()
	f.settle()

	assert.Equal(t, "", f.shell.State().Output)
	assert.Equal(t, model.StatusIdle, f.shell.State().Status)
	assert.Empty(t, f.notifier.notices)
	assert.Equal(t, 1, f.shell.History().Len())
}

func TestConcurrentTranslationsBothRecorded(t *testing.T) {
	tr := &fakeTranslator{result: "ok"}
	f := newFixture(t, Services{Translator: tr})

	f.shell.SetInput("first")
	f.shell.SubmitTranslation()
	f.shell.SetInput("second")
	f.shell.SubmitTranslation()
	f.settle()

	assert.Equal(t, 2, tr.callCount())
	assert.Equal(t, 2, f.shell.History().Len())
}

func TestTranslateFile(t *testing.T) {
	content := "Hello\r\nworld  \n"
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	tr := &fakeTranslator{result: "Bonjour le monde"}
	f := newFixture(t, Services{Translator: tr})
	f.shell.TranslateFile(path)

	assert.Equal(t, content, f.shell.State().Input)
	assert.Equal(t, content, f.view.input)
	f.settle()

	require.Equal(t, 1, tr.callCount())
	assert.Equal(t, strings.TrimSpace(content), tr.calls[0].text)
	assert.Equal(t, "Bonjour le monde", f.shell.State().Output)
	assert.Equal(t, 1, f.shell.History().Len())
}

func TestTranslateFileUnreadable(t *testing.T) {
	tr := &fakeTranslator{result: "x"}
	f := newFixture(t, Services{Translator: tr})
	f.shell.SetInput("kept")

	f.shell.TranslateFile(filepath.Join(t.TempDir(), "missing.txt"))
	f.settle()

	assert.Equal(t, 0, tr.callCount())
	assert.Equal(t, "kept", f.shell.State().Input)
	assert.True(t, f.notifier.last().IsError())
	assert.True(t, strings.HasPrefix(f.notifier.last().Message, MsgReadFailed+": "))
}

func TestSaveOutput(t *testing.T) {
	f := newFixture(t, Services{})
	path := filepath.Join(t.TempDir(), "out.txt")

	f.shell.SetOutput("  Hola \n")
	assert.True(t, f.shell.SaveOutput(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hola", string(data))
	assert.Equal(t, TitleSaved, f.notifier.last().Title)
	assert.Equal(t, "Saved to "+path, f.notifier.last().Message)
}

func TestSaveOutputEmpty(t *testing.T) {
	f := newFixture(t, Services{})
	path := filepath.Join(t.TempDir(), "out.txt")

	f.shell.SetOutput("   ")
	assert.False(t, f.shell.SaveOutput(path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
	assert.Equal(t, MsgNoOutput, f.notifier.last().Message)

	_, ok := f.shell.OutputForSave()
	assert.False(t, ok)
}

func TestSaveOutputWriteFailure(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	f := newFixture(t, Services{})
	f.shell.SetOutput("text")
	assert.False(t, f.shell.SaveOutput(filepath.Join(blocker, "out.txt")))

	assert.True(t, f.notifier.last().IsError())
	assert.True(t, strings.HasPrefix(f.notifier.last().Message, MsgSaveFailed+": "))
}

func TestCopyOutput(t *testing.T) {
	f := newFixture(t, Services{})
	clip := &fakeClipboard{}

	f.shell.CopyOutput(clip)
	assert.Empty(t, clip.content)
	assert.Empty(t, f.notifier.notices)

	f.shell.SetOutput(" Ciao ")
	f.shell.CopyOutput(clip)
	assert.Equal(t, "Ciao", clip.content)
	assert.Equal(t, model.InfoNotice(TitleCopied, MsgCopied), f.notifier.last())
}

func TestClearKeepsHistory(t *testing.T) {
	tr := &fakeTranslator{result: "Hallo"}
	f := newFixture(t, Services{Translator: tr})

	f.shell.SetInput("Hello")
	f.shell.SubmitTranslation()
	f.settle()
	f.shell.Clear()

	assert.Empty(t, f.shell.State().Input)
	assert.Empty(t, f.shell.State().Output)
	assert.Empty(t, f.view.input)
	assert.Empty(t, f.view.output)
	assert.Equal(t, 1, f.shell.History().Len())
}

func TestSpeakOutput(t *testing.T) {
	synth := &fakeSynth{}
	f := newFixture(t, Services{Synthesizer: synth, Capabilities: capability.Fixed(voiceReady)})

	f.shell.SetOutput("Bonjour")
	f.shell.SpeakOutput()
	assert.Equal(t, model.StatusSpeaking, f.shell.State().Status)
	f.settle()

	assert.Equal(t, []string{"Bonjour"}, synth.spoken)
	assert.Equal(t, model.StatusIdle, f.shell.State().Status)
	assert.Equal(t, "Ready", f.shell.State().StatusLine)
}

func TestSpeakOutputGuards(t *testing.T) {
	synth := &fakeSynth{}

	f := newFixture(t, Services{Synthesizer: synth})
	f.shell.SetOutput("text")
	f.shell.SpeakOutput()
	assert.Equal(t, model.InfoNotice(TitleNotAvailable, MsgTTSUnavailable), f.notifier.last())

	f = newFixture(t, Services{Synthesizer: synth, Capabilities: capability.Fixed(voiceReady)})
	f.shell.SpeakOutput()
	assert.Equal(t, MsgNoSpeechText, f.notifier.last().Message)

	f.settle()
	assert.Empty(t, synth.spoken)
}

func TestSpeakOutputFailure(t *testing.T) {
	synth := &fakeSynth{err: fmt.Errorf("%w: espeak: exit status 1", speech.ErrSpeechFailed)}
	f := newFixture(t, Services{Synthesizer: synth, Capabilities: capability.Fixed(voiceReady)})

	f.shell.SetOutput("text")
	f.shell.SpeakOutput()
	f.settle()

	assert.Equal(t, "TTS failed: espeak: exit status 1", f.notifier.last().Message)
	assert.Equal(t, model.StatusIdle, f.shell.State().Status)
}

func TestVoiceInput(t *testing.T) {
	voice := &fakeVoice{text: "good morning"}
	f := newFixture(t, Services{Voice: voice, Capabilities: capability.Fixed(voiceReady)})
	f.shell.SetInput("old")

	f.shell.VoiceInput()
	assert.Equal(t, model.StatusListening, f.shell.State().Status)
	f.settle()

	assert.Equal(t, "good morning", f.shell.State().Input)
	assert.Equal(t, "good morning", f.view.input)
	assert.Equal(t, []string{"Listening...", "Recognizing...", "Ready"}, f.view.statuses[1:])
}

func TestVoiceInputUnavailable(t *testing.T) {
	unavailable := capability.Set{
		Synthesis:   capability.Availability{Available: true},
		Recognition: capability.Availability{Reason: "no input device"},
	}
	voice := &fakeVoice{text: "ignored"}
	f := newFixture(t, Services{Voice: voice, Capabilities: capability.Fixed(unavailable)})
	f.shell.SetInput("unchanged")

	f.shell.VoiceInput()
	f.settle()

	assert.Equal(t, "unchanged", f.shell.State().Input)
	assert.Equal(t, model.StatusIdle, f.shell.State().Status)
	notice := f.notifier.last()
	assert.Equal(t, TitleNotAvailable, notice.Title)
	assert.True(t, strings.HasPrefix(notice.Message, MsgSTTUnavailable))
	assert.Contains(t, notice.Message, "no input device")
}

func TestVoiceInputFailure(t *testing.T) {
	voice := &fakeVoice{err: fmt.Errorf("%w: %w", speech.ErrRecognitionFailed, speech.ErrListenTimeout)}
	f := newFixture(t, Services{Voice: voice, Capabilities: capability.Fixed(voiceReady)})
	f.shell.SetInput("unchanged")

	f.shell.VoiceInput()
	f.settle()

	assert.Equal(t, "unchanged", f.shell.State().Input)
	assert.Equal(t, model.StatusIdle, f.shell.State().Status)
	assert.Equal(t, "Speech recognition failed: "+speech.ErrListenTimeout.Error(), f.notifier.last().Message)
}

type bufferCloser struct {
	strings.Builder
	closed bool
}

func (b *bufferCloser) Close() error {
	b.closed = true
	return nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
func (failingWriter) Close() error              { return nil }

func TestHistoryAndExport(t *testing.T) {
	tr := &fakeTranslator{result: "Hallo"}
	f := newFixture(t, Services{Translator: tr})

	_, ok := f.shell.HistoryEntries()
	assert.False(t, ok)
	assert.Equal(t, model.InfoNotice(TitleHistory, MsgNoHistory), f.notifier.last())

	empty := &bufferCloser{}
	assert.False(t, f.shell.ExportHistory(empty, "empty.txt"))
	assert.True(t, empty.closed)
	assert.Empty(t, empty.String())

	f.shell.SetSource("English")
	f.shell.SetTarget("German")
	f.shell.SetInput("Hello")
	f.shell.SubmitTranslation()
	f.settle()

	entries, ok := f.shell.HistoryEntries()
	require.True(t, ok)
	require.Len(t, entries, 1)

	out := &bufferCloser{}
	assert.True(t, f.shell.ExportHistory(out, "history.txt"))
	assert.True(t, out.closed)
	assert.Equal(t, "Source (en)->Target (de)\nHello\n=>\nHallo\n\n", out.String())
	assert.Equal(t, "Saved to history.txt", f.notifier.last().Message)

	assert.False(t, f.shell.ExportHistory(failingWriter{}, "broken.txt"))
	assert.True(t, f.notifier.last().IsError())
	assert.Contains(t, f.notifier.last().Message, "disk full")
}

func TestSelectionsPersisted(t *testing.T) {
	sel := &fakeSelections{}
	f := newFixture(t, Services{Selections: sel})

	f.shell.SetSource("Tamil")
	f.shell.SetTarget("Korean")
	f.shell.SetTarget("Klingon")

	assert.Equal(t, "Tamil", sel.source)
	assert.Equal(t, "Korean", sel.target)
	assert.Equal(t, "Klingon", f.shell.State().TargetName)
}

func TestHistoryEntriesChronological(t *testing.T) {
	tr := &fakeTranslator{result: "ok"}
	f := newFixture(t, Services{Translator: tr})

	for _, text := range []string{"first", "second"} {
		f.shell.SetInput(text)
		f.shell.SubmitTranslation()
		f.settle()
	}

	entries, ok := f.shell.HistoryEntries()
	require.True(t, ok)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].SourceText)
	assert.Equal(t, "second", entries[1].SourceText)

	out := &bufferCloser{}
	f.shell.ExportHistory(out, "history.txt")
	assert.Less(t, strings.Index(out.String(), "first"), strings.Index(out.String(), "second"))
}
