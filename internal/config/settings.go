package config

import (
	"strings"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/translator/internal/language"
	"github.com/ytget/translator/internal/translate"
)

// ThemeVariant selects the appearance applied once at startup
type ThemeVariant string

const (
	ThemeSystem ThemeVariant = "system"
	ThemeLight  ThemeVariant = "light"
	ThemeDark   ThemeVariant = "dark"
)

// Settings keys for Fyne preferences
const (
	KeyEndpoint       = "translate_endpoint"
	KeyRequestTimeout = "translate_timeout_seconds"
	KeyContactEmail   = "translate_contact_email"
	KeySourceLanguage = "source_language"
	KeyTargetLanguage = "target_language"
	KeyOpenAIKey      = "openai_api_key"
	KeyListenTimeout  = "listen_timeout_seconds"
	KeyTheme          = "theme_variant"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultEndpoint       = translate.DefaultEndpoint
	DefaultRequestTimeout = 10
	DefaultListenTimeout  = 6
	DefaultTheme          = ThemeSystem
	DefaultLanguage       = "system"

	MinTimeoutSeconds = 1
	MaxTimeoutSeconds = 60
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetEndpoint returns the translation endpoint
func (s *Settings) GetEndpoint() string {
	endpoint := s.app.Preferences().String(KeyEndpoint)
	if endpoint == "" {
		s.SetEndpoint(DefaultEndpoint)
		return DefaultEndpoint
	}
	return endpoint
}

// SetEndpoint sets the translation endpoint; empty restores the default
func (s *Settings) SetEndpoint(endpoint string) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	s.app.Preferences().SetString(KeyEndpoint, endpoint)
}

// GetRequestTimeout returns the translation request timeout
func (s *Settings) GetRequestTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyRequestTimeout)
	if value <= 0 {
		s.SetRequestTimeoutSeconds(DefaultRequestTimeout)
		value = DefaultRequestTimeout
	}
	return time.Duration(clampSeconds(value)) * time.Second
}

// SetRequestTimeoutSeconds sets the request timeout, clamped to 1..60 seconds
func (s *Settings) SetRequestTimeoutSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyRequestTimeout, clampSeconds(seconds))
}

// GetContactEmail returns the e-mail sent to the translation API
func (s *Settings) GetContactEmail() string {
	return s.app.Preferences().String(KeyContactEmail)
}

// SetContactEmail sets the e-mail sent to the translation API
func (s *Settings) SetContactEmail(email string) {
	s.app.Preferences().SetString(KeyContactEmail, strings.TrimSpace(email))
}

// GetSourceLanguage returns the last selected source language name
func (s *Settings) GetSourceLanguage() string {
	name := s.app.Preferences().String(KeySourceLanguage)
	if !language.IsKnownName(name) {
		return language.DefaultSourceName
	}
	return name
}

// SetSourceLanguage remembers the selected source language name
func (s *Settings) SetSourceLanguage(name string) {
	if language.IsKnownName(name) {
		s.app.Preferences().SetString(KeySourceLanguage, name)
	}
}

// GetTargetLanguage returns the last selected target language name
func (s *Settings) GetTargetLanguage() string {
	name := s.app.Preferences().String(KeyTargetLanguage)
	if !language.IsKnownName(name) || language.ResolveSource(name) == language.AutoCode {
		return language.DefaultTargetName
	}
	return name
}

// SetTargetLanguage remembers the selected target language name
func (s *Settings) SetTargetLanguage(name string) {
	if language.IsKnownName(name) && language.ResolveSource(name) != language.AutoCode {
		s.app.Preferences().SetString(KeyTargetLanguage, name)
	}
}

// GetOpenAIKey returns the API key used for speech recognition
func (s *Settings) GetOpenAIKey() string {
	return s.app.Preferences().String(KeyOpenAIKey)
}

// SetOpenAIKey sets the API key used for speech recognition
func (s *Settings) SetOpenAIKey(key string) {
	s.app.Preferences().SetString(KeyOpenAIKey, strings.TrimSpace(key))
}

// GetListenTimeout returns how long voice input waits for speech
func (s *Settings) GetListenTimeout() time.Duration {
	value := s.app.Preferences().Int(KeyListenTimeout)
	if value <= 0 {
		s.SetListenTimeoutSeconds(DefaultListenTimeout)
		return DefaultListenTimeout * time.Second
	}
	return time.Duration(clampSeconds(value)) * time.Second
}

// SetListenTimeoutSeconds sets the listen timeout, clamped to 1..60 seconds
func (s *Settings) SetListenTimeoutSeconds(seconds int) {
	s.app.Preferences().SetInt(KeyListenTimeout, clampSeconds(seconds))
}

// GetTheme returns the configured theme variant
func (s *Settings) GetTheme() ThemeVariant {
	switch v := ThemeVariant(s.app.Preferences().String(KeyTheme)); v {
	case ThemeLight, ThemeDark, ThemeSystem:
		return v
	default:
		return DefaultTheme
	}
}

// SetTheme sets the theme variant applied on next start
func (s *Settings) SetTheme(v ThemeVariant) {
	s.app.Preferences().SetString(KeyTheme, string(v))
}

// GetThemeOptions returns available theme variants
func (s *Settings) GetThemeOptions() []ThemeVariant {
	return []ThemeVariant{ThemeSystem, ThemeLight, ThemeDark}
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available UI language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

func clampSeconds(seconds int) int {
	if seconds < MinTimeoutSeconds {
		return MinTimeoutSeconds
	}
	if seconds > MaxTimeoutSeconds {
		return MaxTimeoutSeconds
	}
	return seconds
}
