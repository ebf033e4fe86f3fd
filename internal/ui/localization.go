package ui

import (
	"fyne.io/fyne/v2/lang"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	xlanguage "golang.org/x/text/language"
)

// Localization manages UI text translations
type Localization struct {
	bundle          *i18n.Bundle
	localizer       *i18n.Localizer
	currentLanguage string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyTranslate         = "translate"
	KeyTranslateFile     = "translate_file"
	KeyCopy              = "copy"
	KeySave              = "save"
	KeyClear             = "clear"
	KeySpeak             = "speak"
	KeyVoiceInput        = "voice_input"
	KeyShowHistory       = "show_history"
	KeyExportHistory     = "export_history"
	KeyRevealSaved       = "reveal_saved"
	KeyInputPlaceholder  = "input_placeholder"
	KeyOutputPlaceholder = "output_placeholder"
	KeySourceLanguage    = "source_language"
	KeyTargetLanguage    = "target_language"
	KeyHistoryTitle      = "history_title"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyEndpoint          = "endpoint"
	KeyRequestTimeout    = "request_timeout"
	KeyContactEmail      = "contact_email"
	KeyOpenAIKey         = "openai_key"
	KeyListenTimeout     = "listen_timeout"
	KeyTheme             = "theme"
	KeyInterfaceLanguage = "interface_language"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyRestartRequired   = "restart_required"
	KeyTTSHint           = "tts_hint"
	KeySTTHint           = "stt_hint"
	KeyTranslateHint     = "translate_hint"
	KeyNothingSaved      = "nothing_saved"
)

// Languages with a translation of the UI chrome
const (
	LangEnglish    = "en"
	LangRussian    = "ru"
	LangPortuguese = "pt"
	LangSystem     = "system"
)

var messages = map[string]map[string]string{
	LangEnglish: {
		KeyAppTitle:          "Multilingual Translator",
		KeyTranslate:         "Translate",
		KeyTranslateFile:     "Translate .txt File",
		KeyCopy:              "Copy",
		KeySave:              "Save",
		KeyClear:             "Clear",
		KeySpeak:             "Speak",
		KeyVoiceInput:        "Voice Input",
		KeyShowHistory:       "Show History",
		KeyExportHistory:     "Export History",
		KeyRevealSaved:       "Reveal Last Saved File",
		KeyInputPlaceholder:  "Type or paste text to translate",
		KeyOutputPlaceholder: "Translation appears here",
		KeySourceLanguage:    "From",
		KeyTargetLanguage:    "To",
		KeyHistoryTitle:      "Translation History ({{.Count}})",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyEndpoint:          "Translation Endpoint",
		KeyRequestTimeout:    "Request Timeout (seconds)",
		KeyContactEmail:      "Contact E-mail (optional)",
		KeyOpenAIKey:         "OpenAI API Key (voice input)",
		KeyListenTimeout:     "Listen Timeout (seconds)",
		KeyTheme:             "Theme",
		KeyInterfaceLanguage: "Interface Language",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyRestartRequired:   "Service and theme changes take effect after restart.",
		KeyTTSHint:           "Install espeak-ng (Linux) to enable speech output",
		KeySTTHint:           "Needs a microphone and an OpenAI API key in Settings",
		KeyTranslateHint:     "Translate the input (Ctrl+Enter)",
		KeyNothingSaved:      "Nothing has been saved yet",
	},
	LangRussian: {
		KeyAppTitle:          "Многоязычный переводчик",
		KeyTranslate:         "Перевести",
		KeyTranslateFile:     "Перевести .txt файл",
		KeyCopy:              "Копировать",
		KeySave:              "Сохранить",
		KeyClear:             "Очистить",
		KeySpeak:             "Озвучить",
		KeyVoiceInput:        "Голосовой ввод",
		KeyShowHistory:       "История",
		KeyExportHistory:     "Экспорт истории",
		KeyRevealSaved:       "Показать сохранённый файл",
		KeyInputPlaceholder:  "Введите или вставьте текст для перевода",
		KeyOutputPlaceholder: "Здесь появится перевод",
		KeySourceLanguage:    "С",
		KeyTargetLanguage:    "На",
		KeyHistoryTitle:      "История переводов ({{.Count}})",
		KeySettings:          "Настройки",
		KeyFile:              "Файл",
		KeyLanguage:          "Язык",
		KeyEndpoint:          "Адрес сервиса перевода",
		KeyRequestTimeout:    "Таймаут запроса (секунды)",
		KeyContactEmail:      "Контактный e-mail (необязательно)",
		KeyOpenAIKey:         "Ключ OpenAI API (голосовой ввод)",
		KeyListenTimeout:     "Таймаут ожидания речи (секунды)",
		KeyTheme:             "Тема",
		KeyInterfaceLanguage: "Язык интерфейса",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки успешно сохранены!",
		KeyRestartRequired:   "Изменения сервисов и темы вступят в силу после перезапуска.",
		KeyTTSHint:           "Установите espeak-ng (Linux) для озвучивания",
		KeySTTHint:           "Нужен микрофон и ключ OpenAI API в настройках",
		KeyTranslateHint:     "Перевести текст (Ctrl+Enter)",
		KeyNothingSaved:      "Ещё ничего не сохранено",
	},
	LangPortuguese: {
		KeyAppTitle:          "Tradutor Multilíngue",
		KeyTranslate:         "Traduzir",
		KeyTranslateFile:     "Traduzir arquivo .txt",
		KeyCopy:              "Copiar",
		KeySave:              "Salvar",
		KeyClear:             "Limpar",
		KeySpeak:             "Falar",
		KeyVoiceInput:        "Entrada de voz",
		KeyShowHistory:       "Histórico",
		KeyExportHistory:     "Exportar histórico",
		KeyRevealSaved:       "Mostrar último arquivo salvo",
		KeyInputPlaceholder:  "Digite ou cole o texto para traduzir",
		KeyOutputPlaceholder: "A tradução aparece aqui",
		KeySourceLanguage:    "De",
		KeyTargetLanguage:    "Para",
		KeyHistoryTitle:      "Histórico de traduções ({{.Count}})",
		KeySettings:          "Configurações",
		KeyFile:              "Arquivo",
		KeyLanguage:          "Idioma",
		KeyEndpoint:          "Endereço do serviço de tradução",
		KeyRequestTimeout:    "Tempo limite da requisição (segundos)",
		KeyContactEmail:      "E-mail de contato (opcional)",
		KeyOpenAIKey:         "Chave da API OpenAI (entrada de voz)",
		KeyListenTimeout:     "Tempo limite de escuta (segundos)",
		KeyTheme:             "Tema",
		KeyInterfaceLanguage: "Idioma da interface",
		KeyCancel:            "Cancelar",
		KeySettingsSaved:     "Configurações salvas com sucesso!",
		KeyRestartRequired:   "Alterações de serviço e tema valem após reiniciar.",
		KeyTTSHint:           "Instale o espeak-ng (Linux) para ativar a fala",
		KeySTTHint:           "Requer microfone e chave da API OpenAI nas configurações",
		KeyTranslateHint:     "Traduzir a entrada (Ctrl+Enter)",
		KeyNothingSaved:      "Nada foi salvo ainda",
	},
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	bundle := i18n.NewBundle(xlanguage.English)
	for code, texts := range messages {
		tag := xlanguage.Make(code)
		for id, other := range texts {
			// Only duplicate IDs can fail here and the table keys are unique
			_ = bundle.AddMessages(tag, &i18n.Message{ID: id, Other: other})
		}
	}

	l := &Localization{bundle: bundle}
	l.SetLanguage(LangEnglish)
	return l
}

// SetLanguage sets the current language; "system" follows the OS locale
func (l *Localization) SetLanguage(code string) {
	if code == LangSystem || code == "" {
		code = systemLanguage()
	}
	if _, exists := messages[code]; !exists {
		code = LangEnglish
	}

	l.currentLanguage = code
	l.localizer = i18n.NewLocalizer(l.bundle, code, LangEnglish)
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	return l.GetTextWith(key, nil)
}

// GetTextWith returns localized text with template data filled in
func (l *Localization) GetTextWith(key string, data map[string]any) string {
	text, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		// Final fallback - return key itself
		return key
	}
	return text
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish:    "English",
		LangRussian:    "Русский",
		LangPortuguese: "Português",
	}
}

func systemLanguage() string {
	base, _ := xlanguage.Make(lang.SystemLocale().LanguageString()).Base()
	return base.String()
}
