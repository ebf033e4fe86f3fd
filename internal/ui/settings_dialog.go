package ui

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/translator/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	endpointEntry      *widget.Entry
	requestTimeout     *widget.Entry
	contactEntry       *widget.Entry
	openAIKeyEntry     *widget.Entry
	listenTimeoutEntry *widget.Entry
	themeSelect        *widget.Select
	languageSelect     *widget.Select

	// display label -> language code
	languageCodes map[string]string
}

// ShowSettingsDialog opens the settings dialog; onSaved runs after a save
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, localization *Localization, onSaved func()) {
	NewSettingsDialog(settings, localization, window, onSaved).Show()
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		localization: localization,
		window:       window,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.endpointEntry = widget.NewEntry()
	sd.endpointEntry.SetPlaceHolder(config.DefaultEndpoint)

	sd.requestTimeout = widget.NewEntry()
	sd.requestTimeout.SetPlaceHolder("1-60")

	sd.contactEntry = widget.NewEntry()
	sd.contactEntry.SetPlaceHolder("name@example.com")

	sd.openAIKeyEntry = widget.NewPasswordEntry()
	sd.openAIKeyEntry.SetPlaceHolder("sk-...")

	sd.listenTimeoutEntry = widget.NewEntry()
	sd.listenTimeoutEntry.SetPlaceHolder("1-60")

	themeOptions := []string{}
	for _, v := range sd.settings.GetThemeOptions() {
		themeOptions = append(themeOptions, string(v))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		languageOptions = append(languageOptions, label)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := widget.NewForm(
		widget.NewFormItem(text(KeyEndpoint), sd.endpointEntry),
		widget.NewFormItem(text(KeyRequestTimeout), sd.requestTimeout),
		widget.NewFormItem(text(KeyContactEmail), sd.contactEntry),
		widget.NewFormItem(text(KeyOpenAIKey), sd.openAIKeyEntry),
		widget.NewFormItem(text(KeyListenTimeout), sd.listenTimeoutEntry),
		widget.NewFormItem(text(KeyTheme), sd.themeSelect),
		widget.NewFormItem(text(KeyInterfaceLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsWidth, SettingsHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.endpointEntry.SetText(sd.settings.GetEndpoint())
	sd.requestTimeout.SetText(strconv.Itoa(int(sd.settings.GetRequestTimeout() / time.Second)))
	sd.contactEntry.SetText(sd.settings.GetContactEmail())
	sd.openAIKeyEntry.SetText(sd.settings.GetOpenAIKey())
	sd.listenTimeoutEntry.SetText(strconv.Itoa(int(sd.settings.GetListenTimeout() / time.Second)))
	sd.themeSelect.SetSelected(string(sd.settings.GetTheme()))

	current := sd.settings.GetLanguage()
	for label, code := range sd.languageCodes {
		if code == current {
			sd.languageSelect.SetSelected(label)
		}
	}
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	if endpoint := strings.TrimSpace(sd.endpointEntry.Text); endpoint != "" {
		sd.settings.SetEndpoint(endpoint)
	}

	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.requestTimeout.Text)); err == nil {
		sd.settings.SetRequestTimeoutSeconds(seconds)
	}

	// Empty contact and key are valid and clear the stored value
	sd.settings.SetContactEmail(strings.TrimSpace(sd.contactEntry.Text))
	sd.settings.SetOpenAIKey(strings.TrimSpace(sd.openAIKeyEntry.Text))

	if seconds, err := strconv.Atoi(strings.TrimSpace(sd.listenTimeoutEntry.Text)); err == nil {
		sd.settings.SetListenTimeoutSeconds(seconds)
	}

	if sd.themeSelect.Selected != "" {
		sd.settings.SetTheme(config.ThemeVariant(sd.themeSelect.Selected))
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
