package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	fynetooltip "github.com/dweymouth/fyne-tooltip"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/translator/internal/capability"
	"github.com/ytget/translator/internal/config"
	"github.com/ytget/translator/internal/language"
	"github.com/ytget/translator/internal/platform"
	"github.com/ytget/translator/internal/shell"
)

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	shell        *shell.Shell
	settings     *config.Settings
	localization *Localization
	log          zerolog.Logger

	sourceSelect *widget.Select
	targetSelect *widget.Select
	sourceLabel  *widget.Label
	targetLabel  *widget.Label
	inputEntry   *widget.Entry
	outputEntry  *widget.Entry
	statusLabel  *widget.Label

	translateBtn *ttwidget.Button
	fileBtn      *ttwidget.Button
	copyBtn      *ttwidget.Button
	saveBtn      *ttwidget.Button
	clearBtn     *ttwidget.Button
	speakBtn     *ttwidget.Button
	voiceBtn     *ttwidget.Button
	historyBtn   *ttwidget.Button
	exportBtn    *ttwidget.Button

	historyWindow *HistoryWindow

	// Path of the last file written by Save or Export History
	lastSavedPath string

	cancelPump context.CancelFunc
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, sh *shell.Shell, settings *config.Settings, log zerolog.Logger) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		shell:        sh,
		settings:     settings,
		localization: localization,
		log:          log.With().Str("component", "ui").Logger(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	sh.Attach(ui, ui)
	ui.startPump()

	window.SetOnClosed(ui.shutdown)

	ui.log.Info().Msg("root UI initialized")
	return ui
}

// startPump applies completions posted by background jobs on the UI goroutine
func (ui *RootUI) startPump() {
	ctx, cancel := context.WithCancel(context.Background())
	ui.cancelPump = cancel
	go ui.shell.Pump(ctx, func(fn func()) {
		fyne.DoAndWait(fn)
	})
}

func (ui *RootUI) shutdown() {
	if ui.cancelPump != nil {
		ui.cancelPump()
	}
	ui.shell.Close()
	if ui.historyWindow != nil {
		ui.historyWindow.Close()
	}
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	state := ui.shell.State()

	// Language selection row
	ui.sourceLabel = widget.NewLabel(ui.localization.GetText(KeySourceLanguage))
	ui.sourceSelect = widget.NewSelect(language.Names(), ui.shell.SetSource)
	ui.sourceSelect.SetSelected(ui.settings.GetSourceLanguage())
	if ui.sourceSelect.Selected == "" {
		ui.sourceSelect.SetSelected(state.SourceName)
	}

	ui.targetLabel = widget.NewLabel(ui.localization.GetText(KeyTargetLanguage))
	ui.targetSelect = widget.NewSelect(language.TargetNames(), ui.shell.SetTarget)
	ui.targetSelect.SetSelected(ui.settings.GetTargetLanguage())
	if ui.targetSelect.Selected == "" {
		ui.targetSelect.SetSelected(state.TargetName)
	}

	ui.translateBtn = ttwidget.NewButton(ui.localization.GetText(KeyTranslate), ui.shell.SubmitTranslation)
	ui.translateBtn.Importance = widget.HighImportance
	ui.fileBtn = ttwidget.NewButton(ui.localization.GetText(KeyTranslateFile), ui.onTranslateFile)

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	leading := container.NewHBox(settingsBtn, ui.sourceLabel, ui.sourceSelect, ui.targetLabel, ui.targetSelect)
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		leading = container.NewHBox(logoImage, leading)
	}
	topPanel := container.NewBorder(nil, nil, leading, container.NewHBox(ui.translateBtn, ui.fileBtn))

	// Text buffers
	ui.inputEntry = widget.NewMultiLineEntry()
	ui.inputEntry.Wrapping = fyne.TextWrapWord
	ui.inputEntry.SetMinRowsVisible(EntryMinRows)
	ui.inputEntry.SetPlaceHolder(ui.localization.GetText(KeyInputPlaceholder))
	ui.inputEntry.OnChanged = ui.shell.SetInput

	ui.outputEntry = widget.NewMultiLineEntry()
	ui.outputEntry.Wrapping = fyne.TextWrapWord
	ui.outputEntry.SetMinRowsVisible(EntryMinRows)
	ui.outputEntry.SetPlaceHolder(ui.localization.GetText(KeyOutputPlaceholder))
	ui.outputEntry.OnChanged = ui.shell.SetOutput

	buffers := container.NewGridWithRows(2, ui.inputEntry, ui.outputEntry)

	// Action row
	ui.copyBtn = ttwidget.NewButton(ui.localization.GetText(KeyCopy), func() {
		ui.shell.CopyOutput(ui.app.Clipboard())
	})
	ui.saveBtn = ttwidget.NewButton(ui.localization.GetText(KeySave), ui.onSaveOutput)
	ui.clearBtn = ttwidget.NewButton(ui.localization.GetText(KeyClear), ui.shell.Clear)
	ui.speakBtn = ttwidget.NewButton(ui.localization.GetText(KeySpeak), ui.shell.SpeakOutput)
	ui.voiceBtn = ttwidget.NewButton(ui.localization.GetText(KeyVoiceInput), ui.shell.VoiceInput)
	ui.historyBtn = ttwidget.NewButton(ui.localization.GetText(KeyShowHistory), ui.onShowHistory)
	ui.exportBtn = ttwidget.NewButton(ui.localization.GetText(KeyExportHistory), ui.onExportHistory)
	ui.applyCapabilityHints()

	actions := container.NewHBox(
		ui.copyBtn, ui.saveBtn, ui.clearBtn,
		widget.NewSeparator(),
		ui.speakBtn, ui.voiceBtn,
		widget.NewSeparator(),
		ui.historyBtn, ui.exportBtn,
	)

	ui.statusLabel = widget.NewLabel(state.StatusLine)
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	content := container.NewBorder(
		topPanel, // top
		container.NewVBox(actions, ui.statusLabel), // bottom
		nil,     // left
		nil,     // right
		buffers, // center
	)

	ui.window.SetContent(fynetooltip.AddWindowToolTipLayer(content, ui.window.Canvas()))

	// Ctrl+Enter translates without leaving the keyboard
	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyReturn,
		Modifier: fyne.KeyModifierShortcutDefault,
	}, func(fyne.Shortcut) {
		ui.shell.SubmitTranslation()
	})
}

// applyCapabilityHints explains unavailable voice features on hover
func (ui *RootUI) applyCapabilityHints() {
	ui.translateBtn.SetToolTip(ui.localization.GetText(KeyTranslateHint))

	caps := ui.shell.Capabilities()
	ui.speakBtn.SetToolTip(hintFor(caps.Synthesis, ui.localization.GetText(KeyTTSHint)))
	ui.voiceBtn.SetToolTip(hintFor(caps.Recognition, ui.localization.GetText(KeySTTHint)))
}

func hintFor(a capability.Availability, hint string) string {
	if a.Available {
		return ""
	}
	if a.Reason == "" {
		return hint
	}
	return hint + " (" + a.Reason + ")"
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile),
		fyne.NewMenuItem(ui.localization.GetText(KeyTranslateFile), ui.onTranslateFile),
		fyne.NewMenuItem(ui.localization.GetText(KeySave), ui.onSaveOutput),
		fyne.NewMenuItem(ui.localization.GetText(KeyExportHistory), ui.onExportHistory),
		fyne.NewMenuItem(ui.localization.GetText(KeyRevealSaved), ui.onRevealSaved),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings),
	)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.sourceLabel.SetText(ui.localization.GetText(KeySourceLanguage))
	ui.targetLabel.SetText(ui.localization.GetText(KeyTargetLanguage))
	ui.inputEntry.SetPlaceHolder(ui.localization.GetText(KeyInputPlaceholder))
	ui.outputEntry.SetPlaceHolder(ui.localization.GetText(KeyOutputPlaceholder))

	ui.translateBtn.SetText(ui.localization.GetText(KeyTranslate))
	ui.fileBtn.SetText(ui.localization.GetText(KeyTranslateFile))
	ui.copyBtn.SetText(ui.localization.GetText(KeyCopy))
	ui.saveBtn.SetText(ui.localization.GetText(KeySave))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClear))
	ui.speakBtn.SetText(ui.localization.GetText(KeySpeak))
	ui.voiceBtn.SetText(ui.localization.GetText(KeyVoiceInput))
	ui.historyBtn.SetText(ui.localization.GetText(KeyShowHistory))
	ui.exportBtn.SetText(ui.localization.GetText(KeyExportHistory))
	ui.applyCapabilityHints()
}

// SetInput implements shell.View
func (ui *RootUI) SetInput(text string) {
	if ui.inputEntry.Text != text {
		ui.inputEntry.SetText(text)
	}
}

// SetOutput implements shell.View
func (ui *RootUI) SetOutput(text string) {
	if ui.outputEntry.Text != text {
		ui.outputEntry.SetText(text)
	}
}

// SetStatus implements shell.View
func (ui *RootUI) SetStatus(status string) {
	ui.statusLabel.SetText(status)
}

// onTranslateFile picks a .txt file and translates its content
func (ui *RootUI) onTranslateFile() {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		_ = reader.Close()
		ui.shell.TranslateFile(path)
	}, ui.window)

	fd.SetFilter(storage.NewExtensionFileFilter([]string{platform.TextExtension}))
	ui.setStartLocation(fd)
	fd.Show()
}

// onSaveOutput asks for a destination and writes the output there
func (ui *RootUI) onSaveOutput() {
	if _, ok := ui.shell.OutputForSave(); !ok {
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return
		}
		chosen := writer.URI().Path()
		_ = writer.Close()

		path := saveTarget(chosen)
		if ui.shell.SaveOutput(path) {
			ui.lastSavedPath = path
		}
	}, ui.window)

	fd.SetFileName(DefaultOutputName)
	fd.SetFilter(storage.NewExtensionFileFilter([]string{platform.TextExtension}))
	ui.setStartLocation(fd)
	fd.Show()
}

// saveTarget adds the .txt extension to a bare file name. The dialog has
// already created the bare file; it is removed only while it is still empty.
func saveTarget(chosen string) string {
	path := platform.EnsureExtension(chosen, platform.TextExtension)
	if path != chosen {
		_, _ = platform.RemoveIfEmpty(chosen)
	}
	return path
}

// onExportHistory writes the rendered history to a chosen file
func (ui *RootUI) onExportHistory() {
	if !ui.shell.CanExportHistory() {
		return
	}

	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, ui.window)
			return
		}
		if writer == nil {
			return
		}
		path := writer.URI().Path()
		if ui.shell.ExportHistory(writer, path) {
			ui.lastSavedPath = path
		}
	}, ui.window)

	fd.SetFileName(DefaultHistoryName)
	ui.setStartLocation(fd)
	fd.Show()
}

// onRevealSaved shows the last saved file in the system file manager
func (ui *RootUI) onRevealSaved() {
	if ui.lastSavedPath == "" {
		dialog.ShowInformation(ui.localization.GetText(KeyRevealSaved), ui.localization.GetText(KeyNothingSaved), ui.window)
		return
	}
	if err := platform.OpenFileInManager(ui.lastSavedPath); err != nil {
		ui.log.Warn().Err(err).Str("path", ui.lastSavedPath).Msg("failed to reveal file")
		dialog.ShowError(err, ui.window)
	}
}

// setStartLocation opens file dialogs in the user's Documents directory
func (ui *RootUI) setStartLocation(fd *dialog.FileDialog) {
	dir, err := platform.GetHomeDocumentsDir()
	if err != nil {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(dir))
	if err != nil {
		return
	}
	fd.SetLocation(lister)
}

// onShowHistory opens the history window, oldest translation first
func (ui *RootUI) onShowHistory() {
	records, ok := ui.shell.HistoryEntries()
	if !ok {
		return
	}

	if ui.historyWindow == nil {
		ui.historyWindow = NewHistoryWindow(ui.app, ui.localization, func() {
			ui.historyWindow = nil
		})
	}
	ui.historyWindow.Show(records)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		ui.localization.SetLanguage(ui.settings.GetLanguage())
		ui.refreshUITexts()
		ui.createMenu()
		ui.showToast(ui.localization.GetText(KeySettingsSaved), ui.localization.GetText(KeyRestartRequired))
	})
}

// trimmedLines collapses a multi-line message for single-line widgets
func trimmedLines(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
