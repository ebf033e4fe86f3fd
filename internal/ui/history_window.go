package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/translator/internal/history"
	"github.com/ytget/translator/internal/model"
)

// HistoryWindow lists the translations of this session
type HistoryWindow struct {
	window       fyne.Window
	localization *Localization
	text         *widget.Label
}

// NewHistoryWindow creates the history window; onClosed runs when the user
// closes it
func NewHistoryWindow(app fyne.App, localization *Localization, onClosed func()) *HistoryWindow {
	hw := &HistoryWindow{
		window:       app.NewWindow(localization.GetText(KeyShowHistory)),
		localization: localization,
		text:         widget.NewLabel(""),
	}

	hw.text.Wrapping = fyne.TextWrapWord
	hw.text.Selectable = true

	hw.window.SetContent(container.NewPadded(container.NewVScroll(hw.text)))
	hw.window.Resize(fyne.NewSize(HistoryWidth, HistoryHeight))
	hw.window.SetOnClosed(onClosed)
	return hw
}

// Show renders records, oldest first, and brings the window to front
func (hw *HistoryWindow) Show(records []model.TranslationRecord) {
	hw.window.SetTitle(hw.localization.GetTextWith(KeyHistoryTitle, map[string]any{"Count": len(records)}))
	hw.text.SetText(RenderHistory(records))
	hw.window.Show()
	hw.window.RequestFocus()
}

// Close closes the window
func (hw *HistoryWindow) Close() {
	hw.window.Close()
}

// RenderHistory joins the records in the order given
func RenderHistory(records []model.TranslationRecord) string {
	var b strings.Builder
	for _, rec := range records {
		b.WriteString(history.Format(rec))
	}
	return b.String()
}
