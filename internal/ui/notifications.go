package ui

import (
	"errors"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/translator/internal/model"
	"github.com/ytget/translator/internal/shell"
)

// Notify implements shell.Notifier. Errors and guidance open a dialog;
// confirmations of a finished action show a toast that hides itself.
func (ui *RootUI) Notify(n model.Notice) {
	switch {
	case n.IsError():
		ui.log.Debug().Str("message", n.Message).Msg("showing error notice")
		dialog.ShowError(errors.New(n.Message), ui.window)
	case n.Title == shell.TitleCopied:
		ui.showToast(n.Title, n.Message)
	case n.Title == shell.TitleSaved:
		ui.showSavedToast(n.Title, n.Message)
	default:
		dialog.ShowInformation(n.Title, n.Message, ui.window)
	}
}

// showToast shows a small in-app notification in the top-right corner
func (ui *RootUI) showToast(title, message string) {
	ui.popToast(title, message, nil)
}

// showSavedToast offers to reveal the written file
func (ui *RootUI) showSavedToast(title, message string) {
	revealBtn := widget.NewButton(ui.localization.GetText(KeyRevealSaved), ui.onRevealSaved)
	revealBtn.Importance = widget.HighImportance
	ui.popToast(title, message, revealBtn)
}

func (ui *RootUI) popToast(title, message string, action fyne.CanvasObject) {
	titleLabel := widget.NewLabel(title)
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(trimmedLines(message))
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	var toast *widget.PopUp
	closeBtn := widget.NewButton(IconClose, func() {
		if toast != nil {
			toast.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	content := container.NewVBox(container.NewBorder(nil, nil, titleLabel, closeBtn), messageLabel)
	height := ToastHeight
	if action != nil {
		content.Add(container.NewHBox(action))
		height += ToastHeight / 2
	}

	toast = widget.NewPopUp(content, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, height)
	toast.Resize(toastSize)
	toast.Move(fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin))
	toast.Show()

	time.AfterFunc(ToastAutoHide, func() {
		fyne.Do(toast.Hide)
	})
}
