package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/translator/internal/bootstrap"
	"github.com/ytget/translator/internal/config"
	"github.com/ytget/translator/internal/logging"
	"github.com/ytget/translator/internal/ui"
)

func main() {
	log := logging.NewDefault()

	// Create new Fyne app
	myApp := app.NewWithID("com.ytget.translator")
	settings := config.NewSettings(myApp)
	myApp.Settings().SetTheme(ui.NewCompactTheme(settings.GetTheme()))

	myWindow := myApp.NewWindow("Multilingual Translator")
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, bootstrap.NewShell(settings, log), settings, log)

	// Show and run
	myWindow.ShowAndRun()
}
