package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/translator/internal/bootstrap"
	"github.com/ytget/translator/internal/config"
	"github.com/ytget/translator/internal/logging"
	"github.com/ytget/translator/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.translator"
	AppName = "Multilingual Translator"
)

func main() {
	log := logging.NewDefault()
	log.Info().Str("version", version).Msg("translator starting")

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	// Appearance is fixed for the session
	myApp.Settings().SetTheme(ui.NewCompactTheme(settings.GetTheme()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	// Initialize services
	sh := bootstrap.NewShell(settings, log)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, sh, settings, log)

	// Show and run
	myWindow.ShowAndRun()
	log.Info().Msg("translator stopped")
}
