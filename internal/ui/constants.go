package ui

import "time"

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconClose    = "×"
)

// Window sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640

	HistoryWidth  float32 = 640
	HistoryHeight float32 = 420

	SettingsWidth  float32 = 500
	SettingsHeight float32 = 460

	EntryMinRows = 8
)

// File dialogs
const (
	DefaultOutputName  = "translation.txt"
	DefaultHistoryName = "translation_history.txt"
)

// Toast notification sizing and behavior
const (
	ToastWidth    float32 = 300
	ToastHeight   float32 = 90
	ToastMargin   float32 = 20
	ToastAutoHide         = 3 * time.Second
)
