package ui

// Package ui contains the Fyne-based desktop user interface for the translator.
// It forwards user interactions to the shell controller and renders its state,
// notices, history and settings. UI chrome strings are localized via Localization.
