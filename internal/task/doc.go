package task

// Package task runs blocking work (network calls, speech synthesis, microphone
// capture) on detached goroutines and hands completions back to the UI
// goroutine through a single-consumer Mailbox. Jobs never touch UI state
// directly; they return a closure that the mailbox consumer applies.
