package model

// Package model defines domain data structures shared across the app:
// translation records, workflow statuses and user-facing notices. Records are
// immutable once created; statuses drive the status line of the main window.
