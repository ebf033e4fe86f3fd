// Package shell implements the translator's workflow state machine without
// any widget dependency. The Fyne layer forwards user actions to a Shell and
// renders what the Shell pushes through View and Notifier.
//
// Every exported method must be called on the UI goroutine. Blocking work
// runs on task.Runner goroutines and comes back as closures posted to the
// runner's mailbox, so the state is only ever written by its single consumer.
package shell
