package model

// WorkflowStatus represents the state of a user-triggered workflow
type WorkflowStatus string

const (
	// StatusIdle means no workflow is running
	StatusIdle WorkflowStatus = "Idle"

	// StatusTranslating means a translation request is in flight
	StatusTranslating WorkflowStatus = "Translating"

	// StatusSpeaking means the output is being spoken
	StatusSpeaking WorkflowStatus = "Speaking"

	// StatusListening means the microphone is being captured
	StatusListening WorkflowStatus = "Listening"

	// StatusRecognizing means captured audio is being transcribed
	StatusRecognizing WorkflowStatus = "Recognizing"

	// StatusError means the last workflow failed
	StatusError WorkflowStatus = "Error"
)

// String returns the string representation of WorkflowStatus
func (ws WorkflowStatus) String() string {
	return string(ws)
}

// IsBusy returns true if a blocking operation is running for this status
func (ws WorkflowStatus) IsBusy() bool {
	return ws == StatusTranslating || ws == StatusSpeaking || ws == StatusListening || ws == StatusRecognizing
}

// StatusLine returns the text shown in the status bar for this status
func (ws WorkflowStatus) StatusLine() string {
	switch ws {
	case StatusTranslating:
		return "Translating..."
	case StatusSpeaking:
		return "Speaking..."
	case StatusListening:
		return "Listening..."
	case StatusRecognizing:
		return "Recognizing..."
	case StatusError:
		return "Error"
	default:
		return "Ready"
	}
}
