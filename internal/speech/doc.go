package speech

// Package speech wraps the optional voice services: speaking text through the
// platform speech engine, capturing a phrase from the default microphone with
// PortAudio and transcribing it with the OpenAI Whisper API. All of them block
// and are meant to run on a task.Runner goroutine.
