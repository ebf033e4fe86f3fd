package shell

// Notices are fixed English text. The UI language setting localizes window
// chrome only.

// Notice titles
const (
	TitleCopied       = "Copied"
	TitleSaved        = "Saved"
	TitleHistory      = "History"
	TitleNotAvailable = "Not available"
)

// Notice messages
const (
	MsgEmptyInput         = "Enter text to translate or try file translation."
	MsgNoOutput           = "No output to save"
	MsgCopied             = "Translated text copied to clipboard"
	MsgNoSpeechText       = "No text to speak"
	MsgNoHistory          = "No translations yet"
	MsgTTSUnavailable     = "TTS engine is not available."
	MsgSTTUnavailable     = "Speech recognition is not available."
	MsgTranslationFailed  = "Translation failed"
	MsgReadFailed         = "Could not read file"
	MsgSaveFailed         = "Could not save file"
	MsgExportFailed       = "Could not export history"
	MsgTTSFailed          = "TTS failed"
	MsgRecognitionFailed  = "Speech recognition failed"
	MsgSavedTo            = "Saved to %s"
	MsgTranslationSuccess = "Translation complete"
)
