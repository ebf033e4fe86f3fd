package translate

import "context"

// Translator defines the interface for the translation service.
type Translator interface {
	// Translate sends text with the "source|target" language pair and returns
	// the translated text.
	Translate(ctx context.Context, text, source, target string) (string, error)
}
