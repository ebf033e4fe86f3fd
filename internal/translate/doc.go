package translate

// Package translate implements the single-shot client for the MyMemory
// translation API. Every failure surfaces as ErrFailed; a response without a
// translated text yields an empty string rather than an error.
