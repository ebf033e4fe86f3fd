package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecordIDPrefix prefixes every translation record ID
const RecordIDPrefix = "tr-"

// TranslationRecord represents a single completed translation
type TranslationRecord struct {
	ID             string
	SourceText     string
	TranslatedText string
	SourceLang     string // language code sent as source, may be "auto"
	TargetLang     string // language code sent as target
	CreatedAt      time.Time
}

// NewTranslationRecord creates a record for a successful translation
func NewTranslationRecord(sourceText, translatedText, sourceLang, targetLang string) TranslationRecord {
	return TranslationRecord{
		ID:             RecordIDPrefix + uuid.NewString(),
		SourceText:     sourceText,
		TranslatedText: translatedText,
		SourceLang:     sourceLang,
		TargetLang:     targetLang,
		CreatedAt:      time.Now(),
	}
}

// LanguagePair returns the "source|target" pair the record was translated with
func (r TranslationRecord) LanguagePair() string {
	return fmt.Sprintf("%s|%s", r.SourceLang, r.TargetLang)
}

// Heading returns the one-line header used when listing the record
func (r TranslationRecord) Heading() string {
	return fmt.Sprintf("Source (%s)->Target (%s)", r.SourceLang, r.TargetLang)
}
