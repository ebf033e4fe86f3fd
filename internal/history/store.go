// Package history keeps the in-memory, append-only log of completed
// translations for the lifetime of the process.
package history

import (
	"fmt"
	"io"
	"sync"

	"github.com/ytget/translator/internal/model"
)

// Store is an append-only, chronologically ordered list of translation records.
// It is never persisted and has no delete or clear operation.
type Store struct {
	mu      sync.RWMutex
	records []model.TranslationRecord
}

// NewStore creates an empty history store
func NewStore() *Store {
	return &Store{records: make([]model.TranslationRecord, 0)}
}

// Append adds a record at the end of the log
func (s *Store) Append(rec model.TranslationRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, rec)
}

// Len returns the number of records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// All returns a copy of the records in append order
func (s *Store) All() []model.TranslationRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.TranslationRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Last returns the most recent record, if any
func (s *Store) Last() (model.TranslationRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return model.TranslationRecord{}, false
	}
	return s.records[len(s.records)-1], true
}

// Format renders a single record the way the history window lists it
func Format(rec model.TranslationRecord) string {
	return fmt.Sprintf("%s\n%s\n=>\n%s\n\n", rec.Heading(), rec.SourceText, rec.TranslatedText)
}

// Export writes every record as plain text, oldest first
func (s *Store) Export(w io.Writer) error {
	for _, rec := range s.All() {
		if _, err := io.WriteString(w, Format(rec)); err != nil {
			return fmt.Errorf("failed to write history: %w", err)
		}
	}
	return nil
}
