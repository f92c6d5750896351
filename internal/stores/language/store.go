// Package language owns the persisted UI language selection and the
// compiled-in translation tables.
package language

import (
	"context"
	"fmt"
	"sync"

	"github.com/scana-dk/scana/internal/logging"
	"github.com/scana-dk/scana/internal/storage"
)

// DefaultCode is used when neither configuration nor persisted state names a
// supported language.
const DefaultCode = "da"

// Supported reports whether code has a translation table.
func Supported(code string) bool {
	_, ok := translations[code]
	return ok
}

// Store holds the active language and persists explicit changes.
type Store struct {
	storage storage.Storage
	log     logging.Logger

	mu      sync.RWMutex
	current string
}

// New creates a Store whose active language is fallback (or DefaultCode if
// fallback is unsupported) until Load observes a persisted preference.
func New(s storage.Storage, log logging.Logger, fallback string) *Store {
	if !Supported(fallback) {
		fallback = DefaultCode
	}
	return &Store{storage: s, log: log.With("store", "language"), current: fallback}
}

// Load reads the persisted language code. An absent or unsupported stored
// code keeps the current selection.
func (s *Store) Load(ctx context.Context) (string, error) {
	data, err := s.storage.Get(ctx, storage.KeyLanguage)
	if err != nil {
		return s.Current(), fmt.Errorf("loading language: %w", err)
	}

	code := string(data)
	if code != "" {
		if Supported(code) {
			s.mu.Lock()
			s.current = code
			s.mu.Unlock()
		} else {
			s.log.Warn(ctx, "unsupported persisted language, keeping current", "code", code)
		}
	}
	return s.Current(), nil
}

// Change persists and activates code. An unsupported code is ignored: the
// previous selection stays active and nothing is written.
func (s *Store) Change(ctx context.Context, code string) error {
	if !Supported(code) {
		s.log.Warn(ctx, "unsupported language ignored", "code", code)
		return nil
	}

	if err := s.storage.Set(ctx, storage.KeyLanguage, []byte(code)); err != nil {
		return fmt.Errorf("saving language: %w", err)
	}

	s.mu.Lock()
	s.current = code
	s.mu.Unlock()
	return nil
}

// Current returns the active language code.
func (s *Store) Current() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// T translates key in the active language. A missing key is returned
// verbatim so the UI never renders an empty label.
func (s *Store) T(key string) string {
	table := translations[s.Current()]
	if v, ok := table[key]; ok {
		return v
	}
	return key
}
