// Package history owns the bounded scan log: newest first, capped at
// MaxEntries. Every mutation rewrites the whole list.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/scana-dk/scana/internal/logging"
	"github.com/scana-dk/scana/internal/models"
	"github.com/scana-dk/scana/internal/storage"
)

const (
	// MaxEntries is the hard cap: the oldest entry beyond it is dropped
	// permanently.
	MaxEntries = 20

	// EloPerScan is the fixed profile score credit per successful scan.
	EloPerScan = 5
)

// ScanInput carries the recognition result being recorded.
type ScanInput struct {
	ProductName string
	Price       string
	PhotoURI    string
}

// EloFunc receives the score credit for a recorded scan.
type EloFunc func(ctx context.Context, increment int) error

// Store reads and writes the scan history.
type Store struct {
	storage storage.Storage
	log     logging.Logger
	mu      sync.Mutex
}

func New(s storage.Storage, log logging.Logger) *Store {
	return &Store{storage: s, log: log.With("store", "history")}
}

// Load returns the history, newest first. Absent or malformed data yields an
// empty list.
func (s *Store) Load(ctx context.Context) ([]models.ScanRecord, error) {
	data, err := s.storage.Get(ctx, storage.KeyScanHistory)
	if err != nil {
		return nil, fmt.Errorf("loading scan history: %w", err)
	}
	if data == nil {
		return []models.ScanRecord{}, nil
	}

	var list []models.ScanRecord
	if err := json.Unmarshal(data, &list); err != nil {
		s.log.Warn(ctx, "malformed scan history, starting empty", "error", err)
		return []models.ScanRecord{}, nil
	}
	return list, nil
}

// Add records a scan at the head of the history, truncates to MaxEntries,
// persists, and finally applies the elo credit through onElo when supplied.
// A scan persisted before a failing onElo stays persisted; the credit is
// simply lost.
func (s *Store) Add(ctx context.Context, in ScanInput, onElo EloFunc) (models.ScanRecord, error) {
	now := time.Now()

	rec := models.ScanRecord{
		ID:          uuid.NewString(),
		ProductName: in.ProductName,
		Price:       in.Price,
		Date:        formatDate(now),
		Timestamp:   now.UTC(),
		PhotoURI:    in.PhotoURI,
	}
	if rec.ProductName == "" {
		rec.ProductName = "Unknown Product"
	}
	if rec.Price == "" {
		rec.Price = "N/A"
	}

	s.mu.Lock()
	list, err := s.Load(ctx)
	if err == nil {
		list = append([]models.ScanRecord{rec}, list...)
		if len(list) > MaxEntries {
			list = list[:MaxEntries]
		}
		err = s.save(ctx, list)
	}
	s.mu.Unlock()
	if err != nil {
		return models.ScanRecord{}, err
	}

	if onElo != nil {
		if err := onElo(ctx, EloPerScan); err != nil {
			return rec, fmt.Errorf("applying elo credit: %w", err)
		}
	}
	return rec, nil
}

// Remove filters the record with the given id out of the history. An unknown
// id is a no-op.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	list, err := s.Load(ctx)
	if err != nil {
		return err
	}

	kept := list[:0]
	for _, rec := range list {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	return s.save(ctx, kept)
}

// Clear persists an empty history.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, []models.ScanRecord{})
}

func (s *Store) save(ctx context.Context, list []models.ScanRecord) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding scan history: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeyScanHistory, data); err != nil {
		return fmt.Errorf("saving scan history: %w", err)
	}
	return nil
}

// formatDate renders t the way the app displays scan dates: d.m.yyyy,
// the da-DK short date format.
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d.%d.%d", t.Day(), int(t.Month()), t.Year())
}
