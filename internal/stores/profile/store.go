// Package profile owns the single user profile record. Every mutator
// re-reads the persisted record immediately before merging its change and
// runs under the store's mutex, so sequential and concurrent updates alike
// never lose increments.
package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/scana-dk/scana/internal/logging"
	"github.com/scana-dk/scana/internal/models"
	"github.com/scana-dk/scana/internal/storage"
)

// Store reads and writes the profile record.
type Store struct {
	storage storage.Storage
	log     logging.Logger
	mu      sync.Mutex
}

func New(s storage.Storage, log logging.Logger) *Store {
	return &Store{storage: s, log: log.With("store", "profile")}
}

// Load returns the persisted profile, or the hard-coded default when none
// exists or the stored record is malformed.
func (s *Store) Load(ctx context.Context) (models.Profile, error) {
	data, err := s.storage.Get(ctx, storage.KeyUserProfile)
	if err != nil {
		return models.Profile{}, fmt.Errorf("loading profile: %w", err)
	}
	if data == nil {
		return models.DefaultProfile(), nil
	}

	var p models.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Warn(ctx, "malformed profile, using defaults", "error", err)
		return models.DefaultProfile(), nil
	}
	return p, nil
}

// AddElo credits the score by increment and returns the updated profile.
func (s *Store) AddElo(ctx context.Context, increment int) (models.Profile, error) {
	return s.update(ctx, func(p *models.Profile) {
		p.Elo += increment
	})
}

// IncScanCount bumps the total-scans counter by one.
func (s *Store) IncScanCount(ctx context.Context) (models.Profile, error) {
	return s.update(ctx, func(p *models.Profile) {
		p.TotalScans++
	})
}

// SetFavoritesCount records the live favorites-list length pushed in by the
// caller.
func (s *Store) SetFavoritesCount(ctx context.Context, n int) (models.Profile, error) {
	return s.update(ctx, func(p *models.Profile) {
		p.TotalFavorites = n
	})
}

// Reset persists the hard-coded default profile.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, models.DefaultProfile())
}

// update is the single mutation path: re-read persisted state, apply fn,
// persist the merged record.
func (s *Store) update(ctx context.Context, fn func(*models.Profile)) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.Load(ctx)
	if err != nil {
		return models.Profile{}, err
	}
	fn(&p)
	if err := s.save(ctx, p); err != nil {
		return models.Profile{}, err
	}
	return p, nil
}

func (s *Store) save(ctx context.Context, p models.Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeyUserProfile, data); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
