// Package favorites owns the saved-offers set. Membership is decided by the
// offer's derived content key, so saving the same offer twice never creates
// a duplicate; each record still carries its own assigned id.
package favorites

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

// Store reads and writes the favorites list.
type Store struct {
	storage storage.Storage
	log     logging.Logger
	mu      sync.Mutex
}

func New(s storage.Storage, log logging.Logger) *Store {
	return &Store{storage: s, log: log.With("store", "favorites")}
}

// Load returns the favorites in insertion order. Absent or malformed data
// yields an empty list.
func (s *Store) Load(ctx context.Context) ([]models.Favorite, error) {
	data, err := s.storage.Get(ctx, storage.KeyFavorites)
	if err != nil {
		return nil, fmt.Errorf("loading favorites: %w", err)
	}
	if data == nil {
		return []models.Favorite{}, nil
	}

	var list []models.Favorite
	if err := json.Unmarshal(data, &list); err != nil {
		s.log.Warn(ctx, "malformed favorites, starting empty", "error", err)
		return []models.Favorite{}, nil
	}
	return list, nil
}

// Add saves the offer as a favorite. Adding an offer whose key is already
// present is a no-op.
func (s *Store) Add(ctx context.Context, offer models.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.add(ctx, offer)
}

// Remove deletes the favorite with the given content key. An unknown key is
// a no-op.
func (s *Store) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.remove(ctx, key)
}

// Toggle flips the offer's membership and reports the resulting state:
// true when the offer is now a favorite.
func (s *Store) Toggle(ctx context.Context, offer models.Offer) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := models.OfferKey(offer)
	list, err := s.Load(ctx)
	if err != nil {
		return false, err
	}

	if contains(list, key) {
		return false, s.remove(ctx, key)
	}
	return true, s.add(ctx, offer)
}

// IsFavorite reports whether an offer with the same content key is saved.
func (s *Store) IsFavorite(ctx context.Context, offer models.Offer) (bool, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	return contains(list, models.OfferKey(offer)), nil
}

// Clear persists an empty favorites list.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, []models.Favorite{})
}

func (s *Store) add(ctx context.Context, offer models.Offer) error {
	key := models.OfferKey(offer)

	list, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if contains(list, key) {
		return nil
	}

	if offer.ProductName == "" {
		offer.ProductName = "Unknown Product"
	}

	fav := models.Favorite{
		ID:      uuid.NewString(),
		Key:     key,
		Offer:   offer,
		AddedAt: time.Now().UTC(),
	}
	return s.save(ctx, append(list, fav))
}

func (s *Store) remove(ctx context.Context, key string) error {
	list, err := s.Load(ctx)
	if err != nil {
		return err
	}

	kept := list[:0]
	for _, fav := range list {
		if fav.Key != key {
			kept = append(kept, fav)
		}
	}
	return s.save(ctx, kept)
}

func (s *Store) save(ctx context.Context, list []models.Favorite) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding favorites: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeyFavorites, data); err != nil {
		return fmt.Errorf("saving favorites: %w", err)
	}
	return nil
}

func contains(list []models.Favorite, key string) bool {
	for _, fav := range list {
		if fav.Key == key {
			return true
		}
	}
	return false
}
