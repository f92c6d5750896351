// Package users owns the local account directory. The directory is seeded
// with bundled demo accounts on first run via an explicit EnsureSeeded call;
// reads never write.
package users

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/scana-dk/scana/internal/logging"
	"github.com/scana-dk/scana/internal/models"
	"github.com/scana-dk/scana/internal/storage"
	"golang.org/x/crypto/bcrypt"
)

// Store reads and writes the user directory.
type Store struct {
	storage storage.Storage
	log     logging.Logger
}

func New(s storage.Storage, log logging.Logger) *Store {
	return &Store{storage: s, log: log.With("store", "users")}
}

// EnsureSeeded writes the bundled default accounts exactly once, on first
// run. Subsequent calls are no-ops, so it is safe to call at every startup.
func (s *Store) EnsureSeeded(ctx context.Context) error {
	data, err := s.storage.Get(ctx, storage.KeyUsers)
	if err != nil {
		return fmt.Errorf("checking user directory: %w", err)
	}
	if data != nil {
		return nil
	}

	seeded, err := seedUsers()
	if err != nil {
		return fmt.Errorf("building seed users: %w", err)
	}
	if err := s.save(ctx, seeded); err != nil {
		return err
	}

	s.log.Info(ctx, "user directory seeded", "count", len(seeded))
	return nil
}

// Load returns all registered users. A malformed stored list degrades to the
// bundled default list rather than failing.
func (s *Store) Load(ctx context.Context) ([]models.User, error) {
	data, err := s.storage.Get(ctx, storage.KeyUsers)
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}
	if data == nil {
		return seedUsers()
	}

	var list []models.User
	if err := json.Unmarshal(data, &list); err != nil {
		s.log.Warn(ctx, "malformed user directory, falling back to defaults", "error", err)
		return seedUsers()
	}
	return list, nil
}

// Add registers a new account and rewrites the whole directory. It does not
// check for duplicate emails; that is the signup flow's responsibility.
func (s *Store) Add(ctx context.Context, email, password, name string) (models.User, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return models.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing password: %w", err)
	}

	if name == "" {
		name, _, _ = strings.Cut(email, "@")
	}

	user := models.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.save(ctx, append(list, user)); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// Find returns the user matching email and password, or nil when none does.
func (s *Store) Find(ctx context.Context, email, password string) (*models.User, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range list {
		if list[i].Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(list[i].PasswordHash), []byte(password)) == nil {
			return &list[i], nil
		}
	}
	return nil, nil
}

// EmailExists reports whether any registered user has the given email.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	list, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	for i := range list {
		if list[i].Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) save(ctx context.Context, list []models.User) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encoding users: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeyUsers, data); err != nil {
		return fmt.Errorf("saving users: %w", err)
	}
	return nil
}
