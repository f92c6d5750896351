// Package session owns the persisted login session. At most one identity is
// logged in at a time: presence of the session record means logged-in,
// absence means logged-out.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/scana-dk/scana/internal/common"
	"github.com/scana-dk/scana/internal/logging"
	"github.com/scana-dk/scana/internal/models"
	"github.com/scana-dk/scana/internal/storage"
)

// TTL after which a stored session is treated as logged-out.
const sessionTTL = 30 * 24 * time.Hour

type claims struct {
	jwt.RegisteredClaims
	UserID string
}

// Store reads and writes the session record.
type Store struct {
	storage storage.Storage
	log     logging.Logger
}

func New(s storage.Storage, log logging.Logger) *Store {
	return &Store{storage: s, log: log.With("store", "session")}
}

// Load returns the current session, or nil when logged out. A missing,
// malformed or token-invalid record is a normal logged-out result, never an
// error; only storage failures propagate.
func (s *Store) Load(ctx context.Context) (*models.Session, error) {
	data, err := s.storage.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		s.log.Warn(ctx, "malformed session record, treating as logged out", "error", err)
		return nil, nil
	}

	secret, err := s.deviceSecret(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := verifyToken(sess.Token, secret); err != nil {
		s.log.Warn(ctx, "session token rejected, treating as logged out", "error", err)
		return nil, nil
	}

	return &sess, nil
}

// Login builds a session for user, replacing any prior session
// unconditionally.
func (s *Store) Login(ctx context.Context, user models.User) (*models.Session, error) {
	secret, err := s.deviceSecret(ctx)
	if err != nil {
		return nil, err
	}

	token, err := generateToken(user.ID, secret, sessionTTL)
	if err != nil {
		return nil, fmt.Errorf("signing session token: %w", err)
	}

	// the credential hash has no business inside the session record
	user.PasswordHash = ""

	sess := models.Session{
		User:           user,
		Token:          token,
		LoginTimestamp: time.Now().UTC(),
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, fmt.Errorf("encoding session: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeySession, data); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}

	return &sess, nil
}

// Logout removes the session record. Logging out while logged out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.storage.Remove(ctx, storage.KeySession); err != nil {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}

// deviceSecret returns the per-device signing secret, creating it on first
// use.
func (s *Store) deviceSecret(ctx context.Context) ([]byte, error) {
	data, err := s.storage.Get(ctx, storage.KeyDeviceSecret)
	if err != nil {
		return nil, fmt.Errorf("loading device secret: %w", err)
	}
	if data != nil {
		return data, nil
	}

	secret, err := common.MakeRandHexString(32)
	if err != nil {
		return nil, fmt.Errorf("generating device secret: %w", err)
	}
	if err := s.storage.Set(ctx, storage.KeyDeviceSecret, []byte(secret)); err != nil {
		return nil, fmt.Errorf("saving device secret: %w", err)
	}
	return []byte(secret), nil
}

func generateToken(userID string, secret []byte, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		},
		UserID: userID,
	})
	return token.SignedString(secret)
}

func verifyToken(tokenString string, secret []byte) (string, error) {
	c := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, c, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", common.ErrInvalidToken
	}
	return c.UserID, nil
}
