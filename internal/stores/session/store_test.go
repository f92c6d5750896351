package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/scana-dk/scana/internal/logging"
	"github.com/scana-dk/scana/internal/models"
	"github.com/scana-dk/scana/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testUser() models.User {
	return models.User{
		ID:           "u-1",
		Name:         "Mads",
		Email:        "mads@example.com",
		PasswordHash: "$2a$10$should-not-leak",
		CreatedAt:    time.Now().UTC(),
	}
}

func TestLoad_NoSessionMeansLoggedOut(t *testing.T) {
	s := New(storage.NewMemoryStorage(), testLogger())
	ctx := context.Background()

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestLoginThenLoad(t *testing.T) {
	s := New(storage.NewMemoryStorage(), testLogger())
	ctx := context.Background()

	created, err := s.Login(ctx, testUser())
	require.NoError(t, err)
	require.NotEmpty(t, created.Token)
	assert.False(t, created.LoginTimestamp.IsZero())

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "u-1", loaded.User.ID)
	assert.Equal(t, "mads@example.com", loaded.User.Email)
}

func TestLogin_DoesNotPersistPasswordHash(t *testing.T) {
	s := New(storage.NewMemoryStorage(), testLogger())
	ctx := context.Background()

	_, err := s.Login(ctx, testUser())
	require.NoError(t, err)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Empty(t, loaded.User.PasswordHash)
}

func TestLogin_OverwritesPriorSession(t *testing.T) {
	s := New(storage.NewMemoryStorage(), testLogger())
	ctx := context.Background()

	_, err := s.Login(ctx, testUser())
	require.NoError(t, err)

	other := testUser()
	other.ID = "u-2"
	other.Email = "anna@example.com"
	_, err = s.Login(ctx, other)
	require.NoError(t, err)

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "u-2", loaded.User.ID)
}

func TestLogout(t *testing.T) {
	s := New(storage.NewMemoryStorage(), testLogger())
	ctx := context.Background()

	_, err := s.Login(ctx, testUser())
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, sess)

	// logging out twice is fine
	require.NoError(t, s.Logout(ctx))
}

func TestLoad_MalformedRecordIsLoggedOut(t *testing.T) {
	mem := storage.NewMemoryStorage()
	s := New(mem, testLogger())
	ctx := context.Background()

	require.NoError(t, mem.Set(ctx, storage.KeySession, []byte("{not json")))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestLoad_TamperedTokenIsLoggedOut(t *testing.T) {
	mem := storage.NewMemoryStorage()
	s := New(mem, testLogger())
	ctx := context.Background()

	_, err := s.Login(ctx, testUser())
	require.NoError(t, err)

	// a new secret invalidates the signed token
	require.NoError(t, mem.Set(ctx, storage.KeyDeviceSecret, []byte("different-secret")))

	sess, err := s.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, sess)
}

func TestTokenRoundTrip(t *testing.T) {
	secret := []byte("s3cret")

	token, err := generateToken("u-42", secret, time.Minute)
	require.NoError(t, err)

	id, err := verifyToken(token, secret)
	require.NoError(t, err)
	assert.Equal(t, "u-42", id)

	_, err = verifyToken(token, []byte("other"))
	require.Error(t, err)
}

func TestVerifyToken_Expired(t *testing.T) {
	secret := []byte("s3cret")

	token, err := generateToken("u-42", secret, -time.Minute)
	require.NoError(t, err)

	_, err = verifyToken(token, secret)
	require.Error(t, err)
}
