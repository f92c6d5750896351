package services

import (
	"context"
	"testing"

	"github.com/scana-dk/scana/internal/common"
	"github.com/scana-dk/scana/internal/storage"
	"github.com/scana-dk/scana/internal/stores/session"
	"github.com/scana-dk/scana/internal/stores/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T, mem storage.Storage) *AuthService {
	t.Helper()
	log := testLogger()
	u := users.New(mem, log)
	require.NoError(t, u.EnsureSeeded(context.Background()))
	return NewAuthService(u, session.New(mem, log))
}

func validSignup() SignupRequest {
	return SignupRequest{
		Name:            "Lone Madsen",
		Email:           "lone@example.com",
		Password:        "hunter22",
		ConfirmPassword: "hunter22",
		AcceptTerms:     true,
	}
}

func TestSignup_CreatesAccountAndLogsIn(t *testing.T) {
	mem := storage.NewMemoryStorage()
	svc := newAuthService(t, mem)
	ctx := context.Background()

	sess, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)
	assert.Equal(t, "lone@example.com", sess.User.Email)
	assert.Equal(t, "Lone Madsen", sess.User.Name)
	assert.Empty(t, sess.User.PasswordHash)
	assert.NotEmpty(t, sess.Token)

	loaded, err := svc.Session(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, sess.User.ID, loaded.User.ID)
}

func TestSignup_RejectsTakenEmail(t *testing.T) {
	svc := newAuthService(t, storage.NewMemoryStorage())

	req := validSignup()
	req.Email = "mads@example.com"

	_, err := svc.Signup(context.Background(), req)
	require.ErrorIs(t, err, common.ErrEmailTaken)
}

func TestSignup_Validation(t *testing.T) {
	svc := newAuthService(t, storage.NewMemoryStorage())
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*SignupRequest)
	}{
		{"bad email", func(r *SignupRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *SignupRequest) { r.Password, r.ConfirmPassword = "abc", "abc" }},
		{"password mismatch", func(r *SignupRequest) { r.ConfirmPassword = "different" }},
		{"terms not accepted", func(r *SignupRequest) { r.AcceptTerms = false }},
		{"one letter name", func(r *SignupRequest) { r.Name = "L" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)
			_, err := svc.Signup(ctx, req)
			require.ErrorIs(t, err, common.ErrValidation)
		})
	}
}

func TestSignup_NameOptional(t *testing.T) {
	svc := newAuthService(t, storage.NewMemoryStorage())

	req := validSignup()
	req.Name = ""

	sess, err := svc.Signup(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "lone", sess.User.Name)
}

func TestLogin_SeededAccount(t *testing.T) {
	svc := newAuthService(t, storage.NewMemoryStorage())
	ctx := context.Background()

	sess, err := svc.Login(ctx, "mads@example.com", "scana123")
	require.NoError(t, err)
	assert.Equal(t, "Mads Mikkelsen", sess.User.Name)
	assert.Empty(t, sess.User.PasswordHash)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc := newAuthService(t, storage.NewMemoryStorage())

	_, err := svc.Login(context.Background(), "mads@example.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestLogout_ThenSessionIsNil(t *testing.T) {
	svc := newAuthService(t, storage.NewMemoryStorage())
	ctx := context.Background()

	_, err := svc.Login(ctx, "test@scana.dk", "test1234")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))

	sess, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, sess)
}
