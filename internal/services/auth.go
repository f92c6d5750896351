package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/scana-dk/scana/internal/common"
	"github.com/scana-dk/scana/internal/models"
	"github.com/scana-dk/scana/internal/stores/session"
	"github.com/scana-dk/scana/internal/stores/users"
)

// SignupRequest is the validated input of account creation.
type SignupRequest struct {
	Name            string `validate:"omitempty,min=2"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	AcceptTerms     bool   `validate:"eq=true"`
}

// AuthService implements signup and login on top of the users and session
// stores.
type AuthService struct {
	users    *users.Store
	session  *session.Store
	validate *validator.Validate
}

func NewAuthService(u *users.Store, s *session.Store) *AuthService {
	return &AuthService{users: u, session: s, validate: validator.New()}
}

// Signup validates the request, registers the account and logs it in.
// A taken email yields common.ErrEmailTaken; invalid input yields
// common.ErrValidation.
func (a *AuthService) Signup(ctx context.Context, req SignupRequest) (*models.Session, error) {
	if err := a.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrValidation, err)
	}

	taken, err := a.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, fmt.Errorf("%w: %s", common.ErrEmailTaken, req.Email)
	}

	user, err := a.users.Add(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}
	return a.session.Login(ctx, user)
}

// Login checks the credentials against the directory and starts a session.
// A mismatch yields common.ErrInvalidCredentials.
func (a *AuthService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	user, err := a.users.Find(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, common.ErrInvalidCredentials
	}
	return a.session.Login(ctx, *user)
}

// Logout drops the active session.
func (a *AuthService) Logout(ctx context.Context) error {
	return a.session.Logout(ctx)
}

// Session returns the persisted session, or nil when logged out.
func (a *AuthService) Session(ctx context.Context) (*models.Session, error) {
	return a.session.Load(ctx)
}
