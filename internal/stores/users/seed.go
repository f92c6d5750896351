package users

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/scana-dk/scana/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// Bundled demo accounts available on a fresh install. Passwords are hashed
// at seed time; the plaintext below exists only so the demo login works out
// of the box.
var seedAccounts = []struct {
	name     string
	email    string
	password string
}{
	{"Mads Mikkelsen", "mads@example.com", "scana123"},
	{"Anna Jensen", "anna@example.com", "scana123"},
	{"Test Bruger", "test@scana.dk", "test1234"},
}

func seedUsers() ([]models.User, error) {
	list := make([]models.User, 0, len(seedAccounts))
	for _, a := range seedAccounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hashing seed password for %s: %w", a.email, err)
		}
		list = append(list, models.User{
			ID:           uuid.NewString(),
			Name:         a.name,
			Email:        a.email,
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		})
	}
	return list, nil
}
