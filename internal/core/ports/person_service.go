package ports

import (
	"context"

	"github.com/authbase/person-api/internal/core/domain"
)

// PersonService defines the account use cases exposed over HTTP.
//
// Every write path that sets a password hashes it before it reaches the
// store; plaintext passwords never survive past the service boundary.
type PersonService interface {
	// SignUp registers a new account. Duplicate logins yield
	// domain.ErrLoginTaken.
	SignUp(ctx context.Context, login, password string) (*domain.Person, error)
	// Authenticate verifies credentials and returns a signed session token.
	Authenticate(ctx context.Context, login, password string) (string, error)
	FindAll(ctx context.Context) ([]*domain.Person, error)
	FindByID(ctx context.Context, id int64) (*domain.Person, error)
	FindByLogin(ctx context.Context, login string) (*domain.Person, error)
	// Create persists a new account (the non-sign-up create path).
	Create(ctx context.Context, login, password string) (*domain.Person, error)
	// Update replaces login and password of the record with the given id.
	Update(ctx context.Context, id int64, login, password string) error
	// UpdatePassword overwrites the password of the account with the given
	// login.
	UpdatePassword(ctx context.Context, login, password string) error
	Delete(ctx context.Context, id int64) error
}
