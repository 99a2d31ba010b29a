package ports

import (
	"context"

	"github.com/authbase/person-api/internal/core/domain"
)

// PersonRepository defines persistence operations for person records.
// Uniqueness of login is enforced by the store (unique index) so that two
// concurrent sign-ups with the same login cannot both succeed.
type PersonRepository interface {
	// Create inserts a new record and returns it with the store-assigned id.
	// A duplicate login yields domain.ErrLoginTaken.
	Create(ctx context.Context, p *domain.Person) (*domain.Person, error)
	FindAll(ctx context.Context) ([]*domain.Person, error)
	FindByID(ctx context.Context, id int64) (*domain.Person, error)
	FindByLogin(ctx context.Context, login string) (*domain.Person, error)
	// Update replaces login and password hash strictly by primary key.
	Update(ctx context.Context, p *domain.Person) error
	// UpdatePassword overwrites the password hash of the record with the
	// given login.
	UpdatePassword(ctx context.Context, login, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}
