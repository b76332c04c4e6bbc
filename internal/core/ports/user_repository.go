package ports

import (
	"context"

	"github.com/cumplia/compliance-api/internal/core/domain"
)

// UserRepository defines the persistence interface for user identities.
// Rows are never physically deleted; deactivation via the active flag is the
// terminal state.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// Update applies a sparse update to a single row. It returns
	// domain.ErrNoFieldsProvided when the update is empty and
	// domain.ErrUserNotFound when the id does not match a row.
	Update(ctx context.Context, id int64, upd domain.UserUpdate) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	List(ctx context.Context) ([]domain.User, error)
}
