package ports

import (
	"context"

	"github.com/cumplia/compliance-api/internal/core/domain"
)

// CreateUserInput carries the fields accepted when registering a user.
type CreateUserInput struct {
	Email     string
	FullName  string
	Password  string
	Role      string
	CompanyID *int64
}

type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	// Update applies a sparse admin update to a user after the root-account
	// guard has approved it.
	Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
}
