package ports

import (
	"context"

	"github.com/cumplia/compliance-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns a signed session token
	// together with the authenticated user.
	Login(ctx context.Context, email, plaintext string) (string, *domain.User, error)
	// ChangePassword rotates the stored credential. The caller must present
	// the current plaintext even with a valid session, as a defense against
	// token theft.
	ChangePassword(ctx context.Context, userID int64, current, next string) error
}
