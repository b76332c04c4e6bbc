package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/cumplia/compliance-api/internal/api/metrics"
	"github.com/cumplia/compliance-api/internal/core/domain"
	"github.com/cumplia/compliance-api/internal/core/ports"
	"github.com/cumplia/compliance-api/internal/pkg/password"
)

// UserService implements registration and admin mutation of user accounts.
// Every mutation passes the root-account guard before anything is written.
type UserService struct {
	repo   ports.UserRepository
	guard  domain.RootGuard
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, guard domain.RootGuard, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, guard: guard, logger: logger}
}

// Create registers a new user account with a freshly hashed credential.
func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, domain.ErrInvalidRole
	}
	if err := checkRoleCompany(input.Role, input.CompanyID); err != nil {
		return nil, err
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        input.Email,
		FullName:     input.FullName,
		PasswordHash: hash,
		Role:         input.Role,
		CompanyID:    input.CompanyID,
		Active:       true,
		CreatedAt:    now,
		LastModified: now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("role", created.Role).Msg("user created")
	return created, nil
}

// Update applies a sparse update to a user. The target is fetched first so
// the guard can decide on the stored email, before any proposed change; a
// rejected mutation is all-or-nothing and leaves the row untouched.
func (s *UserService) Update(ctx context.Context, id int64, upd domain.UserUpdate) (*domain.User, error) {
	if upd.Empty() {
		return nil, domain.ErrNoFieldsProvided
	}
	if upd.RoleSet && !domain.ValidRole(upd.Role) {
		return nil, domain.ErrInvalidRole
	}

	target, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.guard.Check(target, upd); err != nil {
		metrics.RootGuardRejectionsTotal.WithLabelValues(guardReason(err)).Inc()
		s.logger.Warn().Int64("user_id", id).Err(err).Msg("root guard rejected update")
		return nil, err
	}

	if err := checkUpdateRoleCompany(target, upd); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, id, upd); err != nil {
		metrics.UserUpdatesTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.UserUpdatesTotal.WithLabelValues("ok").Inc()
	s.logger.Info().Int64("user_id", id).Msg("user updated")
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.List(ctx)
}

// checkRoleCompany enforces the boundary rule that client users reference a
// company while consultants and administrators do not.
func checkRoleCompany(role string, companyID *int64) error {
	if role == domain.RoleClient && companyID == nil {
		return domain.ErrRoleCompanyMismatch
	}
	if role != domain.RoleClient && companyID != nil {
		return domain.ErrRoleCompanyMismatch
	}
	return nil
}

// checkUpdateRoleCompany applies the same rule to the state the update would
// produce, considering only what the request actually proposes.
func checkUpdateRoleCompany(target *domain.User, upd domain.UserUpdate) error {
	role := target.Role
	if upd.RoleSet {
		role = upd.Role
	}
	companyID := target.CompanyID
	if upd.CompanyIDSet {
		companyID = upd.CompanyID
	}
	if !upd.RoleSet && !upd.CompanyIDSet {
		return nil
	}
	return checkRoleCompany(role, companyID)
}

func guardReason(err error) string {
	switch err {
	case domain.ErrRootRoleImmutable:
		return "role"
	case domain.ErrRootEmailImmutable:
		return "email"
	case domain.ErrRootCannotBeDeactivated:
		return "active"
	}
	return "other"
}
