package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/cumplia/compliance-api/internal/core/domain"
	"github.com/cumplia/compliance-api/internal/pkg/password"
	"github.com/cumplia/compliance-api/internal/pkg/token"
)

type stubUserRepo struct {
	users   map[int64]*domain.User
	updates []domain.UserUpdate
	nextID  int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) add(u *domain.User) *domain.User {
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = cloneUser(u)
	return cloneUser(u)
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	return r.add(cloneUser(user)), nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, upd domain.UserUpdate) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	r.updates = append(r.updates, upd)
	if upd.EmailSet {
		u.Email = upd.Email
	}
	if upd.FullNameSet {
		u.FullName = upd.FullName
	}
	if upd.RoleSet {
		u.Role = upd.Role
	}
	if upd.CompanyIDSet {
		u.CompanyID = upd.CompanyID
	}
	if upd.ActiveSet {
		u.Active = upd.Active
	}
	u.LastModified = time.Now().UTC()
	return nil
}

func (r *stubUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.PasswordHash = passwordHash
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func seedUser(t *testing.T, repo *stubUserRepo, email, plaintext, role string, active bool) *domain.User {
	t.Helper()
	hash, err := password.Hash(plaintext)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return repo.add(&domain.User{Email: email, FullName: "Test User", PasswordHash: hash, Role: role, Active: active})
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "admin@root.test", "Correct123", domain.RoleAdmin, true)
	tokens := token.NewService("secret")
	svc := NewAuthService(repo, tokens, zerolog.Nop())

	tok, user, err := svc.Login(context.Background(), "admin@root.test", "Correct123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Email != "admin@root.test" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Validate(tok)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %s", domain.RoleAdmin, claims.Role)
	}
	if claims.UserID != user.ID {
		t.Fatalf("claims carry wrong user id: %d", claims.UserID)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "ana@example.com", "goodpass1", domain.RoleConsultant, true)
	svc := NewAuthService(repo, token.NewService("secret"), zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "ana@example.com", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmailNotLeaked(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewService("secret"), zerolog.Nop())

	// Unknown accounts must be indistinguishable from wrong passwords.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_InactiveAccount(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "gone@example.com", "goodpass1", domain.RoleClient, false)
	svc := NewAuthService(repo, token.NewService("secret"), zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "gone@example.com", "goodpass1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for inactive account, got %v", err)
	}
}

func TestAuthService_Login_TrimsPassword(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "ana@example.com", "goodpass1", domain.RoleConsultant, true)
	svc := NewAuthService(repo, token.NewService("secret"), zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "ana@example.com", "  goodpass1  "); err != nil {
		t.Fatalf("padded password should verify after trimming, got %v", err)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewService("secret"), zerolog.Nop())

	if _, _, err := svc.Login(context.Background(), "", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "a@b.com", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_ChangePassword_Success(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "ana@example.com", "oldpass12", domain.RoleConsultant, true)
	svc := NewAuthService(repo, token.NewService("secret"), zerolog.Nop())

	if err := svc.ChangePassword(context.Background(), user.ID, "oldpass12", "newpass34"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	stored := repo.users[user.ID]
	if !password.Verify("newpass34", stored.PasswordHash) {
		t.Fatalf("new password does not verify against rotated hash")
	}
	if password.Verify("oldpass12", stored.PasswordHash) {
		t.Fatalf("old password still verifies after rotation")
	}
}

func TestAuthService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := newStubUserRepo()
	user := seedUser(t, repo, "ana@example.com", "oldpass12", domain.RoleConsultant, true)
	svc := NewAuthService(repo, token.NewService("secret"), zerolog.Nop())

	err := svc.ChangePassword(context.Background(), user.ID, "wrongpass", "newpass34")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if !password.Verify("oldpass12", repo.users[user.ID].PasswordHash) {
		t.Fatalf("credential must be untouched after a rejected rotation")
	}
}

func TestAuthService_ChangePassword_UserVanished(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewAuthService(repo, token.NewService("secret"), zerolog.Nop())

	if err := svc.ChangePassword(context.Background(), 404, "a", "b"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
