package domain

import (
	"errors"
	"time"
)

// Role values form a closed set. The wire vocabulary is Spanish and is shared
// with the stored representation.
const (
	RoleAdmin      = "administrador"
	RoleConsultant = "consultor"
	RoleClient     = "cliente"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleConsultant, RoleClient:
		return true
	}
	return false
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrTokenInvalid = errors.New("invalid or expired token")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrNoFieldsProvided = errors.New("no fields provided")
var ErrInvalidRole = errors.New("invalid role")
var ErrRoleCompanyMismatch = errors.New("role and company reference are inconsistent")
var ErrTooManyAttempts = errors.New("too many login attempts")

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	FullName     string    `json:"nombre_completo"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"rol"`
	CompanyID    *int64    `json:"empresa_id,omitempty"`
	Active       bool      `json:"activo"`
	CreatedAt    time.Time `json:"created_at"`
	LastModified time.Time `json:"last_modified"`
}
