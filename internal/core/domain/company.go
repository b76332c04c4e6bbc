package domain

import (
	"errors"
	"time"
)

var ErrCompanyNotFound = errors.New("company not found")

// Company is an organization whose compliance obligations are managed here.
// Client users belong to exactly one company; consultants and administrators
// belong to none.
type Company struct {
	ID        int64     `json:"id"`
	Name      string    `json:"nombre"`
	TaxID     string    `json:"rfc"`
	CreatedAt time.Time `json:"created_at"`
}
