package ports

import (
	"context"

	"github.com/cumplia/compliance-api/internal/core/domain"
)

// CompanyRepository defines the persistence interface for companies.
type CompanyRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
}
