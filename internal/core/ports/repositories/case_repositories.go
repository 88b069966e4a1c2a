package repositories

import (
	"context"
	"time"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CaseReader defines read operations for case data
type CaseReader interface {
	// FindCaseByID retrieves a specific case by its unique identifier.
	FindCaseByID(ctx context.Context, caseID string) (*domain.Case, error)

	// ListCases retrieves a paginated list of cases.
	ListCases(ctx context.Context, limit int, offset int) ([]domain.Case, error)
}

// CaseWriter defines write operations for case data
type CaseWriter interface {
	// SaveCase persists a new case.
	SaveCase(ctx context.Context, c domain.Case) error

	// UpdateCase updates an existing case's details.
	UpdateCase(ctx context.Context, c domain.Case) error

	// UpdateCaseFunds writes the denormalized funds snapshot back onto the
	// case row without touching any other column.
	UpdateCaseFunds(ctx context.Context, caseID string, held, distributed decimal.Decimal, updatedBy string, now time.Time) error
}

// CaseRepositoryFacade combines all case-related repository interfaces
type CaseRepositoryFacade interface {
	CaseReader
	CaseWriter
}
