package services

import (
	"context"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
)

// CaseReaderSvc defines read operations for case data
type CaseReaderSvc interface {
	// GetCaseByID retrieves a specific case by its unique identifier.
	GetCaseByID(ctx context.Context, caseID string) (*domain.Case, error)

	// ListCases retrieves a paginated list of cases.
	ListCases(ctx context.Context, limit int, offset int) ([]domain.Case, error)
}

// CaseWriterSvc defines write operations for case data
type CaseWriterSvc interface {
	// CreateCase persists a new case.
	CreateCase(ctx context.Context, req dto.CreateCaseRequest, creatorUserID string) (*domain.Case, error)

	// UpdateCase updates an existing case's details.
	UpdateCase(ctx context.Context, caseID string, req dto.UpdateCaseRequest, userID string) (*domain.Case, error)

	// SetBankDetails configures one of the case's two bank accounts. Any slot
	// other than primary or secondary is rejected: a case never carries a
	// third account.
	SetBankDetails(ctx context.Context, caseID string, slot domain.TargetAccount, req dto.BankDetailsRequest, userID string) (*domain.Case, error)

	// AddBondIncrease appends a bond increase to the case.
	AddBondIncrease(ctx context.Context, caseID string, req dto.BondIncreaseRequest, userID string) (*domain.Case, error)
}

// CaseSvcFacade combines all case-related service interfaces
type CaseSvcFacade interface {
	CaseReaderSvc
	CaseWriterSvc
}
