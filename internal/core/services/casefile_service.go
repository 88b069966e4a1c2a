package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PracPilot/insolvency_mgmt_app/internal/apperrors"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portsrepo "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
)

// caseService provides core case management operations.
type caseService struct {
	BaseService
	caseRepo portsrepo.CaseRepositoryFacade
}

// NewCaseService creates a new CaseService.
func NewCaseService(caseRepo portsrepo.CaseRepositoryFacade) portssvc.CaseSvcFacade {
	return &caseService{caseRepo: caseRepo}
}

var _ portssvc.CaseSvcFacade = (*caseService)(nil)

func (s *caseService) CreateCase(ctx context.Context, req dto.CreateCaseRequest, creatorUserID string) (*domain.Case, error) {
	now := time.Now()

	c := domain.Case{
		CaseID:                uuid.NewString(),
		CompanyName:           req.CompanyName,
		CompanyNumber:         req.CompanyNumber,
		CaseType:              req.CaseType,
		InitialBondValue:      decimal.Zero,
		SoaETR:                decimal.Zero,
		TotalFundsHeld:        decimal.Zero,
		TotalFundsDistributed: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}
	if req.InitialBondValue != nil {
		c.InitialBondValue = *req.InitialBondValue
	}
	if req.SoaETR != nil {
		c.SoaETR = *req.SoaETR
	}

	if err := s.caseRepo.SaveCase(ctx, c); err != nil {
		s.LogError(ctx, err, "failed to create case", slog.String("company_name", req.CompanyName))
		return nil, fmt.Errorf("failed to create case: %w", err)
	}

	s.LogInfo(ctx, "case created", slog.String("case_id", c.CaseID), slog.String("case_type", string(c.CaseType)))
	return &c, nil
}

func (s *caseService) GetCaseByID(ctx context.Context, caseID string) (*domain.Case, error) {
	c, err := s.caseRepo.FindCaseByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to get case %s: %w", caseID, err)
	}
	return c, nil
}

func (s *caseService) ListCases(ctx context.Context, limit int, offset int) ([]domain.Case, error) {
	cases, err := s.caseRepo.ListCases(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

func (s *caseService) UpdateCase(ctx context.Context, caseID string, req dto.UpdateCaseRequest, userID string) (*domain.Case, error) {
	c, err := s.caseRepo.FindCaseByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find case %s for update: %w", caseID, err)
	}

	if req.CompanyName != nil {
		c.CompanyName = *req.CompanyName
	}
	if req.CompanyNumber != nil {
		c.CompanyNumber = *req.CompanyNumber
	}
	if req.CaseType != nil {
		c.CaseType = *req.CaseType
	}
	if req.InitialBondValue != nil {
		c.InitialBondValue = *req.InitialBondValue
	}
	if req.SoaETR != nil {
		c.SoaETR = *req.SoaETR
	}
	s.touch(c, userID)

	if err := s.caseRepo.UpdateCase(ctx, *c); err != nil {
		s.LogError(ctx, err, "failed to update case", slog.String("case_id", caseID))
		return nil, fmt.Errorf("failed to update case %s: %w", caseID, err)
	}
	return c, nil
}

func (s *caseService) SetBankDetails(ctx context.Context, caseID string, slot domain.TargetAccount, req dto.BankDetailsRequest, userID string) (*domain.Case, error) {
	if slot != domain.TargetPrimary && slot != domain.TargetSecondary {
		// A case never carries more than two bank accounts.
		return nil, fmt.Errorf("%w: unknown bank account slot %q", apperrors.ErrValidation, slot)
	}

	c, err := s.caseRepo.FindCaseByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find case %s for bank details: %w", caseID, err)
	}

	details := &domain.BankDetails{
		AccountName:   req.AccountName,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		SortCode:      req.SortCode,
		AccountType:   req.AccountType,
		AccountCode:   req.AccountCode,
	}
	if slot == domain.TargetPrimary {
		c.BankDetails = details
	} else {
		c.SecondaryBankDetails = details
	}
	s.touch(c, userID)

	if err := s.caseRepo.UpdateCase(ctx, *c); err != nil {
		s.LogError(ctx, err, "failed to set bank details", slog.String("case_id", caseID), slog.String("slot", string(slot)))
		return nil, fmt.Errorf("failed to set bank details on case %s: %w", caseID, err)
	}

	s.LogInfo(ctx, "bank details configured", slog.String("case_id", caseID), slog.String("slot", string(slot)))
	return c, nil
}

func (s *caseService) AddBondIncrease(ctx context.Context, caseID string, req dto.BondIncreaseRequest, userID string) (*domain.Case, error) {
	if req.IncreaseValue.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: bond increase must be positive", apperrors.ErrValidation)
	}

	c, err := s.caseRepo.FindCaseByID(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find case %s for bond increase: %w", caseID, err)
	}

	c.BondIncreases = append(c.BondIncreases, domain.BondIncrease{
		IncreaseValue: req.IncreaseValue,
		Reason:        req.Reason,
	})
	s.touch(c, userID)

	if err := s.caseRepo.UpdateCase(ctx, *c); err != nil {
		s.LogError(ctx, err, "failed to add bond increase", slog.String("case_id", caseID))
		return nil, fmt.Errorf("failed to add bond increase to case %s: %w", caseID, err)
	}

	s.LogInfo(ctx, "bond increase recorded",
		slog.String("case_id", caseID),
		slog.String("increase_value", req.IncreaseValue.String()))
	return c, nil
}

func (s *caseService) touch(c *domain.Case, userID string) {
	c.LastUpdatedAt = time.Now()
	c.LastUpdatedBy = userID
	c.Version++
}
