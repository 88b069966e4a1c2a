package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/PracPilot/insolvency_mgmt_app/internal/apperrors"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portsrepo "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
)

var ErrSystemAccountImmutable = errors.New("system chart accounts cannot be modified")

// seedUserID marks audit fields on rows created by the startup seed rather
// than a real user.
const seedUserID = "system"

// chartService manages the practice's chart of accounts.
type chartService struct {
	BaseService
	chartRepo portsrepo.ChartRepositoryFacade
}

// NewChartService creates a new ChartService.
func NewChartService(chartRepo portsrepo.ChartRepositoryFacade) portssvc.ChartSvcFacade {
	return &chartService{chartRepo: chartRepo}
}

var _ portssvc.ChartSvcFacade = (*chartService)(nil)

func (s *chartService) CreateChartOfAccount(ctx context.Context, req dto.CreateChartAccountRequest, userID string) (*domain.ChartOfAccount, error) {
	existing, err := s.chartRepo.FindChartOfAccountByCode(ctx, req.AccountCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing account code %s: %w", req.AccountCode, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: account code %s", apperrors.ErrDuplicate, req.AccountCode)
	}

	now := time.Now()
	entry := domain.ChartOfAccount{
		AccountCode:  req.AccountCode,
		Name:         req.Name,
		AccountGroup: req.AccountGroup,
		IsSystem:     false,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}

	if err := s.chartRepo.SaveChartOfAccount(ctx, entry); err != nil {
		s.LogError(ctx, err, "failed to create chart account", slog.String("account_code", req.AccountCode))
		return nil, fmt.Errorf("failed to create chart account: %w", err)
	}

	s.LogInfo(ctx, "chart account created", slog.String("account_code", entry.AccountCode))
	return &entry, nil
}

func (s *chartService) GetChartOfAccountByCode(ctx context.Context, accountCode string) (*domain.ChartOfAccount, error) {
	entry, err := s.chartRepo.FindChartOfAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get chart account %s: %w", accountCode, err)
	}
	return entry, nil
}

func (s *chartService) ListChartOfAccounts(ctx context.Context) ([]domain.ChartOfAccount, error) {
	entries, err := s.chartRepo.ListChartOfAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list chart of accounts: %w", err)
	}
	return entries, nil
}

func (s *chartService) UpdateChartOfAccount(ctx context.Context, accountCode string, req dto.UpdateChartAccountRequest, userID string) (*domain.ChartOfAccount, error) {
	entry, err := s.chartRepo.FindChartOfAccountByCode(ctx, accountCode)
	if err != nil {
		return nil, fmt.Errorf("failed to find chart account %s for update: %w", accountCode, err)
	}
	if entry.IsSystem {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrSystemAccountImmutable.Error())
	}

	if req.Name != nil {
		entry.Name = *req.Name
	}
	if req.AccountGroup != nil {
		entry.AccountGroup = *req.AccountGroup
	}
	if req.IsActive != nil {
		entry.IsActive = *req.IsActive
	}
	entry.LastUpdatedAt = time.Now()
	entry.LastUpdatedBy = userID
	entry.Version++

	if err := s.chartRepo.UpdateChartOfAccount(ctx, *entry); err != nil {
		s.LogError(ctx, err, "failed to update chart account", slog.String("account_code", accountCode))
		return nil, fmt.Errorf("failed to update chart account %s: %w", accountCode, err)
	}
	return entry, nil
}

func (s *chartService) DeactivateChartOfAccount(ctx context.Context, accountCode string, userID string) error {
	entry, err := s.chartRepo.FindChartOfAccountByCode(ctx, accountCode)
	if err != nil {
		return fmt.Errorf("failed to find chart account %s for deactivation: %w", accountCode, err)
	}
	if entry.IsSystem {
		return fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrSystemAccountImmutable.Error())
	}

	if err := s.chartRepo.DeactivateChartOfAccount(ctx, accountCode, userID); err != nil {
		s.LogError(ctx, err, "failed to deactivate chart account", slog.String("account_code", accountCode))
		return fmt.Errorf("failed to deactivate chart account %s: %w", accountCode, err)
	}

	s.LogInfo(ctx, "chart account deactivated", slog.String("account_code", accountCode))
	return nil
}

// EnsureDefaultChart seeds the default insolvency chart on first start.
// Codes that already exist are left untouched.
func (s *chartService) EnsureDefaultChart(ctx context.Context) error {
	now := time.Now()
	for _, seed := range domain.DefaultChart {
		existing, err := s.chartRepo.FindChartOfAccountByCode(ctx, seed.AccountCode)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("failed to check chart seed %s: %w", seed.AccountCode, err)
		}
		if existing != nil {
			continue
		}

		entry := seed
		entry.IsActive = true
		entry.AuditFields = domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     seedUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: seedUserID,
			Version:       1,
		}
		if err := s.chartRepo.SaveChartOfAccount(ctx, entry); err != nil {
			return fmt.Errorf("failed to seed chart account %s: %w", seed.AccountCode, err)
		}
		s.LogInfo(ctx, "seeded chart account", slog.String("account_code", entry.AccountCode))
	}
	return nil
}
