package services

import (
	"context"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
)

// ChartSvcFacade defines operations for managing the chart of accounts
type ChartSvcFacade interface {
	// CreateChartOfAccount persists a new chart entry.
	CreateChartOfAccount(ctx context.Context, req dto.CreateChartAccountRequest, userID string) (*domain.ChartOfAccount, error)

	// GetChartOfAccountByCode retrieves a chart entry by its account code.
	GetChartOfAccountByCode(ctx context.Context, accountCode string) (*domain.ChartOfAccount, error)

	// ListChartOfAccounts retrieves the full chart of accounts.
	ListChartOfAccounts(ctx context.Context) ([]domain.ChartOfAccount, error)

	// UpdateChartOfAccount updates a non-system chart entry.
	UpdateChartOfAccount(ctx context.Context, accountCode string, req dto.UpdateChartAccountRequest, userID string) (*domain.ChartOfAccount, error)

	// DeactivateChartOfAccount marks a non-system chart entry inactive.
	DeactivateChartOfAccount(ctx context.Context, accountCode string, userID string) error

	// EnsureDefaultChart seeds the default insolvency chart on first start.
	EnsureDefaultChart(ctx context.Context) error
}
