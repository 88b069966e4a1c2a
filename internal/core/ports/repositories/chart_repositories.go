package repositories

import (
	"context"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
)

// ChartReader defines read operations for chart of accounts data
type ChartReader interface {
	// FindChartOfAccountByCode retrieves a chart entry by its account code.
	FindChartOfAccountByCode(ctx context.Context, accountCode string) (*domain.ChartOfAccount, error)

	// ListChartOfAccounts retrieves the full chart of accounts.
	ListChartOfAccounts(ctx context.Context) ([]domain.ChartOfAccount, error)
}

// ChartWriter defines write operations for chart of accounts data
type ChartWriter interface {
	// SaveChartOfAccount persists a new chart entry.
	SaveChartOfAccount(ctx context.Context, entry domain.ChartOfAccount) error

	// UpdateChartOfAccount updates an existing chart entry.
	UpdateChartOfAccount(ctx context.Context, entry domain.ChartOfAccount) error

	// DeactivateChartOfAccount marks a chart entry as inactive.
	DeactivateChartOfAccount(ctx context.Context, accountCode string, userID string) error
}

// ChartRepositoryFacade combines all chart-related repository interfaces
type ChartRepositoryFacade interface {
	ChartReader
	ChartWriter
}
