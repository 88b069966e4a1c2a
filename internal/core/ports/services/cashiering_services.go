package services

import (
	"context"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CashieringReaderSvc exposes the derived financial read models.
type CashieringReaderSvc interface {
	// LoadSnapshot fetches the four input collections. Collections other
	// than cases degrade to empty on load failure; only a cases failure is
	// an error.
	LoadSnapshot(ctx context.Context) (domain.Snapshot, error)

	// BankAccountRows returns the bank accounts table rows across all cases.
	BankAccountRows(ctx context.Context) ([]domain.BankAccountRow, error)

	// BondingRows returns the per-case aggregates backing the bonding view.
	BondingRows(ctx context.Context) ([]domain.CaseAggregate, error)

	// CaseTypeSummaries returns the funds roll-up grouped by case type.
	CaseTypeSummaries(ctx context.Context) (map[domain.CaseType]domain.CaseTypeSummary, error)

	// VATControlBalance returns the case's net VAT control position.
	VATControlBalance(ctx context.Context, caseID string) (decimal.Decimal, error)
}

// CaseFundsRecomputeSvc recomputes and persists a case's funds snapshot.
// Implemented by the cashiering service and consumed by the background
// worker; direct callers treat failures as best-effort.
type CaseFundsRecomputeSvc interface {
	RecomputeCaseFunds(ctx context.Context, caseID string) error
}

// FundsRecomputeQueuer enqueues a background funds recompute for a case.
// A no-op implementation is used when no queue backend is configured.
type FundsRecomputeQueuer interface {
	EnqueueRecompute(ctx context.Context, caseID string) error
}

// CashieringSvcFacade combines the cashiering service interfaces
type CashieringSvcFacade interface {
	CashieringReaderSvc
	CaseFundsRecomputeSvc
}
