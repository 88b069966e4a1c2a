package services

import (
	"context"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
)

// LedgerSvc posts and reads the double-entry ledger behind transactions.
type LedgerSvc interface {
	// PostTransaction builds and persists the balanced entry set for an
	// approved transaction. Posting twice for the same transaction returns
	// the existing entries.
	PostTransaction(ctx context.Context, c domain.Case, txn domain.Transaction, userID string) ([]domain.AccountingEntry, error)

	// UnpostTransaction removes the entries posted for a transaction.
	UnpostTransaction(ctx context.Context, transactionID string) error

	// ListEntriesByCase retrieves every ledger entry for a case.
	ListEntriesByCase(ctx context.Context, caseID string) ([]domain.AccountingEntry, error)

	// ListEntriesByTransaction retrieves the entries posted for one transaction.
	ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.AccountingEntry, error)
}
