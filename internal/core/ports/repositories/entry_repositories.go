package repositories

import (
	"context"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
)

// EntryReader defines read operations for accounting entry data
type EntryReader interface {
	// ListEntriesByCase retrieves every ledger entry for a case.
	ListEntriesByCase(ctx context.Context, caseID string) ([]domain.AccountingEntry, error)

	// ListEntriesByTransaction retrieves the entries posted for one transaction.
	ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.AccountingEntry, error)

	// ListAllEntries retrieves every entry; used to build the cashiering snapshot.
	ListAllEntries(ctx context.Context) ([]domain.AccountingEntry, error)
}

// EntryWriter defines write operations for accounting entry data
type EntryWriter interface {
	// SaveEntries persists a balanced set of entries atomically.
	SaveEntries(ctx context.Context, entries []domain.AccountingEntry) error

	// DeleteEntriesByTransaction removes the entries posted for one transaction.
	DeleteEntriesByTransaction(ctx context.Context, transactionID string) error
}

// EntryRepositoryFacade combines all entry-related repository interfaces
type EntryRepositoryFacade interface {
	EntryReader
	EntryWriter
}
