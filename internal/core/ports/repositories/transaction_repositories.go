package repositories

import (
	"context"
	"time"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
)

// TransactionReader defines read operations for transaction data
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its unique identifier.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByCase retrieves a token-paginated list of a case's
	// transactions, newest first.
	ListTransactionsByCase(ctx context.Context, caseID string, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// ListAllTransactions retrieves every transaction; used to build the
	// cashiering snapshot.
	ListAllTransactions(ctx context.Context) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transaction data
type TransactionWriter interface {
	// SaveTransaction persists a new transaction.
	SaveTransaction(ctx context.Context, txn domain.Transaction) error

	// SaveTransactions persists a batch of transactions atomically; used by
	// the statement import.
	SaveTransactions(ctx context.Context, txns []domain.Transaction) error

	// UpdateTransaction updates an existing transaction's details.
	UpdateTransaction(ctx context.Context, txn domain.Transaction) error

	// UpdateTransactionApproval updates only the status and approval stage
	// columns; each approval workflow step persists its progress through this.
	UpdateTransactionApproval(ctx context.Context, transactionID string, status domain.TransactionStatus, stage domain.ApprovalStage, updatedBy string, now time.Time) error

	// DeleteTransaction removes a transaction.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
