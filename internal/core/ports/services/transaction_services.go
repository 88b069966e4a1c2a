package services

import (
	"context"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
)

// TransactionReaderSvc defines read operations for transaction data
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactionsByCase retrieves a token-paginated list of a case's transactions.
	ListTransactionsByCase(ctx context.Context, caseID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)
}

// TransactionWriterSvc defines write operations for transaction data
type TransactionWriterSvc interface {
	// CreateTransaction persists a new draft or pending transaction.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error)

	// UpdateTransaction updates a transaction that has not been approved yet.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error)

	// DeleteTransaction removes an unapproved transaction.
	DeleteTransaction(ctx context.Context, transactionID string, userID string) error

	// ImportStatement bulk-creates draft transactions from a column-mapped
	// bank statement CSV. Malformed rows are skipped and reported, never
	// fatal to the batch.
	ImportStatement(ctx context.Context, caseID string, req dto.StatementImportRequest, userID string) (*dto.StatementImportResult, error)
}

// TransactionApproverSvc runs the approval workflow
type TransactionApproverSvc interface {
	// ApproveTransaction runs the staged approval workflow: set status, issue
	// the voucher, post the double entry, refresh the case funds snapshot.
	// A failed step surfaces its error; re-approving resumes after the last
	// recorded stage.
	ApproveTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)

	// RejectTransaction marks a pending transaction rejected.
	RejectTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction-related service interfaces
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionApproverSvc
}
