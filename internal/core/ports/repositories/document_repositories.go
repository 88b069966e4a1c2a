package repositories

import (
	"context"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
)

// DocumentReader defines read operations for document data
type DocumentReader interface {
	// FindDocumentByID retrieves a specific document.
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// FindVoucherByTransactionID retrieves the voucher generated for a
	// transaction, if any; approval uses this to stay idempotent.
	FindVoucherByTransactionID(ctx context.Context, transactionID string) (*domain.Document, error)

	// ListDocumentsByCase retrieves a case's documents, newest first.
	ListDocumentsByCase(ctx context.Context, caseID string) ([]domain.Document, error)
}

// DocumentWriter defines write operations for document data
type DocumentWriter interface {
	// SaveDocument persists a new document.
	SaveDocument(ctx context.Context, doc domain.Document) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
