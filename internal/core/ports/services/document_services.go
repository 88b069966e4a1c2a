package services

import (
	"context"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
)

// DocumentSvcFacade defines operations for case documents and vouchers
type DocumentSvcFacade interface {
	// CreateVoucher renders and stores the printable voucher for an approved
	// transaction. Calling it again for the same transaction returns the
	// existing voucher.
	CreateVoucher(ctx context.Context, c domain.Case, txn domain.Transaction, userID string) (*domain.Document, error)

	// CreateFileNote stores a free-form file note against a case.
	CreateFileNote(ctx context.Context, caseID string, req dto.CreateFileNoteRequest, userID string) (*domain.Document, error)

	// GetDocumentByID retrieves a specific document.
	GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)

	// ListDocumentsByCase retrieves a case's documents, newest first.
	ListDocumentsByCase(ctx context.Context, caseID string) ([]domain.Document, error)
}
