package services

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/PracPilot/insolvency_mgmt_app/internal/apperrors"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portsrepo "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
	"github.com/PracPilot/insolvency_mgmt_app/internal/utils"
)

// voucherTemplate renders the printable record issued when a transaction is
// approved. Kept deliberately plain so it prints cleanly.
var voucherTemplate = template.Must(template.New("voucher").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body>
<h1>{{.VoucherKind}} Voucher</h1>
<table>
<tr><td>Case</td><td>{{.CompanyName}} ({{.CaseType}})</td></tr>
<tr><td>Transaction</td><td>{{.TransactionID}}</td></tr>
<tr><td>Date</td><td>{{.Date}}</td></tr>
<tr><td>Payee</td><td>{{.Payee}}</td></tr>
<tr><td>Description</td><td>{{.Description}}</td></tr>
<tr><td>Account</td><td>{{.AccountCode}}</td></tr>
<tr><td>Net</td><td>{{.Net}}</td></tr>
<tr><td>VAT</td><td>{{.VAT}}</td></tr>
<tr><td>Gross</td><td>{{.Gross}}</td></tr>
</table>
<p>Approved by {{.ApprovedBy}} on {{.ApprovedAt}}</p>
</body>
</html>`))

type voucherData struct {
	Title         string
	VoucherKind   string
	CompanyName   string
	CaseType      domain.CaseType
	TransactionID string
	Date          string
	Payee         string
	Description   string
	AccountCode   string
	Net           string
	VAT           string
	Gross         string
	ApprovedBy    string
	ApprovedAt    string
}

// documentService manages case documents and the vouchers generated by the
// approval workflow.
type documentService struct {
	BaseService
	docRepo portsrepo.DocumentRepositoryFacade
}

// NewDocumentService creates a new DocumentService.
func NewDocumentService(docRepo portsrepo.DocumentRepositoryFacade) portssvc.DocumentSvcFacade {
	return &documentService{docRepo: docRepo}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// CreateVoucher renders and stores the voucher for an approved transaction.
// Calling it again for the same transaction returns the existing voucher, so
// a resumed approval never issues a duplicate.
func (s *documentService) CreateVoucher(ctx context.Context, c domain.Case, txn domain.Transaction, userID string) (*domain.Document, error) {
	existing, err := s.docRepo.FindVoucherByTransactionID(ctx, txn.TransactionID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check for existing voucher: %w", err)
	}
	if existing != nil {
		s.LogDebug(ctx, "voucher already issued", slog.String("transaction_id", txn.TransactionID))
		return existing, nil
	}

	kind := "Receipt"
	if txn.TransactionType == domain.Payment {
		kind = "Payment"
	}
	now := time.Now()
	title := fmt.Sprintf("%s Voucher - %s - %s", kind, c.CompanyName, now.Format("02 Jan 2006"))

	data := voucherData{
		Title:         title,
		VoucherKind:   kind,
		CompanyName:   c.CompanyName,
		CaseType:      c.CaseType,
		TransactionID: txn.TransactionID,
		Date:          now.Format("02 January 2006"),
		Payee:         txn.Payee,
		Description:   txn.Description,
		AccountCode:   txn.AccountCode,
		Net:           utils.FormatMoney(txn.NetAmount),
		VAT:           utils.FormatMoney(txn.VATAmount),
		Gross:         utils.FormatMoney(txn.Amount),
		ApprovedBy:    userID,
		ApprovedAt:    now.Format("02 January 2006 15:04"),
	}

	var sb strings.Builder
	if err := voucherTemplate.Execute(&sb, data); err != nil {
		return nil, fmt.Errorf("failed to render voucher for transaction %s: %w", txn.TransactionID, err)
	}

	doc := domain.Document{
		DocumentID:    uuid.NewString(),
		CaseID:        c.CaseID,
		TransactionID: txn.TransactionID,
		DocumentType:  domain.DocumentTypeVoucher,
		Title:         title,
		ContentHTML:   sb.String(),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}

	if err := s.docRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "failed to save voucher", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save voucher: %w", err)
	}

	s.LogInfo(ctx, "voucher issued",
		slog.String("document_id", doc.DocumentID),
		slog.String("transaction_id", txn.TransactionID))
	return &doc, nil
}

func (s *documentService) CreateFileNote(ctx context.Context, caseID string, req dto.CreateFileNoteRequest, userID string) (*domain.Document, error) {
	now := time.Now()
	doc := domain.Document{
		DocumentID:   uuid.NewString(),
		CaseID:       caseID,
		DocumentType: domain.DocumentTypeFileNote,
		Title:        req.Title,
		ContentHTML:  template.HTMLEscapeString(req.Content),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
			Version:       1,
		},
	}

	if err := s.docRepo.SaveDocument(ctx, doc); err != nil {
		s.LogError(ctx, err, "failed to save file note", slog.String("case_id", caseID))
		return nil, fmt.Errorf("failed to save file note: %w", err)
	}
	return &doc, nil
}

func (s *documentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.docRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document %s: %w", documentID, err)
	}
	return doc, nil
}

func (s *documentService) ListDocumentsByCase(ctx context.Context, caseID string) ([]domain.Document, error) {
	docs, err := s.docRepo.ListDocumentsByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents for case %s: %w", caseID, err)
	}
	return docs, nil
}
