package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PracPilot/insolvency_mgmt_app/internal/apperrors"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portsrepo "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
)

var (
	ErrEntryAmountNotPositive = errors.New("transaction amount must be positive to post")
	ErrVATExceedsGross        = errors.New("vat amount cannot exceed the gross amount")
)

// bankControlFallbackCode is posted against when the case's target bank
// account has no chart code configured.
const bankControlFallbackCode = "B100"

// ledgerService builds and persists the double-entry postings behind
// approved transactions.
type ledgerService struct {
	BaseService
	entryRepo      portsrepo.EntryRepositoryFacade
	vatControlCode string
}

// LedgerServiceOption configures a ledgerService.
type LedgerServiceOption func(*ledgerService)

// WithVATControlCode overrides the chart code the VAT leg posts against.
func WithVATControlCode(code string) LedgerServiceOption {
	return func(s *ledgerService) {
		if code != "" {
			s.vatControlCode = code
		}
	}
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(entryRepo portsrepo.EntryRepositoryFacade, opts ...LedgerServiceOption) portssvc.LedgerSvc {
	s := &ledgerService{
		entryRepo:      entryRepo,
		vatControlCode: domain.DefaultVATControlCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.LedgerSvc = (*ledgerService)(nil)

// bankControlCode resolves the chart code the cash leg posts against: the
// target bank account's configured code, or the estate bank control account.
func (s *ledgerService) bankControlCode(c domain.Case, txn domain.Transaction) string {
	var details *domain.BankDetails
	switch txn.TargetAccount {
	case domain.TargetSecondary:
		details = c.SecondaryBankDetails
	default:
		details = c.BankDetails
	}
	if details.IsConfigured() && details.AccountCode != "" {
		return details.AccountCode
	}
	return bankControlFallbackCode
}

// buildEntries produces the balanced entry set for a transaction. A receipt
// debits the bank control account and credits the analysis account (net) and
// VAT control (vat); a payment is the mirror image.
func (s *ledgerService) buildEntries(c domain.Case, txn domain.Transaction, userID string, now time.Time) ([]domain.AccountingEntry, error) {
	zero := decimal.Zero
	if txn.Amount.LessThanOrEqual(zero) {
		return nil, fmt.Errorf("%w: transaction %s has amount %s", ErrEntryAmountNotPositive, txn.TransactionID, txn.Amount.String())
	}
	if txn.VATAmount.IsNegative() || txn.VATAmount.GreaterThan(txn.Amount) {
		return nil, fmt.Errorf("%w: transaction %s has vat %s against gross %s", ErrVATExceedsGross, txn.TransactionID, txn.VATAmount.String(), txn.Amount.String())
	}

	net := txn.Amount.Sub(txn.VATAmount)
	bankCode := s.bankControlCode(c, txn)
	isReceipt := txn.TransactionType == domain.Receipt

	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
		Version:       1,
	}

	newEntry := func(accountCode string, debit, credit decimal.Decimal) domain.AccountingEntry {
		return domain.AccountingEntry{
			EntryID:       uuid.NewString(),
			CaseID:        txn.CaseID,
			TransactionID: txn.TransactionID,
			AccountCode:   accountCode,
			DebitAmount:   debit,
			CreditAmount:  credit,
			EntryDate:     now,
			Description:   txn.Description,
			AuditFields:   audit,
		}
	}

	entries := make([]domain.AccountingEntry, 0, 3)
	if isReceipt {
		entries = append(entries, newEntry(bankCode, txn.Amount, zero))
		entries = append(entries, newEntry(txn.AccountCode, zero, net))
		if txn.VATAmount.IsPositive() {
			entries = append(entries, newEntry(s.vatControlCode, zero, txn.VATAmount))
		}
	} else {
		entries = append(entries, newEntry(bankCode, zero, txn.Amount))
		entries = append(entries, newEntry(txn.AccountCode, net, zero))
		if txn.VATAmount.IsPositive() {
			entries = append(entries, newEntry(s.vatControlCode, txn.VATAmount, zero))
		}
	}

	if err := validateEntryBalance(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// validateEntryBalance checks that an entry set's debits equal its credits.
func validateEntryBalance(entries []domain.AccountingEntry) error {
	debits := decimal.Zero
	credits := decimal.Zero
	for _, e := range entries {
		debits = debits.Add(e.DebitAmount)
		credits = credits.Add(e.CreditAmount)
	}
	if !debits.Equal(credits) {
		return fmt.Errorf("%w: debits sum is %s and credits sum is %s",
			apperrors.ErrUnbalancedEntry, debits.String(), credits.String())
	}
	return nil
}

func (s *ledgerService) PostTransaction(ctx context.Context, c domain.Case, txn domain.Transaction, userID string) ([]domain.AccountingEntry, error) {
	// Posting is idempotent so a resumed approval never double-posts.
	existing, err := s.entryRepo.ListEntriesByTransaction(ctx, txn.TransactionID)
	if err != nil {
		s.LogError(ctx, err, "failed to check for existing entries", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to check for existing entries: %w", err)
	}
	if len(existing) > 0 {
		s.LogDebug(ctx, "transaction already posted", slog.String("transaction_id", txn.TransactionID))
		return existing, nil
	}

	entries, err := s.buildEntries(c, txn, userID, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.SaveEntries(ctx, entries); err != nil {
		s.LogError(ctx, err, "failed to save ledger entries", slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save ledger entries: %w", err)
	}

	s.LogInfo(ctx, "posted transaction to ledger",
		slog.String("transaction_id", txn.TransactionID),
		slog.Int("entry_count", len(entries)))
	return entries, nil
}

func (s *ledgerService) UnpostTransaction(ctx context.Context, transactionID string) error {
	if err := s.entryRepo.DeleteEntriesByTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "failed to remove ledger entries", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to remove ledger entries: %w", err)
	}
	return nil
}

func (s *ledgerService) ListEntriesByCase(ctx context.Context, caseID string) ([]domain.AccountingEntry, error) {
	entries, err := s.entryRepo.ListEntriesByCase(ctx, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for case %s: %w", caseID, err)
	}
	return entries, nil
}

func (s *ledgerService) ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.AccountingEntry, error) {
	entries, err := s.entryRepo.ListEntriesByTransaction(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for transaction %s: %w", transactionID, err)
	}
	return entries, nil
}
