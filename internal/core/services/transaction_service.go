package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/PracPilot/insolvency_mgmt_app/internal/apperrors"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portsrepo "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
)

var (
	ErrAmountNotPositive    = errors.New("transaction amount must be positive")
	ErrVATNegative          = errors.New("vat amount cannot be negative")
	ErrVATAboveGross        = errors.New("vat amount cannot exceed the gross amount")
	ErrAccountCodeUnknown   = errors.New("account code is not in the chart of accounts")
	ErrAccountCodeInactive  = errors.New("account code is inactive")
	ErrTransactionFinalized = errors.New("transaction has already been approved or rejected")
	ErrNotPendingApproval   = errors.New("transaction is not pending approval")
)

const defaultStatementDateFormat = "02/01/2006"

// stageRank orders the approval workflow stages so a resumed approval can
// skip the steps that already completed.
var stageRank = map[domain.ApprovalStage]int{
	domain.StageNone:          0,
	domain.StageStatusSet:     1,
	domain.StageVoucherIssued: 2,
	domain.StageLedgerPosted:  3,
	domain.StageFundsUpdated:  4,
}

// transactionService provides core transaction operations including the
// staged approval workflow.
type transactionService struct {
	BaseService
	txnRepo     portsrepo.TransactionRepositoryFacade
	caseRepo    portsrepo.CaseRepositoryFacade
	chartRepo   portsrepo.ChartRepositoryFacade
	ledgerSvc   portssvc.LedgerSvc
	documentSvc portssvc.DocumentSvcFacade
	recomputer  portssvc.CaseFundsRecomputeSvc
	queuer      portssvc.FundsRecomputeQueuer
}

// TransactionServiceOption configures a transactionService.
type TransactionServiceOption func(*transactionService)

// WithFundsRecomputeQueuer wires the background queue used to refresh a
// case's funds snapshot after non-approval writes.
func WithFundsRecomputeQueuer(q portssvc.FundsRecomputeQueuer) TransactionServiceOption {
	return func(s *transactionService) {
		s.queuer = q
	}
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(
	txnRepo portsrepo.TransactionRepositoryFacade,
	caseRepo portsrepo.CaseRepositoryFacade,
	chartRepo portsrepo.ChartRepositoryFacade,
	ledgerSvc portssvc.LedgerSvc,
	documentSvc portssvc.DocumentSvcFacade,
	recomputer portssvc.CaseFundsRecomputeSvc,
	opts ...TransactionServiceOption,
) portssvc.TransactionSvcFacade {
	s := &transactionService{
		txnRepo:     txnRepo,
		caseRepo:    caseRepo,
		chartRepo:   chartRepo,
		ledgerSvc:   ledgerSvc,
		documentSvc: documentSvc,
		recomputer:  recomputer,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

// validateAmounts checks the gross/vat pair shared by create and update.
func validateAmounts(amount, vat decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: got %s", ErrAmountNotPositive, amount.String())
	}
	if vat.IsNegative() {
		return fmt.Errorf("%w: got %s", ErrVATNegative, vat.String())
	}
	if vat.GreaterThan(amount) {
		return fmt.Errorf("%w: vat %s against gross %s", ErrVATAboveGross, vat.String(), amount.String())
	}
	return nil
}

// validateAccountCode checks that the code exists and is active in the chart.
func (s *transactionService) validateAccountCode(ctx context.Context, accountCode string) error {
	entry, err := s.chartRepo.FindChartOfAccountByCode(ctx, accountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrAccountCodeUnknown, accountCode)
		}
		return fmt.Errorf("failed to validate account code %s: %w", accountCode, err)
	}
	if !entry.IsActive {
		return fmt.Errorf("%w: %s", ErrAccountCodeInactive, accountCode)
	}
	return nil
}

// enqueueRecompute schedules a best-effort funds snapshot refresh. Failures
// are logged, never surfaced: the snapshot is denormalized data.
func (s *transactionService) enqueueRecompute(ctx context.Context, caseID string) {
	if s.queuer == nil {
		return
	}
	if err := s.queuer.EnqueueRecompute(ctx, caseID); err != nil {
		s.LogWarn(ctx, "failed to enqueue funds recompute", slog.String("case_id", caseID), slog.String("error", err.Error()))
	}
}

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, creatorUserID string) (*domain.Transaction, error) {
	vat := decimal.Zero
	if req.VATAmount != nil {
		vat = *req.VATAmount
	}
	if err := validateAmounts(req.Amount, vat); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if err := s.validateAccountCode(ctx, req.AccountCode); err != nil {
		return nil, err
	}
	if _, err := s.caseRepo.FindCaseByID(ctx, req.CaseID); err != nil {
		return nil, fmt.Errorf("failed to find case %s for transaction: %w", req.CaseID, err)
	}

	target := req.TargetAccount
	if target == "" {
		target = domain.TargetPrimary
	}
	status := domain.StatusDraft
	if req.SubmitForApproval {
		status = domain.StatusPendingApproval
	}

	now := time.Now()
	txn := domain.Transaction{
		TransactionID:   uuid.NewString(),
		CaseID:          req.CaseID,
		TransactionType: req.TransactionType,
		AccountType:     req.AccountType,
		TargetAccount:   target,
		Status:          status,
		Amount:          req.Amount,
		NetAmount:       req.Amount.Sub(vat),
		VATAmount:       vat,
		AccountCode:     req.AccountCode,
		Description:     req.Description,
		Payee:           req.Payee,
		BankRequestDate: req.BankRequestDate,
		ApprovalStage:   domain.StageNone,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
			Version:       1,
		},
	}

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		s.LogError(ctx, err, "failed to create transaction", slog.String("case_id", req.CaseID))
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	s.LogInfo(ctx, "transaction created",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("case_id", txn.CaseID),
		slog.String("status", string(txn.Status)))
	s.enqueueRecompute(ctx, txn.CaseID)
	return &txn, nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

func (s *transactionService) ListTransactionsByCase(ctx context.Context, caseID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = 50
	}
	var nextToken *string
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}

	txns, newToken, err := s.txnRepo.ListTransactionsByCase(ctx, caseID, limit, nextToken)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for case %s: %w", caseID, err)
	}

	token := ""
	if newToken != nil {
		token = *newToken
	}
	resp := dto.ToListTransactionsResponse(txns, token)
	return &resp, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s for update: %w", transactionID, err)
	}
	if txn.Status == domain.StatusApproved || txn.Status == domain.StatusRejected {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrTransactionFinalized.Error())
	}

	if req.Amount != nil {
		txn.Amount = *req.Amount
	}
	if req.VATAmount != nil {
		txn.VATAmount = *req.VATAmount
	}
	if err := validateAmounts(txn.Amount, txn.VATAmount); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	txn.NetAmount = txn.Amount.Sub(txn.VATAmount)

	if req.Description != nil {
		txn.Description = *req.Description
	}
	if req.AccountCode != nil {
		if err := s.validateAccountCode(ctx, *req.AccountCode); err != nil {
			return nil, err
		}
		txn.AccountCode = *req.AccountCode
	}
	if req.AccountType != nil {
		txn.AccountType = *req.AccountType
	}
	if req.TargetAccount != nil {
		txn.TargetAccount = *req.TargetAccount
	}
	if req.Payee != nil {
		txn.Payee = *req.Payee
	}
	if req.BankRequestDate != nil {
		txn.BankRequestDate = req.BankRequestDate
	}
	if req.SubmitForApproval != nil && *req.SubmitForApproval {
		txn.Status = domain.StatusPendingApproval
	}
	txn.LastUpdatedAt = time.Now()
	txn.LastUpdatedBy = userID
	txn.Version++

	if err := s.txnRepo.UpdateTransaction(ctx, *txn); err != nil {
		s.LogError(ctx, err, "failed to update transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to update transaction %s: %w", transactionID, err)
	}

	s.enqueueRecompute(ctx, txn.CaseID)
	return txn, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string, userID string) error {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return fmt.Errorf("failed to find transaction %s for delete: %w", transactionID, err)
	}
	if txn.Status == domain.StatusApproved {
		return fmt.Errorf("%w: approved transactions cannot be deleted", apperrors.ErrConflict)
	}

	if err := s.txnRepo.DeleteTransaction(ctx, transactionID); err != nil {
		s.LogError(ctx, err, "failed to delete transaction", slog.String("transaction_id", transactionID))
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	s.LogInfo(ctx, "transaction deleted", slog.String("transaction_id", transactionID), slog.String("deleted_by", userID))
	s.enqueueRecompute(ctx, txn.CaseID)
	return nil
}

// ApproveTransaction runs the approval workflow as a sequence of persisted
// stages: set status, issue the voucher, post the double entry, refresh the
// case funds snapshot. Each completed step records its stage so a failed
// approval resumes where it stopped instead of repeating work.
func (s *transactionService) ApproveTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s for approval: %w", transactionID, err)
	}
	if txn.Status == domain.StatusRejected {
		return nil, fmt.Errorf("%w: rejected transactions cannot be approved", apperrors.ErrConflict)
	}
	if txn.Status != domain.StatusPendingApproval && txn.Status != domain.StatusApproved {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrConflict, ErrNotPendingApproval.Error())
	}
	if txn.Status == domain.StatusApproved && txn.ApprovalStage == domain.StageFundsUpdated {
		// Fully approved already; nothing to resume.
		return txn, nil
	}

	c, err := s.caseRepo.FindCaseByID(ctx, txn.CaseID)
	if err != nil {
		return nil, fmt.Errorf("failed to find case %s for approval: %w", txn.CaseID, err)
	}

	advance := func(stage domain.ApprovalStage) error {
		now := time.Now()
		if err := s.txnRepo.UpdateTransactionApproval(ctx, txn.TransactionID, domain.StatusApproved, stage, userID, now); err != nil {
			return fmt.Errorf("failed to record approval stage %s: %w", stage, err)
		}
		txn.Status = domain.StatusApproved
		txn.ApprovalStage = stage
		txn.LastUpdatedAt = now
		txn.LastUpdatedBy = userID
		return nil
	}

	if stageRank[txn.ApprovalStage] < stageRank[domain.StageStatusSet] {
		if err := advance(domain.StageStatusSet); err != nil {
			s.LogError(ctx, err, "approval failed setting status", slog.String("transaction_id", transactionID))
			return nil, err
		}
	}

	if stageRank[txn.ApprovalStage] < stageRank[domain.StageVoucherIssued] {
		if _, err := s.documentSvc.CreateVoucher(ctx, *c, *txn, userID); err != nil {
			s.LogError(ctx, err, "approval failed issuing voucher", slog.String("transaction_id", transactionID))
			return nil, fmt.Errorf("failed to issue voucher for transaction %s: %w", transactionID, err)
		}
		if err := advance(domain.StageVoucherIssued); err != nil {
			return nil, err
		}
	}

	if stageRank[txn.ApprovalStage] < stageRank[domain.StageLedgerPosted] {
		if _, err := s.ledgerSvc.PostTransaction(ctx, *c, *txn, userID); err != nil {
			s.LogError(ctx, err, "approval failed posting ledger entries", slog.String("transaction_id", transactionID))
			return nil, fmt.Errorf("failed to post ledger entries for transaction %s: %w", transactionID, err)
		}
		if err := advance(domain.StageLedgerPosted); err != nil {
			return nil, err
		}
	}

	if stageRank[txn.ApprovalStage] < stageRank[domain.StageFundsUpdated] {
		if err := s.recomputer.RecomputeCaseFunds(ctx, txn.CaseID); err != nil {
			s.LogError(ctx, err, "approval failed refreshing case funds", slog.String("transaction_id", transactionID))
			return nil, fmt.Errorf("failed to refresh funds for case %s: %w", txn.CaseID, err)
		}
		if err := advance(domain.StageFundsUpdated); err != nil {
			return nil, err
		}
	}

	s.LogInfo(ctx, "transaction approved",
		slog.String("transaction_id", transactionID),
		slog.String("approved_by", userID))
	return txn, nil
}

func (s *transactionService) RejectTransaction(ctx context.Context, transactionID string, userID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction %s for rejection: %w", transactionID, err)
	}
	if txn.Status == domain.StatusApproved {
		return nil, fmt.Errorf("%w: approved transactions cannot be rejected", apperrors.ErrConflict)
	}
	if txn.Status == domain.StatusRejected {
		return txn, nil
	}

	now := time.Now()
	if err := s.txnRepo.UpdateTransactionApproval(ctx, transactionID, domain.StatusRejected, domain.StageNone, userID, now); err != nil {
		s.LogError(ctx, err, "failed to reject transaction", slog.String("transaction_id", transactionID))
		return nil, fmt.Errorf("failed to reject transaction %s: %w", transactionID, err)
	}
	txn.Status = domain.StatusRejected
	txn.ApprovalStage = domain.StageNone
	txn.LastUpdatedAt = now
	txn.LastUpdatedBy = userID

	s.LogInfo(ctx, "transaction rejected", slog.String("transaction_id", transactionID), slog.String("rejected_by", userID))
	s.enqueueRecompute(ctx, txn.CaseID)
	return txn, nil
}

// ImportStatement bulk-creates draft transactions from a column-mapped bank
// statement CSV. Malformed rows are skipped and reported; a bad row never
// fails the batch.
func (s *transactionService) ImportStatement(ctx context.Context, caseID string, req dto.StatementImportRequest, userID string) (*dto.StatementImportResult, error) {
	if _, err := s.caseRepo.FindCaseByID(ctx, caseID); err != nil {
		return nil, fmt.Errorf("failed to find case %s for statement import: %w", caseID, err)
	}
	if err := s.validateAccountCode(ctx, req.AccountCode); err != nil {
		return nil, err
	}

	dateFormat := req.DateFormat
	if dateFormat == "" {
		dateFormat = defaultStatementDateFormat
	}
	target := req.TargetAccount
	if target == "" {
		target = domain.TargetPrimary
	}

	reader := csv.NewReader(strings.NewReader(req.CSV))
	reader.FieldsPerRecord = -1 // Ragged rows are handled per row below.

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: statement has no header row", apperrors.ErrValidation)
	}
	colIndex := make(map[string]int, len(header))
	for i, name := range header {
		colIndex[strings.TrimSpace(name)] = i
	}
	required := []string{req.Columns.Date, req.Columns.Description, req.Columns.PaidIn, req.Columns.PaidOut}
	for _, name := range required {
		if _, ok := colIndex[name]; !ok {
			return nil, fmt.Errorf("%w: statement is missing column %q", apperrors.ErrValidation, name)
		}
	}

	result := &dto.StatementImportResult{}
	now := time.Now()
	var txns []domain.Transaction

	skip := func(line int, reason string) {
		result.Skipped++
		result.RowErrors = append(result.RowErrors, dto.StatementImportRowError{Line: line, Reason: reason})
	}

	field := func(record []string, name string) string {
		idx, ok := colIndex[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			skip(line, fmt.Sprintf("unreadable row: %v", err))
			continue
		}

		date, err := time.Parse(dateFormat, field(record, req.Columns.Date))
		if err != nil {
			skip(line, fmt.Sprintf("bad date %q", field(record, req.Columns.Date)))
			continue
		}

		paidIn := field(record, req.Columns.PaidIn)
		paidOut := field(record, req.Columns.PaidOut)

		var amount decimal.Decimal
		txnType := domain.Receipt
		switch {
		case paidIn != "" && paidOut != "":
			skip(line, "row has both paid in and paid out values")
			continue
		case paidIn != "":
			amount, err = decimal.NewFromString(paidIn)
		case paidOut != "":
			txnType = domain.Payment
			amount, err = decimal.NewFromString(paidOut)
		default:
			skip(line, "row has neither paid in nor paid out value")
			continue
		}
		if err != nil {
			skip(line, fmt.Sprintf("unparseable amount: %v", err))
			continue
		}
		if amount.LessThanOrEqual(decimal.Zero) {
			skip(line, "amount must be positive")
			continue
		}

		description := field(record, req.Columns.Description)
		if description == "" {
			skip(line, "missing description")
			continue
		}

		payee := ""
		if req.Columns.Payee != "" {
			payee = field(record, req.Columns.Payee)
		}

		bankDate := date
		txns = append(txns, domain.Transaction{
			TransactionID:   uuid.NewString(),
			CaseID:          caseID,
			TransactionType: txnType,
			AccountType:     req.AccountType,
			TargetAccount:   target,
			Status:          domain.StatusDraft,
			Amount:          amount,
			NetAmount:       amount,
			VATAmount:       decimal.Zero,
			AccountCode:     req.AccountCode,
			Description:     description,
			Payee:           payee,
			BankRequestDate: &bankDate,
			ApprovalStage:   domain.StageNone,
			AuditFields: domain.AuditFields{
				CreatedAt:     now,
				CreatedBy:     userID,
				LastUpdatedAt: now,
				LastUpdatedBy: userID,
				Version:       1,
			},
		})
	}

	if len(txns) > 0 {
		if err := s.txnRepo.SaveTransactions(ctx, txns); err != nil {
			s.LogError(ctx, err, "failed to save imported transactions", slog.String("case_id", caseID))
			return nil, fmt.Errorf("failed to save imported transactions: %w", err)
		}
	}

	result.Imported = len(txns)
	result.Transactions = make([]dto.TransactionResponse, 0, len(txns))
	for i := range txns {
		result.Transactions = append(result.Transactions, dto.ToTransactionResponse(&txns[i]))
	}

	s.LogInfo(ctx, "statement imported",
		slog.String("case_id", caseID),
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped))
	s.enqueueRecompute(ctx, caseID)
	return result, nil
}
