package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portsrepo "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/utils/cashiering"
)

// cashieringService materializes the derived financial read models from the
// persisted cases, transactions, entries and chart.
type cashieringService struct {
	BaseService
	caseRepo       portsrepo.CaseRepositoryFacade
	txnRepo        portsrepo.TransactionRepositoryFacade
	entryRepo      portsrepo.EntryRepositoryFacade
	chartRepo      portsrepo.ChartRepositoryFacade
	vatControlCode string
}

// CashieringServiceOption configures a cashieringService.
type CashieringServiceOption func(*cashieringService)

// WithCashieringVATControlCode overrides the VAT control chart code the
// derived views read from.
func WithCashieringVATControlCode(code string) CashieringServiceOption {
	return func(s *cashieringService) {
		if code != "" {
			s.vatControlCode = code
		}
	}
}

// NewCashieringService creates a new CashieringService.
func NewCashieringService(
	caseRepo portsrepo.CaseRepositoryFacade,
	txnRepo portsrepo.TransactionRepositoryFacade,
	entryRepo portsrepo.EntryRepositoryFacade,
	chartRepo portsrepo.ChartRepositoryFacade,
	opts ...CashieringServiceOption,
) portssvc.CashieringSvcFacade {
	s := &cashieringService{
		caseRepo:       caseRepo,
		txnRepo:        txnRepo,
		entryRepo:      entryRepo,
		chartRepo:      chartRepo,
		vatControlCode: domain.DefaultVATControlCode,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.CashieringSvcFacade = (*cashieringService)(nil)

// listAllCases pages through the case repository; the derived views fold
// over every case.
func (s *cashieringService) listAllCases(ctx context.Context) ([]domain.Case, error) {
	const pageSize = 500
	var all []domain.Case
	for offset := 0; ; offset += pageSize {
		page, err := s.caseRepo.ListCases(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		if len(page) < pageSize {
			return all, nil
		}
	}
}

// LoadSnapshot fetches the four input collections. A cases failure aborts;
// the other collections degrade to empty so a partial backend outage still
// produces a usable, if incomplete, view.
func (s *cashieringService) LoadSnapshot(ctx context.Context) (domain.Snapshot, error) {
	snap := domain.Snapshot{}

	cases, err := s.listAllCases(ctx)
	if err != nil {
		s.LogError(ctx, err, "failed to load cases for cashiering snapshot")
		return domain.Snapshot{}, fmt.Errorf("failed to load cases: %w", err)
	}
	snap.Cases = cases

	if txns, err := s.txnRepo.ListAllTransactions(ctx); err != nil {
		s.LogWarn(ctx, "degrading snapshot: transactions failed to load", slog.String("error", err.Error()))
		snap.Transactions = []domain.Transaction{}
		snap.FailedCollections = append(snap.FailedCollections, "transactions")
	} else {
		snap.Transactions = txns
	}

	if entries, err := s.entryRepo.ListAllEntries(ctx); err != nil {
		s.LogWarn(ctx, "degrading snapshot: entries failed to load", slog.String("error", err.Error()))
		snap.Entries = []domain.AccountingEntry{}
		snap.FailedCollections = append(snap.FailedCollections, "entries")
	} else {
		snap.Entries = entries
	}

	if chart, err := s.chartRepo.ListChartOfAccounts(ctx); err != nil {
		s.LogWarn(ctx, "degrading snapshot: chart failed to load", slog.String("error", err.Error()))
		snap.Chart = []domain.ChartOfAccount{}
		snap.FailedCollections = append(snap.FailedCollections, "chart")
	} else {
		snap.Chart = chart
	}

	return snap, nil
}

func (s *cashieringService) BankAccountRows(ctx context.Context) ([]domain.BankAccountRow, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return cashiering.BuildBankAccountRows(snap, s.vatControlCode), nil
}

func (s *cashieringService) BondingRows(ctx context.Context) ([]domain.CaseAggregate, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	cls := cashiering.NewClassifier(snap.Chart)
	rows := make([]domain.CaseAggregate, 0, len(snap.Cases))
	for _, c := range snap.Cases {
		rows = append(rows, cashiering.BuildCaseAggregate(c, snap.Transactions, snap.Entries, cls, s.vatControlCode))
	}
	return rows, nil
}

func (s *cashieringService) CaseTypeSummaries(ctx context.Context) (map[domain.CaseType]domain.CaseTypeSummary, error) {
	snap, err := s.LoadSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	return cashiering.SummaryByCaseType(snap.Cases, snap.Transactions, snap.Chart), nil
}

func (s *cashieringService) VATControlBalance(ctx context.Context, caseID string) (decimal.Decimal, error) {
	if _, err := s.caseRepo.FindCaseByID(ctx, caseID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to find case %s for vat balance: %w", caseID, err)
	}
	entries, err := s.entryRepo.ListEntriesByCase(ctx, caseID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to load entries for case %s: %w", caseID, err)
	}
	return cashiering.VATControlBalance(caseID, s.vatControlCode, entries), nil
}

// RecomputeCaseFunds re-derives the case's held and distributed figures from
// its transactions and writes the snapshot back onto the case row.
func (s *cashieringService) RecomputeCaseFunds(ctx context.Context, caseID string) error {
	if _, err := s.caseRepo.FindCaseByID(ctx, caseID); err != nil {
		return fmt.Errorf("failed to find case %s for funds recompute: %w", caseID, err)
	}

	txns, err := s.txnRepo.ListAllTransactions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load transactions for funds recompute: %w", err)
	}
	chart, err := s.chartRepo.ListChartOfAccounts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load chart for funds recompute: %w", err)
	}

	cls := cashiering.NewClassifier(chart)
	filter := cashiering.TxnFilter{CaseID: caseID}
	held := cashiering.Balance(txns, filter)
	if held.IsNegative() {
		held = decimal.Zero
	}
	distributed := cashiering.FundsDistributed(txns, cls, filter)

	if err := s.caseRepo.UpdateCaseFunds(ctx, caseID, held, distributed, seedUserID, time.Now()); err != nil {
		s.LogError(ctx, err, "failed to write funds snapshot", slog.String("case_id", caseID))
		return fmt.Errorf("failed to write funds snapshot for case %s: %w", caseID, err)
	}

	s.LogDebug(ctx, "case funds recomputed",
		slog.String("case_id", caseID),
		slog.String("held", held.String()),
		slog.String("distributed", distributed.String()))
	return nil
}
