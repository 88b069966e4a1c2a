package services

import (
	portsrepo "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, queuer portssvc.FundsRecomputeQueuer) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Case = NewCaseService(repos.CaseRepo)
	container.Chart = NewChartService(repos.ChartRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Document = NewDocumentService(repos.DocumentRepo)
	container.Token = NewTokenService(cfg)

	container.Ledger = NewLedgerService(
		repos.EntryRepo,
		WithVATControlCode(cfg.VATControlAccountCode),
	)

	// Cashiering reads everything; it also owns the funds snapshot recompute
	// the approval workflow and the background worker both call into.
	container.Cashiering = NewCashieringService(
		repos.CaseRepo,
		repos.TransactionRepo,
		repos.EntryRepo,
		repos.ChartRepo,
		WithCashieringVATControlCode(cfg.VATControlAccountCode),
	)

	txnOpts := []TransactionServiceOption{}
	if queuer != nil {
		txnOpts = append(txnOpts, WithFundsRecomputeQueuer(queuer))
	}
	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.CaseRepo,
		repos.ChartRepo,
		container.Ledger,
		container.Document,
		container.Cashiering,
		txnOpts...,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CaseSvcFacade        = (*caseService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.CashieringSvcFacade  = (*cashieringService)(nil)
	_ portssvc.ChartSvcFacade       = (*chartService)(nil)
	_ portssvc.DocumentSvcFacade    = (*documentService)(nil)
	_ portssvc.UserSvcFacade        = (*userService)(nil)
)
