package pgsql

import (
	portsrepo "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CaseRepo:        newPgxCaseRepository(dbPool),
		TransactionRepo: newPgxTransactionRepository(dbPool),
		EntryRepo:       newPgxEntryRepository(dbPool),
		ChartRepo:       newPgxChartRepository(dbPool),
		DocumentRepo:    newPgxDocumentRepository(dbPool),
		UserRepo:        newPgxUserRepository(dbPool),
	}
}
