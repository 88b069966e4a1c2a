package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CaseRepo        CaseRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	EntryRepo       EntryRepositoryFacade
	ChartRepo       ChartRepositoryFacade
	DocumentRepo    DocumentRepositoryFacade
	UserRepo        UserRepositoryFacade
}
