package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portsrepo "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/repositories"
	"github.com/PracPilot/insolvency_mgmt_app/internal/models"
	"github.com/PracPilot/insolvency_mgmt_app/internal/utils/mapping"
)

type PgxEntryRepository struct {
	pool *pgxpool.Pool
}

// newPgxEntryRepository creates a new repository for accounting entry data.
func newPgxEntryRepository(pool *pgxpool.Pool) portsrepo.EntryRepositoryFacade {
	return &PgxEntryRepository{pool: pool}
}

var _ portsrepo.EntryRepositoryFacade = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, case_id, transaction_id, account_code, debit_amount, credit_amount,
	entry_date, description, created_at, created_by, last_updated_at, last_updated_by, version`

func scanEntry(row pgx.Row) (*models.AccountingEntry, error) {
	var m models.AccountingEntry
	err := row.Scan(
		&m.EntryID,
		&m.CaseID,
		&m.TransactionID,
		&m.AccountCode,
		&m.DebitAmount,
		&m.CreditAmount,
		&m.EntryDate,
		&m.Description,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.Version,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxEntryRepository) listEntries(ctx context.Context, query string, args ...any) ([]domain.AccountingEntry, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.AccountingEntry
	for rows.Next() {
		m, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainEntry(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return entries, nil
}

// SaveEntries inserts a balanced entry set in a single database transaction
// so a partial posting can never be observed.
func (r *PgxEntryRepository) SaveEntries(ctx context.Context, entries []domain.AccountingEntry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin entry batch: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	query := `
		INSERT INTO accounting_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelEntry(e)
		batch.Queue(query,
			m.EntryID,
			m.CaseID,
			m.TransactionID,
			m.AccountCode,
			m.DebitAmount,
			m.CreditAmount,
			m.EntryDate,
			m.Description,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
			m.Version,
		)
	}

	results := tx.SendBatch(ctx, batch)
	for range entries {
		if _, err := results.Exec(); err != nil {
			results.Close() //nolint:errcheck
			return fmt.Errorf("failed to save entry batch: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close entry batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit entry batch: %w", err)
	}
	return nil
}

func (r *PgxEntryRepository) ListEntriesByCase(ctx context.Context, caseID string) ([]domain.AccountingEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM accounting_entries WHERE case_id = $1 ORDER BY entry_date ASC, entry_id ASC;`
	entries, err := r.listEntries(ctx, query, caseID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for case %s: %w", caseID, err)
	}
	return entries, nil
}

func (r *PgxEntryRepository) ListEntriesByTransaction(ctx context.Context, transactionID string) ([]domain.AccountingEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM accounting_entries WHERE transaction_id = $1 ORDER BY entry_id ASC;`
	entries, err := r.listEntries(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for transaction %s: %w", transactionID, err)
	}
	return entries, nil
}

func (r *PgxEntryRepository) ListAllEntries(ctx context.Context) ([]domain.AccountingEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM accounting_entries ORDER BY entry_date ASC, entry_id ASC;`
	entries, err := r.listEntries(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all entries: %w", err)
	}
	return entries, nil
}

func (r *PgxEntryRepository) DeleteEntriesByTransaction(ctx context.Context, transactionID string) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM accounting_entries WHERE transaction_id = $1;`, transactionID); err != nil {
		return fmt.Errorf("failed to delete entries for transaction %s: %w", transactionID, err)
	}
	return nil
}
