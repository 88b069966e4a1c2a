package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/PracPilot/insolvency_mgmt_app/internal/apperrors"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portsrepo "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/repositories"
	"github.com/PracPilot/insolvency_mgmt_app/internal/models"
	"github.com/PracPilot/insolvency_mgmt_app/internal/utils/mapping"
)

type PgxChartRepository struct {
	pool *pgxpool.Pool
}

// newPgxChartRepository creates a new repository for chart of accounts data.
func newPgxChartRepository(pool *pgxpool.Pool) portsrepo.ChartRepositoryFacade {
	return &PgxChartRepository{pool: pool}
}

var _ portsrepo.ChartRepositoryFacade = (*PgxChartRepository)(nil)

const chartColumns = `account_code, name, account_group, is_system, is_active,
	created_at, created_by, last_updated_at, last_updated_by, version`

func scanChartEntry(row pgx.Row) (*models.ChartOfAccount, error) {
	var m models.ChartOfAccount
	err := row.Scan(
		&m.AccountCode,
		&m.Name,
		&m.AccountGroup,
		&m.IsSystem,
		&m.IsActive,
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

func (r *PgxChartRepository) SaveChartOfAccount(ctx context.Context, entry domain.ChartOfAccount) error {
	m := mapping.ToModelChartOfAccount(entry)

	query := `
		INSERT INTO chart_of_accounts (` + chartColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.AccountCode,
		m.Name,
		m.AccountGroup,
		m.IsSystem,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account code %s already exists", apperrors.ErrDuplicate, m.AccountCode)
		}
		return fmt.Errorf("failed to save chart account %s: %w", m.AccountCode, err)
	}
	return nil
}

func (r *PgxChartRepository) FindChartOfAccountByCode(ctx context.Context, accountCode string) (*domain.ChartOfAccount, error) {
	query := `SELECT ` + chartColumns + ` FROM chart_of_accounts WHERE account_code = $1;`

	m, err := scanChartEntry(r.pool.QueryRow(ctx, query, accountCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: chart account %s", apperrors.ErrNotFound, accountCode)
		}
		return nil, fmt.Errorf("failed to find chart account %s: %w", accountCode, err)
	}

	entry := mapping.ToDomainChartOfAccount(*m)
	return &entry, nil
}

func (r *PgxChartRepository) ListChartOfAccounts(ctx context.Context) ([]domain.ChartOfAccount, error) {
	query := `SELECT ` + chartColumns + ` FROM chart_of_accounts ORDER BY account_code ASC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list chart of accounts: %w", err)
	}
	defer rows.Close()

	var entries []domain.ChartOfAccount
	for rows.Next() {
		m, err := scanChartEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chart row: %w", err)
		}
		entries = append(entries, mapping.ToDomainChartOfAccount(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chart rows: %w", err)
	}
	return entries, nil
}

func (r *PgxChartRepository) UpdateChartOfAccount(ctx context.Context, entry domain.ChartOfAccount) error {
	m := mapping.ToModelChartOfAccount(entry)

	query := `
		UPDATE chart_of_accounts
		SET name = $2, account_group = $3, is_active = $4, last_updated_at = $5, last_updated_by = $6, version = $7
		WHERE account_code = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.AccountCode,
		m.Name,
		m.AccountGroup,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update chart account %s: %w", m.AccountCode, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: chart account %s", apperrors.ErrNotFound, m.AccountCode)
	}
	return nil
}

func (r *PgxChartRepository) DeactivateChartOfAccount(ctx context.Context, accountCode string, userID string) error {
	query := `
		UPDATE chart_of_accounts
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3, version = version + 1
		WHERE account_code = $1;
	`
	tag, err := r.pool.Exec(ctx, query, accountCode, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate chart account %s: %w", accountCode, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: chart account %s", apperrors.ErrNotFound, accountCode)
	}
	return nil
}
