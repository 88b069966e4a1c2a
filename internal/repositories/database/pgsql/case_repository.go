package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/PracPilot/insolvency_mgmt_app/internal/apperrors"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portsrepo "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/repositories"
	"github.com/PracPilot/insolvency_mgmt_app/internal/models"
	"github.com/PracPilot/insolvency_mgmt_app/internal/utils/mapping"
)

type PgxCaseRepository struct {
	pool *pgxpool.Pool
}

// newPgxCaseRepository creates a new repository for case data.
func newPgxCaseRepository(pool *pgxpool.Pool) portsrepo.CaseRepositoryFacade {
	return &PgxCaseRepository{pool: pool}
}

var _ portsrepo.CaseRepositoryFacade = (*PgxCaseRepository)(nil)

const caseColumns = `case_id, company_name, company_number, case_type, bank_details, secondary_bank_details,
	initial_bond_value, bond_increases, soa_etr, total_funds_held, total_funds_distributed,
	created_at, created_by, last_updated_at, last_updated_by, version`

func scanCase(row pgx.Row) (*models.Case, error) {
	var m models.Case
	err := row.Scan(
		&m.CaseID,
		&m.CompanyName,
		&m.CompanyNumber,
		&m.CaseType,
		&m.BankDetails,
		&m.SecondaryBankDetails,
		&m.InitialBondValue,
		&m.BondIncreases,
		&m.SoaETR,
		&m.TotalFundsHeld,
		&m.TotalFundsDistributed,
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

func (r *PgxCaseRepository) SaveCase(ctx context.Context, c domain.Case) error {
	m := mapping.ToModelCase(c)

	query := `
		INSERT INTO cases (` + caseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.pool.Exec(ctx, query,
		m.CaseID,
		m.CompanyName,
		m.CompanyNumber,
		m.CaseType,
		m.BankDetails,
		m.SecondaryBankDetails,
		m.InitialBondValue,
		m.BondIncreases,
		m.SoaETR,
		m.TotalFundsHeld,
		m.TotalFundsDistributed,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: case with ID %s already exists", apperrors.ErrDuplicate, m.CaseID)
		}
		return fmt.Errorf("failed to save case %s: %w", m.CaseID, err)
	}
	return nil
}

func (r *PgxCaseRepository) FindCaseByID(ctx context.Context, caseID string) (*domain.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE case_id = $1;`

	m, err := scanCase(r.pool.QueryRow(ctx, query, caseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: case %s", apperrors.ErrNotFound, caseID)
		}
		return nil, fmt.Errorf("failed to find case %s: %w", caseID, err)
	}

	c := mapping.ToDomainCase(*m)
	return &c, nil
}

func (r *PgxCaseRepository) ListCases(ctx context.Context, limit int, offset int) ([]domain.Case, error) {
	query := `
		SELECT ` + caseColumns + `
		FROM cases
		ORDER BY company_name ASC, case_id ASC
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	defer rows.Close()

	var cases []domain.Case
	for rows.Next() {
		m, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case row: %w", err)
		}
		cases = append(cases, mapping.ToDomainCase(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating case rows: %w", err)
	}
	return cases, nil
}

func (r *PgxCaseRepository) UpdateCase(ctx context.Context, c domain.Case) error {
	m := mapping.ToModelCase(c)

	query := `
		UPDATE cases
		SET company_name = $2, company_number = $3, case_type = $4, bank_details = $5,
			secondary_bank_details = $6, initial_bond_value = $7, bond_increases = $8, soa_etr = $9,
			last_updated_at = $10, last_updated_by = $11, version = $12
		WHERE case_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.CaseID,
		m.CompanyName,
		m.CompanyNumber,
		m.CaseType,
		m.BankDetails,
		m.SecondaryBankDetails,
		m.InitialBondValue,
		m.BondIncreases,
		m.SoaETR,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update case %s: %w", m.CaseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: case %s", apperrors.ErrNotFound, m.CaseID)
	}
	return nil
}

// UpdateCaseFunds writes only the denormalized funds snapshot columns.
func (r *PgxCaseRepository) UpdateCaseFunds(ctx context.Context, caseID string, held, distributed decimal.Decimal, updatedBy string, now time.Time) error {
	query := `
		UPDATE cases
		SET total_funds_held = $2, total_funds_distributed = $3, last_updated_at = $4, last_updated_by = $5
		WHERE case_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, caseID, held, distributed, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update funds for case %s: %w", caseID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: case %s", apperrors.ErrNotFound, caseID)
	}
	return nil
}
