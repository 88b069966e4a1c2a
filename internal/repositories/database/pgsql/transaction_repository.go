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
	"github.com/PracPilot/insolvency_mgmt_app/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	pool *pgxpool.Pool
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{pool: pool}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const txnColumns = `transaction_id, case_id, transaction_type, account_type, target_account, status,
	amount, net_amount, vat_amount, account_code, description, payee, bank_request_date, approval_stage,
	created_at, created_by, last_updated_at, last_updated_by, version`

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.CaseID,
		&m.TransactionType,
		&m.AccountType,
		&m.TargetAccount,
		&m.Status,
		&m.Amount,
		&m.NetAmount,
		&m.VATAmount,
		&m.AccountCode,
		&m.Description,
		&m.Payee,
		&m.BankRequestDate,
		&m.ApprovalStage,
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

func txnInsertArgs(m models.Transaction) []any {
	return []any{
		m.TransactionID,
		m.CaseID,
		m.TransactionType,
		m.AccountType,
		m.TargetAccount,
		m.Status,
		m.Amount,
		m.NetAmount,
		m.VATAmount,
		m.AccountCode,
		m.Description,
		m.Payee,
		m.BankRequestDate,
		m.ApprovalStage,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	}
}

const txnInsertQuery = `
	INSERT INTO transactions (` + txnColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19);
`

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	_, err := r.pool.Exec(ctx, txnInsertQuery, txnInsertArgs(m)...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: transaction with ID %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to save transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// SaveTransactions inserts a batch atomically; the statement import uses this.
func (r *PgxTransactionRepository) SaveTransactions(ctx context.Context, txns []domain.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction batch: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	batch := &pgx.Batch{}
	for _, txn := range txns {
		batch.Queue(txnInsertQuery, txnInsertArgs(mapping.ToModelTransaction(txn))...)
	}

	results := tx.SendBatch(ctx, batch)
	for range txns {
		if _, err := results.Exec(); err != nil {
			results.Close() //nolint:errcheck
			return fmt.Errorf("failed to save transaction batch: %w", err)
		}
	}
	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to close transaction batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction batch: %w", err)
	}
	return nil
}

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	txn := mapping.ToDomainTransaction(*m)
	return &txn, nil
}

// ListTransactionsByCase pages newest first using a (created_at, transaction_id)
// keyset token.
func (r *PgxTransactionRepository) ListTransactionsByCase(ctx context.Context, caseID string, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := []any{caseID}
	query := `SELECT ` + txnColumns + ` FROM transactions WHERE case_id = $1`

	if nextToken != nil && *nextToken != "" {
		fields, err := pagination.DecodeMultiFieldToken(*nextToken)
		if err != nil || len(fields) != 2 {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		cursorTime, err := time.Parse(time.RFC3339Nano, fields[0])
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid pagination token", apperrors.ErrValidation)
		}
		args = append(args, cursorTime, fields[1])
		query += ` AND (created_at, transaction_id) < ($2, $3)`
	}

	args = append(args, limit+1)
	query += fmt.Sprintf(` ORDER BY created_at DESC, transaction_id DESC LIMIT $%d;`, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list transactions for case %s: %w", caseID, err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var newToken *string
	if len(txns) > limit {
		txns = txns[:limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeMultiFieldToken(last.CreatedAt.Format(time.RFC3339Nano), last.TransactionID)
		newToken = &token
	}
	return txns, newToken, nil
}

func (r *PgxTransactionRepository) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + txnColumns + ` FROM transactions ORDER BY created_at DESC, transaction_id DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, mapping.ToDomainTransaction(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)

	query := `
		UPDATE transactions
		SET transaction_type = $2, account_type = $3, target_account = $4, status = $5,
			amount = $6, net_amount = $7, vat_amount = $8, account_code = $9, description = $10,
			payee = $11, bank_request_date = $12, approval_stage = $13,
			last_updated_at = $14, last_updated_by = $15, version = $16
		WHERE transaction_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query,
		m.TransactionID,
		m.TransactionType,
		m.AccountType,
		m.TargetAccount,
		m.Status,
		m.Amount,
		m.NetAmount,
		m.VATAmount,
		m.AccountCode,
		m.Description,
		m.Payee,
		m.BankRequestDate,
		m.ApprovalStage,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.Version,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, m.TransactionID)
	}
	return nil
}

// UpdateTransactionApproval touches only the workflow columns so each
// approval step persists its progress without rewriting the row.
func (r *PgxTransactionRepository) UpdateTransactionApproval(ctx context.Context, transactionID string, status domain.TransactionStatus, stage domain.ApprovalStage, updatedBy string, now time.Time) error {
	query := `
		UPDATE transactions
		SET status = $2, approval_stage = $3, last_updated_at = $4, last_updated_by = $5, version = version + 1
		WHERE transaction_id = $1;
	`
	tag, err := r.pool.Exec(ctx, query, transactionID, string(status), string(stage), now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update approval for transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}
