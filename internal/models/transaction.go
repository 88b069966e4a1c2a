package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is the transactions table row.
type Transaction struct {
	TransactionID   string          `db:"transaction_id"`
	CaseID          string          `db:"case_id"`
	TransactionType string          `db:"transaction_type"`
	AccountType     string          `db:"account_type"`
	TargetAccount   string          `db:"target_account"`
	Status          string          `db:"status"`
	Amount          decimal.Decimal `db:"amount"`
	NetAmount       decimal.Decimal `db:"net_amount"`
	VATAmount       decimal.Decimal `db:"vat_amount"`
	AccountCode     string          `db:"account_code"`
	Description     string          `db:"description"`
	Payee           string          `db:"payee"`
	BankRequestDate *time.Time      `db:"bank_request_date"` // Nullable
	ApprovalStage   string          `db:"approval_stage"`
	AuditFields
}
