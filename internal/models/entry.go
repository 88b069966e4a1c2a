package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountingEntry is the accounting_entries table row.
type AccountingEntry struct {
	EntryID       string          `db:"entry_id"`
	CaseID        string          `db:"case_id"`
	TransactionID string          `db:"transaction_id"`
	AccountCode   string          `db:"account_code"`
	DebitAmount   decimal.Decimal `db:"debit_amount"`
	CreditAmount  decimal.Decimal `db:"credit_amount"`
	EntryDate     time.Time       `db:"entry_date"`
	Description   string          `db:"description"`
	AuditFields
}
