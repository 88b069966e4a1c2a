package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountingEntry is one leg of a double-entry posting. Exactly one of
// DebitAmount / CreditAmount is non-zero per entry.
type AccountingEntry struct {
	EntryID       string          `json:"entryID"` // Primary Key (UUID)
	CaseID        string          `json:"caseID"`
	TransactionID string          `json:"transactionID"`
	AccountCode   string          `json:"accountCode"`
	DebitAmount   decimal.Decimal `json:"debitAmount"`
	CreditAmount  decimal.Decimal `json:"creditAmount"`
	EntryDate     time.Time       `json:"entryDate"`
	Description   string          `json:"description,omitempty"`
	AuditFields
}
