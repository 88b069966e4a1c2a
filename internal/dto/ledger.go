package dto

import (
	"time"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AccountingEntryResponse defines the data returned for one ledger entry leg.
type AccountingEntryResponse struct {
	EntryID       string          `json:"entryID"`
	CaseID        string          `json:"caseID"`
	TransactionID string          `json:"transactionID"`
	AccountCode   string          `json:"accountCode"`
	DebitAmount   decimal.Decimal `json:"debitAmount"`
	CreditAmount  decimal.Decimal `json:"creditAmount"`
	EntryDate     time.Time       `json:"entryDate"`
	Description   string          `json:"description,omitempty"`
}

// ListEntriesResponse wraps a list of ledger entries.
type ListEntriesResponse struct {
	Entries []AccountingEntryResponse `json:"entries"`
}

// ToAccountingEntryResponse converts a domain.AccountingEntry to its DTO
func ToAccountingEntryResponse(e *domain.AccountingEntry) AccountingEntryResponse {
	return AccountingEntryResponse{
		EntryID:       e.EntryID,
		CaseID:        e.CaseID,
		TransactionID: e.TransactionID,
		AccountCode:   e.AccountCode,
		DebitAmount:   e.DebitAmount,
		CreditAmount:  e.CreditAmount,
		EntryDate:     e.EntryDate,
		Description:   e.Description,
	}
}

// ToListEntriesResponse converts a slice of ledger entries to the list DTO
func ToListEntriesResponse(entries []domain.AccountingEntry) ListEntriesResponse {
	out := ListEntriesResponse{Entries: make([]AccountingEntryResponse, 0, len(entries))}
	for i := range entries {
		out.Entries = append(out.Entries, ToAccountingEntryResponse(&entries[i]))
	}
	return out
}
