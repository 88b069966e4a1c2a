package dto

import (
	"sort"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BankAccountRowsResponse wraps the bank accounts table rows.
type BankAccountRowsResponse struct {
	Rows []domain.BankAccountRow `json:"rows"`
}

// BondingRowsResponse wraps the per-case bonding aggregates.
type BondingRowsResponse struct {
	Rows []domain.CaseAggregate `json:"rows"`
}

// CaseTypeSummariesResponse wraps the funds roll-up grouped by case type,
// sorted by case type for a stable payload.
type CaseTypeSummariesResponse struct {
	Summaries []domain.CaseTypeSummary `json:"summaries"`
}

// VATControlBalanceResponse reports a case's net VAT control position.
type VATControlBalanceResponse struct {
	CaseID  string          `json:"caseID"`
	Balance decimal.Decimal `json:"balance"`
}

// ToCaseTypeSummariesResponse flattens the summary map into a sorted slice
func ToCaseTypeSummariesResponse(summaries map[domain.CaseType]domain.CaseTypeSummary) CaseTypeSummariesResponse {
	out := CaseTypeSummariesResponse{Summaries: make([]domain.CaseTypeSummary, 0, len(summaries))}
	for _, s := range summaries {
		out.Summaries = append(out.Summaries, s)
	}
	sort.Slice(out.Summaries, func(i, j int) bool {
		return out.Summaries[i].CaseType < out.Summaries[j].CaseType
	})
	return out
}
