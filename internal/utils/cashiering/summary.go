package cashiering

import (
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SummaryByCaseType rolls up funds held against funds distributed per case
// type. Funds held is clamped at zero per case (a case never shows negative
// held funds); funds distributed is not clamped. Cases with an empty case
// type are skipped.
func SummaryByCaseType(cases []domain.Case, txns []domain.Transaction, chart []domain.ChartOfAccount) map[domain.CaseType]domain.CaseTypeSummary {
	cls := NewClassifier(chart)

	out := make(map[domain.CaseType]domain.CaseTypeSummary)
	for _, c := range cases {
		if c.CaseType == "" {
			continue
		}
		scope := TxnFilter{CaseID: c.CaseID}

		held := Balance(txns, scope)
		if held.IsNegative() {
			held = decimal.Zero
		}

		summary := out[c.CaseType]
		summary.CaseType = c.CaseType
		summary.TotalHeld = summary.TotalHeld.Add(held)
		summary.TotalDistributed = summary.TotalDistributed.Add(FundsDistributed(txns, cls, scope))
		summary.CaseCount++
		out[c.CaseType] = summary
	}
	return out
}
