package cashiering

import (
	"sort"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// FlattenToRows expands a case aggregate into its bank account display rows.
// A configured primary and/or secondary account each yields one row whose
// money figures are recomputed scoped to that account's target; soaEtr and
// the bonding flag stay case-level. A case with no configured accounts
// yields exactly one fallback row carrying the case-wide figures.
func FlattenToRows(agg domain.CaseAggregate, c domain.Case, txns []domain.Transaction, entries []domain.AccountingEntry, cls *Classifier, vatControlCode string) []domain.BankAccountRow {
	var rows []domain.BankAccountRow

	appendAccountRow := func(details *domain.BankDetails, target domain.TargetAccount, suffix string) {
		scope := TxnFilter{CaseID: c.CaseID, Target: &target}
		rows = append(rows, domain.BankAccountRow{
			RowID:               c.CaseID + suffix,
			CaseID:              c.CaseID,
			CompanyName:         c.CompanyName,
			CaseType:            c.CaseType,
			AccountName:         details.AccountName,
			BankName:            details.BankName,
			AccountNumber:       details.AccountNumber,
			SortCode:            details.SortCode,
			AccountType:         details.AccountType,
			TargetAccount:       target,
			Balance:             Balance(txns, scope),
			VATBalance:          VATControlBalanceForTarget(c.CaseID, vatControlCode, target, entries, txns),
			FundsDistributed:    FundsDistributed(txns, cls, scope),
			LastBankRequestDate: LastBankRequestDate(txns, scope),
			SoaETR:              agg.SoaETR,
			BondingRequired:     agg.IsUnderbonded,
		})
	}

	if c.BankDetails.IsConfigured() {
		appendAccountRow(c.BankDetails, domain.TargetPrimary, "-primary")
	}
	if c.SecondaryBankDetails.IsConfigured() {
		appendAccountRow(c.SecondaryBankDetails, domain.TargetSecondary, "-secondary")
	}

	if len(rows) == 0 {
		rows = append(rows, domain.BankAccountRow{
			RowID:               c.CaseID + "-no-account",
			CaseID:              c.CaseID,
			CompanyName:         c.CompanyName,
			CaseType:            c.CaseType,
			AccountType:         domain.NoBankAccountLabel,
			Balance:             agg.AccountBalance,
			VATBalance:          agg.VATControlBalance,
			FundsDistributed:    agg.FundsDistributed,
			LastBankRequestDate: agg.LastBankRequestDate,
			SoaETR:              agg.SoaETR,
			BondingRequired:     agg.IsUnderbonded,
		})
	}

	return rows
}

// BuildBankAccountRows flattens every case in the snapshot and returns the
// rows sorted by company name, locale-aware.
func BuildBankAccountRows(snap domain.Snapshot, vatControlCode string) []domain.BankAccountRow {
	cls := NewClassifier(snap.Chart)

	var rows []domain.BankAccountRow
	for _, c := range snap.Cases {
		agg := BuildCaseAggregate(c, snap.Transactions, snap.Entries, cls, vatControlCode)
		rows = append(rows, FlattenToRows(agg, c, snap.Transactions, snap.Entries, cls, vatControlCode)...)
	}

	coll := collate.New(language.BritishEnglish)
	sort.SliceStable(rows, func(i, j int) bool {
		return coll.CompareString(rows[i].CompanyName, rows[j].CompanyName) < 0
	})
	return rows
}
