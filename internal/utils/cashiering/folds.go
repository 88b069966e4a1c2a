package cashiering

import (
	"time"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TxnFilter is the predicate set used to scope transaction folds. Nil pointer
// fields mean "any".
type TxnFilter struct {
	CaseID string
	Target *domain.TargetAccount
	Status *domain.TransactionStatus
	Type   *domain.TransactionType
}

// Matches reports whether the transaction satisfies every set predicate.
func (f TxnFilter) Matches(txn domain.Transaction) bool {
	if f.CaseID != "" && txn.CaseID != f.CaseID {
		return false
	}
	if f.Target != nil && txn.TargetAccount != *f.Target {
		return false
	}
	if f.Status != nil && txn.Status != *f.Status {
		return false
	}
	if f.Type != nil && txn.TransactionType != *f.Type {
		return false
	}
	return true
}

// Filter returns the transactions satisfying the predicate set.
func (f TxnFilter) Filter(txns []domain.Transaction) []domain.Transaction {
	var out []domain.Transaction
	for _, txn := range txns {
		if f.Matches(txn) {
			out = append(out, txn)
		}
	}
	return out
}

// Balance folds the matching transactions into receipts minus payments. Only
// case_account transactions count, and rejected transactions are excluded;
// draft and pending transactions are included (a deliberate policy choice,
// recorded in DESIGN.md).
func Balance(txns []domain.Transaction, f TxnFilter) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if !f.Matches(txn) || !txn.CountsTowardBalance() {
			continue
		}
		switch txn.TransactionType {
		case domain.Receipt:
			total = total.Add(txn.Amount)
		case domain.Payment:
			total = total.Sub(txn.Amount)
		}
	}
	return total
}

// FundsDistributed sums approved payments whose account code classifies as
// distribution-like, scoped by the filter's case and target account.
func FundsDistributed(txns []domain.Transaction, cls *Classifier, f TxnFilter) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if !f.Matches(txn) {
			continue
		}
		if txn.TransactionType != domain.Payment || txn.Status != domain.StatusApproved {
			continue
		}
		if !cls.IsDistributionAccount(txn.AccountCode) {
			continue
		}
		total = total.Add(txn.Amount)
	}
	return total
}

// LastBankRequestDate returns the latest bank request date among the matching
// transactions, or nil when none carries one.
func LastBankRequestDate(txns []domain.Transaction, f TxnFilter) *time.Time {
	var latest *time.Time
	for _, txn := range txns {
		if !f.Matches(txn) || txn.BankRequestDate == nil {
			continue
		}
		if latest == nil || txn.BankRequestDate.After(*latest) {
			d := *txn.BankRequestDate
			latest = &d
		}
	}
	return latest
}
