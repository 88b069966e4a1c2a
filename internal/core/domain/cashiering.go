package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NoBankAccountLabel is the account type shown on the fallback row for a case
// with no configured bank accounts.
const NoBankAccountLabel = "No Bank Accounts Configured"

// CaseAggregate is the derived, case-wide financial summary backing the
// cashiering views. It is never persisted; only the funds snapshot on the
// Case record is written back.
type CaseAggregate struct {
	CaseID              string          `json:"caseID"`
	CompanyName         string          `json:"companyName"`
	CaseType            CaseType        `json:"caseType"`
	AccountBalance      decimal.Decimal `json:"accountBalance"`
	VATControlBalance   decimal.Decimal `json:"vatControlBalance"`
	LastBankRequestDate *time.Time      `json:"lastBankRequestDate,omitempty"`
	AssetRealisations   decimal.Decimal `json:"assetRealisations"`
	FundsDistributed    decimal.Decimal `json:"fundsDistributed"`
	BondedAmount        decimal.Decimal `json:"bondedAmount"`
	IsUnderbonded       bool            `json:"isUnderbonded"`
	BondingShortfall    decimal.Decimal `json:"bondingShortfall"`
	SoaETR              decimal.Decimal `json:"soaEtr"`
}

// BankAccountRow is one display row of the bank accounts table. A case
// produces one row per configured bank account, or a single fallback row when
// none is configured.
type BankAccountRow struct {
	RowID               string          `json:"rowID"`
	CaseID              string          `json:"caseID"`
	CompanyName         string          `json:"companyName"`
	CaseType            CaseType        `json:"caseType"`
	AccountName         string          `json:"accountName"`
	BankName            string          `json:"bankName"`
	AccountNumber       string          `json:"accountNumber"`
	SortCode            string          `json:"sortCode"`
	AccountType         string          `json:"accountType"`
	TargetAccount       TargetAccount   `json:"targetAccount,omitempty"` // Empty on the fallback row
	Balance             decimal.Decimal `json:"balance"`
	VATBalance          decimal.Decimal `json:"vatBalance"`
	FundsDistributed    decimal.Decimal `json:"fundsDistributed"`
	LastBankRequestDate *time.Time      `json:"lastBankRequestDate,omitempty"`
	SoaETR              decimal.Decimal `json:"soaEtr"`
	BondingRequired     bool            `json:"bondingRequired"` // Case-level underbonded flag
}

// CaseTypeSummary is the cross-case roll-up of funds for one case type.
type CaseTypeSummary struct {
	CaseType         CaseType        `json:"caseType"`
	TotalHeld        decimal.Decimal `json:"totalHeld"`
	TotalDistributed decimal.Decimal `json:"totalDistributed"`
	CaseCount        int             `json:"caseCount"`
}

// Snapshot is an immutable view of the collections the aggregation core folds
// over. Collections that failed to load are degraded to empty slices and
// recorded in FailedCollections.
type Snapshot struct {
	Cases             []Case
	Transactions      []Transaction
	Entries           []AccountingEntry
	Chart             []ChartOfAccount
	FailedCollections []string
}
