package domain

import (
	"github.com/shopspring/decimal"
)

// CaseType identifies the insolvency procedure a case is under.
type CaseType string

const (
	CaseTypeAdministration CaseType = "Administration"
	CaseTypeCVL            CaseType = "CVL"
	CaseTypeMVL            CaseType = "MVL"
	CaseTypeCVA            CaseType = "CVA"
	CaseTypeMoratorium     CaseType = "Moratorium"
	CaseTypeReceivership   CaseType = "Receivership"
	CaseTypeAdvisory       CaseType = "Advisory"
)

// BankDetails describes one of a case's estate bank accounts.
// A case holds at most two: primary and secondary.
type BankDetails struct {
	AccountName   string `json:"accountName"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	SortCode      string `json:"sortCode"`
	AccountType   string `json:"accountType"` // e.g. "Current", "Deposit"
	AccountCode   string `json:"accountCode"` // Chart of accounts reference
}

// IsConfigured reports whether the bank details have actually been set up.
// Presence is defined as any of the identifying fields being non-empty.
func (b *BankDetails) IsConfigured() bool {
	if b == nil {
		return false
	}
	return b.AccountName != "" || b.BankName != "" || b.AccountNumber != "" || b.SortCode != ""
}

// BondIncrease records a single increase to a case's bond cover.
type BondIncrease struct {
	IncreaseValue decimal.Decimal `json:"increaseValue"`
	Reason        string          `json:"reason,omitempty"`
}

// Case represents a single insolvency engagement.
type Case struct {
	CaseID               string          `json:"caseID"` // Primary Key (UUID)
	CompanyName          string          `json:"companyName"`
	CompanyNumber        string          `json:"companyNumber"`
	CaseType             CaseType        `json:"caseType"`
	BankDetails          *BankDetails    `json:"bankDetails,omitempty"`
	SecondaryBankDetails *BankDetails    `json:"secondaryBankDetails,omitempty"`
	InitialBondValue     decimal.Decimal `json:"initialBondValue"`
	BondIncreases        []BondIncrease  `json:"bondIncreases,omitempty"`
	SoaETR               decimal.Decimal `json:"soaEtr"` // Statement of Affairs estimated total realisations

	// Denormalized snapshot maintained by the funds recompute job; the
	// authoritative figures are always derived from transactions.
	TotalFundsHeld        decimal.Decimal `json:"totalFundsHeld"`
	TotalFundsDistributed decimal.Decimal `json:"totalFundsDistributed"`

	AuditFields
}

// BondedAmount is the total bond cover: the initial bond plus every increase.
func (c *Case) BondedAmount() decimal.Decimal {
	total := c.InitialBondValue
	for _, inc := range c.BondIncreases {
		total = total.Add(inc.IncreaseValue)
	}
	return total
}
