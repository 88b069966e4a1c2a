package models

import (
	"github.com/shopspring/decimal"
)

// BankDetails is stored as a JSONB column on the cases table.
type BankDetails struct {
	AccountName   string `json:"account_name"`
	BankName      string `json:"bank_name"`
	AccountNumber string `json:"account_number"`
	SortCode      string `json:"sort_code"`
	AccountType   string `json:"account_type"`
	AccountCode   string `json:"account_code"`
}

// BondIncrease is one element of the bond_increases JSONB array.
type BondIncrease struct {
	IncreaseValue decimal.Decimal `json:"increase_value"`
	Reason        string          `json:"reason,omitempty"`
}

// Case is the cases table row.
type Case struct {
	CaseID               string          `db:"case_id"`
	CompanyName          string          `db:"company_name"`
	CompanyNumber        string          `db:"company_number"`
	CaseType             string          `db:"case_type"`
	BankDetails          *BankDetails    `db:"bank_details"`           // JSONB, nullable
	SecondaryBankDetails *BankDetails    `db:"secondary_bank_details"` // JSONB, nullable
	InitialBondValue     decimal.Decimal `db:"initial_bond_value"`
	BondIncreases        []BondIncrease  `db:"bond_increases"` // JSONB array
	SoaETR               decimal.Decimal `db:"soa_etr"`

	TotalFundsHeld        decimal.Decimal `db:"total_funds_held"`
	TotalFundsDistributed decimal.Decimal `db:"total_funds_distributed"`

	AuditFields
}
