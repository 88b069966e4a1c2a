package dto

import (
	"time"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCaseRequest defines the data needed to open a new case.
type CreateCaseRequest struct {
	CompanyName      string           `json:"companyName" binding:"required"`
	CompanyNumber    string           `json:"companyNumber"`
	CaseType         domain.CaseType  `json:"caseType" binding:"required,oneof=Administration CVL MVL CVA Moratorium Receivership Advisory"`
	InitialBondValue *decimal.Decimal `json:"initialBondValue"` // Optional, defaults to zero
	SoaETR           *decimal.Decimal `json:"soaEtr"`           // Optional, defaults to zero
}

// UpdateCaseRequest defines the data allowed for updating a case.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateCaseRequest struct {
	CompanyName      *string          `json:"companyName"`
	CompanyNumber    *string          `json:"companyNumber"`
	CaseType         *domain.CaseType `json:"caseType"`
	InitialBondValue *decimal.Decimal `json:"initialBondValue"`
	SoaETR           *decimal.Decimal `json:"soaEtr"`
}

// BankDetailsRequest configures one of a case's two bank accounts.
type BankDetailsRequest struct {
	AccountName   string `json:"accountName" binding:"required"`
	BankName      string `json:"bankName" binding:"required"`
	AccountNumber string `json:"accountNumber"`
	SortCode      string `json:"sortCode"`
	AccountType   string `json:"accountType"`
	AccountCode   string `json:"accountCode"`
}

// BondIncreaseRequest appends a bond increase to a case.
type BondIncreaseRequest struct {
	IncreaseValue decimal.Decimal `json:"increaseValue" binding:"required"`
	Reason        string          `json:"reason"`
}

// ListCasesParams defines query parameters for listing cases.
type ListCasesParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// BankDetailsResponse mirrors domain.BankDetails.
type BankDetailsResponse struct {
	AccountName   string `json:"accountName"`
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	SortCode      string `json:"sortCode"`
	AccountType   string `json:"accountType"`
	AccountCode   string `json:"accountCode"`
}

// CaseResponse defines the data returned for a case.
type CaseResponse struct {
	CaseID                string               `json:"caseID"`
	CompanyName           string               `json:"companyName"`
	CompanyNumber         string               `json:"companyNumber"`
	CaseType              domain.CaseType      `json:"caseType"`
	BankDetails           *BankDetailsResponse `json:"bankDetails,omitempty"`
	SecondaryBankDetails  *BankDetailsResponse `json:"secondaryBankDetails,omitempty"`
	InitialBondValue      decimal.Decimal      `json:"initialBondValue"`
	BondedAmount          decimal.Decimal      `json:"bondedAmount"`
	SoaETR                decimal.Decimal      `json:"soaEtr"`
	TotalFundsHeld        decimal.Decimal      `json:"totalFundsHeld"`
	TotalFundsDistributed decimal.Decimal      `json:"totalFundsDistributed"`
	CreatedAt             time.Time            `json:"createdAt"`
	LastUpdatedAt         time.Time            `json:"lastUpdatedAt"`
}

// ListCasesResponse wraps a page of cases.
type ListCasesResponse struct {
	Cases []CaseResponse `json:"cases"`
}

func toBankDetailsResponse(d *domain.BankDetails) *BankDetailsResponse {
	if d == nil {
		return nil
	}
	return &BankDetailsResponse{
		AccountName:   d.AccountName,
		BankName:      d.BankName,
		AccountNumber: d.AccountNumber,
		SortCode:      d.SortCode,
		AccountType:   d.AccountType,
		AccountCode:   d.AccountCode,
	}
}

// ToCaseResponse converts a domain.Case to CaseResponse DTO
func ToCaseResponse(c *domain.Case) CaseResponse {
	return CaseResponse{
		CaseID:                c.CaseID,
		CompanyName:           c.CompanyName,
		CompanyNumber:         c.CompanyNumber,
		CaseType:              c.CaseType,
		BankDetails:           toBankDetailsResponse(c.BankDetails),
		SecondaryBankDetails:  toBankDetailsResponse(c.SecondaryBankDetails),
		InitialBondValue:      c.InitialBondValue,
		BondedAmount:          c.BondedAmount(),
		SoaETR:                c.SoaETR,
		TotalFundsHeld:        c.TotalFundsHeld,
		TotalFundsDistributed: c.TotalFundsDistributed,
		CreatedAt:             c.CreatedAt,
		LastUpdatedAt:         c.LastUpdatedAt,
	}
}

// ToListCasesResponse converts a slice of domain cases to the list DTO
func ToListCasesResponse(cases []domain.Case) ListCasesResponse {
	out := ListCasesResponse{Cases: make([]CaseResponse, 0, len(cases))}
	for i := range cases {
		out.Cases = append(out.Cases, ToCaseResponse(&cases[i]))
	}
	return out
}
