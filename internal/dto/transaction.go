package dto

import (
	"time"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount is the gross figure; the net is derived as gross minus VAT.
type CreateTransactionRequest struct {
	CaseID            string                  `json:"caseID" binding:"required"`
	TransactionType   domain.TransactionType  `json:"transactionType" binding:"required,oneof=receipt payment"`
	Amount            decimal.Decimal         `json:"amount" binding:"required"`
	VATAmount         *decimal.Decimal        `json:"vatAmount"` // Optional, defaults to zero
	Description       string                  `json:"description" binding:"required"`
	AccountCode       string                  `json:"accountCode" binding:"required"`
	AccountType       domain.FundsAccountType `json:"accountType" binding:"required,oneof=case_account office_account"`
	TargetAccount     domain.TargetAccount    `json:"targetAccount" binding:"omitempty,oneof=primary secondary"`
	Payee             string                  `json:"payee"`
	BankRequestDate   *time.Time              `json:"bankRequestDate"`
	SubmitForApproval bool                    `json:"submitForApproval"`
}

// UpdateTransactionRequest defines the fields that may change before approval.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateTransactionRequest struct {
	Amount            *decimal.Decimal         `json:"amount"`
	VATAmount         *decimal.Decimal         `json:"vatAmount"`
	Description       *string                  `json:"description"`
	AccountCode       *string                  `json:"accountCode"`
	AccountType       *domain.FundsAccountType `json:"accountType"`
	TargetAccount     *domain.TargetAccount    `json:"targetAccount"`
	Payee             *string                  `json:"payee"`
	BankRequestDate   *time.Time               `json:"bankRequestDate"`
	SubmitForApproval *bool                    `json:"submitForApproval"`
}

// ListTransactionsParams controls token pagination for transaction listings.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=50" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                   `json:"transactionID"`
	CaseID          string                   `json:"caseID"`
	TransactionType domain.TransactionType   `json:"transactionType"`
	Status          domain.TransactionStatus `json:"status"`
	ApprovalStage   domain.ApprovalStage     `json:"approvalStage,omitempty"`
	Amount          decimal.Decimal          `json:"amount"`
	NetAmount       decimal.Decimal          `json:"netAmount"`
	VATAmount       decimal.Decimal          `json:"vatAmount"`
	Description     string                   `json:"description"`
	AccountCode     string                   `json:"accountCode"`
	AccountType     domain.FundsAccountType  `json:"accountType"`
	TargetAccount   domain.TargetAccount     `json:"targetAccount"`
	Payee           string                   `json:"payee,omitempty"`
	BankRequestDate *time.Time               `json:"bankRequestDate,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	LastUpdatedAt   time.Time                `json:"lastUpdatedAt"`
}

// ListTransactionsResponse wraps a page of transactions with the pagination token.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    string                `json:"nextToken,omitempty"`
}

// StatementColumnMap names the CSV columns the import should read from.
type StatementColumnMap struct {
	Date        string `json:"date" binding:"required"`
	Description string `json:"description" binding:"required"`
	PaidIn      string `json:"paidIn" binding:"required"`
	PaidOut     string `json:"paidOut" binding:"required"`
	Payee       string `json:"payee"`
}

// StatementImportRequest carries a raw CSV bank statement and its column mapping.
type StatementImportRequest struct {
	CSV           string                  `json:"csv" binding:"required"`
	Columns       StatementColumnMap      `json:"columns" binding:"required"`
	DateFormat    string                  `json:"dateFormat"` // Go layout, defaults to 02/01/2006
	AccountCode   string                  `json:"accountCode" binding:"required"`
	AccountType   domain.FundsAccountType `json:"accountType" binding:"required,oneof=case_account office_account"`
	TargetAccount domain.TargetAccount    `json:"targetAccount" binding:"omitempty,oneof=primary secondary"`
}

// StatementImportRowError reports a single skipped statement row.
type StatementImportRowError struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// StatementImportResult summarises an import run.
type StatementImportResult struct {
	Imported     int                       `json:"imported"`
	Skipped      int                       `json:"skipped"`
	RowErrors    []StatementImportRowError `json:"rowErrors,omitempty"`
	Transactions []TransactionResponse     `json:"transactions"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		CaseID:          t.CaseID,
		TransactionType: t.TransactionType,
		Status:          t.Status,
		ApprovalStage:   t.ApprovalStage,
		Amount:          t.Amount,
		NetAmount:       t.NetAmount,
		VATAmount:       t.VATAmount,
		Description:     t.Description,
		AccountCode:     t.AccountCode,
		AccountType:     t.AccountType,
		TargetAccount:   t.TargetAccount,
		Payee:           t.Payee,
		BankRequestDate: t.BankRequestDate,
		CreatedAt:       t.CreatedAt,
		LastUpdatedAt:   t.LastUpdatedAt,
	}
}

// ToListTransactionsResponse converts a page of domain transactions to the list DTO
func ToListTransactionsResponse(txns []domain.Transaction, nextToken string) ListTransactionsResponse {
	out := ListTransactionsResponse{
		Transactions: make([]TransactionResponse, 0, len(txns)),
		NextToken:    nextToken,
	}
	for i := range txns {
		out.Transactions = append(out.Transactions, ToTransactionResponse(&txns[i]))
	}
	return out
}
