package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether money came into or left the estate.
type TransactionType string

const (
	Receipt TransactionType = "receipt"
	Payment TransactionType = "payment"
)

// TransactionStatus is the approval state of a transaction.
type TransactionStatus string

const (
	StatusDraft           TransactionStatus = "draft"
	StatusPendingApproval TransactionStatus = "pending_approval"
	StatusApproved        TransactionStatus = "approved"
	StatusRejected        TransactionStatus = "rejected"
)

// FundsAccountType says which kind of account the transaction moves money on.
// Only case_account transactions count toward a case's cash balance.
type FundsAccountType string

const (
	CaseAccount   FundsAccountType = "case_account"
	OfficeAccount FundsAccountType = "office_account"
)

// TargetAccount says which of the case's two bank accounts the transaction
// posts against.
type TargetAccount string

const (
	TargetPrimary   TargetAccount = "primary"
	TargetSecondary TargetAccount = "secondary"
)

// ApprovalStage records the last completed step of the approval workflow so a
// failed approval can be resumed without repeating completed steps.
type ApprovalStage string

const (
	StageNone          ApprovalStage = ""
	StageStatusSet     ApprovalStage = "status_set"
	StageVoucherIssued ApprovalStage = "voucher_issued"
	StageLedgerPosted  ApprovalStage = "ledger_posted"
	StageFundsUpdated  ApprovalStage = "funds_updated"
)

// Transaction represents a single receipt or payment on a case.
type Transaction struct {
	TransactionID   string            `json:"transactionID"` // Primary Key (UUID)
	CaseID          string            `json:"caseID"`        // FK -> Case.caseID (Not Null)
	TransactionType TransactionType   `json:"transactionType"`
	AccountType     FundsAccountType  `json:"accountType"`
	TargetAccount   TargetAccount     `json:"targetAccount"`
	Status          TransactionStatus `json:"status"`
	Amount          decimal.Decimal   `json:"amount"` // Gross
	NetAmount       decimal.Decimal   `json:"netAmount"`
	VATAmount       decimal.Decimal   `json:"vatAmount"`
	AccountCode     string            `json:"accountCode"` // Chart of accounts reference
	Description     string            `json:"description"`
	Payee           string            `json:"payee,omitempty"`
	BankRequestDate *time.Time        `json:"bankRequestDate,omitempty"`
	ApprovalStage   ApprovalStage     `json:"approvalStage,omitempty"`
	AuditFields
}

// CountsTowardBalance reports whether the transaction contributes to the
// case's cash balance fold.
func (t *Transaction) CountsTowardBalance() bool {
	return t.AccountType == CaseAccount && t.Status != StatusRejected
}
