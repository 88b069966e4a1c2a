package domain

// DocumentType categorizes a stored document.
type DocumentType string

const (
	DocumentTypeVoucher  DocumentType = "voucher"
	DocumentTypeFileNote DocumentType = "file_note"
)

// Document is a stored, printable record attached to a case. Vouchers are
// generated automatically when a transaction is approved.
type Document struct {
	DocumentID    string       `json:"documentID"` // Primary Key (UUID)
	CaseID        string       `json:"caseID"`
	TransactionID string       `json:"transactionID,omitempty"` // Set for vouchers
	DocumentType  DocumentType `json:"documentType"`
	Title         string       `json:"title"`
	ContentHTML   string       `json:"contentHTML"`
	AuditFields
}
