package models

// Document is the documents table row.
type Document struct {
	DocumentID    string `db:"document_id"`
	CaseID        string `db:"case_id"`
	TransactionID string `db:"transaction_id"` // Empty for non-voucher documents
	DocumentType  string `db:"document_type"`
	Title         string `db:"title"`
	ContentHTML   string `db:"content_html"`
	AuditFields
}
