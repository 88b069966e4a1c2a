package dto

import (
	"time"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
)

// CreateFileNoteRequest defines the data needed to attach a file note.
type CreateFileNoteRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// DocumentResponse defines the data returned for a document.
type DocumentResponse struct {
	DocumentID    string              `json:"documentID"`
	CaseID        string              `json:"caseID"`
	TransactionID string              `json:"transactionID,omitempty"`
	DocumentType  domain.DocumentType `json:"documentType"`
	Title         string              `json:"title"`
	ContentHTML   string              `json:"contentHTML"`
	CreatedAt     time.Time           `json:"createdAt"`
	CreatedBy     string              `json:"createdBy"`
}

// ListDocumentsResponse wraps a case's documents.
type ListDocumentsResponse struct {
	Documents []DocumentResponse `json:"documents"`
}

// ToDocumentResponse converts a domain.Document to DocumentResponse DTO
func ToDocumentResponse(d *domain.Document) DocumentResponse {
	return DocumentResponse{
		DocumentID:    d.DocumentID,
		CaseID:        d.CaseID,
		TransactionID: d.TransactionID,
		DocumentType:  d.DocumentType,
		Title:         d.Title,
		ContentHTML:   d.ContentHTML,
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
	}
}

// ToListDocumentsResponse converts a slice of documents to the list DTO
func ToListDocumentsResponse(docs []domain.Document) ListDocumentsResponse {
	out := ListDocumentsResponse{Documents: make([]DocumentResponse, 0, len(docs))}
	for i := range docs {
		out.Documents = append(out.Documents, ToDocumentResponse(&docs[i]))
	}
	return out
}
