package mapping

import (
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/models"
)

// ToModelDocument converts a domain Document to a model Document
func ToModelDocument(d domain.Document) models.Document {
	return models.Document{
		DocumentID:    d.DocumentID,
		CaseID:        d.CaseID,
		TransactionID: d.TransactionID,
		DocumentType:  string(d.DocumentType),
		Title:         d.Title,
		ContentHTML:   d.ContentHTML,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDocument converts a model Document to a domain Document
func ToDomainDocument(m models.Document) domain.Document {
	return domain.Document{
		DocumentID:    m.DocumentID,
		CaseID:        m.CaseID,
		TransactionID: m.TransactionID,
		DocumentType:  domain.DocumentType(m.DocumentType),
		Title:         m.Title,
		ContentHTML:   m.ContentHTML,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}
