package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/PracPilot/insolvency_mgmt_app/internal/apperrors"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
	"github.com/PracPilot/insolvency_mgmt_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// documentHandler handles HTTP requests for case documents.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

// newDocumentHandler creates a new documentHandler.
func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{
		documentService: ds,
	}
}

// registerDocumentRoutes registers document routes addressed by document ID.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := rg.Group("/documents")
	{
		documents.GET("/:documentID", h.getDocument)
	}
}

// registerCaseDocumentRoutes registers case-scoped document routes.
func registerCaseDocumentRoutes(caseGroup *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	caseGroup.GET("/documents", h.listCaseDocuments)
	caseGroup.POST("/file-notes", h.createFileNote)
}

// getDocument godoc
// @Summary Get a document by ID
// @Description Retrieves a stored document, voucher or file note
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 500 {object} map[string]string "Failed to retrieve document"
// @Security BearerAuth
// @Router /documents/{documentID} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	documentID := c.Param("documentID")

	doc, err := h.documentService.GetDocumentByID(c.Request.Context(), documentID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Document not found", slog.String("document_id", documentID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
			return
		}
		logger.Error("Failed to get document from service", slog.String("error", err.Error()), slog.String("document_id", documentID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve document"})
		return
	}

	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}

// listCaseDocuments godoc
// @Summary List a case's documents
// @Description Retrieves a case's vouchers and file notes, newest first
// @Tags documents
// @Produce  json
// @Param   caseID path string true "Case ID"
// @Success 200 {object} dto.ListDocumentsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list documents"
// @Security BearerAuth
// @Router /cases/{caseID}/documents [get]
func (h *documentHandler) listCaseDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caseID := c.Param("caseID")

	docs, err := h.documentService.ListDocumentsByCase(c.Request.Context(), caseID)
	if err != nil {
		logger.Error("Failed to list documents from service", slog.String("error", err.Error()), slog.String("case_id", caseID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list documents"})
		return
	}

	logger.Debug("Documents listed successfully", slog.String("case_id", caseID), slog.Int("count", len(docs)))
	c.JSON(http.StatusOK, dto.ToListDocumentsResponse(docs))
}

// createFileNote godoc
// @Summary Create a file note
// @Description Stores a free-form file note against a case. Note content is HTML-escaped before storage.
// @Tags documents
// @Accept  json
// @Produce  json
// @Param   caseID path string true "Case ID"
// @Param   note body dto.CreateFileNoteRequest true "File note details"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Failed to create file note"
// @Security BearerAuth
// @Router /cases/{caseID}/file-notes [post]
func (h *documentHandler) createFileNote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caseID := c.Param("caseID")

	var req dto.CreateFileNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFileNote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("case_id", caseID), slog.String("creator_user_id", userID))

	doc, err := h.documentService.CreateFileNote(c.Request.Context(), caseID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Case not found for file note")
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating file note", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create file note in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create file note"})
		}
		return
	}

	logger.Info("File note created successfully", slog.String("document_id", doc.DocumentID))
	c.JSON(http.StatusCreated, dto.ToDocumentResponse(doc))
}
