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

// ledgerHandler handles HTTP requests for the double-entry ledger.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{
		ledgerService: ls,
	}
}

// registerCaseLedgerRoutes registers case-scoped ledger routes.
func registerCaseLedgerRoutes(caseGroup *gin.RouterGroup, ledgerService portssvc.LedgerSvc) {
	h := newLedgerHandler(ledgerService)

	caseGroup.GET("/entries", h.listCaseEntries)
}

// listCaseEntries godoc
// @Summary List a case's ledger entries
// @Description Retrieves every ledger entry posted against a case, oldest first
// @Tags ledger
// @Produce  json
// @Param   caseID path string true "Case ID"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /cases/{caseID}/entries [get]
func (h *ledgerHandler) listCaseEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caseID := c.Param("caseID")

	entries, err := h.ledgerService.ListEntriesByCase(c.Request.Context(), caseID)
	if err != nil {
		logger.Error("Failed to list entries from service", slog.String("error", err.Error()), slog.String("case_id", caseID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	logger.Debug("Entries listed successfully", slog.String("case_id", caseID), slog.Int("count", len(entries)))
	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}

// listTransactionEntries godoc
// @Summary List a transaction's ledger entries
// @Description Retrieves the balanced entry set posted for one transaction
// @Tags ledger
// @Produce  json
// @Param   transactionID path string true "Transaction ID"
// @Success 200 {object} dto.ListEntriesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No entries posted for transaction"
// @Failure 500 {object} map[string]string "Failed to list entries"
// @Security BearerAuth
// @Router /transactions/{transactionID}/entries [get]
func (h *ledgerHandler) listTransactionEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	entries, err := h.ledgerService.ListEntriesByTransaction(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No entries posted for transaction"})
			return
		}
		logger.Error("Failed to list entries from service", slog.String("error", err.Error()), slog.String("transaction_id", transactionID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entries"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEntriesResponse(entries))
}
