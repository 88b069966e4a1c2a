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

// cashieringHandler handles HTTP requests for the derived cashiering views.
type cashieringHandler struct {
	cashieringService portssvc.CashieringSvcFacade
}

// newCashieringHandler creates a new cashieringHandler.
func newCashieringHandler(cs portssvc.CashieringSvcFacade) *cashieringHandler {
	return &cashieringHandler{
		cashieringService: cs,
	}
}

// registerCashieringRoutes registers the firm-wide cashiering views.
func registerCashieringRoutes(rg *gin.RouterGroup, cashieringService portssvc.CashieringSvcFacade) {
	h := newCashieringHandler(cashieringService)

	cashiering := rg.Group("/cashiering")
	{
		cashiering.GET("/bank-accounts", h.listBankAccountRows)
		cashiering.GET("/bonding", h.listBondingRows)
		cashiering.GET("/case-type-summary", h.listCaseTypeSummaries)
	}
}

// registerCaseCashieringRoutes registers case-scoped cashiering routes.
func registerCaseCashieringRoutes(caseGroup *gin.RouterGroup, cashieringService portssvc.CashieringSvcFacade) {
	h := newCashieringHandler(cashieringService)

	caseGroup.GET("/vat-balance", h.getVATControlBalance)
	caseGroup.POST("/recompute-funds", h.recomputeCaseFunds)
}

// listBankAccountRows godoc
// @Summary List bank account rows
// @Description Retrieves the flattened bank accounts view across all cases. Cases without a configured bank account produce a single placeholder row.
// @Tags cashiering
// @Produce  json
// @Success 200 {object} dto.BankAccountRowsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build bank accounts view"
// @Security BearerAuth
// @Router /cashiering/bank-accounts [get]
func (h *cashieringHandler) listBankAccountRows(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.cashieringService.BankAccountRows(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build bank accounts view", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build bank accounts view"})
		return
	}

	logger.Debug("Bank account rows built", slog.Int("count", len(rows)))
	c.JSON(http.StatusOK, dto.BankAccountRowsResponse{Rows: rows})
}

// listBondingRows godoc
// @Summary List bonding rows
// @Description Retrieves the per-case financial aggregates backing the bonding review, including bond adequacy.
// @Tags cashiering
// @Produce  json
// @Success 200 {object} dto.BondingRowsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build bonding view"
// @Security BearerAuth
// @Router /cashiering/bonding [get]
func (h *cashieringHandler) listBondingRows(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rows, err := h.cashieringService.BondingRows(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build bonding view", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build bonding view"})
		return
	}

	logger.Debug("Bonding rows built", slog.Int("count", len(rows)))
	c.JSON(http.StatusOK, dto.BondingRowsResponse{Rows: rows})
}

// listCaseTypeSummaries godoc
// @Summary Summarise funds by case type
// @Description Retrieves case counts and funds totals grouped by case type
// @Tags cashiering
// @Produce  json
// @Success 200 {object} dto.CaseTypeSummariesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build case type summary"
// @Security BearerAuth
// @Router /cashiering/case-type-summary [get]
func (h *cashieringHandler) listCaseTypeSummaries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	summaries, err := h.cashieringService.CaseTypeSummaries(c.Request.Context())
	if err != nil {
		logger.Error("Failed to build case type summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build case type summary"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCaseTypeSummariesResponse(summaries))
}

// getVATControlBalance godoc
// @Summary Get a case's VAT control balance
// @Description Retrieves the case's net VAT control position from its posted ledger entries
// @Tags cashiering
// @Produce  json
// @Param   caseID path string true "Case ID"
// @Success 200 {object} dto.VATControlBalanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Failed to compute VAT balance"
// @Security BearerAuth
// @Router /cases/{caseID}/vat-balance [get]
func (h *cashieringHandler) getVATControlBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caseID := c.Param("caseID")

	balance, err := h.cashieringService.VATControlBalance(c.Request.Context(), caseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Case not found for VAT balance", slog.String("case_id", caseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
			return
		}
		logger.Error("Failed to compute VAT balance", slog.String("error", err.Error()), slog.String("case_id", caseID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute VAT balance"})
		return
	}

	c.JSON(http.StatusOK, dto.VATControlBalanceResponse{CaseID: caseID, Balance: balance})
}

// recomputeCaseFunds godoc
// @Summary Recompute a case's funds snapshot
// @Description Recalculates the case's funds held and distributed figures from its transactions and persists them
// @Tags cashiering
// @Produce  json
// @Param   caseID path string true "Case ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Failed to recompute case funds"
// @Security BearerAuth
// @Router /cases/{caseID}/recompute-funds [post]
func (h *cashieringHandler) recomputeCaseFunds(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caseID := c.Param("caseID")

	if err := h.cashieringService.RecomputeCaseFunds(c.Request.Context(), caseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Case not found for funds recompute", slog.String("case_id", caseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
			return
		}
		logger.Error("Failed to recompute case funds", slog.String("error", err.Error()), slog.String("case_id", caseID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recompute case funds"})
		return
	}

	logger.Info("Case funds recomputed", slog.String("case_id", caseID))
	c.Status(http.StatusNoContent)
}
