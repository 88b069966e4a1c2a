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

// chartHandler handles HTTP requests for the chart of accounts.
type chartHandler struct {
	chartService portssvc.ChartSvcFacade
}

// newChartHandler creates a new chartHandler.
func newChartHandler(cs portssvc.ChartSvcFacade) *chartHandler {
	return &chartHandler{
		chartService: cs,
	}
}

// RegisterChartRoutes registers chart of accounts routes.
func RegisterChartRoutes(rg *gin.RouterGroup, chartService portssvc.ChartSvcFacade) {
	h := newChartHandler(chartService)

	chart := rg.Group("/chart-of-accounts")
	{
		chart.POST("", h.createAccount)
		chart.GET("", h.listAccounts)
		chart.GET("/:accountCode", h.getAccount)
		chart.PUT("/:accountCode", h.updateAccount)
		chart.DELETE("/:accountCode", h.deactivateAccount)
	}
}

// createAccount godoc
// @Summary Create a chart of accounts entry
// @Description Adds a new account code to the chart of accounts
// @Tags chart-of-accounts
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateChartAccountRequest true "Account details"
// @Success 201 {object} dto.ChartAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Account code already exists"
// @Failure 500 {object} map[string]string "Failed to create account"
// @Security BearerAuth
// @Router /chart-of-accounts [post]
func (h *chartHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChartAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create account request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", userID), slog.String("account_code", req.AccountCode))

	account, err := h.chartService.CreateChartOfAccount(c.Request.Context(), req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Account code already exists")
			c.JSON(http.StatusConflict, gin.H{"error": "Account code already exists"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}

	logger.Info("Chart account created successfully")
	c.JSON(http.StatusCreated, dto.ToChartAccountResponse(account))
}

// getAccount godoc
// @Summary Get a chart of accounts entry
// @Description Retrieves a chart entry by its account code
// @Tags chart-of-accounts
// @Produce  json
// @Param   accountCode path string true "Account code"
// @Success 200 {object} dto.ChartAccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /chart-of-accounts/{accountCode} [get]
func (h *chartHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountCode := c.Param("accountCode")

	account, err := h.chartService.GetChartOfAccountByCode(c.Request.Context(), accountCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Chart account not found", slog.String("account_code", accountCode))
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		logger.Error("Failed to get account from service", slog.String("error", err.Error()), slog.String("account_code", accountCode))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChartAccountResponse(account))
}

// listAccounts godoc
// @Summary List the chart of accounts
// @Description Retrieves the full chart of accounts ordered by account code
// @Tags chart-of-accounts
// @Produce  json
// @Success 200 {object} dto.ListChartAccountsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /chart-of-accounts [get]
func (h *chartHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.chartService.ListChartOfAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list accounts"})
		return
	}

	logger.Debug("Chart accounts listed successfully", slog.Int("count", len(accounts)))
	c.JSON(http.StatusOK, dto.ToListChartAccountsResponse(accounts))
}

// updateAccount godoc
// @Summary Update a chart of accounts entry
// @Description Updates a non-system chart entry
// @Tags chart-of-accounts
// @Accept  json
// @Produce  json
// @Param   accountCode path string true "Account code"
// @Param   account body dto.UpdateChartAccountRequest true "Account details to update"
// @Success 200 {object} dto.ChartAccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "System accounts cannot be modified"
// @Failure 500 {object} map[string]string "Failed to update account"
// @Security BearerAuth
// @Router /chart-of-accounts/{accountCode} [put]
func (h *chartHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountCode := c.Param("accountCode")
	var req dto.UpdateChartAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("account_code", accountCode), slog.String("updater_user_id", userID))

	account, err := h.chartService.UpdateChartOfAccount(c.Request.Context(), accountCode, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Chart account not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("System account cannot be modified")
			c.JSON(http.StatusConflict, gin.H{"error": "System accounts cannot be modified"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating account", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update account"})
		}
		return
	}

	logger.Info("Chart account updated successfully")
	c.JSON(http.StatusOK, dto.ToChartAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate a chart of accounts entry
// @Description Marks a non-system chart entry inactive so new transactions cannot use it
// @Tags chart-of-accounts
// @Produce  json
// @Param   accountCode path string true "Account code"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 409 {object} map[string]string "System accounts cannot be modified"
// @Failure 500 {object} map[string]string "Failed to deactivate account"
// @Security BearerAuth
// @Router /chart-of-accounts/{accountCode} [delete]
func (h *chartHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountCode := c.Param("accountCode")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("account_code", accountCode), slog.String("updater_user_id", userID))

	if err := h.chartService.DeactivateChartOfAccount(c.Request.Context(), accountCode, userID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Chart account not found for deactivation")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		case errors.Is(err, apperrors.ErrConflict):
			logger.Warn("System account cannot be modified")
			c.JSON(http.StatusConflict, gin.H{"error": "System accounts cannot be modified"})
		default:
			logger.Error("Failed to deactivate account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate account"})
		}
		return
	}

	logger.Info("Chart account deactivated successfully")
	c.Status(http.StatusNoContent)
}
