package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/PracPilot/insolvency_mgmt_app/internal/apperrors"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
	"github.com/PracPilot/insolvency_mgmt_app/internal/middleware"

	"github.com/gin-gonic/gin"
)

// caseHandler handles HTTP requests related to insolvency cases.
type caseHandler struct {
	caseService portssvc.CaseSvcFacade
}

// newCaseHandler creates a new caseHandler.
func newCaseHandler(cs portssvc.CaseSvcFacade) *caseHandler {
	return &caseHandler{
		caseService: cs,
	}
}

// registerCaseRoutes registers routes for cases and their nested resources.
func registerCaseRoutes(
	rg *gin.RouterGroup,
	caseService portssvc.CaseSvcFacade,
	txnService portssvc.TransactionSvcFacade,
	ledgerService portssvc.LedgerSvc,
	documentService portssvc.DocumentSvcFacade,
	cashieringService portssvc.CashieringSvcFacade,
) {
	h := newCaseHandler(caseService)

	casesTopLevel := rg.Group("/cases")
	{
		casesTopLevel.POST("", h.createCase)
		casesTopLevel.GET("", h.listCases)
	}

	// Routes specific to a single case (identified by caseID)
	caseSpecific := rg.Group("/cases/:caseID")
	{
		caseSpecific.GET("", h.getCase)
		caseSpecific.PUT("", h.updateCase)
		caseSpecific.PUT("/bank-details/:slot", h.setBankDetails)
		caseSpecific.POST("/bond-increases", h.addBondIncrease)

		// -- NESTED TRANSACTION ROUTES --
		registerCaseTransactionRoutes(caseSpecific, txnService)

		// -- NESTED LEDGER ROUTES --
		registerCaseLedgerRoutes(caseSpecific, ledgerService)

		// -- NESTED DOCUMENT ROUTES --
		registerCaseDocumentRoutes(caseSpecific, documentService)

		// -- NESTED CASHIERING ROUTES --
		registerCaseCashieringRoutes(caseSpecific, cashieringService)
	}
}

// createCase godoc
// @Summary Create a new case
// @Description Opens a new insolvency case
// @Tags cases
// @Accept  json
// @Produce  json
// @Param   case body dto.CreateCaseRequest true "Case details"
// @Success 201 {object} dto.CaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create case"
// @Security BearerAuth
// @Router /cases [post]
func (h *caseHandler) createCase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create case request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("creator_user_id", creatorUserID))
	logger.Info("Received request to create case", slog.String("company_name", req.CompanyName))

	createdCase, err := h.caseService.CreateCase(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating case", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create case in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create case"})
		return
	}

	logger.Info("Case created successfully", slog.String("case_id", createdCase.CaseID))
	c.JSON(http.StatusCreated, dto.ToCaseResponse(createdCase))
}

// getCase godoc
// @Summary Get a case by ID
// @Description Retrieves details for a specific case
// @Tags cases
// @Produce  json
// @Param   caseID path string true "Case ID"
// @Success 200 {object} dto.CaseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Failed to retrieve case"
// @Security BearerAuth
// @Router /cases/{caseID} [get]
func (h *caseHandler) getCase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caseID := c.Param("caseID")

	foundCase, err := h.caseService.GetCaseByID(c.Request.Context(), caseID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Case not found", slog.String("case_id", caseID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
			return
		}
		logger.Error("Failed to get case from service", slog.String("error", err.Error()), slog.String("case_id", caseID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve case"})
		return
	}

	logger.Debug("Case retrieved successfully", slog.String("case_id", caseID))
	c.JSON(http.StatusOK, dto.ToCaseResponse(foundCase))
}

// listCases godoc
// @Summary List cases
// @Description Retrieves a list of cases ordered by company name
// @Tags cases
// @Produce  json
// @Param   limit query int false "Limit number of results" default(20)
// @Param   offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListCasesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list cases"
// @Security BearerAuth
// @Router /cases [get]
func (h *caseHandler) listCases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListCasesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListCases", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	cases, err := h.caseService.ListCases(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list cases from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list cases"})
		return
	}

	logger.Info("Cases listed successfully", slog.Int("count", len(cases)))
	c.JSON(http.StatusOK, dto.ToListCasesResponse(cases))
}

// updateCase godoc
// @Summary Update a case
// @Description Updates an existing case's details
// @Tags cases
// @Accept  json
// @Produce  json
// @Param   caseID path string true "Case ID"
// @Param   case body dto.UpdateCaseRequest true "Case details to update"
// @Success 200 {object} dto.CaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Failed to update case"
// @Security BearerAuth
// @Router /cases/{caseID} [put]
func (h *caseHandler) updateCase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caseID := c.Param("caseID")
	var req dto.UpdateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateCase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("case_id", caseID), slog.String("updater_user_id", userID))

	updatedCase, err := h.caseService.UpdateCase(c.Request.Context(), caseID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Case not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error updating case", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to update case in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update case"})
		}
		return
	}

	logger.Info("Case updated successfully")
	c.JSON(http.StatusOK, dto.ToCaseResponse(updatedCase))
}

// setBankDetails godoc
// @Summary Configure a case bank account
// @Description Sets the primary or secondary bank account for a case
// @Tags cases
// @Accept  json
// @Produce  json
// @Param   caseID path string true "Case ID"
// @Param   slot path string true "Bank account slot" Enums(primary, secondary)
// @Param   details body dto.BankDetailsRequest true "Bank account details"
// @Success 200 {object} dto.CaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Failed to set bank details"
// @Security BearerAuth
// @Router /cases/{caseID}/bank-details/{slot} [put]
func (h *caseHandler) setBankDetails(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caseID := c.Param("caseID")
	slot := domain.TargetAccount(c.Param("slot"))

	var req dto.BankDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetBankDetails", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("case_id", caseID), slog.String("slot", string(slot)))

	updatedCase, err := h.caseService.SetBankDetails(c.Request.Context(), caseID, slot, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Case not found for bank details update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error setting bank details", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to set bank details in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to set bank details"})
		}
		return
	}

	logger.Info("Bank details set successfully")
	c.JSON(http.StatusOK, dto.ToCaseResponse(updatedCase))
}

// addBondIncrease godoc
// @Summary Add a bond increase
// @Description Appends a bond increase to a case's bond history
// @Tags cases
// @Accept  json
// @Produce  json
// @Param   caseID path string true "Case ID"
// @Param   increase body dto.BondIncreaseRequest true "Bond increase details"
// @Success 200 {object} dto.CaseResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Case not found"
// @Failure 500 {object} map[string]string "Failed to add bond increase"
// @Security BearerAuth
// @Router /cases/{caseID}/bond-increases [post]
func (h *caseHandler) addBondIncrease(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caseID := c.Param("caseID")

	var req dto.BondIncreaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddBondIncrease", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger = logger.With(slog.String("case_id", caseID))

	updatedCase, err := h.caseService.AddBondIncrease(c.Request.Context(), caseID, req, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Case not found for bond increase")
			c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error adding bond increase", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to add bond increase in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add bond increase"})
		}
		return
	}

	logger.Info("Bond increase added successfully")
	c.JSON(http.StatusOK, dto.ToCaseResponse(updatedCase))
}
