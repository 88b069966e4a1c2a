package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PracPilot/insolvency_mgmt_app/internal/apperrors"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
	"github.com/PracPilot/insolvency_mgmt_app/internal/handlers"
	"github.com/PracPilot/insolvency_mgmt_app/internal/middleware"
)

// --- Mock ChartService ---
type MockChartService struct {
	mock.Mock
}

func (m *MockChartService) CreateChartOfAccount(ctx context.Context, req dto.CreateChartAccountRequest, userID string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockChartService) GetChartOfAccountByCode(ctx context.Context, accountCode string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockChartService) ListChartOfAccounts(ctx context.Context) ([]domain.ChartOfAccount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartOfAccount), args.Error(1)
}

func (m *MockChartService) UpdateChartOfAccount(ctx context.Context, accountCode string, req dto.UpdateChartAccountRequest, userID string) (*domain.ChartOfAccount, error) {
	args := m.Called(ctx, accountCode, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChartOfAccount), args.Error(1)
}

func (m *MockChartService) DeactivateChartOfAccount(ctx context.Context, accountCode string, userID string) error {
	args := m.Called(ctx, accountCode, userID)
	return args.Error(0)
}

func (m *MockChartService) EnsureDefaultChart(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

var _ portssvc.ChartSvcFacade = (*MockChartService)(nil)

// --- Test Suite ---
type ChartHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockChartService *MockChartService
	jwtSecret        string
}

func (suite *ChartHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ima-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *ChartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockChartService = new(MockChartService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterChartRoutes(v1, suite.mockChartService)
}

func (suite *ChartHandlerTestSuite) authedRequest(method, url string, body []byte) *http.Request {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- Test Cases ---

func (suite *ChartHandlerTestSuite) TestGetAccount_Success() {
	account := &domain.ChartOfAccount{
		AccountCode:  "V100",
		Name:         "VAT Control",
		AccountGroup: domain.GroupRepresentedBy,
		IsSystem:     true,
		IsActive:     true,
	}
	suite.mockChartService.On("GetChartOfAccountByCode",
		mock.AnythingOfType("*context.valueCtx"), "V100",
	).Return(account, nil).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/chart-of-accounts/V100", nil))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ChartAccountResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("V100", resp.AccountCode)
	suite.True(resp.IsSystem)
	suite.mockChartService.AssertExpectations(suite.T())
}

func (suite *ChartHandlerTestSuite) TestGetAccount_NotFound() {
	suite.mockChartService.On("GetChartOfAccountByCode",
		mock.AnythingOfType("*context.valueCtx"), "Z999",
	).Return(nil, apperrors.ErrNotFound).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodGet, "/api/v1/chart-of-accounts/Z999", nil))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ChartHandlerTestSuite) TestCreateAccount_Duplicate() {
	body, _ := json.Marshal(dto.CreateChartAccountRequest{
		AccountCode:  "R100",
		Name:         "Book Debts",
		AccountGroup: domain.GroupAssetRealisations,
	})

	suite.mockChartService.On("CreateChartOfAccount",
		mock.AnythingOfType("*context.valueCtx"),
		mock.AnythingOfType("dto.CreateChartAccountRequest"),
		mock.AnythingOfType("string"),
	).Return(nil, apperrors.ErrDuplicate).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPost, "/api/v1/chart-of-accounts", body))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ChartHandlerTestSuite) TestUpdateAccount_SystemAccountConflict() {
	newName := "Renamed"
	body, _ := json.Marshal(dto.UpdateChartAccountRequest{Name: &newName})

	suite.mockChartService.On("UpdateChartOfAccount",
		mock.AnythingOfType("*context.valueCtx"),
		"V100",
		mock.AnythingOfType("dto.UpdateChartAccountRequest"),
		mock.AnythingOfType("string"),
	).Return(nil, apperrors.ErrConflict).Once()

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, suite.authedRequest(http.MethodPut, "/api/v1/chart-of-accounts/V100", body))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ChartHandlerTestSuite) TestListAccounts_Unauthorized() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/chart-of-accounts", nil)

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockChartService.AssertNotCalled(suite.T(), "ListChartOfAccounts")
}

// --- Run Test Suite ---
func TestChartHandler(t *testing.T) {
	suite.Run(t, new(ChartHandlerTestSuite))
}
