package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/PracPilot/insolvency_mgmt_app/internal/apperrors"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/dto"
)

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo    *MockTransactionRepository
	mockCaseRepo   *MockCaseRepository
	mockChartRepo  *MockChartRepository
	mockLedger     *MockLedgerService
	mockDocSvc     *MockDocumentService
	mockRecomputer *MockCaseFundsRecomputer
	mockQueuer     *MockFundsRecomputeQueuer
	service        portssvc.TransactionSvcFacade
	testCase       domain.Case
	userID         string
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockCaseRepo = new(MockCaseRepository)
	suite.mockChartRepo = new(MockChartRepository)
	suite.mockLedger = new(MockLedgerService)
	suite.mockDocSvc = new(MockDocumentService)
	suite.mockRecomputer = new(MockCaseFundsRecomputer)
	suite.mockQueuer = new(MockFundsRecomputeQueuer)

	suite.service = services.NewTransactionService(
		suite.mockTxnRepo,
		suite.mockCaseRepo,
		suite.mockChartRepo,
		suite.mockLedger,
		suite.mockDocSvc,
		suite.mockRecomputer,
		services.WithFundsRecomputeQueuer(suite.mockQueuer),
	)

	suite.userID = uuid.NewString()
	suite.testCase = domain.Case{
		CaseID:      uuid.NewString(),
		CompanyName: "Acme Holdings Ltd",
		CaseType:    domain.CaseTypeCVL,
	}
}

func (suite *TransactionServiceTestSuite) activeChartEntry(code string) *domain.ChartOfAccount {
	return &domain.ChartOfAccount{
		AccountCode:  code,
		Name:         "Book Debts",
		AccountGroup: domain.GroupAssetRealisations,
		IsActive:     true,
	}
}

func (suite *TransactionServiceTestSuite) pendingTransaction() *domain.Transaction {
	return &domain.Transaction{
		TransactionID:   uuid.NewString(),
		CaseID:          suite.testCase.CaseID,
		TransactionType: domain.Receipt,
		AccountType:     domain.CaseAccount,
		TargetAccount:   domain.TargetPrimary,
		Status:          domain.StatusPendingApproval,
		Amount:          decimal.NewFromInt(1200),
		NetAmount:       decimal.NewFromInt(1000),
		VATAmount:       decimal.NewFromInt(200),
		AccountCode:     "R100",
		Description:     "Book debt collection",
		ApprovalStage:   domain.StageNone,
	}
}

// --- CreateTransaction ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_Success() {
	ctx := context.Background()
	vat := decimal.NewFromInt(200)
	req := dto.CreateTransactionRequest{
		CaseID:          suite.testCase.CaseID,
		TransactionType: domain.Receipt,
		Amount:          decimal.NewFromInt(1200),
		VATAmount:       &vat,
		Description:     "Book debt collection",
		AccountCode:     "R100",
		AccountType:     domain.CaseAccount,
	}

	suite.mockChartRepo.On("FindChartOfAccountByCode", ctx, "R100").Return(suite.activeChartEntry("R100"), nil)
	suite.mockCaseRepo.On("FindCaseByID", ctx, suite.testCase.CaseID).Return(&suite.testCase, nil)
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil)
	suite.mockQueuer.On("EnqueueRecompute", ctx, suite.testCase.CaseID).Return(nil)

	txn, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	assert.Equal(suite.T(), domain.StatusDraft, txn.Status)
	assert.Equal(suite.T(), domain.TargetPrimary, txn.TargetAccount, "target should default to primary")
	assert.True(suite.T(), txn.NetAmount.Equal(decimal.NewFromInt(1000)), "net should be gross minus vat")
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockQueuer.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_VATExceedsGross() {
	ctx := context.Background()
	vat := decimal.NewFromInt(300)
	req := dto.CreateTransactionRequest{
		CaseID:          suite.testCase.CaseID,
		TransactionType: domain.Payment,
		Amount:          decimal.NewFromInt(200),
		VATAmount:       &vat,
		Description:     "Bad VAT",
		AccountCode:     "R100",
		AccountType:     domain.CaseAccount,
	}

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_UnknownAccountCode() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		CaseID:          suite.testCase.CaseID,
		TransactionType: domain.Receipt,
		Amount:          decimal.NewFromInt(100),
		Description:     "Unknown code",
		AccountCode:     "X999",
		AccountType:     domain.CaseAccount,
	}

	suite.mockChartRepo.On("FindChartOfAccountByCode", ctx, "X999").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateTransaction(ctx, req, suite.userID)

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, services.ErrAccountCodeUnknown)
}

// --- UpdateTransaction ---

func (suite *TransactionServiceTestSuite) TestUpdateTransaction_ApprovedConflict() {
	ctx := context.Background()
	txn := suite.pendingTransaction()
	txn.Status = domain.StatusApproved

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil)

	newDesc := "tweaked"
	_, err := suite.service.UpdateTransaction(ctx, txn.TransactionID, dto.UpdateTransactionRequest{Description: &newDesc}, suite.userID)

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransaction", mock.Anything, mock.Anything)
}

// --- ApproveTransaction ---

func (suite *TransactionServiceTestSuite) TestApproveTransaction_HappyPath() {
	ctx := context.Background()
	txn := suite.pendingTransaction()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil)
	suite.mockCaseRepo.On("FindCaseByID", ctx, suite.testCase.CaseID).Return(&suite.testCase, nil)

	suite.mockTxnRepo.On("UpdateTransactionApproval", ctx, txn.TransactionID, domain.StatusApproved, domain.StageStatusSet, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockDocSvc.On("CreateVoucher", ctx, suite.testCase, mock.AnythingOfType("domain.Transaction"), suite.userID).Return(&domain.Document{DocumentID: uuid.NewString()}, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionApproval", ctx, txn.TransactionID, domain.StatusApproved, domain.StageVoucherIssued, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedger.On("PostTransaction", ctx, suite.testCase, mock.AnythingOfType("domain.Transaction"), suite.userID).Return([]domain.AccountingEntry{}, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionApproval", ctx, txn.TransactionID, domain.StatusApproved, domain.StageLedgerPosted, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRecomputer.On("RecomputeCaseFunds", ctx, suite.testCase.CaseID).Return(nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionApproval", ctx, txn.TransactionID, domain.StatusApproved, domain.StageFundsUpdated, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	approved, err := suite.service.ApproveTransaction(ctx, txn.TransactionID, suite.userID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.StatusApproved, approved.Status)
	assert.Equal(suite.T(), domain.StageFundsUpdated, approved.ApprovalStage)
	suite.mockTxnRepo.AssertExpectations(suite.T())
	suite.mockDocSvc.AssertExpectations(suite.T())
	suite.mockLedger.AssertExpectations(suite.T())
	suite.mockRecomputer.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_LedgerFailureLeavesResumableStage() {
	ctx := context.Background()
	txn := suite.pendingTransaction()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil)
	suite.mockCaseRepo.On("FindCaseByID", ctx, suite.testCase.CaseID).Return(&suite.testCase, nil)
	suite.mockTxnRepo.On("UpdateTransactionApproval", ctx, txn.TransactionID, domain.StatusApproved, domain.StageStatusSet, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockDocSvc.On("CreateVoucher", ctx, suite.testCase, mock.AnythingOfType("domain.Transaction"), suite.userID).Return(&domain.Document{DocumentID: uuid.NewString()}, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionApproval", ctx, txn.TransactionID, domain.StatusApproved, domain.StageVoucherIssued, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockLedger.On("PostTransaction", ctx, suite.testCase, mock.AnythingOfType("domain.Transaction"), suite.userID).Return(nil, errors.New("db down")).Once()

	_, err := suite.service.ApproveTransaction(ctx, txn.TransactionID, suite.userID)

	suite.Require().Error(err)
	// The voucher stage persisted; the ledger stage never did.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "UpdateTransactionApproval", ctx, txn.TransactionID, domain.StatusApproved, domain.StageLedgerPosted, suite.userID, mock.AnythingOfType("time.Time"))
	suite.mockRecomputer.AssertNotCalled(suite.T(), "RecomputeCaseFunds", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_ResumesAfterVoucherStage() {
	ctx := context.Background()
	txn := suite.pendingTransaction()
	txn.Status = domain.StatusApproved
	txn.ApprovalStage = domain.StageVoucherIssued

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil)
	suite.mockCaseRepo.On("FindCaseByID", ctx, suite.testCase.CaseID).Return(&suite.testCase, nil)
	suite.mockLedger.On("PostTransaction", ctx, suite.testCase, mock.AnythingOfType("domain.Transaction"), suite.userID).Return([]domain.AccountingEntry{}, nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionApproval", ctx, txn.TransactionID, domain.StatusApproved, domain.StageLedgerPosted, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockRecomputer.On("RecomputeCaseFunds", ctx, suite.testCase.CaseID).Return(nil).Once()
	suite.mockTxnRepo.On("UpdateTransactionApproval", ctx, txn.TransactionID, domain.StatusApproved, domain.StageFundsUpdated, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	approved, err := suite.service.ApproveTransaction(ctx, txn.TransactionID, suite.userID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.StageFundsUpdated, approved.ApprovalStage)
	// The completed steps never rerun.
	suite.mockDocSvc.AssertNotCalled(suite.T(), "CreateVoucher", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockLedger.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_AlreadyComplete() {
	ctx := context.Background()
	txn := suite.pendingTransaction()
	txn.Status = domain.StatusApproved
	txn.ApprovalStage = domain.StageFundsUpdated

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil)

	approved, err := suite.service.ApproveTransaction(ctx, txn.TransactionID, suite.userID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.StageFundsUpdated, approved.ApprovalStage)
	suite.mockDocSvc.AssertNotCalled(suite.T(), "CreateVoucher", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockLedger.AssertNotCalled(suite.T(), "PostTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestApproveTransaction_RejectedConflict() {
	ctx := context.Background()
	txn := suite.pendingTransaction()
	txn.Status = domain.StatusRejected

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil)

	_, err := suite.service.ApproveTransaction(ctx, txn.TransactionID, suite.userID)

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrConflict)
}

// --- RejectTransaction ---

func (suite *TransactionServiceTestSuite) TestRejectTransaction_Pending() {
	ctx := context.Background()
	txn := suite.pendingTransaction()

	suite.mockTxnRepo.On("FindTransactionByID", ctx, txn.TransactionID).Return(txn, nil)
	suite.mockTxnRepo.On("UpdateTransactionApproval", ctx, txn.TransactionID, domain.StatusRejected, domain.StageNone, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockQueuer.On("EnqueueRecompute", ctx, txn.CaseID).Return(nil)

	rejected, err := suite.service.RejectTransaction(ctx, txn.TransactionID, suite.userID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), domain.StatusRejected, rejected.Status)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

// --- ImportStatement ---

func (suite *TransactionServiceTestSuite) TestImportStatement_SkipsBadRowsAndImportsRest() {
	ctx := context.Background()
	csvData := "Date,Details,In,Out\n" +
		"01/02/2024,Book debt receipt,500.00,\n" +
		"not-a-date,Broken row,100.00,\n" +
		"03/02/2024,Agent invoice,,250.00\n" +
		"04/02/2024,Both sides,10.00,20.00\n"

	req := dto.StatementImportRequest{
		CSV: csvData,
		Columns: dto.StatementColumnMap{
			Date:        "Date",
			Description: "Details",
			PaidIn:      "In",
			PaidOut:     "Out",
		},
		AccountCode: "R100",
		AccountType: domain.CaseAccount,
	}

	suite.mockCaseRepo.On("FindCaseByID", ctx, suite.testCase.CaseID).Return(&suite.testCase, nil)
	suite.mockChartRepo.On("FindChartOfAccountByCode", ctx, "R100").Return(suite.activeChartEntry("R100"), nil)
	suite.mockTxnRepo.On("SaveTransactions", ctx, mock.MatchedBy(func(txns []domain.Transaction) bool {
		return len(txns) == 2 &&
			txns[0].TransactionType == domain.Receipt &&
			txns[1].TransactionType == domain.Payment
	})).Return(nil)
	suite.mockQueuer.On("EnqueueRecompute", ctx, suite.testCase.CaseID).Return(nil)

	result, err := suite.service.ImportStatement(ctx, suite.testCase.CaseID, req, suite.userID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), 2, result.Imported)
	assert.Equal(suite.T(), 2, result.Skipped)
	assert.Len(suite.T(), result.RowErrors, 2)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestImportStatement_MissingColumnFails() {
	ctx := context.Background()
	req := dto.StatementImportRequest{
		CSV: "Date,Details,In\n01/02/2024,Receipt,500.00\n",
		Columns: dto.StatementColumnMap{
			Date:        "Date",
			Description: "Details",
			PaidIn:      "In",
			PaidOut:     "Out",
		},
		AccountCode: "R100",
		AccountType: domain.CaseAccount,
	}

	suite.mockCaseRepo.On("FindCaseByID", ctx, suite.testCase.CaseID).Return(&suite.testCase, nil)
	suite.mockChartRepo.On("FindChartOfAccountByCode", ctx, "R100").Return(suite.activeChartEntry("R100"), nil)

	_, err := suite.service.ImportStatement(ctx, suite.testCase.CaseID, req, suite.userID)

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, apperrors.ErrValidation)
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
