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

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	portssvc "github.com/PracPilot/insolvency_mgmt_app/internal/core/ports/services"
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/services"
)

type CashieringServiceTestSuite struct {
	suite.Suite
	mockCaseRepo  *MockCaseRepository
	mockTxnRepo   *MockTransactionRepository
	mockEntryRepo *MockEntryRepository
	mockChartRepo *MockChartRepository
	service       portssvc.CashieringSvcFacade
	testCase      domain.Case
}

func (suite *CashieringServiceTestSuite) SetupTest() {
	suite.mockCaseRepo = new(MockCaseRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockChartRepo = new(MockChartRepository)

	suite.service = services.NewCashieringService(
		suite.mockCaseRepo,
		suite.mockTxnRepo,
		suite.mockEntryRepo,
		suite.mockChartRepo,
	)

	suite.testCase = domain.Case{
		CaseID:           uuid.NewString(),
		CompanyName:      "Acme Holdings Ltd",
		CaseType:         domain.CaseTypeAdministration,
		InitialBondValue: decimal.NewFromInt(10000),
	}
}

func (suite *CashieringServiceTestSuite) caseTxn(txnType domain.TransactionType, amount int64, status domain.TransactionStatus, accountCode string) domain.Transaction {
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		CaseID:          suite.testCase.CaseID,
		TransactionType: txnType,
		AccountType:     domain.CaseAccount,
		TargetAccount:   domain.TargetPrimary,
		Status:          status,
		Amount:          decimal.NewFromInt(amount),
		NetAmount:       decimal.NewFromInt(amount),
		AccountCode:     accountCode,
	}
}

// --- LoadSnapshot ---

func (suite *CashieringServiceTestSuite) TestLoadSnapshot_AllCollectionsLoad() {
	ctx := context.Background()

	suite.mockCaseRepo.On("ListCases", ctx, 500, 0).Return([]domain.Case{suite.testCase}, nil)
	suite.mockTxnRepo.On("ListAllTransactions", ctx).Return([]domain.Transaction{}, nil)
	suite.mockEntryRepo.On("ListAllEntries", ctx).Return([]domain.AccountingEntry{}, nil)
	suite.mockChartRepo.On("ListChartOfAccounts", ctx).Return(domain.DefaultChart, nil)

	snap, err := suite.service.LoadSnapshot(ctx)

	suite.Require().NoError(err)
	assert.Len(suite.T(), snap.Cases, 1)
	assert.Empty(suite.T(), snap.FailedCollections)
}

func (suite *CashieringServiceTestSuite) TestLoadSnapshot_CasesFailureIsFatal() {
	ctx := context.Background()

	suite.mockCaseRepo.On("ListCases", ctx, 500, 0).Return(nil, errors.New("db down"))

	_, err := suite.service.LoadSnapshot(ctx)

	suite.Require().Error(err)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ListAllTransactions", mock.Anything)
}

func (suite *CashieringServiceTestSuite) TestLoadSnapshot_OtherCollectionsDegradeToEmpty() {
	ctx := context.Background()

	suite.mockCaseRepo.On("ListCases", ctx, 500, 0).Return([]domain.Case{suite.testCase}, nil)
	suite.mockTxnRepo.On("ListAllTransactions", ctx).Return(nil, errors.New("timeout"))
	suite.mockEntryRepo.On("ListAllEntries", ctx).Return(nil, errors.New("timeout"))
	suite.mockChartRepo.On("ListChartOfAccounts", ctx).Return(nil, errors.New("timeout"))

	snap, err := suite.service.LoadSnapshot(ctx)

	suite.Require().NoError(err)
	assert.Len(suite.T(), snap.Cases, 1)
	assert.NotNil(suite.T(), snap.Transactions)
	assert.Empty(suite.T(), snap.Transactions)
	assert.ElementsMatch(suite.T(), []string{"transactions", "entries", "chart"}, snap.FailedCollections)
}

// Even with every collection but cases degraded, the derived views still
// produce rows rather than failing.
func (suite *CashieringServiceTestSuite) TestBankAccountRows_DegradedSnapshotStillProducesRows() {
	ctx := context.Background()

	suite.mockCaseRepo.On("ListCases", ctx, 500, 0).Return([]domain.Case{suite.testCase}, nil)
	suite.mockTxnRepo.On("ListAllTransactions", ctx).Return(nil, errors.New("timeout"))
	suite.mockEntryRepo.On("ListAllEntries", ctx).Return(nil, errors.New("timeout"))
	suite.mockChartRepo.On("ListChartOfAccounts", ctx).Return(nil, errors.New("timeout"))

	rows, err := suite.service.BankAccountRows(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	assert.Equal(suite.T(), domain.NoBankAccountLabel, rows[0].AccountType)
	assert.True(suite.T(), rows[0].Balance.IsZero())
}

// --- BondingRows ---

func (suite *CashieringServiceTestSuite) TestBondingRows_FlagsUnderbondedCase() {
	ctx := context.Background()
	txns := []domain.Transaction{
		suite.caseTxn(domain.Receipt, 15000, domain.StatusApproved, "R100"),
	}
	entries := []domain.AccountingEntry{
		{
			EntryID:       uuid.NewString(),
			CaseID:        suite.testCase.CaseID,
			TransactionID: txns[0].TransactionID,
			AccountCode:   "R100",
			CreditAmount:  decimal.NewFromInt(15000),
			DebitAmount:   decimal.Zero,
		},
	}

	suite.mockCaseRepo.On("ListCases", ctx, 500, 0).Return([]domain.Case{suite.testCase}, nil)
	suite.mockTxnRepo.On("ListAllTransactions", ctx).Return(txns, nil)
	suite.mockEntryRepo.On("ListAllEntries", ctx).Return(entries, nil)
	suite.mockChartRepo.On("ListChartOfAccounts", ctx).Return(domain.DefaultChart, nil)

	rows, err := suite.service.BondingRows(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	assert.True(suite.T(), rows[0].IsUnderbonded)
	assert.True(suite.T(), rows[0].BondingShortfall.Equal(decimal.NewFromInt(5000)))
}

// --- RecomputeCaseFunds ---

func (suite *CashieringServiceTestSuite) TestRecomputeCaseFunds_WritesDerivedFigures() {
	ctx := context.Background()
	txns := []domain.Transaction{
		suite.caseTxn(domain.Receipt, 1000, domain.StatusApproved, "R100"),
		suite.caseTxn(domain.Payment, 300, domain.StatusApproved, "D100"),
	}

	suite.mockCaseRepo.On("FindCaseByID", ctx, suite.testCase.CaseID).Return(&suite.testCase, nil)
	suite.mockTxnRepo.On("ListAllTransactions", ctx).Return(txns, nil)
	suite.mockChartRepo.On("ListChartOfAccounts", ctx).Return(domain.DefaultChart, nil)
	suite.mockCaseRepo.On("UpdateCaseFunds", ctx, suite.testCase.CaseID,
		mock.MatchedBy(func(held decimal.Decimal) bool { return held.Equal(decimal.NewFromInt(700)) }),
		mock.MatchedBy(func(distributed decimal.Decimal) bool { return distributed.Equal(decimal.NewFromInt(300)) }),
		"system", mock.AnythingOfType("time.Time")).Return(nil)

	err := suite.service.RecomputeCaseFunds(ctx, suite.testCase.CaseID)

	suite.Require().NoError(err)
	suite.mockCaseRepo.AssertExpectations(suite.T())
}

func (suite *CashieringServiceTestSuite) TestRecomputeCaseFunds_ClampsNegativeHeldToZero() {
	ctx := context.Background()
	txns := []domain.Transaction{
		suite.caseTxn(domain.Payment, 500, domain.StatusApproved, "D100"),
	}

	suite.mockCaseRepo.On("FindCaseByID", ctx, suite.testCase.CaseID).Return(&suite.testCase, nil)
	suite.mockTxnRepo.On("ListAllTransactions", ctx).Return(txns, nil)
	suite.mockChartRepo.On("ListChartOfAccounts", ctx).Return(domain.DefaultChart, nil)
	suite.mockCaseRepo.On("UpdateCaseFunds", ctx, suite.testCase.CaseID,
		mock.MatchedBy(func(held decimal.Decimal) bool { return held.IsZero() }),
		mock.MatchedBy(func(distributed decimal.Decimal) bool { return distributed.Equal(decimal.NewFromInt(500)) }),
		"system", mock.AnythingOfType("time.Time")).Return(nil)

	err := suite.service.RecomputeCaseFunds(ctx, suite.testCase.CaseID)

	suite.Require().NoError(err)
	suite.mockCaseRepo.AssertExpectations(suite.T())
}

// --- VATControlBalance ---

func (suite *CashieringServiceTestSuite) TestVATControlBalance_SumsVATControlEntries() {
	ctx := context.Background()
	entries := []domain.AccountingEntry{
		{CaseID: suite.testCase.CaseID, AccountCode: domain.DefaultVATControlCode, DebitAmount: decimal.NewFromInt(50), CreditAmount: decimal.Zero},
		{CaseID: suite.testCase.CaseID, AccountCode: domain.DefaultVATControlCode, DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(200)},
		{CaseID: suite.testCase.CaseID, AccountCode: "R100", DebitAmount: decimal.Zero, CreditAmount: decimal.NewFromInt(999)},
	}

	suite.mockCaseRepo.On("FindCaseByID", ctx, suite.testCase.CaseID).Return(&suite.testCase, nil)
	suite.mockEntryRepo.On("ListEntriesByCase", ctx, suite.testCase.CaseID).Return(entries, nil)

	balance, err := suite.service.VATControlBalance(ctx, suite.testCase.CaseID)

	suite.Require().NoError(err)
	assert.True(suite.T(), balance.Equal(decimal.NewFromInt(-150)), "expected debits minus credits, got %s", balance.String())
}

func TestCashieringServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CashieringServiceTestSuite))
}
