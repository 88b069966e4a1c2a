package services_test

import (
	"context"
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

type LedgerServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	service       portssvc.LedgerSvc
	testCase      domain.Case
	userID        string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.service = services.NewLedgerService(suite.mockEntryRepo)
	suite.userID = uuid.NewString()
	suite.testCase = domain.Case{
		CaseID:      uuid.NewString(),
		CompanyName: "Acme Holdings Ltd",
		CaseType:    domain.CaseTypeCVL,
	}
}

func (suite *LedgerServiceTestSuite) receipt(amount, vat int64) domain.Transaction {
	gross := decimal.NewFromInt(amount)
	vatAmt := decimal.NewFromInt(vat)
	return domain.Transaction{
		TransactionID:   uuid.NewString(),
		CaseID:          suite.testCase.CaseID,
		TransactionType: domain.Receipt,
		AccountType:     domain.CaseAccount,
		TargetAccount:   domain.TargetPrimary,
		Status:          domain.StatusApproved,
		Amount:          gross,
		NetAmount:       gross.Sub(vatAmt),
		VATAmount:       vatAmt,
		AccountCode:     "R100",
		Description:     "Book debt collection",
	}
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_ReceiptWithVATProducesThreeBalancedLegs() {
	ctx := context.Background()
	txn := suite.receipt(1200, 200)

	var saved []domain.AccountingEntry
	suite.mockEntryRepo.On("ListEntriesByTransaction", ctx, txn.TransactionID).Return([]domain.AccountingEntry{}, nil)
	suite.mockEntryRepo.On("SaveEntries", ctx, mock.MatchedBy(func(entries []domain.AccountingEntry) bool {
		saved = entries
		return len(entries) == 3
	})).Return(nil)

	entries, err := suite.service.PostTransaction(ctx, suite.testCase, txn, suite.userID)

	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	debits := decimal.Zero
	credits := decimal.Zero
	byCode := map[string]domain.AccountingEntry{}
	for _, e := range saved {
		debits = debits.Add(e.DebitAmount)
		credits = credits.Add(e.CreditAmount)
		byCode[e.AccountCode] = e
	}
	assert.True(suite.T(), debits.Equal(credits), "entries must balance")
	assert.True(suite.T(), byCode["B100"].DebitAmount.Equal(decimal.NewFromInt(1200)), "bank leg carries the gross")
	assert.True(suite.T(), byCode["R100"].CreditAmount.Equal(decimal.NewFromInt(1000)), "analysis leg carries the net")
	assert.True(suite.T(), byCode[domain.DefaultVATControlCode].CreditAmount.Equal(decimal.NewFromInt(200)), "vat leg carries the vat")
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_PaymentMirrorsReceipt() {
	ctx := context.Background()
	txn := suite.receipt(500, 0)
	txn.TransactionType = domain.Payment
	txn.AccountCode = "D100"

	suite.mockEntryRepo.On("ListEntriesByTransaction", ctx, txn.TransactionID).Return([]domain.AccountingEntry{}, nil)
	suite.mockEntryRepo.On("SaveEntries", ctx, mock.MatchedBy(func(entries []domain.AccountingEntry) bool {
		if len(entries) != 2 {
			return false
		}
		byCode := map[string]domain.AccountingEntry{}
		for _, e := range entries {
			byCode[e.AccountCode] = e
		}
		return byCode["B100"].CreditAmount.Equal(decimal.NewFromInt(500)) &&
			byCode["D100"].DebitAmount.Equal(decimal.NewFromInt(500))
	})).Return(nil)

	entries, err := suite.service.PostTransaction(ctx, suite.testCase, txn, suite.userID)

	suite.Require().NoError(err)
	assert.Len(suite.T(), entries, 2, "no vat leg when vat is zero")
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_UsesConfiguredBankAccountCode() {
	ctx := context.Background()
	suite.testCase.BankDetails = &domain.BankDetails{
		AccountName: "Estate Current",
		BankName:    "Coutts",
		AccountCode: "B200",
	}
	txn := suite.receipt(100, 0)

	suite.mockEntryRepo.On("ListEntriesByTransaction", ctx, txn.TransactionID).Return([]domain.AccountingEntry{}, nil)
	suite.mockEntryRepo.On("SaveEntries", ctx, mock.MatchedBy(func(entries []domain.AccountingEntry) bool {
		for _, e := range entries {
			if e.AccountCode == "B200" && e.DebitAmount.Equal(decimal.NewFromInt(100)) {
				return true
			}
		}
		return false
	})).Return(nil)

	_, err := suite.service.PostTransaction(ctx, suite.testCase, txn, suite.userID)

	suite.Require().NoError(err)
	suite.mockEntryRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_AlreadyPostedIsIdempotent() {
	ctx := context.Background()
	txn := suite.receipt(100, 0)
	existing := []domain.AccountingEntry{
		{EntryID: uuid.NewString(), TransactionID: txn.TransactionID, AccountCode: "B100", DebitAmount: decimal.NewFromInt(100)},
	}

	suite.mockEntryRepo.On("ListEntriesByTransaction", ctx, txn.TransactionID).Return(existing, nil)

	entries, err := suite.service.PostTransaction(ctx, suite.testCase, txn, suite.userID)

	suite.Require().NoError(err)
	assert.Equal(suite.T(), existing, entries)
	suite.mockEntryRepo.AssertNotCalled(suite.T(), "SaveEntries", mock.Anything, mock.Anything)
}

func (suite *LedgerServiceTestSuite) TestPostTransaction_RejectsNonPositiveAmount() {
	ctx := context.Background()
	txn := suite.receipt(100, 0)
	txn.Amount = decimal.Zero

	suite.mockEntryRepo.On("ListEntriesByTransaction", ctx, txn.TransactionID).Return([]domain.AccountingEntry{}, nil)

	_, err := suite.service.PostTransaction(ctx, suite.testCase, txn, suite.userID)

	suite.Require().Error(err)
	assert.ErrorIs(suite.T(), err, services.ErrEntryAmountNotPositive)
}

func TestLedgerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
