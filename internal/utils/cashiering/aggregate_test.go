package cashiering_test

import (
	"testing"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/utils/cashiering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVATControlBalance_SignConvention(t *testing.T) {
	entries := []domain.AccountingEntry{
		entry("case-1", "t1", vatCode, "150", "0"),
		entry("case-1", "t2", vatCode, "0", "100"),
		entry("case-1", "t3", "R100", "0", "500"), // other code ignored
		entry("case-2", "t4", vatCode, "900", "0"), // other case ignored
	}

	got := cashiering.VATControlBalance("case-1", vatCode, entries)
	assert.True(t, dec("50").Equal(got), "got %s", got) // net debit = refund position
}

func TestVATControlBalance_EmptyIsZero(t *testing.T) {
	assert.True(t, cashiering.VATControlBalance("case-1", vatCode, nil).IsZero())
}

func TestAssetRealisations_OnlyApprovedRealisationEntries(t *testing.T) {
	cls := cashiering.NewClassifier(testChart())
	txns := []domain.Transaction{
		txn("case-1", domain.Receipt, "1000", withID("t-app")),
		txn("case-1", domain.Receipt, "500", withID("t-pend"), withStatus(domain.StatusPendingApproval)),
	}
	entries := []domain.AccountingEntry{
		entry("case-1", "t-app", "R100", "0", "1000"),
		entry("case-1", "t-app", "R100", "100", "0"),  // netted against the credit
		entry("case-1", "t-app", "E100", "0", "300"),  // non-realisation group
		entry("case-1", "t-pend", "R100", "0", "500"), // unapproved transaction
	}

	got := cashiering.AssetRealisations("case-1", txns, entries, cls)
	assert.True(t, dec("900").Equal(got), "got %s", got)
}

// P2 / Scenario A: bondedAmount is initial bond plus increases; realisations
// above the bond set the underbonded flag with the shortfall exposed.
func TestBuildCaseAggregate_BondingScenarioA(t *testing.T) {
	cls := cashiering.NewClassifier(testChart())
	c := domain.Case{
		CaseID:           "case-X",
		CompanyName:      "Example Trading Ltd",
		CaseType:         domain.CaseTypeCVL,
		InitialBondValue: dec("10000"),
	}
	txns := []domain.Transaction{txn("case-X", domain.Receipt, "15000", withID("t1"))}
	entries := []domain.AccountingEntry{entry("case-X", "t1", "R100", "0", "15000")}

	agg := cashiering.BuildCaseAggregate(c, txns, entries, cls, vatCode)

	assert.True(t, dec("10000").Equal(agg.BondedAmount), "bonded %s", agg.BondedAmount)
	assert.True(t, dec("15000").Equal(agg.AssetRealisations))
	assert.True(t, agg.IsUnderbonded)
	assert.True(t, dec("5000").Equal(agg.BondingShortfall), "shortfall %s", agg.BondingShortfall)
}

func TestBuildCaseAggregate_BondIncreasesCount(t *testing.T) {
	cls := cashiering.NewClassifier(testChart())
	c := domain.Case{
		CaseID:           "case-1",
		InitialBondValue: dec("10000"),
		BondIncreases: []domain.BondIncrease{
			{IncreaseValue: dec("2500")},
			{IncreaseValue: dec("2500")},
		},
	}

	agg := cashiering.BuildCaseAggregate(c, nil, nil, cls, vatCode)

	require.True(t, dec("15000").Equal(agg.BondedAmount), "bonded %s", agg.BondedAmount)
	assert.False(t, agg.IsUnderbonded)
	assert.True(t, agg.BondingShortfall.IsZero())
}

// Scenario D: with an empty chart every classification-dependent figure
// computes to zero rather than failing.
func TestBuildCaseAggregate_EmptyChartDegrades(t *testing.T) {
	cls := cashiering.NewClassifier(nil)
	c := domain.Case{CaseID: "case-1", CompanyName: "Acme"}
	txns := []domain.Transaction{
		txn("case-1", domain.Receipt, "1000", withID("t1")),
		txn("case-1", domain.Payment, "200", withAccountCode("D100"), withID("t2")),
	}
	entries := []domain.AccountingEntry{entry("case-1", "t1", "R100", "0", "1000")}

	agg := cashiering.BuildCaseAggregate(c, txns, entries, cls, vatCode)

	assert.True(t, agg.AssetRealisations.IsZero())
	assert.True(t, agg.FundsDistributed.IsZero())
	// The pure balance fold does not depend on the chart.
	assert.True(t, dec("800").Equal(agg.AccountBalance), "balance %s", agg.AccountBalance)
}

func TestBuildCaseAggregate_NoActivityIsZeroValued(t *testing.T) {
	cls := cashiering.NewClassifier(testChart())
	agg := cashiering.BuildCaseAggregate(domain.Case{CaseID: "case-1"}, nil, nil, cls, vatCode)

	assert.True(t, agg.AccountBalance.IsZero())
	assert.True(t, agg.VATControlBalance.IsZero())
	assert.True(t, agg.AssetRealisations.IsZero())
	assert.Nil(t, agg.LastBankRequestDate)
	assert.False(t, agg.IsUnderbonded)
}
