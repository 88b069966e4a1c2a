package cashiering_test

import (
	"testing"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/utils/cashiering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryByCaseType_GroupsAndCounts(t *testing.T) {
	cases := []domain.Case{
		{CaseID: "c1", CaseType: domain.CaseTypeCVL},
		{CaseID: "c2", CaseType: domain.CaseTypeCVL},
		{CaseID: "c3", CaseType: domain.CaseTypeMVL},
		{CaseID: "c4"}, // empty case type skipped
	}
	txns := []domain.Transaction{
		txn("c1", domain.Receipt, "1000"),
		txn("c2", domain.Receipt, "500"),
		txn("c2", domain.Payment, "300", withAccountCode("D100")),
		txn("c3", domain.Receipt, "750"),
	}

	got := cashiering.SummaryByCaseType(cases, txns, testChart())

	require.Len(t, got, 2)

	cvl := got[domain.CaseTypeCVL]
	assert.Equal(t, 2, cvl.CaseCount)
	assert.True(t, dec("1200").Equal(cvl.TotalHeld), "held %s", cvl.TotalHeld)
	assert.True(t, dec("300").Equal(cvl.TotalDistributed))

	mvl := got[domain.CaseTypeMVL]
	assert.Equal(t, 1, mvl.CaseCount)
	assert.True(t, dec("750").Equal(mvl.TotalHeld))
}

// Funds held is clamped at zero per case; funds distributed is not clamped.
func TestSummaryByCaseType_ClampsHeldNotDistributed(t *testing.T) {
	cases := []domain.Case{
		{CaseID: "c1", CaseType: domain.CaseTypeCVA},
		{CaseID: "c2", CaseType: domain.CaseTypeCVA},
	}
	txns := []domain.Transaction{
		// c1 is overdrawn: held clamps to zero, the distribution still counts.
		txn("c1", domain.Payment, "400", withAccountCode("D100")),
		txn("c2", domain.Receipt, "100"),
	}

	got := cashiering.SummaryByCaseType(cases, txns, testChart())

	cva := got[domain.CaseTypeCVA]
	assert.True(t, dec("100").Equal(cva.TotalHeld), "held %s", cva.TotalHeld)
	assert.True(t, dec("400").Equal(cva.TotalDistributed))
}

func TestSummaryByCaseType_EmptyInputs(t *testing.T) {
	got := cashiering.SummaryByCaseType(nil, nil, nil)
	assert.Empty(t, got)
}
