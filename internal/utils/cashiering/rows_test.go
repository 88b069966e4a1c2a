package cashiering_test

import (
	"testing"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/utils/cashiering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatten(c domain.Case, txns []domain.Transaction, entries []domain.AccountingEntry) []domain.BankAccountRow {
	cls := cashiering.NewClassifier(testChart())
	agg := cashiering.BuildCaseAggregate(c, txns, entries, cls, vatCode)
	return cashiering.FlattenToRows(agg, c, txns, entries, cls, vatCode)
}

// P3: two configured accounts yield two rows, one yields one, none yields
// exactly one fallback row.
func TestFlattenToRows_RowCounts(t *testing.T) {
	primary := &domain.BankDetails{AccountName: "Estate Current", BankName: "Barclays"}
	secondary := &domain.BankDetails{AccountName: "Estate Deposit", BankName: "Lloyds"}

	tests := []struct {
		name      string
		c         domain.Case
		wantRows  int
		wantRowID string
	}{
		{
			name:      "both accounts",
			c:         domain.Case{CaseID: "c1", BankDetails: primary, SecondaryBankDetails: secondary},
			wantRows:  2,
			wantRowID: "c1-primary",
		},
		{
			name:      "primary only",
			c:         domain.Case{CaseID: "c2", BankDetails: primary},
			wantRows:  1,
			wantRowID: "c2-primary",
		},
		{
			name:      "secondary only",
			c:         domain.Case{CaseID: "c3", SecondaryBankDetails: secondary},
			wantRows:  1,
			wantRowID: "c3-secondary",
		},
		{
			name:      "none configured",
			c:         domain.Case{CaseID: "c4"},
			wantRows:  1,
			wantRowID: "c4-no-account",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := flatten(tt.c, nil, nil)
			require.Len(t, rows, tt.wantRows)
			assert.Equal(t, tt.wantRowID, rows[0].RowID)
		})
	}
}

func TestFlattenToRows_FallbackRowCarriesCaseWideFigures(t *testing.T) {
	c := domain.Case{CaseID: "c1", CompanyName: "Acme", SoaETR: dec("50000")}
	txns := []domain.Transaction{
		txn("c1", domain.Receipt, "1200"),
		txn("c1", domain.Payment, "200"),
	}

	rows := flatten(c, txns, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, domain.NoBankAccountLabel, rows[0].AccountType)
	assert.Empty(t, rows[0].TargetAccount)
	assert.True(t, dec("1000").Equal(rows[0].Balance), "balance %s", rows[0].Balance)
	assert.True(t, dec("50000").Equal(rows[0].SoaETR))
}

// Scenario C: an approved distribution payment on the primary account shows
// on the primary row only.
func TestFlattenToRows_ScenarioC_TargetScopedFundsDistributed(t *testing.T) {
	c := domain.Case{
		CaseID:               "c1",
		CompanyName:          "Acme",
		BankDetails:          &domain.BankDetails{AccountName: "Estate Current"},
		SecondaryBankDetails: &domain.BankDetails{AccountName: "Estate Deposit"},
	}
	txns := []domain.Transaction{
		txn("c1", domain.Payment, "1000", withAccountCode("D100"), withTarget(domain.TargetPrimary)),
	}

	rows := flatten(c, txns, nil)

	require.Len(t, rows, 2)
	assert.Equal(t, "c1-primary", rows[0].RowID)
	assert.True(t, dec("1000").Equal(rows[0].FundsDistributed), "primary %s", rows[0].FundsDistributed)
	assert.Equal(t, "c1-secondary", rows[1].RowID)
	assert.True(t, rows[1].FundsDistributed.IsZero(), "secondary %s", rows[1].FundsDistributed)
}

func TestFlattenToRows_PerAccountBalancesAndVAT(t *testing.T) {
	c := domain.Case{
		CaseID:               "c1",
		BankDetails:          &domain.BankDetails{AccountName: "Current"},
		SecondaryBankDetails: &domain.BankDetails{AccountName: "Deposit"},
	}
	txns := []domain.Transaction{
		txn("c1", domain.Receipt, "1000", withID("t1"), withTarget(domain.TargetPrimary)),
		txn("c1", domain.Receipt, "600", withID("t2"), withTarget(domain.TargetSecondary)),
	}
	entries := []domain.AccountingEntry{
		entry("c1", "t1", vatCode, "0", "200"),
		entry("c1", "t2", vatCode, "0", "100"),
	}

	rows := flatten(c, txns, entries)

	require.Len(t, rows, 2)
	assert.True(t, dec("1000").Equal(rows[0].Balance))
	assert.True(t, dec("-200").Equal(rows[0].VATBalance), "primary vat %s", rows[0].VATBalance)
	assert.True(t, dec("600").Equal(rows[1].Balance))
	assert.True(t, dec("-100").Equal(rows[1].VATBalance), "secondary vat %s", rows[1].VATBalance)
}

func TestBuildBankAccountRows_SortedByCompanyName(t *testing.T) {
	snap := domain.Snapshot{
		Cases: []domain.Case{
			{CaseID: "c1", CompanyName: "Zenith Ltd"},
			{CaseID: "c2", CompanyName: "alpha ltd"},
			{CaseID: "c3", CompanyName: "Beta Ltd"},
		},
		Chart: testChart(),
	}

	rows := cashiering.BuildBankAccountRows(snap, vatCode)

	require.Len(t, rows, 3)
	assert.Equal(t, "alpha ltd", rows[0].CompanyName)
	assert.Equal(t, "Beta Ltd", rows[1].CompanyName)
	assert.Equal(t, "Zenith Ltd", rows[2].CompanyName)
}
