package cashiering_test

import (
	"testing"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
	"github.com/PracPilot/insolvency_mgmt_app/internal/utils/cashiering"
	"github.com/stretchr/testify/assert"
)

func TestClassifier_Distribution(t *testing.T) {
	cls := cashiering.NewClassifier(testChart())

	assert.True(t, cls.IsDistributionAccount("D100"))
	assert.True(t, cls.IsDistributionAccount("D200"))
	assert.True(t, cls.IsDistributionAccount("D300"))
	assert.False(t, cls.IsDistributionAccount("R100"))
	assert.False(t, cls.IsDistributionAccount("E100"))
}

func TestClassifier_UnknownOrEmptyCode(t *testing.T) {
	cls := cashiering.NewClassifier(testChart())

	assert.False(t, cls.IsDistributionAccount("ZZZ"))
	assert.False(t, cls.IsDistributionAccount(""))
	assert.False(t, cls.IsRealisationAccount("ZZZ"))
	assert.False(t, cls.IsRealisationAccount(""))
}

func TestClassifier_Realisation(t *testing.T) {
	cls := cashiering.NewClassifier(testChart())

	assert.True(t, cls.IsRealisationAccount("R100"))
	assert.True(t, cls.IsRealisationAccount("R200"))
	assert.True(t, cls.IsRealisationAccount("R300"))
	assert.False(t, cls.IsRealisationAccount("D100"))
}

// TestClassifier_CaseNormalizationAsymmetry pins the intentional asymmetry
// between the two checks: distribution groups match regardless of case,
// realisation groups only on an exact match. Product sign-off is required
// before harmonising this behaviour.
func TestClassifier_CaseNormalizationAsymmetry(t *testing.T) {
	cls := cashiering.NewClassifier([]domain.ChartOfAccount{
		chartEntry("D900", "DISTRIBUTIONS"),
		chartEntry("D901", "unsecured creditors"),
		chartEntry("R900", "ASSET REALISATIONS"),
		chartEntry("R901", "asset realisations"),
	})

	// Distribution check lower-cases both sides.
	assert.True(t, cls.IsDistributionAccount("D900"))
	assert.True(t, cls.IsDistributionAccount("D901"))

	// Realisation check does not normalise; only "Asset Realisations" matches.
	assert.False(t, cls.IsRealisationAccount("R900"))
	assert.False(t, cls.IsRealisationAccount("R901"))
}

// Scenario D: the chart failed to load, so everything classifies as "not
// special" and no classification-dependent figure is produced.
func TestClassifier_EmptyChart(t *testing.T) {
	cls := cashiering.NewClassifier(nil)

	assert.False(t, cls.IsDistributionAccount("D100"))
	assert.False(t, cls.IsRealisationAccount("R100"))
}
