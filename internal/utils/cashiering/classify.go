package cashiering

import (
	"strings"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
)

// distributionGroups are compared case-insensitively: both the stored group
// and the allow-list are lower-cased before comparison.
var distributionGroups = map[string]struct{}{
	"distributions":          {},
	"unsecured creditors":    {},
	"preferential creditors": {},
}

// realisationGroups are compared case-SENSITIVELY. The asymmetry with the
// distribution check reproduces the behaviour of the system this one
// replaces; see the pinning test before changing either side.
var realisationGroups = map[string]struct{}{
	domain.GroupAssetRealisations:          {},
	domain.GroupFixedChargeRealisations:    {},
	domain.GroupFloatingChargeRealisations: {},
}

// Classifier answers account-group questions for a chart of accounts
// snapshot. It is a pure value: build it once per snapshot and share it.
type Classifier struct {
	groupByCode map[string]string
}

// NewClassifier indexes the chart by account code.
func NewClassifier(chart []domain.ChartOfAccount) *Classifier {
	byCode := make(map[string]string, len(chart))
	for _, entry := range chart {
		byCode[entry.AccountCode] = entry.AccountGroup
	}
	return &Classifier{groupByCode: byCode}
}

// IsDistributionAccount reports whether the code belongs to a
// distribution-like account group. Unknown or empty codes are not special.
func (c *Classifier) IsDistributionAccount(code string) bool {
	group, ok := c.groupByCode[code]
	if !ok {
		return false
	}
	_, match := distributionGroups[strings.ToLower(group)]
	return match
}

// IsRealisationAccount reports whether the code belongs to a
// realisation-like account group. Unknown or empty codes are not special.
func (c *Classifier) IsRealisationAccount(code string) bool {
	group, ok := c.groupByCode[code]
	if !ok {
		return false
	}
	_, match := realisationGroups[group]
	return match
}
