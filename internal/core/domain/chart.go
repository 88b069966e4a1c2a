package domain

// Account group names as they appear in the chart of accounts. The values are
// free text in the data model; classification compares against these.
const (
	GroupDistributions              = "Distributions"
	GroupUnsecuredCreditors         = "Unsecured Creditors"
	GroupPreferentialCreditors      = "Preferential Creditors"
	GroupAssetRealisations          = "Asset Realisations"
	GroupFixedChargeRealisations    = "Fixed Charge Realisations"
	GroupFloatingChargeRealisations = "Floating Charge Realisations"
	GroupRepresentedBy              = "Represented By"
)

// DefaultVATControlCode is the chart code of the VAT control account unless
// overridden in configuration.
const DefaultVATControlCode = "V100"

// ChartOfAccount is a single entry in the practice's chart of accounts.
type ChartOfAccount struct {
	AccountCode  string `json:"accountCode"` // Primary Key
	Name         string `json:"name"`
	AccountGroup string `json:"accountGroup"`
	IsSystem     bool   `json:"isSystem"` // Seeded accounts that cannot be deleted
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// DefaultChart is the seeded insolvency chart of accounts. System rows are
// required by the cashiering workflows (bank control, VAT control).
var DefaultChart = []ChartOfAccount{
	{AccountCode: "R100", Name: "Book Debts", AccountGroup: GroupAssetRealisations},
	{AccountCode: "R110", Name: "Plant and Machinery", AccountGroup: GroupAssetRealisations},
	{AccountCode: "R120", Name: "Stock", AccountGroup: GroupAssetRealisations},
	{AccountCode: "R200", Name: "Freehold Property", AccountGroup: GroupFixedChargeRealisations},
	{AccountCode: "R300", Name: "Debenture Assets", AccountGroup: GroupFloatingChargeRealisations},
	{AccountCode: "D100", Name: "First Distribution", AccountGroup: GroupDistributions},
	{AccountCode: "D200", Name: "Unsecured Dividend", AccountGroup: GroupUnsecuredCreditors},
	{AccountCode: "D300", Name: "Preferential Dividend", AccountGroup: GroupPreferentialCreditors},
	{AccountCode: "E100", Name: "Office Holder Fees", AccountGroup: "Costs of Realisation"},
	{AccountCode: "E110", Name: "Legal Fees", AccountGroup: "Costs of Realisation"},
	{AccountCode: "E120", Name: "Agents Fees", AccountGroup: "Costs of Realisation"},
	{AccountCode: "B100", Name: "Estate Bank Account", AccountGroup: GroupRepresentedBy, IsSystem: true},
	{AccountCode: DefaultVATControlCode, Name: "VAT Control", AccountGroup: GroupRepresentedBy, IsSystem: true},
}
