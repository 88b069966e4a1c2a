package dto

import (
	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
)

// CreateChartAccountRequest defines the data needed to add a chart entry.
type CreateChartAccountRequest struct {
	AccountCode  string `json:"accountCode" binding:"required,max=10"`
	Name         string `json:"name" binding:"required"`
	AccountGroup string `json:"accountGroup" binding:"required"`
}

// UpdateChartAccountRequest defines the fields a chart entry allows changing.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateChartAccountRequest struct {
	Name         *string `json:"name"`
	AccountGroup *string `json:"accountGroup"`
	IsActive     *bool   `json:"isActive"`
}

// ChartAccountResponse defines the data returned for a chart entry.
type ChartAccountResponse struct {
	AccountCode  string `json:"accountCode"`
	Name         string `json:"name"`
	AccountGroup string `json:"accountGroup"`
	IsSystem     bool   `json:"isSystem"`
	IsActive     bool   `json:"isActive"`
}

// ListChartAccountsResponse wraps the full chart of accounts.
type ListChartAccountsResponse struct {
	Accounts []ChartAccountResponse `json:"accounts"`
}

// ToChartAccountResponse converts a domain.ChartOfAccount to its DTO
func ToChartAccountResponse(a *domain.ChartOfAccount) ChartAccountResponse {
	return ChartAccountResponse{
		AccountCode:  a.AccountCode,
		Name:         a.Name,
		AccountGroup: a.AccountGroup,
		IsSystem:     a.IsSystem,
		IsActive:     a.IsActive,
	}
}

// ToListChartAccountsResponse converts a slice of chart entries to the list DTO
func ToListChartAccountsResponse(accounts []domain.ChartOfAccount) ListChartAccountsResponse {
	out := ListChartAccountsResponse{Accounts: make([]ChartAccountResponse, 0, len(accounts))}
	for i := range accounts {
		out.Accounts = append(out.Accounts, ToChartAccountResponse(&accounts[i]))
	}
	return out
}
