package domain_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/PracPilot/insolvency_mgmt_app/internal/core/domain"
)

func TestCase_BondedAmount(t *testing.T) {
	tests := []struct {
		name string
		c    domain.Case
		want decimal.Decimal
	}{
		{
			name: "no increases",
			c: domain.Case{
				InitialBondValue: decimal.NewFromInt(50000),
			},
			want: decimal.NewFromInt(50000),
		},
		{
			name: "single increase",
			c: domain.Case{
				InitialBondValue: decimal.NewFromInt(50000),
				BondIncreases: []domain.BondIncrease{
					{IncreaseValue: decimal.NewFromInt(25000), Reason: "asset realisation above estimate"},
				},
			},
			want: decimal.NewFromInt(75000),
		},
		{
			name: "multiple increases accumulate",
			c: domain.Case{
				InitialBondValue: decimal.NewFromFloat(10000.50),
				BondIncreases: []domain.BondIncrease{
					{IncreaseValue: decimal.NewFromInt(5000)},
					{IncreaseValue: decimal.NewFromFloat(2499.50)},
				},
			},
			want: decimal.NewFromInt(17500),
		},
		{
			name: "zero initial bond",
			c:    domain.Case{},
			want: decimal.Zero,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.c.BondedAmount()
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestBankDetails_IsConfigured(t *testing.T) {
	tests := []struct {
		name    string
		details *domain.BankDetails
		want    bool
	}{
		{
			name:    "nil details",
			details: nil,
			want:    false,
		},
		{
			name:    "empty details",
			details: &domain.BankDetails{},
			want:    false,
		},
		{
			name:    "only account type set",
			details: &domain.BankDetails{AccountType: "Current"},
			want:    false,
		},
		{
			name:    "account number set",
			details: &domain.BankDetails{AccountNumber: "12345678"},
			want:    true,
		},
		{
			name: "fully populated",
			details: &domain.BankDetails{
				AccountName:   "Alpha Ltd (in administration)",
				BankName:      "Natwest",
				AccountNumber: "12345678",
				SortCode:      "01-02-03",
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.details.IsConfigured())
		})
	}
}
