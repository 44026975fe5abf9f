package domain_test

import (
	"testing"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeBalance(t *testing.T) {
	tests := []struct {
		name         string
		lines        []domain.JournalLine
		wantDebit    string
		wantCredit   string
		wantDiff     string
		wantBalanced bool
	}{
		{
			name:         "empty lines",
			lines:        nil,
			wantDebit:    "0",
			wantCredit:   "0",
			wantDiff:     "0",
			wantBalanced: true,
		},
		{
			name: "balanced pair",
			lines: []domain.JournalLine{
				{Debit: dec("100"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: dec("100")},
			},
			wantDebit:    "100",
			wantCredit:   "100",
			wantDiff:     "0",
			wantBalanced: true,
		},
		{
			name: "unbalanced by 50",
			lines: []domain.JournalLine{
				{Debit: dec("150"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: dec("100")},
			},
			wantDebit:    "150",
			wantCredit:   "100",
			wantDiff:     "50",
			wantBalanced: false,
		},
		{
			name: "difference just under tolerance is balanced",
			lines: []domain.JournalLine{
				{Debit: dec("100.0099"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: dec("100")},
			},
			wantDiff:     "0.0099",
			wantDebit:    "100.0099",
			wantCredit:   "100",
			wantBalanced: true,
		},
		{
			name: "difference at tolerance is not balanced",
			lines: []domain.JournalLine{
				{Debit: dec("100.01"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: dec("100")},
			},
			wantDebit:    "100.01",
			wantCredit:   "100",
			wantDiff:     "0.01",
			wantBalanced: false,
		},
		{
			name: "negative difference uses absolute value",
			lines: []domain.JournalLine{
				{Debit: dec("100"), Credit: decimal.Zero},
				{Debit: decimal.Zero, Credit: dec("100.005")},
			},
			wantDebit:    "100",
			wantCredit:   "100.005",
			wantDiff:     "-0.005",
			wantBalanced: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.ComputeBalance(tt.lines)
			assert.True(t, got.TotalDebit.Equal(dec(tt.wantDebit)), "totalDebit = %s", got.TotalDebit)
			assert.True(t, got.TotalCredit.Equal(dec(tt.wantCredit)), "totalCredit = %s", got.TotalCredit)
			assert.True(t, got.Difference.Equal(dec(tt.wantDiff)), "difference = %s", got.Difference)
			assert.Equal(t, tt.wantBalanced, got.IsBalanced)
		})
	}
}

func TestComputeBalance_DifferenceIdentity(t *testing.T) {
	lines := []domain.JournalLine{
		{Debit: dec("10.33"), Credit: decimal.Zero},
		{Debit: dec("0.01"), Credit: decimal.Zero},
		{Debit: decimal.Zero, Credit: dec("7.5")},
		{Debit: decimal.Zero, Credit: dec("1.99")},
	}
	got := domain.ComputeBalance(lines)
	assert.True(t, got.TotalDebit.Sub(got.TotalCredit).Equal(got.Difference))
}
