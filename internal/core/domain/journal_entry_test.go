package domain_test

import (
	"testing"

	"github.com/andinosoft/contabilidad-api/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validLine(accountID int64, debit, credit string) domain.JournalLine {
	return domain.JournalLine{
		AccountID:   accountID,
		Description: "compra de suministros",
		Debit:       dec(debit),
		Credit:      dec(credit),
	}
}

func TestJournalLine_Validate(t *testing.T) {
	tests := []struct {
		name    string
		line    domain.JournalLine
		wantErr error
	}{
		{
			name: "valid debit line",
			line: validLine(10, "100", "0"),
		},
		{
			name: "valid credit line",
			line: validLine(10, "0", "100"),
		},
		{
			name:    "missing account",
			line:    domain.JournalLine{Description: "x", Debit: dec("100")},
			wantErr: domain.ErrLineAccountRequired,
		},
		{
			name:    "missing description",
			line:    domain.JournalLine{AccountID: 10, Description: "   ", Debit: dec("100")},
			wantErr: domain.ErrLineDescriptionRequired,
		},
		{
			name:    "both zero",
			line:    validLine(10, "0", "0"),
			wantErr: domain.ErrLineAmountRequired,
		},
		{
			name:    "both positive",
			line:    validLine(10, "50", "50"),
			wantErr: domain.ErrLineAmountRequired,
		},
		{
			name:    "negative credit alongside positive debit",
			line:    validLine(10, "100", "-5"),
			wantErr: domain.ErrLineAmountNegative,
		},
		{
			name:    "negative debit",
			line:    validLine(10, "-100", "0"),
			wantErr: domain.ErrLineAmountNegative,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.line.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJournalEntry_AddLine(t *testing.T) {
	entry := &domain.JournalEntry{Status: domain.EntryPending}

	require.NoError(t, entry.AddLine(validLine(1, "100", "0")))
	require.NoError(t, entry.AddLine(validLine(2, "0", "100")))

	assert.Equal(t, 1, entry.Lines[0].LineNumber)
	assert.Equal(t, 2, entry.Lines[1].LineNumber)
	assert.True(t, entry.IsBalanced)
	assert.True(t, entry.TotalDebit.Equal(dec("100")))
	assert.True(t, entry.TotalCredit.Equal(dec("100")))
}

func TestJournalEntry_AddLine_InvalidLeavesEntryUntouched(t *testing.T) {
	entry := &domain.JournalEntry{Status: domain.EntryPending}
	require.NoError(t, entry.AddLine(validLine(1, "100", "0")))

	err := entry.AddLine(validLine(2, "0", "0"))
	assert.ErrorIs(t, err, domain.ErrLineAmountRequired)
	assert.Len(t, entry.Lines, 1)
	assert.True(t, entry.TotalDebit.Equal(dec("100")))
}

func TestJournalEntry_AddLine_NegativeAmountRejected(t *testing.T) {
	entry := &domain.JournalEntry{Status: domain.EntryPending}

	err := entry.AddLine(validLine(1, "100", "-5"))
	assert.ErrorIs(t, err, domain.ErrLineAmountNegative)
	assert.Empty(t, entry.Lines)
	assert.True(t, entry.TotalDebit.IsZero())
	assert.True(t, entry.TotalCredit.IsZero())
}

func TestJournalEntry_EditLine(t *testing.T) {
	entry := &domain.JournalEntry{Status: domain.EntryPending}
	require.NoError(t, entry.AddLine(validLine(1, "100", "0")))
	require.NoError(t, entry.AddLine(validLine(2, "0", "100")))

	err := entry.EditLine(1, validLine(3, "150", "0"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), entry.Lines[0].AccountID)
	assert.Equal(t, 1, entry.Lines[0].LineNumber)
	assert.True(t, entry.Difference.Equal(dec("50")))
	assert.False(t, entry.IsBalanced)

	assert.ErrorIs(t, entry.EditLine(99, validLine(3, "1", "0")), domain.ErrLineNotFound)
}

func TestJournalEntry_DeleteLine_Renumbers(t *testing.T) {
	entry := &domain.JournalEntry{Status: domain.EntryPending}
	accounts := []int64{1, 2, 3, 4, 5}
	for _, id := range accounts {
		require.NoError(t, entry.AddLine(validLine(id, "10", "0")))
	}

	require.NoError(t, entry.DeleteLine(3))

	require.Len(t, entry.Lines, 4)
	wantAccounts := []int64{1, 2, 4, 5}
	for i, line := range entry.Lines {
		assert.Equal(t, i+1, line.LineNumber)
		assert.Equal(t, wantAccounts[i], line.AccountID)
	}
	assert.True(t, entry.TotalDebit.Equal(dec("40")))

	assert.ErrorIs(t, entry.DeleteLine(42), domain.ErrLineNotFound)
}

func TestJournalEntry_StampLines(t *testing.T) {
	rate := dec("3.75")
	entry := &domain.JournalEntry{
		Status:       domain.EntryPending,
		CurrencyCode: "USD",
		ExchangeRate: &rate,
	}
	line := validLine(1, "100", "0")
	line.CurrencyCode = "PEN" // stale value from line-edit time
	require.NoError(t, entry.AddLine(line))

	entry.StampLines()

	assert.Equal(t, "USD", entry.Lines[0].CurrencyCode)
	require.NotNil(t, entry.Lines[0].ExchangeRate)
	assert.True(t, entry.Lines[0].ExchangeRate.Equal(rate))
}

func TestCanEntryTransition(t *testing.T) {
	tests := []struct {
		status domain.EntryStatus
		action domain.EntryAction
		want   bool
	}{
		{domain.EntryPending, domain.EntryActionEdit, true},
		{domain.EntryPending, domain.EntryActionDelete, true},
		{domain.EntryPending, domain.EntryActionApprove, true},
		{domain.EntryPending, domain.EntryActionAnnul, false},
		{domain.EntryApproved, domain.EntryActionEdit, false},
		{domain.EntryApproved, domain.EntryActionDelete, false},
		{domain.EntryApproved, domain.EntryActionApprove, false},
		{domain.EntryApproved, domain.EntryActionAnnul, true},
		{domain.EntryAnnulled, domain.EntryActionEdit, false},
		{domain.EntryAnnulled, domain.EntryActionAnnul, false},
		{domain.EntryAnnulled, domain.EntryActionApprove, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.CanEntryTransition(tt.status, tt.action),
			"status=%s action=%s", tt.status, tt.action)
	}
}

func TestJournalEntry_CanApprove_RequiresBalance(t *testing.T) {
	entry := &domain.JournalEntry{Status: domain.EntryPending}
	require.NoError(t, entry.AddLine(validLine(1, "150", "0")))
	require.NoError(t, entry.AddLine(validLine(2, "0", "100")))
	assert.False(t, entry.CanApprove())

	require.NoError(t, entry.EditLine(1, validLine(1, "100", "0")))
	assert.True(t, entry.CanApprove())

	entry.Status = domain.EntryApproved
	assert.False(t, entry.CanApprove())
}
