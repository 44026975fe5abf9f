package domain

import "github.com/shopspring/decimal"

// balancedTolerance is the absolute rounding tolerance under which an entry
// counts as balanced. A difference of exactly 0.01 is NOT balanced.
var balancedTolerance = decimal.New(1, -2) // 0.01

// BalanceSummary holds the derived totals of a journal entry's lines.
type BalanceSummary struct {
	TotalDebit  decimal.Decimal `json:"totalDebe"`
	TotalCredit decimal.Decimal `json:"totalHaber"`
	Difference  decimal.Decimal `json:"diferencia"`
	IsBalanced  bool            `json:"estaCuadrado"`
}

// ComputeBalance sums the debit and credit columns of the given lines and
// derives the difference and the balanced flag. It is a pure function and is
// re-run on every line mutation.
func ComputeBalance(lines []JournalLine) BalanceSummary {
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, line := range lines {
		totalDebit = totalDebit.Add(line.Debit)
		totalCredit = totalCredit.Add(line.Credit)
	}
	difference := totalDebit.Sub(totalCredit)
	return BalanceSummary{
		TotalDebit:  totalDebit,
		TotalCredit: totalCredit,
		Difference:  difference,
		IsBalanced:  difference.Abs().LessThan(balancedTolerance),
	}
}
