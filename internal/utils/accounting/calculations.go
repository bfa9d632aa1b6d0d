package accounting

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finandes/finops_backend/internal/core/domain"
)

// Monetary amounts round to 2 decimal places, rates and percentages to 4.
// shopspring's Round is round-half-away-from-zero, which is the convention
// every derived amount in the posting rules uses. Rounding happens at the
// point a derived amount is computed, never at aggregation time.
const (
	AmountPlaces = 2
	RatePlaces   = 4
)

// RoundAmount rounds a currency amount to 2 decimal places.
func RoundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(AmountPlaces)
}

// RoundRate rounds a rate or percentage to 4 decimal places.
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return d.Round(RatePlaces)
}

// ConvertAtRate converts an amount into another currency at the given
// exchange rate, rounding the result to 2 decimal places.
func ConvertAtRate(amount, rate decimal.Decimal) decimal.Decimal {
	return RoundAmount(amount.Mul(rate))
}

// CommissionFromPercentage derives a commission amount from a gross amount
// and a percentage (e.g. 10 for 10%).
func CommissionFromPercentage(gross, percentage decimal.Decimal) decimal.Decimal {
	return RoundAmount(gross.Mul(percentage).Div(decimal.NewFromInt(100)))
}

// ChequeInterest computes the discount interest for a cheque held for the
// given number of days: nominal * annualRate * days / base, rounded to 2dp.
func ChequeInterest(nominal, annualRate decimal.Decimal, days, base int) decimal.Decimal {
	if base <= 0 {
		base = 365
	}
	interest := nominal.
		Mul(annualRate).
		Mul(decimal.NewFromInt(int64(days))).
		Div(decimal.NewFromInt(int64(base)))
	return RoundAmount(interest)
}

// DaysBetween returns the whole number of calendar days from one date to
// another, ignoring the time-of-day component. May be zero or negative.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// SumDebits adds up the debit legs of a line set.
func SumDebits(lines []domain.JournalLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.DebitAmount())
	}
	return sum
}

// SumCredits adds up the credit legs of a line set.
func SumCredits(lines []domain.JournalLine) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		sum = sum.Add(l.CreditAmount())
	}
	return sum
}
