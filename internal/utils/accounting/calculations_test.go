package accounting_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/finandes/finops_backend/internal/core/domain"
	"github.com/finandes/finops_backend/internal/utils/accounting"
)

func TestRoundAmount(t *testing.T) {
	assert.True(t, decimal.NewFromFloat(10.35).Equal(accounting.RoundAmount(decimal.NewFromFloat(10.345))))
	assert.True(t, decimal.NewFromFloat(10.34).Equal(accounting.RoundAmount(decimal.NewFromFloat(10.344))))
	// Half rounds away from zero in both directions
	assert.True(t, decimal.NewFromFloat(-10.35).Equal(accounting.RoundAmount(decimal.NewFromFloat(-10.345))))
}

func TestConvertAtRate(t *testing.T) {
	usd := decimal.NewFromInt(100)
	rate := decimal.NewFromFloat(1052.5)
	assert.True(t, decimal.NewFromInt(105250).Equal(accounting.ConvertAtRate(usd, rate)))

	// Result rounds to cents
	got := accounting.ConvertAtRate(decimal.NewFromFloat(33.33), decimal.NewFromFloat(1000.1234))
	assert.True(t, decimal.NewFromFloat(33334.11).Equal(got), "got %s", got)
}

func TestCommissionFromPercentage(t *testing.T) {
	gross := decimal.NewFromInt(1000)
	assert.True(t, decimal.NewFromInt(100).Equal(accounting.CommissionFromPercentage(gross, decimal.NewFromInt(10))))
	assert.True(t, decimal.NewFromFloat(12.35).Equal(accounting.CommissionFromPercentage(gross, decimal.NewFromFloat(1.2345))))
}

func TestChequeInterest(t *testing.T) {
	nominal := decimal.NewFromInt(100000)
	rate := decimal.NewFromFloat(0.60) // 60% annual

	// 100000 * 0.60 * 30 / 365 = 4931.5068... -> 4931.51
	got := accounting.ChequeInterest(nominal, rate, 30, 365)
	assert.True(t, decimal.NewFromFloat(4931.51).Equal(got), "got %s", got)

	// Base defaults to 365 when non-positive
	assert.True(t, got.Equal(accounting.ChequeInterest(nominal, rate, 30, 0)))

	// 360-day base
	got360 := accounting.ChequeInterest(nominal, rate, 30, 360)
	assert.True(t, decimal.NewFromInt(5000).Equal(got360), "got %s", got360)

	// Zero days means zero interest
	assert.True(t, accounting.ChequeInterest(nominal, rate, 0, 365).IsZero())
}

func TestDaysBetween(t *testing.T) {
	from := time.Date(2025, 3, 1, 23, 0, 0, 0, time.UTC)
	to := time.Date(2025, 3, 31, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 30, accounting.DaysBetween(from, to))

	// Time of day is ignored and order matters
	assert.Equal(t, 0, accounting.DaysBetween(to, to))
	assert.Equal(t, -30, accounting.DaysBetween(to, from))
}

func TestSumDebitsAndCredits(t *testing.T) {
	lines := []domain.JournalLine{
		{Amount: decimal.NewFromInt(100), Side: domain.Debit},
		{Amount: decimal.NewFromInt(40), Side: domain.Credit},
		{Amount: decimal.NewFromInt(60), Side: domain.Credit},
	}
	assert.True(t, decimal.NewFromInt(100).Equal(accounting.SumDebits(lines)))
	assert.True(t, decimal.NewFromInt(100).Equal(accounting.SumCredits(lines)))
}
