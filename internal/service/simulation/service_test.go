package simulation

import (
	"testing"

	"github.com/gajihub/payroll-backend-go/internal/domain/simulation"
	statutoryService "github.com/gajihub/payroll-backend-go/internal/service/statutory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newTestService() *Service {
	return NewService(statutoryService.NewCalculator())
}

func TestProjectRetirement_ZeroIterations(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	result := svc.ProjectRetirement(simulation.RetirementParams{
		CurrentAge:         55,
		RetirementAge:      55,
		CurrentSalary:      d("6000"),
		CurrentBalance:     d("250000"),
		SalaryIncrementPct: d("3"),
		AnnualDividendPct:  d("5"),
	})

	assert.True(t, result.FinalBalance.Equal(d("250000")))
	assert.Empty(t, result.Timeline)
}

func TestProjectRetirement_RetirementBeforeCurrentAge(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	result := svc.ProjectRetirement(simulation.RetirementParams{
		CurrentAge:     60,
		RetirementAge:  55,
		CurrentSalary:  d("6000"),
		CurrentBalance: d("100000"),
	})

	assert.True(t, result.FinalBalance.Equal(d("100000")))
	assert.Empty(t, result.Timeline)
}

func TestProjectRetirement_OneYearHandComputed(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	// Salary 4000: EPF employee 440, employer 520, annual 11520.
	// Contribution first: 10000 + 11520 = 21520, then 5% dividend on the
	// new total: 21520 * 1.05 = 22596. Dividend-on-opening-balance would
	// give 22096 instead, so this pins the compounding order.
	result := svc.ProjectRetirement(simulation.RetirementParams{
		CurrentAge:         30,
		RetirementAge:      31,
		CurrentSalary:      d("4000"),
		CurrentBalance:     d("10000"),
		SalaryIncrementPct: d("3"),
		AnnualDividendPct:  d("5"),
	})

	assert.True(t, result.FinalBalance.Equal(d("22596")), "got %s", result.FinalBalance)
	require.Len(t, result.Timeline, 1)
	assert.Equal(t, 31, result.Timeline[0].Age)
	assert.True(t, result.Timeline[0].Balance.Equal(d("22596")))
}

func TestProjectRetirement_TimelineEveryFifthYearAndFinal(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	result := svc.ProjectRetirement(simulation.RetirementParams{
		CurrentAge:         30,
		RetirementAge:      42, // 12 years: snapshots at years 5, 10, and final 12
		CurrentSalary:      d("5000"),
		CurrentBalance:     d("0"),
		SalaryIncrementPct: d("4"),
		AnnualDividendPct:  d("5.5"),
	})

	require.Len(t, result.Timeline, 3)
	assert.Equal(t, 35, result.Timeline[0].Age)
	assert.Equal(t, 40, result.Timeline[1].Age)
	assert.Equal(t, 42, result.Timeline[2].Age)
	assert.True(t, result.Timeline[2].Balance.Equal(result.FinalBalance))

	// Balances grow monotonically across snapshots.
	assert.True(t, result.Timeline[1].Balance.GreaterThan(result.Timeline[0].Balance))
	assert.True(t, result.Timeline[2].Balance.GreaterThan(result.Timeline[1].Balance))
}

func TestProjectRetirement_FinalYearOnMultipleOfFiveNotDuplicated(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	result := svc.ProjectRetirement(simulation.RetirementParams{
		CurrentAge:        30,
		RetirementAge:     40, // 10 years: snapshots at 5 and 10 only
		CurrentSalary:     d("5000"),
		CurrentBalance:    d("0"),
		AnnualDividendPct: d("5"),
	})

	require.Len(t, result.Timeline, 2)
	assert.Equal(t, 35, result.Timeline[0].Age)
	assert.Equal(t, 40, result.Timeline[1].Age)
}

func TestProjectEisBenefits_CappedWage(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	payouts := svc.ProjectEisBenefits(d("6000"))

	require.Len(t, payouts, 6)
	assert.Equal(t, 1, payouts[0].Month)
	assert.True(t, payouts[0].Amount.Equal(d("3960")), "got %s", payouts[0].Amount) // 4950 * 0.8
	assert.True(t, payouts[1].Amount.Equal(d("2475")))
	assert.True(t, payouts[5].Amount.Equal(d("1485")))
	assert.Equal(t, 6, payouts[5].Month)
}

func TestProjectEisBenefits_UncappedWage(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	payouts := svc.ProjectEisBenefits(d("3000"))

	require.Len(t, payouts, 6)
	assert.True(t, payouts[0].Amount.Equal(d("2400")))
	assert.True(t, payouts[2].Amount.Equal(d("1200")))
	assert.True(t, payouts[4].Amount.Equal(d("900")))
}

func TestProjectEisBenefits_NonPositiveWage(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	assert.Empty(t, svc.ProjectEisBenefits(decimal.Zero))
	assert.Empty(t, svc.ProjectEisBenefits(d("-500")))
}
