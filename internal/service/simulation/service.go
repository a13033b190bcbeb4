package simulation

import (
	"github.com/gajihub/payroll-backend-go/internal/domain/simulation"
	statutoryService "github.com/gajihub/payroll-backend-go/internal/service/statutory"
	"github.com/shopspring/decimal"
)

var (
	monthsPerYear = decimal.NewFromInt(12)
	hundred       = decimal.NewFromInt(100)

	// EIS job-loss allowance: assumed wage cap and the published payout
	// rates for months 1..6 of unemployment.
	eisWageCap     = decimal.NewFromInt(4950)
	eisPayoutRates = []decimal.Decimal{
		decimal.RequireFromString("0.8"),
		decimal.RequireFromString("0.5"),
		decimal.RequireFromString("0.4"),
		decimal.RequireFromString("0.4"),
		decimal.RequireFromString("0.3"),
		decimal.RequireFromString("0.3"),
	}
)

type Service struct {
	calculator *statutoryService.Calculator
}

func NewService(calculator *statutoryService.Calculator) *Service {
	return &Service{calculator: calculator}
}

// ProjectRetirement compounds EPF contributions and dividends year by year
// until retirement age. Within each simulated year the ordering is fixed:
// the year's contributions are added first, then the dividend is applied to
// the new total, then the salary grows for the next year. Changing that
// ordering materially changes long-horizon balances.
func (s *Service) ProjectRetirement(params simulation.RetirementParams) simulation.RetirementProjection {
	balance := params.CurrentBalance
	salary := params.CurrentSalary
	years := params.RetirementAge - params.CurrentAge

	timeline := []simulation.TimelinePoint{}

	for i := 0; i < years; i++ {
		epf := s.calculator.Epf(salary)
		annualContribution := epf.Employee.Add(epf.Employer).Mul(monthsPerYear)

		balance = balance.Add(annualContribution)
		dividend := balance.Mul(params.AnnualDividendPct.Div(hundred))
		balance = balance.Add(dividend)

		// Snapshot every 5th completed year, and always the final year.
		if (i+1)%5 == 0 || i+1 == years {
			timeline = append(timeline, simulation.TimelinePoint{
				Age:     params.CurrentAge + i + 1,
				Balance: balance,
			})
		}

		salary = salary.Mul(decimal.NewFromInt(1).Add(params.SalaryIncrementPct.Div(hundred)))
	}

	return simulation.RetirementProjection{
		FinalBalance: balance,
		Timeline:     timeline,
	}
}

// ProjectEisBenefits returns the 6-month job-loss allowance schedule for an
// assumed monthly wage. The wage is capped before the rates apply; a
// non-positive wage yields an empty schedule.
func (s *Service) ProjectEisBenefits(assumedMonthlyWage decimal.Decimal) []simulation.EisBenefitPayout {
	if assumedMonthlyWage.LessThanOrEqual(decimal.Zero) {
		return []simulation.EisBenefitPayout{}
	}

	cappedWage := decimal.Min(assumedMonthlyWage, eisWageCap)

	payouts := make([]simulation.EisBenefitPayout, 0, len(eisPayoutRates))
	for i, rate := range eisPayoutRates {
		payouts = append(payouts, simulation.EisBenefitPayout{
			Month:  i + 1,
			Amount: cappedWage.Mul(rate),
		})
	}

	return payouts
}
