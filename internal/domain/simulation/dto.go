package simulation

import (
	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// RetirementParams - what-if inputs for the retirement projection.
// Increment and dividend are annual percentages (e.g. 5 means 5%).
type RetirementParams struct {
	CurrentAge         int             `json:"current_age"`
	RetirementAge      int             `json:"retirement_age"`
	CurrentSalary      decimal.Decimal `json:"current_salary"`
	CurrentBalance     decimal.Decimal `json:"current_balance"`
	SalaryIncrementPct decimal.Decimal `json:"salary_increment_pct"`
	AnnualDividendPct  decimal.Decimal `json:"annual_dividend_pct"`
}

func (p *RetirementParams) Validate() error {
	var errs validator.ValidationErrors

	if p.CurrentAge <= 0 {
		errs = append(errs, validator.ValidationError{Field: "current_age", Message: "must be positive"})
	}
	if p.RetirementAge <= 0 {
		errs = append(errs, validator.ValidationError{Field: "retirement_age", Message: "must be positive"})
	}
	if p.CurrentSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "current_salary", Message: "must be non-negative"})
	}
	if p.CurrentBalance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "current_balance", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EisBenefitRequest struct {
	AssumedMonthlyWage decimal.Decimal `json:"assumed_monthly_wage"`
}

func (r *EisBenefitRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.AssumedMonthlyWage.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "assumed_monthly_wage", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
