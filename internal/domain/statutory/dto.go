package statutory

import (
	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// SalaryBreakdownRequest - input for the standalone salary calculator.
// Reliefs are annual amounts; they are capped server-side.
type SalaryBreakdownRequest struct {
	MonthlySalary  decimal.Decimal `json:"monthly_salary"`
	LifeInsurance  decimal.Decimal `json:"life_insurance"`
	Lifestyle      decimal.Decimal `json:"lifestyle"`
	MedicalParents decimal.Decimal `json:"medical_parents"`
	Education      decimal.Decimal `json:"education"`
}

func (r *SalaryBreakdownRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if r.LifeInsurance.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "life_insurance", Message: "must be non-negative"})
	}
	if r.Lifestyle.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "lifestyle", Message: "must be non-negative"})
	}
	if r.MedicalParents.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "medical_parents", Message: "must be non-negative"})
	}
	if r.Education.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "education", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *SalaryBreakdownRequest) Reliefs() Reliefs {
	return Reliefs{
		LifeInsurance:  r.LifeInsurance,
		Lifestyle:      r.Lifestyle,
		MedicalParents: r.MedicalParents,
		Education:      r.Education,
	}
}

type SalaryBreakdownResponse struct {
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	EpfEmployee     decimal.Decimal `json:"epf_employee"`
	EpfEmployer     decimal.Decimal `json:"epf_employer"`
	EpfAkaun1       decimal.Decimal `json:"epf_akaun1"`
	EpfAkaun2       decimal.Decimal `json:"epf_akaun2"`
	EpfAkaun3       decimal.Decimal `json:"epf_akaun3"`
	SocsoEmployee   decimal.Decimal `json:"socso_employee"`
	SocsoEmployer   decimal.Decimal `json:"socso_employer"`
	EisEmployee     decimal.Decimal `json:"eis_employee"`
	EisEmployer     decimal.Decimal `json:"eis_employer"`
	Pcb             decimal.Decimal `json:"pcb"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}
