package employee

import (
	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeCode      string          `json:"employee_code"`
	FullName          string          `json:"full_name"`
	Email             string          `json:"email"`
	MonthlySalary     decimal.Decimal `json:"monthly_salary"`
	BankName          string          `json:"bank_name"`
	BankAccountNumber string          `json:"bank_account_number"`
	EpfNumber         string          `json:"epf_number"`
	SocsoNumber       string          `json:"socso_number"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeCode) {
		errs = append(errs, validator.ValidationError{Field: "employee_code", Message: "is required"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsEmpty(r.Email) && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if !validator.IsEmpty(r.BankAccountNumber) && !validator.IsNumeric(r.BankAccountNumber) {
		errs = append(errs, validator.ValidationError{Field: "bank_account_number", Message: "must be numeric"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID                string           `json:"-"`
	FullName          *string          `json:"full_name,omitempty"`
	Email             *string          `json:"email,omitempty"`
	MonthlySalary     *decimal.Decimal `json:"monthly_salary,omitempty"`
	BankName          *string          `json:"bank_name,omitempty"`
	BankAccountNumber *string          `json:"bank_account_number,omitempty"`
	EpfNumber         *string          `json:"epf_number,omitempty"`
	SocsoNumber       *string          `json:"socso_number,omitempty"`
	EmploymentStatus  *string          `json:"employment_status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.MonthlySalary != nil && r.MonthlySalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "monthly_salary", Message: "must be non-negative"})
	}
	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "is not a valid email"})
	}
	if r.EmploymentStatus != nil && !validator.IsInSlice(*r.EmploymentStatus, []string{
		string(EmploymentStatusActive), string(EmploymentStatusResigned),
	}) {
		errs = append(errs, validator.ValidationError{Field: "employment_status", Message: "must be 'active' or 'resigned'"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                string          `json:"id"`
	CompanyID         string          `json:"company_id"`
	EmployeeCode      string          `json:"employee_code"`
	FullName          string          `json:"full_name"`
	Email             string          `json:"email,omitempty"`
	MonthlySalary     decimal.Decimal `json:"monthly_salary"`
	BankName          string          `json:"bank_name,omitempty"`
	BankAccountNumber string          `json:"bank_account_number,omitempty"`
	EpfNumber         string          `json:"epf_number,omitempty"`
	SocsoNumber       string          `json:"socso_number,omitempty"`
	EmploymentStatus  string          `json:"employment_status"`
}
