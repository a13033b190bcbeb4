package payroll

import (
	"time"

	"github.com/gajihub/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type RunPayrollRequest struct {
	PeriodMonth int `json:"period_month"`
	PeriodYear  int `json:"period_year"`
}

func (r *RunPayrollRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.PeriodMonth < 1 || r.PeriodMonth > 12 {
		errs = append(errs, validator.ValidationError{Field: "period_month", Message: "must be between 1 and 12"})
	}
	if r.PeriodYear < 2000 || r.PeriodYear > 2100 {
		errs = append(errs, validator.ValidationError{Field: "period_year", Message: "must be a valid year"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportFormat selects which statutory file ExportRun produces.
type ExportFormat string

const (
	ExportFormatBank     ExportFormat = "bank"
	ExportFormatEpf      ExportFormat = "epf"
	ExportFormatSocsoEis ExportFormat = "socso_eis"
)

func (f ExportFormat) Valid() bool {
	switch f {
	case ExportFormatBank, ExportFormatEpf, ExportFormatSocsoEis:
		return true
	}
	return false
}

// ExportFile - CSV rows for one statutory export, ready for csv.Writer.
type ExportFile struct {
	Filename string
	Headers  []string
	Rows     [][]string
}

type PayrollRecordResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	EmployeeCode    string          `json:"employee_code,omitempty"`
	GrossSalary     decimal.Decimal `json:"gross_salary"`
	EpfEmployee     decimal.Decimal `json:"epf_employee"`
	EpfEmployer     decimal.Decimal `json:"epf_employer"`
	SocsoEmployee   decimal.Decimal `json:"socso_employee"`
	SocsoEmployer   decimal.Decimal `json:"socso_employer"`
	EisEmployee     decimal.Decimal `json:"eis_employee"`
	EisEmployer     decimal.Decimal `json:"eis_employer"`
	Pcb             decimal.Decimal `json:"pcb"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	NetSalary       decimal.Decimal `json:"net_salary"`
}

type PayrollRunResponse struct {
	ID          string                  `json:"id"`
	RunCode     string                  `json:"run_code"`
	CompanyID   string                  `json:"company_id"`
	PeriodMonth int                     `json:"period_month"`
	PeriodYear  int                     `json:"period_year"`
	Status      string                  `json:"status"`
	Records     []PayrollRecordResponse `json:"records"`
	CreatedAt   time.Time               `json:"created_at"`
	FinalizedAt *time.Time              `json:"finalized_at,omitempty"`
}

type PayrollRunSummaryResponse struct {
	ID          string    `json:"id"`
	RunCode     string    `json:"run_code"`
	PeriodMonth int       `json:"period_month"`
	PeriodYear  int       `json:"period_year"`
	Status      string    `json:"status"`
	RecordCount int       `json:"record_count"`
	CreatedAt   time.Time `json:"created_at"`
}
