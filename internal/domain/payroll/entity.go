package payroll

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// RunStatus enum. Finalized is terminal: a finalized run is immutable
// history and can never go back to draft.
type RunStatus string

const (
	RunStatusDraft     RunStatus = "draft"
	RunStatusFinalized RunStatus = "finalized"
)

// PayrollRun - one company's payroll for one period. At most one run may
// exist per (company, year, month); RunCode makes the collision checkable
// by plain lookup.
type PayrollRun struct {
	ID          string
	RunCode     string
	CompanyID   string
	PeriodMonth int
	PeriodYear  int
	Status      RunStatus
	Records     []PayrollRecord
	CreatedAt   time.Time
	FinalizedAt *time.Time
}

// PayrollRecord - one employee's computed payroll line. Written once when
// the run is created (or recomputed while the run is a draft) and never
// mutated after the run is finalized.
type PayrollRecord struct {
	ID              string
	RunID           string
	EmployeeID      string
	GrossSalary     decimal.Decimal
	EpfEmployee     decimal.Decimal
	EpfEmployer     decimal.Decimal
	SocsoEmployee   decimal.Decimal
	SocsoEmployer   decimal.Decimal
	EisEmployee     decimal.Decimal
	EisEmployer     decimal.Decimal
	Pcb             decimal.Decimal
	TotalDeductions decimal.Decimal
	NetSalary       decimal.Decimal

	// Joined fields for exports and run detail views
	EmployeeName      *string
	EmployeeCode      *string
	BankName          *string
	BankAccountNumber *string
	EpfNumber         *string
	SocsoNumber       *string
}

// RunCode derives the deterministic period code for a company's run,
// e.g. "PAY202407". Combined with the company id it identifies a period
// uniquely, so duplicate detection is a plain lookup.
func RunCode(year, month int) string {
	return fmt.Sprintf("PAY%04d%02d", year, month)
}
