package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee carries the roster fields payroll consumes: the gross monthly
// salary for the calculators, bank details for the bank transfer file, and
// statutory registration numbers for the EPF/SOCSO files.
type Employee struct {
	ID                string
	CompanyID         string
	EmployeeCode      string
	FullName          string
	Email             string
	MonthlySalary     decimal.Decimal
	BankName          string
	BankAccountNumber string
	EpfNumber         string
	SocsoNumber       string
	EmploymentStatus  EmploymentStatus
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "active"
	EmploymentStatusResigned EmploymentStatus = "resigned"
)
