package statutory

import (
	"github.com/gajihub/payroll-backend-go/internal/domain/statutory"
	"github.com/shopspring/decimal"
)

// All rates and tables reflect 2024 figures for Malaysian citizens/PR under
// 60 years old.

var (
	epfEmployeeRate       = decimal.RequireFromString("0.11")
	epfEmployerRateBelow  = decimal.RequireFromString("0.13") // salary <= 5000
	epfEmployerRateAbove  = decimal.RequireFromString("0.12")
	epfAkaunPersaraanPart = decimal.RequireFromString("0.75")
	epfAkaunSejahteraPart = decimal.RequireFromString("0.15")
	epfAkaunFleksibelPart = decimal.RequireFromString("0.10")
)

type Calculator struct {
}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Epf computes the EPF contribution on a gross monthly salary.
// Straight percentages, no wage caps: employee 11% regardless of salary,
// employer 13% up to and including RM5000, 12% above.
func (c *Calculator) Epf(monthlySalary decimal.Decimal) statutory.EpfResult {
	if monthlySalary.LessThanOrEqual(decimal.Zero) {
		return statutory.EpfResult{
			Employee: decimal.Zero,
			Employer: decimal.Zero,
			Akaun1:   decimal.Zero,
			Akaun2:   decimal.Zero,
			Akaun3:   decimal.Zero,
		}
	}

	employerRate := epfEmployerRateBelow
	if monthlySalary.GreaterThan(statutory.WageCeiling) {
		employerRate = epfEmployerRateAbove
	}

	employee := monthlySalary.Mul(epfEmployeeRate)

	return statutory.EpfResult{
		Employee: employee,
		Employer: monthlySalary.Mul(employerRate),
		Akaun1:   employee.Mul(epfAkaunPersaraanPart),
		Akaun2:   employee.Mul(epfAkaunSejahteraPart),
		Akaun3:   employee.Mul(epfAkaunFleksibelPart),
	}
}

// Socso returns the SOCSO contribution pair for a monthly salary.
func (c *Calculator) Socso(monthlySalary decimal.Decimal) statutory.ContributionPair {
	bracket, ok := statutory.FindBracket(monthlySalary)
	if !ok {
		return statutory.ContributionPair{Employee: decimal.Zero, Employer: decimal.Zero}
	}
	return statutory.ContributionPair{Employee: bracket.SocsoEmployee, Employer: bracket.SocsoEmployer}
}

// Eis returns the EIS contribution pair for a monthly salary.
func (c *Calculator) Eis(monthlySalary decimal.Decimal) statutory.ContributionPair {
	bracket, ok := statutory.FindBracket(monthlySalary)
	if !ok {
		return statutory.ContributionPair{Employee: decimal.Zero, Employer: decimal.Zero}
	}
	return statutory.ContributionPair{Employee: bracket.EisEmployee, Employer: bracket.EisEmployer}
}

// Breakdown runs all four calculators on one salary and combines them into
// the deduction/net-salary view the salary calculator presents.
func (c *Calculator) Breakdown(req statutory.SalaryBreakdownRequest) statutory.SalaryBreakdownResponse {
	salary := req.MonthlySalary
	epf := c.Epf(salary)
	socso := c.Socso(salary)
	eis := c.Eis(salary)
	pcb := c.Pcb(salary, epf.Employee, req.Reliefs())

	totalDeductions := epf.Employee.Add(socso.Employee).Add(eis.Employee).Add(pcb)

	return statutory.SalaryBreakdownResponse{
		GrossSalary:     salary,
		EpfEmployee:     epf.Employee,
		EpfEmployer:     epf.Employer,
		EpfAkaun1:       epf.Akaun1,
		EpfAkaun2:       epf.Akaun2,
		EpfAkaun3:       epf.Akaun3,
		SocsoEmployee:   socso.Employee,
		SocsoEmployer:   socso.Employer,
		EisEmployee:     eis.Employee,
		EisEmployer:     eis.Employer,
		Pcb:             pcb,
		TotalDeductions: totalDeductions,
		NetSalary:       salary.Sub(totalDeductions),
	}
}
