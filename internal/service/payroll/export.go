package payroll

import (
	"context"
	"fmt"

	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
)

// Statutory file exports. The columns are the schema the banks and agencies
// consume; amounts are fixed to two decimal places as the files require.

func (s *PayrollServiceImpl) ExportRun(ctx context.Context, runID string, format payroll.ExportFormat) (payroll.ExportFile, error) {
	if !format.Valid() {
		return payroll.ExportFile{}, payroll.ErrInvalidExportFormat
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.ExportFile{}, err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, runID, companyID)
	if err != nil {
		return payroll.ExportFile{}, err
	}

	switch format {
	case payroll.ExportFormatBank:
		return buildBankFile(run), nil
	case payroll.ExportFormatEpf:
		return buildEpfFile(run), nil
	default:
		return buildSocsoEisFile(run), nil
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func buildBankFile(run payroll.PayrollRun) payroll.ExportFile {
	file := payroll.ExportFile{
		Filename: fmt.Sprintf("bank-transfer-%s.csv", run.RunCode),
		Headers:  []string{"Employee Name", "Bank Name", "Account Number", "Net Salary"},
	}
	for _, r := range run.Records {
		file.Rows = append(file.Rows, []string{
			deref(r.EmployeeName),
			deref(r.BankName),
			deref(r.BankAccountNumber),
			r.NetSalary.StringFixed(2),
		})
	}
	return file
}

func buildEpfFile(run payroll.PayrollRun) payroll.ExportFile {
	file := payroll.ExportFile{
		Filename: fmt.Sprintf("epf-%s.csv", run.RunCode),
		Headers:  []string{"Employee Name", "EPF Number", "Gross Salary", "Employee Contribution", "Employer Contribution"},
	}
	for _, r := range run.Records {
		file.Rows = append(file.Rows, []string{
			deref(r.EmployeeName),
			deref(r.EpfNumber),
			r.GrossSalary.StringFixed(2),
			r.EpfEmployee.StringFixed(2),
			r.EpfEmployer.StringFixed(2),
		})
	}
	return file
}

func buildSocsoEisFile(run payroll.PayrollRun) payroll.ExportFile {
	file := payroll.ExportFile{
		Filename: fmt.Sprintf("socso-eis-%s.csv", run.RunCode),
		Headers: []string{
			"Employee Name", "SOCSO Number", "Gross Salary",
			"SOCSO Employee", "SOCSO Employer", "EIS Employee", "EIS Employer",
		},
	}
	for _, r := range run.Records {
		file.Rows = append(file.Rows, []string{
			deref(r.EmployeeName),
			deref(r.SocsoNumber),
			r.GrossSalary.StringFixed(2),
			r.SocsoEmployee.StringFixed(2),
			r.SocsoEmployer.StringFixed(2),
			r.EisEmployee.StringFixed(2),
			r.EisEmployer.StringFixed(2),
		})
	}
	return file
}
