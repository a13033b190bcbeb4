package payroll

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/domain/statutory"
	statutoryService "github.com/gajihub/payroll-backend-go/internal/service/statutory"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRunRepository
	employeeRepo employee.EmployeeRepository
	calculator   *statutoryService.Calculator
}

func NewPayrollService(
	payrollRepo payroll.PayrollRunRepository,
	employeeRepo employee.EmployeeRepository,
	calculator *statutoryService.Calculator,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
		calculator:   calculator,
	}
}

// Helper to get company_id from JWT context
func getClaimsFromContext(ctx context.Context) (companyID string, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}

	return companyID, nil
}

// computeRecord runs the four statutory calculators on one employee's
// salary. Payroll runs apply zeroed reliefs: relief elections belong to the
// standalone salary calculator, not to the company's withholding.
func (s *PayrollServiceImpl) computeRecord(emp employee.Employee) payroll.PayrollRecord {
	salary := emp.MonthlySalary
	epf := s.calculator.Epf(salary)
	socso := s.calculator.Socso(salary)
	eis := s.calculator.Eis(salary)
	pcb := s.calculator.Pcb(salary, epf.Employee, statutory.ZeroReliefs())

	totalDeductions := epf.Employee.Add(socso.Employee).Add(eis.Employee).Add(pcb)

	name := emp.FullName
	code := emp.EmployeeCode
	bankName := emp.BankName
	bankAccount := emp.BankAccountNumber
	epfNo := emp.EpfNumber
	socsoNo := emp.SocsoNumber

	return payroll.PayrollRecord{
		ID:              uuid.NewString(),
		EmployeeID:      emp.ID,
		GrossSalary:     salary,
		EpfEmployee:     epf.Employee,
		EpfEmployer:     epf.Employer,
		SocsoEmployee:   socso.Employee,
		SocsoEmployer:   socso.Employer,
		EisEmployee:     eis.Employee,
		EisEmployer:     eis.Employer,
		Pcb:             pcb,
		TotalDeductions: totalDeductions,
		NetSalary:       salary.Sub(totalDeductions),

		EmployeeName:      &name,
		EmployeeCode:      &code,
		BankName:          &bankName,
		BankAccountNumber: &bankAccount,
		EpfNumber:         &epfNo,
		SocsoNumber:       &socsoNo,
	}
}

// computeRecords produces at most one record per employee, in roster order.
func (s *PayrollServiceImpl) computeRecords(employees []employee.Employee) []payroll.PayrollRecord {
	records := make([]payroll.PayrollRecord, 0, len(employees))
	seen := make(map[string]bool, len(employees))
	for _, emp := range employees {
		if seen[emp.ID] {
			continue
		}
		seen[emp.ID] = true
		records = append(records, s.computeRecord(emp))
	}
	return records
}

func (s *PayrollServiceImpl) RunPayroll(ctx context.Context, req payroll.RunPayrollRequest) (payroll.PayrollRunResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	// One run per period per company. The unique index on the runs table
	// backstops this check against concurrent callers.
	_, err = s.payrollRepo.GetRunByPeriod(ctx, companyID, req.PeriodMonth, req.PeriodYear)
	if err == nil {
		return payroll.PayrollRunResponse{}, payroll.ErrDuplicateRunPeriod
	}
	if !errors.Is(err, payroll.ErrRunNotFound) {
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to check existing payroll run: %w", err)
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}

	run := payroll.PayrollRun{
		ID:          uuid.NewString(),
		RunCode:     payroll.RunCode(req.PeriodYear, req.PeriodMonth),
		CompanyID:   companyID,
		PeriodMonth: req.PeriodMonth,
		PeriodYear:  req.PeriodYear,
		Status:      payroll.RunStatusDraft,
		Records:     s.computeRecords(employees),
		CreatedAt:   time.Now(),
	}

	created, err := s.payrollRepo.CreateRun(ctx, run)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return mapToRunResponse(created), nil
}

// RecomputeRun replaces a draft run's records with figures computed from
// the current roster. Finalized runs are immutable history.
func (s *PayrollServiceImpl) RecomputeRun(ctx context.Context, runID string) (payroll.PayrollRunResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, runID, companyID)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}
	if run.Status == payroll.RunStatusFinalized {
		return payroll.PayrollRunResponse{}, payroll.ErrRunFinalized
	}

	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return payroll.PayrollRunResponse{}, fmt.Errorf("failed to get employees: %w", err)
	}

	records := s.computeRecords(employees)
	for i := range records {
		records[i].RunID = run.ID
	}

	if err := s.payrollRepo.ReplaceRunRecords(ctx, run.ID, records); err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	run.Records = records
	return mapToRunResponse(run), nil
}

// FinalizeRun transitions a draft run to finalized. Finalizing an already
// finalized run is a no-op: the UI calls this behind a confirmation and
// there is no undo.
func (s *PayrollServiceImpl) FinalizeRun(ctx context.Context, runID string) (payroll.PayrollRunResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	run, err := s.payrollRepo.FinalizeRun(ctx, runID, companyID)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return mapToRunResponse(run), nil
}

func (s *PayrollServiceImpl) GetRun(ctx context.Context, runID string) (payroll.PayrollRunResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	run, err := s.payrollRepo.GetRunByID(ctx, runID, companyID)
	if err != nil {
		return payroll.PayrollRunResponse{}, err
	}

	return mapToRunResponse(run), nil
}

func (s *PayrollServiceImpl) ListRuns(ctx context.Context) ([]payroll.PayrollRunSummaryResponse, error) {
	companyID, err := getClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	runs, err := s.payrollRepo.ListRuns(ctx, companyID)
	if err != nil {
		return nil, err
	}

	result := make([]payroll.PayrollRunSummaryResponse, 0, len(runs))
	for _, run := range runs {
		result = append(result, payroll.PayrollRunSummaryResponse{
			ID:          run.ID,
			RunCode:     run.RunCode,
			PeriodMonth: run.PeriodMonth,
			PeriodYear:  run.PeriodYear,
			Status:      string(run.Status),
			RecordCount: len(run.Records),
			CreatedAt:   run.CreatedAt,
		})
	}

	return result, nil
}

// ========== HELPERS ==========

func mapToRecordResponse(r payroll.PayrollRecord) payroll.PayrollRecordResponse {
	employeeName := ""
	employeeCode := ""
	if r.EmployeeName != nil {
		employeeName = *r.EmployeeName
	}
	if r.EmployeeCode != nil {
		employeeCode = *r.EmployeeCode
	}

	return payroll.PayrollRecordResponse{
		ID:              r.ID,
		EmployeeID:      r.EmployeeID,
		EmployeeName:    employeeName,
		EmployeeCode:    employeeCode,
		GrossSalary:     r.GrossSalary,
		EpfEmployee:     r.EpfEmployee,
		EpfEmployer:     r.EpfEmployer,
		SocsoEmployee:   r.SocsoEmployee,
		SocsoEmployer:   r.SocsoEmployer,
		EisEmployee:     r.EisEmployee,
		EisEmployer:     r.EisEmployer,
		Pcb:             r.Pcb,
		TotalDeductions: r.TotalDeductions,
		NetSalary:       r.NetSalary,
	}
}

func mapToRunResponse(run payroll.PayrollRun) payroll.PayrollRunResponse {
	records := make([]payroll.PayrollRecordResponse, 0, len(run.Records))
	for _, r := range run.Records {
		records = append(records, mapToRecordResponse(r))
	}

	return payroll.PayrollRunResponse{
		ID:          run.ID,
		RunCode:     run.RunCode,
		CompanyID:   run.CompanyID,
		PeriodMonth: run.PeriodMonth,
		PeriodYear:  run.PeriodYear,
		Status:      string(run.Status),
		Records:     records,
		CreatedAt:   run.CreatedAt,
		FinalizedAt: run.FinalizedAt,
	}
}
