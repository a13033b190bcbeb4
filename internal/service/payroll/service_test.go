package payroll

import (
	"context"
	"testing"

	"github.com/gajihub/payroll-backend-go/internal/domain/employee"
	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	statutoryService "github.com/gajihub/payroll-backend-go/internal/service/statutory"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// ===== STUBS =====

type stubRunRepo struct {
	runs map[string]payroll.PayrollRun
}

func newStubRunRepo() *stubRunRepo {
	return &stubRunRepo{runs: make(map[string]payroll.PayrollRun)}
}

func (r *stubRunRepo) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	for _, existing := range r.runs {
		if existing.CompanyID == run.CompanyID &&
			existing.PeriodMonth == run.PeriodMonth &&
			existing.PeriodYear == run.PeriodYear {
			return payroll.PayrollRun{}, payroll.ErrDuplicateRunPeriod
		}
	}
	for i := range run.Records {
		run.Records[i].RunID = run.ID
	}
	r.runs[run.ID] = run
	return run, nil
}

func (r *stubRunRepo) GetRunByID(ctx context.Context, id string, companyID string) (payroll.PayrollRun, error) {
	run, ok := r.runs[id]
	if !ok || run.CompanyID != companyID {
		return payroll.PayrollRun{}, payroll.ErrRunNotFound
	}
	return run, nil
}

func (r *stubRunRepo) GetRunByPeriod(ctx context.Context, companyID string, month, year int) (payroll.PayrollRun, error) {
	for _, run := range r.runs {
		if run.CompanyID == companyID && run.PeriodMonth == month && run.PeriodYear == year {
			return run, nil
		}
	}
	return payroll.PayrollRun{}, payroll.ErrRunNotFound
}

func (r *stubRunRepo) ListRuns(ctx context.Context, companyID string) ([]payroll.PayrollRun, error) {
	var runs []payroll.PayrollRun
	for _, run := range r.runs {
		if run.CompanyID == companyID {
			runs = append(runs, run)
		}
	}
	return runs, nil
}

func (r *stubRunRepo) ReplaceRunRecords(ctx context.Context, runID string, records []payroll.PayrollRecord) error {
	run, ok := r.runs[runID]
	if !ok {
		return payroll.ErrRunNotFound
	}
	run.Records = records
	r.runs[runID] = run
	return nil
}

func (r *stubRunRepo) FinalizeRun(ctx context.Context, id string, companyID string) (payroll.PayrollRun, error) {
	run, ok := r.runs[id]
	if !ok || run.CompanyID != companyID {
		return payroll.PayrollRun{}, payroll.ErrRunNotFound
	}
	run.Status = payroll.RunStatusFinalized
	r.runs[id] = run
	return run, nil
}

type stubEmployeeRepo struct {
	employees []employee.Employee
}

func (r *stubEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *stubEmployeeRepo) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	for _, emp := range r.employees {
		if emp.ID == id && emp.CompanyID == companyID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	var result []employee.Employee
	for _, emp := range r.employees {
		if emp.CompanyID == companyID && emp.EmploymentStatus == employee.EmploymentStatusActive {
			result = append(result, emp)
		}
	}
	return result, nil
}

func (r *stubEmployeeRepo) List(ctx context.Context, companyID string) ([]employee.Employee, error) {
	return r.GetActiveByCompanyID(ctx, companyID)
}

func (r *stubEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *stubEmployeeRepo) Delete(ctx context.Context, id string, companyID string) error {
	return nil
}

// ===== HELPERS =====

const testCompanyID = "company-1"

func claimsContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"company_id": companyID})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func activeEmployee(id, code, name, salary string) employee.Employee {
	return employee.Employee{
		ID:                id,
		CompanyID:         testCompanyID,
		EmployeeCode:      code,
		FullName:          name,
		MonthlySalary:     d(salary),
		BankName:          "Maybank",
		BankAccountNumber: "1234567890",
		EpfNumber:         "EPF-" + id,
		SocsoNumber:       "SOC-" + id,
		EmploymentStatus:  employee.EmploymentStatusActive,
	}
}

func newTestService(runRepo *stubRunRepo, empRepo *stubEmployeeRepo) payroll.PayrollService {
	return NewPayrollService(runRepo, empRepo, statutoryService.NewCalculator())
}

// ===== TESTS =====

func TestRunPayroll_EmptyRoster(t *testing.T) {
	t.Parallel()
	svc := newTestService(newStubRunRepo(), &stubEmployeeRepo{})
	ctx := claimsContext(t, testCompanyID)

	run, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})

	require.NoError(t, err)
	assert.Empty(t, run.Records)
	assert.Equal(t, string(payroll.RunStatusDraft), run.Status)
	assert.Equal(t, "PAY202407", run.RunCode)
	assert.Equal(t, testCompanyID, run.CompanyID)
}

func TestRunPayroll_ComputesRecordFigures(t *testing.T) {
	t.Parallel()
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		activeEmployee("emp-1", "0001-0001", "Aisyah Rahman", "5500"),
	}}
	svc := newTestService(newStubRunRepo(), empRepo)
	ctx := claimsContext(t, testCompanyID)

	run, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 3, PeriodYear: 2024})

	require.NoError(t, err)
	require.Len(t, run.Records, 1)
	rec := run.Records[0]

	assert.Equal(t, "emp-1", rec.EmployeeID)
	assert.True(t, rec.EpfEmployee.Equal(d("605")))
	assert.True(t, rec.EpfEmployer.Equal(d("660"))) // 12% above RM5000
	assert.True(t, rec.SocsoEmployee.Equal(d("24.75")))
	assert.True(t, rec.SocsoEmployer.Equal(d("86.65")))
	assert.True(t, rec.EisEmployee.Equal(d("9.90")))
	assert.True(t, rec.EisEmployer.Equal(d("9.90")))
	assert.True(t, rec.Pcb.Round(2).Equal(d("169.17")))

	wantDeductions := rec.EpfEmployee.Add(rec.SocsoEmployee).Add(rec.EisEmployee).Add(rec.Pcb)
	assert.True(t, rec.TotalDeductions.Equal(wantDeductions))
	assert.True(t, rec.NetSalary.Equal(d("5500").Sub(wantDeductions)))
}

func TestRunPayroll_ZeroSalaryEmployeeGetsZeroDeductions(t *testing.T) {
	t.Parallel()
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		activeEmployee("emp-1", "0001-0001", "Intern", "0"),
	}}
	svc := newTestService(newStubRunRepo(), empRepo)
	ctx := claimsContext(t, testCompanyID)

	run, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 1, PeriodYear: 2025})

	require.NoError(t, err)
	require.Len(t, run.Records, 1)
	rec := run.Records[0]
	assert.True(t, rec.TotalDeductions.IsZero())
	assert.True(t, rec.NetSalary.IsZero())
}

func TestRunPayroll_OneRecordPerEmployee(t *testing.T) {
	t.Parallel()
	dup := activeEmployee("emp-1", "0001-0001", "Aisyah Rahman", "3000")
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{dup, dup}}
	svc := newTestService(newStubRunRepo(), empRepo)
	ctx := claimsContext(t, testCompanyID)

	run, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 5, PeriodYear: 2024})

	require.NoError(t, err)
	assert.Len(t, run.Records, 1)
}

func TestRunPayroll_DuplicatePeriodRejected(t *testing.T) {
	t.Parallel()
	svc := newTestService(newStubRunRepo(), &stubEmployeeRepo{})
	ctx := claimsContext(t, testCompanyID)

	_, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	require.NoError(t, err)

	_, err = svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	assert.ErrorIs(t, err, payroll.ErrDuplicateRunPeriod)
}

func TestRunPayroll_SamePeriodDifferentCompanyAllowed(t *testing.T) {
	t.Parallel()
	runRepo := newStubRunRepo()
	svc := newTestService(runRepo, &stubEmployeeRepo{})

	_, err := svc.RunPayroll(claimsContext(t, "company-1"), payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	require.NoError(t, err)

	_, err = svc.RunPayroll(claimsContext(t, "company-2"), payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	assert.NoError(t, err)
}

func TestRunPayroll_InvalidPeriod(t *testing.T) {
	t.Parallel()
	svc := newTestService(newStubRunRepo(), &stubEmployeeRepo{})
	ctx := claimsContext(t, testCompanyID)

	_, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 13, PeriodYear: 2024})
	assert.Error(t, err)
}

func TestRunPayroll_MissingClaims(t *testing.T) {
	t.Parallel()
	svc := newTestService(newStubRunRepo(), &stubEmployeeRepo{})

	_, err := svc.RunPayroll(context.Background(), payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	assert.Error(t, err)
}

func TestFinalizeRun_SetsStatusAndIsIdempotent(t *testing.T) {
	t.Parallel()
	svc := newTestService(newStubRunRepo(), &stubEmployeeRepo{})
	ctx := claimsContext(t, testCompanyID)

	created, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusDraft), created.Status)

	finalized, err := svc.FinalizeRun(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusFinalized), finalized.Status)

	// Second finalize is a no-op, not an error.
	again, err := svc.FinalizeRun(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(payroll.RunStatusFinalized), again.Status)
}

func TestRecomputeRun_ReplacesDraftRecords(t *testing.T) {
	t.Parallel()
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		activeEmployee("emp-1", "0001-0001", "Aisyah Rahman", "3000"),
	}}
	svc := newTestService(newStubRunRepo(), empRepo)
	ctx := claimsContext(t, testCompanyID)

	created, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	require.NoError(t, err)
	require.Len(t, created.Records, 1)

	// Roster changes while the run is still a draft.
	empRepo.employees = append(empRepo.employees,
		activeEmployee("emp-2", "0001-0002", "Ben Tan", "4200"))

	recomputed, err := svc.RecomputeRun(ctx, created.ID)
	require.NoError(t, err)
	assert.Len(t, recomputed.Records, 2)
}

func TestRecomputeRun_FinalizedRunRefused(t *testing.T) {
	t.Parallel()
	svc := newTestService(newStubRunRepo(), &stubEmployeeRepo{})
	ctx := claimsContext(t, testCompanyID)

	created, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	require.NoError(t, err)

	_, err = svc.FinalizeRun(ctx, created.ID)
	require.NoError(t, err)

	_, err = svc.RecomputeRun(ctx, created.ID)
	assert.ErrorIs(t, err, payroll.ErrRunFinalized)
}

func TestGetRun_OtherCompanyHidden(t *testing.T) {
	t.Parallel()
	runRepo := newStubRunRepo()
	svc := newTestService(runRepo, &stubEmployeeRepo{})

	created, err := svc.RunPayroll(claimsContext(t, "company-1"), payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	require.NoError(t, err)

	_, err = svc.GetRun(claimsContext(t, "company-2"), created.ID)
	assert.ErrorIs(t, err, payroll.ErrRunNotFound)
}

func TestListRuns_Summaries(t *testing.T) {
	t.Parallel()
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		activeEmployee("emp-1", "0001-0001", "Aisyah Rahman", "3000"),
	}}
	svc := newTestService(newStubRunRepo(), empRepo)
	ctx := claimsContext(t, testCompanyID)

	_, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 6, PeriodYear: 2024})
	require.NoError(t, err)
	_, err = svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	require.NoError(t, err)

	runs, err := svc.ListRuns(ctx)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
	for _, run := range runs {
		assert.Equal(t, 1, run.RecordCount)
	}
}

func TestExportRun_BankFile(t *testing.T) {
	t.Parallel()
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		activeEmployee("emp-1", "0001-0001", "Aisyah Rahman", "5500"),
	}}
	svc := newTestService(newStubRunRepo(), empRepo)
	ctx := claimsContext(t, testCompanyID)

	created, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	require.NoError(t, err)

	file, err := svc.ExportRun(ctx, created.ID, payroll.ExportFormatBank)
	require.NoError(t, err)

	assert.Equal(t, "bank-transfer-PAY202407.csv", file.Filename)
	require.Len(t, file.Rows, 1)
	assert.Equal(t, "Aisyah Rahman", file.Rows[0][0])
	assert.Equal(t, "Maybank", file.Rows[0][1])
	assert.Equal(t, "1234567890", file.Rows[0][2])
	assert.Equal(t, created.Records[0].NetSalary.StringFixed(2), file.Rows[0][3])
}

func TestExportRun_EpfFile(t *testing.T) {
	t.Parallel()
	empRepo := &stubEmployeeRepo{employees: []employee.Employee{
		activeEmployee("emp-1", "0001-0001", "Aisyah Rahman", "5000"),
	}}
	svc := newTestService(newStubRunRepo(), empRepo)
	ctx := claimsContext(t, testCompanyID)

	created, err := svc.RunPayroll(ctx, payroll.RunPayrollRequest{PeriodMonth: 7, PeriodYear: 2024})
	require.NoError(t, err)

	file, err := svc.ExportRun(ctx, created.ID, payroll.ExportFormatEpf)
	require.NoError(t, err)

	require.Len(t, file.Rows, 1)
	assert.Equal(t, "EPF-emp-1", file.Rows[0][1])
	assert.Equal(t, "550.00", file.Rows[0][3]) // 11% of 5000
	assert.Equal(t, "650.00", file.Rows[0][4]) // 13% at exactly 5000
}

func TestExportRun_InvalidFormat(t *testing.T) {
	t.Parallel()
	svc := newTestService(newStubRunRepo(), &stubEmployeeRepo{})
	ctx := claimsContext(t, testCompanyID)

	_, err := svc.ExportRun(ctx, "whatever", payroll.ExportFormat("pdf"))
	assert.ErrorIs(t, err, payroll.ErrInvalidExportFormat)
}

func TestRunCode_Deterministic(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "PAY202407", payroll.RunCode(2024, 7))
	assert.Equal(t, "PAY202512", payroll.RunCode(2025, 12))
}
