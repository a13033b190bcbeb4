package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/gajihub/payroll-backend-go/internal/domain/payroll"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type payrollRunRepository struct {
	db *database.DB
}

func NewPayrollRunRepository(db *database.DB) payroll.PayrollRunRepository {
	return &payrollRunRepository{db: db}
}

const runColumns = `id, run_code, company_id, period_month, period_year, status, created_at, finalized_at`

// Records carry a snapshot of the employee's name, code, bank and statutory
// numbers taken at computation time. Exports read the snapshot, so later
// roster edits never rewrite a finalized run's files.
const recordColumns = `id, run_id, employee_id, employee_name, employee_code,
		bank_name, bank_account_number, epf_number, socso_number,
		gross_salary, epf_employee, epf_employer, socso_employee, socso_employer,
		eis_employee, eis_employer, pcb, total_deductions, net_salary`

func scanRun(row pgx.Row) (payroll.PayrollRun, error) {
	var run payroll.PayrollRun
	err := row.Scan(
		&run.ID, &run.RunCode, &run.CompanyID, &run.PeriodMonth, &run.PeriodYear,
		&run.Status, &run.CreatedAt, &run.FinalizedAt,
	)
	return run, err
}

func scanRecord(row pgx.Row) (payroll.PayrollRecord, error) {
	var rec payroll.PayrollRecord
	err := row.Scan(
		&rec.ID, &rec.RunID, &rec.EmployeeID, &rec.EmployeeName, &rec.EmployeeCode,
		&rec.BankName, &rec.BankAccountNumber, &rec.EpfNumber, &rec.SocsoNumber,
		&rec.GrossSalary, &rec.EpfEmployee, &rec.EpfEmployer,
		&rec.SocsoEmployee, &rec.SocsoEmployer,
		&rec.EisEmployee, &rec.EisEmployer,
		&rec.Pcb, &rec.TotalDeductions, &rec.NetSalary,
	)
	return rec, err
}

func insertRecord(ctx context.Context, tx pgx.Tx, runID string, rec payroll.PayrollRecord) error {
	query := `
		INSERT INTO payroll_records (
			id, run_id, employee_id, employee_name, employee_code,
			bank_name, bank_account_number, epf_number, socso_number,
			gross_salary, epf_employee, epf_employer, socso_employee, socso_employer,
			eis_employee, eis_employer, pcb, total_deductions, net_salary
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`

	_, err := tx.Exec(ctx, query,
		rec.ID, runID, rec.EmployeeID, rec.EmployeeName, rec.EmployeeCode,
		rec.BankName, rec.BankAccountNumber, rec.EpfNumber, rec.SocsoNumber,
		rec.GrossSalary, rec.EpfEmployee, rec.EpfEmployer,
		rec.SocsoEmployee, rec.SocsoEmployer,
		rec.EisEmployee, rec.EisEmployer,
		rec.Pcb, rec.TotalDeductions, rec.NetSalary,
	)
	return err
}

func (r *payrollRunRepository) loadRecords(ctx context.Context, runID string) ([]payroll.PayrollRecord, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + recordColumns + `
		FROM payroll_records
		WHERE run_id = $1
		ORDER BY employee_code`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.PayrollRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// CreateRun inserts the run and all its records atomically. The unique
// index on (company_id, period_year, period_month) rejects a concurrent
// second run for the same period.
func (r *payrollRunRepository) CreateRun(ctx context.Context, run payroll.PayrollRun) (payroll.PayrollRun, error) {
	err := WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO payroll_runs (id, run_code, company_id, period_month, period_year, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`

		_, err := tx.Exec(ctx, query,
			run.ID, run.RunCode, run.CompanyID, run.PeriodMonth, run.PeriodYear,
			run.Status, run.CreatedAt,
		)
		if err != nil {
			if strings.Contains(err.Error(), "uk_payroll_run_period") {
				return payroll.ErrDuplicateRunPeriod
			}
			return fmt.Errorf("failed to create payroll run: %w", err)
		}

		for _, rec := range run.Records {
			if err := insertRecord(ctx, tx, run.ID, rec); err != nil {
				return fmt.Errorf("failed to create payroll record: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	for i := range run.Records {
		run.Records[i].RunID = run.ID
	}

	return run, nil
}

// GetRunByID implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) GetRunByID(ctx context.Context, id string, companyID string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + runColumns + `
		FROM payroll_runs
		WHERE id = $1 AND company_id = $2`

	run, err := scanRun(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run: %w", err)
	}

	run.Records, err = r.loadRecords(ctx, run.ID)
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	return run, nil
}

// GetRunByPeriod implements payroll.PayrollRunRepository.
func (r *payrollRunRepository) GetRunByPeriod(ctx context.Context, companyID string, month, year int) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + runColumns + `
		FROM payroll_runs
		WHERE company_id = $1 AND period_month = $2 AND period_year = $3`

	run, err := scanRun(q.QueryRow(ctx, query, companyID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to get payroll run by period: %w", err)
	}

	run.Records, err = r.loadRecords(ctx, run.ID)
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	return run, nil
}

// ListRuns returns the company's runs newest period first, with records
// attached. Two queries total regardless of run count.
func (r *payrollRunRepository) ListRuns(ctx context.Context, companyID string) ([]payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + runColumns + `
		FROM payroll_runs
		WHERE company_id = $1
		ORDER BY period_year DESC, period_month DESC`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll runs: %w", err)
	}
	defer rows.Close()

	var runs []payroll.PayrollRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(runs) == 0 {
		return runs, nil
	}

	recordQuery := `
		SELECT ` + recordColumns + `
		FROM payroll_records
		WHERE run_id IN (SELECT id FROM payroll_runs WHERE company_id = $1)
		ORDER BY employee_code`

	recordRows, err := q.Query(ctx, recordQuery, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer recordRows.Close()

	byRunID := make(map[string][]payroll.PayrollRecord)
	for recordRows.Next() {
		rec, err := scanRecord(recordRows)
		if err != nil {
			return nil, err
		}
		byRunID[rec.RunID] = append(byRunID[rec.RunID], rec)
	}
	if err = recordRows.Err(); err != nil {
		return nil, err
	}

	for i := range runs {
		runs[i].Records = byRunID[runs[i].ID]
	}

	return runs, nil
}

// ReplaceRunRecords swaps a run's records atomically.
func (r *payrollRunRepository) ReplaceRunRecords(ctx context.Context, runID string, records []payroll.PayrollRecord) error {
	return WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM payroll_records WHERE run_id = $1`, runID); err != nil {
			return fmt.Errorf("failed to delete payroll records: %w", err)
		}

		for _, rec := range records {
			if err := insertRecord(ctx, tx, runID, rec); err != nil {
				return fmt.Errorf("failed to insert payroll record: %w", err)
			}
		}

		return nil
	})
}

// FinalizeRun flips the run to finalized. Re-finalizing keeps the original
// finalized_at, so the call is idempotent.
func (r *payrollRunRepository) FinalizeRun(ctx context.Context, id string, companyID string) (payroll.PayrollRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payroll_runs
		SET status = $1, finalized_at = COALESCE(finalized_at, NOW())
		WHERE id = $2 AND company_id = $3
		RETURNING ` + runColumns

	run, err := scanRun(q.QueryRow(ctx, query, payroll.RunStatusFinalized, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollRun{}, payroll.ErrRunNotFound
		}
		return payroll.PayrollRun{}, fmt.Errorf("failed to finalize payroll run: %w", err)
	}

	run.Records, err = r.loadRecords(ctx, run.ID)
	if err != nil {
		return payroll.PayrollRun{}, err
	}

	return run, nil
}
