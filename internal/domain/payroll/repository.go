package payroll

import "context"

type PayrollRunRepository interface {
	// CreateRun persists a run together with its records atomically.
	CreateRun(ctx context.Context, run PayrollRun) (PayrollRun, error)
	GetRunByID(ctx context.Context, id string, companyID string) (PayrollRun, error)
	GetRunByPeriod(ctx context.Context, companyID string, month, year int) (PayrollRun, error)
	ListRuns(ctx context.Context, companyID string) ([]PayrollRun, error)
	// ReplaceRunRecords swaps a draft run's records atomically.
	ReplaceRunRecords(ctx context.Context, runID string, records []PayrollRecord) error
	FinalizeRun(ctx context.Context, id string, companyID string) (PayrollRun, error)
}

type PayrollService interface {
	RunPayroll(ctx context.Context, req RunPayrollRequest) (PayrollRunResponse, error)
	RecomputeRun(ctx context.Context, runID string) (PayrollRunResponse, error)
	FinalizeRun(ctx context.Context, runID string) (PayrollRunResponse, error)
	GetRun(ctx context.Context, runID string) (PayrollRunResponse, error)
	ListRuns(ctx context.Context) ([]PayrollRunSummaryResponse, error)
	ExportRun(ctx context.Context, runID string, format ExportFormat) (ExportFile, error)
}
