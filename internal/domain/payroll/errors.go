package payroll

import "errors"

var (
	ErrDuplicateRunPeriod  = errors.New("payroll run already exists for this period")
	ErrRunNotFound         = errors.New("payroll run not found")
	ErrRunFinalized        = errors.New("payroll run is finalized and cannot be modified")
	ErrInvalidPeriod       = errors.New("invalid payroll period")
	ErrInvalidExportFormat = errors.New("invalid export format")
)
