package statutory

import "github.com/shopspring/decimal"

// EpfResult - EPF contribution for one month's salary.
// The employee share is split across the three EPF accounts
// (effective May 2024); the employer share is not split.
type EpfResult struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
	Akaun1   decimal.Decimal // Akaun Persaraan, 75%
	Akaun2   decimal.Decimal // Akaun Sejahtera, 15%
	Akaun3   decimal.Decimal // Akaun Fleksibel, 10%
}

// ContributionPair - employee/employer sides of a SOCSO or EIS contribution.
type ContributionPair struct {
	Employee decimal.Decimal
	Employer decimal.Decimal
}

// Reliefs - annual tax relief elections supplied by the employee.
// Each is capped independently before use (see caps in pcb.go).
type Reliefs struct {
	LifeInsurance  decimal.Decimal
	Lifestyle      decimal.Decimal
	MedicalParents decimal.Decimal
	Education      decimal.Decimal
}

// ZeroReliefs returns an all-zero relief bundle. Payroll runs use this:
// individual relief elections only apply in the standalone salary calculator.
func ZeroReliefs() Reliefs {
	return Reliefs{
		LifeInsurance:  decimal.Zero,
		Lifestyle:      decimal.Zero,
		MedicalParents: decimal.Zero,
		Education:      decimal.Zero,
	}
}

// ContributionBracket - one row of the PERKESO contribution schedule.
// A bracket covers the half-open salary interval (previous UpperBound, UpperBound].
type ContributionBracket struct {
	UpperBound    decimal.Decimal
	SocsoEmployee decimal.Decimal
	SocsoEmployer decimal.Decimal
	EisEmployee   decimal.Decimal
	EisEmployer   decimal.Decimal
}
