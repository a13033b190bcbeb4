package simulation

import "github.com/shopspring/decimal"

// RetirementProjection - derived on demand, never persisted.
type RetirementProjection struct {
	FinalBalance decimal.Decimal `json:"final_balance"`
	Timeline     []TimelinePoint `json:"timeline"`
}

// TimelinePoint - balance snapshot at the end of a simulated year.
type TimelinePoint struct {
	Age     int             `json:"age"`
	Balance decimal.Decimal `json:"balance"`
}

// EisBenefitPayout - one month of the job-loss allowance schedule.
type EisBenefitPayout struct {
	Month  int             `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}
