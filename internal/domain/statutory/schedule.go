package statutory

import "github.com/shopspring/decimal"

// Data transcribed from PERKESO's Jadual Caruman for Category 1 employees
// (under 60, Malaysian citizens/PR), 2024 edition. The schedule is not a
// smooth function of salary, so the rows are kept as published rather than
// derived by formula.

func row(upper, socsoEmp, socsoEmpr, eisEmp, eisEmpr string) ContributionBracket {
	return ContributionBracket{
		UpperBound:    decimal.RequireFromString(upper),
		SocsoEmployee: decimal.RequireFromString(socsoEmp),
		SocsoEmployer: decimal.RequireFromString(socsoEmpr),
		EisEmployee:   decimal.RequireFromString(eisEmp),
		EisEmployer:   decimal.RequireFromString(eisEmpr),
	}
}

// perkesoSchedule covers wages from just above zero up to RM5000.
var perkesoSchedule = []ContributionBracket{
	row("30", "0.10", "0.40", "0.05", "0.05"),
	row("50", "0.20", "0.70", "0.10", "0.10"),
	row("70", "0.30", "1.05", "0.10", "0.10"),
	row("100", "0.45", "1.55", "0.15", "0.15"),
	row("140", "0.65", "2.25", "0.25", "0.25"),
	row("200", "0.95", "3.35", "0.35", "0.35"),
	row("300", "1.45", "5.15", "0.50", "0.50"),
	row("400", "1.95", "6.85", "0.70", "0.70"),
	row("500", "2.45", "8.65", "0.90", "0.90"),
	row("600", "2.95", "10.35", "1.10", "1.10"),
	row("700", "3.45", "12.15", "1.30", "1.30"),
	row("800", "3.95", "13.85", "1.50", "1.50"),
	row("900", "4.45", "15.65", "1.70", "1.70"),
	row("1000", "4.95", "17.35", "1.90", "1.90"),
	row("1100", "5.45", "19.15", "2.10", "2.10"),
	row("1200", "5.95", "20.85", "2.30", "2.30"),
	row("1300", "6.45", "22.65", "2.50", "2.50"),
	row("1400", "6.95", "24.35", "2.70", "2.70"),
	row("1500", "7.45", "26.15", "2.90", "2.90"),
	row("1600", "7.95", "27.85", "3.10", "3.10"),
	row("1700", "8.45", "29.65", "3.30", "3.30"),
	row("1800", "8.95", "31.35", "3.50", "3.50"),
	row("1900", "9.45", "33.15", "3.70", "3.70"),
	row("2000", "9.95", "34.85", "3.90", "3.90"),
	row("2100", "10.45", "36.65", "4.10", "4.10"),
	row("2200", "10.95", "38.35", "4.30", "4.30"),
	row("2300", "11.45", "40.15", "4.50", "4.50"),
	row("2400", "11.95", "41.85", "4.70", "4.70"),
	row("2500", "12.45", "43.65", "4.90", "4.90"),
	row("2600", "12.95", "45.35", "5.10", "5.10"),
	row("2700", "13.45", "47.15", "5.30", "5.30"),
	row("2800", "13.95", "48.85", "5.50", "5.50"),
	row("2900", "14.45", "50.65", "5.70", "5.70"),
	row("3000", "14.95", "52.35", "5.90", "5.90"),
	row("3100", "15.45", "54.15", "6.10", "6.10"),
	row("3200", "15.95", "55.85", "6.30", "6.30"),
	row("3300", "16.45", "57.65", "6.50", "6.50"),
	row("3400", "16.95", "59.35", "6.70", "6.70"),
	row("3500", "17.45", "61.15", "6.90", "6.90"),
	row("3600", "17.95", "62.85", "7.10", "7.10"),
	row("3700", "18.45", "64.65", "7.30", "7.30"),
	row("3800", "18.95", "66.35", "7.50", "7.50"),
	row("3900", "19.45", "68.15", "7.70", "7.70"),
	row("4000", "19.95", "69.85", "7.90", "7.90"),
	row("4100", "20.45", "71.65", "8.10", "8.10"),
	row("4200", "20.95", "73.35", "8.30", "8.30"),
	row("4300", "21.45", "75.15", "8.50", "8.50"),
	row("4400", "21.95", "76.85", "8.70", "8.70"),
	row("4500", "22.45", "78.65", "8.90", "8.90"),
	row("4600", "22.95", "80.35", "9.10", "9.10"),
	row("4700", "23.45", "82.15", "9.30", "9.30"),
	row("4800", "23.95", "83.85", "9.50", "9.50"),
	row("4900", "24.45", "85.65", "9.70", "9.70"),
	row("5000", "24.95", "87.35", "9.90", "9.90"),
}

// WageCeiling is the top of the contribution schedule. Wages above it use
// cappedBracket, whose amounts come from the published schedule for wages
// exceeding RM5000 - they are fixed constants, not recomputed from the table.
var WageCeiling = decimal.NewFromInt(5000)

var cappedBracket = row("5000", "24.75", "86.65", "9.90", "9.90")

// FindBracket resolves a monthly wage to its contribution bracket.
// Returns false for wages <= 0; wages above WageCeiling resolve to the
// capped bracket. For any positive wage the lookup is total: brackets are
// contiguous and the last one is open-ended via the cap.
func FindBracket(monthlyWage decimal.Decimal) (ContributionBracket, bool) {
	if monthlyWage.LessThanOrEqual(decimal.Zero) {
		return ContributionBracket{}, false
	}
	if monthlyWage.GreaterThan(WageCeiling) {
		return cappedBracket, true
	}

	prevUpper := decimal.Zero
	for _, b := range perkesoSchedule {
		if monthlyWage.GreaterThan(prevUpper) && monthlyWage.LessThanOrEqual(b.UpperBound) {
			return b, true
		}
		prevUpper = b.UpperBound
	}

	// Unreachable: the schedule is contiguous from 0 to the ceiling.
	return ContributionBracket{}, false
}
