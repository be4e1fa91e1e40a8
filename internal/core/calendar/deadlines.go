// Package calendar projects the statutory payment deadlines of a tax year
// onto a ledger.
package calendar

import "time"

// DeadlineKind decides how the amount of an obligation is derived.
type DeadlineKind string

const (
	// KindRegimeTax is computed by running the tax engine on the covered months.
	KindRegimeTax DeadlineKind = "REGIME_TAX"
	// KindFixedContribution reports the statutory fixed amount.
	KindFixedContribution DeadlineKind = "FIXED_CONTRIBUTION"
	// KindContributionSurcharge is estimated from the income above the threshold.
	KindContributionSurcharge DeadlineKind = "CONTRIBUTION_SURCHARGE"
	// KindFixedFee reports the configured fixed-fee cost.
	KindFixedFee DeadlineKind = "FIXED_FEE"
)

// Deadline is a single statutory payment definition.
type Deadline struct {
	Code       string       `json:"code"`
	Title      string       `json:"title"`
	Kind       DeadlineKind `json:"kind"`
	Year       int          `json:"year"`
	Quarter    int          `json:"quarter"` // quarter of the covered period, 0 for the whole year
	FirstMonth time.Month   `json:"firstMonth"`
	LastMonth  time.Month   `json:"lastMonth"`
	DueDate    time.Time    `json:"dueDate"`
}

// PeriodStart is the first instant of the covered months.
func (d Deadline) PeriodStart() time.Time {
	return time.Date(d.Year, d.FirstMonth, 1, 0, 0, 0, 0, time.UTC)
}

// PeriodEnd is the first instant after the covered months.
func (d Deadline) PeriodEnd() time.Time {
	return time.Date(d.Year, d.LastMonth+1, 1, 0, 0, 0, 0, time.UTC)
}

func due(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// StatutoryDeadlines returns the deadline table of a tax year.
func StatutoryDeadlines(year int) []Deadline {
	return []Deadline{
		{Code: "ADVANCE_Q1", Title: "Advance payment for Q1", Kind: KindRegimeTax, Year: year, Quarter: 1,
			FirstMonth: time.January, LastMonth: time.March, DueDate: due(year, time.April, 28)},
		{Code: "ADVANCE_H1", Title: "Advance payment for the half-year", Kind: KindRegimeTax, Year: year, Quarter: 2,
			FirstMonth: time.April, LastMonth: time.June, DueDate: due(year, time.July, 28)},
		{Code: "ADVANCE_9M", Title: "Advance payment for nine months", Kind: KindRegimeTax, Year: year, Quarter: 3,
			FirstMonth: time.July, LastMonth: time.September, DueDate: due(year, time.October, 28)},
		{Code: "ANNUAL_TAX", Title: "Annual tax", Kind: KindRegimeTax, Year: year, Quarter: 4,
			FirstMonth: time.October, LastMonth: time.December, DueDate: due(year+1, time.April, 28)},
		{Code: "FIXED_CONTRIBUTIONS", Title: "Fixed contributions", Kind: KindFixedContribution, Year: year,
			FirstMonth: time.January, LastMonth: time.December, DueDate: due(year, time.December, 28)},
		{Code: "CONTRIBUTION_SURCHARGE", Title: "1% contribution on income above the threshold", Kind: KindContributionSurcharge, Year: year,
			FirstMonth: time.January, LastMonth: time.December, DueDate: due(year+1, time.July, 1)},
		{Code: "FIXED_FEE", Title: "Fixed-fee regime payment", Kind: KindFixedFee, Year: year,
			FirstMonth: time.January, LastMonth: time.December, DueDate: due(year, time.December, 31)},
	}
}
