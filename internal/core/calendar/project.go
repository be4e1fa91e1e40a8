package calendar

import (
	"slices"
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/SscSPs/tax_ledger_app/internal/core/tax"
	"github.com/shopspring/decimal"
)

// Obligation is a deadline with its projected amount. Amount is nil when there
// is not enough live data to project it, which includes a previous quarter's
// advance that is already overdue.
type Obligation struct {
	Deadline
	Amount    *decimal.Decimal `json:"amount"`
	Estimated bool             `json:"estimated"`
	Overdue   bool             `json:"overdue"`
}

// Project returns the obligations of now's year ordered by due date.
//
// Regime tax is projected only for the quarter now falls in, from that
// quarter's transactions and the quarterly share of the fixed contributions.
// An obligation is overdue when its due date has passed within the current
// quarter; deadlines of other quarters are never flagged.
func Project(ledger domain.Ledger, cfg domain.RegimeConfig, schedule tax.ContributionSchedule, deadlines []Deadline, now time.Time) ([]Obligation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	year := now.Year()
	currentQuarter := domain.QuarterOf(now)

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearIncome := decimal.Zero
	for _, t := range ledger.Between(yearStart, yearStart.AddDate(1, 0, 0)) {
		if t.Direction == domain.Income {
			yearIncome = yearIncome.Add(t.Amount)
		}
	}

	var out []Obligation
	for _, d := range deadlines {
		if d.Year != year {
			continue
		}
		if d.Kind == KindFixedFee && !cfg.FixedFeeAddon {
			continue
		}

		ob := Obligation{Deadline: d}
		switch d.Kind {
		case KindRegimeTax:
			ob.Estimated = true
			if d.Quarter == currentQuarter {
				res, err := tax.Compute(ledger.Between(d.PeriodStart(), d.PeriodEnd()), cfg, schedule.Quarterly())
				if err != nil {
					return nil, err
				}
				ob.Amount = &res.NetTax
			}
		case KindFixedContribution:
			amount := schedule.Fixed.Round(0)
			ob.Amount = &amount
		case KindContributionSurcharge:
			ob.Estimated = true
			amount := schedule.Surcharge(yearIncome).Round(0)
			ob.Amount = &amount
		case KindFixedFee:
			amount := cfg.FixedFeeCost.Round(0)
			ob.Amount = &amount
		}

		ob.Overdue = d.DueDate.Before(now) && d.DueDate.Year() == year && domain.QuarterOf(d.DueDate) == currentQuarter
		out = append(out, ob)
	}

	slices.SortStableFunc(out, func(a, b Obligation) int {
		return a.DueDate.Compare(b.DueDate)
	})
	return out, nil
}
