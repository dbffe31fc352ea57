package taxlot

import (
	"github.com/shopspring/decimal"
)

// Ledger accumulates income and cost for one family of transactions.
type Ledger struct {
	Income Money
	Cost   Money
}

// TaxableBase returns income minus cost, floored at zero.
func (l Ledger) TaxableBase() Money { return l.Income.Sub(l.Cost).Floor() }

func (l *Ledger) income(m Money) { l.Income = l.Income.Add(m) }
func (l *Ledger) cost(m Money)   { l.Cost = l.Cost.Add(m) }

// Report is the outcome of processing a transaction history.
// It is a value: two runs over the same history produce equal reports.
type Report struct {
	Method   Method
	Rate     Rate
	Year     int
	Currency string

	Spot       Ledger // buys, sells, deposits, withdrawals and rewards
	Derivative Ledger // realized P&L and funding fees

	Processed int // transactions with a tax treatment
	Ignored   int // transactions of unsupported kinds

	Disposals   []Disposal
	Diagnostics []Diagnostic
}

func newReport(cfg Config) *Report {
	zero := M(0, cfg.Currency)
	return &Report{
		Method:     cfg.Method,
		Rate:       cfg.Rate,
		Year:       cfg.Year,
		Currency:   cfg.Currency,
		Spot:       Ledger{Income: zero, Cost: zero},
		Derivative: Ledger{Income: zero, Cost: zero},
	}
}

// TaxableBase returns the sum of the spot and derivative taxable bases.
func (r *Report) TaxableBase() Money {
	return r.Spot.TaxableBase().Add(r.Derivative.TaxableBase())
}

// TaxDue returns the taxable base times the rate, rounded to whole currency
// units.
func (r *Report) TaxDue() Money {
	return r.Rate.Apply(r.TaxableBase()).Round(0)
}

// RealizedGain returns the sum of the gains of all disposals.
func (r *Report) RealizedGain() Money {
	total := M(decimal.Zero, r.Currency)
	for _, d := range r.Disposals {
		total = total.Add(d.Gain)
	}
	return total
}

// CostBasis returns the sum of the cost basis of all disposals.
func (r *Report) CostBasis() Money {
	total := M(decimal.Zero, r.Currency)
	for _, d := range r.Disposals {
		total = total.Add(d.CostBasis)
	}
	return total
}
