package taxlot

import (
	"fmt"
)

// apply routes tx according to its kind.
func (s *state) apply(tx Transaction) error {
	if err := s.currency(tx); err != nil {
		return err
	}
	switch tx.Kind.action() {
	case actionAcquire:
		return s.acquire(tx)
	case actionDispose:
		return s.disposal(tx)
	case actionCashflow:
		s.cashflow(tx)
		return nil
	case actionIgnore:
		s.report.Ignored++
		s.diagnose(tx, CodeUnsupportedKind, "%s transactions have no tax treatment, ignored", tx.Kind)
		return nil
	default:
		panic(fmt.Sprintf("unhandled action for kind %s", tx.Kind))
	}
}

// currency checks that every tagged amount of tx is in the reporting
// currency. Untagged amounts are taken as such.
func (s *state) currency(tx Transaction) error {
	amounts := []struct {
		name string
		m    Money
	}{
		{"price", tx.Price},
		{"value", tx.Value},
		{"fee", tx.Fee},
		{"realizedPnl", tx.RealizedPnL},
	}
	for _, a := range amounts {
		if c := a.m.Currency(); c != "" && c != s.cfg.Currency {
			return fmt.Errorf("transaction %q: %w: %s in %s, reporting currency is %q", tx.ID, ErrInvalidTransaction, a.name, c, s.cfg.Currency)
		}
	}
	return nil
}

// asset resolves the asset of a lot transaction and checks its quantity.
func (s *state) asset(tx Transaction) (string, error) {
	asset, err := tx.Asset()
	if err != nil {
		return "", err
	}
	if !tx.Quantity.IsPositive() {
		return "", fmt.Errorf("transaction %q: %w: %s quantity must be positive, got %s", tx.ID, ErrInvalidTransaction, tx.Kind, tx.Quantity)
	}
	return asset, nil
}

// acquire opens a lot at the transaction amount. Deposits use the
// recorded price as it is, fair value lookup is the caller's business.
// Staking rewards are also income at their value on receipt.
func (s *state) acquire(tx Transaction) error {
	asset, err := s.asset(tx)
	if err != nil {
		return err
	}
	lot := &Lot{
		Asset:     asset,
		Acquired:  tx.Time,
		Quantity:  tx.Quantity,
		UnitCost:  s.fiat(tx.UnitPrice()),
		Remaining: tx.Quantity,
		TxID:      tx.ID,
		Venue:     tx.Venue,
		cost:      s.fiat(tx.Amount()),
	}
	s.inventory.add(lot)
	s.journal.append(acquireLot{at: tx.Time, lot: *lot})
	s.report.Processed++

	if s.inPeriod(tx) {
		if tx.Kind == StakingReward {
			s.report.Spot.income(lot.cost)
		}
		s.report.Spot.cost(s.fiat(tx.Fee.Abs()))
	}
	s.log.Debug("lot acquired", "tx", tx.ID, "asset", asset, "quantity", tx.Quantity, "unitCost", lot.UnitCost)
	return nil
}

// disposal matches a sell or a withdrawal. Its income is the transaction
// value, its cost the matched cost basis plus the fee.
func (s *state) disposal(tx Transaction) error {
	asset, err := s.asset(tx)
	if err != nil {
		return err
	}
	d, err := s.dispose(tx, asset)
	if err != nil {
		return err
	}
	d.Price = s.fiat(d.Price)
	d.Proceeds = s.fiat(d.Proceeds)
	d.Fee = s.fiat(d.Fee)
	s.report.Processed++

	if d.Unmatched.IsPositive() {
		s.diagnose(tx, CodeNegativeInventory, "sold %s %s beyond inventory, booked at zero cost", d.Unmatched, asset)
	}
	for _, m := range d.Matches {
		s.log.Debug("lot matched", "tx", tx.ID, "lot", m.LotTx, "quantity", m.Quantity, "unitCost", m.UnitCost, "gain", m.Gain)
	}
	if s.inPeriod(tx) {
		s.report.Spot.income(d.Proceeds)
		s.report.Spot.cost(d.CostBasis.Add(d.Fee.Abs()))
		s.report.Disposals = append(s.report.Disposals, d)
	}
	return nil
}

// cashflow books a derivative result: a profit is income, a loss is cost,
// and a fee is always cost whatever its sign.
func (s *state) cashflow(tx Transaction) {
	s.report.Processed++
	if !s.inPeriod(tx) {
		return
	}
	pnl := s.fiat(tx.RealizedPnL)
	switch {
	case pnl.IsPositive():
		s.report.Derivative.income(pnl)
	case pnl.IsNegative():
		s.report.Derivative.cost(pnl.Abs())
	}
	s.report.Derivative.cost(s.fiat(tx.Fee.Abs()))
}
