package taxlot

import (
	"time"
)

// Match links a disposal to one of the lots it consumed.
type Match struct {
	LotTx    string    // transaction that opened the lot
	Acquired time.Time // acquisition time of the lot
	Quantity Quantity  // quantity taken from the lot
	UnitCost Money     // unit cost of the lot
	Cost     Money     // cost basis of Quantity
	Proceeds Money     // share of the sale proceeds
	Gain     Money     // Proceeds - Cost
}

// Disposal is the outcome of matching one sell or withdrawal against the
// inventory.
type Disposal struct {
	TxID      string
	Asset     string
	Time      time.Time
	Quantity  Quantity
	Price     Money // unit sale price
	Proceeds  Money // total fiat value of the sale
	Fee       Money
	Matches   []Match
	CostBasis Money    // sum of the matched costs
	Gain      Money    // Proceeds - CostBasis
	Unmatched Quantity // quantity sold beyond the inventory, zero unless oversell is allowed
}

// Matched returns the quantity covered by lots.
func (d Disposal) Matched() Quantity { return d.Quantity.Sub(d.Unmatched) }

// dispose matches tx against the inventory of asset.
//
// Proceeds are shared between portions like lot costs are: pro rata, the
// last share taking the rest. A residual quantity is only accepted under
// OversellAllow, where it gets the remaining proceeds at a zero cost.
func (s *state) dispose(tx Transaction, asset string) (Disposal, error) {
	d := Disposal{
		TxID:     tx.ID,
		Asset:    asset,
		Time:     tx.Time,
		Quantity: tx.Quantity,
		Price:    tx.UnitPrice(),
		Proceeds: tx.Proceeds(),
		Fee:      tx.Fee,
	}

	if held := s.inventory.held(asset); held.LessThan(tx.Quantity) && s.cfg.Oversell == OversellReject {
		return Disposal{}, insufficient(tx, asset, held)
	}

	portions, cost, residual := s.inventory.consume(asset, tx.Quantity, s.cfg.Method)
	proceeds, left := d.Proceeds, tx.Quantity
	for _, p := range portions {
		part := proceeds
		if p.quantity.LessThan(left) {
			part = share(proceeds, p.quantity, left)
		}
		proceeds, left = proceeds.Sub(part), left.Sub(p.quantity)

		m := Match{
			LotTx:    p.lot.TxID,
			Acquired: p.lot.Acquired,
			Quantity: p.quantity,
			UnitCost: p.lot.UnitCost,
			Cost:     p.cost,
			Proceeds: part,
		}
		m.Gain = m.Proceeds.Sub(m.Cost)
		d.Matches = append(d.Matches, m)
		s.journal.append(consumeLot{at: tx.Time, seq: p.lot.seq, asset: asset, txID: tx.ID, quantity: p.quantity, cost: p.cost})
	}
	d.CostBasis = cost
	d.Unmatched = residual
	d.Gain = d.Proceeds.Sub(cost)
	return d, nil
}
