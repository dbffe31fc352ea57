package taxlot

import (
	"slices"
	"time"
)

// Lot is a quantity of an asset acquired at a given time and unit cost,
// tracked until it is fully disposed of.
type Lot struct {
	Asset     string
	Acquired  time.Time
	Quantity  Quantity // originally acquired
	UnitCost  Money
	Remaining Quantity // 0 <= Remaining <= Quantity, never increases
	TxID      string   // originating transaction
	Venue     string

	cost Money // exact cost basis of Remaining
	seq  int   // insertion order, breaks ties between equal acquisition times
}

// Seq returns the insertion rank of the lot within one processing run.
func (l *Lot) Seq() int { return l.seq }

// Cost returns the cost basis of the remaining quantity.
func (l *Lot) Cost() Money { return l.cost }

// take removes q from the lot and returns its cost: pro rata, except for the
// take that empties the lot, which gets whatever cost is left.
func (l *Lot) take(q Quantity) Money {
	c := l.cost
	if q.LessThan(l.Remaining) {
		c = share(l.cost, q, l.Remaining)
	}
	l.Remaining = l.Remaining.Sub(q)
	l.cost = l.cost.Sub(c)
	return c
}

// share returns the part q/of of total.
func share(total Money, q, of Quantity) Money { return total.Mul(q).Div(of) }

// portion is a part of a lot consumed by a disposal.
type portion struct {
	lot      *Lot
	quantity Quantity
	cost     Money
}

// inventory holds the open lots of every asset for a single processing run.
type inventory struct {
	lots map[string][]*Lot // per asset, in insertion order
	seq  int
}

func newInventory() *inventory {
	return &inventory{lots: make(map[string][]*Lot)}
}

// add opens a new lot. The lot order in the inventory is meaningless, the
// consumption order is decided by the Method at disposal time.
func (inv *inventory) add(l *Lot) {
	l.seq = inv.seq
	inv.seq++
	inv.lots[l.Asset] = append(inv.lots[l.Asset], l)
}

// held returns the total remaining quantity of asset.
func (inv *inventory) held(asset string) Quantity {
	var total Quantity
	for _, l := range inv.lots[asset] {
		total = total.Add(l.Remaining)
	}
	return total
}

// assets returns the assets with open lots, sorted.
func (inv *inventory) assets() []string {
	assets := make([]string, 0, len(inv.lots))
	for asset, lots := range inv.lots {
		if len(lots) > 0 {
			assets = append(assets, asset)
		}
	}
	slices.Sort(assets)
	return assets
}

// consume takes quantity out of the lots of asset in the order defined by m.
// It returns the consumed portions, their total cost, and the quantity that
// could not be matched because the lots ran out.
func (inv *inventory) consume(asset string, quantity Quantity, m Method) (portions []portion, cost Money, residual Quantity) {
	residual = quantity
	for _, l := range m.order(inv.lots[asset]) {
		if !residual.IsPositive() {
			break
		}
		take := l.Remaining.Min(residual)
		c := l.take(take)
		residual = residual.Sub(take)
		cost = cost.Add(c)
		portions = append(portions, portion{lot: l, quantity: take, cost: c})
	}
	inv.lots[asset] = slices.DeleteFunc(inv.lots[asset], func(l *Lot) bool { return l.Remaining.IsZero() })
	return portions, cost, residual
}
