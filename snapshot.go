package taxlot

import (
	"cmp"
	"slices"
	"time"

	"github.com/samber/lo"
)

// Snapshot is the inventory as it stood at a point in time.
type Snapshot struct {
	At       time.Time
	Holdings []Holding // sorted by asset
}

// Holding is the open position in one asset.
type Holding struct {
	Asset    string
	Quantity Quantity // sum of the remaining quantities
	Cost     Money    // cost basis of the remaining quantities
	Lots     []Lot    // open lots, in acquisition order
}

func newSnapshot(at time.Time, lots map[int]*Lot) *Snapshot {
	open := lo.Filter(lo.Values(lots), func(l *Lot, _ int) bool { return l.Remaining.IsPositive() })
	byAsset := lo.GroupBy(open, func(l *Lot) string { return l.Asset })

	assets := lo.Keys(byAsset)
	slices.Sort(assets)

	s := &Snapshot{At: at}
	for _, asset := range assets {
		group := byAsset[asset]
		slices.SortFunc(group, func(a, b *Lot) int { return cmp.Compare(a.seq, b.seq) })
		h := Holding{Asset: asset}
		for _, l := range group {
			h.Quantity = h.Quantity.Add(l.Remaining)
			h.Cost = h.Cost.Add(l.Cost())
			h.Lots = append(h.Lots, *l)
		}
		s.Holdings = append(s.Holdings, h)
	}
	return s
}

// Holding returns the position in asset, if any.
func (s *Snapshot) Holding(asset string) (Holding, bool) {
	return lo.Find(s.Holdings, func(h Holding) bool { return h.Asset == asset })
}

// Position returns the quantity of asset held, zero when none.
func (s *Snapshot) Position(asset string) Quantity {
	h, _ := s.Holding(asset)
	return h.Quantity
}
