package taxlot

import (
	"cmp"
	"slices"
)

// order returns the open lots sorted in consumption order. It never reorders
// the given slice.
func (m Method) order(lots []*Lot) []*Lot {
	view := slices.Clone(lots)
	slices.SortFunc(view, m.compare)
	return view
}

// compare defines the consumption order of two lots of the same asset.
func (m Method) compare(a, b *Lot) int {
	switch m {
	case FIFO:
		return cmp.Or(a.Acquired.Compare(b.Acquired), cmp.Compare(a.seq, b.seq))
	case LIFO:
		return cmp.Or(b.Acquired.Compare(a.Acquired), cmp.Compare(b.seq, a.seq))
	case HIFO:
		return cmp.Or(b.UnitCost.Decimal().Cmp(a.UnitCost.Decimal()), a.Acquired.Compare(b.Acquired), cmp.Compare(a.seq, b.seq))
	case AVCO, SPECID:
		panic("no lot order for cost basis method " + m.String())
	default:
		panic("unknown cost basis method " + m.String())
	}
}
