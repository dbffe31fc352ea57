package taxlot

import (
	"time"
)

func (l Ledger) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("income", l.Income)
	w.Append("cost", l.Cost)
	w.Append("taxableBase", l.TaxableBase())
	return w.MarshalJSON()
}

func (m Match) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("lot", m.LotTx)
	w.Append("acquired", m.Acquired.UTC().Format(time.RFC3339Nano))
	w.Append("quantity", m.Quantity)
	w.Append("unitCost", m.UnitCost)
	w.Append("cost", m.Cost)
	w.Append("proceeds", m.Proceeds)
	w.Append("gain", m.Gain)
	return w.MarshalJSON()
}

func (d Disposal) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("tx", d.TxID)
	w.Append("asset", d.Asset)
	w.Append("time", d.Time.UTC().Format(time.RFC3339Nano))
	w.Append("quantity", d.Quantity)
	w.Append("price", d.Price)
	w.Append("proceeds", d.Proceeds)
	w.When(!d.Fee.IsZero(), "fee", d.Fee)
	w.Append("costBasis", d.CostBasis)
	w.Append("gain", d.Gain)
	w.When(d.Unmatched.IsPositive(), "unmatched", d.Unmatched)
	w.Append("matches", nonNil(d.Matches))
	return w.MarshalJSON()
}

// MarshalJSON writes the report with a stable field order: the same report
// always encodes to the same bytes.
func (r *Report) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("method", r.Method)
	w.Append("rate", r.Rate)
	w.Optional("year", r.Year)
	w.Append("currency", r.Currency)
	w.Append("spot", r.Spot)
	w.Append("derivative", r.Derivative)
	w.Append("taxableBase", r.TaxableBase())
	w.Append("taxDue", r.TaxDue())
	w.Append("processed", r.Processed)
	w.Append("ignored", r.Ignored)
	w.Append("disposals", nonNil(r.Disposals))
	w.Append("diagnostics", nonNil(r.Diagnostics))
	return w.MarshalJSON()
}

// nonNil makes nil slices encode as [] rather than null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (l Lot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("tx", l.TxID)
	w.Optional("venue", l.Venue)
	w.Append("acquired", l.Acquired.UTC().Format(time.RFC3339Nano))
	w.Append("quantity", l.Quantity)
	w.Append("remaining", l.Remaining)
	w.Append("unitCost", l.UnitCost)
	w.Append("cost", l.Cost())
	return w.MarshalJSON()
}

func (h Holding) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("asset", h.Asset)
	w.Append("quantity", h.Quantity)
	w.Append("cost", h.Cost)
	w.Append("lots", nonNil(h.Lots))
	return w.MarshalJSON()
}

func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("at", s.At.UTC().Format(time.RFC3339Nano))
	w.Append("holdings", nonNil(s.Holdings))
	return w.MarshalJSON()
}
