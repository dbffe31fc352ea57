package taxlot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Rate is a tax rate expressed as a fraction (0.19 for 19%).
type Rate struct {
	value decimal.Decimal
}

// R returns a Rate from a fraction.
func R[T float64 | int | int64 | string | decimal.Decimal](value T) Rate {
	return Rate{value: newDecimal(value)}
}

// ParseRate accepts either a fraction ("0.19") or a percentage ("19%").
func ParseRate(s string) (Rate, error) {
	s = strings.TrimSpace(s)
	percent := strings.HasSuffix(s, "%")
	d, err := decimal.NewFromString(strings.TrimSuffix(s, "%"))
	if err != nil {
		return Rate{}, fmt.Errorf("invalid rate %q: %w", s, err)
	}
	if percent {
		d = d.Shift(-2)
	}
	return Rate{value: d}, nil
}

func (r Rate) Decimal() decimal.Decimal { return r.value }
func (r Rate) Equal(q Rate) bool        { return r.value.Equal(q.value) }

// Valid reports whether the rate is within [0, 1].
func (r Rate) Valid() bool {
	return !r.value.IsNegative() && r.value.LessThanOrEqual(decimal.NewFromInt(1))
}

// Apply returns m multiplied by the rate.
func (r Rate) Apply(m Money) Money {
	return Money{value: m.value.Mul(r.value), cur: m.cur}
}

func (r Rate) String() string {
	return r.value.Shift(2).StringFixed(2) + "%"
}

func (r Rate) MarshalJSON() ([]byte, error) {
	return r.value.MarshalJSON()
}
