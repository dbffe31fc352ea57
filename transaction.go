package taxlot

import (
	"fmt"
	"time"
)

// Transaction is a single event of the tax history, as supplied by the
// transaction retrieval service. It is never modified by the engine.
//
// All fiat amounts (Price, Value, Fee, RealizedPnL) are already denominated in
// the reporting currency.
type Transaction struct {
	ID          string
	Venue       string
	Time        time.Time
	Kind        Kind
	Symbol      string
	Quantity    Quantity
	Price       Money  // unit price
	Value       Money  // total fiat value
	Fee         Money  // fee in fiat
	RealizedPnL Money  // derivatives only
	Reference   string // on-chain transaction hash
}

func (tx Transaction) String() string {
	return fmt.Sprintf("%s %s %s %s %s", tx.Time.Format(time.RFC3339), tx.ID, tx.Kind, tx.Quantity, tx.Symbol)
}

// Asset returns the asset the transaction is about.
func (tx Transaction) Asset() (string, error) {
	asset, err := ParseAsset(tx.Symbol)
	if err != nil {
		return "", fmt.Errorf("transaction %q: %w", tx.ID, err)
	}
	return asset, nil
}

// UnitPrice returns the price of one unit, derived from Value when Price is
// not set.
func (tx Transaction) UnitPrice() Money {
	if tx.Price.IsZero() && tx.Quantity.IsPositive() {
		return tx.Value.Div(tx.Quantity)
	}
	return tx.Price
}

// Amount returns the total fiat amount at the unit price: Price times
// Quantity, or Value when Price is not set.
func (tx Transaction) Amount() Money {
	if tx.Price.IsZero() {
		return tx.Value
	}
	return tx.Price.Mul(tx.Quantity)
}

// Proceeds returns the total fiat value of the transaction, derived from
// Price when Value is not set.
func (tx Transaction) Proceeds() Money {
	if tx.Value.IsZero() {
		return tx.Price.Mul(tx.Quantity)
	}
	return tx.Value
}
