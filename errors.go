package taxlot

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAsset is returned when a transaction symbol cannot be resolved to an asset.
	ErrUnknownAsset = errors.New("unknown asset")
	// ErrInsufficientInventory is returned when a disposal exceeds the quantity held
	// and negative inventory is not allowed.
	ErrInsufficientInventory = errors.New("insufficient inventory")
	// ErrUnsupportedMethod is returned for cost basis methods without a consumption order.
	ErrUnsupportedMethod = errors.New("unsupported cost basis method")
	// ErrInvalidTransaction is returned for transactions that cannot be applied.
	ErrInvalidTransaction = errors.New("invalid transaction")
	// ErrInvalidConfig is returned by Config.Validate.
	ErrInvalidConfig = errors.New("invalid config")
)

// Diagnostic codes.
const (
	CodeUnsupportedKind   = "unsupported-kind"
	CodeNegativeInventory = "negative-inventory"
)

// Diagnostic is a non fatal condition met while processing a transaction.
type Diagnostic struct {
	TxID    string `json:"tx"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (d Diagnostic) String() string { return d.TxID + ": " + d.Code + ": " + d.Message }

func insufficient(tx Transaction, asset string, held Quantity) error {
	return fmt.Errorf("transaction %q: %w: selling %s %s while holding %s", tx.ID, ErrInsufficientInventory, tx.Quantity, asset, held)
}
