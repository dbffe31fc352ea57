package taxlot

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/etnz/taxlot/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// txLine is the JSONL representation of a Transaction.
type txLine struct {
	ID          string          `json:"id"`
	Venue       string          `json:"venue"`
	Time        string          `json:"time"`
	Kind        string          `json:"kind"`
	Symbol      string          `json:"symbol"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Value       decimal.Decimal `json:"value"`
	Fee         decimal.Decimal `json:"fee"`
	RealizedPnL decimal.Decimal `json:"realizedPnl"`
	Reference   string          `json:"reference"`
}

// parseTime accepts RFC 3339 timestamps or plain dates, the latter meaning
// the start of the day in UTC.
func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	d, err := date.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: want RFC 3339 or YYYY-MM-DD", s)
	}
	return d.Start(), nil
}

// DecodeTransactions reads one JSON transaction per line. Empty lines are
// skipped. Transactions without id get one derived from their content, so
// decoding the same file twice yields the same ids. The input order is kept.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	var txs []Transaction
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var temp txLine
		if err := json.Unmarshal(line, &temp); err != nil {
			return nil, fmt.Errorf("line %d: could not decode transaction %q: %w", n, string(line), err)
		}
		at, err := parseTime(temp.Time)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		kind, err := ParseKind(temp.Kind)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		if temp.ID == "" {
			temp.ID = uuid.NewSHA1(uuid.NameSpaceOID, line).String()
		}
		txs = append(txs, Transaction{
			ID:          temp.ID,
			Venue:       temp.Venue,
			Time:        at,
			Kind:        kind,
			Symbol:      strings.TrimSpace(temp.Symbol),
			Quantity:    Q(temp.Quantity),
			Price:       M(temp.Price, ""),
			Value:       M(temp.Value, ""),
			Fee:         M(temp.Fee, ""),
			RealizedPnL: M(temp.RealizedPnL, ""),
			Reference:   temp.Reference,
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return txs, nil
}

// MarshalJSON writes the transaction with a stable field order, omitting
// empty fields.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", tx.ID)
	w.Optional("venue", tx.Venue)
	w.Append("time", tx.Time.UTC().Format(time.RFC3339Nano))
	w.Append("kind", tx.Kind)
	w.Optional("symbol", tx.Symbol)
	w.When(!tx.Quantity.IsZero(), "quantity", tx.Quantity)
	w.When(!tx.Price.IsZero(), "price", tx.Price)
	w.When(!tx.Value.IsZero(), "value", tx.Value)
	w.When(!tx.Fee.IsZero(), "fee", tx.Fee)
	w.When(!tx.RealizedPnL.IsZero(), "realizedPnl", tx.RealizedPnL)
	w.Optional("reference", tx.Reference)
	return w.MarshalJSON()
}

// EncodeTransactions writes txs as JSONL, one transaction per line, in the
// given order.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	bw := bufio.NewWriter(w)
	for _, tx := range txs {
		b, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("could not encode transaction %q: %w", tx.ID, err)
		}
		bw.Write(b)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
