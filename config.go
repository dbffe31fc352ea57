package taxlot

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Rhymond/go-money"
)

// OversellPolicy decides what happens when a disposal exceeds the quantity held.
type OversellPolicy int

const (
	// OversellReject fails the whole processing run.
	OversellReject OversellPolicy = iota
	// OversellAllow books the unmatched quantity as short-sale proceeds with
	// a provisional zero cost, and reports it as a diagnostic.
	OversellAllow
)

func (p OversellPolicy) String() string {
	switch p {
	case OversellReject:
		return "reject"
	case OversellAllow:
		return "allow"
	default:
		return "unknown"
	}
}

// ParseOversellPolicy parses "reject" or "allow".
func ParseOversellPolicy(s string) (OversellPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reject", "strict":
		return OversellReject, nil
	case "allow":
		return OversellAllow, nil
	default:
		return 0, fmt.Errorf("unknown oversell policy: %q", s)
	}
}

// DefaultRate is the flat tax rate applied when none is configured.
var DefaultRate = R("0.19")

// Config holds the parameters of a tax report.
type Config struct {
	Method   Method
	Rate     Rate
	Year     int    // reporting year, 0 reports on the whole history
	Currency string // ISO 4217 code of the fiat amounts
	Oversell OversellPolicy
	Logger   *slog.Logger // defaults to slog.Default()
}

// DefaultConfig returns a FIFO configuration at the default rate in PLN,
// rejecting oversells.
func DefaultConfig() Config {
	return Config{
		Method:   FIFO,
		Rate:     DefaultRate,
		Currency: "PLN",
		Oversell: OversellReject,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if !c.Method.Supported() {
		return fmt.Errorf("%w: %s", ErrUnsupportedMethod, c.Method)
	}
	if !c.Rate.Valid() {
		return fmt.Errorf("%w: rate %s is not within [0%%, 100%%]", ErrInvalidConfig, c.Rate)
	}
	if c.Year < 0 {
		return fmt.Errorf("%w: negative year %d", ErrInvalidConfig, c.Year)
	}
	if c.Currency != "" && money.GetCurrency(c.Currency) == nil {
		return fmt.Errorf("%w: unknown currency %q", ErrInvalidConfig, c.Currency)
	}
	switch c.Oversell {
	case OversellReject, OversellAllow:
	default:
		return fmt.Errorf("%w: unknown oversell policy %d", ErrInvalidConfig, c.Oversell)
	}
	return nil
}

func (c Config) logger() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}
