package taxlot

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

var assetPattern = regexp.MustCompile(`^[A-Z0-9]{1,15}$`)

// quoteSuffixes are stripped from concatenated pairs like BTCUSDT.
// Longest first, so that USDT wins over USD.
var quoteSuffixes = []string{"FDUSD", "USDT", "USDC", "BUSD", "TUSD", "EUR", "USD", "PLN", "GBP"}

// standalone are assets whose ticker ends with a quote suffix. They are only
// split when written with a separator.
var standalone = []string{"FDUSD", "PYUSD", "TUSD", "BUSD", "GUSD", "AEUR"}

// ParseAsset resolves a trading pair or an asset symbol to the base asset:
// "BTC/USDT", "btc-eur", "BTC_USDT", "BTCUSDT" and "BTC" all resolve to "BTC".
// A concatenated pair is split on the longest known quote suffix, unless the
// whole symbol is a standalone asset.
func ParseAsset(symbol string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	if i := strings.IndexAny(s, "/-_:"); i >= 0 {
		base, quote := s[:i], s[i+1:]
		if !assetPattern.MatchString(base) || quote == "" {
			return "", fmt.Errorf("%w: cannot parse pair %q", ErrUnknownAsset, symbol)
		}
		return base, nil
	}
	if !assetPattern.MatchString(s) {
		return "", fmt.Errorf("%w: cannot parse symbol %q", ErrUnknownAsset, symbol)
	}
	if slices.Contains(standalone, s) {
		return s, nil
	}
	for _, quote := range quoteSuffixes {
		if base, ok := strings.CutSuffix(s, quote); ok && len(base) >= 2 {
			return base, nil
		}
	}
	return s, nil
}
