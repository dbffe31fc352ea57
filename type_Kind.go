package taxlot

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the declared type of a transaction.
type Kind int

const (
	SpotBuy Kind = iota
	SpotSell
	FuturesPnL // realized profit or loss of a closed derivative position
	FundingFee
	Deposit
	Withdrawal
	StakingReward
	DefiSwap
	LiquidityAdd
	LiquidityRemove
	BridgeSend
	BridgeReceive
)

var kindNames = [...]string{
	SpotBuy:         "spot-buy",
	SpotSell:        "spot-sell",
	FuturesPnL:      "futures-pnl",
	FundingFee:      "funding-fee",
	Deposit:         "deposit",
	Withdrawal:      "withdrawal",
	StakingReward:   "staking-reward",
	DefiSwap:        "defi-swap",
	LiquidityAdd:    "liquidity-add",
	LiquidityRemove: "liquidity-remove",
	BridgeSend:      "bridge-send",
	BridgeReceive:   "bridge-receive",
}

// Kinds returns all transaction kinds in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind parses a kind. It accepts "spot-buy" as well as "SPOT_BUY".
func ParseKind(s string) (Kind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range kindNames {
		if name == norm {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown transaction kind: %q", s)
}

func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *Kind) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	v, err := ParseKind(s)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// action is what a transaction does to the inventory and the ledgers.
type action int

const (
	actionIgnore  action = iota // no defined tax treatment
	actionAcquire               // opens a lot
	actionDispose               // consumes lots
	actionCashflow              // books derivative income or cost directly
)

// action classifies the kind.
func (k Kind) action() action {
	switch k {
	case SpotBuy, Deposit, StakingReward:
		return actionAcquire
	case SpotSell, Withdrawal:
		return actionDispose
	case FuturesPnL, FundingFee:
		return actionCashflow
	case DefiSwap, LiquidityAdd, LiquidityRemove, BridgeSend, BridgeReceive:
		return actionIgnore
	default:
		return actionIgnore
	}
}

// Supported reports whether transactions of this kind have a tax treatment.
func (k Kind) Supported() bool { return k.action() != actionIgnore }

func (a action) String() string {
	switch a {
	case actionAcquire:
		return "acquire"
	case actionDispose:
		return "dispose"
	case actionCashflow:
		return "cashflow"
	default:
		return "ignore"
	}
}

// Treatment names what transactions of this kind do: "acquire", "dispose",
// "cashflow" or "ignore".
func (k Kind) Treatment() string { return k.action().String() }
