package taxlot

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestParseAsset(t *testing.T) {
	testCases := []struct {
		symbol  string
		want    string
		wantErr bool
	}{
		{symbol: "BTC/USDT", want: "BTC"},
		{symbol: "btc-eur", want: "BTC"},
		{symbol: "ETH_USDC", want: "ETH"},
		{symbol: "SOL:USD", want: "SOL"},
		{symbol: "BTCUSDT", want: "BTC"},
		{symbol: "ETHFDUSD", want: "ETH"},
		{symbol: "BTCPLN", want: "BTC"},
		{symbol: " dot ", want: "DOT"},
		{symbol: "USDT", want: "USDT"},
		{symbol: "1INCHUSDT", want: "1INCH"},
		{symbol: "PYUSD", want: "PYUSD"},
		{symbol: "FDUSD", want: "FDUSD"},
		{symbol: "PYUSDUSDT", want: "PYUSD"},
		{symbol: "PYUSD/EUR", want: "PYUSD"},
		{symbol: "BTCFDUSD", want: "BTC"},
		{symbol: "OPUSD", want: "OP"},
		{symbol: "", wantErr: true},
		{symbol: "BTC/", wantErr: true},
		{symbol: "/USDT", wantErr: true},
		{symbol: "BTC USDT", wantErr: true},
		{symbol: "ÉTH", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.symbol, func(t *testing.T) {
			got, err := ParseAsset(tc.symbol)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseAsset(%q) error = %v, wantErr %v", tc.symbol, err, tc.wantErr)
			}
			if err != nil && !errors.Is(err, ErrUnknownAsset) {
				t.Errorf("ParseAsset(%q) error = %v, want %v", tc.symbol, err, ErrUnknownAsset)
			}
			if got != tc.want {
				t.Errorf("ParseAsset(%q) = %q, want %q", tc.symbol, got, tc.want)
			}
		})
	}
}

func TestParseMethod(t *testing.T) {
	testCases := []struct {
		in        string
		want      Method
		supported bool
		wantErr   bool
	}{
		{in: "fifo", want: FIFO, supported: true},
		{in: "LIFO", want: LIFO, supported: true},
		{in: " hifo ", want: HIFO, supported: true},
		{in: "average", want: AVCO},
		{in: "specid", want: SPECID},
		{in: "lowest", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseMethod(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseMethod(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if got != tc.want {
				t.Errorf("ParseMethod(%q) = %v, want %v", tc.in, got, tc.want)
			}
			if got.Supported() != tc.supported {
				t.Errorf("%v.Supported() = %v, want %v", got, got.Supported(), tc.supported)
			}
		})
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v, want %v", k.String(), got, err, k)
		}
	}
	testCases := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "SPOT_BUY", want: SpotBuy},
		{in: "FUTURES_PNL", want: FuturesPnL},
		{in: "Bridge-Receive", want: BridgeReceive},
		{in: "airdrop", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseKind(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestKindTreatment(t *testing.T) {
	testCases := []struct {
		kind Kind
		want string
	}{
		{SpotBuy, "acquire"},
		{Deposit, "acquire"},
		{StakingReward, "acquire"},
		{SpotSell, "dispose"},
		{Withdrawal, "dispose"},
		{FuturesPnL, "cashflow"},
		{FundingFee, "cashflow"},
		{DefiSwap, "ignore"},
		{LiquidityAdd, "ignore"},
		{BridgeSend, "ignore"},
		{Kind(99), "ignore"},
	}
	for _, tc := range testCases {
		if got := tc.kind.Treatment(); got != tc.want {
			t.Errorf("%v.Treatment() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}

func TestKindJSON(t *testing.T) {
	var v struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal([]byte(`{"kind":"STAKING_REWARD"}`), &v); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if v.Kind != StakingReward {
		t.Errorf("Unmarshal() kind = %v, want %v", v.Kind, StakingReward)
	}
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if got, want := string(b), `{"kind":"staking-reward"}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}
}

func TestParseRate(t *testing.T) {
	testCases := []struct {
		in      string
		want    Rate
		valid   bool
		wantErr bool
	}{
		{in: "0.19", want: R("0.19"), valid: true},
		{in: "19%", want: R("0.19"), valid: true},
		{in: "100%", want: R(1), valid: true},
		{in: "150%", want: R("1.5"), valid: false},
		{in: "-0.1", want: R("-0.1"), valid: false},
		{in: "abc", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseRate(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseRate(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if !got.Equal(tc.want) {
				t.Errorf("ParseRate(%q) = %v, want %v", tc.in, got, tc.want)
			}
			if got.Valid() != tc.valid {
				t.Errorf("%v.Valid() = %v, want %v", got, got.Valid(), tc.valid)
			}
		})
	}
	if got := R("0.19").String(); got != "19.00%" {
		t.Errorf("String() = %q, want %q", got, "19.00%")
	}
}

func TestMoney(t *testing.T) {
	t.Run("weak currency", func(t *testing.T) {
		got := M(10, "").Add(M(5, "PLN"))
		if got.Currency() != "PLN" || !got.Equal(M(15, "PLN")) {
			t.Errorf("Add() = %v %s, want 15 PLN", got, got.Currency())
		}
		if !M(3, "").Equal(M(3, "EUR")) {
			t.Errorf("Equal() with an empty currency = false, want true")
		}
		if M(3, "USD").Equal(M(3, "EUR")) {
			t.Errorf("Equal() across currencies = true, want false")
		}
	})

	t.Run("currency mismatch panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("Add() across currencies did not panic")
			}
		}()
		M(1, "EUR").Add(M(1, "USD"))
	})

	t.Run("arithmetic", func(t *testing.T) {
		if got := M(10000, "").Div(Q(3)).Mul(Q(3)).Round(2); !got.Equal(M(10000, "")) {
			t.Errorf("Div().Mul().Round() = %v, want 10000", got)
		}
		if got := M(-5, "PLN").Floor(); !got.IsZero() || got.Currency() != "PLN" {
			t.Errorf("Floor() = %v %s, want 0 PLN", got, got.Currency())
		}
		if got := M(-5, "").Abs(); !got.Equal(M(5, "")) {
			t.Errorf("Abs() = %v, want 5", got)
		}
		if got := R("0.19").Apply(M(480, "PLN")).Round(0); !got.Equal(M(91, "PLN")) {
			t.Errorf("Apply().Round(0) = %v, want 91", got)
		}
	})

	t.Run("string", func(t *testing.T) {
		testCases := []struct {
			m    Money
			want string
		}{
			{M("1234.5", "USD"), "$1,234.50"},
			{M("1234.567", ""), "1234.57"},
			{M(0, "USD"), "$0.00"},
		}
		for _, tc := range testCases {
			if got := tc.m.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		}
		if got := M(0, "USD").SignedString(); got != "-" {
			t.Errorf("SignedString() = %q, want %q", got, "-")
		}
		if got := M(2, "USD").SignedString(); got != "+$2.00" {
			t.Errorf("SignedString() = %q, want %q", got, "+$2.00")
		}
	})
}

func TestConfigValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{name: "default", modify: func(*Config) {}},
		{name: "no currency", modify: func(c *Config) { c.Currency = "" }},
		{name: "avco", modify: func(c *Config) { c.Method = AVCO }, want: ErrUnsupportedMethod},
		{name: "negative rate", modify: func(c *Config) { c.Rate = R(-1) }, want: ErrInvalidConfig},
		{name: "negative year", modify: func(c *Config) { c.Year = -2024 }, want: ErrInvalidConfig},
		{name: "unknown currency", modify: func(c *Config) { c.Currency = "ZZZ" }, want: ErrInvalidConfig},
		{name: "unknown oversell", modify: func(c *Config) { c.Oversell = OversellPolicy(7) }, want: ErrInvalidConfig},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(&cfg)
			err := cfg.Validate()
			if tc.want == nil && err != nil {
				t.Fatalf("Validate() error = %v, want nil", err)
			}
			if tc.want != nil && !errors.Is(err, tc.want) {
				t.Errorf("Validate() error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseOversellPolicy(t *testing.T) {
	for in, want := range map[string]OversellPolicy{"reject": OversellReject, "STRICT": OversellReject, "allow": OversellAllow} {
		got, err := ParseOversellPolicy(in)
		if err != nil || got != want {
			t.Errorf("ParseOversellPolicy(%q) = %v, %v, want %v", in, got, err, want)
		}
	}
	if _, err := ParseOversellPolicy("ignore"); err == nil {
		t.Errorf("ParseOversellPolicy(ignore) error = nil, want an error")
	}
}
