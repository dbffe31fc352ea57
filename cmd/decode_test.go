package cmd

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// createTempLedger creates a transaction file with content.
func createTempLedger(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestDecodeFiles(t *testing.T) {
	binance := createTempLedger(t, "binance.jsonl", `{"id":"b1","time":"2024-01-02","kind":"spot-buy","symbol":"BTCUSDT","quantity":1,"price":100}
{"id":"b2","time":"2024-01-03","kind":"spot-sell","symbol":"BTCUSDT","quantity":1,"price":150}
`)
	kraken := createTempLedger(t, "kraken.jsonl", `{"id":"k1","time":"2024-01-01","kind":"deposit","symbol":"ETH","quantity":2,"price":10}
`)

	txs, err := decodeFiles(context.Background(), nil, binance, kraken)
	if err != nil {
		t.Fatalf("decodeFiles() error = %v", err)
	}
	var ids []string
	for _, tx := range txs {
		ids = append(ids, tx.ID)
	}
	if got, want := strings.Join(ids, ","), "b1,b2,k1"; got != want {
		t.Errorf("decodeFiles() ids = %s, want %s (argument order)", got, want)
	}
}

func TestDecodeFilesStdin(t *testing.T) {
	stdin := strings.NewReader(`{"id":"s1","time":"2024-01-02","kind":"staking-reward","symbol":"DOT","quantity":1,"value":5}`)
	txs, err := decodeFiles(context.Background(), stdin)
	if err != nil {
		t.Fatalf("decodeFiles() error = %v", err)
	}
	if len(txs) != 1 || txs[0].ID != "s1" {
		t.Errorf("decodeFiles() = %v, want s1 from the standard input", txs)
	}
}

func TestDecodeFilesErrors(t *testing.T) {
	bad := createTempLedger(t, "bad.jsonl", `{"id":"x","time":"2024-01-02","kind":"airdrop"}`)
	testCases := []struct {
		name  string
		paths []string
		want  string
	}{
		{name: "missing file", paths: []string{filepath.Join(t.TempDir(), "nope.jsonl")}, want: "nope.jsonl"},
		{name: "unknown kind", paths: []string{bad}, want: "bad.jsonl: line 1"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := decodeFiles(context.Background(), nil, tc.paths...)
			if err == nil {
				t.Fatalf("decodeFiles() error = nil, want an error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("decodeFiles() error = %q, want it to contain %q", err, tc.want)
			}
		})
	}
}

func TestKindsMarkdown(t *testing.T) {
	md := kindsMarkdown()
	for _, want := range []string{"| spot-buy | acquire |", "| withdrawal | dispose |", "| funding-fee | cashflow |", "| bridge-send | ignore |"} {
		if !strings.Contains(md, want) {
			t.Errorf("kindsMarkdown() misses %q:\n%s", want, md)
		}
	}
}
