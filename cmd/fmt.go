package cmd

import (
	"context"
	"flag"
	"os"
	"slices"

	"github.com/etnz/taxlot"
	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string     { return "fmt" }
func (*fmtCmd) Synopsis() string { return "normalize transaction files" }
func (*fmtCmd) Usage() string {
	return `ctax fmt [<file.jsonl>...]

  Reads the transactions, assigns ids to those without one, sorts them
  chronologically and prints them as JSONL on the standard output.
`
}

func (*fmtCmd) SetFlags(*flag.FlagSet) {}

func (*fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := decodeFiles(ctx, os.Stdin, f.Args()...)
	if err != nil {
		return fail("Error loading transactions: %v", err)
	}
	slices.SortStableFunc(txs, func(a, b taxlot.Transaction) int { return a.Time.Compare(b.Time) })
	if err := taxlot.EncodeTransactions(os.Stdout, txs); err != nil {
		return fail("Error writing transactions: %v", err)
	}
	return subcommands.ExitSuccess
}
