package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/taxlot"
	"github.com/etnz/taxlot/renderer"
	"github.com/google/subcommands"
)

type reportCmd struct {
	json bool
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "compute the tax report of a transaction history" }
func (*reportCmd) Usage() string {
	return `ctax [-method <method>] [-year <year>] report [-json] [<file.jsonl>...]

  Matches every sale against the open lots using the cost basis method, and
  reports income, cost, taxable base and tax due for the spot and derivative
  ledgers. Transactions are read from the files, or from the standard input.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.json, "json", false, "print the report as JSON instead of Markdown")
}

func (c *reportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := loadConfig()
	if err != nil {
		return fail("Error loading configuration: %v", err)
	}
	txs, err := decodeFiles(ctx, os.Stdin, f.Args()...)
	if err != nil {
		return fail("Error loading transactions: %v", err)
	}
	engine, err := taxlot.NewEngine(cfg)
	if err != nil {
		return fail("Error creating engine: %v", err)
	}
	report, err := engine.Process(txs)
	if err != nil {
		return fail("Error processing transactions: %v", err)
	}

	if c.json {
		if err := printJSON(report); err != nil {
			return fail("Error encoding report: %v", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ReportMarkdown(report))
	return subcommands.ExitSuccess
}
