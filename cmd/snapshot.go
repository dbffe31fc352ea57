package cmd

import (
	"context"
	"flag"
	"os"

	"github.com/etnz/taxlot"
	"github.com/etnz/taxlot/date"
	"github.com/etnz/taxlot/renderer"
	"github.com/google/subcommands"
)

type snapshotCmd struct {
	date string
	json bool
}

func (*snapshotCmd) Name() string     { return "snapshot" }
func (*snapshotCmd) Synopsis() string { return "display the open lots at the end of a given day" }
func (*snapshotCmd) Usage() string {
	return `ctax snapshot [-d <date>] [-json] [<file.jsonl>...]

  Replays the lot journal up to the end of the given day and displays the
  holdings per asset with their open lots.
`
}

func (c *snapshotCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Date of the snapshot (YYYY-MM-DD)")
	f.BoolVar(&c.json, "json", false, "print the snapshot as JSON instead of Markdown")
}

func (c *snapshotCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := date.Parse(c.date)
	if err != nil {
		return fail("Error parsing date: %v", err)
	}
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
	snapshot, err := engine.Snapshot(txs, on)
	if err != nil {
		return fail("Error processing transactions: %v", err)
	}

	if c.json {
		if err := printJSON(snapshot); err != nil {
			return fail("Error encoding snapshot: %v", err)
		}
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.SnapshotMarkdown(snapshot))
	return subcommands.ExitSuccess
}
