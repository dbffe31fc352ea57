package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/taxlot"
	"github.com/google/subcommands"
)

type kindsCmd struct{}

func (*kindsCmd) Name() string     { return "kinds" }
func (*kindsCmd) Synopsis() string { return "list the transaction kinds and their tax treatment" }
func (*kindsCmd) Usage() string {
	return `ctax kinds

  Lists the values accepted in the "kind" field of a transaction.
`
}

func (*kindsCmd) SetFlags(*flag.FlagSet) {}

func (*kindsCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	printMarkdown(kindsMarkdown())
	return subcommands.ExitSuccess
}

func kindsMarkdown() string {
	var b strings.Builder
	fmt.Fprint(&b, "# Transaction Kinds\n\n")
	fmt.Fprintln(&b, "| Kind | Treatment |")
	fmt.Fprintln(&b, "|:---|:---|")
	for _, k := range taxlot.Kinds() {
		fmt.Fprintf(&b, "| %s | %s |\n", k, k.Treatment())
	}
	return b.String()
}
