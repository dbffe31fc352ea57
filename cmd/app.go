// Package cmd implements the ctax command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&reportCmd{}, "tax")
	c.Register(&snapshotCmd{}, "tax")

	c.Register(&kindsCmd{}, "transactions")
	c.Register(&fmtCmd{}, "transactions")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.
// Empty values are unset: they fall back to the environment, then to the defaults.

var (
	envFile  = flag.String("env-file", ".env", "Path to a dotenv file with CTAX_* variables, ignored when missing")
	method   = flag.String("method", "", "Cost basis method: fifo, lifo or hifo (env CTAX_METHOD, default fifo)")
	rate     = flag.String("rate", "", "Tax rate as a fraction or a percentage, e.g. 0.19 or 19% (env CTAX_RATE, default 19%)")
	year     = flag.String("year", "", "Reporting year, 0 for the whole history (env CTAX_YEAR)")
	currency = flag.String("currency", "", "ISO 4217 code of the fiat amounts (env CTAX_CURRENCY, default PLN)")
	oversell = flag.String("oversell", "", "What to do with sales beyond the inventory: reject or allow (env CTAX_OVERSELL)")
	logLevel = flag.String("log-level", "", "Log level: debug, info, warn or error (env CTAX_LOG_LEVEL, default warn)")
)

// printMarkdown renders md for the terminal, falling back to the raw Markdown
// if rendering fails.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// fail prints the error and returns the failure status.
func fail(format string, args ...any) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	return subcommands.ExitFailure
}
