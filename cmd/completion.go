package cmd

import (
	"github.com/etnz/taxlot"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the command line.
func Completion() *complete.Command {
	transactions := predict.Files("*.jsonl")
	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"env-file":  predict.Files("*"),
			"method":    predict.Set{taxlot.FIFO.String(), taxlot.LIFO.String(), taxlot.HIFO.String()},
			"rate":      predict.Something,
			"year":      predict.Something,
			"currency":  predict.Set{"PLN", "EUR", "USD", "GBP"},
			"oversell":  predict.Set{taxlot.OversellReject.String(), taxlot.OversellAllow.String()},
			"log-level": predict.Set{"debug", "info", "warn", "error"},
		},
		Sub: map[string]*complete.Command{
			"report": {
				Flags: map[string]complete.Predictor{"json": predict.Nothing},
				Args:  transactions,
			},
			"snapshot": {
				Flags: map[string]complete.Predictor{"d": predict.Something, "json": predict.Nothing},
				Args:  transactions,
			},
			"fmt":   {Args: transactions},
			"kinds": {},
			"topic": {Args: predict.Set{"transactions", "methods", "configuration", "*"}},
			"help":  {},
		},
	}
}
