package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/etnz/taxlot"
	"golang.org/x/sync/errgroup"
)

// decodeFiles decodes the JSONL transaction files concurrently and returns
// their transactions in argument order. "-" reads the standard input.
func decodeFiles(ctx context.Context, stdin io.Reader, paths ...string) ([]taxlot.Transaction, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	parts := make([][]taxlot.Transaction, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			txs, err := decodeFile(path, stdin)
			if err != nil {
				return err
			}
			parts[i] = txs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []taxlot.Transaction
	for _, txs := range parts {
		all = append(all, txs...)
	}
	return all, nil
}

func decodeFile(path string, stdin io.Reader) ([]taxlot.Transaction, error) {
	if path == "-" {
		txs, err := taxlot.DecodeTransactions(stdin)
		if err != nil {
			return nil, fmt.Errorf("standard input: %w", err)
		}
		return txs, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	txs, err := taxlot.DecodeTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return txs, nil
}
