package taxlot

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/etnz/taxlot/date"
)

// Engine computes tax reports from transaction histories.
//
// An Engine only holds its configuration: every call rebuilds the inventory
// from the full history it is given, so an Engine is safe for concurrent use.
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns an Engine using it.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config { return e.cfg }

// Process computes the tax report of the given transactions. The
// transactions do not need to be sorted. Process either returns a complete
// report or an error, never a partial report.
func (e *Engine) Process(txs []Transaction) (*Report, error) {
	s, err := e.run(txs)
	if err != nil {
		return nil, err
	}
	return s.report, nil
}

// Journal returns the lot events produced by processing txs.
func (e *Engine) Journal(txs []Transaction) (*Journal, error) {
	s, err := e.run(txs)
	if err != nil {
		return nil, err
	}
	return s.journal, nil
}

// Snapshot returns the inventory at the end of day on.
func (e *Engine) Snapshot(txs []Transaction, on date.Date) (*Snapshot, error) {
	j, err := e.Journal(txs)
	if err != nil {
		return nil, err
	}
	return j.Snapshot(on.End()), nil
}

// state is everything a single processing run owns.
type state struct {
	cfg       Config
	log       *slog.Logger
	inventory *inventory
	journal   *Journal
	report    *Report
}

func (e *Engine) run(txs []Transaction) (*state, error) {
	sorted := slices.Clone(txs)
	// equal timestamps keep the input order.
	slices.SortStableFunc(sorted, func(a, b Transaction) int { return a.Time.Compare(b.Time) })

	s := &state{
		cfg:       e.cfg,
		log:       e.cfg.logger(),
		inventory: newInventory(),
		journal:   &Journal{},
		report:    newReport(e.cfg),
	}
	for _, tx := range sorted {
		if err := s.apply(tx); err != nil {
			return nil, err
		}
	}
	s.log.Debug("processed transactions",
		"method", s.cfg.Method,
		"processed", s.report.Processed,
		"ignored", s.report.Ignored,
		"disposals", len(s.report.Disposals),
		"openAssets", s.inventory.assets())
	return s, nil
}

// inPeriod reports whether tx falls in the reporting year.
func (s *state) inPeriod(tx Transaction) bool {
	return s.cfg.Year == 0 || tx.Time.UTC().Year() == s.cfg.Year
}

// fiat tags a transaction amount with the reporting currency.
func (s *state) fiat(m Money) Money { return m.In(s.cfg.Currency) }

// diagnose records a non fatal condition.
func (s *state) diagnose(tx Transaction, code, format string, args ...any) {
	d := Diagnostic{TxID: tx.ID, Code: code, Message: fmt.Sprintf(format, args...)}
	s.report.Diagnostics = append(s.report.Diagnostics, d)
	s.log.Warn(d.Message, "tx", d.TxID, "code", d.Code)
}
