package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/taxlot"
)

// ReportMarkdown renders a tax report as Markdown.
func ReportMarkdown(r *taxlot.Report) string {
	var b strings.Builder

	if r.Year == 0 {
		fmt.Fprint(&b, "# Tax Report\n\n")
	} else {
		fmt.Fprintf(&b, "# Tax Report %d\n\n", r.Year)
	}
	fmt.Fprintf(&b, "Method: %s, rate: %s, currency: %s\n\n", r.Method, r.Rate, r.Currency)

	fmt.Fprint(&b, "## Summary\n\n")
	fmt.Fprintln(&b, "| Ledger | Income | Cost | Taxable Base |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	fmt.Fprintf(&b, "| Spot | %s | %s | %s |\n", r.Spot.Income, r.Spot.Cost, r.Spot.TaxableBase())
	fmt.Fprintf(&b, "| Derivatives | %s | %s | %s |\n", r.Derivative.Income, r.Derivative.Cost, r.Derivative.TaxableBase())
	fmt.Fprintf(&b, "| **Total** | | | **%s** |\n\n", r.TaxableBase())

	fmt.Fprintf(&b, "Tax due: **%s**\n\n", r.TaxDue())
	fmt.Fprintf(&b, "Transactions processed: %d, ignored: %d\n", r.Processed, r.Ignored)

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Disposals\n\n")
		fmt.Fprintln(w, "| Date | Transaction | Asset | Quantity | Proceeds | Cost Basis | Gain |")
		fmt.Fprintln(w, "|:---|:---|:---|---:|---:|---:|---:|")
		for _, d := range r.Disposals {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s |\n",
				day(d.Time),
				cell(d.TxID),
				d.Asset,
				d.Quantity,
				d.Proceeds,
				d.CostBasis,
				d.Gain.SignedString(),
			)
		}
		fmt.Fprintf(w, "| **Total** | | | | | **%s** | **%s** |\n", r.CostBasis(), r.RealizedGain().SignedString())
		return len(r.Disposals) > 0
	})

	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprint(w, "\n## Diagnostics\n\n")
		for _, d := range r.Diagnostics {
			fmt.Fprintf(w, "- `%s` %s: %s\n", d.TxID, d.Code, d.Message)
		}
		return len(r.Diagnostics) > 0
	})

	return b.String()
}

// SnapshotMarkdown renders the open lots of a snapshot as Markdown.
func SnapshotMarkdown(s *taxlot.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Holdings on %s\n\n", day(s.At))
	if len(s.Holdings) == 0 {
		fmt.Fprintln(&b, "No open lots.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Asset | Quantity | Cost Basis | Lots |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|")
	for _, h := range s.Holdings {
		fmt.Fprintf(&b, "| %s | %s | %s | %d |\n", h.Asset, h.Quantity, h.Cost, len(h.Lots))
	}

	fmt.Fprint(&b, "\n## Lots\n\n")
	fmt.Fprintln(&b, "| Asset | Acquired | Transaction | Remaining | Unit Cost |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|")
	for _, h := range s.Holdings {
		for _, l := range h.Lots {
			fmt.Fprintf(&b, "| %s | %s | %s | %s | %s |\n", h.Asset, day(l.Acquired), cell(l.TxID), l.Remaining, l.UnitCost)
		}
	}
	return b.String()
}
