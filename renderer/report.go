package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/twr"
)

// ReportMarkdown renders the full performance report for a result: headline
// metrics, the measured sub-periods, and any data-quality warnings.
func ReportMarkdown(result *twr.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Performance Report %s\n\n", result.Span.Identifier())

	renderSummary(&b, result)
	renderPeriods(&b, result.Periods)
	renderWarnings(&b, result.Warnings)

	return b.String()
}

func renderSummary(w io.Writer, result *twr.Result) {
	fmt.Fprintf(w, "| Metric | Value |\n")
	fmt.Fprintf(w, "|:---|---:|\n")
	fmt.Fprintf(w, "| Total TWR | %s |\n", result.TotalPercent().SignedString())
	fmt.Fprintf(w, "| Annualized Return | %s |\n", result.AnnualizedPercent().SignedString())
	fmt.Fprintf(w, "| Volatility | %s |\n", twr.Percent(100*result.Volatility))
	fmt.Fprintf(w, "| Sharpe Ratio | %.2f |\n", result.SharpeRatio)
	dd := result.MaxDrawdown
	if dd.Magnitude > 0 {
		fmt.Fprintf(w, "| Max Drawdown | %s (%s to %s) |\n", twr.Percent(100*dd.Magnitude), dd.Peak, dd.Trough)
	} else {
		fmt.Fprintf(w, "| Max Drawdown | %s |\n", twr.Percent(0))
	}
	fmt.Fprintf(w, "| Days | %d |\n", result.Days)
	fmt.Fprintf(w, "\n")
}

func renderPeriods(w io.Writer, periods []twr.PeriodReturn) {
	ConditionalBlock(w, func(w io.Writer) bool {
		if len(periods) == 0 {
			return false
		}
		fmt.Fprintf(w, "## Sub-Periods\n\n")
		fmt.Fprintf(w, "| From | To | Start NAV | End NAV | Cash Flow | Return |\n")
		fmt.Fprintf(w, "|:---|:---|---:|---:|---:|---:|\n")
		for _, p := range periods {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s |\n",
				p.Range.From, p.Range.To,
				p.StartNAV, p.EndNAV,
				p.CashFlow.SignedString(),
				p.Percent().SignedString())
		}
		fmt.Fprintf(w, "\n")
		return true
	})
}

func renderWarnings(w io.Writer, warnings []twr.Warning) {
	ConditionalBlock(w, func(w io.Writer) bool {
		if len(warnings) == 0 {
			return false
		}
		fmt.Fprintf(w, "## Warnings\n\n")
		for _, warning := range warnings {
			fmt.Fprintf(w, "- **%s**: %s\n", warning.Kind, warning.Message)
		}
		fmt.Fprintf(w, "\n")
		return true
	})
}
