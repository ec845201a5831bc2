package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/twr"
)

// PeriodicMarkdown renders the calendar-bucketed returns of a result, one row
// per bucket.
func PeriodicMarkdown(result *twr.Result, period twr.Period) string {
	var b strings.Builder

	name := period.String()
	name = strings.ToUpper(name[:1]) + name[1:]
	fmt.Fprintf(&b, "# %s Returns %s\n\n", name, result.Span.Identifier())

	buckets := result.Periodic(period)
	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(buckets) == 0 {
			fmt.Fprintf(w, "No observations to bucket.\n")
			return true
		}
		fmt.Fprintf(w, "| Period | Start NAV | End NAV | Cash Flow | Return |\n")
		fmt.Fprintf(w, "|:---|---:|---:|---:|---:|\n")
		for _, bucket := range buckets {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				bucket.Range.Identifier(),
				bucket.StartNAV, bucket.EndNAV,
				bucket.CashFlow.SignedString(),
				bucket.Percent().SignedString())
		}
		fmt.Fprintf(w, "\n")
		return true
	})
	return b.String()
}
