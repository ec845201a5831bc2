package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/twr"
)

// CurveMarkdown renders the day-by-day cumulative TWR curve as a table, ready
// to paste into a charting tool.
func CurveMarkdown(result *twr.Result) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Cumulative TWR %s\n\n", result.Span.Identifier())
	if len(result.Curve) == 0 {
		fmt.Fprintf(&b, "No observations.\n")
		return b.String()
	}

	fmt.Fprintf(&b, "| Date | Cumulative |\n")
	fmt.Fprintf(&b, "|:---|---:|\n")
	for _, p := range result.Curve {
		fmt.Fprintf(&b, "| %s | %s |\n", p.Date, p.Value.SignedString())
	}
	fmt.Fprintf(&b, "\n")
	return b.String()
}
