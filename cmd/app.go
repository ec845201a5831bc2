// Package cmd implements the CLI application to compute portfolio
// performance reports.
package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/twr"
	"github.com/google/subcommands"
)

// Commands lists the subcommands.
// A main package will call Register on each of them, and Execute() on the user-selected one.
var Commands = []subcommands.Command{
	&reportCmd{},
	&weeklyCmd{},
	&monthlyCmd{},
	&quarterlyCmd{},
	&yearlyCmd{},
	&curveCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var navFile = flag.String("nav-file", "nav.json", "Path to the NAV table (JSON array, JSONL, or wrapped object)")
var flowsFile = flag.String("flows-file", "", "Path to the cash-flow table. Optional: no file means no cash movement.")
var baseCurrency = flag.String("currency", "USD", "Reporting currency of the account")
var rates = flag.String("rates", "", "Conversion rates into the reporting currency, e.g. 'EUR=1.08,GBP=1.27'")
var riskFreeRate = flag.Float64("risk-free-rate", twr.DefaultRiskFreeRate, "Annualized risk-free rate used by the Sharpe ratio")

// ComputeResult runs the whole pipeline over the configured input files.
func ComputeResult() (*twr.Result, error) {
	nav, err := os.Open(*navFile)
	if err != nil {
		return nil, fmt.Errorf("could not open nav table: %w", err)
	}
	defer nav.Close()

	var flows io.Reader
	if *flowsFile != "" {
		f, err := os.Open(*flowsFile)
		if err != nil {
			return nil, fmt.Errorf("could not open cash flow table: %w", err)
		}
		defer f.Close()
		flows = f
	}

	n := twr.Normalizer{BaseCurrency: *baseCurrency}
	if *rates != "" {
		table, err := parseRates(*baseCurrency, *rates)
		if err != nil {
			return nil, err
		}
		n.Rates = table
	}

	calc := twr.NewCalculator()
	calc.RiskFreeRate = *riskFreeRate
	return calc.FromTables(nav, flows, n)
}

// parseRates reads the -rates flag value into a rate table.
func parseRates(base, spec string) (twr.RateTable, error) {
	m := make(map[string]float64)
	for _, pair := range strings.Split(spec, ",") {
		code, value, found := strings.Cut(strings.TrimSpace(pair), "=")
		if !found {
			return twr.RateTable{}, fmt.Errorf("invalid rate %q, want CUR=rate", pair)
		}
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return twr.RateTable{}, fmt.Errorf("invalid rate %q: %w", pair, err)
		}
		m[strings.ToUpper(code)] = rate
	}
	return twr.NewRateTable(base, m), nil
}
