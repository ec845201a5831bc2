package twr

import (
	"math"
	"strings"
	"testing"
)

// sampleNAV is the five-day series with a mid-span deposit used across the
// calculator tests.
func sampleNAV() *NAVSeries {
	return navOf(
		NAVPoint{on("2023-01-01"), USD(100000)},
		NAVPoint{on("2023-01-02"), USD(100500)},
		NAVPoint{on("2023-01-03"), USD(151000)},
		NAVPoint{on("2023-01-04"), USD(152000)},
		NAVPoint{on("2023-01-05"), USD(153000)},
	)
}

func TestCalculate(t *testing.T) {
	result := NewCalculator().Calculate(sampleNAV(), CashFlows{deposit("2023-01-03", 50000)})

	// two segments: 1% up to the deposit, then (153000-151000)/151000
	if result.PeriodCount() != 2 {
		t.Fatalf("got %d periods, want 2", result.PeriodCount())
	}
	want := 1.01*(153000.0/151000.0) - 1
	if relDiff(result.TotalTWR, want) > 1e-9 {
		t.Errorf("total = %v, want %v", result.TotalTWR, want)
	}
	if result.Days != 4 {
		t.Errorf("days = %d, want 4", result.Days)
	}
	if result.Span.From != on("2023-01-01") || result.Span.To != on("2023-01-05") {
		t.Errorf("span = %v", result.Span)
	}
}

func TestCalculate_NoFlowsReducesToEndOverStart(t *testing.T) {
	nav := navOf(
		NAVPoint{on("2023-01-01"), USD(100000)},
		NAVPoint{on("2023-03-15"), USD(104000)},
		NAVPoint{on("2023-06-30"), USD(112000)},
	)
	result := NewCalculator().Calculate(nav, nil)
	if result.PeriodCount() != 1 {
		t.Fatalf("got %d periods, want 1", result.PeriodCount())
	}
	if relDiff(result.TotalTWR, 0.12) > 1e-9 {
		t.Errorf("total = %v, want 0.12", result.TotalTWR)
	}
}

func TestCalculate_ZeroAmountFlowIsNeutral(t *testing.T) {
	base := NewCalculator().Calculate(sampleNAV(), nil)
	zero := NewCalculator().Calculate(sampleNAV(), CashFlows{deposit("2023-01-02", 0)})

	// the zero flow still introduces a boundary, but not a different total
	if relDiff(zero.TotalTWR, base.TotalTWR) > 1e-9 {
		t.Errorf("zero-amount flow changed the total: %v vs %v", zero.TotalTWR, base.TotalTWR)
	}
}

func TestCalculate_SplitDepositEqualsSingle(t *testing.T) {
	single := NewCalculator().Calculate(sampleNAV(), CashFlows{deposit("2023-01-03", 50000)})
	split := NewCalculator().Calculate(sampleNAV(), CashFlows{
		deposit("2023-01-03", 20000),
		{Date: on("2023-01-03"), Amount: USD(30000), Category: CashIn},
	})
	if relDiff(single.TotalTWR, split.TotalTWR) > 1e-9 {
		t.Errorf("split deposit: %v, single deposit: %v", split.TotalTWR, single.TotalTWR)
	}
}

func TestCalculate_InternalFlowsDoNotSegment(t *testing.T) {
	base := NewCalculator().Calculate(sampleNAV(), CashFlows{deposit("2023-01-03", 50000)})
	withDividend := NewCalculator().Calculate(sampleNAV(), CashFlows{
		deposit("2023-01-03", 50000),
		dividend("2023-01-04", 250),
	})
	if withDividend.PeriodCount() != base.PeriodCount() {
		t.Errorf("dividend added a segment: %d vs %d", withDividend.PeriodCount(), base.PeriodCount())
	}
	if relDiff(withDividend.TotalTWR, base.TotalTWR) > 1e-9 {
		t.Errorf("dividend changed the total: %v vs %v", withDividend.TotalTWR, base.TotalTWR)
	}
}

func TestCalculate_Idempotent(t *testing.T) {
	flows := CashFlows{deposit("2023-01-03", 50000)}
	a := NewCalculator().Calculate(sampleNAV(), flows)
	b := NewCalculator().Calculate(sampleNAV(), flows)
	if a.TotalTWR != b.TotalTWR || a.Volatility != b.Volatility || a.SharpeRatio != b.SharpeRatio {
		t.Errorf("two runs differ: %+v vs %+v", a, b)
	}
}

func TestCalculate_Empty(t *testing.T) {
	result := NewCalculator().Calculate(&NAVSeries{}, nil)
	if result.TotalTWR != 0 || result.PeriodCount() != 0 || result.Curve != nil {
		t.Errorf("empty input: got %+v, want zeroed result", result)
	}
}

func TestCalculate_SinglePoint(t *testing.T) {
	nav := navOf(NAVPoint{on("2023-01-01"), USD(100000)})
	result := NewCalculator().Calculate(nav, nil)
	if result.TotalTWR != 0 || result.PeriodCount() != 0 {
		t.Errorf("single point: got total %v with %d periods", result.TotalTWR, result.PeriodCount())
	}
}

func TestCalculate_CurveEndsOnTotal(t *testing.T) {
	result := NewCalculator().Calculate(sampleNAV(), CashFlows{deposit("2023-01-03", 50000)})
	final := float64(result.Curve[len(result.Curve)-1].Value)
	if relDiff(final, 100*result.TotalTWR) > 1e-6 {
		t.Errorf("curve ends at %v, total is %v%%", final, 100*result.TotalTWR)
	}
}

func TestCalculate_FlatYearAnnualizes(t *testing.T) {
	nav := navOf(
		NAVPoint{on("2023-01-01"), USD(100000)},
		NAVPoint{on("2024-01-01"), USD(100000)},
	)
	result := NewCalculator().Calculate(nav, nil)
	if result.TotalTWR != 0 {
		t.Errorf("flat year total = %v, want 0", result.TotalTWR)
	}
	if result.AnnualizedReturn != 0 {
		t.Errorf("flat year annualized = %v, want 0", result.AnnualizedReturn)
	}
	if result.SharpeRatio != 0 {
		t.Errorf("flat year sharpe = %v, want 0", result.SharpeRatio)
	}
}

func TestCalculate_TotalLoss(t *testing.T) {
	nav := navOf(
		NAVPoint{on("2023-01-01"), USD(100000)},
		NAVPoint{on("2023-06-30"), USD(0)},
	)
	result := NewCalculator().Calculate(nav, nil)
	if result.TotalTWR != -1 {
		t.Errorf("total = %v, want -1", result.TotalTWR)
	}
	if !math.IsNaN(result.AnnualizedReturn) {
		t.Errorf("annualized = %v, want NaN", result.AnnualizedReturn)
	}
	if result.AnnualizedPercent().String() != "n/a" {
		t.Errorf("annualized renders as %q, want n/a", result.AnnualizedPercent().String())
	}
	// a loss that never recovers is chained into the curve
	final := float64(result.Curve[len(result.Curve)-1].Value)
	if final != -100 {
		t.Errorf("curve ends at %v, want -100", final)
	}
}

func TestSimple(t *testing.T) {
	// unsorted, with a duplicate date: the series cleans them on the way in
	result := Simple([]NAVPoint{
		{on("2023-01-05"), USD(153000)},
		{on("2023-01-01"), USD(99000)},
		{on("2023-01-01"), USD(100000)},
		{on("2023-01-03"), USD(151000)},
	}, []CashFlow{deposit("2023-01-03", 50000)})

	want := 1.01*(153000.0/151000.0) - 1
	if relDiff(result.TotalTWR, want) > 1e-9 {
		t.Errorf("total = %v, want %v", result.TotalTWR, want)
	}
}

func TestFromTables(t *testing.T) {
	navTable := strings.NewReader(`[
		{"reportDate": "2023-01-01", "total": 100000},
		{"reportDate": "2023-01-03", "total": 151000},
		{"reportDate": "2023-01-05", "total": 153000}
	]`)
	flowTable := strings.NewReader(`[
		{"reportDate": "2023-01-03", "amount": 50000, "activityDescription": "Wire In"}
	]`)

	result, err := NewCalculator().FromTables(navTable, flowTable, Normalizer{BaseCurrency: "USD"})
	if err != nil {
		t.Fatal(err)
	}
	want := 1.01*(153000.0/151000.0) - 1
	if relDiff(result.TotalTWR, want) > 1e-9 {
		t.Errorf("total = %v, want %v", result.TotalTWR, want)
	}
	if len(result.ExternalFlows) != 1 || result.ExternalFlows[0].Category != Deposit {
		t.Errorf("flows = %+v, want one inferred deposit", result.ExternalFlows)
	}
}

func TestFromTables_UnknownCurrencyFlow(t *testing.T) {
	// A flow in a currency the rate table does not know keeps its numeric
	// value, produces a warning, and still flows through the whole
	// computation without blowing up on the base-currency NAV.
	navTable := strings.NewReader(`[
		{"reportDate": "2023-01-01", "total": 100000},
		{"reportDate": "2023-01-03", "total": 151000},
		{"reportDate": "2023-01-05", "total": 153000}
	]`)
	flowTable := strings.NewReader(`[
		{"reportDate": "2023-01-03", "amount": 50000, "type": "DEPOSIT", "currency": "CHF"}
	]`)

	n := Normalizer{BaseCurrency: "USD", Rates: NewRateTable("USD", map[string]float64{"EUR": 1.1})}
	result, err := NewCalculator().FromTables(navTable, flowTable, n)
	if err != nil {
		t.Fatal(err)
	}
	want := 1.01*(153000.0/151000.0) - 1
	if relDiff(result.TotalTWR, want) > 1e-9 {
		t.Errorf("total = %v, want %v", result.TotalTWR, want)
	}
	found := false
	for _, warning := range result.Warnings {
		if warning.Kind == WarnUnknownCurrency {
			found = true
		}
	}
	if !found {
		t.Errorf("warnings = %v, want an unknown-currency warning", result.Warnings)
	}
	if got := result.ExternalFlows[0].Amount; !got.Equal(USD(50000)) {
		t.Errorf("flow amount = %v, want 50000 carried in the reporting currency", got)
	}
}

func TestFromTables_NilFlowTable(t *testing.T) {
	navTable := strings.NewReader(`[
		{"date": "2023-01-01", "nav": 100000},
		{"date": "2023-12-31", "nav": 110000}
	]`)
	result, err := NewCalculator().FromTables(navTable, nil, Normalizer{BaseCurrency: "USD"})
	if err != nil {
		t.Fatal(err)
	}
	if relDiff(result.TotalTWR, 0.10) > 1e-9 {
		t.Errorf("total = %v, want 0.10", result.TotalTWR)
	}
}
