package twr

import "io"

// Calculator computes a full performance Result from normalized inputs.
// It is stateless: concurrent calls on different inputs need no locking, and
// calling it twice on the same inputs yields identical results.
type Calculator struct {
	// RiskFreeRate is the annualized rate used by the Sharpe ratio.
	RiskFreeRate float64
}

// NewCalculator returns a calculator with the default risk-free rate.
func NewCalculator() Calculator {
	return Calculator{RiskFreeRate: DefaultRiskFreeRate}
}

// Result is the immutable outcome of one Calculate invocation.
//
// Degenerate inputs (empty or single-point series) produce the documented
// empty result rather than an error: the consumer always has something to
// render.
type Result struct {
	TotalTWR         float64 // decimal fraction
	AnnualizedReturn float64 // NaN when the total is a loss beyond -100%
	Volatility       float64 // annualized
	SharpeRatio      float64
	MaxDrawdown      Drawdown

	Span    Range // first to last NAV date
	Days    int   // calendar days spanned
	Periods []PeriodReturn
	Curve   []CurvePoint

	// Echoes of the cleaned inputs, for rendering and follow-up queries.
	NAV           *NAVSeries
	Flows         CashFlows
	ExternalFlows CashFlows
	Warnings      []Warning
}

// TotalPercent returns the total TWR in percentage points.
func (r *Result) TotalPercent() Percent { return Percent(100 * r.TotalTWR) }

// AnnualizedPercent returns the annualized return in percentage points.
func (r *Result) AnnualizedPercent() Percent { return Percent(100 * r.AnnualizedReturn) }

// PeriodCount returns the number of measured sub-periods.
func (r *Result) PeriodCount() int { return len(r.Periods) }

// Periodic re-buckets the result's normalized series into calendar periods.
// It only reads the echoed inputs; calling it repeatedly, with different
// periods, recomputes nothing else.
func (r *Result) Periodic(p Period) []PeriodicReturn {
	return PeriodicReturns(r.NAV, r.ExternalFlows, p)
}

// Calculate runs the full pipeline over normalized inputs: segmentation at
// external flows, per-period returns, geometric linking, risk metrics, and
// the daily cumulative curve.
func (c Calculator) Calculate(nav *NAVSeries, flows CashFlows) *Result {
	result := &Result{NAV: nav, Flows: flows, ExternalFlows: flows.External()}
	if nav.Len() == 0 {
		return result
	}

	result.Span = nav.Range()
	result.Days = result.Span.Days()

	segments := SplitSegments(nav, result.ExternalFlows)
	result.Periods = MeasureSegments(segments)
	result.TotalTWR = Compound(result.Periods)
	result.AnnualizedReturn = AnnualizedReturn(result.TotalTWR, result.Days)

	daily := DailyReturns(nav)
	result.Volatility = Volatility(daily)
	result.SharpeRatio = SharpeRatio(daily, c.RiskFreeRate)
	result.MaxDrawdown = MaxDrawdown(nav)
	result.Curve = ReconstructCurve(nav, result.ExternalFlows)
	return result
}

// FromTables runs the whole pipeline from raw tables: input adaptation,
// normalization, then Calculate. A nil flow table is a valid input: the
// account simply had no cash movement. Schema failures abort the whole
// computation; data-quality anomalies end up in Result.Warnings.
func (c Calculator) FromTables(navTable, flowTable io.Reader, n Normalizer) (*Result, error) {
	navRecords, err := DecodeNAVTable(navTable)
	if err != nil {
		return nil, err
	}
	var flowRecords []FlowRecord
	if flowTable != nil {
		if flowRecords, err = DecodeCashFlowTable(flowTable); err != nil {
			return nil, err
		}
	}

	nav, navWarnings := n.NormalizeNAV(navRecords)
	flows, flowWarnings := n.NormalizeFlows(flowRecords)

	result := c.Calculate(nav, flows)
	result.Warnings = append(navWarnings, flowWarnings...)
	return result, nil
}

// Simple is a convenience entry point over plain slices. Points are
// deduplicated and sorted on the way in; flows are used as given.
func Simple(points []NAVPoint, flows []CashFlow) *Result {
	nav := &NAVSeries{}
	for _, p := range points {
		nav.Append(p.Date, p.Value)
	}
	return NewCalculator().Calculate(nav, stableByDate(flows))
}
