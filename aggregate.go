package twr

// PeriodicReturn is the return of one calendar bucket. It answers "what was
// the return in March", which is deliberately not the same question as the
// cumulative TWR: bucket boundaries follow the calendar, not the cash flows.
type PeriodicReturn struct {
	Range    Range
	StartNAV Money
	EndNAV   Money
	CashFlow Money
	// Return is a decimal fraction, net of the bucket's external flows.
	Return float64
}

// Percent returns the bucket return in percentage points.
func (p PeriodicReturn) Percent() Percent { return Percent(100 * p.Return) }

// PeriodicReturns re-buckets the normalized series into calendar periods
// (week, month, quarter, year) and computes one return per bucket, applying
// the same end-of-bucket flow-removal rule as the segment engine. The flows
// argument must be the external-only subset.
//
// A bucket with no observation or a zero starting NAV is omitted: there is
// no base to compute a return from. It is safe to call repeatedly, with
// different periods, against the same normalized inputs.
func PeriodicReturns(nav *NAVSeries, flows CashFlows, period Period) []PeriodicReturn {
	if nav.Len() == 0 {
		return nil
	}

	var out []PeriodicReturn
	for bucket := range nav.Range().Periods(period) {
		first, last, n := observed(nav, bucket)
		if n == 0 || first.Value.IsZero() {
			continue
		}
		// Flows dated on the bucket's first observation belong to the prior
		// bucket, exactly as a segment-opening flow belongs to the segment
		// it closed.
		cf := flows.Between(Range{From: first.Date.Add(1), To: last.Date}).Sum()
		residual := last.Value.Sub(cf)
		out = append(out, PeriodicReturn{
			Range:    bucket,
			StartNAV: first.Value,
			EndNAV:   last.Value,
			CashFlow: cf,
			Return:   residual.Sub(first.Value).AsFloat() / first.Value.AsFloat(),
		})
	}
	return out
}

// observed returns the first and last NAV observations inside the range and
// how many there are.
func observed(nav *NAVSeries, r Range) (first, last NAVPoint, n int) {
	for p := range nav.Points() {
		if !r.Contains(p.Date) {
			continue
		}
		if n == 0 {
			first = p
		}
		last = p
		n++
	}
	return first, last, n
}
