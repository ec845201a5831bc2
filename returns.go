package twr

// PeriodReturn is the measured return of one segment, with the audit fields
// needed to re-derive it.
type PeriodReturn struct {
	Range    Range
	StartNAV Money
	EndNAV   Money
	// CashFlow is the signed sum of the external flows closing the segment.
	CashFlow Money
	// Return is a decimal fraction (0.015 means 1.5%).
	Return float64
	// Days is the calendar span of the segment.
	Days int
}

// Percent returns the segment return in percentage points.
func (p PeriodReturn) Percent() Percent { return Percent(100 * p.Return) }

// measure computes the return of one segment.
//
// All of a day's external flows are treated as landing exactly at the end of
// the period: the residual value of pre-existing capital at period end is
// end_nav − cf, and the return compares it to start_nav. A segment with no
// flow therefore reduces to the plain percentage change. A zero starting NAV
// or a segment with fewer than two observations yields 0: there is nothing
// to measure.
func measure(s Segment) PeriodReturn {
	pr := PeriodReturn{
		Range:    s.Range,
		StartNAV: s.StartNAV,
		EndNAV:   s.EndNAV,
		CashFlow: s.Flows.Sum(),
		Days:     s.Range.Days(),
	}
	if s.Points < 2 || s.StartNAV.IsZero() {
		return pr
	}
	residual := s.EndNAV.Sub(pr.CashFlow)
	pr.Return = residual.Sub(s.StartNAV).AsFloat() / s.StartNAV.AsFloat()
	return pr
}

// MeasureSegments computes the return of every segment, in order.
func MeasureSegments(segments []Segment) []PeriodReturn {
	returns := make([]PeriodReturn, 0, len(segments))
	for _, s := range segments {
		returns = append(returns, measure(s))
	}
	return returns
}

// Compound geometrically links period returns, in order, into a total
// return. Reordering the periods would violate causality; re-segmenting an
// equivalent partition of the same data reproduces the same total within
// floating-point tolerance.
func Compound(returns []PeriodReturn) float64 {
	compound := 1.0
	for _, r := range returns {
		compound *= 1 + r.Return
	}
	return compound - 1
}
