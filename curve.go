package twr

// CurvePoint is one day of the cumulative TWR curve, in percentage points,
// ready to chart against trade markers or a benchmark.
type CurvePoint struct {
	Date  Date
	Value Percent
}

// ReconstructCurve produces the day-by-day cumulative TWR curve over every
// NAV date. The flows argument must be the external-only subset, the same
// one the segmenter consumes.
//
// The curve applies the same end-of-day flow-removal rule as the per-period
// engine: a day's external flows are subtracted from that day's NAV before
// comparing it to the prior day. Chaining the resulting daily returns makes
// the curve's final point land exactly on the compounded total of the
// segmented computation.
func ReconstructCurve(nav *NAVSeries, flows CashFlows) []CurvePoint {
	points := nav.Slice()
	if len(points) == 0 {
		return nil
	}

	curve := make([]CurvePoint, 0, len(points))
	// day one: the baseline, return defined as 0.
	curve = append(curve, CurvePoint{Date: points[0].Date, Value: 0})
	multiplier := 1.0
	prev := points[0].Value.AsFloat()
	for i, p := range points[1:] {
		adjusted := p.Value.Sub(flows.On(p.Date).Sum()).AsFloat()
		v := p.Value.AsFloat()
		// A zero close that later recovers is a broken observation, not a
		// total loss: the segment engine never measures it, so the chain
		// skips it and resumes from the last non-zero close. A zero close
		// that never recovers is the real thing and is chained.
		if prev != 0 && (v != 0 || !recovers(points[i+2:])) {
			multiplier *= adjusted / prev
		}
		curve = append(curve, CurvePoint{Date: p.Date, Value: Percent(100 * (multiplier - 1))})
		// The unadjusted close is the next day's baseline: the flow is part
		// of the capital at work from the next day on.
		if v != 0 {
			prev = v
		}
	}
	return curve
}

// recovers reports whether any of the remaining observations is non-zero.
func recovers(points []NAVPoint) bool {
	for _, p := range points {
		if !p.Value.IsZero() {
			return true
		}
	}
	return false
}
