package twr

// Segment is a contiguous span of the NAV timeline, closed either by an
// external cash flow or by the end of the series. Segments fully partition
// the NAV date range: no gaps, no overlaps.
type Segment struct {
	Range    Range
	StartNAV Money
	EndNAV   Money
	// Flows holds the external flows dated exactly at Range.To. By
	// construction an external flow always closes a segment.
	Flows CashFlows
	// Points is the number of NAV observations inside the segment.
	Points int
}

// HasFlow reports whether the segment is closed by at least one cash flow.
func (s Segment) HasFlow() bool { return len(s.Flows) > 0 }

// SplitSegments partitions the NAV series at every date bearing an external
// cash flow. The flows argument must already be filtered to external flows;
// internal flows passed here would wrongly split the timeline.
//
// A series with fewer than two observations yields no segments: there is no
// change to measure.
func SplitSegments(nav *NAVSeries, flows CashFlows) []Segment {
	if nav.Len() < 2 {
		return nil
	}

	flowDates := flows.Dates()
	dates := nav.Dates()

	var segments []Segment
	startIdx := 0
	for i, on := range dates {
		last := i == len(dates)-1
		if !flowDates[on] && !last {
			continue
		}
		start, end := dates[startIdx], on
		startNAV, _ := nav.Get(start)
		endNAV, _ := nav.Get(end)
		segments = append(segments, Segment{
			Range:    Range{From: start, To: end},
			StartNAV: startNAV,
			EndNAV:   endNAV,
			Flows:    flows.On(end),
			Points:   i - startIdx + 1,
		})
		// The closing date of one segment is the opening date of the next:
		// the post-flow NAV on that day is the new measurement baseline.
		startIdx = i
	}
	return segments
}
