package twr

import (
	"iter"
	"slices"
)

// NAVPoint is the account's net asset value observed on a given day.
type NAVPoint struct {
	Date  Date
	Value Money
}

// NAVSeries stores a chronological series of NAV observations.
// It ensures that dates are unique and the series is always sorted.
type NAVSeries struct {
	days   []Date
	values []Money
}

// Len returns the number of observations in the series.
func (s *NAVSeries) Len() int { return len(s.days) }

// Append adds an observation to the series.
//
// An existing value at that date is overwritten: when a source reports the
// same day twice, the latest observation wins.
func (s *NAVSeries) Append(on Date, v Money) *NAVSeries {
	i, found := s.search(on)
	if found {
		s.values[i] = v
		return s
	}
	s.days = slices.Insert(s.days, i, on)
	s.values = slices.Insert(s.values, i, v)
	return s
}

// search returns the insertion index for 'on' and whether it is present.
func (s *NAVSeries) search(on Date) (int, bool) {
	return slices.BinarySearchFunc(s.days, on, func(d, t Date) int {
		if d.After(t) {
			return 1
		}
		if d.Before(t) {
			return -1
		}
		return 0
	})
}

// First returns the earliest observation, or false when the series is empty.
func (s *NAVSeries) First() (NAVPoint, bool) {
	if len(s.days) == 0 {
		return NAVPoint{}, false
	}
	return NAVPoint{s.days[0], s.values[0]}, true
}

// Last returns the latest observation, or false when the series is empty.
func (s *NAVSeries) Last() (NAVPoint, bool) {
	last := len(s.days) - 1
	if last < 0 {
		return NAVPoint{}, false
	}
	return NAVPoint{s.days[last], s.values[last]}, true
}

// Get returns the value observed exactly at 'on'.
func (s *NAVSeries) Get(on Date) (Money, bool) {
	if i, found := s.search(on); found {
		return s.values[i], true
	}
	return Money{}, false
}

// ValueAsOf returns the value on a given day, or the most recent value
// before it. It returns false when no observation exists on or before.
func (s *NAVSeries) ValueAsOf(on Date) (Money, bool) {
	i, found := s.search(on)
	if found {
		return s.values[i], true
	}
	if i == 0 {
		return Money{}, false // No observation on or before the given day.
	}
	return s.values[i-1], true
}

// Range returns the date range covered by the series.
func (s *NAVSeries) Range() Range {
	if len(s.days) == 0 {
		return Range{}
	}
	return Range{From: s.days[0], To: s.days[len(s.days)-1]}
}

// Dates returns the sorted observation dates.
func (s *NAVSeries) Dates() []Date { return slices.Clone(s.days) }

// Points returns an iterator over all observations in chronological order.
func (s *NAVSeries) Points() iter.Seq[NAVPoint] {
	return func(yield func(NAVPoint) bool) {
		for i, on := range s.days {
			if !yield(NAVPoint{on, s.values[i]}) {
				return
			}
		}
	}
}

// Slice returns the observations as a flat slice, mostly for the Result echo.
func (s *NAVSeries) Slice() []NAVPoint {
	out := make([]NAVPoint, 0, len(s.days))
	for p := range s.Points() {
		out = append(out, p)
	}
	return out
}

// FillDays returns a new series with one observation per business day in the
// given range, forward-filling each missing day from the most recent prior
// observation. Days before the first observation are left out.
func (s *NAVSeries) FillDays(r Range) *NAVSeries {
	filled := &NAVSeries{}
	for on := range r.Dates() {
		if !on.IsBusinessDay() {
			continue
		}
		if v, ok := s.ValueAsOf(on); ok {
			filled.Append(on, v)
		}
	}
	return filled
}
