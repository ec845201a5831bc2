package twr

import (
	"reflect"
	"slices"
	"testing"
)

func TestRange_Periods(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		p        Period
		expected []Range
	}{
		{
			name: "Weekly periods over two weeks",
			r:    NewRange(NewDate(2024, 1, 10), NewDate(2024, 1, 17)), // Wednesday to Wednesday
			p:    Weekly,
			expected: []Range{
				NewRange(NewDate(2024, 1, 8), NewDate(2024, 1, 14)),
				NewRange(NewDate(2024, 1, 15), NewDate(2024, 1, 21)),
			},
		},
		{
			name: "Monthly periods over parts of three months",
			r:    NewRange(NewDate(2024, 2, 15), NewDate(2024, 4, 10)),
			p:    Monthly,
			expected: []Range{
				NewRange(NewDate(2024, 2, 1), NewDate(2024, 2, 29)),
				NewRange(NewDate(2024, 3, 1), NewDate(2024, 3, 31)),
				NewRange(NewDate(2024, 4, 1), NewDate(2024, 4, 30)),
			},
		},
		{
			name: "Quarterly periods within one year",
			r:    NewRange(NewDate(2023, 2, 1), NewDate(2023, 8, 15)),
			p:    Quarterly,
			expected: []Range{
				NewRange(NewDate(2023, 1, 1), NewDate(2023, 3, 31)),
				NewRange(NewDate(2023, 4, 1), NewDate(2023, 6, 30)),
				NewRange(NewDate(2023, 7, 1), NewDate(2023, 9, 30)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(tt.r.Periods(tt.p))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Periods() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRange_Identifier(t *testing.T) {
	tests := []struct {
		r    Range
		want string
	}{
		{NewRange(NewDate(2023, 1, 2), NewDate(2023, 1, 8)), "2023-W01"},
		{NewRange(NewDate(2023, 3, 1), NewDate(2023, 3, 31)), "2023-03"},
		{NewRange(NewDate(2023, 4, 1), NewDate(2023, 6, 30)), "2023-Q2"},
		{NewRange(NewDate(2023, 1, 1), NewDate(2023, 12, 31)), "2023"},
		{NewRange(NewDate(2023, 5, 5), NewDate(2023, 5, 5)), "2023-05-05"},
		{NewRange(NewDate(2023, 5, 5), NewDate(2023, 5, 9)), "2023-05-05_2023-05-09"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.r.Identifier(); got != tt.want {
				t.Errorf("Identifier() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRange_Days(t *testing.T) {
	r := NewRange(on("2023-01-01"), on("2023-01-05"))
	if got := r.Days(); got != 4 {
		t.Errorf("Days() = %d, want 4", got)
	}
}
