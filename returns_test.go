package twr

import (
	"math"
	"testing"
)

func TestMeasure(t *testing.T) {
	tests := []struct {
		name    string
		segment Segment
		want    float64
	}{
		{
			name: "no flow reduces to simple return",
			segment: Segment{
				Range:    NewRange(on("2023-01-01"), on("2023-01-05")),
				StartNAV: USD(100000), EndNAV: USD(101000), Points: 5,
			},
			want: 0.01,
		},
		{
			name: "deposit removed from the closing NAV",
			segment: Segment{
				Range:    NewRange(on("2023-01-01"), on("2023-01-03")),
				StartNAV: USD(100000), EndNAV: USD(151000), Points: 3,
				Flows: CashFlows{deposit("2023-01-03", 50000)},
			},
			want: 0.01,
		},
		{
			name: "withdrawal added back to the closing NAV",
			segment: Segment{
				Range:    NewRange(on("2023-01-01"), on("2023-01-03")),
				StartNAV: USD(100000), EndNAV: USD(71000), Points: 3,
				Flows: CashFlows{withdrawal("2023-01-03", 30000)},
			},
			want: 0.01,
		},
		{
			name: "zero starting NAV yields zero",
			segment: Segment{
				Range:    NewRange(on("2023-01-01"), on("2023-01-02")),
				StartNAV: USD(0), EndNAV: USD(1000), Points: 2,
			},
			want: 0,
		},
		{
			name: "fewer than two observations yields zero",
			segment: Segment{
				Range:    NewRange(on("2023-01-01"), on("2023-01-01")),
				StartNAV: USD(100), EndNAV: USD(100), Points: 1,
			},
			want: 0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := measure(tt.segment)
			if math.Abs(got.Return-tt.want) > 1e-12 {
				t.Errorf("measure() = %v, want %v", got.Return, tt.want)
			}
		})
	}
}

func TestMeasure_AuditFields(t *testing.T) {
	s := Segment{
		Range:    NewRange(on("2023-01-01"), on("2023-01-04")),
		StartNAV: USD(100), EndNAV: USD(160), Points: 4,
		Flows: CashFlows{deposit("2023-01-04", 50)},
	}
	pr := measure(s)
	if !pr.CashFlow.Equal(USD(50)) {
		t.Errorf("CashFlow = %v, want 50", pr.CashFlow)
	}
	if pr.Days != 3 {
		t.Errorf("Days = %d, want 3", pr.Days)
	}
	if !pr.Percent().Equal(Percent(10)) {
		t.Errorf("Percent() = %v, want 10%%", pr.Percent())
	}
}

func TestCompound(t *testing.T) {
	tests := []struct {
		name    string
		returns []float64
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []float64{0.1}, 0.1},
		{"two periods", []float64{0.1, 0.2}, 0.32},
		{"gain then loss", []float64{0.5, -0.5}, -0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prs := make([]PeriodReturn, 0, len(tt.returns))
			for _, r := range tt.returns {
				prs = append(prs, PeriodReturn{Return: r})
			}
			if got := Compound(prs); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Compound() = %v, want %v", got, tt.want)
			}
		})
	}
}
