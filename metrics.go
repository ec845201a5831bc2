package twr

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Fixed conventions of the risk metrics. Volatility annualization assumes
// 252 trading days per year; the risk-free rate is annualized.
const (
	tradingDaysPerYear  = 252
	daysPerYear         = 365.25
	DefaultRiskFreeRate = 0.02
)

// DailyReturns computes the day-over-day percentage changes of the raw NAV
// series. Days following a zero NAV are skipped: the change is undefined and
// the metrics must stay numerically safe.
func DailyReturns(nav *NAVSeries) []float64 {
	var returns []float64
	prev := math.NaN()
	for p := range nav.Points() {
		v := p.Value.AsFloat()
		if !math.IsNaN(prev) && prev != 0 {
			returns = append(returns, v/prev-1)
		}
		prev = v
	}
	return returns
}

// AnnualizedReturn converts a total return over a span of calendar days into
// a yearly rate. A total loss beyond -100% is a degenerate input and yields
// NaN rather than a panic: the caller still has a result to render.
func AnnualizedReturn(total float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	if total <= -1 {
		return math.NaN()
	}
	return math.Pow(1+total, daysPerYear/float64(days)) - 1
}

// Volatility is the annualized standard deviation of daily returns.
func Volatility(dailyReturns []float64) float64 {
	if len(dailyReturns) < 2 {
		return 0
	}
	return stat.StdDev(dailyReturns, nil) * math.Sqrt(tradingDaysPerYear)
}

// SharpeRatio is the annualized excess return per unit of annualized
// volatility. A flat series has no volatility and yields 0, not infinity.
func SharpeRatio(dailyReturns []float64, riskFreeRate float64) float64 {
	if len(dailyReturns) == 0 {
		return 0
	}
	vol := Volatility(dailyReturns)
	if vol == 0 {
		return 0
	}
	excess := stat.Mean(dailyReturns, nil)*tradingDaysPerYear - riskFreeRate
	return excess / vol
}

// Drawdown is the largest peak-to-trough decline of the raw NAV series,
// reported as a positive magnitude with the dates identifying the window.
type Drawdown struct {
	Magnitude float64 // positive fraction, 0.25 means a 25% decline
	Peak      Date
	Trough    Date
}

// MaxDrawdown scans the raw NAV series (not the TWR-adjusted curve) for the
// minimum of (value − running_max)/running_max. The peak is the last date at
// or before the trough where the NAV achieved its running maximum.
func MaxDrawdown(nav *NAVSeries) Drawdown {
	var dd Drawdown
	runningMax := math.Inf(-1)
	var peak Date
	for p := range nav.Points() {
		v := p.Value.AsFloat()
		if v >= runningMax {
			runningMax = v
			peak = p.Date
		}
		if runningMax <= 0 {
			continue
		}
		decline := (runningMax - v) / runningMax
		if decline > dd.Magnitude {
			dd.Magnitude = decline
			dd.Peak = peak
			dd.Trough = p.Date
		}
	}
	return dd
}
