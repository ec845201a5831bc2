// Package twr computes the time-weighted return (TWR) and related performance
// metrics of an investment account from two raw time series: periodic net
// asset value (NAV) snapshots and discrete external cash-flow events.
//
// TWR isolates the performance of the underlying strategy from the effect of
// the investor's own capital-timing decisions: the NAV timeline is split into
// sub-periods at every external cash flow (deposit or withdrawal), a simple
// return is computed per sub-period net of the flow, and the sub-period
// returns are chain-linked geometrically.
//
// The core functionalities include:
//   - Series Normalization: cleaning raw NAV and cash-flow tables into
//     canonical, sorted, deduplicated sequences, with forward-filling of
//     missing NAV values and classification of cash flows as external
//     (capital in/out) or internal (dividends, interest, fees).
//   - Segmentation and Compounding: splitting the timeline at external
//     flows, computing per-period returns, and linking them into a total
//     TWR with annualized return, volatility, Sharpe ratio and maximum
//     drawdown.
//   - Periodic Aggregation: re-bucketing the same series into calendar
//     periods (week, month, quarter, year), one return per bucket.
//   - Daily Curve Reconstruction: a day-by-day cumulative TWR curve whose
//     final point always agrees with the compounded total.
//
// The engine is a pure, stateless computation: it performs no I/O, retains
// no state between calls, and always returns a renderable Result, absorbing
// degenerate inputs (empty series, zero NAV) into numerically safe defaults.
// This package serves as the foundational logic for the `ptw` command-line
// tool.
package twr
