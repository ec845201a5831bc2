package twr

import "github.com/shopspring/decimal"

// dec is a helper for test to create a decimal from const
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// EUR is a helper for test to create euro money from const
func EUR(v float64) Money { return M(v, "EUR") }

// on is a helper for test to create a date from const
func on(s string) Date { return MustParse(s) }

// navOf is a helper for test to build a series from date/value pairs.
func navOf(points ...NAVPoint) *NAVSeries {
	s := &NAVSeries{}
	for _, p := range points {
		s.Append(p.Date, p.Value)
	}
	return s
}

// deposit is a helper for test to create an external inflow.
func deposit(date string, amount float64) CashFlow {
	return CashFlow{Date: on(date), Amount: USD(amount), Category: Deposit}
}

// withdrawal is a helper for test to create an external outflow.
func withdrawal(date string, amount float64) CashFlow {
	return CashFlow{Date: on(date), Amount: USD(-amount), Category: Withdrawal}
}

// dividend is a helper for test to create an internal flow.
func dividend(date string, amount float64) CashFlow {
	return CashFlow{Date: on(date), Amount: USD(amount), Category: Dividend}
}
