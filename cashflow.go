package twr

import (
	"fmt"
	"strings"
)

// Category classifies a cash-flow event.
type Category string

const (
	Deposit    Category = "DEPOSIT"
	Withdrawal Category = "WITHDRAWAL"
	Dividend   Category = "DIVIDEND"
	Interest   Category = "INTEREST"
	Fee        Category = "FEE"
	// CashIn and CashOut are fallback labels used when neither a category
	// nor a recognizable description is available, based on the sign.
	CashIn  Category = "CASH_IN"
	CashOut Category = "CASH_OUT"
)

// External reports whether the category is an external capital movement.
//
// External flows (capital the investor adds or removes) split the TWR
// timeline; internal flows (dividends, interest, fees) are already reflected
// in the NAV appreciation and must not trigger a split.
func (c Category) External() bool {
	switch c {
	case Deposit, Withdrawal, CashIn, CashOut:
		return true
	}
	return false
}

// ParseCategory normalizes a free-form category label to the canonical set.
// It returns false when the label is not recognized.
func ParseCategory(s string) (Category, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEPOSIT", "DEPOSITS":
		return Deposit, true
	case "WITHDRAWAL", "WITHDRAWALS", "WITHDRAW":
		return Withdrawal, true
	case "DIVIDEND", "DIVIDENDS":
		return Dividend, true
	case "INTEREST":
		return Interest, true
	case "FEE", "FEES", "COMMISSION":
		return Fee, true
	case "CASH_IN", "CASHIN":
		return CashIn, true
	case "CASH_OUT", "CASHOUT":
		return CashOut, true
	}
	return "", false
}

// InferCategory determines the category of a flow from its free-text
// description, falling back on the sign of the amount.
func InferCategory(description string, amount Money) Category {
	desc := strings.ToLower(description)
	switch {
	case strings.Contains(desc, "deposit"), strings.Contains(desc, "wire in"):
		return Deposit
	case strings.Contains(desc, "withdrawal"), strings.Contains(desc, "wire out"):
		return Withdrawal
	case strings.Contains(desc, "dividend"):
		return Dividend
	case strings.Contains(desc, "interest"):
		return Interest
	case strings.Contains(desc, "fee"), strings.Contains(desc, "commission"):
		return Fee
	case amount.IsPositive():
		return CashIn
	default:
		return CashOut
	}
}

// CashFlow is a single dated cash movement. Amounts are signed: positive is
// an inflow to the account, negative an outflow.
type CashFlow struct {
	Date        Date
	Amount      Money
	Category    Category
	Description string
}

// External reports whether the flow is an external capital movement.
func (f CashFlow) External() bool { return f.Category.External() }

// key identifies a flow for deduplication. Re-ingesting the same source
// record from overlapping fetch windows must not double-count it.
func (f CashFlow) key() string {
	return fmt.Sprintf("%s|%s|%s", f.Date, f.Amount.value, f.Category)
}

func (f CashFlow) String() string {
	return fmt.Sprintf("%s %s %s", f.Date, f.Category, f.Amount.SignedString())
}

// CashFlows is a date-ascending list of cash flows. Several flows may share
// a date.
type CashFlows []CashFlow

// External returns the subset of external flows, preserving order.
func (fs CashFlows) External() CashFlows {
	var out CashFlows
	for _, f := range fs {
		if f.External() {
			out = append(out, f)
		}
	}
	return out
}

// On returns the flows dated exactly on the given day.
func (fs CashFlows) On(on Date) CashFlows {
	var out CashFlows
	for _, f := range fs {
		if f.Date == on {
			out = append(out, f)
		}
	}
	return out
}

// Between returns the flows dated within the range, boundaries included.
func (fs CashFlows) Between(r Range) CashFlows {
	var out CashFlows
	for _, f := range fs {
		if r.Contains(f.Date) {
			out = append(out, f)
		}
	}
	return out
}

// Sum returns the signed total of the flows. The zero Money is returned for
// an empty list.
func (fs CashFlows) Sum() Money {
	var total Money
	for _, f := range fs {
		total = total.Add(f.Amount)
	}
	return total
}

// Dates returns the set of distinct dates bearing at least one flow.
func (fs CashFlows) Dates() map[Date]bool {
	set := make(map[Date]bool, len(fs))
	for _, f := range fs {
		set[f.Date] = true
	}
	return set
}
