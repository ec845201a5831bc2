package twr

import (
	"sort"

	"github.com/shopspring/decimal"
)

// NAVRecord is one raw row of the NAV table, as produced by the input
// adapter. A missing value is a row whose value field could not be read as a
// number.
type NAVRecord struct {
	Date    Date
	Value   decimal.Decimal
	Missing bool
}

// FlowRecord is one raw row of the cash-flow table. Category, currency and
// description are optional; a missing amount carries no information and the
// row is dropped during normalization.
type FlowRecord struct {
	Date        Date
	Amount      decimal.Decimal
	Missing     bool
	Category    string
	Currency    string
	Description string
}

// Normalizer turns raw table records into the canonical series the engine
// consumes. It is stateless: each call returns fresh sequences and the
// warnings it absorbed along the way.
type Normalizer struct {
	// BaseCurrency is the account's reporting currency. Amounts in another
	// currency are converted through Rates.
	BaseCurrency string
	// Rates converts foreign amounts into BaseCurrency. When nil, amounts
	// pass through unchanged.
	Rates Converter
}

// NormalizeNAV cleans the raw NAV rows into a sorted, deduplicated series.
//
// Rows sharing a date keep the latest observation. Missing values are
// forward-filled from the most recent valid prior value; rows missing before
// any valid observation are dropped.
func (n Normalizer) NormalizeNAV(records []NAVRecord) (*NAVSeries, []Warning) {
	var w warnings
	series := &NAVSeries{}

	// Forward-fill follows the calendar, not the file: records may arrive in
	// any order. The sort is stable so that same-day rows keep their source
	// order and the latest one wins.
	recs := make([]NAVRecord, len(records))
	copy(recs, records)
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Date.Before(recs[j].Date) })

	var last decimal.Decimal
	var seen bool
	for _, rec := range recs {
		v := rec.Value
		if rec.Missing {
			if !seen {
				w.addf(WarnCoercedValue, "nav on %s has no usable value and no prior value, dropped", rec.Date)
				continue
			}
			w.addf(WarnCoercedValue, "nav on %s forward-filled from prior value", rec.Date)
			v = last
		}
		last, seen = v, true
		if _, dup := series.Get(rec.Date); dup {
			w.addf(WarnDuplicate, "nav on %s observed twice, keeping the latest", rec.Date)
		}
		series.Append(rec.Date, M(v, n.BaseCurrency))
	}
	return series, w.list
}

// NormalizeFlows cleans the raw cash-flow rows into a sorted, classified,
// deduplicated list in the base currency.
func (n Normalizer) NormalizeFlows(records []FlowRecord) (CashFlows, []Warning) {
	var w warnings
	var flows CashFlows

	seen := make(map[string]bool)
	for _, rec := range records {
		if rec.Missing {
			// A cash flow with no amount carries no information.
			w.addf(WarnCoercedValue, "cash flow on %s has no usable amount, dropped", rec.Date)
			continue
		}

		amount := M(rec.Amount, rec.Currency)
		if n.Rates != nil {
			if converted, ok := n.Rates.Convert(amount); ok {
				amount = converted
			}
		}
		if amount.Currency() != "" && amount.Currency() != n.BaseCurrency {
			w.addf(WarnUnknownCurrency, "no rate for currency %q on %s, amount kept unchanged", amount.Currency(), rec.Date)
		}
		// Downstream the amount is subtracted from base-currency NAV values,
		// so it is always carried in the base currency, converted or not.
		amount = M(amount.value, n.BaseCurrency)

		flow := CashFlow{
			Date:        rec.Date,
			Amount:      amount,
			Description: rec.Description,
		}
		if c, ok := ParseCategory(rec.Category); ok {
			flow.Category = c
		} else {
			flow.Category = InferCategory(rec.Description, amount)
		}

		if seen[flow.key()] {
			w.addf(WarnDuplicate, "cash flow %s already ingested, dropped", flow)
			continue
		}
		seen[flow.key()] = true
		flows = append(flows, flow)
	}

	// Records arrive in source order; the engine wants them by date. The
	// sort is stable so that same-day flows keep their source order.
	flows = stableByDate(flows)
	return flows, w.list
}

func stableByDate(flows CashFlows) CashFlows {
	out := make(CashFlows, len(flows))
	copy(out, flows)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
