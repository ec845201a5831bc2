package twr

import (
	"encoding/json"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a monetary value: a decimal amount in a given currency.
//
// NAV values and cash-flow amounts are kept exact; only the final ratio
// computations degrade to float64.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

func M[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported decimal type")
	}
}

// currency returns the money's currency metadata.
func (m Money) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, m.cur).Currency()
}

// String returns the string representation of the money value.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

func (m Money) Currency() string             { return m.cur }
func (m Money) Equal(n Money) bool           { return m.value.Equal(n.value) && m.cur == n.cur }
func (m Money) IsZero() bool                 { return m.value.IsZero() }
func (m Money) IsPositive() bool             { return m.value.IsPositive() }
func (m Money) IsNegative() bool             { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool        { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool     { return m.value.GreaterThan(n.value) }
func (m Money) Neg() Money                   { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money            { return Money{value: m.value.Add(n.value), cur: cur(m, n)} }
func (m Money) Sub(n Money) Money            { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }
func (m Money) MulRate(r decimal.Decimal, currency string) Money {
	return Money{value: m.value.Mul(r), cur: currency}
}

// makes the "" currency totally weak.
func cur(A, B Money) string {
	if A.cur == "" {
		return B.cur
	}
	if B.cur == "" {
		return A.cur
	}
	if A.cur != B.cur {
		panic("currency mismatch " + A.cur + "!=" + B.cur)
	}
	return A.cur
}

// AsFloat returns the amount as a float64, for ratio computations only.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }

// SignedString returns the string representation of the money value with a sign.
// 0 is represented as a "-"
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Amount   decimal.Decimal `json:"amount"`
		Currency string          `json:"currency,omitempty"`
	}{m.value, m.cur})
}

// Converter converts an amount into the account's base currency.
//
// The engine only ever sees converted amounts; substituting a live FX
// provider is the caller's business and never touches the core logic.
type Converter interface {
	// Convert returns the amount in the base currency and true, or the
	// amount unchanged and false when the currency is unknown to it.
	Convert(m Money) (Money, bool)
}

// RateTable is a fixed per-currency multiplier table into a base currency.
// It is an input policy, not a live FX rate source.
type RateTable struct {
	Base  string
	Rates map[string]decimal.Decimal // currency code -> multiplier into Base
}

// NewRateTable builds a rate table into the given base currency.
// The base currency itself always converts with a rate of 1.
func NewRateTable(base string, rates map[string]float64) RateTable {
	t := RateTable{Base: base, Rates: make(map[string]decimal.Decimal, len(rates))}
	for code, r := range rates {
		t.Rates[code] = decimal.NewFromFloat(r)
	}
	return t
}

func (t RateTable) Convert(m Money) (Money, bool) {
	if m.Currency() == t.Base || m.Currency() == "" {
		return M(m.value, t.Base), true
	}
	rate, ok := t.Rates[m.Currency()]
	if !ok {
		return m, false
	}
	return m.MulRate(rate, t.Base), true
}

var _ Converter = RateTable{}
