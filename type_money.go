package networth

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is an amount in a currency, used to report engine values.
type Money struct {
	value decimal.Decimal // as major unit value
	cur   string
}

// M returns value as Money in currency.
func M(value float64, currency string) Money {
	return Money{value: decimal.NewFromFloat(value), cur: currency}
}

// currency returns the money's currency, never nil: unknown codes get a
// default formatting.
func (m Money) currency() money.Currency {
	return *money.New(0, m.cur).Currency()
}

// String returns the amount formatted with the currency's minor units.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// Whole returns the amount rounded and formatted in whole major units, the
// precision of long-run projections.
func (m Money) Whole() string {
	cur := m.currency()
	f := *cur.Formatter()
	f.Fraction = 0
	return f.Format(m.value.Round(0).IntPart())
}

func (m Money) Currency() string  { return m.cur }
func (m Money) IsNegative() bool  { return m.value.IsNegative() }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: cur(m, n)} }

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
	var w jsonObjectWriter
	w.Optional("currency", m.cur)
	w.Append("amount", m.value.Round(int32(m.currency().Fraction)))
	return w.MarshalJSON()
}
