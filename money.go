package nexus

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the single base currency every figure is normalized to.
const ReportingCurrency = "EUR"

// Money represents a monetary value in the reporting currency.
type Money struct {
	value decimal.Decimal // as major unit value
}

func M[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Money {
	return Money{value: newDecimal(value)}
}

func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
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
	case decimal.Decimal:
		return v
	}
	return decimal.Zero
}

// eurFormatter renders amounts the Spanish way: "4.500.000 €", no decimals.
var eurFormatter = money.NewFormatter(0, ",", ".", "€", "1 $")

// String returns the string representation of the money value,
// rounded to the whole euro.
func (m Money) String() string {
	return eurFormatter.Format(m.value.Round(0).IntPart())
}

func (m Money) IsZero() bool             { return m.value.IsZero() }
func (m Money) IsPositive() bool         { return m.value.IsPositive() }
func (m Money) IsNegative() bool         { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool    { return m.value.LessThan(n.value) }
func (m Money) GreaterThan(n Money) bool { return m.value.GreaterThan(n.value) }
func (m Money) Equal(n Money) bool       { return m.value.Equal(n.value) }
func (m Money) Neg() Money               { return Money{value: m.value.Neg()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Scale multiplies the amount by a plain factor (e.g. a rate or a quantity).
func (m Money) Scale(f float64) Money {
	return Money{value: m.value.Mul(decimal.NewFromFloat(f))}
}

// PercentOf returns the share of m in total, in percent rounded to one
// decimal. A zero total yields 0 rather than a division error.
func (m Money) PercentOf(total Money) float64 {
	if total.IsZero() {
		return 0
	}
	pct := m.value.Div(total.value).Mul(decimal.NewFromInt(100))
	return pct.Round(1).InexactFloat64()
}

// AsFloat converts to float64 for chart geometry; calculations stay decimal.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
