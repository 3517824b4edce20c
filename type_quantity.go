package stocksim

import "github.com/shopspring/decimal"

// Quantity is a number of shares. Fractional shares are allowed and no
// rounding happens during computation.
type Quantity struct {
	value decimal.Decimal
}

func Q[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Div(p Quantity) Quantity     { return Quantity{value: q.value.Div(p.value)} }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) AsFloat() float64            { return q.value.InexactFloat64() }
func (q Quantity) String() string              { return q.value.String() }

// StringFixed renders the quantity with a fixed number of decimal places.
func (q Quantity) StringFixed(places int32) string { return q.value.StringFixed(places) }

func (q Quantity) MarshalJSON() ([]byte, error) {
	return q.value.MarshalJSON()
}

func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}
