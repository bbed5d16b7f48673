package marketbot

import "github.com/shopspring/decimal"

// Quantity is a number of shares or units. It may be fractional.
type Quantity struct {
	value decimal.Decimal
}

// Q returns a Quantity from a float.
func Q(v float64) Quantity { return Quantity{value: decimal.NewFromFloat(v)} }

func (q Quantity) Equal(r Quantity) bool { return q.value.Equal(r.value) }
func (q Quantity) IsZero() bool          { return q.value.IsZero() }
func (q Quantity) String() string        { return q.value.String() }

// AsFloat returns the quantity as a float64, for presentation only.
func (q Quantity) AsFloat() float64 { return q.value.InexactFloat64() }
