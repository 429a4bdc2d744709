package domain

import (
	"github.com/shopspring/decimal"
)

// Cents is a money amount in integer cents. Amounts are stored and compared
// in cents so mongo can run conditional updates on them without float drift.
type Cents int64

var centsPerUnit = decimal.New(100, 0)

// CentsFromDecimal rounds d (in currency units) half up to the cent.
func CentsFromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Mul(centsPerUnit).Round(0).IntPart())
}

// Decimal returns the amount in currency units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Float64 returns the amount in currency units for JSON payloads.
func (c Cents) Float64() float64 {
	return c.Decimal().InexactFloat64()
}

func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}
