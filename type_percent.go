package coinfolio

import "github.com/shopspring/decimal"

// Percent is a percentage as reported by the ticker (5.2 means 5.2%).
// A Percent can be missing, the ticker does not always report changes for new assets.
type Percent struct {
	value decimal.NullDecimal
}

// P returns a valid percent.
func P[T Number](value T) Percent {
	return Percent{value: decimal.NewNullDecimal(D(value))}
}

func (p Percent) Valid() bool              { return p.value.Valid }
func (p Percent) Decimal() decimal.Decimal { return p.value.Decimal }
func (p Percent) Equal(q Percent) bool {
	return p.value.Valid == q.value.Valid && p.value.Decimal.Equal(q.value.Decimal)
}

// UnmarshalJSON decodes a number or a numeric string. null is a missing percent.
func (p *Percent) UnmarshalJSON(b []byte) error {
	var v decimal.NullDecimal
	if err := v.UnmarshalJSON(b); err != nil {
		return err
	}
	*p = Percent{}
	if v.Valid {
		*p = P(v.Decimal)
	}
	return nil
}

// String returns the percent the way the ticker wrote it, followed by '%'.
// A missing percent is rendered as "-".
func (p Percent) String() string {
	if !p.value.Valid {
		return "-"
	}
	return p.value.Decimal.String() + "%"
}
