package coinfolio

import "github.com/shopspring/decimal"

// Number are the values D turns into a decimal.
type Number interface {
	int | int64 | float64 | decimal.Decimal
}

// D returns value as a decimal. Floats keep their shortest representation
// (D(0.1) is exactly 0.1).
func D[T Number](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	case float64:
		return decimal.NewFromFloat(v)
	default:
		return any(value).(decimal.Decimal)
	}
}

var hundred = D(100)
