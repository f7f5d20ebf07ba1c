// Package model defines the domain types for runway projections: money,
// recurring and one-time entries, and forecast outputs.
package model

import (
	"fmt"
	"math"
)

// Money is a signed amount in integer cents. Balances accumulate in cents so
// a multi-year daily walk never picks up float rounding drift.
type Money int64

// MoneyFromFloat converts a dollar amount to cents, rounding half away from
// zero. NaN and infinities are coerced to 0 — the engine contract assumes
// sanitized numeric input, and 0 is the defined fallback at the boundary.
func MoneyFromFloat(dollars float64) Money {
	if math.IsNaN(dollars) || math.IsInf(dollars, 0) {
		return 0
	}
	return Money(math.Round(dollars * 100))
}

// Float64 returns the amount in dollars.
func (m Money) Float64() float64 {
	return float64(m) / 100
}

// Abs returns the magnitude of the amount.
func (m Money) Abs() Money {
	if m < 0 {
		return -m
	}
	return m
}

// String formats the amount as a plain dollar value, e.g. "-12.50".
func (m Money) String() string {
	sign := ""
	v := m
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Sanitize coerces NaN/Inf to 0, leaving finite values untouched. Applied to
// raw numeric fields (hours, rates) before they reach scheduling.
func Sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
