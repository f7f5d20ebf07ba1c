// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/runway/internal/calendar"
	"github.com/theirongolddev/runway/internal/model"
)

// currencySymbol prefixes rendered amounts; set once from config at startup.
var currencySymbol = "$"

// SetCurrency overrides the currency symbol used by the formatters.
func SetCurrency(symbol string) {
	if symbol != "" {
		currencySymbol = symbol
	}
}

// FormatMoney renders an amount with symbol, thousands separators, and two
// decimals. e.g., -123456 cents -> "-$1,234.56"
func FormatMoney(m model.Money) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%s%s.%02d", sign, currencySymbol, FormatNumber(int64(m/100)), m%100)
}

// FormatMoneyCompact drops the cents for large round-ish figures in charts
// and cards. e.g., 123456 cents -> "$1,235"
func FormatMoneyCompact(m model.Money) string {
	sign := ""
	if m < 0 {
		sign = "-"
		m = -m
	}
	dollars := (int64(m) + 50) / 100
	return sign + currencySymbol + FormatNumber(dollars)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatDate renders a date for display, e.g. "Mar 1, 2024".
func FormatDate(d calendar.Date) string {
	return d.Time().Format("Jan 2, 2006")
}

// FormatDateShort renders a compact date for chart axes, e.g. "Mar 1".
func FormatDateShort(d calendar.Date) string {
	return d.Time().Format("Jan 2")
}

// FormatDayOfWeek returns a 3-letter day abbreviation.
func FormatDayOfWeek(wd time.Weekday) string {
	return wd.String()[:3]
}

// FormatFrequency renders a cadence for humans: "per week", "per 2 weeks",
// "per month".
func FormatFrequency(f calendar.Frequency) string {
	switch f {
	case calendar.Biweekly:
		return "per 2 weeks"
	case calendar.Monthly:
		return "per month"
	default:
		return "per week"
	}
}

// FormatPaychecks renders an occurrence count, with "ongoing" for unbounded
// income.
func FormatPaychecks(n int) string {
	if n < 0 {
		return "ongoing"
	}
	if n == 1 {
		return "1 paycheck"
	}
	return fmt.Sprintf("%d paychecks", n)
}
