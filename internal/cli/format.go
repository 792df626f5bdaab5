// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/theirongolddev/dburn/internal/model"
	"github.com/theirongolddev/dburn/internal/pipeline"
)

// FormatAmount formats a currency value with the configured symbol.
// Whole amounts drop the decimals: 150 -> "$150", 42.5 -> "$42.50".
func FormatAmount(symbol string, v float64) string {
	if v == float64(int64(v)) {
		return symbol + FormatNumber(int64(v))
	}
	return fmt.Sprintf("%s%.2f", symbol, v)
}

// FormatSignedAmount formats a currency value keeping an explicit sign,
// used for available-budget figures that may go negative.
func FormatSignedAmount(symbol string, v float64) string {
	if v < 0 {
		return "-" + FormatAmount(symbol, -v)
	}
	return FormatAmount(symbol, v)
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

// FormatPercent formats a 0-100 percentage figure.
func FormatPercent(pct float64) string {
	return fmt.Sprintf("%.0f%%", pct)
}

// FormatTier renders a spend tier as an uppercase label.
func FormatTier(tier pipeline.Tier) string {
	return strings.ToUpper(string(tier))
}

// FormatDayOfWeek returns a 3-letter day abbreviation for a date key,
// or "???" when the key doesn't parse.
func FormatDayOfWeek(date string) string {
	t, err := time.ParseInLocation(model.DateFormat, date, time.Local)
	if err != nil {
		return "???"
	}
	return t.Format("Mon")
}

// FormatClock renders a creation timestamp (Unix millis) as local HH:MM.
func FormatClock(millis int64) string {
	if millis <= 0 {
		return ""
	}
	return time.UnixMilli(millis).Local().Format("15:04")
}

// ShortID returns the first 8 characters of an id for display.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
