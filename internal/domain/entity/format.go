package entity

import (
	"fmt"
	"strconv"
)

// FormatDuration renders a minute count as "45 min", "1h" or "1h 30m"
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}

	hours := minutes / 60
	remaining := minutes % 60
	if remaining == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dm", hours, remaining)
}

// FormatNumber compacts large counts: 1500 -> "1.5K", 1200000 -> "1.2M".
// The single decimal is rounded half away from zero; below 1000 the plain integer is returned.
func FormatNumber(n int64) string {
	switch {
	case n >= 1_000_000:
		return oneDecimal(n, 1_000_000) + "M"
	case n >= 1_000:
		return oneDecimal(n, 1_000) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

// oneDecimal renders n/unit with one decimal place using integer arithmetic.
// n is positive here, so adding half a tenth rounds away from zero.
func oneDecimal(n, unit int64) string {
	tenth := unit / 10
	tenths := (n + tenth/2) / tenth
	return fmt.Sprintf("%d.%d", tenths/10, tenths%10)
}
