// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatMoney formats a dollar amount, accounting style: negatives are
// parenthesized. e.g., 1234.5 -> "$1,234.50", -10 -> "($10.00)".
func FormatMoney(amount float64) string {
	if amount < 0 {
		return "(" + FormatMoney(-amount) + ")"
	}
	cents := fmt.Sprintf("%.2f", amount)
	dot := strings.IndexByte(cents, '.')
	return "$" + groupThousands(cents[:dot]) + cents[dot:]
}

// FormatDate formats a date for report rows.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatNumber adds comma separators to an integer.
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}
	return groupThousands(strconv.FormatInt(n, 10))
}

func groupThousands(s string) string {
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		b.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Truncate shortens a string to at most n runes, appending "…" when cut.
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
