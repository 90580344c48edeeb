package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePrice extracts the numeric amount from a display-formatted price
// such as "$350.000 / noche". Every non-digit rune is dropped, which
// matches how the source spreadsheet stores prices. New code should
// carry PricePerNight directly; this parse exists only for ingesting
// formatted data.
func ParsePrice(s string) (int64, error) {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, fmt.Errorf("no digits in price %q", s)
	}
	return strconv.ParseInt(b.String(), 10, 64)
}

// FormatPrice renders a COP amount with dot thousand separators, e.g.
// 350000 -> "$350.000".
func FormatPrice(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	b.WriteByte('$')
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte('.')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
