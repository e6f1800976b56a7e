package format

import (
	"strconv"
	"time"
)

// Thousands formats an integer with "." thousands separators, the
// Indonesian convention used on receipts and recap exports
// (e.g. 1234567 -> "1.234.567").
func Thousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}

	out := make([]byte, 0, len(s)+len(s)/3)
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digit)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

// Date formats a date as zero-padded day-month-year (e.g. "05-01-2024").
func Date(t time.Time) string {
	return t.Format("02-01-2006")
}
