// Package words spells out clock values in upper case English.
package words

var (
	ones = [...]string{
		"ZERO", "ONE", "TWO", "THREE", "FOUR",
		"FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	}
	teens = [...]string{
		"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN",
		"FIFTEEN", "SIXTEEN", "SEVENTEEN", "EIGHTEEN", "NINETEEN",
	}
	tens = [...]string{
		"", "TEN", "TWENTY", "THIRTY", "FORTY",
		"FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY",
	}
)

// Number spells n for 0 <= n <= 99, or returns the empty string.
func Number(n int) string {
	switch {
	case n < 0 || n > 99:
		return ""
	case n < 10:
		return ones[n]
	case n < 20:
		return teens[n-10]
	}
	t, o := n/10, n%10
	if o == 0 {
		return tens[t]
	}
	return tens[t] + " " + ones[o]
}

// Hour spells a 24-hour clock hour on a 12-hour dial.
func Hour(h int) string {
	if h > 12 {
		h -= 12
	}
	if h == 0 {
		h = 12
	}
	return Number(h)
}

// Minute spells a minute.
func Minute(m int) string {
	return Number(m)
}
