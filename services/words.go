package services

import (
	"math"
	"strings"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// NumberToWords converts a rupee amount to English words using the Indian
// numbering system (crore, lakh, thousand) and appends " Rupees Only".
//
// Two behaviors are preserved from the statutory documents this feeds:
// zero renders as the bare word "Zero" with no suffix, and fractional
// rupees are truncated rather than rounded.
func NumberToWords(amount float64) string {
	if amount == 0 {
		return "Zero"
	}
	if amount < 0 {
		return "Minus " + NumberToWords(-amount)
	}

	n := int64(math.Trunc(amount))
	if n == 0 {
		return "Zero"
	}

	var parts []string

	if n >= 1_00_00_000 {
		parts = append(parts, wordsBelowThousand(n/1_00_00_000), "Crore")
		n %= 1_00_00_000
	}
	if n >= 1_00_000 {
		parts = append(parts, wordsBelowThousand(n/1_00_000), "Lakh")
		n %= 1_00_000
	}
	if n >= 1_000 {
		parts = append(parts, wordsBelowThousand(n/1_000), "Thousand")
		n %= 1_000
	}
	if n > 0 {
		parts = append(parts, wordsBelowThousand(n))
	}

	return strings.Join(parts, " ") + " Rupees Only"
}

// wordsBelowThousand spells out 1..999.
func wordsBelowThousand(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100], "Hundred")
		n %= 100
	}
	if n >= 20 {
		parts = append(parts, tensWords[n/10])
		n %= 10
	}
	if n > 0 && n < 20 {
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}
