package services

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// latexEscapes maps each LaTeX-special rune to its escaped form. Escaping is
// done in a single scan over the original text, so replacement output is
// never re-processed (the backslash case would otherwise cascade).
var latexEscapes = map[rune]string{
	'\\': `\textbackslash{}`,
	'{':  `\{`,
	'}':  `\}`,
	'$':  `\$`,
	'&':  `\&`,
	'%':  `\%`,
	'#':  `\#`,
	'^':  `\textasciicircum{}`,
	'_':  `\_`,
	'~':  `\textasciitilde{}`,
}

// EscapeLaTeX escapes text for safe inclusion in LaTeX source. Empty input
// yields an empty string; it never fails.
func EscapeLaTeX(text string) string {
	if text == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if esc, ok := latexEscapes[r]; ok {
			b.WriteString(esc)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatPercentageDisplay renders a signed bid deviation in the statutory
// direction-label form: "5.50 ABOVE", "3.00 BELOW" or "AT ESTIMATE".
func FormatPercentageDisplay(pct float64) string {
	switch {
	case pct > 0:
		return fmt.Sprintf("%.2f ABOVE", pct)
	case pct < 0:
		return fmt.Sprintf("%.2f BELOW", -pct)
	default:
		return "AT ESTIMATE"
	}
}

// FormatCurrencyTruncated renders the integer rupee part of an amount with
// no separators. Statutory tables display plain whole-rupee figures; paise
// are truncated, not rounded.
func FormatCurrencyTruncated(amount float64) string {
	return strconv.FormatInt(int64(math.Trunc(amount)), 10)
}

// FormatINR formats an amount in Indian Rupee notation with Indian digit
// grouping (₹12,34,567.89) and exactly 2 decimal places.
func FormatINR(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	raw := fmt.Sprintf("%.2f", amount)
	intPart, decPart, _ := strings.Cut(raw, ".")

	result := "₹" + groupIndianDigits(intPart) + "." + decPart
	if negative {
		result = "-" + result
	}
	return result
}

// groupIndianDigits inserts commas using the Indian numbering system: the
// rightmost 3 digits form one group, then pairs from the right.
func groupIndianDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	grouped := s[len(s)-3:]
	rest := s[:len(s)-3]
	for len(rest) > 2 {
		grouped = rest[len(rest)-2:] + "," + grouped
		rest = rest[:len(rest)-2]
	}
	return rest + "," + grouped
}

// FormatAmountCompact renders an amount in the short Indian unit form used
// in selection lists: "1.50 Cr", "2 L", "45K", "850".
func FormatAmountCompact(amount float64) string {
	n := int64(math.Trunc(amount))
	if n < 0 {
		n = -n
	}

	switch {
	case n >= 1_00_00_000:
		crores := n / 1_00_00_000
		lakhs := (n % 1_00_00_000) / 1_00_000
		if lakhs == 0 {
			return fmt.Sprintf("%d Cr", crores)
		}
		return fmt.Sprintf("%d.%02d Cr", crores, lakhs)
	case n >= 1_00_000:
		lakhs := n / 1_00_000
		thousands := (n % 1_00_000) / 1_000
		if thousands == 0 {
			return fmt.Sprintf("%d L", lakhs)
		}
		return fmt.Sprintf("%d.%02d L", lakhs, thousands)
	case n >= 1_000:
		return fmt.Sprintf("%dK", n/1_000)
	default:
		return strconv.FormatInt(n, 10)
	}
}

var (
	amountNoiseRe   = regexp.MustCompile(`(?i)[₹$£€¥]|\bRs\.?|\bINR\b|[,\s]`)
	amountNumericRe = regexp.MustCompile(`\d+(?:\.\d+)?`)
)

// ParseAmount extracts a rupee value from a free-form amount string such as
// "Rs. 12,50,000", "₹1.5 crore" or "2 lakhs". The second return value is
// false when no numeric value could be found.
func ParseAmount(s string) (float64, bool) {
	if strings.TrimSpace(s) == "" {
		return 0, false
	}

	lower := strings.ToLower(s)
	multiplier := 1.0
	switch {
	case strings.Contains(lower, "crore"):
		multiplier = 1_00_00_000
	case strings.Contains(lower, "lakh"):
		multiplier = 1_00_000
	case strings.Contains(lower, "thousand"):
		multiplier = 1_000
	}

	cleaned := amountNoiseRe.ReplaceAllString(s, "")
	match := amountNumericRe.FindString(cleaned)
	if match == "" {
		return 0, false
	}

	value, err := strconv.ParseFloat(match, 64)
	if err != nil {
		return 0, false
	}
	return value * multiplier, true
}
