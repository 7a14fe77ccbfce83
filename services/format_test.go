package services

import "testing"

func TestEscapeLaTeX(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Providing LT line", "Providing LT line"},
		{"ampersand", "M/s Sharma & Sons", `M/s Sharma \& Sons`},
		{"percent", "5% above", `5\% above`},
		{"hash and underscore", "item#2_rev", `item\#2\_rev`},
		{"dollar", "cost $100", `cost \$100`},
		{"braces", "a{b}c", `a\{b\}c`},
		{"caret", "x^2", `x\textasciicircum{}2`},
		{"tilde", "~approx", `\textasciitilde{}approx`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeLaTeX(tt.input); got != tt.want {
				t.Errorf("EscapeLaTeX(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// Escaping must be single-pass: the backslash introduced by escaping one
// character must never itself get escaped.
func TestEscapeLaTeXSinglePass(t *testing.T) {
	got := EscapeLaTeX(`\&`)
	want := `\textbackslash{}\&`
	if got != want {
		t.Errorf("EscapeLaTeX(`\\&`) = %q, want %q", got, want)
	}

	// Escaping already-escaped output would double the backslashes.
	if doubled := EscapeLaTeX(got); doubled == got {
		t.Errorf("expected re-escaping to change the string, got identical output %q", got)
	}
}

func TestFormatPercentageDisplay(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want string
	}{
		{"above", 5.5, "5.50 ABOVE"},
		{"below", -3, "3.00 BELOW"},
		{"at estimate", 0, "AT ESTIMATE"},
		{"small above", 0.01, "0.01 ABOVE"},
		{"two decimals", 2.5, "2.50 ABOVE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatPercentageDisplay(tt.pct); got != tt.want {
				t.Errorf("FormatPercentageDisplay(%v) = %q, want %q", tt.pct, got, tt.want)
			}
		})
	}
}

func TestFormatCurrencyTruncated(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"whole", 950000, "950000"},
		{"truncates paise", 950000.99, "950000"},
		{"truncates not rounds", 1234.567, "1234"},
		{"zero", 0, "0"},
		{"negative", -500.75, "-500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCurrencyTruncated(tt.amount); got != tt.want {
				t.Errorf("FormatCurrencyTruncated(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatINR(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"below thousand", 850, "₹850.00"},
		{"thousands", 12500, "₹12,500.00"},
		{"lakh grouping", 1234567.89, "₹12,34,567.89"},
		{"crore grouping", 123456789, "₹12,34,56,789.00"},
		{"negative", -50000, "-₹50,000.00"},
		{"zero", 0, "₹0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatINR(tt.amount); got != tt.want {
				t.Errorf("FormatINR(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatAmountCompact(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"crores", 15000000, "1.50 Cr"},
		{"even crore", 20000000, "2 Cr"},
		{"lakhs", 250000, "2.50 L"},
		{"even lakh", 200000, "2 L"},
		{"thousands", 45000, "45K"},
		{"below thousand", 850, "850"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmountCompact(tt.amount); got != tt.want {
				t.Errorf("FormatAmountCompact(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"plain", "950000", 950000, true},
		{"decimal", "1234.56", 1234.56, true},
		{"indian commas", "12,50,000", 1250000, true},
		{"rupee symbol", "₹1,00,000", 100000, true},
		{"rs prefix", "Rs. 50000", 50000, true},
		{"inr prefix", "INR 75000", 75000, true},
		{"crore word", "1.5 crore", 15000000, true},
		{"lakh word", "2 lakhs", 200000, true},
		{"thousand word", "45 thousand", 45000, true},
		{"empty", "", 0, false},
		{"no digits", "not an amount", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAmount(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseAmount(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
