package services

import "testing"

func TestNumberToWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero is bare", 0, "Zero"},
		{"one", 1, "One Rupees Only"},
		{"teens", 17, "Seventeen Rupees Only"},
		{"tens", 40, "Forty Rupees Only"},
		{"compound tens", 99, "Ninety Nine Rupees Only"},
		{"hundreds", 850, "Eight Hundred Fifty Rupees Only"},
		{"one lakh", 100000, "One Lakh Rupees Only"},
		{"one crore", 10000000, "One Crore Rupees Only"},
		{"mixed units", 12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees Only"},
		{"nine fifty thousand", 950000, "Nine Lakh Fifty Thousand Rupees Only"},
		{"truncates paise", 100.99, "One Hundred Rupees Only"},
		{"fraction truncates to zero", 0.75, "Zero"},
		{"negative", -500, "Minus Five Hundred Rupees Only"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumberToWords(tt.amount); got != tt.want {
				t.Errorf("NumberToWords(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}
