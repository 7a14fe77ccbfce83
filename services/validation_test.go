package services

import (
	"strings"
	"testing"
)

func TestValidateNITNumber(t *testing.T) {
	tests := []struct {
		name string
		nit  string
		want bool
	}{
		{"fiscal year suffix", "27/2024-25", true},
		{"plain year", "27/2024", true},
		{"nit prefix", "NIT-27/2024", true},
		{"dash form", "27-2024", true},
		{"department prefix", "PWD27/2024", true},
		{"with surrounding spaces", " 27/2024-25 ", true},
		{"empty", "", false},
		{"free text", "tender number twenty seven", false},
		{"lowercase prefix", "pwd27/2024", false},
		{"missing year", "27/", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateNITNumber(tt.nit); got != tt.want {
				t.Errorf("ValidateNITNumber(%q) = %v, want %v", tt.nit, got, tt.want)
			}
		})
	}
}

func TestValidatePercentage(t *testing.T) {
	tests := []struct {
		name string
		pct  float64
		want bool
	}{
		{"zero", 0, true},
		{"typical below", -5.5, true},
		{"typical above", 12, true},
		{"lower bound", -50, true},
		{"upper bound", 100, true},
		{"too low", -50.01, false},
		{"too high", 100.5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidatePercentage(tt.pct); got != tt.want {
				t.Errorf("ValidatePercentage(%v) = %v, want %v", tt.pct, got, tt.want)
			}
		})
	}
}

func TestValidateWorkName(t *testing.T) {
	tests := []struct {
		name     string
		workName string
		want     bool
	}{
		{"full description", "Providing and erecting 11 KV line", true},
		{"too short", "LT line", false},
		{"too few words", "Electrification", false},
		{"empty", "", false},
		{"exactly three words", "Providing electric line", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidateWorkName(tt.workName); got != tt.want {
				t.Errorf("ValidateWorkName(%q) = %v, want %v", tt.workName, got, tt.want)
			}
		})
	}
}

func TestValidateTender(t *testing.T) {
	t.Run("valid record passes", func(t *testing.T) {
		v := ValidateTender(testRecord())
		if !v.Valid {
			t.Errorf("expected valid, got errors: %v", v.Errors)
		}
	})

	t.Run("collects all errors", func(t *testing.T) {
		rec := TenderRecord{
			NITNumber:     "bad",
			WorkName:      "short",
			EstimatedCost: 0,
			EarnestMoney:  -1,
			Bidders: []Bidder{
				{Name: "", Percentage: 200, BidAmount: -5},
			},
		}
		v := ValidateTender(rec)
		if v.Valid {
			t.Fatal("expected invalid record")
		}
		if len(v.Errors) < 6 {
			t.Errorf("expected at least 6 errors, got %d: %v", len(v.Errors), v.Errors)
		}
	})

	t.Run("warns on unusual earnest money", func(t *testing.T) {
		rec := testRecord()
		rec.EarnestMoney = 500000 // 50% of estimate
		v := ValidateTender(rec)
		if !v.Valid {
			t.Errorf("warning must not invalidate: %v", v.Errors)
		}
		found := false
		for _, w := range v.Warnings {
			if strings.Contains(w, "earnest money") {
				found = true
			}
		}
		if !found {
			t.Errorf("expected earnest money warning, got %v", v.Warnings)
		}
	})

	t.Run("warns on empty bidder list", func(t *testing.T) {
		rec := testRecord()
		rec.Bidders = nil
		v := ValidateTender(rec)
		if !v.Valid {
			t.Errorf("no bidders must stay valid: %v", v.Errors)
		}
		if len(v.Warnings) == 0 {
			t.Error("expected a warning about missing bidders")
		}
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "comparative_27", "comparative_27"},
		{"slashes replaced", "comparative_27/2024-25", "comparative_27_2024-25"},
		{"windows specials", `a<b>c:d"e|f?g*h`, "a_b_c_d_e_f_g_h"},
		{"empty", "", "untitled"},
		{"only dots", "...", "untitled"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeFilename(tt.input); got != tt.want {
				t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
