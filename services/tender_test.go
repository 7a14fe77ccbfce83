package services

import "testing"

func TestDeriveBidAmount(t *testing.T) {
	tests := []struct {
		name      string
		estimate  float64
		pct       float64
		want      float64
	}{
		{"below estimate", 1000000, -5, 950000},
		{"above estimate", 1000000, 2, 1020000},
		{"at estimate", 1000000, 0, 1000000},
		{"rounds to paise", 100000, 3.333, 103333},
		{"fractional result", 999999, -5, 949999.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeriveBidAmount(tt.estimate, tt.pct); got != tt.want {
				t.Errorf("DeriveBidAmount(%v, %v) = %v, want %v", tt.estimate, tt.pct, got, tt.want)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	rec := TenderRecord{
		NITNumber:     "  27/2024-25  ",
		WorkName:      " Providing LT line ",
		EstimatedCost: 1000000,
		EEName:        " Sh. Sharma ",
		TenderDate:    " 15-01-2025 ",
		Bidders: []Bidder{
			{Name: "  M/s Alpha  ", Percentage: -5},
			{Name: "M/s Beta", Percentage: 2, BidAmount: 1020000},
		},
	}

	Normalize(&rec)

	if rec.NITNumber != "27/2024-25" {
		t.Errorf("NITNumber not trimmed: %q", rec.NITNumber)
	}
	if rec.WorkName != "Providing LT line" {
		t.Errorf("WorkName not trimmed: %q", rec.WorkName)
	}
	if rec.ScheduleAmount != 1000000 {
		t.Errorf("ScheduleAmount should default to estimate, got %v", rec.ScheduleAmount)
	}
	if rec.Bidders[0].Name != "M/s Alpha" {
		t.Errorf("bidder name not trimmed: %q", rec.Bidders[0].Name)
	}
	if rec.Bidders[0].BidAmount != 950000 {
		t.Errorf("missing bid amount should be derived, got %v", rec.Bidders[0].BidAmount)
	}
	if rec.Bidders[1].BidAmount != 1020000 {
		t.Errorf("existing bid amount must not change, got %v", rec.Bidders[1].BidAmount)
	}
}

func TestNormalizeNil(t *testing.T) {
	Normalize(nil) // must not panic
}
