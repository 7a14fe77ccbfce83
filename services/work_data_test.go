package services_test

import (
	"testing"

	"tenderdocs/services"
	"tenderdocs/testhelpers"
)

func TestBuildTenderRecord(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	work := testhelpers.CreateTestWork(t, app, "27/2024-25", 1000000)
	testhelpers.CreateTestBidder(t, app, work.Id, "M/s Beta", 2, 1020000)
	testhelpers.CreateTestBidder(t, app, work.Id, "M/s Alpha", -5, 0) // amount derived

	rec, err := services.BuildTenderRecord(app, work.Id)
	if err != nil {
		t.Fatalf("BuildTenderRecord failed: %v", err)
	}

	if rec.NITNumber != "27/2024-25" {
		t.Errorf("NITNumber = %q", rec.NITNumber)
	}
	if rec.EstimatedCost != 1000000 {
		t.Errorf("EstimatedCost = %v", rec.EstimatedCost)
	}
	if len(rec.Bidders) != 2 {
		t.Fatalf("expected 2 bidders, got %d", len(rec.Bidders))
	}

	var alpha *services.Bidder
	for i := range rec.Bidders {
		if rec.Bidders[i].Name == "M/s Alpha" {
			alpha = &rec.Bidders[i]
		}
	}
	if alpha == nil {
		t.Fatal("M/s Alpha missing from loaded record")
	}
	if alpha.BidAmount != 950000 {
		t.Errorf("derived bid amount = %v, want 950000", alpha.BidAmount)
	}
}

func TestBuildTenderRecordNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if _, err := services.BuildTenderRecord(app, "does-not-exist"); err == nil {
		t.Fatal("expected error for missing work")
	}
}
