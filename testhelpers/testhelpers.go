// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderdocs/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestWork creates a work record with sensible tender defaults.
func CreateTestWork(t *testing.T, app *pocketbase.PocketBase, nitNumber string, estimatedCost float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("works")
	if err != nil {
		t.Fatalf("failed to find works collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("nit_number", nitNumber)
	record.Set("work_name", "Providing and erecting 11 KV line with transformer substation")
	record.Set("estimated_cost", estimatedCost)
	record.Set("schedule_amount", estimatedCost)
	record.Set("earnest_money", estimatedCost*0.02)
	record.Set("time_of_completion", 3)
	record.Set("ee_name", "Sh. R. K. Sharma")
	record.Set("tender_date", "15-01-2025")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test work: %v", err)
	}

	return record
}

// CreateTestBidder creates a bidder record linked to a work and returns it.
func CreateTestBidder(t *testing.T, app *pocketbase.PocketBase, workID, name string, percentage, bidAmount float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("bidders")
	if err != nil {
		t.Fatalf("failed to find bidders collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("work", workID)
	record.Set("name", name)
	record.Set("percentage", percentage)
	record.Set("bid_amount", bidAmount)
	record.Set("contact", "9876543210")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test bidder: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
