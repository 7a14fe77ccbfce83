package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderdocs/services"
)

// HandleBidderAdd attaches a bidder to an existing work. The bid amount is
// derived from the work's estimate when the form leaves it blank.
func HandleBidderAdd(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		workID := e.Request.PathValue("id")
		if workID == "" {
			return e.String(http.StatusBadRequest, "Missing work ID")
		}

		work, err := app.FindRecordById("works", workID)
		if err != nil {
			return e.String(http.StatusNotFound, "Work not found")
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return e.String(http.StatusBadRequest, "Bidder name is required")
		}

		pct, err := strconv.ParseFloat(strings.TrimSpace(e.Request.FormValue("percentage")), 64)
		if err != nil {
			return e.String(http.StatusBadRequest, "Percentage must be a number")
		}
		if !services.ValidatePercentage(pct) {
			return e.String(http.StatusBadRequest, "Percentage must be between -50 and 100")
		}

		bidAmount, ok := services.ParseAmount(e.Request.FormValue("bid_amount"))
		if !ok || bidAmount == 0 {
			bidAmount = services.DeriveBidAmount(work.GetFloat("estimated_cost"), pct)
		}

		existing, err := app.FindRecordsByFilter(
			"bidders",
			"work = {:workId}",
			"", 0, 0,
			map[string]any{"workId": workID},
		)
		if err != nil {
			log.Printf("bidder_add: failed to count bidders: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to add bidder")
		}

		col, err := app.FindCollectionByNameOrId("bidders")
		if err != nil {
			log.Printf("bidder_add: bidders collection missing: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to add bidder")
		}

		record := core.NewRecord(col)
		record.Set("work", workID)
		record.Set("name", name)
		record.Set("percentage", pct)
		record.Set("bid_amount", bidAmount)
		record.Set("contact", strings.TrimSpace(e.Request.FormValue("contact")))
		record.Set("sort_order", len(existing)+1)
		if err := app.Save(record); err != nil {
			log.Printf("bidder_add: failed to save bidder: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to add bidder")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":         record.Id,
			"bid_amount": bidAmount,
		})
	}
}

// HandleBidderDelete removes a single bidder.
func HandleBidderDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing bidder ID")
		}

		record, err := app.FindRecordById("bidders", id)
		if err != nil {
			return e.String(http.StatusNotFound, "Bidder not found")
		}
		if err := app.Delete(record); err != nil {
			log.Printf("bidder_delete: failed to delete %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Failed to delete bidder")
		}
		return e.String(http.StatusOK, "")
	}
}

// HandleBidderProfiles lists the reusable contractor profiles for the entry
// form's autocomplete.
func HandleBidderProfiles(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("bidder_profiles", "1=1", "name", 0, 0, nil)
		if err != nil {
			log.Printf("bidder_profiles: failed to load profiles: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load profiles")
		}

		profiles := make([]map[string]string, 0, len(records))
		for _, r := range records {
			profiles = append(profiles, map[string]string{
				"id":      r.Id,
				"name":    r.GetString("name"),
				"contact": r.GetString("contact"),
				"address": r.GetString("address"),
			})
		}
		return e.JSON(http.StatusOK, profiles)
	}
}
