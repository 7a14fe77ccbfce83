// Package handlers wires the tender document service to HTTP: work and
// bidder entry, document generation and download, spreadsheet import and
// export, and template editing.
package handlers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderdocs/services"
	"tenderdocs/views"
)

// HandleWorkList renders the works overview page.
func HandleWorkList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		records, err := app.FindRecordsByFilter("works", "1=1", "-created", 0, 0, nil)
		if err != nil {
			log.Printf("work_list: failed to load works: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to load works")
		}

		rows := make([]views.WorkRow, 0, len(records))
		for _, r := range records {
			bidders, err := app.FindRecordsByFilter(
				"bidders",
				"work = {:workId}",
				"", 0, 0,
				map[string]any{"workId": r.Id},
			)
			if err != nil {
				log.Printf("work_list: failed to count bidders for %s: %v", r.Id, err)
			}

			rows = append(rows, views.WorkRow{
				ID:            r.Id,
				NITNumber:     r.GetString("nit_number"),
				WorkName:      r.GetString("work_name"),
				EstimatedCost: services.FormatAmountCompact(r.GetFloat("estimated_cost")),
				BidderCount:   len(bidders),
			})
		}

		component := views.WorkListPage(rows)
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleWorkSave creates a work from a submitted entry form.
func HandleWorkSave(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}

		rec := services.TenderRecord{
			NITNumber:  strings.TrimSpace(e.Request.FormValue("nit_number")),
			WorkName:   strings.TrimSpace(e.Request.FormValue("work_name")),
			EEName:     strings.TrimSpace(e.Request.FormValue("ee_name")),
			TenderDate: strings.TrimSpace(e.Request.FormValue("tender_date")),
		}
		rec.EstimatedCost, _ = services.ParseAmount(e.Request.FormValue("estimated_cost"))
		rec.ScheduleAmount, _ = services.ParseAmount(e.Request.FormValue("schedule_amount"))
		rec.EarnestMoney, _ = services.ParseAmount(e.Request.FormValue("earnest_money"))
		if v, err := strconv.Atoi(strings.TrimSpace(e.Request.FormValue("time_of_completion"))); err == nil {
			rec.TimeOfCompletion = v
		}
		services.Normalize(&rec)

		validation := services.ValidateTender(rec)
		if !validation.Valid {
			return e.JSON(http.StatusBadRequest, validation)
		}

		record, err := saveWork(app, rec)
		if err != nil {
			log.Printf("work_save: failed to save work: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to save work")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":         record.Id,
			"validation": validation,
		})
	}
}

// HandleWorkView returns one work with its bidders, normalized the same way
// document generation sees it.
func HandleWorkView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing work ID")
		}

		rec, err := services.BuildTenderRecord(app, id)
		if err != nil {
			log.Printf("work_view: work not found %s: %v", id, err)
			return e.String(http.StatusNotFound, "Work not found")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"work":       rec,
			"validation": services.ValidateTender(*rec),
		})
	}
}

// HandleWorkDelete removes a work; its bidders cascade.
func HandleWorkDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		id := e.Request.PathValue("id")
		if id == "" {
			return e.String(http.StatusBadRequest, "Missing work ID")
		}

		record, err := app.FindRecordById("works", id)
		if err != nil {
			return e.String(http.StatusNotFound, "Work not found")
		}
		if err := app.Delete(record); err != nil {
			log.Printf("work_delete: failed to delete %s: %v", id, err)
			return e.String(http.StatusInternalServerError, "Failed to delete work")
		}
		return e.String(http.StatusOK, "")
	}
}

// saveWork persists a normalized record and its bidders.
func saveWork(app *pocketbase.PocketBase, rec services.TenderRecord) (*core.Record, error) {
	worksCol, err := app.FindCollectionByNameOrId("works")
	if err != nil {
		return nil, err
	}

	record := core.NewRecord(worksCol)
	record.Set("nit_number", rec.NITNumber)
	record.Set("work_name", rec.WorkName)
	record.Set("estimated_cost", rec.EstimatedCost)
	record.Set("schedule_amount", rec.ScheduleAmount)
	record.Set("earnest_money", rec.EarnestMoney)
	record.Set("time_of_completion", rec.TimeOfCompletion)
	record.Set("ee_name", rec.EEName)
	record.Set("tender_date", rec.TenderDate)
	if err := app.Save(record); err != nil {
		return nil, err
	}

	if len(rec.Bidders) > 0 {
		biddersCol, err := app.FindCollectionByNameOrId("bidders")
		if err != nil {
			return nil, err
		}
		for i, b := range rec.Bidders {
			bidder := core.NewRecord(biddersCol)
			bidder.Set("work", record.Id)
			bidder.Set("name", b.Name)
			bidder.Set("percentage", b.Percentage)
			bidder.Set("bid_amount", b.BidAmount)
			bidder.Set("contact", b.Contact)
			bidder.Set("sort_order", i+1)
			if err := app.Save(bidder); err != nil {
				return nil, err
			}
		}
	}

	return record, nil
}
