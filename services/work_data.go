package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase"
)

// BuildTenderRecord loads a work and its bidders from the store into a
// normalized TenderRecord ready for validation or document generation.
func BuildTenderRecord(app *pocketbase.PocketBase, workID string) (*TenderRecord, error) {
	work, err := app.FindRecordById("works", workID)
	if err != nil {
		return nil, fmt.Errorf("work not found: %w", err)
	}

	rec := &TenderRecord{
		NITNumber:        work.GetString("nit_number"),
		WorkName:         work.GetString("work_name"),
		EstimatedCost:    work.GetFloat("estimated_cost"),
		ScheduleAmount:   work.GetFloat("schedule_amount"),
		EarnestMoney:     work.GetFloat("earnest_money"),
		TimeOfCompletion: int(work.GetFloat("time_of_completion")),
		EEName:           work.GetString("ee_name"),
		TenderDate:       work.GetString("tender_date"),
	}

	bidders, err := app.FindRecordsByFilter(
		"bidders",
		"work = {:workId}",
		"sort_order,created", 0, 0,
		map[string]any{"workId": workID},
	)
	if err != nil {
		return nil, fmt.Errorf("load bidders for work %s: %w", workID, err)
	}

	for _, b := range bidders {
		rec.Bidders = append(rec.Bidders, Bidder{
			Name:       b.GetString("name"),
			Percentage: b.GetFloat("percentage"),
			BidAmount:  b.GetFloat("bid_amount"),
			Contact:    b.GetString("contact"),
		})
	}

	Normalize(rec)
	return rec, nil
}
