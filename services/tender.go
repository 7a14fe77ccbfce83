// Package services contains the document preparation and rendering logic
// for NIT (Notice Inviting Tender) statutory paperwork.
package services

import (
	"math"
	"strings"
)

// Bidder is one tender participant. Percentage is the signed deviation from
// the estimated cost; BidAmount may be zero on input, in which case it is
// derived during Normalize.
type Bidder struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	BidAmount  float64 `json:"bid_amount"`
	Contact    string  `json:"contact,omitempty"`
}

// TenderRecord is one NIT/work as delivered by ingestion or manual entry.
// It is treated as immutable once handed to Prepare.
type TenderRecord struct {
	NITNumber        string   `json:"nit_number"`
	WorkName         string   `json:"work_name"`
	EstimatedCost    float64  `json:"estimated_cost"`
	ScheduleAmount   float64  `json:"schedule_amount"`
	EarnestMoney     float64  `json:"earnest_money"`
	TimeOfCompletion int      `json:"time_of_completion"`
	EEName           string   `json:"ee_name"`
	TenderDate       string   `json:"date"`
	Bidders          []Bidder `json:"bidders"`
}

// StatutoryConfig carries the fixed department literals injected into every
// generated document. Passed explicitly so a second division or department
// can run with its own header without touching the preparer.
type StatutoryConfig struct {
	OfficeHeader      string
	DocumentTitle     string
	Department        string
	Location          string
	ItemNumber        string
	ContingenciesNote string
	NilAmount         string
	DefaultEEName     string
}

// DefaultStatutoryConfig returns the PWD Electric Division, Udaipur literals
// used by the statutory templates.
func DefaultStatutoryConfig() StatutoryConfig {
	return StatutoryConfig{
		OfficeHeader:      "OFFICE OF THE EXECUTIVE ENGINEER PWD ELECTRIC DIVISION, UDAIPUR",
		DocumentTitle:     "COMPARATIVE STATEMENT OF TENDERS",
		Department:        "PWD Electric Division",
		Location:          "Udaipur",
		ItemNumber:        "ITEM-1",
		ContingenciesNote: "As per rules",
		NilAmount:         "Nil",
		DefaultEEName:     "Executive Engineer",
	}
}

// DeriveBidAmount computes a bid amount from the estimate and the signed
// percentage deviation, rounded to 2 decimal places.
func DeriveBidAmount(estimatedCost, percentage float64) float64 {
	amount := estimatedCost * (1 + percentage/100)
	return math.Round(amount*100) / 100
}

// Normalize fills documented defaults in place: trims text fields, defaults
// the schedule amount to the estimated cost, and derives missing bidder
// amounts from their percentages. Ingestion output goes through here before
// validation or preparation.
func Normalize(rec *TenderRecord) {
	if rec == nil {
		return
	}

	rec.NITNumber = strings.TrimSpace(rec.NITNumber)
	rec.WorkName = strings.TrimSpace(rec.WorkName)
	rec.EEName = strings.TrimSpace(rec.EEName)
	rec.TenderDate = strings.TrimSpace(rec.TenderDate)

	if rec.ScheduleAmount == 0 {
		rec.ScheduleAmount = rec.EstimatedCost
	}

	for i := range rec.Bidders {
		b := &rec.Bidders[i]
		b.Name = strings.TrimSpace(b.Name)
		b.Contact = strings.TrimSpace(b.Contact)
		if b.BidAmount == 0 {
			b.BidAmount = DeriveBidAmount(rec.EstimatedCost, b.Percentage)
		}
	}
}
