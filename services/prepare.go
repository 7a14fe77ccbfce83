package services

import (
	"fmt"
	"sort"
	"strconv"
	"time"
)

// BidderView is one bidder as it appears in a rendered document: sorted
// position, escaped name and statutory display strings.
type BidderView struct {
	SerialNumber      int
	Name              string
	Percentage        float64
	PercentageDisplay string
	BidAmount         float64
	FormattedAmount   string
	Contact           string
}

// ViewModel is the fully-resolved data a template renders against. It is
// rebuilt on every generation call and never persisted or cached: bidder
// lists can change between calls for the same NIT number.
type ViewModel struct {
	SortedBidders []BidderView
	LowestBidder  *BidderView

	SavingsAmount     float64
	SavingsPercentage float64
	IsSaving          bool

	scalars  map[string]string
	numerics map[string]float64
}

// Field resolves a scalar placeholder by template name.
func (m ViewModel) Field(name string) (string, bool) {
	v, ok := m.scalars[name]
	return v, ok
}

// Numeric resolves a numeric field used in template comparisons.
func (m ViewModel) Numeric(name string) (float64, bool) {
	v, ok := m.numerics[name]
	return v, ok
}

// Items resolves a named collection for loop expansion. Each element is a
// map of the element's own placeholder names to display strings.
func (m ViewModel) Items(name string) ([]map[string]string, bool) {
	if name != "sorted_bidders" {
		return nil, false
	}
	items := make([]map[string]string, len(m.SortedBidders))
	for i, b := range m.SortedBidders {
		items[i] = map[string]string{
			"serial_number":      strconv.Itoa(b.SerialNumber),
			"name":               b.Name,
			"percentage_display": b.PercentageDisplay,
			"bid_amount":         b.FormattedAmount,
			"formatted_amount":   b.FormattedAmount,
			"contact":            b.Contact,
			"estimated_cost":     m.scalars["estimated_cost"],
		}
	}
	return items, true
}

// Prepare resolves a tender record into a ViewModel. It never fails: a
// record with no bidders produces a degraded model with a nil lowest bidder
// and zero savings, and the templates are expected to branch on that via
// conditionals.
//
// All free-text fields (work name, EE name, bidder names) are escaped for
// LaTeX here, exactly once. The statutory literals from cfg are trusted
// constants and are injected unescaped.
func Prepare(rec TenderRecord, cfg StatutoryConfig, now time.Time) ViewModel {
	model := ViewModel{
		scalars:  make(map[string]string),
		numerics: make(map[string]float64),
	}

	// Stable sort keeps input order for equal bids, so re-running the same
	// record always produces the same document.
	sorted := make([]Bidder, len(rec.Bidders))
	copy(sorted, rec.Bidders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BidAmount < sorted[j].BidAmount
	})

	model.SortedBidders = make([]BidderView, len(sorted))
	for i, b := range sorted {
		model.SortedBidders[i] = BidderView{
			SerialNumber:      i + 1,
			Name:              EscapeLaTeX(b.Name),
			Percentage:        b.Percentage,
			PercentageDisplay: FormatPercentageDisplay(b.Percentage),
			BidAmount:         b.BidAmount,
			FormattedAmount:   FormatCurrencyTruncated(b.BidAmount),
			Contact:           EscapeLaTeX(b.Contact),
		}
	}
	if len(model.SortedBidders) > 0 {
		model.LowestBidder = &model.SortedBidders[0]
	}

	if model.LowestBidder != nil {
		savings := rec.EstimatedCost - model.LowestBidder.BidAmount
		model.SavingsAmount = savings
		model.IsSaving = savings > 0
		if rec.EstimatedCost > 0 {
			model.SavingsPercentage = abs(savings) / rec.EstimatedCost * 100
		}
	}

	eeName := rec.EEName
	if eeName == "" {
		eeName = cfg.DefaultEEName
	}

	scheduleAmount := rec.ScheduleAmount
	if scheduleAmount == 0 {
		scheduleAmount = rec.EstimatedCost
	}

	currentDate := FormatDateStatutory(now)
	tenderDate := NormalizeDateStatutory(rec.TenderDate)
	if tenderDate == "" {
		tenderDate = currentDate
	}

	s := model.scalars
	s["nit_number"] = rec.NITNumber
	s["work_name"] = EscapeLaTeX(rec.WorkName)
	s["estimated_cost"] = FormatCurrencyTruncated(rec.EstimatedCost)
	s["estimated_cost_words"] = NumberToWords(rec.EstimatedCost)
	s["schedule_amount"] = FormatCurrencyTruncated(scheduleAmount)
	s["earnest_money"] = FormatCurrencyTruncated(rec.EarnestMoney)
	s["time_of_completion"] = strconv.Itoa(rec.TimeOfCompletion)
	s["ee_name"] = EscapeLaTeX(eeName)
	s["tender_date"] = tenderDate
	s["calling_date"] = tenderDate
	s["receipt_date"] = tenderDate
	s["current_date"] = currentDate
	s["current_date_full"] = FormatDateFull(now)
	s["total_bidders"] = strconv.Itoa(len(rec.Bidders))
	s["savings_amount"] = FormatCurrencyTruncated(abs(model.SavingsAmount))
	s["savings_percentage"] = fmt.Sprintf("%.2f", model.SavingsPercentage)

	// Statutory literals: trusted constants, not user input, not escaped.
	s["office_header"] = cfg.OfficeHeader
	s["document_title"] = cfg.DocumentTitle
	s["department"] = cfg.Department
	s["location"] = cfg.Location
	s["item_number"] = cfg.ItemNumber
	s["contingencies_note"] = cfg.ContingenciesNote
	s["nil_amount"] = cfg.NilAmount

	if lb := model.LowestBidder; lb != nil {
		s["lowest_bidder"] = lb.Name
		s["lowest_bidder_name"] = lb.Name
		s["lowest_bidder_amount"] = lb.FormattedAmount
		s["lowest_bidder_amount_words"] = NumberToWords(lb.BidAmount)
		s["lowest_bidder_percentage_display"] = lb.PercentageDisplay
	}

	n := model.numerics
	n["estimated_cost"] = rec.EstimatedCost
	n["schedule_amount"] = scheduleAmount
	n["earnest_money"] = rec.EarnestMoney
	n["time_of_completion"] = float64(rec.TimeOfCompletion)
	n["total_bidders"] = float64(len(rec.Bidders))
	n["savings_amount"] = model.SavingsAmount
	n["savings_percentage"] = model.SavingsPercentage
	if model.IsSaving {
		n["is_saving"] = 1
	} else {
		n["is_saving"] = 0
	}
	if lb := model.LowestBidder; lb != nil {
		n["lowest_bidder"] = 1
		n["lowest_bidder_amount"] = lb.BidAmount
		n["lowest_bidder_percentage"] = lb.Percentage
	}

	return model
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
