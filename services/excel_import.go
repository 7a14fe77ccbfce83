package services

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ImportError is a single field-level problem found in an uploaded sheet.
// Row is 1-based as shown in the spreadsheet application.
type ImportError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ImportResult is the outcome of parsing an uploaded NIT workbook. The
// record is best-effort: ingestion delivers whatever it could read and the
// caller decides, via ValidateTender, whether it is usable.
type ImportResult struct {
	Record   TenderRecord  `json:"record"`
	Errors   []ImportError `json:"errors"`
	FileName string        `json:"-"`
}

// workFieldLabels maps sheet labels (lowercased) to TenderRecord fields for
// the vertical label/value layout of the standard NIT sheet.
var workFieldLabels = map[string]string{
	"nit number":         "nit_number",
	"nit no":             "nit_number",
	"nit no.":            "nit_number",
	"work name":          "work_name",
	"name of work":       "work_name",
	"estimated cost":     "estimated_cost",
	"schedule amount":    "schedule_amount",
	"earnest money":      "earnest_money",
	"time of completion": "time_of_completion",
	"ee name":            "ee_name",
	"executive engineer": "ee_name",
	"date":               "date",
	"tender date":        "date",
}

// bidderHeaderLabels maps bidder-table column headers to bidder fields.
var bidderHeaderLabels = map[string]string{
	"bidder name":    "name",
	"name of bidder": "name",
	"name":           "name",
	"percentage":     "percentage",
	"percentage (%)": "percentage",
	"bid amount":     "bid_amount",
	"contact":        "contact",
}

// ParseNITWorkbook reads the standard NIT workbook layout from the first
// sheet: a vertical label/value block of work fields, then a bidder table
// whose header row starts with a recognized bidder column label. Unreadable
// cells are reported per-row; parsing itself only fails when the file is
// not a workbook at all.
func ParseNITWorkbook(file io.Reader, fileName string) (*ImportResult, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheetName)
	}

	result := &ImportResult{FileName: fileName}

	bidderHeaderRow := -1
	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		if isBidderHeader(row) {
			bidderHeaderRow = i
			break
		}
		if len(row) < 2 {
			continue
		}
		field, known := workFieldLabels[normalizeLabel(row[0])]
		if !known {
			continue
		}
		applyWorkField(result, field, strings.TrimSpace(row[1]), i+1)
	}

	if bidderHeaderRow >= 0 {
		parseBidderTable(result, rows, bidderHeaderRow)
	}

	Normalize(&result.Record)
	return result, nil
}

// applyWorkField sets one parsed work field, recording an ImportError when
// the value cannot be interpreted.
func applyWorkField(result *ImportResult, field, value string, row int) {
	rec := &result.Record
	switch field {
	case "nit_number":
		rec.NITNumber = value
	case "work_name":
		rec.WorkName = value
	case "ee_name":
		rec.EEName = value
	case "date":
		rec.TenderDate = value
	case "time_of_completion":
		n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.ToLower(value), "months")))
		if err != nil {
			result.Errors = append(result.Errors, ImportError{Row: row, Field: field, Message: fmt.Sprintf("not a number of months: %q", value)})
			return
		}
		rec.TimeOfCompletion = n
	case "estimated_cost", "schedule_amount", "earnest_money":
		amount, ok := ParseAmount(value)
		if !ok {
			result.Errors = append(result.Errors, ImportError{Row: row, Field: field, Message: fmt.Sprintf("not an amount: %q", value)})
			return
		}
		switch field {
		case "estimated_cost":
			rec.EstimatedCost = amount
		case "schedule_amount":
			rec.ScheduleAmount = amount
		case "earnest_money":
			rec.EarnestMoney = amount
		}
	}
}

// parseBidderTable reads the bidder rows below the header at headerRow.
func parseBidderTable(result *ImportResult, rows [][]string, headerRow int) {
	header := rows[headerRow]
	fieldByCol := make(map[int]string, len(header))
	for col, h := range header {
		if field, ok := bidderHeaderLabels[normalizeLabel(h)]; ok {
			fieldByCol[col] = field
		}
	}

	for i := headerRow + 1; i < len(rows); i++ {
		row := rows[i]
		if isBlankRow(row) {
			continue
		}

		var b Bidder
		rowOK := true
		for col, field := range fieldByCol {
			if col >= len(row) {
				continue
			}
			value := strings.TrimSpace(row[col])
			switch field {
			case "name":
				b.Name = value
			case "contact":
				b.Contact = value
			case "percentage":
				pct, err := parsePercentage(value)
				if err != nil {
					result.Errors = append(result.Errors, ImportError{Row: i + 1, Field: field, Message: err.Error()})
					rowOK = false
					continue
				}
				b.Percentage = pct
			case "bid_amount":
				if value == "" {
					continue
				}
				amount, ok := ParseAmount(value)
				if !ok {
					result.Errors = append(result.Errors, ImportError{Row: i + 1, Field: field, Message: fmt.Sprintf("not an amount: %q", value)})
					rowOK = false
					continue
				}
				b.BidAmount = amount
			}
		}

		if b.Name == "" {
			result.Errors = append(result.Errors, ImportError{Row: i + 1, Field: "name", Message: "bidder name is required"})
			continue
		}
		if rowOK {
			result.Record.Bidders = append(result.Record.Bidders, b)
		}
	}
}

// parsePercentage reads a signed deviation, accepting "5.5", "-3%", "2.25 %"
// and the words "above"/"below" as direction markers.
func parsePercentage(value string) (float64, error) {
	if value == "" {
		return 0, nil
	}

	lower := strings.ToLower(value)
	negative := strings.Contains(lower, "below")
	cleaned := strings.NewReplacer("%", "", "above", "", "below", "").Replace(lower)
	cleaned = strings.TrimSpace(cleaned)

	pct, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("not a percentage: %q", value)
	}
	if negative && pct > 0 {
		pct = -pct
	}
	return pct, nil
}

// isBidderHeader reports whether a row is the bidder table header: it must
// name a bidder column plus at least one of the numeric columns, so a plain
// work-field label row is never mistaken for it.
func isBidderHeader(row []string) bool {
	hasName, hasNumeric := false, false
	for _, cell := range row {
		switch bidderHeaderLabels[normalizeLabel(cell)] {
		case "name":
			hasName = true
		case "percentage", "bid_amount":
			hasNumeric = true
		}
	}
	return hasName && hasNumeric
}

func normalizeLabel(s string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), ":")))
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
