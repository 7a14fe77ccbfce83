package services

import (
	"bytes"
	"fmt"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"
)

// GenerateComparativeExcel creates a comparative-statement workbook for a
// tender record and returns the file contents. Unlike the LaTeX path it
// works on plain (unescaped) text, so it sorts and formats the bidders
// directly instead of going through Prepare.
func GenerateComparativeExcel(rec TenderRecord, cfg StatutoryConfig, now time.Time) ([]byte, error) {
	sorted := make([]Bidder, len(rec.Bidders))
	copy(sorted, rec.Bidders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BidAmount < sorted[j].BidAmount
	})

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Comparative Statement"
	defaultSheet := f.GetSheetName(0)
	if err := f.SetSheetName(defaultSheet, sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E"}
	widths := []float64{8, 42, 16, 16, 16}
	for i, col := range columns {
		if err := f.SetColWidth(sheetName, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	labelStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create label style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Office header + document title, merged across the table width.
	if err := f.MergeCell(sheetName, "A1", "E1"); err != nil {
		return nil, fmt.Errorf("merge title cells: %w", err)
	}
	if err := f.MergeCell(sheetName, "A2", "E2"); err != nil {
		return nil, fmt.Errorf("merge subtitle cells: %w", err)
	}
	f.SetCellValue(sheetName, "A1", cfg.OfficeHeader)
	f.SetCellValue(sheetName, "A2", cfg.DocumentTitle)
	f.SetCellStyle(sheetName, "A1", "E2", titleStyle)

	// Work details block.
	details := [][2]any{
		{"NIT No.", rec.NITNumber},
		{"Work", rec.WorkName},
		{"Estimated Cost", FormatINR(rec.EstimatedCost)},
		{"Earnest Money", FormatINR(rec.EarnestMoney)},
		{"Time of Completion", fmt.Sprintf("%d months", rec.TimeOfCompletion)},
		{"Date", FormatDateStatutory(now)},
	}
	rowNum := 4
	for _, d := range details {
		labelCell := fmt.Sprintf("A%d", rowNum)
		f.SetCellValue(sheetName, labelCell, d[0])
		f.SetCellStyle(sheetName, labelCell, labelCell, labelStyle)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), d[1])
		rowNum++
	}

	// Bidder table.
	rowNum++
	headers := []string{"S.No.", "Name of Bidder", "Estimated Cost", "Percentage", "Bid Amount"}
	for i, h := range headers {
		f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columns[i], rowNum), h)
	}
	f.SetCellStyle(sheetName,
		fmt.Sprintf("A%d", rowNum), fmt.Sprintf("E%d", rowNum), headerStyle)
	rowNum++

	for i, b := range sorted {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), b.Name)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", rowNum), FormatCurrencyTruncated(rec.EstimatedCost))
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", rowNum), FormatPercentageDisplay(b.Percentage))
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", rowNum), FormatCurrencyTruncated(b.BidAmount))
		rowNum++
	}

	// Result block.
	rowNum++
	if len(sorted) > 0 {
		lowest := sorted[0]
		savings := rec.EstimatedCost - lowest.BidAmount
		savingsPct := 0.0
		if rec.EstimatedCost > 0 {
			savingsPct = abs(savings) / rec.EstimatedCost * 100
		}
		resultLabel := "Excess"
		if savings > 0 {
			resultLabel = "Savings"
		}

		results := [][2]any{
			{"Lowest Bidder", lowest.Name},
			{"Lowest Amount", FormatCurrencyTruncated(lowest.BidAmount)},
			{"Amount in Words", NumberToWords(lowest.BidAmount)},
			{resultLabel, fmt.Sprintf("%s (%.2f%%)", FormatCurrencyTruncated(abs(savings)), savingsPct)},
		}
		for _, r := range results {
			labelCell := fmt.Sprintf("A%d", rowNum)
			f.SetCellValue(sheetName, labelCell, r[0])
			f.SetCellStyle(sheetName, labelCell, labelCell, labelStyle)
			f.SetCellValue(sheetName, fmt.Sprintf("B%d", rowNum), r[1])
			rowNum++
		}
	} else {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", rowNum), "No tenders were received against this NIT.")
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
