package services

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestGenerateComparativeExcel(t *testing.T) {
	data, err := GenerateComparativeExcel(testRecord(), DefaultStatutoryConfig(), testNow)
	if err != nil {
		t.Fatalf("GenerateComparativeExcel failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet != "Comparative Statement" {
		t.Errorf("sheet name = %q", sheet)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}

	flat := flattenRows(rows)
	for _, want := range []string{
		"OFFICE OF THE EXECUTIVE ENGINEER PWD ELECTRIC DIVISION, UDAIPUR",
		"COMPARATIVE STATEMENT OF TENDERS",
		"27/2024-25",
		// Names are plain text in the workbook, not LaTeX-escaped.
		"M/s Beta & Co",
		"M/s Alpha",
		"5.00 BELOW",
		"2.00 ABOVE",
		"Nine Lakh Fifty Thousand Rupees Only",
		"Savings",
	} {
		if !containsCell(flat, want) {
			t.Errorf("workbook missing cell %q", want)
		}
	}

	// Lowest bidder sorts first in the table.
	alphaRow, betaRow := findCellRow(rows, "M/s Alpha"), findCellRow(rows, "M/s Beta & Co")
	if alphaRow < 0 || betaRow < 0 || alphaRow > betaRow {
		t.Errorf("expected M/s Alpha (row %d) above M/s Beta (row %d)", alphaRow, betaRow)
	}
}

func TestGenerateComparativeExcelNoBidders(t *testing.T) {
	rec := testRecord()
	rec.Bidders = nil

	data, err := GenerateComparativeExcel(rec, DefaultStatutoryConfig(), testNow)
	if err != nil {
		t.Fatalf("GenerateComparativeExcel failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not a readable workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	if !containsCell(flattenRows(rows), "No tenders were received against this NIT.") {
		t.Error("expected the no-tenders note")
	}
}

func flattenRows(rows [][]string) []string {
	var flat []string
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return flat
}

func containsCell(cells []string, want string) bool {
	for _, c := range cells {
		if c == want {
			return true
		}
	}
	return false
}

func findCellRow(rows [][]string, want string) int {
	for i, row := range rows {
		for _, c := range row {
			if c == want {
				return i
			}
		}
	}
	return -1
}
