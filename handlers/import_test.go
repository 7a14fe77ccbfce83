package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/xuri/excelize/v2"

	"tenderdocs/testhelpers"
)

// buildImportRequest creates a multipart upload of an NIT workbook.
func buildImportRequest(t *testing.T, rows [][]string) *http.Request {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, val := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			f.SetCellValue(sheet, cell, val)
		}
	}
	var wb bytes.Buffer
	if err := f.Write(&wb); err != nil {
		t.Fatalf("write workbook: %v", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "nit_import.xlsx")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(wb.Bytes()); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/works/import", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func TestHandleWorkImport(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := buildImportRequest(t, [][]string{
		{"NIT Number:", "27/2024-25"},
		{"Name of Work:", "Providing and erecting 11 KV line"},
		{"Estimated Cost:", "10,00,000"},
		{"Earnest Money:", "20000"},
		{"Time of Completion:", "3"},
		{},
		{"Name of Bidder", "Percentage", "Bid Amount"},
		{"M/s Alpha", "-5", ""},
		{"M/s Beta", "2", "1020000"},
	})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleWorkImport(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}

	work, err := app.FindRecordById("works", resp.ID)
	if err != nil {
		t.Fatalf("imported work not found: %v", err)
	}
	if work.GetString("nit_number") != "27/2024-25" {
		t.Errorf("nit_number = %q", work.GetString("nit_number"))
	}

	bidders, err := app.FindRecordsByFilter("bidders", "work = {:w}", "sort_order", 0, 0, map[string]any{"w": resp.ID})
	if err != nil {
		t.Fatalf("load bidders: %v", err)
	}
	if len(bidders) != 2 {
		t.Fatalf("expected 2 bidders, got %d", len(bidders))
	}
	if bidders[0].GetFloat("bid_amount") != 950000 {
		t.Errorf("derived bid_amount = %v, want 950000", bidders[0].GetFloat("bid_amount"))
	}
}

func TestHandleWorkImportInvalidRecord(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := buildImportRequest(t, [][]string{
		{"NIT Number:", "not a nit"},
		{"Name of Work:", "short"},
	})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleWorkImport(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422, body: %s", rec.Code, rec.Body.String())
	}
}

func TestHandleWorkImportNoFile(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/works/import", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleWorkImport(app)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}
