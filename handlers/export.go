package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderdocs/services"
)

// HandleExportExcel serves the comparative statement as an Excel workbook.
func HandleExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		workID := e.Request.PathValue("id")
		if workID == "" {
			return e.String(http.StatusBadRequest, "Missing work ID")
		}

		rec, err := services.BuildTenderRecord(app, workID)
		if err != nil {
			return e.String(http.StatusNotFound, "Work not found")
		}

		data, err := services.GenerateComparativeExcel(*rec, services.DefaultStatutoryConfig(), time.Now())
		if err != nil {
			log.Printf("excel_export: failed for %s: %v", workID, err)
			return e.String(http.StatusInternalServerError, "Excel export failed")
		}

		fileName := services.SanitizeFilename("comparative_"+rec.NITNumber) + ".xlsx"
		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
		_, err = e.Response.Write(data)
		return err
	}
}

// HandleExportPDF serves the comparative statement as a PDF.
func HandleExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		workID := e.Request.PathValue("id")
		if workID == "" {
			return e.String(http.StatusBadRequest, "Missing work ID")
		}

		rec, err := services.BuildTenderRecord(app, workID)
		if err != nil {
			return e.String(http.StatusNotFound, "Work not found")
		}

		data, err := services.GenerateComparativePDF(*rec, services.DefaultStatutoryConfig(), time.Now())
		if err != nil {
			log.Printf("pdf_export: failed for %s: %v", workID, err)
			return e.String(http.StatusInternalServerError, "PDF export failed")
		}

		fileName := services.SanitizeFilename("comparative_"+rec.NITNumber) + ".pdf"
		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
		_, err = e.Response.Write(data)
		return err
	}
}
