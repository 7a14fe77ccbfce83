package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderdocs/services"
)

// HandleWorkImport accepts an uploaded NIT workbook, parses it, and creates
// the work with its bidders. Cell-level problems are returned alongside the
// created record rather than failing the whole upload.
func HandleWorkImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return e.String(http.StatusBadRequest, "No file uploaded")
		}
		defer file.Close()

		result, err := services.ParseNITWorkbook(file, header.Filename)
		if err != nil {
			log.Printf("work_import: failed to parse %s: %v", header.Filename, err)
			return e.String(http.StatusBadRequest, "Could not read the uploaded workbook")
		}

		validation := services.ValidateTender(result.Record)
		if !validation.Valid {
			return e.JSON(http.StatusUnprocessableEntity, map[string]any{
				"record":        result.Record,
				"import_errors": result.Errors,
				"validation":    validation,
			})
		}

		record, err := saveWork(app, result.Record)
		if err != nil {
			log.Printf("work_import: failed to save work from %s: %v", header.Filename, err)
			return e.String(http.StatusInternalServerError, "Failed to save imported work")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"id":            record.Id,
			"import_errors": result.Errors,
			"validation":    validation,
		})
	}
}
