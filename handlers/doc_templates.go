package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderdocs/services"
	"tenderdocs/templates"
)

// HandleTemplateView returns the active template text for a document type,
// falling back to the built-in default when no override is stored.
func HandleTemplateView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		docType := services.DocType(e.Request.PathValue("docType"))
		if !docType.Valid() {
			return e.String(http.StatusBadRequest, fmt.Sprintf("Unknown document type %q", docType))
		}

		content, err := templates.NewStore(app).TemplateText(docType)
		if err != nil {
			log.Printf("template_view: no template for %s: %v", docType, err)
			return e.String(http.StatusNotFound, fmt.Sprintf("No template for %q", docType))
		}

		return e.JSON(http.StatusOK, map[string]any{
			"doc_type": docType,
			"content":  content,
		})
	}
}

// HandleTemplateUpdate stores an edited template, replacing any existing
// override for the same document type.
func HandleTemplateUpdate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		docType := services.DocType(e.Request.PathValue("docType"))
		if !docType.Valid() {
			return e.String(http.StatusBadRequest, fmt.Sprintf("Unknown document type %q", docType))
		}

		if err := e.Request.ParseForm(); err != nil {
			return e.String(http.StatusBadRequest, "Invalid form data")
		}
		content := e.Request.FormValue("content")
		if content == "" {
			return e.String(http.StatusBadRequest, "Template content is required")
		}

		existing, err := app.FindRecordsByFilter(
			templates.CollectionName,
			"doc_type = {:docType}",
			"", 1, 0,
			map[string]any{"docType": string(docType)},
		)
		if err != nil {
			log.Printf("template_update: store lookup failed for %s: %v", docType, err)
		}

		var record *core.Record
		if len(existing) > 0 {
			record = existing[0]
		} else {
			col, err := app.FindCollectionByNameOrId(templates.CollectionName)
			if err != nil {
				log.Printf("template_update: templates collection missing: %v", err)
				return e.String(http.StatusInternalServerError, "Failed to save template")
			}
			record = core.NewRecord(col)
			record.Set("doc_type", string(docType))
		}

		record.Set("content", content)
		if err := app.Save(record); err != nil {
			log.Printf("template_update: failed to save %s: %v", docType, err)
			return e.String(http.StatusInternalServerError, "Failed to save template")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"doc_type": docType,
			"id":       record.Id,
		})
	}
}
