package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderdocs/services"
	"tenderdocs/templates"
)

// HandleDocumentDownload generates one statutory document for a work and
// serves it as a .tex download.
func HandleDocumentDownload(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		workID := e.Request.PathValue("id")
		docType := services.DocType(e.Request.PathValue("docType"))
		if workID == "" {
			return e.String(http.StatusBadRequest, "Missing work ID")
		}
		if !docType.Valid() {
			return e.String(http.StatusBadRequest, fmt.Sprintf("Unknown document type %q", docType))
		}

		rec, err := services.BuildTenderRecord(app, workID)
		if err != nil {
			log.Printf("doc_download: work not found %s: %v", workID, err)
			return e.String(http.StatusNotFound, "Work not found")
		}

		output, err := services.GenerateDocument(docType, *rec, services.DefaultStatutoryConfig(), templates.NewStore(app), time.Now())
		if err != nil {
			if errors.Is(err, services.ErrTemplateNotFound) {
				return e.String(http.StatusNotFound, fmt.Sprintf("No template for %q", docType))
			}
			log.Printf("doc_download: generation failed for %s/%s: %v", workID, docType, err)
			return e.String(http.StatusInternalServerError, "Document generation failed")
		}

		if services.HasUnresolvedMarkers(output) {
			log.Printf("doc_download: output for %s/%s contains unresolved markers", workID, docType)
		}

		fileName := services.SanitizeFilename(fmt.Sprintf("%s_%s", docType, rec.NITNumber)) + ".tex"
		e.Response.Header().Set("Content-Type", "application/x-tex")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, fileName))
		_, err = e.Response.Write([]byte(output))
		return err
	}
}

// HandleDocumentPreview returns the rendered document text as JSON so the UI
// can show it before download. Unresolved markers are surfaced so the user
// can fix the template or the work data.
func HandleDocumentPreview(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		workID := e.Request.PathValue("id")
		docType := services.DocType(e.Request.PathValue("docType"))
		if workID == "" {
			return e.String(http.StatusBadRequest, "Missing work ID")
		}
		if !docType.Valid() {
			return e.String(http.StatusBadRequest, fmt.Sprintf("Unknown document type %q", docType))
		}

		rec, err := services.BuildTenderRecord(app, workID)
		if err != nil {
			return e.String(http.StatusNotFound, "Work not found")
		}

		output, err := services.GenerateDocument(docType, *rec, services.DefaultStatutoryConfig(), templates.NewStore(app), time.Now())
		if err != nil {
			if errors.Is(err, services.ErrTemplateNotFound) {
				return e.String(http.StatusNotFound, fmt.Sprintf("No template for %q", docType))
			}
			log.Printf("doc_preview: generation failed for %s/%s: %v", workID, docType, err)
			return e.String(http.StatusInternalServerError, "Document generation failed")
		}

		return e.JSON(http.StatusOK, map[string]any{
			"doc_type":           docType,
			"content":            output,
			"unresolved_markers": services.HasUnresolvedMarkers(output),
		})
	}
}
