package main

import (
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"tenderdocs/collections"
	"tenderdocs/handlers"
)

func main() {
	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if err := collections.SeedTemplates(app); err != nil {
			log.Printf("Warning: template seeding failed: %v", err)
		}
		if err := collections.SeedBidderProfiles(app); err != nil {
			log.Printf("Warning: bidder profile seeding failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── Works ────────────────────────────────────────────────
		se.Router.GET("/works", handlers.HandleWorkList(app))
		se.Router.POST("/works", handlers.HandleWorkSave(app))
		se.Router.POST("/works/import", handlers.HandleWorkImport(app))
		se.Router.GET("/works/{id}", handlers.HandleWorkView(app))
		se.Router.DELETE("/works/{id}", handlers.HandleWorkDelete(app))

		// ── Bidders ──────────────────────────────────────────────
		se.Router.POST("/works/{id}/bidders", handlers.HandleBidderAdd(app))
		se.Router.DELETE("/bidders/{id}", handlers.HandleBidderDelete(app))
		se.Router.GET("/bidder-profiles", handlers.HandleBidderProfiles(app))

		// ── Statutory documents ──────────────────────────────────
		se.Router.GET("/works/{id}/documents/{docType}", handlers.HandleDocumentDownload(app))
		se.Router.GET("/works/{id}/documents/{docType}/preview", handlers.HandleDocumentPreview(app))

		// ── Comparative statement exports ────────────────────────
		se.Router.GET("/works/{id}/export/excel", handlers.HandleExportExcel(app))
		se.Router.GET("/works/{id}/export/pdf", handlers.HandleExportPDF(app))

		// ── Template editing ─────────────────────────────────────
		se.Router.GET("/templates/{docType}", handlers.HandleTemplateView(app))
		se.Router.POST("/templates/{docType}", handlers.HandleTemplateUpdate(app))

		// Redirect home to the works list
		se.Router.GET("/", func(e *core.RequestEvent) error {
			return e.Redirect(http.StatusFound, "/works")
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
