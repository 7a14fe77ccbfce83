package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderdocs/services"
	"tenderdocs/templates"
)

// SeedTemplates inserts the embedded default template for every document
// type that has no stored copy yet. Existing (possibly edited) records are
// left alone.
func SeedTemplates(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId(templates.CollectionName)
	if err != nil {
		return fmt.Errorf("find %s collection: %w", templates.CollectionName, err)
	}

	for _, docType := range services.DocTypes {
		existing, err := app.FindRecordsByFilter(
			templates.CollectionName,
			"doc_type = {:docType}",
			"", 1, 0,
			map[string]any{"docType": string(docType)},
		)
		if err == nil && len(existing) > 0 {
			continue
		}

		content, ok := templates.Default(docType)
		if !ok {
			return fmt.Errorf("no embedded default template for %s", docType)
		}

		record := core.NewRecord(col)
		record.Set("doc_type", string(docType))
		record.Set("content", content)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed template %s: %w", docType, err)
		}
		log.Printf("Seeded default template for %s", docType)
	}

	return nil
}

// SeedBidderProfiles inserts a starter contractor directory on first run so
// manual bidder entry has names to pick from. No-op once any profile exists.
func SeedBidderProfiles(app *pocketbase.PocketBase) error {
	col, err := app.FindCollectionByNameOrId("bidder_profiles")
	if err != nil {
		return fmt.Errorf("find bidder_profiles collection: %w", err)
	}

	existing, err := app.FindRecordsByFilter("bidder_profiles", "1=1", "", 1, 0, nil)
	if err == nil && len(existing) > 0 {
		return nil
	}

	starter := []struct {
		name    string
		contact string
	}{
		{"M/s Rajasthan Electricals", "0294-2412345"},
		{"M/s Mewar Construction Co.", "0294-2467890"},
		{"M/s Aravalli Infra Works", "0294-2498765"},
	}

	for _, p := range starter {
		record := core.NewRecord(col)
		record.Set("name", p.name)
		record.Set("contact", p.contact)
		if err := app.Save(record); err != nil {
			return fmt.Errorf("seed bidder profile %q: %w", p.name, err)
		}
	}
	log.Printf("Seeded %d starter bidder profiles", len(starter))
	return nil
}
