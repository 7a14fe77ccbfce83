// Package collections programmatically creates the pocketbase schema for
// the tender document system: works, bidders, bidder profiles and editable
// document templates.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup ensures the works, bidders, bidder_profiles and doc_templates
// collections exist.
func Setup(app *pocketbase.PocketBase) {
	works := ensureCollection(app, "works", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "nit_number", Required: true})
		c.Fields.Add(&core.TextField{Name: "work_name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "estimated_cost", Required: true})
		c.Fields.Add(&core.NumberField{Name: "schedule_amount", Required: false})
		c.Fields.Add(&core.NumberField{Name: "earnest_money", Required: false})
		c.Fields.Add(&core.NumberField{Name: "time_of_completion", Required: false})
		c.Fields.Add(&core.TextField{Name: "ee_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "tender_date", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "bidders", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "work",
			Required:      true,
			CollectionId:  works.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "percentage", Required: false})
		c.Fields.Add(&core.NumberField{Name: "bid_amount", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
	})

	ensureCollection(app, "bidder_profiles", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "contact", Required: false})
		c.Fields.Add(&core.TextField{Name: "address", Required: false})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "doc_templates", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "doc_type", Required: true})
		c.Fields.Add(&core.TextField{Name: "content", Required: true, Max: 50000})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
