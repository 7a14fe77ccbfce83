// Package templates owns the statutory LaTeX templates: embedded defaults
// for each document type, plus a store-backed lookup so a division can edit
// its templates without redeploying.
package templates

import (
	"embed"
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"tenderdocs/services"
)

//go:embed defaults/*.tex
var defaultsFS embed.FS

// CollectionName is the pocketbase collection holding editable templates.
const CollectionName = "doc_templates"

// Default returns the embedded default template for a document type.
func Default(docType services.DocType) (string, bool) {
	data, err := defaultsFS.ReadFile(fmt.Sprintf("defaults/%s.tex", docType))
	if err != nil {
		return "", false
	}
	return string(data), true
}

// Store resolves template text from the doc_templates collection, falling
// back to the embedded default when no edited copy exists. It implements
// services.TemplateLookup.
type Store struct {
	app *pocketbase.PocketBase
}

// NewStore returns a template store backed by the given app.
func NewStore(app *pocketbase.PocketBase) *Store {
	return &Store{app: app}
}

// TemplateText returns the template for a document type, preferring an
// edited store copy over the embedded default.
func (s *Store) TemplateText(docType services.DocType) (string, error) {
	records, err := s.app.FindRecordsByFilter(
		CollectionName,
		"doc_type = {:docType}",
		"", 1, 0,
		map[string]any{"docType": string(docType)},
	)
	if err != nil {
		log.Printf("templates: store lookup failed for %s, using default: %v", docType, err)
	}
	if err == nil && len(records) > 0 {
		if content := records[0].GetString("content"); content != "" {
			return content, nil
		}
	}

	content, ok := Default(docType)
	if !ok {
		return "", fmt.Errorf("no template for document type %q: %w", docType, services.ErrTemplateNotFound)
	}
	return content, nil
}

// StaticLookup serves templates from an in-memory map. Used by tests and by
// callers that render against a fixed template set with no store.
type StaticLookup map[services.DocType]string

// TemplateText implements services.TemplateLookup.
func (l StaticLookup) TemplateText(docType services.DocType) (string, error) {
	if tmpl, ok := l[docType]; ok {
		return tmpl, nil
	}
	return "", fmt.Errorf("no template for document type %q: %w", docType, services.ErrTemplateNotFound)
}
