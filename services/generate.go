package services

import (
	"errors"
	"fmt"
	"time"
)

// DocType identifies one of the four statutory documents.
type DocType string

const (
	DocComparativeStatement DocType = "comparative_statement"
	DocLetterOfAcceptance   DocType = "letter_of_acceptance"
	DocScrutinySheet        DocType = "scrutiny_sheet"
	DocWorkOrder            DocType = "work_order"
)

// DocTypes lists every generatable document in display order.
var DocTypes = []DocType{
	DocComparativeStatement,
	DocLetterOfAcceptance,
	DocScrutinySheet,
	DocWorkOrder,
}

// DisplayName returns the human-readable document name.
func (d DocType) DisplayName() string {
	switch d {
	case DocComparativeStatement:
		return "Comparative Statement"
	case DocLetterOfAcceptance:
		return "Letter of Acceptance"
	case DocScrutinySheet:
		return "Scrutiny Sheet"
	case DocWorkOrder:
		return "Work Order"
	default:
		return string(d)
	}
}

// Valid reports whether d is one of the known document types.
func (d DocType) Valid() bool {
	switch d {
	case DocComparativeStatement, DocLetterOfAcceptance, DocScrutinySheet, DocWorkOrder:
		return true
	}
	return false
}

// ErrTemplateNotFound is returned (wrapped) when no template exists for the
// requested document type. It is recoverable: the caller decides whether to
// fall back or surface it.
var ErrTemplateNotFound = errors.New("template not found")

// TemplateLookup resolves a document type to template text. The store-backed
// implementation lives in the templates package.
type TemplateLookup interface {
	TemplateText(docType DocType) (string, error)
}

// GenerateDocument produces the final LaTeX source for one document: looks
// up the template, prepares the view model and renders. It performs no file
// I/O and does not invoke the typesetter; persisting and compiling the
// returned text is the caller's job.
func GenerateDocument(docType DocType, rec TenderRecord, cfg StatutoryConfig, lookup TemplateLookup, now time.Time) (string, error) {
	if !docType.Valid() {
		return "", fmt.Errorf("unknown document type %q: %w", docType, ErrTemplateNotFound)
	}

	tmpl, err := lookup.TemplateText(docType)
	if err != nil {
		return "", fmt.Errorf("lookup template for %s: %w", docType, err)
	}

	model := Prepare(rec, cfg, now)
	return RenderTemplate(tmpl, model), nil
}
