// Package views renders the small HTML surface of the app: the works
// overview and the entry form shell. Pages are templ components written
// directly against the runtime.
package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// WorkRow is one line of the works overview table.
type WorkRow struct {
	ID            string
	NITNumber     string
	WorkName      string
	EstimatedCost string
	BidderCount   int
}

// WorkListPage renders the works overview with per-work document links.
func WorkListPage(rows []WorkRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writePageTop(w, "Tender Works"); err != nil {
			return err
		}

		if _, err := io.WriteString(w, `<table><thead><tr><th>NIT No.</th><th>Name of Work</th><th>Estimated Cost</th><th>Bidders</th><th></th></tr></thead><tbody>`); err != nil {
			return err
		}
		for _, r := range rows {
			row := fmt.Sprintf(
				`<tr><td>%s</td><td>%s</td><td>%s</td><td>%d</td><td><a href="/works/%s">Open</a> <a href="/works/%s/export/excel">Excel</a> <a href="/works/%s/export/pdf">PDF</a></td></tr>`,
				templ.EscapeString(r.NITNumber),
				templ.EscapeString(r.WorkName),
				templ.EscapeString(r.EstimatedCost),
				r.BidderCount,
				templ.EscapeString(r.ID),
				templ.EscapeString(r.ID),
				templ.EscapeString(r.ID),
			)
			if _, err := io.WriteString(w, row); err != nil {
				return err
			}
		}
		if len(rows) == 0 {
			if _, err := io.WriteString(w, `<tr><td colspan="5">No works yet. Create one below or import an NIT workbook.</td></tr>`); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</tbody></table>`); err != nil {
			return err
		}

		if err := writeWorkForm(w); err != nil {
			return err
		}
		return writePageBottom(w)
	})
}

func writePageTop(w io.Writer, title string) error {
	_, err := io.WriteString(w, fmt.Sprintf(
		`<!DOCTYPE html><html><head><meta charset="utf-8"><title>%s</title><link rel="stylesheet" href="/static/app.css"></head><body><h1>%s</h1>`,
		templ.EscapeString(title), templ.EscapeString(title),
	))
	return err
}

func writeWorkForm(w io.Writer) error {
	_, err := io.WriteString(w, `
<h2>New Work</h2>
<form method="post" action="/works">
<label>NIT Number <input name="nit_number" required></label>
<label>Name of Work <textarea name="work_name" required></textarea></label>
<label>Estimated Cost <input name="estimated_cost" required></label>
<label>Schedule Amount <input name="schedule_amount"></label>
<label>Earnest Money <input name="earnest_money"></label>
<label>Time of Completion (months) <input name="time_of_completion"></label>
<label>Executive Engineer <input name="ee_name"></label>
<label>Tender Date <input name="tender_date" placeholder="DD-MM-YYYY"></label>
<button type="submit">Save</button>
</form>
<h2>Import NIT Workbook</h2>
<form method="post" action="/works/import" enctype="multipart/form-data">
<input type="file" name="file" accept=".xlsx">
<button type="submit">Upload</button>
</form>`)
	return err
}

func writePageBottom(w io.Writer) error {
	_, err := io.WriteString(w, `</body></html>`)
	return err
}
