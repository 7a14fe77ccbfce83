package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// GenerateComparativePDF renders the comparative statement directly to PDF
// using maroto/v2. This is the quick on-screen rendition; the LaTeX output
// from GenerateDocument remains the statutory original handed to the
// typesetter.
func GenerateComparativePDF(rec TenderRecord, cfg StatutoryConfig, now time.Time) ([]byte, error) {
	sorted := make([]Bidder, len(rec.Bidders))
	copy(sorted, rec.Bidders)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].BidAmount < sorted[j].BidAmount
	})

	pdfCfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(pdfCfg)

	addStatutoryHeader(m, cfg, now)
	addWorkDetails(m, rec)
	addBidderTable(m, rec, sorted)
	addResultBlock(m, rec, sorted)
	addSignatureBlock(m, rec, cfg)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate comparative statement PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

// addStatutoryHeader adds the office header, document title and date.
func addStatutoryHeader(m core.Maroto, cfg StatutoryConfig, now time.Time) {
	m.AddRows(
		row.New(8).Add(
			col.New(12).Add(
				text.New(cfg.OfficeHeader, props.Text{
					Size:  11,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(7).Add(
			col.New(12).Add(
				text.New(cfg.DocumentTitle, props.Text{
					Size:  10,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(6).Add(
			col.New(12).Add(
				text.New(fmt.Sprintf("Date: %s", FormatDateStatutory(now)), props.Text{
					Size:  8,
					Align: align.Right,
				}),
			),
		),
		row.New(3),
	)
}

// addWorkDetails adds the NIT/work description block.
func addWorkDetails(m core.Maroto, rec TenderRecord) {
	labelStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
	}
	valueStyle := props.Text{
		Size:  8,
		Align: align.Left,
	}

	details := [][2]string{
		{"NIT No.:", rec.NITNumber},
		{"Work:", rec.WorkName},
		{"Estimated Cost:", FormatINR(rec.EstimatedCost)},
		{"Earnest Money:", FormatINR(rec.EarnestMoney)},
		{"Time of Completion:", fmt.Sprintf("%d months", rec.TimeOfCompletion)},
	}
	for _, d := range details {
		m.AddRows(
			row.New(5).Add(
				col.New(3).Add(text.New(d[0], labelStyle)),
				col.New(9).Add(text.New(d[1], valueStyle)),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addBidderTable adds the ranked bidder comparison table.
func addBidderTable(m core.Maroto, rec TenderRecord, sorted []Bidder) {
	headerStyle := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Center,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := props.Cell{BackgroundColor: &props.Color{Red: 51, Green: 51, Blue: 51}}

	m.AddRows(
		row.New(7).Add(
			col.New(1).Add(text.New("S.No.", headerStyle)).WithStyle(&headerCell),
			col.New(5).Add(text.New("Name of Bidder", headerStyle)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Estimated Cost", headerStyle)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Percentage", headerStyle)).WithStyle(&headerCell),
			col.New(2).Add(text.New("Bid Amount", headerStyle)).WithStyle(&headerCell),
		),
	)

	cellStyle := props.Text{Size: 8, Align: align.Center}
	nameStyle := props.Text{Size: 8, Align: align.Left}
	altCell := props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}

	for i, b := range sorted {
		colSerial := col.New(1).Add(text.New(fmt.Sprintf("%d", i+1), cellStyle))
		colName := col.New(5).Add(text.New(b.Name, nameStyle))
		colEstimate := col.New(2).Add(text.New(FormatCurrencyTruncated(rec.EstimatedCost), cellStyle))
		colPct := col.New(2).Add(text.New(FormatPercentageDisplay(b.Percentage), cellStyle))
		colAmount := col.New(2).Add(text.New(FormatCurrencyTruncated(b.BidAmount), cellStyle))

		if i%2 == 1 {
			colSerial.WithStyle(&altCell)
			colName.WithStyle(&altCell)
			colEstimate.WithStyle(&altCell)
			colPct.WithStyle(&altCell)
			colAmount.WithStyle(&altCell)
		}
		m.AddRows(row.New(6).Add(colSerial, colName, colEstimate, colPct, colAmount))
	}

	if len(sorted) == 0 {
		m.AddRows(
			row.New(6).Add(
				col.New(12).Add(text.New("No tenders were received against this NIT.", props.Text{
					Size:  8,
					Style: fontstyle.Italic,
					Align: align.Center,
				})),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addResultBlock adds the lowest bidder summary with amount in words and
// the savings/excess line.
func addResultBlock(m core.Maroto, rec TenderRecord, sorted []Bidder) {
	if len(sorted) == 0 {
		return
	}
	lowest := sorted[0]
	savings := rec.EstimatedCost - lowest.BidAmount
	savingsPct := 0.0
	if rec.EstimatedCost > 0 {
		savingsPct = abs(savings) / rec.EstimatedCost * 100
	}
	resultLabel := "Excess"
	if savings > 0 {
		resultLabel = "Savings"
	}

	labelStyle := props.Text{Size: 8, Style: fontstyle.Bold, Align: align.Left}
	valueStyle := props.Text{Size: 8, Align: align.Left}

	lines := [][2]string{
		{"Lowest Bidder:", lowest.Name},
		{"Lowest Amount:", fmt.Sprintf("%s (%s)", FormatINR(lowest.BidAmount), FormatPercentageDisplay(lowest.Percentage))},
		{"Amount in Words:", NumberToWords(lowest.BidAmount)},
		{resultLabel + ":", fmt.Sprintf("%s (%.2f%%)", FormatINR(abs(savings)), savingsPct)},
	}
	for _, l := range lines {
		m.AddRows(
			row.New(5).Add(
				col.New(3).Add(text.New(l[0], labelStyle)),
				col.New(9).Add(text.New(l[1], valueStyle)),
			),
		)
	}
	m.AddRows(row.New(3))
}

// addSignatureBlock adds the Executive Engineer signature lines.
func addSignatureBlock(m core.Maroto, rec TenderRecord, cfg StatutoryConfig) {
	eeName := rec.EEName
	if eeName == "" {
		eeName = cfg.DefaultEEName
	}

	m.AddRows(
		row.New(14),
		row.New(5).Add(
			col.New(7),
			col.New(5).Add(text.New(eeName, props.Text{
				Size:  9,
				Style: fontstyle.Bold,
				Align: align.Right,
			})),
		),
		row.New(5).Add(
			col.New(7),
			col.New(5).Add(text.New("Executive Engineer", props.Text{
				Size:  8,
				Align: align.Right,
			})),
		),
		row.New(5).Add(
			col.New(7),
			col.New(5).Add(text.New(fmt.Sprintf("%s, %s", cfg.Department, cfg.Location), props.Text{
				Size:  8,
				Align: align.Right,
			})),
		),
	)
}
