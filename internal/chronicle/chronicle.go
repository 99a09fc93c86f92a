// Package chronicle renders the outcome log as a printable parchment-style
// PDF, a keepsake of every quest's milestones and endings.
package chronicle

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"
)

const (
	pageW     = 595
	pageH     = 842
	margin    = 48
	titleSize = 20
	bodySize  = 11
	lineStep  = 18.0
)

// Generate returns PDF bytes listing the recorded outcomes in order. An
// empty list still produces a chronicle, with a single "no deeds" line.
func Generate(title string, entries []string) ([]byte, error) {
	pdf := gofpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)

	// Parchment and frame on every page, including ones added by the
	// automatic page break.
	pdf.SetHeaderFunc(func() {
		pdf.SetFillColor(245, 235, 210)
		pdf.Rect(0, 0, pageW, pageH, "F")
		pdf.SetDrawColor(120, 85, 50)
		pdf.SetLineWidth(2)
		pdf.Rect(18, 18, pageW-36, pageH-36, "D")
		pdf.SetLineWidth(0.8)
		pdf.Rect(26, 26, pageW-52, pageH-52, "D")
		pdf.SetY(margin)
	})
	pdf.AddPage()

	// Brown ink
	pdf.SetTextColor(80, 50, 30)
	pdf.SetDrawColor(80, 50, 30)

	pdf.SetFont("Times", "B", titleSize)
	pdf.CellFormat(pageW-2*margin, 24, title, "", 1, "C", false, 0, "")

	pdf.SetFont("Times", "I", bodySize)
	pdf.CellFormat(pageW-2*margin, 16, "Chronicle of Deeds", "", 1, "C", false, 0, "")

	pdf.SetLineWidth(1)
	pdf.Line(margin+40, pdf.GetY()+6, pageW-margin-40, pdf.GetY()+6)
	pdf.SetY(pdf.GetY() + 20)

	pdf.SetFont("Times", "", bodySize)
	if len(entries) == 0 {
		pdf.CellFormat(pageW-2*margin, lineStep, "No deeds have yet been recorded.", "", 1, "L", false, 0, "")
	}
	for i, entry := range entries {
		pdf.SetX(margin + 12)
		pdf.CellFormat(pageW-2*margin-12, lineStep, fmt.Sprintf("%d.  %s", i+1, entry), "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
