// Package export encodes rendered artifacts into shareable file formats. It
// knows nothing about documents or templates; its only input is the inert
// visual tree produced by a renderer.
package export

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/jung-kurt/gofpdf"

	"billforge/internal/render"
)

const (
	pageWidth  = 210.0 // A4 portrait, mm
	marginSide = 15.0
)

// PDF encodes the artifact as a single-page A4 PDF.
func PDF(a render.Artifact) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginSide, 15, marginSide)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	scale := a.Scale
	if scale <= 0 {
		scale = 1.0
	}

	r, g, b := hexColor(a.Accent)

	// title
	pdf.SetTextColor(r, g, b)
	pdf.SetFont("Helvetica", "B", 20*scale)
	pdf.CellFormat(0, 12*scale, tr(a.Title), "", 1, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)

	// meta fields
	pdf.SetFont("Helvetica", "", 10*scale)
	for _, f := range a.Meta {
		pdf.CellFormat(0, 5*scale, tr(f.Label+": "+f.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4 * scale)

	// party blocks
	for _, p := range a.Parties {
		if p.Label != "" {
			pdf.SetFont("Helvetica", "B", 10*scale)
			pdf.CellFormat(0, 5*scale, tr(p.Label), "", 1, "L", false, 0, "")
		}
		pdf.SetFont("Helvetica", "", 10*scale)
		for _, line := range p.Lines {
			pdf.CellFormat(0, 5*scale, tr(line), "", 1, "L", false, 0, "")
		}
		pdf.Ln(2 * scale)
	}

	// items table
	usable := pageWidth - 2*marginSide
	widths := columnWidths(len(a.Table.Columns), usable)

	pdf.SetFont("Helvetica", "B", 9*scale)
	pdf.SetFillColor(235, 235, 235)
	for i, col := range a.Table.Columns {
		pdf.CellFormat(widths[i], 7*scale, tr(col), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9*scale)
	for _, row := range a.Table.Rows {
		if row.Deduction {
			pdf.SetTextColor(178, 34, 34)
		}
		for i, cell := range row.Cells {
			align := "L"
			if i == len(row.Cells)-1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6*scale, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
		if row.Deduction {
			pdf.SetTextColor(0, 0, 0)
		}
	}
	pdf.Ln(4 * scale)

	// totals
	for _, t := range a.Totals {
		style := ""
		if t.Emphasis {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 10*scale)
		if t.Deduction {
			pdf.SetTextColor(178, 34, 34)
		}
		pdf.CellFormat(usable-45, 6*scale, tr(t.Label), "", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6*scale, tr(t.Value), "", 1, "R", false, 0, "")
		if t.Deduction {
			pdf.SetTextColor(0, 0, 0)
		}
	}

	if a.AmountInWords != "" {
		pdf.Ln(3 * scale)
		pdf.SetFont("Helvetica", "I", 9*scale)
		pdf.MultiCell(0, 5*scale, tr("Amount in words: "+a.AmountInWords), "", "L", false)
	}

	if len(a.Footer) > 0 {
		pdf.Ln(5 * scale)
		pdf.SetFont("Helvetica", "", 8*scale)
		pdf.SetTextColor(90, 90, 90)
		for _, line := range a.Footer {
			pdf.MultiCell(0, 4*scale, tr(line), "", "L", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf encode failed: %w", err)
	}
	return buf.Bytes(), nil
}

// columnWidths gives the first (description) column half the table and splits
// the rest evenly.
func columnWidths(n int, usable float64) []float64 {
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []float64{usable}
	}
	widths := make([]float64, n)
	widths[0] = usable / 2
	rest := usable / 2 / float64(n-1)
	for i := 1; i < n; i++ {
		widths[i] = rest
	}
	return widths
}

// hexColor parses "#rrggbb" into components, defaulting to black.
func hexColor(s string) (int, int, int) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0
	}
	r, err1 := strconv.ParseInt(s[1:3], 16, 32)
	g, err2 := strconv.ParseInt(s[3:5], 16, 32)
	b, err3 := strconv.ParseInt(s[5:7], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return int(r), int(g), int(b)
}
