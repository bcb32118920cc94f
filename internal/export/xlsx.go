package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"billforge/internal/render"
)

// XLSX encodes the artifact as a single-sheet workbook. Layout follows the
// visual tree top to bottom: title, meta, parties, items, totals, footer.
func XLSX(a render.Artifact) ([]byte, error) {
	f := excelize.NewFile()
	sheet := sheetName(a)
	f.SetSheetName(f.GetSheetName(0), sheet)

	_ = f.SetDocProps(&excelize.DocProperties{Title: a.Title, Creator: "billforge"})

	row := 1
	setCell(f, sheet, 1, row, a.Title)
	row += 2

	for _, m := range a.Meta {
		setCell(f, sheet, 1, row, m.Label)
		setCell(f, sheet, 2, row, m.Value)
		row++
	}
	row++

	for _, p := range a.Parties {
		if p.Label != "" {
			setCell(f, sheet, 1, row, p.Label)
			row++
		}
		for _, line := range p.Lines {
			setCell(f, sheet, 1, row, line)
			row++
		}
		row++
	}

	for i, col := range a.Table.Columns {
		setCell(f, sheet, i+1, row, col)
	}
	row++
	for _, r := range a.Table.Rows {
		for i, cell := range r.Cells {
			setCell(f, sheet, i+1, row, cell)
		}
		row++
	}
	row++

	labelCol := len(a.Table.Columns) - 1
	if labelCol < 1 {
		labelCol = 1
	}
	for _, t := range a.Totals {
		setCell(f, sheet, labelCol, row, t.Label)
		setCell(f, sheet, labelCol+1, row, t.Value)
		row++
	}

	if a.AmountInWords != "" {
		row++
		setCell(f, sheet, 1, row, "Amount in words: "+a.AmountInWords)
	}

	if len(a.Footer) > 0 {
		row += 2
		for _, line := range a.Footer {
			setCell(f, sheet, 1, row, line)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx encode failed: %w", err)
	}
	return buf.Bytes(), nil
}

func sheetName(a render.Artifact) string {
	switch a.Kind {
	case "invoice":
		return "Invoice"
	case "receipt":
		return "Receipt"
	case "quotation":
		return "Quotation"
	case "price_list":
		return "Price List"
	}
	return "Document"
}

func setCell(f *excelize.File, sheet string, col, row int, value any) {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return
	}
	_ = f.SetCellValue(sheet, cell, value)
}
