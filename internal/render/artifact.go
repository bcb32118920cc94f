// Package render maps template identifiers to interchangeable document
// renderers. Every renderer is a pure function from a document to an inert
// visual tree; encoding that tree to pdf or xlsx bytes lives elsewhere.
package render

import "billforge/internal/domain"

// Artifact is a self-contained visual tree. It performs no I/O and carries
// everything an encoder needs; renderers must never reach outside their input.
type Artifact struct {
	Kind       domain.DocumentKind
	TemplateID int
	Title      string
	Accent     string

	// Preview marks the fixed small-scale thumbnail form. It affects Scale
	// only; the data content is identical to full mode.
	Preview bool
	Scale   float64

	Meta          []Field
	Parties       []PartyBlock
	Table         Table
	Totals        []TotalLine
	AmountInWords string
	Footer        []string
}

type Field struct {
	Label string
	Value string
}

type PartyBlock struct {
	Label string
	Lines []string
}

type Table struct {
	Columns []string
	Rows    []Row
}

// Row is one table line; Deduction rows are payment offsets and are styled
// distinctly by every encoder.
type Row struct {
	Cells     []string
	Deduction bool
}

type TotalLine struct {
	Label     string
	Value     string
	Emphasis  bool
	Deduction bool
}
