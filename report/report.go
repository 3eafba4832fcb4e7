// Package report assembles the paginated wealth document: a premium cover,
// one chapter per selected section mixing tables, vector charts and the
// optional AI narrative, and a footer pass over every page except the cover.
package report

import (
	"bytes"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/nexusfo/nexus"
	"github.com/nexusfo/nexus/narrative"
)

// Request is the one-shot input of a document build. It is consumed once and
// discarded; nothing is persisted.
type Request struct {
	Sections  []string // section ids; unknown ids are silently ignored
	Title     string
	Snapshot  nexus.Snapshot
	Narrative *narrative.Bundle // nil when no prose is available at all
	Date      time.Time         // zero means now
}

// Document is the finished, immutable output of Build.
type Document struct {
	pdf *fpdf.Fpdf
}

// Bytes serializes the document to its binary form.
func (d *Document) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Pages returns the number of emitted pages, cover included.
func (d *Document) Pages() int { return d.pdf.PageCount() }

// section couples a selectable id with its chapter header and renderer.
// The slice order is the chapter order of the document.
type section struct {
	id     string
	header string
	render func(d *doc)
}

var sections = []section{
	{id: "summary", header: "MEMORIA EJECUTIVA", render: (*doc).summary},
	{id: "portfolio", header: "CARTERA FINANCIERA", render: (*doc).portfolio},
	{id: "real_estate", header: "REAL ESTATE", render: (*doc).realEstate},
	{id: "private_equity", header: "PRIVATE EQUITY & VC", render: (*doc).privateEquity},
	{id: "treasury", header: "TESORERÍA & CASH FLOW", render: (*doc).treasury},
	{id: "business", header: "NEGOCIO FAMILIAR", render: (*doc).business},
	{id: "risks", header: "MATRIZ DE RIESGOS", render: (*doc).risks},
	{id: "environmental", header: "IMPACTO Y SOSTENIBILIDAD", render: (*doc).environmental},
	{id: "passion_assets", header: "COLECCIONABLES", render: (*doc).passionAssets},
	{id: "impact", header: "FILANTROPÍA", render: (*doc).impact},
}

// page geometry, in millimeters on A4 portrait.
const (
	pageWidth   = 210.0
	pageHeight  = 297.0
	marginLeft  = 14.0
	contentW    = pageWidth - 2*marginLeft
	contentTop  = 40.0
	pageBottom  = 270.0
	lineHeight  = 5.0
)

// doc carries the assembly cursor: the engine page plus the vertical offset
// every renderer advances. It lives for one Build call only.
type doc struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string // UTF-8 to the core-font codepage
	req    Request
	header string // repeated when a section overflows onto a new page
	y      float64
}

// Build assembles the document for the request. Section inclusion is a set
// membership test; sections not selected are skipped entirely, and ids that
// match no known section are ignored without error.
func Build(req Request) *Document {
	if req.Date.IsZero() {
		req.Date = time.Now()
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)

	d := &doc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), req: req}
	pdf.SetFooterFunc(func() {
		if pdf.PageNo() > 1 {
			d.footer()
		}
	})

	d.cover(req.Title, req.Date)

	selected := make(map[string]bool, len(req.Sections))
	for _, id := range req.Sections {
		selected[id] = true
	}
	for _, s := range sections {
		if !selected[s.id] {
			continue
		}
		d.newPage(s.header)
		s.render(d)
	}
	return &Document{pdf: pdf}
}

// newPage opens a fresh page with the chapter header and resets the cursor.
func (d *doc) newPage(header string) {
	d.header = header
	d.pdf.AddPage()
	d.pageHeader(header)
	d.y = contentTop
}

// ensure applies the one cross-cutting layout rule: if the next block of the
// given height would cross the printable bottom, break the page first.
func (d *doc) ensure(height float64) {
	if d.y+height > pageBottom {
		d.newPage(d.header)
	}
}

// narrative returns the prose bundle, or false when the request carries none.
func (d *doc) narrative() (narrative.Bundle, bool) {
	if d.req.Narrative == nil {
		return narrative.Bundle{}, false
	}
	return *d.req.Narrative, true
}
