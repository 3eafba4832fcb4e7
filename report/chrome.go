package report

import (
	"fmt"
	"strings"
	"time"
)

// The premium palette: navy background, gold accents, the chart colors the
// dashboard uses on screen.
var (
	navy      = RGB{15, 23, 42}
	slate     = RGB{51, 65, 85}
	gold      = RGB{203, 166, 96}
	lightGray = RGB{241, 245, 249}
	textGray  = RGB{71, 85, 105}

	chartBlue   = RGB{59, 130, 246}
	chartGreen  = RGB{16, 185, 129}
	chartAmber  = RGB{245, 158, 11}
	chartRed    = RGB{239, 68, 68}
	chartViolet = RGB{139, 92, 246}
)

var spanishMonths = [...]string{"enero", "febrero", "marzo", "abril", "mayo",
	"junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}

// cover paints the full-bleed navy cover: brand block centered, gold rule,
// title and period at the bottom. The cover never carries a footer.
func (d *doc) cover(title string, date time.Time) {
	d.pdf.AddPage()

	d.pdf.SetFillColor(navy.R, navy.G, navy.B)
	d.pdf.Rect(0, 0, pageWidth, pageHeight, "F")

	d.pdf.SetDrawColor(gold.R, gold.G, gold.B)
	d.pdf.SetLineWidth(2)
	d.pdf.Line(20, 40, pageWidth-20, 40)

	d.pdf.SetTextColor(255, 255, 255)
	d.pdf.SetFont("Helvetica", "B", 36)
	d.centered("NEXUS", pageHeight/2-20)
	d.pdf.SetFont("Helvetica", "", 14)
	d.centered("FAMILY OFFICE INTELLIGENCE", pageHeight/2)

	d.pdf.SetFont("Helvetica", "B", 28)
	d.pdf.SetTextColor(gold.R, gold.G, gold.B)
	d.centered(strings.ToUpper(title), pageHeight-70)

	d.pdf.SetLineWidth(0.5)
	d.pdf.Line(pageWidth/2-40, pageHeight-60, pageWidth/2+40, pageHeight-60)

	d.pdf.SetFont("Helvetica", "", 14)
	d.pdf.SetTextColor(220, 220, 220)
	period := fmt.Sprintf("%s DE %d", strings.ToUpper(spanishMonths[date.Month()-1]), date.Year())
	d.centered(period, pageHeight-50)

	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.SetTextColor(120, 120, 120)
	d.centered("INFORME ESTRATÉGICO CONFIDENCIAL | NEXUS FAMILY OFFICE", pageHeight-15)
}

// pageHeader draws the chapter band: brand left, chapter right, gold rule.
func (d *doc) pageHeader(title string) {
	d.pdf.SetFillColor(255, 255, 255)
	d.pdf.Rect(0, 0, pageWidth, 25, "F")

	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.SetTextColor(navy.R, navy.G, navy.B)
	d.pdf.Text(marginLeft, 15, "NEXUS")

	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(slate.R, slate.G, slate.B)
	d.rightAligned(title, pageWidth-marginLeft, 15)

	d.pdf.SetDrawColor(gold.R, gold.G, gold.B)
	d.pdf.SetLineWidth(0.5)
	d.pdf.Line(marginLeft, 20, pageWidth-marginLeft, 20)
}

func (d *doc) footer() {
	d.pdf.SetFont("Helvetica", "", 8)
	d.pdf.SetTextColor(150, 150, 150)
	d.pdf.Text(marginLeft, pageHeight-10, d.tr(fmt.Sprintf("Nexus Family Office | Página %d", d.pdf.PageNo())))
	d.rightAligned("Confidencial", pageWidth-marginLeft, pageHeight-10)
}

// sectionTitle prints an underlined block title and advances the cursor.
func (d *doc) sectionTitle(title string) {
	d.ensure(15)
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.SetTextColor(navy.R, navy.G, navy.B)
	d.pdf.Text(marginLeft, d.y, d.tr(title))
	d.pdf.SetDrawColor(chartBlue.R, chartBlue.G, chartBlue.B)
	d.pdf.SetLineWidth(0.5)
	d.pdf.Line(marginLeft, d.y+2, 80, d.y+2)
	d.y += 10
}

// subtitle prints a bold in-section heading.
func (d *doc) subtitle(title string, size float64) {
	d.ensure(12)
	d.pdf.SetFont("Helvetica", "B", size)
	d.pdf.SetTextColor(navy.R, navy.G, navy.B)
	d.pdf.Text(marginLeft, d.y, d.tr(title))
	d.y += 8
}

// prose flows a narrative block across the page, breaking pages as needed.
// The model answers in light Markdown; only the bold markers need stripping.
func (d *doc) prose(text string) {
	if text == "" {
		return
	}
	text = strings.ReplaceAll(text, "**", "")
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(50, 50, 50)
	for _, line := range d.pdf.SplitText(d.tr(text), contentW) {
		d.ensure(lineHeight)
		d.pdf.Text(marginLeft, d.y, line)
		d.y += lineHeight
	}
	d.y += 10
}

// centered and rightAligned place text by measuring it with the current font.
func (d *doc) centered(s string, y float64) {
	s = d.tr(s)
	d.pdf.Text((pageWidth-d.pdf.GetStringWidth(s))/2, y, s)
}

func (d *doc) rightAligned(s string, x, y float64) {
	s = d.tr(s)
	d.pdf.Text(x-d.pdf.GetStringWidth(s), y, s)
}
