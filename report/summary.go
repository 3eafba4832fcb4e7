package report

import (
	"fmt"

	"github.com/nexusfo/nexus"
	"github.com/nexusfo/nexus/narrative"
)

// summary is the executive chapter: the headline page, the dashboard, then
// one page per strategic narrative block and the tactical recommendations.
func (d *doc) summary() {
	d.executivePage()
	d.newPage("CUADRO DE MANDO")
	d.dashboardPage()
	d.newPage("MACROECONOMÍA")
	d.narrativePage("Entorno Macroeconómico Global", func(b narrative.Bundle) string { return b.MacroAnalysis })
	d.newPage("ESTRATEGIA DE INVERSIÓN")
	d.narrativePage("Estrategia de Inversión (Comité Mensual)", func(b narrative.Bundle) string { return b.StrategyNotes })
	d.newPage("VISIÓN SECTORIAL Y GEOGRÁFICA")
	d.sectorGeoPage()
	if d.y > 200 {
		d.newPage(d.header)
	}
	d.tacticalPage()
}

func (d *doc) executivePage() {
	d.y += 10
	d.pdf.SetFont("Helvetica", "B", 18)
	d.pdf.SetTextColor(navy.R, navy.G, navy.B)
	d.pdf.Text(marginLeft, d.y, d.tr("Resumen Ejecutivo Patrimonial"))
	d.y += 15

	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(slate.R, slate.G, slate.B)
	d.pdf.Text(marginLeft, d.y, d.tr("Patrimonio Neto Total (NAV):"))
	d.y += 10

	d.pdf.SetFont("Helvetica", "B", 36)
	d.pdf.SetTextColor(navy.R, navy.G, navy.B)
	d.pdf.Text(marginLeft, d.y, d.tr(d.req.Snapshot.TotalWealth.String()))

	ytd := nexus.ExecutiveSummary.YTDReturn
	color := chartGreen
	sign := "+"
	if ytd < 0 {
		color, sign = chartRed, ""
	}
	d.pdf.SetFont("Helvetica", "B", 14)
	d.pdf.SetTextColor(color.R, color.G, color.B)
	d.pdf.Text(110, d.y, d.tr(fmt.Sprintf("%s%.1f%% YTD", sign, ytd)))
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.SetTextColor(100, 100, 100)
	d.pdf.Text(110, d.y+5, d.tr("vs. Inicio de Año"))
	d.y += 25

	d.pdf.SetDrawColor(200, 200, 200)
	d.pdf.SetLineWidth(0.2)
	d.pdf.Line(marginLeft, d.y, pageWidth-marginLeft, d.y)
	d.y += 15

	if b, ok := d.narrative(); ok {
		d.prose(b.ExecutiveSummary)
	}
}

func (d *doc) dashboardPage() {
	d.sectionTitle("Cuadro de Mando Integral (Dashboard)")
	top := d.y

	// Top movers on the left, management alerts on the right.
	d.subtitle("Top Movers (Impacto)", 12)
	for _, mover := range nexus.ExecutiveSummary.TopMovers {
		color := slate
		switch mover.Impact {
		case "high_positive":
			color = chartGreen
		case "positive":
			color = chartBlue
		case "negative":
			color = chartRed
		}
		d.paint([]Op{
			dot{x: marginLeft + 2, y: d.y - 1, r: 1.5, color: color},
			label{x: marginLeft + 6, y: d.y, text: mover.Name, size: 9, color: RGB{50, 50, 50}},
			label{x: 100, y: d.y, text: mover.Change, size: 9, bold: true, color: RGB{50, 50, 50}, align: "R"},
		})
		d.y += 6
	}

	alertY := top
	const alertX = 110.0
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.SetTextColor(navy.R, navy.G, navy.B)
	d.pdf.Text(alertX, alertY, d.tr("Alertas Gerenciales"))
	alertY += 8
	for _, alert := range nexus.ExecutiveSummary.Alerts {
		fill, border := RGB{255, 251, 235}, RGB{217, 119, 6}
		if alert.Severity == "high" {
			fill, border = RGB{254, 242, 242}, RGB{220, 38, 38}
		}
		d.paint([]Op{
			fillRect{box: Box{X: alertX, Y: alertY - 4, W: 85, H: 12}, color: fill, radius: 1},
			strokeRect{box: Box{X: alertX, Y: alertY - 4, W: 85, H: 12}, color: border, width: 0.2, radius: 1},
			label{x: alertX + 4, y: alertY + 3, text: alert.Message, size: 8, color: RGB{50, 50, 50}},
		})
		alertY += 16
	}
	if alertY > d.y {
		d.y = alertY
	}
	d.y += 20

	// Allocation: the proportional bar, its legend, then the numeric table.
	d.subtitle("Distribución de Activos (Allocation)", 12)
	segments := make([]Segment, 0, len(d.req.Snapshot.Allocation))
	legend := make([]Segment, 0, len(d.req.Snapshot.Allocation))
	for _, a := range d.req.Snapshot.Allocation {
		color := hexToRGB(a.Color)
		segments = append(segments, Segment{Value: a.Percent, Color: color})
		legend = append(legend, Segment{Label: fmt.Sprintf("%s (%s)", a.Name, formatPercent(a.Percent)), Color: color})
	}
	d.paint(StackedBar(Box{X: marginLeft, Y: d.y, W: 180, H: 15}, segments))
	d.y += 25
	d.paint(Legend(marginLeft, d.y, legend))
	d.y += 5*float64(1+len(legend)/4) + 15

	rows := make([][]string, 0, len(d.req.Snapshot.Allocation))
	for _, a := range d.req.Snapshot.Allocation {
		rows = append(rows, []string{a.Name, formatPercent(a.Percent)})
	}
	d.table(table{
		columns: []column{
			{title: "Clase de Activo"},
			{title: "% Asignación", align: "R", bold: true},
		},
		rows:     rows,
		headFill: navy,
	})
}

// narrativePage prints one full-page narrative block, or the standard notice
// when the bundle is missing.
func (d *doc) narrativePage(title string, pick func(narrative.Bundle) string) {
	d.sectionTitle(title)
	if b, ok := d.narrative(); ok {
		d.prose(pick(b))
		return
	}
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(50, 50, 50)
	d.pdf.Text(marginLeft, d.y, d.tr("Análisis detallado no disponible."))
	d.y += 20
}

func (d *doc) sectorGeoPage() {
	d.sectionTitle("Análisis Sectorial y Geográfico")
	b, ok := d.narrative()
	if !ok {
		d.pdf.SetFont("Helvetica", "", 10)
		d.pdf.SetTextColor(50, 50, 50)
		d.pdf.Text(marginLeft, d.y, d.tr("Análisis avanzado no disponible."))
		d.y += 20
		return
	}
	d.subtitle("Foco Sectorial (Deep Dive)", 12)
	d.prose(b.SectorFocus)
	d.subtitle("Estrategia Geográfica", 12)
	d.prose(b.GeoStrategy)
}

// recommendation is one rule-derived tactical note.
type recommendation struct {
	kind  string // success, warning or info
	title string
	text  string
}

// tacticalRecommendations derives the fixed advisory rules from the snapshot:
// liquidity floor, single-class concentration, return against target.
func tacticalRecommendations(snap nexus.Snapshot) []recommendation {
	var recs []recommendation

	if snap.LiquidityRatio < 10 {
		recs = append(recs, recommendation{
			kind:  "warning",
			title: "Alerta de Liquidez",
			text: fmt.Sprintf("Su ratio de liquidez actual es del %.1f%%, por debajo del objetivo recomendado del 10-15%%. "+
				"Se recomienda aumentar posiciones en Tesorería o evitar nuevos compromisos de capital ilíquido a corto plazo.", snap.LiquidityRatio),
		})
	} else {
		recs = append(recs, recommendation{
			kind:  "success",
			title: "Solidez de Liquidez",
			text: fmt.Sprintf("Mantiene un nivel saludable de liquidez (%.1f%%), permitiendo cubrir compromisos de capital "+
				"(Capital Calls) y gastos operativos durante los próximos 18 meses sin estrés.", snap.LiquidityRatio),
		})
	}

	if len(snap.Allocation) > 0 {
		top := snap.Allocation[0]
		for _, a := range snap.Allocation[1:] {
			if a.Value.GreaterThan(top.Value) {
				top = a
			}
		}
		if top.Percent > 40 {
			recs = append(recs, recommendation{
				kind:  "info",
				title: "Concentración de Activos",
				text: fmt.Sprintf("Existe una concentración significativa en %s (%.1f%%). Considere rebalancear la cartera "+
					"hacia activos descorrelacionados (ej. Private Equity secundario o Renta Fija) para mitigar riesgos sectoriales.", top.Name, top.Percent),
			})
		}
	}

	if snap.WeightedReturn > 8 {
		recs = append(recs, recommendation{
			kind:  "success",
			title: "Rendimiento Superior",
			text: fmt.Sprintf("La rentabilidad ponderada del portafolio (%.1f%%) supera el benchmark compuesto (7.5%%). "+
				"La estrategia de crecimiento en Mercados Privados está aportando el alpha esperado.", snap.WeightedReturn),
		})
	} else {
		recs = append(recs, recommendation{
			kind:  "warning",
			title: "Revisión de Rendimiento",
			text: fmt.Sprintf("La rentabilidad actual (%.1f%%) está por debajo del objetivo estratégico inflacionario. "+
				"Se sugiere revisar los gestores de Renta Variable y las posiciones de bajo rendimiento en Real Estate.", snap.WeightedReturn),
		})
	}
	return recs
}

func (d *doc) tacticalPage() {
	d.sectionTitle("Recomendaciones Tácticas (Resumen)")

	if b, ok := d.narrative(); ok {
		d.subtitle("Desempeño de Cartera", 11)
		d.prose(b.PortfolioPerformance)
	}

	for _, rec := range tacticalRecommendations(d.req.Snapshot) {
		badge := chartBlue
		switch rec.kind {
		case "warning":
			badge = chartAmber
		case "success":
			badge = chartGreen
		}
		d.ensure(25)
		d.paint([]Op{
			fillRect{box: Box{X: marginLeft, Y: d.y, W: 3, H: 18}, color: badge, radius: 1},
			label{x: marginLeft + 6, y: d.y + 5, text: rec.title, size: 10, bold: true, color: navy},
		})
		d.pdf.SetFont("Helvetica", "", 9)
		d.pdf.SetTextColor(textGray.R, textGray.G, textGray.B)
		lineY := d.y + 10
		for _, line := range d.pdf.SplitText(d.tr(rec.text), 170) {
			d.pdf.Text(marginLeft+6, lineY, line)
			lineY += 4
		}
		d.y += 25
	}
	d.y += 10

	// Evolution strip: the simulated wealth series closes the chapter.
	if len(d.req.Snapshot.History) > 0 {
		d.subtitle("Evolución Patrimonial", 12)
		var max float64
		segments := make([]Segment, 0, len(d.req.Snapshot.History))
		for _, p := range d.req.Snapshot.History {
			v := p.Wealth.AsFloat() / 1e6
			if v > max {
				max = v
			}
			segments = append(segments, Segment{
				Label: fmt.Sprintf("%d", p.Year),
				Value: v,
				Color: chartBlue,
				Text:  fmt.Sprintf("%.0fM", v),
			})
		}
		d.paint(GroupedBars(Box{X: marginLeft + 6, Y: d.y, W: 150, H: 40}, segments, max*1.2))
		d.y += 60
	}
}
