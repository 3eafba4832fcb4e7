package report

import (
	"fmt"
	"strings"

	"github.com/nexusfo/nexus"
)

// riskPlacement maps a 0-100 score onto the heatmap: critical scores land in
// the high-impact/high-probability corner, moderate ones in the center.
func riskPlacement(score int) HeatCell {
	switch {
	case score > 70:
		return HeatCell{Row: 0, Col: 2}
	case score > 40:
		return HeatCell{Row: 1, Col: 1}
	}
	return HeatCell{Row: 2, Col: 0}
}

func riskRating(score int) string {
	switch {
	case score > 70:
		return "CRÍTICO"
	case score > 40:
		return "Moderado"
	}
	return "Bajo Control"
}

func (d *doc) risks() {
	d.y += 10
	d.subtitle("Mapa de Calor de Riesgos (Risk Heatmap)", 16)
	d.y += 5

	if b, ok := d.narrative(); ok {
		d.prose(b.RiskAnalysis)
	}

	markers := make(map[HeatCell][]int)
	for i, r := range nexus.RiskFactors {
		cell := riskPlacement(r.Score)
		markers[cell] = append(markers[cell], i+1)
	}
	d.ensure(120)
	d.paint([]Op{label{x: 50, y: d.y + 45, text: "Impacto", size: 10, color: RGB{50, 50, 50}, align: "R"}})
	d.paint(Heatmap(Box{X: 60, Y: d.y, W: 90, H: 90}, markers))
	d.y += 115

	d.subtitle("Evaluación Detallada de Amenazas", 14)
	rows := make([][]string, 0, len(nexus.RiskFactors))
	for i, r := range nexus.RiskFactors {
		rows = append(rows, []string{
			fmt.Sprintf("%d. %s", i+1, r.Subject),
			fmt.Sprintf("%d/100", r.Score),
			riskRating(r.Score),
		})
	}
	d.table(table{
		columns: []column{
			{title: "Factor de Riesgo", weight: 2.5},
			{title: "Score", align: "C"},
			{title: "Evaluación", align: "C"},
		},
		rows:     rows,
		headFill: chartRed,
		style: func(row, col int, cell string) (*RGB, bool) {
			if col == 2 && cell == "CRÍTICO" {
				return &chartRed, true
			}
			return nil, false
		},
	})

	// Portfolio-level metrics close the chapter.
	risk := d.req.Snapshot.Risk
	d.table(table{
		columns: []column{
			{title: "Métrica de Cartera", bold: true},
			{title: "Valor", align: "R"},
		},
		rows: [][]string{
			{"Volatilidad Anualizada", formatPercent(risk.Volatility)},
			{"Ratio de Sharpe", fmt.Sprintf("%.1f", risk.SharpeRatio)},
			{"VaR (5%)", risk.ValueAtRisk.String()},
		},
		headFill: slate,
		width:    110,
	})
}

func (d *doc) environmental() {
	d.sectionTitle("Derechos de Emisión y Mercados de Carbono (CO₂)")

	rows := make([][]string, 0, len(nexus.EnvTransactions))
	for _, t := range nexus.EnvTransactions {
		order := "VENTA"
		if t.Type == "BUY" {
			order = "COMPRA"
		}
		rows = append(rows, []string{
			t.Date,
			order,
			t.Counterparty,
			fmt.Sprintf("%.0f t", t.Amount),
			formatCurrency(t.Price),
			formatCurrency(t.Amount * t.Price),
		})
	}
	d.table(table{
		columns: []column{
			{title: "Fecha"},
			{title: "Orden", bold: true},
			{title: "Contraparte", weight: 1.5},
			{title: "Volumen", align: "R"},
			{title: "Precio/t", align: "R"},
			{title: "Total", align: "R", bold: true},
		},
		rows:     rows,
		headFill: chartGreen,
		striped:  true,
		style: func(row, col int, cell string) (*RGB, bool) {
			if col != 1 {
				return nil, false
			}
			if cell == "COMPRA" {
				return &chartGreen, false
			}
			return &chartBlue, false
		},
	})
}

func (d *doc) passionAssets() {
	d.sectionTitle("Activos de Pasión & Coleccionables")

	m := nexus.PassionMetrics
	d.paint([]Op{
		label{x: marginLeft, y: d.y, text: fmt.Sprintf("Valor Total Colección: %s", formatCurrency(m.TotalValue)), size: 10, color: RGB{50, 50, 50}},
		label{x: 100, y: d.y, text: fmt.Sprintf("+%s Revalorización (CAGR)", formatPercent(m.Appreciation)), size: 10, color: chartGreen},
	})
	d.y += 15

	// Cost-versus-market overlay: acquisition cost painted over the current
	// market value bar, the gap is the unrealized gain.
	cost := m.TotalValue * 0.75
	gap := m.TotalValue - cost
	d.subtitle("Análisis de Valor: Coste vs Mercado", 12)
	const barW, barH = 140.0, 15.0
	costW := cost / m.TotalValue * barW
	d.paint([]Op{
		fillRect{box: Box{X: marginLeft, Y: d.y, W: barW, H: barH}, color: chartBlue},
		fillRect{box: Box{X: marginLeft, Y: d.y, W: costW, H: barH}, color: slate},
		label{x: marginLeft + 6, y: d.y + 9, text: "Coste de Adquisición", size: 9, color: RGB{255, 255, 255}},
		label{x: marginLeft + costW - 3, y: d.y + 9, text: formatCurrency(cost), size: 9, color: RGB{255, 255, 255}, align: "R"},
		label{x: marginLeft + barW - 3, y: d.y + 9, text: formatCurrency(m.TotalValue), size: 9, color: RGB{255, 255, 255}, align: "R"},
		label{x: marginLeft + barW + 5, y: d.y + 9, text: fmt.Sprintf("+%s (Plusvalía Latente)", formatCurrency(gap)), size: 10, bold: true, color: chartGreen},
	})
	d.y += 25

	rows := make([][]string, 0, len(nexus.PassionPortfolio))
	for _, p := range nexus.PassionPortfolio {
		rows = append(rows, []string{
			p.Name,
			strings.ToUpper(p.Category),
			formatCurrency(p.Value),
			p.Trend,
		})
	}
	d.table(table{
		columns: []column{
			{title: "Pieza / Activo", weight: 2.5},
			{title: "Categoría", align: "C"},
			{title: "Valoración", align: "R", bold: true},
			{title: "Tendencia", align: "R"},
		},
		rows:     rows,
		headFill: RGB{217, 70, 239},
		striped:  true,
		style: func(row, col int, cell string) (*RGB, bool) {
			if col == 3 {
				return &chartGreen, false
			}
			return nil, false
		},
	})
}

func (d *doc) impact() {
	d.sectionTitle("Filantropía e Impacto (Fundación Nexus)")

	if b, ok := d.narrative(); ok {
		d.prose(b.PhilanthropySpotlight)
	}

	rows := make([][]string, 0, len(nexus.PhilanthropyProjects))
	for _, p := range nexus.PhilanthropyProjects {
		sdg, _, _ := strings.Cut(p.SDG, ":")
		rows = append(rows, []string{p.Title, p.Category, p.Location, formatCurrency(p.Budget), sdg})
	}
	d.table(table{
		columns: []column{
			{title: "Proyecto / Iniciativa", weight: 2},
			{title: "Categoría"},
			{title: "Ubicación"},
			{title: "Presupuesto", align: "R", bold: true},
			{title: "ODS Principal", align: "C"},
		},
		rows:     rows,
		headFill: RGB{236, 72, 153},
		striped:  true,
	})
}
