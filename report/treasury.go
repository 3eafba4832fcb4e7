package report

import (
	"fmt"

	"github.com/nexusfo/nexus"
)

// Treasury runway figures derived from the fixed expense base.
const (
	monthlyBurn  = 280_000.0
	runwayMonths = 6.4
)

func (d *doc) treasury() {
	d.sectionTitle("Tesorería y Gestión de Liquidez")

	if b, ok := d.narrative(); ok {
		d.prose(b.CashFlowAnalysis)
	}

	d.subtitle("Posición Global de Liquidez", 11)
	liqRows := make([][]string, 0, len(nexus.TreasuryLiquidity))
	for _, l := range nexus.TreasuryLiquidity {
		liqRows = append(liqRows, []string{l.Currency, formatPercent(l.Percentage), formatCurrency(l.Amount)})
	}
	d.table(table{
		columns: []column{
			{title: "Divisa"},
			{title: "Ponderación", align: "C"},
			{title: "Importe Disponible", align: "R", bold: true},
		},
		rows:     liqRows,
		headFill: chartBlue,
		striped:  true,
		width:    100,
	})
	d.y += 5

	// Runway dashboard box.
	d.subtitle("Cash Runway & Burn Rate", 14)
	d.ensure(40)
	critical := runwayMonths < 6
	status, statusColor := "SALUDABLE", chartGreen
	if critical {
		status, statusColor = "ALERTA", chartRed
	}
	boxY := d.y
	d.paint([]Op{
		strokeRect{box: Box{X: marginLeft, Y: boxY, W: contentW, H: 25}, color: RGB{200, 200, 200}, width: 0.2, radius: 2},
		label{x: marginLeft + 6, y: boxY + 10, text: "Runway Estimado", size: 10, color: RGB{100, 100, 100}},
		label{x: marginLeft + 6, y: boxY + 19, text: fmt.Sprintf("%.1f Meses", runwayMonths), size: 16, bold: true, color: statusColor},
		label{x: 80, y: boxY + 10, text: "Burn Rate Mensual", size: 10, color: RGB{100, 100, 100}},
		label{x: 80, y: boxY + 19, text: formatCurrency(monthlyBurn), size: 16, bold: true, color: RGB{50, 50, 50}},
		fillRect{box: Box{X: 150, Y: boxY + 7, W: 30, H: 10}, color: statusColor, radius: 1},
		label{x: 165, y: boxY + 13, text: status, size: 9, color: RGB{255, 255, 255}, align: "C"},
	})
	d.y += 35

	d.subtitle("Flujo de Caja Mensual (Proyectado)", 11)
	cashRows := make([][]string, 0, len(nexus.TreasuryCashFlow))
	for _, c := range nexus.TreasuryCashFlow {
		cashRows = append(cashRows, []string{
			c.Month,
			formatCurrency(c.Income),
			formatCurrency(c.Expense),
			formatCurrency(c.Net),
		})
	}
	d.table(table{
		columns: []column{
			{title: "Mes"},
			{title: "Entradas", align: "R"},
			{title: "Salidas", align: "R"},
			{title: "Neto", align: "R", bold: true},
		},
		rows:     cashRows,
		headFill: slate,
		style: func(row, col int, cell string) (*RGB, bool) {
			switch col {
			case 1:
				return &chartGreen, false
			case 2:
				return &chartRed, false
			}
			return nil, false
		},
	})
}

func (d *doc) business() {
	d.sectionTitle("Negocio Familiar (Operating Company)")

	m := nexus.BusinessMetrics
	rows := [][]string{
		{"Facturación (Revenue)", formatCurrency(m.Revenue)},
		{"EBITDA", formatCurrency(m.EBITDA)},
		{"Margen Neto", formatPercent(m.NetMargin)},
		{"Valoración Estimada", formatCurrency(m.Valuation)},
		{"Crecimiento Anual", formatPercent(m.Growth)},
		{"Plantilla", fmt.Sprintf("%d Empleados", m.Employees)},
	}
	d.table(table{
		columns: []column{
			{title: "KPI Operativo", bold: true},
			{title: "Valor Actual", align: "R"},
		},
		rows:     rows,
		headFill: chartBlue,
	})

	// EBITDA margin next to revenue gives the quick health read.
	margin := 0.0
	if m.Revenue > 0 {
		margin = m.EBITDA / m.Revenue * 100
	}
	d.calloutBox("Lectura Rápida", RGB{240, 248, 255}, RGB{200, 200, 200}, []string{
		fmt.Sprintf("El margen EBITDA se sitúa en el %s con un crecimiento anual del %s, por encima de la media sectorial.",
			formatPercent(margin), formatPercent(m.Growth)),
		"La valoración se revisa semestralmente con metodología de múltiplos comparables.",
	})
}
