package report

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/nexusfo/nexus"
)

// BuildLiquidityAlert produces the standalone treasury stress report: a
// banner-style alert with key metrics, a six-month cash-flow projection and
// the recommended actions. Unlike the integrated document it has no cover,
// so the footer pass covers every page.
func BuildLiquidityAlert(now time.Time) *Document {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	d := &doc{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	pdf.SetFooterFunc(d.footer)
	pdf.AddPage()

	// Header band.
	d.paint([]Op{
		fillRect{box: Box{X: 0, Y: 0, W: pageWidth, H: 40}, color: navy},
		label{x: marginLeft, y: 20, text: "ALERTA DE RIESGO: LIQUIDEZ", size: 22, bold: true, color: RGB{255, 255, 255}},
		label{x: marginLeft, y: 30, text: nexus.AppName, size: 10, color: RGB{255, 255, 255}},
		label{x: pageWidth - marginLeft, y: 20, text: fmt.Sprintf("Generado: %s", now.Format("02/01/2006 15:04")), size: 10, color: RGB{255, 255, 255}, align: "R"},
		label{x: pageWidth - marginLeft, y: 30, text: fmt.Sprintf("Ref: RISK-LIQ-%d-003", now.Year()), size: 10, color: RGB{255, 255, 255}, align: "R"},
		fillRect{box: Box{X: marginLeft, Y: 50, W: contentW, H: 12}, color: chartAmber},
		label{x: pageWidth / 2, y: 58, text: "ALERTA DETECTADA: CASH RUNWAY < 18 MESES", size: 11, bold: true, color: RGB{255, 255, 255}, align: "C"},
	})
	d.y = 75
	d.header = "ALERTA DE LIQUIDEZ"

	d.sectionTitle("1. Resumen Ejecutivo de Tesorería")
	d.prose("El análisis de estrés de liquidez indica una reducción proyectada en el flujo de caja operativo debido a " +
		"compromisos de capital en Private Equity y una ralentización en los ingresos por alquileres comerciales. " +
		"La cobertura actual de gastos fijos ha descendido por debajo del umbral de seguridad de 24 meses.")

	statusColor := func(status string) *RGB {
		switch status {
		case "OK":
			return &chartGreen
		case "WARNING":
			return &chartAmber
		}
		return &chartRed
	}
	d.table(table{
		columns: []column{
			{title: "Indicador Clave", bold: true, weight: 1.5},
			{title: "Valor Actual", align: "R"},
			{title: "Umbral Seguridad", align: "R"},
			{title: "Estado", align: "C", bold: true},
		},
		rows: [][]string{
			{"Tesorería Disponible", "1.68M €", "3.5M €", "ALERT"},
			{"Burn Rate Mensual", "280k €", "< 250k €", "WARNING"},
			{"Runway Estimado", "6.0 Meses", "> 24 Meses", "ALERT"},
			{"Ratio Liquidez (Quick)", "0.8x", "> 1.5x", "ALERT"},
		},
		headFill: navy,
		style: func(row, col int, cell string) (*RGB, bool) {
			if col != 3 {
				return nil, false
			}
			return statusColor(cell), true
		},
	})

	d.sectionTitle("2. Proyección de Flujo de Caja (6 Meses)")
	d.table(table{
		columns: []column{
			{title: "Mes"},
			{title: "Ingresos Previstos", align: "R"},
			{title: "Gastos Operativos", align: "R"},
			{title: "Capital Calls (PE)", align: "R"},
			{title: "Flujo Neto", align: "R", bold: true},
		},
		rows: [][]string{
			{"Feb 2026", "450k €", "(280k €)", "(500k €)", "(330k €)"},
			{"Mar 2026", "420k €", "(285k €)", "0 €", "+135k €"},
			{"Abr 2026", "460k €", "(280k €)", "(1.2M €)", "(1.02M €)"},
			{"May 2026", "410k €", "(290k €)", "0 €", "+120k €"},
			{"Jun 2026", "480k €", "(280k €)", "(200k €)", "0 €"},
			{"Jul 2026", "430k €", "(285k €)", "0 €", "+145k €"},
		},
		headFill: slate,
		striped:  true,
		style: func(row, col int, cell string) (*RGB, bool) {
			switch col {
			case 1:
				return &chartGreen, false
			case 2:
				return &chartRed, false
			case 3:
				return &chartAmber, false
			case 4:
				if cell == "0 €" {
					return nil, true
				}
				if cell[0] == '(' {
					return &chartRed, true
				}
				return &chartGreen, true
			}
			return nil, false
		},
	})

	d.sectionTitle("3. Acciones Recomendadas")
	actions := []string{
		"REVISIÓN DE GASTOS: Implementar plan de austeridad operativa para reducir el burn rate mensual.",
		"COBERTURA DE LIQUIDEZ: Evaluar venta parcial de posiciones en ETF S&P 500 para cubrir el déficit proyectado en Abril.",
		"NEGOCIACIÓN DE RENTAS: Revisar contratos de alquiler del edificio Castellón Centro.",
		"PAUSA DE INVERSIONES: Detener nuevas inversiones ilíquidas hasta restablecer el buffer de 24 meses.",
	}
	d.pdf.SetFont("Helvetica", "", 10)
	d.pdf.SetTextColor(50, 50, 50)
	for _, action := range actions {
		d.ensure(8)
		for _, line := range d.pdf.SplitText(d.tr("• "+action), contentW-6) {
			d.pdf.Text(marginLeft+6, d.y, line)
			d.y += lineHeight
		}
		d.y += 2
	}

	return &Document{pdf: pdf}
}
