package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/nexusfo/nexus"
)

// portfolio renders the financial-markets chapter: benchmark comparison,
// holdings, the digital-asset book, the cost structure and the strategy box.
func (d *doc) portfolio() {
	d.y += 10
	d.subtitle("Desempeño Financiero vs Mercado", 16)
	d.y += 2

	segments := []Segment{
		{Label: "Cartera Nexus", Value: d.req.Snapshot.WeightedReturn, Color: chartGreen},
		{Label: nexus.Benchmarks.SP500.Name, Value: nexus.Benchmarks.SP500.YTD, Color: chartBlue},
		{Label: nexus.Benchmarks.Inflation.Name, Value: nexus.Benchmarks.Inflation.YTD, Color: chartAmber},
		{Label: nexus.Benchmarks.RiskFree.Name, Value: nexus.Benchmarks.RiskFree.YTD, Color: chartViolet},
	}
	d.paint(GroupedBars(Box{X: marginLeft + 6, Y: d.y, W: 130, H: 40}, segments, 20))
	d.y += 60

	d.subtitle("Posiciones Detalladas", 14)
	rows := make([][]string, 0, len(nexus.PortfolioHoldings))
	for _, h := range nexus.PortfolioHoldings {
		value := h.Value
		if amount, err := nexus.ParseAmount(h.Value); err == nil {
			value = amount.String()
		}
		rows = append(rows, []string{h.Ticker, h.Name, h.Type, value, h.Change})
	}
	d.table(table{
		columns: []column{
			{title: "Ticker"},
			{title: "Nombre", weight: 2},
			{title: "Tipo"},
			{title: "Valor Mercado", align: "R", bold: true},
			{title: "YTD", align: "R"},
		},
		rows:     rows,
		headFill: navy,
		style: func(row, col int, cell string) (*RGB, bool) {
			if col != 4 {
				return nil, false
			}
			if strings.Contains(cell, "-") {
				return &chartRed, false
			}
			return &chartGreen, false
		},
	})

	d.subtitle("Activos Digitales", 14)
	cryptoRows := make([][]string, 0, len(nexus.CryptoHoldings))
	for _, c := range nexus.CryptoHoldings {
		cryptoRows = append(cryptoRows, []string{
			c.Name, c.Symbol,
			fmt.Sprintf("%g", c.Amount),
			formatCurrency(c.Price),
			formatCurrency(c.Amount * c.Price),
			c.Change,
		})
	}
	d.table(table{
		columns: []column{
			{title: "Activo"},
			{title: "Símbolo"},
			{title: "Tenencia", align: "R"},
			{title: "Precio Unit.", align: "R"},
			{title: "Valor Total", align: "R", bold: true},
			{title: "24h", align: "R"},
		},
		rows:     cryptoRows,
		headFill: RGB{99, 102, 241},
		style: func(row, col int, cell string) (*RGB, bool) {
			if col == 5 && !strings.Contains(cell, "-") {
				return &chartGreen, false
			}
			return nil, false
		},
	})

	d.subtitle("Análisis de Costes y Comisiones", 14)
	feeRows := make([][]string, 0, len(nexus.FeesStructure))
	for _, f := range nexus.FeesStructure {
		feeRows = append(feeRows, []string{
			f.AssetClass,
			formatPercent(f.MgmtFee),
			formatPercent(f.PerfFee),
			formatCurrency(f.TotalCost),
		})
	}
	d.table(table{
		columns: []column{
			{title: "Clase de Activo", weight: 2},
			{title: "Mgmt Fee", align: "C"},
			{title: "Perf. Fee", align: "C"},
			{title: "Coste Est. Anual", align: "R", bold: true},
		},
		rows:     feeRows,
		headFill: slate,
		striped:  true,
	})

	d.calloutBox("Análisis Estratégico & Recomendaciones", RGB{240, 248, 255}, RGB{200, 200, 200}, []string{
		"REBALANCEO: La exposición a Renta Variable está por debajo del objetivo estratégico. Se recomienda aumentar la posición en ETFs S&P 500 aprovechando la corrección actual.",
		"EFICIENCIA: Los costes de gestión en Hedge Funds (1.8% + 15%) son elevados comparados con el retorno. Valorar rotación hacia vehículos más eficientes.",
	})
}

func (d *doc) realEstate() {
	d.sectionTitle("Cartera Inmobiliaria (Real Estate)")

	operating := make(map[string]nexus.REOperating, len(nexus.REOperatingData))
	for _, o := range nexus.REOperatingData {
		operating[o.ID] = o
	}

	rows := make([][]string, 0, len(nexus.RealEstateAssets))
	for _, a := range nexus.RealEstateAssets {
		op := operating[a.ID]
		rows = append(rows, []string{
			a.Name,
			a.Status,
			fmt.Sprintf("%d%%", a.Occupancy),
			formatCurrency(op.NOI),
			formatPercent(op.CapRate),
			op.LeaseExpiry,
			a.Value,
		})
	}
	d.table(table{
		columns: []column{
			{title: "Activo", weight: 2.5},
			{title: "Estado"},
			{title: "Ocupación", align: "C"},
			{title: "NOI (Anual)", align: "R"},
			{title: "Cap Rate", align: "C"},
			{title: "Vencimiento", align: "C"},
			{title: "Valoración", align: "R", bold: true},
		},
		rows:     rows,
		headFill: chartGreen,
		striped:  true,
	})

	d.calloutBox("Optimización de Activos (AI Insights)", RGB{240, 253, 244}, chartGreen, []string{
		"OPORTUNIDAD: El 'Edificio Castellón' presenta un Yield (5.2%) inferior al mercado (6.0%). Evaluar posible refinanciación o venta parcial para reinvertir en logística.",
		"CAPEX: Se prevé una inversión de 200k en 'Residencial Playa' para finalizar obra antes de Q3 2026.",
	})
}

// jCurve is the simulated capital-call/distribution forecast behind the
// private-equity chart, in millions.
var jCurve = struct {
	periods []string
	calls   []float64
	dists   []float64
}{
	periods: []string{"2023", "2024", "2025", "2026(E)", "2027(E)"},
	calls:   []float64{2.5, 3.2, 4.1, 1.8, 0.5},
	dists:   []float64{0.2, 0.5, 1.2, 3.5, 5.8},
}

func (d *doc) privateEquity() {
	d.y += 10
	d.subtitle("Análisis de Curva-J (Cash Flow Forecast)", 16)
	d.paint([]Op{label{x: marginLeft, y: d.y + 2, text: "Millones €", size: 8, color: RGB{150, 150, 150}}})
	d.paint(PairedBars(Box{X: marginLeft + 16, Y: d.y, W: 130, H: 45}, jCurve.periods, jCurve.calls, jCurve.dists, chartRed, chartGreen, 6))
	d.paint([]Op{
		fillRect{box: Box{X: 150, Y: d.y, W: 4, H: 4}, color: chartRed},
		label{x: 156, y: d.y + 3, text: "Capital Calls", size: 8, color: RGB{50, 50, 50}},
		fillRect{box: Box{X: 150, Y: d.y + 6, W: 4, H: 4}, color: chartGreen},
		label{x: 156, y: d.y + 9, text: "Distribuciones", size: 8, color: RGB{50, 50, 50}},
	})
	d.y += 65

	d.subtitle("Detalle de Fondos", 14)
	rows := make([][]string, 0, len(nexus.PEFunds))
	for _, f := range nexus.PEFunds {
		rows = append(rows, []string{
			f.Name,
			fmt.Sprintf("%d", f.Vintage),
			formatCurrency(f.Committed),
			fmt.Sprintf("%d%%", int(math.Round(f.Called/f.Committed*100))),
			fmt.Sprintf("%.2fx", f.TVPI),
			formatPercent(f.IRR),
		})
	}
	d.table(table{
		columns: []column{
			{title: "Fondo", weight: 2.5},
			{title: "Vintage", align: "C"},
			{title: "Commitment", align: "R"},
			{title: "% Funded", align: "C"},
			{title: "TVPI", align: "C"},
			{title: "IRR", align: "C", bold: true},
		},
		rows:     rows,
		headFill: chartAmber,
	})

	d.subtitle("Previsión de Llamadas de Capital (Capital Calls)", 14)
	callRows := make([][]string, 0, len(nexus.PECapitalCalls))
	for _, c := range nexus.PECapitalCalls {
		callRows = append(callRows, []string{c.Fund, c.Date, c.Status, formatCurrency(c.Amount)})
	}
	d.table(table{
		columns: []column{
			{title: "Fondo", weight: 2},
			{title: "Fecha Est.", align: "C"},
			{title: "Estado", align: "C"},
			{title: "Importe Previsto", align: "R"},
		},
		rows:     callRows,
		headFill: chartRed,
		style: func(row, col int, cell string) (*RGB, bool) {
			switch col {
			case 2:
				return nil, cell == "Confirmed"
			case 3:
				return &chartRed, true
			}
			return nil, false
		},
	})

	d.subtitle("Pipeline de Inversión", 14)
	pipeRows := make([][]string, 0, len(nexus.PEPipeline))
	for _, p := range nexus.PEPipeline {
		pipeRows = append(pipeRows, []string{p.Name, p.Strategy, p.Stage, formatCurrency(p.TargetCommitment), p.ExpectedClose})
	}
	d.table(table{
		columns: []column{
			{title: "Fondo", weight: 2},
			{title: "Estrategia", weight: 1.5},
			{title: "Fase"},
			{title: "Commitment Obj.", align: "R"},
			{title: "Cierre Est.", align: "C"},
		},
		rows:     pipeRows,
		headFill: slate,
		striped:  true,
	})
}

// calloutBox draws a rounded highlight box with a bold title and bulleted
// lines, the per-chapter advisory block.
func (d *doc) calloutBox(title string, fill, border RGB, lines []string) {
	height := 14 + float64(len(lines))*10
	d.ensure(height + 10)
	d.paint([]Op{
		fillRect{box: Box{X: marginLeft, Y: d.y, W: contentW, H: height}, color: fill, radius: 2},
		strokeRect{box: Box{X: marginLeft, Y: d.y, W: contentW, H: height}, color: border, width: 0.2, radius: 2},
		label{x: marginLeft + 6, y: d.y + 8, text: title, size: 11, bold: true, color: navy},
	})
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.SetTextColor(50, 50, 50)
	lineY := d.y + 15
	for _, text := range lines {
		for i, line := range d.pdf.SplitText(d.tr("• "+text), contentW-12) {
			indent := 0.0
			if i > 0 {
				indent = 3
			}
			d.pdf.Text(marginLeft+6+indent, lineY, line)
			lineY += 4
		}
		lineY += 2
	}
	d.y += height + 10
}
