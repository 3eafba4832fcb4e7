// Package renderer turns snapshots into markdown for the terminal surfaces.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/nexusfo/nexus"
)

// SummaryMarkdown renders the net-worth snapshot as a markdown document:
// headline figures, the allocation table and the simulated evolution series.
func SummaryMarkdown(s nexus.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s — Patrimonio Consolidado", nexus.AppName))
	doc.PlainText(fmt.Sprintf("Patrimonio Neto Total: %s", s.TotalWealth))
	doc.PlainText(fmt.Sprintf("Rentabilidad Ponderada: %.1f%% · Ratio de Liquidez: %.1f%%",
		s.WeightedReturn, s.LiquidityRatio))

	doc.H2("Distribución de Activos")
	rows := make([][]string, 0, len(s.Allocation))
	for _, a := range s.Allocation {
		rows = append(rows, []string{a.Name, a.Value.String(), fmt.Sprintf("%.1f%%", a.Percent)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Clase de Activo", "Valor", "Peso"},
		Rows:   rows,
	})

	doc.H2("Evolución")
	histRows := make([][]string, 0, len(s.History))
	for _, p := range s.History {
		histRows = append(histRows, []string{
			fmt.Sprintf("%d", p.Year),
			p.Wealth.String(),
			fmt.Sprintf("%+.1f%%", p.Return),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Año", "Patrimonio", "Retorno"},
		Rows:   histRows,
	})

	doc.H2("Riesgo")
	doc.Table(md.TableSet{
		Header: []string{"Métrica", "Valor"},
		Rows: [][]string{
			{"Volatilidad", fmt.Sprintf("%.1f%%", s.Risk.Volatility)},
			{"Ratio de Sharpe", fmt.Sprintf("%.1f", s.Risk.SharpeRatio)},
			{"VaR (5%)", s.Risk.ValueAtRisk.String()},
		},
	})

	if len(s.Flagged) > 0 {
		doc.H2("Registros Descartados")
		doc.PlainText("Las siguientes partidas no pudieron normalizarse y computan a cero:")
		doc.BulletList(s.Flagged...)
	}

	return doc.String()
}
