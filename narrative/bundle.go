// Package narrative generates the AI-written prose sections of the wealth
// report through the Gemini API, and guarantees a deterministic fallback
// whenever the model is unreachable or answers garbage. A narrative failure
// must never block document production.
package narrative

// Bundle is the fixed set of prose sections embedded into the report. It is
// all-or-nothing: either every field was produced by one successful model
// call, or the whole bundle is the deterministic fallback. Mixed provenance
// is never allowed.
type Bundle struct {
	ExecutiveSummary      string `json:"executiveSummary"`
	MacroAnalysis         string `json:"macroAnalysis"`
	StrategyNotes         string `json:"strategyNotes"`
	SectorFocus           string `json:"sectorFocus"`
	GeoStrategy           string `json:"geoStrategy"`
	PortfolioPerformance  string `json:"portfolioPerformance"`
	RiskAnalysis          string `json:"riskAnalysis"`
	CashFlowAnalysis      string `json:"cashFlowAnalysis"`
	PhilanthropySpotlight string `json:"philanthropySpotlight"`
}

// keys lists the nine required JSON fields, in contract order.
var keys = []string{
	"executiveSummary",
	"macroAnalysis",
	"strategyNotes",
	"sectorFocus",
	"geoStrategy",
	"portfolioPerformance",
	"riskAnalysis",
	"cashFlowAnalysis",
	"philanthropySpotlight",
}

// Fallback returns the deterministic replacement bundle used whenever the
// model path fails at any stage. The reason ends up in the executive summary
// so the reader knows why the prose is canned.
func Fallback(reason string) Bundle {
	detail := ""
	if reason != "" {
		detail = " Detalle: " + reason + "."
	}
	return Bundle{
		ExecutiveSummary:      "No se pudo generar el análisis automático para este periodo; se presenta un resumen estándar." + detail + " Los datos cuantitativos del informe no se ven afectados.",
		MacroAnalysis:         "El análisis macroeconómico detallado no está disponible en esta edición. Consulte las cifras de referencia incluidas en el cuadro de mando.",
		StrategyNotes:         "Notas de estrategia no disponibles. La asignación de activos vigente se mantiene sin cambios respecto a la última revisión del Comité de Inversiones.",
		SectorFocus:           "Análisis sectorial no disponible en esta edición.",
		GeoStrategy:           "Análisis de exposición geográfica no disponible en esta edición.",
		PortfolioPerformance:  "Comentario de rendimiento no disponible. Las posiciones y su variación figuran en las tablas de la cartera.",
		RiskAnalysis:          "Análisis narrativo de riesgos no disponible. El mapa de calor y la evaluación de amenazas reflejan la última puntuación registrada.",
		CashFlowAnalysis:      "Análisis de tesorería no disponible. La proyección de flujo de caja figura en la sección de Tesorería.",
		PhilanthropySpotlight: "Resumen de la Fundación no disponible en esta edición.",
	}
}
