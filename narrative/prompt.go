package narrative

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/nexusfo/nexus"
)

// Context is the structured payload serialized into the prompt: the live
// snapshot plus the static records the model is allowed to cite.
type Context struct {
	TotalWealth    string                      `json:"totalWealth"`
	WeightedReturn float64                     `json:"weightedReturn"`
	LiquidityRatio float64                     `json:"liquidityRatio"`
	Allocation     []allocationEntry           `json:"allocation"`
	Assets         assetDetail                 `json:"assets"`
	Treasury       treasuryDetail              `json:"treasury"`
	Philanthropy   []nexus.PhilanthropyProject `json:"philanthropy"`
	Risk           []nexus.RiskFactor          `json:"risk"`
	Benchmarks     map[string]float64          `json:"benchmarks"`
	ReportContext  reportContext               `json:"reportContext"`
}

type allocationEntry struct {
	Name    string  `json:"name"`
	Value   float64 `json:"value"`
	Percent float64 `json:"percent"`
}

type assetDetail struct {
	RealEstate    []nexus.RealEstateAsset `json:"realEstate"`
	Portfolio     []nexus.Holding         `json:"financialPortfolio"`
	PrivateEquity []nexus.PEFund          `json:"privateEquity"`
	Crypto        []nexus.CryptoHolding   `json:"crypto"`
}

type treasuryDetail struct {
	CashFlow  []nexus.CashFlowMonth `json:"cashFlow"`
	Liquidity []nexus.LiquidityLine `json:"liquidity"`
}

type reportContext struct {
	EntityName string `json:"entityName"`
	Period     string `json:"period"`
	Currency   string `json:"currency"`
}

// spanishMonths avoids a locale dependency for the one date we print.
var spanishMonths = [...]string{"enero", "febrero", "marzo", "abril", "mayo",
	"junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}

// NewContext assembles the prompt context from a snapshot and the static
// records.
func NewContext(snap nexus.Snapshot, now time.Time) Context {
	alloc := make([]allocationEntry, 0, len(snap.Allocation))
	for _, a := range snap.Allocation {
		alloc = append(alloc, allocationEntry{Name: a.Name, Value: a.Value.AsFloat(), Percent: a.Percent})
	}
	return Context{
		TotalWealth:    snap.TotalWealth.String(),
		WeightedReturn: snap.WeightedReturn,
		LiquidityRatio: snap.LiquidityRatio,
		Allocation:     alloc,
		Assets: assetDetail{
			RealEstate:    nexus.RealEstateAssets,
			Portfolio:     nexus.PortfolioHoldings,
			PrivateEquity: nexus.PEFunds,
			Crypto:        nexus.CryptoHoldings,
		},
		Treasury: treasuryDetail{
			CashFlow:  nexus.TreasuryCashFlow,
			Liquidity: nexus.TreasuryLiquidity,
		},
		Philanthropy: nexus.PhilanthropyProjects,
		Risk:         nexus.RiskFactors,
		Benchmarks: map[string]float64{
			nexus.Benchmarks.SP500.Name:     nexus.Benchmarks.SP500.YTD,
			nexus.Benchmarks.Inflation.Name: nexus.Benchmarks.Inflation.YTD,
			nexus.Benchmarks.RiskFree.Name:  nexus.Benchmarks.RiskFree.YTD,
		},
		ReportContext: reportContext{
			EntityName: nexus.AppName,
			Period:     fmt.Sprintf("%s de %d", spanishMonths[now.Month()-1], now.Year()),
			Currency:   nexus.ReportingCurrency,
		},
	}
}

// BuildPrompt renders the single-shot completion prompt: role framing, the
// nine-key JSON output contract and the serialized context. The model must
// answer with one JSON object and nothing else.
func BuildPrompt(c Context) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("could not serialize prompt context: %w", err)
	}

	firstProperty := "Activo Inmobiliario"
	if len(c.Assets.RealEstate) > 0 {
		firstProperty = c.Assets.RealEstate[0].Name
	}

	return fmt.Sprintf(`Role: Eres el Chief Investment Officer (CIO) de Nexus Family Office.
Task: Generar una "Memoria Mensual" ejecutiva basada estrictamente en los datos JSON proporcionados.

CRITICAL INSTRUCTION: TODO EL TEXTO DEBE ESTAR EN ESPAÑOL PERFECTO Y PROFESIONAL. NO USES INGLÉS.

Style: Autoridad de banca privada, exhaustivo, estratégico.

Output Format: un único objeto JSON con los siguientes campos, todos de tipo string con TEXTO EN MARKDOWN (usar negritas **texto** para énfasis):
{
  "executiveSummary": "Resumen ejecutivo estratégico de 1 página (aprox 400 palabras). DEBES CITAR el Patrimonio Total (%s) y explicar los cambios. Inventa una 'Decisión del Comité' reciente.",
  "macroAnalysis": "Análisis macroeconómico global (aprox 600 palabras): Bancos Centrales (BCE/Fed), inflación y geopolítica, con jerga financiera en español.",
  "strategyNotes": "Informe de estrategia de asignación de activos (600 palabras): por qué estamos sobre/infraponderados, con un 'Giro Táctico' para el trimestre.",
  "sectorFocus": "Análisis sectorial a fondo de un sector relevante para la cartera.",
  "geoStrategy": "Análisis de exposición geográfica: mercados emergentes vs desarrollados según la cartera.",
  "portfolioPerformance": "Comentario de rendimiento (500 palabras). OBLIGATORIO: mencionar activos por nombre (ej. '%s') con razones coherentes de su valoración.",
  "riskAnalysis": "Gestión de riesgos (400 palabras): riesgo de liquidez, beta de mercado, y un 'Escenario de Cola' que estamos cubriendo.",
  "cashFlowAnalysis": "Análisis de tesorería: capital calls previstos y cobertura del burn rate.",
  "philanthropySpotlight": "Párrafo sobre la Fundación con un hito reciente."
}

Data Context:
%s

Instructions:
- IDIOMA: SOLO ESPAÑOL.
- Sé realista pero creativo; inventa detalles coherentes si faltan datos.
- Usa el tono "Nosotros" (el equipo del Family Office).
- Menciona el "Comité de Inversiones" y la "Revisión Estratégica".
- Responde únicamente con el objeto JSON, sin texto adicional.`,
		c.TotalWealth, firstProperty, data), nil
}
