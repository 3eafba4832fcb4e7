package nexus

// The static, read-only asset records behind every dashboard view and every
// report section. Nothing in this file is ever mutated; aggregation reads it
// fresh on each call.

const (
	AppName  = "NEXUS FAMILY OFFICE"
	UserName = "Oscar Ocampo"
	UserRole = "Responsable de Gestión"
)

// treasurySupplement is the fixed cash position held outside the holdings
// list (current accounts and money-market deposits).
const treasurySupplement = 5_000_000

// environmentalValue is the carbon-rights book value.
const environmentalValue = 1_200_000

// RealEstateAsset is one property in the direct real-estate book.
type RealEstateAsset struct {
	ID        string
	Name      string
	Value     string // locale-formatted valuation, e.g. "4.500.000 €"
	Yield     string
	Status    string
	Occupancy int // percent
	Location  string
}

var RealEstateAssets = []RealEstateAsset{
	{ID: "1", Name: "Edificio Oficinas Castellón Centro", Value: "4.500.000 €", Yield: "5.2%", Status: "Ocupado", Occupancy: 100, Location: "Castellón, ES"},
	{ID: "2", Name: "Nave Logística Vila-real", Value: "2.100.000 €", Yield: "6.8%", Status: "Ocupado", Occupancy: 90, Location: "Vila-real, ES"},
	{ID: "3", Name: "Promoción Residencial Playa", Value: "3.800.000 €", Yield: "--", Status: "En Construcción", Occupancy: 0, Location: "Benicàssim, ES"},
}

// REOperating carries the operating figures reported per property.
type REOperating struct {
	ID          string
	NOI         float64 // net operating income, annual
	CapRate     float64
	LeaseExpiry string
}

var REOperatingData = []REOperating{
	{ID: "1", NOI: 234_000, CapRate: 5.2, LeaseExpiry: "2029-06"},
	{ID: "2", NOI: 142_800, CapRate: 6.8, LeaseExpiry: "2027-11"},
	{ID: "3", NOI: 0, CapRate: 0, LeaseExpiry: "N/A"},
}

// Holding is one marketable-security position.
type Holding struct {
	Ticker string
	Name   string
	Type   string
	Value  string // locale-formatted, e.g. "2.4M €"
	Change string
}

var PortfolioHoldings = []Holding{
	{Ticker: "SPY", Name: "S&P 500 ETF Trust", Type: "ETF", Value: "2.4M €", Change: "+1.2%"},
	{Ticker: "MSFT", Name: "Microsoft Corp", Type: "Equity", Value: "1.8M €", Change: "+0.8%"},
	{Ticker: "V", Name: "Visa Inc.", Type: "Equity", Value: "950k €", Change: "-0.3%"},
	{Ticker: "BRK.B", Name: "Berkshire Hathaway", Type: "Equity", Value: "1.1M €", Change: "+0.5%"},
}

// PEFund is one private-equity commitment. The position is valued at
// Called * TVPI, the usual shortcut when the GP reports no direct NAV.
type PEFund struct {
	Name      string
	Vintage   int
	Committed float64
	Called    float64
	TVPI      float64
	IRR       float64
}

func (f PEFund) NAV() float64 { return f.Called * f.TVPI }

var PEFunds = []PEFund{
	{Name: "Altamar Global Buyout IX", Vintage: 2020, Committed: 5_000_000, Called: 4_000_000, TVPI: 1.45, IRR: 18.2},
	{Name: "Iberian Growth Partners II", Vintage: 2022, Committed: 3_000_000, Called: 2_500_000, TVPI: 1.62, IRR: 21.4},
	{Name: "Nexus Ventures Seed I", Vintage: 2023, Committed: 4_000_000, Called: 3_000_000, TVPI: 1.15, IRR: 13.2},
}

// peAverageIRR feeds the private-equity row of the assumed-return table.
var peAverageIRR = func() float64 {
	var sum float64
	for _, f := range PEFunds {
		sum += f.IRR
	}
	return sum / float64(len(PEFunds))
}()

// CapitalCall is one forecast capital call on a PE commitment.
type CapitalCall struct {
	Fund   string
	Date   string
	Status string // Confirmed or Estimated
	Amount float64
}

var PECapitalCalls = []CapitalCall{
	{Fund: "Altamar Global Buyout IX", Date: "2026-04", Status: "Confirmed", Amount: 500_000},
	{Fund: "Iberian Growth Partners II", Date: "2026-07", Status: "Estimated", Amount: 350_000},
	{Fund: "Nexus Ventures Seed I", Date: "2026-09", Status: "Estimated", Amount: 400_000},
}

// PipelineFund is one prospective commitment under review.
type PipelineFund struct {
	Name             string
	Strategy         string
	Stage            string
	TargetCommitment float64
	ExpectedClose    string
}

var PEPipeline = []PipelineFund{
	{Name: "Thoma Bravo Fund XVI", Strategy: "Tech Buyout", Stage: "Due Diligence", TargetCommitment: 2_000_000, ExpectedClose: "Q2 2026"},
	{Name: "A16Z Crypto Fund IV", Strategy: "Venture / Crypto", Stage: "Initial Review", TargetCommitment: 1_000_000, ExpectedClose: "Q3 2026"},
	{Name: "Brookfield Infrastructure V", Strategy: "Infrastructure", Stage: "Approved", TargetCommitment: 3_000_000, ExpectedClose: "Q1 2026"},
}

// CryptoHolding is one digital-asset position, valued at Amount * Price.
type CryptoHolding struct {
	Name   string
	Symbol string
	Amount float64
	Price  float64 // EUR spot
	Change string  // 24h
}

var CryptoHoldings = []CryptoHolding{
	{Name: "Bitcoin", Symbol: "BTC", Amount: 45, Price: 98_500, Change: "+2.1%"},
	{Name: "Ethereum", Symbol: "ETH", Amount: 520, Price: 3_450, Change: "+1.4%"},
}

// businessMetrics are the operating company's headline figures.
type businessMetrics struct {
	Revenue   float64
	EBITDA    float64
	NetMargin float64
	Valuation float64
	Employees int
	Growth    float64 // annual, percent
}

var BusinessMetrics = businessMetrics{
	Revenue:   42_000_000,
	EBITDA:    9_800_000,
	NetMargin: 14.2,
	Valuation: 85_000_000,
	Employees: 310,
	Growth:    12.5,
}

// passionMetrics summarize the art & collectibles book.
type passionMetrics struct {
	TotalValue   float64
	Appreciation float64 // CAGR, percent
}

var PassionMetrics = passionMetrics{TotalValue: 12_500_000, Appreciation: 12.5}

// PassionPiece is one piece in the collection.
type PassionPiece struct {
	Name     string
	Category string
	Value    float64
	Trend    string
}

var PassionPortfolio = []PassionPiece{
	{Name: "Joan Miró, 'Constel·lació'", Category: "arte", Value: 6_800_000, Trend: "+9.2%"},
	{Name: "Ferrari 250 GT Lusso (1963)", Category: "automoción", Value: 3_200_000, Trend: "+14.5%"},
	{Name: "Patek Philippe Ref. 2499", Category: "relojería", Value: 1_400_000, Trend: "+11.0%"},
	{Name: "Bodega Rioja Gran Reserva (colección)", Category: "vino", Value: 1_100_000, Trend: "+6.8%"},
}

// PhilanthropyProject is one foundation initiative.
type PhilanthropyProject struct {
	Title    string
	Category string
	Location string
	Budget   float64
	SDG      string
}

var PhilanthropyProjects = []PhilanthropyProject{
	{Title: "Becas STEM Castellón", Category: "Educación", Location: "Castellón, ES", Budget: 250_000, SDG: "ODS 4: Educación de Calidad"},
	{Title: "Reforestación Sierra de Espadán", Category: "Medio Ambiente", Location: "Castellón, ES", Budget: 180_000, SDG: "ODS 15: Vida de Ecosistemas"},
	{Title: "Agua Potable Sahel", Category: "Desarrollo", Location: "Burkina Faso", Budget: 320_000, SDG: "ODS 6: Agua Limpia"},
}

// CashFlowMonth is one row of the treasury's monthly projection.
type CashFlowMonth struct {
	Month   string
	Income  float64
	Expense float64
	Net     float64
}

var TreasuryCashFlow = []CashFlowMonth{
	{Month: "Ene", Income: 450_000, Expense: 280_000, Net: 170_000},
	{Month: "Feb", Income: 420_000, Expense: 285_000, Net: 135_000},
	{Month: "Mar", Income: 460_000, Expense: 280_000, Net: 180_000},
	{Month: "Abr", Income: 410_000, Expense: 290_000, Net: 120_000},
	{Month: "May", Income: 480_000, Expense: 280_000, Net: 200_000},
	{Month: "Jun", Income: 430_000, Expense: 285_000, Net: 145_000},
}

// LiquidityLine is the treasury position per currency.
type LiquidityLine struct {
	Currency   string
	Percentage float64
	Amount     float64
}

var TreasuryLiquidity = []LiquidityLine{
	{Currency: "EUR", Percentage: 72, Amount: 3_600_000},
	{Currency: "USD", Percentage: 21, Amount: 1_050_000},
	{Currency: "CHF", Percentage: 7, Amount: 350_000},
}

// RiskFactor is one scored threat on the risk radar.
type RiskFactor struct {
	Subject string
	Score   int // 0-100
}

var RiskFactors = []RiskFactor{
	{Subject: "Concentración Negocio Familiar", Score: 78},
	{Subject: "Iliquidez (PE + Inmobiliario)", Score: 65},
	{Subject: "Tipos de Interés", Score: 52},
	{Subject: "Divisa (USD)", Score: 38},
	{Subject: "Regulatorio / Fiscal", Score: 30},
}

// EnvTransaction is one trade in the carbon-rights book.
type EnvTransaction struct {
	Date         string
	Type         string // BUY or SELL
	Counterparty string
	Amount       float64 // tonnes
	Price        float64 // EUR per tonne
}

var EnvTransactions = []EnvTransaction{
	{Date: "2026-01-14", Type: "BUY", Counterparty: "EEX Leipzig", Amount: 5_000, Price: 82.40},
	{Date: "2026-02-03", Type: "SELL", Counterparty: "ICE Endex", Amount: 2_000, Price: 85.10},
	{Date: "2026-02-21", Type: "BUY", Counterparty: "EEX Leipzig", Amount: 3_500, Price: 80.75},
}

// Fee is the cost structure per asset class.
type Fee struct {
	AssetClass string
	MgmtFee    float64
	PerfFee    float64
	TotalCost  float64 // estimated annual
}

var FeesStructure = []Fee{
	{AssetClass: "Mercados Financieros", MgmtFee: 0.35, PerfFee: 0, TotalCost: 21_900},
	{AssetClass: "Private Equity", MgmtFee: 2.0, PerfFee: 20, TotalCost: 266_000},
	{AssetClass: "Hedge Funds", MgmtFee: 1.8, PerfFee: 15, TotalCost: 54_000},
	{AssetClass: "Real Estate (gestión)", MgmtFee: 0.8, PerfFee: 0, TotalCost: 83_200},
}

// Benchmark is one reference index the portfolio is compared against.
type Benchmark struct {
	Name string
	YTD  float64
}

var Benchmarks = struct {
	SP500     Benchmark
	Inflation Benchmark
	RiskFree  Benchmark
}{
	SP500:     Benchmark{Name: "S&P 500", YTD: 12.5},
	Inflation: Benchmark{Name: "Inflación (IPC)", YTD: 3.2},
	RiskFree:  Benchmark{Name: "Euribor 12M", YTD: 4.5},
}

// TopMover is one position singled out on the executive dashboard.
type TopMover struct {
	Name   string
	Change string
	Impact string // high_positive, positive or negative
}

// Alert is one management alert on the executive dashboard.
type Alert struct {
	Message  string
	Severity string // high or medium
}

var ExecutiveSummary = struct {
	YTDReturn float64
	TopMovers []TopMover
	Alerts    []Alert
}{
	YTDReturn: 9.8,
	TopMovers: []TopMover{
		{Name: "Iberian Growth Partners II", Change: "+21.4%", Impact: "high_positive"},
		{Name: "S&P 500 ETF Trust", Change: "+12.5%", Impact: "positive"},
		{Name: "Visa Inc.", Change: "-0.3%", Impact: "negative"},
	},
	Alerts: []Alert{
		{Message: "Capital call Altamar previsto en abril (500k €)", Severity: "high"},
		{Message: "Renovación contrato Nave Vila-real en 2027", Severity: "medium"},
	},
}

// Figures builds the canonical figure list the aggregator consumes: one
// contribution per record entry, plus the fixed treasury supplement and the
// environmental book value.
func Figures() []Figure {
	var figs []Figure
	for _, a := range RealEstateAssets {
		figs = append(figs, Figure{Name: a.Name, Category: RealEstate, Raw: a.Value})
	}
	for _, h := range PortfolioHoldings {
		figs = append(figs, Figure{Name: h.Ticker, Category: PublicMarkets, Raw: h.Value})
	}
	for _, f := range PEFunds {
		figs = append(figs, Figure{Name: f.Name, Category: PrivateEquity, Amount: f.NAV()})
	}
	for _, c := range CryptoHoldings {
		figs = append(figs, Figure{Name: c.Symbol, Category: Crypto, Amount: c.Amount * c.Price})
	}
	figs = append(figs,
		Figure{Name: "Tesorería", Category: Treasury, Amount: treasurySupplement},
		Figure{Name: "Negocio Familiar", Category: OperatingBusiness, Amount: BusinessMetrics.Valuation},
		Figure{Name: "Colección", Category: PassionAssets, Amount: PassionMetrics.TotalValue},
		Figure{Name: "Derechos CO₂", Category: Environmental, Amount: environmentalValue},
	)
	return figs
}
