package nexus

// Category identifies one asset class aggregated separately before being
// rolled into total net worth.
type Category int

const (
	RealEstate Category = iota
	PublicMarkets
	PrivateEquity
	Treasury
	PassionAssets
	Crypto
	OperatingBusiness
	Environmental
)

// categoryInfo carries the fixed, per-category business assumptions: the
// display identity used by the dashboard and the report, the assumed annual
// return rate, and whether the class counts as liquid.
type categoryInfo struct {
	name   string // display name, as shown on the dashboard
	color  string // hex display color
	route  string // navigation target in the host UI
	ret    float64
	liquid bool
}

// The assumed-return rates are hard-coded business assumptions carried over
// from the dashboard. The private-equity rate is the average IRR of the
// current fund roster, recomputed in records.go.
var categories = map[Category]categoryInfo{
	RealEstate:        {"Real Estate", "#3b82f6", "/real-estate", 5.5, false},
	PublicMarkets:     {"Mercados Financieros", "#10b981", "/portfolio", 8.5, true},
	PrivateEquity:     {"Private Equity", "#f59e0b", "/private-equity", peAverageIRR, false},
	Treasury:          {"Tesorería", "#64748b", "/treasury", 3.5, true},
	PassionAssets:     {"Pasión y Arte", "#d946ef", "/passion-assets", PassionMetrics.Appreciation, false},
	Crypto:            {"Criptoactivos", "#f97316", "/crypto", 15.0, true},
	OperatingBusiness: {"Negocio Familiar", "#6366f1", "/family-business", BusinessMetrics.Growth, false},
	Environmental:     {"Otros (Impacto/Eco)", "#06b6d4", "/environmental", 5.0, false},
}

func (c Category) String() string { return categories[c].name }

// AssumedReturn returns the fixed annual return rate assumed for the category.
func (c Category) AssumedReturn() float64 { return categories[c].ret }

// Liquid reports whether holdings in this category count towards the
// liquidity ratio (cash, marketable securities, liquid digital assets).
func (c Category) Liquid() bool { return categories[c].liquid }

// Figure is one raw contribution to net worth, immutable and sourced from
// the static records. Raw carries a locale-formatted amount ("4.500.000 €");
// when Raw is empty the figure is already numeric and Amount is used as-is.
type Figure struct {
	Name     string
	Category Category
	Raw      string
	Amount   float64
}

// normalize resolves the figure to a canonical EUR amount.
func (f Figure) normalize() (Money, error) {
	if f.Raw == "" {
		return M(f.Amount), nil
	}
	return ParseAmount(f.Raw)
}
