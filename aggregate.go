package nexus

import (
	"sort"
)

// AllocationEntry is one row of the portfolio breakdown.
type AllocationEntry struct {
	Name    string
	Value   Money
	Percent float64 // share of total wealth, one decimal
	Color   string
	Route   string
}

// HistoryPoint is one year of the simulated wealth evolution series.
type HistoryPoint struct {
	Year   int
	Wealth Money
	Return float64
}

// RiskMetrics are the derived portfolio-level risk figures.
type RiskMetrics struct {
	Volatility  float64
	SharpeRatio float64
	ValueAtRisk Money // 5% VaR
}

// Snapshot is the aggregator's output: the whole net-worth model derived
// from one pass over the figures. It is computed fresh on every call and
// holds no reference to mutable state.
type Snapshot struct {
	TotalWealth    Money
	Allocation     []AllocationEntry // sorted descending by value
	WeightedReturn float64           // value-weighted annual return, percent
	LiquidityRatio float64           // percent of total wealth held liquid
	History        []HistoryPoint
	Risk           RiskMetrics

	// Flagged lists figures whose raw value could not be parsed. They
	// contribute zero to every total instead of corrupting them.
	Flagged []string
}

// Aggregate rolls the figures into a Snapshot. It is a pure function:
// deterministic given identical inputs and the fixed rate tables, safe to
// call repeatedly and concurrently.
func Aggregate(figures []Figure) Snapshot {
	var snap Snapshot

	byCategory := make(map[Category]Money)
	for _, f := range figures {
		amount, err := f.normalize()
		if err != nil || amount.IsNegative() {
			snap.Flagged = append(snap.Flagged, f.Name)
			continue
		}
		byCategory[f.Category] = byCategory[f.Category].Add(amount)
		snap.TotalWealth = snap.TotalWealth.Add(amount)
	}

	var weighted, liquid Money
	for cat, value := range byCategory {
		info := categories[cat]
		snap.Allocation = append(snap.Allocation, AllocationEntry{
			Name:  info.name,
			Value: value,
			Color: info.color,
			Route: info.route,
		})
		weighted = weighted.Add(value.Scale(info.ret))
		if info.liquid {
			liquid = liquid.Add(value)
		}
	}
	sort.Slice(snap.Allocation, func(i, j int) bool {
		return snap.Allocation[j].Value.LessThan(snap.Allocation[i].Value)
	})

	// Guard the zero-wealth case: percentages and ratios stay zero
	// instead of dividing by zero.
	if !snap.TotalWealth.IsZero() {
		for i := range snap.Allocation {
			snap.Allocation[i].Percent = snap.Allocation[i].Value.PercentOf(snap.TotalWealth)
		}
		snap.WeightedReturn = weighted.AsFloat() / snap.TotalWealth.AsFloat()
		snap.LiquidityRatio = liquid.PercentOf(snap.TotalWealth)
	}

	snap.History = history(snap.TotalWealth, snap.WeightedReturn)
	snap.Risk = RiskMetrics{
		Volatility:  8.4,
		SharpeRatio: 1.8,
		ValueAtRisk: snap.TotalWealth.Scale(0.05),
	}
	return snap
}

// history rebuilds the simulated evolution series used by the charts. The
// back-years are fixed fractions of the current total; only the current year
// carries the computed return.
func history(total Money, weightedReturn float64) []HistoryPoint {
	return []HistoryPoint{
		{Year: 2022, Wealth: total.Scale(0.85), Return: -5.2},
		{Year: 2023, Wealth: total.Scale(0.92), Return: 8.4},
		{Year: 2024, Wealth: total.Scale(0.96), Return: 9.1},
		{Year: 2025, Wealth: total, Return: weightedReturn},
	}
}
