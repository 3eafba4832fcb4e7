package nexus

import (
	"math"
	"testing"
)

func TestAggregateTotals(t *testing.T) {
	snap := Aggregate(Figures())

	if !snap.TotalWealth.IsPositive() {
		t.Fatalf("TotalWealth = %v, want positive", snap.TotalWealth)
	}
	if len(snap.Flagged) != 0 {
		t.Errorf("Flagged = %v, want none for the static records", snap.Flagged)
	}

	// The allocation must account for every euro of the total.
	var sum Money
	var pct float64
	for _, a := range snap.Allocation {
		sum = sum.Add(a.Value)
		pct += a.Percent
	}
	if !sum.Equal(snap.TotalWealth) {
		t.Errorf("sum(allocation) = %v, want %v", sum, snap.TotalWealth)
	}
	if math.Abs(pct-100) >= 0.5 {
		t.Errorf("sum(percent) = %v, want within 0.5 of 100", pct)
	}

	// Descending by value.
	for i := 1; i < len(snap.Allocation); i++ {
		if snap.Allocation[i-1].Value.LessThan(snap.Allocation[i].Value) {
			t.Errorf("allocation not sorted at %d: %v < %v", i,
				snap.Allocation[i-1].Value, snap.Allocation[i].Value)
		}
	}

	// The blended return sits between the lowest and highest table rates.
	if snap.WeightedReturn < 3.5 || snap.WeightedReturn > 21.4 {
		t.Errorf("WeightedReturn = %v, want within the rate table's range", snap.WeightedReturn)
	}
	if snap.LiquidityRatio <= 0 || snap.LiquidityRatio >= 100 {
		t.Errorf("LiquidityRatio = %v, want in (0, 100)", snap.LiquidityRatio)
	}
}

func TestAggregateEmpty(t *testing.T) {
	for _, figs := range [][]Figure{nil, {}} {
		snap := Aggregate(figs)
		if !snap.TotalWealth.IsZero() {
			t.Errorf("TotalWealth = %v, want 0", snap.TotalWealth)
		}
		if snap.WeightedReturn != 0 || snap.LiquidityRatio != 0 {
			t.Errorf("returns = (%v, %v), want (0, 0)",
				snap.WeightedReturn, snap.LiquidityRatio)
		}
	}
}

func TestAggregateFlagsMalformed(t *testing.T) {
	figs := []Figure{
		{Name: "good", Category: Treasury, Amount: 1_000_000},
		{Name: "bad", Category: RealEstate, Raw: "N/A"},
	}
	snap := Aggregate(figs)

	if want := M(1_000_000); !snap.TotalWealth.Equal(want) {
		t.Errorf("TotalWealth = %v, want %v: malformed figures must contribute zero", snap.TotalWealth, want)
	}
	if len(snap.Flagged) != 1 || snap.Flagged[0] != "bad" {
		t.Errorf("Flagged = %v, want [bad]", snap.Flagged)
	}
}

func TestAggregateDeterministic(t *testing.T) {
	a, b := Aggregate(Figures()), Aggregate(Figures())
	if !a.TotalWealth.Equal(b.TotalWealth) || a.WeightedReturn != b.WeightedReturn {
		t.Error("Aggregate is not deterministic over identical inputs")
	}
	for i := range a.Allocation {
		x, y := a.Allocation[i], b.Allocation[i]
		if x.Name != y.Name || !x.Value.Equal(y.Value) || x.Percent != y.Percent {
			t.Errorf("allocation entry %d differs between runs: %+v vs %+v", i, x, y)
		}
	}
}

func TestAggregateHistoryAndRisk(t *testing.T) {
	snap := Aggregate(Figures())

	if len(snap.History) != 4 {
		t.Fatalf("len(History) = %d, want 4", len(snap.History))
	}
	last := snap.History[len(snap.History)-1]
	if !last.Wealth.Equal(snap.TotalWealth) {
		t.Errorf("last history point = %v, want current total %v", last.Wealth, snap.TotalWealth)
	}
	if want := snap.TotalWealth.Scale(0.05); !snap.Risk.ValueAtRisk.Equal(want) {
		t.Errorf("ValueAtRisk = %v, want %v", snap.Risk.ValueAtRisk, want)
	}
}
