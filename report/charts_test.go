package report

import (
	"math"
	"testing"
)

func segmentWidths(ops []Op, box Box) []float64 {
	var widths []float64
	for _, op := range ops {
		r, ok := op.(fillRect)
		if !ok || r.radius > 0 {
			continue // skip the rounded background
		}
		if r.box.Y == box.Y && r.box.H == box.H {
			widths = append(widths, r.box.W)
		}
	}
	return widths
}

func TestStackedBarProportions(t *testing.T) {
	box := Box{X: 10, Y: 20, W: 100, H: 10}
	ops := StackedBar(box, []Segment{
		{Value: 50, Color: chartBlue},
		{Value: 30, Color: chartGreen},
		{Value: 20, Color: chartAmber},
	})

	widths := segmentWidths(ops, box)
	if len(widths) != 3 {
		t.Fatalf("got %d segments, want 3", len(widths))
	}
	wantWidths := []float64{50, 30, 20}
	var sum float64
	for i, w := range widths {
		if math.Abs(w-wantWidths[i]) > 1e-9 {
			t.Errorf("segment %d width = %v, want %v", i, w, wantWidths[i])
		}
		sum += w
	}
	if math.Abs(sum-box.W) > 1e-9 {
		t.Errorf("segment widths sum to %v, want the box width %v", sum, box.W)
	}
}

func TestStackedBarIgnoresNonPositiveValues(t *testing.T) {
	box := Box{X: 0, Y: 0, W: 100, H: 10}
	ops := StackedBar(box, []Segment{
		{Value: 75, Color: chartBlue},
		{Value: -5, Color: chartRed},
		{Value: 25, Color: chartGreen},
	})
	widths := segmentWidths(ops, box)
	if len(widths) != 2 {
		t.Fatalf("got %d segments, want 2 (negative value dropped)", len(widths))
	}
	if math.Abs(widths[0]-75) > 1e-9 || math.Abs(widths[1]-25) > 1e-9 {
		t.Errorf("widths = %v, want [75 25]", widths)
	}
}

func TestStackedBarZeroTotal(t *testing.T) {
	ops := StackedBar(Box{W: 100, H: 10}, []Segment{{Value: 0}, {Value: 0}})
	// Background and border only, no segment rectangles.
	if len(ops) != 2 {
		t.Errorf("got %d ops for a zero-sum bar, want 2", len(ops))
	}
}

func TestGroupedBarsClampAndCount(t *testing.T) {
	box := Box{X: 0, Y: 0, W: 120, H: 40}
	segments := []Segment{
		{Label: "a", Value: 10},
		{Label: "b", Value: 50}, // above max, must clamp to the box
	}
	ops := GroupedBars(box, segments, 20)

	// One axis line plus bar, value label and name label per segment.
	if want := 1 + 3*len(segments); len(ops) != want {
		t.Fatalf("got %d ops, want %d", len(ops), want)
	}
	var bars []fillRect
	for _, op := range ops {
		if r, ok := op.(fillRect); ok {
			bars = append(bars, r)
		}
	}
	if math.Abs(bars[0].box.H-20) > 1e-9 {
		t.Errorf("first bar height = %v, want 20", bars[0].box.H)
	}
	if bars[1].box.H != box.H {
		t.Errorf("clamped bar height = %v, want %v", bars[1].box.H, box.H)
	}
}

func TestHeatmapGridAndMarkers(t *testing.T) {
	ops := Heatmap(Box{X: 0, Y: 0, W: 90, H: 90}, map[HeatCell][]int{
		{Row: 0, Col: 2}: {1, 2},
	})

	var cells, dots int
	for _, op := range ops {
		switch op.(type) {
		case fillRect:
			cells++
		case dot:
			dots++
		}
	}
	if cells != 9 {
		t.Errorf("got %d grid cells, want 9", cells)
	}
	if dots != 2 {
		t.Errorf("got %d risk markers, want 2", dots)
	}
}

func TestHeatColorSeverity(t *testing.T) {
	if got := heatColor(HeatCell{Row: 0, Col: 2}); got != chartRed {
		t.Errorf("high/high = %v, want red", got)
	}
	if got := heatColor(HeatCell{Row: 2, Col: 0}); got != chartGreen {
		t.Errorf("low/low = %v, want green", got)
	}
	if got := heatColor(HeatCell{Row: 1, Col: 1}); got == chartRed || got == chartGreen {
		t.Errorf("center cell must stay neutral, got %v", got)
	}
}

func TestHexToRGB(t *testing.T) {
	if got := hexToRGB("#3b82f6"); got != chartBlue {
		t.Errorf("hexToRGB(#3b82f6) = %v, want %v", got, chartBlue)
	}
	if got := hexToRGB("not-a-color"); got != (RGB{}) {
		t.Errorf("hexToRGB(garbage) = %v, want black", got)
	}
}
