package report

import "fmt"

// The chart routines are pure: a bounding box and values in, a flat list of
// drawing commands out. They touch no document state, which keeps the chart
// geometry testable without a rendering surface.

// RGB is a 24-bit color.
type RGB struct{ R, G, B int }

// Box is the bounding box a chart is laid out in, in page units.
type Box struct{ X, Y, W, H float64 }

// Segment is one value-color pair of a chart. Text, when set, replaces the
// default percentage rendering of the value label.
type Segment struct {
	Label string
	Value float64
	Color RGB
	Text  string
}

// Op is a single drawing command.
type Op interface{ op() }

type fillRect struct {
	box    Box
	color  RGB
	radius float64
}

type strokeRect struct {
	box    Box
	color  RGB
	width  float64
	radius float64
}

type line struct {
	x1, y1, x2, y2 float64
	color          RGB
	width          float64
}

type dot struct {
	x, y, r float64
	color   RGB
}

type label struct {
	x, y  float64
	text  string
	size  float64
	bold  bool
	color RGB
	align string // "L", "C" or "R"
}

func (fillRect) op()   {}
func (strokeRect) op() {}
func (line) op()       {}
func (dot) op()        {}
func (label) op()      {}

// StackedBar lays the segments out as one proportional horizontal bar over a
// neutral background. Segments with non-positive value get zero width; a
// zero-sum input yields just the background and border.
func StackedBar(b Box, segments []Segment) []Op {
	var total float64
	for _, s := range segments {
		if s.Value > 0 {
			total += s.Value
		}
	}

	ops := []Op{fillRect{box: b, color: RGB{240, 240, 240}, radius: 2}}
	if total > 0 {
		x := b.X
		for _, s := range segments {
			if s.Value <= 0 {
				continue
			}
			w := s.Value / total * b.W
			ops = append(ops, fillRect{box: Box{X: x, Y: b.Y, W: w, H: b.H}, color: s.Color})
			x += w
		}
	}
	return append(ops, strokeRect{box: b, color: RGB{200, 200, 200}, width: 0.2, radius: 2})
}

// GroupedBars draws one labeled vertical bar per segment against a baseline
// axis, scaled so that max fills the box height. Values above max are clamped
// to the box rather than escaping it.
func GroupedBars(b Box, segments []Segment, max float64) []Op {
	baseline := b.Y + b.H
	ops := []Op{line{x1: b.X, y1: baseline, x2: b.X + b.W, y2: baseline, color: RGB{200, 200, 200}, width: 0.2}}
	if len(segments) == 0 || max <= 0 {
		return ops
	}

	const barW = 15.0
	step := b.W / float64(len(segments))
	for i, s := range segments {
		h := s.Value / max * b.H
		if h > b.H {
			h = b.H
		}
		if h < 0 {
			h = 0
		}
		x := b.X + float64(i)*step + (step-barW)/2
		center := x + barW/2
		text := s.Text
		if text == "" {
			text = fmt.Sprintf("%.1f%%", s.Value)
		}
		ops = append(ops,
			fillRect{box: Box{X: x, Y: baseline - h, W: barW, H: h}, color: s.Color},
			label{x: center, y: baseline - h - 2, text: text, size: 10, color: RGB{50, 50, 50}, align: "C"},
			label{x: center, y: baseline + 5, text: s.Label, size: 8, color: RGB{100, 100, 100}, align: "C"},
		)
	}
	return ops
}

// PairedBars draws two bars per period side by side, the usual J-curve view
// of capital calls against distributions. Scaling follows GroupedBars.
func PairedBars(b Box, periods []string, left, right []float64, leftColor, rightColor RGB, max float64) []Op {
	baseline := b.Y + b.H
	ops := []Op{line{x1: b.X, y1: baseline, x2: b.X + b.W, y2: baseline, color: RGB{200, 200, 200}, width: 0.2}}
	if len(periods) == 0 || max <= 0 {
		return ops
	}

	const barW = 6.0
	step := b.W / float64(len(periods))
	for i, period := range periods {
		x := b.X + float64(i)*step + (step-2*barW)/2
		lh := clampHeight(left[i]/max*b.H, b.H)
		rh := clampHeight(right[i]/max*b.H, b.H)
		ops = append(ops,
			fillRect{box: Box{X: x, Y: baseline - lh, W: barW, H: lh}, color: leftColor},
			fillRect{box: Box{X: x + barW, Y: baseline - rh, W: barW, H: rh}, color: rightColor},
			label{x: x + barW, y: baseline + 5, text: period, size: 8, color: RGB{100, 100, 100}, align: "C"},
		)
	}
	return ops
}

func clampHeight(h, max float64) float64 {
	if h < 0 {
		return 0
	}
	if h > max {
		return max
	}
	return h
}

// HeatCell addresses one cell of the 3x3 risk grid. Row 0 is high impact,
// column 2 is high probability.
type HeatCell struct{ Row, Col int }

// heatColors is the fixed severity coloring of the grid.
func heatColor(c HeatCell) RGB {
	switch c {
	case HeatCell{Row: 0, Col: 2}:
		return chartRed
	case HeatCell{Row: 0, Col: 1}, HeatCell{Row: 1, Col: 2}:
		return chartAmber
	case HeatCell{Row: 2, Col: 0}:
		return chartGreen
	}
	return RGB{240, 240, 240}
}

// Heatmap draws the 3x3 impact/probability grid with axis labels and one
// numbered marker per placed risk.
func Heatmap(b Box, markers map[HeatCell][]int) []Op {
	cell := b.W / 3
	var ops []Op

	levels := []string{"Baja", "Media", "Alta"}
	for i, l := range levels {
		ops = append(ops,
			label{x: b.X + cell/2 + float64(i)*cell, y: b.Y + 3*cell + 5, text: l, size: 10, color: RGB{50, 50, 50}, align: "C"},
			label{x: b.X - 5, y: b.Y + cell/2 + float64(i)*cell, text: levels[2-i], size: 10, color: RGB{50, 50, 50}, align: "R"},
		)
	}
	ops = append(ops, label{x: b.X + 1.5*cell, y: b.Y + 3*cell + 15, text: "Probabilidad", size: 10, color: RGB{50, 50, 50}, align: "C"})

	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			box := Box{X: b.X + float64(col)*cell, Y: b.Y + float64(row)*cell, W: cell, H: cell}
			ops = append(ops,
				fillRect{box: box, color: heatColor(HeatCell{Row: row, Col: col})},
				strokeRect{box: box, color: RGB{255, 255, 255}, width: 0.3},
			)
			for i, n := range markers[HeatCell{Row: row, Col: col}] {
				x := box.X + cell/2 + float64(i%3-1)*7
				y := box.Y + cell/2 + float64(i/3)*7
				ops = append(ops,
					dot{x: x, y: y, r: 3, color: RGB{0, 0, 0}},
					label{x: x, y: y + 1, text: fmt.Sprintf("%d", n), size: 8, color: RGB{255, 255, 255}, align: "C"},
				)
			}
		}
	}
	return ops
}

// Legend lays swatch-plus-label pairs in rows starting at (x, y), wrapping
// before the right margin.
func Legend(x, y float64, items []Segment) []Op {
	var ops []Op
	for _, item := range items {
		ops = append(ops,
			fillRect{box: Box{X: x, Y: y, W: 3, H: 3}, color: item.Color},
			label{x: x + 5, y: y + 2.5, text: item.Label, size: 8, color: RGB{50, 50, 50}, align: "L"},
		)
		x += 45
		if x > pageWidth-30 {
			x = marginLeft
			y += 5
		}
	}
	return ops
}

// hexToRGB parses a "#rrggbb" display color; anything unparseable is black.
func hexToRGB(hex string) RGB {
	var c RGB
	if _, err := fmt.Sscanf(hex, "#%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
		return RGB{}
	}
	return c
}
