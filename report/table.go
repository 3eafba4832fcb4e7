package report

// column describes one table column: its heading, width weight and body
// alignment. A zero weight means an equal share of the table width.
type column struct {
	title  string
	weight float64
	align  string // "L", "C" or "R"
	bold   bool
}

// table is the minimal data grid every section uses: a filled heading row,
// bordered body cells, optional striping and an optional per-cell styler.
type table struct {
	columns  []column
	rows     [][]string
	headFill RGB
	striped  bool
	width    float64 // 0 means full content width
	// style may override the text color and weight of a body cell.
	style func(row, col int, cell string) (color *RGB, bold bool)
}

const rowHeight = 7.0

// render draws the table at the cursor, re-emitting the heading row after
// every page break, and advances the cursor past it.
func (d *doc) table(t table) {
	width := t.width
	if width == 0 {
		width = contentW
	}

	var totalWeight float64
	for _, c := range t.columns {
		if c.weight <= 0 {
			c.weight = 1
		}
		totalWeight += c.weight
	}
	widths := make([]float64, len(t.columns))
	for i, c := range t.columns {
		w := c.weight
		if w <= 0 {
			w = 1
		}
		widths[i] = w / totalWeight * width
	}

	head := func() {
		d.pdf.SetFillColor(t.headFill.R, t.headFill.G, t.headFill.B)
		d.pdf.SetTextColor(255, 255, 255)
		d.pdf.SetFont("Helvetica", "B", 9)
		d.pdf.SetXY(marginLeft, d.y)
		for i, c := range t.columns {
			d.pdf.CellFormat(widths[i], rowHeight, d.tr(c.title), "1", 0, "L", true, 0, "")
		}
		d.y += rowHeight
	}

	d.ensure(2 * rowHeight)
	head()
	for i, row := range t.rows {
		if d.y+rowHeight > pageBottom {
			d.newPage(d.header)
			head()
		}
		fill := t.striped && i%2 == 1
		if fill {
			d.pdf.SetFillColor(lightGray.R, lightGray.G, lightGray.B)
		}
		d.pdf.SetXY(marginLeft, d.y)
		for j, cell := range row {
			color, bold := textGray, t.columns[j].bold
			if t.style != nil {
				c, b := t.style(i, j, cell)
				if c != nil {
					color = *c
				}
				bold = bold || b
			}
			style := ""
			if bold {
				style = "B"
			}
			d.pdf.SetFont("Helvetica", style, 9)
			d.pdf.SetTextColor(color.R, color.G, color.B)
			align := t.columns[j].align
			if align == "" {
				align = "L"
			}
			d.pdf.CellFormat(widths[j], rowHeight, d.tr(cell), "1", 0, align, fill, 0, "")
		}
		d.y += rowHeight
	}
	d.y += 8
}
