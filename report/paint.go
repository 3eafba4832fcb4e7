package report

// paint replays a chart's drawing commands onto the document. This is the
// only place where the declarative ops meet the page.
func (d *doc) paint(ops []Op) {
	for _, op := range ops {
		switch v := op.(type) {
		case fillRect:
			d.pdf.SetFillColor(v.color.R, v.color.G, v.color.B)
			if v.radius > 0 {
				d.pdf.RoundedRect(v.box.X, v.box.Y, v.box.W, v.box.H, v.radius, "1234", "F")
			} else {
				d.pdf.Rect(v.box.X, v.box.Y, v.box.W, v.box.H, "F")
			}
		case strokeRect:
			d.pdf.SetDrawColor(v.color.R, v.color.G, v.color.B)
			d.pdf.SetLineWidth(v.width)
			if v.radius > 0 {
				d.pdf.RoundedRect(v.box.X, v.box.Y, v.box.W, v.box.H, v.radius, "1234", "D")
			} else {
				d.pdf.Rect(v.box.X, v.box.Y, v.box.W, v.box.H, "D")
			}
		case line:
			d.pdf.SetDrawColor(v.color.R, v.color.G, v.color.B)
			d.pdf.SetLineWidth(v.width)
			d.pdf.Line(v.x1, v.y1, v.x2, v.y2)
		case dot:
			d.pdf.SetFillColor(v.color.R, v.color.G, v.color.B)
			d.pdf.Circle(v.x, v.y, v.r, "F")
		case label:
			style := ""
			if v.bold {
				style = "B"
			}
			d.pdf.SetFont("Helvetica", style, v.size)
			d.pdf.SetTextColor(v.color.R, v.color.G, v.color.B)
			text := d.tr(v.text)
			x := v.x
			switch v.align {
			case "C":
				x -= d.pdf.GetStringWidth(text) / 2
			case "R":
				x -= d.pdf.GetStringWidth(text)
			}
			d.pdf.Text(x, v.y, text)
		}
	}
}
