package layout

// LegendItem is one legend entry: the palette key index of its color plus
// the display label.
type LegendItem struct {
	Key   int
	Label string
}

// LegendRow is one packed row of legend items with its total width.
type LegendRow struct {
	Items []LegendItem
	Width float64
}

// PackLegend greedily fills rows left to right: an item that would push the
// row past availableWidth starts a new row. Order is stable (input order)
// and every row keeps its own total width so callers can center rows
// independently. A single item wider than availableWidth still occupies a
// row of its own.
func PackLegend(items []LegendItem, widthFn func(LegendItem) float64, availableWidth float64) []LegendRow {
	var rows []LegendRow
	var cur LegendRow
	for _, it := range items {
		w := widthFn(it)
		if len(cur.Items) > 0 && cur.Width+w > availableWidth {
			rows = append(rows, cur)
			cur = LegendRow{}
		}
		cur.Items = append(cur.Items, it)
		cur.Width += w
	}
	if len(cur.Items) > 0 {
		rows = append(rows, cur)
	}
	return rows
}
