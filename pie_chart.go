package charts

import (
	"github.com/tinywasm/charts/colors"
	"github.com/tinywasm/charts/frame"
	"github.com/tinywasm/charts/layout"
)

// PieChart is a pie chart model.
type PieChart struct {
	f *Factory

	data layout.Series

	colors   colors.Palette
	fontName string

	percentageColor    frame.Color
	percentageFontSize float64
	// percentageDistanceFactor stays nil until set so donuts can tell an
	// explicit zero apart from unset and derive their own placement.
	percentageDistanceFactor *float64

	showLegend     bool
	legendVAlign   layout.VAlign
	legendPosition layout.LegendPosition

	legendLabelColor    frame.Color
	legendLabelFontSize float64
	legendKeyShape      layout.KeyShape
	legendKeyStyle      layout.KeyStyle

	noDataText     string
	noDataFontSize float64
	noDataColor    frame.Color
}

func newPieChart(f *Factory) *PieChart {
	return &PieChart{
		f:                   f,
		fontName:            "Roboto",
		percentageColor:     colorBlack,
		percentageFontSize:  14,
		legendVAlign:        layout.VAlignCenter,
		legendPosition:      layout.LegendLeft,
		legendLabelColor:    colorBlack,
		legendLabelFontSize: 14,
		legendKeyShape:      layout.KeyCircle,
		legendKeyStyle:      layout.KeyFilled,
		noDataText:          "No data available",
		noDataFontSize:      20,
		noDataColor:         colorBlack,
	}
}

// Data replaces the chart's ordered series.
func (c *PieChart) Data(s layout.Series) *PieChart { c.data = s; return c }

// Add appends one labelled value.
func (c *PieChart) Add(label string, value float64) *PieChart {
	c.data = append(c.data, layout.Item{Label: label, Value: value})
	return c
}

func (c *PieChart) Colors(p colors.Palette) *PieChart         { c.colors = p; return c }
func (c *PieChart) FontName(n string) *PieChart               { c.fontName = n; return c }
func (c *PieChart) PercentageColor(col frame.Color) *PieChart { c.percentageColor = col; return c }
func (c *PieChart) PercentageFontSize(s float64) *PieChart    { c.percentageFontSize = s; return c }
func (c *PieChart) PercentageDistanceFactor(d float64) *PieChart {
	c.percentageDistanceFactor = &d
	return c
}
func (c *PieChart) ShowLegend(on bool) *PieChart                     { c.showLegend = on; return c }
func (c *PieChart) LegendVAlign(v layout.VAlign) *PieChart           { c.legendVAlign = v; return c }
func (c *PieChart) LegendPosition(p layout.LegendPosition) *PieChart { c.legendPosition = p; return c }
func (c *PieChart) LegendLabelColor(col frame.Color) *PieChart       { c.legendLabelColor = col; return c }
func (c *PieChart) LegendLabelFontSize(s float64) *PieChart          { c.legendLabelFontSize = s; return c }
func (c *PieChart) LegendKeyShape(s layout.KeyShape) *PieChart       { c.legendKeyShape = s; return c }
func (c *PieChart) LegendKeyStyle(s layout.KeyStyle) *PieChart       { c.legendKeyStyle = s; return c }
func (c *PieChart) NoDataText(t string) *PieChart                    { c.noDataText = t; return c }
func (c *PieChart) NoDataFontSize(s float64) *PieChart               { c.noDataFontSize = s; return c }
func (c *PieChart) NoDataColor(col frame.Color) *PieChart            { c.noDataColor = col; return c }

func (c *PieChart) options() layout.PieOptions {
	return layout.PieOptions{
		Palette:                  c.colors,
		FontName:                 c.fontName,
		PercentageColor:          c.percentageColor,
		PercentageFontSize:       c.percentageFontSize,
		PercentageDistanceFactor: c.percentageDistanceFactor,
		ShowLegend:               c.showLegend,
		LegendVAlign:             c.legendVAlign,
		LegendPosition:           c.legendPosition,
		LegendLabelColor:         c.legendLabelColor,
		LegendLabelFontSize:      c.legendLabelFontSize,
		LegendKeyShape:           c.legendKeyShape,
		LegendKeyStyle:           c.legendKeyStyle,
		NoData: layout.NoDataOptions{
			Text:     c.noDataText,
			FontSize: c.noDataFontSize,
			Color:    c.noDataColor,
		},
	}
}

// Recompute derives the full pie layout for the box.
func (c *PieChart) Recompute(box frame.Rect) (frame.Frame, error) {
	return layout.Pie(c.data, box, c.options(), c.f.measurer)
}
