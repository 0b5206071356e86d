package charts

import (
	"github.com/tinywasm/charts/colors"
	"github.com/tinywasm/charts/frame"
	"github.com/tinywasm/charts/layout"
)

// RadarChart is a radar (spider) chart model holding one or more datasets
// plotted over a shared set of categories.
type RadarChart struct {
	f *Factory

	data       layout.RadarData
	categories []string

	maxValue float64
	fontName string

	adjustData       bool
	missingValueFill float64

	categoryLabelOffset   float64
	categoryLabelColor    frame.Color
	categoryLabelFontSize float64

	numGridLines  int
	gridStyle     layout.RadarGridStyle
	gridColor     frame.Color
	gridLineWidth float64

	axisLineColor frame.Color
	axisLineWidth float64

	colors       colors.Palette
	plotStyle    layout.PlotStyle
	transparency float64
	lineWidth    float64
	showMarkers  bool

	showScaleValues    bool
	scaleValueColor    frame.Color
	scaleValueFontSize float64

	showLegend          bool
	legendVAlign        layout.VAlign
	legendKeyShape      layout.KeyShape
	legendLabelColor    frame.Color
	legendLabelFontSize float64
}

func newRadarChart(f *Factory) *RadarChart {
	return &RadarChart{
		f:                     f,
		maxValue:              100,
		fontName:              "Roboto",
		categoryLabelOffset:   5,
		categoryLabelColor:    colorBlack,
		categoryLabelFontSize: 14,
		numGridLines:          5,
		gridStyle:             layout.RadarGridPolygonal,
		gridColor:             frame.Color{R: 0.7, G: 0.7, B: 0.7, A: 0.5},
		gridLineWidth:         1,
		axisLineColor:         frame.Color{R: 0.7, G: 0.7, B: 0.7, A: 0.5},
		axisLineWidth:         1.5,
		plotStyle:             layout.PlotOutlined,
		transparency:          0.3,
		lineWidth:             1.5,
		showScaleValues:       true,
		scaleValueColor:       colorBlack,
		scaleValueFontSize:    12,
		legendVAlign:          layout.VAlignBottom,
		legendKeyShape:        layout.KeySquare,
		legendLabelColor:      colorBlack,
		legendLabelFontSize:   14,
	}
}

// Data replaces all datasets.
func (c *RadarChart) Data(d layout.RadarData) *RadarChart { c.data = d; return c }

// Add appends one named dataset.
func (c *RadarChart) Add(name string, values []float64) *RadarChart {
	c.data = append(c.data, layout.RadarSeries{Name: name, Values: values})
	return c
}

// Categories sets the axis categories, one axis per entry.
func (c *RadarChart) Categories(cats []string) *RadarChart { c.categories = cats; return c }

func (c *RadarChart) MaxValue(v float64) *RadarChart { c.maxValue = v; return c }
func (c *RadarChart) FontName(n string) *RadarChart  { c.fontName = n; return c }

// AdjustData pads or truncates datasets to the category count instead of
// rejecting length mismatches.
func (c *RadarChart) AdjustData(on bool) *RadarChart         { c.adjustData = on; return c }
func (c *RadarChart) MissingValueFill(v float64) *RadarChart { c.missingValueFill = v; return c }

func (c *RadarChart) CategoryLabelOffset(v float64) *RadarChart {
	c.categoryLabelOffset = v
	return c
}
func (c *RadarChart) CategoryLabelColor(col frame.Color) *RadarChart {
	c.categoryLabelColor = col
	return c
}
func (c *RadarChart) CategoryLabelFontSize(s float64) *RadarChart {
	c.categoryLabelFontSize = s
	return c
}

func (c *RadarChart) NumGridLines(n int) *RadarChart                { c.numGridLines = n; return c }
func (c *RadarChart) GridStyle(s layout.RadarGridStyle) *RadarChart { c.gridStyle = s; return c }
func (c *RadarChart) GridColor(col frame.Color) *RadarChart         { c.gridColor = col; return c }
func (c *RadarChart) GridLineWidth(w float64) *RadarChart           { c.gridLineWidth = w; return c }
func (c *RadarChart) AxisLineColor(col frame.Color) *RadarChart     { c.axisLineColor = col; return c }
func (c *RadarChart) AxisLineWidth(w float64) *RadarChart           { c.axisLineWidth = w; return c }

func (c *RadarChart) Colors(p colors.Palette) *RadarChart      { c.colors = p; return c }
func (c *RadarChart) PlotStyle(s layout.PlotStyle) *RadarChart { c.plotStyle = s; return c }

// Transparency is the fill alpha for filled and mixed plot styles.
func (c *RadarChart) Transparency(a float64) *RadarChart { c.transparency = a; return c }
func (c *RadarChart) LineWidth(w float64) *RadarChart    { c.lineWidth = w; return c }
func (c *RadarChart) ShowMarkers(on bool) *RadarChart    { c.showMarkers = on; return c }

func (c *RadarChart) ShowScaleValues(on bool) *RadarChart { c.showScaleValues = on; return c }
func (c *RadarChart) ScaleValueColor(col frame.Color) *RadarChart {
	c.scaleValueColor = col
	return c
}
func (c *RadarChart) ScaleValueFontSize(s float64) *RadarChart {
	c.scaleValueFontSize = s
	return c
}

func (c *RadarChart) ShowLegend(on bool) *RadarChart { c.showLegend = on; return c }
func (c *RadarChart) LegendVAlign(v layout.VAlign) *RadarChart {
	c.legendVAlign = v
	return c
}
func (c *RadarChart) LegendKeyShape(s layout.KeyShape) *RadarChart {
	c.legendKeyShape = s
	return c
}
func (c *RadarChart) LegendLabelColor(col frame.Color) *RadarChart {
	c.legendLabelColor = col
	return c
}
func (c *RadarChart) LegendLabelFontSize(s float64) *RadarChart {
	c.legendLabelFontSize = s
	return c
}

// Recompute derives the full radar layout for the box.
func (c *RadarChart) Recompute(box frame.Rect) (frame.Frame, error) {
	o := layout.RadarOptions{
		MaxValue:              c.maxValue,
		FontName:              c.fontName,
		AdjustData:            c.adjustData,
		MissingValueFill:      c.missingValueFill,
		CategoryLabelOffset:   c.categoryLabelOffset,
		CategoryLabelColor:    c.categoryLabelColor,
		CategoryLabelFontSize: c.categoryLabelFontSize,
		GridLines:             c.numGridLines,
		GridStyle:             c.gridStyle,
		GridColor:             c.gridColor,
		GridLineWidth:         c.gridLineWidth,
		AxisLineColor:         c.axisLineColor,
		AxisLineWidth:         c.axisLineWidth,
		Palette:               c.colors,
		PlotStyle:             c.plotStyle,
		Transparency:          c.transparency,
		LineWidth:             c.lineWidth,
		ShowMarkers:           c.showMarkers,
		ShowScaleValues:       c.showScaleValues,
		ScaleValueColor:       c.scaleValueColor,
		ScaleValueFontSize:    c.scaleValueFontSize,
		ShowLegend:            c.showLegend,
		LegendVAlign:          c.legendVAlign,
		LegendKeyShape:        c.legendKeyShape,
		LegendLabelColor:      c.legendLabelColor,
		LegendLabelFontSize:   c.legendLabelFontSize,
	}
	return layout.Radar(c.data, c.categories, box, o, c.f.measurer)
}
