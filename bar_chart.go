package charts

import (
	"github.com/tinywasm/charts/colors"
	"github.com/tinywasm/charts/frame"
	"github.com/tinywasm/charts/layout"
)

// BarChart is a bar chart model: an ordered label/value series plus the
// flat option surface. Setters return the model for chaining; Recompute
// turns the current state into a frame.
type BarChart struct {
	f *Factory

	data layout.Series

	title         string
	titleFontSize float64
	titleColor    frame.Color

	mode           layout.Mode
	colorStyle     layout.ColorStyle
	colors         colors.Palette
	defaultColor   colors.Spec
	gradientColors []colors.Spec
	barRadius      float64
	fontName       string

	valueColor    frame.Color
	valueFontSize float64

	axisLabelColor    frame.Color
	axisLabelFontSize float64
	xLabelRotation    layout.Rotation
	yAxisLabels       bool

	grid      bool
	gridStyle layout.GridStyle
	gridColor frame.Color

	noDataText     string
	noDataFontSize float64
	noDataColor    frame.Color

	regions []layout.BarRegion
}

func newBarChart(f *Factory) *BarChart {
	return &BarChart{
		f:                 f,
		titleFontSize:     16,
		titleColor:        colorBlack,
		mode:              layout.ModeStandard,
		colorStyle:        layout.ColorStandard,
		defaultColor:      colors.Hex("#3498db"),
		gradientColors:    []colors.Spec{colors.Hex("#33ff66"), colors.Hex("#C3FF66")},
		fontName:          "Roboto",
		valueColor:        colorBlack,
		valueFontSize:     14,
		axisLabelColor:    colorBlack,
		axisLabelFontSize: 14,
		xLabelRotation:    layout.RotationNone,
		gridStyle:         layout.GridLine,
		gridColor:         frame.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5},
		noDataText:        "No data available",
		noDataFontSize:    20,
		noDataColor:       colorBlack,
	}
}

// Data replaces the chart's ordered series.
func (c *BarChart) Data(s layout.Series) *BarChart { c.data = s; return c }

// Add appends one labelled value.
func (c *BarChart) Add(label string, value float64) *BarChart {
	c.data = append(c.data, layout.Item{Label: label, Value: value})
	return c
}

func (c *BarChart) Title(t string) *BarChart                 { c.title = t; return c }
func (c *BarChart) TitleFontSize(s float64) *BarChart        { c.titleFontSize = s; return c }
func (c *BarChart) TitleColor(col frame.Color) *BarChart     { c.titleColor = col; return c }
func (c *BarChart) Mode(m layout.Mode) *BarChart             { c.mode = m; return c }
func (c *BarChart) ColorStyle(s layout.ColorStyle) *BarChart { c.colorStyle = s; return c }
func (c *BarChart) Colors(p colors.Palette) *BarChart        { c.colors = p; return c }
func (c *BarChart) DefaultColor(s colors.Spec) *BarChart     { c.defaultColor = s; return c }
func (c *BarChart) GradientColors(s []colors.Spec) *BarChart { c.gradientColors = s; return c }
func (c *BarChart) BarRadius(r float64) *BarChart            { c.barRadius = r; return c }
func (c *BarChart) FontName(n string) *BarChart              { c.fontName = n; return c }
func (c *BarChart) ValueColor(col frame.Color) *BarChart     { c.valueColor = col; return c }
func (c *BarChart) ValueFontSize(s float64) *BarChart        { c.valueFontSize = s; return c }
func (c *BarChart) AxisLabelColor(col frame.Color) *BarChart { c.axisLabelColor = col; return c }
func (c *BarChart) AxisLabelFontSize(s float64) *BarChart    { c.axisLabelFontSize = s; return c }
func (c *BarChart) XAxisLabelRotation(r layout.Rotation) *BarChart {
	c.xLabelRotation = r
	return c
}
func (c *BarChart) YAxisLabels(on bool) *BarChart          { c.yAxisLabels = on; return c }
func (c *BarChart) Grid(on bool) *BarChart                 { c.grid = on; return c }
func (c *BarChart) GridStyle(s layout.GridStyle) *BarChart { c.gridStyle = s; return c }
func (c *BarChart) GridColor(col frame.Color) *BarChart    { c.gridColor = col; return c }
func (c *BarChart) NoDataText(t string) *BarChart          { c.noDataText = t; return c }
func (c *BarChart) NoDataFontSize(s float64) *BarChart     { c.noDataFontSize = s; return c }
func (c *BarChart) NoDataColor(col frame.Color) *BarChart  { c.noDataColor = col; return c }

// Recompute derives the full layout for the box. Validation and palette
// errors abort with no frame. An invalid gradient is the one recoverable
// case: it is logged and this recompute falls back to standard coloring
// without touching the configured style.
func (c *BarChart) Recompute(box frame.Rect) (frame.Frame, error) {
	opts := layout.BarOptions{
		Title:             c.title,
		TitleFontSize:     c.titleFontSize,
		TitleColor:        c.titleColor,
		Mode:              c.mode,
		Palette:           c.colors,
		BarRadius:         c.barRadius,
		FontName:          c.fontName,
		ValueColor:        c.valueColor,
		ValueFontSize:     c.valueFontSize,
		AxisLabelColor:    c.axisLabelColor,
		AxisLabelFontSize: c.axisLabelFontSize,
		XLabelRotation:    c.xLabelRotation,
		YAxisLabels:       c.yAxisLabels,
		Grid:              c.grid,
		GridStyle:         c.gridStyle,
		GridColor:         c.gridColor,
		NoData: layout.NoDataOptions{
			Text:     c.noDataText,
			FontSize: c.noDataFontSize,
			Color:    c.noDataColor,
		},
	}

	def, err := colors.Resolve(c.defaultColor)
	if err != nil {
		return frame.Frame{}, err
	}
	opts.Default = def

	if c.colorStyle == layout.ColorGradient {
		g, err := colors.ValidateGradient(c.gradientColors)
		if err != nil {
			c.f.logger("error generating gradient texture:", err)
		} else {
			opts.Gradient = g
		}
	}

	res, err := layout.Bar(c.data, box, opts, c.f.measurer)
	if err != nil {
		return frame.Frame{}, err
	}
	c.regions = res.Regions
	return res.Frame, nil
}

// Regions returns the hit-test rectangles of the last recompute, in bar
// order. Interactive hosts use them for value popups.
func (c *BarChart) Regions() []layout.BarRegion { return c.regions }

// RegionAt finds the bar under a point, if any.
func (c *BarChart) RegionAt(p frame.Point) (layout.BarRegion, bool) {
	for _, r := range c.regions {
		if frame.PointInRect(p, r.Rect) {
			return r, true
		}
	}
	return layout.BarRegion{}, false
}
