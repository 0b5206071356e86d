package charts

import (
	"github.com/tinywasm/charts/colors"
	"github.com/tinywasm/charts/frame"
	"github.com/tinywasm/charts/layout"
)

// DonutChart is a pie chart with a concentric hole and optional center text.
// It shares the pie slice and legend geometry and only adds the hole layer.
type DonutChart struct {
	pie *PieChart

	donutRadius        float64
	holeColor          frame.Color
	centerText         string
	centerTextFontName string
	centerTextColor    frame.Color
	centerTextFontSize float64
	centerTextLines    int
}

func newDonutChart(f *Factory) *DonutChart {
	// The pie's percentage distance factor is left unset: percentage
	// labels sit inside the ring, so it derives from the hole radius at
	// recompute time unless set explicitly.
	return &DonutChart{
		pie:                newPieChart(f),
		donutRadius:        0.5,
		holeColor:          frame.Color{R: 1, G: 1, B: 1, A: 1},
		centerTextColor:    colorBlack,
		centerTextFontSize: 14,
		centerTextLines:    2,
	}
}

// Data replaces the chart's ordered series.
func (c *DonutChart) Data(s layout.Series) *DonutChart { c.pie.Data(s); return c }

// Add appends one labelled value.
func (c *DonutChart) Add(label string, value float64) *DonutChart {
	c.pie.Add(label, value)
	return c
}

func (c *DonutChart) Colors(p colors.Palette) *DonutChart { c.pie.Colors(p); return c }
func (c *DonutChart) FontName(n string) *DonutChart       { c.pie.FontName(n); return c }
func (c *DonutChart) PercentageColor(col frame.Color) *DonutChart {
	c.pie.PercentageColor(col)
	return c
}
func (c *DonutChart) PercentageFontSize(s float64) *DonutChart {
	c.pie.PercentageFontSize(s)
	return c
}
func (c *DonutChart) PercentageDistanceFactor(d float64) *DonutChart {
	c.pie.PercentageDistanceFactor(d)
	return c
}
func (c *DonutChart) ShowLegend(on bool) *DonutChart { c.pie.ShowLegend(on); return c }
func (c *DonutChart) LegendVAlign(v layout.VAlign) *DonutChart {
	c.pie.LegendVAlign(v)
	return c
}
func (c *DonutChart) LegendPosition(p layout.LegendPosition) *DonutChart {
	c.pie.LegendPosition(p)
	return c
}
func (c *DonutChart) LegendLabelColor(col frame.Color) *DonutChart {
	c.pie.LegendLabelColor(col)
	return c
}
func (c *DonutChart) LegendLabelFontSize(s float64) *DonutChart {
	c.pie.LegendLabelFontSize(s)
	return c
}
func (c *DonutChart) LegendKeyShape(s layout.KeyShape) *DonutChart {
	c.pie.LegendKeyShape(s)
	return c
}
func (c *DonutChart) LegendKeyStyle(s layout.KeyStyle) *DonutChart {
	c.pie.LegendKeyStyle(s)
	return c
}
func (c *DonutChart) NoDataText(t string) *DonutChart         { c.pie.NoDataText(t); return c }
func (c *DonutChart) NoDataFontSize(s float64) *DonutChart    { c.pie.NoDataFontSize(s); return c }
func (c *DonutChart) NoDataColor(col frame.Color) *DonutChart { c.pie.NoDataColor(col); return c }

// DonutRadius sets the hole radius as a fraction of the chart radius.
// Values outside [0.2, 0.8] are clamped at recompute time.
func (c *DonutChart) DonutRadius(r float64) *DonutChart { c.donutRadius = r; return c }

func (c *DonutChart) HoleColor(col frame.Color) *DonutChart { c.holeColor = col; return c }

// CenterText sets the text wrapped and centered inside the hole.
func (c *DonutChart) CenterText(t string) *DonutChart             { c.centerText = t; return c }
func (c *DonutChart) CenterTextFontName(n string) *DonutChart     { c.centerTextFontName = n; return c }
func (c *DonutChart) CenterTextColor(col frame.Color) *DonutChart { c.centerTextColor = col; return c }
func (c *DonutChart) CenterTextFontSize(s float64) *DonutChart {
	c.centerTextFontSize = s
	return c
}
func (c *DonutChart) CenterTextLines(n int) *DonutChart { c.centerTextLines = n; return c }

// Recompute derives the full donut layout for the box.
func (c *DonutChart) Recompute(box frame.Rect) (frame.Frame, error) {
	hole := layout.HoleOptions{
		Radius:             c.donutRadius,
		Color:              c.holeColor,
		CenterText:         c.centerText,
		CenterTextFontName: c.centerTextFontName,
		CenterTextColor:    c.centerTextColor,
		CenterTextFontSize: c.centerTextFontSize,
		CenterTextLines:    c.centerTextLines,
	}
	if hole.CenterTextFontName == "" {
		hole.CenterTextFontName = c.pie.fontName
	}
	return layout.Donut(c.pie.data, box, c.pie.options(), hole, c.pie.f.measurer)
}
