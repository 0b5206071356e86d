// Package layout is the chart geometry engine: pure functions mapping a
// dataset, a bounding box and options to a frame of draw primitives and
// label placements. Nothing here holds state between calls; the chart
// models in the root package orchestrate validation and invoke these on
// every recompute.
//
// Angular convention, preserved from the charts this engine is visually
// compatible with: angle 0 points straight up and angles grow clockwise,
// so a vertex at angle a and radius r sits at (cx + r*sin(a), cy + r*cos(a)).
package layout

import (
	"math"

	"github.com/tinywasm/charts/errs"
	"github.com/tinywasm/charts/frame"
)

// Item is one labelled value of a bar or pie dataset.
type Item struct {
	Label string
	Value float64
}

// Series is an ordered dataset. Order is significant: bars lay out left to
// right and pie slices accumulate clockwise in input order.
type Series []Item

// Total sums the series values.
func (s Series) Total() float64 {
	var t float64
	for _, it := range s {
		t += it.Value
	}
	return t
}

// Max returns the largest value, or 0 for an empty series.
func (s Series) Max() float64 {
	var m float64
	for i, it := range s {
		if i == 0 || it.Value > m {
			m = it.Value
		}
	}
	return m
}

func (s Series) validate() error {
	for _, it := range s {
		if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) {
			return errs.New(errs.InvalidData,
				"value for", it.Label, "is not a finite number")
		}
	}
	return nil
}

// Mode selects between plain value labels and host-driven interactivity.
type Mode string

const (
	ModeStandard    Mode = "standard"
	ModeInteractive Mode = "interactive"
)

// ColorStyle selects flat palette coloring or a vertical gradient.
type ColorStyle string

const (
	ColorStandard ColorStyle = "standard"
	ColorGradient ColorStyle = "gradient"
)

// GridStyle is the bar chart grid line style.
type GridStyle string

const (
	GridLine   GridStyle = "line"
	GridDashed GridStyle = "dashed"
	GridDotted GridStyle = "dotted"
)

// Rotation is the x-axis label rotation mode.
type Rotation string

const (
	RotationNone     Rotation = "no-rotation"
	RotationLeftUp   Rotation = "left-up"
	RotationLeftDown Rotation = "left-down"
)

// VAlign positions a legend block vertically within the chart box.
type VAlign string

const (
	VAlignTop    VAlign = "top"
	VAlignBottom VAlign = "bottom"
	VAlignCenter VAlign = "center"
)

// LegendPosition selects the legend column side for pie charts.
type LegendPosition string

const (
	LegendLeft  LegendPosition = "left"
	LegendRight LegendPosition = "right"
)

// KeyShape is the legend key glyph.
type KeyShape string

const (
	KeyCircle    KeyShape = "circle"
	KeySquare    KeyShape = "square"
	KeyDiamond   KeyShape = "diamond"
	KeyHexagon   KeyShape = "hexagon"
	KeyStar      KeyShape = "star"
	KeyRectangle KeyShape = "rectangle"
)

// KeyStyle fills or outlines a legend key.
type KeyStyle string

const (
	KeyFilled   KeyStyle = "filled"
	KeyOutlined KeyStyle = "outlined"
)

// PlotStyle is the radar dataset rendering style.
type PlotStyle string

const (
	PlotOutlined PlotStyle = "outlined"
	PlotFilled   PlotStyle = "filled"
	PlotMixed    PlotStyle = "mixed"
)

// RadarGridStyle selects polygonal or circular radar grid rings.
type RadarGridStyle string

const (
	RadarGridPolygonal RadarGridStyle = "polygonal"
	RadarGridCircular  RadarGridStyle = "circular"
)

// NoDataOptions configures the placeholder shown for empty datasets.
type NoDataOptions struct {
	Text     string
	FontSize float64
	Color    frame.Color
}

// noDataFrame centers the placeholder label in the box, padded the way the
// measuring host reports the text plus a small margin.
func noDataFrame(box frame.Rect, fontName string, o NoDataOptions, m frame.TextMeasurer) frame.Frame {
	var f frame.Frame
	if o.Text == "" {
		return f
	}
	w, h := m.MeasureText(o.Text, frame.Font{Name: fontName, Size: o.FontSize})
	w += 20
	h += 10
	f.AddLabel(frame.Label{
		Text:  o.Text,
		Pos:   frame.Point{X: box.X + (box.W-w)/2, Y: box.Y + (box.H-h)/2},
		Size:  frame.Point{X: w, Y: h},
		Color: o.Color,
		Font:  frame.Font{Name: fontName, Size: o.FontSize},
	})
	return f
}
