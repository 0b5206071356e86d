package layout

import "github.com/tinywasm/charts/frame"

// HoleOptions configures the donut hole overlaid on a pie layout.
type HoleOptions struct {
	// Radius is the hole radius as a fraction of the chart radius,
	// clamped to [0.2, 0.8]. Zero means the default 0.5.
	Radius float64
	Color  frame.Color

	// CenterText, when set, is wrapped and centered inside the hole.
	CenterText         string
	CenterTextFontName string
	CenterTextColor    frame.Color
	CenterTextFontSize float64
	CenterTextLines    int
}

// ClampHoleRadius bounds a donut hole radius fraction to [0.2, 0.8].
func ClampHoleRadius(r float64) float64 {
	if r < 0.2 {
		return 0.2
	}
	if r > 0.8 {
		return 0.8
	}
	return r
}

// Donut computes a pie layout and overlays a concentric hole. Donuts are a
// pie composition, not a subtype: the shared slice/legend math lives in Pie
// and only the hole (and its optional centered text) is added here.
//
// When the caller left PercentageDistanceFactor nil, the factor derives
// to (1+holeRadius)/2 so percentage labels sit between hole and rim.
func Donut(data Series, box frame.Rect, o PieOptions, h HoleOptions, m frame.TextMeasurer) (frame.Frame, error) {
	holeRadius := h.Radius
	if holeRadius == 0 {
		holeRadius = 0.5
	}
	holeRadius = ClampHoleRadius(holeRadius)

	if o.PercentageDistanceFactor == nil {
		derived := (1 + holeRadius) / 2
		o.PercentageDistanceFactor = &derived
	}

	f, err := Pie(data, box, o, m)
	if err != nil {
		return frame.Frame{}, err
	}
	if len(data) == 0 || data.Total() == 0 {
		return f, nil
	}

	centerX, centerY, chartRadius := pieGeometry(box, o)
	hole := chartRadius * holeRadius

	holeColor := h.Color
	if holeColor == (frame.Color{}) {
		holeColor = frame.Color{R: 1, G: 1, B: 1, A: 1}
	}
	f.Add(frame.Primitive{
		Kind:     frame.KindEllipse,
		Pos:      frame.Point{X: centerX - hole, Y: centerY - hole},
		Size:     frame.Point{X: 2 * hole, Y: 2 * hole},
		AngleEnd: 360,
		Color:    holeColor,
		Fill:     true,
	})

	if h.CenterText != "" {
		maxTextWidth := 2 * hole * 0.9
		lines := h.CenterTextLines
		if lines == 0 {
			lines = 2
		}
		f.AddLabel(frame.Label{
			Text:     h.CenterText,
			Pos:      frame.Point{X: centerX - maxTextWidth/2, Y: centerY - hole},
			Size:     frame.Point{X: maxTextWidth, Y: 2 * hole},
			Color:    h.CenterTextColor,
			Font:     frame.Font{Name: h.CenterTextFontName, Size: h.CenterTextFontSize},
			Wrap:     true,
			MaxLines: lines,
		})
	}

	return f, nil
}
