package layout

import (
	. "github.com/tinywasm/fmt"

	"github.com/tinywasm/charts/colors"
	"github.com/tinywasm/charts/frame"
)

// BarOptions carries the resolved bar chart configuration. Gradient is the
// already-validated stop list; when nil, bars use the palette.
type BarOptions struct {
	Title         string
	TitleFontSize float64
	TitleColor    frame.Color

	Mode     Mode
	Palette  colors.Palette
	Default  frame.Color
	Gradient []frame.Color

	BarRadius float64
	FontName  string

	ValueColor    frame.Color
	ValueFontSize float64

	AxisLabelColor    frame.Color
	AxisLabelFontSize float64
	XLabelRotation    Rotation
	YAxisLabels       bool

	Grid      bool
	GridStyle GridStyle
	GridColor frame.Color

	NoData NoDataOptions
}

// BarRegion is the hit-test rectangle of one bar, handed to interactive
// hosts for value popups.
type BarRegion struct {
	Rect  frame.Rect
	Value float64
}

// BarResult is the computed bar chart layout.
type BarResult struct {
	Frame   frame.Frame
	Regions []BarRegion
}

// Bar computes the complete bar chart layout for the given box.
func Bar(data Series, box frame.Rect, o BarOptions, m frame.TextMeasurer) (BarResult, error) {
	if err := data.validate(); err != nil {
		return BarResult{}, err
	}
	if len(data) == 0 {
		return BarResult{Frame: noDataFrame(box, o.FontName, o.NoData, m)}, nil
	}

	numBars := len(data)
	maxValue := data.Max()
	if maxValue == 0 {
		maxValue = 1
	}

	titleHeight := 10.0
	if o.Title != "" {
		titleHeight = 40
	}
	bottomPadding := 70.0
	if o.XLabelRotation != "" && o.XLabelRotation != RotationNone {
		bottomPadding = 100
	}
	topPadding := 30.0
	leftPadding, rightPadding := 20.0, 20.0
	if o.Grid && o.YAxisLabels {
		leftPadding, rightPadding = 60, 30
	}

	chartWidth := box.W - leftPadding - rightPadding
	chartHeight := box.H - titleHeight - bottomPadding - topPadding

	barWidth := chartWidth / (float64(numBars) * 1.5)
	if barWidth > 50 {
		barWidth = 50
	}
	spacing := barWidth / 2
	totalBarWidth := float64(numBars)*barWidth + float64(numBars-1)*spacing

	startX := box.X + leftPadding + (chartWidth-totalBarWidth)/2
	startY := box.Y + bottomPadding

	var f frame.Frame

	if o.Title != "" {
		f.AddLabel(frame.Label{
			Text:  o.Title,
			Pos:   frame.Point{X: box.X, Y: box.Top() - titleHeight},
			Size:  frame.Point{X: box.W, Y: titleHeight},
			Color: o.TitleColor,
			Font:  frame.Font{Name: o.FontName, Size: o.TitleFontSize},
		})
	}

	if o.Grid {
		barGrid(&f, startX, totalBarWidth, chartHeight, maxValue, startY, o, m)
	}

	regions := make([]BarRegion, 0, numBars)
	valueFont := frame.Font{Name: o.FontName, Size: o.ValueFontSize}
	axisFont := frame.Font{Name: o.FontName, Size: o.AxisLabelFontSize}

	for i, it := range data {
		barHeight := (it.Value / maxValue) * chartHeight
		barX := startX + float64(i)*(barWidth+spacing)
		barY := startY

		regions = append(regions, BarRegion{
			Rect:  frame.Rect{X: barX, Y: barY, W: barWidth, H: barHeight},
			Value: it.Value,
		})

		rect := frame.Primitive{
			Kind:   frame.KindRect,
			Pos:    frame.Point{X: barX, Y: barY},
			Size:   frame.Point{X: barWidth, Y: barHeight},
			Radius: o.BarRadius,
			Fill:   true,
		}
		if len(o.Gradient) > 0 {
			rect.Color = frame.Color{R: 1, G: 1, B: 1, A: 1}
			rect.Gradient = o.Gradient
		} else {
			c, err := o.Palette.At(i, o.Default)
			if err != nil {
				return BarResult{}, err
			}
			rect.Color = c
		}
		f.Add(rect)

		if o.Mode != ModeInteractive {
			text := Sprintf("%g", it.Value)
			w, h := m.MeasureText(text, valueFont)
			f.AddLabel(frame.Label{
				Text:  text,
				Pos:   frame.Point{X: barX + (barWidth-w)/2, Y: barY + barHeight + 5},
				Size:  frame.Point{X: w, Y: h},
				Color: o.ValueColor,
				Font:  valueFont,
			})
		}

		_, lh := m.MeasureText(it.Label, axisFont)
		labelY := startY - bottomPadding/1.6
		angle := 0.0
		switch o.XLabelRotation {
		case RotationLeftUp:
			labelY = startY - bottomPadding/1.8
			angle = 45
		case RotationLeftDown:
			labelY = startY - bottomPadding/1.8
			angle = 315
		}
		f.AddLabel(frame.Label{
			Text:     it.Label,
			Pos:      frame.Point{X: barX, Y: labelY},
			Size:     frame.Point{X: barWidth, Y: lh},
			Color:    o.AxisLabelColor,
			Font:     axisFont,
			Rotation: angle,
		})
	}

	return BarResult{Frame: f, Regions: regions}, nil
}

// barGrid draws six horizontal lines from maxValue down to zero, extending
// ten units past the bar row on both sides, plus optional y-axis value
// labels right-aligned to the left of the grid.
func barGrid(f *frame.Frame, startX, totalWidth, chartHeight, maxValue, startY float64, o BarOptions, m frame.TextMeasurer) {
	axisFont := frame.Font{Name: o.FontName, Size: o.AxisLabelFontSize}
	step := maxValue / 5
	for i := 0; i < 6; i++ {
		value := maxValue - step*float64(i)
		y := startY + chartHeight*(value/maxValue)

		switch o.GridStyle {
		case GridDashed:
			for x := startX - 10; x < startX+totalWidth+10; x += 20 {
				f.Add(frame.Primitive{
					Kind:   frame.KindLine,
					Points: []frame.Point{{X: x, Y: y}, {X: x + 10, Y: y}},
					Color:  o.GridColor,
					Width:  1,
				})
			}
		case GridDotted:
			var pts []frame.Point
			for x := startX - 10; x < startX+totalWidth+10; x += 10 {
				pts = append(pts, frame.Point{X: x, Y: y})
			}
			f.Add(frame.Primitive{
				Kind:      frame.KindPoint,
				Points:    pts,
				Color:     o.GridColor,
				PointSize: 1,
			})
		default:
			f.Add(frame.Primitive{
				Kind:   frame.KindLine,
				Points: []frame.Point{{X: startX - 10, Y: y}, {X: startX + totalWidth + 10, Y: y}},
				Color:  o.GridColor,
				Width:  1,
			})
		}

		if o.YAxisLabels {
			text := Sprintf("%d", int(value))
			w, h := m.MeasureText(text, axisFont)
			f.AddLabel(frame.Label{
				Text:   text,
				Pos:    frame.Point{X: startX - w - 15, Y: y - h/2},
				Size:   frame.Point{X: w, Y: h},
				Color:  o.AxisLabelColor,
				Font:   axisFont,
				HAlign: frame.AlignRight,
			})
		}
	}
}
