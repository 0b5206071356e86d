package layout

import (
	"math"

	. "github.com/tinywasm/fmt"

	"github.com/tinywasm/charts/colors"
	"github.com/tinywasm/charts/frame"
)

// PieOptions carries the resolved pie chart configuration.
type PieOptions struct {
	Palette  colors.Palette
	FontName string

	PercentageColor    frame.Color
	PercentageFontSize float64
	// PercentageDistanceFactor places percentage labels at this fraction of
	// the radius along each slice bisector. Nil means the default 0.5
	// (donuts derive their own, see Donut). Zero is a valid factor and
	// stacks the labels on the chart center.
	PercentageDistanceFactor *float64

	ShowLegend     bool
	LegendVAlign   VAlign
	LegendPosition LegendPosition

	LegendLabelColor    frame.Color
	LegendLabelFontSize float64
	LegendKeyShape      KeyShape
	LegendKeyStyle      KeyStyle

	NoData NoDataOptions
}

const legendItemHeight = 30.0

// pieGeometry splits the box between chart and legend column and returns
// the chart center and radius. With a legend the chart takes two thirds of
// the width, the legend column the remaining third on the configured side.
func pieGeometry(box frame.Rect, o PieOptions) (centerX, centerY, radius float64) {
	centerY = box.Y + box.H/2
	if o.ShowLegend {
		legendWidth := box.W / 3
		chartWidth := 2 * box.W / 3
		if o.LegendPosition == LegendRight {
			centerX = box.X + chartWidth/2
		} else {
			centerX = box.X + legendWidth + chartWidth/2
		}
		radius = min2(chartWidth, box.H)/2 - 10
		return
	}
	centerX = box.X + box.W/2
	radius = min2(box.W, box.H)/2 - 10
	return
}

// Pie computes the pie chart layout: consecutive clockwise slices from
// angle 0, percentage labels along each bisector, and an optional legend
// column of shape keys and labels.
func Pie(data Series, box frame.Rect, o PieOptions, m frame.TextMeasurer) (frame.Frame, error) {
	if err := data.validate(); err != nil {
		return frame.Frame{}, err
	}
	if len(data) == 0 {
		return noDataFrame(box, o.FontName, o.NoData, m), nil
	}
	total := data.Total()
	if total == 0 {
		return frame.Frame{}, nil
	}

	centerX, centerY, radius := pieGeometry(box, o)

	distanceFactor := 0.5
	if o.PercentageDistanceFactor != nil {
		distanceFactor = *o.PercentageDistanceFactor
	}

	var legendX, legendY float64
	if o.ShowLegend {
		chartWidth := 2 * box.W / 3
		if o.LegendPosition == LegendRight {
			legendX = box.X + chartWidth + 10
		} else {
			legendX = box.X + 10
		}

		totalLegendHeight := float64(len(data)) * legendItemHeight
		switch o.LegendVAlign {
		case VAlignTop:
			legendY = box.Top() - legendItemHeight
		case VAlignBottom:
			legendY = box.Y + totalLegendHeight
		default:
			legendY = box.Y + (box.H-totalLegendHeight)/2 + totalLegendHeight - legendItemHeight
		}
	}

	var f frame.Frame

	type slice struct {
		start, end float64
		percentage float64
		color      frame.Color
		label      string
	}
	slices := make([]slice, 0, len(data))

	defaultPalette := o.Palette
	if len(defaultPalette) == 0 {
		defaultPalette = colors.DefaultPie()
	}

	startAngle := 0.0
	for i, it := range data {
		angle := it.Value / total * 360
		c, err := defaultPalette.At(i, frame.Color{})
		if err != nil {
			return frame.Frame{}, err
		}
		f.Add(frame.Primitive{
			Kind:       frame.KindEllipse,
			Pos:        frame.Point{X: centerX - radius, Y: centerY - radius},
			Size:       frame.Point{X: 2 * radius, Y: 2 * radius},
			AngleStart: startAngle,
			AngleEnd:   startAngle + angle,
			Color:      c,
			Fill:       true,
		})
		slices = append(slices, slice{
			start:      startAngle,
			end:        startAngle + angle,
			percentage: it.Value / total * 100,
			color:      c,
			label:      it.Label,
		})
		startAngle += angle
	}

	pctFont := frame.Font{Name: o.FontName, Size: o.PercentageFontSize}
	for _, s := range slices {
		midAngle := (s.start + s.end) / 2 * math.Pi / 180
		labelX := centerX + radius*distanceFactor*math.Sin(midAngle)
		labelY := centerY + radius*distanceFactor*math.Cos(midAngle)

		text := Sprintf("%.1f%%", s.percentage)
		w, h := m.MeasureText(text, pctFont)
		f.AddLabel(frame.Label{
			Text:  text,
			Pos:   frame.Point{X: labelX - w/2, Y: labelY - h/2},
			Size:  frame.Point{X: w, Y: h},
			Color: o.PercentageColor,
			Font:  pctFont,
		})

		if o.ShowLegend {
			legendKey(&f, legendX, legendY, s.color, o.LegendKeyShape, o.LegendKeyStyle)
			f.AddLabel(frame.Label{
				Text:   s.label,
				Pos:    frame.Point{X: legendX + 30, Y: legendY},
				Size:   frame.Point{X: 200, Y: 20},
				Color:  o.LegendLabelColor,
				Font:   frame.Font{Name: o.FontName, Size: o.LegendLabelFontSize},
				HAlign: frame.AlignLeft,
			})
			legendY -= legendItemHeight
		}
	}

	return f, nil
}

// legendKey draws one legend key shape anchored at (x, y), matching the
// size quirks of the original key set (filled squares are 10x10, everything
// else fits a 15..20 unit footprint centered at (x+10, y+10)).
func legendKey(f *frame.Frame, x, y float64, c frame.Color, shape KeyShape, style KeyStyle) {
	filled := style != KeyOutlined
	switch shape {
	case KeySquare:
		if filled {
			f.Add(frame.Primitive{
				Kind: frame.KindRect,
				Pos:  frame.Point{X: x, Y: y},
				Size: frame.Point{X: 10, Y: 10},
				Fill: true, Color: c,
			})
		} else {
			strokeClosed(f, []frame.Point{
				{X: x, Y: y}, {X: x + 15, Y: y}, {X: x + 15, Y: y + 15}, {X: x, Y: y + 15},
			}, c, 1.5)
		}
	case KeyDiamond:
		keyPolygon(f, x+10, y+10, 10, 4, filled, c)
	case KeyHexagon:
		keyPolygon(f, x+10, y+10, 10, 6, filled, c)
	case KeyStar:
		pts := StarPoints(x+10, y+10, 10, 5)
		if filled {
			fillFan(f, x+10, y+10, pts, c)
		} else {
			strokeClosed(f, pts, c, 1.5)
		}
	default: // circle
		if filled {
			f.Add(frame.Primitive{
				Kind:     frame.KindEllipse,
				Pos:      frame.Point{X: x, Y: y},
				Size:     frame.Point{X: 15, Y: 15},
				AngleEnd: 360,
				Fill:     true, Color: c,
			})
		} else {
			f.Add(frame.Primitive{
				Kind:     frame.KindEllipse,
				Pos:      frame.Point{X: x, Y: y},
				Size:     frame.Point{X: 20, Y: 20},
				AngleEnd: 360,
				Width:    1.5, Color: c,
			})
		}
	}
}

func keyPolygon(f *frame.Frame, cx, cy, radius float64, sides int, filled bool, c frame.Color) {
	pts := PolygonPoints(cx, cy, radius, sides)
	if filled {
		fillFan(f, cx, cy, pts, c)
	} else {
		strokeClosed(f, pts, c, 1.5)
	}
}

func min2(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
