package layout

import (
	"math"

	. "github.com/tinywasm/fmt"

	"github.com/tinywasm/charts/colors"
	"github.com/tinywasm/charts/errs"
	"github.com/tinywasm/charts/frame"
)

// RadarSeries is one named dataset, its values aligned to the categories.
type RadarSeries struct {
	Name   string
	Values []float64
}

// RadarData is an ordered set of radar series.
type RadarData []RadarSeries

// RadarOptions carries the resolved radar chart configuration.
type RadarOptions struct {
	MaxValue float64
	FontName string

	AdjustData       bool
	MissingValueFill float64

	CategoryLabelOffset   float64
	CategoryLabelColor    frame.Color
	CategoryLabelFontSize float64

	GridLines     int
	GridStyle     RadarGridStyle
	GridColor     frame.Color
	GridLineWidth float64

	AxisLineColor frame.Color
	AxisLineWidth float64

	Palette      colors.Palette
	PlotStyle    PlotStyle
	Transparency float64
	LineWidth    float64
	ShowMarkers  bool

	ShowScaleValues    bool
	ScaleValueColor    frame.Color
	ScaleValueFontSize float64

	ShowLegend          bool
	LegendVAlign        VAlign
	LegendKeyShape      KeyShape
	LegendLabelColor    frame.Color
	LegendLabelFontSize float64
}

func (d RadarData) validate() error {
	for _, s := range d {
		if s.Values == nil {
			return errs.New(errs.InvalidData,
				Sprintf("dataset %q has no value list", s.Name))
		}
		for _, v := range s.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errs.New(errs.InvalidData,
					Sprintf("dataset %q contains a non-finite value", s.Name))
			}
		}
	}
	return nil
}

// AdjustToCategories pads short series with fill and truncates long ones so
// every series length equals the category count.
func AdjustToCategories(d RadarData, numCategories int, fill float64) RadarData {
	out := make(RadarData, len(d))
	for i, s := range d {
		values := make([]float64, numCategories)
		for j := 0; j < numCategories; j++ {
			if j < len(s.Values) {
				values[j] = s.Values[j]
			} else {
				values[j] = fill
			}
		}
		out[i] = RadarSeries{Name: s.Name, Values: values}
	}
	return out
}

// Radar computes the radar chart layout: concentric grid, axes, category
// and scale labels, dataset polygons and a row-wrapped legend.
func Radar(data RadarData, categories []string, box frame.Rect, o RadarOptions, m frame.TextMeasurer) (frame.Frame, error) {
	if err := data.validate(); err != nil {
		return frame.Frame{}, err
	}
	if len(data) > 0 && len(categories) == 0 {
		return frame.Frame{}, errs.New(errs.InvalidCategories,
			"categories must be a non-empty list of strings when data is present")
	}

	if o.AdjustData {
		data = AdjustToCategories(data, len(categories), o.MissingValueFill)
	} else {
		for _, s := range data {
			if len(s.Values) != len(categories) {
				return frame.Frame{}, errs.New(errs.DataCategoryMismatch,
					Sprintf("dataset %q has %d values, but %d are expected",
						s.Name, len(s.Values), len(categories)))
			}
		}
	}

	var f frame.Frame
	if len(data) == 0 || len(categories) == 0 {
		return f, nil
	}

	maxValue := o.MaxValue
	if maxValue == 0 {
		maxValue = 100
	}
	gridLines := o.GridLines
	if gridLines == 0 {
		gridLines = 5
	}

	legendHeight := 0.0
	if o.ShowLegend {
		legendHeight = box.H * 0.2
	}
	chartAreaHeight := box.H - legendHeight
	centerX := box.X + box.W/2
	var centerY float64
	switch {
	case o.ShowLegend && o.LegendVAlign != VAlignTop:
		centerY = box.Y + legendHeight + chartAreaHeight/2
	case o.ShowLegend:
		centerY = box.Y + chartAreaHeight/2
	default:
		centerY = box.Y + box.H/2
	}
	radius := min2(box.W, chartAreaHeight)/2 - 40
	numCategories := len(categories)
	angleStep := 2 * math.Pi / float64(numCategories)

	radarGrid(&f, centerX, centerY, radius, numCategories, gridLines, o)
	radarAxes(&f, centerX, centerY, radius, numCategories, angleStep, o)
	radarCategoryLabels(&f, centerX, centerY, radius, numCategories, angleStep, categories, o)
	if o.ShowScaleValues {
		radarScaleValues(&f, centerX, centerY, radius, gridLines, maxValue, o)
	}
	if err := radarDatasets(&f, centerX, centerY, radius, angleStep, data, numCategories, maxValue, o); err != nil {
		return frame.Frame{}, err
	}
	if o.ShowLegend {
		if err := radarLegend(&f, box, legendHeight, centerX, data, o, m); err != nil {
			return frame.Frame{}, err
		}
	}

	return f, nil
}

func radarGrid(f *frame.Frame, centerX, centerY, radius float64, numCategories, gridLines int, o RadarOptions) {
	for i := 1; i <= gridLines; i++ {
		r := radius * float64(i) / float64(gridLines)
		if o.GridStyle == RadarGridCircular {
			f.Add(frame.Primitive{
				Kind:     frame.KindEllipse,
				Pos:      frame.Point{X: centerX - r, Y: centerY - r},
				Size:     frame.Point{X: 2 * r, Y: 2 * r},
				AngleEnd: 360,
				Color:    o.GridColor,
				Width:    o.GridLineWidth,
			})
			continue
		}
		strokeClosed(f, PolygonPoints(centerX, centerY, r, numCategories), o.GridColor, o.GridLineWidth)
	}
}

func radarAxes(f *frame.Frame, centerX, centerY, radius float64, numCategories int, angleStep float64, o RadarOptions) {
	for i := 0; i < numCategories; i++ {
		a := float64(i) * angleStep
		f.Add(frame.Primitive{
			Kind: frame.KindLine,
			Points: []frame.Point{
				{X: centerX, Y: centerY},
				{X: centerX + radius*math.Sin(a), Y: centerY + radius*math.Cos(a)},
			},
			Color: o.AxisLineColor,
			Width: o.AxisLineWidth,
		})
	}
}

// radarCategoryLabels places each category just beyond the outer ring. The
// quadrant rule is the collision tie-break: right-half labels align left
// and shift right, left-half labels align right and shift left, labels at
// exactly top or bottom center on the axis.
func radarCategoryLabels(f *frame.Frame, centerX, centerY, radius float64, numCategories int, angleStep float64, categories []string, o RadarOptions) {
	const labelW, labelH = 100.0, 30.0
	font := frame.Font{Name: o.FontName, Size: o.CategoryLabelFontSize}
	for i, category := range categories {
		a := float64(i) * angleStep
		x := centerX + (radius+o.CategoryLabelOffset)*math.Sin(a)
		y := centerY + (radius+o.CategoryLabelOffset)*math.Cos(a)

		l := frame.Label{
			Text:  category,
			Size:  frame.Point{X: labelW, Y: labelH},
			Color: o.CategoryLabelColor,
			Font:  font,
			Wrap:  true,
		}
		switch {
		case 2*i == numCategories: // exactly bottom
			l.HAlign = frame.AlignCenter
			l.Pos = frame.Point{X: x - labelW/2, Y: y - labelH}
		case i == 0: // exactly top
			l.HAlign = frame.AlignCenter
			l.Pos = frame.Point{X: x - labelW/2, Y: y}
		case 2*i < numCategories: // right half
			l.HAlign = frame.AlignLeft
			l.Pos = frame.Point{X: x + 10, Y: y - labelH/2}
		default: // left half
			l.HAlign = frame.AlignRight
			l.Pos = frame.Point{X: x - labelW - 10, Y: y - labelH/2}
		}
		f.AddLabel(l)
	}
}

// radarScaleValues labels the rings along the first axis (straight up).
func radarScaleValues(f *frame.Frame, centerX, centerY, radius float64, gridLines int, maxValue float64, o RadarOptions) {
	const labelW, labelH = 30.0, 20.0
	font := frame.Font{Name: o.FontName, Size: o.ScaleValueFontSize}
	for i := 1; i <= gridLines; i++ {
		fraction := float64(i) / float64(gridLines)
		value := fraction * maxValue
		x := centerX
		y := centerY + radius*fraction
		f.AddLabel(frame.Label{
			Text:  Sprintf("%d", int(value)),
			Pos:   frame.Point{X: x + 15 - labelW/2, Y: y - labelH/2},
			Size:  frame.Point{X: labelW, Y: labelH},
			Color: o.ScaleValueColor,
			Font:  font,
		})
	}
}

func radarDatasets(f *frame.Frame, centerX, centerY, radius, angleStep float64, data RadarData, numCategories int, maxValue float64, o RadarOptions) error {
	palette := o.Palette
	if len(palette) == 0 {
		palette = colors.DefaultRadar()
	}
	for idx, s := range data {
		if len(s.Values) != numCategories {
			continue
		}
		c, err := palette.At(idx, frame.Color{})
		if err != nil {
			return err
		}
		pts := make([]frame.Point, numCategories)
		for i, v := range s.Values {
			ratio := v / maxValue
			a := float64(i) * angleStep
			pts[i] = frame.Point{
				X: centerX + radius*ratio*math.Sin(a),
				Y: centerY + radius*ratio*math.Cos(a),
			}
		}

		if o.PlotStyle == PlotFilled || o.PlotStyle == PlotMixed {
			fillFan(f, centerX, centerY, pts, colors.AdjustAlpha(c, o.Transparency))
		}
		if o.PlotStyle != PlotFilled {
			strokeClosed(f, pts, c, o.LineWidth)
		}
		if o.ShowMarkers && o.PlotStyle != PlotFilled {
			for _, p := range pts {
				f.Add(frame.Primitive{
					Kind:     frame.KindEllipse,
					Pos:      frame.Point{X: p.X - 4, Y: p.Y - 4},
					Size:     frame.Point{X: 6, Y: 6},
					AngleEnd: 360,
					Color:    c,
					Fill:     true,
				})
			}
		}
	}
	return nil
}

// radarLegend packs dataset names into rows of uniform item width derived
// from the widest measured label, centers each row, and stacks them in the
// legend band.
func radarLegend(f *frame.Frame, box frame.Rect, legendHeight, centerX float64, data RadarData, o RadarOptions, m frame.TextMeasurer) error {
	const (
		keySize         = 20.0
		keyLabelSpacing = 10.0
		elementSpacing  = 20.0
		rowHeight       = keySize + 20
	)
	font := frame.Font{Name: o.FontName, Size: o.LegendLabelFontSize}

	var maxLabelWidth float64
	items := make([]LegendItem, len(data))
	for i, s := range data {
		w, _ := m.MeasureText(s.Name, font)
		if w > maxLabelWidth {
			maxLabelWidth = w
		}
		items[i] = LegendItem{Key: i, Label: s.Name}
	}
	elementWidth := keySize + keyLabelSpacing + maxLabelWidth + elementSpacing
	rows := PackLegend(items, func(LegendItem) float64 { return elementWidth }, box.W)

	legendY := box.Y
	if o.LegendVAlign == VAlignTop {
		legendY = box.Y + box.H - legendHeight
	}
	totalLegendHeight := float64(len(rows)) * rowHeight
	legendYStart := legendY
	if o.LegendVAlign == VAlignTop {
		legendYStart = legendY + legendHeight - totalLegendHeight
	}

	palette := o.Palette
	if len(palette) == 0 {
		palette = colors.DefaultRadar()
	}

	for rowIdx, row := range rows {
		rowYCenter := legendYStart + totalLegendHeight - (float64(rowIdx)+0.5)*rowHeight
		rowWidth := float64(len(row.Items))*elementWidth - elementSpacing
		currentX := centerX - rowWidth/2

		for _, it := range row.Items {
			c, err := palette.At(it.Key, frame.Color{})
			if err != nil {
				return err
			}
			keyColor := c
			if o.PlotStyle == PlotFilled {
				keyColor = colors.AdjustAlpha(c, o.Transparency)
			}

			switch o.LegendKeyShape {
			case KeyCircle:
				f.Add(frame.Primitive{
					Kind:     frame.KindEllipse,
					Pos:      frame.Point{X: currentX, Y: rowYCenter - keySize/2},
					Size:     frame.Point{X: keySize, Y: keySize},
					AngleEnd: 360,
					Color:    keyColor,
					Fill:     true,
				})
			case KeyRectangle:
				f.Add(frame.Primitive{
					Kind:  frame.KindRect,
					Pos:   frame.Point{X: currentX, Y: rowYCenter - keySize/4},
					Size:  frame.Point{X: keySize, Y: keySize / 2},
					Color: keyColor,
					Fill:  true,
				})
			default: // square
				f.Add(frame.Primitive{
					Kind:  frame.KindRect,
					Pos:   frame.Point{X: currentX, Y: rowYCenter - keySize/2},
					Size:  frame.Point{X: keySize, Y: keySize},
					Color: keyColor,
					Fill:  true,
				})
			}

			currentX += keySize + keyLabelSpacing
			f.AddLabel(frame.Label{
				Text:   it.Label,
				Pos:    frame.Point{X: currentX, Y: rowYCenter - 10},
				Size:   frame.Point{X: maxLabelWidth, Y: 20},
				Color:  o.LegendLabelColor,
				Font:   font,
				HAlign: frame.AlignLeft,
				Wrap:   true,
			})
			currentX += maxLabelWidth + elementSpacing
		}
	}
	return nil
}
