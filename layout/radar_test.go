package layout

import (
	"errors"
	"math"
	"testing"

	"github.com/tinywasm/charts/errs"
	"github.com/tinywasm/charts/frame"
)

func radarOptions() RadarOptions {
	return RadarOptions{
		MaxValue:              100,
		FontName:              "Roboto",
		CategoryLabelOffset:   5,
		CategoryLabelFontSize: 14,
		GridLines:             5,
		GridStyle:             RadarGridPolygonal,
		GridLineWidth:         1,
		AxisLineWidth:         1.5,
		PlotStyle:             PlotOutlined,
		Transparency:          0.3,
		LineWidth:             1.5,
	}
}

var radarBox = frame.Rect{X: 0, Y: 0, W: 500, H: 500}

func TestAdjustToCategories(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		fill   float64
		want   []float64
	}{
		{"pads short series", []float64{10}, 0, []float64{10, 0}},
		{"pads with custom fill", []float64{10}, 50, []float64{10, 50}},
		{"truncates long series", []float64{1, 2, 3}, 0, []float64{1, 2}},
		{"keeps exact series", []float64{1, 2}, 0, []float64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := AdjustToCategories(RadarData{{Name: "a", Values: tt.values}}, 2, tt.fill)
			got := out[0].Values
			if len(got) != len(tt.want) {
				t.Fatalf("invalid length: got=%d, want=%d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("invalid value %d: got=%v, want=%v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRadarLengthMismatchRejected(t *testing.T) {
	data := RadarData{{Name: "a", Values: []float64{1, 2, 3}}}
	_, err := Radar(data, []string{"x", "y"}, radarBox, radarOptions(), frame.Approx{})
	if !errors.Is(err, errs.DataCategoryMismatch) {
		t.Errorf("invalid error: got=%v, want=%v", err, errs.DataCategoryMismatch)
	}
}

func TestRadarAdjustDataAcceptsMismatch(t *testing.T) {
	data := RadarData{{Name: "a", Values: []float64{1, 2, 3}}}
	o := radarOptions()
	o.AdjustData = true
	f, err := Radar(data, []string{"x", "y"}, radarBox, o, frame.Approx{})
	if err != nil {
		t.Fatalf("Radar failed: %v", err)
	}
	if len(f.Primitives) == 0 {
		t.Error("no primitives produced")
	}
}

func TestRadarEmptyCategoriesRejected(t *testing.T) {
	data := RadarData{{Name: "a", Values: []float64{1}}}
	_, err := Radar(data, nil, radarBox, radarOptions(), frame.Approx{})
	if !errors.Is(err, errs.InvalidCategories) {
		t.Errorf("invalid error: got=%v, want=%v", err, errs.InvalidCategories)
	}
}

func TestRadarEmptyDataYieldsEmptyFrame(t *testing.T) {
	f, err := Radar(nil, []string{"x"}, radarBox, radarOptions(), frame.Approx{})
	if err != nil {
		t.Fatalf("Radar failed: %v", err)
	}
	if len(f.Primitives) != 0 || len(f.Labels) != 0 {
		t.Errorf("invalid frame for empty data: got %d primitives, %d labels",
			len(f.Primitives), len(f.Labels))
	}
}

func TestRadarRejectsNonFiniteValues(t *testing.T) {
	data := RadarData{{Name: "a", Values: []float64{1, math.NaN()}}}
	_, err := Radar(data, []string{"x", "y"}, radarBox, radarOptions(), frame.Approx{})
	if !errors.Is(err, errs.InvalidData) {
		t.Errorf("invalid error: got=%v, want=%v", err, errs.InvalidData)
	}
}

func TestRadarGridAndAxes(t *testing.T) {
	data := RadarData{{Name: "a", Values: []float64{50, 50, 50}}}
	cats := []string{"x", "y", "z"}
	f, err := Radar(data, cats, radarBox, radarOptions(), frame.Approx{})
	if err != nil {
		t.Fatalf("Radar failed: %v", err)
	}
	var rings, axes int
	for _, p := range f.Primitives {
		if p.Kind != frame.KindLine {
			continue
		}
		if p.Closed {
			rings++
		} else if len(p.Points) == 2 {
			axes++
		}
	}
	// 5 polygonal rings, 3 axes, plus one closed dataset outline.
	if rings != 6 {
		t.Errorf("invalid ring count: got=%d, want=6", rings)
	}
	if axes != 3 {
		t.Errorf("invalid axis count: got=%d, want=3", axes)
	}
}

func TestRadarCircularGrid(t *testing.T) {
	data := RadarData{{Name: "a", Values: []float64{50, 50, 50}}}
	o := radarOptions()
	o.GridStyle = RadarGridCircular
	f, err := Radar(data, []string{"x", "y", "z"}, radarBox, o, frame.Approx{})
	if err != nil {
		t.Fatalf("Radar failed: %v", err)
	}
	var rings int
	for _, p := range f.Primitives {
		if p.Kind == frame.KindEllipse && !p.Fill {
			rings++
		}
	}
	if rings != 5 {
		t.Errorf("invalid ring count: got=%d, want=5", rings)
	}
}

func TestRadarVertexPlacement(t *testing.T) {
	// A full-scale value on the first axis lands at the top of the rim.
	data := RadarData{{Name: "a", Values: []float64{100, 0, 0, 0}}}
	cats := []string{"n", "e", "s", "w"}
	f, err := Radar(data, cats, radarBox, radarOptions(), frame.Approx{})
	if err != nil {
		t.Fatalf("Radar failed: %v", err)
	}
	var outline *frame.Primitive
	for i := range f.Primitives {
		p := &f.Primitives[i]
		if p.Kind == frame.KindLine && p.Closed && len(p.Points) == 4 {
			outline = p
		}
	}
	if outline == nil {
		t.Fatal("missing dataset outline")
	}
	radius := 500.0/2 - 40
	top := outline.Points[0]
	if math.Abs(top.X-250) > 1e-9 || math.Abs(top.Y-(250+radius)) > 1e-9 {
		t.Errorf("invalid first vertex: got=%v, want={250 %v}", top, 250+radius)
	}
	for i, p := range outline.Points[1:] {
		if math.Abs(p.X-250) > 1e-9 || math.Abs(p.Y-250) > 1e-9 {
			t.Errorf("invalid zero vertex %d: got=%v, want center", i+1, p)
		}
	}
}

func TestRadarCategoryLabelQuadrants(t *testing.T) {
	data := RadarData{{Name: "a", Values: []float64{1, 1, 1, 1}}}
	cats := []string{"north", "east", "south", "west"}
	f, err := Radar(data, cats, radarBox, radarOptions(), frame.Approx{})
	if err != nil {
		t.Fatalf("Radar failed: %v", err)
	}
	byText := map[string]frame.Label{}
	for _, l := range f.Labels {
		byText[l.Text] = l
	}
	if l := byText["north"]; l.HAlign != frame.AlignCenter {
		t.Errorf("invalid north alignment: got=%v, want=center", l.HAlign)
	}
	if l := byText["east"]; l.HAlign != frame.AlignLeft {
		t.Errorf("invalid east alignment: got=%v, want=left", l.HAlign)
	}
	if l := byText["south"]; l.HAlign != frame.AlignCenter {
		t.Errorf("invalid south alignment: got=%v, want=center", l.HAlign)
	}
	if l := byText["west"]; l.HAlign != frame.AlignRight {
		t.Errorf("invalid west alignment: got=%v, want=right", l.HAlign)
	}
	if byText["north"].Pos.Y <= byText["south"].Pos.Y {
		t.Errorf("invalid vertical placement: north=%v, south=%v",
			byText["north"].Pos.Y, byText["south"].Pos.Y)
	}
}

func TestRadarScaleValues(t *testing.T) {
	data := RadarData{{Name: "a", Values: []float64{1, 1, 1}}}
	o := radarOptions()
	o.ShowScaleValues = true
	o.ScaleValueFontSize = 12
	f, err := Radar(data, []string{"x", "y", "z"}, radarBox, o, frame.Approx{})
	if err != nil {
		t.Fatalf("Radar failed: %v", err)
	}
	want := map[string]bool{"20": false, "40": false, "60": false, "80": false, "100": false}
	for _, l := range f.Labels {
		if _, ok := want[l.Text]; ok {
			want[l.Text] = true
		}
	}
	for v, seen := range want {
		if !seen {
			t.Errorf("missing scale value %q", v)
		}
	}
}

func TestRadarPlotStyles(t *testing.T) {
	data := RadarData{{Name: "a", Values: []float64{50, 60, 70}}}
	cats := []string{"x", "y", "z"}

	count := func(o RadarOptions) (triangles, outlines int) {
		f, err := Radar(data, cats, radarBox, o, frame.Approx{})
		if err != nil {
			t.Fatalf("Radar failed: %v", err)
		}
		for _, p := range f.Primitives {
			switch {
			case p.Kind == frame.KindTriangle:
				triangles++
			case p.Kind == frame.KindLine && p.Closed && len(p.Points) == 3:
				outlines++
			}
		}
		return
	}

	o := radarOptions()
	tri, out := count(o)
	if tri != 0 || out != 1 {
		t.Errorf("invalid outlined plot: got %d triangles, %d outlines", tri, out)
	}

	o.PlotStyle = PlotFilled
	tri, out = count(o)
	if tri != 3 || out != 0 {
		t.Errorf("invalid filled plot: got %d triangles, %d outlines", tri, out)
	}

	o.PlotStyle = PlotMixed
	tri, out = count(o)
	if tri != 3 || out != 1 {
		t.Errorf("invalid mixed plot: got %d triangles, %d outlines", tri, out)
	}
}

func TestRadarMarkers(t *testing.T) {
	data := RadarData{{Name: "a", Values: []float64{50, 60, 70}}}
	o := radarOptions()
	o.ShowMarkers = true
	f, err := Radar(data, []string{"x", "y", "z"}, radarBox, o, frame.Approx{})
	if err != nil {
		t.Fatalf("Radar failed: %v", err)
	}
	var markers int
	for _, p := range f.Primitives {
		if p.Kind == frame.KindEllipse && p.Fill && p.Size.X == 6 {
			markers++
		}
	}
	if markers != 3 {
		t.Errorf("invalid marker count: got=%d, want=3", markers)
	}
}

func TestRadarLegendRows(t *testing.T) {
	data := RadarData{
		{Name: "first", Values: []float64{1, 2, 3}},
		{Name: "second", Values: []float64{2, 3, 4}},
	}
	o := radarOptions()
	o.ShowLegend = true
	o.LegendVAlign = VAlignBottom
	o.LegendLabelFontSize = 14
	f, err := Radar(data, []string{"x", "y", "z"}, radarBox, o, frame.Approx{})
	if err != nil {
		t.Fatalf("Radar failed: %v", err)
	}
	var keys int
	var legendLabels []frame.Label
	for _, p := range f.Primitives {
		if p.Kind == frame.KindRect {
			keys++
		}
	}
	for _, l := range f.Labels {
		if l.Text == "first" || l.Text == "second" {
			legendLabels = append(legendLabels, l)
		}
	}
	if keys != 2 {
		t.Errorf("invalid key count: got=%d, want=2", keys)
	}
	if len(legendLabels) != 2 {
		t.Fatalf("invalid legend label count: got=%d", len(legendLabels))
	}
	// Bottom band: the legend sits in the lowest fifth of the box.
	for _, l := range legendLabels {
		if l.Pos.Y > radarBox.Y+radarBox.H*0.2 {
			t.Errorf("legend label outside bottom band: got y=%v", l.Pos.Y)
		}
	}
}
