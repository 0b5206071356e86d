package layout

import (
	"math"
	"testing"

	"github.com/tinywasm/charts/frame"
)

func TestClampHoleRadius(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0.9, 0.8},
		{1.5, 0.8},
		{0.1, 0.2},
		{0.05, 0.2},
		{0.5, 0.5},
		{0.2, 0.2},
		{0.8, 0.8},
	}
	for _, tt := range tests {
		if got := ClampHoleRadius(tt.in); got != tt.want {
			t.Errorf("invalid clamp: got=%v, want=%v for %v", got, tt.want, tt.in)
		}
	}
}

func TestDonutHoleOverlaysSlices(t *testing.T) {
	data := Series{{Label: "X", Value: 1}, {Label: "Y", Value: 1}}
	box := frame.Rect{X: 0, Y: 0, W: 400, H: 400}
	f, err := Donut(data, box, pieOptions(), HoleOptions{}, frame.Approx{})
	if err != nil {
		t.Fatalf("Donut failed: %v", err)
	}
	hole := f.Primitives[len(f.Primitives)-1]
	if hole.Kind != frame.KindEllipse || !hole.Fill {
		t.Fatalf("invalid hole primitive: got=%+v", hole)
	}
	// Default hole: half the 190 chart radius, painted white.
	if hole.Size.X != 190 || hole.Size.Y != 190 {
		t.Errorf("invalid hole size: got=%v, want 190x190", hole.Size)
	}
	if hole.Pos.X != 200-95 || hole.Pos.Y != 200-95 {
		t.Errorf("invalid hole position: got=%v", hole.Pos)
	}
	if (hole.Color != frame.Color{R: 1, G: 1, B: 1, A: 1}) {
		t.Errorf("invalid hole color: got=%v, want white", hole.Color)
	}
}

func TestDonutLabelsSitBetweenHoleAndRim(t *testing.T) {
	data := Series{{Label: "X", Value: 1}}
	box := frame.Rect{X: 0, Y: 0, W: 400, H: 400}
	f, err := Donut(data, box, pieOptions(), HoleOptions{}, frame.Approx{})
	if err != nil {
		t.Fatalf("Donut failed: %v", err)
	}
	// Hole radius 0.5 pushes the label factor to 0.75: the single slice
	// bisector points straight down from the center.
	radius := 190.0
	wantY := 200 + radius*0.75*math.Cos(math.Pi)
	c := f.Labels[0].Center()
	if math.Abs(c.X-200) > 1e-9 || math.Abs(c.Y-wantY) > 1e-9 {
		t.Errorf("invalid label center: got=%v, want={200 %v}", c, wantY)
	}
}

func TestDonutExplicitDistanceFactorKept(t *testing.T) {
	data := Series{{Label: "X", Value: 1}}
	box := frame.Rect{X: 0, Y: 0, W: 400, H: 400}
	o := pieOptions()
	factor := 0.9
	o.PercentageDistanceFactor = &factor
	f, err := Donut(data, box, o, HoleOptions{Radius: 0.3}, frame.Approx{})
	if err != nil {
		t.Fatalf("Donut failed: %v", err)
	}
	radius := 190.0
	wantY := 200 + radius*0.9*math.Cos(math.Pi)
	if got := f.Labels[0].Center().Y; math.Abs(got-wantY) > 1e-9 {
		t.Errorf("invalid label center: got=%v, want=%v", got, wantY)
	}
}

func TestDonutZeroDistanceFactorKept(t *testing.T) {
	data := Series{{Label: "X", Value: 1}}
	box := frame.Rect{X: 0, Y: 0, W: 400, H: 400}
	o := pieOptions()
	zero := 0.0
	o.PercentageDistanceFactor = &zero
	f, err := Donut(data, box, o, HoleOptions{Radius: 0.3}, frame.Approx{})
	if err != nil {
		t.Fatalf("Donut failed: %v", err)
	}
	c := f.Labels[0].Center()
	if math.Abs(c.X-200) > 1e-9 || math.Abs(c.Y-200) > 1e-9 {
		t.Errorf("invalid label center: got=%v, want={200 200}", c)
	}
}

func TestDonutCenterText(t *testing.T) {
	data := Series{{Label: "X", Value: 2}, {Label: "Y", Value: 3}}
	box := frame.Rect{X: 0, Y: 0, W: 400, H: 400}
	h := HoleOptions{
		CenterText:         "Total 5",
		CenterTextFontName: "Roboto",
		CenterTextFontSize: 14,
	}
	f, err := Donut(data, box, pieOptions(), h, frame.Approx{})
	if err != nil {
		t.Fatalf("Donut failed: %v", err)
	}
	l := f.Labels[len(f.Labels)-1]
	if l.Text != "Total 5" {
		t.Fatalf("invalid center text: got=%q", l.Text)
	}
	if !l.Wrap || l.MaxLines != 2 {
		t.Errorf("invalid wrapping: got wrap=%v maxLines=%d, want wrap=true maxLines=2", l.Wrap, l.MaxLines)
	}
	c := l.Center()
	if math.Abs(c.X-200) > 1e-9 || math.Abs(c.Y-200) > 1e-9 {
		t.Errorf("invalid center text position: got=%v, want chart center", c)
	}
	// Text box stays inside the hole with a 10% margin.
	hole := 190.0 * 0.5
	if got := l.Size.X; math.Abs(got-2*hole*0.9) > 1e-9 {
		t.Errorf("invalid text width: got=%v, want=%v", got, 2*hole*0.9)
	}
}

func TestDonutZeroTotalSkipsHole(t *testing.T) {
	data := Series{{Label: "X", Value: 0}}
	box := frame.Rect{X: 0, Y: 0, W: 400, H: 400}
	f, err := Donut(data, box, pieOptions(), HoleOptions{}, frame.Approx{})
	if err != nil {
		t.Fatalf("Donut failed: %v", err)
	}
	if len(f.Primitives) != 0 {
		t.Errorf("invalid primitives for zero total: got=%d, want=0", len(f.Primitives))
	}
}
