package charts

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/tinywasm/charts/colors"
	"github.com/tinywasm/charts/errs"
	"github.com/tinywasm/charts/frame"
	"github.com/tinywasm/charts/layout"
)

var box = frame.Rect{X: 0, Y: 0, W: 800, H: 600}

func TestBarChartRecompute(t *testing.T) {
	c := New().Bar().
		Title("Monthly Sales").
		Add("Jan", 120).
		Add("Feb", 140).
		Add("Mar", 110)
	f, err := c.Recompute(box)
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	if len(f.Primitives) != 3 {
		t.Errorf("invalid primitive count: got=%d, want=3", len(f.Primitives))
	}
	if f.Labels[0].Text != "Monthly Sales" {
		t.Errorf("invalid title: got=%q", f.Labels[0].Text)
	}
	if got := len(c.Regions()); got != 3 {
		t.Errorf("invalid region count: got=%d, want=3", got)
	}
}

func TestBarChartRegionHitTest(t *testing.T) {
	c := New().Bar().Mode(layout.ModeInteractive).Add("A", 10).Add("B", 20)
	if _, err := c.Recompute(box); err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	regions := c.Regions()
	inside := frame.Point{
		X: regions[1].Rect.X + regions[1].Rect.W/2,
		Y: regions[1].Rect.Y + regions[1].Rect.H/2,
	}
	r, ok := c.RegionAt(inside)
	if !ok {
		t.Fatal("no region found under bar center")
	}
	if r.Value != 20 {
		t.Errorf("invalid region value: got=%v, want=20", r.Value)
	}
	if _, ok := c.RegionAt(frame.Point{X: -5, Y: -5}); ok {
		t.Error("hit outside the chart reported a region")
	}
}

func TestBarChartInvalidDefaultColorIsFatal(t *testing.T) {
	c := New().Bar().Add("A", 1).DefaultColor(colors.Hex("#12345"))
	f, err := c.Recompute(box)
	if !errors.Is(err, errs.InvalidColorFormat) {
		t.Errorf("invalid error: got=%v, want=%v", err, errs.InvalidColorFormat)
	}
	if len(f.Primitives) != 0 || len(f.Labels) != 0 {
		t.Errorf("frame produced despite fatal error: %+v", f)
	}
}

func TestBarChartGradientFallback(t *testing.T) {
	var logged []string
	logger := func(args ...any) {
		var parts []string
		for _, a := range args {
			if s, ok := a.(string); ok {
				parts = append(parts, s)
			} else if e, ok := a.(error); ok {
				parts = append(parts, e.Error())
			}
		}
		logged = append(logged, strings.Join(parts, " "))
	}
	c := New().Logger(logger).Bar().
		Add("A", 10).
		ColorStyle(layout.ColorGradient).
		GradientColors([]colors.Spec{colors.Hex("#33ff66")})

	f, err := c.Recompute(box)
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	if len(logged) != 1 || !strings.Contains(logged[0], "gradient") {
		t.Errorf("invalid log output: got=%v", logged)
	}
	// Fallback paints with the default color, no gradient stops.
	if len(f.Primitives) != 1 || len(f.Primitives[0].Gradient) != 0 {
		t.Errorf("invalid fallback primitive: got=%+v", f.Primitives)
	}

	// A later recompute with a repaired gradient uses it; the configured
	// style was never mutated.
	c.GradientColors([]colors.Spec{colors.Hex("#33ff66"), colors.Hex("#c3ff66")})
	f, err = c.Recompute(box)
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	if len(f.Primitives[0].Gradient) != 2 {
		t.Errorf("invalid gradient stops after repair: got=%d, want=2", len(f.Primitives[0].Gradient))
	}
}

func TestRecomputeRegeneratesFrame(t *testing.T) {
	c := New().Pie().Add("X", 1).Add("Y", 3)
	first, err := c.Recompute(frame.Rect{W: 400, H: 400})
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	second, err := c.Recompute(frame.Rect{W: 400, H: 400})
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical state produced different frames")
	}
	moved, err := c.Recompute(frame.Rect{X: 100, Y: 100, W: 400, H: 400})
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	if reflect.DeepEqual(first.Primitives[0].Pos, moved.Primitives[0].Pos) {
		t.Error("moved box did not move the layout")
	}
}

func TestPieChartNoData(t *testing.T) {
	c := New().Pie().NoDataText("nothing here")
	f, err := c.Recompute(frame.Rect{W: 400, H: 400})
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	if len(f.Labels) != 1 || f.Labels[0].Text != "nothing here" {
		t.Errorf("invalid placeholder: got=%v", f.Labels)
	}
}

func TestDonutChartZeroDistanceFactor(t *testing.T) {
	c := New().Donut().
		Add("X", 1).
		Add("Y", 3).
		PercentageDistanceFactor(0)
	f, err := c.Recompute(frame.Rect{W: 400, H: 400})
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	// An explicit zero holds; it is not replaced by the derived
	// (1+holeRadius)/2 placement.
	ctr := f.Labels[0].Center()
	if math.Abs(ctr.X-200) > 1e-9 || math.Abs(ctr.Y-200) > 1e-9 {
		t.Errorf("invalid label center: got=%v, want={200 200}", ctr)
	}
}

func TestDonutChartComposition(t *testing.T) {
	c := New().Donut().
		Add("X", 2).
		Add("Y", 3).
		DonutRadius(0.9).
		CenterText("Total 5")
	f, err := c.Recompute(frame.Rect{W: 400, H: 400})
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	hole := f.Primitives[len(f.Primitives)-1]
	// 0.9 clamps to 0.8 of the 190 chart radius.
	if hole.Size.X != 2*190*0.8 {
		t.Errorf("invalid hole size: got=%v, want=%v", hole.Size.X, 2*190*0.8)
	}
	last := f.Labels[len(f.Labels)-1]
	if last.Text != "Total 5" {
		t.Errorf("invalid center text: got=%q", last.Text)
	}
}

func TestRadarChartRecompute(t *testing.T) {
	c := New().Radar().
		Categories([]string{"speed", "power", "range"}).
		Add("model a", []float64{70, 80, 60}).
		Add("model b", []float64{50, 90, 75})
	f, err := c.Recompute(frame.Rect{W: 500, H: 500})
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	var outlines int
	for _, p := range f.Primitives {
		if p.Kind == frame.KindLine && p.Closed && len(p.Points) == 3 {
			outlines++
		}
	}
	// 5 grid rings would be triangles too; rings use the category count,
	// so both datasets and rings are 3-point closed lines here.
	if outlines != 7 {
		t.Errorf("invalid closed line count: got=%d, want=7", outlines)
	}
}

func TestRadarChartMismatchError(t *testing.T) {
	c := New().Radar().
		Categories([]string{"x", "y"}).
		Add("a", []float64{10})
	_, err := c.Recompute(frame.Rect{W: 500, H: 500})
	if !errors.Is(err, errs.DataCategoryMismatch) {
		t.Errorf("invalid error: got=%v, want=%v", err, errs.DataCategoryMismatch)
	}

	c.AdjustData(true)
	f, err := c.Recompute(frame.Rect{W: 500, H: 500})
	if err != nil {
		t.Fatalf("Recompute failed: %v", err)
	}
	if len(f.Primitives) == 0 {
		t.Error("no primitives after adjustment")
	}
}
