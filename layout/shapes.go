package layout

import (
	"math"

	"github.com/tinywasm/charts/frame"
)

// PolygonPoints generates the vertices of a regular polygon, starting from
// chart-up (angle 0) and proceeding clockwise at steps of 2π/sides.
func PolygonPoints(cx, cy, radius float64, sides int) []frame.Point {
	step := 2 * math.Pi / float64(sides)
	pts := make([]frame.Point, sides)
	for i := 0; i < sides; i++ {
		a := float64(i) * step
		pts[i] = frame.Point{
			X: cx + radius*math.Sin(a),
			Y: cy + radius*math.Cos(a),
		}
	}
	return pts
}

// StarPoints generates the vertices of a star, alternating between the
// outer radius and half of it at steps of π/points.
func StarPoints(cx, cy, radius float64, points int) []frame.Point {
	step := math.Pi / float64(points)
	pts := make([]frame.Point, 2*points)
	for i := 0; i < 2*points; i++ {
		r := radius
		if i%2 != 0 {
			r = radius / 2
		}
		a := float64(i) * step
		pts[i] = frame.Point{
			X: cx + r*math.Sin(a),
			Y: cy + r*math.Cos(a),
		}
	}
	return pts
}

// fillFan appends a fan of triangles from the center to each consecutive
// vertex pair, closing back to the first vertex.
func fillFan(f *frame.Frame, cx, cy float64, pts []frame.Point, c frame.Color) {
	for i := range pts {
		p1 := pts[i]
		p2 := pts[(i+1)%len(pts)]
		f.Add(frame.Primitive{
			Kind:   frame.KindTriangle,
			Points: []frame.Point{{X: cx, Y: cy}, p1, p2},
			Color:  c,
			Fill:   true,
		})
	}
}

// strokeClosed appends a closed polyline through the vertices.
func strokeClosed(f *frame.Frame, pts []frame.Point, c frame.Color, width float64) {
	f.Add(frame.Primitive{
		Kind:   frame.KindLine,
		Points: pts,
		Color:  c,
		Width:  width,
		Closed: true,
	})
}
