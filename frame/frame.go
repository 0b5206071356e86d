// Package frame holds the value objects a chart recompute produces: an
// ordered list of draw primitives plus positioned text labels. A Frame is
// immutable once returned; every recompute builds a fresh one from scratch.
//
// Coordinates are Cartesian: origin at the bottom-left of the drawing area,
// y increasing upward. Hosts working in screen coordinates flip y at their
// own boundary.
package frame

// Point is a 2D position or extent.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box anchored at its bottom-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y + r.H }

// Color is an RGBA color with each component in [0,1].
type Color struct {
	R, G, B, A float64
}

// Font identifies a typeface and size for label rendering and measuring.
type Font struct {
	Name string
	Size float64
}

// Kind enumerates the drawable primitive shapes.
type Kind uint8

const (
	KindRect Kind = iota + 1
	KindEllipse
	KindLine
	KindTriangle
	KindPoint
)

// Primitive is a single drawable shape. Which fields are meaningful depends
// on Kind:
//
//	KindRect     Pos, Size, Radius (corner rounding), Color, Gradient
//	KindEllipse  Pos, Size (bounding box), AngleStart/AngleEnd (degrees,
//	             clockwise from 12 o'clock; 0/360 for a full ellipse),
//	             Fill or Width for an outline
//	KindLine     Points (polyline), Width, Closed
//	KindTriangle Points (exactly three), Color
//	KindPoint    Points, PointSize
type Primitive struct {
	Kind       Kind
	Points     []Point
	Pos        Point
	Size       Point
	Radius     float64
	AngleStart float64
	AngleEnd   float64
	Color      Color
	Width      float64
	Closed     bool
	Fill       bool
	PointSize  float64

	// Gradient, when non-empty, overrides Color with a vertical gradient
	// through the given stops (bottom to top). Only rects carry it.
	Gradient []Color
}

// HAlign is horizontal text alignment within a label box.
type HAlign uint8

const (
	AlignCenter HAlign = iota
	AlignLeft
	AlignRight
)

// VAlign is vertical text alignment within a label box.
type VAlign uint8

const (
	AlignMiddle VAlign = iota
	AlignBottom
	AlignTop
)

// Label is a positioned piece of text. Pos is the bottom-left corner of the
// label box and Size its extent; Rotation is applied in degrees
// counterclockwise around the box center.
type Label struct {
	Text     string
	Pos      Point
	Size     Point
	Color    Color
	Font     Font
	Rotation float64
	HAlign   HAlign
	VAlign   VAlign

	// Wrap enables word wrapping within Size.X; MaxLines caps the wrapped
	// line count (0 means unlimited).
	Wrap     bool
	MaxLines int
}

// Center returns the center point of the label box.
func (l Label) Center() Point {
	return Point{X: l.Pos.X + l.Size.X/2, Y: l.Pos.Y + l.Size.Y/2}
}

// Frame is the complete output of one chart recompute. Append order is paint
// order: later primitives and labels paint over earlier ones.
type Frame struct {
	Primitives []Primitive
	Labels     []Label
}

// Add appends a primitive to the frame.
func (f *Frame) Add(p Primitive) { f.Primitives = append(f.Primitives, p) }

// AddLabel appends a label to the frame.
func (f *Frame) AddLabel(l Label) { f.Labels = append(f.Labels, l) }

// PointInRect reports whether p lies inside r, edges included. Interactive
// hosts use it to hit-test bar regions for value popups.
func PointInRect(p Point, r Rect) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}
