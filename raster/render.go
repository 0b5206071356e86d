package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"sort"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/tinywasm/charts/env"
	"github.com/tinywasm/charts/frame"
)

// Render paints a frame into a new image on a white background. Frame
// coordinates are Cartesian with the origin at the bottom-left; pixels are
// screen coordinates, so y flips at this boundary.
func (r *Renderer) Render(f frame.Frame, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	h := float64(height)
	for _, p := range f.Primitives {
		r.paint(img, p, h)
	}
	for _, l := range f.Labels {
		r.paintLabel(img, l, h)
	}
	return img
}

// RenderPNG paints a frame and encodes it as PNG.
func (r *Renderer) RenderPNG(f frame.Frame, width, height int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, r.Render(f, width, height)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SavePNG renders a frame and writes the PNG through the environment,
// which on wasm hosts triggers a browser download.
func (r *Renderer) SavePNG(f frame.Frame, width, height int, path string) error {
	data, err := r.RenderPNG(f, width, height)
	if err != nil {
		return err
	}
	return env.WriteFile(path, data)
}

func (r *Renderer) paint(img *image.RGBA, p frame.Primitive, h float64) {
	switch p.Kind {
	case frame.KindRect:
		paintRect(img, p, h)
	case frame.KindEllipse:
		paintEllipse(img, p, h)
	case frame.KindLine:
		paintLine(img, p, h)
	case frame.KindTriangle:
		if len(p.Points) == 3 {
			fillPolygon(img, toScreen(p.Points, h), p.Color)
		}
	case frame.KindPoint:
		paintPoints(img, p, h)
	}
}

// toScreen flips Cartesian points into screen space.
func toScreen(pts []frame.Point, h float64) []frame.Point {
	out := make([]frame.Point, len(pts))
	for i, p := range pts {
		out[i] = frame.Point{X: p.X, Y: h - p.Y}
	}
	return out
}

func paintRect(img *image.RGBA, p frame.Primitive, h float64) {
	x0, x1 := p.Pos.X, p.Pos.X+p.Size.X
	y0, y1 := p.Pos.Y, p.Pos.Y+p.Size.Y
	radius := math.Min(p.Radius, math.Min(p.Size.X, p.Size.Y)/2)
	for yi := int(math.Floor(y0)); yi < int(math.Ceil(y1)); yi++ {
		fy := float64(yi) + 0.5
		if fy < y0 || fy > y1 {
			continue
		}
		c := p.Color
		if len(p.Gradient) >= 2 {
			c = gradientAt(p.Gradient, (fy-y0)/p.Size.Y)
		}
		for xi := int(math.Floor(x0)); xi < int(math.Ceil(x1)); xi++ {
			fx := float64(xi) + 0.5
			if fx < x0 || fx > x1 {
				continue
			}
			if radius > 0 && !insideRoundedRect(fx, fy, x0, y0, x1, y1, radius) {
				continue
			}
			blend(img, xi, int(h-fy), c)
		}
	}
}

func insideRoundedRect(x, y, x0, y0, x1, y1, r float64) bool {
	cx := clamp(x, x0+r, x1-r)
	cy := clamp(y, y0+r, y1-r)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// gradientAt interpolates the stops at t in [0,1], bottom to top.
func gradientAt(stops []frame.Color, t float64) frame.Color {
	t = clamp(t, 0, 1)
	pos := t * float64(len(stops)-1)
	i := int(pos)
	if i >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	f := pos - float64(i)
	a, b := stops[i], stops[i+1]
	return frame.Color{
		R: a.R + (b.R-a.R)*f,
		G: a.G + (b.G-a.G)*f,
		B: a.B + (b.B-a.B)*f,
		A: a.A + (b.A-a.A)*f,
	}
}

// arcPoints samples an elliptical arc. Angles are degrees clockwise from
// 12 o'clock, so a vertex sits at (cx + rx*sin, cy + ry*cos).
func arcPoints(cx, cy, rx, ry, startDeg, endDeg float64) []frame.Point {
	span := endDeg - startDeg
	steps := int(math.Ceil(math.Abs(span) / 2))
	if steps < 2 {
		steps = 2
	}
	pts := make([]frame.Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		a := (startDeg + span*float64(i)/float64(steps)) * math.Pi / 180
		pts = append(pts, frame.Point{
			X: cx + rx*math.Sin(a),
			Y: cy + ry*math.Cos(a),
		})
	}
	return pts
}

func paintEllipse(img *image.RGBA, p frame.Primitive, h float64) {
	rx, ry := p.Size.X/2, p.Size.Y/2
	cx, cy := p.Pos.X+rx, p.Pos.Y+ry
	start, end := p.AngleStart, p.AngleEnd
	full := start == 0 && end == 0 || end-start >= 360
	if full {
		start, end = 0, 360
	}
	arc := arcPoints(cx, cy, rx, ry, start, end)
	if p.Fill {
		poly := arc
		if !full {
			poly = append([]frame.Point{{X: cx, Y: cy}}, arc...)
		}
		fillPolygon(img, toScreen(poly, h), p.Color)
		return
	}
	width := p.Width
	if width == 0 {
		width = 1
	}
	strokePolyline(img, toScreen(arc, h), width, p.Color, full)
}

func paintLine(img *image.RGBA, p frame.Primitive, h float64) {
	if len(p.Points) < 2 {
		return
	}
	width := p.Width
	if width == 0 {
		width = 1
	}
	strokePolyline(img, toScreen(p.Points, h), width, p.Color, p.Closed)
}

func paintPoints(img *image.RGBA, p frame.Primitive, h float64) {
	size := p.PointSize
	if size == 0 {
		size = 1
	}
	for _, pt := range p.Points {
		paintRect(img, frame.Primitive{
			Pos:   frame.Point{X: pt.X - size/2, Y: pt.Y - size/2},
			Size:  frame.Point{X: size, Y: size},
			Color: p.Color,
		}, h)
	}
}

func strokePolyline(img *image.RGBA, pts []frame.Point, width float64, c frame.Color, closed bool) {
	n := len(pts)
	if n < 2 {
		return
	}
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		strokeSegment(img, a, b, width, c)
	}
}

// strokeSegment fills the quad formed by offsetting the segment by half
// the stroke width on each side.
func strokeSegment(img *image.RGBA, a, b frame.Point, width float64, c frame.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	fillPolygon(img, []frame.Point{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}, c)
}

// fillPolygon scan-fills a polygon in screen space with even-odd parity.
func fillPolygon(img *image.RGBA, pts []frame.Point, c frame.Color) {
	n := len(pts)
	if n < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	for yi := int(math.Floor(minY)); yi <= int(math.Ceil(maxY)); yi++ {
		fy := float64(yi) + 0.5
		var xs []float64
		for i := 0; i < n; i++ {
			a, b := pts[i], pts[(i+1)%n]
			if (a.Y <= fy) == (b.Y <= fy) {
				continue
			}
			t := (fy - a.Y) / (b.Y - a.Y)
			xs = append(xs, a.X+t*(b.X-a.X))
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for xi := int(math.Ceil(xs[i] - 0.5)); float64(xi)+0.5 <= xs[i+1]; xi++ {
				blend(img, xi, yi, c)
			}
		}
	}
}

// blend paints one pixel with source-over compositing.
func blend(img *image.RGBA, x, y int, c frame.Color) {
	if !(image.Point{X: x, Y: y}.In(img.Bounds())) {
		return
	}
	if c.A <= 0 {
		return
	}
	if c.A >= 1 {
		img.SetRGBA(x, y, color.RGBA{
			R: uint8(c.R*255 + 0.5),
			G: uint8(c.G*255 + 0.5),
			B: uint8(c.B*255 + 0.5),
			A: 255,
		})
		return
	}
	dst := img.RGBAAt(x, y)
	a := c.A
	img.SetRGBA(x, y, color.RGBA{
		R: uint8(c.R*255*a + float64(dst.R)*(1-a) + 0.5),
		G: uint8(c.G*255*a + float64(dst.G)*(1-a) + 0.5),
		B: uint8(c.B*255*a + float64(dst.B)*(1-a) + 0.5),
		A: uint8(255*a + float64(dst.A)*(1-a) + 0.5),
	})
}

func (r *Renderer) paintLabel(img *image.RGBA, l frame.Label, h float64) {
	face := r.face(l.Font.Name, l.Font.Size)
	if face == nil || l.Text == "" {
		return
	}
	lines := r.labelLines(l)
	if len(lines) == 0 {
		return
	}
	if l.Rotation == 0 {
		r.drawLines(img, l, lines, face, h)
		return
	}
	r.drawRotated(img, l, lines, face, h)
}

// labelLines splits and optionally word-wraps the label text.
func (r *Renderer) labelLines(l frame.Label) []string {
	raw := strings.Split(l.Text, "\n")
	if !l.Wrap {
		return raw
	}
	var lines []string
	for _, s := range raw {
		lines = append(lines, r.wrapLine(s, l)...)
	}
	if l.MaxLines > 0 && len(lines) > l.MaxLines {
		lines = lines[:l.MaxLines]
	}
	return lines
}

func (r *Renderer) wrapLine(s string, l frame.Label) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		candidate := cur + " " + w
		cw, _ := r.MeasureText(candidate, l.Font)
		if cw > l.Size.X {
			lines = append(lines, cur)
			cur = w
			continue
		}
		cur = candidate
	}
	return append(lines, cur)
}

// drawLines paints the line block aligned within the label box.
func (r *Renderer) drawLines(img draw.Image, l frame.Label, lines []string, face font.Face, h float64) {
	m := face.Metrics()
	lineH := fixedToFloat(m.Height)
	ascent := fixedToFloat(m.Ascent)
	blockH := lineH * float64(len(lines))

	// Screen-space top of the line block.
	boxTop := h - (l.Pos.Y + l.Size.Y)
	var top float64
	switch l.VAlign {
	case frame.AlignTop:
		top = boxTop
	case frame.AlignBottom:
		top = boxTop + l.Size.Y - blockH
	default:
		top = boxTop + (l.Size.Y-blockH)/2
	}

	src := image.NewUniform(color.RGBA{
		R: uint8(l.Color.R*255 + 0.5),
		G: uint8(l.Color.G*255 + 0.5),
		B: uint8(l.Color.B*255 + 0.5),
		A: uint8(l.Color.A*255 + 0.5),
	})
	for i, line := range lines {
		lw, _ := r.MeasureText(line, l.Font)
		var x float64
		switch l.HAlign {
		case frame.AlignLeft:
			x = l.Pos.X
		case frame.AlignRight:
			x = l.Pos.X + l.Size.X - lw
		default:
			x = l.Pos.X + (l.Size.X-lw)/2
		}
		baseline := top + float64(i)*lineH + ascent
		d := &font.Drawer{
			Dst:  img,
			Src:  src,
			Face: face,
			Dot:  fixed.Point26_6{X: floatToFixed(x), Y: floatToFixed(baseline)},
		}
		d.DrawString(line)
	}
}

// drawRotated renders the label into a scratch image and maps it onto the
// target rotated about the box center.
func (r *Renderer) drawRotated(img *image.RGBA, l frame.Label, lines []string, face font.Face, h float64) {
	w := int(math.Ceil(l.Size.X))
	bh := int(math.Ceil(l.Size.Y))
	if w <= 0 || bh <= 0 {
		return
	}
	scratch := image.NewRGBA(image.Rect(0, 0, w, bh))
	local := l
	local.Pos = frame.Point{}
	local.Rotation = 0
	r.drawLines(scratch, local, lines, face, float64(bh))

	center := l.Center()
	scx, scy := center.X, h-center.Y
	// Labels rotate counterclockwise in Cartesian space, which is
	// clockwise on screen.
	rad := l.Rotation * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	half := math.Hypot(l.Size.X, l.Size.Y)/2 + 1
	for yi := int(scy - half); yi <= int(scy+half); yi++ {
		for xi := int(scx - half); xi <= int(scx+half); xi++ {
			dx := float64(xi) + 0.5 - scx
			dy := float64(yi) + 0.5 - scy
			sx := cos*dx - sin*dy + l.Size.X/2
			sy := sin*dx + cos*dy + l.Size.Y/2
			if sx < 0 || sy < 0 || sx >= float64(w) || sy >= float64(bh) {
				continue
			}
			px := scratch.RGBAAt(int(sx), int(sy))
			if px.A == 0 {
				continue
			}
			blend(img, xi, yi, frame.Color{
				R: float64(px.R) / 255,
				G: float64(px.G) / 255,
				B: float64(px.B) / 255,
				A: float64(px.A) / 255,
			})
		}
	}
}

func floatToFixed(v float64) fixed.Int26_6 { return fixed.Int26_6(v*64 + 0.5) }
