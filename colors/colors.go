// Package colors validates and normalizes chart color specifications. A
// spec is either a 6-digit hex string (#RRGGBB) or a 3- or 4-component
// float tuple in [0,1]; both resolve to a concrete frame.Color.
package colors

import (
	. "github.com/tinywasm/fmt"

	"github.com/tinywasm/charts/errs"
	"github.com/tinywasm/charts/frame"
)

// Spec is a tagged color specification, validated once at the resolve
// boundary rather than duck-typed at every use.
type Spec struct {
	hex    string
	comps  [4]float64
	nComps int
}

// Hex wraps a hex string spec; validation happens in Resolve.
func Hex(s string) Spec { return Spec{hex: s} }

// RGB wraps a 3-component spec; alpha resolves to 1.
func RGB(r, g, b float64) Spec {
	return Spec{comps: [4]float64{r, g, b, 1}, nComps: 3}
}

// RGBA wraps a 4-component spec.
func RGBA(r, g, b, a float64) Spec {
	return Spec{comps: [4]float64{r, g, b, a}, nComps: 4}
}

// IsHex reports whether the spec was built from a hex string.
func (s Spec) IsHex() bool { return s.nComps == 0 }

// Resolve validates a spec and converts it to a concrete color. Hex specs
// must match #RRGGBB exactly; tuple components must lie in [0,1].
func Resolve(s Spec) (frame.Color, error) {
	if s.nComps == 0 {
		return resolveHex(s.hex)
	}
	for _, c := range s.comps[:s.nComps] {
		if c < 0 || c > 1 {
			return frame.Color{}, errs.New(errs.InvalidColorRange,
				Sprintf("components must be between 0 and 1, got %v", s.comps[:s.nComps]))
		}
	}
	c := frame.Color{R: s.comps[0], G: s.comps[1], B: s.comps[2], A: 1}
	if s.nComps == 4 {
		c.A = s.comps[3]
	}
	return c, nil
}

func resolveHex(s string) (frame.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return frame.Color{}, errs.New(errs.InvalidColorFormat,
			Sprintf("%q must be #RRGGBB (6 digits)", s))
	}
	var v [6]int
	for i := 0; i < 6; i++ {
		d := hexDigit(s[i+1])
		if d < 0 {
			return frame.Color{}, errs.New(errs.InvalidColorFormat,
				Sprintf("%q must be #RRGGBB (6 digits)", s))
		}
		v[i] = d
	}
	return frame.Color{
		R: float64(v[0]*16+v[1]) / 255,
		G: float64(v[2]*16+v[3]) / 255,
		B: float64(v[4]*16+v[5]) / 255,
		A: 1,
	}, nil
}

func hexDigit(b byte) int {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0')
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10
	}
	return -1
}

// AdjustAlpha returns c with its alpha channel replaced.
func AdjustAlpha(c frame.Color, alpha float64) frame.Color {
	c.A = alpha
	return c
}
