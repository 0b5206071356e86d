package colors

import (
	. "github.com/tinywasm/fmt"

	"github.com/tinywasm/charts/errs"
	"github.com/tinywasm/charts/frame"
)

// Palette is an ordered color list cycled by index.
type Palette []Spec

// At resolves the color at index modulo the palette length. An empty
// palette yields the fallback.
func (p Palette) At(index int, fallback frame.Color) (frame.Color, error) {
	if len(p) == 0 {
		return fallback, nil
	}
	return Resolve(p[index%len(p)])
}

// DefaultPie is the built-in pie/donut slice palette.
func DefaultPie() Palette {
	return hexPalette(
		"#ffd92f", "#a6d854", "#e78ac3", "#8da0cb",
		"#fc8d62", "#66c2a5", "#d0d0d0", "#ffb8bc",
	)
}

// DefaultRadar is the built-in radar dataset palette.
func DefaultRadar() Palette {
	return hexPalette(
		"#1f77b4", // muted blue
		"#d62728", // brick red
		"#2ca02c", // asparagus green
		"#ff7f0e", // safety orange
		"#9467bd", // muted purple
		"#8c564b", // chestnut brown
	)
}

// DefaultBar is the fallback color for bars when no palette is set.
func DefaultBar() frame.Color {
	c, _ := resolveHex("#3498db")
	return c
}

func hexPalette(ss ...string) Palette {
	p := make(Palette, len(ss))
	for i, s := range ss {
		p[i] = Hex(s)
	}
	return p
}

// ValidateGradient resolves a gradient color list. Gradients require at
// least two entries and every entry must be a valid hex string. Callers
// treat a failure as recoverable: log it and fall back to standard
// coloring for the current recompute.
func ValidateGradient(specs []Spec) ([]frame.Color, error) {
	if len(specs) < 2 {
		return nil, errs.New(errs.InvalidGradientSpec,
			"at least two colors are required for a gradient")
	}
	out := make([]frame.Color, len(specs))
	for i, s := range specs {
		if !s.IsHex() {
			return nil, errs.New(errs.InvalidGradientSpec,
				Sprintf("gradient entry %d must be a 6-digit hex string", i))
		}
		c, err := Resolve(s)
		if err != nil {
			return nil, errs.New(errs.InvalidGradientSpec, err)
		}
		out[i] = c
	}
	return out, nil
}
