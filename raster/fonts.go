// Package raster is a reference host for chart frames: it measures text
// with real font metrics and paints frames into images. Charts themselves
// never import it; they only see the measuring capability through
// frame.TextMeasurer.
package raster

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	. "github.com/tinywasm/fmt"

	"github.com/tinywasm/charts/env"
	"github.com/tinywasm/charts/frame"
)

type faceKey struct {
	name string
	size float64
}

// Renderer paints chart frames and measures text. It holds parsed fonts by
// name and caches one face per (font, size) pair. Not safe for concurrent
// use.
type Renderer struct {
	fonts map[string]*truetype.Font
	faces map[faceKey]font.Face
}

func New() *Renderer {
	return &Renderer{
		fonts: map[string]*truetype.Font{},
		faces: map[faceKey]font.Face{},
	}
}

// LoadFont reads a TTF file through the environment and registers it under
// the given name.
func (r *Renderer) LoadFont(name, path string) error {
	data, err := env.ReadFile(path)
	if err != nil {
		return Errf("reading font %s: %v", path, err)
	}
	return r.SetFontBytes(name, data)
}

// SetFontBytes registers raw TTF data under the given name, replacing any
// previous registration and its cached faces.
func (r *Renderer) SetFontBytes(name string, data []byte) error {
	f, err := truetype.Parse(data)
	if err != nil {
		return Errf("parsing font %s: %v", name, err)
	}
	r.fonts[name] = f
	for k := range r.faces {
		if k.name == name {
			delete(r.faces, k)
		}
	}
	return nil
}

func (r *Renderer) face(name string, size float64) font.Face {
	if size <= 0 {
		return nil
	}
	k := faceKey{name: name, size: size}
	if f, ok := r.faces[k]; ok {
		return f
	}
	ft, ok := r.fonts[name]
	if !ok {
		return nil
	}
	f := truetype.NewFace(ft, &truetype.Options{Size: size})
	r.faces[k] = f
	return f
}

// MeasureText implements frame.TextMeasurer with real font metrics,
// falling back to the approximate measurer when the font is not loaded.
func (r *Renderer) MeasureText(text string, f frame.Font) (w, h float64) {
	face := r.face(f.Name, f.Size)
	if face == nil {
		return frame.Approx{}.MeasureText(text, f)
	}
	m := face.Metrics()
	return fixedToFloat(font.MeasureString(face, text)), fixedToFloat(m.Height)
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
