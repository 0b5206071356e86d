package frame

import "unicode/utf8"

// TextMeasurer reports the rendered extent of a string. The layout engine
// depends on this capability abstractly; the raster host provides a real
// implementation backed by font metrics.
type TextMeasurer interface {
	MeasureText(text string, f Font) (w, h float64)
}

// Approx estimates text extents from the font size alone, for hosts that
// have no font access. Widths assume an average glyph advance of 0.6 em.
type Approx struct{}

func (Approx) MeasureText(text string, f Font) (w, h float64) {
	n := utf8.RuneCountInString(text)
	return 0.6 * f.Size * float64(n), 1.2 * f.Size
}
