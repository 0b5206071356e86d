// Package charts computes data-driven statistical chart layouts (bar,
// pie/donut, radar). Each chart model holds a flat configuration surface
// set through fluent builders; Recompute derives the complete visual
// layout for a bounding box as an immutable frame of draw primitives and
// text labels, regenerated from scratch on every call. Painting the frame
// is the host's job (see the raster package for a reference host).
package charts

import (
	"github.com/tinywasm/charts/env"
	"github.com/tinywasm/charts/frame"
)

// Factory creates chart models sharing a text measurer and logger.
type Factory struct {
	measurer frame.TextMeasurer
	logger   func(...any)
}

// New returns a factory with an approximate text measurer and the
// environment logger. Hosts with font access should install a real
// measurer so label centering matches what they paint.
func New() *Factory {
	return &Factory{
		measurer: frame.Approx{},
		logger:   env.Logger,
	}
}

// Measurer installs the text measurement capability used by all charts
// created afterwards.
func (f *Factory) Measurer(m frame.TextMeasurer) *Factory {
	f.measurer = m
	return f
}

// Logger installs the diagnostic logger.
func (f *Factory) Logger(l func(...any)) *Factory {
	f.logger = l
	return f
}

// Bar starts building a bar chart.
func (f *Factory) Bar() *BarChart { return newBarChart(f) }

// Pie starts building a pie chart.
func (f *Factory) Pie() *PieChart { return newPieChart(f) }

// Donut starts building a donut chart.
func (f *Factory) Donut() *DonutChart { return newDonutChart(f) }

// Radar starts building a radar chart.
func (f *Factory) Radar() *RadarChart { return newRadarChart(f) }

var colorBlack = frame.Color{A: 1}
