package charts

import (
	"encoding/json"

	"github.com/tinywasm/charts/colors"
	"github.com/tinywasm/charts/errs"
	"github.com/tinywasm/charts/frame"
	"github.com/tinywasm/charts/layout"
)

// Chart configurations can be loaded from JSON documents. Colors are hex
// strings ("#rrggbb"); omitted fields keep the chart defaults. Numeric
// zero values are treated as unset for fields whose default is non-zero,
// matching the fluent builders.

// BarConfig is the JSON configuration surface of a bar chart.
type BarConfig struct {
	Data       []DataPoint `json:"data"`
	Title      string      `json:"title,omitempty"`
	TitleSize  float64     `json:"title_font_size,omitempty"`
	TitleColor string      `json:"title_color,omitempty"`

	Mode       string   `json:"mode,omitempty"`
	ColorStyle string   `json:"color_style,omitempty"`
	Colors     []string `json:"colors,omitempty"`
	Default    string   `json:"default_color,omitempty"`
	Gradient   []string `json:"gradient_colors,omitempty"`
	BarRadius  float64  `json:"bar_radius,omitempty"`

	FontName       string  `json:"font_name,omitempty"`
	ValueColor     string  `json:"value_color,omitempty"`
	ValueSize      float64 `json:"value_font_size,omitempty"`
	AxisLabelColor string  `json:"axis_label_color,omitempty"`
	AxisLabelSize  float64 `json:"axis_label_font_size,omitempty"`
	XLabelRotation string  `json:"x_label_rotation,omitempty"`

	YAxisLabels bool   `json:"y_axis_labels,omitempty"`
	Grid        bool   `json:"grid,omitempty"`
	GridStyle   string `json:"grid_style,omitempty"`
	GridColor   string `json:"grid_color,omitempty"`

	NoData NoDataConfig `json:"no_data,omitempty"`
}

// DataPoint is one labelled value in a JSON data list. Lists keep the
// document order.
type DataPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// NoDataConfig configures the placeholder shown for empty data.
type NoDataConfig struct {
	Text     string  `json:"text,omitempty"`
	FontSize float64 `json:"font_size,omitempty"`
	Color    string  `json:"color,omitempty"`
}

// PieConfig is the JSON configuration surface of a pie chart.
type PieConfig struct {
	Data   []DataPoint `json:"data"`
	Colors []string    `json:"colors,omitempty"`

	FontName           string   `json:"font_name,omitempty"`
	PercentageColor    string   `json:"percentage_color,omitempty"`
	PercentageSize     float64  `json:"percentage_font_size,omitempty"`
	PercentageDistance *float64 `json:"percentage_distance_factor,omitempty"`

	ShowLegend     bool    `json:"show_legend,omitempty"`
	LegendVAlign   string  `json:"legend_valign,omitempty"`
	LegendPosition string  `json:"legend_position,omitempty"`
	LegendColor    string  `json:"legend_label_color,omitempty"`
	LegendSize     float64 `json:"legend_label_font_size,omitempty"`
	LegendKeyShape string  `json:"legend_key_shape,omitempty"`
	LegendKeyStyle string  `json:"legend_key_style,omitempty"`

	NoData NoDataConfig `json:"no_data,omitempty"`
}

// DonutConfig extends PieConfig with the hole layer.
type DonutConfig struct {
	PieConfig

	DonutRadius        float64 `json:"donut_radius,omitempty"`
	HoleColor          string  `json:"hole_color,omitempty"`
	CenterText         string  `json:"center_text,omitempty"`
	CenterTextFontName string  `json:"center_text_font_name,omitempty"`
	CenterTextColor    string  `json:"center_text_color,omitempty"`
	CenterTextSize     float64 `json:"center_text_font_size,omitempty"`
	CenterTextLines    int     `json:"center_text_lines,omitempty"`
}

// RadarConfig is the JSON configuration surface of a radar chart.
type RadarConfig struct {
	Data       []RadarDataset `json:"data"`
	Categories []string       `json:"categories"`

	MaxValue float64 `json:"max_value,omitempty"`
	FontName string  `json:"font_name,omitempty"`

	AdjustData       bool    `json:"adjust_data,omitempty"`
	MissingValueFill float64 `json:"missing_value_fill,omitempty"`

	CategoryLabelOffset float64 `json:"category_label_offset,omitempty"`
	CategoryLabelColor  string  `json:"category_label_color,omitempty"`
	CategoryLabelSize   float64 `json:"category_label_font_size,omitempty"`

	NumGridLines  int     `json:"num_grid_lines,omitempty"`
	GridStyle     string  `json:"grid_style,omitempty"`
	GridColor     string  `json:"grid_color,omitempty"`
	GridLineWidth float64 `json:"grid_line_width,omitempty"`

	AxisLineColor string  `json:"axis_line_color,omitempty"`
	AxisLineWidth float64 `json:"axis_line_width,omitempty"`

	Colors       []string `json:"colors,omitempty"`
	PlotStyle    string   `json:"plot_style,omitempty"`
	Transparency float64  `json:"transparency,omitempty"`
	LineWidth    float64  `json:"line_width,omitempty"`
	ShowMarkers  bool     `json:"show_markers,omitempty"`

	ShowScaleValues *bool   `json:"show_scale_values,omitempty"`
	ScaleValueColor string  `json:"scale_value_color,omitempty"`
	ScaleValueSize  float64 `json:"scale_value_font_size,omitempty"`

	ShowLegend     bool    `json:"show_legend,omitempty"`
	LegendVAlign   string  `json:"legend_valign,omitempty"`
	LegendColor    string  `json:"legend_label_color,omitempty"`
	LegendSize     float64 `json:"legend_label_font_size,omitempty"`
	LegendKeyShape string  `json:"legend_key_shape,omitempty"`
}

// RadarDataset is one named value list in a JSON radar document.
type RadarDataset struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

func parseColor(s string) (frame.Color, error) {
	return colors.Resolve(colors.Hex(s))
}

func parsePalette(hexes []string) (colors.Palette, error) {
	if len(hexes) == 0 {
		return nil, nil
	}
	p := make(colors.Palette, 0, len(hexes))
	for _, h := range hexes {
		spec := colors.Hex(h)
		if _, err := colors.Resolve(spec); err != nil {
			return nil, err
		}
		p = append(p, spec)
	}
	return p, nil
}

func seriesFromPoints(pts []DataPoint) layout.Series {
	s := make(layout.Series, 0, len(pts))
	for _, p := range pts {
		s = append(s, layout.Item{Label: p.Label, Value: p.Value})
	}
	return s
}

// BarFromJSON builds a bar chart from a JSON document.
func (f *Factory) BarFromJSON(doc []byte) (*BarChart, error) {
	var cfg BarConfig
	if err := json.Unmarshal(doc, &cfg); err != nil {
		return nil, errs.New(errs.InvalidData, "invalid bar chart document:", err)
	}
	c := newBarChart(f)
	c.Data(seriesFromPoints(cfg.Data))
	if cfg.Title != "" {
		c.Title(cfg.Title)
	}
	if cfg.TitleSize != 0 {
		c.TitleFontSize(cfg.TitleSize)
	}
	if err := applyColor(cfg.TitleColor, func(col frame.Color) { c.TitleColor(col) }); err != nil {
		return nil, err
	}
	if cfg.Mode != "" {
		c.Mode(layout.Mode(cfg.Mode))
	}
	if cfg.ColorStyle != "" {
		c.ColorStyle(layout.ColorStyle(cfg.ColorStyle))
	}
	p, err := parsePalette(cfg.Colors)
	if err != nil {
		return nil, err
	}
	if p != nil {
		c.Colors(p)
	}
	if cfg.Default != "" {
		c.DefaultColor(colors.Hex(cfg.Default))
	}
	if len(cfg.Gradient) > 0 {
		grad := make([]colors.Spec, 0, len(cfg.Gradient))
		for _, h := range cfg.Gradient {
			grad = append(grad, colors.Hex(h))
		}
		c.GradientColors(grad)
	}
	if cfg.BarRadius != 0 {
		c.BarRadius(cfg.BarRadius)
	}
	if cfg.FontName != "" {
		c.FontName(cfg.FontName)
	}
	if err := applyColor(cfg.ValueColor, func(col frame.Color) { c.ValueColor(col) }); err != nil {
		return nil, err
	}
	if cfg.ValueSize != 0 {
		c.ValueFontSize(cfg.ValueSize)
	}
	if err := applyColor(cfg.AxisLabelColor, func(col frame.Color) { c.AxisLabelColor(col) }); err != nil {
		return nil, err
	}
	if cfg.AxisLabelSize != 0 {
		c.AxisLabelFontSize(cfg.AxisLabelSize)
	}
	if cfg.XLabelRotation != "" {
		c.XAxisLabelRotation(layout.Rotation(cfg.XLabelRotation))
	}
	c.YAxisLabels(cfg.YAxisLabels)
	c.Grid(cfg.Grid)
	if cfg.GridStyle != "" {
		c.GridStyle(layout.GridStyle(cfg.GridStyle))
	}
	if err := applyColor(cfg.GridColor, func(col frame.Color) { c.GridColor(col) }); err != nil {
		return nil, err
	}
	if err := applyNoData(cfg.NoData,
		func(t string) { c.NoDataText(t) },
		func(s float64) { c.NoDataFontSize(s) },
		func(col frame.Color) { c.NoDataColor(col) },
	); err != nil {
		return nil, err
	}
	return c, nil
}

// PieFromJSON builds a pie chart from a JSON document.
func (f *Factory) PieFromJSON(doc []byte) (*PieChart, error) {
	var cfg PieConfig
	if err := json.Unmarshal(doc, &cfg); err != nil {
		return nil, errs.New(errs.InvalidData, "invalid pie chart document:", err)
	}
	c := newPieChart(f)
	if err := applyPieConfig(c, cfg); err != nil {
		return nil, err
	}
	return c, nil
}

func applyPieConfig(c *PieChart, cfg PieConfig) error {
	c.Data(seriesFromPoints(cfg.Data))
	p, err := parsePalette(cfg.Colors)
	if err != nil {
		return err
	}
	if p != nil {
		c.Colors(p)
	}
	if cfg.FontName != "" {
		c.FontName(cfg.FontName)
	}
	if err := applyColor(cfg.PercentageColor, func(col frame.Color) { c.PercentageColor(col) }); err != nil {
		return err
	}
	if cfg.PercentageSize != 0 {
		c.PercentageFontSize(cfg.PercentageSize)
	}
	if cfg.PercentageDistance != nil {
		c.PercentageDistanceFactor(*cfg.PercentageDistance)
	}
	c.ShowLegend(cfg.ShowLegend)
	if cfg.LegendVAlign != "" {
		c.LegendVAlign(layout.VAlign(cfg.LegendVAlign))
	}
	if cfg.LegendPosition != "" {
		c.LegendPosition(layout.LegendPosition(cfg.LegendPosition))
	}
	if err := applyColor(cfg.LegendColor, func(col frame.Color) { c.LegendLabelColor(col) }); err != nil {
		return err
	}
	if cfg.LegendSize != 0 {
		c.LegendLabelFontSize(cfg.LegendSize)
	}
	if cfg.LegendKeyShape != "" {
		c.LegendKeyShape(layout.KeyShape(cfg.LegendKeyShape))
	}
	if cfg.LegendKeyStyle != "" {
		c.LegendKeyStyle(layout.KeyStyle(cfg.LegendKeyStyle))
	}
	return applyNoData(cfg.NoData,
		func(t string) { c.NoDataText(t) },
		func(s float64) { c.NoDataFontSize(s) },
		func(col frame.Color) { c.NoDataColor(col) },
	)
}

// DonutFromJSON builds a donut chart from a JSON document.
func (f *Factory) DonutFromJSON(doc []byte) (*DonutChart, error) {
	var cfg DonutConfig
	if err := json.Unmarshal(doc, &cfg); err != nil {
		return nil, errs.New(errs.InvalidData, "invalid donut chart document:", err)
	}
	c := newDonutChart(f)
	if err := applyPieConfig(c.pie, cfg.PieConfig); err != nil {
		return nil, err
	}
	if cfg.DonutRadius != 0 {
		c.DonutRadius(cfg.DonutRadius)
	}
	if err := applyColor(cfg.HoleColor, func(col frame.Color) { c.HoleColor(col) }); err != nil {
		return nil, err
	}
	if cfg.CenterText != "" {
		c.CenterText(cfg.CenterText)
	}
	if cfg.CenterTextFontName != "" {
		c.CenterTextFontName(cfg.CenterTextFontName)
	}
	if err := applyColor(cfg.CenterTextColor, func(col frame.Color) { c.CenterTextColor(col) }); err != nil {
		return nil, err
	}
	if cfg.CenterTextSize != 0 {
		c.CenterTextFontSize(cfg.CenterTextSize)
	}
	if cfg.CenterTextLines != 0 {
		c.CenterTextLines(cfg.CenterTextLines)
	}
	return c, nil
}

// RadarFromJSON builds a radar chart from a JSON document.
func (f *Factory) RadarFromJSON(doc []byte) (*RadarChart, error) {
	var cfg RadarConfig
	if err := json.Unmarshal(doc, &cfg); err != nil {
		return nil, errs.New(errs.InvalidData, "invalid radar chart document:", err)
	}
	c := newRadarChart(f)
	data := make(layout.RadarData, 0, len(cfg.Data))
	for _, d := range cfg.Data {
		data = append(data, layout.RadarSeries{Name: d.Name, Values: d.Values})
	}
	c.Data(data)
	c.Categories(cfg.Categories)
	if cfg.MaxValue != 0 {
		c.MaxValue(cfg.MaxValue)
	}
	if cfg.FontName != "" {
		c.FontName(cfg.FontName)
	}
	c.AdjustData(cfg.AdjustData)
	if cfg.MissingValueFill != 0 {
		c.MissingValueFill(cfg.MissingValueFill)
	}
	if cfg.CategoryLabelOffset != 0 {
		c.CategoryLabelOffset(cfg.CategoryLabelOffset)
	}
	if err := applyColor(cfg.CategoryLabelColor, func(col frame.Color) { c.CategoryLabelColor(col) }); err != nil {
		return nil, err
	}
	if cfg.CategoryLabelSize != 0 {
		c.CategoryLabelFontSize(cfg.CategoryLabelSize)
	}
	if cfg.NumGridLines != 0 {
		c.NumGridLines(cfg.NumGridLines)
	}
	if cfg.GridStyle != "" {
		c.GridStyle(layout.RadarGridStyle(cfg.GridStyle))
	}
	if err := applyColor(cfg.GridColor, func(col frame.Color) { c.GridColor(col) }); err != nil {
		return nil, err
	}
	if cfg.GridLineWidth != 0 {
		c.GridLineWidth(cfg.GridLineWidth)
	}
	if err := applyColor(cfg.AxisLineColor, func(col frame.Color) { c.AxisLineColor(col) }); err != nil {
		return nil, err
	}
	if cfg.AxisLineWidth != 0 {
		c.AxisLineWidth(cfg.AxisLineWidth)
	}
	p, err := parsePalette(cfg.Colors)
	if err != nil {
		return nil, err
	}
	if p != nil {
		c.Colors(p)
	}
	if cfg.PlotStyle != "" {
		c.PlotStyle(layout.PlotStyle(cfg.PlotStyle))
	}
	if cfg.Transparency != 0 {
		c.Transparency(cfg.Transparency)
	}
	if cfg.LineWidth != 0 {
		c.LineWidth(cfg.LineWidth)
	}
	c.ShowMarkers(cfg.ShowMarkers)
	if cfg.ShowScaleValues != nil {
		c.ShowScaleValues(*cfg.ShowScaleValues)
	}
	if err := applyColor(cfg.ScaleValueColor, func(col frame.Color) { c.ScaleValueColor(col) }); err != nil {
		return nil, err
	}
	if cfg.ScaleValueSize != 0 {
		c.ScaleValueFontSize(cfg.ScaleValueSize)
	}
	c.ShowLegend(cfg.ShowLegend)
	if cfg.LegendVAlign != "" {
		c.LegendVAlign(layout.VAlign(cfg.LegendVAlign))
	}
	if err := applyColor(cfg.LegendColor, func(col frame.Color) { c.LegendLabelColor(col) }); err != nil {
		return nil, err
	}
	if cfg.LegendSize != 0 {
		c.LegendLabelFontSize(cfg.LegendSize)
	}
	if cfg.LegendKeyShape != "" {
		c.LegendKeyShape(layout.KeyShape(cfg.LegendKeyShape))
	}
	return c, nil
}

func applyColor(hex string, set func(frame.Color)) error {
	if hex == "" {
		return nil
	}
	col, err := parseColor(hex)
	if err != nil {
		return err
	}
	set(col)
	return nil
}

func applyNoData(cfg NoDataConfig, text func(string), size func(float64), color func(frame.Color)) error {
	if cfg.Text != "" {
		text(cfg.Text)
	}
	if cfg.FontSize != 0 {
		size(cfg.FontSize)
	}
	return applyColor(cfg.Color, color)
}
