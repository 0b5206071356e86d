//go:build wasm

// Demo client: recomputes a chart in the browser and downloads the
// rendered PNG through the environment's file writer.
package main

import (
	"github.com/tinywasm/fetch"

	"github.com/tinywasm/charts"
	"github.com/tinywasm/charts/env"
	"github.com/tinywasm/charts/frame"
	"github.com/tinywasm/charts/raster"
)

func main() {
	env.Logger("charts demo ready")

	r := raster.New()
	factory := charts.New().Measurer(r)

	f, err := factory.Pie().
		Add("A", 40).
		Add("B", 30).
		Add("C", 30).
		ShowLegend(true).
		Recompute(frame.Rect{W: 600, H: 400})
	if err != nil {
		env.Logger("recompute failed:", err)
		return
	}
	if err := r.SavePNG(f, 600, 400, "pie.png"); err != nil {
		env.Logger("download failed:", err)
		return
	}
	env.Logger("chart downloaded")

	// Server-side render of the same chart through the wire envelope.
	req := &charts.RenderRequest{
		Kind:   "pie",
		Width:  600,
		Height: 400,
		Doc:    `{"data":[{"label":"A","value":40},{"label":"B","value":30},{"label":"C","value":30}],"show_legend":true}`,
	}
	payload, err := req.Encode()
	if err != nil {
		env.Logger("encode failed:", err)
		return
	}
	fetch.Post("/render").ContentTypeJSON().Body(payload).Send(func(resp *fetch.Response, err error) {
		if err != nil {
			env.Logger("server render failed:", err)
			return
		}
		if resp.Status != 200 {
			env.Logger("server render failed:", resp.Text())
			return
		}
		if err := env.WriteFile("pie-server.png", resp.Body()); err != nil {
			env.Logger("download failed:", err)
			return
		}
		env.Logger("server chart downloaded")
	})

	select {}
}
