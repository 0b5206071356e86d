//go:build !wasm

// Demo server: renders chart PNGs from JSON configuration documents.
//
//	POST /chart/bar.png    body: bar chart JSON
//	POST /chart/pie.png    body: pie chart JSON
//	POST /chart/donut.png  body: donut chart JSON
//	POST /chart/radar.png  body: radar chart JSON
//	POST /render           body: render request envelope
//
// The /chart endpoints take width and height from the ?w= and ?h=
// query parameters; /render carries them in the envelope.
package main

import (
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/tinywasm/charts"
	"github.com/tinywasm/charts/frame"
	"github.com/tinywasm/charts/raster"
)

func main() {
	port := flag.String("port", "", "Port to listen on")
	fontPath := flag.String("font", "", "TTF file registered as Roboto for label rendering")
	flag.Parse()

	if *port == "" {
		*port = os.Getenv("PORT")
		if *port == "" {
			*port = "4430"
		}
	}

	r := raster.New()
	if *fontPath != "" {
		if err := r.LoadFont("Roboto", *fontPath); err != nil {
			log.Fatalf("Error loading font: %v", err)
		}
	}
	factory := charts.New().Measurer(r).Logger(log.Println)

	recompute := func(kind string, doc []byte, box frame.Rect) (frame.Frame, error) {
		switch kind {
		case "pie":
			c, err := factory.PieFromJSON(doc)
			if err != nil {
				return frame.Frame{}, err
			}
			return c.Recompute(box)
		case "donut":
			c, err := factory.DonutFromJSON(doc)
			if err != nil {
				return frame.Frame{}, err
			}
			return c.Recompute(box)
		case "radar":
			c, err := factory.RadarFromJSON(doc)
			if err != nil {
				return frame.Frame{}, err
			}
			return c.Recompute(box)
		default:
			c, err := factory.BarFromJSON(doc)
			if err != nil {
				return frame.Frame{}, err
			}
			return c.Recompute(box)
		}
	}

	handler := func(kind string) http.HandlerFunc {
		return func(w http.ResponseWriter, req *http.Request) {
			doc, err := io.ReadAll(req.Body)
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			width := queryInt(req, "w", 800)
			height := queryInt(req, "h", 600)

			f, err := recompute(kind, doc, frame.Rect{W: float64(width), H: float64(height)})
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			data, err := r.RenderPNG(f, width, height)
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "image/png")
			w.Write(data)
		}
	}

	// POST /render takes a wire envelope naming the chart kind, size and
	// document instead of spreading them over the path and query.
	render := func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		env, err := charts.DecodeRenderRequest(body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if env.Width <= 0 {
			env.Width = 800
		}
		if env.Height <= 0 {
			env.Height = 600
		}
		c, err := factory.FromRequest(env)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		f, err := c.Recompute(frame.Rect{W: float64(env.Width), H: float64(env.Height)})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		data, err := r.RenderPNG(f, env.Width, env.Height)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(data)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/render", render)
	mux.HandleFunc("/chart/bar.png", handler("bar"))
	mux.HandleFunc("/chart/pie.png", handler("pie"))
	mux.HandleFunc("/chart/donut.png", handler("donut"))
	mux.HandleFunc("/chart/radar.png", handler("radar"))

	log.Printf("Chart server listening on http://localhost:%s", *port)
	if err := http.ListenAndServe(":"+*port, mux); err != nil {
		log.Fatal(err)
	}
}

func queryInt(req *http.Request, key string, fallback int) int {
	v, err := strconv.Atoi(req.URL.Query().Get(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
