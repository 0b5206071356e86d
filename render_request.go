package charts

import (
	"github.com/tinywasm/fmt"
	"github.com/tinywasm/json"

	"github.com/tinywasm/charts/errs"
	"github.com/tinywasm/charts/frame"
)

// Chart is any chart model able to derive its frame for a bounding box.
type Chart interface {
	Recompute(box frame.Rect) (frame.Frame, error)
}

// RenderRequest is the wire envelope for a render call. The chart
// configuration document travels as an embedded JSON string so the
// envelope keeps the flat field schema the wire codec decodes into.
type RenderRequest struct {
	Kind   string
	Width  int
	Height int
	Doc    string
}

func (r *RenderRequest) Schema() []fmt.Field {
	return []fmt.Field{
		{Name: "kind", Type: fmt.FieldText},
		{Name: "width", Type: fmt.FieldInt},
		{Name: "height", Type: fmt.FieldInt},
		{Name: "doc", Type: fmt.FieldText},
	}
}

func (r *RenderRequest) Pointers() []any {
	return []any{&r.Kind, &r.Width, &r.Height, &r.Doc}
}

// DecodeRenderRequest parses a wire envelope.
func DecodeRenderRequest(body []byte) (*RenderRequest, error) {
	var req RenderRequest
	if err := json.Decode(body, &req); err != nil {
		return nil, errs.New(errs.InvalidData, "invalid render request:", err)
	}
	return &req, nil
}

// Encode serializes the envelope for transport.
func (r *RenderRequest) Encode() ([]byte, error) {
	var out []byte
	if err := json.Encode(r, &out); err != nil {
		return nil, errs.New(errs.InvalidData, "cannot encode render request:", err)
	}
	return out, nil
}

// FromRequest builds the chart model named by the envelope kind from the
// embedded configuration document.
func (f *Factory) FromRequest(req *RenderRequest) (Chart, error) {
	doc := []byte(req.Doc)
	switch req.Kind {
	case "bar":
		return f.BarFromJSON(doc)
	case "pie":
		return f.PieFromJSON(doc)
	case "donut":
		return f.DonutFromJSON(doc)
	case "radar":
		return f.RadarFromJSON(doc)
	}
	return nil, errs.New(errs.InvalidData, "unknown chart kind:", req.Kind)
}
