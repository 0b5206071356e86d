package layout

import "testing"

func fixedWidth(w float64) func(LegendItem) float64 {
	return func(LegendItem) float64 { return w }
}

func TestPackLegendWraps(t *testing.T) {
	items := []LegendItem{
		{Key: 0, Label: "a"}, {Key: 1, Label: "b"}, {Key: 2, Label: "c"},
		{Key: 3, Label: "d"}, {Key: 4, Label: "e"},
	}
	rows := PackLegend(items, fixedWidth(40), 120)
	if len(rows) != 2 {
		t.Fatalf("invalid row count: got=%d, want=2", len(rows))
	}
	if got := len(rows[0].Items); got != 3 {
		t.Errorf("invalid first row size: got=%d, want=3", got)
	}
	if got := len(rows[1].Items); got != 2 {
		t.Errorf("invalid second row size: got=%d, want=2", got)
	}
	if rows[0].Width != 120 {
		t.Errorf("invalid first row width: got=%v, want=120", rows[0].Width)
	}
	if rows[1].Width != 80 {
		t.Errorf("invalid second row width: got=%v, want=80", rows[1].Width)
	}
}

func TestPackLegendKeepsOrder(t *testing.T) {
	items := []LegendItem{{Key: 0, Label: "x"}, {Key: 1, Label: "y"}, {Key: 2, Label: "z"}}
	rows := PackLegend(items, fixedWidth(100), 150)
	var got []int
	for _, row := range rows {
		for _, it := range row.Items {
			got = append(got, it.Key)
		}
	}
	for i, k := range got {
		if k != i {
			t.Errorf("invalid item order: got=%v", got)
			break
		}
	}
}

func TestPackLegendOversizedItem(t *testing.T) {
	items := []LegendItem{{Key: 0, Label: "long"}, {Key: 1, Label: "b"}}
	rows := PackLegend(items, fixedWidth(500), 120)
	if len(rows) != 2 {
		t.Fatalf("invalid row count: got=%d, want=2", len(rows))
	}
	if len(rows[0].Items) != 1 || len(rows[1].Items) != 1 {
		t.Errorf("invalid packing of oversized items: got=%v", rows)
	}
}

func TestPackLegendEmpty(t *testing.T) {
	if rows := PackLegend(nil, fixedWidth(40), 120); len(rows) != 0 {
		t.Errorf("invalid rows for empty input: got=%v", rows)
	}
}
